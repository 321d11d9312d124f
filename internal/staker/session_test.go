package staker_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/thep2p/go-staker-manager/internal/model"
	"github.com/thep2p/go-staker-manager/internal/staker"
	"github.com/thep2p/go-staker-manager/internal/testutils"
	"github.com/thep2p/go-staker-manager/internal/unittest"
	"github.com/thep2p/go-staker-manager/internal/unittest/mocks"
)

func loadedSession(t *testing.T, backend *mocks.MockBackend, confirmer *mocks.MockConfirmer) *staker.Session {
	t.Helper()

	backend.EXPECT().StakerConfigGet(mock.Anything, model.Mainnet).Return(unittest.StakerConfigGetFixture(t), nil).Once()
	o := staker.NewOrchestrator(testutils.Logger(t), model.Mainnet, backend, confirmer, nil)
	s := staker.NewSession(o)
	require.NoError(t, s.Load(context.Background()))
	return s
}

func TestSessionNotLoaded(t *testing.T) {
	s := staker.NewSession(staker.NewOrchestrator(testutils.Logger(t), model.Mainnet, mocks.NewMockBackend(t), mocks.NewMockConfirmer(t), nil))

	_, err := s.View()
	require.ErrorIs(t, err, staker.ErrNotLoaded)
	require.ErrorIs(t, s.SelectClient(model.Execution, "geth.dnp.dappnode.eth"), staker.ErrNotLoaded)
	require.ErrorIs(t, s.Apply(context.Background(), false).Err, staker.ErrNotLoaded)
	require.False(t, s.LaunchpadAvailable())
}

// TestSessionIdenticalProposal covers an untouched proposal: no changes.
func TestSessionIdenticalProposal(t *testing.T) {
	s := loadedSession(t, mocks.NewMockBackend(t), mocks.NewMockConfirmer(t))

	require.Equal(t, s.Current(), s.Proposed())
	require.Equal(t, model.ChangeVerdict{Reason: model.ReasonNoChanges, Severity: model.SeveritySecondary}, s.Verdict())
	require.True(t, s.LaunchpadAvailable())
}

// TestSessionSwitchExecutionClient covers changing only the execution client.
func TestSessionSwitchExecutionClient(t *testing.T) {
	s := loadedSession(t, mocks.NewMockBackend(t), mocks.NewMockConfirmer(t))

	require.NoError(t, s.SelectClient(model.Execution, "besu.public.dappnode.eth"))
	require.Equal(t, model.Allowed(), s.Verdict())

	// switching back restores the no-change verdict
	require.NoError(t, s.SelectClient(model.Execution, "geth.dnp.dappnode.eth"))
	require.False(t, s.Verdict().IsAllowed)
}

func TestSessionDeselectConsensusClient(t *testing.T) {
	s := loadedSession(t, mocks.NewMockBackend(t), mocks.NewMockConfirmer(t))

	require.NoError(t, s.SelectClient(model.Consensus, ""))
	require.Equal(t, model.Blocked(model.ReasonConsensusMissing, model.SeverityWarning), s.Verdict())
}

func TestSessionRejectsUnknownCandidate(t *testing.T) {
	s := loadedSession(t, mocks.NewMockBackend(t), mocks.NewMockConfirmer(t))

	err := s.SelectClient(model.Execution, "prysm.dnp.dappnode.eth")
	require.Error(t, err, "a consensus client is not an execution candidate")
	require.Error(t, s.SelectClient(model.Role("validator"), "geth.dnp.dappnode.eth"))
}

// TestSessionMalformedFeeRecipient covers a malformed fee recipient.
func TestSessionMalformedFeeRecipient(t *testing.T) {
	s := loadedSession(t, mocks.NewMockBackend(t), mocks.NewMockConfirmer(t))

	s.SetFeeRecipient("0xnotanaddress")
	require.Equal(t, model.FeeRecipientInvalid, s.FeeRecipientError())
	require.Equal(t, model.Blocked(model.FeeRecipientInvalid, model.SeverityDanger), s.Verdict())

	s.SetFeeRecipient(eip55Address)
	require.Empty(t, s.FeeRecipientError())
	require.True(t, s.Verdict().IsAllowed)
}

func TestSessionSignerAndMevBoost(t *testing.T) {
	s := loadedSession(t, mocks.NewMockBackend(t), mocks.NewMockConfirmer(t))

	s.EnableWeb3signer(true)
	require.True(t, s.Proposed().EnableWeb3signer)
	require.True(t, s.Verdict().IsAllowed)
	s.EnableWeb3signer(false)

	require.NoError(t, s.SelectClient(model.MevBoost, "mev-boost.dnp.dappnode.eth"))
	require.True(t, s.Verdict().IsAllowed)

	require.NoError(t, s.SelectClient(model.MevBoost, ""))
	require.NoError(t, s.SelectClient(model.Signer, "web3signer.dnp.dappnode.eth"))
	require.True(t, s.Proposed().EnableWeb3signer)
}

// TestSessionApplyBlockedVerdict verifies a blocked proposal never reaches the backend.
func TestSessionApplyBlockedVerdict(t *testing.T) {
	backend := mocks.NewMockBackend(t)
	s := loadedSession(t, backend, mocks.NewMockConfirmer(t))

	status := s.Apply(context.Background(), false)
	require.Error(t, status.Err)
	require.Contains(t, status.Err.Error(), model.ReasonNoChanges)
	backend.AssertNotCalled(t, "StakerConfigSet", mock.Anything, mock.Anything)
}

// TestSessionApplyRoundTrip verifies the session adopts the re-fetched state.
func TestSessionApplyRoundTrip(t *testing.T) {
	backend := mocks.NewMockBackend(t)
	confirmer := mocks.NewMockConfirmer(t)
	s := loadedSession(t, backend, confirmer)

	require.NoError(t, s.SelectClient(model.Execution, "besu.public.dappnode.eth"))

	confirmer.EXPECT().Confirm(mock.Anything, mock.Anything).Return(staker.Confirmed, nil).Twice()
	backend.EXPECT().StakerConfigSet(mock.Anything, mock.MatchedBy(func(cfg model.StakerConfig) bool {
		return cfg.ExecutionClient != nil && cfg.ExecutionClient.DnpName == "besu.public.dappnode.eth"
	})).Return(nil).Once()

	after := unittest.StakerConfigGetFixture(t)
	after.ExecutionClients[0].IsSelected = false
	after.ExecutionClients[1].IsSelected = true
	backend.EXPECT().StakerConfigGet(mock.Anything, model.Mainnet).Return(after, nil).Once()

	status := s.Apply(context.Background(), false)
	require.NoError(t, status.Err)
	require.True(t, status.Applied)

	require.Equal(t, "besu.public.dappnode.eth", s.Current().ExecutionClient.DnpName)
	require.Equal(t, model.ReasonNoChanges, s.Verdict().Reason, "proposal resets to the applied state")
}
