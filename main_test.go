package main

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/thep2p/go-staker-manager/internal/api"
	"github.com/thep2p/go-staker-manager/internal/catalog"
	"github.com/thep2p/go-staker-manager/internal/model"
	"github.com/thep2p/go-staker-manager/internal/packages"
	"github.com/thep2p/go-staker-manager/internal/settings"
	"github.com/thep2p/go-staker-manager/internal/staker"
	"github.com/thep2p/go-staker-manager/internal/testutils"
	"github.com/thep2p/go-staker-manager/internal/unittest/mocks"
	"github.com/urfave/cli/v2"
)

// startAPI serves a staker api over an in-memory store with geth, prysm
// and extra installed and running.
func startAPI(t *testing.T, extra ...string) (string, *settings.Staker) {
	t.Helper()

	logger := testutils.Logger(t)
	store := settings.NewMemoryStore()
	st := settings.NewStaker(logger, store)
	inspector := packages.NewMemoryInspector(
		packages.InstalledPackage{DnpName: "geth.dnp.dappnode.eth", Running: true},
		packages.InstalledPackage{DnpName: "prysm.dnp.dappnode.eth", Running: true},
	)
	for _, dnp := range extra {
		inspector.Put(packages.InstalledPackage{DnpName: dnp, Running: true})
	}
	service := api.NewService(logger, catalog.DefaultRegistry, st, nil, inspector, nil)

	srv := httptest.NewServer(api.NewRouter(logger, service, nil))
	t.Cleanup(srv.Close)
	return srv.URL, st
}

func withConfirmer(t *testing.T, confirmer staker.Confirmer) {
	orig := confirmerFactory
	confirmerFactory = func(zerolog.Logger, *cli.Context) staker.Confirmer { return confirmer }
	t.Cleanup(func() { confirmerFactory = orig })
}

func run(t *testing.T, args ...string) (string, error) {
	var out bytes.Buffer
	err := newApp(&out, &bytes.Buffer{}).Run(append([]string{"staker-manager"}, args...))
	return out.String(), err
}

func TestSetLaunchpadThenGet(t *testing.T) {
	url, st := startAPI(t, "web3signer.dnp.dappnode.eth")
	withConfirmer(t, mocks.NewMockConfirmer(t))

	out, err := run(t, "set",
		"--api-url", url,
		"--network", "mainnet",
		"--execution", "geth.dnp.dappnode.eth",
		"--consensus", "prysm.dnp.dappnode.eth",
		"--fee-recipient", "0x5aAeb6053F3E94C9b9A09f33669435E7Ef1BeAed",
		"--launchpad",
	)
	require.NoError(t, err)
	require.Contains(t, out, "staker configuration applied")

	persisted, err := st.Load(model.Mainnet)
	require.NoError(t, err)
	require.Equal(t, "geth.dnp.dappnode.eth", persisted.ExecutionClient)
	require.Equal(t, "prysm.dnp.dappnode.eth", persisted.ConsensusClient)
	require.True(t, persisted.Web3Signer)

	out, err = run(t, "get", "--api-url", url, "--network", "mainnet")
	require.NoError(t, err)

	var printed struct {
		Current model.StakerConfig `json:"current"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &printed))
	require.Equal(t, "geth.dnp.dappnode.eth", printed.Current.ExecutionClient.DnpName)
	require.Equal(t, "prysm.dnp.dappnode.eth", printed.Current.ConsensusClient.DnpName)
	require.Equal(t, "0x5aAeb6053F3E94C9b9A09f33669435E7Ef1BeAed", printed.Current.FeeRecipient)
	require.True(t, printed.Current.EnableWeb3signer)
}

func TestSetLaunchpadWithoutSigner(t *testing.T) {
	url, st := startAPI(t)
	withConfirmer(t, mocks.NewMockConfirmer(t))

	_, err := run(t, "set",
		"--api-url", url,
		"--execution", "geth.dnp.dappnode.eth",
		"--consensus", "prysm.dnp.dappnode.eth",
		"--launchpad",
	)
	require.Error(t, err)
	require.Contains(t, err.Error(), "web3signer")

	persisted, err := st.Load(model.Mainnet)
	require.NoError(t, err)
	require.Equal(t, model.StakerSettings{}, persisted)
}

func TestSetDismissedLeavesConfigUnchanged(t *testing.T) {
	url, st := startAPI(t)
	confirmer := mocks.NewMockConfirmer(t)
	confirmer.EXPECT().Confirm(mock.Anything, mock.Anything).Return(staker.Dismissed, nil).Once()
	withConfirmer(t, confirmer)

	out, err := run(t, "set", "--api-url", url, "--execution", "besu.public.dappnode.eth", "--consensus", "teku.dnp.dappnode.eth")
	require.NoError(t, err)
	require.Contains(t, out, "staker configuration unchanged")

	persisted, err := st.Load(model.Mainnet)
	require.NoError(t, err)
	require.Equal(t, model.StakerSettings{}, persisted)
}

func TestSetRefusesBlockedVerdict(t *testing.T) {
	url, _ := startAPI(t)
	withConfirmer(t, mocks.NewMockConfirmer(t))

	_, err := run(t, "set", "--api-url", url)
	require.ErrorContains(t, err, model.ReasonNoChanges)

	_, err = run(t, "set", "--api-url", url, "--execution", "geth.dnp.dappnode.eth")
	require.ErrorContains(t, err, model.ReasonConsensusMissing)

	_, err = run(t, "set", "--api-url", url, "--execution", "geth.dnp.dappnode.eth",
		"--consensus", "prysm.dnp.dappnode.eth", "--fee-recipient", "0xnope")
	require.ErrorContains(t, err, model.FeeRecipientInvalid)

	_, err = run(t, "set", "--api-url", url, "--network", "gnosis", "--mevboost")
	require.ErrorContains(t, err, "mev-boost is not available")
}

func TestClientCommandsValidateFlags(t *testing.T) {
	_, err := run(t, "get", "--network", "ropsten")
	require.Error(t, err)

	_, err = run(t, "get", "--api-url", "::not a url::")
	require.Error(t, err)

	_, err = run(t, "serve", "--datadir", t.TempDir(), "--listen", "no-port")
	require.Error(t, err)
}
