package staker

import (
	"context"
	"errors"
	"fmt"

	"github.com/thep2p/go-staker-manager/internal/model"
)

// ErrNotLoaded is returned by Session operations that need the current configuration.
var ErrNotLoaded = errors.New("staker configuration not loaded")

// Session holds the staker page state of one network: the applied
// configuration and the one being edited. The verdict is recomputed on
// every edit.
//
// A Session is not safe for concurrent use.
type Session struct {
	orchestrator *Orchestrator

	get             *model.StakerConfigGet
	current         model.StakerConfig
	proposed        model.StakerConfig
	feeRecipientErr string
	verdict         model.ChangeVerdict
}

// NewSession creates a session driven by orchestrator.
func NewSession(orchestrator *Orchestrator) *Session {
	return &Session{orchestrator: orchestrator}
}

// Load fetches the current configuration and resets the proposal to it.
func (s *Session) Load(ctx context.Context) error {
	get, err := s.orchestrator.Refresh(ctx)
	if err != nil {
		return err
	}
	s.reset(get)
	return nil
}

func (s *Session) reset(get model.StakerConfigGet) {
	s.get = &get
	s.current = CurrentFromGet(get)
	s.proposed = s.current
	s.feeRecipientErr = ValidateFeeRecipient(s.proposed.FeeRecipient)
	s.recompute()
}

// View returns the last backend view.
func (s *Session) View() (model.StakerConfigGet, error) {
	if s.get == nil {
		return model.StakerConfigGet{}, ErrNotLoaded
	}
	return *s.get, nil
}

// Current returns the applied configuration.
func (s *Session) Current() model.StakerConfig { return s.current }

// Proposed returns the configuration being edited.
func (s *Session) Proposed() model.StakerConfig { return s.proposed }

// Verdict returns whether the proposal can be applied.
func (s *Session) Verdict() model.ChangeVerdict { return s.verdict }

// FeeRecipientError returns the validation message of the proposed fee recipient.
func (s *Session) FeeRecipientError() string { return s.feeRecipientErr }

// LaunchpadAvailable reports whether the guided setup may be started.
func (s *Session) LaunchpadAvailable() bool {
	return s.get != nil && AllItemsOk(*s.get)
}

// SelectClient proposes dnpName for a client role. An empty name deselects
// the role. Only candidates of the loaded view can be selected.
func (s *Session) SelectClient(role model.Role, dnpName string) error {
	if s.get == nil {
		return ErrNotLoaded
	}

	var item *model.StakerItem
	if dnpName != "" {
		var found bool
		item, found = s.candidate(role, dnpName)
		if !found {
			return fmt.Errorf("%s is not a %s candidate on %s", dnpName, role, s.get.Network)
		}
	}

	switch role {
	case model.Execution:
		s.proposed.ExecutionClient = item
	case model.Consensus:
		s.proposed.ConsensusClient = item
	case model.MevBoost:
		s.proposed.MevBoost = item
	case model.Signer:
		s.proposed.EnableWeb3signer = item != nil
	default:
		return fmt.Errorf("unknown role %q", role)
	}
	s.recompute()
	return nil
}

// EnableWeb3signer proposes turning the remote signer on or off.
func (s *Session) EnableWeb3signer(enabled bool) {
	s.proposed.EnableWeb3signer = enabled
	s.recompute()
}

// SetFeeRecipient proposes a new default fee recipient and validates it.
func (s *Session) SetFeeRecipient(addr string) {
	s.proposed.FeeRecipient = addr
	s.feeRecipientErr = ValidateFeeRecipient(addr)
	s.recompute()
}

// Apply submits the proposal through the orchestrator. A proposal whose
// verdict is blocked is not submitted. On return the session reflects the
// re-fetched configuration when one is available.
func (s *Session) Apply(ctx context.Context, isLaunchpad bool) ReqStatus {
	if s.get == nil {
		return ReqStatus{Err: ErrNotLoaded}
	}
	if !s.verdict.IsAllowed {
		return ReqStatus{Err: fmt.Errorf("cannot apply changes: %s", s.verdict.Reason)}
	}

	status := s.orchestrator.ApplyConfig(ctx, s.proposed, isLaunchpad)
	if status.Current != nil {
		s.reset(*status.Current)
	}
	return status
}

func (s *Session) candidate(role model.Role, dnpName string) (*model.StakerItem, bool) {
	var items []*model.StakerItem
	switch role {
	case model.Execution:
		items = s.get.ExecutionClients
	case model.Consensus:
		items = s.get.ConsensusClients
	case model.MevBoost:
		items = []*model.StakerItem{s.get.MevBoost}
	case model.Signer:
		items = []*model.StakerItem{s.get.Web3Signer}
	}
	for _, item := range items {
		if item != nil && item.DnpName == dnpName {
			return item, true
		}
	}
	return nil, false
}

func (s *Session) recompute() {
	s.verdict = GetChanges(s.current, s.proposed, s.feeRecipientErr)
}
