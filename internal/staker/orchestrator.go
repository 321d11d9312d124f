package staker

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/rs/zerolog"
	"github.com/thep2p/go-staker-manager/internal/metrics"
	"github.com/thep2p/go-staker-manager/internal/model"
)

// ErrConfirmationDismissed is recorded when the operator dismisses an
// apply confirmation. Nothing is submitted in that case.
var ErrConfirmationDismissed = errors.New("staker configuration not confirmed")

// Backend is the staker API consumed by the orchestrator.
type Backend interface {
	// StakerConfigGet returns the current staker view for network.
	StakerConfigGet(ctx context.Context, network model.Network) (model.StakerConfigGet, error)

	// StakerConfigSet applies cfg.
	StakerConfigSet(ctx context.Context, cfg model.StakerConfig) error
}

// ConfirmResult is the outcome of a confirmation prompt.
type ConfirmResult int

const (
	Dismissed ConfirmResult = iota
	Confirmed
)

// Button is an actionable choice of a prompt.
type Button struct {
	Label string
}

// Prompt is a single-choice confirmation shown to the operator.
type Prompt struct {
	Title   string
	Text    string
	Buttons []Button
}

// Confirmer shows a prompt and waits for the operator.
type Confirmer interface {
	// Confirm blocks until the operator clicks the button or dismisses the prompt.
	// Implementations must return when ctx is done.
	Confirm(ctx context.Context, p Prompt) (ConfirmResult, error)
}

// ReqStatus is the displayable outcome of an apply flow.
type ReqStatus struct {
	// Applied is true when the backend accepted the configuration.
	Applied bool
	// Err is the first error of the flow, nil on success.
	Err error
	// Current is the staker view re-fetched after submission, nil if the
	// flow stopped before submitting or the re-fetch failed.
	Current *model.StakerConfigGet
}

// Orchestrator runs the apply flow of one network: confirmations, then
// submission, then an unconditional re-fetch. Steps never overlap.
type Orchestrator struct {
	logger    zerolog.Logger
	network   model.Network
	backend   Backend
	confirmer Confirmer
	metrics   *metrics.Metrics

	// mu serializes apply flows; current is only replaced under it.
	mu      sync.Mutex
	current *model.StakerConfigGet
}

// NewOrchestrator creates an orchestrator for network. m may be nil.
func NewOrchestrator(logger zerolog.Logger, network model.Network, backend Backend, confirmer Confirmer, m *metrics.Metrics) *Orchestrator {
	return &Orchestrator{
		logger:    logger.With().Str("component", "staker-orchestrator").Str("network", string(network)).Logger(),
		network:   network,
		backend:   backend,
		confirmer: confirmer,
		metrics:   m,
	}
}

// ApplyConfig applies proposed.
//
// Outside the launchpad flow the operator must confirm the configuration
// and then acknowledge the disclaimer; a dismissal aborts the flow before
// anything is submitted. The submitted items carry no metadata, and the
// launchpad flow always enables the web3signer. Once submission settles,
// successful or not, the current configuration is fetched again.
//
// Errors are reported in the returned ReqStatus, never returned or panicked.
func (o *Orchestrator) ApplyConfig(ctx context.Context, proposed model.StakerConfig, isLaunchpad bool) ReqStatus {
	o.mu.Lock()
	defer o.mu.Unlock()

	o.metrics.Inc(metrics.ApplyAttempts, string(o.network))
	lg := o.logger.With().Bool("launchpad", isLaunchpad).Logger()

	if !isLaunchpad {
		if err := o.confirmAll(ctx); err != nil {
			lg.Info().Err(err).Msg("apply aborted before submission")
			o.metrics.Inc(metrics.ApplyDismissed, string(o.network))
			return ReqStatus{Err: err}
		}
	}

	submitted := proposed.WithoutMetadata()
	submitted.Network = o.network
	if isLaunchpad {
		submitted.EnableWeb3signer = true
	}

	var status ReqStatus
	lg.Info().Msg("setting new staker configuration")
	if err := o.backend.StakerConfigSet(ctx, submitted); err != nil {
		lg.Error().Err(err).Msg("error setting new staker configuration")
		o.metrics.Inc(metrics.ApplyFailed, string(o.network), "submit")
		status.Err = fmt.Errorf("set staker config: %w", err)
	} else {
		lg.Info().Msg("successfully set new staker configuration")
		o.metrics.Inc(metrics.ApplySucceeded, string(o.network))
		status.Applied = true
	}

	// runs even after a failed submission so the caller never shows stale state
	get, err := o.backend.StakerConfigGet(ctx, o.network)
	if err != nil {
		lg.Error().Err(err).Msg("error loading staker configuration")
		o.metrics.Inc(metrics.ApplyFailed, string(o.network), "refresh")
		if status.Err == nil {
			status.Err = fmt.Errorf("get staker config: %w", err)
		}
		return status
	}

	o.current = &get
	status.Current = &get
	lg.Debug().Msg("reloaded staker configuration")
	return status
}

// Refresh fetches the current configuration from the backend.
func (o *Orchestrator) Refresh(ctx context.Context) (model.StakerConfigGet, error) {
	o.mu.Lock()
	defer o.mu.Unlock()

	get, err := o.backend.StakerConfigGet(ctx, o.network)
	if err != nil {
		return model.StakerConfigGet{}, fmt.Errorf("get staker config: %w", err)
	}
	o.current = &get
	return get, nil
}

// Current returns the last configuration fetched, if any.
func (o *Orchestrator) Current() (model.StakerConfigGet, bool) {
	o.mu.Lock()
	defer o.mu.Unlock()

	if o.current == nil {
		return model.StakerConfigGet{}, false
	}
	return *o.current, true
}

func (o *Orchestrator) confirmAll(ctx context.Context) error {
	prompts := []Prompt{
		{
			Title:   model.PromptStakerConfigTitle,
			Text:    model.PromptStakerConfigText,
			Buttons: []Button{{Label: model.PromptContinueLabel}},
		},
		{
			Title:   model.PromptDisclaimerTitle,
			Text:    model.PromptDisclaimerText,
			Buttons: []Button{{Label: model.PromptContinueLabel}},
		},
	}

	for _, p := range prompts {
		res, err := o.confirmer.Confirm(ctx, p)
		if err != nil {
			return fmt.Errorf("confirm %q: %w", p.Title, err)
		}
		if res != Confirmed {
			return fmt.Errorf("%q: %w", p.Title, ErrConfirmationDismissed)
		}
	}
	return nil
}
