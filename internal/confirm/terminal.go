// Package confirm asks the operator to confirm staker changes on a terminal.
package confirm

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/manifoldco/promptui"
	"github.com/rs/zerolog"
	"github.com/thep2p/go-staker-manager/internal/staker"
)

// cancelLabel is the option offered next to the prompt's own buttons.
const cancelLabel = "Cancel"

// selectRunner is a variable for testing purposes to allow mocking select.Run()
var selectRunner = func(sel promptui.Select) (int, string, error) {
	return sel.Run()
}

// Terminal is a staker.Confirmer that shows prompts as a select list.
type Terminal struct {
	logger zerolog.Logger
	out    io.Writer
}

var _ staker.Confirmer = (*Terminal)(nil)

// NewTerminal creates a Terminal that prints prompt texts to out.
func NewTerminal(logger zerolog.Logger, out io.Writer) *Terminal {
	return &Terminal{
		logger: logger.With().Str("component", "terminal-confirmer").Logger(),
		out:    out,
	}
}

// Confirm shows p and waits for a choice. Picking one of the prompt's
// buttons confirms; cancelling or interrupting dismisses.
func (c *Terminal) Confirm(ctx context.Context, p staker.Prompt) (staker.ConfirmResult, error) {
	if err := ctx.Err(); err != nil {
		return staker.Dismissed, err
	}
	if len(p.Buttons) == 0 {
		return staker.Dismissed, fmt.Errorf("prompt %q has no action", p.Title)
	}

	if _, err := fmt.Fprintf(c.out, "\n%s\n\n%s\n\n", p.Title, p.Text); err != nil {
		return staker.Dismissed, fmt.Errorf("write prompt: %w", err)
	}

	items := make([]string, 0, len(p.Buttons)+1)
	for _, b := range p.Buttons {
		items = append(items, b.Label)
	}
	items = append(items, cancelLabel)

	idx, choice, err := selectRunner(promptui.Select{
		Label: p.Title,
		Items: items,
	})
	if errors.Is(err, promptui.ErrInterrupt) || errors.Is(err, promptui.ErrEOF) || errors.Is(err, promptui.ErrAbort) {
		c.logger.Debug().Str("prompt", p.Title).Msg("prompt interrupted")
		return staker.Dismissed, nil
	}
	if err != nil {
		return staker.Dismissed, fmt.Errorf("prompt %q: %w", p.Title, err)
	}

	if idx >= len(p.Buttons) {
		c.logger.Debug().Str("prompt", p.Title).Msg("prompt cancelled")
		return staker.Dismissed, nil
	}
	c.logger.Debug().Str("prompt", p.Title).Str("choice", choice).Msg("prompt confirmed")
	return staker.Confirmed, nil
}
