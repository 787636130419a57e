// Package refine implements the artifact refinement loop shared by the
// commit and pr commands: display the artifact, confirm, collect feedback,
// regenerate, until the user accepts or cancels.
package refine

import (
	"strings"

	"github.com/botirk38/rivet/internal/tui"
)

// Prompter asks the user questions. internal/tui provides the interactive
// implementation; tests substitute a script.
type Prompter interface {
	Confirm(prompt string, defaultValue bool) (bool, error)
	TextInput(prompt, defaultValue string) (string, error)
}

// feedbackPrompt is the free-text question shown after a decline.
const feedbackPrompt = "What should change? (leave empty to cancel)"

// Options configures one refinement loop run.
type Options[T any] struct {
	// Display renders the current artifact.
	Display func(T)

	// Regenerate produces a revised artifact from user feedback. Errors are
	// absorbed: the loop warns, keeps the prior value, and re-prompts.
	Regenerate func(feedback string) (T, error)

	// ConfirmPrompt is the acceptance question, answered yes by default.
	ConfirmPrompt string

	// AutoAccept accepts the initial value immediately without prompting.
	// Set for --yes and for non-interactive stdin.
	AutoAccept bool

	Prompter Prompter
	Splog    *tui.Splog
}

// Outcome is the terminal state of a refinement loop.
type Outcome[T any] struct {
	Accepted bool
	Value    T
}

// Run displays the artifact and loops on confirm, feedback, and regenerate
// until the user accepts or cancels. Empty feedback cancels; an interactive
// abort at any prompt ends the loop as not accepted. The current value is
// always carried in the outcome, accepted or not.
func Run[T any](initial T, opts Options[T]) Outcome[T] {
	current := initial

	for {
		opts.Display(current)

		if opts.AutoAccept {
			return Outcome[T]{Accepted: true, Value: current}
		}

		accepted, err := opts.Prompter.Confirm(opts.ConfirmPrompt, true)
		if err != nil {
			return Outcome[T]{Accepted: false, Value: current}
		}
		if accepted {
			return Outcome[T]{Accepted: true, Value: current}
		}

		feedback, err := opts.Prompter.TextInput(feedbackPrompt, "")
		if err != nil {
			return Outcome[T]{Accepted: false, Value: current}
		}
		if strings.TrimSpace(feedback) == "" {
			return Outcome[T]{Accepted: false, Value: current}
		}

		revised, err := opts.Regenerate(feedback)
		if err != nil {
			opts.Splog.Warn("Regeneration failed, keeping the previous version: %v", err)
			continue
		}
		current = revised
	}
}
