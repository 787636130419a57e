package refine_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/botirk38/rivet/internal/refine"
	"github.com/botirk38/rivet/internal/tui"
)

// scriptedPrompter replays canned answers and records the prompts it was
// asked.
type scriptedPrompter struct {
	confirms   []bool
	confirmErr error
	inputs     []string
	inputErr   error

	confirmPrompts []string
	inputPrompts   []string
}

func (p *scriptedPrompter) Confirm(prompt string, defaultValue bool) (bool, error) {
	p.confirmPrompts = append(p.confirmPrompts, prompt)
	if p.confirmErr != nil && len(p.confirms) == 0 {
		return false, p.confirmErr
	}
	if len(p.confirms) == 0 {
		return defaultValue, nil
	}
	answer := p.confirms[0]
	p.confirms = p.confirms[1:]
	return answer, nil
}

func (p *scriptedPrompter) TextInput(prompt, defaultValue string) (string, error) {
	p.inputPrompts = append(p.inputPrompts, prompt)
	if p.inputErr != nil && len(p.inputs) == 0 {
		return "", p.inputErr
	}
	if len(p.inputs) == 0 {
		return defaultValue, nil
	}
	answer := p.inputs[0]
	p.inputs = p.inputs[1:]
	return answer, nil
}

func quietSplog() *tui.Splog {
	splog := tui.NewSplog()
	splog.SetQuiet(true)
	return splog
}

func TestRunAutoAccept(t *testing.T) {
	t.Parallel()

	prompter := &scriptedPrompter{}
	displayed := []string{}
	regenerated := 0

	outcome := refine.Run("feat: initial", refine.Options[string]{
		Display:    func(value string) { displayed = append(displayed, value) },
		Regenerate: func(string) (string, error) { regenerated++; return "", nil },
		AutoAccept: true,
		Prompter:   prompter,
		Splog:      quietSplog(),
	})

	require.True(t, outcome.Accepted)
	require.Equal(t, "feat: initial", outcome.Value)
	require.Equal(t, []string{"feat: initial"}, displayed)
	require.Zero(t, regenerated)
	require.Empty(t, prompter.confirmPrompts, "auto-accept must not prompt")
}

func TestRunAcceptOnConfirm(t *testing.T) {
	t.Parallel()

	prompter := &scriptedPrompter{confirms: []bool{true}}

	outcome := refine.Run("feat: initial", refine.Options[string]{
		Display:       func(string) {},
		Regenerate:    func(string) (string, error) { return "", fmt.Errorf("unreachable") },
		ConfirmPrompt: "Use this commit message?",
		Prompter:      prompter,
		Splog:         quietSplog(),
	})

	require.True(t, outcome.Accepted)
	require.Equal(t, "feat: initial", outcome.Value)
	require.Equal(t, []string{"Use this commit message?"}, prompter.confirmPrompts)
	require.Empty(t, prompter.inputPrompts)
}

func TestRunRegenerateThenAccept(t *testing.T) {
	t.Parallel()

	prompter := &scriptedPrompter{
		confirms: []bool{false, true},
		inputs:   []string{"mention the config change"},
	}
	displayed := []string{}
	var gotFeedback string

	outcome := refine.Run("v1", refine.Options[string]{
		Display: func(value string) { displayed = append(displayed, value) },
		Regenerate: func(feedback string) (string, error) {
			gotFeedback = feedback
			return "v2", nil
		},
		ConfirmPrompt: "Accept?",
		Prompter:      prompter,
		Splog:         quietSplog(),
	})

	require.True(t, outcome.Accepted)
	require.Equal(t, "v2", outcome.Value)
	require.Equal(t, "mention the config change", gotFeedback)
	require.Equal(t, []string{"v1", "v2"}, displayed)
}

func TestRunEmptyFeedbackCancels(t *testing.T) {
	t.Parallel()

	for _, feedback := range []string{"", "   ", "\t\n"} {
		prompter := &scriptedPrompter{
			confirms: []bool{false},
			inputs:   []string{feedback},
		}
		regenerated := 0

		outcome := refine.Run("v1", refine.Options[string]{
			Display:    func(string) {},
			Regenerate: func(string) (string, error) { regenerated++; return "v2", nil },
			Prompter:   prompter,
			Splog:      quietSplog(),
		})

		require.False(t, outcome.Accepted, "feedback %q should cancel", feedback)
		require.Equal(t, "v1", outcome.Value)
		require.Zero(t, regenerated)
	}
}

func TestRunRegenerateFailureKeepsValue(t *testing.T) {
	t.Parallel()

	prompter := &scriptedPrompter{
		confirms: []bool{false, true},
		inputs:   []string{"try harder"},
	}
	displayed := []string{}

	outcome := refine.Run("v1", refine.Options[string]{
		Display: func(value string) { displayed = append(displayed, value) },
		Regenerate: func(string) (string, error) {
			return "", fmt.Errorf("model output unusable")
		},
		Prompter: prompter,
		Splog:    quietSplog(),
	})

	// Failure keeps the prior value, redisplays it, and re-prompts.
	require.True(t, outcome.Accepted)
	require.Equal(t, "v1", outcome.Value)
	require.Equal(t, []string{"v1", "v1"}, displayed)
	require.Len(t, prompter.confirmPrompts, 2)
}

func TestRunInteractiveAbort(t *testing.T) {
	t.Parallel()

	t.Run("at the confirm prompt", func(t *testing.T) {
		t.Parallel()

		prompter := &scriptedPrompter{confirmErr: tui.ErrInteractiveDisabled}

		outcome := refine.Run("v1", refine.Options[string]{
			Display:    func(string) {},
			Regenerate: func(string) (string, error) { return "v2", nil },
			Prompter:   prompter,
			Splog:      quietSplog(),
		})

		require.False(t, outcome.Accepted)
		require.Equal(t, "v1", outcome.Value)
	})

	t.Run("at the feedback prompt", func(t *testing.T) {
		t.Parallel()

		prompter := &scriptedPrompter{
			confirms: []bool{false},
			inputErr: fmt.Errorf("canceled"),
		}

		outcome := refine.Run("v1", refine.Options[string]{
			Display:    func(string) {},
			Regenerate: func(string) (string, error) { return "v2", nil },
			Prompter:   prompter,
			Splog:      quietSplog(),
		})

		require.False(t, outcome.Accepted)
		require.Equal(t, "v1", outcome.Value)
	})
}
