// Package actions provides the high-level flows behind the rivet commands:
// generating commit messages, drafting pull requests, and initializing
// repository configuration.
package actions

import (
	"github.com/botirk38/rivet/internal/ai"
	"github.com/botirk38/rivet/internal/config"
	"github.com/botirk38/rivet/internal/refine"
	"github.com/botirk38/rivet/internal/runtime"
	"github.com/botirk38/rivet/internal/tui"
)

// generatorOptions assembles the model and prompt settings for a run from the
// repository configuration.
func generatorOptions(ctx *runtime.Context) (ai.GeneratorOptions, error) {
	style, err := config.GetCommitStyle(ctx.RepoRoot)
	if err != nil {
		return ai.GeneratorOptions{}, err
	}

	commitPrompt, err := config.GetCommitSystemPrompt(ctx.RepoRoot)
	if err != nil {
		return ai.GeneratorOptions{}, err
	}

	prPrompt, err := config.GetPRSystemPrompt(ctx.RepoRoot)
	if err != nil {
		return ai.GeneratorOptions{}, err
	}

	model, err := config.GetModel(ctx.RepoRoot)
	if err != nil {
		return ai.GeneratorOptions{}, err
	}

	return ai.GeneratorOptions{
		Model:              model,
		WorkingDir:         ctx.RepoRoot,
		CommitStyle:        style,
		CommitSystemPrompt: commitPrompt,
		PRSystemPrompt:     prPrompt,
	}, nil
}

// newGenerator builds the two-phase generator wired to the context's agent
// and terminal output.
func newGenerator(ctx *runtime.Context) (*ai.Generator, error) {
	opts, err := generatorOptions(ctx)
	if err != nil {
		return nil, err
	}
	return ai.NewGenerator(ctx.Agent, ctx.Splog, tui.NewPhaseUI(ctx.Splog), opts), nil
}

// resolvePrompter returns the override when set, otherwise the terminal prompts.
func resolvePrompter(override refine.Prompter) refine.Prompter {
	if override != nil {
		return override
	}
	return tui.InteractivePrompter{}
}

// shouldAutoAccept reports whether the refinement loop should skip its
// prompts: an explicit --yes, or a non-interactive stdin with no prompter
// scripted to answer.
func shouldAutoAccept(yes bool, prompter refine.Prompter) bool {
	if yes {
		return true
	}
	if prompter != nil {
		return false
	}
	return !tui.IsInteractive()
}
