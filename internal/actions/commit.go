package actions

import (
	"fmt"

	"github.com/botirk38/rivet/internal/ai"
	"github.com/botirk38/rivet/internal/config"
	riveterrors "github.com/botirk38/rivet/internal/errors"
	"github.com/botirk38/rivet/internal/git"
	"github.com/botirk38/rivet/internal/refine"
	"github.com/botirk38/rivet/internal/runtime"
	"github.com/botirk38/rivet/internal/tui"
)

// CommitOptions contains options for the commit command
type CommitOptions struct {
	All    bool
	Amend  bool
	Push   bool
	DryRun bool
	Yes    bool

	// Prompter overrides the refinement prompts in non-interactive tests
	Prompter refine.Prompter
}

// CommitAction generates a commit message for the staged changes, runs it
// through the refinement loop, and commits on acceptance.
func CommitAction(ctx *runtime.Context, opts CommitOptions) error {
	splog := ctx.Splog

	if opts.All {
		if err := git.StageAll(); err != nil {
			return fmt.Errorf("failed to stage changes: %w", err)
		}
	}

	if err := ensureStagedChanges(); err != nil {
		return err
	}

	branch, err := git.GetCurrentBranch()
	if err != nil {
		// Detached HEAD, the analysis prompt renders a placeholder
		branch = ""
	}

	// Gather the change context for the analysis phase
	analysisCtx := ai.AnalysisContext{Branch: branch}
	if stats, statsErr := git.GetStagedStats(); statsErr == nil {
		analysisCtx.Stats = stats.Files
	} else {
		// Numstat parsing can fail on exotic trees, the raw diff still
		// carries enough to analyze
		diff, diffErr := git.GetStagedDiff()
		if diffErr != nil {
			return fmt.Errorf("failed to collect staged stats: %w", statsErr)
		}
		splog.Debug("Staged stats unavailable (%v), using the raw diff", statsErr)
		analysisCtx.Diff = diff
	}

	if opts.Amend {
		if previous, prevErr := git.GetLastCommitMessage(); prevErr == nil {
			analysisCtx.PreviousMessage = previous
		}
	}

	generator, err := newGenerator(ctx)
	if err != nil {
		return err
	}

	run, err := generator.GenerateCommitMessage(ctx.Context, analysisCtx)
	if err != nil {
		return err
	}
	defer func() { _ = run.Close() }()

	// Let the user refine the message before anything touches the repo
	outcome := refine.Run(run.Message, refine.Options[string]{
		Display: func(message string) {
			tui.DisplayCommitMessage(splog, message)
		},
		Regenerate: func(feedback string) (string, error) {
			return run.Regenerate(ctx.Context, feedback)
		},
		ConfirmPrompt: "Use this commit message?",
		AutoAccept:    shouldAutoAccept(opts.Yes, opts.Prompter),
		Prompter:      resolvePrompter(opts.Prompter),
		Splog:         splog,
	})
	if !outcome.Accepted {
		splog.Info("Commit canceled.")
		return nil
	}

	if opts.DryRun {
		splog.Info("Dry run, nothing committed.")
		return nil
	}

	if err := git.CommitWithOptions(git.CommitOptions{Message: outcome.Value, Amend: opts.Amend}); err != nil {
		return fmt.Errorf("failed to commit: %w", err)
	}

	if sha, err := git.GetHeadSHA(); err == nil && len(sha) >= 8 {
		splog.Info("Committed %s", sha[:8])
	} else {
		splog.Info("Committed.")
	}

	autoPush, err := config.GetAutoPush(ctx.RepoRoot)
	if err != nil {
		autoPush = false
	}

	if opts.Push || autoPush {
		if branch == "" {
			return fmt.Errorf("cannot push: not on a branch")
		}
		splog.Info("Pushing to origin/%s...", branch)
		if err := git.Push(ctx.Context, branch); err != nil {
			return fmt.Errorf("failed to push %s: %w", branch, err)
		}
	}

	return nil
}

// ensureStagedChanges verifies something is staged, offering to stage pending
// work when running interactively.
func ensureStagedChanges() error {
	hasStaged, err := git.HasStagedChanges()
	if err != nil {
		return fmt.Errorf("failed to check staged changes: %w", err)
	}
	if hasStaged {
		return nil
	}

	if tui.IsInteractive() {
		hasChanges, err := git.HasAnyChanges()
		if err != nil {
			return fmt.Errorf("failed to check for changes: %w", err)
		}

		if hasChanges {
			confirmed, err := tui.PromptConfirm("You have unstaged changes. Would you like to stage them?", false)
			if err == nil && confirmed {
				if err := git.StageAll(); err != nil {
					return fmt.Errorf("failed to stage changes: %w", err)
				}
				return nil
			}
		}
	}

	return fmt.Errorf("%w, stage files with 'git add' and rerun", riveterrors.ErrNoStagedChanges)
}
