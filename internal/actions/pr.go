package actions

import (
	"fmt"

	"github.com/botirk38/rivet/internal/ai"
	"github.com/botirk38/rivet/internal/config"
	"github.com/botirk38/rivet/internal/git"
	"github.com/botirk38/rivet/internal/github"
	"github.com/botirk38/rivet/internal/refine"
	"github.com/botirk38/rivet/internal/runtime"
	"github.com/botirk38/rivet/internal/tui"
)

// PROptions contains options for the pr command
type PROptions struct {
	Base   string
	Draft  bool
	DryRun bool
	NoPush bool
	Web    bool
	Yes    bool

	// Client overrides the GitHub API client in tests
	Client github.Client

	// Prompter overrides the refinement prompts in non-interactive tests
	Prompter refine.Prompter
}

// PRAction generates a pull request description for the current branch, runs
// it through the refinement loop, and opens the PR on acceptance.
func PRAction(ctx *runtime.Context, opts PROptions) error {
	splog := ctx.Splog

	branch, err := git.GetCurrentBranch()
	if err != nil {
		return err
	}

	base := resolveBaseBranch(ctx.RepoRoot, opts.Base)
	if branch == base {
		return fmt.Errorf("already on %s, create a feature branch first", base)
	}

	ahead, err := git.CommitCountAhead(base)
	if err != nil {
		return err
	}
	if ahead == 0 {
		return fmt.Errorf("no commits ahead of %s, nothing to open a pull request for", base)
	}

	client := opts.Client
	if client == nil {
		client, err = github.NewRealClient(ctx.Context)
		if err != nil {
			return fmt.Errorf("failed to create GitHub client: %w", err)
		}
	}

	// Bail out early when the branch already has an open PR
	existing, err := client.GetPullRequestByBranch(ctx.Context, branch)
	if err != nil {
		splog.Debug("Existing PR lookup failed: %v", err)
	} else if existing != nil {
		splog.Warn("Branch %s already has an open pull request: %s", branch, existing.HTMLURL)
		return nil
	}

	// Gather the change context for the analysis phase
	stats, err := git.GetBranchStats(base)
	if err != nil {
		return fmt.Errorf("failed to collect branch stats: %w", err)
	}

	commits, err := git.GetBranchCommits(ctx.RepoRoot, base)
	if err != nil {
		return fmt.Errorf("failed to list branch commits: %w", err)
	}
	subjects := make([]string, 0, len(commits))
	for _, commit := range commits {
		subjects = append(subjects, commit.Subject)
	}

	template, _ := git.FindPRTemplate(ctx.RepoRoot)

	generator, err := newGenerator(ctx)
	if err != nil {
		return err
	}

	run, err := generator.GeneratePRDescription(ctx.Context, ai.AnalysisContext{
		Stats:      stats.Files,
		Branch:     branch,
		Commits:    subjects,
		PRTemplate: template,
	})
	if err != nil {
		return err
	}
	defer func() { _ = run.Close() }()

	// Let the user refine the description before anything leaves the machine
	outcome := refine.Run(run.Payload, refine.Options[ai.PRPayload]{
		Display: func(payload ai.PRPayload) {
			tui.DisplayPRDescription(splog, payload.Title, payload.Body, payload.Labels)
		},
		Regenerate: func(feedback string) (ai.PRPayload, error) {
			return run.Regenerate(ctx.Context, feedback)
		},
		ConfirmPrompt: "Open this pull request?",
		AutoAccept:    shouldAutoAccept(opts.Yes, opts.Prompter),
		Prompter:      resolvePrompter(opts.Prompter),
		Splog:         splog,
	})
	if !outcome.Accepted {
		splog.Info("Pull request canceled.")
		return nil
	}

	if opts.DryRun {
		splog.Info("Dry run, nothing pushed or created.")
		return nil
	}

	if !opts.NoPush {
		splog.Info("Pushing %s to origin...", branch)
		if err := git.Push(ctx.Context, branch); err != nil {
			return fmt.Errorf("failed to push %s: %w", branch, err)
		}
	}

	pr, err := client.CreatePullRequest(ctx.Context, github.CreatePROptions{
		Title:  outcome.Value.Title,
		Body:   outcome.Value.Body,
		Head:   branch,
		Base:   base,
		Draft:  opts.Draft,
		Labels: outcome.Value.Labels,
	})
	if err != nil {
		return err
	}

	splog.Info("Created pull request #%d: %s", pr.Number, pr.HTMLURL)

	// Open in browser if requested
	if opts.Web && pr.HTMLURL != "" {
		if err := openBrowser(pr.HTMLURL); err != nil {
			// Log error but don't fail the operation
			splog.Debug("Failed to open browser: %v", err)
		}
	}

	return nil
}

// resolveBaseBranch picks the PR base: an explicit flag wins, then the
// configured baseBranch, then detection from the remote.
func resolveBaseBranch(repoRoot, flag string) string {
	if flag != "" {
		return flag
	}

	if configured, err := config.GetBaseBranch(repoRoot); err == nil && configured != "" {
		return configured
	}

	return git.DetectBaseBranch()
}
