package cli

import (
	"github.com/spf13/cobra"

	"github.com/botirk38/rivet/internal/actions"
)

// newPRCmd wires the pr flags into actions.PRAction.
func newPRCmd() *cobra.Command {
	var (
		base   string
		draft  bool
		dryRun bool
		noPush bool
		web    bool
		yes    bool
	)

	cmd := &cobra.Command{
		Use:   "pr",
		Short: "Generate a pull request description for the current branch and open the PR",
		Long: `Generate a pull request description for the current branch and open the PR.

Rivet analyzes the commits and changes ahead of the base branch, drafts a
title, body, and labels, and shows them for review. On acceptance it pushes
the branch and opens the pull request on GitHub.

The GitHub token is read from GITHUB_TOKEN, falling back to 'gh auth token'.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, err := newCommandContext(cmd)
			if err != nil {
				return err
			}
			defer func() { _ = ctx.Close() }()

			return actions.PRAction(ctx, actions.PROptions{
				Base:   base,
				Draft:  draft,
				DryRun: dryRun,
				NoPush: noPush,
				Web:    web,
				Yes:    yes,
			})
		},
	}

	cmd.Flags().StringVarP(&base, "base", "b", "", "Base branch for the pull request (default: detected from the remote)")
	cmd.Flags().BoolVarP(&draft, "draft", "d", false, "Open the pull request as a draft")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Show the generated description without pushing or creating anything")
	cmd.Flags().BoolVar(&noPush, "no-push", false, "Skip pushing the branch before opening the pull request")
	cmd.Flags().BoolVarP(&web, "web", "w", false, "Open the created pull request in the browser")
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Accept the generated description without prompting")

	return cmd
}
