package cli

import (
	"github.com/spf13/cobra"

	"github.com/botirk38/rivet/internal/actions"
)

// newCommitCmd wires the commit flags into actions.CommitAction.
func newCommitCmd() *cobra.Command {
	var (
		all    bool
		amend  bool
		push   bool
		dryRun bool
		yes    bool
	)

	cmd := &cobra.Command{
		Use:   "commit",
		Short: "Generate a commit message for the staged changes and commit them",
		Long: `Generate a commit message for the staged changes and commit them.

Rivet analyzes the staged diff, drafts a message in the configured commit
style, and shows it for review. You can accept it, cancel, or describe what
should change and get a revised message.

If nothing is staged you will be asked whether to stage your pending changes.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, err := newCommandContext(cmd)
			if err != nil {
				return err
			}
			defer func() { _ = ctx.Close() }()

			return actions.CommitAction(ctx, actions.CommitOptions{
				All:    all,
				Amend:  amend,
				Push:   push,
				DryRun: dryRun,
				Yes:    yes,
			})
		},
	}

	cmd.Flags().BoolVarP(&all, "all", "a", false, "Stage all changes before committing")
	cmd.Flags().BoolVar(&amend, "amend", false, "Amend the previous commit instead of creating a new one")
	cmd.Flags().BoolVarP(&push, "push", "p", false, "Push the current branch after committing")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Show the generated message without committing")
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Accept the generated message without prompting")

	return cmd
}
