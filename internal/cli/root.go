// Package cli wires the rivet commands to cobra.
package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/botirk38/rivet/internal/runtime"
)

// NewRootCmd creates the root cobra command
func NewRootCmd(version, commit, date string) *cobra.Command {
	var debug bool

	rootCmd := &cobra.Command{
		Use:   "rivet",
		Short: "Rivet writes commit messages and pull request descriptions from your changes",
		Long: `Rivet analyzes your changes with the Claude agent and writes commit
messages and pull request descriptions that match your repository's style.

Run 'rivet init' once per repository to pick a commit style, then 'rivet
commit' with staged changes or 'rivet pr' on a feature branch.`,
		SilenceUsage: true,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			if debug {
				os.Setenv("DEBUG", "1")
			}
		},
	}

	rootCmd.PersistentFlags().BoolP("quiet", "q", false, "Suppress informational output")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Show debug output")

	rootCmd.AddCommand(newCommitCmd())
	rootCmd.AddCommand(newPRCmd())
	rootCmd.AddCommand(newInitCmd())
	rootCmd.AddCommand(newConfigCmd())
	rootCmd.AddCommand(newVersionCmd(version, commit, date))

	return rootCmd
}

// newCommandContext builds the runtime context for a command invocation and
// applies the persistent output flags.
func newCommandContext(cmd *cobra.Command) (*runtime.Context, error) {
	ctx, err := runtime.GetContext(cmd.Context())
	if err != nil {
		return nil, err
	}

	if quiet, _ := cmd.Flags().GetBool("quiet"); quiet {
		ctx.Splog.SetQuiet(true)
	}

	return ctx, nil
}
