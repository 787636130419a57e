package cli

import (
	"github.com/spf13/cobra"
)

// newVersionCmd reports the build metadata stamped in at link time.
func newVersionCmd(version, commit, date string) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the rivet version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			cmd.Printf("rivet %s (commit %s, built %s)\n", version, commit, date)
		},
	}
}
