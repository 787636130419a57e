package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/botirk38/rivet/internal/config"
	"github.com/botirk38/rivet/internal/git"
	"github.com/botirk38/rivet/internal/tui"
)

// newConfigCmd groups the config get, set, and list subcommands.
func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Read and write repository configuration",
		Long: `Read and write the repository's rivet configuration.

Examples:
  rivet config get commitStyle
  rivet config set commitStyle emoji
  rivet config set autoPush true
  rivet config list`,
	}

	cmd.AddCommand(newConfigGetCmd())
	cmd.AddCommand(newConfigSetCmd())
	cmd.AddCommand(newConfigListCmd())

	return cmd
}

// configRepoRoot resolves the repository root for config commands, which do
// not need the full runtime context.
func configRepoRoot() (string, error) {
	repoRoot, err := git.GetRepoRoot()
	if err != nil {
		return "", fmt.Errorf("not a git repository: %w", err)
	}
	return repoRoot, nil
}

func newConfigGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <key>",
		Short: "Get a configuration value",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			repoRoot, err := configRepoRoot()
			if err != nil {
				return err
			}

			value, err := config.Get(repoRoot, args[0])
			if err != nil {
				return err
			}

			cmd.Println(value)
			return nil
		},
	}
}

func newConfigSetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set <key> <value>",
		Short: "Set a configuration value",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			repoRoot, err := configRepoRoot()
			if err != nil {
				return err
			}

			key, value := args[0], args[1]
			if err := config.Set(repoRoot, key, value); err != nil {
				return err
			}

			splog := tui.NewSplog()
			splog.Info("Set %s to: %s", key, value)
			return nil
		},
	}
}

func newConfigListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all configuration values",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			repoRoot, err := configRepoRoot()
			if err != nil {
				return err
			}

			for _, key := range config.Keys() {
				value, err := config.Get(repoRoot, key)
				if err != nil {
					return err
				}
				cmd.Printf("%s=%s\n", key, value)
			}
			return nil
		},
	}
}
