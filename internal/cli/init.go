package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/botirk38/rivet/internal/actions"
	"github.com/botirk38/rivet/internal/config"
)

// newInitCmd wires the init flags into actions.InitAction.
func newInitCmd() *cobra.Command {
	var (
		style string
		model string
	)

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Pick the commit style and model for this repository",
		Long: `Pick the commit style and model for this repository.

The choices are stored inside .git and never committed. Running init again
overwrites the previous choices.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, err := newCommandContext(cmd)
			if err != nil {
				return err
			}
			defer func() { _ = ctx.Close() }()

			return actions.InitAction(ctx, actions.InitOptions{
				Style: style,
				Model: model,
			})
		},
	}

	cmd.Flags().StringVar(&style, "style", "", "Commit style ("+strings.Join(config.ValidStyles, ", ")+"), skipping the prompt")
	cmd.Flags().StringVar(&model, "model", "", "Model name, skipping the prompt")

	return cmd
}
