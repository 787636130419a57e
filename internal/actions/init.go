package actions

import (
	"fmt"

	"github.com/AlecAivazis/survey/v2"

	"github.com/botirk38/rivet/internal/agent"
	"github.com/botirk38/rivet/internal/config"
	"github.com/botirk38/rivet/internal/runtime"
	"github.com/botirk38/rivet/internal/tui"
)

// InitOptions contains options for the init command
type InitOptions struct {
	// Style and Model skip the prompts when set (mostly for tests and
	// scripted setups)
	Style string
	Model string
}

// InitAction records the commit style and model for this repository.
func InitAction(ctx *runtime.Context, opts InitOptions) error {
	splog := ctx.Splog

	style := opts.Style
	if style != "" && !config.IsValidStyle(style) {
		return fmt.Errorf("invalid commit style %q (valid: %v)", style, config.ValidStyles)
	}
	if style == "" {
		if !tui.IsInteractive() {
			style = config.DefaultCommitStyle
		} else {
			prompt := &survey.Select{
				Message: "Which commit style should rivet write?",
				Options: config.ValidStyles,
				Default: config.DefaultCommitStyle,
			}
			if err := survey.AskOne(prompt, &style); err != nil {
				return fmt.Errorf("canceled")
			}
		}
	}

	model := opts.Model
	if model == "" {
		if !tui.IsInteractive() {
			model = agent.DefaultModel
		} else {
			prompt := &survey.Input{
				Message: "Which model should rivet use?",
				Default: agent.DefaultModel,
			}
			if err := survey.AskOne(prompt, &model); err != nil {
				return fmt.Errorf("canceled")
			}
		}
	}

	if err := config.SetCommitStyle(ctx.RepoRoot, style); err != nil {
		return fmt.Errorf("failed to save commit style: %w", err)
	}
	if err := config.SetModel(ctx.RepoRoot, model); err != nil {
		return fmt.Errorf("failed to save model: %w", err)
	}

	splog.Info("Initialized rivet with %s commits and model %s.", style, model)
	splog.Tip("Adjust anytime with 'rivet config set <key> <value>'.")
	return nil
}
