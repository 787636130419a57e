// Package runtime provides the execution context for rivet commands.
//
// It bundles the shared dependencies actions need: cancellation, logging,
// the repository root, and the agent behind artifact generation.
package runtime

import (
	"context"
	"fmt"

	"github.com/botirk38/rivet/internal/agent"
	"github.com/botirk38/rivet/internal/git"
	"github.com/botirk38/rivet/internal/tui"
)

// Context carries the shared dependencies for one command invocation.
type Context struct {
	Context  context.Context
	Splog    *tui.Splog
	RepoRoot string
	Agent    agent.Agent
}

// GetContext builds the context for one command invocation. It verifies the
// working directory is inside a git repository, resolves the repository
// root, and wires the logger with rotating file output.
func GetContext(ctx context.Context) (*Context, error) {
	repoRoot, err := git.GetRepoRoot()
	if err != nil {
		return nil, fmt.Errorf("not a git repository: %w", err)
	}

	splog, err := tui.NewSplogWithConfig(tui.GetLogFilePath())
	if err != nil {
		// Console-only logging when the log file location is unusable.
		splog = tui.NewSplog()
	}

	return &Context{
		Context:  ctx,
		Splog:    splog,
		RepoRoot: repoRoot,
		Agent:    agent.NewAnthropicAgent(),
	}, nil
}

// Close releases resources held by the context, such as the log file.
func (c *Context) Close() error {
	if c.Splog != nil {
		return c.Splog.Close()
	}
	return nil
}
