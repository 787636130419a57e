package git

import (
	"bytes"
	"context"
	"os/exec"
	"strings"
	"time"

	riveterrors "github.com/botirk38/rivet/internal/errors"
)

// commandTimeout bounds git and gh invocations whose context carries no
// deadline of its own.
const commandTimeout = 5 * time.Minute

// runCommand executes program with args in the current working directory,
// capturing both streams. Failures come back as a CommandError carrying
// the captured output. Output is trimmed unless raw is set.
func runCommand(ctx context.Context, program string, raw bool, args []string) (string, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	if _, ok := ctx.Deadline(); !ok {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, commandTimeout)
		defer cancel()
	}

	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, program, args...)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		// exec reports "signal: killed" when the deadline fires
		if ctx.Err() == context.DeadlineExceeded {
			err = ctx.Err()
		}
		return "", riveterrors.NewCommandError(program, args, stdout.String(), stderr.String(), err)
	}

	if raw {
		return stdout.String(), nil
	}
	return strings.TrimSpace(stdout.String()), nil
}

// RunGitCommand executes a git command and returns its trimmed output.
func RunGitCommand(args ...string) (string, error) {
	return runCommand(context.Background(), "git", false, args)
}

// RunGitCommandWithContext executes a git command under the given context.
func RunGitCommandWithContext(ctx context.Context, args ...string) (string, error) {
	return runCommand(ctx, "git", false, args)
}

// RunGitCommandRaw executes a git command and returns its output with
// whitespace intact.
func RunGitCommandRaw(args ...string) (string, error) {
	return runCommand(context.Background(), "git", true, args)
}

// RunGitCommandLines executes a git command and splits its output into
// lines. Empty output yields an empty slice rather than one empty line.
func RunGitCommandLines(args ...string) ([]string, error) {
	output, err := RunGitCommand(args...)
	if err != nil {
		return nil, err
	}
	if output == "" {
		return []string{}, nil
	}
	return strings.Split(output, "\n"), nil
}

// RunGHCommandWithContext executes a GitHub CLI command under the given
// context.
func RunGHCommandWithContext(ctx context.Context, args ...string) (string, error) {
	return runCommand(ctx, "gh", false, args)
}
