package git

import (
	"context"
	"fmt"
)

// PushBranch pushes a branch to the given remote, setting the upstream so
// later pulls and pushes work without arguments.
func PushBranch(ctx context.Context, remote, branchName string) error {
	_, err := RunGitCommandWithContext(ctx, "push", "-u", remote, branchName)
	if err != nil {
		return fmt.Errorf("failed to push branch %s: %w", branchName, err)
	}
	return nil
}

// Push pushes the given branch to origin
func Push(ctx context.Context, branchName string) error {
	return PushBranch(ctx, "origin", branchName)
}
