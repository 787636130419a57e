package git

import (
	"fmt"
	"strconv"
	"strings"
)

// GetCurrentBranch returns the name of the currently checked out branch
func GetCurrentBranch() (string, error) {
	output, err := RunGitCommand("branch", "--show-current")
	if err != nil {
		return "", fmt.Errorf("failed to get current branch: %w", err)
	}
	if output == "" {
		return "", fmt.Errorf("HEAD is not on a branch")
	}
	return output, nil
}

// DetectBaseBranch determines the branch pull requests should target. It
// prefers the remote's default branch, then falls back to a local main or
// master branch.
func DetectBaseBranch() string {
	// origin/HEAD records the remote default branch after a clone
	if output, err := RunGitCommand("symbolic-ref", "--short", "refs/remotes/origin/HEAD"); err == nil {
		return strings.TrimPrefix(output, "origin/")
	}

	for _, name := range []string{"main", "master"} {
		if _, err := RunGitCommand("show-ref", "--verify", "--quiet", "refs/heads/"+name); err == nil {
			return name
		}
	}

	return "main"
}

// CommitCountAhead returns how many commits HEAD carries beyond base
func CommitCountAhead(base string) (int, error) {
	output, err := RunGitCommand("rev-list", "--count", base+"..HEAD")
	if err != nil {
		return 0, fmt.Errorf("failed to count commits ahead of %s: %w", base, err)
	}
	count, err := strconv.Atoi(output)
	if err != nil {
		return 0, fmt.Errorf("failed to parse commit count %q: %w", output, err)
	}
	return count, nil
}

// BranchExists reports whether a local branch with the given name exists
func BranchExists(name string) bool {
	_, err := RunGitCommand("show-ref", "--verify", "--quiet", "refs/heads/"+name)
	return err == nil
}
