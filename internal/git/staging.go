package git

import (
	"fmt"
)

// StageAll stages every change in the working tree, untracked files
// included.
func StageAll() error {
	if _, err := RunGitCommand("add", "-A"); err != nil {
		return fmt.Errorf("failed to stage all changes: %w", err)
	}
	return nil
}

// gitReportsChanges runs a git query and reports whether it printed
// anything.
func gitReportsChanges(label string, args ...string) (bool, error) {
	output, err := RunGitCommand(args...)
	if err != nil {
		return false, fmt.Errorf("failed to check %s: %w", label, err)
	}
	return output != "", nil
}

// HasStagedChanges reports whether the index differs from HEAD.
func HasStagedChanges() (bool, error) {
	return gitReportsChanges("staged changes", "diff", "--cached", "--shortstat")
}

// HasUnstagedChanges reports whether tracked files carry unstaged edits.
func HasUnstagedChanges() (bool, error) {
	return gitReportsChanges("unstaged changes", "diff", "--name-only")
}

// HasUntrackedFiles reports whether the working tree contains untracked
// files.
func HasUntrackedFiles() (bool, error) {
	return gitReportsChanges("untracked files", "ls-files", "--others", "--exclude-standard")
}

// HasAnyChanges reports whether anything could be staged, so either
// modified tracked files or untracked files.
func HasAnyChanges() (bool, error) {
	unstaged, err := HasUnstagedChanges()
	if err != nil {
		return false, err
	}
	if unstaged {
		return true, nil
	}
	return HasUntrackedFiles()
}
