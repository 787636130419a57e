package git

import (
	"fmt"
)

// CommitOptions controls how a commit is created.
type CommitOptions struct {
	Message string
	Amend   bool
}

// Commit commits the staged changes with the given message.
func Commit(message string) error {
	return CommitWithOptions(CommitOptions{Message: message})
}

// CommitWithOptions commits the staged changes, optionally amending HEAD.
func CommitWithOptions(opts CommitOptions) error {
	args := []string{"commit"}

	if opts.Amend {
		args = append(args, "--amend")
	}

	if opts.Message != "" {
		args = append(args, "-m", opts.Message)
	}

	_, err := RunGitCommand(args...)
	if err != nil {
		return fmt.Errorf("failed to commit: %w", err)
	}
	return nil
}

// GetStagedDiff returns the unified diff of the index against HEAD,
// optionally restricted to the given paths.
func GetStagedDiff(files ...string) (string, error) {
	args := []string{"diff", "--cached"}
	if len(files) > 0 {
		args = append(args, "--")
		args = append(args, files...)
	}
	output, err := RunGitCommandRaw(args...)
	if err != nil {
		return "", fmt.Errorf("failed to get staged diff: %w", err)
	}
	return output, nil
}

// GetLastCommitMessage returns the full message of the HEAD commit
func GetLastCommitMessage() (string, error) {
	output, err := RunGitCommand("log", "-1", "--format=%B")
	if err != nil {
		return "", fmt.Errorf("failed to get last commit message: %w", err)
	}
	return output, nil
}

// GetHeadSHA returns the SHA of the HEAD commit
func GetHeadSHA() (string, error) {
	output, err := RunGitCommand("rev-parse", "HEAD")
	if err != nil {
		return "", fmt.Errorf("failed to get HEAD: %w", err)
	}
	return output, nil
}
