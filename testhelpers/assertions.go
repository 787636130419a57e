// Package testhelpers provides the scene system, Git repository driver, and
// assertions the rivet test suites share.
package testhelpers

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// Must unwraps a (value, error) pair, panicking on error. For test setup
// expressions where a failure should abort immediately.
func Must[T any](val T, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}

// ExpectCommits asserts that the branch starts with the expected commit
// subjects, newest first.
func ExpectCommits(t *testing.T, repo *GitRepo, branch string, expected []string) {
	t.Helper()

	output, err := repo.RunGitCommandAndGetOutput("log", "--oneline", "--format=%s", branch)
	require.NoError(t, err, "Failed to list commits")

	subjects := []string{}
	for _, line := range splitLines(output) {
		if line = strings.TrimSpace(line); line != "" {
			subjects = append(subjects, line)
		}
	}

	require.GreaterOrEqual(t, len(subjects), len(expected),
		"branch %s has %d commits, expected at least %d", branch, len(subjects), len(expected))
	require.Equal(t, expected, subjects[:len(expected)], "Commits do not match")
}

// ExpectHeadMessage asserts the full commit message of HEAD, trailing
// whitespace ignored.
func ExpectHeadMessage(t *testing.T, repo *GitRepo, expected string) {
	t.Helper()

	actual, err := repo.RunGitCommandAndGetOutput("log", "-1", "--format=%B")
	require.NoError(t, err, "Failed to read HEAD message")
	require.Equal(t, strings.TrimSpace(expected), actual, "HEAD message does not match")
}

// ExpectStagedFiles asserts the set of files currently staged for commit.
func ExpectStagedFiles(t *testing.T, repo *GitRepo, expected []string) {
	t.Helper()

	staged, err := repo.StagedFiles()
	require.NoError(t, err, "Failed to list staged files")
	require.ElementsMatch(t, expected, staged, "Staged files do not match")
}
