package git_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/botirk38/rivet/internal/git"
	"github.com/botirk38/rivet/testhelpers"
)

func TestCommit(t *testing.T) {
	t.Run("commits staged changes with the given message", func(t *testing.T) {
		scene := seededScene(t)

		err := scene.Repo.CreateChange("content", "feature", false)
		require.NoError(t, err)

		err = git.Commit("feat: add feature file")
		require.NoError(t, err)

		testhelpers.ExpectHeadMessage(t, scene.Repo, "feat: add feature file")

		hasStaged, err := git.HasStagedChanges()
		require.NoError(t, err)
		require.False(t, hasStaged)
	})

	t.Run("commits multi-line messages intact", func(t *testing.T) {
		scene := seededScene(t)

		err := scene.Repo.CreateChange("content", "feature", false)
		require.NoError(t, err)

		message := "feat: add feature file\n\nLonger explanation of the change\nacross two lines."
		err = git.Commit(message)
		require.NoError(t, err)

		testhelpers.ExpectHeadMessage(t, scene.Repo, message)
	})

	t.Run("amend replaces the previous commit", func(t *testing.T) {
		scene := seededScene(t)

		err := scene.Repo.CreateChange("content", "feature", false)
		require.NoError(t, err)
		require.NoError(t, git.Commit("first wording"))

		before, err := git.GetHeadSHA()
		require.NoError(t, err)

		err = scene.Repo.CreateChange("more content", "feature2", false)
		require.NoError(t, err)
		err = git.CommitWithOptions(git.CommitOptions{Message: "better wording", Amend: true})
		require.NoError(t, err)

		after, err := git.GetHeadSHA()
		require.NoError(t, err)
		require.NotEqual(t, before, after)

		testhelpers.ExpectCommits(t, scene.Repo, "main", []string{"better wording", "initial"})
	})

	t.Run("fails when nothing is staged", func(t *testing.T) {
		seededScene(t)

		err := git.Commit("empty commit")
		require.Error(t, err)
	})
}

func TestGetStagedDiff(t *testing.T) {
	t.Run("returns the unified diff of staged changes", func(t *testing.T) {
		scene := seededScene(t)

		err := scene.Repo.CreateChange("hello diff", "feature", false)
		require.NoError(t, err)

		diff, err := git.GetStagedDiff()
		require.NoError(t, err)
		require.Contains(t, diff, "feature_test.txt")
		require.Contains(t, diff, "+hello diff")
	})

	t.Run("returns empty output for a clean index", func(t *testing.T) {
		seededScene(t)

		diff, err := git.GetStagedDiff()
		require.NoError(t, err)
		require.Empty(t, strings.TrimSpace(diff))
	})
}

func TestGetLastCommitMessage(t *testing.T) {
	t.Run("returns the full HEAD message", func(t *testing.T) {
		scene := seededScene(t)

		err := scene.Repo.CreateChange("content", "feature", false)
		require.NoError(t, err)
		require.NoError(t, git.Commit("fix: patch the thing\n\nWith a body."))

		message, err := git.GetLastCommitMessage()
		require.NoError(t, err)
		require.Equal(t, "fix: patch the thing\n\nWith a body.", message)
	})
}
