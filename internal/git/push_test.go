package git_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	riveterrors "github.com/botirk38/rivet/internal/errors"
	"github.com/botirk38/rivet/internal/git"
)

func TestPush(t *testing.T) {
	t.Run("pushes the branch and sets upstream", func(t *testing.T) {
		scene := seededScene(t)

		_, err := scene.Repo.CreateBareRemote("origin")
		require.NoError(t, err)

		err = git.Push(context.Background(), "main")
		require.NoError(t, err)

		// Upstream is recorded for the branch
		upstream, err := scene.Repo.RunGitCommandAndGetOutput("rev-parse", "--abbrev-ref", "main@{upstream}")
		require.NoError(t, err)
		require.Equal(t, "origin/main", upstream)
	})

	t.Run("surfaces a git error when the remote is missing", func(t *testing.T) {
		seededScene(t)

		err := git.Push(context.Background(), "main")
		require.Error(t, err)

		var gitErr *riveterrors.CommandError
		require.ErrorAs(t, err, &gitErr)
	})
}
