package integration

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestVersionCommand(t *testing.T) {
	t.Parallel()
	sh := NewTestShell(t, getRivetBinary(t))

	sh.Run("version").OutputContains("rivet dev")
}

func TestInitAndConfigWorkflow(t *testing.T) {
	t.Parallel()
	sh := NewTestShell(t, getRivetBinary(t))

	sh.Run("init", "--style", "emoji", "--model", "claude-sonnet-4-5").
		OutputContains("Initialized rivet")

	sh.Run("config", "get", "commitStyle").OutputContains("emoji")
	sh.Run("config", "get", "model").OutputContains("claude-sonnet-4-5")

	sh.Run("config", "set", "autoPush", "true").OutputContains("Set autoPush to: true")
	sh.Run("config", "get", "autoPush").OutputContains("true")

	sh.Run("config", "list").
		OutputContains("commitStyle=emoji").
		OutputContains("autoPush=true")

	sh.RunExpectError("config", "set", "commitStyle", "prose").
		OutputContains("invalid commit style")
}

func TestCommitGuards(t *testing.T) {
	t.Parallel()

	t.Run("nothing staged", func(t *testing.T) {
		t.Parallel()
		sh := NewTestShell(t, getRivetBinary(t))

		sh.RunExpectError("commit").OutputContains("no staged changes")
	})

	t.Run("no credentials", func(t *testing.T) {
		t.Parallel()
		sh := NewTestShell(t, getRivetBinary(t))

		sh.Stage("feature", "new feature content").
			RunExpectError("commit").
			OutputContains("ANTHROPIC_API_KEY not configured")

		// The failed run must leave the staged changes alone
		staged, err := sh.Scene().Repo.StagedFiles()
		require.NoError(t, err)
		require.NotEmpty(t, staged)
	})
}

func TestPRGuards(t *testing.T) {
	t.Parallel()

	t.Run("still on the base branch", func(t *testing.T) {
		t.Parallel()
		sh := NewTestShell(t, getRivetBinary(t))

		sh.RunExpectError("pr").OutputContains("create a feature branch first")
	})

	t.Run("no commits ahead of the base", func(t *testing.T) {
		t.Parallel()
		sh := NewTestShell(t, getRivetBinary(t))

		require.NoError(t, sh.Scene().Repo.CreateAndCheckoutBranch("feature"))
		sh.RunExpectError("pr").OutputContains("no commits ahead")
	})
}

func TestOutsideGitRepository(t *testing.T) {
	t.Parallel()

	cmd := shellCommand(getRivetBinary(t), t.TempDir(), "commit")
	output, err := cmd.CombinedOutput()
	require.Error(t, err)
	require.Contains(t, string(output), "not a git repository")
}
