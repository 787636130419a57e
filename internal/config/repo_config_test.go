package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/botirk38/rivet/testhelpers"
)

func TestGetRepoConfig(t *testing.T) {
	t.Parallel()

	t.Run("returns empty config when file does not exist", func(t *testing.T) {
		t.Parallel()
		scene := testhelpers.NewSceneParallel(t, nil)

		config, err := GetRepoConfig(scene.Dir)
		require.NoError(t, err)
		require.Nil(t, config.CommitStyle)
		require.Nil(t, config.Model)
		require.Nil(t, config.AutoPush)
	})

	t.Run("fails on malformed config file", func(t *testing.T) {
		t.Parallel()
		scene := testhelpers.NewSceneParallel(t, nil)

		configPath := filepath.Join(scene.Dir, ".git", ".rivet_config")
		require.NoError(t, os.WriteFile(configPath, []byte("{not json"), 0600))

		_, err := GetRepoConfig(scene.Dir)
		require.Error(t, err)
		require.Contains(t, err.Error(), "failed to parse repo config")
	})
}

func TestGetCommitStyle(t *testing.T) {
	t.Parallel()

	t.Run("returns default when config does not exist", func(t *testing.T) {
		t.Parallel()
		scene := testhelpers.NewSceneParallel(t, nil)

		style, err := GetCommitStyle(scene.Dir)
		require.NoError(t, err)
		require.Equal(t, StyleConventional, style)
	})

	t.Run("returns configured style", func(t *testing.T) {
		t.Parallel()
		scene := testhelpers.NewSceneParallel(t, nil)

		require.NoError(t, SetCommitStyle(scene.Dir, StyleEmoji))

		style, err := GetCommitStyle(scene.Dir)
		require.NoError(t, err)
		require.Equal(t, StyleEmoji, style)
	})
}

func TestSetCommitStyle(t *testing.T) {
	t.Parallel()

	t.Run("rejects unknown styles", func(t *testing.T) {
		t.Parallel()
		scene := testhelpers.NewSceneParallel(t, nil)

		err := SetCommitStyle(scene.Dir, "haiku")
		require.Error(t, err)
		require.Contains(t, err.Error(), "invalid commit style")
	})

	t.Run("leaves unrelated fields alone", func(t *testing.T) {
		t.Parallel()
		scene := testhelpers.NewSceneParallel(t, nil)

		// Seed a config file that already carries a model
		configPath := filepath.Join(scene.Dir, ".git", ".rivet_config")
		seeded, err := json.MarshalIndent(&RepoConfig{Model: stringPtr("claude-sonnet-4-5")}, "", "  ")
		require.NoError(t, err)
		require.NoError(t, os.WriteFile(configPath, seeded, 0600))

		require.NoError(t, SetCommitStyle(scene.Dir, StyleAngular))

		config, err := GetRepoConfig(scene.Dir)
		require.NoError(t, err)
		require.NotNil(t, config.Model)
		require.Equal(t, "claude-sonnet-4-5", *config.Model)
		require.NotNil(t, config.CommitStyle)
		require.Equal(t, StyleAngular, *config.CommitStyle)
	})

	t.Run("fails when the repo root is missing", func(t *testing.T) {
		t.Parallel()

		err := SetCommitStyle("/no/such/directory", StyleSimple)
		require.Error(t, err)
		require.Contains(t, err.Error(), "repository root does not exist")
	})
}

func TestAutoPush(t *testing.T) {
	t.Parallel()

	t.Run("defaults to false", func(t *testing.T) {
		t.Parallel()
		scene := testhelpers.NewSceneParallel(t, nil)

		enabled, err := GetAutoPush(scene.Dir)
		require.NoError(t, err)
		require.False(t, enabled)
	})

	t.Run("round trips through the config file", func(t *testing.T) {
		t.Parallel()
		scene := testhelpers.NewSceneParallel(t, nil)

		require.NoError(t, SetAutoPush(scene.Dir, true))

		config, err := GetRepoConfig(scene.Dir)
		require.NoError(t, err)
		require.NotNil(t, config.AutoPush)
		require.True(t, *config.AutoPush)

		enabled, err := GetAutoPush(scene.Dir)
		require.NoError(t, err)
		require.True(t, enabled)
	})
}

func TestIsInitialized(t *testing.T) {
	t.Parallel()

	t.Run("false before init", func(t *testing.T) {
		t.Parallel()
		scene := testhelpers.NewSceneParallel(t, nil)

		require.False(t, IsInitialized(scene.Dir))
	})

	t.Run("true after a style is stored", func(t *testing.T) {
		t.Parallel()
		scene := testhelpers.NewSceneParallel(t, nil)

		require.NoError(t, SetCommitStyle(scene.Dir, StyleConventional))
		require.True(t, IsInitialized(scene.Dir))
	})
}

func TestIsValidStyle(t *testing.T) {
	t.Parallel()

	for _, style := range ValidStyles {
		require.True(t, IsValidStyle(style), "expected %q to be valid", style)
	}
	require.False(t, IsValidStyle(""))
	require.False(t, IsValidStyle("Conventional"))
}

func TestConfigKeyDispatch(t *testing.T) {
	t.Parallel()

	t.Run("get and set cover every key", func(t *testing.T) {
		t.Parallel()
		scene := testhelpers.NewSceneParallel(t, nil)

		require.NoError(t, Set(scene.Dir, "commitStyle", StyleSimple))
		require.NoError(t, Set(scene.Dir, "commitSystemPrompt", "write terse commits"))
		require.NoError(t, Set(scene.Dir, "prSystemPrompt", "write detailed PRs"))
		require.NoError(t, Set(scene.Dir, "model", "claude-sonnet-4-5"))
		require.NoError(t, Set(scene.Dir, "autoPush", "true"))
		require.NoError(t, Set(scene.Dir, "baseBranch", "develop"))

		for key, expected := range map[string]string{
			"commitStyle":        StyleSimple,
			"commitSystemPrompt": "write terse commits",
			"prSystemPrompt":     "write detailed PRs",
			"model":              "claude-sonnet-4-5",
			"autoPush":           "true",
			"baseBranch":         "develop",
		} {
			value, err := Get(scene.Dir, key)
			require.NoError(t, err)
			require.Equal(t, expected, value, "key %s", key)
		}
	})

	t.Run("rejects unknown keys", func(t *testing.T) {
		t.Parallel()
		scene := testhelpers.NewSceneParallel(t, nil)

		_, err := Get(scene.Dir, "nope")
		require.Error(t, err)

		err = Set(scene.Dir, "nope", "value")
		require.Error(t, err)
	})

	t.Run("rejects non-boolean autoPush values", func(t *testing.T) {
		t.Parallel()
		scene := testhelpers.NewSceneParallel(t, nil)

		err := Set(scene.Dir, "autoPush", "sometimes")
		require.Error(t, err)
		require.Contains(t, err.Error(), "autoPush expects true or false")
	})

	t.Run("keys list matches dispatch", func(t *testing.T) {
		t.Parallel()
		scene := testhelpers.NewSceneParallel(t, nil)

		for _, key := range Keys() {
			_, err := Get(scene.Dir, key)
			require.NoError(t, err, "key %s", key)
		}
	})
}

func stringPtr(s string) *string {
	return &s
}
