package testhelpers

import (
	"os"
	"testing"
)

// Scene is a throwaway Git repository in a temporary directory, torn down
// when the test ends.
type Scene struct {
	Dir    string
	Repo   *GitRepo
	oldDir string
}

// SceneSetup seeds a scene before the test body runs.
type SceneSetup func(*Scene) error

// NewScene builds a scene and changes the working directory into it, so code
// under test that runs git in the process cwd hits the scene repository.
//
// NOTE: NewScene is NOT safe for parallel tests because it calls os.Chdir.
// Use NewSceneParallel for tests that run with t.Parallel().
func NewScene(t *testing.T, setup SceneSetup) *Scene {
	t.Helper()

	oldDir, err := os.Getwd()
	if err != nil {
		t.Fatalf("Failed to read working directory: %v", err)
	}

	scene := newSceneInternal(t, setup)
	scene.oldDir = oldDir

	if err := os.Chdir(scene.Dir); err != nil {
		t.Fatalf("Failed to change directory: %v", err)
	}

	t.Cleanup(func() {
		_ = os.Chdir(oldDir)
	})

	return scene
}

// NewSceneParallel creates a new test scene without changing the working
// directory or mutating global state, so it is safe for tests that call
// t.Parallel(). Operations on the scene must use absolute paths via
// scene.Dir rather than relying on the process working directory.
func NewSceneParallel(t *testing.T, setup SceneSetup) *Scene {
	t.Helper()
	return newSceneInternal(t, setup)
}

func newSceneInternal(t *testing.T, setup SceneSetup) *Scene {
	t.Helper()

	tmpDir, err := os.MkdirTemp("", "rivet-test-*")
	if err != nil {
		t.Fatalf("Failed to create temp dir: %v", err)
	}

	repo, err := NewGitRepo(tmpDir)
	if err != nil {
		os.RemoveAll(tmpDir)
		t.Fatalf("Failed to create Git repo: %v", err)
	}

	scene := &Scene{
		Dir:  tmpDir,
		Repo: repo,
	}

	if setup != nil {
		if err := setup(scene); err != nil {
			os.RemoveAll(tmpDir)
			t.Fatalf("Setup failed: %v", err)
		}
	}

	t.Cleanup(func() {
		if os.Getenv("DEBUG") == "" {
			os.RemoveAll(tmpDir)
		}
	})

	return scene
}

// BasicSceneSetup seeds the scene with a single commit.
func BasicSceneSetup(scene *Scene) error {
	return scene.Repo.CreateChangeAndCommit("1", "1")
}
