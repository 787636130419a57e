package git_test

import (
	"testing"

	"github.com/botirk38/rivet/testhelpers"
)

// seededScene creates a scene whose repository carries one commit, with the
// working directory changed into it.
func seededScene(t *testing.T) *testhelpers.Scene {
	t.Helper()
	return testhelpers.NewScene(t, func(s *testhelpers.Scene) error {
		return s.Repo.CreateChangeAndCommit("initial", "init")
	})
}

// seededSceneParallel is seededScene without the chdir, for parallel tests
// that address the repository through scene.Dir.
func seededSceneParallel(t *testing.T) *testhelpers.Scene {
	t.Helper()
	return testhelpers.NewSceneParallel(t, func(s *testhelpers.Scene) error {
		return s.Repo.CreateChangeAndCommit("initial", "init")
	})
}
