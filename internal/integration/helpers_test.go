package integration

import (
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/botirk38/rivet/testhelpers"
)

// TestShell drives the rivet binary against a scene repository through a
// chainable interface, so tests read like a terminal session.
type TestShell struct {
	t          *testing.T
	scene      *testhelpers.Scene
	binaryPath string
	lastOutput string
	lastErr    error
}

// NewTestShell creates a shell-like test environment with a repo holding one
// commit. Commands run with prompts disabled and without API credentials, so
// nothing can reach the network.
func NewTestShell(t *testing.T, binaryPath string) *TestShell {
	t.Helper()
	scene := testhelpers.NewSceneParallel(t, func(s *testhelpers.Scene) error {
		return s.Repo.CreateChangeAndCommit("initial", "init")
	})
	return &TestShell{t: t, scene: scene, binaryPath: binaryPath}
}

// Stage writes a file change and stages it.
func (s *TestShell) Stage(prefix, content string) *TestShell {
	s.t.Helper()
	require.NoError(s.t, s.scene.Repo.CreateChange(content, prefix, false))
	return s
}

// Run executes a rivet command and requires it to succeed.
func (s *TestShell) Run(args ...string) *TestShell {
	s.t.Helper()
	s.exec(args...)
	require.NoError(s.t, s.lastErr, "$ rivet %s\n%s", strings.Join(args, " "), s.lastOutput)
	return s
}

// RunExpectError executes a rivet command and requires a non-zero exit.
func (s *TestShell) RunExpectError(args ...string) *TestShell {
	s.t.Helper()
	s.exec(args...)
	require.Error(s.t, s.lastErr, "$ rivet %s\n%s", strings.Join(args, " "), s.lastOutput)
	return s
}

func (s *TestShell) exec(args ...string) {
	cmd := exec.Command(s.binaryPath, args...)
	cmd.Dir = s.scene.Dir
	// Last entries win, so these override anything inherited from the
	// developer's environment.
	cmd.Env = append(os.Environ(),
		"RIVET_TEST_NO_INTERACTIVE=1",
		"RIVET_LOG_FILE="+filepath.Join(s.scene.Dir, "rivet.log"),
		"ANTHROPIC_API_KEY=",
	)
	output, err := cmd.CombinedOutput()
	s.lastOutput = string(output)
	s.lastErr = err
}

// OutputContains asserts that the last command output contains text.
func (s *TestShell) OutputContains(text string) *TestShell {
	s.t.Helper()
	require.Contains(s.t, s.lastOutput, text, "output of the last command")
	return s
}

// Output returns the combined output of the last command.
func (s *TestShell) Output() string {
	return s.lastOutput
}

// Scene returns the underlying test scene for direct assertions.
func (s *TestShell) Scene() *testhelpers.Scene {
	return s.scene
}

// shellCommand builds a rivet invocation in an arbitrary directory, for the
// tests that need to run somewhere other than a scene.
func shellCommand(binaryPath, dir string, args ...string) *exec.Cmd {
	cmd := exec.Command(binaryPath, args...)
	cmd.Dir = dir
	cmd.Env = append(os.Environ(),
		"RIVET_TEST_NO_INTERACTIVE=1",
		"ANTHROPIC_API_KEY=",
	)
	return cmd
}
