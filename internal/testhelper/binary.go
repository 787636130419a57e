// Package testhelper builds and caches the rivet binary for test suites
// that exercise it as a subprocess.
package testhelper

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"sync"
)

var (
	sharedBinaryPath string
	binaryOnce       sync.Once
	binaryErr        error
)

// GetSharedBinaryPath returns the path to a rivet binary shared by all test
// packages, building it lazily on first access.
func GetSharedBinaryPath() string {
	binaryOnce.Do(func() {
		path, err := buildBinary()
		if err != nil {
			binaryErr = err
			return
		}
		sharedBinaryPath = path
	})
	return sharedBinaryPath
}

// GetBinaryError returns the error from the shared binary build, if any.
func GetBinaryError() error {
	return binaryErr
}

// buildBinary compiles cmd/rivet into a temp directory and returns the
// binary path.
func buildBinary() (string, error) {
	wd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("failed to read working directory: %w", err)
	}

	moduleRoot := findModuleRoot(wd)
	if moduleRoot == "" {
		return "", fmt.Errorf("no go.mod found above %s", wd)
	}

	tmpDir, err := os.MkdirTemp("", "rivet-test-binary-*")
	if err != nil {
		return "", fmt.Errorf("failed to create build directory: %w", err)
	}

	binaryPath := filepath.Join(tmpDir, "rivet")

	cmd := exec.Command("go", "build", "-o", binaryPath, "./cmd/rivet")
	cmd.Dir = moduleRoot
	output, err := cmd.CombinedOutput()
	if err != nil {
		_ = os.RemoveAll(tmpDir)
		return "", fmt.Errorf("go build failed: %s: %w", string(output), err)
	}

	return binaryPath, nil
}

// findModuleRoot walks up from startDir until it sees a go.mod.
func findModuleRoot(startDir string) string {
	dir := startDir
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return ""
}
