// Package integration provides integration tests that drive the rivet binary.
package integration

import (
	"testing"

	"github.com/botirk38/rivet/internal/testhelper"
)

// getRivetBinary returns the path to the pre-built rivet binary.
func getRivetBinary(t *testing.T) string {
	t.Helper()
	binaryPath := testhelper.GetSharedBinaryPath()
	if binaryPath == "" {
		if err := testhelper.GetBinaryError(); err != nil {
			t.Fatalf("failed to build rivet binary: %v", err)
		}
		t.Fatal("rivet binary not built")
	}
	return binaryPath
}
