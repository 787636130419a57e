package tui

import (
	"os"
	"path/filepath"
)

// GetLogFilePath picks where debug logs land: RIVET_LOG_FILE when set,
// otherwise ~/.rivet/logs/rivet.log.
func GetLogFilePath() string {
	if customPath := os.Getenv("RIVET_LOG_FILE"); customPath != "" {
		return customPath
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		// No resolvable home, log next to wherever we run
		return "rivet.log"
	}

	return filepath.Join(homeDir, ".rivet", "logs", "rivet.log")
}
