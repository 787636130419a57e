package git

import (
	"fmt"
	"strconv"
	"strings"
)

// FileStat describes the change size of a single file in a diff.
// Binary files report zero insertions and deletions.
type FileStat struct {
	Path       string
	Insertions int
	Deletions  int
	Binary     bool
}

// DiffStats aggregates per-file change sizes for a diff.
type DiffStats struct {
	Files      []FileStat
	Insertions int
	Deletions  int
}

// Summary returns a short human readable description like
// "3 files changed, +120 -45".
func (s DiffStats) Summary() string {
	noun := "files"
	if len(s.Files) == 1 {
		noun = "file"
	}
	return fmt.Sprintf("%d %s changed, +%d -%d", len(s.Files), noun, s.Insertions, s.Deletions)
}

// GetStagedStats returns per-file statistics for the staged changes
func GetStagedStats() (DiffStats, error) {
	lines, err := RunGitCommandLines("diff", "--cached", "--numstat")
	if err != nil {
		return DiffStats{}, fmt.Errorf("failed to get staged stats: %w", err)
	}
	return parseNumstat(lines)
}

// GetBranchStats returns per-file statistics for the changes the current
// branch carries beyond base.
func GetBranchStats(base string) (DiffStats, error) {
	lines, err := RunGitCommandLines("diff", base+"...HEAD", "--numstat")
	if err != nil {
		return DiffStats{}, fmt.Errorf("failed to get branch stats: %w", err)
	}
	return parseNumstat(lines)
}

// parseNumstat parses 'git diff --numstat' output lines. Each line is
// "<insertions>\t<deletions>\t<path>", with "-" in the numeric columns for
// binary files.
func parseNumstat(lines []string) (DiffStats, error) {
	stats := DiffStats{Files: []FileStat{}}

	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}

		parts := strings.SplitN(line, "\t", 3)
		if len(parts) != 3 {
			continue
		}

		stat := FileStat{Path: parts[2]}
		if parts[0] == "-" || parts[1] == "-" {
			stat.Binary = true
		} else {
			insertions, err := strconv.Atoi(parts[0])
			if err != nil {
				return DiffStats{}, fmt.Errorf("failed to parse numstat line %q: %w", line, err)
			}
			deletions, err := strconv.Atoi(parts[1])
			if err != nil {
				return DiffStats{}, fmt.Errorf("failed to parse numstat line %q: %w", line, err)
			}
			stat.Insertions = insertions
			stat.Deletions = deletions
		}

		stats.Files = append(stats.Files, stat)
		stats.Insertions += stat.Insertions
		stats.Deletions += stat.Deletions
	}

	return stats, nil
}
