// Package tui provides the terminal user interface for rivet.
//
// It handles:
//   - Structured logging and status reporting (Splog), with a rotating
//     file log alongside the console
//   - Interactive confirm and text prompts (using bubbletea)
//   - The phase indicator shown while the agent works (spinner on a TTY,
//     plain log lines otherwise)
//   - Display of generated commit messages and pull request descriptions
//     (using lipgloss)
package tui
