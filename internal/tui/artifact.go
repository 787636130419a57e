package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	artifactHeaderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("39")).Bold(true)
	artifactDimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	artifactLabelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))
)

const artifactRule = "────────────────────────────────────────"

// DisplayCommitMessage prints a generated commit message between dim rules so
// it stands apart from surrounding prompts.
func DisplayCommitMessage(splog *Splog, message string) {
	splog.Newline()
	splog.Info("%s", artifactHeaderStyle.Render("Commit message"))
	splog.Info("%s", artifactDimStyle.Render(artifactRule))
	splog.Info("%s", message)
	splog.Info("%s", artifactDimStyle.Render(artifactRule))
}

// DisplayPRDescription prints a generated pull request title, body, and labels.
func DisplayPRDescription(splog *Splog, title, body string, labels []string) {
	splog.Newline()
	splog.Info("%s", artifactHeaderStyle.Render("Pull request"))
	splog.Info("%s", artifactDimStyle.Render(artifactRule))
	splog.Info("%s", artifactHeaderStyle.Render(title))
	splog.Newline()
	splog.Info("%s", body)
	if len(labels) > 0 {
		splog.Newline()
		splog.Info("%s %s", artifactDimStyle.Render("Labels:"), artifactLabelStyle.Render(strings.Join(labels, ", ")))
	}
	splog.Info("%s", artifactDimStyle.Render(artifactRule))
}
