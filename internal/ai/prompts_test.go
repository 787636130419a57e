package ai

import (
	"strings"
	"testing"

	"github.com/botirk38/rivet/internal/config"
	"github.com/botirk38/rivet/internal/git"
)

func TestBuildCommitAnalysisPrompt_Stats(t *testing.T) {
	prompt := BuildCommitAnalysisPrompt(AnalysisContext{
		Branch: "feature/login",
		Stats: []git.FileStat{
			{Path: "internal/auth/login.go", Insertions: 40, Deletions: 3},
			{Path: "assets/logo.png", Binary: true},
		},
	})

	if !strings.Contains(prompt, "## Branch") {
		t.Error("Prompt missing branch section")
	}
	if !strings.Contains(prompt, "feature/login") {
		t.Error("Prompt missing branch name")
	}
	if !strings.Contains(prompt, "## Change Statistics") {
		t.Error("Prompt missing change statistics section")
	}
	if !strings.Contains(prompt, "internal/auth/login.go: +40 -3") {
		t.Error("Prompt missing per-file stat line")
	}
	if !strings.Contains(prompt, "assets/logo.png (binary)") {
		t.Error("Prompt missing binary file line")
	}
	if !strings.Contains(prompt, "## Task") {
		t.Error("Prompt missing task section")
	}
	if strings.Contains(prompt, "## Code Diff") {
		t.Error("Stats-based prompt should not contain the legacy diff section")
	}
}

func TestBuildCommitAnalysisPrompt_LegacyDiffFallback(t *testing.T) {
	prompt := BuildCommitAnalysisPrompt(AnalysisContext{
		Branch: "main",
		Diff:   "diff --git a/main.go b/main.go\n+func main() {}",
		Files:  []string{"main.go"},
	})

	if !strings.Contains(prompt, "## Changed Files") {
		t.Error("Legacy prompt missing changed files section")
	}
	if !strings.Contains(prompt, "- main.go") {
		t.Error("Legacy prompt missing file entry")
	}
	if !strings.Contains(prompt, "## Code Diff") {
		t.Error("Legacy prompt missing code diff section")
	}
	if !strings.Contains(prompt, "+func main() {}") {
		t.Error("Legacy prompt missing diff content")
	}
}

func TestBuildCommitAnalysisPrompt_LargeDiffTruncated(t *testing.T) {
	prompt := BuildCommitAnalysisPrompt(AnalysisContext{
		Branch: "main",
		Diff:   strings.Repeat("x", maxDiffSize+1000),
	})

	if !strings.Contains(prompt, "(diff truncated)") {
		t.Error("Large diff should be truncated")
	}
	if len(prompt) > maxDiffSize+2000 {
		t.Errorf("Prompt too large after truncation: %d chars", len(prompt))
	}
}

func TestBuildCommitAnalysisPrompt_AmendIncludesPreviousMessage(t *testing.T) {
	prompt := BuildCommitAnalysisPrompt(AnalysisContext{
		Branch:          "main",
		Stats:           []git.FileStat{{Path: "a.go", Insertions: 1}},
		PreviousMessage: "feat: original wording\n\nOld body.",
	})

	if !strings.Contains(prompt, "## Previous Commit Message") {
		t.Error("Amend prompt missing previous message section")
	}
	if !strings.Contains(prompt, "feat: original wording") {
		t.Error("Amend prompt missing previous message content")
	}
}

func TestBuildCommitAnalysisPrompt_NoPreviousMessageByDefault(t *testing.T) {
	prompt := BuildCommitAnalysisPrompt(AnalysisContext{
		Branch: "main",
		Stats:  []git.FileStat{{Path: "a.go", Insertions: 1}},
	})

	if strings.Contains(prompt, "## Previous Commit Message") {
		t.Error("Prompt should omit the previous message section when not amending")
	}
}

func TestBuildPRAnalysisPrompt(t *testing.T) {
	prompt := BuildPRAnalysisPrompt(AnalysisContext{
		Branch:     "feature/login",
		Commits:    []string{"add login form", "wire session store"},
		PRTemplate: "## Summary\n\n## Test plan",
		Stats: []git.FileStat{
			{Path: "internal/auth/login.go", Insertions: 40, Deletions: 3},
		},
	})

	if !strings.Contains(prompt, "pull request description") {
		t.Error("Prompt missing PR framing")
	}
	if !strings.Contains(prompt, "## Commits") {
		t.Error("Prompt missing commits section")
	}
	if !strings.Contains(prompt, "1. add login form") {
		t.Error("Prompt missing first commit subject")
	}
	if !strings.Contains(prompt, "2. wire session store") {
		t.Error("Prompt missing second commit subject")
	}
	if !strings.Contains(prompt, "## Pull Request Template") {
		t.Error("Prompt missing PR template section")
	}
	if !strings.Contains(prompt, "## Test plan") {
		t.Error("Prompt missing template content")
	}
}

func TestBuildPRAnalysisPrompt_OmitsEmptySections(t *testing.T) {
	prompt := BuildPRAnalysisPrompt(AnalysisContext{
		Branch: "feature/login",
		Stats:  []git.FileStat{{Path: "a.go", Insertions: 1}},
	})

	if strings.Contains(prompt, "## Commits") {
		t.Error("Prompt should omit commits section when there are none")
	}
	if strings.Contains(prompt, "## Pull Request Template") {
		t.Error("Prompt should omit template section when there is no template")
	}
}

func TestStyleInstruction(t *testing.T) {
	tests := []struct {
		style string
		want  string
	}{
		{config.StyleConventional, "Conventional Commits"},
		{config.StyleAngular, "Angular commit convention"},
		{config.StyleSimple, "plain, descriptive commit message"},
		{config.StyleEmoji, "gitmoji"},
		{"", "Conventional Commits"},        // default
		{"unknown", "Conventional Commits"}, // default
	}

	for _, tt := range tests {
		got := StyleInstruction(tt.style)
		if !strings.Contains(got, tt.want) {
			t.Errorf("StyleInstruction(%q) missing %q", tt.style, tt.want)
		}
	}
}

func TestBuildCommitGenerationPrompt(t *testing.T) {
	prompt := BuildCommitGenerationPrompt("Adds login flow with session storage.", config.StyleAngular, "Always mention the ticket number.")

	if !strings.HasPrefix(prompt, "Always mention the ticket number.") {
		t.Error("Custom system prompt should lead the generation prompt")
	}
	if !strings.Contains(prompt, "## Change Analysis") {
		t.Error("Prompt missing analysis section")
	}
	if !strings.Contains(prompt, "Adds login flow with session storage.") {
		t.Error("Prompt missing analysis text")
	}
	if !strings.Contains(prompt, "Angular commit convention") {
		t.Error("Prompt missing style instruction")
	}
	if !strings.Contains(prompt, "Return ONLY the commit message text") {
		t.Error("Prompt missing output instruction")
	}
}

func TestBuildCommitGenerationPrompt_NoSystemPrompt(t *testing.T) {
	prompt := BuildCommitGenerationPrompt("summary", config.StyleSimple, "")

	if !strings.HasPrefix(prompt, "Write a commit message") {
		t.Error("Prompt without system prompt should start with the task framing")
	}
}

func TestBuildPRGenerationPrompt(t *testing.T) {
	prompt := BuildPRGenerationPrompt("Adds login flow.", "Use British spelling.", "## Summary\n\n## Checklist")

	if !strings.HasPrefix(prompt, "Use British spelling.") {
		t.Error("Custom system prompt should lead the generation prompt")
	}
	if !strings.Contains(prompt, "Fill in this template as the PR body") {
		t.Error("Prompt missing template-filling instruction")
	}
	if !strings.Contains(prompt, "## Checklist") {
		t.Error("Prompt missing template content")
	}
	if !strings.Contains(prompt, `{"title": "<PR title>"`) {
		t.Error("Prompt missing JSON output shape")
	}
}

func TestBuildRegeneratePrompts(t *testing.T) {
	commit := BuildCommitRegeneratePrompt("use past tense")
	if !strings.Contains(commit, "use past tense") {
		t.Error("Commit regenerate prompt missing feedback")
	}
	if !strings.Contains(commit, "Return ONLY the commit message text") {
		t.Error("Commit regenerate prompt missing output reminder")
	}

	pr := BuildPRRegeneratePrompt("shorter title")
	if !strings.Contains(pr, "shorter title") {
		t.Error("PR regenerate prompt missing feedback")
	}
	if !strings.Contains(pr, `{"title": "<PR title>"`) {
		t.Error("PR regenerate prompt missing JSON output reminder")
	}
}
