package ai

import (
	"fmt"
	"strings"

	"github.com/botirk38/rivet/internal/config"
	"github.com/botirk38/rivet/internal/git"
)

const (
	// maxDiffSize bounds the legacy raw-diff fallback in analysis prompts.
	maxDiffSize = 20000

	// maxTemplateSize bounds PR template text embedded in prompts.
	maxTemplateSize = 10000
)

// AnalysisContext carries the raw change data gathered for one command's
// analysis turn. It lives for a single invocation and is never persisted.
type AnalysisContext struct {
	// Stats is the primary input: per-file insertion and deletion counts.
	Stats []git.FileStat

	// Branch is the current branch name.
	Branch string

	// Commits lists branch commit subjects, oldest first. PR mode only.
	Commits []string

	// PRTemplate is the repository's PR template text when one exists.
	// PR mode only.
	PRTemplate string

	// PreviousMessage is the message of the commit being amended. Amend
	// mode only.
	PreviousMessage string

	// Diff and Files are the legacy fallback input used when stats are
	// unavailable.
	Diff  string
	Files []string
}

// BuildCommitAnalysisPrompt constructs the analysis prompt for commit mode.
// When amending, the message of the commit being replaced is included.
func BuildCommitAnalysisPrompt(analysisCtx AnalysisContext) string {
	var sections []string

	sections = append(sections, "You are analyzing staged changes in a git repository to prepare a commit message.")
	sections = append(sections, buildBranchSection(analysisCtx.Branch))
	sections = append(sections, buildChangeSection(analysisCtx))
	if analysisCtx.PreviousMessage != "" {
		sections = append(sections, buildPreviousMessageSection(analysisCtx.PreviousMessage))
	}
	sections = append(sections, analysisTaskSection)

	return strings.Join(sections, "\n\n")
}

// BuildPRAnalysisPrompt constructs the analysis prompt for PR mode. It adds
// the branch commit list and, when present, the repository's PR template.
func BuildPRAnalysisPrompt(analysisCtx AnalysisContext) string {
	var sections []string

	sections = append(sections, "You are analyzing a git branch to prepare a pull request description.")
	sections = append(sections, buildBranchSection(analysisCtx.Branch))
	if len(analysisCtx.Commits) > 0 {
		sections = append(sections, buildCommitsSection(analysisCtx.Commits))
	}
	sections = append(sections, buildChangeSection(analysisCtx))
	if analysisCtx.PRTemplate != "" {
		sections = append(sections, buildTemplateSection(analysisCtx.PRTemplate))
	}
	sections = append(sections, analysisTaskSection)

	return strings.Join(sections, "\n\n")
}

const analysisTaskSection = `## Task

Summarize the intent of these changes in 2-4 sentences. Focus on what changed
and why it matters, not on per-file mechanics. Return plain text only, no
markdown formatting.`

// buildBranchSection formats the branch line
func buildBranchSection(branch string) string {
	if branch == "" {
		branch = "(detached)"
	}
	return fmt.Sprintf("## Branch\n\n%s", branch)
}

// buildChangeSection formats the change data, preferring per-file stats and
// falling back to the raw diff and file list when stats are unavailable
func buildChangeSection(analysisCtx AnalysisContext) string {
	if len(analysisCtx.Stats) > 0 {
		return buildStatsSection(analysisCtx.Stats)
	}
	return buildLegacyChangeSection(analysisCtx)
}

// buildStatsSection formats per-file insertion and deletion counts
func buildStatsSection(stats []git.FileStat) string {
	lines := make([]string, 0, len(stats)+2)
	lines = append(lines, "## Change Statistics")
	lines = append(lines, "")
	for _, stat := range stats {
		if stat.Binary {
			lines = append(lines, fmt.Sprintf("- %s (binary)", stat.Path))
			continue
		}
		lines = append(lines, fmt.Sprintf("- %s: +%d -%d", stat.Path, stat.Insertions, stat.Deletions))
	}
	return strings.Join(lines, "\n")
}

// buildLegacyChangeSection formats the raw diff and changed-file list,
// truncating the diff if too large
func buildLegacyChangeSection(analysisCtx AnalysisContext) string {
	var lines []string

	if len(analysisCtx.Files) > 0 {
		lines = append(lines, "## Changed Files")
		lines = append(lines, "")
		for _, file := range analysisCtx.Files {
			lines = append(lines, fmt.Sprintf("- %s", file))
		}
		lines = append(lines, "")
	}

	diff := analysisCtx.Diff
	if diff != "" {
		if len(diff) > maxDiffSize {
			diff = diff[:maxDiffSize] + "\n... (diff truncated)"
		}
		lines = append(lines, "## Code Diff")
		lines = append(lines, "")
		lines = append(lines, "```")
		lines = append(lines, diff)
		lines = append(lines, "```")
	}

	if len(lines) == 0 {
		return "## Changes\n\n(no change data available)"
	}

	return strings.TrimSuffix(strings.Join(lines, "\n"), "\n")
}

// buildPreviousMessageSection embeds the message of the commit being amended
func buildPreviousMessageSection(message string) string {
	return "## Previous Commit Message\n\nThe staged changes amend an existing commit whose current message is:\n\n" + message
}

// buildCommitsSection formats branch commit subjects, oldest first
func buildCommitsSection(commits []string) string {
	lines := make([]string, 0, len(commits)+2)
	lines = append(lines, "## Commits")
	lines = append(lines, "")
	for i, subject := range commits {
		lines = append(lines, fmt.Sprintf("%d. %s", i+1, subject))
	}
	return strings.Join(lines, "\n")
}

// buildTemplateSection embeds the PR template for analysis context,
// truncating if too large
func buildTemplateSection(template string) string {
	if len(template) > maxTemplateSize {
		template = template[:maxTemplateSize] + "\n... (template truncated)"
	}
	return "## Pull Request Template\n\n" + template
}

// styleInstructions maps each commit style to the instruction block embedded
// verbatim in the generation prompt.
var styleInstructions = map[string]string{
	config.StyleConventional: `## Commit Style

Follow the Conventional Commits format: <type>[optional scope]: <description>
- Use one of: feat, fix, docs, style, refactor, perf, test, build, ci, chore
- Use imperative mood ("add feature", not "added feature")
- Keep the subject line at or under 72 characters
- Add a body only when the change needs explanation beyond the subject`,

	config.StyleAngular: `## Commit Style

Follow the Angular commit convention: <type>(<scope>): <short summary>
- Use one of: build, ci, docs, feat, fix, perf, refactor, test
- Scope names the affected area, such as a package or component
- Write the summary in imperative present tense, lowercase, no trailing period
- Keep the subject line at or under 72 characters`,

	config.StyleSimple: `## Commit Style

Write a plain, descriptive commit message.
- One short subject line in imperative mood
- No type prefixes or tags
- Keep the subject line at or under 72 characters`,

	config.StyleEmoji: `## Commit Style

Follow the gitmoji convention: <emoji> <description>
- Start with an emoji matching the change: ✨ feature, 🐛 fix, 📝 docs, ♻️ refactor, ✅ tests, 🔧 config
- Use imperative mood for the description
- Keep the subject line at or under 72 characters`,
}

// StyleInstruction returns the generation-prompt block for a commit style.
// Unknown values fall back to the default style.
func StyleInstruction(style string) string {
	if instruction, ok := styleInstructions[style]; ok {
		return instruction
	}
	return styleInstructions[config.DefaultCommitStyle]
}

const commitOutputSection = `## Output

Return ONLY the commit message text. No markdown formatting, no code blocks,
no quotes, no commentary.`

const prOutputSection = `## Output

Return ONLY a JSON object with this shape:

{"title": "<PR title>", "body": "<PR body in markdown>", "labels": ["<label>", ...]}

- title: concise, 50-72 characters
- body: full markdown description
- labels: zero or more suggested labels, such as "bug" or "enhancement"

No text outside the JSON object.`

// BuildCommitGenerationPrompt constructs the generation prompt for commit
// mode from the analysis synopsis, the configured style, and an optional
// custom system prompt.
func BuildCommitGenerationPrompt(analysis, style, systemPrompt string) string {
	var sections []string

	if systemPrompt != "" {
		sections = append(sections, systemPrompt)
	}
	sections = append(sections, "Write a commit message for the change described below.")
	sections = append(sections, "## Change Analysis\n\n"+analysis)
	sections = append(sections, StyleInstruction(style))
	sections = append(sections, commitOutputSection)

	return strings.Join(sections, "\n\n")
}

// BuildPRGenerationPrompt constructs the generation prompt for PR mode from
// the analysis synopsis, an optional custom system prompt, and the optional
// repository PR template to fill in.
func BuildPRGenerationPrompt(analysis, systemPrompt, template string) string {
	var sections []string

	if systemPrompt != "" {
		sections = append(sections, systemPrompt)
	}
	sections = append(sections, "Write a pull request title and description for the change described below.")
	sections = append(sections, "## Change Analysis\n\n"+analysis)
	if template != "" {
		sections = append(sections, buildTemplateFillSection(template))
	}
	sections = append(sections, prOutputSection)

	return strings.Join(sections, "\n\n")
}

// buildTemplateFillSection instructs the model to shape the PR body around
// the repository's template
func buildTemplateFillSection(template string) string {
	if len(template) > maxTemplateSize {
		template = template[:maxTemplateSize] + "\n... (template truncated)"
	}
	return "## Pull Request Template\n\nFill in this template as the PR body, keeping its headings:\n\n" + template
}

// BuildCommitRegeneratePrompt continues the generation conversation with user
// feedback. The session history carries the prior context, so only the
// feedback and the output reminder are sent.
func BuildCommitRegeneratePrompt(feedback string) string {
	return fmt.Sprintf("Revise the commit message based on this feedback:\n\n%s\n\n%s", feedback, commitOutputSection)
}

// BuildPRRegeneratePrompt continues the generation conversation with user
// feedback in PR mode.
func BuildPRRegeneratePrompt(feedback string) string {
	return fmt.Sprintf("Revise the pull request title and description based on this feedback:\n\n%s\n\n%s", feedback, prOutputSection)
}
