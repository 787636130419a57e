package git

import (
	"os"
	"path/filepath"
)

// prTemplatePaths are the locations GitHub recognizes for pull request
// templates, in the order rivet checks them.
var prTemplatePaths = []string{
	filepath.Join(".github", "PULL_REQUEST_TEMPLATE.md"),
	filepath.Join(".github", "pull_request_template.md"),
	"PULL_REQUEST_TEMPLATE.md",
	"pull_request_template.md",
	filepath.Join("docs", "PULL_REQUEST_TEMPLATE.md"),
	filepath.Join("docs", "pull_request_template.md"),
}

// FindPRTemplate returns the contents of the repository's pull request
// template, if one exists. A missing template is not an error.
func FindPRTemplate(repoRoot string) (string, bool) {
	for _, relPath := range prTemplatePaths {
		data, err := os.ReadFile(filepath.Join(repoRoot, relPath))
		if err != nil {
			continue
		}
		return string(data), true
	}
	return "", false
}
