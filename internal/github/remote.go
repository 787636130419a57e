package github

import (
	"context"
	"fmt"
	"strings"

	"github.com/botirk38/rivet/internal/git"
)

// RepoInfo identifies a repository on a GitHub host.
type RepoInfo struct {
	Hostname string
	Owner    string
	Repo     string
}

// ParseGitHubRemoteURL extracts hostname, owner, and repo from a git remote
// URL. Both https and ssh forms are accepted, on github.com or an Enterprise
// host:
//
//	https://github.com/owner/repo.git
//	git@github.com:owner/repo.git
//	git@github.company.com/owner/repo
func ParseGitHubRemoteURL(remoteURL string) (*RepoInfo, error) {
	trimmed := strings.TrimSuffix(strings.TrimSpace(remoteURL), ".git")

	var host, path string
	if _, rest, ok := strings.Cut(trimmed, "@"); ok {
		host, path = splitSCPLike(rest)
	} else {
		rest := trimmed
		for _, scheme := range []string{"https://", "http://"} {
			if after, found := strings.CutPrefix(rest, scheme); found {
				rest = after
				break
			}
		}
		host, path, _ = strings.Cut(rest, "/")
	}

	segments := strings.Split(path, "/")
	if host == "" || len(segments) < 2 ||
		segments[len(segments)-2] == "" || segments[len(segments)-1] == "" {
		return nil, fmt.Errorf("remote URL %q does not name a GitHub repository", strings.TrimSpace(remoteURL))
	}

	return &RepoInfo{
		Hostname: host,
		Owner:    segments[len(segments)-2],
		Repo:     segments[len(segments)-1],
	}, nil
}

// splitSCPLike splits host from path in the scp-like git@host:owner/repo
// form. Some setups rewrite the colon to a slash, so that is accepted too.
func splitSCPLike(rest string) (host, path string) {
	if h, p, ok := strings.Cut(rest, ":"); ok {
		return h, p
	}
	h, p, _ := strings.Cut(rest, "/")
	return h, p
}

// repoInfoFromOrigin resolves the origin remote of the current repository.
func repoInfoFromOrigin(ctx context.Context) (*RepoInfo, error) {
	remoteURL, err := git.RunGitCommandWithContext(ctx, "config", "--get", "remote.origin.url")
	if err != nil {
		return nil, fmt.Errorf("failed to read origin remote: %w", err)
	}

	return ParseGitHubRemoteURL(remoteURL)
}
