// Package github provides a client for creating pull requests through the
// GitHub API, for both github.com and GitHub Enterprise hosts.
package github

import "context"

// PullRequestInfo describes a pull request in the fields callers care
// about, so they stay decoupled from the go-github types.
type PullRequestInfo struct {
	Number  int
	HTMLURL string
	Title   string
	Body    string
	State   string
	Draft   bool
	Base    string
	Head    string
}

// CreatePROptions carries everything needed to open a pull request.
type CreatePROptions struct {
	Title  string
	Body   string
	Head   string
	Base   string
	Draft  bool
	Labels []string
}

// Client covers the GitHub API surface rivet needs.
type Client interface {
	// CreatePullRequest opens a pull request from opts.Head into opts.Base.
	CreatePullRequest(ctx context.Context, opts CreatePROptions) (*PullRequestInfo, error)

	// GetPullRequestByBranch finds the open pull request whose head is the
	// given branch, or nil when no such PR exists.
	GetPullRequestByBranch(ctx context.Context, branchName string) (*PullRequestInfo, error)

	// GetOwnerRepo reports which repository the client talks to.
	GetOwnerRepo() (owner, repo string)
}
