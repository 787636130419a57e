package github

import (
	"context"
	"fmt"
	"os"

	"github.com/google/go-github/v62/github"
	"golang.org/x/oauth2"

	"github.com/botirk38/rivet/internal/git"
)

// RealClient implements Client using the real GitHub API
type RealClient struct {
	api   *github.Client
	owner string
	repo  string
}

// NewRealClient creates a client authenticated for the current repository's
// origin remote. The token comes from GITHUB_TOKEN or the gh CLI, and the
// remote hostname decides between github.com and an Enterprise API endpoint.
func NewRealClient(ctx context.Context) (*RealClient, error) {
	token, err := getGitHubToken(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get GitHub token: %w", err)
	}

	repoInfo, err := repoInfoFromOrigin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get repository info: %w", err)
	}

	api, err := newAPIClient(ctx, repoInfo.Hostname, token)
	if err != nil {
		return nil, fmt.Errorf("failed to create GitHub client: %w", err)
	}

	return &RealClient{
		api:   api,
		owner: repoInfo.Owner,
		repo:  repoInfo.Repo,
	}, nil
}

// NewClientWithAPI wraps an existing go-github client. Tests use this to
// point the client at a mock server.
func NewClientWithAPI(api *github.Client, owner, repo string) *RealClient {
	return &RealClient{api: api, owner: owner, repo: repo}
}

// GetOwnerRepo reports which repository the client talks to.
func (c *RealClient) GetOwnerRepo() (string, string) {
	return c.owner, c.repo
}

// CreatePullRequest opens a pull request and best-effort applies any labels.
func (c *RealClient) CreatePullRequest(ctx context.Context, opts CreatePROptions) (*PullRequestInfo, error) {
	pr := &github.NewPullRequest{
		Title: github.String(opts.Title),
		Head:  github.String(opts.Head),
		Base:  github.String(opts.Base),
		Draft: github.Bool(opts.Draft),
	}
	if opts.Body != "" {
		pr.Body = github.String(opts.Body)
	}

	createdPR, _, err := c.api.PullRequests.Create(ctx, c.owner, c.repo, pr)
	if err != nil {
		return nil, fmt.Errorf("failed to create pull request: %w", err)
	}

	// Labels ride on the issue side of the PR. Label failures are non-fatal,
	// the PR itself already exists.
	if len(opts.Labels) > 0 && createdPR.GetNumber() != 0 {
		_, _, _ = c.api.Issues.AddLabelsToIssue(ctx, c.owner, c.repo, createdPR.GetNumber(), opts.Labels)
	}

	return toPullRequestInfo(createdPR), nil
}

// GetPullRequestByBranch finds the open pull request whose head is branchName.
func (c *RealClient) GetPullRequestByBranch(ctx context.Context, branchName string) (*PullRequestInfo, error) {
	prs, _, err := c.api.PullRequests.List(ctx, c.owner, c.repo, &github.PullRequestListOptions{
		Head:  fmt.Sprintf("%s:%s", c.owner, branchName),
		State: "open",
		ListOptions: github.ListOptions{
			PerPage: 1,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list pull requests: %w", err)
	}

	if len(prs) == 0 {
		return nil, nil
	}
	return toPullRequestInfo(prs[0]), nil
}

// toPullRequestInfo flattens a go-github pull request into our own type.
// The generated accessors are nil-safe, missing fields become zero values.
func toPullRequestInfo(pr *github.PullRequest) *PullRequestInfo {
	if pr == nil {
		return nil
	}
	return &PullRequestInfo{
		Number:  pr.GetNumber(),
		HTMLURL: pr.GetHTMLURL(),
		Title:   pr.GetTitle(),
		Body:    pr.GetBody(),
		State:   pr.GetState(),
		Draft:   pr.GetDraft(),
		Base:    pr.GetBase().GetRef(),
		Head:    pr.GetHead().GetRef(),
	}
}

// newAPIClient creates a go-github client for the given hostname, routing
// anything that is not github.com through the Enterprise API paths.
func newAPIClient(ctx context.Context, hostname, token string) (*github.Client, error) {
	source := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token})
	client := github.NewClient(oauth2.NewClient(ctx, source))

	if hostname == "github.com" {
		return client, nil
	}

	// WithEnterpriseURLs appends /api/v3/ and /api/uploads/ itself
	enterpriseURL := "https://" + hostname
	client, err := client.WithEnterpriseURLs(enterpriseURL, enterpriseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to configure enterprise endpoint %s: %w", hostname, err)
	}
	return client, nil
}

// getGitHubToken resolves a token from GITHUB_TOKEN, falling back to the gh
// CLI's stored credentials.
func getGitHubToken(ctx context.Context) (string, error) {
	if token := os.Getenv("GITHUB_TOKEN"); token != "" {
		return token, nil
	}

	token, err := git.RunGHCommandWithContext(ctx, "auth", "token")
	if err != nil {
		return "", fmt.Errorf("GITHUB_TOKEN is not set and gh has no stored token: %w", err)
	}
	if token == "" {
		return "", fmt.Errorf("gh returned an empty token")
	}
	return token, nil
}
