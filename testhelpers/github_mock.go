package testhelpers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/google/go-github/v62/github"
)

// MockGitHubServerConfig holds the state a mock GitHub server serves and
// records. Tests inspect CreatedPRs after exercising the client.
type MockGitHubServerConfig struct {
	// PRs maps head branch names to pull requests for list-by-head queries
	PRs map[string]*github.PullRequest
	// CreatedPRs records every pull request created through the server
	CreatedPRs []*github.PullRequest
	// CreateStatus overrides the status code for create requests, for
	// simulating API failures. Zero means 201 Created.
	CreateStatus int
	// Owner and Repo name the repository the server pretends to host
	Owner string
	Repo  string
}

// NewMockGitHubServerConfig returns a config for an empty owner/repo
// repository.
func NewMockGitHubServerConfig() *MockGitHubServerConfig {
	return &MockGitHubServerConfig{
		PRs:        make(map[string]*github.PullRequest),
		CreatedPRs: make([]*github.PullRequest, 0),
		Owner:      "owner",
		Repo:       "repo",
	}
}

// NewMockGitHubServer starts an httptest server speaking the two pull
// request endpoints the GitHub client touches: create, and list filtered by
// head branch. The server stops when the test ends.
func NewMockGitHubServer(t *testing.T, config *MockGitHubServerConfig) *httptest.Server {
	if config == nil {
		config = NewMockGitHubServerConfig()
	}

	pullsPath := fmt.Sprintf("/repos/%s/%s/pulls", config.Owner, config.Repo)

	mux := http.NewServeMux()
	// Method patterns ("POST /path") need Go 1.22's ServeMux; dispatch on
	// r.Method so the routing works on Go 1.21 too.
	mux.HandleFunc(pullsPath, func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodPost:
			config.handleCreatePR(w, r)
		case http.MethodGet:
			config.handleListPRs(w, r)
		default:
			http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		}
	})

	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	return server
}

func (c *MockGitHubServerConfig) handleCreatePR(w http.ResponseWriter, r *http.Request) {
	if c.CreateStatus != 0 && c.CreateStatus != http.StatusCreated {
		http.Error(w, "create failed", c.CreateStatus)
		return
	}

	var request github.NewPullRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	number := len(c.CreatedPRs) + 1
	pr := &github.PullRequest{
		Number:  github.Int(number),
		Title:   request.Title,
		Body:    request.Body,
		Head:    &github.PullRequestBranch{Ref: request.Head},
		Base:    &github.PullRequestBranch{Ref: request.Base},
		Draft:   request.Draft,
		HTMLURL: github.String(fmt.Sprintf("https://github.com/%s/%s/pull/%d", c.Owner, c.Repo, number)),
	}

	c.CreatedPRs = append(c.CreatedPRs, pr)
	if request.Head != nil {
		c.PRs[*request.Head] = pr
	}

	writeJSON(w, http.StatusCreated, pr)
}

// handleListPRs serves list queries. The head parameter arrives in
// "owner:branch" format.
func (c *MockGitHubServerConfig) handleListPRs(w http.ResponseWriter, r *http.Request) {
	branch := strings.TrimPrefix(r.URL.Query().Get("head"), c.Owner+":")

	matches := []*github.PullRequest{}
	if pr, ok := c.PRs[branch]; ok && branch != "" {
		matches = append(matches, pr)
	}

	writeJSON(w, http.StatusOK, matches)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// NewMockGitHubClient starts a mock server and returns a go-github client
// pointed at it, along with the owner and repo names it serves.
func NewMockGitHubClient(t *testing.T, config *MockGitHubServerConfig) (*github.Client, string, string) {
	if config == nil {
		config = NewMockGitHubServerConfig()
	}
	server := NewMockGitHubServer(t, config)

	client := github.NewClient(nil)
	baseURL := Must(url.Parse(server.URL + "/"))
	client.BaseURL = baseURL
	client.UploadURL = baseURL

	return client, config.Owner, config.Repo
}
