// Package git gives the rest of rivet a Go-friendly view of a repository.
//
// It mixes shelling out to git with go-git, covering:
//   - Staging and commit operations (stage all, commit, amend)
//   - Repo state queries (staged diff, numstat, branch commits)
//   - Remote operations (push, base branch detection)
//
// No other package runs git directly; everything goes through here.
package git
