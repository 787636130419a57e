package git

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
)

// goGitMu synchronizes go-git object reads to prevent concurrent packfile access
var goGitMu sync.Mutex

// GetRepoRoot locates the root of the repository enclosing the current
// working directory.
func GetRepoRoot() (string, error) {
	wd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("failed to get working directory: %w", err)
	}

	repo, err := gogit.PlainOpenWithOptions(wd, &gogit.PlainOpenOptions{
		DetectDotGit: true,
	})
	if err != nil {
		return "", fmt.Errorf("not a git repository: %w", err)
	}

	worktree, err := repo.Worktree()
	if err != nil {
		return "", fmt.Errorf("failed to get worktree: %w", err)
	}
	return worktree.Filesystem.Root(), nil
}

// Repository wraps a go-git repository
type Repository struct {
	*gogit.Repository
	path string
}

// OpenRepository opens the git repository at path, searching upward for the
// .git directory the way the git CLI does.
func OpenRepository(path string) (*Repository, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve path: %w", err)
	}

	repo, err := gogit.PlainOpenWithOptions(absPath, &gogit.PlainOpenOptions{
		DetectDotGit: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open repository: %w", err)
	}

	return &Repository{Repository: repo, path: absPath}, nil
}

// GetRepoRoot reports the directory this repository was opened at.
func (r *Repository) GetRepoRoot() string {
	return r.path
}

// GetCurrentBranch returns the name of the checked-out branch.
func (r *Repository) GetCurrentBranch() (string, error) {
	head, err := r.Head()
	if err != nil {
		return "", fmt.Errorf("failed to get HEAD: %w", err)
	}
	if !head.Name().IsBranch() {
		return "", fmt.Errorf("HEAD is not on a branch")
	}
	return head.Name().Short(), nil
}

// CommitInfo describes a single commit on the current branch.
type CommitInfo struct {
	SHA     string
	Subject string
	Message string
}

func newCommitInfo(commit *object.Commit) CommitInfo {
	message := strings.TrimSpace(commit.Message)
	subject, _, _ := strings.Cut(message, "\n")
	return CommitInfo{
		SHA:     commit.Hash.String(),
		Subject: strings.TrimSpace(subject),
		Message: message,
	}
}

// CommitsAhead returns the commits on HEAD that are not reachable from base,
// oldest first. When base cannot be resolved (no remote, fresh repository) it
// returns the full history of HEAD.
func (r *Repository) CommitsAhead(base string) ([]CommitInfo, error) {
	goGitMu.Lock()
	head, err := r.Head()
	goGitMu.Unlock()
	if err != nil {
		return nil, fmt.Errorf("failed to get HEAD: %w", err)
	}

	stop := plumbing.ZeroHash
	if base != "" {
		if baseHash, resolveErr := r.resolveRef(base); resolveErr == nil {
			stop, err = r.mergeBase(baseHash, head.Hash())
			if err != nil {
				return nil, err
			}
		}
	}

	commits, err := r.commitsBetween(head.Hash(), stop)
	if err != nil {
		return nil, fmt.Errorf("failed to iterate commits: %w", err)
	}

	// commitsBetween walks newest first
	infos := make([]CommitInfo, 0, len(commits))
	for i := len(commits) - 1; i >= 0; i-- {
		infos = append(infos, newCommitInfo(commits[i]))
	}
	return infos, nil
}

// GetBranchCommits returns the commits that the current branch carries beyond
// base, oldest first.
func GetBranchCommits(repoRoot, base string) ([]CommitInfo, error) {
	repo, err := OpenRepository(repoRoot)
	if err != nil {
		return nil, err
	}
	return repo.CommitsAhead(base)
}

// mergeBase finds the merge base of two commits. Returns the zero hash when
// the histories are unrelated.
func (r *Repository) mergeBase(baseHash, headHash plumbing.Hash) (plumbing.Hash, error) {
	goGitMu.Lock()
	defer goGitMu.Unlock()

	baseCommit, err := r.CommitObject(baseHash)
	if err != nil {
		return plumbing.ZeroHash, fmt.Errorf("failed to get base commit: %w", err)
	}
	headCommit, err := r.CommitObject(headHash)
	if err != nil {
		return plumbing.ZeroHash, fmt.Errorf("failed to get head commit: %w", err)
	}

	bases, err := baseCommit.MergeBase(headCommit)
	if err != nil {
		return plumbing.ZeroHash, fmt.Errorf("failed to find merge base: %w", err)
	}
	if len(bases) == 0 {
		return plumbing.ZeroHash, nil
	}
	return bases[0].Hash, nil
}

// commitsBetween collects the commits reachable from head without crossing
// stop, newest first. A zero stop hash walks the full history.
func (r *Repository) commitsBetween(headHash, stopHash plumbing.Hash) ([]*object.Commit, error) {
	goGitMu.Lock()
	defer goGitMu.Unlock()

	seen := make(map[plumbing.Hash]bool)
	pending := []plumbing.Hash{headHash}
	var commits []*object.Commit

	for len(pending) > 0 {
		hash := pending[0]
		pending = pending[1:]
		if seen[hash] {
			continue
		}
		seen[hash] = true
		if !stopHash.IsZero() && hash == stopHash {
			continue
		}

		commit, err := r.CommitObject(hash)
		if err != nil {
			return nil, fmt.Errorf("failed to get commit %s: %w", hash, err)
		}
		commits = append(commits, commit)
		pending = append(pending, commit.ParentHashes...)
	}

	return commits, nil
}

// resolveRef resolves a branch name, remote-tracking branch, or revision
// expression (SHA, HEAD~1) to a commit hash.
func (r *Repository) resolveRef(ref string) (plumbing.Hash, error) {
	goGitMu.Lock()
	defer goGitMu.Unlock()

	candidates := []plumbing.ReferenceName{
		plumbing.ReferenceName(ref),
		plumbing.NewBranchReferenceName(ref),
		plumbing.NewRemoteReferenceName("origin", ref),
	}
	for _, name := range candidates {
		if resolved, err := r.Reference(name, true); err == nil {
			return resolved.Hash(), nil
		}
	}

	if hash, err := r.ResolveRevision(plumbing.Revision(ref)); err == nil {
		return *hash, nil
	}
	return plumbing.ZeroHash, fmt.Errorf("failed to resolve ref %s: reference not found", ref)
}
