// Package git provides read-only inspection of the local git repository:
// repo root discovery, branch listing, and default branch detection.
// Branchwise never creates branches or mutates the repository; the branch
// plan it emits is instantiated by the user or external tooling.
package git

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
)

// Repository wraps a go-git repository opened for inspection
type Repository struct {
	repo *gogit.Repository
	path string
}

// OpenRepository opens the git repository containing path
func OpenRepository(path string) (*Repository, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve path: %w", err)
	}

	repo, err := gogit.PlainOpenWithOptions(absPath, &gogit.PlainOpenOptions{
		DetectDotGit: true,
	})
	if err != nil {
		return nil, fmt.Errorf("not a git repository: %w", err)
	}

	worktree, err := repo.Worktree()
	if err != nil {
		return nil, fmt.Errorf("failed to get worktree: %w", err)
	}

	return &Repository{
		repo: repo,
		path: worktree.Filesystem.Root(),
	}, nil
}

// OpenFromCwd opens the repository containing the current directory
func OpenFromCwd() (*Repository, error) {
	wd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("failed to get working directory: %w", err)
	}
	return OpenRepository(wd)
}

// Root returns the root directory of the repository worktree
func (r *Repository) Root() string {
	return r.path
}

// BranchNames returns all local branch names, sorted
func (r *Repository) BranchNames() ([]string, error) {
	branches, err := r.repo.Branches()
	if err != nil {
		return nil, fmt.Errorf("failed to get branches: %w", err)
	}

	var names []string
	err = branches.ForEach(func(ref *plumbing.Reference) error {
		if ref.Name().IsBranch() {
			names = append(names, ref.Name().Short())
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to iterate branches: %w", err)
	}

	sort.Strings(names)
	return names, nil
}

// CurrentBranch returns the branch HEAD points at
func (r *Repository) CurrentBranch() (string, error) {
	head, err := r.repo.Head()
	if err != nil {
		return "", fmt.Errorf("failed to get HEAD: %w", err)
	}

	if !head.Name().IsBranch() {
		return "", fmt.Errorf("HEAD is not on a branch")
	}

	return head.Name().Short(), nil
}

// DefaultBranch guesses the repository's default branch: the current HEAD
// branch when available, otherwise the first of main/master that exists,
// otherwise "main".
func (r *Repository) DefaultBranch() string {
	if current, err := r.CurrentBranch(); err == nil {
		return current
	}

	names, err := r.BranchNames()
	if err == nil {
		for _, candidate := range []string{"main", "master"} {
			for _, name := range names {
				if name == candidate {
					return candidate
				}
			}
		}
	}
	return "main"
}

// RemoteURL returns the first URL of the named remote, or an error when
// the remote is not configured.
func (r *Repository) RemoteURL(name string) (string, error) {
	remote, err := r.repo.Remote(name)
	if err != nil {
		return "", fmt.Errorf("remote %s not configured: %w", name, err)
	}
	urls := remote.Config().URLs
	if len(urls) == 0 {
		return "", fmt.Errorf("remote %s has no URL", name)
	}
	return urls[0], nil
}

// HasBranch reports whether a local branch with the given name exists
func (r *Repository) HasBranch(name string) (bool, error) {
	_, err := r.repo.Reference(plumbing.NewBranchReferenceName(name), true)
	if err == nil {
		return true, nil
	}
	if err == plumbing.ErrReferenceNotFound {
		return false, nil
	}
	return false, fmt.Errorf("failed to resolve branch %s: %w", name, err)
}
