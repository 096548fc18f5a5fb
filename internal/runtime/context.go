// Package runtime provides the context bundle that commands run against:
// logger, repository, and repo root. This keeps environment discovery out
// of the engine packages, which only ever receive plain data.
package runtime

import (
	"os"

	"branchwise.dev/branchwise/internal/git"
	"branchwise.dev/branchwise/internal/output"
)

// Context provides access to the logger and repository for commands
type Context struct {
	Splog    *output.Splog
	RepoRoot string
	Repo     *git.Repository // nil when not inside a git repository
}

// NewContext creates a context rooted at the current directory.
// Running outside a git repository is allowed: commands that need the
// repository check Repo themselves.
func NewContext() (*Context, error) {
	ctx := &Context{Splog: output.NewSplog()}

	repo, err := git.OpenFromCwd()
	if err != nil {
		wd, wdErr := os.Getwd()
		if wdErr != nil {
			return nil, wdErr
		}
		ctx.RepoRoot = wd
		return ctx, nil
	}

	ctx.Repo = repo
	ctx.RepoRoot = repo.Root()
	return ctx, nil
}

// InRepo reports whether the context is inside a git repository
func (c *Context) InRepo() bool {
	return c.Repo != nil
}
