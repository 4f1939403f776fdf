// Package repository locates the git worktree that hookcheck is running in. Checks run from the root of that worktree
// unless they configure a working directory of their own.
package repository

import (
	"path/filepath"

	"github.com/go-git/go-git/v5"

	"github.com/rwx-research/hookcheck/internal/errors"
)

// Root returns the root of the worktree containing `dir`. It returns an empty string & no error if `dir` is not inside
// a git repository.
func Root(dir string) (string, error) {
	repo, err := git.PlainOpenWithOptions(dir, &git.PlainOpenOptions{DetectDotGit: true})
	if errors.Is(err, git.ErrRepositoryNotExists) {
		return "", nil
	}
	if err != nil {
		return "", errors.NewSystemError("unable to open git repository at %q: %s", dir, err)
	}

	worktree, err := repo.Worktree()
	if errors.Is(err, git.ErrIsBareRepository) {
		return "", nil
	}
	if err != nil {
		return "", errors.NewSystemError("unable to open git worktree at %q: %s", dir, err)
	}

	root, err := filepath.Abs(worktree.Filesystem.Root())
	if err != nil {
		return "", errors.WithStack(err)
	}

	return root, nil
}
