// Package git reads the revision a tree file was committed at.
package git

import (
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"

	"git.home.luguber.info/inful/ktdocs/internal/logfields"
	"github.com/go-git/go-git/v5"
)

// ErrNotRepository is returned when no repository encloses the path.
var ErrNotRepository = errors.New("not inside a git repository")

// Revision identifies a commit.
type Revision struct {
	Commit string `json:"commit"`
	Branch string `json:"branch,omitempty"`
	// Dirty is set when the worktree has uncommitted changes.
	Dirty bool `json:"dirty,omitempty"`
}

// Short returns the abbreviated commit hash.
func (r Revision) Short() string {
	if len(r.Commit) > 8 {
		return r.Commit[:8]
	}
	return r.Commit
}

// RevisionAt resolves HEAD of the repository containing path. path may be a
// file or a directory; parent directories are searched for .git.
func RevisionAt(path string) (Revision, error) {
	dir := path
	if filepath.Ext(path) != "" {
		dir = filepath.Dir(path)
	}

	repository, err := git.PlainOpenWithOptions(dir, &git.PlainOpenOptions{DetectDotGit: true})
	if errors.Is(err, git.ErrRepositoryNotExists) {
		return Revision{}, ErrNotRepository
	}
	if err != nil {
		return Revision{}, fmt.Errorf("failed to open repository: %w", err)
	}

	ref, err := repository.Head()
	if err != nil {
		return Revision{}, fmt.Errorf("failed to resolve HEAD: %w", err)
	}

	rev := Revision{Commit: ref.Hash().String()}
	if ref.Name().IsBranch() {
		rev.Branch = ref.Name().Short()
	}

	if wt, err := repository.Worktree(); err == nil {
		if status, err := wt.Status(); err == nil {
			rev.Dirty = !status.IsClean()
		}
	}

	slog.Debug("Resolved tree revision", logfields.Path(path), slog.String("commit", rev.Short()), slog.Bool("dirty", rev.Dirty))
	return rev, nil
}
