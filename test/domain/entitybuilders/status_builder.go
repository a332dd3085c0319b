//go:build integration || unit || test

package entitybuilders //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"github.com/rios0rios0/specforge/internal/domain/entities"
)

// StatusBuilder helps create test repository statuses with a fluent interface.
type StatusBuilder struct {
	isRepo    bool
	branch    string
	staged    []entities.FileStatus
	modified  []entities.FileStatus
	untracked []string
}

// NewStatusBuilder creates a status builder for a repository on main with a
// clean working tree.
func NewStatusBuilder() *StatusBuilder {
	return &StatusBuilder{ //nolint:exhaustruct // File lists default to empty
		isRepo: true,
		branch: "main",
	}
}

// WithBranch sets the checked-out branch name.
func (b *StatusBuilder) WithBranch(branch string) *StatusBuilder {
	b.branch = branch
	return b
}

// WithNonRepo marks the directory as outside any repository.
func (b *StatusBuilder) WithNonRepo() *StatusBuilder {
	b.isRepo = false
	b.branch = ""
	return b
}

// WithStaged appends staged entries for the given paths.
func (b *StatusBuilder) WithStaged(paths ...string) *StatusBuilder {
	for _, path := range paths {
		b.staged = append(b.staged, entities.FileStatus{ //nolint:exhaustruct // OldPath only applies to renames
			Path:   path,
			Status: entities.ChangeModified,
		})
	}
	return b
}

// WithModified appends unstaged modified entries for the given paths.
func (b *StatusBuilder) WithModified(paths ...string) *StatusBuilder {
	for _, path := range paths {
		b.modified = append(b.modified, entities.FileStatus{ //nolint:exhaustruct // OldPath only applies to renames
			Path:   path,
			Status: entities.ChangeModified,
		})
	}
	return b
}

// WithUntracked appends untracked paths.
func (b *StatusBuilder) WithUntracked(paths ...string) *StatusBuilder {
	b.untracked = append(b.untracked, paths...)
	return b
}

// Build creates the repository status.
func (b *StatusBuilder) Build() *entities.RepositoryStatus {
	return &entities.RepositoryStatus{
		IsRepo:    b.isRepo,
		Branch:    b.branch,
		Staged:    b.staged,
		Modified:  b.modified,
		Untracked: b.untracked,
		IsDirty:   len(b.staged)+len(b.modified)+len(b.untracked) > 0,
	}
}
