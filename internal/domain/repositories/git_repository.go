package repositories

import (
	"context"

	"github.com/rios0rios0/specforge/internal/domain/entities"
)

// GitRepository is the engine's view of one local working tree. Every
// operation delegates to the external binary through a GitRunner; nothing
// reimplements version-control logic in process.
type GitRepository interface {
	// Init initializes a repository in the work directory and seeds a default
	// ignore file when none exists yet.
	Init(ctx context.Context) error

	// IsRepository probes silently whether the work directory is inside a
	// working tree.
	IsRepository(ctx context.Context) bool

	// Status returns a snapshot of the working tree. Outside a repository it
	// returns an empty snapshot without running further commands.
	Status(ctx context.Context) (*entities.RepositoryStatus, error)

	// Stage adds the given paths to the index. An empty list is a no-op.
	Stage(ctx context.Context, paths []string) error

	// StageAll stages every change in the working tree, deletions included.
	StageAll(ctx context.Context) error

	// Unstage removes the given paths from the index. An empty list is a no-op.
	Unstage(ctx context.Context, paths []string) error

	// Commit records the staged changes and returns the resulting commit's
	// metadata, re-read from the log.
	Commit(ctx context.Context, message string) (*entities.CommitInfo, error)

	// Diff runs a comparison selected by opts and parses it into file diffs.
	Diff(ctx context.Context, opts entities.DiffOptions) ([]entities.FileDiff, error)

	// Log returns up to limit recent commits, newest first. A limit of zero
	// or less means the default of ten. Without any commit it returns an
	// empty list, not an error.
	Log(ctx context.Context, limit int) ([]entities.CommitInfo, error)

	// SetAutoCommit enables or disables the debounced auto-commit policy.
	// Disabling cancels a pending timer and drops pending-trigger state.
	SetAutoCommit(enabled bool)

	// TriggerAutoCommit restarts the auto-commit debounce window. Callers
	// invoke it once per observed filesystem change.
	TriggerAutoCommit()

	// SetWorkDir rebinds the repository to another working tree.
	SetWorkDir(path string)

	// WorkDir returns the currently bound working tree root.
	WorkDir() string

	// Dispose cancels any pending auto-commit work. It is idempotent.
	Dispose()
}

// GitRepositoryFactory builds a repository handle bound to the given
// settings. Callers own the handle's lifecycle and must Dispose it.
type GitRepositoryFactory func(settings *entities.Settings) GitRepository
