package repositories

import (
	"context"
)

// GitRunner abstracts the external version-control executable. Implementations
// spawn one process per call with an explicit argument vector (never through a
// shell) and capture both output streams.
type GitRunner interface {
	// Run executes the binary with the given arguments and returns captured
	// stdout. A non-zero exit or a spawn failure yields *entities.CommandError.
	Run(ctx context.Context, args ...string) (string, error)

	// RunSilent executes like Run but converts every failure into ok=false,
	// for advisory probes whose failure is an expected answer.
	RunSilent(ctx context.Context, args ...string) (string, bool)

	// SetDir rebinds the working directory used for subsequent invocations.
	SetDir(path string)

	// Dir returns the currently bound working directory.
	Dir() string
}
