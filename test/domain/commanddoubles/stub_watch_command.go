//go:build integration || unit || test

// Package commanddoubles provides test doubles for command interfaces.
package commanddoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"

	"github.com/rios0rios0/specforge/internal/domain/commands"
	"github.com/rios0rios0/specforge/internal/domain/entities"
)

// StubWatchCommand implements commands.Watch and records the last invocation.
type StubWatchCommand struct {
	ExecuteCallCount int
	ExecuteErr       error
	LastSettings     *entities.Settings
	LastOpts         commands.WatchOptions
}

var _ commands.Watch = (*StubWatchCommand)(nil)

// Execute records the invocation and returns the configured error.
func (s *StubWatchCommand) Execute(_ context.Context, settings *entities.Settings, opts commands.WatchOptions) error {
	s.ExecuteCallCount++
	s.LastSettings = settings
	s.LastOpts = opts
	return s.ExecuteErr
}
