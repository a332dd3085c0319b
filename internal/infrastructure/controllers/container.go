package controllers

import (
	"github.com/rios0rios0/specforge/internal/domain/entities"
	"go.uber.org/dig"
)

// RegisterProviders registers all controller providers with the DIG container.
func RegisterProviders(container *dig.Container) error {
	// Register controller constructors
	constructors := []any{
		NewInitController,
		NewStatusController,
		NewStageController,
		NewUnstageController,
		NewCommitController,
		NewDiffController,
		NewLogController,
		NewWatchController,
		NewControllers,
	}
	for _, constructor := range constructors {
		if err := container.Provide(constructor); err != nil {
			return err
		}
	}

	return nil
}

// NewControllers aggregates all controllers into a slice for the AppInternal.
func NewControllers(
	initController *InitController,
	statusController *StatusController,
	stageController *StageController,
	unstageController *UnstageController,
	commitController *CommitController,
	diffController *DiffController,
	logController *LogController,
	watchController *WatchController,
) *[]entities.Controller {
	return &[]entities.Controller{
		initController,
		statusController,
		stageController,
		unstageController,
		commitController,
		diffController,
		logController,
		watchController,
	}
}
