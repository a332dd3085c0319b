package controllers

import (
	"context"

	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rios0rios0/specforge/internal/domain/entities"
	"github.com/rios0rios0/specforge/internal/domain/repositories"
)

// UnstageController removes paths from the index.
type UnstageController struct {
	factory repositories.GitRepositoryFactory
}

// NewUnstageController creates a new UnstageController.
func NewUnstageController(factory repositories.GitRepositoryFactory) *UnstageController {
	return &UnstageController{factory: factory}
}

// GetBind returns the Cobra command metadata for the unstage controller.
func (it *UnstageController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "unstage <paths...>",
		Short: "Remove the given paths from the index",
		Long:  `Remove the given paths from the index; the working tree stays untouched.`,
	}
}

// Execute unstages the requested paths.
func (it *UnstageController) Execute(cmd *cobra.Command, args []string) {
	ctx := context.Background()

	settings, err := resolveSettings(cmd)
	if err != nil {
		logger.Errorf("Failed to load settings: %v", err)
		return
	}

	repo := it.factory(settings)
	defer repo.Dispose()

	if len(args) == 0 {
		logger.Error("No paths given")
		return
	}

	if unstageErr := repo.Unstage(ctx, args); unstageErr != nil {
		logger.Errorf("Failed to unstage: %v", unstageErr)
	}
}
