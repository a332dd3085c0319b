package controllers

import (
	"context"

	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rios0rios0/specforge/internal/domain/entities"
	"github.com/rios0rios0/specforge/internal/domain/repositories"
)

// StageController adds paths to the index.
type StageController struct {
	factory repositories.GitRepositoryFactory
}

// NewStageController creates a new StageController.
func NewStageController(factory repositories.GitRepositoryFactory) *StageController {
	return &StageController{factory: factory}
}

// GetBind returns the Cobra command metadata for the stage controller.
func (it *StageController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "stage [paths...]",
		Short: "Stage the given paths",
		Long:  `Stage the given paths, or every change in the working tree with --all.`,
	}
}

// AddFlags registers the stage-specific flags.
func (it *StageController) AddFlags(cmd *cobra.Command) {
	cmd.Flags().BoolP("all", "A", false, "Stage every change, deletions included")
}

// Execute stages the requested paths.
func (it *StageController) Execute(cmd *cobra.Command, args []string) {
	ctx := context.Background()

	settings, err := resolveSettings(cmd)
	if err != nil {
		logger.Errorf("Failed to load settings: %v", err)
		return
	}

	repo := it.factory(settings)
	defer repo.Dispose()

	if all, _ := cmd.Flags().GetBool("all"); all {
		if stageErr := repo.StageAll(ctx); stageErr != nil {
			logger.Errorf("Failed to stage all changes: %v", stageErr)
		}
		return
	}

	if len(args) == 0 {
		logger.Error("No paths given; pass paths or use --all")
		return
	}

	if stageErr := repo.Stage(ctx, args); stageErr != nil {
		logger.Errorf("Failed to stage: %v", stageErr)
	}
}
