package controllers

import (
	"context"

	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rios0rios0/specforge/internal/domain/entities"
	"github.com/rios0rios0/specforge/internal/domain/repositories"
)

// InitController handles repository initialization.
type InitController struct {
	factory repositories.GitRepositoryFactory
}

// NewInitController creates a new InitController.
func NewInitController(factory repositories.GitRepositoryFactory) *InitController {
	return &InitController{factory: factory}
}

// GetBind returns the Cobra command metadata for the init controller.
func (it *InitController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "init",
		Short: "Initialize a repository in the work directory",
		Long: `Initialize a repository in the work directory and seed a default
ignore file when none exists yet. An existing ignore file is never touched.`,
	}
}

// Execute runs the initialization.
func (it *InitController) Execute(cmd *cobra.Command, _ []string) {
	ctx := context.Background()

	settings, err := resolveSettings(cmd)
	if err != nil {
		logger.Errorf("Failed to load settings: %v", err)
		return
	}

	repo := it.factory(settings)
	defer repo.Dispose()

	if initErr := repo.Init(ctx); initErr != nil {
		logger.Errorf("Initialization failed: %v", initErr)
		return
	}

	logger.Infof("Initialized repository in %q", repo.WorkDir())
}
