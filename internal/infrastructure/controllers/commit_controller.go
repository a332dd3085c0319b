package controllers

import (
	"context"

	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rios0rios0/specforge/internal/domain/entities"
	"github.com/rios0rios0/specforge/internal/domain/repositories"
)

// CommitController records staged changes.
type CommitController struct {
	factory repositories.GitRepositoryFactory
}

// NewCommitController creates a new CommitController.
func NewCommitController(factory repositories.GitRepositoryFactory) *CommitController {
	return &CommitController{factory: factory}
}

// GetBind returns the Cobra command metadata for the commit controller.
func (it *CommitController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "commit",
		Short: "Record the staged changes",
		Long: `Record the staged changes with the given message and print the
metadata of the resulting commit, re-read from the log.`,
	}
}

// AddFlags registers the commit-specific flags.
func (it *CommitController) AddFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("message", "m", "", "Commit message (required)")
}

// Execute creates the commit.
func (it *CommitController) Execute(cmd *cobra.Command, _ []string) {
	ctx := context.Background()

	settings, err := resolveSettings(cmd)
	if err != nil {
		logger.Errorf("Failed to load settings: %v", err)
		return
	}

	message, _ := cmd.Flags().GetString("message")
	if message == "" {
		logger.Error("A commit message is required (-m)")
		return
	}

	repo := it.factory(settings)
	defer repo.Dispose()

	commit, commitErr := repo.Commit(ctx, message)
	if commitErr != nil {
		logger.Errorf("Commit failed: %v", commitErr)
		return
	}

	logger.Infof("Created commit %s: %s", commit.ShortHash, commit.Message)
}
