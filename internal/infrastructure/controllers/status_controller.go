package controllers

import (
	"context"
	"fmt"
	"io"

	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rios0rios0/specforge/internal/domain/entities"
	"github.com/rios0rios0/specforge/internal/domain/repositories"
)

// StatusController reports the working tree state.
type StatusController struct {
	factory repositories.GitRepositoryFactory
}

// NewStatusController creates a new StatusController.
func NewStatusController(factory repositories.GitRepositoryFactory) *StatusController {
	return &StatusController{factory: factory}
}

// GetBind returns the Cobra command metadata for the status controller.
func (it *StatusController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "status",
		Short: "Show staged, modified and untracked files",
		Long: `Show a snapshot of the working tree: current branch, staged entries,
modified entries and untracked paths. Outside a repository the snapshot is empty.`,
	}
}

// AddFlags registers the status-specific flags.
func (it *StatusController) AddFlags(cmd *cobra.Command) {
	cmd.Flags().Bool("json", false, "Print the snapshot as JSON")
}

// Execute reads and prints the snapshot.
func (it *StatusController) Execute(cmd *cobra.Command, _ []string) {
	ctx := context.Background()

	settings, err := resolveSettings(cmd)
	if err != nil {
		logger.Errorf("Failed to load settings: %v", err)
		return
	}

	repo := it.factory(settings)
	defer repo.Dispose()

	status, statusErr := repo.Status(ctx)
	if statusErr != nil {
		logger.Errorf("Failed to read status: %v", statusErr)
		return
	}

	out := cmd.OutOrStdout()
	if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
		if printErr := printJSON(out, status); printErr != nil {
			logger.Errorf("Failed to print status: %v", printErr)
		}
		return
	}

	printStatus(out, status)
}

// printStatus renders the human-readable snapshot.
func printStatus(out io.Writer, status *entities.RepositoryStatus) {
	if !status.IsRepo {
		fmt.Fprintln(out, "not a repository")
		return
	}

	branch := status.Branch
	if branch == "" {
		branch = "(detached)"
	}
	fmt.Fprintf(out, "On branch %s\n", branch)

	if !status.IsDirty {
		fmt.Fprintln(out, "working tree clean")
		return
	}

	for _, file := range status.Staged {
		fmt.Fprintf(out, "staged    %-9s %s%s\n", file.Status, file.Path, fromSuffix(file.OldPath))
	}
	for _, file := range status.Modified {
		fmt.Fprintf(out, "modified  %-9s %s\n", file.Status, file.Path)
	}
	for _, path := range status.Untracked {
		fmt.Fprintf(out, "untracked           %s\n", path)
	}
}

// fromSuffix formats the rename origin when present.
func fromSuffix(oldPath string) string {
	if oldPath == "" {
		return ""
	}
	return fmt.Sprintf(" (from %s)", oldPath)
}
