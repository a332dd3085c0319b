package controllers

import (
	"context"
	"fmt"
	"io"
	"strings"

	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rios0rios0/specforge/internal/domain/entities"
	"github.com/rios0rios0/specforge/internal/domain/repositories"
)

// LogController lists recent commits.
type LogController struct {
	factory repositories.GitRepositoryFactory
}

// NewLogController creates a new LogController.
func NewLogController(factory repositories.GitRepositoryFactory) *LogController {
	return &LogController{factory: factory}
}

// GetBind returns the Cobra command metadata for the log controller.
func (it *LogController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "log",
		Short: "List recent commits, newest first",
		Long: `List recent commits, newest first. A repository without any commit
yields an empty list, not an error.`,
	}
}

// AddFlags registers the log-specific flags.
func (it *LogController) AddFlags(cmd *cobra.Command) {
	cmd.Flags().IntP("limit", "n", 0, "Number of commits to list (default 10)")
	cmd.Flags().Bool("json", false, "Print the commits as JSON")
}

// Execute reads and prints the log.
func (it *LogController) Execute(cmd *cobra.Command, _ []string) {
	ctx := context.Background()

	settings, err := resolveSettings(cmd)
	if err != nil {
		logger.Errorf("Failed to load settings: %v", err)
		return
	}

	limit, _ := cmd.Flags().GetInt("limit")

	repo := it.factory(settings)
	defer repo.Dispose()

	commits, logErr := repo.Log(ctx, limit)
	if logErr != nil {
		logger.Errorf("Failed to read log: %v", logErr)
		return
	}

	out := cmd.OutOrStdout()
	if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
		if printErr := printJSON(out, commits); printErr != nil {
			logger.Errorf("Failed to print log: %v", printErr)
		}
		return
	}

	printCommits(out, commits)
}

// printCommits renders one line per commit: short hash, date, author and the
// message's first line.
func printCommits(out io.Writer, commits []entities.CommitInfo) {
	if len(commits) == 0 {
		fmt.Fprintln(out, "no commits")
		return
	}

	for _, commit := range commits {
		subject, _, _ := strings.Cut(commit.Message, "\n")
		fmt.Fprintf(out, "%s  %s  %-20s %s\n",
			commit.ShortHash,
			commit.Timestamp.Format("2006-01-02 15:04"),
			commit.AuthorName,
			subject,
		)
	}
}
