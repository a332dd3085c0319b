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

// DiffController compares revisions and the working tree.
type DiffController struct {
	factory repositories.GitRepositoryFactory
}

// NewDiffController creates a new DiffController.
func NewDiffController(factory repositories.GitRepositoryFactory) *DiffController {
	return &DiffController{factory: factory}
}

// GetBind returns the Cobra command metadata for the diff controller.
func (it *DiffController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "diff [paths...]",
		Short: "Show changes as parsed file diffs",
		Long: `Show changes between the working tree, the index (--staged) or an
explicit target revision, parsed into per-file hunks. The default parser is
lenient and skips malformed sections; --strict makes malformed input an error.`,
	}
}

// AddFlags registers the diff-specific flags.
func (it *DiffController) AddFlags(cmd *cobra.Command) {
	cmd.Flags().Bool("staged", false, "Compare the index against HEAD")
	cmd.Flags().String("target", "", "Revision or range to compare against")
	cmd.Flags().IntP("unified", "U", 0, "Context lines per hunk (0 keeps the tool default)")
	cmd.Flags().Bool("strict", false, "Reject malformed diff output instead of skipping it")
	cmd.Flags().Bool("json", false, "Print the parsed diffs as JSON")
}

// Execute runs the comparison and prints the result.
func (it *DiffController) Execute(cmd *cobra.Command, args []string) {
	ctx := context.Background()

	settings, err := resolveSettings(cmd)
	if err != nil {
		logger.Errorf("Failed to load settings: %v", err)
		return
	}

	staged, _ := cmd.Flags().GetBool("staged")
	target, _ := cmd.Flags().GetString("target")
	unified, _ := cmd.Flags().GetInt("unified")
	strict, _ := cmd.Flags().GetBool("strict")

	repo := it.factory(settings)
	defer repo.Dispose()

	diffs, diffErr := repo.Diff(ctx, entities.DiffOptions{
		Staged:       staged,
		Target:       target,
		ContextLines: unified,
		Paths:        args,
		Strict:       strict,
	})
	if diffErr != nil {
		logger.Errorf("Diff failed: %v", diffErr)
		return
	}

	out := cmd.OutOrStdout()
	if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
		if printErr := printJSON(out, diffs); printErr != nil {
			logger.Errorf("Failed to print diffs: %v", printErr)
		}
		return
	}

	printDiffs(out, diffs)
}

// printDiffs renders a compact per-file summary; the full payload is
// available through --json.
func printDiffs(out io.Writer, diffs []entities.FileDiff) {
	if len(diffs) == 0 {
		fmt.Fprintln(out, "no changes")
		return
	}

	for _, diff := range diffs {
		changed := 0
		for _, hunk := range diff.Hunks {
			for _, line := range hunk.Lines {
				if line.Type != entities.LineContext {
					changed++
				}
			}
		}
		fmt.Fprintf(out, "%-9s %s%s  %d hunk(s), %d line(s)\n",
			diff.Type, diff.Path, fromSuffix(diff.OldPath), len(diff.Hunks), changed)
	}
}
