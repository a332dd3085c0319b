package controllers

import (
	"os"
	"os/signal"
	"syscall"

	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rios0rios0/specforge/internal/domain/commands"
	"github.com/rios0rios0/specforge/internal/domain/entities"
)

// WatchController runs the filesystem watcher that feeds the auto-commit
// scheduler.
type WatchController struct {
	command commands.Watch
}

// NewWatchController creates a new WatchController.
func NewWatchController(command commands.Watch) *WatchController {
	return &WatchController{command: command}
}

// GetBind returns the Cobra command metadata for the watch controller.
func (it *WatchController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "watch",
		Short: "Watch the work directory and auto-commit changes",
		Long: `Watch the work directory recursively and restart the auto-commit
debounce window on every change. One debounce delay after the last change the
engine stages everything and commits with a synthesized message. Stops on
SIGINT or SIGTERM.`,
	}
}

// AddFlags registers the watch-specific flags.
func (it *WatchController) AddFlags(cmd *cobra.Command) {
	cmd.Flags().Bool("initial", false, "Arm the debounce window once at startup")
}

// Execute runs the watch session until interrupted.
func (it *WatchController) Execute(cmd *cobra.Command, _ []string) {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	settings, err := resolveSettings(cmd)
	if err != nil {
		logger.Errorf("Failed to load settings: %v", err)
		return
	}

	initial, _ := cmd.Flags().GetBool("initial")

	if watchErr := it.command.Execute(ctx, settings, commands.WatchOptions{
		InitialTrigger: initial,
	}); watchErr != nil {
		logger.Errorf("Watch failed: %v", watchErr)
	}
}
