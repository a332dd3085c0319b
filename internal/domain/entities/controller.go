package entities

import (
	"github.com/spf13/cobra"
)

// ControllerBind holds the metadata a controller exposes to the CLI layer.
type ControllerBind struct {
	Use   string
	Short string
	Long  string
}

// Controller is a CLI-facing entry point wired into the root command.
type Controller interface {
	GetBind() ControllerBind
	Execute(cmd *cobra.Command, args []string)
}
