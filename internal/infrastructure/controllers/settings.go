package controllers

import (
	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rios0rios0/specforge/internal/domain/entities"
)

// resolveSettings loads the engine settings for one CLI invocation. An
// explicit --config path wins, otherwise the standard locations are
// searched, and without any file the defaults apply. The --dir and
// --verbose flags override the file.
func resolveSettings(cmd *cobra.Command) (*entities.Settings, error) {
	cfgPath, _ := cmd.Flags().GetString("config")
	if cfgPath == "" {
		if found, findErr := entities.FindConfigFile(); findErr == nil {
			cfgPath = found
		}
	}

	settings := entities.DefaultSettings()
	if cfgPath != "" {
		loaded, loadErr := entities.NewSettings(cfgPath)
		if loadErr != nil {
			return nil, loadErr
		}
		settings = loaded
	}

	if dir, _ := cmd.Flags().GetString("dir"); dir != "" {
		settings.WorkDir = dir
	}
	if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
		settings.Debug = true
	}
	if settings.Debug {
		logger.SetLevel(logger.DebugLevel)
	}

	return settings, nil
}
