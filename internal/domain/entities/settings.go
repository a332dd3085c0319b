package entities

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"time"

	logger "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

// Duration wraps time.Duration so settings files can use human-readable
// values like "30s" or "2m".
type Duration time.Duration

// UnmarshalYAML implements yaml.Unmarshaler.
func (it *Duration) UnmarshalYAML(value *yaml.Node) error {
	var raw string
	if decodeErr := value.Decode(&raw); decodeErr != nil {
		return fmt.Errorf("failed to decode duration: %w", decodeErr)
	}

	parsed, parseErr := time.ParseDuration(raw)
	if parseErr != nil {
		return fmt.Errorf("failed to parse duration %q: %w", raw, parseErr)
	}

	*it = Duration(parsed)
	return nil
}

// Std returns the wrapped standard library duration.
func (it Duration) Std() time.Duration {
	return time.Duration(it)
}

// AutoCommitSettings controls the debounced auto-commit policy.
type AutoCommitSettings struct {
	Enabled         bool     `yaml:"enabled"`
	Delay           Duration `yaml:"delay"`            // debounce window after the last change
	MessageTemplate string   `yaml:"message_template"` // prefix of synthesized commit messages
}

// Settings is the engine configuration.
type Settings struct {
	WorkDir    string             `yaml:"work_dir"` // repository root the engine operates on
	GitBin     string             `yaml:"git_bin"`  // executable name or path, resolved via PATH
	Debug      bool               `yaml:"debug"`    // trace every invocation at debug level
	AutoCommit AutoCommitSettings `yaml:"auto_commit"`
}

// envVarPattern matches ${VAR_NAME} placeholders.
var envVarPattern = regexp.MustCompile(`\$\{([^}]+)}`)

const defaultAutoCommitDelay = 30 * time.Second

// DefaultSettings returns the configuration used when no settings file is
// present. Auto-commit starts disabled; callers opt in explicitly.
func DefaultSettings() *Settings {
	return &Settings{
		WorkDir: ".",
		GitBin:  "git",
		AutoCommit: AutoCommitSettings{
			Enabled:         false,
			Delay:           Duration(defaultAutoCommitDelay),
			MessageTemplate: "Auto-commit",
		},
	}
}

// NewSettings reads and parses a settings file, expanding environment
// variables in the work directory. Values omitted from the file keep their
// defaults.
func NewSettings(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read settings file %q: %w", path, err)
	}

	settings := DefaultSettings()
	if unmarshalErr := yaml.Unmarshal(data, settings); unmarshalErr != nil {
		return nil, fmt.Errorf("failed to parse settings file: %w", unmarshalErr)
	}

	settings.WorkDir = expandEnv(settings.WorkDir)

	if validateErr := settings.validate(); validateErr != nil {
		return nil, validateErr
	}

	return settings, nil
}

// FindConfigFile searches for a settings file in standard locations.
// Returns the path to the first file found or an error if none is found.
func FindConfigFile() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		homeDir = ""
	}

	locations := []string{
		".",
		".config",
		"configs",
	}
	if homeDir != "" {
		locations = append(
			locations,
			homeDir,
			filepath.Join(homeDir, ".config"),
		)
	}

	patterns := []string{
		".specforge.yaml",
		".specforge.yml",
		"specforge.yaml",
		"specforge.yml",
	}

	for _, loc := range locations {
		for _, pat := range patterns {
			p := filepath.Join(loc, pat)
			if _, statErr := os.Stat(p); statErr == nil {
				return p, nil
			}
		}
	}

	return "", errors.New("settings file not found in default locations")
}

// expandEnv expands ${ENV_VAR} references, replacing unset variables with an
// empty string.
func expandEnv(raw string) string {
	if raw == "" {
		return raw
	}

	return envVarPattern.ReplaceAllStringFunc(raw, func(match string) string {
		varName := envVarPattern.FindStringSubmatch(match)[1]
		if val := os.Getenv(varName); val != "" {
			return val
		}
		logger.Warnf("Environment variable %q is not set", varName)
		return ""
	})
}

// validate checks for required settings values.
func (it *Settings) validate() error {
	if it.GitBin == "" {
		return errors.New("git_bin must not be empty")
	}
	if it.WorkDir == "" {
		return errors.New("work_dir must not be empty")
	}
	if it.AutoCommit.Enabled && it.AutoCommit.Delay.Std() <= 0 {
		return errors.New("auto_commit.delay must be positive when auto-commit is enabled")
	}

	return nil
}
