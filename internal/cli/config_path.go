package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"pracexam/internal/config"
)

// configOverrides carries command-line values that replace config fields.
type configOverrides struct {
	Bank       string
	ResultsDir string
	Size       int
	Minutes    int
	UIMode     string
	NoColor    bool
}

// loadConfig loads the config at specPath, or the nearest .pracexam/config.yml,
// or defaults, then applies overrides relative to the working directory.
func loadConfig(specPath string, overrides configOverrides) (config.Config, error) {
	cfg, _, err := config.LoadOrDefault(strings.TrimSpace(specPath))
	if err != nil {
		return config.Config{}, err
	}
	wd, err := os.Getwd()
	if err != nil {
		return config.Config{}, fmt.Errorf("get working directory: %w", err)
	}
	if overrides.Bank != "" {
		if cfg.Bank, err = config.ResolvePath(overrides.Bank, wd); err != nil {
			return config.Config{}, err
		}
	}
	if overrides.ResultsDir != "" {
		if cfg.Results.Dir, err = config.ResolvePath(overrides.ResultsDir, wd); err != nil {
			return config.Config{}, err
		}
	}
	if overrides.Size != 0 {
		cfg.Exam.Size = overrides.Size
	}
	if overrides.Minutes != 0 {
		cfg.Exam.TimeLimitMinutes = overrides.Minutes
	}
	if overrides.UIMode != "" {
		cfg.UI.Mode = strings.ToLower(strings.TrimSpace(overrides.UIMode))
	}
	cfg.UI.NoColor = cfg.UI.NoColor || overrides.NoColor
	if err := config.Validate(&cfg); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

// defaultSpecPath returns where init writes the config when --spec is unset.
func defaultSpecPath() (string, error) {
	wd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("get working directory: %w", err)
	}
	return config.ConfigPath(wd), nil
}

// resolveSpecPath makes an explicit spec path absolute.
func resolveSpecPath(specPath string) (string, error) {
	if strings.TrimSpace(specPath) == "" {
		return defaultSpecPath()
	}
	abs, err := filepath.Abs(specPath)
	if err != nil {
		return "", fmt.Errorf("resolve spec path: %w", err)
	}
	return abs, nil
}
