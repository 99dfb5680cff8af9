package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"pracexam/internal/exam"
	"pracexam/internal/history"
	"pracexam/internal/question"
	"pracexam/internal/score"
)

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Version: 1,
		Bank:    DefaultBankFile,
		Exam: ExamConfig{
			Size:             question.DefaultExamSize,
			TimeLimitMinutes: int(exam.DefaultTimeLimit.Minutes()),
			PassingScore:     score.DefaultPassingScore,
		},
		Results: ResultsConfig{
			Dir:         DefaultResultsDir,
			SummaryFile: history.DefaultSummaryFile,
			DetailFile:  history.DefaultDetailFile,
		},
		UI: UIConfig{Mode: UIModeAuto},
	}
}

// Normalize fills unset fields with defaults and resolves paths against baseDir.
func Normalize(cfg *Config, baseDir string) error {
	defaults := Default()
	if cfg.Bank == "" {
		cfg.Bank = defaults.Bank
	}
	if cfg.Exam.Size == 0 {
		cfg.Exam.Size = defaults.Exam.Size
	}
	if cfg.Exam.TimeLimitMinutes == 0 {
		cfg.Exam.TimeLimitMinutes = defaults.Exam.TimeLimitMinutes
	}
	if cfg.Exam.PassingScore == 0 {
		cfg.Exam.PassingScore = defaults.Exam.PassingScore
	}
	if strings.TrimSpace(cfg.Results.Dir) == "" {
		cfg.Results.Dir = defaults.Results.Dir
	}
	if cfg.Results.SummaryFile == "" {
		cfg.Results.SummaryFile = defaults.Results.SummaryFile
	}
	if cfg.Results.DetailFile == "" {
		cfg.Results.DetailFile = defaults.Results.DetailFile
	}
	cfg.UI.Mode = strings.ToLower(strings.TrimSpace(cfg.UI.Mode))
	if cfg.UI.Mode == "" {
		cfg.UI.Mode = defaults.UI.Mode
	}

	bank, err := ResolvePath(cfg.Bank, baseDir)
	if err != nil {
		return err
	}
	cfg.Bank = bank
	dir, err := ResolvePath(cfg.Results.Dir, baseDir)
	if err != nil {
		return err
	}
	cfg.Results.Dir = dir
	return nil
}

// ResolvePath expands a leading ~ and makes relative paths absolute under baseDir.
func ResolvePath(path, baseDir string) (string, error) {
	path = strings.TrimSpace(path)
	if path == "~" || strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home directory: %w", err)
		}
		path = filepath.Join(home, strings.TrimPrefix(path, "~"))
	}
	if !filepath.IsAbs(path) {
		path = filepath.Join(baseDir, path)
	}
	return filepath.Clean(path), nil
}

// SummaryPath returns the full path of the summary log.
func (c Config) SummaryPath() string {
	return filepath.Join(c.Results.Dir, c.Results.SummaryFile)
}

// DetailPath returns the full path of the detail log.
func (c Config) DetailPath() string {
	return filepath.Join(c.Results.Dir, c.Results.DetailFile)
}

// Recorder returns a history recorder for the configured logs.
func (c Config) Recorder() history.Recorder {
	return history.Recorder{SummaryPath: c.SummaryPath(), DetailPath: c.DetailPath()}
}
