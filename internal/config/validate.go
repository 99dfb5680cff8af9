package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"pracexam/internal/score"
)

// Issue captures a validation problem with a config field.
type Issue struct {
	Field   string
	Message string
}

// ValidationError aggregates config validation issues.
type ValidationError struct {
	Issues []Issue
}

// Error renders validation errors as a multi-line string.
func (err *ValidationError) Error() string {
	if err == nil || len(err.Issues) == 0 {
		return "config validation failed"
	}
	lines := make([]string, 0, len(err.Issues))
	for _, issue := range err.Issues {
		lines = append(lines, fmt.Sprintf("%s: %s", issue.Field, issue.Message))
	}
	return strings.Join(lines, "\n")
}

// issueCollector accumulates validation issues.
type issueCollector struct {
	issues []Issue
}

// add records a new validation issue.
func (c *issueCollector) add(field, message string) {
	c.issues = append(c.issues, Issue{Field: field, Message: message})
}

// result returns a ValidationError when issues are present.
func (c *issueCollector) result() error {
	if len(c.issues) == 0 {
		return nil
	}
	return &ValidationError{Issues: c.issues}
}

// Validate checks a normalized config for correctness.
func Validate(cfg *Config) error {
	collector := &issueCollector{}
	if cfg.Version == 0 {
		collector.add("version", "is required")
	} else if cfg.Version != 1 {
		collector.add("version", fmt.Sprintf("unsupported version %d", cfg.Version))
	}
	if cfg.Exam.Size < 0 {
		collector.add("exam.size", "must be positive")
	}
	if cfg.Exam.TimeLimitMinutes < 0 {
		collector.add("exam.time_limit_minutes", "must be positive")
	}
	if cfg.Exam.PassingScore < score.MinScaled || cfg.Exam.PassingScore > score.MaxScaled {
		collector.add("exam.passing_score", fmt.Sprintf("must be between %d and %d", score.MinScaled, score.MaxScaled))
	}
	validateFileName(collector, "results.summary_file", cfg.Results.SummaryFile)
	validateFileName(collector, "results.detail_file", cfg.Results.DetailFile)
	if cfg.Results.SummaryFile == cfg.Results.DetailFile {
		collector.add("results.detail_file", "must differ from results.summary_file")
	}
	switch cfg.UI.Mode {
	case UIModeAuto, UIModeLive, UIModePlain:
	default:
		collector.add("ui.mode", fmt.Sprintf("invalid mode %q (expected auto|live|plain)", cfg.UI.Mode))
	}
	return collector.result()
}

func validateFileName(collector *issueCollector, field, name string) {
	if strings.TrimSpace(name) == "" {
		collector.add(field, "is required")
		return
	}
	if filepath.Base(name) != name {
		collector.add(field, "must be a file name, not a path")
	}
}
