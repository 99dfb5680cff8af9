package cucumber

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"pracexam/internal/testutil"
)

// aWorkspaceWithBank creates a temp directory holding a config and a bank of
// n questions, and makes it the working directory.
func (s *featureState) aWorkspaceWithBank(n int) error {
	dir, err := os.MkdirTemp("", "pracexam-feature-*")
	if err != nil {
		return fmt.Errorf("create temp workspace: %w", err)
	}
	s.workDir = dir
	s.configPath = filepath.Join(dir, ".pracexam", "config.yml")
	if err := os.MkdirAll(filepath.Dir(s.configPath), 0o755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}
	if err := s.writeConfig(validConfigYAML()); err != nil {
		return err
	}
	data, err := json.MarshalIndent(testutil.BankEntries(n), "", "  ")
	if err != nil {
		return fmt.Errorf("marshal bank: %w", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "questions.json"), data, 0o644); err != nil {
		return fmt.Errorf("write bank: %w", err)
	}
	wd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("get working dir: %w", err)
	}
	s.previousWD = wd
	if err := os.Chdir(dir); err != nil {
		return fmt.Errorf("chdir: %w", err)
	}
	return nil
}

// theConfigIsInvalid replaces the config with an unsupported version.
func (s *featureState) theConfigIsInvalid() error {
	return s.writeConfig(invalidConfigYAML())
}

// writeConfig persists configuration content to the workspace config path.
func (s *featureState) writeConfig(contents string) error {
	if s.configPath == "" {
		return fmt.Errorf("config path is not set")
	}
	if err := os.WriteFile(s.configPath, []byte(contents), 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

// resultsDir is where the workspace config sends the logs.
func (s *featureState) resultsDir() string {
	return filepath.Join(s.workDir, "results")
}

// validConfigYAML returns a config that keeps every file in the workspace.
func validConfigYAML() string {
	return `version: 1
bank: "questions.json"
exam:
  size: 75
  time_limit_minutes: 105
  passing_score: 650
results:
  dir: "results"
ui:
  mode: plain
`
}

// invalidConfigYAML returns a config with an unsupported version.
func invalidConfigYAML() string {
	return `version: 2
bank: "questions.json"
results:
  dir: "results"
`
}
