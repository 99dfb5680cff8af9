package config

import (
	"fmt"
	"os"
	"path/filepath"
)

const scaffoldTemplate = `version: 1
# Question bank, relative to the directory containing .pracexam/
bank: %q

exam:
  size: 75
  time_limit_minutes: 105
  passing_score: 650

results:
  dir: %q
  summary_file: "results.csv"
  detail_file: "question_history.csv"

ui:
  mode: auto
  no_color: false
`

// Scaffold writes a default config file at path.
func Scaffold(path, bank, resultsDir string) error {
	if bank == "" {
		bank = DefaultBankFile
	}
	if resultsDir == "" {
		resultsDir = DefaultResultsDir
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}
	content := fmt.Sprintf(scaffoldTemplate, bank, resultsDir)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}
