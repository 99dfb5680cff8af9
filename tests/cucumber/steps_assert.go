package cucumber

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/cucumber/godog"

	"pracexam/internal/history"
)

// theOutputListsCommands asserts the output contains expected command names.
func (s *featureState) theOutputListsCommands(table *godog.Table) error {
	output := s.stdout.String()
	for _, row := range table.Rows {
		for _, cell := range row.Cells {
			command := strings.TrimSpace(cell.Value)
			if command == "" {
				continue
			}
			if !strings.Contains(output, command) {
				return fmt.Errorf("expected command %q in output", command)
			}
		}
	}
	return nil
}

// theExitCodeIsZero asserts that the CLI succeeded.
func (s *featureState) theExitCodeIsZero() error {
	if s.exitCode != 0 {
		return fmt.Errorf("expected exit code 0, got %d: %s", s.exitCode, s.stderr.String())
	}
	return nil
}

// theExitCodeIsNonZero asserts that the CLI returned an error code.
func (s *featureState) theExitCodeIsNonZero() error {
	if s.exitCode == 0 {
		return fmt.Errorf("expected non-zero exit code")
	}
	return nil
}

func (s *featureState) theOutputMentions(text string) error {
	if !strings.Contains(s.stdout.String(), text) {
		return fmt.Errorf("expected %q in output, got %q", text, s.stdout.String())
	}
	return nil
}

func (s *featureState) theErrorOutputMentions(text string) error {
	if !strings.Contains(s.stderr.String(), text) {
		return fmt.Errorf("expected %q in error output, got %q", text, s.stderr.String())
	}
	return nil
}

// theErrorMessagePointsToInvalidField checks the error output for hints.
func (s *featureState) theErrorMessagePointsToInvalidField() error {
	errOutput := s.stderr.String()
	if !strings.Contains(errOutput, "version") {
		return fmt.Errorf("expected error to mention version, got %q", errOutput)
	}
	return nil
}

func (s *featureState) theResultsLogHasExams(count int) error {
	rows, err := history.ReadSummary(filepath.Join(s.resultsDir(), history.DefaultSummaryFile))
	if err != nil {
		return err
	}
	if len(rows) != count {
		return fmt.Errorf("expected %d exams, got %d", count, len(rows))
	}
	return nil
}

func (s *featureState) theQuestionHistoryHasRows(count int) error {
	rows, err := history.ReadDetail(filepath.Join(s.resultsDir(), history.DefaultDetailFile))
	if err != nil {
		return err
	}
	if len(rows) != count {
		return fmt.Errorf("expected %d question rows, got %d", count, len(rows))
	}
	return nil
}
