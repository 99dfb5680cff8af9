package cucumber

import (
	"fmt"
	"strings"

	"github.com/cucumber/godog"

	"pracexam/internal/cli"
)

// theExamInputIs sets the lines fed to the plain exam UI.
func (s *featureState) theExamInputIs(doc *godog.DocString) error {
	s.input = doc.Content + "\n"
	return nil
}

// theExamInputIsEmpty makes the exam read end of input immediately.
func (s *featureState) theExamInputIsEmpty() error {
	s.input = ""
	return nil
}

// iRunCommand executes a CLI command for the scenario.
func (s *featureState) iRunCommand(command string) error {
	args := strings.Fields(command)
	if len(args) == 0 {
		return fmt.Errorf("command is empty")
	}
	if args[0] == "pracexam" {
		args = args[1:]
	}
	s.stdout.Reset()
	s.stderr.Reset()
	s.exitCode = cli.RunWithInput(args, strings.NewReader(s.input), &s.stdout, &s.stderr)
	return nil
}

// iRunCommandTimes executes a command repeatedly, stopping on failure.
func (s *featureState) iRunCommandTimes(command string, times int) error {
	for i := 0; i < times; i++ {
		if err := s.iRunCommand(command); err != nil {
			return err
		}
		if s.exitCode != 0 {
			return fmt.Errorf("run %d exited %d: %s", i+1, s.exitCode, s.stderr.String())
		}
	}
	return nil
}
