package cli

import (
	"flag"
	"fmt"
	"io"

	"pracexam/internal/question"
)

// runValidate builds the handler for the validate command.
func runValidate(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}

		flags := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		specPath := flags.String("spec", "", "Path to config file (default: search for .pracexam/config.yml)")
		bankPath := flags.String("bank", "", "Question bank file (overrides config)")
		if code, ok := parseFlags(cmd, flags, args, stdout, stderr); !ok {
			return code
		}

		cfg, err := loadConfig(*specPath, configOverrides{Bank: *bankPath})
		if err != nil {
			fmt.Fprintf(stderr, "Validation failed:\n%v\n", err)
			return ExitError
		}
		bank, err := question.LoadBank(cfg.Bank)
		if err != nil {
			fmt.Fprintf(stderr, "Validation failed:\n%v\n", err)
			return ExitError
		}
		if err := question.RequireSize(bank, cfg.Exam.Size); err != nil {
			fmt.Fprintf(stderr, "Validation failed:\n%v\n", err)
			return ExitError
		}

		fmt.Fprintln(stdout, "Config OK")
		fmt.Fprintf(stdout, "Question bank OK: %d questions in %s (exam draws %d)\n", bank.Len(), cfg.Bank, cfg.Exam.Size)
		return ExitOK
	}
}
