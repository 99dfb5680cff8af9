package cli

import (
	"flag"
	"fmt"
	"io"
	"strconv"

	"pracexam/internal/history"
	"pracexam/internal/score"
)

// runHistory builds the handler for the history command.
func runHistory(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}

		flags := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		specPath := flags.String("spec", "", "Path to config file (default: search for .pracexam/config.yml)")
		resultsDir := flags.String("results-dir", "", "Directory holding the results logs (overrides config)")
		last := flags.Int("last", 10, "Number of most recent exams to show (0 for all)")
		if code, ok := parseFlags(cmd, flags, args, stdout, stderr); !ok {
			return code
		}
		if *last < 0 {
			fmt.Fprintln(stderr, "invalid arguments: --last must not be negative")
			return ExitUsage
		}

		cfg, err := loadConfig(*specPath, configOverrides{ResultsDir: *resultsDir})
		if err != nil {
			fmt.Fprintf(stderr, "Failed to load config: %v\n", err)
			return ExitError
		}
		rows, err := history.ReadSummary(cfg.SummaryPath())
		if err != nil {
			fmt.Fprintf(stderr, "Failed to read history: %v\n", err)
			return ExitError
		}
		if len(rows) == 0 {
			fmt.Fprintf(stdout, "No exams recorded yet in %s\n", cfg.SummaryPath())
			return ExitOK
		}

		passed, best := 0, 0
		for _, row := range rows {
			if row.Verdict == score.Pass {
				passed++
			}
			best = max(best, row.Score)
		}
		shown := rows
		if *last > 0 && len(shown) > *last {
			shown = shown[len(shown)-*last:]
		}
		tableRows := make([][]string, 0, len(shown))
		for i := len(shown) - 1; i >= 0; i-- {
			row := shown[i]
			tableRows = append(tableRows, []string{
				row.Date.Format(history.DateLayout),
				fmt.Sprintf("%d/%d", row.Correct, row.Total),
				strconv.Itoa(row.Score),
				string(row.Verdict),
			})
		}
		fmt.Fprintln(stdout, renderTable([]string{"Date", "Correct", "Score", "Result"}, tableRows))
		fmt.Fprintf(stdout, "Exams: %d  Passed: %d  Best score: %d\n", len(rows), passed, best)
		return ExitOK
	}
}
