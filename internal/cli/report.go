package cli

import (
	"context"
	"flag"
	"fmt"
	"io"
	"path/filepath"
	"time"

	"pracexam/internal/history"
	"pracexam/internal/report"
	"pracexam/internal/stats"
)

// reportWeakest is how many questions the report lists.
const reportWeakest = 20

// runReport builds the handler for the report command.
func runReport(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}

		flags := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		specPath := flags.String("spec", "", "Path to config file (default: search for .pracexam/config.yml)")
		resultsDir := flags.String("results-dir", "", "Directory holding the results logs (overrides config)")
		output := flags.String("output", "", "Report path (default: <results dir>/report.html)")
		if code, ok := parseFlags(cmd, flags, args, stdout, stderr); !ok {
			return code
		}

		cfg, err := loadConfig(*specPath, configOverrides{ResultsDir: *resultsDir})
		if err != nil {
			fmt.Fprintf(stderr, "Failed to load config: %v\n", err)
			return ExitError
		}
		outputPath := *output
		if outputPath == "" {
			outputPath = filepath.Join(cfg.Results.Dir, "report.html")
		}
		if outputPath, err = filepath.Abs(outputPath); err != nil {
			fmt.Fprintf(stderr, "Failed to resolve output path: %v\n", err)
			return ExitError
		}

		exams, err := history.ReadSummary(cfg.SummaryPath())
		if err != nil {
			fmt.Fprintf(stderr, "Failed to read history: %v\n", err)
			return ExitError
		}

		ctx := context.Background()
		store, err := stats.Open(ctx, cfg.SummaryPath(), cfg.DetailPath())
		if err != nil {
			fmt.Fprintf(stderr, "Failed to open results: %v\n", err)
			return ExitError
		}
		defer store.Close()
		summary, err := store.Summary(ctx)
		if err != nil {
			fmt.Fprintf(stderr, "Failed to summarize results: %v\n", err)
			return ExitError
		}
		weakest, err := store.Questions(ctx, reportWeakest)
		if err != nil {
			fmt.Fprintf(stderr, "Failed to query question stats: %v\n", err)
			return ExitError
		}

		err = report.WriteFile(ctx, outputPath, report.Data{
			GeneratedAt: time.Now(),
			Summary:     summary,
			Exams:       exams,
			Weakest:     weakest,
		})
		if err != nil {
			fmt.Fprintf(stderr, "Report failed: %v\n", err)
			return ExitError
		}
		fmt.Fprintf(stdout, "Report: %s\n", outputPath)
		return ExitOK
	}
}
