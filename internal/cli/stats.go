package cli

import (
	"context"
	"flag"
	"fmt"
	"io"
	"strconv"

	"pracexam/internal/history"
	"pracexam/internal/stats"
)

// runStats builds the handler for the stats command.
func runStats(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}

		flags := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		specPath := flags.String("spec", "", "Path to config file (default: search for .pracexam/config.yml)")
		resultsDir := flags.String("results-dir", "", "Directory holding the results logs (overrides config)")
		top := flags.Int("top", 10, "Number of weakest questions to show (0 for all)")
		if code, ok := parseFlags(cmd, flags, args, stdout, stderr); !ok {
			return code
		}
		if *top < 0 {
			fmt.Fprintln(stderr, "invalid arguments: --top must not be negative")
			return ExitUsage
		}

		cfg, err := loadConfig(*specPath, configOverrides{ResultsDir: *resultsDir})
		if err != nil {
			fmt.Fprintf(stderr, "Failed to load config: %v\n", err)
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
		if summary.Exams == 0 {
			fmt.Fprintf(stdout, "No exams recorded yet in %s\n", cfg.Results.Dir)
			return ExitOK
		}
		questions, err := store.Questions(ctx, *top)
		if err != nil {
			fmt.Fprintf(stderr, "Failed to query question stats: %v\n", err)
			return ExitError
		}

		fmt.Fprintf(stdout, "Exams: %d  Passed: %d (%.0f%%)  Average: %.0f  Best: %d  Latest: %d\n",
			summary.Exams, summary.Passed, summary.PassRate()*100, summary.AverageScore, summary.BestScore, summary.LatestScore)
		if len(questions) == 0 {
			fmt.Fprintln(stdout, "No question history recorded yet.")
			return ExitOK
		}
		rows := make([][]string, 0, len(questions))
		for _, q := range questions {
			lastSeen := ""
			if !q.LastSeen.IsZero() {
				lastSeen = q.LastSeen.Format(history.DateLayout)
			}
			rows = append(rows, []string{
				q.QID,
				fmt.Sprintf("%.0f%%", q.Accuracy*100),
				strconv.Itoa(q.Correct) + "/" + strconv.Itoa(q.Attempts),
				lastSeen,
				truncateText(q.Question, 60),
			})
		}
		fmt.Fprintln(stdout, "\nWeakest questions:")
		fmt.Fprintln(stdout, renderTable([]string{"QID", "Accuracy", "Correct", "Last seen", "Question"}, rows))
		return ExitOK
	}
}

// truncateText shortens text to limit runes with an ellipsis.
func truncateText(text string, limit int) string {
	runes := []rune(text)
	if len(runes) <= limit {
		return text
	}
	return string(runes[:limit-3]) + "..."
}
