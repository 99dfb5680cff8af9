package cli

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"math/rand"
	"os"
	"os/signal"
	"path/filepath"
	"time"

	"pracexam/internal/exam"
	"pracexam/internal/logging"
	"pracexam/internal/question"
	"pracexam/internal/ui/live"
	"pracexam/internal/ui/plain"
)

// logFileName is the diagnostic log written next to the results when the
// live UI owns the terminal.
const logFileName = "pracexam.log"

var (
	runLive  = live.Run
	runPlain = plain.Run
	newSeed  = func() int64 { return time.Now().UnixNano() }
)

// runTake builds the handler for the take command.
func runTake(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}

		flags := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		specPath := flags.String("spec", "", "Path to config file (default: search for .pracexam/config.yml)")
		bankPath := flags.String("bank", "", "Question bank file (overrides config)")
		size := flags.Int("size", 0, "Questions per exam (overrides config)")
		minutes := flags.Int("minutes", 0, "Time limit in minutes (overrides config)")
		resultsDir := flags.String("results-dir", "", "Directory for the results logs (overrides config)")
		uiMode := flags.String("ui", "", "UI mode: auto|live|plain (overrides config)")
		noColor := flags.Bool("no-color", false, "Disable colors in the live UI")
		seed := flags.Int64("seed", 0, "Random seed for question selection (default: time based)")
		verbose := flags.Bool("verbose", false, "Write diagnostic logs")
		if code, ok := parseFlags(cmd, flags, args, stdout, stderr); !ok {
			return code
		}

		cfg, err := loadConfig(*specPath, configOverrides{
			Bank:       *bankPath,
			ResultsDir: *resultsDir,
			Size:       *size,
			Minutes:    *minutes,
			UIMode:     *uiMode,
			NoColor:    *noColor,
		})
		if err != nil {
			fmt.Fprintf(stderr, "Failed to load config: %v\n", err)
			return ExitError
		}

		bank, err := question.LoadBank(cfg.Bank)
		if err != nil {
			fmt.Fprintf(stderr, "Failed to load question bank: %v\n", err)
			return ExitError
		}
		if err := question.RequireSize(bank, cfg.Exam.Size); err != nil {
			fmt.Fprintf(stderr, "Cannot start exam: %v\n", err)
			return ExitError
		}

		seedValue := *seed
		if seedValue == 0 {
			seedValue = newSeed()
		}
		session, err := exam.New(bank, exam.Options{
			Size:         cfg.Exam.Size,
			TimeLimit:    cfg.Exam.TimeLimit(),
			PassingScore: cfg.Exam.PassingScore,
			Rand:         rand.New(rand.NewSource(seedValue)),
		})
		if err != nil {
			fmt.Fprintf(stderr, "Cannot start exam: %v\n", err)
			return ExitError
		}

		decision, err := resolveUIMode(cfg.UI.Mode, stdin, stdout)
		if err != nil {
			fmt.Fprintf(stderr, "%v\n", err)
			return ExitUsage
		}
		if decision.warning != "" {
			fmt.Fprintln(stderr, decision.warning)
		}

		logger, closeLog, err := openLogger(*verbose, decision.useLive, cfg.Results.Dir, stderr)
		if err != nil {
			fmt.Fprintf(stderr, "Failed to open log: %v\n", err)
			return ExitError
		}
		defer closeLog()
		logger = logger.With("session", session.ID())
		logger.Info("exam starting",
			"bank", cfg.Bank,
			"bank_size", bank.Len(),
			"questions", session.Len(),
			"time_limit", cfg.Exam.TimeLimit().String(),
			"seed", seedValue,
			"live", decision.useLive,
		)

		recorder := cfg.Recorder()
		var saveErr error
		onFinalize := func(outcome exam.Outcome) error {
			saveErr = recorder.Record(outcome)
			if saveErr != nil {
				logger.Warn("save results failed", "exam_id", outcome.ExamID, "error", saveErr)
			} else {
				logger.Debug("results saved", "summary", recorder.SummaryPath, "detail", recorder.DetailPath)
			}
			return saveErr
		}

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()

		var outcome exam.Outcome
		if decision.useLive {
			outcome, err = runLive(ctx, session, live.RunOptions{
				Options: live.Options{
					NoColor:      cfg.UI.NoColor,
					PassingScore: cfg.Exam.PassingScore,
					OnFinalize:   onFinalize,
				},
				In:  stdin,
				Out: stdout,
			})
			if err == nil {
				plain.PrintResults(stdout, outcome)
				if saveErr != nil {
					fmt.Fprintf(stdout, "Warning: %v\n", saveErr)
				}
			}
		} else {
			outcome, err = runPlain(ctx, session, plain.Options{
				In:           stdin,
				Out:          stdout,
				PassingScore: cfg.Exam.PassingScore,
				OnFinalize:   onFinalize,
			})
		}
		if err != nil {
			if errors.Is(err, live.ErrAbandoned) || errors.Is(err, context.Canceled) {
				logger.Info("exam abandoned")
				fmt.Fprintln(stderr, "Exam abandoned; nothing was recorded.")
				return ExitError
			}
			logger.Error("exam failed", "error", err)
			fmt.Fprintf(stderr, "Exam failed: %v\n", err)
			return ExitError
		}

		logger.Info("exam finished",
			"exam_id", outcome.ExamID,
			"correct", outcome.Correct,
			"total", outcome.Total,
			"score", outcome.Score,
			"verdict", string(outcome.Verdict),
			"timed_out", outcome.TimedOut,
		)
		if saveErr == nil {
			fmt.Fprintf(stdout, "Results saved to %s\n", cfg.Results.Dir)
		}
		return ExitOK
	}
}

// openLogger builds the diagnostic logger. The live UI owns the terminal, so
// its log goes to a file in the results directory.
func openLogger(verbose, useLive bool, resultsDir string, stderr io.Writer) (*logging.Logger, func(), error) {
	if !verbose {
		return logging.Nop(), func() {}, nil
	}
	if !useLive {
		logger := logging.New(logging.Options{Verbose: true, Output: stderr})
		return logger, logger.Sync, nil
	}
	if err := os.MkdirAll(resultsDir, 0o755); err != nil {
		return nil, nil, fmt.Errorf("create results dir: %w", err)
	}
	path := filepath.Join(resultsDir, logFileName)
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open %s: %w", path, err)
	}
	logger := logging.New(logging.Options{Verbose: true, Output: file})
	return logger, func() {
		logger.Sync()
		_ = file.Close()
	}, nil
}
