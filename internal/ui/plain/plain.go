// Package plain runs an exam over line-oriented input and output.
package plain

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"pracexam/internal/exam"
)

// Options configures a plain exam run.
type Options struct {
	In           io.Reader
	Out          io.Writer
	PassingScore int
	TickInterval time.Duration
	Now          func() time.Time
	// OnFinalize runs once with the frozen outcome; its error is shown as a
	// warning and does not stop the results from being displayed.
	OnFinalize func(exam.Outcome) error
}

type runner struct {
	session       *exam.Session
	out           io.Writer
	now           func() time.Time
	passing       int
	onFinalize    func(exam.Outcome) error
	confirmSubmit bool
}

// Run drives session from opts.In until it is submitted, input ends, or time
// runs out. The session is only touched from the calling goroutine.
func Run(ctx context.Context, session *exam.Session, opts Options) (exam.Outcome, error) {
	if opts.In == nil || opts.Out == nil {
		return exam.Outcome{}, errors.New("plain ui: input and output are required")
	}
	interval := opts.TickInterval
	if interval <= 0 {
		interval = time.Second
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	r := &runner{
		session:    session,
		out:        opts.Out,
		now:        now,
		passing:    opts.PassingScore,
		onFinalize: opts.OnFinalize,
	}

	lines := make(chan string)
	stop := make(chan struct{})
	defer close(stop)
	go readLines(opts.In, lines, stop)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	r.printIntro()
	session.Start(now())
	r.printQuestion(session.Snapshot(now()))

	for {
		select {
		case <-ctx.Done():
			return exam.Outcome{}, ctx.Err()
		case <-ticker.C:
			snap, _ := session.Dispatch(exam.Tick{}, now())
			if snap.Finalized {
				fmt.Fprintln(r.out, "\nTime is up. Your exam has been submitted.")
				return r.finish(ctx, lines), nil
			}
		case line, ok := <-lines:
			if !ok {
				_, _ = session.Dispatch(exam.Submit{}, now())
				return r.finish(ctx, nil), nil
			}
			if r.handle(line) {
				return r.finish(ctx, lines), nil
			}
		}
	}
}

// handle applies one input line and reports whether the exam was submitted.
func (r *runner) handle(line string) bool {
	input := strings.ToLower(strings.TrimSpace(line))
	now := r.now()

	if r.confirmSubmit {
		r.confirmSubmit = false
		if input == "y" || input == "yes" {
			_, _ = r.session.Dispatch(exam.Submit{}, now)
			return true
		}
		r.printQuestion(r.session.Snapshot(now))
		return false
	}

	var cmd exam.Command
	switch {
	case input == "":
		r.printQuestion(r.session.Snapshot(now))
		return false
	case input == "n" || input == "next":
		cmd = exam.Next{}
	case input == "p" || input == "prev" || input == "previous":
		cmd = exam.Previous{}
	case input == "c" || input == "clear":
		cmd = exam.Clear{}
	case input == "t" || input == "time":
		fmt.Fprintf(r.out, "Time remaining: %s\n", r.session.Snapshot(now).Clock())
		return false
	case input == "?" || input == "h" || input == "help":
		printHelp(r.out)
		return false
	case input == "s" || input == "submit":
		snap := r.session.Snapshot(now)
		if unanswered := snap.Total - snap.Answered; unanswered > 0 {
			fmt.Fprintf(r.out, "%d question(s) unanswered. Submit anyway? [y/N]: ", unanswered)
			r.confirmSubmit = true
			return false
		}
		_, _ = r.session.Dispatch(exam.Submit{}, now)
		return true
	case strings.HasPrefix(input, "g "), strings.HasPrefix(input, "go "):
		target, err := strconv.Atoi(strings.TrimSpace(input[strings.Index(input, " ")+1:]))
		if err != nil {
			fmt.Fprintf(r.out, "Invalid question number %q\n", line)
			return false
		}
		cmd = exam.Jump{Index: target - 1}
	default:
		choice, err := strconv.Atoi(input)
		if err != nil {
			fmt.Fprintf(r.out, "Unknown command %q (type ? for help)\n", line)
			return false
		}
		snap, err := r.session.Dispatch(exam.SelectIndex{Index: choice - 1}, now)
		if err != nil {
			fmt.Fprintf(r.out, "%v\n", err)
			return false
		}
		if !snap.IsLast() {
			snap, _ = r.session.Dispatch(exam.Next{}, now)
		}
		r.printQuestion(snap)
		return false
	}

	snap, err := r.session.Dispatch(cmd, now)
	if err != nil {
		fmt.Fprintf(r.out, "%v\n", err)
	}
	r.printQuestion(snap)
	return false
}

// finish records the outcome, prints the results, and offers a review when
// more input is available. Cancelling ctx skips the review; the outcome has
// already been recorded by then.
func (r *runner) finish(ctx context.Context, lines <-chan string) exam.Outcome {
	outcome := r.session.Outcome()
	var saveErr error
	if r.onFinalize != nil {
		saveErr = r.onFinalize(outcome)
	}
	PrintResults(r.out, outcome)
	if saveErr != nil {
		fmt.Fprintf(r.out, "Warning: %v\n", saveErr)
	}
	if lines == nil {
		return outcome
	}
	fmt.Fprint(r.out, "Type r to review your answers or press Enter to exit: ")
	select {
	case <-ctx.Done():
		fmt.Fprintln(r.out)
	case line, ok := <-lines:
		if ok && strings.EqualFold(strings.TrimSpace(line), "r") {
			PrintReview(r.out, outcome)
		}
	}
	return outcome
}

func readLines(in io.Reader, lines chan<- string, stop <-chan struct{}) {
	defer close(lines)
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		select {
		case lines <- scanner.Text():
		case <-stop:
			return
		}
	}
}
