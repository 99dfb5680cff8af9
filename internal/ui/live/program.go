package live

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"pracexam/internal/exam"
)

// RunOptions adds terminal wiring to Options.
type RunOptions struct {
	Options
	In  io.Reader
	Out io.Writer
}

// Run drives session in a full-screen Bubble Tea program until the user
// quits. It returns ErrAbandoned when the program exits before the exam is
// submitted.
func Run(ctx context.Context, session *exam.Session, opts RunOptions) (exam.Outcome, error) {
	out := opts.Out
	if out == nil {
		out = os.Stdout
	}
	programOpts := []tea.ProgramOption{
		tea.WithContext(ctx),
		tea.WithOutput(out),
		tea.WithAltScreen(),
	}
	if opts.In != nil {
		programOpts = append(programOpts, tea.WithInput(opts.In))
	}
	program := tea.NewProgram(NewModel(session, opts.Options), programOpts...)
	final, err := program.Run()
	if err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return exam.Outcome{}, fmt.Errorf("live ui: %w", err)
	}
	if ctxErr := ctx.Err(); ctxErr != nil && !session.Finalized() {
		return exam.Outcome{}, ctxErr
	}
	model, ok := final.(Model)
	if !ok || model.aborted || !session.Finalized() {
		return exam.Outcome{}, ErrAbandoned
	}
	return session.Outcome(), nil
}
