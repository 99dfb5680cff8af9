package live

import "pracexam/internal/exam"

// Screen identifies the active view.
type Screen int

const (
	// ScreenStart shows the exam rules before the clock starts.
	ScreenStart Screen = iota
	// ScreenQuestion shows the current question.
	ScreenQuestion
	// ScreenResults shows the score and verdict.
	ScreenResults
	// ScreenReview lists every question with its correctness mark.
	ScreenReview
)

// Confirm identifies a pending yes/no prompt.
type Confirm int

const (
	ConfirmNone Confirm = iota
	ConfirmSubmit
	ConfirmQuit
)

// State captures the live UI state for one exam.
type State struct {
	Screen       Screen
	Snapshot     exam.Snapshot
	PassingScore int
	Confirm      Confirm
	Message      string
	Outcome      *exam.Outcome
	// Saved is set once the outcome has been handed to the recorder.
	Saved   bool
	SaveErr string
	// Quit asks the program to exit; with an outcome it waits for Saved.
	Quit   bool
	Review int
}

// Finished reports whether the exam has been submitted.
func (s State) Finished() bool {
	return s.Outcome != nil
}

// ReadyToExit reports whether the program can stop.
func (s State) ReadyToExit() bool {
	return s.Quit && (s.Outcome == nil || s.Saved)
}
