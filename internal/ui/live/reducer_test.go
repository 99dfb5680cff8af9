package live

import (
	"math/rand"
	"slices"
	"testing"
	"time"

	"pracexam/internal/exam"
	"pracexam/internal/question"
	"pracexam/internal/score"
	"pracexam/internal/testutil"
)

var testStart = time.Date(2026, 3, 14, 10, 0, 0, 0, time.Local)

// newSession builds an unstarted session with a fixed seed.
func newSession(t *testing.T, size int) *exam.Session {
	t.Helper()
	bank, err := question.LoadBank(testutil.WriteBank(t, t.TempDir(), size+3))
	if err != nil {
		t.Fatalf("load bank: %v", err)
	}
	session, err := exam.New(bank, exam.Options{
		Size:      size,
		TimeLimit: 5 * time.Minute,
		Rand:      rand.New(rand.NewSource(11)),
	})
	if err != nil {
		t.Fatalf("new session: %v", err)
	}
	return session
}

// started returns a state on the question screen.
func started(t *testing.T, session *exam.Session) State {
	t.Helper()
	state := Reduce(State{Screen: ScreenStart}, session, Action{Kind: ActionStart}, testStart)
	if state.Screen != ScreenQuestion || !session.Started() {
		t.Fatalf("expected question screen after start")
	}
	return state
}

// TestReduceNavigation verifies next and previous stop at the bounds.
func TestReduceNavigation(t *testing.T) {
	session := newSession(t, 3)
	state := started(t, session)

	state = Reduce(state, session, Action{Kind: ActionPrevious}, testStart)
	if state.Snapshot.Index != 0 {
		t.Fatalf("expected to stay on first question, got %d", state.Snapshot.Index)
	}
	for i := 0; i < 5; i++ {
		state = Reduce(state, session, Action{Kind: ActionNext}, testStart)
	}
	if state.Snapshot.Index != 2 {
		t.Fatalf("expected to stop on last question, got %d", state.Snapshot.Index)
	}
}

// TestReduceSelection verifies number keys and arrow keys pick answers.
func TestReduceSelection(t *testing.T) {
	session := newSession(t, 2)
	state := started(t, session)

	state = Reduce(state, session, Action{Kind: ActionDown}, testStart)
	if state.Snapshot.SelectedIndex() != 0 {
		t.Fatalf("expected first option after down, got %d", state.Snapshot.SelectedIndex())
	}
	state = Reduce(state, session, Action{Kind: ActionDown}, testStart)
	state = Reduce(state, session, Action{Kind: ActionDown}, testStart)
	state = Reduce(state, session, Action{Kind: ActionUp}, testStart)
	if state.Snapshot.SelectedIndex() != 1 {
		t.Fatalf("expected second option, got %d", state.Snapshot.SelectedIndex())
	}
	state = Reduce(state, session, Action{Kind: ActionSelect, Choice: 3}, testStart)
	if state.Snapshot.SelectedIndex() != 3 {
		t.Fatalf("expected fourth option, got %d", state.Snapshot.SelectedIndex())
	}
	state = Reduce(state, session, Action{Kind: ActionSelect, Choice: 8}, testStart)
	if state.Message == "" || state.Snapshot.SelectedIndex() != 3 {
		t.Fatalf("expected error message and unchanged answer, got %q", state.Message)
	}
}

// TestReduceSubmitNeedsConfirmation verifies the confirmation prompt.
func TestReduceSubmitNeedsConfirmation(t *testing.T) {
	session := newSession(t, 2)
	state := started(t, session)

	state = Reduce(state, session, Action{Kind: ActionSubmit}, testStart)
	if state.Confirm != ConfirmSubmit || session.Finalized() {
		t.Fatalf("expected pending confirmation")
	}
	state = Reduce(state, session, Action{Kind: ActionNo}, testStart)
	if state.Confirm != ConfirmNone || state.Screen != ScreenQuestion || session.Finalized() {
		t.Fatalf("expected cancel to return to the question")
	}
	state = Reduce(state, session, Action{Kind: ActionSubmit}, testStart)
	state = Reduce(state, session, Action{Kind: ActionYes}, testStart.Add(time.Minute))
	if state.Screen != ScreenResults || !state.Finished() {
		t.Fatalf("expected results screen")
	}
	if state.Outcome.Score != score.MinScaled || state.Outcome.Verdict != score.Fail {
		t.Fatalf("unexpected outcome %+v", state.Outcome.Result)
	}
	if state.Quit {
		t.Fatalf("submit should not quit")
	}
}

// TestReduceAllCorrect verifies a perfect run scores 900.
func TestReduceAllCorrect(t *testing.T) {
	session := newSession(t, 4)
	state := started(t, session)
	for i, q := range session.Questions() {
		state = Reduce(state, session, Action{Kind: ActionSelect, Choice: slices.Index(q.Choices, q.Answer)}, testStart)
		if i < session.Len()-1 {
			state = Reduce(state, session, Action{Kind: ActionNext}, testStart)
		}
	}
	state = Reduce(state, session, Action{Kind: ActionSubmit}, testStart)
	state = Reduce(state, session, Action{Kind: ActionYes}, testStart)
	if state.Outcome == nil || state.Outcome.Score != score.MaxScaled || !state.Outcome.Passed() {
		t.Fatalf("expected perfect pass, got %+v", state.Outcome)
	}
}

// TestReduceTickTimesOut verifies the countdown submits the exam.
func TestReduceTickTimesOut(t *testing.T) {
	session := newSession(t, 2)
	state := started(t, session)
	state = Reduce(state, session, Action{Kind: ActionSubmit}, testStart)

	state = Reduce(state, session, Action{Kind: ActionTick}, testStart.Add(time.Minute))
	if state.Snapshot.Clock() != "04:00" || state.Confirm != ConfirmSubmit {
		t.Fatalf("expected countdown with prompt kept, got %s", state.Snapshot.Clock())
	}
	state = Reduce(state, session, Action{Kind: ActionTick}, testStart.Add(5*time.Minute))
	if state.Screen != ScreenResults || !state.Outcome.TimedOut {
		t.Fatalf("expected timed out results")
	}
	if state.Confirm != ConfirmNone || state.Message != timeUpMessage {
		t.Fatalf("expected prompt cleared and time up message, got %q", state.Message)
	}
}

// TestReduceTickBeforeStart verifies the clock does not run on the start screen.
func TestReduceTickBeforeStart(t *testing.T) {
	session := newSession(t, 1)
	state := Reduce(State{Screen: ScreenStart}, session, Action{Kind: ActionTick}, testStart.Add(time.Hour))
	if state.Screen != ScreenStart || session.Finalized() {
		t.Fatalf("expected tick to be ignored before start")
	}
}

// TestReduceQuitSubmits verifies quitting mid-exam submits after confirmation.
func TestReduceQuitSubmits(t *testing.T) {
	session := newSession(t, 2)
	state := started(t, session)
	state = Reduce(state, session, Action{Kind: ActionQuit}, testStart)
	if state.Confirm != ConfirmQuit {
		t.Fatalf("expected quit confirmation")
	}
	state = Reduce(state, session, Action{Kind: ActionYes}, testStart)
	if !state.Finished() || !state.Quit {
		t.Fatalf("expected submitted exam and quit flag")
	}
	if state.ReadyToExit() {
		t.Fatalf("expected to wait for the save")
	}
	state = applySaved(state, nil)
	if !state.ReadyToExit() {
		t.Fatalf("expected exit after save")
	}
}

// TestReduceReview verifies the review cursor and navigation.
func TestReduceReview(t *testing.T) {
	session := newSession(t, 3)
	state := started(t, session)
	state = Reduce(state, session, Action{Kind: ActionSubmit}, testStart)
	state = Reduce(state, session, Action{Kind: ActionYes}, testStart)

	state = Reduce(state, session, Action{Kind: ActionReview}, testStart)
	if state.Screen != ScreenReview {
		t.Fatalf("expected review screen")
	}
	for i := 0; i < 5; i++ {
		state = Reduce(state, session, Action{Kind: ActionDown}, testStart)
	}
	if state.Review != 2 {
		t.Fatalf("expected cursor on last row, got %d", state.Review)
	}
	state = Reduce(state, session, Action{Kind: ActionBack}, testStart)
	if state.Screen != ScreenResults {
		t.Fatalf("expected results screen after back")
	}
	state = Reduce(state, session, Action{Kind: ActionQuit}, testStart)
	if !state.Quit {
		t.Fatalf("expected quit")
	}
}

// TestApplySavedWarning verifies save failures become a warning.
func TestApplySavedWarning(t *testing.T) {
	state := applySaved(State{}, errTest("disk full"))
	if !state.Saved || state.SaveErr != "Warning: disk full" {
		t.Fatalf("unexpected save state %+v", state)
	}
}

type errTest string

func (e errTest) Error() string { return string(e) }
