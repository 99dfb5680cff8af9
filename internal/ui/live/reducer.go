package live

import (
	"fmt"
	"time"

	"pracexam/internal/exam"
)

const timeUpMessage = "Time is up. Your exam has been submitted."

// Reduce applies an action to the session and returns the next UI state.
// The session is only mutated through exam.Dispatch.
func Reduce(state State, session *exam.Session, action Action, now time.Time) State {
	if action.Kind == ActionTick {
		return reduceTick(state, session, now)
	}
	state.Message = ""
	if state.Confirm != ConfirmNone {
		return reduceConfirm(state, session, action, now)
	}
	switch state.Screen {
	case ScreenStart:
		return reduceStart(state, session, action, now)
	case ScreenQuestion:
		return reduceQuestion(state, session, action, now)
	case ScreenResults:
		return reduceResults(state, action)
	case ScreenReview:
		return reduceReview(state, action)
	}
	return state
}

// reduceTick refreshes the countdown and submits the exam when time runs out.
func reduceTick(state State, session *exam.Session, now time.Time) State {
	if state.Screen != ScreenQuestion {
		return state
	}
	snap, _ := session.Dispatch(exam.Tick{}, now)
	state.Snapshot = snap
	if snap.Finalized {
		state.Confirm = ConfirmNone
		state = toResults(state, snap)
		state.Message = timeUpMessage
	}
	return state
}

func reduceStart(state State, session *exam.Session, action Action, now time.Time) State {
	switch action.Kind {
	case ActionStart, ActionNext:
		session.Start(now)
		state.Snapshot = session.Snapshot(now)
		state.Screen = ScreenQuestion
	case ActionQuit:
		state.Quit = true
	}
	return state
}

func reduceQuestion(state State, session *exam.Session, action Action, now time.Time) State {
	var cmd exam.Command
	switch action.Kind {
	case ActionSelect:
		cmd = exam.SelectIndex{Index: action.Choice}
	case ActionUp, ActionDown:
		cmd = moveSelection(state.Snapshot, action.Kind)
		if cmd == nil {
			return state
		}
	case ActionNext:
		cmd = exam.Next{}
	case ActionPrevious:
		cmd = exam.Previous{}
	case ActionSubmit:
		state.Confirm = ConfirmSubmit
		return state
	case ActionQuit:
		state.Confirm = ConfirmQuit
		return state
	default:
		return state
	}
	snap, err := session.Dispatch(cmd, now)
	state.Snapshot = snap
	if err != nil {
		state.Message = err.Error()
	}
	return state
}

// moveSelection steps the selected option up or down, starting at the first
// option when nothing is selected yet.
func moveSelection(snap exam.Snapshot, kind ActionKind) exam.Command {
	count := len(snap.Question.Choices)
	if count == 0 {
		return nil
	}
	current := snap.SelectedIndex()
	next := current
	switch {
	case current < 0:
		next = 0
	case kind == ActionUp && current > 0:
		next = current - 1
	case kind == ActionDown && current < count-1:
		next = current + 1
	}
	if next == current {
		return nil
	}
	return exam.SelectIndex{Index: next}
}

func reduceConfirm(state State, session *exam.Session, action Action, now time.Time) State {
	pending := state.Confirm
	state.Confirm = ConfirmNone
	if action.Kind != ActionYes {
		return state
	}
	snap, err := session.Dispatch(exam.Submit{}, now)
	if err != nil {
		state.Message = err.Error()
		return state
	}
	state = toResults(state, snap)
	state.Quit = pending == ConfirmQuit
	return state
}

func reduceResults(state State, action Action) State {
	switch action.Kind {
	case ActionReview:
		state.Screen = ScreenReview
	case ActionQuit, ActionStart:
		state.Quit = true
	}
	return state
}

func reduceReview(state State, action Action) State {
	total := 0
	if state.Outcome != nil {
		total = len(state.Outcome.Answers)
	}
	switch action.Kind {
	case ActionUp, ActionPrevious:
		if state.Review > 0 {
			state.Review--
		}
	case ActionDown, ActionNext:
		if state.Review < total-1 {
			state.Review++
		}
	case ActionBack, ActionReview:
		state.Screen = ScreenResults
	case ActionQuit:
		state.Quit = true
	}
	return state
}

// toResults moves to the results screen with the frozen outcome.
func toResults(state State, snap exam.Snapshot) State {
	state.Snapshot = snap
	state.Outcome = snap.Outcome
	state.Screen = ScreenResults
	state.Review = 0
	return state
}

// applySaved records the outcome of persisting the results.
func applySaved(state State, err error) State {
	state.Saved = true
	if err != nil {
		state.SaveErr = fmt.Sprintf("Warning: %v", err)
	}
	return state
}
