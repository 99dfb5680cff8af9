package exam

import (
	"fmt"
	"slices"
	"time"

	"pracexam/internal/question"
)

// Snapshot is an immutable view of a session for rendering.
type Snapshot struct {
	SessionID string
	Index     int
	Total     int
	Question  question.Question
	Selected  string
	Answered  int
	Remaining time.Duration
	Started   bool
	Finalized bool
	Outcome   *Outcome
}

// Snapshot captures the session state at now.
func (s *Session) Snapshot(now time.Time) Snapshot {
	current := s.Current()
	current.Choices = slices.Clone(current.Choices)
	snap := Snapshot{
		SessionID: s.id,
		Index:     s.index,
		Total:     len(s.questions),
		Question:  current,
		Selected:  s.answers[s.index],
		Answered:  s.Answered(),
		Remaining: s.Remaining(now),
		Started:   s.Started(),
		Finalized: s.Finalized(),
	}
	if s.outcome != nil {
		outcome := s.Outcome()
		snap.Outcome = &outcome
	}
	return snap
}

// SelectedIndex returns the option index of the selected choice, or -1.
func (snap Snapshot) SelectedIndex() int {
	if snap.Selected == "" {
		return -1
	}
	return slices.Index(snap.Question.Choices, snap.Selected)
}

// IsFirst reports whether the snapshot is at the first question.
func (snap Snapshot) IsFirst() bool {
	return snap.Index == 0
}

// IsLast reports whether the snapshot is at the last question.
func (snap Snapshot) IsLast() bool {
	return snap.Index == snap.Total-1
}

// Clock renders the remaining time as mm:ss.
func (snap Snapshot) Clock() string {
	return FormatClock(snap.Remaining)
}

// FormatClock renders a duration as mm:ss, rounding partial seconds down.
func FormatClock(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	total := int(d / time.Second)
	return fmt.Sprintf("%02d:%02d", total/60, total%60)
}
