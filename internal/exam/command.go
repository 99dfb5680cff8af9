package exam

import "time"

// Command is an input event from a presentation adapter.
type Command interface {
	apply(s *Session, now time.Time) error
}

// Next advances to the next question.
type Next struct{}

// Previous returns to the previous question.
type Previous struct{}

// Jump moves to a zero-based question index.
type Jump struct{ Index int }

// Select answers the current question with a choice string.
type Select struct{ Choice string }

// SelectIndex answers the current question by zero-based option index.
type SelectIndex struct{ Index int }

// Clear removes the current answer.
type Clear struct{}

// Submit finalizes the exam.
type Submit struct{}

// Tick is the once-per-second countdown event.
type Tick struct{}

func (Next) apply(s *Session, _ time.Time) error { return s.Next() }

func (Previous) apply(s *Session, _ time.Time) error { return s.Previous() }

func (c Jump) apply(s *Session, _ time.Time) error { return s.Jump(c.Index) }

func (c Select) apply(s *Session, _ time.Time) error { return s.Select(c.Choice) }

func (c SelectIndex) apply(s *Session, _ time.Time) error { return s.SelectIndex(c.Index) }

func (Clear) apply(s *Session, _ time.Time) error { return s.Clear() }

func (Submit) apply(s *Session, now time.Time) error {
	if s.Finalized() {
		return ErrFinalized
	}
	s.Finalize(now)
	return nil
}

func (Tick) apply(s *Session, now time.Time) error {
	s.Tick(now)
	return nil
}

// Dispatch applies cmd and returns the resulting snapshot. The snapshot is
// returned even when the command fails.
func (s *Session) Dispatch(cmd Command, now time.Time) (Snapshot, error) {
	err := cmd.apply(s, now)
	return s.Snapshot(now), err
}
