package exam

import (
	"errors"
	"math/rand"
	"testing"
	"time"

	"pracexam/internal/question"
	"pracexam/internal/score"
	"pracexam/internal/testutil"
)

var testStart = time.Date(2026, 3, 14, 9, 30, 0, 0, time.Local)

// loadBank writes and loads a bank of n questions.
func loadBank(t *testing.T, n int) question.Bank {
	t.Helper()
	bank, err := question.LoadBank(testutil.WriteBank(t, t.TempDir(), n))
	if err != nil {
		t.Fatalf("load bank: %v", err)
	}
	return bank
}

// newSession builds a started session with a fixed seed.
func newSession(t *testing.T, bankSize, examSize int) *Session {
	t.Helper()
	session, err := New(loadBank(t, bankSize), Options{
		Size:      examSize,
		TimeLimit: DefaultTimeLimit,
		Rand:      rand.New(rand.NewSource(7)),
	})
	if err != nil {
		t.Fatalf("new session: %v", err)
	}
	session.Start(testStart)
	return session
}

// TestNewSamplesWithoutReplacement verifies sample size and uniqueness.
func TestNewSamplesWithoutReplacement(t *testing.T) {
	for seed := int64(0); seed < 20; seed++ {
		session, err := New(loadBank(t, 120), Options{
			Size:      question.DefaultExamSize,
			TimeLimit: DefaultTimeLimit,
			Rand:      rand.New(rand.NewSource(seed)),
		})
		if err != nil {
			t.Fatalf("new session: %v", err)
		}
		questions := session.Questions()
		if len(questions) != question.DefaultExamSize {
			t.Fatalf("expected %d questions, got %d", question.DefaultExamSize, len(questions))
		}
		seen := map[string]bool{}
		for _, q := range questions {
			if seen[q.ID] {
				t.Fatalf("seed %d: duplicate question %s", seed, q.ID)
			}
			seen[q.ID] = true
		}
	}
}

// TestNewRejectsSmallBank verifies the bank must cover the exam size.
func TestNewRejectsSmallBank(t *testing.T) {
	_, err := New(loadBank(t, 10), Options{Size: 11, TimeLimit: time.Minute})
	var insufficient *question.InsufficientError
	if !errors.As(err, &insufficient) {
		t.Fatalf("expected insufficient error, got %v", err)
	}
}

// TestNewRejectsInvalidOptions verifies size and time limit are checked.
func TestNewRejectsInvalidOptions(t *testing.T) {
	bank := loadBank(t, 5)
	if _, err := New(bank, Options{Size: 0, TimeLimit: time.Minute}); err == nil {
		t.Fatalf("expected error for zero size")
	}
	if _, err := New(bank, Options{Size: 5}); err == nil {
		t.Fatalf("expected error for zero time limit")
	}
}

// TestNavigationBounds verifies next and previous stop at the ends.
func TestNavigationBounds(t *testing.T) {
	session := newSession(t, 5, 3)
	if err := session.Previous(); err != nil {
		t.Fatalf("previous: %v", err)
	}
	if session.Index() != 0 {
		t.Fatalf("expected index 0, got %d", session.Index())
	}
	for i := 0; i < 5; i++ {
		if err := session.Next(); err != nil {
			t.Fatalf("next: %v", err)
		}
	}
	if session.Index() != 2 {
		t.Fatalf("expected index 2, got %d", session.Index())
	}
	if err := session.Previous(); err != nil {
		t.Fatalf("previous: %v", err)
	}
	if session.Index() != 1 {
		t.Fatalf("expected index 1, got %d", session.Index())
	}
}

// TestJump verifies direct navigation and range checks.
func TestJump(t *testing.T) {
	session := newSession(t, 5, 5)
	if err := session.Jump(3); err != nil {
		t.Fatalf("jump: %v", err)
	}
	if session.Index() != 3 {
		t.Fatalf("expected index 3, got %d", session.Index())
	}
	if err := session.Jump(5); err == nil {
		t.Fatalf("expected out of range error")
	}
	if session.Index() != 3 {
		t.Fatalf("expected index unchanged, got %d", session.Index())
	}
}

// TestSelectOverwritesAndValidates verifies answer recording.
func TestSelectOverwritesAndValidates(t *testing.T) {
	session := newSession(t, 5, 5)
	current := session.Current()
	if err := session.Select(current.Choices[0]); err != nil {
		t.Fatalf("select: %v", err)
	}
	if err := session.Select(current.Choices[2]); err != nil {
		t.Fatalf("select: %v", err)
	}
	if got := session.Answer(0); got != current.Choices[2] {
		t.Fatalf("expected overwritten answer, got %q", got)
	}
	if err := session.Select("not an option"); !errors.Is(err, ErrNoSuchChoice) {
		t.Fatalf("expected ErrNoSuchChoice, got %v", err)
	}
	if err := session.SelectIndex(9); !errors.Is(err, ErrNoSuchChoice) {
		t.Fatalf("expected ErrNoSuchChoice, got %v", err)
	}
	if err := session.Clear(); err != nil {
		t.Fatalf("clear: %v", err)
	}
	if session.Answered() != 0 {
		t.Fatalf("expected no answers, got %d", session.Answered())
	}
}

// TestFinalizeAllCorrect verifies a perfect run scores 900 and passes.
func TestFinalizeAllCorrect(t *testing.T) {
	session := newSession(t, 75, 75)
	for i := 0; i < session.Len(); i++ {
		if err := session.Jump(i); err != nil {
			t.Fatalf("jump: %v", err)
		}
		if err := session.Select(session.Current().Answer); err != nil {
			t.Fatalf("select: %v", err)
		}
	}
	outcome := session.Finalize(testStart.Add(30 * time.Minute))
	if outcome.Correct != 75 || outcome.Total != 75 {
		t.Fatalf("expected 75/75, got %d/%d", outcome.Correct, outcome.Total)
	}
	if outcome.Score != 900 || outcome.Verdict != score.Pass {
		t.Fatalf("expected 900 PASS, got %d %s", outcome.Score, outcome.Verdict)
	}
	if outcome.TimedOut {
		t.Fatalf("did not expect timeout")
	}
	if outcome.ExamID != "20260314-100000" {
		t.Fatalf("unexpected exam id %q", outcome.ExamID)
	}
}

// TestFinalizeNoneAnswered verifies unanswered questions count as wrong.
func TestFinalizeNoneAnswered(t *testing.T) {
	session := newSession(t, 75, 75)
	outcome := session.Finalize(testStart.Add(time.Minute))
	if outcome.Correct != 0 || outcome.Score != 100 || outcome.Verdict != score.Fail {
		t.Fatalf("expected 0 / 100 / FAIL, got %d / %d / %s", outcome.Correct, outcome.Score, outcome.Verdict)
	}
	for _, answer := range outcome.Answers {
		if answer.Correct || answer.Selected != "" {
			t.Fatalf("expected unanswered incorrect row, got %+v", answer)
		}
	}
}

// TestFinalizeLocksSession verifies mutation after submit is rejected.
func TestFinalizeLocksSession(t *testing.T) {
	session := newSession(t, 5, 5)
	first := session.Finalize(testStart.Add(time.Minute))
	for name, mutate := range map[string]func() error{
		"next":     session.Next,
		"previous": session.Previous,
		"clear":    session.Clear,
		"jump":     func() error { return session.Jump(1) },
		"select":   func() error { return session.SelectIndex(0) },
	} {
		if err := mutate(); !errors.Is(err, ErrFinalized) {
			t.Fatalf("%s: expected ErrFinalized, got %v", name, err)
		}
	}
	second := session.Finalize(testStart.Add(time.Hour))
	if second.ExamID != first.ExamID || !second.FinishedAt.Equal(first.FinishedAt) {
		t.Fatalf("expected repeated finalize to return the same outcome")
	}
}

// TestTickExpiresSession verifies the countdown auto-submits at zero.
func TestTickExpiresSession(t *testing.T) {
	clock := testutil.NewFakeClock(testStart)
	session, err := New(loadBank(t, 10), Options{Size: 10, TimeLimit: 3 * time.Second})
	if err != nil {
		t.Fatalf("new session: %v", err)
	}
	if session.Tick(clock.Now()) {
		t.Fatalf("tick before start must not expire")
	}
	session.Start(clock.Now())
	if err := session.Jump(4); err != nil {
		t.Fatalf("jump: %v", err)
	}
	for i := 0; i < 2; i++ {
		clock.Advance(time.Second)
		if session.Tick(clock.Now()) {
			t.Fatalf("expired early at tick %d", i+1)
		}
	}
	if got := session.Remaining(clock.Now()); got != time.Second {
		t.Fatalf("expected 1s remaining, got %s", got)
	}
	clock.Advance(time.Second)
	if !session.Tick(clock.Now()) {
		t.Fatalf("expected expiry at zero")
	}
	outcome := session.Outcome()
	if !outcome.TimedOut || !session.Finalized() {
		t.Fatalf("expected timed out outcome, got %+v", outcome)
	}
	if session.Tick(clock.Now().Add(time.Second)) {
		t.Fatalf("tick after finalize must be a no-op")
	}
	if got := session.Remaining(clock.Now().Add(time.Hour)); got != 0 {
		t.Fatalf("expected remaining frozen at zero, got %s", got)
	}
}
