package live

import (
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"pracexam/internal/exam"
	"pracexam/internal/testutil"
)

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// press feeds a key to the model and delivers any resulting messages.
func press(t *testing.T, m Model, msg tea.Msg) (Model, bool) {
	t.Helper()
	next, cmd := m.Update(msg)
	model := next.(Model)
	quit := false
	for _, out := range drain(cmd) {
		if _, ok := out.(tea.QuitMsg); ok {
			quit = true
			continue
		}
		var more bool
		model, more = press(t, model, out)
		quit = quit || more
	}
	return model, quit
}

// drain runs a command and flattens batches; tick commands are skipped.
func drain(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	batch, ok := msg.(tea.BatchMsg)
	if !ok {
		if msg == nil {
			return nil
		}
		return []tea.Msg{msg}
	}
	var msgs []tea.Msg
	for _, c := range batch {
		msgs = append(msgs, drain(c)...)
	}
	return msgs
}

func TestModelSubmitRecordsOnce(t *testing.T) {
	session := newSession(t, 2)
	clock := testutil.NewFakeClock(testStart)
	var recorded []exam.Outcome
	m := NewModel(session, Options{
		NoColor:    true,
		Now:        clock.Now,
		OnFinalize: func(o exam.Outcome) error { recorded = append(recorded, o); return nil },
	})
	if !strings.Contains(m.View(), "Press enter to start.") {
		t.Fatalf("expected start screen, got:\n%s", m.View())
	}

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m, _ = press(t, m, runes("2"))
	if !strings.Contains(m.View(), "(•) 2.") {
		t.Fatalf("expected second option selected, got:\n%s", m.View())
	}
	m, _ = press(t, m, runes("s"))
	if !strings.Contains(m.View(), "1 question(s) unanswered") {
		t.Fatalf("expected confirmation prompt, got:\n%s", m.View())
	}
	m, quit := press(t, m, runes("y"))
	if quit {
		t.Fatalf("submit should not quit")
	}
	if len(recorded) != 1 || !m.State().Saved {
		t.Fatalf("expected one recorded outcome, got %d", len(recorded))
	}
	view := m.View()
	for _, want := range []string{"Exam Complete", "Correct:", "Scaled Score (approx.):", "Result:"} {
		if !strings.Contains(view, want) {
			t.Fatalf("expected %q in view, got:\n%s", want, view)
		}
	}

	m, _ = press(t, m, runes("r"))
	if !strings.Contains(m.View(), "Correct answer:") {
		t.Fatalf("expected review detail, got:\n%s", m.View())
	}
	_, quit = press(t, m, runes("q"))
	if !quit || len(recorded) != 1 {
		t.Fatalf("expected quit without recording again")
	}
}

func TestModelShowsSaveWarning(t *testing.T) {
	session := newSession(t, 1)
	m := NewModel(session, Options{
		NoColor:    true,
		OnFinalize: func(exam.Outcome) error { return errors.New("permission denied") },
	})
	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m, _ = press(t, m, runes("s"))
	m, _ = press(t, m, runes("y"))
	if !strings.Contains(m.View(), "Warning: permission denied") {
		t.Fatalf("expected save warning, got:\n%s", m.View())
	}
}

func TestModelQuitBeforeStart(t *testing.T) {
	session := newSession(t, 1)
	m := NewModel(session, Options{NoColor: true})
	_, quit := press(t, m, runes("q"))
	if !quit || session.Finalized() {
		t.Fatalf("expected quit without submitting")
	}
}

func TestModelCtrlCAbandons(t *testing.T) {
	session := newSession(t, 1)
	m := NewModel(session, Options{NoColor: true})
	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m, quit := press(t, m, tea.KeyMsg{Type: tea.KeyCtrlC})
	if !quit || !m.aborted {
		t.Fatalf("expected aborted quit")
	}
}

func TestModelCtrlCWaitsForPendingSave(t *testing.T) {
	session := newSession(t, 1)
	var recorded int
	m := NewModel(session, Options{
		NoColor:    true,
		OnFinalize: func(exam.Outcome) error { recorded++; return nil },
	})
	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m, _ = press(t, m, runes("s"))

	// Confirm without running the record command yet.
	next, pending := m.Update(runes("y"))
	m = next.(Model)
	if !m.State().Finished() || m.State().Saved {
		t.Fatalf("expected a finished exam with the save outstanding")
	}

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	m = next.(Model)
	if cmd != nil {
		t.Fatalf("expected ctrl+c to wait for the save")
	}
	if m.aborted {
		t.Fatalf("a submitted exam must not be abandoned")
	}

	var quit bool
	for _, msg := range drain(pending) {
		var more bool
		m, more = press(t, m, msg)
		quit = quit || more
	}
	if !quit || recorded != 1 || !m.State().Saved {
		t.Fatalf("expected quit after one save, quit=%v recorded=%d", quit, recorded)
	}
}
