package live

import (
	"errors"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"pracexam/internal/exam"
)

// ErrAbandoned is returned when the exam is interrupted before it is submitted.
var ErrAbandoned = errors.New("exam abandoned before submission")

// Options configures the live UI model.
type Options struct {
	NoColor      bool
	TickInterval time.Duration
	PassingScore int
	Now          func() time.Time
	// OnFinalize runs once with the frozen outcome; its error is shown on the
	// results screen.
	OnFinalize func(exam.Outcome) error
}

// Model renders a live console UI using Bubble Tea.
type Model struct {
	state        State
	session      *exam.Session
	keys         keyMap
	help         help.Model
	table        table.Model
	tickInterval time.Duration
	now          func() time.Time
	onFinalize   func(exam.Outcome) error
	noColor      bool
	width        int
	aborted      bool
}

// NewModel constructs a live UI model for a session.
func NewModel(session *exam.Session, opts Options) Model {
	tickInterval := opts.TickInterval
	if tickInterval <= 0 {
		tickInterval = time.Second
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	t := table.New(
		table.WithColumns(defaultColumns()),
		table.WithRows([]table.Row{}),
		table.WithFocused(true),
		table.WithHeight(12),
	)
	t.SetStyles(tableStyles(opts.NoColor))
	return Model{
		state: State{
			Screen:       ScreenStart,
			Snapshot:     session.Snapshot(now()),
			PassingScore: opts.PassingScore,
		},
		session:      session,
		keys:         defaultKeyMap(),
		help:         help.New(),
		table:        t,
		tickInterval: tickInterval,
		now:          now,
		onFinalize:   opts.OnFinalize,
		noColor:      opts.NoColor,
	}
}

// State returns the current UI state.
func (m Model) State() State {
	return m.state
}

// Init starts the countdown ticker.
func (m Model) Init() tea.Cmd {
	return tick(m.tickInterval)
}

// Update consumes key presses, timer ticks, and save results.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch typed := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = typed.Width
		m.help.Width = typed.Width
		m.table.SetWidth(typed.Width)
		m.table.SetHeight(max(typed.Height-12, 3))
		m.table.SetColumns(columnsForWidth(typed.Width))
		return m, nil
	case tickMsg:
		return m.apply(Action{Kind: ActionTick}, tick(m.tickInterval))
	case savedMsg:
		m.state = applySaved(m.state, typed.err)
		if m.state.ReadyToExit() {
			return m, tea.Quit
		}
		return m, nil
	case tea.KeyMsg:
		if typed.Type == tea.KeyCtrlC {
			if m.state.Finished() && !m.state.Saved {
				// The record command is still writing; savedMsg quits.
				m.state.Quit = true
				return m, nil
			}
			m.aborted = !m.state.Finished()
			return m, tea.Quit
		}
		action, ok := m.keys.actionFor(m.state, typed)
		if !ok {
			return m, nil
		}
		return m.apply(action, nil)
	}
	return m, nil
}

// apply reduces an action and schedules follow-up commands.
func (m Model) apply(action Action, next tea.Cmd) (tea.Model, tea.Cmd) {
	wasFinished := m.state.Finished()
	m.state = Reduce(m.state, m.session, action, m.now())
	cmds := []tea.Cmd{next}
	if !wasFinished && m.state.Finished() {
		m.table.SetRows(rowsForOutcome(*m.state.Outcome))
		cmds = append(cmds, record(m.onFinalize, *m.state.Outcome))
	}
	if m.state.Screen == ScreenReview {
		m.table.SetCursor(m.state.Review)
	}
	if m.state.ReadyToExit() {
		cmds = append(cmds, tea.Quit)
	}
	return m, tea.Batch(cmds...)
}

// View renders the active screen.
func (m Model) View() string {
	var body string
	switch m.state.Screen {
	case ScreenStart:
		body = renderStart(m.state, m.noColor)
	case ScreenQuestion:
		body = renderQuestion(m.state, m.noColor)
	case ScreenResults:
		body = renderResults(m.state, m.noColor)
	case ScreenReview:
		body = lipgloss.JoinVertical(lipgloss.Left,
			renderHeading("Review", m.noColor),
			m.table.View(),
			renderReviewDetail(m.state, m.noColor),
		)
	}
	footer := renderFooter(m.state, m.noColor)
	return lipgloss.JoinVertical(lipgloss.Left, body, footer, m.help.View(m.keys.helpFor(m.state)))
}

// record hands the outcome to the recorder off the update loop.
func record(onFinalize func(exam.Outcome) error, outcome exam.Outcome) tea.Cmd {
	return func() tea.Msg {
		if onFinalize == nil {
			return savedMsg{}
		}
		return savedMsg{err: onFinalize(outcome)}
	}
}

// tick emits a periodic tick message.
func tick(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg { return tickMsg(t) })
}
