package live

import "time"

// ActionKind identifies a user or timer action.
type ActionKind int

const (
	ActionStart ActionKind = iota
	ActionSelect
	ActionUp
	ActionDown
	ActionNext
	ActionPrevious
	ActionSubmit
	ActionReview
	ActionBack
	ActionYes
	ActionNo
	ActionQuit
	ActionTick
)

// Action is one input to Reduce. Choice is the zero-based option for
// ActionSelect.
type Action struct {
	Kind   ActionKind
	Choice int
}

// savedMsg reports the result of recording the outcome.
type savedMsg struct {
	err error
}

// tickMsg carries a clock tick.
type tickMsg time.Time
