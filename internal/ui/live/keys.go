package live

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// keyMap holds the live UI key bindings.
type keyMap struct {
	Start    key.Binding
	Choose   key.Binding
	Up       key.Binding
	Down     key.Binding
	Next     key.Binding
	Previous key.Binding
	Submit   key.Binding
	Review   key.Binding
	Back     key.Binding
	Yes      key.Binding
	No       key.Binding
	Quit     key.Binding
	Abort    key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Start:    key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter", "start")),
		Choose:   key.NewBinding(key.WithKeys("1", "2", "3", "4", "5", "6", "7", "8", "9"), key.WithHelp("1-9", "choose")),
		Up:       key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:     key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Next:     key.NewBinding(key.WithKeys("n", "right", "l", "enter"), key.WithHelp("n/→", "next")),
		Previous: key.NewBinding(key.WithKeys("p", "left", "h"), key.WithHelp("p/←", "previous")),
		Submit:   key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "submit")),
		Review:   key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "review")),
		Back:     key.NewBinding(key.WithKeys("esc", "b"), key.WithHelp("esc", "back")),
		Yes:      key.NewBinding(key.WithKeys("y", "Y"), key.WithHelp("y", "yes")),
		No:       key.NewBinding(key.WithKeys("n", "N", "esc"), key.WithHelp("n", "no")),
		Quit:     key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),
		Abort:    key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "abandon")),
	}
}

// bindingList adapts a flat binding list to help.KeyMap.
type bindingList []key.Binding

func (b bindingList) ShortHelp() []key.Binding { return b }

func (b bindingList) FullHelp() [][]key.Binding { return [][]key.Binding{b} }

var _ help.KeyMap = bindingList(nil)

// helpFor lists the bindings that apply to the current screen.
func (k keyMap) helpFor(state State) bindingList {
	if state.Confirm != ConfirmNone {
		return bindingList{k.Yes, k.No}
	}
	switch state.Screen {
	case ScreenStart:
		return bindingList{k.Start, k.Quit}
	case ScreenQuestion:
		return bindingList{k.Choose, k.Up, k.Down, k.Next, k.Previous, k.Submit, k.Quit}
	case ScreenResults:
		return bindingList{k.Review, k.Quit}
	case ScreenReview:
		return bindingList{k.Up, k.Down, k.Back, k.Quit}
	}
	return nil
}

// actionFor maps a key press to an action for the current state.
func (k keyMap) actionFor(state State, msg tea.KeyMsg) (Action, bool) {
	if state.Confirm != ConfirmNone {
		if key.Matches(msg, k.Yes) {
			return Action{Kind: ActionYes}, true
		}
		return Action{Kind: ActionNo}, true
	}
	switch state.Screen {
	case ScreenStart:
		switch {
		case key.Matches(msg, k.Start):
			return Action{Kind: ActionStart}, true
		case key.Matches(msg, k.Quit):
			return Action{Kind: ActionQuit}, true
		}
	case ScreenQuestion:
		switch {
		case key.Matches(msg, k.Choose):
			return Action{Kind: ActionSelect, Choice: int(msg.String()[0] - '1')}, true
		case key.Matches(msg, k.Up):
			return Action{Kind: ActionUp}, true
		case key.Matches(msg, k.Down):
			return Action{Kind: ActionDown}, true
		case key.Matches(msg, k.Next):
			return Action{Kind: ActionNext}, true
		case key.Matches(msg, k.Previous):
			return Action{Kind: ActionPrevious}, true
		case key.Matches(msg, k.Submit):
			return Action{Kind: ActionSubmit}, true
		case key.Matches(msg, k.Quit):
			return Action{Kind: ActionQuit}, true
		}
	case ScreenResults:
		switch {
		case key.Matches(msg, k.Review):
			return Action{Kind: ActionReview}, true
		case key.Matches(msg, k.Quit), key.Matches(msg, k.Start):
			return Action{Kind: ActionQuit}, true
		}
	case ScreenReview:
		switch {
		case key.Matches(msg, k.Up):
			return Action{Kind: ActionUp}, true
		case key.Matches(msg, k.Down):
			return Action{Kind: ActionDown}, true
		case key.Matches(msg, k.Back), key.Matches(msg, k.Review):
			return Action{Kind: ActionBack}, true
		case key.Matches(msg, k.Quit):
			return Action{Kind: ActionQuit}, true
		}
	}
	return Action{}, false
}
