package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/term2048/internal/core"
)

// KeyMap binds Bubble Tea keys to game actions.
// Letters are matched in either case; arrows and Ctrl+C are extras.
type KeyMap struct {
	Up      key.Binding
	Left    key.Binding
	Down    key.Binding
	Right   key.Binding
	Restart key.Binding
	Quit    key.Binding
}

// DefaultKeyMap returns the WASD layout with R to restart and Q to exit.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("w", "W", "up"),
			key.WithHelp("(W)", "Up"),
		),
		Left: key.NewBinding(
			key.WithKeys("a", "A", "left"),
			key.WithHelp("(A)", "Left"),
		),
		Down: key.NewBinding(
			key.WithKeys("s", "S", "down"),
			key.WithHelp("(S)", "Down"),
		),
		Right: key.NewBinding(
			key.WithKeys("d", "D", "right"),
			key.WithHelp("(D)", "Right"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r", "R"),
			key.WithHelp("(R)", "Restart"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "Q", "ctrl+c"),
			key.WithHelp("(Q)", "Exit"),
		),
	}
}

// Action translates a key message. Unbound keys report ok == false.
func (k KeyMap) Action(msg tea.KeyMsg) (action core.Action, ok bool) {
	switch {
	case key.Matches(msg, k.Up):
		return core.ActionUp, true
	case key.Matches(msg, k.Left):
		return core.ActionLeft, true
	case key.Matches(msg, k.Down):
		return core.ActionDown, true
	case key.Matches(msg, k.Right):
		return core.ActionRight, true
	case key.Matches(msg, k.Restart):
		return core.ActionRestart, true
	case key.Matches(msg, k.Quit):
		return core.ActionExit, true
	}
	return 0, false
}

// ShortHelp returns the movement bindings.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Left, k.Right}
}

// MetaHelp returns the bindings that are shown on every screen.
func (k KeyMap) MetaHelp() []key.Binding {
	return []key.Binding{k.Restart, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp(), k.MetaHelp()}
}
