package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-pong/internal/core"
)

// KeyMap holds the terminal key bindings. Each control binding maps to one
// logical core.Key.
type KeyMap struct {
	P1Up   key.Binding
	P1Down key.Binding
	P2Up   key.Binding
	P2Down key.Binding
	Quit   key.Binding
}

// DefaultKeyMap returns the standard bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		P1Up: key.NewBinding(
			key.WithKeys("w", "W"),
			key.WithHelp("w/s", "player 1"),
		),
		P1Down: key.NewBinding(
			key.WithKeys("s", "S"),
			key.WithHelp("s", "down"),
		),
		P2Up: key.NewBinding(
			key.WithKeys("up"),
			key.WithHelp("↑/↓", "player 2"),
		),
		P2Down: key.NewBinding(
			key.WithKeys("down"),
			key.WithHelp("↓", "down"),
		),
		Quit: key.NewBinding(
			key.WithKeys("esc", "q", "ctrl+c"),
			key.WithHelp("esc/q", "quit"),
		),
	}
}

// ShortHelp returns key bindings for the footer.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.P1Up, k.P2Up, k.Quit}
}

// FullHelp returns key bindings for the expanded help view.
// The up bindings' help already names both directions.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.P1Up},
		{k.P2Up},
		{k.Quit},
	}
}

// Lookup translates a key message to a control key.
// Returns core.KeyNone for keys that do not control a paddle.
func (k KeyMap) Lookup(msg tea.KeyMsg) core.Key {
	switch {
	case key.Matches(msg, k.P1Up):
		return core.KeyW
	case key.Matches(msg, k.P1Down):
		return core.KeyS
	case key.Matches(msg, k.P2Up):
		return core.KeyArrowUp
	case key.Matches(msg, k.P2Down):
		return core.KeyArrowDown
	}
	return core.KeyNone
}

// IsQuit reports whether msg is a quit request.
func (k KeyMap) IsQuit(msg tea.KeyMsg) bool {
	return key.Matches(msg, k.Quit)
}
