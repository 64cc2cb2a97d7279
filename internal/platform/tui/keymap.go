package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/mysterious-jump/internal/core"
)

// KeyMap holds the terminal bindings for the game.
// It implements help.KeyMap so the bindings can be listed under the playfield.
type KeyMap struct {
	Left       key.Binding
	Right      key.Binding
	Up         key.Binding
	Down       key.Binding
	Jump       key.Binding
	Confirm    key.Binding
	Erase      key.Binding
	Pause      key.Binding
	Quit       key.Binding
	Screenshot key.Binding
}

// DefaultKeyMap returns the default bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Left: key.NewBinding(
			key.WithKeys("a", "left"),
			key.WithHelp("a/←", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("d", "right"),
			key.WithHelp("d/→", "right"),
		),
		Up: key.NewBinding(
			key.WithKeys("w", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("s", "down"),
		),
		Jump: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "jump"),
		),
		Confirm: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "save name"),
		),
		Erase: key.NewBinding(
			key.WithKeys("backspace"),
		),
		Pause: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "pause"),
		),
		Quit: key.NewBinding(
			key.WithKeys("esc", "ctrl+c"),
			key.WithHelp("esc", "quit"),
		),
		Screenshot: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "screenshot"),
		),
	}
}

// ShortHelp returns bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Left, k.Right, k.Jump, k.Pause, k.Quit}
}

// FullHelp returns bindings for the expanded help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right, k.Jump},
		{k.Confirm, k.Pause, k.Quit, k.Screenshot},
	}
}

// Translate maps a key message to a game action and the character it types.
// Printable keys always carry their rune, even when they are also bound
// to an action, so the name box can receive "a" or "p".
// ok is false for keys the game has no use for.
func (k KeyMap) Translate(msg tea.KeyMsg) (action core.Action, r rune, ok bool) {
	switch {
	case key.Matches(msg, k.Quit):
		action = core.ActionQuit
	case key.Matches(msg, k.Left):
		action = core.ActionLeft
	case key.Matches(msg, k.Right):
		action = core.ActionRight
	case key.Matches(msg, k.Up):
		action = core.ActionUp
	case key.Matches(msg, k.Down):
		action = core.ActionDown
	case key.Matches(msg, k.Jump):
		action = core.ActionJump
	case key.Matches(msg, k.Confirm):
		action = core.ActionConfirm
	case key.Matches(msg, k.Erase):
		action = core.ActionErase
	case key.Matches(msg, k.Pause):
		action = core.ActionPause
	}

	switch msg.Type {
	case tea.KeySpace:
		r = ' '
	case tea.KeyRunes:
		if len(msg.Runes) == 1 && !msg.Alt {
			r = msg.Runes[0]
		}
	}

	return action, r, action != core.ActionNone || r != 0
}
