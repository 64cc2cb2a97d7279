package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/mysterious-jump/internal/core"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestKeyMapTranslate(t *testing.T) {
	tests := []struct {
		name       string
		msg        tea.KeyMsg
		wantAction core.Action
		wantRune   rune
		wantOK     bool
	}{
		{"a walks left", runeKey('a'), core.ActionLeft, 'a', true},
		{"left arrow", tea.KeyMsg{Type: tea.KeyLeft}, core.ActionLeft, 0, true},
		{"d walks right", runeKey('d'), core.ActionRight, 'd', true},
		{"right arrow", tea.KeyMsg{Type: tea.KeyRight}, core.ActionRight, 0, true},
		{"w", runeKey('w'), core.ActionUp, 'w', true},
		{"space jumps", tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, core.ActionJump, ' ', true},
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, core.ActionConfirm, 0, true},
		{"backspace", tea.KeyMsg{Type: tea.KeyBackspace}, core.ActionErase, 0, true},
		{"p pauses", runeKey('p'), core.ActionPause, 'p', true},
		{"esc quits", tea.KeyMsg{Type: tea.KeyEsc}, core.ActionQuit, 0, true},
		{"ctrl+c quits", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit, 0, true},
		{"plain letter", runeKey('x'), core.ActionNone, 'x', true},
		{"unicode letter", runeKey('ж'), core.ActionNone, 'ж', true},
		{"tab is unused", tea.KeyMsg{Type: tea.KeyTab}, core.ActionNone, 0, false},
		{"alt chord is unused", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'a'}, Alt: true}, core.ActionNone, 0, false},
	}

	keys := DefaultKeyMap()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			action, r, ok := keys.Translate(tt.msg)
			if action != tt.wantAction || r != tt.wantRune || ok != tt.wantOK {
				t.Errorf("Translate(%q) = (%v, %q, %v), expected (%v, %q, %v)",
					tt.msg.String(), action, r, ok, tt.wantAction, tt.wantRune, tt.wantOK)
			}
		})
	}
}
