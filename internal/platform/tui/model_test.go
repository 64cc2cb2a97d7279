package tui

import (
	"math/rand"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/mysterious-jump/internal/config"
	"github.com/vovakirdan/mysterious-jump/internal/core"
	"github.com/vovakirdan/mysterious-jump/internal/games/jump"
)

var testNow = time.Unix(1000, 0)

func newTestModel(t *testing.T) Model {
	t.Helper()
	game := jump.New(jump.Options{
		Config:  config.DefaultJumpConfig(),
		Runtime: core.RuntimeConfig{TickRate: 30},
		Rand:    rand.New(rand.NewSource(1)),
	})
	m := NewModel(game, Options{
		Width:      80,
		Height:     25,
		TickRate:   30,
		HoldWindow: 220 * time.Millisecond,
	})
	m.clock = func() time.Time { return testNow }
	return m
}

func send(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T, expected Model", next)
	}
	return nm, cmd
}

func TestModelKeyPressQueuesDownAndUp(t *testing.T) {
	m := newTestModel(t)
	m, _ = send(t, m, runeKey('d'))

	want := []core.Event{
		core.KeyDown(core.ActionRight, 'd'),
		core.KeyUp(core.ActionRight, 'd'),
	}
	if len(m.inputFrame.Events) != len(want) {
		t.Fatalf("events = %v, expected %v", m.inputFrame.Events, want)
	}
	for i, e := range want {
		if m.inputFrame.Events[i] != e {
			t.Errorf("event %d = %+v, expected %+v", i, m.inputFrame.Events[i], e)
		}
	}
}

func TestModelIgnoresUnusedKeys(t *testing.T) {
	m := newTestModel(t)
	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if len(m.inputFrame.Events) != 0 {
		t.Errorf("unused key queued %v", m.inputFrame.Events)
	}
}

func TestModelTickStartsGameAndHoldsMovement(t *testing.T) {
	m := newTestModel(t)

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
	m, _ = send(t, m, TickMsg(testNow))
	if m.game.Mode() != core.ModePlaying {
		t.Fatalf("mode = %v, expected playing after a key press", m.game.Mode())
	}
	if len(m.inputFrame.Events) != 0 {
		t.Error("input frame should be cleared after a tick")
	}

	m, _ = send(t, m, runeKey('d'))
	m, _ = send(t, m, TickMsg(testNow.Add(100*time.Millisecond)))
	if vx := m.game.World().Player.Vel.X; vx <= 0 {
		t.Errorf("held right should accelerate the player, vel.x = %v", vx)
	}
}

func TestModelQuitEndsProgram(t *testing.T) {
	m := newTestModel(t)

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	m, cmd := send(t, m, TickMsg(testNow))
	if cmd == nil {
		t.Fatal("expected a quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("quit key should end the program")
	}
	if m.View() != "" {
		t.Error("view should be empty after quitting")
	}
}

func TestModelMouseClickUsesWorldCoordinates(t *testing.T) {
	m := newTestModel(t)

	m, _ = send(t, m, tea.MouseMsg{X: 40, Y: 12, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	if len(m.inputFrame.Events) != 1 {
		t.Fatalf("events = %v, expected one mouse press", m.inputFrame.Events)
	}
	// 80x24 playfield over 800x600: cell centers map to (405, 312).
	if e := m.inputFrame.Events[0]; e != core.MouseDown(405, 312) {
		t.Errorf("mouse event = %+v, expected press at (405, 312)", e)
	}

	tests := []struct {
		name string
		msg  tea.MouseMsg
	}{
		{"help row", tea.MouseMsg{X: 40, Y: 24, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}},
		{"release", tea.MouseMsg{X: 40, Y: 12, Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft}},
		{"right button", tea.MouseMsg{X: 40, Y: 12, Action: tea.MouseActionPress, Button: tea.MouseButtonRight}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newTestModel(t)
			m, _ = send(t, m, tt.msg)
			if len(m.inputFrame.Events) != 0 {
				t.Errorf("expected no events, got %v", m.inputFrame.Events)
			}
		})
	}
}

func TestModelResizeKeepsHelpRow(t *testing.T) {
	m := newTestModel(t)
	m, _ = send(t, m, tea.WindowSizeMsg{Width: 120, Height: 40})

	if m.screen.Width() != 120 || m.screen.Height() != 39 {
		t.Errorf("playfield = %dx%d, expected 120x39", m.screen.Width(), m.screen.Height())
	}

	view := m.View()
	if !strings.Contains(view, jump.Title) {
		t.Error("view should show the menu title")
	}
	if !strings.Contains(view, "jump") || !strings.Contains(view, "quit") {
		t.Error("view should end with the key help line")
	}
}

func TestModelScreenshot(t *testing.T) {
	dir := t.TempDir()
	m := newTestModel(t)
	m.opts.ScreenshotDir = dir

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyCtrlS})
	if len(m.inputFrame.Events) != 0 {
		t.Error("screenshot key should not reach the game")
	}

	path := filepath.Join(dir, "jump_"+testNow.Format("20060102_150405")+".txt")
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("screenshot not written: %v", err)
	}
	if !strings.Contains(string(data), jump.Title) {
		t.Error("screenshot should contain the menu screen")
	}
}
