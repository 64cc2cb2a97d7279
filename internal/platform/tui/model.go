package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/mysterious-jump/internal/core"
	"github.com/vovakirdan/mysterious-jump/internal/games/jump"
)

// Options configures the terminal front end.
type Options struct {
	Width, Height int           // Initial terminal size in characters
	TickRate      int           // Simulation ticks per second
	HoldWindow    time.Duration // How long a movement key stays held after a press
	ScreenshotDir string        // Where Ctrl+S writes screen dumps; empty disables them
	Logger        *log.Logger
}

var helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

// Model is the Bubble Tea model for one running game.
// The last terminal row shows key help; the rest is the playfield.
type Model struct {
	game       *jump.Game
	screen     *core.Screen
	opts       Options
	keys       KeyMap
	help       help.Model
	hold       *HoldTracker
	inputFrame core.InputFrame
	clock      func() time.Time
	quitting   bool
}

// NewModel creates a Bubble Tea model driving game.
func NewModel(game *jump.Game, opts Options) Model {
	if opts.Width <= 0 || opts.Height <= 0 {
		def := core.DefaultConfig()
		opts.Width, opts.Height = def.ScreenW, def.ScreenH
	}
	if opts.TickRate <= 0 {
		opts.TickRate = core.DefaultConfig().TickRate
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}

	h := help.New()
	h.Width = opts.Width

	return Model{
		game:       game,
		screen:     core.NewScreen(opts.Width, playfieldRows(opts.Height)),
		opts:       opts,
		keys:       DefaultKeyMap(),
		help:       h,
		hold:       NewHoldTracker(opts.HoldWindow),
		inputFrame: core.NewInputFrame(),
		clock:      time.Now,
	}
}

// playfieldRows leaves one row for the help line.
func playfieldRows(height int) int {
	if height > 1 {
		return height - 1
	}
	return height
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.opts.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey queues a press and a release for every recognised key.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Screenshot) {
		m.saveScreenshot()
		return m, nil
	}

	action, r, ok := m.keys.Translate(msg)
	if !ok {
		return m, nil
	}

	m.inputFrame.Push(core.KeyDown(action, r))
	m.inputFrame.Push(core.KeyUp(action, r))
	m.hold.Press(action, m.clock())

	return m, nil
}

// handleMouse forwards left clicks on the playfield in world coordinates.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return m, nil
	}
	if msg.Y < 0 || msg.Y >= m.screen.Height() {
		return m, nil
	}

	vp := m.game.Viewport(m.screen.Width(), m.screen.Height())
	x, y := vp.WorldPoint(msg.X, msg.Y)
	m.inputFrame.Push(core.MouseDown(x, y))

	return m, nil
}

// handleResize reprojects the world onto the new terminal size.
// The simulation runs in logical pixels, so play continues unchanged.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.opts.Width = msg.Width
	m.opts.Height = msg.Height
	m.screen.Resize(msg.Width, playfieldRows(msg.Height))
	m.help.Width = msg.Width

	return m, nil
}

// handleTick runs one simulation step.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	m.hold.Apply(&m.inputFrame, now)
	result := m.game.Step(m.inputFrame)
	m.inputFrame.Clear()

	if !result.State.Running {
		m.quitting = true
		return m, tea.Quit
	}

	return m, tickCmd(m.opts.TickRate)
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	if m.opts.ScreenshotDir == "" {
		return
	}

	m.game.Render(m.screen)

	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(m.opts.ScreenshotDir, 0o755)

	timestamp := m.clock().Format("20060102_150405")
	path := filepath.Join(m.opts.ScreenshotDir, fmt.Sprintf("jump_%s.txt", timestamp))

	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.opts.Logger.Warn("screenshot failed", "path", path, "err", err)
		return
	}
	m.opts.Logger.Debug("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen) + "\n" + helpStyle.Render(m.help.View(m.keys))
}

// Run starts the Bubble Tea program for game on the local terminal.
func Run(game *jump.Game, opts Options) error {
	p := tea.NewProgram(
		NewModel(game, opts),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	_, err := p.Run()
	return err
}
