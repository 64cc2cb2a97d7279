// Package jump implements Mysterious Jump, a vertical platformer.
// The player climbs procedurally spawned platforms while the camera scrolls
// upward, dodging flying mobs and collecting boosts and coins.
//
// The simulation runs in logical pixels (800×600 by default) on a logical
// clock advanced by one tick per Step, so it is fully deterministic for a
// given random source and input sequence.
package jump

import (
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/mysterious-jump/internal/config"
	"github.com/vovakirdan/mysterious-jump/internal/core"
)

// Options configures a new Game. Zero fields get defaults: a seeded
// math/rand source, no persistence, silence, and a discarding logger.
type Options struct {
	Config  config.JumpConfig
	Runtime core.RuntimeConfig
	Rand    core.Rand
	Store   HighscoreStore
	Audio   Audio
	Logger  *log.Logger
}

// Game is one player session: the mode controller plus the current world.
type Game struct {
	cfg     config.JumpConfig
	runtime core.RuntimeConfig
	rng     core.Rand
	store   HighscoreStore
	audio   Audio
	logger  *log.Logger

	world     *World
	mode      core.Mode
	modeSince time.Duration
	now       time.Duration
	running   bool
	paused    bool

	score    int
	bestName string
	best     int

	nameBox    *InputBox
	saveFailed bool
}

// New creates a game in the menu with the stored highscore loaded and the
// menu music playing.
func New(opts Options) *Game {
	g := &Game{
		cfg:     opts.Config,
		runtime: opts.Runtime,
		rng:     opts.Rand,
		store:   opts.Store,
		audio:   opts.Audio,
		logger:  opts.Logger,
		running: true,
		mode:    core.ModeMenu,
	}
	if g.runtime.TickRate <= 0 {
		g.runtime.TickRate = g.cfg.TickRate
	}
	if g.rng == nil {
		seed := g.runtime.Seed
		if seed == 0 {
			seed = time.Now().UnixNano()
		}
		g.rng = rand.New(rand.NewSource(seed))
	}
	if g.store == nil {
		g.store = nopStore{}
	}
	if g.audio == nil {
		g.audio = NopAudio{}
	}
	if g.logger == nil {
		g.logger = log.New(io.Discard)
	}

	// No grace period for the very first menu.
	g.modeSince = -g.grace()
	g.world = NewWorld(&g.cfg, g.rng, 0)
	g.loadHighscore()
	g.audio.PlayMusic(TrackMenu)
	return g
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if !g.running {
		return core.StepResult{State: g.State()}
	}

	if !g.paused || g.mode != core.ModePlaying {
		g.now += g.runtime.TickDuration()
	}

	for _, e := range in.Events {
		if e.Type == core.EventKeyDown && e.Action == core.ActionQuit {
			g.running = false
			g.logger.Debug("quit requested", "mode", g.mode)
			return core.StepResult{State: g.State()}
		}
	}

	// A mode change ends event dispatch for this tick.
	entered := g.mode
	for _, e := range in.Events {
		if g.mode == core.ModePlaying && e.Type == core.EventKeyDown && e.Action == core.ActionPause {
			g.paused = !g.paused
			continue
		}
		if g.paused && g.mode == core.ModePlaying {
			continue
		}
		modes[g.mode].event(g, e)
		if g.mode != entered {
			break
		}
	}

	if !(g.paused && g.mode == core.ModePlaying) {
		modes[g.mode].update(g, in)
	}

	return core.StepResult{State: g.State()}
}

// Render draws the current mode.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	modes[g.mode].draw(g, dst, g.Viewport(dst.Width(), dst.Height()))
}

// Viewport projects the world onto a grid of cols×rows cells.
func (g *Game) Viewport(cols, rows int) core.Viewport {
	return core.NewViewport(g.cfg.Screen.Width, g.cfg.Screen.Height, cols, rows)
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Mode:      g.mode,
		Score:     g.score,
		Highscore: g.best,
		Paused:    g.paused,
		Running:   g.running,
	}
}

// Mode returns the active mode.
func (g *Game) Mode() core.Mode { return g.mode }

// World returns the current session's world.
func (g *Game) World() *World { return g.world }

func (g *Game) grace() time.Duration {
	return time.Duration(g.cfg.GameOver.GraceMs) * time.Millisecond
}

// settled reports whether the current mode has outlived the grace period.
func (g *Game) settled() bool {
	return g.now-g.modeSince >= g.grace()
}

func (g *Game) loadHighscore() {
	g.bestName, g.best = g.store.HighestScore()
}

func (g *Game) setMode(m core.Mode) {
	g.logger.Debug("mode change", "from", g.mode, "to", m, "score", g.score)
	g.mode = m
	g.modeSince = g.now
	g.paused = false
}

// startSession resets everything session-scoped and starts play.
func (g *Game) startSession() {
	g.world = NewWorld(&g.cfg, g.rng, g.now)
	g.score = 0
	g.nameBox = nil
	g.saveFailed = false
	g.loadHighscore()
	g.setMode(core.ModePlaying)
	g.audio.PlayMusic(TrackTheme)
}

func (g *Game) enterGameOver(cause string) {
	g.logger.Info("game over", "cause", cause, "score", g.score, "highscore", g.best)
	g.setMode(core.ModeGameOver)
	g.saveFailed = false

	w, h := g.cfg.Screen.Width, g.cfg.Screen.Height
	g.nameBox = NewInputBox(core.NewRect(w/2-100, h*3/4, 140, 32), g.cfg.GameOver.GlyphWidth)
	g.nameBox.Active = g.cfg.GameOver.AutofocusName
	g.nameBox.Update()
}

func (g *Game) enterMenu() {
	g.setMode(core.ModeMenu)
	g.nameBox = nil
	g.loadHighscore()
	g.audio.PlayMusic(TrackMenu)
}

// newHighscore reports whether the finished session beat the cached best.
func (g *Game) newHighscore() bool {
	return g.score > g.best
}

func (g *Game) submitName(name string) {
	if err := g.store.AddScore(name, g.score); err != nil {
		g.logger.Error("cannot save highscore", "name", name, "score", g.score, "error", err)
		g.saveFailed = true
		g.nameBox.Text = name
		return
	}
	g.logger.Info("highscore saved", "name", name, "score", g.score)
	g.enterMenu()
}
