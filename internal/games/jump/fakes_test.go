package jump

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/vovakirdan/mysterious-jump/internal/config"
	"github.com/vovakirdan/mysterious-jump/internal/core"
)

// clampRand always returns its value, clamped to n-1.
type clampRand int

func (c clampRand) Intn(n int) int { return min(int(c), n-1) }

type scoreRecord struct {
	name  string
	score int
}

type recordingStore struct {
	bestName string
	best     int
	err      error
	calls    int
	added    []scoreRecord
}

func (s *recordingStore) HighestScore() (string, int) { return s.bestName, s.best }

func (s *recordingStore) AddScore(name string, score int) error {
	s.calls++
	if s.err != nil {
		return s.err
	}
	s.added = append(s.added, scoreRecord{name, score})
	if score > s.best {
		s.bestName, s.best = name, score
	}
	return nil
}

var errDiskFull = errors.New("disk full")

type recordingAudio struct {
	music   []Track
	effects []Effect
}

func (a *recordingAudio) PlayMusic(t Track)   { a.music = append(a.music, t) }
func (a *recordingAudio) PlayEffect(e Effect) { a.effects = append(a.effects, e) }

func (a *recordingAudio) lastMusic() Track {
	if len(a.music) == 0 {
		return -1
	}
	return a.music[len(a.music)-1]
}

func newTestGame(t *testing.T, store *recordingStore, audio *recordingAudio) *Game {
	t.Helper()
	return New(Options{
		Config:  config.DefaultJumpConfig(),
		Runtime: core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 30},
		Rand:    rand.New(rand.NewSource(1)),
		Store:   store,
		Audio:   audio,
	})
}

// onlyGround is the default config with a single ground platform and no clouds.
func onlyGround() config.JumpConfig {
	cfg := config.DefaultJumpConfig()
	cfg.Clouds.Initial = 0
	cfg.Platforms.Layout = []config.PlatformLayout{{X: 0, Y: 560, W: 800, H: 40}}
	return cfg
}

// press steps one frame in which a key goes down and up.
func press(g *Game, a core.Action, r rune) core.StepResult {
	in := core.NewInputFrame()
	in.Push(core.KeyDown(a, r))
	in.Push(core.KeyUp(a, r))
	return g.Step(in)
}

func typeText(g *Game, s string) {
	for _, r := range s {
		press(g, core.ActionNone, r)
	}
}

// idle steps n empty frames.
func idle(g *Game, n int) {
	for i := 0; i < n; i++ {
		g.Step(core.NewInputFrame())
	}
}

// pastGrace steps enough empty frames for the grace period to expire.
func pastGrace(g *Game) {
	tick := g.runtime.TickDuration()
	idle(g, int(g.grace()/tick)+1)
}
