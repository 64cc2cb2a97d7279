package core

import "time"

// RuntimeConfig contains configuration passed to the game at initialization.
// The simulation runs in fixed logical pixels; ScreenW/ScreenH only size
// the terminal grid the world is projected onto.
type RuntimeConfig struct {
	ScreenW  int   // Terminal width in characters
	ScreenH  int   // Terminal height in characters
	TickRate int   // Simulation ticks per second (default 30)
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 30,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// TickDuration returns the logical time covered by one simulation tick.
func (c RuntimeConfig) TickDuration() time.Duration {
	if c.TickRate <= 0 {
		return time.Second / 30
	}
	return time.Second / time.Duration(c.TickRate)
}

// Mode is the active top-level game mode.
type Mode int

const (
	ModeMenu Mode = iota
	ModePlaying
	ModeGameOver
)

// String returns a human-readable name for the mode.
func (m Mode) String() string {
	switch m {
	case ModeMenu:
		return "menu"
	case ModePlaying:
		return "playing"
	case ModeGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// GameState is a snapshot of the game returned after each tick.
type GameState struct {
	Mode      Mode
	Score     int  // Current session score
	Highscore int  // Cached best score from the store
	Paused    bool // Whether play is paused
	Running   bool // False once quit was requested
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState
}
