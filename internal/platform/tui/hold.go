package tui

import (
	"time"

	"github.com/vovakirdan/mysterious-jump/internal/core"
)

// HoldTracker infers held keys from terminal key presses.
// Terminals only report presses (and auto-repeats), so a movement key
// counts as held until window has passed since its last press.
type HoldTracker struct {
	window time.Duration
	last   map[core.Action]time.Time
}

// NewHoldTracker creates a tracker with the given hold window.
func NewHoldTracker(window time.Duration) *HoldTracker {
	return &HoldTracker{
		window: window,
		last:   make(map[core.Action]time.Time),
	}
}

// holdable reports whether the action is sampled as a held key by play.
func holdable(a core.Action) bool {
	return a == core.ActionLeft || a == core.ActionRight
}

// Press records a key press at the given time.
// Pressing one direction releases the other.
func (h *HoldTracker) Press(a core.Action, at time.Time) {
	if !holdable(a) {
		return
	}
	switch a {
	case core.ActionLeft:
		delete(h.last, core.ActionRight)
	case core.ActionRight:
		delete(h.last, core.ActionLeft)
	}
	h.last[a] = at
}

// Apply marks every action still inside its hold window as held in frame
// and forgets the expired ones.
func (h *HoldTracker) Apply(frame *core.InputFrame, now time.Time) {
	for a, at := range h.last {
		if now.Sub(at) > h.window {
			delete(h.last, a)
			continue
		}
		frame.Set(a)
	}
}
