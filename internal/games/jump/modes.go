package jump

import (
	"github.com/vovakirdan/mysterious-jump/internal/core"
)

// modeHandler is the per-mode event, update and draw triple.
type modeHandler struct {
	event  func(g *Game, e core.Event)
	update func(g *Game, in core.InputFrame)
	draw   func(g *Game, dst *core.Screen, vp core.Viewport)
}

// modes is indexed by core.Mode.
var modes = [...]modeHandler{
	core.ModeMenu: {
		event:  menuEvent,
		update: func(*Game, core.InputFrame) {},
		draw:   drawMenu,
	},
	core.ModePlaying: {
		event:  playingEvent,
		update: playingUpdate,
		draw:   drawPlaying,
	},
	core.ModeGameOver: {
		event:  gameOverEvent,
		update: gameOverUpdate,
		draw:   drawGameOver,
	},
}

func menuEvent(g *Game, e core.Event) {
	if e.Type == core.EventKeyUp {
		g.startSession()
	}
}

// playingEvent handles jumping. Any key pressed while standing on a platform
// counts as a step; the jump key also launches the player.
func playingEvent(g *Game, e core.Event) {
	if e.Type != core.EventKeyDown || !g.world.Grounded() {
		return
	}
	p := g.world.Player
	p.Walking = true
	p.Jumping = false
	if e.Action == core.ActionJump {
		p.Jump()
		g.audio.PlayEffect(EffectJump)
		p.Walking = false
		p.Jumping = true
	}
}

func playingUpdate(g *Game, in core.InputFrame) {
	g.world.Update(g.now, in)
	out := g.world.Resolve(g.now)

	g.score += out.Points
	for _, k := range out.Picked {
		switch k {
		case PickupBoost:
			g.audio.PlayEffect(EffectBoost)
		case PickupCoin:
			g.audio.PlayEffect(EffectCoin)
		}
	}

	if out.Dead {
		g.enterGameOver(out.Cause)
	}
}

func gameOverEvent(g *Game, e core.Event) {
	if !g.settled() {
		return
	}
	if !g.newHighscore() {
		if e.Type == core.EventKeyUp {
			g.enterMenu()
		}
		return
	}
	if name, ok := g.nameBox.HandleEvent(e); ok {
		g.submitName(name)
	}
}

func gameOverUpdate(g *Game, _ core.InputFrame) {
	if g.newHighscore() {
		g.nameBox.Update()
	}
}
