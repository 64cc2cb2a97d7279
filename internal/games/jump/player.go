package jump

import (
	"math"
	"time"

	"github.com/vovakirdan/mysterious-jump/internal/config"
	"github.com/vovakirdan/mysterious-jump/internal/core"
	"github.com/vovakirdan/mysterious-jump/internal/sprite"
)

// Player is the character under control. Pos is the midbottom anchor.
type Player struct {
	Pos     core.Vec2
	Vel     core.Vec2
	Acc     core.Vec2
	Walking bool
	Jumping bool

	cfg       config.PlayerConfig
	frames    []*sprite.Frame
	image     int // index into frames
	cycle     int // position in the walk cycle
	standing  int
	lastFrame time.Duration
	box       core.Rect
}

func newPlayer(cfg config.PlayerConfig, x, y float64) *Player {
	p := &Player{
		Pos:    core.V(x, y),
		cfg:    cfg,
		frames: sprite.PlayerFrames(cfg.Width, cfg.Height),
	}
	p.syncBox()
	return p
}

// Rect returns the collision box as of the last update.
// Moving Pos takes effect on the box at the next update.
func (p *Player) Rect() core.Rect { return p.box }

// Layer returns LayerEntity.
func (p *Player) Layer() Layer { return LayerEntity }

// Frame returns the current animation frame.
func (p *Player) Frame() *sprite.Frame { return p.frames[p.image] }

// Jump applies the jump impulse.
func (p *Player) Jump() {
	p.Vel.Y -= p.cfg.JumpSpeed
}

func (p *Player) syncBox() {
	f := p.Frame()
	x := math.Floor(p.Pos.X)
	y := math.Floor(p.Pos.Y)
	p.box = core.NewRect(int(x)-f.W/2, int(y)-f.H, f.W, f.H)
}

// update animates, integrates one tick of motion, and wraps horizontally.
func (p *Player) update(now time.Duration, in core.InputFrame, worldW int) {
	p.animate(now)

	p.Acc = core.V(0, p.cfg.Gravity)
	if in.Has(core.ActionLeft) {
		p.Acc.X = -p.cfg.Acceleration
	}
	if in.Has(core.ActionRight) {
		p.Acc.X = p.cfg.Acceleration
	}

	p.Acc.X += p.Vel.X * p.cfg.Friction
	p.Vel = p.Vel.Add(p.Acc)
	p.Pos = p.Pos.Add(p.Vel).Add(p.Acc.Scale(0.5))

	w := float64(p.Frame().W)
	if p.Pos.X-w/2 > float64(worldW) {
		p.Pos.X = -w / 2
	}
	if p.Pos.X+w < 0 {
		p.Pos.X = float64(worldW) + w/2
	}

	p.syncBox()
}

func (p *Player) animate(now time.Duration) {
	if math.Abs(p.Vel.X) < p.cfg.WalkThreshold {
		p.Vel.X = 0
		p.Walking = false
	}
	if p.Vel.X != 0 {
		p.Walking = true
	}

	if p.Walking && now-p.lastFrame > time.Duration(p.cfg.FrameIntervalMs)*time.Millisecond {
		p.lastFrame = now
		p.cycle = (p.cycle + 1) % sprite.PlayerWalkFrames
		if p.Vel.X > 0 {
			p.standing = sprite.PlayerWalkFrames
			p.image = p.cycle + sprite.PlayerWalkFrames
		} else {
			p.standing = 0
			p.image = p.cycle
		}
	}
	if !p.Jumping && !p.Walking {
		p.image = p.standing
	}
}
