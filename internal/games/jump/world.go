package jump

import (
	"slices"
	"time"

	"github.com/vovakirdan/mysterious-jump/internal/config"
	"github.com/vovakirdan/mysterious-jump/internal/core"
	"github.com/vovakirdan/mysterious-jump/internal/sprite"
)

// World owns every entity of one session. Collections are typed; each keeps
// insertion order, and passes run layer by layer:
// clouds, then platforms and pickups, then the player and mobs.
type World struct {
	cfg *config.JumpConfig
	rng core.Rand

	Player    *Player
	Platforms []*Platform
	Pickups   []*Pickup
	Clouds    []*Cloud
	Mobs      []*Mob

	nextID    EntityID
	mobTimer  time.Duration
	mobFrames [2][]*sprite.Frame
}

// NewWorld builds the opening scene: the player in the middle of the screen,
// the configured platform layout, and a bank of clouds below the top edge.
// The mob timer starts at now.
func NewWorld(cfg *config.JumpConfig, rng core.Rand, now time.Duration) *World {
	w := &World{
		cfg:       cfg,
		rng:       rng,
		mobTimer:  now,
		mobFrames: sprite.MobFrames(cfg.Mobs.Size),
	}

	w.Player = newPlayer(cfg.Player, float64(cfg.Screen.Width)/2, float64(cfg.Screen.Height)/2)

	for _, l := range cfg.Platforms.Layout {
		w.SpawnPlatform(l.X, l.Y, l.W, l.H)
	}

	for i := 0; i < cfg.Clouds.Initial; i++ {
		c := w.SpawnCloud()
		c.Pos.Y += float64(cfg.Clouds.InitialOffset)
	}

	return w
}

func (w *World) allocID() EntityID {
	w.nextID++
	return w.nextID
}

// Platform resolves a platform ID.
func (w *World) Platform(id EntityID) (*Platform, bool) {
	for _, p := range w.Platforms {
		if p.ID == id {
			return p, true
		}
	}
	return nil, false
}

// PickupsOn returns the pickups attached to a platform.
func (w *World) PickupsOn(id EntityID) []*Pickup {
	var out []*Pickup
	for _, p := range w.Pickups {
		if p.PlatformID == id {
			out = append(out, p)
		}
	}
	return out
}

// SpawnPlatform creates a platform with its top-left at (x, y).
// A zero width or height is drawn from the size palette. The new platform
// rolls for at most one pickup.
func (w *World) SpawnPlatform(x, y, width, height int) *Platform {
	pc := w.cfg.Platforms

	tile := TileStyle(w.rng.Intn(2))
	if width <= 0 || height <= 0 {
		width = core.Choice(w.rng, pc.Widths)
		height = core.Choice(w.rng, pc.Heights)
	}

	plat := &Platform{
		ID:   w.allocID(),
		Pos:  core.V(float64(x), float64(y)),
		W:    width,
		H:    height,
		Tile: tile,
	}
	w.Platforms = append(w.Platforms, plat)

	roll := w.rng.Intn(100)
	switch {
	case roll < pc.BoostChance:
		w.attachPickup(plat, PickupBoost)
	case roll < pc.BoostChance+pc.CoinChance:
		w.attachPickup(plat, PickupCoin)
	}

	return plat
}

func (w *World) attachPickup(plat *Platform, kind PickupKind) *Pickup {
	size := w.cfg.Pickups.Size
	r := plat.Rect()
	p := &Pickup{
		ID:         w.allocID(),
		Kind:       kind,
		PlatformID: plat.ID,
		Pos:        core.V(float64(r.CenterX()-size/2), 0),
		Size:       size,
	}
	p.follow(plat, w.cfg.Pickups.Gap)
	w.Pickups = append(w.Pickups, p)
	return p
}

// SpawnCloud creates a cloud above the screen.
func (w *World) SpawnCloud() *Cloud {
	cc := w.cfg.Clouds

	shape := w.rng.Intn(len(sprite.Clouds))
	scale := core.RandRange(w.rng, cc.MinScale, cc.MaxScale+1)
	cw := sprite.Clouds[shape].W * scale / 100
	ch := sprite.Clouds[shape].H * scale / 100

	c := &Cloud{
		ID:    w.allocID(),
		Shape: shape,
		Scale: scale,
		W:     cw,
		H:     ch,
	}
	c.Pos = core.V(
		float64(core.RandRange(w.rng, 0, w.cfg.Screen.Width-cw)),
		float64(core.RandRange(w.rng, cc.MinY, cc.MaxY)),
	)
	w.Clouds = append(w.Clouds, c)
	return c
}

// SpawnMob creates a mob just beyond the left or right edge, flying inward.
func (w *World) SpawnMob() *Mob {
	mc := w.cfg.Mobs
	width := w.cfg.Screen.Width

	centerX := core.Choice(w.rng, []int{-mc.SpawnOffset, width + mc.SpawnOffset})
	vx := core.RandRange(w.rng, mc.MinSpeed, mc.MaxSpeed)
	if centerX > width {
		vx = -vx
	}
	y := core.RandRange(w.rng, 0, w.cfg.Screen.Height*3/4)

	m := &Mob{
		ID:     w.allocID(),
		Pos:    core.V(float64(centerX-mc.Size/2), float64(y)),
		Size:   mc.Size,
		VX:     float64(vx),
		DY:     mc.BobAccel,
		frames: &w.mobFrames,
	}
	w.Mobs = append(w.Mobs, m)
	return m
}

// Update runs one tick of entity behaviour, layer by layer.
func (w *World) Update(now time.Duration, in core.InputFrame) {
	cullY := w.cfg.Clouds.CullScreens * w.cfg.Screen.Height
	w.Clouds = slices.DeleteFunc(w.Clouds, func(c *Cloud) bool {
		return c.Rect().Y > cullY
	})

	w.Pickups = slices.DeleteFunc(w.Pickups, func(p *Pickup) bool {
		plat, ok := w.Platform(p.PlatformID)
		if !ok {
			return true
		}
		p.follow(plat, w.cfg.Pickups.Gap)
		return false
	})

	w.Player.update(now, in, w.cfg.Screen.Width)

	w.Mobs = slices.DeleteFunc(w.Mobs, func(m *Mob) bool {
		return !m.update(now, w.cfg.Mobs, w.cfg.Screen.Width)
	})
}

// Grounded reports whether the player box overlaps any platform.
func (w *World) Grounded() bool {
	pr := w.Player.Rect()
	for _, p := range w.Platforms {
		if pr.Intersects(p.Rect()) {
			return true
		}
	}
	return false
}

// shiftY moves every non-player entity vertically.
func (w *World) shiftY(dy float64) {
	for _, c := range w.Clouds {
		c.Pos.Y += dy
	}
	for _, p := range w.Platforms {
		p.Pos.Y += dy
	}
	for _, p := range w.Pickups {
		p.Pos.Y += dy
	}
	for _, m := range w.Mobs {
		m.Pos.Y += dy
	}
}

// cullAbove removes every non-player entity whose bottom is above the screen.
func (w *World) cullAbove() {
	above := func(r core.Rect) bool { return r.Bottom() < 0 }
	w.Clouds = slices.DeleteFunc(w.Clouds, func(c *Cloud) bool { return above(c.Rect()) })
	w.Platforms = slices.DeleteFunc(w.Platforms, func(p *Platform) bool { return above(p.Rect()) })
	w.Pickups = slices.DeleteFunc(w.Pickups, func(p *Pickup) bool { return above(p.Rect()) })
	w.Mobs = slices.DeleteFunc(w.Mobs, func(m *Mob) bool { return above(m.Rect()) })
}
