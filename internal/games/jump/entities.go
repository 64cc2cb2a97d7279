package jump

import (
	"time"

	"github.com/vovakirdan/mysterious-jump/internal/config"
	"github.com/vovakirdan/mysterious-jump/internal/core"
	"github.com/vovakirdan/mysterious-jump/internal/sprite"
)

// Layer orders update and draw passes. Lower layers go first.
type Layer int

const (
	LayerBackground Layer = iota // clouds
	LayerTerrain                 // platforms and pickups
	LayerEntity                  // player and mobs
)

// entity is anything placed in the world.
type entity interface {
	Rect() core.Rect
	Layer() Layer
}

// EntityID identifies a world entity for the lifetime of a session.
type EntityID uint64

// TileStyle is the look of a platform.
type TileStyle int

const (
	TileGrass TileStyle = iota
	TileStone
)

// Platform is a solid ledge the player can land on.
type Platform struct {
	ID   EntityID
	Pos  core.Vec2 // top-left
	W, H int
	Tile TileStyle
}

// Rect returns the platform box.
func (p *Platform) Rect() core.Rect { return core.RectAt(p.Pos.X, p.Pos.Y, p.W, p.H) }

// Layer returns LayerTerrain.
func (p *Platform) Layer() Layer { return LayerTerrain }

// PickupKind selects what a pickup does when collected.
type PickupKind int

const (
	PickupBoost PickupKind = iota
	PickupCoin
)

// String returns the pickup kind name.
func (k PickupKind) String() string {
	if k == PickupBoost {
		return "boost"
	}
	return "coin"
}

// Pickup sits above a platform and is collected on contact.
// PlatformID is a weak reference resolved through the world each update.
type Pickup struct {
	ID         EntityID
	Kind       PickupKind
	PlatformID EntityID
	Pos        core.Vec2 // top-left
	Size       int
}

// Rect returns the pickup box.
func (p *Pickup) Rect() core.Rect { return core.RectAt(p.Pos.X, p.Pos.Y, p.Size, p.Size) }

// Layer returns LayerTerrain.
func (p *Pickup) Layer() Layer { return LayerTerrain }

// follow keeps the pickup gap pixels above its platform's top edge.
func (p *Pickup) follow(plat *Platform, gap int) {
	p.Pos.Y = float64(plat.Rect().Y - gap - p.Size)
}

// Cloud is background decoration with no collision.
type Cloud struct {
	ID    EntityID
	Pos   core.Vec2 // top-left
	Shape int       // index into sprite.Clouds
	Scale int       // percent
	W, H  int
}

// Rect returns the cloud box.
func (c *Cloud) Rect() core.Rect { return core.RectAt(c.Pos.X, c.Pos.Y, c.W, c.H) }

// Layer returns LayerBackground.
func (c *Cloud) Layer() Layer { return LayerBackground }

// Mob is a flying enemy crossing the screen horizontally while bobbing.
type Mob struct {
	ID   EntityID
	Pos  core.Vec2 // top-left
	Size int
	VX   float64
	VY   float64
	DY   float64 // vertical acceleration, flips sign at the bob limit

	frame     int
	lastFrame time.Duration
	frames    *[2][]*sprite.Frame
}

// Rect returns the mob box.
func (m *Mob) Rect() core.Rect { return core.RectAt(m.Pos.X, m.Pos.Y, m.Size, m.Size) }

// Layer returns LayerEntity.
func (m *Mob) Layer() Layer { return LayerEntity }

// FacingRight reports whether the mob flies to the right.
func (m *Mob) FacingRight() bool { return m.VX > 0 }

// Frame returns the current animation frame.
func (m *Mob) Frame() *sprite.Frame {
	facing := 0
	if m.FacingRight() {
		facing = 1
	}
	return m.frames[facing][m.frame]
}

// update animates and moves the mob. It reports false once the mob has
// left the play area.
func (m *Mob) update(now time.Duration, cfg config.MobConfig, worldW int) bool {
	if now-m.lastFrame > time.Duration(cfg.FrameIntervalMs)*time.Millisecond {
		m.lastFrame = now
		m.frame = (m.frame + 1) % len(m.frames[0])
	}

	m.Pos.X += m.VX
	m.VY += m.DY
	m.Pos.Y += m.VY
	if m.VY > cfg.BobLimit || m.VY < -cfg.BobLimit {
		m.DY = -m.DY
	}

	r := m.Rect()
	return r.X <= worldW+cfg.DespawnMargin && r.Right() >= -cfg.DespawnMargin
}
