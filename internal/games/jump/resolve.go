package jump

import (
	"math"
	"slices"
	"time"

	"github.com/vovakirdan/mysterious-jump/internal/core"
)

// Outcome is what the resolver decided during one tick.
type Outcome struct {
	Points int          // score earned this tick
	Picked []PickupKind // pickups collected, in order
	Dead   bool         // the session ended this tick
	Cause  string       // "mob" or "fell" when Dead
}

// Resolve adjudicates collisions after Update and applies their effects:
// mob hits, platform landing, upward scrolling, pickups, the fall sweep,
// platform respawn and mob spawning, in that order. A fatal result stops
// the pass early.
func (w *World) Resolve(now time.Duration) Outcome {
	var out Outcome

	if w.mobHit() {
		out.Dead, out.Cause = true, "mob"
		return out
	}

	w.land()
	out.Points += w.scroll()
	w.collect(&out)

	if w.fallSweep() {
		out.Dead, out.Cause = true, "fell"
		return out
	}

	w.respawnPlatforms()
	w.SpawnMobIfDue(now)
	return out
}

// mobHit tests boxes first and masks only for box hits.
func (w *World) mobHit() bool {
	p := w.Player
	pr := p.Rect()
	for _, m := range w.Mobs {
		mr := m.Rect()
		if !pr.Intersects(mr) {
			continue
		}
		if core.MasksCollide(p.Frame().Mask(), pr, m.Frame().Mask(), mr) {
			return true
		}
	}
	return false
}

// land snaps a falling player onto the lowest platform it overlaps.
func (w *World) land() {
	p := w.Player
	if p.Vel.Y <= 0 {
		return
	}

	pr := p.Rect()
	var lowest *Platform
	for _, plat := range w.Platforms {
		if !pr.Intersects(plat.Rect()) {
			continue
		}
		if lowest == nil || plat.Rect().Bottom() > lowest.Rect().Bottom() {
			lowest = plat
		}
	}
	if lowest == nil {
		return
	}

	r := lowest.Rect()
	margin := w.cfg.Platforms.LandingMargin
	if float64(r.X-margin) < p.Pos.X && p.Pos.X < float64(r.Right()+margin) &&
		p.Pos.Y < float64(r.CenterY()) {
		p.Pos.Y = float64(r.Y + 1)
		p.Vel.Y = 0
	}
}

// scroll moves the world down while the player is in the top band.
// Platforms pushed off the bottom are destroyed and pay a bonus.
func (w *World) scroll() int {
	p := w.Player
	trigger := float64(w.cfg.Screen.Height) * w.cfg.Scroll.TriggerFraction
	if float64(p.Rect().Y) > trigger {
		return 0
	}

	if core.Chance(w.rng, w.cfg.Clouds.Chance) {
		w.SpawnCloud()
	}

	delta := math.Max(math.Abs(p.Vel.Y), w.cfg.Scroll.MinSpeed)
	p.Pos.Y += delta

	for _, c := range w.Clouds {
		c.Pos.Y += delta
	}
	for _, m := range w.Mobs {
		m.Pos.Y += delta
	}

	points := 0
	height := w.cfg.Screen.Height
	w.Platforms = slices.DeleteFunc(w.Platforms, func(plat *Platform) bool {
		plat.Pos.Y += delta
		if plat.Rect().Y >= height {
			points += core.RandRange(w.rng, w.cfg.Scroll.BonusMin, w.cfg.Scroll.BonusMax)
			return true
		}
		return false
	})
	return points
}

// collect removes every pickup touching the player and applies it.
func (w *World) collect(out *Outcome) {
	p := w.Player
	pr := p.Rect()
	w.Pickups = slices.DeleteFunc(w.Pickups, func(pk *Pickup) bool {
		if !pr.Intersects(pk.Rect()) {
			return false
		}
		switch pk.Kind {
		case PickupBoost:
			p.Vel.Y = -w.cfg.Player.BoostPower
			p.Jumping = false
		case PickupCoin:
			out.Points += w.cfg.Pickups.CoinValue
		}
		out.Picked = append(out.Picked, pk.Kind)
		return true
	})
}

// fallSweep lifts the world while the player drops below the screen,
// discarding whatever leaves the top. It reports true once no platform is
// left.
func (w *World) fallSweep() bool {
	p := w.Player
	if p.Rect().Bottom() > w.cfg.Screen.Height {
		w.shiftY(-math.Max(p.Vel.Y, w.cfg.Scroll.FallMinSpeed))
		w.cullAbove()
	}
	return len(w.Platforms) == 0
}

// respawnPlatforms tops the platform count back up above the screen.
func (w *World) respawnPlatforms() {
	sp := w.cfg.Platforms.Spawn
	for len(w.Platforms) < w.cfg.Platforms.MinCount {
		margin := core.RandRange(w.rng, sp.MinMargin, sp.MaxMargin)
		x := core.RandRange(w.rng, 0, w.cfg.Screen.Width-margin)
		y := core.RandRange(w.rng, sp.MinY, sp.MaxY)
		w.SpawnPlatform(x, y, 0, 0)
	}
}

// SpawnMobIfDue spawns a mob once the jittered interval has elapsed since
// the last one, and reports whether it did.
func (w *World) SpawnMobIfDue(now time.Duration) bool {
	mc := w.cfg.Mobs
	jitter := core.Choice(w.rng, mc.JitterMs)
	interval := time.Duration(mc.IntervalMs+jitter) * time.Millisecond
	if now-w.mobTimer <= interval {
		return false
	}
	w.mobTimer = now
	w.SpawnMob()
	return true
}
