package jump

import (
	"testing"

	"github.com/vovakirdan/mysterious-jump/internal/config"
	"github.com/vovakirdan/mysterious-jump/internal/core"
)

// place moves the player and refreshes its box as an update would.
func place(p *Player, x, y, vy float64) {
	p.Pos = core.V(x, y)
	p.Vel.Y = vy
	p.syncBox()
}

func TestResolveLanding(t *testing.T) {
	tests := []struct {
		name   string
		layout []config.PlatformLayout
		x, y   float64
		vy     float64
		wantY  float64
		wantVY float64
	}{
		{
			name:   "falls onto ground",
			layout: []config.PlatformLayout{{X: 0, Y: 560, W: 800, H: 40}},
			x:      400, y: 570, vy: 5,
			wantY: 561, wantVY: 0,
		},
		{
			name: "lowest platform wins",
			layout: []config.PlatformLayout{
				{X: 0, Y: 560, W: 800, H: 40},
				{X: 300, Y: 540, W: 200, H: 30},
			},
			x: 400, y: 565, vy: 5,
			wantY: 561, wantVY: 0,
		},
		{
			name:   "rising passes through",
			layout: []config.PlatformLayout{{X: 0, Y: 560, W: 800, H: 40}},
			x:      400, y: 570, vy: -3,
			wantY: 570, wantVY: -3,
		},
		{
			name:   "below center passes through",
			layout: []config.PlatformLayout{{X: 0, Y: 560, W: 800, H: 40}},
			x:      400, y: 590, vy: 5,
			wantY: 590, wantVY: 5,
		},
		{
			name:   "outside landing margin",
			layout: []config.PlatformLayout{{X: 300, Y: 560, W: 100, H: 40}},
			x:      285, y: 570, vy: 5,
			wantY: 570, wantVY: 5,
		},
		{
			name:   "inside landing margin",
			layout: []config.PlatformLayout{{X: 300, Y: 560, W: 100, H: 40}},
			x:      291, y: 570, vy: 5,
			wantY: 561, wantVY: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := onlyGround()
			cfg.Platforms.Layout = tt.layout
			w := NewWorld(&cfg, clampRand(99), 0)
			place(w.Player, tt.x, tt.y, tt.vy)

			out := w.Resolve(0)
			if out.Dead {
				t.Fatalf("unexpected death: %s", out.Cause)
			}
			if w.Player.Pos.Y != tt.wantY || w.Player.Vel.Y != tt.wantVY {
				t.Errorf("player (y %v, vy %v), expected (y %v, vy %v)",
					w.Player.Pos.Y, w.Player.Vel.Y, tt.wantY, tt.wantVY)
			}
		})
	}
}

func TestResolveRespawnsPlatforms(t *testing.T) {
	cfg := onlyGround()
	w := NewWorld(&cfg, clampRand(99), 0)
	place(w.Player, 400, 561, 0)

	w.Resolve(0)
	if len(w.Platforms) != 7 {
		t.Fatalf("expected 7 platforms after respawn, got %d", len(w.Platforms))
	}
	for _, p := range w.Platforms[1:] {
		r := p.Rect()
		// clampRand(99): margin 99, x 99, y -31
		if r.X != 99 || r.Y != -31 {
			t.Errorf("respawned platform at (%d, %d), expected (99, -31)", r.X, r.Y)
		}
	}
}

func TestResolveScroll(t *testing.T) {
	cfg := onlyGround()
	cfg.Platforms.Layout = append(cfg.Platforms.Layout, config.PlatformLayout{X: 100, Y: 598, W: 100, H: 20})
	w := NewWorld(&cfg, clampRand(99), 0)
	mob := w.SpawnMob()
	mobY := mob.Pos.Y
	place(w.Player, 400, 100, 0)

	out := w.Resolve(0)

	if w.Player.Pos.Y != 102 {
		t.Errorf("player y = %v, expected 102 (minimum scroll 2)", w.Player.Pos.Y)
	}
	if w.Platforms[0].Pos.Y != 562 {
		t.Errorf("ground y = %v, expected 562", w.Platforms[0].Pos.Y)
	}
	if mob.Pos.Y != mobY+2 {
		t.Errorf("mob y = %v, expected %v", mob.Pos.Y, mobY+2)
	}
	// randrange(10, 20) with clampRand(99)
	if out.Points != 19 {
		t.Errorf("points = %d, expected 19 for one platform scrolled off", out.Points)
	}
	for _, p := range w.Platforms {
		if p.Rect().Y >= 600 {
			t.Errorf("platform %d below the screen survived the scroll", p.ID)
		}
	}
}

func TestResolveScrollSpeedFollowsPlayer(t *testing.T) {
	cfg := onlyGround()
	w := NewWorld(&cfg, clampRand(99), 0)
	place(w.Player, 400, 100, -12)

	w.Resolve(0)
	if w.Player.Pos.Y != 112 || w.Platforms[0].Pos.Y != 572 {
		t.Errorf("scroll by |vy|: player %v ground %v", w.Player.Pos.Y, w.Platforms[0].Pos.Y)
	}
}

func TestResolvePickups(t *testing.T) {
	tests := []struct {
		kind       PickupKind
		wantPoints int
		wantVY     float64
	}{
		{PickupCoin, 100, 0},
		{PickupBoost, 0, -60},
	}

	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			cfg := onlyGround()
			w := NewWorld(&cfg, clampRand(99), 0)
			w.attachPickup(w.Platforms[0], tt.kind)
			place(w.Player, 400, 540, 0)
			w.Player.Jumping = true

			out := w.Resolve(0)
			if out.Points != tt.wantPoints {
				t.Errorf("points = %d, expected %d", out.Points, tt.wantPoints)
			}
			if w.Player.Vel.Y != tt.wantVY {
				t.Errorf("vy = %v, expected %v", w.Player.Vel.Y, tt.wantVY)
			}
			if tt.kind == PickupBoost && w.Player.Jumping {
				t.Error("boost should clear the jumping flag")
			}
			if len(out.Picked) != 1 || out.Picked[0] != tt.kind {
				t.Errorf("picked = %v, expected [%v]", out.Picked, tt.kind)
			}
			if len(w.PickupsOn(w.Platforms[0].ID)) != 0 {
				t.Error("collected pickup should be removed")
			}
		})
	}
}

func TestResolveFallSweep(t *testing.T) {
	cfg := onlyGround()
	cfg.Platforms.Layout = []config.PlatformLayout{{X: 0, Y: 300, W: 800, H: 40}}
	w := NewWorld(&cfg, clampRand(99), 0)
	place(w.Player, 400, 700, 3)

	out := w.Resolve(0)
	if out.Dead {
		t.Fatal("player should survive while platforms remain")
	}
	if w.Platforms[0].Pos.Y != 290 {
		t.Errorf("platform y = %v, expected lifted by the minimum 10", w.Platforms[0].Pos.Y)
	}
}

func TestResolveFallSweepEndsSession(t *testing.T) {
	cfg := onlyGround()
	cfg.Platforms.Layout = []config.PlatformLayout{{X: 0, Y: 5, W: 800, H: 4}}
	w := NewWorld(&cfg, clampRand(99), 0)
	place(w.Player, 400, 700, 3)

	out := w.Resolve(0)
	if !out.Dead || out.Cause != "fell" {
		t.Errorf("outcome = %+v, expected death by falling", out)
	}
	if len(w.Platforms) != 0 {
		t.Errorf("no platform should be respawned after death, got %d", len(w.Platforms))
	}
}

func TestResolveMobHit(t *testing.T) {
	cfg := onlyGround()
	w := NewWorld(&cfg, clampRand(99), 0)
	place(w.Player, 400, 561, 0)

	m := w.SpawnMob()
	pr := w.Player.Rect()
	m.Pos = core.V(float64(pr.CenterX()-m.Size/2), float64(pr.CenterY()-m.Size/2))

	out := w.Resolve(0)
	if !out.Dead || out.Cause != "mob" {
		t.Errorf("outcome = %+v, expected death by mob", out)
	}
}

func TestResolveMobBoxOnlyIsNotHit(t *testing.T) {
	cfg := onlyGround()
	w := NewWorld(&cfg, clampRand(99), 0)
	place(w.Player, 400, 561, 0)

	m := w.SpawnMob()
	pr := w.Player.Rect()
	// Overlap only the player's top-right corner, which the art leaves blank.
	m.Pos = core.V(float64(pr.Right()-2), float64(pr.Y-m.Size+2))

	if !pr.Intersects(m.Rect()) {
		t.Fatal("setup: boxes should overlap")
	}
	if out := w.Resolve(0); out.Dead {
		t.Error("box overlap without pixel overlap should not kill")
	}
}
