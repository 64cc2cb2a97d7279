package config

import (
	_ "embed"
)

//go:embed defaults/jump.yaml
var defaultJumpYAML []byte

// DefaultJumpConfig returns the default game configuration.
func DefaultJumpConfig() JumpConfig {
	return JumpConfig{
		Screen:   ScreenConfig{Width: 800, Height: 600},
		TickRate: 30,
		Player: PlayerConfig{
			Width:           55,
			Height:          52,
			Acceleration:    0.5,
			Friction:        -0.1,
			Gravity:         0.5,
			JumpSpeed:       18,
			BoostPower:      60,
			WalkThreshold:   0.5,
			FrameIntervalMs: 120,
		},
		Platforms: PlatformConfig{
			MinCount:      7,
			Widths:        []int{75, 100, 125, 150},
			Heights:       []int{40, 45, 50},
			BoostChance:   5,
			CoinChance:    15,
			LandingMargin: 10,
			Spawn: PlatformSpawn{
				MinY:      -75,
				MaxY:      -30,
				MinMargin: 50,
				MaxMargin: 100,
			},
			Layout: []PlatformLayout{
				{X: 0, Y: 560, W: 800, H: 40}, // ground
				{X: 350, Y: 450},
				{X: 200, Y: 350},
				{X: 350, Y: 250},
				{X: 200, Y: 150},
				{X: 350, Y: 50},
				{X: 200, Y: -50},
			},
		},
		Pickups: PickupConfig{
			Size:      40,
			Gap:       5,
			CoinValue: 100,
		},
		Clouds: CloudConfig{
			Initial:       8,
			InitialOffset: 500,
			Chance:        18,
			MinScale:      50,
			MaxScale:      100,
			MinY:          -500,
			MaxY:          -50,
			CullScreens:   3,
		},
		Mobs: MobConfig{
			IntervalMs:      4000,
			JitterMs:        []int{-1000, -500, 0, 500, 1000},
			Size:            40,
			MinSpeed:        2,
			MaxSpeed:        6,
			BobAccel:        0.5,
			BobLimit:        3.5,
			SpawnOffset:     100,
			DespawnMargin:   150,
			FrameIntervalMs: 120,
		},
		Scroll: ScrollConfig{
			TriggerFraction: 0.25,
			MinSpeed:        2,
			FallMinSpeed:    10,
			BonusMin:        10,
			BonusMax:        20,
		},
		GameOver: GameOverConfig{
			GraceMs:       400,
			AutofocusName: true,
			GlyphWidth:    16,
		},
		Input: InputConfig{
			HoldMs: 220,
		},
	}
}
