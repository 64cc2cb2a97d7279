// Package config provides YAML/TOML game configuration loading for
// Mysterious Jump. Every tuning constant of the simulation lives here.
package config

// JumpConfig contains all configuration for the game.
type JumpConfig struct {
	Screen    ScreenConfig   `yaml:"screen" toml:"screen"`
	TickRate  int            `yaml:"tick_rate" toml:"tick_rate"`
	Player    PlayerConfig   `yaml:"player" toml:"player"`
	Platforms PlatformConfig `yaml:"platforms" toml:"platforms"`
	Pickups   PickupConfig   `yaml:"pickups" toml:"pickups"`
	Clouds    CloudConfig    `yaml:"clouds" toml:"clouds"`
	Mobs      MobConfig      `yaml:"mobs" toml:"mobs"`
	Scroll    ScrollConfig   `yaml:"scroll" toml:"scroll"`
	GameOver  GameOverConfig `yaml:"game_over" toml:"game_over"`
	Input     InputConfig    `yaml:"input" toml:"input"`
}

// ScreenConfig is the logical world size in pixels.
type ScreenConfig struct {
	Width  int `yaml:"width" toml:"width"`
	Height int `yaml:"height" toml:"height"`
}

// PlayerConfig defines player physics and animation.
type PlayerConfig struct {
	Width           int     `yaml:"width" toml:"width"`
	Height          int     `yaml:"height" toml:"height"`
	Acceleration    float64 `yaml:"acceleration" toml:"acceleration"`
	Friction        float64 `yaml:"friction" toml:"friction"` // negative: decays horizontal speed
	Gravity         float64 `yaml:"gravity" toml:"gravity"`
	JumpSpeed       float64 `yaml:"jump_speed" toml:"jump_speed"`
	BoostPower      float64 `yaml:"boost_power" toml:"boost_power"`
	WalkThreshold   float64 `yaml:"walk_threshold" toml:"walk_threshold"`
	FrameIntervalMs int     `yaml:"frame_interval_ms" toml:"frame_interval_ms"`
}

// PlatformConfig defines platform layout, sizing and spawning.
type PlatformConfig struct {
	MinCount      int              `yaml:"min_count" toml:"min_count"`
	Widths        []int            `yaml:"widths" toml:"widths"`
	Heights       []int            `yaml:"heights" toml:"heights"`
	BoostChance   int              `yaml:"boost_chance" toml:"boost_chance"` // percent
	CoinChance    int              `yaml:"coin_chance" toml:"coin_chance"`   // percent
	LandingMargin int              `yaml:"landing_margin" toml:"landing_margin"`
	Spawn         PlatformSpawn    `yaml:"spawn" toml:"spawn"`
	Layout        []PlatformLayout `yaml:"layout" toml:"layout"`
}

// PlatformSpawn bounds where replacement platforms appear above the screen.
type PlatformSpawn struct {
	MinY      int `yaml:"min_y" toml:"min_y"`
	MaxY      int `yaml:"max_y" toml:"max_y"`
	MinMargin int `yaml:"min_margin" toml:"min_margin"` // right-edge margin, lower bound
	MaxMargin int `yaml:"max_margin" toml:"max_margin"` // right-edge margin, upper bound (exclusive)
}

// PlatformLayout is one platform of the opening layout.
// Zero W/H picks a size from the palette.
type PlatformLayout struct {
	X int `yaml:"x" toml:"x"`
	Y int `yaml:"y" toml:"y"`
	W int `yaml:"w,omitempty" toml:"w,omitempty"`
	H int `yaml:"h,omitempty" toml:"h,omitempty"`
}

// PickupConfig defines boost/coin sizing and value.
type PickupConfig struct {
	Size      int `yaml:"size" toml:"size"`
	Gap       int `yaml:"gap" toml:"gap"` // distance above the platform top
	CoinValue int `yaml:"coin_value" toml:"coin_value"`
}

// CloudConfig defines background cloud spawning.
type CloudConfig struct {
	Initial       int `yaml:"initial" toml:"initial"`
	InitialOffset int `yaml:"initial_offset" toml:"initial_offset"`
	Chance        int `yaml:"chance" toml:"chance"` // percent per scrolling tick
	MinScale      int `yaml:"min_scale" toml:"min_scale"`
	MaxScale      int `yaml:"max_scale" toml:"max_scale"`
	MinY          int `yaml:"min_y" toml:"min_y"`
	MaxY          int `yaml:"max_y" toml:"max_y"`
	CullScreens   int `yaml:"cull_screens" toml:"cull_screens"`
}

// MobConfig defines flying mob spawning and flight.
type MobConfig struct {
	IntervalMs      int     `yaml:"interval_ms" toml:"interval_ms"`
	JitterMs        []int   `yaml:"jitter_ms" toml:"jitter_ms"`
	Size            int     `yaml:"size" toml:"size"`
	MinSpeed        int     `yaml:"min_speed" toml:"min_speed"`
	MaxSpeed        int     `yaml:"max_speed" toml:"max_speed"` // exclusive
	BobAccel        float64 `yaml:"bob_accel" toml:"bob_accel"`
	BobLimit        float64 `yaml:"bob_limit" toml:"bob_limit"`
	SpawnOffset     int     `yaml:"spawn_offset" toml:"spawn_offset"`
	DespawnMargin   int     `yaml:"despawn_margin" toml:"despawn_margin"`
	FrameIntervalMs int     `yaml:"frame_interval_ms" toml:"frame_interval_ms"`
}

// ScrollConfig defines camera scrolling and the fall sweep.
type ScrollConfig struct {
	TriggerFraction float64 `yaml:"trigger_fraction" toml:"trigger_fraction"`
	MinSpeed        float64 `yaml:"min_speed" toml:"min_speed"`
	FallMinSpeed    float64 `yaml:"fall_min_speed" toml:"fall_min_speed"`
	BonusMin        int     `yaml:"bonus_min" toml:"bonus_min"`
	BonusMax        int     `yaml:"bonus_max" toml:"bonus_max"` // exclusive
}

// GameOverConfig tunes the game over screen.
type GameOverConfig struct {
	GraceMs       int  `yaml:"grace_ms" toml:"grace_ms"`
	AutofocusName bool `yaml:"autofocus_name" toml:"autofocus_name"`
	GlyphWidth    int  `yaml:"glyph_width" toml:"glyph_width"` // name box text width per rune, pixels
}

// InputConfig tunes terminal input handling.
type InputConfig struct {
	HoldMs int `yaml:"hold_ms" toml:"hold_ms"`
}
