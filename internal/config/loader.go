package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// AppDir is the per-user directory for configs, scores and logs.
const AppDir = ".mysterious-jump"

// Load loads the game configuration.
// Search order: customPath -> ~/.mysterious-jump/configs/jump.{yaml,toml} ->
// ./configs/jump.yaml -> embedded default.
// Files only need to set the keys they change; the rest keep their defaults.
func Load(customPath string) (JumpConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return JumpConfig{}, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		cfg, err := decode(customPath, data)
		if err != nil {
			return JumpConfig{}, fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		if err := cfg.Validate(); err != nil {
			return JumpConfig{}, fmt.Errorf("config: %s: %w", customPath, err)
		}
		return cfg, nil
	}

	candidates := []string{
		UserPath("configs", "jump.yaml"),
		UserPath("configs", "jump.toml"),
		filepath.Join("configs", "jump.yaml"),
	}
	for _, path := range candidates {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		if cfg, err := decode(path, data); err == nil && cfg.Validate() == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := decode("jump.yaml", defaultJumpYAML)
	if err != nil || cfg.Validate() != nil {
		return DefaultJumpConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// decode parses data over the defaults, choosing the format by extension.
func decode(path string, data []byte) (JumpConfig, error) {
	cfg := DefaultJumpConfig()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		if _, err := toml.Decode(string(data), &cfg); err != nil {
			return cfg, fmt.Errorf("toml decode: %w", err)
		}
	default:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("yaml unmarshal: %w", err)
		}
	}
	return cfg, nil
}

// UserPath joins elem under ~/.mysterious-jump, or returns empty if home is unavailable.
func UserPath(elem ...string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(append([]string{home, AppDir}, elem...)...)
}

// Validate reports configuration values the simulation cannot run with.
func (c JumpConfig) Validate() error {
	var errs []error

	if c.Screen.Width <= 0 || c.Screen.Height <= 0 {
		errs = append(errs, fmt.Errorf("screen size must be positive, got %dx%d", c.Screen.Width, c.Screen.Height))
	}
	if c.TickRate <= 0 {
		errs = append(errs, fmt.Errorf("tick_rate must be positive, got %d", c.TickRate))
	}
	if c.Player.Width <= 0 || c.Player.Height <= 0 {
		errs = append(errs, errors.New("player size must be positive"))
	}
	if c.Platforms.MinCount <= 0 {
		errs = append(errs, errors.New("platforms.min_count must be positive"))
	}
	if len(c.Platforms.Widths) == 0 || len(c.Platforms.Heights) == 0 {
		errs = append(errs, errors.New("platforms size palette must not be empty"))
	}
	if c.Platforms.BoostChance < 0 || c.Platforms.CoinChance < 0 || c.Platforms.BoostChance+c.Platforms.CoinChance > 100 {
		errs = append(errs, errors.New("platforms boost_chance + coin_chance must be within [0, 100]"))
	}
	if c.Platforms.Spawn.MaxY <= c.Platforms.Spawn.MinY {
		errs = append(errs, errors.New("platforms.spawn max_y must exceed min_y"))
	}
	if c.Platforms.Spawn.MaxMargin <= c.Platforms.Spawn.MinMargin || c.Platforms.Spawn.MaxMargin > c.Screen.Width {
		errs = append(errs, errors.New("platforms.spawn margins must satisfy min < max <= screen width"))
	}
	if c.Mobs.Size <= 0 || c.Pickups.Size <= 0 {
		errs = append(errs, errors.New("mob and pickup sizes must be positive"))
	}
	if len(c.Mobs.JitterMs) == 0 {
		errs = append(errs, errors.New("mobs.jitter_ms must list at least one value"))
	}
	if c.Mobs.MaxSpeed <= c.Mobs.MinSpeed || c.Mobs.MinSpeed <= 0 {
		errs = append(errs, errors.New("mobs speed range must satisfy 0 < min < max"))
	}
	if c.Clouds.MinScale <= 0 || c.Clouds.MaxScale < c.Clouds.MinScale {
		errs = append(errs, errors.New("clouds scale range must satisfy 0 < min <= max"))
	}
	if c.Scroll.BonusMax <= c.Scroll.BonusMin {
		errs = append(errs, errors.New("scroll bonus_max must exceed bonus_min"))
	}

	return errors.Join(errs...)
}
