// Package config provides YAML/TOML configuration loading and validation
// for the Omega play-field.
package config

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalid is returned (wrapped) when a configuration fails validation.
var ErrInvalid = errors.New("invalid config")

// MaxLives is the largest number of lives a game can start with.
const MaxLives = 3

// OmegaConfig contains all configuration for the Omega game.
type OmegaConfig struct {
	Field    FieldConfig    `yaml:"field" toml:"field"`
	Player   PlayerConfig   `yaml:"player" toml:"player"`
	Bounds   BoundsConfig   `yaml:"bounds" toml:"bounds"`
	Banner   BannerConfig   `yaml:"banner" toml:"banner"`
	Gameplay GameplayConfig `yaml:"gameplay" toml:"gameplay"`
	Input    InputConfig    `yaml:"input" toml:"input"`
}

// FieldConfig is the fixed play-field size in world units.
type FieldConfig struct {
	Width  float64 `yaml:"width" toml:"width"`
	Height float64 `yaml:"height" toml:"height"`
}

// PlayerConfig defines the player sprite.
type PlayerConfig struct {
	Speed  float64 `yaml:"speed" toml:"speed"`     // World units per second
	Size   float64 `yaml:"size" toml:"size"`       // Square sprite edge length
	SpawnX float64 `yaml:"spawn_x" toml:"spawn_x"` // Fraction of field width
	SpawnY float64 `yaml:"spawn_y" toml:"spawn_y"` // Fraction of field height
}

// BoundsConfig limits player movement, as fractions of the field size.
type BoundsConfig struct {
	MinX float64 `yaml:"min_x" toml:"min_x"`
	MaxX float64 `yaml:"max_x" toml:"max_x"`
	MinY float64 `yaml:"min_y" toml:"min_y"`
	MaxY float64 `yaml:"max_y" toml:"max_y"`
}

// BannerConfig places the score banner, as fractions of the field size.
type BannerConfig struct {
	Width   float64 `yaml:"width" toml:"width"`
	Height  float64 `yaml:"height" toml:"height"`
	CenterY float64 `yaml:"center_y" toml:"center_y"`
}

// GameplayConfig holds rule parameters.
type GameplayConfig struct {
	Lives int `yaml:"lives" toml:"lives"`
}

// InputConfig tunes terminal key handling.
type InputConfig struct {
	// HoldMS is how long a key counts as held after its last press event.
	// Terminals only report presses and auto-repeats, never releases.
	HoldMS int `yaml:"hold_ms" toml:"hold_ms"`
}

// HoldWindow returns the key hold window as a duration.
func (c InputConfig) HoldWindow() time.Duration {
	return time.Duration(c.HoldMS) * time.Millisecond
}

// Validate checks that the configuration describes a usable play-field.
func (c OmegaConfig) Validate() error {
	var errs []error

	if c.Field.Width <= 0 || c.Field.Height <= 0 {
		errs = append(errs, fmt.Errorf("field size must be positive, got %gx%g", c.Field.Width, c.Field.Height))
	}
	if c.Player.Speed < 0 {
		errs = append(errs, fmt.Errorf("player speed must not be negative, got %g", c.Player.Speed))
	}
	if c.Player.Size <= 0 {
		errs = append(errs, fmt.Errorf("player size must be positive, got %g", c.Player.Size))
	}
	if c.Bounds.MinX > c.Bounds.MaxX || c.Bounds.MinY > c.Bounds.MaxY {
		errs = append(errs, fmt.Errorf("bounds are inverted: x [%g, %g], y [%g, %g]",
			c.Bounds.MinX, c.Bounds.MaxX, c.Bounds.MinY, c.Bounds.MaxY))
	}
	if c.Banner.Width <= 0 || c.Banner.Width > 1 || c.Banner.Height <= 0 || c.Banner.Height > 1 {
		errs = append(errs, fmt.Errorf("banner size must be in (0, 1], got %gx%g", c.Banner.Width, c.Banner.Height))
	}
	if c.Gameplay.Lives < 0 || c.Gameplay.Lives > MaxLives {
		errs = append(errs, fmt.Errorf("lives must be in [0, %d], got %d", MaxLives, c.Gameplay.Lives))
	}
	if c.Input.HoldMS < 0 {
		errs = append(errs, fmt.Errorf("input hold_ms must not be negative, got %d", c.Input.HoldMS))
	}

	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", ErrInvalid, errors.Join(errs...))
	}
	return nil
}
