package config

import (
	_ "embed"
)

//go:embed defaults/omega.yaml
var defaultOmegaYAML []byte

// DefaultOmegaConfig returns the built-in Omega configuration.
// It matches defaults/omega.yaml and is used if the embedded file cannot be parsed.
func DefaultOmegaConfig() OmegaConfig {
	return OmegaConfig{
		Field: FieldConfig{
			Width:  800,
			Height: 600,
		},
		Player: PlayerConfig{
			Speed:  200,
			Size:   20,
			SpawnX: 0.4,
			SpawnY: 0.2,
		},
		Bounds: BoundsConfig{
			MinX: -0.45,
			MaxX: 0.45,
			MinY: -0.45,
			MaxY: 0.15,
		},
		Banner: BannerConfig{
			Width:   0.8,
			Height:  0.2,
			CenterY: 0.3,
		},
		Gameplay: GameplayConfig{
			Lives: 3,
		},
		Input: InputConfig{
			HoldMS: 400,
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "omega":
		return defaultOmegaYAML
	default:
		return nil
	}
}
