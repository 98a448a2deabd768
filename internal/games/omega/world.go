// Package omega implements the Omega play-field: a player sprite steered
// with the arrow keys inside a bordered field while a score counter ticks
// up once per frame.
//
// The package is engine agnostic. A platform supplies the frame clock,
// input state and text output; everything here is a pure state transition
// over an explicitly owned World.
package omega

import (
	"github.com/vovakirdan/omega-arcade/internal/config"
	"github.com/vovakirdan/omega-arcade/internal/core"
)

// PlayerZ is the fixed draw layer of the player, above background and banner.
const PlayerZ = 2.0

// Player is the single player-controlled entity.
type Player struct {
	Pos  core.Vec2
	Z    float64
	Size core.Vec2
}

// State is the score bookkeeping for one session.
type State struct {
	Score     uint32
	HighScore uint32
	Lives     uint8
}

// Params are the fixed play-field parameters derived from configuration.
type Params struct {
	Field  core.Vec2   // Play-field width and height
	Move   MoveParams  // Speed and clamp bounds
	Spawn  core.Vec2   // Spawn point in world units
	Size   float64     // Player sprite edge length
	Banner core.Bounds // Score banner in world units
	Lives  uint8
}

// ParamsFromConfig converts fractional configuration into world units.
func ParamsFromConfig(cfg config.OmegaConfig) Params {
	w, h := cfg.Field.Width, cfg.Field.Height

	bannerW := cfg.Banner.Width * w
	bannerH := cfg.Banner.Height * h
	bannerY := cfg.Banner.CenterY * h

	return Params{
		Field: core.V2(w, h),
		Move: MoveParams{
			Speed: cfg.Player.Speed,
			Bounds: core.Bounds{
				Min: core.V2(cfg.Bounds.MinX*w, cfg.Bounds.MinY*h),
				Max: core.V2(cfg.Bounds.MaxX*w, cfg.Bounds.MaxY*h),
			},
		},
		Spawn: core.V2(cfg.Player.SpawnX*w, cfg.Player.SpawnY*h),
		Size:  cfg.Player.Size,
		Banner: core.Bounds{
			Min: core.V2(-bannerW/2, bannerY-bannerH/2),
			Max: core.V2(bannerW/2, bannerY+bannerH/2),
		},
		Lives: uint8(core.Clamp(cfg.Gameplay.Lives, 0, config.MaxLives)),
	}
}

// DefaultParams returns the parameters of the built-in configuration.
func DefaultParams() Params {
	return ParamsFromConfig(config.DefaultOmegaConfig())
}

// World owns all game state. Systems receive it by pointer and are the
// only writers; the frame driver runs them one at a time.
type World struct {
	Params Params
	Player Player
	State  State
	HUD    *HUD
	Frames uint64
}

// NewWorld creates a world with the player at the spawn point and the high
// score seeded from a previous best. The spawn point is clamped into the
// movement bounds so the player starts inside the field.
func NewWorld(p Params, bestScore uint32) *World {
	st := State{
		HighScore: bestScore,
		Lives:     p.Lives,
	}
	w := &World{
		Params: p,
		Player: Player{
			Pos:  p.Move.Bounds.Clamp(p.Spawn),
			Z:    PlayerZ,
			Size: core.V2(p.Size, p.Size),
		},
		State: st,
		HUD:   NewHUD(),
	}
	w.HUD.Sync(st)
	return w
}
