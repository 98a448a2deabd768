package omega

import "github.com/vovakirdan/omega-arcade/internal/core"

// MoveParams configures the Movement Integrator.
type MoveParams struct {
	Speed  float64     // World units per second
	Bounds core.Bounds // Allowed player positions
}

// Direction converts a key set into a movement direction.
// Opposing keys cancel; any nonzero result has unit length so diagonal
// movement is no faster than axis-aligned movement.
func Direction(keys Keys) core.Vec2 {
	var dir core.Vec2
	if keys.Has(KeyLeft) {
		dir.X--
	}
	if keys.Has(KeyRight) {
		dir.X++
	}
	if keys.Has(KeyUp) {
		dir.Y++
	}
	if keys.Has(KeyDown) {
		dir.Y--
	}

	if dir.Len() > 0 {
		dir = dir.Normalize()
	}
	return dir
}

// Integrate advances pos by dt seconds of movement in the direction given by
// keys and clamps the result into the movement bounds.
// A non-positive dt returns pos unchanged.
func Integrate(pos core.Vec2, keys Keys, dt float64, p MoveParams) core.Vec2 {
	if dt <= 0 {
		return pos
	}

	next := pos.Add(Direction(keys).Scale(p.Speed * dt))
	return p.Bounds.Clamp(next)
}

// MovementSystem moves the player from the frame's input.
func MovementSystem(w *World, f Frame) {
	keys := SampleKeys(f.Input)
	w.Player.Pos = Integrate(w.Player.Pos, keys, f.DT, w.Params.Move)
}
