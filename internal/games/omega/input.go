package omega

import "github.com/vovakirdan/omega-arcade/internal/core"

// InputSource reports whether an action is currently held.
// core.InputFrame satisfies it.
type InputSource interface {
	Has(a core.Action) bool
}

// Keys is the set of pressed directional keys.
type Keys uint8

// Directional keys.
const (
	KeyLeft Keys = 1 << iota
	KeyRight
	KeyUp
	KeyDown
)

// Has reports whether every key in k is in the set.
func (s Keys) Has(k Keys) bool {
	return s&k == k
}

// SampleKeys reads the directional key states from src.
// A nil source has no keys pressed.
func SampleKeys(src InputSource) Keys {
	if src == nil {
		return 0
	}

	var keys Keys
	if src.Has(core.ActionLeft) {
		keys |= KeyLeft
	}
	if src.Has(core.ActionRight) {
		keys |= KeyRight
	}
	if src.Has(core.ActionUp) {
		keys |= KeyUp
	}
	if src.Has(core.ActionDown) {
		keys |= KeyDown
	}
	return keys
}
