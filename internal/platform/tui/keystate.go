package tui

import (
	"time"

	"github.com/vovakirdan/omega-arcade/internal/core"
)

// DefaultHoldWindow is used when no hold window is configured. It covers
// the usual auto-repeat delay of terminals (250-600ms), so a held key stays
// held between its first press and the first repeat.
const DefaultHoldWindow = 400 * time.Millisecond

// KeyState answers "is key K currently pressed" on top of a terminal,
// which only reports presses and auto-repeats. A directional key counts as
// held until hold has passed since its last press event. Other actions are
// one-shot and reported on the next frame only.
type KeyState struct {
	hold    time.Duration
	lastHit map[core.Action]time.Time
	pending []core.Action
}

// NewKeyState creates a key state with the given hold window.
func NewKeyState(hold time.Duration) *KeyState {
	if hold <= 0 {
		hold = DefaultHoldWindow
	}
	return &KeyState{
		hold:    hold,
		lastHit: make(map[core.Action]time.Time),
	}
}

// Press records a key event at the given time.
// Pressing a direction releases its opposite immediately, since the
// terminal will never tell us the opposite key was let go.
func (k *KeyState) Press(a core.Action, at time.Time) {
	if opp, ok := opposite(a); ok {
		k.lastHit[a] = at
		delete(k.lastHit, opp)
		return
	}
	if a != core.ActionNone {
		k.pending = append(k.pending, a)
	}
}

// Frame builds the input frame for a tick at now and consumes one-shot actions.
func (k *KeyState) Frame(now time.Time) core.InputFrame {
	in := core.NewInputFrame()
	for a, at := range k.lastHit {
		if now.Sub(at) <= k.hold {
			in.Set(a)
		} else {
			delete(k.lastHit, a)
		}
	}
	for _, a := range k.pending {
		in.Set(a)
	}
	k.pending = k.pending[:0]
	return in
}

// SetHold changes the hold window.
func (k *KeyState) SetHold(hold time.Duration) {
	if hold > 0 {
		k.hold = hold
	}
}

// Reset forgets every held key and pending action.
func (k *KeyState) Reset() {
	clear(k.lastHit)
	k.pending = k.pending[:0]
}

func opposite(a core.Action) (core.Action, bool) {
	switch a {
	case core.ActionLeft:
		return core.ActionRight, true
	case core.ActionRight:
		return core.ActionLeft, true
	case core.ActionUp:
		return core.ActionDown, true
	case core.ActionDown:
		return core.ActionUp, true
	}
	return core.ActionNone, false
}
