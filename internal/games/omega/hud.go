package omega

import (
	"strconv"
)

// Role identifies what a HUD text element shows.
type Role uint8

// HUD roles. The values index HUD.elements.
const (
	RoleScore Role = iota
	RoleHighScore
	roleCount
)

// Label returns the fixed prefix displayed by elements of this role.
func (r Role) Label() string {
	switch r {
	case RoleScore:
		return "SCORE"
	case RoleHighScore:
		return "HIGH SCORE"
	default:
		return ""
	}
}

// Anchor is the screen region a HUD element is placed in.
type Anchor uint8

// HUD anchors.
const (
	AnchorTopLeft Anchor = iota
	AnchorTopRight
)

// TextElement is one on-screen HUD string.
type TextElement struct {
	Role   Role
	Anchor Anchor
	Text   string
}

// HUD holds the score and high-score text elements, keyed by role.
// It is a projection of State and is refreshed by Sync.
type HUD struct {
	elements [roleCount]TextElement
}

// NewHUD creates both elements, already carrying their labels and a zero value.
func NewHUD() *HUD {
	h := &HUD{}
	h.elements[RoleScore] = TextElement{Role: RoleScore, Anchor: AnchorTopLeft}
	h.elements[RoleHighScore] = TextElement{Role: RoleHighScore, Anchor: AnchorTopRight}
	for i := range h.elements {
		h.elements[i].Text = formatHUD(h.elements[i].Role, 0)
	}
	return h
}

// Sync rewrites every element from the current state.
func (h *HUD) Sync(st State) {
	h.elements[RoleScore].Text = formatHUD(RoleScore, st.Score)
	h.elements[RoleHighScore].Text = formatHUD(RoleHighScore, st.HighScore)
}

// Element returns the element for a role.
func (h *HUD) Element(r Role) TextElement {
	if r >= roleCount {
		return TextElement{Role: r}
	}
	return h.elements[r]
}

// Elements returns all elements in role order.
func (h *HUD) Elements() []TextElement {
	out := make([]TextElement, len(h.elements))
	copy(out, h.elements[:])
	return out
}

func formatHUD(r Role, value uint32) string {
	return r.Label() + "\n" + strconv.FormatUint(uint64(value), 10)
}

// HUDSystem pushes the current state into the HUD text elements.
func HUDSystem(w *World, _ Frame) {
	w.HUD.Sync(w.State)
}
