package omega

import "math"

// Advance applies the per-frame scoring rule: one point per frame.
// The counter saturates instead of wrapping, so Score never decreases and
// HighScore always holds the largest Score seen.
func (s *State) Advance() {
	if s.Score < math.MaxUint32 {
		s.Score++
	}
	if s.Score > s.HighScore {
		s.HighScore = s.Score
	}
}

// ScoreSystem advances the score once per frame.
func ScoreSystem(w *World, _ Frame) {
	w.State.Advance()
}
