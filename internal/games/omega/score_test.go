package omega

import (
	"math"
	"testing"
)

func TestAdvanceFiveTimes(t *testing.T) {
	st := State{Lives: 3}
	for i := 0; i < 5; i++ {
		st.Advance()
	}

	if st.Score != 5 || st.HighScore != 5 {
		t.Errorf("after 5 frames got score=%d high=%d, expected 5/5", st.Score, st.HighScore)
	}
	if st.Lives != 3 {
		t.Errorf("Advance should not touch lives, got %d", st.Lives)
	}
}

func TestAdvanceKeepsSeededHighScore(t *testing.T) {
	st := State{HighScore: 3}

	st.Advance()
	st.Advance()
	if st.HighScore != 3 {
		t.Errorf("HighScore = %d, expected seeded 3 while score is lower", st.HighScore)
	}

	st.Advance()
	st.Advance()
	if st.Score != 4 || st.HighScore != 4 {
		t.Errorf("got score=%d high=%d, expected 4/4", st.Score, st.HighScore)
	}
}

func TestHighScoreTracksMaximum(t *testing.T) {
	st := State{}
	var maxSeen uint32
	for i := 0; i < 1000; i++ {
		prev := st.Score
		st.Advance()
		if st.Score < prev {
			t.Fatalf("score decreased from %d to %d", prev, st.Score)
		}
		if st.Score > maxSeen {
			maxSeen = st.Score
		}
		if st.HighScore != maxSeen {
			t.Fatalf("HighScore = %d, expected max seen %d", st.HighScore, maxSeen)
		}
	}
}

func TestAdvanceSaturates(t *testing.T) {
	st := State{Score: math.MaxUint32 - 1, HighScore: math.MaxUint32 - 1}

	st.Advance()
	st.Advance()
	if st.Score != math.MaxUint32 || st.HighScore != math.MaxUint32 {
		t.Errorf("got score=%d high=%d, expected saturation at MaxUint32", st.Score, st.HighScore)
	}
}
