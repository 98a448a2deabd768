package omega

import (
	"math"
	"math/rand"
	"testing"

	"github.com/vovakirdan/omega-arcade/internal/core"
)

const eps = 1e-9

func near(a, b core.Vec2) bool {
	return math.Abs(a.X-b.X) < eps && math.Abs(a.Y-b.Y) < eps
}

func keysFrom(actions ...core.Action) Keys {
	in := core.NewInputFrame()
	for _, a := range actions {
		in.Set(a)
	}
	return SampleKeys(in)
}

func TestSampleKeys(t *testing.T) {
	if got := SampleKeys(nil); got != 0 {
		t.Errorf("SampleKeys(nil) = %b, expected 0", got)
	}

	got := keysFrom(core.ActionLeft, core.ActionDown, core.ActionPause)
	if got != KeyLeft|KeyDown {
		t.Errorf("SampleKeys() = %b, expected Left|Down", got)
	}
}

func TestDirectionIsUnitOrZero(t *testing.T) {
	// Every subset of the four directional keys
	for k := Keys(0); k < 16; k++ {
		dir := Direction(k)
		l := dir.Len()
		if l != 0 && math.Abs(l-1) > eps {
			t.Errorf("Direction(%04b) has length %f, expected 1", k, l)
		}
	}
}

func TestDirection(t *testing.T) {
	d := 1 / math.Sqrt2

	tests := []struct {
		name string
		keys Keys
		want core.Vec2
	}{
		{"none", 0, core.V2(0, 0)},
		{"left", KeyLeft, core.V2(-1, 0)},
		{"right", KeyRight, core.V2(1, 0)},
		{"up", KeyUp, core.V2(0, 1)},
		{"down", KeyDown, core.V2(0, -1)},
		{"up right", KeyUp | KeyRight, core.V2(d, d)},
		{"down left", KeyDown | KeyLeft, core.V2(-d, -d)},
		{"left right cancel", KeyLeft | KeyRight, core.V2(0, 0)},
		{"cancel x keep up", KeyLeft | KeyRight | KeyUp, core.V2(0, 1)},
		{"all cancel", KeyLeft | KeyRight | KeyUp | KeyDown, core.V2(0, 0)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := Direction(tc.keys); !near(got, tc.want) {
				t.Errorf("Direction() = %v, expected %v", got, tc.want)
			}
		})
	}
}

func TestIntegrateRightHalfSecond(t *testing.T) {
	p := DefaultParams()

	got := Integrate(core.V2(0, 0), KeyRight, 0.5, p.Move)
	if !near(got, core.V2(100, 0)) {
		t.Errorf("Integrate() = %v, expected (100, 0)", got)
	}
	if got.X >= p.Move.Bounds.Max.X {
		t.Errorf("x = %f should be inside max %f", got.X, p.Move.Bounds.Max.X)
	}
}

func TestIntegrateOpposingKeysCancel(t *testing.T) {
	p := DefaultParams()
	start := core.V2(12, -34)

	got := Integrate(start, KeyLeft|KeyRight, 1.0, p.Move)
	if got != start {
		t.Errorf("Integrate() = %v, expected unchanged %v", got, start)
	}
}

func TestIntegrateNoMovement(t *testing.T) {
	p := DefaultParams()
	start := core.V2(-50, 25)

	tests := []struct {
		name string
		keys Keys
		dt   float64
	}{
		{"zero dt", KeyUp, 0},
		{"negative dt", KeyUp | KeyRight, -1},
		{"negative dt out of range", KeyDown, -1e9},
		{"no keys", 0, 1.5},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := Integrate(start, tc.keys, tc.dt, p.Move); got != start {
				t.Errorf("Integrate() = %v, expected unchanged %v", got, start)
			}
		})
	}
}

func TestIntegrateClampsOvershoot(t *testing.T) {
	p := DefaultParams()

	tests := []struct {
		name string
		keys Keys
		want core.Vec2
	}{
		{"right wall", KeyRight, core.V2(360, 0)},
		{"left wall", KeyLeft, core.V2(-360, 0)},
		{"below banner", KeyUp, core.V2(0, 90)},
		{"floor", KeyDown, core.V2(0, -270)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := Integrate(core.V2(0, 0), tc.keys, 10, p.Move)
			if !near(got, tc.want) {
				t.Errorf("Integrate() = %v, expected %v", got, tc.want)
			}
		})
	}
}

func TestClampInvariantRandomFrames(t *testing.T) {
	p := DefaultParams()
	rng := rand.New(rand.NewSource(7))
	w := NewWorld(p, 0)
	s := NewSchedule()

	for i := 0; i < 5000; i++ {
		in := core.NewInputFrame()
		for _, a := range []core.Action{core.ActionLeft, core.ActionRight, core.ActionUp, core.ActionDown} {
			if rng.Intn(2) == 0 {
				in.Set(a)
			}
		}
		// Mix of tiny, normal, huge and negative frame times
		dt := (rng.Float64()*2 - 0.5) * math.Pow(10, float64(rng.Intn(4)-2))

		s.Tick(w, Frame{Input: in, DT: dt})

		pos := w.Player.Pos
		if pos.X < -360 || pos.X > 360 || pos.Y < -270 || pos.Y > 90 {
			t.Fatalf("frame %d: position %v escaped bounds", i, pos)
		}
	}
}
