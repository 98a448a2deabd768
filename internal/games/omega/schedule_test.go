package omega

import (
	"reflect"
	"testing"

	"github.com/vovakirdan/omega-arcade/internal/core"
)

func TestDefaultScheduleOrder(t *testing.T) {
	got := NewSchedule().Names()
	want := []string{"movement", "score", "hud"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Names() = %v, expected %v", got, want)
	}
}

func TestScheduleTickRunsInOrder(t *testing.T) {
	var calls []string
	s := &Schedule{}
	s.Add("a", func(*World, Frame) { calls = append(calls, "a") })
	s.Add("b", func(*World, Frame) { calls = append(calls, "b") })

	w := NewWorld(DefaultParams(), 0)
	s.Tick(w, Frame{})
	s.Tick(w, Frame{})

	if !reflect.DeepEqual(calls, []string{"a", "b", "a", "b"}) {
		t.Errorf("calls = %v", calls)
	}
	if w.Frames != 2 {
		t.Errorf("Frames = %d, expected 2", w.Frames)
	}
}

func TestScheduleTickClampsNegativeDT(t *testing.T) {
	var seen float64 = -1
	s := &Schedule{}
	s.Add("watch", func(_ *World, f Frame) { seen = f.DT })

	s.Tick(NewWorld(DefaultParams(), 0), Frame{DT: -0.25})
	if seen != 0 {
		t.Errorf("system saw dt = %f, expected 0", seen)
	}
}

func TestScheduleTickFullFrame(t *testing.T) {
	w := NewWorld(DefaultParams(), 0)
	w.Player.Pos = core.V2(0, 0)

	in := core.NewInputFrame()
	in.Set(core.ActionRight)

	NewSchedule().Tick(w, Frame{Input: in, DT: 0.5})

	if !near(w.Player.Pos, core.V2(100, 0)) {
		t.Errorf("Player.Pos = %v, expected (100, 0)", w.Player.Pos)
	}
	if w.State.Score != 1 || w.State.HighScore != 1 {
		t.Errorf("State = %+v, expected score 1", w.State)
	}
	if got := w.HUD.Element(RoleScore).Text; got != "SCORE\n1" {
		t.Errorf("HUD score text = %q", got)
	}
}

func TestNewWorld(t *testing.T) {
	p := DefaultParams()
	w := NewWorld(p, 42)

	// Spawn (320, 120) sits above the movement bounds and is pulled down
	if !near(w.Player.Pos, core.V2(320, 90)) {
		t.Errorf("Player.Pos = %v, expected (320, 90)", w.Player.Pos)
	}
	if w.Player.Z != PlayerZ {
		t.Errorf("Player.Z = %f", w.Player.Z)
	}
	if w.State != (State{Score: 0, HighScore: 42, Lives: 3}) {
		t.Errorf("State = %+v", w.State)
	}
	if got := w.HUD.Element(RoleHighScore).Text; got != "HIGH SCORE\n42" {
		t.Errorf("high score text = %q", got)
	}
}
