package omega

// Frame is the per-frame context handed to every system.
type Frame struct {
	Input InputSource // Held keys for this frame
	DT    float64     // Seconds since the previous frame
}

// System is one update routine run once per frame.
type System func(w *World, f Frame)

type namedSystem struct {
	name string
	run  System
}

// Schedule runs systems in registration order. It is not safe for
// concurrent use; the owning platform drives it from a single loop.
type Schedule struct {
	systems []namedSystem
}

// NewSchedule returns the default Omega schedule: movement, score, hud.
// Movement and score are independent; hud must run after score.
func NewSchedule() *Schedule {
	s := &Schedule{}
	s.Add("movement", MovementSystem)
	s.Add("score", ScoreSystem)
	s.Add("hud", HUDSystem)
	return s
}

// Add appends a system. Names are informational and need not be unique.
func (s *Schedule) Add(name string, fn System) {
	s.systems = append(s.systems, namedSystem{name: name, run: fn})
}

// Names lists the systems in run order.
func (s *Schedule) Names() []string {
	names := make([]string, len(s.systems))
	for i, sys := range s.systems {
		names[i] = sys.name
	}
	return names
}

// Tick runs every system once and counts the frame.
func (s *Schedule) Tick(w *World, f Frame) {
	if f.DT < 0 {
		f.DT = 0
	}
	for _, sys := range s.systems {
		sys.run(w, f)
	}
	w.Frames++
}
