package input

import (
	"fmt"

	"github.com/vovakirdan/matrix-snake/internal/core"
)

// Sampler folds a window of readings into one command.
//
// A button press anywhere in the window produces Reset. Otherwise the last
// deflected direction is used; it persists across windows, so a stick at
// rest keeps the snake going the same way.
type Sampler struct {
	th      Thresholds
	window  int
	samples int
	pressed bool
	dir     core.Direction
}

// NewSampler creates a sampler heading Right. Panics if window < 1.
func NewSampler(window int, th Thresholds) *Sampler {
	if window < 1 {
		panic(fmt.Sprintf("input: sample window %d must be at least 1", window))
	}
	return &Sampler{th: th, window: window, dir: core.Right}
}

// Add records one reading and reports whether the window is complete.
func (s *Sampler) Add(r Reading) bool {
	s.samples++
	s.pressed = s.pressed || r.Pressed
	if d, ok := r.Direction(s.th); ok {
		s.dir = d
	}
	return s.Ready()
}

// Ready reports whether a full window has been collected.
func (s *Sampler) Ready() bool {
	return s.samples >= s.window
}

// Command returns the command for the collected window and starts a new
// one. The sticky direction survives.
func (s *Sampler) Command() core.Command {
	pressed := s.pressed
	s.samples = 0
	s.pressed = false

	if pressed {
		return core.Reset()
	}
	return core.Move(s.dir)
}

// Direction returns the sticky direction.
func (s *Sampler) Direction() core.Direction {
	return s.dir
}

// Samples returns the readings collected in the current window.
func (s *Sampler) Samples() int {
	return s.samples
}

// Window returns the number of readings per command.
func (s *Sampler) Window() int {
	return s.window
}
