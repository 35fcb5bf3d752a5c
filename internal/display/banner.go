package display

import "time"

// bannerWidth is the visible window of a scrolling banner: one 8x8 module.
const bannerWidth = 8

// Column bitmaps, one byte per column, bit y lights row y.
var (
	winBanner = []byte{
		0b11111111, 0b00000010, 0b00000100, 0b00001000, 0b00001000, 0b00000100, 0b00000010, 0b11111111,
		0b00000000, 0b00000000, 0b00100010, 0b10111110, 0b10111110, 0b00000010, 0b00000000, 0b00000000,
		0b00111110, 0b00111110, 0b00100000, 0b00100000, 0b00100000, 0b00111110, 0b00011110, 0b00000000,
	}
	loseBanner = []byte{
		0b11111110, 0b11111110, 0b00000010, 0b00000010, 0b00000010, 0b00000010, 0b00000010, 0b00000000,
		0b00011100, 0b00111110, 0b00100010, 0b00100010, 0b00100010, 0b00111110, 0b00011100, 0b00000000,
		0b00010010, 0b00111010, 0b00101010, 0b00101010, 0b00101010, 0b00101110, 0b00100100, 0b00000000,
		0b00011100, 0b00111110, 0b00101010, 0b00101010, 0b00101010, 0b00111010, 0b00011000, 0b00000000,
	}
)

const (
	winFrames  = 16
	loseFrames = 24
)

// Timing holds the animation durations.
type Timing struct {
	FirstFrame time.Duration // hold of the first banner frame
	Frame      time.Duration // every following banner frame
	FinalHold  time.Duration // last banner frame stays up this long
	Flash      time.Duration // each on and each off phase of a flash
	Flashes    int
}

// DefaultTiming returns the device timings.
func DefaultTiming() Timing {
	return Timing{
		FirstFrame: 500 * time.Millisecond,
		Frame:      200 * time.Millisecond,
		FinalHold:  1000 * time.Millisecond,
		Flash:      500 * time.Millisecond,
		Flashes:    2,
	}
}

// Frame is one image of an animation.
type Frame struct {
	Columns []byte // banner window, nil for a full-screen frame
	Fill    bool   // full-screen frames light every pixel when set
}

// Paint draws the frame on m, replacing its contents. Banner columns are
// centred horizontally.
func (f Frame) Paint(m *Matrix) {
	m.Fill(f.Columns == nil && f.Fill)
	if f.Columns == nil {
		return
	}
	off := max((m.Width()-len(f.Columns))/2, 0)
	for i, bits := range f.Columns {
		m.SetColumn(off+i, bits)
	}
}

type step struct {
	frame Frame
	hold  time.Duration
}

// Animation is a timed sequence of frames. It never blocks: the caller asks
// which frame is due for a given elapsed time.
type Animation struct {
	name  string
	steps []step
	total time.Duration
}

func newAnimation(name string, steps []step) *Animation {
	a := &Animation{name: name, steps: steps}
	for _, s := range steps {
		a.total += s.hold
	}
	return a
}

// Name identifies the animation in logs.
func (a *Animation) Name() string { return a.name }

// Duration returns the total play time.
func (a *Animation) Duration() time.Duration { return a.total }

// Len returns the number of frames.
func (a *Animation) Len() int { return len(a.steps) }

// FrameAt returns the frame shown after elapsed. done is set once the
// animation is over; the returned frame is then blank.
func (a *Animation) FrameAt(elapsed time.Duration) (f Frame, done bool) {
	if elapsed < 0 {
		elapsed = 0
	}
	var t time.Duration
	for _, s := range a.steps {
		t += s.hold
		if elapsed < t {
			return s.frame, false
		}
	}
	return Frame{}, true
}

// Win scrolls the win banner.
func Win(t Timing) *Animation {
	return scroll("win", winBanner, winFrames, t)
}

// Lose scrolls the lose banner.
func Lose(t Timing) *Animation {
	return scroll("lose", loseBanner, loseFrames, t)
}

func scroll(name string, bitmap []byte, frames int, t Timing) *Animation {
	steps := make([]step, 0, frames+1)
	for i := 0; i < frames; i++ {
		hold := t.Frame
		if i == 0 {
			hold = t.FirstFrame
		}
		steps = append(steps, step{
			frame: Frame{Columns: bitmap[i : i+bannerWidth]},
			hold:  hold,
		})
	}
	last := steps[len(steps)-1].frame
	steps = append(steps, step{frame: last, hold: t.FinalHold})
	return newAnimation(name, steps)
}

// RestartFlash blinks the whole matrix t.Flashes times.
func RestartFlash(t Timing) *Animation {
	steps := make([]step, 0, 2*t.Flashes)
	for i := 0; i < t.Flashes; i++ {
		steps = append(steps,
			step{frame: Frame{Fill: true}, hold: t.Flash},
			step{frame: Frame{Fill: false}, hold: t.Flash},
		)
	}
	return newAnimation("restart", steps)
}
