// Package input turns analog stick samples into engine commands.
//
// The stick reports raw ADC values that rest near a center reading. The x
// axis is mounted inverted: pushing the stick left raises the x reading.
package input

import (
	"fmt"

	"github.com/vovakirdan/matrix-snake/internal/core"
)

// Thresholds describe the stick calibration.
type Thresholds struct {
	Center  int // raw reading at rest
	Quarter int // centred deflection that counts as a push
}

// DefaultThresholds matches a 10-bit ADC that rests around 500.
func DefaultThresholds() Thresholds {
	return Thresholds{Center: 500, Quarter: 250}
}

// Reading is one centred stick sample.
type Reading struct {
	X, Y    int
	Pressed bool
}

// Centered converts raw ADC values to a Reading.
func Centered(rawX, rawY int, pressed bool, th Thresholds) Reading {
	return Reading{X: rawX - th.Center, Y: rawY - th.Center, Pressed: pressed}
}

// Direction maps the reading to a heading. The x axis wins over y when
// both are deflected. ok is false inside the dead zone.
func (r Reading) Direction(th Thresholds) (d core.Direction, ok bool) {
	q := th.Quarter
	switch {
	case r.X > q:
		return core.Left, true
	case r.X < -q:
		return core.Right, true
	case r.Y > q:
		return core.Up, true
	case r.Y < -q:
		return core.Down, true
	default:
		return 0, false
	}
}

func (r Reading) String() string {
	pressed := "Button Not Pressed"
	if r.Pressed {
		pressed = "Button Pressed"
	}
	return fmt.Sprintf("X: %d, Y: %d, %s", r.X, r.Y, pressed)
}

// KeyStick emulates the stick from discrete key presses. A deflection or
// click is held for a number of samples and then released to center.
type KeyStick struct {
	th      Thresholds
	hold    int
	rawX    int
	rawY    int
	pressed bool
	left    int // samples until release
}

// NewKeyStick creates a stick at rest. hold is the number of samples a key
// press stays active, at least 1.
func NewKeyStick(th Thresholds, hold int) *KeyStick {
	return &KeyStick{
		th:   th,
		hold: max(hold, 1),
		rawX: th.Center,
		rawY: th.Center,
	}
}

// Deflect pushes the stick fully towards d.
func (k *KeyStick) Deflect(d core.Direction) {
	k.rawX, k.rawY = Deflection(d, k.th)
	k.pressed = false
	k.left = k.hold
}

// Click presses the stick button.
func (k *KeyStick) Click() {
	k.rawX, k.rawY = k.th.Center, k.th.Center
	k.pressed = true
	k.left = k.hold
}

// Read returns the next sample.
func (k *KeyStick) Read() Reading {
	r := Centered(k.rawX, k.rawY, k.pressed, k.th)
	if k.left > 0 {
		k.left--
		if k.left == 0 {
			k.rawX, k.rawY = k.th.Center, k.th.Center
			k.pressed = false
		}
	}
	return r
}

// Deflection returns the raw x and y of a full push towards d.
func Deflection(d core.Direction, th Thresholds) (rawX, rawY int) {
	full := 2 * th.Quarter
	switch d {
	case core.Left:
		return th.Center + full, th.Center
	case core.Right:
		return th.Center - full, th.Center
	case core.Up:
		return th.Center, th.Center + full
	case core.Down:
		return th.Center, th.Center - full
	default:
		panic(fmt.Sprintf("input: invalid direction %d", d))
	}
}
