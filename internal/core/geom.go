// Package core provides the value types shared by the snake engine and its
// collaborators. It has no external dependencies and performs no I/O, so the
// engine can be driven by a terminal emulator, a test, or real hardware.
package core

import (
	"fmt"
	"strings"
)

// Direction is one of the four compass headings on the grid.
type Direction uint8

const (
	Up Direction = iota
	Down
	Left
	Right
)

// Directions lists every heading in declaration order.
var Directions = [4]Direction{Up, Down, Left, Right}

// Opposite returns the reverse heading. Opposite is an involution.
func (d Direction) Opposite() Direction {
	switch d {
	case Up:
		return Down
	case Down:
		return Up
	case Left:
		return Right
	case Right:
		return Left
	}
	panic(fmt.Sprintf("core: invalid direction %d", d))
}

// IsOpposing reports whether other points exactly the other way.
func (d Direction) IsOpposing(other Direction) bool {
	return d.Opposite() == other
}

// Vector returns the unit step of the heading. Up is +y, Right is +x.
func (d Direction) Vector() (dx, dy int) {
	switch d {
	case Up:
		return 0, 1
	case Down:
		return 0, -1
	case Left:
		return -1, 0
	case Right:
		return 1, 0
	}
	panic(fmt.Sprintf("core: invalid direction %d", d))
}

// String returns a human-readable name for the direction.
func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return "unknown"
	}
}

// ParseDirection accepts full names or their first letter, case-insensitive.
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "up", "u":
		return Up, nil
	case "down", "d":
		return Down, nil
	case "left", "l":
		return Left, nil
	case "right", "r":
		return Right, nil
	}
	return 0, fmt.Errorf("core: unknown direction %q", s)
}

// Pos is a cell on the toroidal grid. Positions are immutable values;
// Grid methods produce new ones.
type Pos struct {
	X, Y uint8
}

// String formats the position for logs.
func (p Pos) String() string {
	return fmt.Sprintf("(x: %d, y: %d)", p.X, p.Y)
}

// MaxGridSide bounds each grid side so coordinates fit in a Pos.
const MaxGridSide = 256

// Grid holds the wrap-around limits. Every position a Grid returns lies in
// [0, Width) x [0, Height).
type Grid struct {
	Width  int
	Height int
}

// NewGrid creates a grid with the given dimensions.
func NewGrid(w, h int) Grid {
	return Grid{Width: w, Height: h}
}

// Validate checks the dimensions are usable.
func (g Grid) Validate() error {
	if g.Width < 1 || g.Height < 1 {
		return fmt.Errorf("core: grid %dx%d must be at least 1x1", g.Width, g.Height)
	}
	if g.Width > MaxGridSide || g.Height > MaxGridSide {
		return fmt.Errorf("core: grid %dx%d exceeds %d per side", g.Width, g.Height, MaxGridSide)
	}
	return nil
}

// Cells returns the number of cells on the grid.
func (g Grid) Cells() int {
	return g.Width * g.Height
}

// Contains reports whether p lies inside the grid.
func (g Grid) Contains(p Pos) bool {
	return int(p.X) < g.Width && int(p.Y) < g.Height
}

// Offset moves p by (dx, dy), wrapping each axis around its limit.
func (g Grid) Offset(p Pos, dx, dy int) Pos {
	return Pos{
		X: uint8(wrap(int(p.X)+dx, g.Width)),
		Y: uint8(wrap(int(p.Y)+dy, g.Height)),
	}
}

// OffsetDir moves p one cell towards d.
func (g Grid) OffsetDir(p Pos, d Direction) Pos {
	return g.OffsetDirScaled(p, d, 1)
}

// OffsetDirScaled moves p by n cells towards d. Negative n moves backwards.
func (g Grid) OffsetDirScaled(p Pos, d Direction, n int) Pos {
	dx, dy := d.Vector()
	return g.Offset(p, dx*n, dy*n)
}

// wrap reduces v into [0, limit). For |v| < limit this is a single
// subtraction or addition of limit.
func wrap(v, limit int) int {
	v %= limit
	if v < 0 {
		v += limit
	}
	return v
}
