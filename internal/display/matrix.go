// Package display models the LED matrix the snake is drawn on and the
// banner animations shown between rounds.
package display

import (
	"fmt"
	"iter"
	"strings"

	"github.com/vovakirdan/matrix-snake/internal/core"
)

// Matrix is a monochrome pixel buffer. (0, 0) is the bottom-left pixel.
type Matrix struct {
	width  int
	height int
	pixels []bool
}

// NewMatrix creates a dark matrix. Panics on non-positive dimensions.
func NewMatrix(width, height int) *Matrix {
	if width <= 0 || height <= 0 {
		panic(fmt.Sprintf("display: invalid matrix %dx%d", width, height))
	}
	return &Matrix{
		width:  width,
		height: height,
		pixels: make([]bool, width*height),
	}
}

// ForGrid creates a matrix covering g.
func ForGrid(g core.Grid) *Matrix {
	return NewMatrix(g.Width, g.Height)
}

// Width returns the number of columns.
func (m *Matrix) Width() int { return m.width }

// Height returns the number of rows.
func (m *Matrix) Height() int { return m.height }

// Set switches a pixel. Out-of-bounds writes are ignored.
func (m *Matrix) Set(x, y int, on bool) {
	if x < 0 || x >= m.width || y < 0 || y >= m.height {
		return
	}
	m.pixels[y*m.width+x] = on
}

// Get returns a pixel, false when out of bounds.
func (m *Matrix) Get(x, y int) bool {
	if x < 0 || x >= m.width || y < 0 || y >= m.height {
		return false
	}
	return m.pixels[y*m.width+x]
}

// SetPos switches the pixel at p.
func (m *Matrix) SetPos(p core.Pos, on bool) {
	m.Set(int(p.X), int(p.Y), on)
}

// SetColumn writes the low eight rows of column x from bits: bit y lights
// pixel (x, y).
func (m *Matrix) SetColumn(x int, bits byte) {
	for y := 0; y < 8; y++ {
		m.Set(x, y, bits&(1<<y) != 0)
	}
}

// Clear switches every pixel off.
func (m *Matrix) Clear() {
	m.Fill(false)
}

// Fill switches every pixel to on.
func (m *Matrix) Fill(on bool) {
	for i := range m.pixels {
		m.pixels[i] = on
	}
}

// Lit counts the pixels that are on.
func (m *Matrix) Lit() int {
	n := 0
	for _, on := range m.pixels {
		if on {
			n++
		}
	}
	return n
}

// Rows yields the rows from the top (highest y) down.
func (m *Matrix) Rows() iter.Seq2[int, []bool] {
	return func(yield func(int, []bool) bool) {
		for y := m.height - 1; y >= 0; y-- {
			if !yield(y, m.pixels[y*m.width:(y+1)*m.width]) {
				return
			}
		}
	}
}

// String renders the matrix with the top row first.
func (m *Matrix) String(on, off rune) string {
	var b strings.Builder
	b.Grow((m.width + 1) * m.height)
	for _, row := range m.Rows() {
		for _, lit := range row {
			if lit {
				b.WriteRune(on)
			} else {
				b.WriteRune(off)
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// Scene is what an engine exposes for drawing.
type Scene interface {
	Body() iter.Seq[core.Pos]
	Apple() core.Pos
	Vacated() core.Pos
}

// Apply updates m incrementally after an engine step: the vacated tail
// pixel is cleared first, then the apple and the body are lit.
func Apply(m *Matrix, s Scene) {
	m.SetPos(s.Vacated(), false)
	m.SetPos(s.Apple(), true)
	for p := range s.Body() {
		m.SetPos(p, true)
	}
}

// Redraw clears m and draws s from scratch.
func Redraw(m *Matrix, s Scene) {
	m.Clear()
	m.SetPos(s.Apple(), true)
	for p := range s.Body() {
		m.SetPos(p, true)
	}
}
