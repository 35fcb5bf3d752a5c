// Package rng provides the deterministic random source the engine uses for
// spawn and apple placement. A fixed seed replays the same game.
package rng

import (
	"fmt"
	"math/rand"

	"github.com/vovakirdan/matrix-snake/internal/core"
)

// Source draws uniform directions and positions from a seeded generator.
// Every call consumes generator state, so two sources with the same seed
// and the same call sequence always agree.
type Source struct {
	r     *rand.Rand
	draws uint64
}

// New creates a source seeded with seed.
func New(seed int64) *Source {
	return &Source{r: rand.New(rand.NewSource(seed))}
}

// intn draws from [0, n) without modulo bias.
func (s *Source) intn(n int) int {
	s.draws++
	return s.r.Intn(n)
}

// Direction returns one of the four headings, each with probability 1/4.
func (s *Source) Direction() core.Direction {
	i := s.intn(len(core.Directions))
	if i < 0 || i >= len(core.Directions) {
		panic(fmt.Sprintf("rng: direction draw %d out of range", i))
	}
	return core.Directions[i]
}

// Position returns a cell of g. The x coordinate is drawn first, then y,
// each uniformly over its full range.
func (s *Source) Position(g core.Grid) core.Pos {
	x := s.intn(g.Width)
	y := s.intn(g.Height)
	return core.Pos{X: uint8(x), Y: uint8(y)}
}

// Draws returns how many values have been drawn since New.
func (s *Source) Draws() uint64 {
	return s.draws
}
