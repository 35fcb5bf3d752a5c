package snake

import (
	"fmt"
	"iter"

	"github.com/vovakirdan/matrix-snake/internal/core"
	"github.com/vovakirdan/matrix-snake/internal/ring"
)

// MovementResult is the outcome of a single Snake.Move.
type MovementResult uint8

const (
	Moving           MovementResult = iota // advanced, tail evicted
	AteApple                               // advanced onto the apple and grew
	AteAppleAndMaxed                       // grew to capacity; the round is won
	BitSelf                                // new head hit the body; nothing moved
)

// String returns a human-readable name for the result.
func (r MovementResult) String() string {
	switch r {
	case Moving:
		return "moving"
	case AteApple:
		return "ate_apple"
	case AteAppleAndMaxed:
		return "ate_apple_and_maxed"
	case BitSelf:
		return "bit_self"
	default:
		return "unknown"
	}
}

// Snake is the body and heading of the player.
// The body is ordered tail to head: the oldest segment is at the front of
// the ring and the head is at the back.
type Snake struct {
	grid    core.Grid
	body    *ring.Buffer[core.Pos]
	dir     core.Direction
	vacated core.Pos // most recently evicted tail cell
}

// NewSnake lays out length segments ending at head, trailing backwards from
// dir, so the first move towards dir extends the line.
// Panics if length is outside [1, capacity].
func NewSnake(grid core.Grid, capacity int, head core.Pos, length int, dir core.Direction) *Snake {
	if length < 1 || length > capacity {
		panic(fmt.Sprintf("snake: initial length %d outside [1, %d]", length, capacity))
	}

	body := ring.New[core.Pos](capacity)
	for i := length - 1; i >= 0; i-- {
		body.Push(grid.OffsetDirScaled(head, dir, -i))
	}

	return &Snake{
		grid: grid,
		body: body,
		dir:  dir,
	}
}

// Move advances the snake one cell.
//
// A request for the exact opposite of the current heading is treated as
// continuing straight. If the new head lands on the body the snake is left
// untouched and BitSelf is returned; the caller owns the reset.
func (s *Snake) Move(requested core.Direction, apple core.Pos) MovementResult {
	dir := requested
	if requested.IsOpposing(s.dir) {
		dir = s.dir
	}

	head := s.grid.OffsetDir(s.Head(), dir)
	if s.CheckOverlap(head) {
		return BitSelf
	}

	// A full body is only possible when the caller keeps moving after
	// AteAppleAndMaxed. Evict first so the push cannot fail.
	evicted := false
	if s.body.IsFull() {
		s.vacated, _ = s.body.Pop()
		evicted = true
	}

	s.body.Push(head)
	s.dir = dir

	if head == apple {
		if s.body.IsFull() {
			return AteAppleAndMaxed
		}
		return AteApple
	}

	if !evicted {
		if tail, ok := s.body.Pop(); ok {
			s.vacated = tail
		}
	}
	return Moving
}

// CheckOverlap reports whether p is occupied by any segment.
func (s *Snake) CheckOverlap(p core.Pos) bool {
	return s.body.Contains(func(seg core.Pos) bool { return seg == p })
}

// Head returns the newest segment.
func (s *Snake) Head() core.Pos {
	head, ok := s.body.PeekBack()
	if !ok {
		panic("snake: empty body")
	}
	return head
}

// Tail returns the oldest segment.
func (s *Snake) Tail() core.Pos {
	tail, _ := s.body.PeekFront()
	return tail
}

// Direction returns the current heading.
func (s *Snake) Direction() core.Direction {
	return s.dir
}

// Len returns the number of segments.
func (s *Snake) Len() int {
	return s.body.Len()
}

// Cap returns the maximum number of segments.
func (s *Snake) Cap() int {
	return s.body.Cap()
}

// Body yields segments from tail to head.
func (s *Snake) Body() iter.Seq[core.Pos] {
	return s.body.All()
}

// Vacated returns the cell most recently left by the tail, so a display can
// clear exactly one stale pixel. It is the zero position until the first
// plain move.
func (s *Snake) Vacated() core.Pos {
	return s.vacated
}
