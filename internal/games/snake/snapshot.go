package snake

import "github.com/vovakirdan/matrix-snake/internal/core"

// Snapshot captures the observable engine state for determinism testing and
// diagnostics.
type Snapshot struct {
	Tick     uint64
	Round    int
	Steps    int
	Eaten    int
	SnakeLen int
	HeadX    int
	HeadY    int
	Dir      core.Direction
	AppleX   int
	AppleY   int
	VacatedX int
	VacatedY int
	Draws    uint64 // random values consumed so far
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	head := g.snake.Head()
	vacated := g.snake.Vacated()

	return Snapshot{
		Tick:     g.tick,
		Round:    g.round,
		Steps:    g.steps,
		Eaten:    g.eaten,
		SnakeLen: g.snake.Len(),
		HeadX:    int(head.X),
		HeadY:    int(head.Y),
		Dir:      g.snake.Direction(),
		AppleX:   int(g.apple.X),
		AppleY:   int(g.apple.Y),
		VacatedX: int(vacated.X),
		VacatedY: int(vacated.Y),
		Draws:    g.rng.Draws(),
	}
}
