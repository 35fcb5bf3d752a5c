// Package snake implements the snake engine: body movement on a toroidal
// grid, apple placement, and win/loss detection.
package snake

import (
	"fmt"
	"iter"
	"strings"

	"github.com/vovakirdan/matrix-snake/internal/core"
	"github.com/vovakirdan/matrix-snake/internal/registry"
	"github.com/vovakirdan/matrix-snake/internal/rng"
)

// Game owns one snake, one apple and the random source that places them.
// It is not safe for concurrent use; the platform drives it from a single
// loop.
type Game struct {
	id    string
	title string
	cfg   core.RuntimeConfig
	rng   *rng.Source

	snake *Snake
	apple core.Pos

	tick  uint64 // commands processed since creation
	round int    // current round, 1-based
	steps int    // move commands in the current round
	eaten int    // apples eaten in the current round

	last    core.RoundSummary
	hasLast bool
}

func init() {
	registry.Register("snake", registry.Variant{
		Title: "Snake",
		Factory: func(cfg core.RuntimeConfig) (registry.Game, error) {
			return newGame("snake", "Snake", cfg)
		},
	})
	registry.Register("snake_wide", registry.Variant{
		Title: "Snake (two chained modules)",
		Factory: func(cfg core.RuntimeConfig) (registry.Game, error) {
			return newGame("snake_wide", "Snake (two chained modules)", cfg)
		},
		Adjust: func(cfg core.RuntimeConfig) core.RuntimeConfig {
			cfg.Grid = core.NewGrid(16, 8)
			cfg.Capacity = 40
			return cfg
		},
	})
	registry.Register("snake_mini", registry.Variant{
		Title: "Snake (4x4)",
		Factory: func(cfg core.RuntimeConfig) (registry.Game, error) {
			return newGame("snake_mini", "Snake (4x4)", cfg)
		},
		Adjust: func(cfg core.RuntimeConfig) core.RuntimeConfig {
			cfg.Grid = core.NewGrid(4, 4)
			cfg.Capacity = 6
			cfg.InitialLength = min(cfg.InitialLength, 3)
			return cfg
		},
	})
}

// NewGame validates cfg and starts the first round.
func NewGame(cfg core.RuntimeConfig) (*Game, error) {
	return newGame("snake", "Snake", cfg)
}

func newGame(id, title string, cfg core.RuntimeConfig) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("snake: invalid config: %w", err)
	}

	g := &Game{
		id:    id,
		title: title,
		cfg:   cfg,
		rng:   rng.New(cfg.Seed),
	}
	g.reset()
	return g, nil
}

// ID returns the variant identifier.
func (g *Game) ID() string {
	return g.id
}

// Title returns the display name.
func (g *Game) Title() string {
	return g.title
}

// Config returns the configuration the engine was built with.
func (g *Game) Config() core.RuntimeConfig {
	return g.cfg
}

// Step consumes one command and reports the outcome.
//
// Reset rebuilds the round and returns Restarting. A move that bites the
// body returns Died and a move that fills the body returns Won; both reset
// the engine before returning. Eating an apple places a new one uniformly
// over the grid.
func (g *Game) Step(cmd core.Command) core.GameResult {
	g.tick++

	if cmd.IsReset() {
		g.endRound(core.Restarting)
		return core.Restarting
	}

	g.steps++
	switch res := g.snake.Move(cmd.Dir, g.apple); res {
	case BitSelf:
		g.endRound(core.Died)
		return core.Died
	case Moving:
		return core.Continue
	case AteApple:
		g.eaten++
		g.apple = g.placeApple()
		return core.Continue
	case AteAppleAndMaxed:
		g.eaten++
		g.endRound(core.Won)
		return core.Won
	default:
		panic(fmt.Sprintf("snake: unhandled movement result %s", res))
	}
}

// endRound records the finished round and starts a new one.
func (g *Game) endRound(outcome core.GameResult) {
	g.last = core.RoundSummary{
		Round:   g.round,
		Outcome: outcome,
		Length:  g.snake.Len(),
		Steps:   g.steps,
		Eaten:   g.eaten,
	}
	g.hasLast = true
	g.reset()
}

// reset spawns a fresh snake and apple. Draw order is head position,
// heading, then apple. The apple may land on the new body.
func (g *Game) reset() {
	head := g.rng.Position(g.cfg.Grid)
	dir := g.rng.Direction()
	g.snake = NewSnake(g.cfg.Grid, g.cfg.Capacity, head, g.cfg.InitialLength, dir)
	g.apple = g.placeApple()
	g.round++
	g.steps = 0
	g.eaten = 0
}

// placeApple draws a uniform cell. With more than one configured attempt it
// re-rolls while the cell is occupied, giving up after the last attempt.
func (g *Game) placeApple() core.Pos {
	p := g.rng.Position(g.cfg.Grid)
	for i := 1; i < g.cfg.ApplePlacementAttempts && g.snake.CheckOverlap(p); i++ {
		p = g.rng.Position(g.cfg.Grid)
	}
	return p
}

// Grid returns the playfield dimensions.
func (g *Game) Grid() core.Grid {
	return g.cfg.Grid
}

// Body yields the occupied cells from tail to head.
func (g *Game) Body() iter.Seq[core.Pos] {
	return g.snake.Body()
}

// Apple returns the current apple cell.
func (g *Game) Apple() core.Pos {
	return g.apple
}

// Vacated returns the cell most recently left by the tail.
func (g *Game) Vacated() core.Pos {
	return g.snake.Vacated()
}

// Snake exposes the current snake for inspection.
func (g *Game) Snake() *Snake {
	return g.snake
}

// LastRound returns the summary of the most recently finished round.
func (g *Game) LastRound() (core.RoundSummary, bool) {
	return g.last, g.hasLast
}

// String renders the board with the highest row first:
// S for snake, A for apple, - for empty.
func (g *Game) String() string {
	w, h := g.cfg.Grid.Width, g.cfg.Grid.Height
	cells := make([]byte, w*h)
	for i := range cells {
		cells[i] = '-'
	}
	cells[int(g.apple.Y)*w+int(g.apple.X)] = 'A'
	for p := range g.snake.Body() {
		cells[int(p.Y)*w+int(p.X)] = 'S'
	}

	var b strings.Builder
	for y := h - 1; y >= 0; y-- {
		for x := 0; x < w; x++ {
			if x > 0 {
				b.WriteByte(' ')
			}
			b.WriteByte(cells[y*w+x])
		}
		b.WriteByte('\n')
	}
	return b.String()
}
