package snake

import (
	"testing"

	"github.com/vovakirdan/matrix-snake/internal/core"
	"github.com/vovakirdan/matrix-snake/internal/registry"
)

func newTestGame(t *testing.T, cfg core.RuntimeConfig) *Game {
	t.Helper()
	g, err := NewGame(cfg)
	if err != nil {
		t.Fatalf("NewGame() error = %v", err)
	}
	return g
}

// place puts a length-3 snake at head and the apple at apple.
func place(g *Game, head core.Pos, dir core.Direction, apple core.Pos) {
	g.snake = NewSnake(g.cfg.Grid, g.cfg.Capacity, head, 3, dir)
	g.apple = apple
}

func TestNewGameStartsRoundOne(t *testing.T) {
	g := newTestGame(t, core.DefaultConfig())

	if g.snake.Len() != 3 {
		t.Errorf("initial Len() = %d, expected 3", g.snake.Len())
	}
	if !g.Grid().Contains(g.Apple()) {
		t.Errorf("apple %v outside grid", g.Apple())
	}
	if s := g.Snapshot(); s.Round != 1 || s.Draws != 5 {
		t.Errorf("snapshot round %d draws %d, expected 1 and 5", s.Round, s.Draws)
	}
	if _, ok := g.LastRound(); ok {
		t.Error("LastRound() reported a round before any ended")
	}
}

func TestNewGameRejectsInvalidConfig(t *testing.T) {
	cfg := core.DefaultConfig()
	cfg.Capacity = 2

	if _, err := NewGame(cfg); err == nil {
		t.Error("NewGame() with capacity below initial length should fail")
	}
}

func TestEatThenReverse(t *testing.T) {
	cfg := core.DefaultConfig()
	cfg.ApplePlacementAttempts = 16
	g := newTestGame(t, cfg)
	place(g, core.Pos{X: 4, Y: 4}, core.Right, core.Pos{X: 5, Y: 4})

	if res := g.Step(core.Move(core.Right)); res != core.Continue {
		t.Fatalf("Step(right) = %s, expected continue", res)
	}
	if g.snake.Len() != 4 {
		t.Errorf("Len() = %d, expected 4", g.snake.Len())
	}
	if g.snake.CheckOverlap(g.Apple()) {
		t.Errorf("new apple %v placed on the snake", g.Apple())
	}
	if g.Snapshot().Eaten != 1 {
		t.Errorf("Eaten = %d, expected 1", g.Snapshot().Eaten)
	}

	if res := g.Step(core.Move(core.Left)); res != core.Continue {
		t.Fatalf("Step(left) = %s, expected continue", res)
	}
	if g.snake.Head() != (core.Pos{X: 6, Y: 4}) {
		t.Errorf("Head() = %v, expected (6, 4)", g.snake.Head())
	}
	if g.snake.Direction() != core.Right {
		t.Errorf("Direction() = %s, expected right", g.snake.Direction())
	}
}

func TestResetRestarts(t *testing.T) {
	g := newTestGame(t, core.DefaultConfig())

	for i := 0; i < 10; i++ {
		before := g.Snapshot()
		if res := g.Step(core.Reset()); res != core.Restarting {
			t.Fatalf("Step(reset) = %s, expected restarting", res)
		}
		after := g.Snapshot()

		if after.SnakeLen != 3 {
			t.Errorf("after reset Len = %d, expected 3", after.SnakeLen)
		}
		if after.Round != before.Round+1 {
			t.Errorf("Round = %d, expected %d", after.Round, before.Round+1)
		}
		// head position (2) + heading (1) + apple (2)
		if after.Draws-before.Draws != 5 {
			t.Errorf("reset consumed %d draws, expected 5", after.Draws-before.Draws)
		}

		last, ok := g.LastRound()
		if !ok || last.Outcome != core.Restarting || last.Round != before.Round {
			t.Errorf("LastRound() = %+v, %v", last, ok)
		}
	}
}

func TestBiteEndsRoundAsDied(t *testing.T) {
	g := newTestGame(t, core.DefaultConfig())
	place(g, core.Pos{X: 4, Y: 4}, core.Right, core.Pos{X: 4, Y: 5})

	if res := g.Step(core.Move(core.Up)); res != core.Continue {
		t.Fatalf("first step = %s", res)
	}
	// The replacement apple is random; pin it for the next bite.
	g.apple = core.Pos{X: 3, Y: 5}
	if res := g.Step(core.Move(core.Left)); res != core.Continue {
		t.Fatalf("second step = %s", res)
	}
	g.apple = core.Pos{X: 0, Y: 0}

	if res := g.Step(core.Move(core.Down)); res != core.Died {
		t.Fatalf("Step(down) = %s, expected died", res)
	}
	if g.snake.Len() != 3 {
		t.Errorf("after death Len() = %d, expected a fresh snake of 3", g.snake.Len())
	}

	last, ok := g.LastRound()
	if !ok {
		t.Fatal("LastRound() missing after death")
	}
	expected := core.RoundSummary{Round: 1, Outcome: core.Died, Length: 5, Steps: 3, Eaten: 2}
	if last != expected {
		t.Errorf("LastRound() = %+v, expected %+v", last, expected)
	}
}

func TestFillingBodyEndsRoundAsWon(t *testing.T) {
	cfg := core.DefaultConfig()
	cfg.Capacity = 4
	g := newTestGame(t, cfg)
	place(g, core.Pos{X: 4, Y: 4}, core.Right, core.Pos{X: 5, Y: 4})

	if res := g.Step(core.Move(core.Right)); res != core.Won {
		t.Fatalf("Step() = %s, expected won", res)
	}
	if g.snake.Len() != 3 {
		t.Errorf("after win Len() = %d, expected 3", g.snake.Len())
	}
	if last, _ := g.LastRound(); last.Outcome != core.Won || last.Length != 4 {
		t.Errorf("LastRound() = %+v", last)
	}
}

func TestSingleAttemptDrawsOnce(t *testing.T) {
	g := newTestGame(t, core.DefaultConfig())
	place(g, core.Pos{X: 4, Y: 4}, core.Right, core.Pos{X: 5, Y: 4})

	before := g.Snapshot().Draws
	g.Step(core.Move(core.Right))

	if got := g.Snapshot().Draws - before; got != 2 {
		t.Errorf("apple placement consumed %d draws, expected 2", got)
	}
}

func TestPlaceAppleAvoidsSnake(t *testing.T) {
	cfg := core.DefaultConfig()
	cfg.ApplePlacementAttempts = 1000
	g := newTestGame(t, cfg)

	for i := 0; i < 500; i++ {
		p := g.placeApple()
		if g.snake.CheckOverlap(p) {
			t.Fatalf("placeApple() = %v on the snake", p)
		}
	}
}

func TestMovesStayOnGrid(t *testing.T) {
	g := newTestGame(t, core.DefaultConfig())
	dirs := core.Directions

	for i := 0; i < 2000; i++ {
		g.Step(core.Move(dirs[(i/3)%4]))

		for p := range g.Body() {
			if !g.Grid().Contains(p) {
				t.Fatalf("step %d: segment %v outside grid", i, p)
			}
		}
		if !g.Grid().Contains(g.Apple()) {
			t.Fatalf("step %d: apple %v outside grid", i, g.Apple())
		}
		if g.snake.Len() < 1 || g.snake.Len() > g.snake.Cap() {
			t.Fatalf("step %d: Len() = %d", i, g.snake.Len())
		}
	}
}

func TestDeterminism(t *testing.T) {
	cfg := core.DefaultConfig()
	cfg.Seed = 42

	g1 := newTestGame(t, cfg)
	g2 := newTestGame(t, cfg)

	commands := []core.Command{
		core.Move(core.Up), core.Move(core.Up), core.Move(core.Left),
		core.Move(core.Down), core.Reset(), core.Move(core.Right),
		core.Move(core.Right), core.Move(core.Down), core.Move(core.Left),
	}

	for i := 0; i < 300; i++ {
		cmd := commands[i%len(commands)]
		r1 := g1.Step(cmd)
		r2 := g2.Step(cmd)

		if r1 != r2 {
			t.Fatalf("step %d: results diverged: %s vs %s", i, r1, r2)
		}
		if s1, s2 := g1.Snapshot(), g2.Snapshot(); s1 != s2 {
			t.Fatalf("step %d: snapshots diverged:\n%+v\n%+v", i, s1, s2)
		}
	}

	if g1.String() != g2.String() {
		t.Error("boards differ after identical input")
	}
}

func TestDifferentSeedsDiverge(t *testing.T) {
	a := core.DefaultConfig()
	b := core.DefaultConfig()
	b.Seed = a.Seed + 1

	g1 := newTestGame(t, a)
	g2 := newTestGame(t, b)

	same := true
	for i := 0; i < 20 && same; i++ {
		g1.Step(core.Reset())
		g2.Step(core.Reset())
		same = g1.Snapshot().HeadX == g2.Snapshot().HeadX &&
			g1.Snapshot().HeadY == g2.Snapshot().HeadY &&
			g1.Apple() == g2.Apple()
	}
	if same {
		t.Error("different seeds produced identical rounds")
	}
}

func TestString(t *testing.T) {
	cfg := core.DefaultConfig()
	cfg.Grid = core.NewGrid(4, 4)
	cfg.Capacity = 6
	g := newTestGame(t, cfg)
	place(g, core.Pos{X: 2, Y: 1}, core.Right, core.Pos{X: 3, Y: 3})

	expected := "- - - A\n" +
		"- - - -\n" +
		"S S S -\n" +
		"- - - -\n"
	if got := g.String(); got != expected {
		t.Errorf("String() =\n%s\nexpected\n%s", got, expected)
	}
}

func TestRegisteredVariants(t *testing.T) {
	base := core.DefaultConfig()

	tests := []struct {
		id       string
		width    int
		height   int
		capacity int
	}{
		{"snake", 8, 8, 20},
		{"snake_mini", 4, 4, 6},
		{"snake_wide", 16, 8, 40},
	}

	infos := registry.List(base)
	if len(infos) != len(tests) {
		t.Fatalf("List() returned %d variants, expected %d", len(infos), len(tests))
	}

	for i, tc := range tests {
		t.Run(tc.id, func(t *testing.T) {
			if infos[i].ID != tc.id {
				t.Errorf("List()[%d].ID = %q, expected %q", i, infos[i].ID, tc.id)
			}
			if !registry.Exists(tc.id) {
				t.Errorf("Exists(%q) = false", tc.id)
			}

			g, err := registry.Create(tc.id, base)
			if err != nil {
				t.Fatalf("Create(%q) error = %v", tc.id, err)
			}
			if g.ID() != tc.id {
				t.Errorf("ID() = %q, expected %q", g.ID(), tc.id)
			}
			grid := g.Grid()
			if grid.Width != tc.width || grid.Height != tc.height {
				t.Errorf("Grid() = %dx%d, expected %dx%d", grid.Width, grid.Height, tc.width, tc.height)
			}
			if infos[i].Capacity != tc.capacity {
				t.Errorf("Capacity = %d, expected %d", infos[i].Capacity, tc.capacity)
			}
		})
	}

	if _, err := registry.Create("tetris", base); err == nil {
		t.Error("Create() of an unknown variant should fail")
	}
}
