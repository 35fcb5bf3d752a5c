package core

import "fmt"

// RuntimeConfig contains the construction-time constants of an engine.
// Changing them is a configuration decision; the engine logic never does.
type RuntimeConfig struct {
	Grid                   Grid  // wrap-around playfield
	Capacity               int   // maximum snake length; reaching it wins
	InitialLength          int   // body length after every reset
	ApplePlacementAttempts int   // draws per apple placement, 1 = no re-roll
	Seed                   int64 // PRNG seed for deterministic play
}

// DefaultSeed is the seed the device boots with.
const DefaultSeed int64 = 0xDEADBEEF

// DefaultConfig returns the 8x8 matrix, 20 segment configuration.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		Grid:                   NewGrid(8, 8),
		Capacity:               20,
		InitialLength:          3,
		ApplePlacementAttempts: 1,
		Seed:                   DefaultSeed,
	}
}

// Validate checks the invariants the engine relies on.
func (c RuntimeConfig) Validate() error {
	if err := c.Grid.Validate(); err != nil {
		return err
	}
	if c.InitialLength < 1 {
		return fmt.Errorf("core: initial length %d must be at least 1", c.InitialLength)
	}
	if c.Capacity <= c.InitialLength {
		return fmt.Errorf("core: capacity %d must exceed initial length %d", c.Capacity, c.InitialLength)
	}
	if c.Capacity > c.Grid.Cells() {
		return fmt.Errorf("core: capacity %d exceeds the %d cells of the grid", c.Capacity, c.Grid.Cells())
	}
	// The spawn body is laid out in a straight line along a random heading,
	// so it must fit on the shorter side without wrapping onto itself.
	if side := min(c.Grid.Width, c.Grid.Height); c.InitialLength > side {
		return fmt.Errorf("core: initial length %d does not fit a %dx%d grid", c.InitialLength, c.Grid.Width, c.Grid.Height)
	}
	if c.ApplePlacementAttempts < 1 {
		return fmt.Errorf("core: apple placement attempts %d must be at least 1", c.ApplePlacementAttempts)
	}
	return nil
}

// GameResult is the outcome of one engine step, reported to the platform.
type GameResult uint8

const (
	Continue   GameResult = iota // round goes on
	Died                         // snake bit itself; engine already reset
	Won                          // snake reached capacity; engine already reset
	Restarting                   // reset command handled
)

// String returns a human-readable name for the result.
func (r GameResult) String() string {
	switch r {
	case Continue:
		return "continue"
	case Died:
		return "died"
	case Won:
		return "won"
	case Restarting:
		return "restarting"
	default:
		return "unknown"
	}
}

// EndsRound reports whether the step finished the current round.
func (r GameResult) EndsRound() bool {
	return r != Continue
}
