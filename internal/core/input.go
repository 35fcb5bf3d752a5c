package core

import "fmt"

// CommandKind distinguishes the requests the input collaborator can make.
type CommandKind uint8

const (
	CommandMove  CommandKind = iota // steer and advance one cell
	CommandReset                    // abandon the round and start over
)

// Command is one tick's worth of player intent, already debounced and
// translated from raw input by the platform layer.
type Command struct {
	Kind CommandKind
	Dir  Direction // only meaningful for CommandMove
}

// Move creates a movement command.
func Move(d Direction) Command {
	return Command{Kind: CommandMove, Dir: d}
}

// Reset creates a reset command.
func Reset() Command {
	return Command{Kind: CommandReset}
}

// IsReset reports whether the command requests a reset.
func (c Command) IsReset() bool {
	return c.Kind == CommandReset
}

// String returns a human-readable form of the command.
func (c Command) String() string {
	if c.Kind == CommandReset {
		return "reset"
	}
	return fmt.Sprintf("move(%s)", c.Dir)
}

// ParseCommand accepts "reset" or anything ParseDirection accepts.
func ParseCommand(s string) (Command, error) {
	if s == "reset" || s == "x" {
		return Reset(), nil
	}
	d, err := ParseDirection(s)
	if err != nil {
		return Command{}, fmt.Errorf("core: unknown command %q", s)
	}
	return Move(d), nil
}
