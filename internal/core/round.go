package core

// RoundSummary describes a finished round. It is what the diagnostics
// layer records; it never carries enough state to resume a game.
type RoundSummary struct {
	Round   int        // 1-based round number since the engine was created
	Outcome GameResult // Died, Won or Restarting
	Length  int        // snake length when the round ended
	Steps   int        // move commands processed in the round
	Eaten   int        // apples eaten in the round
}
