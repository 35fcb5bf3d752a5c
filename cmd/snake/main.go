// snake runs the LED matrix snake engine in a terminal emulation of the
// device, or headless for scripted runs.
//
// Usage:
//
//	snake list                - List engine variants
//	snake play [variant]      - Play on the emulated matrix
//	snake sim [variant]       - Run a scripted, headless session
//	snake rounds [variant]    - Show the round journal
//
// Global flags:
//
//	--config <path>     - Config file (default: search ~/.snake, ./configs, embedded)
//	--seed <value>      - Override the configured RNG seed
//	--journal <path>    - Round journal database (default: ~/.snake/journal.db)
//	--log-level <lvl>   - debug, info, warn or error
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import engines to register them
	_ "github.com/vovakirdan/matrix-snake/internal/games/snake"
)

var (
	// Global flags
	flagConfig   string
	flagSeed     int64
	flagJournal  string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "snake",
	Short: "Snake for an 8x8 LED matrix, emulated in your terminal",
	Long: `Snake drives a snake engine on a small wrap-around LED matrix.
The terminal stands in for the device: the arrow keys push the analog
stick and space clicks its button.

Available commands:
  list     - Show engine variants
  play     - Play on the emulated matrix
  sim      - Run a scripted session without a terminal UI
  rounds   - Browse the round journal

Examples:
  snake play
  snake play snake_wide --seed 42
  snake sim --steps 200 --moves "u,u,l,d,reset"
  snake rounds snake`,
	SilenceUsage: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (overrides config)")
	rootCmd.PersistentFlags().StringVar(&flagJournal, "journal", "~/.snake/journal.db", "Path to round journal database")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(roundsCmd)
}
