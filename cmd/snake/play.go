package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/matrix-snake/internal/platform/tui"
	"github.com/vovakirdan/matrix-snake/internal/registry"
	"github.com/vovakirdan/matrix-snake/internal/storage"
)

var flagLogFile string

var playCmd = &cobra.Command{
	Use:   "play [variant]",
	Short: "Play on the emulated matrix",
	Long: `Start the emulated device. The snake moves once per sample window
(100ms with the default config) in the last direction the stick was pushed.

Controls:
  Arrows/WASD  - Push the stick
  Space/Enter  - Click the stick (restart the round)
  Ctrl+S       - Save a text screenshot of the matrix
  ?            - More keys
  Q/Ctrl+C     - Quit

Examples:
  snake play
  snake play snake_mini
  snake play --seed 7 --log-file /tmp/snake.log --log-level debug`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file (the UI owns the terminal)")
}

func runPlay(cmd *cobra.Command, args []string) {
	variant := variantArg(args)

	if !term.IsTerminal(int(os.Stdout.Fd())) {
		fmt.Fprintln(os.Stderr, "Error: play needs a terminal; use 'snake sim' for headless runs.")
		os.Exit(1)
	}

	cfg, err := loadConfig(cmd)
	if err != nil {
		fail("Error loading config", err)
	}

	game, err := registry.Create(variant, cfg.Runtime())
	if err != nil {
		fail("Error creating engine", err)
	}

	// Each pixel takes two columns plus the frame.
	grid := game.Grid()
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		if w < 2*grid.Width+4 || h < grid.Height+6 {
			fmt.Fprintf(os.Stderr, "Warning: terminal %dx%d may be too small for a %dx%d matrix\n",
				w, h, grid.Width, grid.Height)
		}
	}

	var logOut io.Writer = io.Discard
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			fail("Error opening log file", err)
		}
		defer f.Close()
		logOut = f
	}
	logger, err := newLogger(logOut)
	if err != nil {
		fail("Error", err)
	}

	// Open round journal
	store, err := storage.Open(flagJournal)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open round journal: %v\n", err)
		// Continue without storage - the device still works
		store = nil
	}

	runErr := tui.Run(game, store, cfg, logger)

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running device: %v\n", runErr)
		os.Exit(1)
	}
}
