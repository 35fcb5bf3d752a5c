package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/matrix-snake/internal/platform/tui"
	"github.com/vovakirdan/matrix-snake/internal/registry"
	"github.com/vovakirdan/matrix-snake/internal/storage"
)

var (
	flagLimit  int
	flagBrowse bool
	flagClear  bool
)

var roundsCmd = &cobra.Command{
	Use:   "rounds [variant]",
	Short: "Show the round journal",
	Long: `Display the most recent rounds and aggregate statistics for a variant.

Examples:
  snake rounds
  snake rounds snake_wide --limit 20
  snake rounds --browse
  snake rounds snake --clear`,
	Args: cobra.MaximumNArgs(1),
	Run:  runRounds,
}

func init() {
	roundsCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of rounds to show")
	roundsCmd.Flags().BoolVar(&flagBrowse, "browse", false, "Browse the journal interactively")
	roundsCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete the variant's rounds")
}

func runRounds(cmd *cobra.Command, args []string) {
	variant := "snake"
	if len(args) > 0 {
		variant = args[0]
		if !registry.Exists(variant) {
			fmt.Fprintf(os.Stderr, "Error: unknown variant %q\n", variant)
			fmt.Fprintln(os.Stderr, "Run 'snake list' to see available variants.")
			os.Exit(1)
		}
	}

	// Open round journal
	store, err := storage.Open(flagJournal)
	if err != nil {
		fail("Error opening round journal", err)
	}
	defer store.Close()

	if flagClear {
		if err := store.ClearRounds(variant); err != nil {
			store.Close()
			fail("Error clearing rounds", err)
		}
		fmt.Printf("Cleared the %s journal.\n", variant)
		return
	}

	if flagBrowse {
		width, height := 80, 24 // Defaults
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width, height = w, h
		}
		if err := tui.RunRounds(store, variant, width, height); err != nil {
			store.Close()
			fail("Error running journal browser", err)
		}
		return
	}

	rounds, err := store.RecentRounds(variant, flagLimit)
	if err != nil {
		store.Close()
		fail("Error retrieving rounds", err)
	}
	stats, err := store.Stats(variant)
	if err != nil {
		store.Close()
		fail("Error retrieving stats", err)
	}

	fmt.Printf("Round journal - %s\n", variant)
	fmt.Println("========================")
	fmt.Println()

	if len(rounds) == 0 {
		fmt.Println("No rounds recorded yet.")
		fmt.Printf("Run 'snake play %s' to play one.\n", variant)
		return
	}

	fmt.Printf("  %5s  %-10s  %6s  %6s  %6s  %s\n", "Round", "Outcome", "Length", "Steps", "Apples", "Date")
	fmt.Printf("  %5s  %-10s  %6s  %6s  %6s  %s\n", "-----", "-------", "------", "-----", "------", "----")
	for _, r := range rounds {
		fmt.Printf("  %5d  %-10s  %6d  %6d  %6d  %s\n",
			r.Round, r.Outcome, r.Length, r.Steps, r.Eaten, r.CreatedAt.Format("2006-01-02 15:04"))
	}

	fmt.Println()
	fmt.Printf("Rounds: %d  Won: %d  Died: %d  Restarted: %d\n", stats.Rounds, stats.Won, stats.Died, stats.Restarted)
	fmt.Printf("Best length: %d  Average length: %.1f  Apples eaten: %d\n", stats.BestLength, stats.AvgLength, stats.TotalEaten)
	if !stats.LastPlayed.IsZero() {
		fmt.Printf("Last played: %s\n", stats.LastPlayed.Format("2006-01-02 15:04"))
	}
}
