package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/matrix-snake/internal/config"
	"github.com/vovakirdan/matrix-snake/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List engine variants",
	Long:  `Shows every registered engine variant with the grid and capacity it runs with.`,
	Run:   runList,
}

func runList(cmd *cobra.Command, args []string) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v; showing built-in defaults\n", err)
		cfg = config.Default()
	}

	variants := registry.List(cfg.Runtime())
	if len(variants) == 0 {
		fmt.Println("No variants available.")
		return
	}

	fmt.Println("Available variants:")
	fmt.Println()

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	for _, v := range variants {
		maxIDLen = max(maxIDLen, len(v.ID))
	}

	// Print header
	fmt.Printf("  %-*s  %-7s  %-8s  %s\n", maxIDLen, "ID", "Grid", "Capacity", "Title")
	fmt.Printf("  %-*s  %-7s  %-8s  %s\n", maxIDLen, "--", "----", "--------", "-----")

	for _, v := range variants {
		grid := fmt.Sprintf("%dx%d", v.Grid.Width, v.Grid.Height)
		fmt.Printf("  %-*s  %-7s  %-8d  %s\n", maxIDLen, v.ID, grid, v.Capacity, v.Title)
	}

	fmt.Println()
	fmt.Println("Run 'snake play <id>' to play a variant.")
}
