package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ndemidov/tui-wordle/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all board variants",
	Long:  `Shows a list of all registered board variants.`,
	Run:   runList,
}

func runList(cmd *cobra.Command, args []string) {
	variants := registry.List()

	if len(variants) == 0 {
		fmt.Println("No variants available.")
		return
	}

	fmt.Println("Available variants:")
	fmt.Println()

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	for _, v := range variants {
		if len(v.ID) > maxIDLen {
			maxIDLen = len(v.ID)
		}
	}

	// Print header
	fmt.Printf("  %-*s  %-24s  %s\n", maxIDLen, "ID", "Title", "Board")
	fmt.Printf("  %-*s  %-24s  %s\n", maxIDLen, "--", "-----", "-----")

	// Print variants
	for _, v := range variants {
		board := fmt.Sprintf("%d letters, %d tries", v.Cols, v.Rows)
		fmt.Printf("  %-*s  %-24s  %s\n", maxIDLen, v.ID, v.Title, board)
	}

	fmt.Println()
	fmt.Println("Run 'wordle play <id>' to play a variant.")
}
