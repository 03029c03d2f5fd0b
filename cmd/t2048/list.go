package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/t2048/internal/games/t2048"
	"github.com/vovakirdan/t2048/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List games and board keys",
	Long:  `Shows the registered game variants and every board key used by 'scores'.`,
	Run:   runList,
}

func runList(_ *cobra.Command, _ []string) {
	games := registry.List()

	if len(games) == 0 {
		fmt.Println("No games available.")
		return
	}

	fmt.Println("Available games:")
	fmt.Println()

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	for _, g := range games {
		maxIDLen = max(maxIDLen, len(g.ID))
	}

	fmt.Printf("  %-*s  %s\n", maxIDLen, "ID", "Title")
	fmt.Printf("  %-*s  %s\n", maxIDLen, "--", "-----")
	for _, g := range games {
		fmt.Printf("  %-*s  %s\n", maxIDLen, g.ID, g.Title)
	}

	fmt.Println()
	fmt.Println("Boards:")
	fmt.Println()
	for _, key := range t2048.BoardKeys() {
		fmt.Printf("  %-20s  %s\n", key, t2048.BoardTitle(key))
	}

	fmt.Println()
	fmt.Println("Run 't2048 play' or 't2048 window' to play.")
}
