package main

import (
	"fmt"
	"os"
	"slices"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/t2048/internal/games/t2048"
	"github.com/vovakirdan/t2048/internal/storage"
)

var (
	flagStats bool
	flagClear bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [board]",
	Short: "Show high scores for a board",
	Long: `Display the top 10 high scores for a board. Boards are named
<game>-<size>, e.g. 2048-4x4 or 2048_diagonal-6x6; see 't2048 list'.

Examples:
  t2048 scores
  t2048 scores 2048_diagonal-5x5
  t2048 scores --stats
  t2048 scores 2048-6x6 --clear`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagStats, "stats", false, "Show a summary of every board instead")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete all scores of the board")
}

func runScores(_ *cobra.Command, args []string) {
	board := t2048.BoardKey(t2048.VariantOriginal, t2048.DefaultGridSize)
	if len(args) == 1 {
		board = args[0]
	}

	if !flagStats && !slices.Contains(t2048.BoardKeys(), board) {
		fmt.Fprintf(os.Stderr, "Error: unknown board %q\n", board)
		fmt.Fprintln(os.Stderr, "Run 't2048 list' to see available boards.")
		os.Exit(1)
	}

	if flagDBPath == "" {
		fmt.Fprintln(os.Stderr, "Error: score history is disabled (--db is empty)")
		os.Exit(1)
	}

	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	switch {
	case flagStats:
		err = printStats(store)
	case flagClear:
		err = store.ClearScores(board)
		if err == nil {
			fmt.Printf("Cleared scores for %s.\n", t2048.BoardTitle(board))
		}
	default:
		err = printTopScores(store, board)
	}
	if err != nil {
		store.Close()
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func printTopScores(store *storage.Store, board string) error {
	scores, err := store.TopScores(board, 10)
	if err != nil {
		return err
	}

	fmt.Printf("High Scores - %s\n", t2048.BoardTitle(board))
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		return nil
	}

	// Print header
	fmt.Printf("  %-4s  %-8s  %-6s  %-6s  %s\n", "Rank", "Score", "Tile", "Moves", "Date")
	fmt.Printf("  %-4s  %-8s  %-6s  %-6s  %s\n", "----", "-----", "----", "-----", "----")

	for i, entry := range scores {
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		won := ""
		if entry.Won {
			won = "  *"
		}
		fmt.Printf("  %-4d  %-8d  %-6d  %-6d  %s%s\n", i+1, entry.Score, entry.MaxTile, entry.Moves, dateStr, won)
	}

	fmt.Println()
	fmt.Printf("Best: %d\n", scores[0].Score)
	return nil
}

func printStats(store *storage.Store) error {
	stats, err := store.GetAllBoardsStats()
	if err != nil {
		return err
	}
	if len(stats) == 0 {
		fmt.Println("No games recorded yet.")
		return nil
	}

	fmt.Printf("  %-18s  %-5s  %-8s  %-6s  %-8s  %s\n", "Board", "Games", "Best", "Tile", "Average", "Wins")
	fmt.Printf("  %-18s  %-5s  %-8s  %-6s  %-8s  %s\n", "-----", "-----", "----", "----", "-------", "----")
	for _, key := range t2048.BoardKeys() {
		s, ok := stats[key]
		if !ok {
			continue
		}
		fmt.Printf("  %-18s  %-5d  %-8d  %-6d  %-8.0f  %d\n",
			t2048.BoardTitle(key), s.GamesCount, s.HighScore, s.BestTile, s.AvgScore, s.Wins)
	}
	return nil
}
