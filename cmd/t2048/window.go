package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/t2048/internal/platform/desktop"
)

var windowCmd = &cobra.Command{
	Use:   "window",
	Short: "Play in a desktop window",
	Long: `Open a desktop window with the same menus as the terminal:
start, grid size, movement and quit, with mouse and keyboard.

Controls (original):
  Arrows/WASD - Slide
Controls (diagonal):
  Q/E/Z/C, Home/PgUp/End/PgDn or 7/9/1/3 - Slide diagonally

  R/Enter    - New game (after game over)
  Enter      - Keep playing after reaching 2048
  Esc        - Exit to menu (asks first)

Examples:
  t2048 window
  t2048 window --size 5 --variant diagonal --skip-menu`,
	Args: cobra.NoArgs,
	Run:  runWindow,
}

func runWindow(_ *cobra.Command, _ []string) {
	sel, err := resolveSelection()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	logger, closeLog, err := openLogger(os.Stderr)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	store := openStore(logger)
	if store != nil {
		defer store.Close()
	}

	app, err := desktop.New(desktop.Options{
		Store:    store,
		Logger:   logger,
		Size:     sel.Size,
		Variant:  sel.Variant,
		Seed:     flagSeed,
		TPS:      flagFPS,
		SkipMenu: flagSkipMenu,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if err := desktop.Run(app); err != nil {
		logger.Error("window failed", "err", err)
		fmt.Fprintf(os.Stderr, "Error running window: %v\n", err)
		os.Exit(1)
	}
}
