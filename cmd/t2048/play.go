package main

import (
	"fmt"
	"io"
	"os"
	"slices"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/t2048/internal/core"
	"github.com/vovakirdan/t2048/internal/games/t2048"
	"github.com/vovakirdan/t2048/internal/platform/tui"
	"github.com/vovakirdan/t2048/internal/registry"
	"github.com/vovakirdan/t2048/internal/storage"
)

var (
	flagSize     int
	flagVariant  string
	flagSkipMenu bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Start the terminal menu: pick a grid size and a movement scheme,
then play. Leaving a game returns to the menu.

Controls (original):
  Arrows/WASD/hjkl - Slide
Controls (diagonal):
  Home/PgUp/End/PgDn or 7/9/1/3 - Slide up-left/up-right/down-left/down-right

  P          - Pause
  R          - Restart (after game over)
  Space      - Keep playing after reaching 2048
  Esc/Q      - Exit to menu (asks first)
  Ctrl+C     - Quit
  ?          - Toggle help

Examples:
  t2048 play
  t2048 play --size 6
  t2048 play --variant diagonal --skip-menu
  t2048 play --difficulty hard --log-file ./t2048.log`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	for _, c := range []*cobra.Command{playCmd, windowCmd} {
		c.Flags().IntVar(&flagSize, "size", 0, "Grid size: 4, 5 or 6 (0 = config)")
		c.Flags().StringVar(&flagVariant, "variant", "", "Movement: original or diagonal (empty = config)")
		c.Flags().BoolVar(&flagSkipMenu, "skip-menu", false, "Start a game right away")
	}
}

// resolveSelection combines --size and --variant with the config file.
// A --config file that cannot be loaded is reported instead of ignored.
func resolveSelection() (tui.Selection, error) {
	cfg, err := t2048.ReadConfig()
	if err != nil {
		return tui.Selection{}, err
	}

	size := flagSize
	if size == 0 {
		size = cfg.Board.Size
	}
	if !slices.Contains(t2048.SupportedSizes, size) {
		return tui.Selection{}, fmt.Errorf("unsupported grid size %d (want 4, 5 or 6)", size)
	}

	name := flagVariant
	if name == "" {
		name = cfg.Board.Variant
	}
	v, err := t2048.ParseVariant(name)
	if err != nil {
		return tui.Selection{}, err
	}
	return tui.Selection{Size: size, Variant: v}, nil
}

func runPlay(_ *cobra.Command, _ []string) {
	sel, err := resolveSelection()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// The TUI owns the terminal, so logs go to --log-file or nowhere.
	logger, closeLog, err := openLogger(io.Discard)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	store := openStore(logger)
	if store != nil {
		defer store.Close()
	}

	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	if flagFPS > 0 {
		cfg.TickRate = flagFPS
	}
	cfg.Seed = flagSeed

	if flagSkipMenu {
		quit, err := playBoard(sel, store, cfg, logger)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
			os.Exit(1)
		}
		if quit {
			return
		}
		cfg.Seed = 0
	}

	// Menu loop
	for {
		menuResult, err := tui.RunMenu(store, cfg, sel)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			break
		}

		// Keep size changes and the last choice
		cfg = menuResult.Config
		sel = menuResult.Selection

		if menuResult.Quit {
			break
		}

		if menuResult.WantsScoreboard {
			goBack, sbErr := tui.RunScoreboard(store, sel.BoardKey(), cfg.ScreenW, cfg.ScreenH)
			if sbErr != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", sbErr)
			}
			if goBack {
				continue
			}
			break
		}

		quit, err := playBoard(sel, store, cfg, logger)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		}
		if quit {
			break
		}

		// Only the first game uses --seed
		cfg.Seed = 0
	}
}

// playBoard runs one board until the player leaves it. quit reports
// Ctrl+C, which ends the program instead of returning to the menu.
func playBoard(sel tui.Selection, store *storage.Store, cfg core.RuntimeConfig, logger *log.Logger) (quit bool, err error) {
	game, err := registry.Create(t2048.GameID(sel.Variant))
	if err != nil {
		return false, err
	}
	board, ok := game.(tui.BoardGame)
	if !ok {
		return false, fmt.Errorf("game %q cannot run in the terminal", game.ID())
	}

	cfg.GridSize = sel.Size
	logger.Info("starting game", "board", sel.BoardKey(), "seed", cfg.Seed)

	res, err := tui.Run(board, store, cfg, logger, sel.Variant == t2048.VariantDiagonal)
	if err != nil {
		return false, err
	}
	logger.Debug("left game", "board", sel.BoardKey(), "score", res.Score, "quit", res.Quit)
	return res.Quit, nil
}
