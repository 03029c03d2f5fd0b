// t2048 is the 2048 sliding-tile puzzle for the terminal and the desktop.
//
// Usage:
//
//	t2048 play             - Menu, then play in the terminal
//	t2048 window           - Play in a desktop window
//	t2048 scores [board]   - Show high scores for a board (default 2048-4x4)
//	t2048 list             - List games and board keys
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--db <path>           - Set database path (default: ~/.t2048/scores.db, "" disables)
//	--config <path>       - Custom t2048.yaml
//	--difficulty <preset> - easy, normal or hard
//	--log-level <level>   - debug, info, warn, error
//	--log-file <path>     - Write logs to a file
//
// Flags may also be set through T2048_FPS, T2048_DB, T2048_CONFIG and
// T2048_LOG_LEVEL, read from the environment or a .env file.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/t2048/internal/config"
	"github.com/vovakirdan/t2048/internal/games/t2048"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagLogLevel   string
	flagLogFile    string
)

// envFlags maps global flags to the environment variables that default them.
var envFlags = []struct {
	flag, env string
}{
	{"fps", "T2048_FPS"},
	{"db", "T2048_DB"},
	{"config", "T2048_CONFIG"},
	{"log-level", "T2048_LOG_LEVEL"},
}

func main() {
	// A missing .env file is not an error.
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "t2048",
	Short: "2048 - slide and merge tiles in your terminal or a window",
	Long: `t2048 is the 2048 puzzle: slide the tiles, merge equal values and
reach the 2048 tile. Boards come in 4x4, 5x5 and 6x6, with the original
axis movement or diagonal movement.

Available commands:
  play     - Menu and game in the terminal
  window   - Menu and game in a desktop window
  scores   - View high scores
  list     - Show games and board keys

Examples:
  t2048 play
  t2048 play --size 5 --variant diagonal --skip-menu
  t2048 window --difficulty hard
  t2048 scores 2048_diagonal-6x6`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.t2048/scores.db", "Path to scores database (empty disables history)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom t2048 config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Append logs to this file")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(scoresCmd)
}

// setup applies environment defaults and hands game settings to the
// t2048 package before any command runs.
func setup(cmd *cobra.Command, _ []string) error {
	if err := applyEnv(cmd); err != nil {
		return err
	}
	if flagDifficulty != "" && config.ParseDifficultyPreset(flagDifficulty) == "" {
		return fmt.Errorf("unknown difficulty %q (want easy, normal or hard)", flagDifficulty)
	}

	t2048.SetConfigPath(flagConfig)
	t2048.SetDifficultyPreset(flagDifficulty)
	return nil
}

// applyEnv sets every flag left at its default from its environment
// variable, if present.
func applyEnv(cmd *cobra.Command) error {
	fs := cmd.Flags()
	for _, ef := range envFlags {
		f := fs.Lookup(ef.flag)
		if f == nil || f.Changed {
			continue
		}
		v, ok := os.LookupEnv(ef.env)
		if !ok {
			continue
		}
		if err := fs.Set(ef.flag, v); err != nil {
			return fmt.Errorf("invalid %s=%q: %w", ef.env, v, err)
		}
	}
	return nil
}
