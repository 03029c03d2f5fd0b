// Package config provides YAML-based game configuration loading and
// difficulty presets for t2048.
package config

import (
	"fmt"
	"math/bits"
)

// T2048Config contains all configuration for the 2048 game.
type T2048Config struct {
	Board     BoardConfig     `yaml:"board"`
	Spawn     SpawnConfig     `yaml:"spawn"`
	Rules     RulesConfig     `yaml:"rules"`
	Animation AnimationConfig `yaml:"animation"`
}

// BoardConfig selects the default board shape.
type BoardConfig struct {
	Size    int    `yaml:"size"`    // 4, 5 or 6
	Variant string `yaml:"variant"` // "original" or "diagonal"
}

// SpawnConfig controls new tile generation.
type SpawnConfig struct {
	FourProbability float64 `yaml:"four_probability"` // chance that a spawned tile is a 4
}

// RulesConfig holds scoring rules.
type RulesConfig struct {
	WinTile int `yaml:"win_tile"` // tile value that raises the win flag
}

// AnimationConfig holds animation lengths in simulation ticks.
type AnimationConfig struct {
	SlideTicks int `yaml:"slide_ticks"`
	PopTicks   int `yaml:"pop_ticks"`
}

// Board size limits accepted by the configuration.
const (
	MinBoardSize = 4
	MaxBoardSize = 6
)

// Validate checks the configuration for values the game cannot run with.
func (c T2048Config) Validate() error {
	if c.Board.Size < MinBoardSize || c.Board.Size > MaxBoardSize {
		return fmt.Errorf("config: board.size must be between %d and %d, got %d",
			MinBoardSize, MaxBoardSize, c.Board.Size)
	}
	switch c.Board.Variant {
	case "original", "diagonal":
	default:
		return fmt.Errorf("config: board.variant must be original or diagonal, got %q", c.Board.Variant)
	}
	if c.Spawn.FourProbability < 0 || c.Spawn.FourProbability > 1 {
		return fmt.Errorf("config: spawn.four_probability must be within [0, 1], got %v",
			c.Spawn.FourProbability)
	}
	if c.Rules.WinTile < 4 || bits.OnesCount(uint(c.Rules.WinTile)) != 1 {
		return fmt.Errorf("config: rules.win_tile must be a power of two >= 4, got %d", c.Rules.WinTile)
	}
	if c.Animation.SlideTicks < 0 || c.Animation.PopTicks < 0 {
		return fmt.Errorf("config: animation ticks must not be negative")
	}
	return nil
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ParseDifficultyPreset maps a CLI string to a preset.
// Unknown strings yield the empty preset, which leaves the config untouched.
func ParseDifficultyPreset(s string) DifficultyPreset {
	switch DifficultyPreset(s) {
	case DifficultyEasy, DifficultyNormal, DifficultyHard:
		return DifficultyPreset(s)
	default:
		return ""
	}
}

// FourProbabilityForPreset returns the spawn-4 probability of a preset.
func FourProbabilityForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.1
	case DifficultyHard:
		return 0.35
	default:
		return 0.2
	}
}

// ApplyT2048Preset modifies the config based on a difficulty preset.
func ApplyT2048Preset(cfg *T2048Config, preset DifficultyPreset) {
	if preset == "" {
		return
	}
	cfg.Spawn.FourProbability = FourProbabilityForPreset(preset)
}
