package config

import (
	_ "embed"
)

//go:embed defaults/t2048.yaml
var defaultT2048YAML []byte

// DefaultT2048Config returns the default 2048 configuration.
func DefaultT2048Config() T2048Config {
	return T2048Config{
		Board: BoardConfig{
			Size:    4,
			Variant: "original",
		},
		Spawn: SpawnConfig{
			FourProbability: 0.2,
		},
		Rules: RulesConfig{
			WinTile: 2048,
		},
		Animation: AnimationConfig{
			SlideTicks: 8,
			PopTicks:   6,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultT2048YAML
}
