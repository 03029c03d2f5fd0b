package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestEmbeddedDefaultMatchesHardcoded(t *testing.T) {
	cfg, err := parse(DefaultYAML())
	if err != nil {
		t.Fatalf("embedded default does not parse: %v", err)
	}
	if cfg != DefaultT2048Config() {
		t.Errorf("embedded default = %+v, hardcoded = %+v", cfg, DefaultT2048Config())
	}
}

func TestLoadCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	data := "board:\n  size: 6\n  variant: diagonal\nspawn:\n  four_probability: 0.5\n"
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadT2048(path)
	if err != nil {
		t.Fatalf("LoadT2048() failed: %v", err)
	}
	if cfg.Board.Size != 6 || cfg.Board.Variant != "diagonal" {
		t.Errorf("board = %+v, want size 6 diagonal", cfg.Board)
	}
	if cfg.Spawn.FourProbability != 0.5 {
		t.Errorf("four_probability = %v, want 0.5", cfg.Spawn.FourProbability)
	}
	// Untouched sections keep their defaults
	if cfg.Rules.WinTile != 2048 || cfg.Animation.SlideTicks != 8 {
		t.Errorf("partial config lost defaults: %+v", cfg)
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := LoadT2048(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("missing custom file should be an error")
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("board:\n  size: 9\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	_, err := LoadT2048(bad)
	if err == nil || !strings.Contains(err.Error(), "board.size") {
		t.Errorf("invalid size should be reported, got %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*T2048Config)
		ok     bool
	}{
		{"defaults", func(*T2048Config) {}, true},
		{"size 5", func(c *T2048Config) { c.Board.Size = 5 }, true},
		{"size too small", func(c *T2048Config) { c.Board.Size = 3 }, false},
		{"unknown variant", func(c *T2048Config) { c.Board.Variant = "hex" }, false},
		{"negative probability", func(c *T2048Config) { c.Spawn.FourProbability = -0.1 }, false},
		{"win tile not power of two", func(c *T2048Config) { c.Rules.WinTile = 1000 }, false},
		{"negative animation", func(c *T2048Config) { c.Animation.PopTicks = -1 }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultT2048Config()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if (err == nil) != tt.ok {
				t.Errorf("Validate() = %v, want ok=%v", err, tt.ok)
			}
		})
	}
}

func TestApplyPreset(t *testing.T) {
	tests := []struct {
		preset string
		want   float64
	}{
		{"easy", 0.1},
		{"normal", 0.2},
		{"hard", 0.35},
		{"", 0.2},
		{"bogus", 0.2},
	}

	for _, tt := range tests {
		cfg := DefaultT2048Config()
		ApplyT2048Preset(&cfg, ParseDifficultyPreset(tt.preset))
		if cfg.Spawn.FourProbability != tt.want {
			t.Errorf("preset %q: four_probability = %v, want %v", tt.preset, cfg.Spawn.FourProbability, tt.want)
		}
	}
}
