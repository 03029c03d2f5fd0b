package main

import (
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/t2048/internal/games/t2048"
)

func newFlagCmd(fps *int, db *string) *cobra.Command {
	cmd := &cobra.Command{Use: "test"}
	cmd.Flags().IntVar(fps, "fps", 60, "")
	cmd.Flags().StringVar(db, "db", "default.db", "")
	return cmd
}

func TestApplyEnv(t *testing.T) {
	var fps int
	var db string
	cmd := newFlagCmd(&fps, &db)

	t.Setenv("T2048_FPS", "30")
	t.Setenv("T2048_DB", "env.db")
	if err := cmd.Flags().Set("db", "flag.db"); err != nil {
		t.Fatal(err)
	}

	if err := applyEnv(cmd); err != nil {
		t.Fatalf("applyEnv() error = %v", err)
	}
	if fps != 30 {
		t.Errorf("fps = %d, want 30 from the environment", fps)
	}
	if db != "flag.db" {
		t.Errorf("db = %q, an explicit flag should win over the environment", db)
	}
}

func TestApplyEnvInvalid(t *testing.T) {
	var fps int
	var db string
	cmd := newFlagCmd(&fps, &db)

	t.Setenv("T2048_FPS", "fast")
	if err := applyEnv(cmd); err == nil {
		t.Error("expected an error for a non-numeric T2048_FPS")
	}
}

func TestResolveSelection(t *testing.T) {
	tests := []struct {
		name    string
		size    int
		variant string
		want    t2048.Variant
		wantErr bool
	}{
		{"diagonal 5", 5, "diagonal", t2048.VariantDiagonal, false},
		{"original 6", 6, "original", t2048.VariantOriginal, false},
		{"size 7", 7, "original", 0, true},
		{"size 3", 3, "original", 0, true},
		{"bad variant", 4, "sideways", 0, true},
	}

	defer func(size int, variant string) { flagSize, flagVariant = size, variant }(flagSize, flagVariant)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			flagSize, flagVariant = tt.size, tt.variant
			sel, err := resolveSelection()
			if (err != nil) != tt.wantErr {
				t.Fatalf("resolveSelection() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err == nil && (sel.Size != tt.size || sel.Variant != tt.want) {
				t.Errorf("selection = %+v", sel)
			}
		})
	}
}

func TestResolveSelectionBadConfig(t *testing.T) {
	defer t2048.SetConfigPath("")
	t2048.SetConfigPath(filepath.Join(t.TempDir(), "missing.yaml"))

	if _, err := resolveSelection(); err == nil {
		t.Error("resolveSelection() should report an unreadable --config file")
	}
}
