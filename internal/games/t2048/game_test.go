package t2048

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/vovakirdan/t2048/internal/config"
	"github.com/vovakirdan/t2048/internal/core"
	"github.com/vovakirdan/t2048/internal/registry"
)

func newTestGame(t *testing.T, g *Game, size int) *Game {
	t.Helper()
	cfg := core.DefaultConfig()
	cfg.Seed = 12345
	cfg.GridSize = size
	g.Reset(cfg)
	return g
}

func input(actions ...core.Action) core.InputFrame {
	in := core.NewInputFrame()
	for _, a := range actions {
		in.Set(a)
	}
	return in
}

func TestRegistered(t *testing.T) {
	for _, id := range []string{IDOriginal, IDDiagonal} {
		g, err := registry.Create(id)
		if err != nil {
			t.Fatalf("registry.Create(%q) failed: %v", id, err)
		}
		if g.ID() != id {
			t.Errorf("ID() = %q, want %q", g.ID(), id)
		}
	}
}

func TestResetUsesGridSize(t *testing.T) {
	for _, size := range SupportedSizes {
		g := newTestGame(t, New(), size)
		snap := g.Snapshot()
		if snap.Size != size || len(snap.Board) != size {
			t.Errorf("size %d: snapshot size %d", size, snap.Size)
		}
		if g.Session().Grid().TileCount() != 2 {
			t.Errorf("size %d: %d initial tiles", size, g.Session().Grid().TileCount())
		}
	}

	g := newTestGame(t, New(), 0)
	if g.Session().Size() != DefaultGridSize {
		t.Errorf("GridSize 0 should use the configured default, got %d", g.Session().Size())
	}
}

func TestStepMove(t *testing.T) {
	g := newTestGame(t, New(), 4)
	g.session = sessionWith(t, VariantOriginal, [][]int{
		{0, 0, 2, 2},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	})

	res := g.Step(input(core.ActionLeft))
	if !res.Moved || res.State.Score != 4 {
		t.Fatalf("result = %+v, want moved with score 4", res)
	}
	if g.BestScore() != 4 {
		t.Errorf("best score = %d, want 4", g.BestScore())
	}
	if !g.anim.Active() {
		t.Error("a move should start an animation")
	}
}

func TestNoChangeNoSpawn(t *testing.T) {
	g := newTestGame(t, New(), 4)
	g.session = sessionWith(t, VariantOriginal, [][]int{
		{2, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	})

	res := g.Step(input(core.ActionLeft))
	if res.Moved || g.Session().Grid().TileCount() != 1 {
		t.Errorf("blocked move spawned a tile:\n%v", g.Session().Grid())
	}
}

func TestPauseBlocksMoves(t *testing.T) {
	g := newTestGame(t, New(), 4)
	g.session = sessionWith(t, VariantOriginal, [][]int{
		{0, 0, 0, 2},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	})

	g.Step(input(core.ActionPause))
	if !g.State().Paused {
		t.Fatal("P should pause")
	}
	if res := g.Step(input(core.ActionLeft)); res.Moved {
		t.Error("moves should be ignored while paused")
	}
	g.Step(input(core.ActionPause))
	if res := g.Step(input(core.ActionLeft)); !res.Moved {
		t.Error("move after unpause should be accepted")
	}
}

func TestWinBannerAndContinue(t *testing.T) {
	g := newTestGame(t, New(), 4)
	g.session = sessionWith(t, VariantOriginal, [][]int{
		{4, 4, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 2, 0},
	}, WithWinTile(8))

	g.Step(input(core.ActionLeft))
	if g.Snapshot().State != StateWin || !g.State().Won {
		t.Fatalf("state = %v, want win banner", g.Snapshot().State)
	}
	if res := g.Step(input(core.ActionRight)); res.Moved {
		t.Error("moves should wait for the win banner to be dismissed")
	}

	g.Step(input(core.ActionContinue))
	if g.Snapshot().State != StatePlaying {
		t.Fatalf("state = %v after continue", g.Snapshot().State)
	}
	if res := g.Step(input(core.ActionRight)); !res.Moved {
		t.Error("keep playing after the win banner")
	}
	if !g.State().Won {
		t.Error("won flag should remain set")
	}
}

func TestGameOver(t *testing.T) {
	g := newTestGame(t, New(), 2)
	g.session = sessionWith(t, VariantOriginal, [][]int{
		{2, 4},
		{0, 8},
	})

	g.Step(input(core.ActionLeft))
	state := g.State()
	if !state.GameOver || g.Snapshot().State != StateGameOver {
		t.Fatalf("expected game over, board\n%v", g.Session().Grid())
	}
	if state.MaxTile != 8 {
		t.Errorf("max tile = %d, want 8", state.MaxTile)
	}
}

func TestDiagonalDeadlockIsGameOver(t *testing.T) {
	g := newTestGame(t, NewDiagonal(), 2)
	g.session = sessionWith(t, VariantDiagonal, [][]int{
		{4, 0},
		{0, 0},
	})

	if res := g.Step(input(core.ActionDownRight)); !res.Moved {
		t.Fatal("down-right should move the tile")
	}
	// [[2 0] [0 4]]: empty cells remain but no diagonal move changes the grid
	if g.Session().Terminal() {
		t.Fatal("a grid with empty cells is not terminal")
	}
	if !g.State().GameOver {
		t.Errorf("stuck diagonal grid should end the game:\n%v", g.Session().Grid())
	}
}

func TestDeterministicSpawn(t *testing.T) {
	g1 := newTestGame(t, New(), 4)
	g2 := newTestGame(t, New(), 4)

	moves := []core.Action{core.ActionLeft, core.ActionUp, core.ActionRight, core.ActionDown}
	for i := range 30 {
		g1.Step(input(moves[i%4]))
		g2.Step(input(moves[i%4]))
	}

	s1, s2 := g1.Snapshot(), g2.Snapshot()
	if s1.Score != s2.Score || s1.Moves != s2.Moves {
		t.Fatalf("snapshots diverged: %+v vs %+v", s1, s2)
	}
	for y := range s1.Board {
		for x := range s1.Board[y] {
			if s1.Board[y][x] != s2.Board[y][x] {
				t.Fatalf("boards diverged at (%d,%d)", x, y)
			}
		}
	}
}

func TestSnapshot(t *testing.T) {
	g := newTestGame(t, NewDiagonal(), 5)
	g.Step(core.NewInputFrame())

	snap := g.Snapshot()
	if snap.Tick != 1 || snap.Variant != "diagonal" || snap.Size != 5 {
		t.Errorf("snapshot = %+v", snap)
	}
	if snap.State != StatePlaying || snap.Score != 0 || snap.MaxTile < 2 {
		t.Errorf("snapshot = %+v", snap)
	}
}

func TestActionDirection(t *testing.T) {
	for _, a := range core.MoveActions {
		if _, ok := ActionDirection(a); !ok {
			t.Errorf("move action %v has no direction", a)
		}
	}
	if _, ok := ActionDirection(core.ActionPause); ok {
		t.Error("pause should not map to a direction")
	}
}

func TestRender(t *testing.T) {
	g := newTestGame(t, New(), 4)
	screen := core.NewScreen(80, 24)
	g.Render(screen)

	out := screen.String()
	for _, want := range []string{"2048", "Score: 0", "4x4 Original", "┌"} {
		if !strings.Contains(out, want) {
			t.Errorf("render output missing %q", want)
		}
	}

	g.Resize(20, 8)
	if !g.State().Paused {
		t.Error("tiny screen should pause the game")
	}
	small := core.NewScreen(20, 8)
	g.Render(small)
	if !strings.Contains(small.String(), "Window too small") {
		t.Error("tiny screen should show the resize hint")
	}
}

func TestBoardKeys(t *testing.T) {
	keys := BoardKeys()
	if len(keys) != len(Variants)*len(SupportedSizes) {
		t.Fatalf("BoardKeys() = %v", keys)
	}
	if keys[0] != "2048-4x4" || BoardKey(VariantDiagonal, 5) != "2048_diagonal-5x5" {
		t.Errorf("unexpected keys %v", keys)
	}
	if BoardTitle("2048_diagonal-6x6") != "Diagonal 6x6" {
		t.Errorf("BoardTitle = %q", BoardTitle("2048_diagonal-6x6"))
	}
}

func TestReadConfigReportsBadPath(t *testing.T) {
	defer SetConfigPath(configPath)
	SetConfigPath(filepath.Join(t.TempDir(), "missing.yaml"))

	cfg, err := ReadConfig()
	if err == nil {
		t.Fatal("ReadConfig() should fail for a missing --config file")
	}
	if cfg.Board.Size != config.DefaultT2048Config().Board.Size {
		t.Errorf("fallback size = %d, want the default", cfg.Board.Size)
	}
	if got := LoadConfig(); got.Board.Size != cfg.Board.Size {
		t.Errorf("LoadConfig() size = %d, want %d", got.Board.Size, cfg.Board.Size)
	}
}
