package storage

import (
	"os"
	"path/filepath"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Check that the file was created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreOpenEmptyPath(t *testing.T) {
	if _, err := Open(""); err == nil {
		t.Error("Open(\"\") should fail")
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	for _, r := range []GameResult{
		{Board: "2048-4x4", Score: 100, MaxTile: 16, Moves: 30},
		{Board: "2048-4x4", Score: 50, MaxTile: 8, Moves: 12},
		{Board: "2048-4x4", Score: 200, MaxTile: 32, Moves: 51, Won: true},
		{Board: "2048_diagonal-5x5", Score: 500, MaxTile: 64, Moves: 80},
	} {
		if _, err := store.SaveGame(r); err != nil {
			t.Fatalf("SaveGame(%+v) failed: %v", r, err)
		}
	}

	scores, err := store.TopScores("2048-4x4", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores, got %d", len(scores))
	}

	// Should be sorted descending
	if scores[0].Score != 200 || scores[1].Score != 100 || scores[2].Score != 50 {
		t.Errorf("Scores not in expected order: %+v", scores)
	}
	top := scores[0]
	if top.Board != "2048-4x4" || top.MaxTile != 32 || top.Moves != 51 || !top.Won {
		t.Errorf("top entry = %+v", top)
	}
	if top.CreatedAt.IsZero() {
		t.Error("CreatedAt should be set")
	}

	diag, err := store.TopScores("2048_diagonal-5x5", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(diag) != 1 {
		t.Errorf("Expected 1 diagonal score, got %d", len(diag))
	}
}

func TestStoreTopScoresLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 5; i++ {
		store.SaveScore("2048-4x4", (i+1)*100)
	}

	// Request only top 3
	scores, err := store.TopScores("2048-4x4", 3)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores with limit, got %d", len(scores))
	}
	if scores[0].Score != 500 || scores[1].Score != 400 || scores[2].Score != 300 {
		t.Errorf("Scores not in expected order: %v", scores)
	}

	// Non-positive limit falls back to 10
	all, err := store.TopScores("2048-4x4", 0)
	if err != nil || len(all) != 5 {
		t.Errorf("TopScores(limit 0) = %d entries, %v", len(all), err)
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore("2048-6x6")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score of 0 for empty board, got %d", high)
	}

	store.SaveScore("2048-6x6", 100)
	store.SaveScore("2048-6x6", 300)
	store.SaveScore("2048-6x6", 200)

	high, err = store.HighScore("2048-6x6")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 300 {
		t.Errorf("Expected high score of 300, got %d", high)
	}
}

func TestStoreClearScores(t *testing.T) {
	store := openTestStore(t)

	store.SaveScore("2048-4x4", 100)
	store.SaveScore("2048-4x4", 200)
	store.SaveScore("2048-5x5", 300)

	if err := store.ClearScores("2048-4x4"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	cleared, _ := store.TopScores("2048-4x4", 10)
	if len(cleared) != 0 {
		t.Errorf("Expected 0 scores after clear, got %d", len(cleared))
	}

	other, _ := store.TopScores("2048-5x5", 10)
	if len(other) != 1 {
		t.Errorf("Other boards should not be affected by clearing 2048-4x4")
	}
}

func TestStoreBoardStats(t *testing.T) {
	store := openTestStore(t)

	store.SaveGame(GameResult{Board: "2048-4x4", Score: 100, MaxTile: 16})
	store.SaveGame(GameResult{Board: "2048-4x4", Score: 300, MaxTile: 2048, Won: true})
	store.SaveGame(GameResult{Board: "2048_diagonal-4x4", Score: 40, MaxTile: 8})

	stats, err := store.GetAllBoardsStats()
	if err != nil {
		t.Fatalf("GetAllBoardsStats() failed: %v", err)
	}
	if len(stats) != 2 {
		t.Fatalf("Expected stats for 2 boards, got %d", len(stats))
	}

	st := stats["2048-4x4"]
	if st == nil {
		t.Fatal("missing stats for 2048-4x4")
	}
	if st.GamesCount != 2 || st.HighScore != 300 || st.BestTile != 2048 || st.Wins != 1 {
		t.Errorf("stats = %+v", st)
	}
	if st.AvgScore != 200 {
		t.Errorf("AvgScore = %v, want 200", st.AvgScore)
	}
}

func TestStoreNestedPath(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}
