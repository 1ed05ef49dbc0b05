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
	dbPath := filepath.Join(t.TempDir(), "nested", "dir", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("database file was not created")
	}
}

func TestStoreReopenKeepsData(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	if _, err := store.SaveScore("tiles", 840); err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}
	store.Close()

	store, err = Open(dbPath)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	defer store.Close()

	if high, _ := store.HighScore("tiles"); high != 840 {
		t.Errorf("HighScore() = %d after reopen, expected 840", high)
	}
}

func TestStoreTopScores(t *testing.T) {
	store := openTestStore(t)

	for _, score := range []int{300, 1200, 600} {
		if _, err := store.SaveScore("tiles", score); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
	}
	if _, err := store.SaveScore("tiles_single", 5000); err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}

	scores, err := store.TopScores("tiles", 2)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 2 {
		t.Fatalf("expected 2 scores, got %d", len(scores))
	}
	if scores[0].Score != 1200 || scores[1].Score != 600 {
		t.Errorf("expected [1200 600], got [%d %d]", scores[0].Score, scores[1].Score)
	}
	if scores[0].CreatedAt.IsZero() {
		t.Error("CreatedAt should be set")
	}
}

func TestStoreHighScoreEmpty(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore("tiles")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("expected 0 for empty table, got %d", high)
	}
}

func TestStoreLevelResults(t *testing.T) {
	store := openTestStore(t)

	results := []LevelResult{
		{GameID: "tiles", LevelID: "level_0", Score: 1080, Won: true, MovesUsed: 9},
		{GameID: "tiles", LevelID: "level_0", Score: 1080, Won: true, MovesUsed: 12},
		{GameID: "tiles", LevelID: "level_0", Score: 420, Won: false, MovesUsed: 15},
		{GameID: "tiles", LevelID: "level_1", Score: 1500, Won: true, MovesUsed: 20},
	}
	for _, r := range results {
		if _, err := store.SaveLevelResult(r); err != nil {
			t.Fatalf("SaveLevelResult() failed: %v", err)
		}
	}

	top, err := store.TopLevelResults("level_0", 10)
	if err != nil {
		t.Fatalf("TopLevelResults() failed: %v", err)
	}
	if len(top) != 3 {
		t.Fatalf("expected 3 results, got %d", len(top))
	}
	// Equal scores rank the faster clear first
	if top[0].MovesUsed != 9 || top[1].MovesUsed != 12 {
		t.Errorf("tie should be broken by moves used, got %d then %d", top[0].MovesUsed, top[1].MovesUsed)
	}
	if !top[0].Won || top[2].Won {
		t.Error("won flag not round-tripped")
	}

	best, err := store.BestLevelScores()
	if err != nil {
		t.Fatalf("BestLevelScores() failed: %v", err)
	}
	if best["level_0"] != 1080 || best["level_1"] != 1500 {
		t.Errorf("unexpected best scores %v", best)
	}
	if _, ok := best["level_2"]; ok {
		t.Error("unplayed level should be absent")
	}

	stats, err := store.GetLevelStats("level_0")
	if err != nil {
		t.Fatalf("GetLevelStats() failed: %v", err)
	}
	if stats.Plays != 3 || stats.Wins != 2 || stats.BestScore != 1080 {
		t.Errorf("unexpected stats %+v", stats)
	}
	if rate := stats.WinRate(); rate < 0.66 || rate > 0.67 {
		t.Errorf("WinRate() = %f, expected 2/3", rate)
	}
	if stats.LastPlayed.IsZero() {
		t.Error("LastPlayed should be set")
	}
}

func TestStoreLevelStatsUnplayed(t *testing.T) {
	store := openTestStore(t)

	stats, err := store.GetLevelStats("level_4")
	if err != nil {
		t.Fatalf("GetLevelStats() failed: %v", err)
	}
	if stats.Plays != 0 || stats.WinRate() != 0 || !stats.LastPlayed.IsZero() {
		t.Errorf("unexpected stats for unplayed level %+v", stats)
	}
}

func TestStoreSaveLevelResultRequiresLevel(t *testing.T) {
	store := openTestStore(t)

	if _, err := store.SaveLevelResult(LevelResult{GameID: "tiles", Score: 10}); err == nil {
		t.Error("expected error for missing level id")
	}
}

func TestStoreClearScores(t *testing.T) {
	store := openTestStore(t)

	store.SaveScore("tiles", 100)
	store.SaveScore("tiles_single", 200)
	store.SaveLevelResult(LevelResult{GameID: "tiles", LevelID: "level_0", Score: 100})
	store.SaveLevelResult(LevelResult{GameID: "tiles_single", LevelID: "level_0", Score: 200})

	if err := store.ClearScores("tiles"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	if high, _ := store.HighScore("tiles"); high != 0 {
		t.Errorf("tiles scores should be cleared, high = %d", high)
	}
	if high, _ := store.HighScore("tiles_single"); high != 200 {
		t.Errorf("other mode should be untouched, high = %d", high)
	}
	top, _ := store.TopLevelResults("level_0", 10)
	if len(top) != 1 || top[0].GameID != "tiles_single" {
		t.Errorf("only the other mode's level result should remain, got %+v", top)
	}
}

func TestStoreExpandHomePath(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	store, err := Open("~/.tiles/scores.db")
	if err != nil {
		t.Fatalf("Open() with ~ path failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(filepath.Join(home, ".tiles", "scores.db")); err != nil {
		t.Errorf("database not created under home: %v", err)
	}
}
