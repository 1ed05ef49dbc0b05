package tui

import (
	"path/filepath"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-tiles/internal/config"
	"github.com/vovakirdan/tui-tiles/internal/core"
	_ "github.com/vovakirdan/tui-tiles/internal/games/tiles"
	"github.com/vovakirdan/tui-tiles/internal/levels"
	"github.com/vovakirdan/tui-tiles/internal/registry"
	"github.com/vovakirdan/tui-tiles/internal/storage"
)

var testRuntime = core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 30, Seed: 7}

func openTestStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func builtinLevels(t *testing.T) []levels.Level {
	t.Helper()
	lvls, err := levels.Builtin()
	if err != nil {
		t.Fatalf("Builtin() failed: %v", err)
	}
	return lvls
}

func testSessionOptions(t *testing.T, store *storage.Store) SessionOptions {
	return SessionOptions{
		Levels: builtinLevels(t),
		Tiles:  config.DefaultTilesConfig(),
		Store:  store,
	}
}

func TestRecorderPersistsEvents(t *testing.T) {
	store := openTestStore(t)
	rec := recorder{store: store, logger: orDiscard(nil), gameID: "tiles"}

	rec.record([]core.Event{
		{Kind: core.EventLevelFinished, LevelID: "level_0", Score: 1200, Won: true, MovesUsed: 11},
		{Kind: core.EventLevelFinished, LevelID: "level_1", Score: 300, Won: false, MovesUsed: 20},
		{Kind: core.EventGameFinished, Score: 1500, Won: false},
	})

	results, err := store.TopLevelResults("level_0", 10)
	if err != nil {
		t.Fatalf("TopLevelResults() failed: %v", err)
	}
	if len(results) != 1 || results[0].GameID != "tiles" || !results[0].Won || results[0].MovesUsed != 11 {
		t.Errorf("unexpected level results %+v", results)
	}

	if high, _ := store.HighScore("tiles"); high != 1500 {
		t.Errorf("HighScore() = %d, expected 1500", high)
	}
}

func TestRecorderSkipsEmptyRuns(t *testing.T) {
	store := openTestStore(t)
	rec := recorder{store: store, logger: orDiscard(nil), gameID: "tiles"}

	rec.record([]core.Event{{Kind: core.EventGameFinished, Score: 0}})

	if scores, _ := store.TopScores("tiles", 10); len(scores) != 0 {
		t.Errorf("a zero-score run should not be saved, got %v", scores)
	}
}

func TestRecorderWithoutStore(t *testing.T) {
	rec := recorder{logger: orDiscard(nil), gameID: "tiles"}
	// Must not panic
	rec.record([]core.Event{
		{Kind: core.EventLevelFinished, LevelID: "level_0", Score: 10},
		{Kind: core.EventGameFinished, Score: 10},
	})
}

func TestGameModelTicksAndBack(t *testing.T) {
	game, err := registry.Create("tiles", registry.Options{
		Levels: builtinLevels(t),
		Config: config.DefaultTilesConfig(),
	})
	if err != nil {
		t.Fatalf("Create() failed: %v", err)
	}

	m := NewGameModel(game, nil, nil, testRuntime)
	m.Init()

	next, cmd := m.Update(TickMsg(time.Now()))
	m = next.(GameModel)
	if cmd == nil {
		t.Error("tick should schedule the next tick")
	}

	// Back while playing is for the game, not the session
	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	m = next.(GameModel)
	if m.BackToMenu() {
		t.Error("back should not leave a running game")
	}

	next, _ = m.Update(runeKey('p'))
	m = next.(GameModel)
	next, _ = m.Update(TickMsg(time.Now()))
	m = next.(GameModel)
	if !m.gameState.Paused {
		t.Fatal("game should be paused")
	}

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	m = next.(GameModel)
	if !m.BackToMenu() {
		t.Error("back should leave a paused game")
	}

	if m.View() == "" {
		t.Error("view should render the game")
	}
}

func TestGameModelResizeKeepsGame(t *testing.T) {
	game, err := registry.Create("tiles", registry.Options{
		Levels: builtinLevels(t),
		Config: config.DefaultTilesConfig(),
	})
	if err != nil {
		t.Fatalf("Create() failed: %v", err)
	}

	m := NewGameModel(game, nil, nil, testRuntime)
	m.Init()
	if _, ok := game.(Resizer); !ok {
		t.Fatal("tiles game should follow resizes")
	}

	before := m.View()
	next, _ := m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	m = next.(GameModel)
	if m.View() != before {
		t.Error("resize to the same size should keep the board")
	}
}
