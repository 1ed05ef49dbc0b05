package registry

import (
	"testing"

	"github.com/vovakirdan/tui-tiles/internal/config"
	"github.com/vovakirdan/tui-tiles/internal/core"
	"github.com/vovakirdan/tui-tiles/internal/levels"
)

type stubGame struct{ opts Options }

func (g *stubGame) ID() string { return "stub" }
func (g *stubGame) Title() string { return "Stub" }
func (g *stubGame) Reset(core.RuntimeConfig) {}
func (g *stubGame) Step(core.InputFrame) core.StepResult { return core.StepResult{} }
func (g *stubGame) Render(*core.Screen) {}
func (g *stubGame) State() core.GameState { return core.GameState{} }

func init() {
	Register("stub", "Stub", func(opts Options) Game { return &stubGame{opts: opts} })
}

func TestCreate(t *testing.T) {
	opts := Options{
		Levels:     []levels.Level{{ID: "a"}, {ID: "b"}},
		Config:     config.DefaultTilesConfig(),
		StartLevel: 1,
	}

	g, err := Create("stub", opts)
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if got := g.(*stubGame).opts.StartLevel; got != 1 {
		t.Errorf("options not passed through, StartLevel = %d", got)
	}
}

func TestCreateErrors(t *testing.T) {
	lvls := []levels.Level{{ID: "a"}}

	tests := []struct {
		name string
		id   string
		opts Options
	}{
		{"unknown id", "nope", Options{Levels: lvls}},
		{"no levels", "stub", Options{}},
		{"start past end", "stub", Options{Levels: lvls, StartLevel: 1}},
		{"negative start", "stub", Options{Levels: lvls, StartLevel: -1}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := Create(tc.id, tc.opts); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic on duplicate registration")
		}
	}()
	Register("stub", "Again", func(Options) Game { return &stubGame{} })
}

func TestListSortedWithTitles(t *testing.T) {
	if !Exists("stub") {
		t.Fatal("stub should be registered")
	}

	list := List()
	for i := 1; i < len(list); i++ {
		if list[i-1].ID >= list[i].ID {
			t.Errorf("list not sorted: %s >= %s", list[i-1].ID, list[i].ID)
		}
	}
	for _, info := range list {
		if info.ID == "stub" && info.Title != "Stub" {
			t.Errorf("title = %q, expected Stub", info.Title)
		}
	}
}
