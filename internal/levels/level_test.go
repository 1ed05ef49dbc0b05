package levels_test

import (
	"errors"
	"testing"

	"github.com/vovakirdan/tui-tiles/internal/levels"
)

func TestValidate(t *testing.T) {
	valid := func() levels.Level {
		return levels.Level{
			ID:          "ok",
			Tiles:       [][]int{{1, 1, 1}, {1, 0, 1}},
			TargetScore: 100,
			Moves:       5,
		}
	}

	tests := []struct {
		name   string
		mutate func(*levels.Level)
		code   string
	}{
		{"valid", func(*levels.Level) {}, ""},
		{"missing id", func(l *levels.Level) { l.ID = "" }, "MISSING_ID"},
		{"empty shape", func(l *levels.Level) { l.Tiles = nil }, "EMPTY_SHAPE"},
		{"ragged", func(l *levels.Level) { l.Tiles[1] = []int{1} }, "RAGGED_SHAPE"},
		{"bad tile", func(l *levels.Level) { l.Tiles[0][0] = 3 }, "INVALID_TILE"},
		{"all holes", func(l *levels.Level) { l.Tiles = [][]int{{0, 0}} }, "NO_PLAYABLE_CELLS"},
		{"zero target", func(l *levels.Level) { l.TargetScore = 0 }, "INVALID_TARGET"},
		{"negative moves", func(l *levels.Level) { l.Moves = -1 }, "INVALID_MOVES"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			lvl := valid()
			tc.mutate(&lvl)

			err := lvl.Validate()
			if tc.code == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}

			var verr levels.ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("expected ValidationError, got %v", err)
			}
			if verr.Code != tc.code {
				t.Errorf("expected code %s, got %s", tc.code, verr.Code)
			}
		})
	}
}

func TestLayoutCarriesScoring(t *testing.T) {
	lvl := levels.Level{ID: "x", Tiles: [][]int{{1}}, TargetScore: 42, Moves: 7}

	layout := lvl.Layout()
	if layout.TargetScore != 42 || layout.MaximumMoves != 7 || len(layout.Tiles) != 1 {
		t.Errorf("unexpected layout %+v", layout)
	}
}

func TestTitleFallsBackToID(t *testing.T) {
	lvl := levels.Level{ID: "level_9"}
	if lvl.Title() != "level_9" {
		t.Errorf("expected ID as title, got %q", lvl.Title())
	}
	lvl.Name = "Finale"
	if lvl.Title() != "Finale" {
		t.Errorf("expected name as title, got %q", lvl.Title())
	}
}
