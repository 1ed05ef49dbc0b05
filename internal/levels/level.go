// Package levels loads level definitions for the tile puzzle.
// It depends on match3 but match3 does not depend on levels.
package levels

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/tui-tiles/internal/match3"
)

// ErrLevelNotFound is returned when no level has the requested ID.
var ErrLevelNotFound = errors.New("level not found")

// Level represents a complete level definition.
type Level struct {
	ID          string
	Name        string
	Tiles       [][]int // Row-major, top row first; 1 = playable
	TargetScore int
	Moves       int
	FilePath    string
}

// Layout converts the level into board input.
func (l *Level) Layout() match3.Layout {
	return match3.Layout{
		Tiles:        l.Tiles,
		TargetScore:  l.TargetScore,
		MaximumMoves: l.Moves,
	}
}

// Width returns the number of columns.
func (l *Level) Width() int {
	if len(l.Tiles) == 0 {
		return 0
	}
	return len(l.Tiles[0])
}

// Height returns the number of rows.
func (l *Level) Height() int {
	return len(l.Tiles)
}

// Title returns the display name, falling back to the ID.
func (l *Level) Title() string {
	if l.Name != "" {
		return l.Name
	}
	return l.ID
}

// ValidationError contains details about validation failure.
type ValidationError struct {
	Code    string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Validate checks that the level can be turned into a board.
func (l *Level) Validate() error {
	if l.ID == "" {
		return ValidationError{Code: "MISSING_ID", Message: "level has no id"}
	}
	if len(l.Tiles) == 0 || len(l.Tiles[0]) == 0 {
		return ValidationError{Code: "EMPTY_SHAPE", Message: "tiles must have at least one row and column"}
	}

	width := len(l.Tiles[0])
	playable := 0
	for i, line := range l.Tiles {
		if len(line) != width {
			return ValidationError{
				Code:    "RAGGED_SHAPE",
				Message: fmt.Sprintf("row %d has %d tiles, expected %d", i, len(line), width),
			}
		}
		for j, v := range line {
			if v != 0 && v != 1 {
				return ValidationError{
					Code:    "INVALID_TILE",
					Message: fmt.Sprintf("tile at row %d column %d is %d, expected 0 or 1", i, j, v),
				}
			}
			playable += v
		}
	}
	if playable == 0 {
		return ValidationError{Code: "NO_PLAYABLE_CELLS", Message: "level has no playable tile"}
	}

	if l.TargetScore <= 0 {
		return ValidationError{
			Code:    "INVALID_TARGET",
			Message: fmt.Sprintf("targetScore %d must be positive", l.TargetScore),
		}
	}
	if l.Moves <= 0 {
		return ValidationError{
			Code:    "INVALID_MOVES",
			Message: fmt.Sprintf("moves %d must be positive", l.Moves),
		}
	}

	return nil
}
