package tiles

import "github.com/vovakirdan/tui-tiles/internal/match3"

// GameStateType represents the current game state.
type GameStateType string

const (
	StatePlaying      GameStateType = "playing"
	StateResolving    GameStateType = "resolving"
	StateLevelCleared GameStateType = "level_cleared"
	StateGameOver     GameStateType = "game_over"
	StateWin          GameStateType = "win"
	StatePausedSmall  GameStateType = "paused_small_window"
)

// Snapshot captures the complete game state for determinism testing and replay.
type Snapshot struct {
	Tick      uint64
	Mode      string
	Level     int    // 1-indexed for display
	LevelID   string // ID of the level in play
	Target    int
	Score     int // Current level score
	Total     int // Run score including finished levels
	MovesLeft int
	Cursor    [2]int // Column, row
	Board     [][]match3.PieceType
	State     GameStateType
}

// Snapshot returns the current game snapshot for determinism verification.
// Board is indexed [row][column] with row 0 at the bottom; holes and empty
// cells are PieceUnknown.
func (g *Game) Snapshot() Snapshot {
	state := StatePlaying
	switch {
	case g.tooSmall:
		state = StatePausedSmall
	case g.won:
		state = StateWin
	case g.gameOver:
		state = StateGameOver
	case g.levelCleared:
		state = StateLevelCleared
	case g.anim.active():
		state = StateResolving
	}

	snap := Snapshot{
		Tick:    g.tick,
		Mode:    string(g.mode),
		Level:   g.levelIndex + 1,
		LevelID: g.level().ID,
		Target:  g.level().TargetScore,
		Total:   g.Score(),
		Cursor:  [2]int{g.cursorCol, g.cursorRow},
		State:   state,
	}
	if g.turn == nil {
		return snap
	}

	b := g.turn.Board()
	snap.Score = g.turn.Score()
	snap.MovesLeft = g.turn.MovesLeft()
	snap.Board = make([][]match3.PieceType, b.Rows())
	for row := range b.Rows() {
		snap.Board[row] = make([]match3.PieceType, b.Columns())
		for col := range b.Columns() {
			if p, ok := b.PieceAt(col, row); ok {
				snap.Board[row][col] = p.Type
			}
		}
	}
	return snap
}
