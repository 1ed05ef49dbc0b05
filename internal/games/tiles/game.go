// Package tiles implements the match-3 tile puzzle on top of the match3
// board engine. The game owns cursor, selection, hint and animation pacing;
// the board owns every rule.
package tiles

import (
	"math/rand"

	"github.com/vovakirdan/tui-tiles/internal/core"
	"github.com/vovakirdan/tui-tiles/internal/levels"
	"github.com/vovakirdan/tui-tiles/internal/match3"
	"github.com/vovakirdan/tui-tiles/internal/registry"
)

// Mode represents the game mode.
type Mode string

const (
	ModeCampaign Mode = "campaign" // Levels in order, starting at Options.StartLevel
	ModeSingle   Mode = "single"   // Only the start level
)

// Game implements the match-3 tile puzzle.
type Game struct {
	mode Mode
	opts registry.Options
	rng  *rand.Rand
	tick uint64

	levelIndex int
	turn       *match3.Turn
	banked     int // Score of the levels finished before the current one

	cursorCol int
	cursorRow int
	selected  *match3.Piece
	hint      *match3.Swap
	hintIndex int

	anim   animation
	notice string // One-line message under the HUD, e.g. "No moves left"

	// Screen dimensions
	screenW int
	screenH int

	// Game state flags
	gameOver        bool
	levelCleared    bool
	won             bool
	paused          bool
	tooSmall        bool
	broken          bool // Board could not be dealt
	levelClearTicks int

	events []core.Event
}

// New creates a campaign game.
func New(opts registry.Options) *Game {
	return &Game{mode: ModeCampaign, opts: opts}
}

// NewSingle creates a game that plays only the start level.
func NewSingle(opts registry.Options) *Game {
	return &Game{mode: ModeSingle, opts: opts}
}

func init() {
	registry.Register("tiles", "Tiles", func(opts registry.Options) registry.Game {
		return New(opts)
	})
	registry.Register("tiles_single", "Tiles (Single Level)", func(opts registry.Options) registry.Game {
		return NewSingle(opts)
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	if g.mode == ModeSingle {
		return "tiles_single"
	}
	return "tiles"
}

// Title returns the display name.
func (g *Game) Title() string {
	if g.mode == ModeSingle {
		return "Tiles (Single Level)"
	}
	return "Tiles"
}

// Reset initializes/restarts the game from the start level.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.tick = 0
	g.banked = 0
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH
	g.gameOver = false
	g.levelCleared = false
	g.won = false
	g.paused = false
	g.levelClearTicks = 0
	g.events = nil

	g.levelIndex = g.opts.StartLevel
	g.loadLevel()
}

// Resize adapts to new screen dimensions without losing progress.
func (g *Game) Resize(w, h int) {
	g.screenW = w
	g.screenH = h
	g.checkScreenSize()
}

// level returns the definition of the current level.
func (g *Game) level() *levels.Level {
	return &g.opts.Levels[g.levelIndex]
}

// loadLevel builds and deals a fresh board for the current level.
func (g *Game) loadLevel() {
	lvl := g.level()
	layout := lvl.Layout()
	layout.MaximumMoves = g.opts.Config.Moves(lvl.Moves)

	g.turn = nil
	g.selected = nil
	g.clearHint()
	g.anim = animation{}
	g.notice = ""
	g.broken = false

	board, err := match3.NewBoard(layout, match3.Params{
		Palette:         g.opts.Config.Board.Palette,
		BaseScore:       g.opts.Config.Board.BaseScore,
		MaxDealAttempts: g.opts.Config.Board.MaxDealAttempts,
		Rand:            g.rng,
	})
	if err != nil {
		g.fail("Level cannot be played")
		return
	}

	g.turn = match3.NewTurn(board)
	g.checkScreenSize()
	if _, err := g.turn.Shuffle(); err != nil {
		g.fail("No deal found for this level")
		return
	}

	g.cursorCol = board.Columns() / 2
	g.cursorRow = board.Rows() / 2
}

// fail ends the run on a level that cannot be played.
func (g *Game) fail(notice string) {
	g.broken = true
	g.notice = notice
	g.finishRun(false)
}

// checkScreenSize checks if the screen can hold the current board.
func (g *Game) checkScreenSize() {
	lvl := g.level()
	minW := max(lvl.Width()*cellWidth+2, minHUDWidth)
	minH := lvl.Height() + 2 + hudHeight + footerHeight
	g.tooSmall = g.screenW < minW || g.screenH < minH
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++

	if g.tooSmall {
		return g.result()
	}

	if in.Has(core.ActionPause) && !g.gameOver && !g.won {
		g.paused = !g.paused
	}
	if g.paused {
		return g.result()
	}

	if g.levelCleared {
		g.levelClearTicks++
		if g.levelClearTicks >= g.opts.Config.Animation.LevelClearTicks {
			g.advanceLevel()
		}
		return g.result()
	}

	if g.gameOver || g.won {
		return g.result()
	}

	// Input is ignored while a turn is being shown
	if g.anim.active() {
		g.updateAnimation()
		return g.result()
	}

	g.handleInput(in)
	return g.result()
}

// result packages the tick outcome and hands over pending events, including
// those raised by Reset before the first tick.
func (g *Game) result() core.StepResult {
	events := g.events
	g.events = nil
	return core.StepResult{State: g.State(), Events: events}
}

// handleInput applies one frame of player input to cursor and selection.
func (g *Game) handleInput(in core.InputFrame) {
	switch {
	case in.Has(core.ActionBack):
		g.selected = nil
		g.clearHint()
		return
	case in.Has(core.ActionHint):
		g.showHint()
		return
	case in.Has(core.ActionConfirm):
		g.selectAtCursor()
		return
	}

	for _, a := range []core.Action{core.ActionUp, core.ActionDown, core.ActionLeft, core.ActionRight} {
		if !in.Has(a) {
			continue
		}
		dc, dr, _ := a.Direction()
		if g.selected != nil {
			g.trySwap(dc, dr)
		} else {
			g.moveCursor(dc, dr)
		}
		return
	}
}

// moveCursor moves the cursor, staying inside the board rectangle.
func (g *Game) moveCursor(dc, dr int) {
	b := g.turn.Board()
	g.cursorCol = core.Clamp(g.cursorCol+dc, 0, b.Columns()-1)
	g.cursorRow = core.Clamp(g.cursorRow+dr, 0, b.Rows()-1)
}

// selectAtCursor toggles the selection on the piece under the cursor.
func (g *Game) selectAtCursor() {
	p, ok := g.turn.Board().PieceAt(g.cursorCol, g.cursorRow)
	if !ok {
		return
	}
	if g.selected == p {
		g.selected = nil
		return
	}
	g.selected = p
}

// trySwap plays the selected piece against its neighbour in direction (dc, dr).
// The cursor follows the selected piece to its neighbour.
func (g *Game) trySwap(dc, dr int) {
	a := g.selected
	col, row := a.Column+dc, a.Row+dr
	board := g.turn.Board()
	if col < 0 || col >= board.Columns() || row < 0 || row >= board.Rows() {
		return
	}
	b, ok := board.PieceAt(col, row)
	if !ok {
		return
	}
	s := match3.NewSwap(a, b)
	if !s.Adjacent() {
		return
	}

	g.selected = nil
	g.clearHint()
	g.notice = ""
	g.cursorCol, g.cursorRow = b.Column, b.Row
	g.startTurn(s)
}

// showHint points at a legal swap. Repeated hints cycle through all of them.
func (g *Game) showHint() {
	swaps := g.turn.Board().PossibleSwaps()
	if len(swaps) == 0 {
		return
	}
	s := swaps[g.hintIndex%len(swaps)]
	g.hintIndex++
	g.hint = &s
	g.cursorCol, g.cursorRow = s.A.Column, s.A.Row
}

func (g *Game) clearHint() {
	g.hint = nil
	g.hintIndex = 0
}

// settle runs after the last step of a turn. The turn reports a failed
// reshuffle as a loss; the resolution error only picks the notice.
func (g *Game) settle(res *match3.Resolution) {
	switch g.turn.Status() {
	case match3.StatusWon:
		g.finishLevel(true)
	case match3.StatusLost:
		if res.Err() != nil {
			g.notice = "No moves left"
			g.broken = true
		}
		g.finishLevel(false)
	}
}

// finishLevel reports the level outcome and moves the run on.
func (g *Game) finishLevel(won bool) {
	b := g.turn.Board()
	g.events = append(g.events, core.Event{
		Kind:      core.EventLevelFinished,
		LevelID:   g.level().ID,
		Score:     g.turn.Score(),
		Won:       won,
		MovesUsed: b.MaximumMoves() - g.turn.MovesLeft(),
	})

	switch {
	case !won:
		g.finishRun(false)
	case g.mode == ModeCampaign && g.levelIndex < len(g.opts.Levels)-1:
		g.levelCleared = true
		g.levelClearTicks = 0
	default:
		g.finishRun(true)
	}
}

// finishRun ends the game and reports the run total.
func (g *Game) finishRun(won bool) {
	g.won = won
	g.gameOver = !won
	g.events = append(g.events, core.Event{
		Kind:  core.EventGameFinished,
		Score: g.Score(),
		Won:   won,
	})
}

// advanceLevel moves to the next level, keeping the run score.
func (g *Game) advanceLevel() {
	g.levelCleared = false
	g.levelClearTicks = 0
	g.banked += g.turn.Score()

	g.levelIndex++
	g.loadLevel()
}

// Score returns the run total: finished levels plus the current one.
func (g *Game) Score() int {
	if g.turn == nil {
		return g.banked
	}
	return g.banked + g.turn.Score()
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.Score(),
		GameOver: g.gameOver || g.won,
		Won:      g.won,
		Paused:   g.paused || g.tooSmall || g.levelCleared,
	}
}
