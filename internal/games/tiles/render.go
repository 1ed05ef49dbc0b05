package tiles

import (
	"fmt"
	"unicode/utf8"

	"github.com/vovakirdan/tui-tiles/internal/core"
	"github.com/vovakirdan/tui-tiles/internal/match3"
)

const (
	cellWidth    = 3 // Glyph with one column of padding each side
	hudHeight    = 3
	footerHeight = 2
	minHUDWidth  = 36
)

// pieceStyle is the look of one piece type.
type pieceStyle struct {
	glyph rune
	color core.Color
}

var pieceStyles = map[match3.PieceType]pieceStyle{
	match3.PieceCroissant:   {'◆', core.ColorYellow},
	match3.PieceCupcake:     {'♥', core.ColorPink},
	match3.PieceDanish:      {'■', core.ColorOrange},
	match3.PieceDonut:       {'●', core.ColorRed},
	match3.PieceMacaroon:    {'▲', core.ColorGreen},
	match3.PieceSugarCookie: {'♣', core.ColorCyan},
}

// styleOf returns the look of t, with a neutral fallback.
func styleOf(t match3.PieceType) pieceStyle {
	if s, ok := pieceStyles[t]; ok {
		return s
	}
	return pieceStyle{'?', core.ColorWhite}
}

// Render draws the game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.tooSmall {
		g.renderTooSmall(dst)
		return
	}

	box := g.boardRect()
	g.renderHUD(dst, box)
	if g.turn != nil {
		g.renderBoard(dst, box)
	}
	g.renderFooter(dst, box)
	g.renderOverlays(dst, box)
}

// boardRect returns the framed board area, centered horizontally under the HUD.
func (g *Game) boardRect() core.Rect {
	lvl := g.level()
	w := lvl.Width()*cellWidth + 2
	h := lvl.Height() + 2
	return core.NewRect(max(0, (g.screenW-w)/2), hudHeight, w, h)
}

// renderTooSmall shows a "window too small" message.
func (g *Game) renderTooSmall(dst *core.Screen) {
	y := g.screenH / 2
	dst.DrawTextCentered(y, "Window too small", core.ColorBrightRed)
	dst.DrawTextCentered(y+1, "Please resize terminal", core.ColorDefault)
}

// renderHUD draws level, score, moves and the current notice.
func (g *Game) renderHUD(dst *core.Screen, box core.Rect) {
	lvl := g.level()
	title := fmt.Sprintf("Level %d/%d: %s", g.levelIndex+1, len(g.opts.Levels), lvl.Title())
	if g.mode == ModeSingle {
		title = lvl.Title()
	}
	dst.DrawTextCentered(0, title, core.ColorBrightWhite)

	left := max(0, min(box.X, (g.screenW-minHUDWidth)/2))
	right := max(box.Right(), left+minHUDWidth)

	score, moves := 0, 0
	if g.turn != nil {
		score, moves = g.turn.Score(), g.turn.MovesLeft()
	}
	scoreStr := fmt.Sprintf("Score %d/%d", score, lvl.TargetScore)
	scoreColor := core.ColorDefault
	if score >= lvl.TargetScore {
		scoreColor = core.ColorBrightGreen
	}
	dst.DrawTextColored(left, 1, scoreStr, scoreColor)

	movesStr := fmt.Sprintf("Moves %d", moves)
	movesColor := core.ColorDefault
	if moves <= 3 {
		movesColor = core.ColorBrightYellow
	}
	dst.DrawTextColored(right-utf8.RuneCountInString(movesStr), 1, movesStr, movesColor)

	if g.notice != "" {
		dst.DrawTextCentered(2, g.notice, core.ColorBrightYellow)
	}
}

// renderBoard draws the frame, the pieces and the cursor.
func (g *Game) renderBoard(dst *core.Screen, box core.Rect) {
	dst.DrawBox(box, core.ColorGray)

	b := g.turn.Board()
	marks := g.anim.marks()
	popped := g.anim.poppedTypes()
	hinted := g.hintedCells()

	for row := range b.Rows() {
		// Row 0 is the bottom of the board
		y := box.Y + 1 + (b.Rows() - 1 - row)
		for col := range b.Columns() {
			x := box.X + 1 + col*cellWidth
			if !b.IsPlayable(col, row) {
				continue
			}

			pos := cellPos{col, row}
			cell := core.Cell{Rune: '·', Color: core.ColorGray}
			if p, ok := b.PieceAt(col, row); ok {
				st := styleOf(p.Type)
				cell = core.Cell{Rune: st.glyph, Color: st.color}
			} else if t, ok := popped[pos]; ok {
				cell = core.Cell{Rune: styleOf(t).glyph, Color: core.ColorBrightWhite}
			}

			switch marks[pos] {
			case markMoved:
				cell.Attr |= core.AttrBold
			case markRejected:
				cell.Color = core.ColorBrightRed
				cell.Attr |= core.AttrReverse
			case markPopped:
				cell.Attr |= core.AttrBold | core.AttrBlink
			case markNew:
				cell.Attr |= core.AttrBold
			}
			if hinted[pos] {
				cell.Attr |= core.AttrBlink
			}

			left, right := core.Cell{Rune: ' '}, core.Cell{Rune: ' '}
			if g.selected != nil && g.selected.Column == col && g.selected.Row == row {
				left = core.Cell{Rune: '[', Color: core.ColorBrightWhite, Attr: core.AttrBold}
				right = core.Cell{Rune: ']', Color: core.ColorBrightWhite, Attr: core.AttrBold}
			}
			if col == g.cursorCol && row == g.cursorRow && !g.anim.active() {
				left.Attr |= core.AttrReverse
				cell.Attr |= core.AttrReverse
				right.Attr |= core.AttrReverse
			}

			dst.SetCell(x, y, left)
			dst.SetCell(x+1, y, cell)
			dst.SetCell(x+2, y, right)
		}
	}

	// The cursor may rest on a hole
	if !g.anim.active() && !b.IsPlayable(g.cursorCol, g.cursorRow) {
		x := box.X + 1 + g.cursorCol*cellWidth
		y := box.Y + 1 + (b.Rows() - 1 - g.cursorRow)
		for i := range cellWidth {
			dst.SetCell(x+i, y, core.Cell{Rune: ' ', Attr: core.AttrReverse})
		}
	}
}

// hintedCells returns the two cells of the shown hint.
func (g *Game) hintedCells() map[cellPos]bool {
	if g.hint == nil {
		return nil
	}
	return map[cellPos]bool{
		{g.hint.A.Column, g.hint.A.Row}: true,
		{g.hint.B.Column, g.hint.B.Row}: true,
	}
}

// renderFooter draws the control hints under the board.
func (g *Game) renderFooter(dst *core.Screen, box core.Rect) {
	dst.DrawTextCentered(box.Bottom()+1, g.Controls(), core.ColorGray)
}

// renderOverlays draws game state overlays.
func (g *Game) renderOverlays(dst *core.Screen, box core.Rect) {
	centerX := box.X + box.W/2
	centerY := box.Y + box.H/2
	lvl := g.level()

	if g.paused {
		g.drawOverlay(dst, centerX, centerY, "PAUSED", "Press P to resume")
		return
	}

	if g.levelCleared {
		next := g.opts.Levels[g.levelIndex+1]
		g.drawOverlay(dst, centerX, centerY,
			"LEVEL CLEARED!",
			fmt.Sprintf("Score %d", g.turn.Score()),
			"Next: "+next.Title())
		return
	}

	if g.won {
		title := "CAMPAIGN COMPLETE!"
		if g.mode == ModeSingle {
			title = "LEVEL COMPLETE!"
		}
		g.drawOverlay(dst, centerX, centerY, title, fmt.Sprintf("Total %d", g.Score()), "Press R to restart")
		return
	}

	if g.gameOver {
		reason := "OUT OF MOVES"
		if g.broken {
			reason = g.notice
		}
		g.drawOverlay(dst, centerX, centerY,
			reason,
			fmt.Sprintf("Target %d, total %d", lvl.TargetScore, g.Score()),
			"Press R to restart")
	}
}

// drawOverlay draws a centered text box.
func (g *Game) drawOverlay(dst *core.Screen, centerX, centerY int, lines ...string) {
	maxLen := 0
	for _, line := range lines {
		maxLen = max(maxLen, utf8.RuneCountInString(line))
	}

	r := core.NewRect(centerX-(maxLen+4)/2, centerY-(len(lines)+2)/2, maxLen+4, len(lines)+2)
	for y := r.Y; y < r.Bottom(); y++ {
		for x := r.X; x < r.Right(); x++ {
			dst.Set(x, y, ' ')
		}
	}
	dst.DrawBox(r, core.ColorBrightWhite)

	for i, line := range lines {
		x := centerX - utf8.RuneCountInString(line)/2
		dst.DrawTextColored(x, r.Y+1+i, line, core.ColorBrightWhite)
	}
}

// Controls returns the control hints for the game.
func (g *Game) Controls() string {
	return "Arrows: Move | Enter: Select | H: Hint | P: Pause | Q: Quit"
}
