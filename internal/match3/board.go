// Package match3 implements the board simulation of a match-3 tile puzzle:
// grid storage, the initial deal, legal-swap precomputation, chain detection,
// removal, gravity fill, top-up and the turn/score controller.
//
// The package is pure and deterministic for a given random source. It does no
// I/O and no locking; a Board must be driven by one turn at a time.
package match3

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/zyedidia/generic/mapset"
)

// Defaults applied by NewBoard when a Params field is zero.
const (
	DefaultBaseScore       = 60
	DefaultMaxDealAttempts = 1000
)

var (
	// ErrInvalidLayout is returned when a level shape or its scoring data is malformed.
	ErrInvalidLayout = errors.New("match3: invalid layout")

	// ErrNoLegalSwaps is returned when no deal with a legal swap was found.
	ErrNoLegalSwaps = errors.New("match3: no deal with a legal swap")
)

// Layout is the content a board is built from.
// Tiles is row-major with the top row first; 1 marks a playable cell, 0 a hole.
type Layout struct {
	Tiles        [][]int
	TargetScore  int
	MaximumMoves int
}

// Params tunes the simulation. Zero fields take defaults.
type Params struct {
	Palette         int        // Number of piece types in play (2..MaxPalette)
	BaseScore       int        // Points per chain unit: score = BaseScore * (length-2)
	MaxDealAttempts int        // Candidate boards tried by Shuffle
	Rand            *rand.Rand // Random source; nil means a fixed seed of 1
}

// Board owns the playable-cell mask and the piece occupancy of one level.
type Board struct {
	cols   int
	rows   int
	tiles  *Grid[PlayableCell]
	pieces *Grid[*Piece]

	targetScore  int
	maximumMoves int

	palette         int
	baseScore       int
	maxDealAttempts int
	rng             *rand.Rand
	nextID          uint64

	// version changes on every mutation of the occupancy grid.
	version      uint64
	detected     bool
	swapsVersion uint64
	possible     mapset.Set[SwapKey]
	possibleList []Swap
}

// NewBoard validates the layout and marks its playable cells.
// The returned board holds no pieces until Shuffle is called.
func NewBoard(layout Layout, params Params) (*Board, error) {
	if err := validateLayout(layout); err != nil {
		return nil, err
	}

	palette := params.Palette
	if palette == 0 {
		palette = MaxPalette
	}
	if palette < 2 || palette > MaxPalette {
		return nil, fmt.Errorf("%w: palette %d outside [2,%d]", ErrInvalidLayout, palette, MaxPalette)
	}

	baseScore := params.BaseScore
	if baseScore <= 0 {
		baseScore = DefaultBaseScore
	}
	attempts := params.MaxDealAttempts
	if attempts <= 0 {
		attempts = DefaultMaxDealAttempts
	}
	rng := params.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(1))
	}

	rows := len(layout.Tiles)
	cols := len(layout.Tiles[0])

	b := &Board{
		cols:            cols,
		rows:            rows,
		tiles:           NewGrid[PlayableCell](cols, rows),
		pieces:          NewGrid[*Piece](cols, rows),
		targetScore:     layout.TargetScore,
		maximumMoves:    layout.MaximumMoves,
		palette:         palette,
		baseScore:       baseScore,
		maxDealAttempts: attempts,
		rng:             rng,
		possible:        mapset.New[SwapKey](),
	}

	// The first line of the shape is the top of the board.
	for i, line := range layout.Tiles {
		row := rows - 1 - i
		for col, v := range line {
			if v == 1 {
				b.tiles.Set(col, row, PlayableCell{})
			}
		}
	}

	return b, nil
}

// validateLayout checks the shape and scoring data.
func validateLayout(layout Layout) error {
	if len(layout.Tiles) == 0 || len(layout.Tiles[0]) == 0 {
		return fmt.Errorf("%w: empty shape", ErrInvalidLayout)
	}

	width := len(layout.Tiles[0])
	playable := 0
	for i, line := range layout.Tiles {
		if len(line) != width {
			return fmt.Errorf("%w: line %d has %d cells, want %d", ErrInvalidLayout, i, len(line), width)
		}
		for col, v := range line {
			switch v {
			case 0:
			case 1:
				playable++
			default:
				return fmt.Errorf("%w: line %d column %d: tile value %d is not 0 or 1", ErrInvalidLayout, i, col, v)
			}
		}
	}
	if playable == 0 {
		return fmt.Errorf("%w: no playable cell", ErrInvalidLayout)
	}
	if layout.TargetScore <= 0 {
		return fmt.Errorf("%w: target score %d must be positive", ErrInvalidLayout, layout.TargetScore)
	}
	if layout.MaximumMoves <= 0 {
		return fmt.Errorf("%w: maximum moves %d must be positive", ErrInvalidLayout, layout.MaximumMoves)
	}
	return nil
}

// Columns returns the board width.
func (b *Board) Columns() int { return b.cols }

// Rows returns the board height.
func (b *Board) Rows() int { return b.rows }

// TargetScore returns the score that wins the level.
func (b *Board) TargetScore() int { return b.targetScore }

// MaximumMoves returns the move budget of the level.
func (b *Board) MaximumMoves() int { return b.maximumMoves }

// Palette returns the number of piece types in play.
func (b *Board) Palette() int { return b.palette }

// BaseScore returns the points awarded per chain unit.
func (b *Board) BaseScore() int { return b.baseScore }

// Version returns a counter that changes whenever pieces move, appear or vanish.
func (b *Board) Version() uint64 { return b.version }

// IsPlayable reports whether the cell takes part in the simulation.
func (b *Board) IsPlayable(col, row int) bool {
	return b.tiles.Has(col, row)
}

// PieceAt returns the piece occupying (col, row), if any.
// Panics on out-of-bounds coordinates.
func (b *Board) PieceAt(col, row int) (*Piece, bool) {
	return b.pieces.Get(col, row)
}

// pieceAt is PieceAt for internal scans; returns nil for empty cells.
func (b *Board) pieceAt(col, row int) *Piece {
	p, _ := b.pieces.Get(col, row)
	return p
}

// typeAt returns the type at (col, row), or PieceUnknown when the cell is
// empty or outside the board.
func (b *Board) typeAt(col, row int) PieceType {
	if !b.pieces.InBounds(col, row) {
		return PieceUnknown
	}
	if p := b.pieceAt(col, row); p != nil {
		return p.Type
	}
	return PieceUnknown
}

// Pieces returns every piece on the board in scan order (rows bottom to top,
// columns left to right).
func (b *Board) Pieces() []*Piece {
	pieces := make([]*Piece, 0, b.pieces.Count())
	for row := range b.rows {
		for col := range b.cols {
			if p := b.pieceAt(col, row); p != nil {
				pieces = append(pieces, p)
			}
		}
	}
	return pieces
}

// PieceCount returns the number of occupied cells.
func (b *Board) PieceCount() int {
	return b.pieces.Count()
}

// PlayableCount returns the number of playable cells.
func (b *Board) PlayableCount() int {
	return b.tiles.Count()
}

// touch records a mutation of the occupancy grid.
func (b *Board) touch() {
	b.version++
}

// newPiece creates a piece with a fresh ID and places it at (col, row).
func (b *Board) newPiece(col, row int, t PieceType) *Piece {
	b.nextID++
	p := &Piece{ID: b.nextID, Column: col, Row: row, Type: t}
	b.pieces.Set(col, row, p)
	return p
}

// randomType draws a type uniformly from the palette.
func (b *Board) randomType() PieceType {
	return PieceType(b.rng.Intn(b.palette) + 1)
}

// Shuffle deals a fresh board: every playable cell gets a piece, no run of
// three exists, and at least one legal swap is available. The legal-swap set
// is left computed for the new board. Returns the new pieces in scan order.
func (b *Board) Shuffle() ([]*Piece, error) {
	for attempt := 0; attempt < b.maxDealAttempts; attempt++ {
		pieces, ok := b.createInitialPieces()
		if !ok {
			continue
		}
		if b.DetectPossibleSwaps() > 0 {
			return pieces, nil
		}
	}

	b.pieces.Reset()
	b.touch()
	return nil, fmt.Errorf("%w after %d attempts", ErrNoLegalSwaps, b.maxDealAttempts)
}

// createInitialPieces fills every playable cell in scan order. A draw that
// would complete a run with the two cells to the left or the two cells below
// is rejected; those cells are final because they come earlier in the scan.
// Returns false when some cell admits no type at all.
func (b *Board) createInitialPieces() ([]*Piece, bool) {
	b.pieces.Reset()
	b.touch()

	pieces := make([]*Piece, 0, b.tiles.Count())
	for row := range b.rows {
		for col := range b.cols {
			if !b.tiles.Has(col, row) {
				continue
			}
			t, ok := b.drawInitialType(col, row)
			if !ok {
				return nil, false
			}
			pieces = append(pieces, b.newPiece(col, row, t))
		}
	}
	return pieces, true
}

// drawInitialType picks a uniformly random type among those that do not
// complete a run at (col, row).
func (b *Board) drawInitialType(col, row int) (PieceType, bool) {
	for _, i := range b.rng.Perm(b.palette) {
		t := PieceType(i + 1)
		if !b.completesRun(col, row, t) {
			return t, true
		}
	}
	return PieceUnknown, false
}

// completesRun reports whether placing t at (col, row) makes a run of three
// with the two earlier cells in the same row or the same column.
func (b *Board) completesRun(col, row int, t PieceType) bool {
	if col >= 2 && b.typeAt(col-1, row) == t && b.typeAt(col-2, row) == t {
		return true
	}
	if row >= 2 && b.typeAt(col, row-1) == t && b.typeAt(col, row-2) == t {
		return true
	}
	return false
}

// PerformSwap exchanges the two pieces and their stored coordinates.
// Legality is not checked; call IsLegal first. Panics if either piece is not
// on this board at its recorded position.
func (b *Board) PerformSwap(s Swap) {
	b.mustOwn(s.A)
	b.mustOwn(s.B)

	aCol, aRow := s.A.Column, s.A.Row
	bCol, bRow := s.B.Column, s.B.Row

	b.pieces.Set(aCol, aRow, s.B)
	b.pieces.Set(bCol, bRow, s.A)
	s.A.Column, s.A.Row = bCol, bRow
	s.B.Column, s.B.Row = aCol, aRow

	b.touch()
}

// mustOwn panics unless p occupies the cell it claims to.
func (b *Board) mustOwn(p *Piece) {
	if p == nil {
		panic("match3: nil piece")
	}
	if !b.pieces.InBounds(p.Column, p.Row) || b.pieceAt(p.Column, p.Row) != p {
		panic(fmt.Sprintf("match3: piece %v is not on the board", p))
	}
}
