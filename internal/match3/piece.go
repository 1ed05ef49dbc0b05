package match3

import "fmt"

// PieceType identifies a piece variant from the palette.
// Types are compared by equality only; the numeric order carries no meaning.
type PieceType uint8

const (
	PieceUnknown PieceType = iota
	PieceCroissant
	PieceCupcake
	PieceDanish
	PieceDonut
	PieceMacaroon
	PieceSugarCookie
)

// MaxPalette is the number of placeable piece types.
const MaxPalette = int(PieceSugarCookie)

// String returns the presentation identifier of the type.
func (t PieceType) String() string {
	switch t {
	case PieceCroissant:
		return "Croissant"
	case PieceCupcake:
		return "Cupcake"
	case PieceDanish:
		return "Danish"
	case PieceDonut:
		return "Donut"
	case PieceMacaroon:
		return "Macaroon"
	case PieceSugarCookie:
		return "SugarCookie"
	default:
		return "Unknown"
	}
}

// Piece is a typed token on the board.
//
// Column and Row always mirror the piece's slot in the board's occupancy
// grid; only the Board changes them. ID is a per-board handle that gives the
// piece its identity, since many pieces share a Type.
type Piece struct {
	ID     uint64
	Column int
	Row    int
	Type   PieceType
}

// String returns a compact description for debugging and test output.
func (p *Piece) String() string {
	if p == nil {
		return "<nil>"
	}
	return fmt.Sprintf("#%d %s@(%d,%d)", p.ID, p.Type, p.Column, p.Row)
}

// PlayableCell marks a coordinate that takes part in the simulation.
type PlayableCell struct{}
