package match3

import (
	"fmt"
	"strings"
)

// ChainKind is the axis a chain runs along.
type ChainKind uint8

const (
	Horizontal ChainKind = iota
	Vertical
)

// String returns the axis name.
func (k ChainKind) String() string {
	if k == Vertical {
		return "Vertical"
	}
	return "Horizontal"
}

// MinChainLength is the shortest run that counts as a match.
const MinChainLength = 3

// Chain is one run of three or more same-typed pieces along one axis.
// Pieces are ordered left to right (horizontal) or bottom to top (vertical).
type Chain struct {
	Kind   ChainKind
	Pieces []*Piece
	Score  int
}

// Length returns the number of pieces in the chain.
func (c *Chain) Length() int {
	return len(c.Pieces)
}

// Type returns the shared piece type of the chain.
func (c *Chain) Type() PieceType {
	if len(c.Pieces) == 0 {
		return PieceUnknown
	}
	return c.Pieces[0].Type
}

// String returns a description for debugging.
func (c *Chain) String() string {
	parts := make([]string, len(c.Pieces))
	for i, p := range c.Pieces {
		parts[i] = fmt.Sprintf("(%d,%d)", p.Column, p.Row)
	}
	return fmt.Sprintf("%s %s x%d [%s] score=%d",
		c.Kind, c.Type(), c.Length(), strings.Join(parts, " "), c.Score)
}

// baseChainScore returns the unmultiplied score of a run of the given length.
func baseChainScore(baseUnit, length int) int {
	return baseUnit * (length - 2)
}
