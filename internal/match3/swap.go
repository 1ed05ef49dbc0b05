package match3

import "fmt"

// Swap is an unordered exchange of two pieces.
// Swap{A: a, B: b} and Swap{A: b, B: a} describe the same request.
type Swap struct {
	A *Piece
	B *Piece
}

// SwapKey is the order-independent identity of a swap, usable as a map key.
type SwapKey struct {
	Lo uint64
	Hi uint64
}

// NewSwap creates a swap between a and b.
func NewSwap(a, b *Piece) Swap {
	return Swap{A: a, B: b}
}

// Key returns the normalized ID pair of the two pieces.
func (s Swap) Key() SwapKey {
	if s.A.ID <= s.B.ID {
		return SwapKey{Lo: s.A.ID, Hi: s.B.ID}
	}
	return SwapKey{Lo: s.B.ID, Hi: s.A.ID}
}

// Equal reports whether both swaps exchange the same two pieces.
func (s Swap) Equal(other Swap) bool {
	return (s.A == other.A && s.B == other.B) || (s.A == other.B && s.B == other.A)
}

// Adjacent reports whether the two pieces sit on orthogonally neighbouring cells.
func (s Swap) Adjacent() bool {
	dc := s.A.Column - s.B.Column
	dr := s.A.Row - s.B.Row
	return (dc == 0 && (dr == 1 || dr == -1)) || (dr == 0 && (dc == 1 || dc == -1))
}

// String returns a description for debugging.
func (s Swap) String() string {
	return fmt.Sprintf("swap %v <-> %v", s.A, s.B)
}
