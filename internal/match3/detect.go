package match3

import (
	"fmt"

	"github.com/zyedidia/generic/mapset"
)

// DetectPossibleSwaps recomputes the set of legal swaps for the current board
// and returns its size.
//
// Every occupied cell is tentatively swapped with its right and upper
// neighbour; the swap is legal when either perturbed cell then sits on a run
// of three. The board is restored after each trial.
func (b *Board) DetectPossibleSwaps() int {
	set := mapset.New[SwapKey]()
	var list []Swap

	for row := range b.rows {
		for col := range b.cols {
			p := b.pieceAt(col, row)
			if p == nil {
				continue
			}

			if col < b.cols-1 {
				if other := b.pieceAt(col+1, row); other != nil && b.swapMakesChain(col, row, col+1, row) {
					s := NewSwap(p, other)
					set.Put(s.Key())
					list = append(list, s)
				}
			}

			if row < b.rows-1 {
				if other := b.pieceAt(col, row+1); other != nil && b.swapMakesChain(col, row, col, row+1) {
					s := NewSwap(p, other)
					set.Put(s.Key())
					list = append(list, s)
				}
			}
		}
	}

	b.possible = set
	b.possibleList = list
	b.detected = true
	b.swapsVersion = b.version
	return set.Size()
}

// swapMakesChain exchanges two occupied cells in the grid only, checks both
// for a run and swaps them back. Piece coordinates are left untouched.
func (b *Board) swapMakesChain(c1, r1, c2, r2 int) bool {
	p1 := b.pieceAt(c1, r1)
	p2 := b.pieceAt(c2, r2)

	b.pieces.Set(c1, r1, p2)
	b.pieces.Set(c2, r2, p1)
	found := b.hasChainAt(c1, r1) || b.hasChainAt(c2, r2)
	b.pieces.Set(c1, r1, p1)
	b.pieces.Set(c2, r2, p2)

	return found
}

// hasChainAt reports whether the piece at (col, row) is part of a run of three
// or more along either axis.
func (b *Board) hasChainAt(col, row int) bool {
	t := b.typeAt(col, row)
	if t == PieceUnknown {
		return false
	}

	length := 1
	for c := col - 1; c >= 0 && b.typeAt(c, row) == t; c-- {
		length++
	}
	for c := col + 1; c < b.cols && b.typeAt(c, row) == t; c++ {
		length++
	}
	if length >= MinChainLength {
		return true
	}

	length = 1
	for r := row - 1; r >= 0 && b.typeAt(col, r) == t; r-- {
		length++
	}
	for r := row + 1; r < b.rows && b.typeAt(col, r) == t; r++ {
		length++
	}
	return length >= MinChainLength
}

// PossibleSwaps returns the legal swaps found by the last detection pass, in
// scan order.
func (b *Board) PossibleSwaps() []Swap {
	out := make([]Swap, len(b.possibleList))
	copy(out, b.possibleList)
	return out
}

// IsLegal reports whether s is in the legal-swap set.
// Panics when the set was never computed or the board changed since.
func (b *Board) IsLegal(s Swap) bool {
	if !b.detected {
		panic("match3: IsLegal called before DetectPossibleSwaps")
	}
	if b.swapsVersion != b.version {
		panic(fmt.Sprintf("match3: legal swaps are stale (computed at version %d, board at %d)", b.swapsVersion, b.version))
	}
	if s.A == nil || s.B == nil {
		return false
	}
	return b.possible.Has(s.Key())
}

// DetectMatches returns the chains currently on the board without removing
// them: horizontal chains first, then vertical, each in scan order.
func (b *Board) DetectMatches() []*Chain {
	chains := b.detectHorizontalMatches()
	return append(chains, b.detectVerticalMatches()...)
}

// RemoveMatches detects every chain, assigns its base score and clears its
// pieces from the board. A piece shared by a horizontal and a vertical chain
// appears in both chains and is removed once.
func (b *Board) RemoveMatches() []*Chain {
	chains := b.DetectMatches()
	if len(chains) == 0 {
		return nil
	}

	removed := mapset.New[uint64]()
	for _, chain := range chains {
		chain.Score = baseChainScore(b.baseScore, chain.Length())
		for _, p := range chain.Pieces {
			if removed.Has(p.ID) {
				continue
			}
			removed.Put(p.ID)
			b.pieces.Clear(p.Column, p.Row)
		}
	}
	b.touch()

	return chains
}

// detectHorizontalMatches scans each row left to right. A run is grown to its
// full length and the scan resumes after it.
func (b *Board) detectHorizontalMatches() []*Chain {
	var chains []*Chain

	for row := range b.rows {
		col := 0
		for col < b.cols-2 {
			t := b.typeAt(col, row)
			if t != PieceUnknown && b.typeAt(col+1, row) == t && b.typeAt(col+2, row) == t {
				chain := &Chain{Kind: Horizontal}
				for col < b.cols && b.typeAt(col, row) == t {
					chain.Pieces = append(chain.Pieces, b.pieceAt(col, row))
					col++
				}
				chains = append(chains, chain)
				continue
			}
			col++
		}
	}

	return chains
}

// detectVerticalMatches scans each column bottom to top.
func (b *Board) detectVerticalMatches() []*Chain {
	var chains []*Chain

	for col := range b.cols {
		row := 0
		for row < b.rows-2 {
			t := b.typeAt(col, row)
			if t != PieceUnknown && b.typeAt(col, row+1) == t && b.typeAt(col, row+2) == t {
				chain := &Chain{Kind: Vertical}
				for row < b.rows && b.typeAt(col, row) == t {
					chain.Pieces = append(chain.Pieces, b.pieceAt(col, row))
					row++
				}
				chains = append(chains, chain)
				continue
			}
			row++
		}
	}

	return chains
}
