package match3

import "testing"

type adjacentPair struct {
	a, b  *Piece
	legal bool
}

// adjacentPairs lists every occupied right and upper neighbour pair with its
// legality as reported by the detected set.
func adjacentPairs(b *Board) []adjacentPair {
	var pairs []adjacentPair
	for row := range b.Rows() {
		for col := range b.Columns() {
			p := b.pieceAt(col, row)
			if p == nil {
				continue
			}
			for _, n := range [][2]int{{col + 1, row}, {col, row + 1}} {
				if n[0] >= b.Columns() || n[1] >= b.Rows() {
					continue
				}
				other := b.pieceAt(n[0], n[1])
				if other == nil {
					continue
				}
				pairs = append(pairs, adjacentPair{a: p, b: other, legal: b.IsLegal(NewSwap(p, other))})
			}
		}
	}
	return pairs
}

func TestDetectPossibleSwapsIsExact(t *testing.T) {
	for seed := int64(1); seed <= 25; seed++ {
		b := newSeededBoard(t, shapedLayout, MaxPalette, seed)
		if _, err := b.Shuffle(); err != nil {
			t.Fatalf("seed %d: Shuffle failed: %v", seed, err)
		}

		pairs := adjacentPairs(b)
		legal := 0
		for _, pair := range pairs {
			if pair.legal {
				legal++
			}
		}
		if legal != len(b.PossibleSwaps()) {
			t.Fatalf("seed %d: %d legal pairs, %d detected swaps", seed, legal, len(b.PossibleSwaps()))
		}

		for _, pair := range pairs {
			s := NewSwap(pair.a, pair.b)
			b.PerformSwap(s)
			makesChain := len(b.DetectMatches()) > 0
			b.PerformSwap(s)

			if makesChain != pair.legal {
				t.Fatalf("seed %d: %v legal=%v but produces chain=%v", seed, s, pair.legal, makesChain)
			}
		}
		checkConsistency(t, b)
	}
}

func TestIsLegalIsSymmetric(t *testing.T) {
	b := newSeededBoard(t, fullLayout(9, 9), MaxPalette, 5)
	if _, err := b.Shuffle(); err != nil {
		t.Fatalf("Shuffle failed: %v", err)
	}

	for _, s := range b.PossibleSwaps() {
		if !b.IsLegal(NewSwap(s.B, s.A)) {
			t.Errorf("reversed %v should be legal", s)
		}
	}
}

func TestIsLegalPanicsBeforeDetection(t *testing.T) {
	b := boardFromRows(t, 3, [][]PieceType{{tA, tB, tA}})
	a, _ := b.PieceAt(0, 0)
	c, _ := b.PieceAt(1, 0)

	defer func() {
		if recover() == nil {
			t.Error("expected panic when legal swaps were never computed")
		}
	}()
	b.IsLegal(NewSwap(a, c))
}

func TestIsLegalPanicsWhenStale(t *testing.T) {
	b := boardFromRows(t, 3, [][]PieceType{{tA, tB, tA}})
	b.DetectPossibleSwaps()

	a, _ := b.PieceAt(0, 0)
	c, _ := b.PieceAt(1, 0)
	b.PerformSwap(NewSwap(a, c))

	defer func() {
		if recover() == nil {
			t.Error("expected panic on a stale legal-swap set")
		}
	}()
	b.IsLegal(NewSwap(a, c))
}

func TestIsLegalNilPiece(t *testing.T) {
	b := boardFromRows(t, 3, [][]PieceType{{tA, tB, tA}})
	b.DetectPossibleSwaps()

	a, _ := b.PieceAt(0, 0)
	if b.IsLegal(NewSwap(a, nil)) {
		t.Error("swap with a nil piece should not be legal")
	}
}

// The 3x3 board from the level design notes, rows listed bottom first.
// Cells (2,0) and (2,1) carry the same type, so swapping them changes nothing.
func TestSameTypeSwapIsIllegal(t *testing.T) {
	b := boardFromRows(t, 3, [][]PieceType{
		{tA, tA, tB},
		{tA, tB, tB},
		{tB, tA, tA},
	})
	if chains := b.DetectMatches(); len(chains) != 0 {
		t.Fatalf("fixture should hold no chains, got %v", chains)
	}
	b.DetectPossibleSwaps()

	p20, _ := b.PieceAt(2, 0)
	p21, _ := b.PieceAt(2, 1)
	if b.IsLegal(NewSwap(p20, p21)) {
		t.Error("swapping two equal types should be illegal")
	}

	// Legality must agree with what the swap actually does.
	p10, _ := b.PieceAt(1, 0)
	p11, _ := b.PieceAt(1, 1)
	s := NewSwap(p10, p11)
	legal := b.IsLegal(s)
	b.PerformSwap(s)
	if makesChain := len(b.DetectMatches()) > 0; makesChain != legal {
		t.Errorf("%v: legal=%v, produces chain=%v", s, legal, makesChain)
	}
}

func TestSwapCompletingRowIsLegal(t *testing.T) {
	b := boardFromRows(t, 6, [][]PieceType{
		{tA, tA, tB},
		{tC, tB, tA},
		{tD, tE, tF},
	})
	b.DetectPossibleSwaps()

	p20, _ := b.PieceAt(2, 0)
	p21, _ := b.PieceAt(2, 1)
	s := NewSwap(p20, p21)
	if !b.IsLegal(s) {
		t.Fatalf("%v completes the bottom row and should be legal", s)
	}

	p01, _ := b.PieceAt(0, 1)
	p02, _ := b.PieceAt(0, 2)
	if b.IsLegal(NewSwap(p01, p02)) {
		t.Error("swap of (0,1) and (0,2) forms no run and should be illegal")
	}

	b.PerformSwap(s)
	chains := b.RemoveMatches()
	if len(chains) != 1 {
		t.Fatalf("got %d chains, want 1: %v", len(chains), chains)
	}

	c := chains[0]
	if c.Kind != Horizontal || c.Length() != 3 || c.Type() != tA {
		t.Errorf("chain = %v, want horizontal croissant x3", c)
	}
	if c.Score != 60 {
		t.Errorf("chain score = %d, want 60", c.Score)
	}
	for i, p := range c.Pieces {
		if p.Column != i || p.Row != 0 {
			t.Errorf("chain piece %d at (%d,%d), want (%d,0)", i, p.Column, p.Row, i)
		}
	}
	if b.PieceCount() != 6 {
		t.Errorf("PieceCount() = %d, want 6", b.PieceCount())
	}
}

func TestChainScoreByLength(t *testing.T) {
	tests := []struct {
		name     string
		row      []PieceType
		expected int
	}{
		{"three", []PieceType{tA, tA, tA, tB, tC}, 60},
		{"four", []PieceType{tA, tA, tA, tA, tC}, 120},
		{"five", []PieceType{tA, tA, tA, tA, tA}, 180},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			b := boardFromRows(t, 3, [][]PieceType{tc.row})
			chains := b.RemoveMatches()
			if len(chains) != 1 {
				t.Fatalf("got %d chains, want 1", len(chains))
			}
			if chains[0].Score != tc.expected {
				t.Errorf("score = %d, want %d", chains[0].Score, tc.expected)
			}
		})
	}
}

func TestCrossingChainsShareOnePiece(t *testing.T) {
	b := boardFromRows(t, 3, [][]PieceType{
		{tA, tA, tA},
		{tA, tB, tC},
		{tA, tC, tB},
	})

	chains := b.RemoveMatches()
	if len(chains) != 2 {
		t.Fatalf("got %d chains, want 2: %v", len(chains), chains)
	}
	if chains[0].Kind != Horizontal || chains[1].Kind != Vertical {
		t.Errorf("chain order = %s, %s; want Horizontal, Vertical", chains[0].Kind, chains[1].Kind)
	}
	if chains[0].Pieces[0] != chains[1].Pieces[0] {
		t.Error("corner piece should appear in both chains")
	}
	if b.PieceCount() != 4 {
		t.Errorf("PieceCount() = %d, want 4 (corner removed once)", b.PieceCount())
	}
}

func TestRemoveMatchesWithoutChains(t *testing.T) {
	b := boardFromRows(t, 3, [][]PieceType{{tA, tB, tA}})
	version := b.Version()

	if chains := b.RemoveMatches(); chains != nil {
		t.Errorf("RemoveMatches() = %v, want nil", chains)
	}
	if b.Version() != version {
		t.Error("board without chains should not change")
	}
}

func TestDetectedChainsAreMaximalRuns(t *testing.T) {
	for seed := int64(1); seed <= 30; seed++ {
		b := newSeededBoard(t, shapedLayout, 3, seed)
		for row := range b.Rows() {
			for col := range b.Columns() {
				if b.IsPlayable(col, row) {
					b.newPiece(col, row, b.randomType())
				}
			}
		}
		b.touch()

		for _, c := range b.DetectMatches() {
			if c.Length() < MinChainLength {
				t.Fatalf("seed %d: short chain %v", seed, c)
			}
			dc, dr := 1, 0
			if c.Kind == Vertical {
				dc, dr = 0, 1
			}
			first := c.Pieces[0]
			for i, p := range c.Pieces {
				if p.Type != c.Type() {
					t.Fatalf("seed %d: mixed types in %v", seed, c)
				}
				if p.Column != first.Column+i*dc || p.Row != first.Row+i*dr {
					t.Fatalf("seed %d: non-contiguous %v", seed, c)
				}
			}
			last := c.Pieces[c.Length()-1]
			if b.typeAt(first.Column-dc, first.Row-dr) == c.Type() ||
				b.typeAt(last.Column+dc, last.Row+dr) == c.Type() {
				t.Fatalf("seed %d: chain %v is not maximal", seed, c)
			}
		}
	}
}
