package match3

import "testing"

func TestSwapKeyIsOrderIndependent(t *testing.T) {
	a := &Piece{ID: 4, Column: 0, Row: 0, Type: tA}
	b := &Piece{ID: 9, Column: 1, Row: 0, Type: tB}

	if NewSwap(a, b).Key() != NewSwap(b, a).Key() {
		t.Error("reversed swap should have the same key")
	}
	if !NewSwap(a, b).Equal(NewSwap(b, a)) {
		t.Error("reversed swap should be equal")
	}

	c := &Piece{ID: 12, Column: 0, Row: 1, Type: tC}
	if NewSwap(a, b).Equal(NewSwap(a, c)) {
		t.Error("swaps over different pieces should not be equal")
	}
}

func TestSwapAdjacent(t *testing.T) {
	origin := &Piece{ID: 1, Column: 2, Row: 2}

	tests := []struct {
		name     string
		col, row int
		expected bool
	}{
		{"right", 3, 2, true},
		{"left", 1, 2, true},
		{"up", 2, 3, true},
		{"down", 2, 1, true},
		{"diagonal", 3, 3, false},
		{"two apart", 4, 2, false},
		{"same cell", 2, 2, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			other := &Piece{ID: 2, Column: tc.col, Row: tc.row}
			if got := NewSwap(origin, other).Adjacent(); got != tc.expected {
				t.Errorf("Adjacent() = %v, want %v", got, tc.expected)
			}
		})
	}
}
