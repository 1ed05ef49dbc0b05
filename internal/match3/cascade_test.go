package match3

import "testing"

func TestFillHolesSingleColumn(t *testing.T) {
	b := boardFromRows(t, 3, [][]PieceType{{tA}, {tB}, {tA}, {tB}})
	p1, _ := b.PieceAt(0, 1)
	p2, _ := b.PieceAt(0, 2)
	p3, _ := b.PieceAt(0, 3)

	b.pieces.Clear(0, 0)
	b.touch()

	columns := b.FillHoles()
	if len(columns) != 1 {
		t.Fatalf("got %d columns, want 1", len(columns))
	}
	moved := columns[0]
	want := []*Piece{p1, p2, p3}
	if len(moved) != len(want) {
		t.Fatalf("moved %d pieces, want %d", len(moved), len(want))
	}
	for i, p := range want {
		if moved[i] != p {
			t.Errorf("moved[%d] = %v, want %v", i, moved[i], p)
		}
		if p.Row != i {
			t.Errorf("piece %d now at row %d, want %d", p.ID, p.Row, i)
		}
	}
	if b.PieceCount() != 3 || b.pieceAt(0, 3) != nil {
		t.Fatal("top cell should be the only empty one")
	}

	created := b.TopUp()
	if len(created) != 1 || len(created[0]) != 1 {
		t.Fatalf("TopUp() = %v, want one new piece", created)
	}
	if p := created[0][0]; p.Column != 0 || p.Row != 3 {
		t.Errorf("new piece at (%d,%d), want (0,3)", p.Column, p.Row)
	}
	if b.PieceCount() != 4 {
		t.Errorf("PieceCount() = %d, want 4", b.PieceCount())
	}
	checkConsistency(t, b)
}

func TestFillHolesFallsThroughShapeHoles(t *testing.T) {
	layout := Layout{
		Tiles:        [][]int{{1}, {0}, {1}},
		TargetScore:  10,
		MaximumMoves: 1,
	}
	b, err := NewBoard(layout, Params{Palette: 3})
	if err != nil {
		t.Fatalf("NewBoard failed: %v", err)
	}
	top := b.newPiece(0, 2, tA)
	b.touch()

	columns := b.FillHoles()
	if len(columns) != 1 || columns[0][0] != top {
		t.Fatalf("FillHoles() = %v, want the top piece moved", columns)
	}
	if top.Row != 0 {
		t.Errorf("piece row = %d, want 0", top.Row)
	}

	created := b.TopUp()
	if len(created) != 1 || len(created[0]) != 1 || created[0][0].Row != 2 {
		t.Fatalf("TopUp() = %v, want one piece at row 2", created)
	}
	if b.pieceAt(0, 1) != nil {
		t.Error("hole must stay empty")
	}
}

func TestFillHolesOnFullBoard(t *testing.T) {
	b := boardFromRows(t, 3, [][]PieceType{{tA, tB}, {tB, tA}})
	version := b.Version()

	if columns := b.FillHoles(); len(columns) != 0 {
		t.Errorf("FillHoles() = %v, want nothing", columns)
	}
	if columns := b.TopUp(); len(columns) != 0 {
		t.Errorf("TopUp() = %v, want nothing", columns)
	}
	if b.Version() != version {
		t.Error("full board should not change")
	}
}

func TestTopUpNeverRepeatsPreviousType(t *testing.T) {
	for palette := 2; palette <= MaxPalette; palette++ {
		rows := make([][]PieceType, 9)
		for i := range rows {
			rows[i] = []PieceType{PieceUnknown, PieceUnknown}
		}
		b := boardFromRows(t, palette, rows)

		columns := b.TopUp()
		if len(columns) != 2 {
			t.Fatalf("palette %d: got %d columns, want 2", palette, len(columns))
		}

		var sequence []*Piece
		for _, column := range columns {
			for i, p := range column {
				if p.Row != b.Rows()-1-i {
					t.Fatalf("palette %d: piece %d at row %d, want topmost first", palette, i, p.Row)
				}
				if p.Type < 1 || int(p.Type) > palette {
					t.Fatalf("palette %d: type %d outside palette", palette, p.Type)
				}
			}
			sequence = append(sequence, column...)
		}
		// The last type carries over from one column to the next.
		for i := 1; i < len(sequence); i++ {
			if sequence[i].Type == sequence[i-1].Type {
				t.Fatalf("palette %d: consecutive new pieces share type %s", palette, sequence[i].Type)
			}
		}
	}
}

func TestTopUpMayCreateChains(t *testing.T) {
	// Top-up only avoids repeating the previous new type, so a new piece can
	// still complete a run with pieces already on the board.
	found := false
	for seed := int64(1); seed <= 100 && !found; seed++ {
		b := boardFromRows(t, 2, [][]PieceType{{tA, tA, PieceUnknown}})
		b.rng.Seed(seed)
		b.TopUp()
		found = len(b.DetectMatches()) > 0
	}
	if !found {
		t.Error("expected some seed to produce a chain during top-up")
	}
}

func TestCascadeReachesFixedPoint(t *testing.T) {
	for seed := int64(1); seed <= 20; seed++ {
		b := newSeededBoard(t, shapedLayout, 4, seed)
		for row := range b.Rows() {
			for col := range b.Columns() {
				if b.IsPlayable(col, row) {
					b.newPiece(col, row, b.randomType())
				}
			}
		}
		b.touch()

		passes := 0
		for ; passes < 200; passes++ {
			if b.RemoveMatches() == nil {
				break
			}
			b.FillHoles()
			assertGravity(t, b)
			b.TopUp()
			if b.PieceCount() != b.PlayableCount() {
				t.Fatalf("seed %d: %d pieces for %d playable cells after top-up", seed, b.PieceCount(), b.PlayableCount())
			}
		}
		if passes == 200 {
			t.Fatalf("seed %d: cascade did not settle", seed)
		}
		if len(b.DetectMatches()) != 0 {
			t.Fatalf("seed %d: chains left after settling", seed)
		}
		checkConsistency(t, b)
	}
}

// assertGravity checks that no empty playable cell has a piece somewhere above it.
func assertGravity(t *testing.T, b *Board) {
	t.Helper()

	for col := range b.Columns() {
		sawEmpty := false
		for row := range b.Rows() {
			if !b.IsPlayable(col, row) {
				continue
			}
			occupied := b.pieceAt(col, row) != nil
			if occupied && sawEmpty {
				t.Fatalf("column %d: piece at row %d floats over an empty cell", col, row)
			}
			if !occupied {
				sawEmpty = true
			}
		}
	}
}
