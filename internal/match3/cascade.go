package match3

// FillHoles lets pieces fall into empty playable cells.
//
// Each column is scanned bottom to top; an empty playable cell takes the
// nearest piece above it, looking through holes in the shape. The result
// holds, per column that changed, the moved pieces in the order they moved.
func (b *Board) FillHoles() [][]*Piece {
	var columns [][]*Piece

	for col := range b.cols {
		var moved []*Piece
		for row := range b.rows {
			if !b.tiles.Has(col, row) || b.pieces.Has(col, row) {
				continue
			}
			for lookup := row + 1; lookup < b.rows; lookup++ {
				p := b.pieceAt(col, lookup)
				if p == nil {
					continue
				}
				b.pieces.Clear(col, lookup)
				b.pieces.Set(col, row, p)
				p.Row = row
				moved = append(moved, p)
				break
			}
		}
		if len(moved) > 0 {
			columns = append(columns, moved)
		}
	}

	if len(columns) > 0 {
		b.touch()
	}
	return columns
}

// TopUp creates pieces for the empty cells at the top of each column.
//
// Each column is scanned from the top row down while cells are empty. A new
// piece never repeats the type generated just before it in this pass; no
// other match avoidance is applied, so a top-up may create chains. The result
// holds, per column that changed, the new pieces topmost first.
func (b *Board) TopUp() [][]*Piece {
	var columns [][]*Piece
	last := PieceUnknown

	for col := range b.cols {
		var created []*Piece
		for row := b.rows - 1; row >= 0 && !b.pieces.Has(col, row); row-- {
			if !b.tiles.Has(col, row) {
				continue
			}
			t := b.randomTypeExcept(last)
			last = t
			created = append(created, b.newPiece(col, row, t))
		}
		if len(created) > 0 {
			columns = append(columns, created)
		}
	}

	if len(columns) > 0 {
		b.touch()
	}
	return columns
}

// randomTypeExcept draws uniformly from the palette without t.
// PieceUnknown excludes nothing.
func (b *Board) randomTypeExcept(t PieceType) PieceType {
	if t == PieceUnknown {
		return b.randomType()
	}
	drawn := PieceType(b.rng.Intn(b.palette-1) + 1)
	if drawn >= t {
		drawn++
	}
	return drawn
}
