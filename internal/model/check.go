package model

// isKingInCheck reports whether color's king is attacked. The attack scan
// below is deliberately non-recursive: it ray-casts and probes fixed offsets
// from the square itself, never expands castling and never consults the
// legality filter, so it can back both the legality filter and castling's
// crossed-square test without mutual recursion.
func isKingInCheck(b *Board, color Color) bool {
	kingPos, ok := b.kingPosition(color)
	if !ok {
		return false
	}
	return isSquareAttacked(b, color.Opponent(), kingPos)
}

func isSquareAttacked(b *Board, attackingColor Color, pos Position) bool {
	for _, dir := range rookDirs {
		target := Position{Row: pos.Row + dir.Row, Col: pos.Col + dir.Col}
		for inBounds(target) {
			if piece := b.Squares[target.Row][target.Col]; piece != nil {
				if piece.Color == attackingColor && (piece.Type == Queen || piece.Type == Rook) {
					return true
				}
				break
			}
			target = Position{Row: target.Row + dir.Row, Col: target.Col + dir.Col}
		}
	}
	for _, dir := range bishopDirs {
		target := Position{Row: pos.Row + dir.Row, Col: pos.Col + dir.Col}
		for inBounds(target) {
			if piece := b.Squares[target.Row][target.Col]; piece != nil {
				if piece.Color == attackingColor && (piece.Type == Queen || piece.Type == Bishop) {
					return true
				}
				break
			}
			target = Position{Row: target.Row + dir.Row, Col: target.Col + dir.Col}
		}
	}
	for _, off := range knightOffsets {
		target := Position{Row: pos.Row + off.Row, Col: pos.Col + off.Col}
		if inBounds(target) {
			if piece := b.Squares[target.Row][target.Col]; piece != nil && piece.Color == attackingColor && piece.Type == Knight {
				return true
			}
		}
	}
	for _, off := range kingOffsets {
		target := Position{Row: pos.Row + off.Row, Col: pos.Col + off.Col}
		if inBounds(target) {
			if piece := b.Squares[target.Row][target.Col]; piece != nil && piece.Color == attackingColor && piece.Type == King {
				return true
			}
		}
	}
	// White pawns attack toward decreasing rows, so a square is attacked by a
	// white pawn sitting one row below it; black the other way around.
	pawnRow := pos.Row + 1
	if attackingColor == Black {
		pawnRow = pos.Row - 1
	}
	for _, dc := range []int{-1, 1} {
		target := Position{Row: pawnRow, Col: pos.Col + dc}
		if inBounds(target) {
			if piece := b.Squares[target.Row][target.Col]; piece != nil && piece.Color == attackingColor && piece.Type == Pawn {
				return true
			}
		}
	}
	return false
}
