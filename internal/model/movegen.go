package model

var (
	rookDirs      = []Position{{Row: 0, Col: 1}, {Row: 0, Col: -1}, {Row: 1, Col: 0}, {Row: -1, Col: 0}}
	bishopDirs    = []Position{{Row: 1, Col: 1}, {Row: 1, Col: -1}, {Row: -1, Col: 1}, {Row: -1, Col: -1}}
	knightOffsets = []Position{{Row: 2, Col: 1}, {Row: 2, Col: -1}, {Row: -2, Col: 1}, {Row: -2, Col: -1}, {Row: 1, Col: 2}, {Row: 1, Col: -2}, {Row: -1, Col: 2}, {Row: -1, Col: -2}}
	kingOffsets   = []Position{{Row: 0, Col: 1}, {Row: 0, Col: -1}, {Row: 1, Col: 0}, {Row: -1, Col: 0}, {Row: 1, Col: 1}, {Row: 1, Col: -1}, {Row: -1, Col: 1}, {Row: -1, Col: -1}}
)

type castleSide int

const (
	kingSide castleSide = iota
	queenSide
)

// getPseudoLegalMoves returns the geometric destinations for the piece at pos,
// including castling candidates. It does not check whether a move leaves the
// mover's own king in check; that is getLegalMoves' job.
func getPseudoLegalMoves(b *Board, pos Position) []Position {
	piece := b.Squares[pos.Row][pos.Col]
	if piece == nil {
		return nil
	}
	switch piece.Type {
	case Pawn:
		return getPseudoPawnMoves(b, pos, piece)
	case Knight:
		return getOffsetMoves(b, pos, piece, knightOffsets)
	case Bishop:
		return getSlidingMoves(b, pos, piece, bishopDirs)
	case Rook:
		return getSlidingMoves(b, pos, piece, rookDirs)
	case Queen:
		return append(getSlidingMoves(b, pos, piece, bishopDirs), getSlidingMoves(b, pos, piece, rookDirs)...)
	case King:
		return getPseudoKingMoves(b, pos, piece)
	}
	return nil
}

func getPseudoPawnMoves(b *Board, pos Position, piece *Piece) []Position {
	pawnMoves := []Position{}
	dir := -1
	if piece.Color == Black {
		dir = 1
	}
	// Forward 1, and forward 2 from the starting rank.
	oneAhead := Position{Row: pos.Row + dir, Col: pos.Col}
	if inBounds(oneAhead) && b.Squares[oneAhead.Row][oneAhead.Col] == nil {
		pawnMoves = append(pawnMoves, oneAhead)
		twoAhead := Position{Row: pos.Row + dir*2, Col: pos.Col}
		if !piece.HasMoved && inBounds(twoAhead) && b.Squares[twoAhead.Row][twoAhead.Col] == nil {
			pawnMoves = append(pawnMoves, twoAhead)
		}
	}
	// Diagonal captures.
	for _, dc := range []int{-1, 1} {
		target := Position{Row: pos.Row + dir, Col: pos.Col + dc}
		if !inBounds(target) {
			continue
		}
		occupant := b.Squares[target.Row][target.Col]
		if occupant != nil && occupant.Color != piece.Color {
			pawnMoves = append(pawnMoves, target)
		}
		// En passant: the adjacent file holds an enemy pawn that just advanced
		// two squares and the square behind it is empty.
		if occupant == nil {
			beside := b.Squares[pos.Row][pos.Col+dc]
			if beside != nil && beside.Type == Pawn && beside.Color != piece.Color && beside.JustMovedTwo {
				pawnMoves = append(pawnMoves, target)
			}
		}
	}
	return pawnMoves
}

func getOffsetMoves(b *Board, pos Position, piece *Piece, offsets []Position) []Position {
	moves := []Position{}
	for _, off := range offsets {
		target := Position{Row: pos.Row + off.Row, Col: pos.Col + off.Col}
		if inBounds(target) && (b.Squares[target.Row][target.Col] == nil || b.Squares[target.Row][target.Col].Color != piece.Color) {
			moves = append(moves, target)
		}
	}
	return moves
}

func getSlidingMoves(b *Board, pos Position, piece *Piece, dirs []Position) []Position {
	moves := []Position{}
	for _, dir := range dirs {
		target := Position{Row: pos.Row + dir.Row, Col: pos.Col + dir.Col}
		for inBounds(target) {
			occupant := b.Squares[target.Row][target.Col]
			if occupant == nil {
				moves = append(moves, target)
			} else if occupant.Color != piece.Color {
				moves = append(moves, target)
				break
			} else {
				break
			}
			target = Position{Row: target.Row + dir.Row, Col: target.Col + dir.Col}
		}
	}
	return moves
}

func getPseudoKingMoves(b *Board, pos Position, piece *Piece) []Position {
	kingMoves := getOffsetMoves(b, pos, piece, kingOffsets)
	if !piece.HasMoved {
		if canCastle(b, piece.Color, kingSide) {
			kingMoves = append(kingMoves, Position{Row: pos.Row, Col: pos.Col + 2})
		}
		if canCastle(b, piece.Color, queenSide) {
			kingMoves = append(kingMoves, Position{Row: pos.Row, Col: pos.Col - 2})
		}
	}
	return kingMoves
}

// canCastle checks castling eligibility for one side: unmoved king and rook on
// their home squares, empty squares strictly between them, and no square the
// king stands on, crosses, or lands on attacked by the opponent. The attack
// test uses the non-recursive scan in check.go, so castling eligibility never
// re-enters move generation.
func canCastle(b *Board, color Color, side castleSide) bool {
	row := 7
	if color == Black {
		row = 0
	}
	king := b.Squares[row][4]
	if king == nil || king.Type != King || king.Color != color || king.HasMoved {
		return false
	}
	rookCol := 7
	betweenCols := []int{5, 6}
	kingPathCols := []int{4, 5, 6}
	if side == queenSide {
		rookCol = 0
		betweenCols = []int{1, 2, 3}
		kingPathCols = []int{4, 3, 2}
	}
	rook := b.Squares[row][rookCol]
	if rook == nil || rook.Type != Rook || rook.Color != color || rook.HasMoved {
		return false
	}
	for _, col := range betweenCols {
		if b.Squares[row][col] != nil {
			return false
		}
	}
	for _, col := range kingPathCols {
		if isSquareAttacked(b, color.Opponent(), Position{Row: row, Col: col}) {
			return false
		}
	}
	return true
}

// simulateMove builds the hypothetical board used for the self-check test:
// plain piece placement on a clone, plus removal of the en passant victim so a
// discovered check along the capturing rank is caught.
func simulateMove(b *Board, from, to Position) *Board {
	sim := b.Clone()
	piece := sim.Squares[from.Row][from.Col]
	if piece != nil && piece.Type == Pawn && from.Col != to.Col && sim.Squares[to.Row][to.Col] == nil {
		sim.Squares[from.Row][to.Col] = nil
	}
	sim.Squares[to.Row][to.Col] = piece
	sim.Squares[from.Row][from.Col] = nil
	return sim
}

// getLegalMoves filters the pseudo-legal set down to moves that do not leave
// the mover's own king in check.
func getLegalMoves(b *Board, pos Position) []Position {
	piece := b.Squares[pos.Row][pos.Col]
	if piece == nil {
		return nil
	}
	legalMoves := []Position{}
	for _, to := range getPseudoLegalMoves(b, pos) {
		if !isKingInCheck(simulateMove(b, pos, to), piece.Color) {
			legalMoves = append(legalMoves, to)
		}
	}
	return legalMoves
}

func hasAnyLegalMove(b *Board, color Color) bool {
	for row := 0; row < 8; row++ {
		for col := 0; col < 8; col++ {
			piece := b.Squares[row][col]
			if piece != nil && piece.Color == color && len(getLegalMoves(b, Position{Row: row, Col: col})) > 0 {
				return true
			}
		}
	}
	return false
}
