package model

// Position addresses a board square. Row 0 is black's back rank and row 7 is
// white's, so white pawns advance toward decreasing rows. Algebraic notation
// is derived from this orientation: file = 'a'+col, rank = 8-row.
type Position struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

func inBounds(pos Position) bool {
	return pos.Row >= 0 && pos.Row < 8 && pos.Col >= 0 && pos.Col < 8
}

// Board is the 8x8 grid of optional pieces. It has no legality knowledge;
// mutation goes through the Game, everything else only reads it.
type Board struct {
	Squares [8][8]*Piece `json:"squares"`
}

var backRank = [8]PieceType{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}

func newBoard() *Board {
	board := &Board{}
	for col := 0; col < 8; col++ {
		board.Squares[0][col] = &Piece{Type: backRank[col], Color: Black}
		board.Squares[1][col] = &Piece{Type: Pawn, Color: Black}
		board.Squares[6][col] = &Piece{Type: Pawn, Color: White}
		board.Squares[7][col] = &Piece{Type: backRank[col], Color: White}
	}
	return board
}

// PieceAt returns the piece occupying pos, or nil for an empty square.
func (b *Board) PieceAt(pos Position) (*Piece, error) {
	if !inBounds(pos) {
		return nil, ErrInvalidPosition
	}
	return b.Squares[pos.Row][pos.Col], nil
}

// Place puts piece on pos, replacing whatever was there. A nil piece empties
// the square.
func (b *Board) Place(pos Position, piece *Piece) error {
	if !inBounds(pos) {
		return ErrInvalidPosition
	}
	b.Squares[pos.Row][pos.Col] = piece
	return nil
}

// Clone returns a deep copy. Simulation and snapshots rely on clones being
// fully independent of the source board.
func (b *Board) Clone() *Board {
	clone := &Board{}
	for row := 0; row < 8; row++ {
		for col := 0; col < 8; col++ {
			if piece := b.Squares[row][col]; piece != nil {
				copied := *piece
				clone.Squares[row][col] = &copied
			}
		}
	}
	return clone
}

func (b *Board) kingPosition(color Color) (Position, bool) {
	for row := 0; row < 8; row++ {
		for col := 0; col < 8; col++ {
			piece := b.Squares[row][col]
			if piece != nil && piece.Type == King && piece.Color == color {
				return Position{Row: row, Col: col}, true
			}
		}
	}
	return Position{}, false
}
