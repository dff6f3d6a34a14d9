package model

type PieceType string

const (
	King   PieceType = "king"
	Queen  PieceType = "queen"
	Rook   PieceType = "rook"
	Bishop PieceType = "bishop"
	Knight PieceType = "knight"
	Pawn   PieceType = "pawn"
)

func (p PieceType) getPieceNotation() string {
	switch p {
	case King:
		return "K"
	case Queen:
		return "Q"
	case Rook:
		return "R"
	case Bishop:
		return "B"
	case Knight:
		return "N"
	case Pawn:
		return ""
	}
	return ""
}

// isPromotionChoice reports whether a pawn may promote to this type.
func (p PieceType) isPromotionChoice() bool {
	switch p {
	case Queen, Rook, Bishop, Knight:
		return true
	}
	return false
}

type Color string

const (
	White Color = "white"
	Black Color = "black"
)

func (c Color) Opponent() Color {
	if c == White {
		return Black
	}
	return White
}

// Piece flags: HasMoved gates castling for kings and rooks and the double
// advance for pawns; JustMovedTwo marks a pawn that advanced two squares on
// the previous ply and is the en passant target for exactly one reply.
type Piece struct {
	Type         PieceType `json:"type"`
	Color        Color     `json:"color"`
	HasMoved     bool      `json:"hasMoved"`
	JustMovedTwo bool      `json:"justMovedTwo"`
}
