package model

type CastleRookMove struct {
	From Position `json:"from"`
	To   Position `json:"to"`
}

// Move is one committed ply. Once appended to the history it is immutable and
// carries everything undo needs: the captured piece and the square it was
// actually removed from (which for en passant is not the destination), the
// special-move kind, and the pre-move flag values.
type Move struct {
	Piece          PieceType       `json:"piece"`
	Color          Color           `json:"color"`
	From           Position        `json:"from"`
	To             Position        `json:"to"`
	CapturedPiece  *Piece          `json:"capturedPiece,omitempty"`
	CapturedFrom   *Position       `json:"capturedFrom,omitempty"`
	Promotion      PieceType       `json:"promotion,omitempty"`
	IsCastle       bool            `json:"isCastle"`
	IsEnPassant    bool            `json:"isEnPassant"`
	CastleRookMove *CastleRookMove `json:"castleRookMove,omitempty"`
	Notation       string          `json:"notation"`

	// Pre-move flag values. The mover's hasMoved flag and the square of the
	// mover's own pawn that carried justMovedTwo are recorded so undo restores
	// them exactly at any history depth.
	pieceHadMoved bool
	prevTwoSquare *Position
}

type SimpleMove struct {
	From Position `json:"from"`
	To   Position `json:"to"`
}
