package model

import (
	"fmt"
	"sync"
)

type GameStatus string

const (
	StatusPlaying   GameStatus = "playing"
	StatusCheck     GameStatus = "check"
	StatusCheckmate GameStatus = "checkmate"
	StatusStalemate GameStatus = "stalemate"
)

type CapturedPieces struct {
	White []Piece `json:"white"`
	Black []Piece `json:"black"`
}

// GameState is the full serialized shape consumed by the presentation layer
// and the collaborators. Snapshots handed out are deep copies; mutating one
// never affects the engine.
type GameState struct {
	Board          *Board         `json:"board"`
	CurrentTurn    Color          `json:"currentTurn"`
	Status         GameStatus     `json:"status"`
	MoveHistory    []Move         `json:"moveHistory"`
	CapturedPieces CapturedPieces `json:"capturedPieces"`
	LastMove       *SimpleMove    `json:"lastMove"`
	Sound          string         `json:"sound"`
}

// Listener receives the committed move and the resulting state snapshot after
// each successful commit. Calls are synchronous; listeners must not call back
// into the Game or mutate engine state from within the callback.
type Listener interface {
	MoveApplied(move Move, state GameState)
}

// Game owns the board, turn, status, history and captured-piece ledgers. It
// is the only component that mutates the board, and it serializes every
// operation behind its own mutex.
type Game struct {
	ID        string
	mu        sync.Mutex
	state     GameState
	listeners []Listener
}

func NewGame(id string) *Game {
	return &Game{
		ID:    id,
		state: newGameState(),
	}
}

func newGameState() GameState {
	return GameState{
		Board:       newBoard(),
		CurrentTurn: White,
		Status:      StatusPlaying,
		MoveHistory: make([]Move, 0),
		CapturedPieces: CapturedPieces{
			White: make([]Piece, 0),
			Black: make([]Piece, 0),
		},
	}
}

func (g *Game) Subscribe(listener Listener) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.listeners = append(g.listeners, listener)
}

// GetState returns a deep copy of the current state.
func (g *Game) GetState() GameState {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.state.clone()
}

// LegalMoves returns the destinations the piece at pos may legally move to.
func (g *Game) LegalMoves(pos Position) ([]Position, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if !inBounds(pos) {
		return nil, ErrInvalidPosition
	}
	if g.state.Board.Squares[pos.Row][pos.Col] == nil {
		return nil, ErrNoPieceAtSource
	}
	return getLegalMoves(g.state.Board, pos), nil
}

// MakeMove validates and commits a move. A pawn reaching the last rank with
// no promotion choice returns ErrPromotionRequired and changes nothing; the
// caller re-invokes with the same from/to plus the choice. Every rejection
// leaves state untouched.
func (g *Game) MakeMove(from, to Position, promotion PieceType) (Move, error) {
	g.mu.Lock()
	move, snapshot, err := g.applyMove(from, to, promotion)
	listeners := append([]Listener(nil), g.listeners...)
	g.mu.Unlock()
	if err != nil {
		return Move{}, err
	}
	for _, listener := range listeners {
		listener.MoveApplied(move, snapshot)
	}
	return move, nil
}

func (g *Game) applyMove(from, to Position, promotion PieceType) (Move, GameState, error) {
	if !inBounds(from) || !inBounds(to) {
		return Move{}, GameState{}, ErrInvalidPosition
	}
	board := g.state.Board
	piece := board.Squares[from.Row][from.Col]
	if piece == nil {
		return Move{}, GameState{}, ErrNoPieceAtSource
	}
	if piece.Color != g.state.CurrentTurn {
		return Move{}, GameState{}, fmt.Errorf("%w: not %s's turn", ErrIllegalMove, piece.Color)
	}
	isLegal := false
	for _, candidate := range getLegalMoves(board, from) {
		if candidate == to {
			isLegal = true
			break
		}
	}
	if !isLegal {
		return Move{}, GameState{}, ErrIllegalMove
	}

	promotionRow := 0
	if piece.Color == Black {
		promotionRow = 7
	}
	promoting := piece.Type == Pawn && to.Row == promotionRow
	if promoting && promotion == "" {
		return Move{}, GameState{}, ErrPromotionRequired
	}
	if promoting && !promotion.isPromotionChoice() {
		return Move{}, GameState{}, fmt.Errorf("%w: cannot promote to %q", ErrIllegalMove, promotion)
	}

	move := Move{
		Piece:         piece.Type,
		Color:         piece.Color,
		From:          from,
		To:            to,
		pieceHadMoved: piece.HasMoved,
		prevTwoSquare: findTwoSquarePawn(board, piece.Color),
	}
	if target := board.Squares[to.Row][to.Col]; target != nil {
		captured := *target
		capturedFrom := to
		move.CapturedPiece = &captured
		move.CapturedFrom = &capturedFrom
	} else if piece.Type == Pawn && from.Col != to.Col {
		// En passant: the victim sits beside the capturing pawn, not on the
		// destination square.
		victimPos := Position{Row: from.Row, Col: to.Col}
		captured := *board.Squares[victimPos.Row][victimPos.Col]
		move.CapturedPiece = &captured
		move.CapturedFrom = &victimPos
		move.IsEnPassant = true
	}
	if piece.Type == King && abs(to.Col-from.Col) == 2 {
		move.IsCastle = true
	}
	if promoting {
		move.Promotion = promotion
	}
	move.Notation = getMoveNotation(move)

	if move.CapturedFrom != nil {
		board.Squares[move.CapturedFrom.Row][move.CapturedFrom.Col] = nil
		switch piece.Color {
		case White:
			g.state.CapturedPieces.White = append(g.state.CapturedPieces.White, *move.CapturedPiece)
		case Black:
			g.state.CapturedPieces.Black = append(g.state.CapturedPieces.Black, *move.CapturedPiece)
		}
	}
	board.Squares[to.Row][to.Col] = piece
	board.Squares[from.Row][from.Col] = nil
	piece.HasMoved = true
	if move.IsCastle {
		move.CastleRookMove = relocateCastleRook(board, from, to)
	}
	if promoting {
		piece.Type = promotion
	}
	// The two-square flag is visible to the opponent for exactly one reply:
	// clear it on every pawn of the side that just moved, then set it on the
	// mover if this was a double advance.
	clearTwoSquareFlags(board, piece.Color)
	if piece.Type == Pawn && abs(to.Row-from.Row) == 2 {
		piece.JustMovedTwo = true
	}

	g.state.CurrentTurn = piece.Color.Opponent()
	g.state.Status = computeStatus(board, g.state.CurrentTurn)
	switch g.state.Status {
	case StatusCheck:
		move.Notation += "+"
	case StatusCheckmate:
		move.Notation += "#"
	}
	g.state.MoveHistory = append(g.state.MoveHistory, move)
	g.state.LastMove = &SimpleMove{From: from, To: to}
	g.state.Sound = soundFor(move, g.state.Status)

	return move, g.state.clone(), nil
}

// UndoLastMove pops the last committed move and reverses its effects,
// restoring the recorded pre-move flag values exactly. Status is recomputed
// for the restored position rather than blindly reset to playing.
func (g *Game) UndoLastMove() error {
	g.mu.Lock()
	defer g.mu.Unlock()
	last := len(g.state.MoveHistory) - 1
	if last < 0 {
		return ErrEmptyHistory
	}
	mv := g.state.MoveHistory[last]
	g.state.MoveHistory = g.state.MoveHistory[:last]
	board := g.state.Board

	piece := board.Squares[mv.To.Row][mv.To.Col]
	if mv.Promotion != "" {
		// A pawn has no prior state beyond its flags, so a plain pawn is an
		// exact reconstruction.
		piece = &Piece{Type: Pawn, Color: mv.Color}
	}
	board.Squares[mv.From.Row][mv.From.Col] = piece
	board.Squares[mv.To.Row][mv.To.Col] = nil
	piece.HasMoved = mv.pieceHadMoved
	piece.JustMovedTwo = false

	if mv.CastleRookMove != nil {
		rook := board.Squares[mv.CastleRookMove.To.Row][mv.CastleRookMove.To.Col]
		board.Squares[mv.CastleRookMove.From.Row][mv.CastleRookMove.From.Col] = rook
		board.Squares[mv.CastleRookMove.To.Row][mv.CastleRookMove.To.Col] = nil
		if rook != nil {
			rook.HasMoved = false
		}
	}
	if mv.CapturedPiece != nil && mv.CapturedFrom != nil {
		restored := *mv.CapturedPiece
		board.Squares[mv.CapturedFrom.Row][mv.CapturedFrom.Col] = &restored
		switch mv.Color {
		case White:
			g.state.CapturedPieces.White = g.state.CapturedPieces.White[:len(g.state.CapturedPieces.White)-1]
		case Black:
			g.state.CapturedPieces.Black = g.state.CapturedPieces.Black[:len(g.state.CapturedPieces.Black)-1]
		}
	}
	if mv.prevTwoSquare != nil {
		if pawn := board.Squares[mv.prevTwoSquare.Row][mv.prevTwoSquare.Col]; pawn != nil && pawn.Type == Pawn && pawn.Color == mv.Color {
			pawn.JustMovedTwo = true
		}
	}

	g.state.CurrentTurn = mv.Color
	g.state.Status = computeStatus(board, g.state.CurrentTurn)
	if last > 0 {
		prev := g.state.MoveHistory[last-1]
		g.state.LastMove = &SimpleMove{From: prev.From, To: prev.To}
	} else {
		g.state.LastMove = nil
	}
	g.state.Sound = ""
	return nil
}

// Reset replaces the board with the standard starting position and clears
// history, ledgers, turn and status.
func (g *Game) Reset() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.state = newGameState()
}

// computeStatus implements the status transition for the side to move.
// Checkmate and stalemate are distinguished solely by whether the king is
// currently attacked, so the no-legal-moves test comes first.
func computeStatus(b *Board, turn Color) GameStatus {
	if !hasAnyLegalMove(b, turn) {
		if isKingInCheck(b, turn) {
			return StatusCheckmate
		}
		return StatusStalemate
	}
	if isKingInCheck(b, turn) {
		return StatusCheck
	}
	return StatusPlaying
}

func relocateCastleRook(b *Board, kingFrom, kingTo Position) *CastleRookMove {
	row := kingFrom.Row
	rookMove := &CastleRookMove{}
	switch kingTo.Col {
	case 6:
		rookMove.From = Position{Row: row, Col: 7}
		rookMove.To = Position{Row: row, Col: 5}
	case 2:
		rookMove.From = Position{Row: row, Col: 0}
		rookMove.To = Position{Row: row, Col: 3}
	default:
		return nil
	}
	rook := b.Squares[rookMove.From.Row][rookMove.From.Col]
	b.Squares[rookMove.To.Row][rookMove.To.Col] = rook
	b.Squares[rookMove.From.Row][rookMove.From.Col] = nil
	if rook != nil {
		rook.HasMoved = true
	}
	return rookMove
}

func findTwoSquarePawn(b *Board, color Color) *Position {
	for row := 0; row < 8; row++ {
		for col := 0; col < 8; col++ {
			piece := b.Squares[row][col]
			if piece != nil && piece.Color == color && piece.Type == Pawn && piece.JustMovedTwo {
				pos := Position{Row: row, Col: col}
				return &pos
			}
		}
	}
	return nil
}

func clearTwoSquareFlags(b *Board, color Color) {
	for row := 0; row < 8; row++ {
		for col := 0; col < 8; col++ {
			piece := b.Squares[row][col]
			if piece != nil && piece.Color == color && piece.Type == Pawn {
				piece.JustMovedTwo = false
			}
		}
	}
}

func getMoveNotation(move Move) string {
	if move.IsCastle {
		if move.To.Col == 6 {
			return "O-O"
		}
		return "O-O-O"
	}
	prefix := move.Piece.getPieceNotation()
	capture := ""
	if move.CapturedPiece != nil {
		capture = "x"
	}
	fileSpecifier := ""
	if move.Piece == Pawn && move.From.Col != move.To.Col {
		fileSpecifier = move.From.getFileNotation()
	}
	promotionSuffix := ""
	if move.Promotion != "" {
		promotionSuffix = "=" + move.Promotion.getPieceNotation()
	}
	return fmt.Sprintf("%s%s%s%s%s", prefix, fileSpecifier, capture, move.To.String(), promotionSuffix)
}

func (s GameState) clone() GameState {
	clone := s
	clone.Board = s.Board.Clone()
	clone.MoveHistory = make([]Move, len(s.MoveHistory))
	for i, mv := range s.MoveHistory {
		clone.MoveHistory[i] = mv.clone()
	}
	clone.CapturedPieces.White = append([]Piece(nil), s.CapturedPieces.White...)
	clone.CapturedPieces.Black = append([]Piece(nil), s.CapturedPieces.Black...)
	if s.LastMove != nil {
		lastMove := *s.LastMove
		clone.LastMove = &lastMove
	}
	return clone
}

func (m Move) clone() Move {
	clone := m
	if m.CapturedPiece != nil {
		captured := *m.CapturedPiece
		clone.CapturedPiece = &captured
	}
	if m.CapturedFrom != nil {
		capturedFrom := *m.CapturedFrom
		clone.CapturedFrom = &capturedFrom
	}
	if m.CastleRookMove != nil {
		rookMove := *m.CastleRookMove
		clone.CastleRookMove = &rookMove
	}
	if m.prevTwoSquare != nil {
		prev := *m.prevTwoSquare
		clone.prevTwoSquare = &prev
	}
	return clone
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
