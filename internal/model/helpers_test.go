package model

import "testing"

// pos converts algebraic notation, keeping test tables readable.
func pos(t *testing.T, s string) Position {
	t.Helper()
	p, err := ParseSquare(s)
	if err != nil {
		t.Fatalf("bad square %q: %v", s, err)
	}
	return p
}

func boardWith(pieces map[Position]*Piece) *Board {
	b := &Board{}
	for p, piece := range pieces {
		b.Squares[p.Row][p.Col] = piece
	}
	return b
}

func newGameWithBoard(b *Board, turn Color) *Game {
	g := NewGame("test")
	g.state.Board = b
	g.state.CurrentTurn = turn
	g.state.Status = computeStatus(b, turn)
	return g
}

func boardsEqual(a, b *Board) bool {
	for row := 0; row < 8; row++ {
		for col := 0; col < 8; col++ {
			pa, pb := a.Squares[row][col], b.Squares[row][col]
			if (pa == nil) != (pb == nil) {
				return false
			}
			if pa != nil && *pa != *pb {
				return false
			}
		}
	}
	return true
}

func containsPosition(moves []Position, target Position) bool {
	for _, m := range moves {
		if m == target {
			return true
		}
	}
	return false
}
