package model

import "testing"

func TestPawnMoves(t *testing.T) {
	t.Run("double advance from the starting rank", func(t *testing.T) {
		b := newBoard()
		moves := getPseudoLegalMoves(b, pos(t, "e2"))
		if len(moves) != 2 || !containsPosition(moves, pos(t, "e3")) || !containsPosition(moves, pos(t, "e4")) {
			t.Errorf("e2 pawn moves = %v, want e3 and e4", moves)
		}
	})

	t.Run("blocked pawn has no forward moves", func(t *testing.T) {
		b := boardWith(map[Position]*Piece{
			pos(t, "e2"): {Type: Pawn, Color: White},
			pos(t, "e3"): {Type: Knight, Color: Black},
		})
		if moves := getPseudoLegalMoves(b, pos(t, "e2")); len(moves) != 0 {
			t.Errorf("blocked pawn moves = %v, want none", moves)
		}
	})

	t.Run("double advance needs both squares empty", func(t *testing.T) {
		b := boardWith(map[Position]*Piece{
			pos(t, "e2"): {Type: Pawn, Color: White},
			pos(t, "e4"): {Type: Knight, Color: Black},
		})
		moves := getPseudoLegalMoves(b, pos(t, "e2"))
		if len(moves) != 1 || !containsPosition(moves, pos(t, "e3")) {
			t.Errorf("pawn moves = %v, want only e3", moves)
		}
	})

	t.Run("diagonal captures", func(t *testing.T) {
		b := boardWith(map[Position]*Piece{
			pos(t, "e4"): {Type: Pawn, Color: White, HasMoved: true},
			pos(t, "d5"): {Type: Pawn, Color: Black, HasMoved: true},
			pos(t, "f5"): {Type: Pawn, Color: White, HasMoved: true},
			pos(t, "e5"): {Type: Pawn, Color: Black, HasMoved: true},
		})
		moves := getPseudoLegalMoves(b, pos(t, "e4"))
		if !containsPosition(moves, pos(t, "d5")) {
			t.Errorf("pawn should capture the enemy on d5: %v", moves)
		}
		if containsPosition(moves, pos(t, "f5")) {
			t.Errorf("pawn must not capture its own piece on f5: %v", moves)
		}
		if containsPosition(moves, pos(t, "e5")) {
			t.Errorf("pawn must not advance onto the occupied e5: %v", moves)
		}
	})

	t.Run("black pawns move toward increasing rows", func(t *testing.T) {
		b := newBoard()
		moves := getPseudoLegalMoves(b, pos(t, "d7"))
		if len(moves) != 2 || !containsPosition(moves, pos(t, "d6")) || !containsPosition(moves, pos(t, "d5")) {
			t.Errorf("d7 pawn moves = %v, want d6 and d5", moves)
		}
	})
}

func TestEnPassantCandidacy(t *testing.T) {
	white := &Piece{Type: Pawn, Color: White, HasMoved: true}
	black := &Piece{Type: Pawn, Color: Black, HasMoved: true, JustMovedTwo: true}
	b := boardWith(map[Position]*Piece{
		pos(t, "e5"): white,
		pos(t, "d5"): black,
	})

	moves := getPseudoLegalMoves(b, pos(t, "e5"))
	if !containsPosition(moves, pos(t, "d6")) {
		t.Errorf("en passant capture d6 missing from %v", moves)
	}

	black.JustMovedTwo = false
	moves = getPseudoLegalMoves(b, pos(t, "e5"))
	if containsPosition(moves, pos(t, "d6")) {
		t.Errorf("en passant must require the justMovedTwo flag: %v", moves)
	}
}

func TestKnightMoves(t *testing.T) {
	tests := []struct {
		name   string
		square string
		want   int
	}{
		{"center", "e4", 8},
		{"corner", "a1", 2},
		{"edge", "a4", 4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := boardWith(map[Position]*Piece{
				pos(t, tt.square): {Type: Knight, Color: White},
			})
			if moves := getPseudoLegalMoves(b, pos(t, tt.square)); len(moves) != tt.want {
				t.Errorf("knight on %s: %d moves, want %d", tt.square, len(moves), tt.want)
			}
		})
	}

	t.Run("friendly pieces block destinations", func(t *testing.T) {
		b := newBoard()
		moves := getPseudoLegalMoves(b, pos(t, "b1"))
		if len(moves) != 2 || !containsPosition(moves, pos(t, "a3")) || !containsPosition(moves, pos(t, "c3")) {
			t.Errorf("b1 knight moves = %v, want a3 and c3", moves)
		}
	})
}

func TestSlidingMoves(t *testing.T) {
	t.Run("rook stops before friends and captures enemies", func(t *testing.T) {
		b := boardWith(map[Position]*Piece{
			pos(t, "e4"): {Type: Rook, Color: White},
			pos(t, "g4"): {Type: Knight, Color: White},
			pos(t, "e2"): {Type: Pawn, Color: Black},
		})
		moves := getPseudoLegalMoves(b, pos(t, "e4"))
		if containsPosition(moves, pos(t, "g4")) || containsPosition(moves, pos(t, "h4")) {
			t.Errorf("ray must stop before the friendly knight: %v", moves)
		}
		if !containsPosition(moves, pos(t, "e2")) {
			t.Errorf("blocking enemy should be a capture: %v", moves)
		}
		if containsPosition(moves, pos(t, "e1")) {
			t.Errorf("ray must stop on the captured enemy: %v", moves)
		}
		// 4 left + 1 right + 4 up + 2 down
		if len(moves) != 11 {
			t.Errorf("rook on e4: %d moves, want 11: %v", len(moves), moves)
		}
	})

	t.Run("queen combines rook and bishop rays", func(t *testing.T) {
		b := boardWith(map[Position]*Piece{
			pos(t, "d4"): {Type: Queen, Color: White},
		})
		moves := getPseudoLegalMoves(b, pos(t, "d4"))
		if len(moves) != 27 {
			t.Errorf("queen on empty d4: %d moves, want 27", len(moves))
		}
	})

	t.Run("bishop starts with no moves", func(t *testing.T) {
		b := newBoard()
		if moves := getPseudoLegalMoves(b, pos(t, "c1")); len(moves) != 0 {
			t.Errorf("c1 bishop moves = %v, want none", moves)
		}
	})
}

func TestCastling(t *testing.T) {
	setup := func(t *testing.T) *Board {
		return boardWith(map[Position]*Piece{
			pos(t, "e1"): {Type: King, Color: White},
			pos(t, "a1"): {Type: Rook, Color: White},
			pos(t, "h1"): {Type: Rook, Color: White},
			pos(t, "e8"): {Type: King, Color: Black},
		})
	}

	t.Run("both sides available", func(t *testing.T) {
		moves := getPseudoLegalMoves(setup(t), pos(t, "e1"))
		if !containsPosition(moves, pos(t, "g1")) || !containsPosition(moves, pos(t, "c1")) {
			t.Errorf("king moves missing castle destinations: %v", moves)
		}
	})

	t.Run("moved rook disqualifies its side", func(t *testing.T) {
		b := setup(t)
		h1 := pos(t, "h1")
		b.Squares[h1.Row][h1.Col].HasMoved = true
		moves := getPseudoLegalMoves(b, pos(t, "e1"))
		if containsPosition(moves, pos(t, "g1")) {
			t.Errorf("kingside castle should be gone: %v", moves)
		}
		if !containsPosition(moves, pos(t, "c1")) {
			t.Errorf("queenside castle should remain: %v", moves)
		}
	})

	t.Run("moved king disqualifies both sides", func(t *testing.T) {
		b := setup(t)
		e1 := pos(t, "e1")
		b.Squares[e1.Row][e1.Col].HasMoved = true
		moves := getPseudoLegalMoves(b, e1)
		if containsPosition(moves, pos(t, "g1")) || containsPosition(moves, pos(t, "c1")) {
			t.Errorf("castling should be gone after a king move: %v", moves)
		}
	})

	t.Run("pieces between block castling", func(t *testing.T) {
		b := setup(t)
		b1 := pos(t, "b1")
		b.Squares[b1.Row][b1.Col] = &Piece{Type: Knight, Color: White}
		moves := getPseudoLegalMoves(b, pos(t, "e1"))
		if containsPosition(moves, pos(t, "c1")) {
			t.Errorf("queenside castle should be blocked by the b1 knight: %v", moves)
		}
	})

	t.Run("king may not castle through an attacked square", func(t *testing.T) {
		b := setup(t)
		f8 := pos(t, "f8")
		b.Squares[f8.Row][f8.Col] = &Piece{Type: Rook, Color: Black}
		moves := getPseudoLegalMoves(b, pos(t, "e1"))
		if containsPosition(moves, pos(t, "g1")) {
			t.Errorf("kingside castle crosses the attacked f1: %v", moves)
		}
		if !containsPosition(moves, pos(t, "c1")) {
			t.Errorf("queenside path is safe and should remain: %v", moves)
		}
	})

	t.Run("king may not castle out of check", func(t *testing.T) {
		b := setup(t)
		e8 := pos(t, "e8")
		b.Squares[e8.Row][e8.Col] = &Piece{Type: Rook, Color: Black}
		moves := getPseudoLegalMoves(b, pos(t, "e1"))
		if containsPosition(moves, pos(t, "g1")) || containsPosition(moves, pos(t, "c1")) {
			t.Errorf("castling out of check must be excluded: %v", moves)
		}
	})
}

func TestLegalMovesFilterSelfCheck(t *testing.T) {
	t.Run("pinned piece may not expose the king", func(t *testing.T) {
		b := boardWith(map[Position]*Piece{
			pos(t, "e1"): {Type: King, Color: White, HasMoved: true},
			pos(t, "e4"): {Type: Rook, Color: White, HasMoved: true},
			pos(t, "e8"): {Type: Rook, Color: Black, HasMoved: true},
		})
		moves := getLegalMoves(b, pos(t, "e4"))
		for _, m := range moves {
			if m.Col != 4 {
				t.Errorf("pinned rook left the e-file: %v", m)
			}
		}
		if !containsPosition(moves, pos(t, "e8")) {
			t.Errorf("capturing the pinning rook should stay legal: %v", moves)
		}
	})

	t.Run("king cannot walk into attack", func(t *testing.T) {
		b := boardWith(map[Position]*Piece{
			pos(t, "e1"): {Type: King, Color: White, HasMoved: true},
			pos(t, "d8"): {Type: Rook, Color: Black, HasMoved: true},
		})
		moves := getLegalMoves(b, pos(t, "e1"))
		if containsPosition(moves, pos(t, "d1")) || containsPosition(moves, pos(t, "d2")) {
			t.Errorf("king may not step onto the attacked d-file: %v", moves)
		}
	})
}
