package service

import (
	"errors"
	"testing"

	"github.com/dkovacs/chesscore-backend/internal/model"
)

func TestGameManagerLifecycle(t *testing.T) {
	gm := NewGameManager(nil)

	if err := gm.CreateGame("g1"); err != nil {
		t.Fatal(err)
	}
	if err := gm.CreateGame("g1"); err == nil {
		t.Fatal("duplicate game ID should be rejected")
	}

	from, to, err := model.ParseMove("e2e4")
	if err != nil {
		t.Fatal(err)
	}
	move, err := gm.MakeMove("g1", from, to, "")
	if err != nil {
		t.Fatal(err)
	}
	if move.Notation != "e4" {
		t.Errorf("notation = %q, want e4", move.Notation)
	}

	state, err := gm.GetGameState("g1")
	if err != nil {
		t.Fatal(err)
	}
	if len(state.MoveHistory) != 1 || state.CurrentTurn != model.Black {
		t.Errorf("state after move: history=%d turn=%s", len(state.MoveHistory), state.CurrentTurn)
	}

	if err := gm.UndoLastMove("g1"); err != nil {
		t.Fatal(err)
	}
	state, err = gm.GetGameState("g1")
	if err != nil {
		t.Fatal(err)
	}
	if len(state.MoveHistory) != 0 || state.CurrentTurn != model.White {
		t.Errorf("state after undo: history=%d turn=%s", len(state.MoveHistory), state.CurrentTurn)
	}

	if err := gm.ResetGame("g1"); err != nil {
		t.Fatal(err)
	}
}

func TestGameManagerUnknownGame(t *testing.T) {
	gm := NewGameManager(nil)

	if _, err := gm.GetGameState("missing"); !errors.Is(err, ErrGameNotFound) {
		t.Errorf("GetGameState: got %v, want ErrGameNotFound", err)
	}
	if _, err := gm.MakeMove("missing", model.Position{}, model.Position{}, ""); !errors.Is(err, ErrGameNotFound) {
		t.Errorf("MakeMove: got %v, want ErrGameNotFound", err)
	}
	if err := gm.UndoLastMove("missing"); !errors.Is(err, ErrGameNotFound) {
		t.Errorf("UndoLastMove: got %v, want ErrGameNotFound", err)
	}
}

func TestLegalMovesQuery(t *testing.T) {
	gm := NewGameManager(nil)
	if err := gm.CreateGame("g1"); err != nil {
		t.Fatal(err)
	}

	e2, err := model.ParseSquare("e2")
	if err != nil {
		t.Fatal(err)
	}
	moves, err := gm.LegalMoves("g1", e2)
	if err != nil {
		t.Fatal(err)
	}
	if len(moves) != 2 {
		t.Errorf("e2 pawn legal moves = %v, want two", moves)
	}

	empty, err := model.ParseSquare("e4")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := gm.LegalMoves("g1", empty); !errors.Is(err, model.ErrNoPieceAtSource) {
		t.Errorf("empty square query: got %v, want ErrNoPieceAtSource", err)
	}
}
