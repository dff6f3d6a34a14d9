package service

import (
	"fmt"

	"github.com/gofiber/websocket/v2"
	"github.com/google/uuid"

	"github.com/dkovacs/chesscore-backend/internal/model"
)

type GameService struct {
	gameManager *GameManager
}

func NewGameService(gameManager *GameManager) *GameService {
	return &GameService{
		gameManager: gameManager,
	}
}

func (gs *GameService) CreateGame() (string, error) {
	gameID := uuid.New().String()

	if err := gs.gameManager.CreateGame(gameID); err != nil {
		return "", fmt.Errorf("failed to create game: %w", err)
	}

	return gameID, nil
}

func (gs *GameService) GetGameState(gameID string) (model.GameState, error) {
	return gs.gameManager.GetGameState(gameID)
}

func (gs *GameService) LegalMoves(gameID string, pos model.Position) ([]model.Position, error) {
	return gs.gameManager.LegalMoves(gameID, pos)
}

func (gs *GameService) HandleMove(gameID string, from, to model.Position, promotion model.PieceType) (model.Move, error) {
	return gs.gameManager.MakeMove(gameID, from, to, promotion)
}

func (gs *GameService) UndoLastMove(gameID string) error {
	return gs.gameManager.UndoLastMove(gameID)
}

func (gs *GameService) ResetGame(gameID string) error {
	return gs.gameManager.ResetGame(gameID)
}

func (gs *GameService) RegisterConnection(gameID string, conn *websocket.Conn) error {
	return gs.gameManager.RegisterConnection(gameID, conn)
}

func (gs *GameService) UnregisterConnection(gameID string, conn *websocket.Conn) {
	gs.gameManager.UnregisterConnection(gameID, conn)
}
