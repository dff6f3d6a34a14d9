package service

import (
	"errors"
	"sync"

	"github.com/gofiber/websocket/v2"

	"github.com/dkovacs/chesscore-backend/internal/model"
	"github.com/dkovacs/chesscore-backend/internal/store"
)

var ErrGameNotFound = errors.New("game not found")

// GameManager owns every live game session. The store is optional; when
// present, each new game gets a persistence recorder subscribed to it.
type GameManager struct {
	games map[string]*GameSession
	store *store.GameStore
	mu    sync.RWMutex
}

func NewGameManager(gameStore *store.GameStore) *GameManager {
	return &GameManager{
		games: make(map[string]*GameSession),
		store: gameStore,
	}
}

func (gm *GameManager) CreateGame(gameID string) error {
	gm.mu.Lock()
	defer gm.mu.Unlock()

	if _, exists := gm.games[gameID]; exists {
		return errors.New("game already exists")
	}

	game := model.NewGame(gameID)
	if gm.store != nil {
		game.Subscribe(gm.store.Recorder(gameID))
	}
	gm.games[gameID] = newGameSession(game)
	return nil
}

func (gm *GameManager) getSession(gameID string) (*GameSession, error) {
	gm.mu.RLock()
	defer gm.mu.RUnlock()

	session, exists := gm.games[gameID]
	if !exists {
		return nil, ErrGameNotFound
	}
	return session, nil
}

func (gm *GameManager) GetGameState(gameID string) (model.GameState, error) {
	session, err := gm.getSession(gameID)
	if err != nil {
		return model.GameState{}, err
	}
	return session.Game.GetState(), nil
}

func (gm *GameManager) LegalMoves(gameID string, pos model.Position) ([]model.Position, error) {
	session, err := gm.getSession(gameID)
	if err != nil {
		return nil, err
	}
	return session.Game.LegalMoves(pos)
}

func (gm *GameManager) MakeMove(gameID string, from, to model.Position, promotion model.PieceType) (model.Move, error) {
	session, err := gm.getSession(gameID)
	if err != nil {
		return model.Move{}, err
	}
	return session.Game.MakeMove(from, to, promotion)
}

func (gm *GameManager) UndoLastMove(gameID string) error {
	session, err := gm.getSession(gameID)
	if err != nil {
		return err
	}
	return session.Game.UndoLastMove()
}

func (gm *GameManager) ResetGame(gameID string) error {
	session, err := gm.getSession(gameID)
	if err != nil {
		return err
	}
	session.Game.Reset()
	return nil
}

func (gm *GameManager) RegisterConnection(gameID string, conn *websocket.Conn) error {
	session, err := gm.getSession(gameID)
	if err != nil {
		return err
	}
	session.RegisterConnection(conn)
	return nil
}

func (gm *GameManager) UnregisterConnection(gameID string, conn *websocket.Conn) {
	session, err := gm.getSession(gameID)
	if err != nil {
		return
	}
	session.UnregisterConnection(conn)
}
