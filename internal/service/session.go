package service

import (
	"encoding/json"
	"log"
	"sync"
	"time"

	"github.com/gofiber/websocket/v2"

	"github.com/dkovacs/chesscore-backend/internal/model"
	"github.com/dkovacs/chesscore-backend/internal/ws"
)

const defaultTimeControl = 10 * time.Minute

// GameSession ties one engine instance to its collaborators: the websocket
// relay fan-out and the clock pair. The session subscribes itself to the
// engine, so every successful commit reaches all connected clients.
type GameSession struct {
	Game   *model.Game
	Clocks *model.ClockPair

	connMu      sync.RWMutex
	connections map[*websocket.Conn]struct{}
}

func newGameSession(game *model.Game) *GameSession {
	session := &GameSession{
		Game:        game,
		Clocks:      model.NewClockPair(defaultTimeControl),
		connections: make(map[*websocket.Conn]struct{}),
	}
	game.Subscribe(session.Clocks)
	game.Subscribe(session)
	return session
}

// MoveApplied implements model.Listener: relay the committed move and the new
// state to every subscribed connection.
func (s *GameSession) MoveApplied(move model.Move, state model.GameState) {
	payload, err := json.Marshal(ws.GameEvent{Move: move, State: state})
	if err != nil {
		log.Printf("failed to marshal game event: %v", err)
		return
	}
	s.broadcast(ws.Message{Type: ws.MessageTypeGameState, Payload: payload})
}

// RegisterConnection adds a connection to the fan-out set and sends it the
// current state so it starts from a consistent snapshot.
func (s *GameSession) RegisterConnection(conn *websocket.Conn) {
	s.connMu.Lock()
	s.connections[conn] = struct{}{}
	s.connMu.Unlock()

	state := s.Game.GetState()
	payload, err := json.Marshal(ws.GameEvent{State: state})
	if err != nil {
		log.Printf("failed to marshal game state: %v", err)
		return
	}
	if err := conn.WriteJSON(ws.Message{Type: ws.MessageTypeGameState, Payload: payload}); err != nil {
		log.Printf("failed to send state to new connection: %v", err)
	}
}

func (s *GameSession) UnregisterConnection(conn *websocket.Conn) {
	s.connMu.Lock()
	defer s.connMu.Unlock()
	delete(s.connections, conn)
}

func (s *GameSession) broadcast(msg ws.Message) {
	s.connMu.RLock()
	activeConnections := make([]*websocket.Conn, 0, len(s.connections))
	for conn := range s.connections {
		activeConnections = append(activeConnections, conn)
	}
	s.connMu.RUnlock()

	for _, conn := range activeConnections {
		if err := conn.WriteJSON(msg); err != nil {
			log.Printf("failed to send state to connection: %v", err)
			s.UnregisterConnection(conn)
		}
	}
}
