package ws

import (
	"encoding/json"

	"github.com/dkovacs/chesscore-backend/internal/model"
)

// MessageType represents the different kinds of messages our system can handle
type MessageType string

const (
	MessageTypeMove      MessageType = "move"
	MessageTypeUndo      MessageType = "undo"
	MessageTypeReset     MessageType = "reset"
	MessageTypeGameState MessageType = "gameState"
	MessageTypeError     MessageType = "error"
)

// Message represents a WebSocket message in our system
type Message struct {
	Type    MessageType     `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

// MovePayload carries a move command as two-square coordinate strings, the
// shape move-suggestion collaborators speak ("e2", "e4").
type MovePayload struct {
	From      string `json:"from"`
	To        string `json:"to"`
	Promotion string `json:"promotion,omitempty"`
}

// GameEvent is broadcast to every subscribed connection after a successful
// commit.
type GameEvent struct {
	Move  model.Move      `json:"move"`
	State model.GameState `json:"state"`
}
