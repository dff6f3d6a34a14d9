package controller

import (
	"encoding/json"
	"fmt"
	"log"

	"github.com/gofiber/websocket/v2"

	"github.com/dkovacs/chesscore-backend/internal/model"
	"github.com/dkovacs/chesscore-backend/internal/service"
	"github.com/dkovacs/chesscore-backend/internal/ws"
)

type WebSocketController struct {
	gameService *service.GameService
}

func NewWebSocketController(gameService *service.GameService) *WebSocketController {
	return &WebSocketController{
		gameService: gameService,
	}
}

// HandleConnection is called when a new WebSocket connection is established
func (wsc *WebSocketController) HandleConnection(c *websocket.Conn) {
	gameID := c.Params("gameId")

	if err := wsc.gameService.RegisterConnection(gameID, c); err != nil {
		log.Printf("Failed to register connection: %v", err)
		c.Close()
		return
	}

	for {
		messageType, message, err := c.ReadMessage()
		if err != nil {
			log.Printf("read error: %v", err)
			break
		}

		if messageType == websocket.TextMessage {
			var msg ws.Message
			if err := json.Unmarshal(message, &msg); err != nil {
				log.Printf("parse error: %v", err)
				continue
			}

			if err := wsc.handleMessage(gameID, msg); err != nil {
				log.Printf("handle error: %v", err)
				wsc.sendError(c, err.Error())
			}
		}
	}

	wsc.gameService.UnregisterConnection(gameID, c)
}

func (wsc *WebSocketController) handleMessage(gameID string, msg ws.Message) error {
	switch msg.Type {
	case ws.MessageTypeMove:
		var payload ws.MovePayload
		if err := json.Unmarshal(msg.Payload, &payload); err != nil {
			return err
		}
		from, err := model.ParseSquare(payload.From)
		if err != nil {
			return err
		}
		to, err := model.ParseSquare(payload.To)
		if err != nil {
			return err
		}
		_, err = wsc.gameService.HandleMove(gameID, from, to, model.PieceType(payload.Promotion))
		return err

	case ws.MessageTypeUndo:
		return wsc.gameService.UndoLastMove(gameID)

	case ws.MessageTypeReset:
		return wsc.gameService.ResetGame(gameID)

	default:
		return fmt.Errorf("unknown message type: %s", msg.Type)
	}
}

func (wsc *WebSocketController) sendError(c *websocket.Conn, errorMsg string) {
	payload, err := json.Marshal(errorPayload(errorMsg))
	if err != nil {
		return
	}
	if err := c.WriteJSON(ws.Message{
		Type:    ws.MessageTypeError,
		Payload: payload,
	}); err != nil {
		log.Printf("failed to send error message: %v", err)
	}
}

func errorPayload(msg string) map[string]string {
	return map[string]string{"error": msg}
}
