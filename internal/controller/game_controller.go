package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/dkovacs/chesscore-backend/internal/model"
	"github.com/dkovacs/chesscore-backend/internal/service"
)

type GameController struct {
	gameService *service.GameService
}

func NewGameController(gameService *service.GameService) *GameController {
	return &GameController{gameService: gameService}
}

// MoveRequest carries a move command as algebraic squares ("e2", "e4").
type MoveRequest struct {
	From      string `json:"from"`
	To        string `json:"to"`
	Promotion string `json:"promotion,omitempty"`
}

func (gc *GameController) CreateGame(c *fiber.Ctx) error {
	gameID, err := gc.gameService.CreateGame()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	return c.JSON(fiber.Map{
		"message": "Game created",
		"game_id": gameID,
	})
}

func (gc *GameController) GetGameState(c *fiber.Ctx) error {
	gameID := c.Params("gameId")

	gameState, err := gc.gameService.GetGameState(gameID)
	if err != nil {
		if errors.Is(err, service.ErrGameNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch game state",
		})
	}

	return c.JSON(gameState)
}

func (gc *GameController) GetLegalMoves(c *fiber.Ctx) error {
	gameID := c.Params("gameId")

	pos, err := model.ParseSquare(c.Params("square"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	moves, err := gc.gameService.LegalMoves(gameID, pos)
	if err != nil {
		return gc.errorResponse(c, err)
	}

	squares := make([]string, 0, len(moves))
	for _, move := range moves {
		squares = append(squares, move.String())
	}
	return c.JSON(fiber.Map{
		"square": pos.String(),
		"moves":  squares,
	})
}

func (gc *GameController) MakeMove(c *fiber.Ctx) error {
	gameID := c.Params("gameId")

	var req MoveRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid move request body",
		})
	}
	from, err := model.ParseSquare(req.From)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	to, err := model.ParseSquare(req.To)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	move, err := gc.gameService.HandleMove(gameID, from, to, model.PieceType(req.Promotion))
	if err != nil {
		return gc.errorResponse(c, err)
	}

	gameState, err := gc.gameService.GetGameState(gameID)
	if err != nil {
		return gc.errorResponse(c, err)
	}
	return c.JSON(fiber.Map{
		"move":  move,
		"state": gameState,
	})
}

func (gc *GameController) UndoLastMove(c *fiber.Ctx) error {
	gameID := c.Params("gameId")

	if err := gc.gameService.UndoLastMove(gameID); err != nil {
		return gc.errorResponse(c, err)
	}

	gameState, err := gc.gameService.GetGameState(gameID)
	if err != nil {
		return gc.errorResponse(c, err)
	}
	return c.JSON(gameState)
}

func (gc *GameController) ResetGame(c *fiber.Ctx) error {
	gameID := c.Params("gameId")

	if err := gc.gameService.ResetGame(gameID); err != nil {
		return gc.errorResponse(c, err)
	}

	gameState, err := gc.gameService.GetGameState(gameID)
	if err != nil {
		return gc.errorResponse(c, err)
	}
	return c.JSON(gameState)
}

// errorResponse maps engine rejections to HTTP statuses. All of them are
// recoverable-by-caller; none leave the game in a partial state.
func (gc *GameController) errorResponse(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, service.ErrGameNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": err.Error(),
		})
	case errors.Is(err, model.ErrPromotionRequired):
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"promotionRequired": true,
			"error":             err.Error(),
		})
	case errors.Is(err, model.ErrInvalidPosition),
		errors.Is(err, model.ErrNoPieceAtSource),
		errors.Is(err, model.ErrIllegalMove),
		errors.Is(err, model.ErrEmptyHistory):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"error": err.Error(),
	})
}
