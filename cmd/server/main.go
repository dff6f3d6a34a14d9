package main

import (
	"flag"
	"log"
	"os"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/websocket/v2"

	"github.com/dkovacs/chesscore-backend/internal/controller"
	"github.com/dkovacs/chesscore-backend/internal/middleware"
	"github.com/dkovacs/chesscore-backend/internal/service"
	"github.com/dkovacs/chesscore-backend/internal/store"
)

func main() {
	addr := flag.String("addr", getenv("CHESSCORE_ADDR", ":3000"), "listen address")
	dataDir := flag.String("data", getenv("CHESSCORE_DATA", "data"), "badger data directory")
	origin := flag.String("origin", getenv("CHESSCORE_ORIGIN", "http://localhost:5173"), "allowed CORS origin")
	flag.Parse()

	gameStore, err := store.Open(*dataDir)
	if err != nil {
		log.Fatalf("failed to open game store: %v", err)
	}
	defer gameStore.Close()

	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins:     *origin,
		AllowHeaders:     "Origin, Content-Type, Accept",
		AllowMethods:     "GET, POST, OPTIONS",
		AllowCredentials: true,
	}))

	// Initialize services
	gameManager := service.NewGameManager(gameStore)
	gameService := service.NewGameService(gameManager)

	// Initialize controllers
	gameController := controller.NewGameController(gameService)
	wsController := controller.NewWebSocketController(gameService)

	// Set up WebSocket routes
	app.Use("/ws/game/:gameId", middleware.WebSocketUpgrade())
	app.Get("/ws/game/:gameId", websocket.New(wsController.HandleConnection, websocket.Config{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
		Origins:         []string{*origin},
	}))

	// Set up REST routes
	api := app.Group("/api")

	gameRoutes := api.Group("/game")
	gameRoutes.Post("/create", gameController.CreateGame)
	gameRoutes.Get("/:gameId", gameController.GetGameState)
	gameRoutes.Get("/:gameId/moves/:square", gameController.GetLegalMoves)
	gameRoutes.Post("/:gameId/move", gameController.MakeMove)
	gameRoutes.Post("/:gameId/undo", gameController.UndoLastMove)
	gameRoutes.Post("/:gameId/reset", gameController.ResetGame)

	log.Fatal(app.Listen(*addr))
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
