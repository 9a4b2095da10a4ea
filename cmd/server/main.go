package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/websocket/v2"
	"golang.org/x/sync/errgroup"

	"github.com/benbeisheim/chesscheck-backend/internal/controller"
	"github.com/benbeisheim/chesscheck-backend/internal/middleware"
	"github.com/benbeisheim/chesscheck-backend/internal/service"
	"github.com/benbeisheim/chesscheck-backend/internal/store"
)

func main() {
	addr := flag.String("addr", getenv("CHESSCHECK_ADDR", ":3000"), "listen address")
	dataDir := flag.String("data", getenv("CHESSCHECK_DATA", "data/chesscheck"), "archive database directory")
	origins := flag.String("origins", getenv("CHESSCHECK_ORIGINS", "http://localhost:5173"), "allowed CORS origins")
	flag.Parse()

	archive, err := store.Open(*dataDir)
	if err != nil {
		log.Fatalf("open archive store: %v", err)
	}
	defer archive.Close()

	app := fiber.New()

	app.Use(logger.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins:     *origins,
		AllowHeaders:     "Origin, Content-Type, Accept, X-Client-ID",
		AllowMethods:     "GET, POST, OPTIONS",
		AllowCredentials: true,
	}))

	// Initialize services
	gameManager := service.NewGameManager()
	gameService := service.NewGameService(gameManager, archive)

	// Initialize controllers
	gameController := controller.NewGameController(gameService)
	wsController := controller.NewWebSocketController(gameService)

	// WebSocket routes
	app.Use("/ws/*", middleware.EnsureClientID())
	app.Use("/ws/game/:gameId", middleware.WebSocketUpgrade())
	app.Get("/ws/game/:gameId", websocket.New(func(c *websocket.Conn) {
		wsController.HandleConnection(c)
	}, websocket.Config{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
	}))

	// REST routes
	api := app.Group("/api", middleware.EnsureClientID())

	gameRoutes := api.Group("/game")
	gameRoutes.Post("/create", gameController.CreateGame)
	gameRoutes.Get("/:gameId", gameController.GetGameState)
	gameRoutes.Post("/:gameId/move", gameController.Move)
	gameRoutes.Post("/:gameId/reset", gameController.ResetGame)
	gameRoutes.Get("/:gameId/analysis", gameController.GetAnalysis)
	gameRoutes.Post("/:gameId/archive", gameController.ArchiveGame)

	archiveRoutes := api.Group("/archive")
	archiveRoutes.Get("/", gameController.ListArchivedGames)
	archiveRoutes.Get("/:gameId", gameController.GetArchivedGame)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return app.Listen(*addr)
	})
	g.Go(func() error {
		<-ctx.Done()
		log.Println("shutting down")
		return app.ShutdownWithTimeout(5 * time.Second)
	})

	if err := g.Wait(); err != nil {
		log.Fatal(err)
	}
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
