package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/benbeisheim/chesscheck-backend/internal/model"
	"github.com/benbeisheim/chesscheck-backend/internal/service"
	"github.com/benbeisheim/chesscheck-backend/internal/store"
)

type GameController struct {
	gameService *service.GameService
}

func NewGameController(gameService *service.GameService) *GameController {
	return &GameController{gameService: gameService}
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

	state, err := gc.gameService.GetGameState(gameID)
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
	return c.JSON(state)
}

// Move executes a board move. Rejected moves are not an HTTP error: the
// response is 200 with moved=false, mirroring the board's boolean
// contract.
func (gc *GameController) Move(c *fiber.Ctx) error {
	gameID := c.Params("gameId")

	var req model.MoveRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid move payload",
		})
	}

	moved, err := gc.gameService.HandleMove(gameID, req)
	if err != nil {
		if errors.Is(err, service.ErrGameNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to execute move",
		})
	}
	return c.JSON(fiber.Map{
		"moved": moved,
	})
}

func (gc *GameController) ResetGame(c *fiber.Ctx) error {
	gameID := c.Params("gameId")

	if err := gc.gameService.ResetGame(gameID); err != nil {
		if errors.Is(err, service.ErrGameNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to reset game",
		})
	}
	return c.JSON(fiber.Map{
		"message": "Board reset",
	})
}

func (gc *GameController) GetAnalysis(c *fiber.Ctx) error {
	gameID := c.Params("gameId")

	analysis, err := gc.gameService.AnalyzeGame(gameID)
	if err != nil {
		if errors.Is(err, service.ErrGameNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to analyze game",
		})
	}
	return c.JSON(analysis)
}

func (gc *GameController) ArchiveGame(c *fiber.Ctx) error {
	gameID := c.Params("gameId")

	if err := gc.gameService.ArchiveGame(gameID); err != nil {
		if errors.Is(err, service.ErrGameNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to archive game",
		})
	}
	return c.JSON(fiber.Map{
		"message": "Game archived",
	})
}

func (gc *GameController) GetArchivedGame(c *fiber.Ctx) error {
	gameID := c.Params("gameId")

	rec, err := gc.gameService.GetArchivedGame(gameID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to load archived game",
		})
	}
	return c.JSON(rec)
}

func (gc *GameController) ListArchivedGames(c *fiber.Ctx) error {
	ids, err := gc.gameService.ListArchivedGames()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to list archived games",
		})
	}
	return c.JSON(fiber.Map{
		"games": ids,
	})
}
