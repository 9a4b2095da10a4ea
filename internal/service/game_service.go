package service

import (
	"fmt"

	"github.com/gofiber/websocket/v2"
	"github.com/google/uuid"

	"github.com/benbeisheim/chesscheck-backend/internal/model"
	"github.com/benbeisheim/chesscheck-backend/internal/store"
)

// GameService is the application surface the controllers talk to: live
// games via the manager, archived games via the store.
type GameService struct {
	gameManager *GameManager
	archive     *store.Store
}

func NewGameService(gameManager *GameManager, archive *store.Store) *GameService {
	return &GameService{
		gameManager: gameManager,
		archive:     archive,
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

func (gs *GameService) HandleMove(gameID string, req model.MoveRequest) (bool, error) {
	return gs.gameManager.MovePiece(gameID, req)
}

func (gs *GameService) ResetGame(gameID string) error {
	return gs.gameManager.ResetGame(gameID)
}

func (gs *GameService) AnalyzeGame(gameID string) (model.Analysis, error) {
	return gs.gameManager.AnalyzeGame(gameID)
}

// ArchiveGame snapshots a live game's state and analysis into the archive
// store.
func (gs *GameService) ArchiveGame(gameID string) error {
	state, err := gs.gameManager.GetGameState(gameID)
	if err != nil {
		return err
	}
	analysis, err := gs.gameManager.AnalyzeGame(gameID)
	if err != nil {
		return err
	}

	rec := store.GameArchive{
		ID:       gameID,
		State:    state,
		Analysis: analysis,
	}
	if err := gs.archive.SaveGame(rec); err != nil {
		return fmt.Errorf("failed to archive game: %w", err)
	}
	return nil
}

func (gs *GameService) GetArchivedGame(gameID string) (store.GameArchive, error) {
	return gs.archive.LoadGame(gameID)
}

func (gs *GameService) ListArchivedGames() ([]string, error) {
	return gs.archive.ListGames()
}

func (gs *GameService) RegisterConnection(gameID, clientID string, conn *websocket.Conn) error {
	return gs.gameManager.RegisterConnection(gameID, clientID, conn)
}

func (gs *GameService) UnregisterConnection(gameID, clientID string) {
	gs.gameManager.UnregisterConnection(gameID, clientID)
}
