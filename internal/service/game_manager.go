package service

import (
	"errors"
	"sync"

	"github.com/gofiber/websocket/v2"

	"github.com/benbeisheim/chesscheck-backend/internal/model"
)

var (
	ErrGameNotFound = errors.New("game not found")
	ErrGameExists   = errors.New("game already exists")
)

// GameManager holds every live game, keyed by ID.
type GameManager struct {
	mu    sync.RWMutex
	games map[string]*model.Game
}

func NewGameManager() *GameManager {
	return &GameManager{
		games: make(map[string]*model.Game),
	}
}

func (gm *GameManager) CreateGame(gameID string) error {
	gm.mu.Lock()
	defer gm.mu.Unlock()

	if _, exists := gm.games[gameID]; exists {
		return ErrGameExists
	}
	gm.games[gameID] = model.NewGame(gameID)
	return nil
}

func (gm *GameManager) GetGame(gameID string) (*model.Game, error) {
	gm.mu.RLock()
	defer gm.mu.RUnlock()

	game, exists := gm.games[gameID]
	if !exists {
		return nil, ErrGameNotFound
	}
	return game, nil
}

func (gm *GameManager) GetGameState(gameID string) (model.GameState, error) {
	game, err := gm.GetGame(gameID)
	if err != nil {
		return model.GameState{}, err
	}
	return game.State(), nil
}

// MovePiece forwards the move to the game and reports whether it executed.
func (gm *GameManager) MovePiece(gameID string, req model.MoveRequest) (bool, error) {
	game, err := gm.GetGame(gameID)
	if err != nil {
		return false, err
	}
	return game.MovePiece(req), nil
}

func (gm *GameManager) ResetGame(gameID string) error {
	game, err := gm.GetGame(gameID)
	if err != nil {
		return err
	}
	game.Reset()
	return nil
}

func (gm *GameManager) AnalyzeGame(gameID string) (model.Analysis, error) {
	game, err := gm.GetGame(gameID)
	if err != nil {
		return model.Analysis{}, err
	}
	return game.Analysis()
}

func (gm *GameManager) RegisterConnection(gameID, clientID string, conn *websocket.Conn) error {
	game, err := gm.GetGame(gameID)
	if err != nil {
		return err
	}
	game.RegisterConnection(clientID, conn)
	return nil
}

func (gm *GameManager) UnregisterConnection(gameID, clientID string) {
	game, err := gm.GetGame(gameID)
	if err != nil {
		return
	}
	game.UnregisterConnection(clientID)
}
