package service

import (
	"errors"
	"testing"

	"github.com/benbeisheim/chesscheck-backend/internal/model"
	"github.com/benbeisheim/chesscheck-backend/internal/store"
)

func newTestService(t *testing.T) *GameService {
	t.Helper()
	archive, err := store.OpenInMemory()
	if err != nil {
		t.Fatalf("OpenInMemory: %v", err)
	}
	t.Cleanup(func() { archive.Close() })
	return NewGameService(NewGameManager(), archive)
}

func TestCreateGameAssignsUniqueIDs(t *testing.T) {
	gs := newTestService(t)

	id1, err := gs.CreateGame()
	if err != nil {
		t.Fatalf("CreateGame: %v", err)
	}
	id2, err := gs.CreateGame()
	if err != nil {
		t.Fatalf("CreateGame: %v", err)
	}
	if id1 == "" || id1 == id2 {
		t.Errorf("game IDs = %q, %q; want distinct non-empty", id1, id2)
	}

	state, err := gs.GetGameState(id1)
	if err != nil {
		t.Fatalf("GetGameState: %v", err)
	}
	if state.TotalMoves != 0 {
		t.Errorf("fresh game TotalMoves = %d, want 0", state.TotalMoves)
	}
}

func TestHandleMoveBooleanContract(t *testing.T) {
	gs := newTestService(t)
	id, err := gs.CreateGame()
	if err != nil {
		t.Fatalf("CreateGame: %v", err)
	}

	moved, err := gs.HandleMove(id, model.MoveRequest{
		From: model.Position{Row: 1, Col: 0},
		To:   model.Position{Row: 3, Col: 0},
	})
	if err != nil || !moved {
		t.Fatalf("valid move = (%v, %v), want (true, nil)", moved, err)
	}

	moved, err = gs.HandleMove(id, model.MoveRequest{
		From: model.Position{Row: 3, Col: 3},
		To:   model.Position{Row: 4, Col: 4},
	})
	if err != nil || moved {
		t.Fatalf("empty-source move = (%v, %v), want (false, nil)", moved, err)
	}
}

func TestUnknownGameIsAnError(t *testing.T) {
	gs := newTestService(t)

	if _, err := gs.GetGameState("nope"); !errors.Is(err, ErrGameNotFound) {
		t.Errorf("GetGameState error = %v, want ErrGameNotFound", err)
	}
	if _, err := gs.HandleMove("nope", model.MoveRequest{}); !errors.Is(err, ErrGameNotFound) {
		t.Errorf("HandleMove error = %v, want ErrGameNotFound", err)
	}
	if err := gs.ResetGame("nope"); !errors.Is(err, ErrGameNotFound) {
		t.Errorf("ResetGame error = %v, want ErrGameNotFound", err)
	}
	if err := gs.ArchiveGame("nope"); !errors.Is(err, ErrGameNotFound) {
		t.Errorf("ArchiveGame error = %v, want ErrGameNotFound", err)
	}
}

func TestArchiveRoundTrip(t *testing.T) {
	gs := newTestService(t)
	id, err := gs.CreateGame()
	if err != nil {
		t.Fatalf("CreateGame: %v", err)
	}

	if _, err := gs.HandleMove(id, model.MoveRequest{
		From: model.Position{Row: 1, Col: 0},
		To:   model.Position{Row: 3, Col: 0},
	}); err != nil {
		t.Fatalf("HandleMove: %v", err)
	}
	if err := gs.ArchiveGame(id); err != nil {
		t.Fatalf("ArchiveGame: %v", err)
	}

	rec, err := gs.GetArchivedGame(id)
	if err != nil {
		t.Fatalf("GetArchivedGame: %v", err)
	}
	if rec.State.TotalMoves != 1 {
		t.Errorf("archived TotalMoves = %d, want 1", rec.State.TotalMoves)
	}
	if rec.Analysis.Verdict != model.VerdictTied {
		t.Errorf("archived verdict = %q, want %q", rec.Analysis.Verdict, model.VerdictTied)
	}

	ids, err := gs.ListArchivedGames()
	if err != nil {
		t.Fatalf("ListArchivedGames: %v", err)
	}
	if len(ids) != 1 || ids[0] != id {
		t.Errorf("ListArchivedGames = %v, want [%s]", ids, id)
	}
}

func TestResetGame(t *testing.T) {
	gs := newTestService(t)
	id, err := gs.CreateGame()
	if err != nil {
		t.Fatalf("CreateGame: %v", err)
	}

	if _, err := gs.HandleMove(id, model.MoveRequest{
		From: model.Position{Row: 1, Col: 0},
		To:   model.Position{Row: 3, Col: 0},
	}); err != nil {
		t.Fatalf("HandleMove: %v", err)
	}
	if err := gs.ResetGame(id); err != nil {
		t.Fatalf("ResetGame: %v", err)
	}

	state, err := gs.GetGameState(id)
	if err != nil {
		t.Fatalf("GetGameState: %v", err)
	}
	if state.TotalMoves != 0 || len(state.History) != 0 {
		t.Errorf("post-reset state: moves=%d history=%d, want 0/0", state.TotalMoves, len(state.History))
	}
}
