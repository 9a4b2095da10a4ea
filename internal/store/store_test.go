package store

import (
	"errors"
	"testing"

	"github.com/benbeisheim/chesscheck-backend/internal/model"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := OpenInMemory()
	if err != nil {
		t.Fatalf("OpenInMemory: %v", err)
	}
	t.Cleanup(func() {
		if err := s.Close(); err != nil {
			t.Errorf("Close: %v", err)
		}
	})
	return s
}

func TestSaveAndLoadGame(t *testing.T) {
	s := newTestStore(t)

	g := model.NewGame("abc-123")
	g.MovePiece(model.MoveRequest{From: model.Position{Row: 1, Col: 0}, To: model.Position{Row: 3, Col: 0}})
	g.MovePiece(model.MoveRequest{From: model.Position{Row: 6, Col: 0}, To: model.Position{Row: 4, Col: 0}})
	g.MovePiece(model.MoveRequest{From: model.Position{Row: 3, Col: 0}, To: model.Position{Row: 4, Col: 0}})
	analysis, err := g.Analysis()
	if err != nil {
		t.Fatalf("Analysis: %v", err)
	}

	if err := s.SaveGame(GameArchive{ID: "abc-123", State: g.State(), Analysis: analysis}); err != nil {
		t.Fatalf("SaveGame: %v", err)
	}

	rec, err := s.LoadGame("abc-123")
	if err != nil {
		t.Fatalf("LoadGame: %v", err)
	}
	if rec.ID != "abc-123" {
		t.Errorf("ID = %q, want %q", rec.ID, "abc-123")
	}
	if rec.State.TotalMoves != 3 {
		t.Errorf("TotalMoves = %d, want 3", rec.State.TotalMoves)
	}
	if len(rec.State.Captured.White) != 1 {
		t.Errorf("white captures = %d, want 1", len(rec.State.Captured.White))
	}
	pawn := rec.State.Board[4][0]
	if pawn == nil || !pawn.IsOfType(model.Pawn) || pawn.Color() != model.White || !pawn.HasMoved() {
		t.Errorf("board[4][0] = %v, want moved white pawn", pawn)
	}
	if rec.Analysis.Verdict != model.VerdictTied {
		t.Errorf("verdict = %q, want %q", rec.Analysis.Verdict, model.VerdictTied)
	}
	if rec.ArchivedAt.IsZero() {
		t.Error("ArchivedAt not set")
	}
}

func TestLoadGameNotFound(t *testing.T) {
	s := newTestStore(t)

	if _, err := s.LoadGame("missing"); !errors.Is(err, ErrNotFound) {
		t.Errorf("LoadGame(missing) error = %v, want ErrNotFound", err)
	}
}

func TestListGames(t *testing.T) {
	s := newTestStore(t)

	ids, err := s.ListGames()
	if err != nil {
		t.Fatalf("ListGames: %v", err)
	}
	if len(ids) != 0 {
		t.Fatalf("ListGames on empty store = %v", ids)
	}

	for _, id := range []string{"g1", "g2"} {
		g := model.NewGame(id)
		if err := s.SaveGame(GameArchive{ID: id, State: g.State()}); err != nil {
			t.Fatalf("SaveGame(%s): %v", id, err)
		}
	}

	ids, err = s.ListGames()
	if err != nil {
		t.Fatalf("ListGames: %v", err)
	}
	if len(ids) != 2 {
		t.Fatalf("ListGames = %v, want 2 IDs", ids)
	}
}
