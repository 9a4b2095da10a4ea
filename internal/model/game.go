package model

import (
	"log"
	"sync"

	"github.com/benbeisheim/chesscheck-backend/internal/ws"
	"github.com/gofiber/websocket/v2"
)

// GameConnections tracks the WebSocket connections observing one game.
type GameConnections struct {
	mu          sync.RWMutex
	connections map[string]*websocket.Conn // clientID -> connection
}

func NewGameConnections() *GameConnections {
	return &GameConnections{
		connections: make(map[string]*websocket.Conn),
	}
}

func (gc *GameConnections) Register(clientID string, conn *websocket.Conn) {
	gc.mu.Lock()
	defer gc.mu.Unlock()
	gc.connections[clientID] = conn
}

func (gc *GameConnections) Unregister(clientID string) {
	gc.mu.Lock()
	defer gc.mu.Unlock()
	delete(gc.connections, clientID)
}

func (gc *GameConnections) broadcast(msg ws.Message) {
	gc.mu.RLock()
	defer gc.mu.RUnlock()
	for clientID, conn := range gc.connections {
		if err := conn.WriteJSON(msg); err != nil {
			log.Printf("broadcast to %s failed: %v", clientID, err)
		}
	}
}

// GameState is the wire view of a game: the grid, its rendered token form,
// captures, history, and the move counter. It is a detached copy, never the
// live board: state is handed to JSON encoders and broadcast goroutines
// after the game lock is released, so it must not alias cells the next
// move will mutate.
type GameState struct {
	Board      [][]*Piece     `json:"board"`
	Rendered   string         `json:"rendered"`
	Captured   CapturedPieces `json:"capturedPieces"`
	History    []MoveRecord   `json:"moveHistory"`
	TotalMoves int            `json:"totalMoves"`
}

// Game is one hosted board session: a Board plus its analyzer behind a
// single mutex, and the connections watching it. The lock is the board's
// entire concurrency story; Board itself does no synchronization, and
// anything that leaves the lock (State results, broadcast payloads) is a
// detached copy.
type Game struct {
	ID          string
	mu          sync.Mutex
	board       *Board
	analyzer    *GameAnalyzer
	connections *GameConnections
}

func NewGame(id string) *Game {
	board := NewBoard()
	return &Game{
		ID:          id,
		board:       board,
		analyzer:    NewGameAnalyzer(board),
		connections: NewGameConnections(),
	}
}

// MovePiece executes a move and reports whether it was executed. The
// boolean is the whole contract: rejected moves are logged inside the
// board and surface only as false. Executed moves are broadcast to every
// registered connection.
func (g *Game) MovePiece(req MoveRequest) bool {
	g.mu.Lock()
	moved := g.board.MovePiece(req.From.Row, req.From.Col, req.To.Row, req.To.Col)
	state := g.stateLocked()
	g.mu.Unlock()

	if moved {
		go g.broadcastState(state)
	}
	return moved
}

// Reset reinitializes the board and notifies observers.
func (g *Game) Reset() {
	g.mu.Lock()
	g.board.Reset()
	state := g.stateLocked()
	g.mu.Unlock()

	go g.broadcastState(state)
}

// State returns the current wire view of the game. The returned value is
// detached from the live board; later moves do not show through it.
func (g *Game) State() GameState {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.stateLocked()
}

func (g *Game) stateLocked() GameState {
	return GameState{
		Board:      cloneGrid(g.board.Snapshot()),
		Rendered:   FormatGrid(g.board.Snapshot()),
		Captured:   cloneCaptured(g.board.Captured()),
		History:    cloneHistory(g.board.History()),
		TotalMoves: g.board.TotalMoves(),
	}
}

func clonePiece(p *Piece) *Piece {
	if p == nil {
		return nil
	}
	c := *p
	return &c
}

func clonePieces(pieces []*Piece) []*Piece {
	out := make([]*Piece, len(pieces))
	for i, p := range pieces {
		out[i] = clonePiece(p)
	}
	return out
}

func cloneGrid(grid [][]*Piece) [][]*Piece {
	out := make([][]*Piece, len(grid))
	for i, row := range grid {
		out[i] = clonePieces(row)
	}
	return out
}

func cloneCaptured(cp CapturedPieces) CapturedPieces {
	return CapturedPieces{
		White: clonePieces(cp.White),
		Black: clonePieces(cp.Black),
	}
}

func cloneHistory(history []MoveRecord) []MoveRecord {
	out := make([]MoveRecord, len(history))
	for i, rec := range history {
		rec.Piece = clonePiece(rec.Piece)
		rec.Captured = clonePiece(rec.Captured)
		out[i] = rec
	}
	return out
}

// Analysis runs the material analyzer over the current board.
func (g *Game) Analysis() (Analysis, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.analyzer.Report()
}

func (g *Game) RegisterConnection(clientID string, conn *websocket.Conn) {
	g.connections.Register(clientID, conn)
}

func (g *Game) UnregisterConnection(clientID string) {
	g.connections.Unregister(clientID)
}

func (g *Game) broadcastState(state GameState) {
	msg, err := ws.NewMessage(ws.MessageTypeBoardState, state)
	if err != nil {
		log.Printf("encode state broadcast: %v", err)
		return
	}
	g.connections.broadcast(msg)
}
