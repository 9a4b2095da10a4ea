package model

import "log"

// BoardSize is the fixed edge length of the grid.
const BoardSize = 8

// Position is a (row, col) cell address on the grid.
type Position struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// CapturedPieces holds the pieces each color has taken off the board, in
// capture order. Append-only between resets.
type CapturedPieces struct {
	White []*Piece `json:"white"`
	Black []*Piece `json:"black"`
}

func newCapturedPieces() CapturedPieces {
	return CapturedPieces{
		White: make([]*Piece, 0),
		Black: make([]*Piece, 0),
	}
}

// ForColor returns the capture list for the given color.
func (cp CapturedPieces) ForColor(color Color) []*Piece {
	if color == White {
		return cp.White
	}
	return cp.Black
}

// Board is the mutable 8x8 board state: the piece grid, capture
// bookkeeping, the move-history log, and movement counters. It owns every
// piece placed on it; pieces are never shared across boards or cells.
//
// Board performs no internal locking. Hosts with concurrent callers must
// serialize access; Game wraps a Board with exactly that lock.
type Board struct {
	grid       [][]*Piece
	captured   CapturedPieces
	history    []MoveRecord
	totalMoves int
	kindMoves  map[PieceKind]int
}

func NewBoard() *Board {
	b := &Board{}
	b.Reset()
	return b
}

var backRank = []PieceKind{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}

func newGrid() [][]*Piece {
	grid := make([][]*Piece, BoardSize)
	for i := range grid {
		grid[i] = make([]*Piece, BoardSize)
	}
	for col, kind := range backRank {
		grid[0][col] = mustPiece(kind, White)
		grid[7][col] = mustPiece(kind, Black)
	}
	for col := 0; col < BoardSize; col++ {
		grid[1][col] = mustPiece(Pawn, White)
		grid[6][col] = mustPiece(Pawn, Black)
	}
	return grid
}

func mustPiece(kind PieceKind, color Color) *Piece {
	p, err := NewPiece(kind, color)
	if err != nil {
		panic(err)
	}
	return p
}

// IsValidCoordinate reports whether (row, col) addresses a cell on the grid.
func (b *Board) IsValidCoordinate(row, col int) bool {
	return row >= 0 && row < BoardSize && col >= 0 && col < BoardSize
}

// PieceAt returns the piece at (row, col), or nil if the cell is empty.
// Out-of-range coordinates also return nil rather than an error.
func (b *Board) PieceAt(row, col int) *Piece {
	if !b.IsValidCoordinate(row, col) {
		return nil
	}
	return b.grid[row][col]
}

// ValidateMove checks that both endpoints are on the board and that the
// source cell is occupied. It deliberately checks nothing else: no
// piece-specific legality, no destination occupancy, no turn order.
func (b *Board) ValidateMove(fromRow, fromCol, toRow, toCol int) error {
	if !b.IsValidCoordinate(fromRow, fromCol) || !b.IsValidCoordinate(toRow, toCol) {
		return ErrOutOfBounds
	}
	if b.grid[fromRow][fromCol] == nil {
		return ErrEmptySource
	}
	return nil
}

// MovePiece relocates the piece at the source cell to the destination,
// unconditionally. Validation failures are logged and reported as false
// with no state change. A successful move captures any prior occupant of
// the destination (same-color occupants included), marks the piece moved,
// increments the counters, and appends a MoveRecord. Moving a piece onto
// its own cell is a valid recorded no-op relocation.
func (b *Board) MovePiece(fromRow, fromCol, toRow, toCol int) bool {
	if err := b.ValidateMove(fromRow, fromCol, toRow, toCol); err != nil {
		log.Printf("move (%d,%d)->(%d,%d) rejected: %v", fromRow, fromCol, toRow, toCol, err)
		return false
	}

	piece := b.grid[fromRow][fromCol]
	captured := b.grid[toRow][toCol]
	if captured == piece {
		// from == to: the destination occupant is the mover itself.
		captured = nil
	}
	if captured != nil {
		switch piece.Color() {
		case White:
			b.captured.White = append(b.captured.White, captured)
		case Black:
			b.captured.Black = append(b.captured.Black, captured)
		}
		log.Printf("captured %s (value: %d)", captured, captured.Value())
	}

	b.grid[fromRow][fromCol] = nil
	b.grid[toRow][toCol] = piece
	piece.MarkMoved()

	b.totalMoves++
	b.kindMoves[piece.Kind()]++
	log.Printf("moved %s: total %s moves = %d", piece, piece.Kind(), b.kindMoves[piece.Kind()])

	b.history = append(b.history, MoveRecord{
		Piece:    piece,
		From:     Position{Row: fromRow, Col: fromCol},
		To:       Position{Row: toRow, Col: toCol},
		Captured: captured,
		Sequence: b.totalMoves,
	})
	return true
}

// Reset restores the standard initial layout, discarding every existing
// piece, the capture lists, the move history, and all counters.
func (b *Board) Reset() {
	b.grid = newGrid()
	b.captured = newCapturedPieces()
	b.history = make([]MoveRecord, 0)
	b.totalMoves = 0
	b.kindMoves = make(map[PieceKind]int)
}

// Snapshot exposes the live grid. Callers holding the returned slices
// observe subsequent board mutations; no defensive copy is made.
func (b *Board) Snapshot() [][]*Piece {
	return b.grid
}

// Captured returns the capture bookkeeping for both colors.
func (b *Board) Captured() CapturedPieces {
	return b.captured
}

// History returns the move log in execution order.
func (b *Board) History() []MoveRecord {
	return b.history
}

// TotalMoves reports how many moves have executed since the last reset.
func (b *Board) TotalMoves() int {
	return b.totalMoves
}

// MovesByKind reports how many times pieces of the given kind have moved
// since the last reset.
func (b *Board) MovesByKind(kind PieceKind) int {
	return b.kindMoves[kind]
}
