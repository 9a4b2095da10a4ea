package model

import (
	"encoding/json"
	"fmt"
)

type Color string

const (
	White Color = "white"
	Black Color = "black"
)

func (c Color) Opponent() Color {
	if c == White {
		return Black
	}
	return White
}

// Letter is the single-character color tag used in board notation.
func (c Color) Letter() string {
	if c == White {
		return "W"
	}
	return "B"
}

type PieceKind string

const (
	Pawn   PieceKind = "pawn"
	Rook   PieceKind = "rook"
	Knight PieceKind = "knight"
	Bishop PieceKind = "bishop"
	Queen  PieceKind = "queen"
	King   PieceKind = "king"
)

// Letter is the algebraic piece letter (knight is N, pawn is P).
func (k PieceKind) Letter() string {
	switch k {
	case Pawn:
		return "P"
	case Rook:
		return "R"
	case Knight:
		return "N"
	case Bishop:
		return "B"
	case Queen:
		return "Q"
	case King:
		return "K"
	}
	return "?"
}

// Piece is a single chess piece. Kind and color are fixed at construction;
// the moved flag is the only mutable state and flips once, on the piece's
// first relocation. Material value is the scoring table's business, not the
// piece's: Value always reports 0.
type Piece struct {
	kind     PieceKind
	color    Color
	hasMoved bool
}

// NewPiece constructs a piece. Both kind and color are mandatory.
func NewPiece(kind PieceKind, color Color) (*Piece, error) {
	if kind == "" || color == "" {
		return nil, ErrMissingAttribute
	}
	return &Piece{kind: kind, color: color}, nil
}

func (p *Piece) Kind() PieceKind { return p.kind }

func (p *Piece) Color() Color { return p.color }

func (p *Piece) HasMoved() bool { return p.hasMoved }

// MarkMoved flags the piece as having moved. Idempotent.
func (p *Piece) MarkMoved() { p.hasMoved = true }

func (p *Piece) IsOfType(kind PieceKind) bool { return p.kind == kind }

// Value reports the piece's own material value, which is always 0. Material
// is looked up through PieceValue instead; see scoring.go.
func (p *Piece) Value() int { return 0 }

// Notation renders the piece as its algebraic letter plus a color tag,
// e.g. "NW" for a white knight.
func (p *Piece) Notation() string {
	return fmt.Sprintf("%s%s", p.kind.Letter(), p.color.Letter())
}

func (p *Piece) String() string { return p.Notation() }

func (p *Piece) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Kind     PieceKind `json:"type"`
		Color    Color     `json:"color"`
		HasMoved bool      `json:"hasMoved"`
	}{p.kind, p.color, p.hasMoved})
}

func (p *Piece) UnmarshalJSON(data []byte) error {
	var raw struct {
		Kind     PieceKind `json:"type"`
		Color    Color     `json:"color"`
		HasMoved bool      `json:"hasMoved"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if raw.Kind == "" || raw.Color == "" {
		return ErrMissingAttribute
	}
	p.kind = raw.Kind
	p.color = raw.Color
	p.hasMoved = raw.HasMoved
	return nil
}
