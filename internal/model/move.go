package model

// MoveRecord is one entry in the board's move-history log. Records are
// append-only and never mutated after the move executes.
type MoveRecord struct {
	Piece    *Piece   `json:"piece"`
	From     Position `json:"from"`
	To       Position `json:"to"`
	Captured *Piece   `json:"captured"`
	Sequence int      `json:"sequence"`
}

// MoveRequest is the wire shape of a move submitted over HTTP or a
// WebSocket message.
type MoveRequest struct {
	From Position `json:"from"`
	To   Position `json:"to"`
}
