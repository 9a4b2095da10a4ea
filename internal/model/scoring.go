package model

// pieceValues is the material value table. The king scores 0 so that
// material comparisons never hinge on the one piece that cannot leave the
// board.
var pieceValues = map[PieceKind]int{
	Pawn:   1,
	Knight: 3,
	Bishop: 3,
	Rook:   5,
	Queen:  9,
	King:   0,
}

// PieceValue returns the material value for a piece kind. Unknown or zero
// kinds score 0; the lookup is total and never fails.
func PieceValue(kind PieceKind) int {
	return pieceValues[kind]
}
