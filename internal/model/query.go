package model

import "strings"

// IsCapture reports whether moving from (fromRow, fromCol) to
// (toRow, toCol) on the given grid would be a capture: both cells occupied
// and by pieces of different colors. The grid must be non-nil and both
// coordinates in range; out-of-range coordinates panic, they are a caller
// contract violation rather than a soft false.
func IsCapture(grid [][]*Piece, fromRow, fromCol, toRow, toCol int) (bool, error) {
	if grid == nil {
		return false, ErrNilGrid
	}
	src := grid[fromRow][fromCol]
	dst := grid[toRow][toCol]
	return src != nil && dst != nil && src.Color() != dst.Color(), nil
}

// CountPiecesByColor counts the occupied cells holding pieces of the given
// color.
func CountPiecesByColor(grid [][]*Piece, color Color) (int, error) {
	if grid == nil {
		return 0, ErrNilGrid
	}
	count := 0
	for _, row := range grid {
		for _, piece := range row {
			if piece != nil && piece.Color() == color {
				count++
			}
		}
	}
	return count, nil
}

// FormatGrid renders the grid as rows of two-character tokens: the first
// letter of the piece kind uppercased plus W or B, or "." for an empty
// cell. Purely presentational.
func FormatGrid(grid [][]*Piece) string {
	var sb strings.Builder
	for _, row := range grid {
		for col, piece := range row {
			if col > 0 {
				sb.WriteByte(' ')
			}
			if piece == nil {
				sb.WriteByte('.')
				continue
			}
			sb.WriteString(strings.ToUpper(string(piece.Kind())[:1]))
			sb.WriteString(piece.Color().Letter())
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
