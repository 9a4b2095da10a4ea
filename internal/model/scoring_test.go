package model

import "testing"

func TestPieceValueTable(t *testing.T) {
	tests := []struct {
		kind PieceKind
		want int
	}{
		{Pawn, 1},
		{Knight, 3},
		{Bishop, 3},
		{Rook, 5},
		{Queen, 9},
		{King, 0},
		{"", 0},
		{"dragon", 0},
	}

	for _, tt := range tests {
		if got := PieceValue(tt.kind); got != tt.want {
			t.Errorf("PieceValue(%q) = %d, want %d", tt.kind, got, tt.want)
		}
	}
}
