// Command demo drives a single board through the example scenario: print
// the opening position, push a few pawns through a capture, and report the
// material analysis and piece counts.
package main

import (
	"fmt"
	"log"

	"github.com/benbeisheim/chesscheck-backend/internal/model"
)

func main() {
	white := model.Player{Name: "Alice", Color: model.White}
	black := model.Player{Name: "Bob", Color: model.Black}
	fmt.Printf("%s vs %s\n", white, black)

	board := model.NewBoard()
	fmt.Print(model.FormatGrid(board.Snapshot()))

	analyzer := model.NewGameAnalyzer(board)

	board.MovePiece(1, 0, 3, 0) // white pawn
	board.MovePiece(6, 0, 4, 0) // black pawn
	board.MovePiece(3, 0, 4, 0) // white pawn takes black pawn

	report, err := analyzer.Report()
	if err != nil {
		log.Fatalf("analysis: %v", err)
	}
	fmt.Printf("White score: %d\n", report.WhiteScore)
	fmt.Printf("Black score: %d\n", report.BlackScore)
	switch report.Verdict {
	case model.VerdictWhiteWinning:
		fmt.Println("White is winning.")
	case model.VerdictBlackWinning:
		fmt.Println("Black is winning.")
	default:
		fmt.Println("The game is currently tied.")
	}

	for _, color := range []model.Color{model.White, model.Black} {
		fmt.Printf("%s captured pieces:", color)
		for _, piece := range board.Captured().ForColor(color) {
			fmt.Printf(" %s", piece)
		}
		fmt.Println()
	}

	whiteCount, err := model.CountPiecesByColor(board.Snapshot(), model.White)
	if err != nil {
		log.Fatalf("count white: %v", err)
	}
	blackCount, err := model.CountPiecesByColor(board.Snapshot(), model.Black)
	if err != nil {
		log.Fatalf("count black: %v", err)
	}
	fmt.Printf("Total white pieces: %d\n", whiteCount)
	fmt.Printf("Total black pieces: %d\n", blackCount)

	fmt.Print(model.FormatGrid(board.Snapshot()))
}
