package model

// Verdict is the analyzer's three-way material comparison.
type Verdict string

const (
	VerdictWhiteWinning Verdict = "white_winning"
	VerdictBlackWinning Verdict = "black_winning"
	VerdictTied         Verdict = "tied"
)

// Analysis is the structured summary produced by GameAnalyzer.Report.
type Analysis struct {
	WhiteScore int     `json:"whiteScore"`
	BlackScore int     `json:"blackScore"`
	Verdict    Verdict `json:"verdict"`
}

// GameAnalyzer computes per-color material scores over a board's current
// snapshot. Constructing an analyzer without a board is allowed; every
// query on an unbound analyzer fails with ErrUnboundBoard.
type GameAnalyzer struct {
	board *Board
}

func NewGameAnalyzer(board *Board) *GameAnalyzer {
	return &GameAnalyzer{board: board}
}

// CalculatePlayerScore sums the per-piece Value accessor over every piece
// of the given color. Piece.Value always reports 0, so this score stays 0
// no matter the material on the board; see DESIGN.md for why the summation
// is kept on the accessor rather than the PieceValue table.
func (a *GameAnalyzer) CalculatePlayerScore(color Color) (int, error) {
	if a.board == nil {
		return 0, ErrUnboundBoard
	}
	score := 0
	for _, row := range a.board.Snapshot() {
		for _, piece := range row {
			if piece != nil && piece.Color() == color {
				score += piece.Value()
			}
		}
	}
	return score, nil
}

// IsPlayerWinning reports whether the given color's score strictly exceeds
// the opponent's.
func (a *GameAnalyzer) IsPlayerWinning(color Color) (bool, error) {
	playerScore, err := a.CalculatePlayerScore(color)
	if err != nil {
		return false, err
	}
	opponentScore, err := a.CalculatePlayerScore(color.Opponent())
	if err != nil {
		return false, err
	}
	return playerScore > opponentScore, nil
}

// Report returns both scores and the verdict. When neither color is
// strictly ahead the verdict is tied.
func (a *GameAnalyzer) Report() (Analysis, error) {
	whiteScore, err := a.CalculatePlayerScore(White)
	if err != nil {
		return Analysis{}, err
	}
	blackScore, err := a.CalculatePlayerScore(Black)
	if err != nil {
		return Analysis{}, err
	}

	verdict := VerdictTied
	if whiteWinning, _ := a.IsPlayerWinning(White); whiteWinning {
		verdict = VerdictWhiteWinning
	} else if blackWinning, _ := a.IsPlayerWinning(Black); blackWinning {
		verdict = VerdictBlackWinning
	}

	return Analysis{
		WhiteScore: whiteScore,
		BlackScore: blackScore,
		Verdict:    verdict,
	}, nil
}
