package bots

import (
	"github.com/notnil/chess"

	"loserchess/board"
	"loserchess/movegen"
)

// DefaultEvaluator rewards shedding material. Every term is signed in favour of
// the perspective side owning less.
type DefaultEvaluator struct{}

const (
	MaterialWeight       = 10
	ForcedCapturePenalty = 5
	ExtraCaptureWeight   = 0.5
	PawnAdvanceWeight    = 0.1
	MobilityWeight       = 0.1
	QueenWeight          = 8
	RookWeight           = 5

	WinScore  = 1000
	LossScore = -1000
)

// Evaluate scores b for the default evaluator.
func Evaluate(b board.Board, perspective chess.Color) float64 {
	return DefaultEvaluator{}.Evaluate(b, perspective)
}

func (e DefaultEvaluator) Evaluate(b board.Board, bot chess.Color) float64 {
	opp := bot.Other()

	botPieces := board.PieceCount(b, bot)
	oppPieces := board.PieceCount(b, opp)
	if botPieces == 0 {
		return WinScore
	}
	if oppPieces == 0 {
		return LossScore
	}

	score := float64(oppPieces-botPieces) * MaterialWeight

	botCaptures := len(movegen.Captures(b, movegen.Legal(b, bot)))
	oppCaptures := len(movegen.Captures(b, movegen.Legal(b, opp)))
	if botCaptures > 0 {
		score -= ForcedCapturePenalty
	}
	if oppCaptures > 0 {
		score += ForcedCapturePenalty
	}
	if botCaptures > 1 {
		score += float64(botCaptures-1) * -ExtraCaptureWeight
	}
	if oppCaptures > 1 {
		score += float64(oppCaptures-1) * ExtraCaptureWeight
	}

	score += -PawnAdvanceWeight*float64(pawnRanks(b, bot)) + PawnAdvanceWeight*float64(pawnRanks(b, opp))
	score += -MobilityWeight*float64(movegen.Mobility(b, bot)) + MobilityWeight*float64(movegen.Mobility(b, opp))

	if board.Has(b, chess.NewPiece(chess.Queen, bot)) {
		score -= QueenWeight
	}
	if board.Has(b, chess.NewPiece(chess.Queen, opp)) {
		score += QueenWeight
	}
	score += -RookWeight * float64(board.Count(b, chess.NewPiece(chess.Rook, bot)))
	score += RookWeight * float64(board.Count(b, chess.NewPiece(chess.Rook, opp)))

	return score
}

// pawnRanks sums how far each pawn of color c stands from its own back rank.
func pawnRanks(b board.Board, c chess.Color) int {
	pawn := chess.NewPiece(chess.Pawn, c)
	total := 0
	for i, p := range b {
		if p != pawn {
			continue
		}
		row := board.Square(i).Row()
		if c == chess.White {
			total += 7 - row
		} else {
			total += row
		}
	}
	return total
}
