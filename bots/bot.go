// bot.go
package bots

import (
	"github.com/notnil/chess"

	"loserchess/board"
)

// ChessBot picks a move for color on the given board. ok is false when the side
// has no legal move; callers must check it before applying the move.
type ChessBot interface {
	BestMove(b board.Board, color chess.Color) (m board.Move, ok bool)
	Name() string
}

// PositionEvaluator scores a board from the perspective of one color.
type PositionEvaluator interface {
	Evaluate(b board.Board, perspective chess.Color) float64
}
