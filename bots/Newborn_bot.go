package bots

import (
	"github.com/notnil/chess"

	"loserchess/board"
	"loserchess/movegen"
)

// NewbornBot always plays the first legal move.
type NewbornBot struct{}

func NewNewbornBot() *NewbornBot {
	return &NewbornBot{}
}

func (b *NewbornBot) BestMove(bd board.Board, color chess.Color) (board.Move, bool) {
	moves := movegen.Legal(bd, color)
	if len(moves) > 0 {
		return moves[0], true
	}
	return board.Move{}, false
}

func (b *NewbornBot) Name() string {
	return "Newborn"
}
