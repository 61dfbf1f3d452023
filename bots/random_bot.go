package bots

import (
	"math/rand"

	"github.com/notnil/chess"

	"loserchess/board"
	"loserchess/movegen"
)

// RandomBot plays a uniformly random legal move. It is not safe for concurrent use.
type RandomBot struct {
	rng *rand.Rand
}

func NewRandomBot(seed int64) *RandomBot {
	return &RandomBot{rng: rand.New(rand.NewSource(seed))}
}

func (b *RandomBot) BestMove(bd board.Board, color chess.Color) (board.Move, bool) {
	moves := movegen.Legal(bd, color)
	if len(moves) > 0 {
		return moves[b.rng.Intn(len(moves))], true
	}
	return board.Move{}, false
}

func (b *RandomBot) Name() string {
	return "Random Bot"
}
