package bots

import (
	"fmt"
	"log"
	"math"

	"github.com/notnil/chess"

	"loserchess/board"
	"loserchess/movegen"
)

// DefaultDepth is the search depth in plies used when none is configured.
const DefaultDepth = 3

// MinimaxBot searches a fixed number of plies with alpha-beta pruning.
type MinimaxBot struct {
	Depth     int
	Evaluator PositionEvaluator
	// Logger receives one line per search; nil disables logging.
	Logger *log.Logger
}

func NewMinimaxBot(depth int) *MinimaxBot {
	return &MinimaxBot{
		Depth:     depth,
		Evaluator: DefaultEvaluator{},
	}
}

func (b *MinimaxBot) Name() string {
	return fmt.Sprintf("Minimax Bot (depth %d)", b.Depth)
}

// BestMove returns the highest scoring legal move for color. Ties keep the
// first move in generation order.
func (b *MinimaxBot) BestMove(bd board.Board, color chess.Color) (board.Move, bool) {
	res := b.Search(bd, color)
	return res.Move, res.Found
}

// SearchResult describes the outcome of one top-level search.
type SearchResult struct {
	Move  board.Move
	Score float64
	Nodes int
	Found bool
}

// Search runs the full search and reports the chosen move with its score.
func (b *MinimaxBot) Search(bd board.Board, color chess.Color) SearchResult {
	depth := b.Depth
	if depth < 1 {
		depth = 1
	}
	s := &searcher{bot: color, eval: b.Evaluator}
	if s.eval == nil {
		s.eval = DefaultEvaluator{}
	}

	res := SearchResult{Score: math.Inf(-1)}
	for _, m := range movegen.Legal(bd, color) {
		score := s.minimax(board.Apply(bd, m), depth-1, false, math.Inf(-1), math.Inf(1))
		if !res.Found || score > res.Score {
			res.Move, res.Score, res.Found = m, score, true
		}
	}
	res.Nodes = s.nodes

	if b.Logger != nil {
		if res.Found {
			b.Logger.Printf("%s: %v plays %s (score %.2f, %d nodes)", b.Name(), color.Name(), res.Move, res.Score, res.Nodes)
		} else {
			b.Logger.Printf("%s: %v has no legal move", b.Name(), color.Name())
		}
	}
	return res
}

// searcher carries the per-search constants; alpha and beta travel as arguments.
type searcher struct {
	bot   chess.Color
	eval  PositionEvaluator
	nodes int
}

func (s *searcher) minimax(bd board.Board, depth int, maximizing bool, alpha, beta float64) float64 {
	s.nodes++
	if depth <= 0 {
		return s.eval.Evaluate(bd, s.bot)
	}

	side := s.bot
	if !maximizing {
		side = s.bot.Other()
	}
	moves := movegen.Legal(bd, side)
	if len(moves) == 0 {
		if !movegen.HasLegalMoves(bd, side.Other()) {
			return 0
		}
		// The stuck side is not modelled as a pass inside the tree.
		return s.eval.Evaluate(bd, s.bot)
	}

	if maximizing {
		best := math.Inf(-1)
		for _, m := range moves {
			score := s.minimax(board.Apply(bd, m), depth-1, false, alpha, beta)
			best = math.Max(best, score)
			alpha = math.Max(alpha, score)
			if beta <= alpha {
				break
			}
		}
		return best
	}

	best := math.Inf(1)
	for _, m := range moves {
		score := s.minimax(board.Apply(bd, m), depth-1, true, alpha, beta)
		best = math.Min(best, score)
		beta = math.Min(beta, score)
		if beta <= alpha {
			break
		}
	}
	return best
}

// BestMove searches depth plies with the default evaluator.
func BestMove(bd board.Board, color chess.Color, depth int) (board.Move, bool) {
	return NewMinimaxBot(depth).BestMove(bd, color)
}
