package game

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"loserchess/board"
	"loserchess/bots"
)

// Player chooses a move for the side to move in s.
type Player interface {
	ChooseMove(s State) (board.Move, error)
	Name() string
}

// BotPlayer adapts a bots.ChessBot to the game loop.
type BotPlayer struct {
	Bot bots.ChessBot
}

func (p BotPlayer) ChooseMove(s State) (board.Move, error) {
	m, ok := p.Bot.BestMove(s.Board, s.SideToMove)
	if !ok {
		return board.Move{}, fmt.Errorf("%s: %w", p.Bot.Name(), ErrNoMove)
	}
	return m, nil
}

func (p BotPlayer) Name() string { return p.Bot.Name() }

// HumanPlayer reads moves in from-to notation, one per line, and re-prompts
// until it gets a legal one.
type HumanPlayer struct {
	in  *bufio.Scanner
	out io.Writer
}

func NewHumanPlayer(in io.Reader, out io.Writer) *HumanPlayer {
	return &HumanPlayer{in: bufio.NewScanner(in), out: out}
}

func (p *HumanPlayer) Name() string { return "Human" }

func (p *HumanPlayer) ChooseMove(s State) (board.Move, error) {
	legal := s.LegalMoves()
	for {
		fmt.Fprint(p.out, "Enter your move (e.g., e2e4): ")
		if !p.in.Scan() {
			if err := p.in.Err(); err != nil {
				return board.Move{}, err
			}
			return board.Move{}, io.EOF
		}
		m, err := Validate(strings.ToLower(strings.TrimSpace(p.in.Text())), legal)
		switch {
		case errors.Is(err, board.ErrInvalidNotation):
			fmt.Fprintln(p.out, "Invalid input. Please use the format 'e2e4' with letters a-h and numbers 1-8.")
		case errors.Is(err, ErrIllegalMove):
			fmt.Fprintln(p.out, "Invalid move. Please try again.")
		case err != nil:
			return board.Move{}, err
		default:
			return m, nil
		}
	}
}

// Validate parses text and checks it against the legal move list.
func Validate(text string, legal []board.Move) (board.Move, error) {
	m, err := board.ParseMove(text)
	if err != nil {
		return board.Move{}, err
	}
	for _, l := range legal {
		if l == m {
			return m, nil
		}
	}
	return board.Move{}, fmt.Errorf("%w: %s", ErrIllegalMove, m)
}
