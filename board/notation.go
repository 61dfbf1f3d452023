package board

import (
	"errors"
	"fmt"

	"github.com/notnil/chess"
)

var ErrInvalidNotation = errors.New("invalid notation")

// Square indexes the board, 0 = a8 and 63 = h1.
type Square int8

// NewSquare builds a square from a rank row (0 = top) and a file column (0 = a).
func NewSquare(row, file int) Square { return Square(row*8 + file) }

// Row is the rank-major row index, 0 for the eighth rank.
func (sq Square) Row() int { return int(sq) / 8 }

// File is the column index, 0 for the a-file.
func (sq Square) File() int { return int(sq) % 8 }

// Valid reports whether sq lies on the board.
func (sq Square) Valid() bool { return sq >= 0 && sq < 64 }

// String renders the algebraic name of the square, e.g. "e4".
func (sq Square) String() string {
	if !sq.Valid() {
		return "-"
	}
	return toChessSquare(sq).String()
}

// ParseSquare reads a two-character square name such as "e2".
func ParseSquare(s string) (Square, error) {
	if len(s) != 2 {
		return 0, fmt.Errorf("square %q: %w", s, ErrInvalidNotation)
	}
	file, rank := s[0], s[1]
	if file < 'a' || file > 'h' {
		return 0, fmt.Errorf("square %q: file must be a-h: %w", s, ErrInvalidNotation)
	}
	if rank < '1' || rank > '8' {
		return 0, fmt.Errorf("square %q: rank must be 1-8: %w", s, ErrInvalidNotation)
	}
	return NewSquare(int('8'-rank), int(file-'a')), nil
}

// Move is a (from, to) pair.
type Move struct {
	From Square
	To   Square
}

// String renders the move in four-character from-to notation, e.g. "e2e4".
func (m Move) String() string { return m.From.String() + m.To.String() }

// ParseMove reads four-character from-to notation such as "e2e4".
func ParseMove(s string) (Move, error) {
	if len(s) != 4 {
		return Move{}, fmt.Errorf("move %q: want 4 characters: %w", s, ErrInvalidNotation)
	}
	from, err := ParseSquare(s[:2])
	if err != nil {
		return Move{}, err
	}
	to, err := ParseSquare(s[2:])
	if err != nil {
		return Move{}, err
	}
	return Move{From: from, To: to}, nil
}

func toChessSquare(sq Square) chess.Square {
	return chess.NewSquare(chess.File(sq.File()), chess.Rank(7-sq.Row()))
}

func fromChessSquare(sq chess.Square) Square {
	return NewSquare(7-int(sq.Rank()), int(sq.File()))
}
