package board

import (
	"errors"
	"fmt"

	"github.com/notnil/chess"
)

var ErrInvalidFEN = errors.New("invalid FEN")

func (b Board) chessBoard() *chess.Board {
	m := make(map[chess.Square]chess.Piece)
	for i, p := range b {
		if p != chess.NoPiece {
			m[toChessSquare(Square(i))] = p
		}
	}
	return chess.NewBoard(m)
}

// Placement returns the piece-placement field of FEN for the board.
func (b Board) Placement() string { return b.chessBoard().String() }

// FEN returns a full FEN record with turn as the side to move. Castling and en
// passant fields are always empty because the variant has neither.
func (b Board) FEN(turn chess.Color) string {
	side := "w"
	if turn == chess.Black {
		side = "b"
	}
	return fmt.Sprintf("%s %s - - 0 1", b.Placement(), side)
}

// Draw renders the board as unicode text, rank 8 at the top.
func (b Board) Draw() string { return b.chessBoard().Draw() }

// FromFEN decodes a FEN record into a board and the side to move.
func FromFEN(fen string) (Board, chess.Color, error) {
	var pos chess.Position
	if err := pos.UnmarshalText([]byte(fen)); err != nil {
		return Board{}, chess.NoColor, fmt.Errorf("%w: %v", ErrInvalidFEN, err)
	}
	var b Board
	for sq, p := range pos.Board().SquareMap() {
		b[fromChessSquare(sq)] = p
	}
	return b, pos.Turn(), nil
}
