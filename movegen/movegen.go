// Package movegen enumerates moves for the losing-chess variant.
//
// Movement is pseudo-legal: there is no check, castling, en passant or promotion.
// The only filter is mandatory capture, applied once across the whole side.
package movegen

import (
	"github.com/notnil/chess"

	"loserchess/board"
)

type delta struct{ dr, df int }

// Offsets are listed in ascending square-offset order so generation order is
// stable: -17, -15, -10, -6, 6, 10, 15, 17 for the knight and so on.
var (
	knightOffsets = []delta{{-2, -1}, {-2, 1}, {-1, -2}, {-1, 2}, {1, -2}, {1, 2}, {2, -1}, {2, 1}}
	kingOffsets   = []delta{{-1, -1}, {-1, 0}, {-1, 1}, {0, -1}, {0, 1}, {1, -1}, {1, 0}, {1, 1}}
	diagonals     = []delta{{-1, -1}, {-1, 1}, {1, -1}, {1, 1}}
	orthogonals   = []delta{{-1, 0}, {0, -1}, {0, 1}, {1, 0}}
	queenRays     = append(append([]delta{}, diagonals...), orthogonals...)
)

func step(sq board.Square, d delta) (board.Square, bool) {
	row, file := sq.Row()+d.dr, sq.File()+d.df
	if row < 0 || row > 7 || file < 0 || file > 7 {
		return 0, false
	}
	return board.NewSquare(row, file), true
}

// PieceMoves returns the destinations the piece on from may reach, ignoring the
// mandatory-capture rule. An empty square yields nil.
func PieceMoves(b board.Board, from board.Square) []board.Square {
	p := b.At(from)
	switch p.Type() {
	case chess.Pawn:
		return pawnMoves(b, from, p.Color())
	case chess.Knight:
		return leaperMoves(b, from, p.Color(), knightOffsets)
	case chess.Bishop:
		return slidingMoves(b, from, p.Color(), diagonals)
	case chess.Rook:
		return slidingMoves(b, from, p.Color(), orthogonals)
	case chess.Queen:
		return slidingMoves(b, from, p.Color(), queenRays)
	case chess.King:
		return leaperMoves(b, from, p.Color(), kingOffsets)
	}
	return nil
}

func pawnMoves(b board.Board, from board.Square, c chess.Color) []board.Square {
	dir, startRow := -1, 6
	if c == chess.Black {
		dir, startRow = 1, 1
	}
	var out []board.Square
	if one, ok := step(from, delta{dir, 0}); ok && b.At(one) == chess.NoPiece {
		out = append(out, one)
		if from.Row() == startRow {
			if two, ok := step(from, delta{2 * dir, 0}); ok && b.At(two) == chess.NoPiece {
				out = append(out, two)
			}
		}
	}
	for _, df := range []int{-1, 1} {
		to, ok := step(from, delta{dir, df})
		if !ok {
			continue
		}
		if target := b.At(to); target != chess.NoPiece && target.Color() != c {
			out = append(out, to)
		}
	}
	return out
}

func leaperMoves(b board.Board, from board.Square, c chess.Color, offsets []delta) []board.Square {
	var out []board.Square
	for _, d := range offsets {
		to, ok := step(from, d)
		if !ok {
			continue
		}
		if target := b.At(to); target == chess.NoPiece || target.Color() != c {
			out = append(out, to)
		}
	}
	return out
}

func slidingMoves(b board.Board, from board.Square, c chess.Color, rays []delta) []board.Square {
	var out []board.Square
	for _, d := range rays {
		to, ok := step(from, d)
		for ok {
			target := b.At(to)
			if target != chess.NoPiece {
				if target.Color() != c {
					out = append(out, to)
				}
				break
			}
			out = append(out, to)
			to, ok = step(to, d)
		}
	}
	return out
}

// PseudoLegal collects every move of side c in ascending square order, without
// the mandatory-capture filter.
func PseudoLegal(b board.Board, c chess.Color) []board.Move {
	var moves []board.Move
	for i := range b {
		from := board.Square(i)
		if p := b.At(from); p == chess.NoPiece || p.Color() != c {
			continue
		}
		for _, to := range PieceMoves(b, from) {
			moves = append(moves, board.Move{From: from, To: to})
		}
	}
	return moves
}

// IsCapture reports whether m lands on an occupied square. Generated moves never
// target a friendly piece, so an occupied destination is always an enemy.
func IsCapture(b board.Board, m board.Move) bool {
	return b.At(m.To) != chess.NoPiece
}

// Captures returns the capturing subset of moves, preserving order.
func Captures(b board.Board, moves []board.Move) []board.Move {
	var out []board.Move
	for _, m := range moves {
		if IsCapture(b, m) {
			out = append(out, m)
		}
	}
	return out
}

// Legal returns the moves side c may play: only captures when any capture
// exists, otherwise every pseudo-legal move.
func Legal(b board.Board, c chess.Color) []board.Move {
	moves := PseudoLegal(b, c)
	if captures := Captures(b, moves); len(captures) > 0 {
		return captures
	}
	return moves
}

// HasLegalMoves reports whether side c can move at all.
func HasLegalMoves(b board.Board, c chess.Color) bool {
	for i := range b {
		from := board.Square(i)
		if p := b.At(from); p != chess.NoPiece && p.Color() == c && len(PieceMoves(b, from)) > 0 {
			return true
		}
	}
	return false
}

// Mobility is the number of pseudo-legal destinations summed over every piece
// of side c, before the mandatory-capture filter.
func Mobility(b board.Board, c chess.Color) int {
	n := 0
	for i := range b {
		from := board.Square(i)
		if p := b.At(from); p != chess.NoPiece && p.Color() == c {
			n += len(PieceMoves(b, from))
		}
	}
	return n
}

// Contains reports whether m is one of moves.
func Contains(moves []board.Move, m board.Move) bool {
	for _, candidate := range moves {
		if candidate == m {
			return true
		}
	}
	return false
}
