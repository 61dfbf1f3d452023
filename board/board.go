// Package board holds the 64-square board model used by the engine.
//
// Square 0 is a8 (the top-left corner, Black's back rank) and square 63 is h1.
// Boards are plain values: Apply returns a fresh copy and never touches its input,
// so a Board can be shared freely and used directly as a map key.
package board

import "github.com/notnil/chess"

// Board is one piece per square, rank-major from a8. The zero value is empty.
type Board [64]chess.Piece

var backRank = [8]chess.PieceType{chess.Rook, chess.Knight, chess.Bishop, chess.Queen, chess.King, chess.Bishop, chess.Knight, chess.Rook}

// Initial returns the standard starting position.
func Initial() Board {
	var b Board
	for file := 0; file < 8; file++ {
		b[file] = chess.NewPiece(backRank[file], chess.Black)
		b[8+file] = chess.BlackPawn
		b[48+file] = chess.WhitePawn
		b[56+file] = chess.NewPiece(backRank[file], chess.White)
	}
	return b
}

// Empty returns a board with no pieces on it.
func Empty() Board { return Board{} }

// Set returns a copy of b with p placed on sq.
func (b Board) Set(sq Square, p chess.Piece) Board {
	b[sq] = p
	return b
}

// At returns the piece on sq.
func (b Board) At(sq Square) chess.Piece { return b[sq] }

// Apply relocates the piece on m.From to m.To. Legality is not checked.
func Apply(b Board, m Move) Board {
	b[m.To] = b[m.From]
	b[m.From] = chess.NoPiece
	return b
}

// PieceCount reports how many pieces of color c are on the board.
func PieceCount(b Board, c chess.Color) int {
	n := 0
	for _, p := range b {
		if p != chess.NoPiece && p.Color() == c {
			n++
		}
	}
	return n
}

// Count reports how many copies of p are on the board.
func Count(b Board, p chess.Piece) int {
	n := 0
	for _, q := range b {
		if q == p {
			n++
		}
	}
	return n
}

// Has reports whether at least one copy of p is on the board.
func Has(b Board, p chess.Piece) bool {
	for _, q := range b {
		if q == p {
			return true
		}
	}
	return false
}
