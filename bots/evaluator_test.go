package bots

import (
	"math"
	"testing"

	"github.com/notnil/chess"

	"loserchess/board"
)

func sq(t *testing.T, s string) board.Square {
	t.Helper()
	v, err := board.ParseSquare(s)
	if err != nil {
		t.Fatalf("parse %q: %v", s, err)
	}
	return v
}

func closeTo(a, b float64) bool { return math.Abs(a-b) < 1e-9 }

func TestEvaluateTerminalOverrides(t *testing.T) {
	whiteOnly := board.Empty().Set(sq(t, "e1"), chess.WhiteKing)
	tests := []struct {
		name  string
		b     board.Board
		color chess.Color
		want  float64
	}{
		{"bot has no pieces", whiteOnly, chess.Black, 1000},
		{"opponent has no pieces", whiteOnly, chess.White, -1000},
		{"empty board counts as bot win", board.Empty(), chess.White, 1000},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Evaluate(tt.b, tt.color); got != tt.want {
				t.Fatalf("Evaluate = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestEvaluateInitialIsBalanced(t *testing.T) {
	for _, c := range []chess.Color{chess.White, chess.Black} {
		if got := Evaluate(board.Initial(), c); !closeTo(got, 0) {
			t.Errorf("Evaluate(initial, %v) = %v, want 0", c, got)
		}
	}
}

func TestEvaluateQuietPosition(t *testing.T) {
	// Rook: 14 moves and -5 for surviving. King: 5 moves.
	b := board.Empty().
		Set(sq(t, "e1"), chess.WhiteKing).
		Set(sq(t, "a8"), chess.BlackRook)
	if got := Evaluate(b, chess.Black); !closeTo(got, -5.9) {
		t.Fatalf("Evaluate(black) = %v, want -5.9", got)
	}
	if got := Evaluate(b, chess.White); !closeTo(got, 5.9) {
		t.Fatalf("Evaluate(white) = %v, want 5.9", got)
	}
}

func TestEvaluateCaptureTerms(t *testing.T) {
	b := board.Empty().
		Set(sq(t, "c4"), chess.WhitePawn).
		Set(sq(t, "e4"), chess.WhitePawn).
		Set(sq(t, "d5"), chess.BlackPawn)
	// material +10, forced captures -5.5/+5.5, pawn ranks -0.3/+0.6, mobility -0.3/+0.4
	if got := Evaluate(b, chess.Black); !closeTo(got, 10.4) {
		t.Fatalf("Evaluate = %v, want 10.4", got)
	}
}

func TestEvaluateHeavyPieces(t *testing.T) {
	base := board.Empty().
		Set(sq(t, "a4"), chess.WhitePawn).
		Set(sq(t, "a5"), chess.BlackPawn)
	withQueen := base.Set(sq(t, "h8"), chess.BlackQueen).
		Set(sq(t, "h1"), chess.WhitePawn)
	withoutQueen := base.Set(sq(t, "h8"), chess.BlackPawn).
		Set(sq(t, "h1"), chess.WhitePawn)
	// Swapping the queen for a pawn keeps material equal; the queen costs 8 and
	// adds its own mobility.
	diff := Evaluate(withoutQueen, chess.Black) - Evaluate(withQueen, chess.Black)
	if diff <= 8 {
		t.Fatalf("owning a queen should cost more than 8, got %v", diff)
	}
}

func TestEvaluatePrefersFewerOwnPieces(t *testing.T) {
	few := board.Empty().
		Set(sq(t, "a4"), chess.WhitePawn).
		Set(sq(t, "a5"), chess.BlackPawn).
		Set(sq(t, "h4"), chess.WhitePawn).
		Set(sq(t, "h5"), chess.BlackPawn)
	more := few.Set(sq(t, "c7"), chess.BlackPawn)
	if got := Evaluate(more, chess.Black); got >= Evaluate(few, chess.Black) {
		t.Fatalf("an extra black pawn should lower black's score, got %v", got)
	}
}

func TestEvaluateLoneQueen(t *testing.T) {
	// Queen: 21 moves, no captures. King: 5 moves.
	b := board.Empty().
		Set(sq(t, "a8"), chess.BlackQueen).
		Set(sq(t, "g1"), chess.WhiteKing)
	tests := []struct {
		color chess.Color
		want  float64
	}{
		{chess.Black, -9.6},
		{chess.White, 9.6},
	}
	for _, tt := range tests {
		if got := Evaluate(b, tt.color); !closeTo(got, tt.want) {
			t.Errorf("Evaluate(%s) = %v, want %v", tt.color.Name(), got, tt.want)
		}
	}
}
