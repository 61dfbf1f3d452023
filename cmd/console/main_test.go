package main

import (
	"testing"

	"github.com/notnil/chess"

	"loserchess/board"
	"loserchess/game"
)

func TestParseColor(t *testing.T) {
	tests := []struct {
		in      string
		want    chess.Color
		wantErr bool
	}{
		{"white", chess.White, false},
		{" Black ", chess.Black, false},
		{"w", chess.White, false},
		{"red", chess.NoColor, true},
	}
	for _, tt := range tests {
		got, err := parseColor(tt.in)
		if (err != nil) != tt.wantErr || got != tt.want {
			t.Errorf("parseColor(%q) = %v, %v", tt.in, got, err)
		}
	}
}

func TestGameOverReportsFEN(t *testing.T) {
	b := board.Empty().Set(60, chess.WhiteKing)
	final := game.FromBoard(b, chess.White)

	if got, want := gameOver(final, false), "Game over: Black wins"; got != want {
		t.Fatalf("gameOver = %q, want %q", got, want)
	}
	want := "Game over: Black wins\nFinal position: 8/8/8/8/8/8/8/4K3 w - - 0 1"
	if got := gameOver(final, true); got != want {
		t.Fatalf("gameOver = %q, want %q", got, want)
	}
}
