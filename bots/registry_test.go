package bots

import (
	"errors"
	"testing"

	"github.com/notnil/chess"

	"loserchess/board"
	"loserchess/movegen"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name     string
		wantName string
	}{
		{"newborn", "Newborn"},
		{"random", "Random Bot"},
		{"minimax", "Minimax Bot (depth 3)"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bot, err := New(tt.name, 3)
			if err != nil {
				t.Fatalf("New: %v", err)
			}
			if bot.Name() != tt.wantName {
				t.Fatalf("Name() = %q, want %q", bot.Name(), tt.wantName)
			}
			m, ok := bot.BestMove(board.Initial(), chess.White)
			if !ok || !movegen.Contains(movegen.Legal(board.Initial(), chess.White), m) {
				t.Fatalf("bot returned %s (%v)", m, ok)
			}
		})
	}
}

func TestNewUnknown(t *testing.T) {
	if _, err := New("stockfish", 3); !errors.Is(err, ErrUnknownBot) {
		t.Fatalf("err = %v, want ErrUnknownBot", err)
	}
}

func TestNewbornPlaysFirstMove(t *testing.T) {
	m, ok := NewNewbornBot().BestMove(board.Initial(), chess.Black)
	if !ok || m.String() != "b8a6" {
		t.Fatalf("newborn played %s, want b8a6", m)
	}
}

func TestRandomBotIsSeeded(t *testing.T) {
	a, b := NewRandomBot(7), NewRandomBot(7)
	for i := 0; i < 5; i++ {
		ma, _ := a.BestMove(board.Initial(), chess.White)
		mb, _ := b.BestMove(board.Initial(), chess.White)
		if ma != mb {
			t.Fatalf("same seed diverged at %d: %s vs %s", i, ma, mb)
		}
	}
	if _, ok := a.BestMove(board.Empty(), chess.White); ok {
		t.Fatalf("move found on an empty board")
	}
}
