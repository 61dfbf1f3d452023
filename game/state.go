// Package game runs a losing-chess match: turn order, forced passes and the
// end-of-game rules. State is a value; Play returns a new one and never
// changes the State it was given.
package game

import (
	"fmt"

	"github.com/notnil/chess"

	"loserchess/board"
	"loserchess/movegen"
)

const (
	// MaxMoves is the ply count at which the game is drawn.
	MaxMoves = 100
	// RepetitionLimit is how many times a position may occur before a draw.
	RepetitionLimit = 3
)

type Status int

const (
	Ongoing Status = iota
	WhiteWins
	BlackWins
	DrawStalemate
	DrawRepetition
	DrawMoveLimit
)

func (s Status) String() string {
	switch s {
	case Ongoing:
		return "ongoing"
	case WhiteWins:
		return "White wins"
	case BlackWins:
		return "Black wins"
	case DrawStalemate:
		return "Draw (stalemate)"
	case DrawRepetition:
		return "Draw (threefold repetition)"
	case DrawMoveLimit:
		return "Draw (fifty-move rule)"
	}
	return fmt.Sprintf("Status(%d)", int(s))
}

// Over reports whether the game has ended.
func (s Status) Over() bool { return s != Ongoing }

// Winner returns the winning color, or NoColor for draws and running games.
func (s Status) Winner() chess.Color {
	switch s {
	case WhiteWins:
		return chess.White
	case BlackWins:
		return chess.Black
	}
	return chess.NoColor
}

func winFor(c chess.Color) Status {
	if c == chess.White {
		return WhiteWins
	}
	return BlackWins
}

// State is everything the game loop needs between turns.
type State struct {
	Board      board.Board
	SideToMove chess.Color
	// History counts how often each post-move position has occurred.
	History   map[board.Board]int
	MoveCount int
	Status    Status
	// Skipped is the side whose turn was passed over by the last transition
	// because it had no legal move, or NoColor.
	Skipped chess.Color
}

// New starts a game from the standard position with White to move.
func New() State {
	return FromBoard(board.Initial(), chess.White)
}

// FromBoard starts a game from an arbitrary position.
func FromBoard(b board.Board, toMove chess.Color) State {
	s := State{
		Board:      b,
		SideToMove: toMove,
		History:    make(map[board.Board]int),
	}
	return s.settle()
}

// LegalMoves lists the moves available to the side to move.
func (s State) LegalMoves() []board.Move {
	if s.Status.Over() {
		return nil
	}
	return movegen.Legal(s.Board, s.SideToMove)
}

// Play applies m for the side to move and returns the resulting state.
func Play(s State, m board.Move) (State, error) {
	if s.Status.Over() {
		return s, fmt.Errorf("%w: %s", ErrGameOver, s.Status)
	}
	if !movegen.Contains(movegen.Legal(s.Board, s.SideToMove), m) {
		return s, fmt.Errorf("%w: %s for %s", ErrIllegalMove, m, s.SideToMove.Name())
	}

	mover := s.SideToMove
	next := State{
		Board:      board.Apply(s.Board, m),
		SideToMove: mover.Other(),
		History:    make(map[board.Board]int, len(s.History)+1),
		MoveCount:  s.MoveCount + 1,
	}
	for k, v := range s.History {
		next.History[k] = v
	}
	next.History[next.Board]++

	switch {
	case board.PieceCount(next.Board, mover.Other()) == 0:
		next.Status = winFor(mover.Other())
	case next.History[next.Board] >= RepetitionLimit:
		next.Status = DrawRepetition
	case next.MoveCount >= MaxMoves:
		next.Status = DrawMoveLimit
	}
	return next.settle(), nil
}

// settle ends the game when either side has no pieces left, then resolves a
// side to move that cannot move: its turn passes when the opponent can still
// play, otherwise the game is a stalemate draw.
func (s State) settle() State {
	s.Skipped = chess.NoColor
	if s.Status.Over() {
		return s
	}
	for _, c := range []chess.Color{s.SideToMove, s.SideToMove.Other()} {
		if board.PieceCount(s.Board, c) == 0 {
			s.Status = winFor(c)
			return s
		}
	}
	if movegen.HasLegalMoves(s.Board, s.SideToMove) {
		return s
	}
	if !movegen.HasLegalMoves(s.Board, s.SideToMove.Other()) {
		s.Status = DrawStalemate
		return s
	}
	s.Skipped = s.SideToMove
	s.SideToMove = s.SideToMove.Other()
	return s
}
