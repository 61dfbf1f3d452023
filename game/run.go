package game

import (
	"fmt"
	"log"

	"github.com/notnil/chess"
)

// Observer is told about every state the loop reaches, including the first.
type Observer func(s State)

// Run plays a full game from s. players maps each color to its player.
// Logger may be nil.
func Run(s State, players map[chess.Color]Player, logger *log.Logger, observe Observer) (State, error) {
	logf := func(format string, args ...any) {
		if logger != nil {
			logger.Printf(format, args...)
		}
	}
	if observe != nil {
		observe(s)
	}
	for !s.Status.Over() {
		p, ok := players[s.SideToMove]
		if !ok {
			return s, fmt.Errorf("no player for %s", s.SideToMove.Name())
		}
		m, err := p.ChooseMove(s)
		if err != nil {
			return s, fmt.Errorf("%s (%s): %w", s.SideToMove.Name(), p.Name(), err)
		}
		mover := s.SideToMove
		s, err = Play(s, m)
		if err != nil {
			return s, fmt.Errorf("%s (%s): %w", mover.Name(), p.Name(), err)
		}
		logf("%d. %s (%s) plays %s", s.MoveCount, mover.Name(), p.Name(), m)
		if s.Skipped != chess.NoColor {
			logf("%s has no legal moves. Skipping turn.", s.Skipped.Name())
		}
		if observe != nil {
			observe(s)
		}
	}
	logf("Game over: %s", s.Status)
	return s, nil
}
