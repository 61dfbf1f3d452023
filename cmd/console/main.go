// Command console plays losing chess in the terminal against a bot.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/notnil/chess"

	"loserchess/board"
	"loserchess/bots"
	"loserchess/game"
	"loserchess/internal/config"
)

func main() {
	depth := flag.Int("depth", config.GetenvInt("LCHESS_DEPTH", bots.DefaultDepth), "search depth in plies")
	colorName := flag.String("color", config.Getenv("LCHESS_COLOR", "white"), "color the human plays (white|black)")
	botName := flag.String("bot", config.Getenv("LCHESS_BOT", "minimax"), fmt.Sprintf("bot to play against %v", bots.Names()))
	fen := flag.String("fen", config.Getenv("LCHESS_FEN", ""), "start position as FEN (default: standard position)")
	selfplay := flag.Bool("selfplay", false, "let the bot play both sides")
	verbose := flag.Bool("v", false, "log search statistics")
	flag.Parse()

	logger := log.New(os.Stderr, "", log.LstdFlags)

	human, err := parseColor(*colorName)
	fatalIf(err, "color")

	bot, err := bots.New(*botName, *depth)
	fatalIf(err, "bot")
	if mm, ok := bot.(*bots.MinimaxBot); ok && *verbose {
		mm.Logger = logger
	}

	state := game.New()
	if *fen != "" {
		b, turn, err := board.FromFEN(*fen)
		fatalIf(err, "fen")
		state = game.FromBoard(b, turn)
	}

	players := map[chess.Color]game.Player{
		human.Other(): game.BotPlayer{Bot: bot},
		human:         game.NewHumanPlayer(os.Stdin, os.Stdout),
	}
	if *selfplay {
		players[human] = game.BotPlayer{Bot: bot}
	}

	final, err := game.Run(state, players, logger, func(s game.State) {
		fmt.Println(s.Board.Draw())
		if s.Skipped != chess.NoColor {
			fmt.Printf("%s has no legal moves. Skipping turn.\n", s.Skipped.Name())
		}
		if !s.Status.Over() {
			fmt.Printf("%s to move\n", s.SideToMove.Name())
		}
	})
	if err != nil {
		log.Fatalf("game: %v", err)
	}
	fmt.Println(gameOver(final, *verbose))
}

// gameOver reports the result, followed by the final FEN when verbose is set.
func gameOver(s game.State, verbose bool) string {
	out := "Game over: " + s.Status.String()
	if verbose {
		out += "\nFinal position: " + s.Board.FEN(s.SideToMove)
	}
	return out
}

func parseColor(s string) (chess.Color, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "white", "w":
		return chess.White, nil
	case "black", "b":
		return chess.Black, nil
	}
	return chess.NoColor, fmt.Errorf("invalid color %q; valid: white, black", s)
}

func fatalIf(err error, label string) {
	if err != nil {
		log.Fatalf("%s: %v", label, err)
	}
}
