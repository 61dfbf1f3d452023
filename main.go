package main

import (
	"flag"
	"fmt"
	"image/color"
	"log"
	"sync"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/notnil/chess"

	"loserchess/board"
	"loserchess/bots"
	"loserchess/game"
	"loserchess/internal/config"
)

var (
	screenWidth  int
	screenHeight int
	squareSize   int
)

var (
	lightSquare    = color.RGBA{240, 217, 181, 255}
	darkSquare     = color.RGBA{181, 136, 99, 255}
	selectedSquare = color.RGBA{130, 151, 105, 255}
)

var pieceLetters = map[chess.PieceType]string{
	chess.Pawn:   "P",
	chess.Knight: "N",
	chess.Bishop: "B",
	chess.Rook:   "R",
	chess.Queen:  "Q",
	chess.King:   "K",
}

type Game struct {
	mu           sync.Mutex
	state        game.State
	playerColor  chess.Color
	selected     board.Square
	hasSelection bool
	gameStarted  bool
	botThinking  bool
	message      string
	bots         []bots.ChessBot
	currentBot   int
	boardOffsetX int
	boardOffsetY int
}

func NewGame(depth int) *Game {
	screenWidth, screenHeight = ebiten.ScreenSizeInFullscreen()

	// leave room for the status line above the board
	boardHeight := screenHeight - 80
	squareSize = boardHeight / 8
	if screenWidth/8 < squareSize {
		squareSize = screenWidth / 8
	}

	// center the board
	boardWidth := squareSize * 8
	return &Game{
		bots: []bots.ChessBot{
			bots.NewMinimaxBot(depth),
			bots.NewNewbornBot(),
			bots.NewRandomBot(time.Now().UnixNano()),
		},
		boardOffsetX: (screenWidth - boardWidth) / 2,
		boardOffsetY: (screenHeight - boardHeight) / 2,
	}
}

func (g *Game) Update() error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if inpututil.IsKeyJustPressed(ebiten.KeyB) && !g.botThinking {
		g.currentBot = (g.currentBot + 1) % len(g.bots)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) && !g.botThinking {
		g.gameStarted = false
	}

	if !g.gameStarted {
		if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
			x, y := ebiten.CursorPosition()
			btnWidth := 200
			btnHeight := 60
			btnY := screenHeight/2 + 100

			if y > btnY && y < btnY+btnHeight {
				if x > screenWidth/2-btnWidth-20 && x < screenWidth/2-20 {
					g.startGame(chess.White)
				} else if x > screenWidth/2+20 && x < screenWidth/2+20+btnWidth {
					g.startGame(chess.Black)
				}
			}
		}
		return nil
	}

	if g.botThinking || g.state.Status.Over() || g.state.SideToMove != g.playerColor {
		return nil
	}
	// player's move: first click selects a piece, second click moves it
	if !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return nil
	}
	sq, ok := g.squareAt(ebiten.CursorPosition())
	if !ok {
		return nil
	}
	if p := g.state.Board.At(sq); p != chess.NoPiece && p.Color() == g.playerColor {
		g.selected, g.hasSelection = sq, true
		return nil
	}
	if !g.hasSelection {
		return nil
	}
	g.hasSelection = false
	next, err := game.Play(g.state, board.Move{From: g.selected, To: sq})
	if err != nil {
		g.message = err.Error()
		return nil
	}
	g.state = next
	g.message = ""
	g.scheduleBot()
	return nil
}

func (g *Game) squareAt(x, y int) (board.Square, bool) {
	x -= g.boardOffsetX
	y -= g.boardOffsetY
	if x < 0 || x >= squareSize*8 || y < 0 || y >= squareSize*8 {
		return 0, false
	}
	return board.NewSquare(y/squareSize, x/squareSize), true
}

// startGame must be called with g.mu held.
func (g *Game) startGame(c chess.Color) {
	g.state = game.New()
	g.playerColor = c
	g.gameStarted = true
	g.hasSelection = false
	g.message = ""
	g.scheduleBot()
}

// scheduleBot starts a bot search when it is the bot's turn. g.mu must be held.
func (g *Game) scheduleBot() {
	if g.state.Status.Over() || g.state.SideToMove == g.playerColor {
		return
	}
	g.botThinking = true
	bot := g.bots[g.currentBot]
	snapshot := g.state
	go func() {
		time.Sleep(300 * time.Millisecond)
		m, err := game.BotPlayer{Bot: bot}.ChooseMove(snapshot)

		g.mu.Lock()
		defer g.mu.Unlock()
		g.botThinking = false
		if err != nil {
			log.Printf("Bot move error: %v", err)
			return
		}
		next, err := game.Play(snapshot, m)
		if err != nil {
			log.Printf("Bot move error: %v", err)
			return
		}
		g.state = next
		g.scheduleBot()
	}()
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.mu.Lock()
	defer g.mu.Unlock()

	ebitenutil.DebugPrintAt(screen, "Bot: "+g.bots[g.currentBot].Name()+" (B to switch, N for new game)", 20, screenHeight-40)

	if !g.gameStarted {
		// color selection screen
		ebitenutil.DebugPrintAt(screen, "Losing Chess", screenWidth/2-40, screenHeight/2-50)
		ebitenutil.DebugPrintAt(screen, "Choose your color:", screenWidth/2-60, screenHeight/2)

		// "White" button
		whiteBtn := ebiten.NewImage(200, 60)
		whiteBtn.Fill(color.RGBA{200, 200, 200, 255})
		ebitenutil.DebugPrintAt(whiteBtn, "Play White", 65, 20)
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(float64(screenWidth/2-200-20), float64(screenHeight/2+100))
		screen.DrawImage(whiteBtn, op)

		// "Black" button
		blackBtn := ebiten.NewImage(200, 60)
		blackBtn.Fill(color.RGBA{50, 50, 50, 255})
		ebitenutil.DebugPrintAt(blackBtn, "Play Black", 65, 20)
		op = &ebiten.DrawImageOptions{}
		op.GeoM.Translate(float64(screenWidth/2+20), float64(screenHeight/2+100))
		screen.DrawImage(blackBtn, op)
		return
	}

	// draw the board and the pieces
	square := ebiten.NewImage(squareSize, squareSize)
	for i := range g.state.Board {
		sq := board.Square(i)
		x, y := sq.File()*squareSize+g.boardOffsetX, sq.Row()*squareSize+g.boardOffsetY

		clr := lightSquare
		if (sq.Row()+sq.File())%2 == 1 {
			clr = darkSquare
		}
		if g.hasSelection && sq == g.selected {
			clr = selectedSquare
		}
		square.Fill(clr)
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(float64(x), float64(y))
		screen.DrawImage(square, op)

		if p := g.state.Board.At(sq); p != chess.NoPiece {
			label := pieceLetters[p.Type()]
			if p.Color() == chess.Black {
				label = "*" + label
			}
			ebitenutil.DebugPrintAt(screen, label, x+squareSize/2-6, y+squareSize/2-8)
		}
	}

	// game status
	status := "Your move"
	switch {
	case g.state.Status.Over():
		status = "Game over: " + g.state.Status.String()
	case g.botThinking:
		status = "Bot is thinking..."
	case g.state.SideToMove != g.playerColor:
		status = "Bot to move"
	}
	if g.state.Skipped != chess.NoColor {
		status += fmt.Sprintf(" (%s had no legal moves)", g.state.Skipped.Name())
	}
	ebitenutil.DebugPrintAt(screen, status, 20, 20)
	if g.message != "" {
		ebitenutil.DebugPrintAt(screen, g.message, screenWidth/2-50, 20)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return screenWidth, screenHeight
}

func main() {
	depth := flag.Int("depth", config.GetenvInt("LCHESS_DEPTH", bots.DefaultDepth), "search depth in plies")
	flag.Parse()

	g := NewGame(*depth)
	ebiten.SetWindowSize(screenWidth, screenHeight)
	ebiten.SetWindowTitle("Losing Chess")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
}
