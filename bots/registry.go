package bots

import (
	"errors"
	"fmt"
	"sort"
	"time"
)

var ErrUnknownBot = errors.New("unknown bot")

var factories = map[string]func(depth int) ChessBot{
	"newborn": func(int) ChessBot { return NewNewbornBot() },
	"random":  func(int) ChessBot { return NewRandomBot(time.Now().UnixNano()) },
	"minimax": func(depth int) ChessBot { return NewMinimaxBot(depth) },
}

// Names lists the registered bot names in sorted order.
func Names() []string {
	names := make([]string, 0, len(factories))
	for name := range factories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// New builds the bot registered under name. depth only matters for searching bots.
func New(name string, depth int) (ChessBot, error) {
	f, ok := factories[name]
	if !ok {
		return nil, fmt.Errorf("%w %q; valid: %v", ErrUnknownBot, name, Names())
	}
	return f(depth), nil
}
