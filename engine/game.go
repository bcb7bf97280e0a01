package engine

import (
	"github.com/lixenwraith/tictactui/board"
)

// FirstPlayer opens every game
const FirstPlayer = board.X

// Game pairs a board with turn ownership and result.
// The zero value is not ready; use NewGame.
type Game struct {
	board board.Board
	state GameState
}

// NewGame returns an empty board with FirstPlayer to move
func NewGame() *Game {
	return &Game{state: InProgress{Player: FirstPlayer}}
}

// Board returns a copy of the current grid
func (g *Game) Board() board.Board {
	return g.board
}

// State returns the current result
func (g *Game) State() GameState {
	return g.state
}

// Commit places the current player's mark at c and advances the state.
// Returns false, leaving the game unchanged, when the game is over or the
// cell cannot take a mark.
func (g *Game) Commit(c board.Coord) bool {
	turn, ok := g.state.(InProgress)
	if !ok {
		return false
	}
	if err := g.board.Place(c, turn.Player); err != nil {
		return false
	}

	switch line, won := g.board.WinningLine(); {
	case won:
		g.state = Won{Winner: turn.Player, Line: line}
	case g.board.IsFull():
		g.state = Draw{}
	default:
		g.state = InProgress{Player: turn.Player.Other()}
	}
	return true
}

// Restart clears the board and hands the move back to FirstPlayer from any state
func (g *Game) Restart() {
	g.board = board.Board{}
	g.state = InProgress{Player: FirstPlayer}
}
