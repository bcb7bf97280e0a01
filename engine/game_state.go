package engine

import (
	"fmt"

	"github.com/lixenwraith/tictactui/board"
)

// GameState is the closed set of game results: InProgress, Won or Draw.
// The unexported marker keeps other packages from adding variants.
type GameState interface {
	// Terminal reports whether the state only accepts a restart
	Terminal() bool
	String() string
	gameState()
}

// InProgress is the only non-terminal state; Player moves next
type InProgress struct {
	Player board.Player
}

// Won records the winner and the line that decided the game
type Won struct {
	Winner board.Player
	Line   board.Line
}

// Draw is a full board with no completed line
type Draw struct{}

func (InProgress) Terminal() bool { return false }
func (Won) Terminal() bool        { return true }
func (Draw) Terminal() bool       { return true }

func (s InProgress) String() string { return fmt.Sprintf("in progress (%s to move)", s.Player) }
func (s Won) String() string        { return fmt.Sprintf("won by %s on %s", s.Winner, s.Line) }
func (Draw) String() string         { return "draw" }

func (InProgress) gameState() {}
func (Won) gameState()        {}
func (Draw) gameState()       {}
