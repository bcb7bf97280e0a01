package engine

import (
	"github.com/lixenwraith/tictactui/board"
	"github.com/lixenwraith/tictactui/input"
)

// Outcome reports what applying an intent did to the session
type Outcome uint8

const (
	OutcomeIgnored Outcome = iota
	OutcomeMoved
	OutcomePlaced
	OutcomeWon
	OutcomeDrew
	OutcomeRestarted
)

var outcomeNames = [...]string{
	OutcomeIgnored:   "ignored",
	OutcomeMoved:     "moved",
	OutcomePlaced:    "placed",
	OutcomeWon:       "won",
	OutcomeDrew:      "drew",
	OutcomeRestarted: "restarted",
}

func (o Outcome) String() string {
	if int(o) < len(outcomeNames) {
		return outcomeNames[o]
	}
	return "unknown"
}

// Snapshot is a copy of everything the renderer reads
type Snapshot struct {
	Board  board.Board
	State  GameState
	Cursor board.Coord
}

// Session is the mutable game aggregate owned by the event loop
type Session struct {
	game   *Game
	cursor Cursor
}

// NewSession starts a fresh game with the cursor at the top-left cell
func NewSession() *Session {
	return &Session{game: NewGame()}
}

// State returns the current game result
func (s *Session) State() GameState {
	return s.game.State()
}

// Cursor returns the highlighted cell
func (s *Session) Cursor() board.Coord {
	return s.cursor.Position()
}

// Snapshot copies the session for rendering
func (s *Session) Snapshot() Snapshot {
	return Snapshot{
		Board:  s.game.Board(),
		State:  s.game.State(),
		Cursor: s.cursor.Position(),
	}
}

// Apply routes an intent to the cursor or the game.
// Only Restart has an effect once the game is over; Quit is the caller's concern.
func (s *Session) Apply(in input.Intent) Outcome {
	switch in.Type {
	case input.IntentRestart:
		s.game.Restart()
		s.cursor.Reset()
		return OutcomeRestarted

	case input.IntentMove:
		if s.game.State().Terminal() {
			return OutcomeIgnored
		}
		if s.cursor.Move(in.Direction) {
			return OutcomeMoved
		}

	case input.IntentCommit:
		if !s.game.Commit(s.cursor.Position()) {
			return OutcomeIgnored
		}
		switch s.game.State().(type) {
		case Won:
			return OutcomeWon
		case Draw:
			return OutcomeDrew
		}
		return OutcomePlaced
	}
	return OutcomeIgnored
}
