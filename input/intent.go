package input

// IntentType discriminates semantic actions
type IntentType uint8

const (
	IntentNone    IntentType = iota // Unbound key, dropped
	IntentMove                      // Arrows, h/j/k/l
	IntentCommit                    // Enter, Space
	IntentRestart                   // r, R
	IntentQuit                      // q, Q, Esc, Ctrl+C
)

var intentNames = [...]string{
	IntentNone:    "none",
	IntentMove:    "move",
	IntentCommit:  "commit",
	IntentRestart: "restart",
	IntentQuit:    "quit",
}

func (t IntentType) String() string {
	if int(t) < len(intentNames) {
		return intentNames[t]
	}
	return "unknown"
}

// Direction of a cursor move
type Direction uint8

const (
	DirNone Direction = iota
	DirUp
	DirDown
	DirLeft
	DirRight
)

var directionNames = [...]string{
	DirNone:  "none",
	DirUp:    "up",
	DirDown:  "down",
	DirLeft:  "left",
	DirRight: "right",
}

func (d Direction) String() string {
	if int(d) < len(directionNames) {
		return directionNames[d]
	}
	return "unknown"
}

// Intent represents a parsed semantic action
// Pure data, no terminal types
type Intent struct {
	Type      IntentType
	Direction Direction // Only set for IntentMove
}

// Move builds a cursor movement intent
func Move(dir Direction) Intent {
	return Intent{Type: IntentMove, Direction: dir}
}

func (i Intent) String() string {
	if i.Type == IntentMove {
		return i.Type.String() + " " + i.Direction.String()
	}
	return i.Type.String()
}
