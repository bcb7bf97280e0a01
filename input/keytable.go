package input

import "github.com/gdamore/tcell/v2"

// KeyTable maps keys to intents
type KeyTable struct {
	// Special keys (Ctrl+*, arrows, Enter, Esc)
	SpecialKeys map[tcell.Key]Intent

	// Printable runes, matched only without Ctrl/Alt
	Runes map[rune]Intent
}

// DefaultKeyTable returns the fixed game bindings
func DefaultKeyTable() *KeyTable {
	return &KeyTable{
		SpecialKeys: map[tcell.Key]Intent{
			tcell.KeyUp:     Move(DirUp),
			tcell.KeyDown:   Move(DirDown),
			tcell.KeyLeft:   Move(DirLeft),
			tcell.KeyRight:  Move(DirRight),
			tcell.KeyEnter:  {Type: IntentCommit},
			tcell.KeyEscape: {Type: IntentQuit},
			tcell.KeyCtrlC:  {Type: IntentQuit},
		},

		Runes: map[rune]Intent{
			// vi motions
			'h': Move(DirLeft),
			'j': Move(DirDown),
			'k': Move(DirUp),
			'l': Move(DirRight),

			' ': {Type: IntentCommit},

			'r': {Type: IntentRestart},
			'R': {Type: IntentRestart},

			'q': {Type: IntentQuit},
			'Q': {Type: IntentQuit},
		},
	}
}
