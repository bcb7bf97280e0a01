package input

import (
	"github.com/gdamore/tcell/v2"
)

// Machine resolves key events to intents through a KeyTable.
// It holds no per-keystroke state: every key maps on its own.
type Machine struct {
	keyTable *KeyTable
}

// NewMachine creates a machine with the default bindings
func NewMachine() *Machine {
	return NewMachineWithTable(DefaultKeyTable())
}

// NewMachineWithTable creates a machine over a custom table
func NewMachineWithTable(kt *KeyTable) *Machine {
	if kt == nil {
		kt = DefaultKeyTable()
	}
	return &Machine{keyTable: kt}
}

// Process maps a key event to an Intent. Total: unknown keys and nil events
// resolve to IntentNone.
func (m *Machine) Process(ev *tcell.EventKey) Intent {
	if ev == nil {
		return Intent{}
	}

	if ev.Key() == tcell.KeyRune {
		if ev.Modifiers()&tcell.ModCtrl != 0 {
			// Some drivers report Ctrl+letter as a modified rune
			if ev.Rune() == 'c' || ev.Rune() == 'C' {
				return m.keyTable.SpecialKeys[tcell.KeyCtrlC]
			}
			return Intent{}
		}
		if ev.Modifiers()&tcell.ModAlt != 0 {
			return Intent{}
		}
		if in, ok := m.keyTable.Runes[ev.Rune()]; ok {
			return in
		}
		return Intent{}
	}

	if in, ok := m.keyTable.SpecialKeys[ev.Key()]; ok {
		return in
	}
	return Intent{}
}
