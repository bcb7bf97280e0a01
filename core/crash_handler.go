package core

import (
	"fmt"
	"io"
	"os"
	"runtime/debug"
)

var (
	csiSGR0          = []byte("\x1b[0m")
	csiCursorShow    = []byte("\x1b[?25h")
	csiAltScreenExit = []byte("\x1b[?1049l")
	csiAutoWrapOn    = []byte("\x1b[?7h")
	csiMouseOff      = []byte("\x1b[?1000l\x1b[?1002l\x1b[?1003l\x1b[?1006l")
)

// Output and exit hooks, replaced in tests
var (
	crashOutput io.Writer = os.Stderr
	terminalOut io.Writer = os.Stdout
	exit                  = os.Exit
)

// EmergencyReset writes the sequences that undo alternate screen, hidden
// cursor, mouse tracking and styling. Safe to call after a clean Fini.
func EmergencyReset(w io.Writer) {
	w.Write(csiMouseOff)
	w.Write(csiCursorShow)
	w.Write(csiAltScreenExit)
	w.Write(csiSGR0)
	w.Write(csiAutoWrapOn)

	if f, ok := w.(*os.File); ok {
		f.Sync()
	}
}

// HandleCrash is the unified panic handler that resets the terminal and prints the stack trace
func HandleCrash(r any) {
	if r == nil {
		return
	}

	EmergencyReset(terminalOut)

	fmt.Fprintf(crashOutput, "\r\n\x1b[31mCRASH DETECTED: %v\x1b[0m\r\n", r)
	fmt.Fprintf(crashOutput, "Stack Trace:\r\n%s\r\n", debug.Stack())

	if f, ok := crashOutput.(*os.File); ok {
		f.Sync()
	}

	exit(1)
}
