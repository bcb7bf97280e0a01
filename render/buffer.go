package render

import (
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// Cell is one styled terminal position
type Cell struct {
	Rune  rune
	Style tcell.Style
}

var blankCell = Cell{Rune: ' ', Style: StyleDefault}

// Frame is a row-major grid of cells: cells[y*width + x]
type Frame struct {
	cells  []Cell
	width  int
	height int
}

// NewFrame creates a frame filled with blanks
func NewFrame(width, height int) *Frame {
	f := &Frame{
		cells:  make([]Cell, width*height),
		width:  width,
		height: height,
	}
	f.Clear()
	return f
}

// Clear resets all cells to blank using exponential copy
func (f *Frame) Clear() {
	if len(f.cells) == 0 {
		return
	}
	f.cells[0] = blankCell
	for filled := 1; filled < len(f.cells); filled *= 2 {
		copy(f.cells[filled:], f.cells[:filled])
	}
}

// Bounds returns frame dimensions
func (f *Frame) Bounds() (int, int) {
	return f.width, f.height
}

func (f *Frame) inBounds(x, y int) bool {
	return x >= 0 && x < f.width && y >= 0 && y < f.height
}

// Set writes a cell; out of bounds writes are dropped
func (f *Frame) Set(x, y int, r rune, style tcell.Style) {
	if !f.inBounds(x, y) {
		return
	}
	f.cells[y*f.width+x] = Cell{Rune: r, Style: style}
}

// Get reads a cell; out of bounds reads return a blank
func (f *Frame) Get(x, y int) Cell {
	if !f.inBounds(x, y) {
		return blankCell
	}
	return f.cells[y*f.width+x]
}

// SetString writes s starting at x, advancing by display width.
// Returns the x after the last rune.
func (f *Frame) SetString(x, y int, s string, style tcell.Style) int {
	for _, r := range s {
		f.Set(x, y, r, style)
		x += max(runewidth.RuneWidth(r), 1)
	}
	return x
}

// SetCentered writes s horizontally centered on row y
func (f *Frame) SetCentered(y int, s string, style tcell.Style) {
	f.SetString((f.width-runewidth.StringWidth(s))/2, y, s, style)
}

// Row returns the runes of row y as a string, for logs and tests
func (f *Frame) Row(y int) string {
	if y < 0 || y >= f.height {
		return ""
	}
	var sb strings.Builder
	for x := 0; x < f.width; x++ {
		sb.WriteRune(f.cells[y*f.width+x].Rune)
	}
	return sb.String()
}

// String joins all rows with newlines
func (f *Frame) String() string {
	rows := make([]string, f.height)
	for y := range rows {
		rows[y] = f.Row(y)
	}
	return strings.Join(rows, "\n")
}
