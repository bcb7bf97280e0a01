package engine

import (
	"github.com/lixenwraith/tictactui/board"
	"github.com/lixenwraith/tictactui/input"
)

// Cursor is the highlighted cell, always inside the grid
type Cursor struct {
	pos board.Coord
}

// Position returns the highlighted cell
func (c *Cursor) Position() board.Coord {
	return c.pos
}

// Move steps one cell in dir, clamped at the grid edge.
// Returns false when the cursor was already at the edge.
func (c *Cursor) Move(dir input.Direction) bool {
	next := c.pos
	switch dir {
	case input.DirUp:
		next.Row--
	case input.DirDown:
		next.Row++
	case input.DirLeft:
		next.Col--
	case input.DirRight:
		next.Col++
	default:
		return false
	}
	if !next.Valid() {
		return false
	}
	c.pos = next
	return true
}

// Reset returns the cursor to the top-left cell
func (c *Cursor) Reset() {
	c.pos = board.Coord{}
}
