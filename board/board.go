// Package board holds the 3x3 tic-tac-toe grid and the pure rules over it:
// placing marks, finding a completed line and detecting a full board.
package board

import (
	"errors"
	"strings"
)

// Size is the number of rows and columns
const Size = 3

var (
	ErrInvalidCoordinate = errors.New("coordinate out of bounds")
	ErrCellOccupied      = errors.New("cell is already occupied")
	ErrBoardDecided      = errors.New("board already has a winning line")
)

// Cell is the content of one square
type Cell uint8

const (
	Empty Cell = iota
	MarkX
	MarkO
)

// String returns the glyph drawn for the cell, a space when empty
func (c Cell) String() string {
	return string(c.Rune())
}

// Rune returns the glyph as a rune
func (c Cell) Rune() rune {
	switch c {
	case MarkX:
		return 'X'
	case MarkO:
		return 'O'
	default:
		return ' '
	}
}

// Player owns one of the two marks
type Player uint8

const (
	X Player = iota + 1
	O
)

// Mark returns the cell value this player places
func (p Player) Mark() Cell {
	if p == O {
		return MarkO
	}
	return MarkX
}

// Other returns the opponent
func (p Player) Other() Player {
	if p == X {
		return O
	}
	return X
}

func (p Player) String() string {
	if p == O {
		return "O"
	}
	return "X"
}

// Coord addresses a cell, row-major, zero-based
type Coord struct {
	Row, Col int
}

// Valid reports whether both components are within the grid
func (c Coord) Valid() bool {
	return c.Row >= 0 && c.Row < Size && c.Col >= 0 && c.Col < Size
}

// Board is a value type; assignment copies the whole grid
type Board struct {
	cells [Size][Size]Cell
}

// At returns the cell at c. Out of range coordinates read as Empty.
func (b Board) At(c Coord) Cell {
	if !c.Valid() {
		return Empty
	}
	return b.cells[c.Row][c.Col]
}

// Place puts p's mark at c. The board is left untouched on error.
func (b *Board) Place(c Coord, p Player) error {
	if !c.Valid() {
		return ErrInvalidCoordinate
	}
	if b.cells[c.Row][c.Col] != Empty {
		return ErrCellOccupied
	}
	if _, decided := b.WinningLine(); decided {
		return ErrBoardDecided
	}
	b.cells[c.Row][c.Col] = p.Mark()
	return nil
}

// WinningLine returns the first uniformly marked line in Lines order
func (b Board) WinningLine() (Line, bool) {
	for _, line := range Lines {
		first := b.At(line.Cells[0])
		if first == Empty {
			continue
		}
		if b.At(line.Cells[1]) == first && b.At(line.Cells[2]) == first {
			return line, true
		}
	}
	return Line{}, false
}

// IsFull reports whether every cell holds a mark
func (b Board) IsFull() bool {
	for r := range b.cells {
		for c := range b.cells[r] {
			if b.cells[r][c] == Empty {
				return false
			}
		}
	}
	return true
}

// Count returns the number of cells holding mark
func (b Board) Count(mark Cell) int {
	n := 0
	for r := range b.cells {
		for c := range b.cells[r] {
			if b.cells[r][c] == mark {
				n++
			}
		}
	}
	return n
}

// String dumps the grid as three lines, '.' for empty cells
func (b Board) String() string {
	var sb strings.Builder
	for r := range b.cells {
		if r > 0 {
			sb.WriteByte('\n')
		}
		for c := range b.cells[r] {
			if b.cells[r][c] == Empty {
				sb.WriteByte('.')
				continue
			}
			sb.WriteString(b.cells[r][c].String())
		}
	}
	return sb.String()
}
