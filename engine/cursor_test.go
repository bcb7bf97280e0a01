package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lixenwraith/tictactui/board"
	"github.com/lixenwraith/tictactui/input"
)

func TestCursor_StartsTopLeft(t *testing.T) {
	var c Cursor
	assert.Equal(t, board.Coord{Row: 0, Col: 0}, c.Position())
}

func TestCursor_MoveWithinGrid(t *testing.T) {
	var c Cursor

	assert.True(t, c.Move(input.DirRight))
	assert.True(t, c.Move(input.DirDown))
	assert.Equal(t, board.Coord{Row: 1, Col: 1}, c.Position())

	assert.True(t, c.Move(input.DirLeft))
	assert.True(t, c.Move(input.DirUp))
	assert.Equal(t, board.Coord{Row: 0, Col: 0}, c.Position())
}

func TestCursor_ClampsAtEveryEdge(t *testing.T) {
	tests := []struct {
		dir   input.Direction
		start board.Coord
	}{
		{input.DirUp, board.Coord{Row: 0, Col: 1}},
		{input.DirDown, board.Coord{Row: 2, Col: 1}},
		{input.DirLeft, board.Coord{Row: 1, Col: 0}},
		{input.DirRight, board.Coord{Row: 1, Col: 2}},
	}

	for _, tt := range tests {
		t.Run(tt.dir.String(), func(t *testing.T) {
			c := Cursor{pos: tt.start}
			for i := 0; i < 5; i++ {
				assert.False(t, c.Move(tt.dir))
				assert.Equal(t, tt.start, c.Position())
			}
		})
	}
}

func TestCursor_RepeatedMovesStopAtEdge(t *testing.T) {
	var c Cursor
	for i := 0; i < 10; i++ {
		c.Move(input.DirDown)
		c.Move(input.DirRight)
	}
	assert.Equal(t, board.Coord{Row: 2, Col: 2}, c.Position())
	assert.True(t, c.Position().Valid())
}

func TestCursor_UnknownDirectionIsNoOp(t *testing.T) {
	c := Cursor{pos: board.Coord{Row: 1, Col: 1}}
	assert.False(t, c.Move(input.DirNone))
	assert.Equal(t, board.Coord{Row: 1, Col: 1}, c.Position())
}

func TestCursor_Reset(t *testing.T) {
	c := Cursor{pos: board.Coord{Row: 2, Col: 1}}
	c.Reset()
	assert.Equal(t, board.Coord{Row: 0, Col: 0}, c.Position())
}
