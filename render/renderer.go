package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/lixenwraith/tictactui/board"
	"github.com/lixenwraith/tictactui/engine"
)

const title = "Tic Tac Tui"

// Grid geometry: each cell interior is cellWidth columns by one row,
// separated and surrounded by single-width box lines
const (
	cellWidth  = 5
	gridWidth  = board.Size*(cellWidth+1) + 1
	gridHeight = board.Size*2 + 1
)

// Frame rows
const (
	rowTitle  = 0
	rowGrid   = 2
	rowStatus = rowGrid + gridHeight + 1
	rowHelp   = rowStatus + 2
)

type helpItem struct {
	keys, label string
}

var helpRows = [][]helpItem{
	{{"arrows/hjkl", "move"}, {"enter/space", "place"}},
	{{"r", "restart"}, {"q/esc", "quit"}},
}

// FrameWidth and FrameHeight are the fixed dimensions of every rendered frame
var (
	FrameWidth  = frameWidth()
	FrameHeight = rowHelp + len(helpRows)
)

func frameWidth() int {
	w := max(gridWidth, runewidth.StringWidth(title))
	for _, row := range helpRows {
		w = max(w, helpRowWidth(row))
	}
	return w
}

func helpRowWidth(row []helpItem) int {
	w := 0
	for i, item := range row {
		if i > 0 {
			w += 2
		}
		w += runewidth.StringWidth(item.keys) + 1 + runewidth.StringWidth(item.label)
	}
	return w
}

// gridLeft is the frame column of the grid's left border
func gridLeft() int {
	return (FrameWidth - gridWidth) / 2
}

// markPos returns the frame position of the mark glyph for cell c
func markPos(c board.Coord) (x, y int) {
	x = gridLeft() + 1 + c.Col*(cellWidth+1) + cellWidth/2
	y = rowGrid + 1 + c.Row*2
	return x, y
}

// StatusText is the status line for a game state
func StatusText(s engine.GameState) string {
	switch s := s.(type) {
	case engine.InProgress:
		return s.Player.String() + "'s turn"
	case engine.Won:
		return s.Winner.String() + " wins!"
	case engine.Draw:
		return "Draw"
	}
	return ""
}

// Render draws a snapshot into a new frame. It reads the snapshot only;
// equal snapshots always produce equal frames.
func Render(snap engine.Snapshot) *Frame {
	f := NewFrame(FrameWidth, FrameHeight)

	f.SetCentered(rowTitle, title, StyleTitle)
	drawGrid(f)

	var winning *board.Line
	if won, ok := snap.State.(engine.Won); ok {
		winning = &won.Line
	}
	for r := 0; r < board.Size; r++ {
		for c := 0; c < board.Size; c++ {
			coord := board.Coord{Row: r, Col: c}
			drawCell(f, coord, snap.Board.At(coord), coord == snap.Cursor, winning != nil && winning.Contains(coord))
		}
	}

	f.SetCentered(rowStatus, StatusText(snap.State), statusStyle(snap.State))
	for i, row := range helpRows {
		drawHelp(f, rowHelp+i, row)
	}
	return f
}

func drawGrid(f *Frame) {
	left := gridLeft()
	for gy := 0; gy < gridHeight; gy++ {
		y := rowGrid + gy
		for gx := 0; gx < gridWidth; gx++ {
			f.Set(left+gx, y, gridRune(gx, gy), StyleGrid)
		}
	}
}

// gridRune picks the box-drawing rune for grid-local position (gx, gy)
func gridRune(gx, gy int) rune {
	onVertical := gx%(cellWidth+1) == 0
	onHorizontal := gy%2 == 0
	lastX, lastY := gridWidth-1, gridHeight-1

	switch {
	case !onVertical && !onHorizontal:
		return ' '
	case !onHorizontal:
		return '│'
	case !onVertical:
		return '─'
	}

	// Junctions
	switch {
	case gy == 0:
		return pick(gx, lastX, '┌', '┬', '┐')
	case gy == lastY:
		return pick(gx, lastX, '└', '┴', '┘')
	default:
		return pick(gx, lastX, '├', '┼', '┤')
	}
}

func pick(gx, last int, first, mid, end rune) rune {
	switch gx {
	case 0:
		return first
	case last:
		return end
	}
	return mid
}

func drawCell(f *Frame, c board.Coord, mark board.Cell, isCursor, isWinning bool) {
	mx, y := markPos(c)
	left := mx - cellWidth/2

	base := StyleDefault
	markStyle := StyleDefault
	switch mark {
	case board.MarkX:
		markStyle = StyleMarkX
	case board.MarkO:
		markStyle = StyleMarkO
	}
	if isWinning {
		base = StyleWinning
		markStyle = StyleWinning
	}
	if isCursor {
		base = cursorStyle(base)
		markStyle = cursorStyle(markStyle)
	}

	for x := left; x < left+cellWidth; x++ {
		f.Set(x, y, ' ', base)
	}
	if isCursor {
		f.Set(mx-1, y, '[', base)
		f.Set(mx+1, y, ']', base)
	}
	f.Set(mx, y, mark.Rune(), markStyle)
}

func statusStyle(s engine.GameState) tcell.Style {
	switch s := s.(type) {
	case engine.InProgress:
		if s.Player == board.O {
			return StyleMarkO
		}
		return StyleMarkX
	case engine.Won:
		return StyleWinning
	}
	return StyleDraw
}

func drawHelp(f *Frame, y int, row []helpItem) {
	x := (FrameWidth - helpRowWidth(row)) / 2
	for i, item := range row {
		if i > 0 {
			x += 2
		}
		x = f.SetString(x, y, item.keys, StyleHelpKey)
		x = f.SetString(x+1, y, item.label, StyleHelp)
	}
}
