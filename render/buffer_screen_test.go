package render

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/tictactui/board"
	"github.com/lixenwraith/tictactui/engine"
)

func newSimScreen(t *testing.T, w, h int) tcell.SimulationScreen {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, screen.Init())
	t.Cleanup(screen.Fini)
	screen.SetSize(w, h)
	return screen
}

func TestOrigin(t *testing.T) {
	f := NewFrame(35, 14)

	x, y := Origin(f, 80, 24)
	assert.Equal(t, 22, x)
	assert.Equal(t, 5, y)

	// Smaller screen pins the frame to the top-left
	x, y = Origin(f, 20, 10)
	assert.Equal(t, 0, x)
	assert.Equal(t, 0, y)
}

func TestPresent_CentersFrame(t *testing.T) {
	screen := newSimScreen(t, 80, 24)
	f := Render(engine.NewSession().Snapshot())

	Present(screen, f)

	ox, oy := Origin(f, 80, 24)
	mx, my := markPos(board.Coord{Row: 0, Col: 0})

	r, _, style, _ := screen.GetContent(ox+mx-1, oy+my)
	assert.Equal(t, '[', r)
	assert.Equal(t, cursorStyle(StyleDefault), style)

	r, _, _, _ = screen.GetContent(ox+mx+1, oy+my)
	assert.Equal(t, ']', r)

	// Top-left grid corner
	r, _, _, _ = screen.GetContent(ox+gridLeft(), oy+rowGrid)
	assert.Equal(t, '┌', r)
}

func TestPresent_ClipsOnSmallScreen(t *testing.T) {
	screen := newSimScreen(t, 20, 6)
	f := Render(engine.NewSession().Snapshot())

	assert.NotPanics(t, func() { Present(screen, f) })

	mx, my := markPos(board.Coord{Row: 0, Col: 0})
	r, _, _, _ := screen.GetContent(mx-1, my)
	assert.Equal(t, '[', r)
}
