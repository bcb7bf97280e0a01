package render

import "github.com/gdamore/tcell/v2"

// Screen is the part of tcell.Screen the presenter draws on
type Screen interface {
	Clear()
	Size() (width, height int)
	SetContent(x, y int, primary rune, combining []rune, style tcell.Style)
	Show()
}

// Origin returns where a frame's top-left lands when centered on a screen.
// Frames larger than the screen are pinned to the top-left and clipped.
func Origin(f *Frame, screenWidth, screenHeight int) (x, y int) {
	fw, fh := f.Bounds()
	return max((screenWidth-fw)/2, 0), max((screenHeight-fh)/2, 0)
}

// Present clears the screen, copies the frame centered and shows it
func Present(s Screen, f *Frame) {
	sw, sh := s.Size()
	ox, oy := Origin(f, sw, sh)
	fw, fh := f.Bounds()

	s.Clear()
	for y := 0; y < fh && oy+y < sh; y++ {
		for x := 0; x < fw && ox+x < sw; x++ {
			cell := f.Get(x, y)
			s.SetContent(ox+x, oy+y, cell.Rune, nil, cell.Style)
		}
	}
	s.Show()
}
