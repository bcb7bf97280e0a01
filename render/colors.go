package render

import (
	"github.com/gdamore/tcell/v2"
)

// RGB color definitions
var (
	RgbTitle   = tcell.NewRGBColor(255, 215, 0)   // Gold
	RgbGrid    = tcell.NewRGBColor(120, 120, 140) // Muted slate
	RgbMarkX   = tcell.NewRGBColor(100, 150, 255) // Normal Blue
	RgbMarkO   = tcell.NewRGBColor(255, 165, 0)   // Orange
	RgbWinning = tcell.NewRGBColor(50, 255, 50)   // Bright Green
	RgbHelpKey = tcell.NewRGBColor(135, 206, 250) // Light sky blue
	RgbHelp    = tcell.NewRGBColor(180, 180, 180) // Brighter gray
)

// Styles used by the renderer. Cursor and winning highlights carry
// attributes besides color so they remain visible on monochrome terminals.
var (
	StyleDefault = tcell.StyleDefault
	StyleTitle   = StyleDefault.Foreground(RgbTitle).Bold(true)
	StyleGrid    = StyleDefault.Foreground(RgbGrid)
	StyleMarkX   = StyleDefault.Foreground(RgbMarkX).Bold(true)
	StyleMarkO   = StyleDefault.Foreground(RgbMarkO).Bold(true)
	StyleWinning = StyleDefault.Foreground(RgbWinning).Bold(true).Underline(true)
	StyleDraw    = StyleDefault.Bold(true)
	StyleHelp    = StyleDefault.Foreground(RgbHelp)
	StyleHelpKey = StyleDefault.Foreground(RgbHelpKey).Bold(true)
)

// cursorStyle overlays the cursor highlight on a cell style
func cursorStyle(base tcell.Style) tcell.Style {
	return base.Reverse(true)
}
