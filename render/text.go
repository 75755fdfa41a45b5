package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// cellWriter is the part of tcell.Screen text drawing needs
type cellWriter interface {
	SetContent(x, y int, primary rune, combining []rune, style tcell.Style)
}

// drawText writes s starting at column x, advancing by display width.
// Returns the column after the last rune drawn.
func drawText(w cellWriter, x, y int, s string, style tcell.Style) int {
	for _, r := range s {
		rw := runewidth.RuneWidth(r)
		if rw == 0 {
			continue
		}
		w.SetContent(x, y, r, nil, style)
		x += rw
	}
	return x
}

// fitText truncates s to width display cells, marking the cut with an ellipsis
func fitText(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if runewidth.StringWidth(s) <= width {
		return s
	}
	return runewidth.Truncate(s, width, "…")
}

// centerColumn returns the start column that centres s in a span of width cells
func centerColumn(s string, width int) int {
	x := (width - runewidth.StringWidth(s)) / 2
	if x < 0 {
		return 0
	}
	return x
}

// fillRow paints cells [x0, x1) of row y with spaces in style
func fillRow(w cellWriter, x0, x1, y int, style tcell.Style) {
	for x := x0; x < x1; x++ {
		w.SetContent(x, y, ' ', nil, style)
	}
}

func runewidthOf(s string) int {
	return runewidth.StringWidth(s)
}
