package render

import (
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/lixenwraith/vi-racer/constants"
	"github.com/lixenwraith/vi-racer/engine"
)

// OverlayLine is one centred line of a modal box
type OverlayLine struct {
	Text  string
	Color tcell.Color
}

// MenuLines is the start menu content
func MenuLines() []OverlayLine {
	return []OverlayLine{
		{constants.MenuTitle, RgbHUDTitle},
		{"", 0},
		{"Dodge the traffic. Pass cars for bonus points.", RgbOverlayText},
		{"", 0},
		{"←/a  steer left    →/d  steer right", RgbOverlayHint},
		{"Enter/Space  start    m  mute    q  quit", RgbOverlayHint},
	}
}

// GameOverLines is the final stats content
func GameOverLines(stats engine.FinalStats) []OverlayLine {
	return []OverlayLine{
		{"GAME OVER", RgbGameOver},
		{"", 0},
		{fmt.Sprintf("Score: %d", stats.Score), RgbOverlayText},
		{fmt.Sprintf("Distance: %dm", stats.Distance), RgbOverlayText},
		{fmt.Sprintf("Level: %d", stats.Level), RgbOverlayText},
		{fmt.Sprintf("Cars avoided: %d", stats.CarsAvoided), RgbOverlayText},
		{fmt.Sprintf("Time: %s", stats.Duration.Round(time.Second)), RgbOverlayText},
		{"", 0},
		{"Enter/Space  restart    Esc  menu    q  quit", RgbOverlayHint},
	}
}

// drawOverlay draws a centred box with one padded line per entry, clipped to the screen
func drawOverlay(w cellWriter, screenW, screenH int, lines []OverlayLine) {
	inner := 0
	for _, l := range lines {
		inner = max(inner, runewidth.StringWidth(l.Text))
	}
	boxW := min(inner+4, screenW)
	boxH := min(len(lines)+2, screenH)
	x0 := (screenW - boxW) / 2
	y0 := (screenH - boxH) / 2

	bg := tcell.StyleDefault.Background(RgbOverlayBg)
	for y := y0; y < y0+boxH; y++ {
		fillRow(w, x0, x0+boxW, y, bg)
	}

	for i, l := range lines {
		y := y0 + 1 + i
		if y >= y0+boxH-1 {
			break
		}
		text := fitText(l.Text, boxW-2)
		x := x0 + centerColumn(text, boxW)
		drawText(w, x, y, text, bg.Foreground(l.Color).Bold(i == 0))
	}
}
