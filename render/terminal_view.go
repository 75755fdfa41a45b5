package render

import (
	"fmt"
	"sync"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/vi-racer/config"
	"github.com/lixenwraith/vi-racer/constants"
	"github.com/lixenwraith/vi-racer/engine"
)

// halfBlock draws the upper pixel as foreground and the lower as background
const halfBlock = '▀'

// TerminalView owns the tcell screen: row 0 is the HUD, the rest shows the canvas
// at two pixels per cell. It implements engine.Renderer and engine.HUDSink.
type TerminalView struct {
	screen  tcell.Screen
	painter *Painter
	pixels  *PixelBuffer

	width, height int

	mu     sync.Mutex
	status string
}

// NewTerminalView sizes a view to the current screen
func NewTerminalView(screen tcell.Screen, cfg *config.Config, colors *ColorCache) *TerminalView {
	v := &TerminalView{
		screen:  screen,
		painter: NewPainter(cfg, colors),
		pixels:  NewPixelBuffer(cfg.Canvas.Width, cfg.Canvas.Height, 0, 0),
	}
	v.Resize()
	return v
}

// Resize adopts the current screen size
func (v *TerminalView) Resize() {
	v.width, v.height = v.screen.Size()
	v.pixels.Resize(v.width, max(v.height-1, 0)*2)
}

// SetStatus sets the right-aligned HUD annotation (mute, spectators)
func (v *TerminalView) SetStatus(s string) {
	v.mu.Lock()
	v.status = s
	v.mu.Unlock()
}

// RenderScene paints the scene and copies it to the screen
func (v *TerminalView) RenderScene(s engine.Scene) {
	v.painter.Paint(v.pixels, s)
	v.flushPixels()
}

// PublishHUD draws the HUD row
func (v *TerminalView) PublishHUD(h engine.HUD) {
	text := fmt.Sprintf(" Score: %d   Speed: %d km/h   Level: %d ", h.Score, h.DisplaySpeed, h.Level)
	v.drawHUDRow(text)
}

// ShowMenu draws the road with the start menu on top
func (v *TerminalView) ShowMenu() {
	v.painter.PaintRoad(v.pixels, 0)
	v.flushPixels()
	v.drawHUDRow("")
	drawOverlay(v.screen, v.width, v.height, MenuLines())
}

// ShowGameOver draws the final stats over the last rendered frame
func (v *TerminalView) ShowGameOver(stats engine.FinalStats) {
	v.flushPixels()
	drawOverlay(v.screen, v.width, v.height, GameOverLines(stats))
}

// Show pushes pending changes to the terminal
func (v *TerminalView) Show() {
	v.screen.Show()
}

func (v *TerminalView) drawHUDRow(text string) {
	if v.height == 0 {
		return
	}
	base := tcell.StyleDefault.Background(RgbHUDBg)
	fillRow(v.screen, 0, v.width, 0, base)

	x := drawText(v.screen, 0, 0, fitText(constants.HUDTitle, v.width), base.Foreground(RgbHUDTitle).Bold(true))
	x = drawText(v.screen, x, 0, fitText(text, v.width-x), base.Foreground(RgbHUDText))

	v.mu.Lock()
	status := v.status
	v.mu.Unlock()
	if status == "" {
		return
	}
	status = fitText(status+" ", v.width-x)
	drawText(v.screen, v.width-runewidthOf(status), 0, status, base.Foreground(RgbHUDStatus))
}

// flushPixels copies the framebuffer into rows 1.. as half blocks
func (v *TerminalView) flushPixels() {
	pw, ph := v.pixels.PixelSize()
	for row := 0; row*2 < ph; row++ {
		for col := 0; col < pw; col++ {
			top := v.pixels.At(col, row*2)
			bottom := v.pixels.At(col, row*2+1)
			style := tcell.StyleDefault.Foreground(top.Tcell()).Background(bottom.Tcell())
			v.screen.SetContent(col, row+1, halfBlock, nil, style)
		}
	}
}
