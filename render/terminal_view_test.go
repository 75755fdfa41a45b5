package render

import (
	"strings"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/vi-racer/config"
	"github.com/lixenwraith/vi-racer/engine"
)

func newTestView(t *testing.T, w, h int) (*TerminalView, tcell.SimulationScreen) {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("init simulation screen: %v", err)
	}
	t.Cleanup(screen.Fini)
	screen.SetSize(w, h)
	return NewTerminalView(screen, config.Default(), NewColorCache()), screen
}

func rowText(screen tcell.Screen, y, width int) string {
	var sb strings.Builder
	for x := 0; x < width; x++ {
		r, _, _, _ := screen.GetContent(x, y)
		if r == 0 {
			r = ' '
		}
		sb.WriteRune(r)
	}
	return sb.String()
}

func TestTerminalViewHUD(t *testing.T) {
	view, screen := newTestView(t, 80, 31)

	view.SetStatus("[muted]")
	view.PublishHUD(engine.HUD{Score: 120, DisplaySpeed: 95, Level: 2})

	row := rowText(screen, 0, 80)
	for _, want := range []string{"VI-RACER", "Score: 120", "Speed: 95 km/h", "Level: 2", "[muted]"} {
		if !strings.Contains(row, want) {
			t.Errorf("HUD row %q missing %q", row, want)
		}
	}
	if !strings.HasSuffix(row, "[muted] ") {
		t.Errorf("status should be right-aligned, got %q", row)
	}
}

func TestTerminalViewHUDTruncates(t *testing.T) {
	view, screen := newTestView(t, 20, 10)

	view.PublishHUD(engine.HUD{Score: 123456, DisplaySpeed: 95, Level: 2})

	row := rowText(screen, 0, 20)
	if !strings.Contains(row, "…") {
		t.Errorf("expected truncated HUD, got %q", row)
	}
}

func TestTerminalViewRenderScene(t *testing.T) {
	view, screen := newTestView(t, 80, 31)

	if w, h := view.pixels.PixelSize(); w != 80 || h != 60 {
		t.Fatalf("expected 80x60 pixels, got %dx%d", w, h)
	}

	view.RenderScene(engine.Scene{})

	// column 5 is grass, column 25 is road surface
	for _, tc := range []struct {
		col  int
		want RGB
	}{
		{5, RGB{0x2d, 0x50, 0x16}},
		{25, RGB{0x33, 0x33, 0x33}},
	} {
		r, _, style, _ := screen.GetContent(tc.col, 1)
		if r != halfBlock {
			t.Fatalf("expected half block at column %d, got %q", tc.col, r)
		}
		fg, bg, _ := style.Decompose()
		if fg != tc.want.Tcell() || bg != tc.want.Tcell() {
			t.Errorf("column %d: unexpected colours fg=%v bg=%v", tc.col, fg, bg)
		}
	}
}

func TestTerminalViewOverlays(t *testing.T) {
	view, screen := newTestView(t, 80, 31)

	view.ShowMenu()
	found := false
	for y := 0; y < 31; y++ {
		if strings.Contains(rowText(screen, y, 80), "V I - R A C E R") {
			found = true
		}
	}
	if !found {
		t.Error("menu title not drawn")
	}

	view.ShowGameOver(engine.FinalStats{Score: 420, Distance: 1234, Level: 2, CarsAvoided: 7, Duration: 90400 * time.Millisecond})
	var all strings.Builder
	for y := 0; y < 31; y++ {
		all.WriteString(rowText(screen, y, 80))
		all.WriteByte('\n')
	}
	for _, want := range []string{"GAME OVER", "Score: 420", "Distance: 1234m", "Level: 2", "Cars avoided: 7", "Time: 1m30s"} {
		if !strings.Contains(all.String(), want) {
			t.Errorf("game over overlay missing %q", want)
		}
	}
}

func TestTerminalViewResize(t *testing.T) {
	view, screen := newTestView(t, 80, 31)

	screen.SetSize(120, 41)
	view.Resize()

	if w, h := view.pixels.PixelSize(); w != 120 || h != 80 {
		t.Errorf("expected 120x80 pixels after resize, got %dx%d", w, h)
	}
}
