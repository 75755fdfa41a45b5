package render

import (
	"math"

	"github.com/lixenwraith/vi-racer/config"
	"github.com/lixenwraith/vi-racer/constants"
	"github.com/lixenwraith/vi-racer/engine"
)

// Painter draws a scene onto a Surface
type Painter struct {
	cfg    *config.Config
	colors *ColorCache
	scene  sceneColors
}

// NewPainter creates a painter for the configured road
func NewPainter(cfg *config.Config, colors *ColorCache) *Painter {
	return &Painter{
		cfg:    cfg,
		colors: colors,
		scene:  resolveSceneColors(colors),
	}
}

// Paint clears the surface and draws road, traffic, then player
func (p *Painter) Paint(s Surface, scene engine.Scene) {
	p.drawRoad(s, scene.RoadOffset)
	for _, t := range scene.Traffic {
		p.drawTraffic(s, t.X, t.Y, t.Width, t.Height, t.Color)
	}
	if scene.Player != nil {
		pl := scene.Player
		p.drawPlayer(s, pl.X, pl.Y, pl.Width, pl.Height)
	}
}

// PaintRoad draws only the road, used behind menus
func (p *Painter) PaintRoad(s Surface, offset float64) {
	p.drawRoad(s, offset)
}

func (p *Painter) drawRoad(s Surface, offset float64) {
	cfg := p.cfg
	roadLeft := cfg.RoadLeft()

	s.Clear(p.scene.grass)
	s.FillRect(roadLeft, 0, cfg.Road.Width, cfg.Canvas.Height, p.scene.road)

	// Dashed dividers between lanes, scrolling down with the offset
	period := float64(constants.LaneMarkerPeriod)
	phase := math.Mod(offset, period)
	for lane := 1; lane < cfg.Road.Lanes; lane++ {
		x := cfg.LaneLeft(lane) - constants.LaneMarkerWidth/2.0
		for y := -constants.LaneMarkerLength + phase; y < cfg.Canvas.Height; y += period {
			if y+constants.LaneMarkerLength > 0 {
				s.FillRect(x, y, constants.LaneMarkerWidth, constants.LaneMarkerLength, p.scene.marker)
			}
		}
	}
}
