package render

import (
	"testing"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/lixenwraith/vi-racer/config"
	"github.com/lixenwraith/vi-racer/engine"
	"github.com/lixenwraith/vi-racer/vehicle"
)

type fillCall struct {
	x, y, w, h float64
	c          colorful.Color
}

// recordingSurface captures draw calls in order
type recordingSurface struct {
	clears []colorful.Color
	fills  []fillCall
}

func (r *recordingSurface) Size() (float64, float64) { return 800, 600 }

func (r *recordingSurface) Clear(c colorful.Color) {
	r.clears = append(r.clears, c)
	r.fills = nil
}

func (r *recordingSurface) FillRect(x, y, w, h float64, c colorful.Color) {
	r.fills = append(r.fills, fillCall{x, y, w, h, c})
}

func TestPaintRoad(t *testing.T) {
	cfg := config.Default()
	cc := NewColorCache()
	p := NewPainter(cfg, cc)
	s := &recordingSurface{}

	p.Paint(s, engine.Scene{})

	if len(s.clears) != 1 || s.clears[0].Hex() != "#2d5016" {
		t.Fatalf("expected one grass clear, got %v", s.clears)
	}
	road := s.fills[0]
	if road.x != 200 || road.w != 400 || road.h != 600 || road.c.Hex() != "#333333" {
		t.Errorf("unexpected road fill %+v", road)
	}

	markers := s.fills[1:]
	// 3 dividers, dashes at y = 30, 90, ..., 570
	if len(markers) != 30 {
		t.Fatalf("expected 30 dashes, got %d", len(markers))
	}
	if markers[0].x != 298 || markers[0].y != 30 || markers[0].w != 4 || markers[0].h != 30 {
		t.Errorf("unexpected first dash %+v", markers[0])
	}
}

func TestPaintRoadScrolls(t *testing.T) {
	p := NewPainter(config.Default(), NewColorCache())
	s := &recordingSurface{}

	p.Paint(s, engine.Scene{RoadOffset: 45})

	// phase 45 moves the first dash down from 30 to 15
	first := s.fills[1]
	if first.y != 15 {
		t.Errorf("expected first dash at 15, got %v", first.y)
	}
	if s.fills[2].y != 75 {
		t.Errorf("expected next dash at 75, got %v", s.fills[2].y)
	}
}

func TestPaintOrder(t *testing.T) {
	cfg := config.Default()
	cc := NewColorCache()
	p := NewPainter(cfg, cc)
	s := &recordingSurface{}

	player := vehicle.NewPlayer(cfg)
	car := vehicle.NewTrafficInLane(cfg, &vehicle.ScriptedRandom{Ints: []int{0}}, 0)
	car.Y = 100

	p.Paint(s, engine.Scene{Player: player, Traffic: []*vehicle.Traffic{car}})

	var carBody, playerBody = -1, -1
	for i, f := range s.fills {
		if f.x == car.X && f.y == car.Y && f.w == 60 && f.h == 100 && f.c.Hex() == "#ff4444" {
			carBody = i
		}
		if f.x == player.X && f.y == player.Y+10 && f.c.Hex() == "#cc0000" {
			playerBody = i
		}
	}
	if carBody < 0 || playerBody < 0 {
		t.Fatalf("missing vehicle bodies (car=%d player=%d)", carBody, playerBody)
	}
	if playerBody < carBody {
		t.Error("player must be drawn over traffic")
	}

	// darker side panels right after the body
	panel := s.fills[carBody+1]
	if panel.c.Hex() != "#990000" {
		t.Errorf("expected darker panel, got %s", panel.c.Hex())
	}
}
