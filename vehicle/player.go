package vehicle

import (
	"github.com/lixenwraith/vi-racer/config"
	"github.com/lixenwraith/vi-racer/physics"
)

// Player is the user-controlled car. It only moves laterally: input nudges
// TargetX and X eases toward it.
type Player struct {
	X, Y          float64
	Width, Height float64
	TargetX       float64

	steerStep float64
	smoothing float64
	minX      float64
	maxX      float64
}

// NewPlayer places a player at the configured start position
func NewPlayer(cfg *config.Config) *Player {
	x, y := cfg.PlayerStart()
	return &Player{
		X:         x,
		Y:         y,
		Width:     cfg.Player.Width,
		Height:    cfg.Player.Height,
		TargetX:   x,
		steerStep: cfg.Player.SteerStep,
		smoothing: cfg.Player.Smoothing,
		minX:      cfg.RoadLeft(),
		maxX:      cfg.RoadRight() - cfg.Player.Width,
	}
}

// Update applies one tick of steering.
// Left and right deltas are applied independently, so both held cancel out.
func (p *Player) Update(in Steering) {
	if in.Left {
		p.TargetX -= p.steerStep
	}
	if in.Right {
		p.TargetX += p.steerStep
	}

	if p.TargetX < p.minX {
		p.TargetX = p.minX
	} else if p.TargetX > p.maxX {
		p.TargetX = p.maxX
	}

	// X stays a convex combination of two in-range values, so it never leaves the road
	p.X += (p.TargetX - p.X) * p.smoothing
}

// Position returns the top-left corner
func (p *Player) Position() (x, y float64) {
	return p.X, p.Y
}

// Bounds returns a copy of the collision box
func (p *Player) Bounds() physics.Bounds {
	return physics.Bounds{X: p.X, Y: p.Y, Width: p.Width, Height: p.Height}
}
