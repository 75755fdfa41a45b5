package vehicle

import (
	"github.com/lixenwraith/vi-racer/config"
	"github.com/lixenwraith/vi-racer/physics"
)

// Traffic is an ambient car dropping down the road toward the player
type Traffic struct {
	X, Y          float64
	Width, Height float64
	Speed         float64

	// Color is the body colour drawn from the palette (#rrggbb)
	Color string

	// Passed flips once, when the car's top edge drops below the player's bottom edge
	Passed bool

	canvasHeight float64
}

// NewTrafficInLane creates a car centred in the given lane, fully above the visible area.
// Speed and colour are drawn from rng in that order.
func NewTrafficInLane(cfg *config.Config, rng Random, lane int) *Traffic {
	t := cfg.Traffic
	speed := t.MinSpeed + rng.Float64()*(t.MaxSpeed-t.MinSpeed)
	color := cfg.Palette[rng.IntN(len(cfg.Palette))]

	return &Traffic{
		X:            cfg.LaneLeft(lane) + (cfg.Road.LaneWidth-t.Width)/2,
		Y:            -t.Height,
		Width:        t.Width,
		Height:       t.Height,
		Speed:        speed,
		Color:        color,
		canvasHeight: cfg.Canvas.Height,
	}
}

// Update advances the car by its own speed plus the global game speed.
// Returns true on the single tick the car is first seen past the player.
func (t *Traffic) Update(gameSpeed float64, player physics.Bounds) bool {
	t.Y += t.Speed + gameSpeed

	if !t.Passed && t.Y > player.Bottom() {
		t.Passed = true
		return true
	}
	return false
}

// IsOffScreen reports whether the car has left the bottom of the canvas
func (t *Traffic) IsOffScreen() bool {
	return t.Y > t.canvasHeight
}

// Position returns the top-left corner
func (t *Traffic) Position() (x, y float64) {
	return t.X, t.Y
}

// Bounds returns a copy of the collision box
func (t *Traffic) Bounds() physics.Bounds {
	return physics.Bounds{X: t.X, Y: t.Y, Width: t.Width, Height: t.Height}
}
