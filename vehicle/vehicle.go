// Package vehicle models the player's car and the traffic it weaves through.
package vehicle

import "github.com/lixenwraith/vi-racer/physics"

// Positioned exposes a vehicle's top-left corner
type Positioned interface {
	Position() (x, y float64)
}

// Boundable exposes a snapshot of a vehicle's collision box
type Boundable interface {
	Bounds() physics.Bounds
}

// Vehicle is the capability set shared by player and traffic cars
type Vehicle interface {
	Positioned
	Boundable
}

// Random is the draw source used to place and tune traffic.
// *rand.Rand from math/rand/v2 satisfies it; tests may script draws.
type Random interface {
	Float64() float64
	IntN(n int) int
}

// Steering is the pair of lateral intents read from the input provider
type Steering struct {
	Left  bool
	Right bool
}

var (
	_ Vehicle = (*Player)(nil)
	_ Vehicle = (*Traffic)(nil)
)
