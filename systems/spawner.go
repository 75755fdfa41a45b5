package systems

import (
	"math"

	"github.com/lixenwraith/vi-racer/config"
	"github.com/lixenwraith/vi-racer/vehicle"
)

// SpawnOutcome reports what a spawn attempt did this tick
type SpawnOutcome int

const (
	// SpawnSkipped means the spawn roll missed
	SpawnSkipped SpawnOutcome = iota
	// SpawnPlaced means a new car was created
	SpawnPlaced
	// SpawnBlocked means the roll hit but the chosen lane was occupied near the top
	SpawnBlocked
)

// String returns the outcome name for logs
func (o SpawnOutcome) String() string {
	switch o {
	case SpawnSkipped:
		return "skipped"
	case SpawnPlaced:
		return "placed"
	case SpawnBlocked:
		return "blocked"
	default:
		return "unknown"
	}
}

// Spawner decides once per tick whether a traffic car enters the road
type Spawner struct {
	cfg *config.Config
	rng vehicle.Random
}

// NewSpawner creates a spawner drawing from rng
func NewSpawner(cfg *config.Config, rng vehicle.Random) *Spawner {
	return &Spawner{cfg: cfg, rng: rng}
}

// MaybeSpawn rolls against spawnRate and, on a hit, tries one random lane.
// A blocked lane is not retried within the same tick.
func (s *Spawner) MaybeSpawn(active []*vehicle.Traffic, spawnRate float64) (*vehicle.Traffic, SpawnOutcome) {
	if s.rng.Float64() >= spawnRate {
		return nil, SpawnSkipped
	}

	lane := s.rng.IntN(s.cfg.Road.Lanes)
	if !s.LaneClear(active, lane) {
		return nil, SpawnBlocked
	}

	return vehicle.NewTrafficInLane(s.cfg, s.rng, lane), SpawnPlaced
}

// LaneClear reports whether no active car sits in the lane inside the clearance window at the top
func (s *Spawner) LaneClear(active []*vehicle.Traffic, lane int) bool {
	center := s.cfg.LaneCenter(lane)
	halfLane := s.cfg.Road.LaneWidth / 2

	for _, car := range active {
		if car.Y >= s.cfg.Traffic.SpawnClearance {
			continue
		}
		if math.Abs(car.Bounds().CenterX()-center) < halfLane {
			return false
		}
	}
	return true
}
