package systems

import (
	"math"

	"github.com/lixenwraith/vi-racer/config"
)

// Tuning is the part of session state the difficulty curve escalates
type Tuning struct {
	Level     int
	GameSpeed float64
	SpawnRate float64
}

// Difficulty maps travelled distance to a level and escalates speed and spawn rate on level-up
type Difficulty struct {
	speedIncrease  float64
	spawnIncrease  float64
	levelThreshold float64
	maxSpawnRate   float64
}

// NewDifficulty creates a controller from the configured curve
func NewDifficulty(cfg config.DifficultyConfig) Difficulty {
	return Difficulty{
		speedIncrease:  cfg.SpeedIncrease,
		spawnIncrease:  cfg.SpawnIncrease,
		levelThreshold: cfg.LevelThreshold,
		maxSpawnRate:   cfg.MaxSpawnRate,
	}
}

// LevelFor returns the level a distance corresponds to, starting at 1
func (d Difficulty) LevelFor(distance float64) int {
	return int(math.Floor(distance/d.levelThreshold)) + 1
}

// Apply returns the tuning after travelling to distance, and whether a level-up happened.
// Crossing several thresholds in one call jumps straight to the reached level but
// applies a single speed and spawn increment.
func (d Difficulty) Apply(distance float64, cur Tuning) (Tuning, bool) {
	candidate := d.LevelFor(distance)
	if candidate <= cur.Level {
		return cur, false
	}

	return Tuning{
		Level:     candidate,
		GameSpeed: cur.GameSpeed + d.speedIncrease,
		SpawnRate: math.Min(cur.SpawnRate+d.spawnIncrease, d.maxSpawnRate),
	}, true
}
