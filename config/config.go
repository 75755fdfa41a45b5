// Package config holds the static tunables of a racing session.
// A Config is read-only once validated; the simulation never mutates it.
package config

import (
	"github.com/lixenwraith/vi-racer/constants"
)

// Config is the full set of road, vehicle and difficulty parameters
type Config struct {
	Canvas     CanvasConfig     `toml:"canvas"`
	Road       RoadConfig       `toml:"road"`
	Player     PlayerConfig     `toml:"player"`
	Traffic    TrafficConfig    `toml:"traffic"`
	Difficulty DifficultyConfig `toml:"difficulty"`
	Session    SessionConfig    `toml:"session"`

	// Palette lists traffic body colours as #rrggbb
	Palette []string `toml:"palette"`

	// Keys rebinds actions to key names, e.g. steer_left = ["h", "left"].
	// Names are resolved by the input package at startup.
	Keys map[string][]string `toml:"keys"`
}

// CanvasConfig is the logical drawing surface
type CanvasConfig struct {
	Width  float64 `toml:"width"`
	Height float64 `toml:"height"`
}

// RoadConfig is the road band centred on the canvas
type RoadConfig struct {
	Width     float64 `toml:"width"`
	LaneWidth float64 `toml:"lane_width"`
	Lanes     int     `toml:"lanes"`
}

// PlayerConfig sizes and tunes the player vehicle
type PlayerConfig struct {
	Width        float64 `toml:"width"`
	Height       float64 `toml:"height"`
	BottomMargin float64 `toml:"bottom_margin"`
	SteerStep    float64 `toml:"steer_step"`
	Smoothing    float64 `toml:"smoothing"`
}

// TrafficConfig sizes traffic vehicles and controls spawning
type TrafficConfig struct {
	Width          float64 `toml:"width"`
	Height         float64 `toml:"height"`
	MinSpeed       float64 `toml:"min_speed"`
	MaxSpeed       float64 `toml:"max_speed"`
	SpawnRate      float64 `toml:"spawn_rate"`
	SpawnClearance float64 `toml:"spawn_clearance"`
	PassBonus      int     `toml:"pass_bonus"`
}

// DifficultyConfig is the distance-driven escalation curve
type DifficultyConfig struct {
	SpeedIncrease  float64 `toml:"speed_increase"`
	SpawnIncrease  float64 `toml:"spawn_increase"`
	LevelThreshold float64 `toml:"level_threshold"`
	MaxSpawnRate   float64 `toml:"max_spawn_rate"`
}

// SessionConfig holds per-session starting values and loop pacing
type SessionConfig struct {
	InitialSpeed    float64 `toml:"initial_speed"`
	DistanceFactor  float64 `toml:"distance_factor"`
	FramesPerSecond int     `toml:"frames_per_second"`
}

// Default returns the stock game tuning
func Default() *Config {
	palette := make([]string, len(constants.TrafficPalette))
	copy(palette, constants.TrafficPalette)

	return &Config{
		Canvas: CanvasConfig{
			Width:  constants.CanvasWidth,
			Height: constants.CanvasHeight,
		},
		Road: RoadConfig{
			Width:     constants.RoadWidth,
			LaneWidth: constants.LaneWidth,
			Lanes:     constants.LaneCount,
		},
		Player: PlayerConfig{
			Width:        constants.PlayerWidth,
			Height:       constants.PlayerHeight,
			BottomMargin: constants.PlayerBottomMargin,
			SteerStep:    constants.PlayerSteerStep,
			Smoothing:    constants.PlayerSmoothing,
		},
		Traffic: TrafficConfig{
			Width:          constants.TrafficWidth,
			Height:         constants.TrafficHeight,
			MinSpeed:       constants.TrafficMinSpeed,
			MaxSpeed:       constants.TrafficMaxSpeed,
			SpawnRate:      constants.TrafficSpawnRate,
			SpawnClearance: constants.TrafficSpawnClearance,
			PassBonus:      constants.TrafficPassBonus,
		},
		Difficulty: DifficultyConfig{
			SpeedIncrease:  constants.DifficultySpeedIncrease,
			SpawnIncrease:  constants.DifficultySpawnIncrease,
			LevelThreshold: constants.DifficultyLevelDistance,
			MaxSpawnRate:   constants.DifficultyMaxSpawnRate,
		},
		Session: SessionConfig{
			InitialSpeed:    constants.InitialGameSpeed,
			DistanceFactor:  constants.DistanceFactor,
			FramesPerSecond: 60,
		},
		Palette: palette,
	}
}

// RoadLeft returns the x of the road's left edge
func (c *Config) RoadLeft() float64 {
	return (c.Canvas.Width - c.Road.Width) / 2
}

// RoadRight returns the x of the road's right edge
func (c *Config) RoadRight() float64 {
	return c.RoadLeft() + c.Road.Width
}

// LaneLeft returns the x of the left edge of lane i (0-indexed)
func (c *Config) LaneLeft(i int) float64 {
	return c.RoadLeft() + float64(i)*c.Road.LaneWidth
}

// LaneCenter returns the x of the centre line of lane i
func (c *Config) LaneCenter(i int) float64 {
	return c.LaneLeft(i) + c.Road.LaneWidth/2
}

// PlayerStart returns the player's spawn position: horizontally centred, near the bottom
func (c *Config) PlayerStart() (x, y float64) {
	x = c.Canvas.Width/2 - c.Player.Width/2
	y = c.Canvas.Height - c.Player.Height - c.Player.BottomMargin
	return x, y
}
