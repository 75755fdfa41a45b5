package engine

import (
	"math"
	"time"

	"github.com/lixenwraith/vi-racer/config"
	"github.com/lixenwraith/vi-racer/systems"
)

// SessionState is the mutable state of one PLAYING session.
// It is owned by the Game and only mutated inside a tick; handlers receive it read-only.
type SessionState struct {
	ID          string
	Score       int
	Distance    float64
	Level       int
	GameSpeed   float64
	SpawnRate   float64
	RoadOffset  float64
	CarsAvoided int
}

// Reset restores the starting values for a new session
func (s *SessionState) Reset(cfg *config.Config, id string) {
	*s = SessionState{
		ID:        id,
		Level:     1,
		GameSpeed: cfg.Session.InitialSpeed,
		SpawnRate: cfg.Traffic.SpawnRate,
	}
}

// Tuning returns the fields the difficulty curve escalates
func (s *SessionState) Tuning() systems.Tuning {
	return systems.Tuning{Level: s.Level, GameSpeed: s.GameSpeed, SpawnRate: s.SpawnRate}
}

// ApplyTuning stores an escalated tuning
func (s *SessionState) ApplyTuning(t systems.Tuning) {
	s.Level = t.Level
	s.GameSpeed = t.GameSpeed
	s.SpawnRate = t.SpawnRate
}

// DisplaySpeed is the speedometer value shown to the player
func (s *SessionState) DisplaySpeed(base, scale float64) int {
	return int(math.Floor(base + s.GameSpeed*scale))
}

// FinalStats is the summary reported when a session ends
type FinalStats struct {
	SessionID   string `json:"session_id" msgpack:"session_id"`
	Score       int    `json:"score" msgpack:"score"`
	Distance    int    `json:"distance" msgpack:"distance"`
	Level       int    `json:"level" msgpack:"level"`
	CarsAvoided int    `json:"cars_avoided" msgpack:"cars_avoided"`

	// Duration is the time spent in PLAYING, filled in by the game on GAME_OVER
	Duration time.Duration `json:"duration" msgpack:"duration"`
}

// Stats summarises the session with distance floored
func (s *SessionState) Stats() FinalStats {
	return FinalStats{
		SessionID:   s.ID,
		Score:       s.Score,
		Distance:    int(math.Floor(s.Distance)),
		Level:       s.Level,
		CarsAvoided: s.CarsAvoided,
	}
}
