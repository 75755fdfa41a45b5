package events

import "time"

// SessionStartPayload identifies the new session
type SessionStartPayload struct {
	SessionID string
	GameSpeed float64
	SpawnRate float64
}

// TrafficSpawnedPayload describes a freshly placed car
type TrafficSpawnedPayload struct {
	X, Speed float64
	Color    string
}

// TrafficPassedPayload carries the score after the pass bonus
type TrafficPassedPayload struct {
	Score       int
	CarsAvoided int
}

// LevelUpPayload carries the escalated tuning
type LevelUpPayload struct {
	Level     int
	GameSpeed float64
	SpawnRate float64
}

// GameOverPayload is the final session summary
type GameOverPayload struct {
	SessionID   string
	Score       int
	Distance    int
	Level       int
	CarsAvoided int
	Duration    time.Duration
}
