package events

import (
	"time"
)

// EventType represents the type of game event
type EventType int

const (
	// EventSessionStart signals a fresh PLAYING session
	// Trigger: Start or restart command | Payload: *SessionStartPayload
	EventSessionStart EventType = iota

	// EventTrafficSpawned signals a car entering the road
	// Trigger: Spawner placement | Payload: *TrafficSpawnedPayload
	EventTrafficSpawned

	// EventTrafficPassed signals the player getting past a car
	// Trigger: car's top edge drops below the player's bottom edge | Payload: *TrafficPassedPayload
	EventTrafficPassed

	// EventLevelUp signals a difficulty escalation
	// Trigger: distance crosses a level threshold | Payload: *LevelUpPayload
	EventLevelUp

	// EventGameOver signals the end of a session
	// Trigger: first collision of the tick | Payload: *GameOverPayload
	EventGameOver

	// EventMenu signals a return to the main menu
	// Trigger: menu command | Payload: nil
	EventMenu
)

// GameEvent represents a single game event with metadata
type GameEvent struct {
	Type      EventType
	Payload   any
	Frame     int64 // Tick the event was raised on
	Timestamp time.Time
}
