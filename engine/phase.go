package engine

import (
	"sync"
	"time"

	"github.com/pkg/errors"
)

// GamePhase is the top-level game state
type GamePhase int

const (
	// PhaseMenu is the initial state; the loop does not run
	PhaseMenu GamePhase = iota
	// PhasePlaying runs the simulation loop
	PhasePlaying
	// PhaseGameOver holds the final stats until restart or menu
	PhaseGameOver
)

// ErrInvalidTransition is returned for phase changes outside the allowed graph
var ErrInvalidTransition = errors.New("invalid phase transition")

// String returns the phase name
func (p GamePhase) String() string {
	switch p {
	case PhaseMenu:
		return "MENU"
	case PhasePlaying:
		return "PLAYING"
	case PhaseGameOver:
		return "GAME_OVER"
	default:
		return "UNKNOWN"
	}
}

var validTransitions = map[GamePhase][]GamePhase{
	PhaseMenu:     {PhasePlaying},
	PhasePlaying:  {PhaseGameOver},
	PhaseGameOver: {PhaseMenu, PhasePlaying},
}

// CanTransition checks if a phase transition is valid
func CanTransition(from, to GamePhase) bool {
	for _, phase := range validTransitions[from] {
		if phase == to {
			return true
		}
	}
	return false
}

// PhaseMachine tracks the current phase and when it was entered
type PhaseMachine struct {
	mu        sync.RWMutex
	current   GamePhase
	startTime time.Time
}

// NewPhaseMachine creates a machine in PhaseMenu
func NewPhaseMachine(now time.Time) *PhaseMachine {
	return &PhaseMachine{current: PhaseMenu, startTime: now}
}

// Phase returns the current phase
func (m *PhaseMachine) Phase() GamePhase {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.current
}

// Transition moves to the given phase with validation
func (m *PhaseMachine) Transition(to GamePhase, now time.Time) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !CanTransition(m.current, to) {
		return errors.Wrapf(ErrInvalidTransition, "%s -> %s", m.current, to)
	}

	m.current = to
	m.startTime = now
	return nil
}

// PhaseSnapshot provides a consistent view of phase state
type PhaseSnapshot struct {
	Phase     GamePhase
	StartTime time.Time
	Duration  time.Duration
}

// ReadPhaseState returns a consistent snapshot of the current phase state
func (m *PhaseMachine) ReadPhaseState(now time.Time) PhaseSnapshot {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return PhaseSnapshot{
		Phase:     m.current,
		StartTime: m.startTime,
		Duration:  now.Sub(m.startTime),
	}
}
