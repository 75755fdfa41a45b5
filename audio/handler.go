package audio

import (
	"github.com/lixenwraith/vi-racer/engine"
	"github.com/lixenwraith/vi-racer/events"
)

// EventTypes implements events.Handler
func (sm *SoundManager) EventTypes() []events.EventType {
	return []events.EventType{
		events.EventSessionStart,
		events.EventTrafficPassed,
		events.EventLevelUp,
		events.EventGameOver,
		events.EventMenu,
	}
}

// HandleEvent maps session events to sounds and the engine hum
func (sm *SoundManager) HandleEvent(_ *engine.SessionState, ev events.GameEvent) {
	switch ev.Type {
	case events.EventSessionStart:
		if p, ok := ev.Payload.(*events.SessionStartPayload); ok {
			sm.SetEngineSpeed(p.GameSpeed)
		}
		sm.StartEngine()
		sm.Play(SoundStart)

	case events.EventTrafficPassed:
		sm.Play(SoundPass)

	case events.EventLevelUp:
		if p, ok := ev.Payload.(*events.LevelUpPayload); ok {
			sm.SetEngineSpeed(p.GameSpeed)
		}
		sm.Play(SoundLevelUp)

	case events.EventGameOver:
		sm.StopEngine()
		sm.Play(SoundCrash)

	case events.EventMenu:
		sm.StopEngine()
	}
}
