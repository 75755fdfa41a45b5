package events

import "reflect"

var (
	typeToName    = make(map[EventType]string)
	typeToPayload = make(map[EventType]reflect.Type)
)

func init() {
	registerType("session_start", EventSessionStart, &SessionStartPayload{})
	registerType("traffic_spawned", EventTrafficSpawned, &TrafficSpawnedPayload{})
	registerType("traffic_passed", EventTrafficPassed, &TrafficPassedPayload{})
	registerType("level_up", EventLevelUp, &LevelUpPayload{})
	registerType("game_over", EventGameOver, &GameOverPayload{})
	registerType("menu", EventMenu, nil)
}

// registerType names an EventType and records its payload struct type
// payloadInstance should be a pointer to the payload struct
// Pass nil if the event has no payload
func registerType(name string, et EventType, payloadInstance any) {
	typeToName[et] = name
	if payloadInstance != nil {
		t := reflect.TypeOf(payloadInstance)
		if t.Kind() == reflect.Ptr {
			t = t.Elem()
		}
		typeToPayload[et] = t
	}
}

// String returns the registered event name
func (t EventType) String() string {
	if name, ok := typeToName[t]; ok {
		return name
	}
	return "unknown"
}

// PayloadMatches reports whether payload has the struct type registered for et.
// Events registered without a payload match only nil.
func PayloadMatches(et EventType, payload any) bool {
	want, ok := typeToPayload[et]
	if !ok {
		return payload == nil
	}
	if payload == nil {
		return false
	}
	t := reflect.TypeOf(payload)
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	return t == want
}
