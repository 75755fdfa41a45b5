package input

import "sort"

// actionRegistry maps canonical action names to intents
// Used by the key config loader to resolve bindings from the config file
var actionRegistry = map[string]IntentType{
	// Unbind sentinel
	"none": IntentNone,

	"steer_left":  IntentSteerLeft,
	"steer_right": IntentSteerRight,
	"start":       IntentStart,
	"menu":        IntentMenu,
	"quit":        IntentQuit,
	"toggle_mute": IntentToggleMute,
}

// ActionNames returns every bindable action name, sorted
func ActionNames() []string {
	names := make([]string, 0, len(actionRegistry))
	for name := range actionRegistry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
