// Package input turns terminal key events into steering state and game commands.
package input

// IntentType discriminates semantic actions
type IntentType uint8

const (
	IntentNone IntentType = iota

	// Held intents, read every tick through Steering
	IntentSteerLeft
	IntentSteerRight

	// Commands, acted on once per key press
	IntentStart      // Enter, Space
	IntentMenu       // Esc
	IntentQuit       // q, Ctrl+C
	IntentToggleMute // m
	IntentResize     // Terminal resize event
)

// String returns the intent name used in logs
func (t IntentType) String() string {
	switch t {
	case IntentSteerLeft:
		return "steer_left"
	case IntentSteerRight:
		return "steer_right"
	case IntentStart:
		return "start"
	case IntentMenu:
		return "menu"
	case IntentQuit:
		return "quit"
	case IntentToggleMute:
		return "toggle_mute"
	case IntentResize:
		return "resize"
	default:
		return "none"
	}
}

// Intent represents a parsed semantic action
type Intent struct {
	Type IntentType

	// Width and Height are set for IntentResize
	Width, Height int
}

// IsCommand reports whether the intent is a one-shot command rather than a steering hold
func (i Intent) IsCommand() bool {
	return i.Type >= IntentStart
}
