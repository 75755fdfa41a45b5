package input

import (
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/vi-racer/core"
	"github.com/lixenwraith/vi-racer/vehicle"
)

// Tracker derives held-key steering from terminal key presses.
// Terminals only report presses (repeated while a key is held), so a
// direction counts as held while its last press is inside the hold window.
// Pressing one direction releases the other. A Tracker is not safe for concurrent use.
type Tracker struct {
	keys       *KeyTable
	time       core.TimeProvider
	holdWindow time.Duration

	lastLeft  time.Time
	lastRight time.Time
}

// NewTracker creates a tracker using the given bindings and hold window
func NewTracker(keys *KeyTable, tp core.TimeProvider, holdWindow time.Duration) *Tracker {
	return &Tracker{
		keys:       keys,
		time:       tp,
		holdWindow: holdWindow,
	}
}

// Process records an event and returns its intent.
// Steering presses are recorded and also returned so callers may ignore them.
func (t *Tracker) Process(ev tcell.Event) Intent {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		it := t.keys.Lookup(ev)
		now := t.time.Now()
		switch it {
		case IntentSteerLeft:
			t.lastLeft = now
			t.lastRight = time.Time{}
		case IntentSteerRight:
			t.lastRight = now
			t.lastLeft = time.Time{}
		}
		return Intent{Type: it}

	case *tcell.EventResize:
		w, h := ev.Size()
		return Intent{Type: IntentResize, Width: w, Height: h}
	}
	return Intent{}
}

// Steering reports which directions are currently held
func (t *Tracker) Steering() vehicle.Steering {
	now := t.time.Now()
	return vehicle.Steering{
		Left:  t.held(t.lastLeft, now),
		Right: t.held(t.lastRight, now),
	}
}

// Release drops all held directions
func (t *Tracker) Release() {
	t.lastLeft = time.Time{}
	t.lastRight = time.Time{}
}

func (t *Tracker) held(last, now time.Time) bool {
	return !last.IsZero() && now.Sub(last) < t.holdWindow
}
