package engine

import (
	"fmt"

	"github.com/lixenwraith/vi-racer/config"
	"github.com/lixenwraith/vi-racer/vehicle"
)

// ScriptedInput returns a fixed steering state, settable between ticks
type ScriptedInput struct {
	State vehicle.Steering
}

// Steering returns State
func (s *ScriptedInput) Steering() vehicle.Steering {
	return s.State
}

// RecordingRenderer counts scene renders and keeps the last one
type RecordingRenderer struct {
	Frames int
	Last   Scene
}

// RenderScene records s
func (r *RecordingRenderer) RenderScene(s Scene) {
	r.Frames++
	r.Last = s
}

// RecordingHUD keeps every published HUD value
type RecordingHUD struct {
	Values []HUD
}

// PublishHUD records h
func (r *RecordingHUD) PublishHUD(h HUD) {
	r.Values = append(r.Values, h)
}

// Last returns the most recent HUD value
func (r *RecordingHUD) Last() HUD {
	if len(r.Values) == 0 {
		return HUD{}
	}
	return r.Values[len(r.Values)-1]
}

// CountingScheduler records frame requests without pacing anything
type CountingScheduler struct {
	Requests int
	Cancels  int
	Pending  bool
}

// RequestFrame marks a frame pending
func (c *CountingScheduler) RequestFrame() {
	c.Requests++
	c.Pending = true
}

// CancelFrame clears the pending frame
func (c *CountingScheduler) CancelFrame() {
	c.Cancels++
	c.Pending = false
}

// TestHarness bundles a Game with recording collaborators
type TestHarness struct {
	Game      *Game
	Input     *ScriptedInput
	Renderer  *RecordingRenderer
	HUD       *RecordingHUD
	Scheduler *CountingScheduler
}

// NewTestHarness creates a game on the default config with recording collaborators.
// rng drives spawning; nil suppresses traffic entirely.
func NewTestHarness(rng vehicle.Random) *TestHarness {
	if rng == nil {
		rng = vehicle.FixedRandom{F: 0.999}
	}
	h := &TestHarness{
		Input:     &ScriptedInput{},
		Renderer:  &RecordingRenderer{},
		HUD:       &RecordingHUD{},
		Scheduler: &CountingScheduler{},
	}
	ids := 0
	h.Game = NewGame(GameOptions{
		Config:    config.Default(),
		Random:    rng,
		Input:     h.Input,
		Renderer:  h.Renderer,
		HUD:       h.HUD,
		Scheduler: h.Scheduler,
		SessionID: func() string {
			ids++
			return fmt.Sprintf("session-%d", ids)
		},
	})
	return h
}

// Run ticks n times while a frame is pending, returning the ticks that ran
func (h *TestHarness) Run(n int) int {
	ran := 0
	for i := 0; i < n && h.Scheduler.Pending; i++ {
		h.Scheduler.Pending = false
		if h.Game.Tick() {
			ran++
		}
	}
	return ran
}

// InjectTraffic appends a car directly to the active set
func (h *TestHarness) InjectTraffic(t *vehicle.Traffic) {
	h.Game.traffic = append(h.Game.traffic, t)
}
