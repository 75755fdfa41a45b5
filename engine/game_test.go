package engine

import (
	"math"
	"math/rand/v2"
	"testing"
	"time"

	"github.com/pkg/errors"

	"github.com/lixenwraith/vi-racer/config"
	"github.com/lixenwraith/vi-racer/core"
	"github.com/lixenwraith/vi-racer/events"
	"github.com/lixenwraith/vi-racer/status"
	"github.com/lixenwraith/vi-racer/vehicle"
)

// carInLane builds a traffic car through the public constructor so its canvas bound is set
func carInLane(lane int, y float64) *vehicle.Traffic {
	car := vehicle.NewTrafficInLane(config.Default(), vehicle.FixedRandom{F: 0}, lane)
	car.Y = y
	return car
}

type eventLog struct {
	types []events.EventType
	evs   []events.GameEvent
}

func (l *eventLog) HandleEvent(_ *SessionState, ev events.GameEvent) {
	l.types = append(l.types, ev.Type)
	l.evs = append(l.evs, ev)
}

func (l *eventLog) EventTypes() []events.EventType {
	return []events.EventType{
		events.EventSessionStart, events.EventTrafficSpawned, events.EventTrafficPassed,
		events.EventLevelUp, events.EventGameOver, events.EventMenu,
	}
}

func (l *eventLog) count(t events.EventType) int {
	n := 0
	for _, et := range l.types {
		if et == t {
			n++
		}
	}
	return n
}

func TestTickNoopOutsidePlaying(t *testing.T) {
	h := NewTestHarness(nil)

	if h.Game.Tick() {
		t.Error("tick must not run in MENU")
	}
	if h.Renderer.Frames != 0 || h.Scheduler.Requests != 0 {
		t.Error("MENU tick must not render or schedule")
	}
	if _, ok := h.Game.Stats(); ok {
		t.Error("no stats before a session ends")
	}
}

func TestStartResetsSession(t *testing.T) {
	h := NewTestHarness(nil)
	g := h.Game

	if err := g.Start(); err != nil {
		t.Fatalf("start: %v", err)
	}

	// Dirty the session, then crash into a car
	g.session.Distance = 2500
	g.session.Score = 77
	h.Run(5)
	h.InjectTraffic(carInLane(3, 300))
	player := g.player
	crash := carInLane(1, player.Y-5)
	crash.X = player.X
	h.InjectTraffic(crash)
	h.Scheduler.Pending = true
	h.Run(1)

	if g.Phase() != PhaseGameOver {
		t.Fatalf("expected GAME_OVER, got %s", g.Phase())
	}

	if err := g.Start(); err != nil {
		t.Fatalf("restart: %v", err)
	}

	s := g.Session()
	if s.Score != 0 || s.Distance != 0 || s.Level != 1 || s.GameSpeed != 3 || s.SpawnRate != 0.02 {
		t.Errorf("session not reset: %+v", s)
	}
	if s.CarsAvoided != 0 || s.RoadOffset != 0 {
		t.Errorf("counters not reset: %+v", s)
	}
	if len(g.Scene().Traffic) != 0 {
		t.Errorf("expected empty traffic, got %d", len(g.Scene().Traffic))
	}
	if s.ID != "session-2" {
		t.Errorf("expected fresh session id, got %q", s.ID)
	}
	px, _ := g.Scene().Player.Position()
	if px != 370 {
		t.Errorf("expected fresh player at 370, got %v", px)
	}
	if !h.Scheduler.Pending {
		t.Error("start must schedule the first tick")
	}
}

func TestCollisionEndsTickImmediately(t *testing.T) {
	h := NewTestHarness(nil)
	g := h.Game
	log := &eventLog{}
	g.RegisterEventHandler(log)

	g.Start()
	h.Run(10)
	framesBefore := h.Renderer.Frames
	hudBefore := len(h.HUD.Values)

	// Lands exactly on the player this tick
	crash := carInLane(1, g.player.Y-5)
	crash.X = g.player.X
	h.InjectTraffic(crash)
	// Would be passed this tick if it were still processed
	behind := carInLane(0, 548)
	h.InjectTraffic(behind)

	scoreBefore := g.Session().Score
	if g.Tick() {
		t.Fatal("collision tick must not complete")
	}

	if g.Phase() != PhaseGameOver {
		t.Fatalf("expected GAME_OVER, got %s", g.Phase())
	}
	// 3 * 0.1 floors to zero survival points; the pass bonus of the later car never applies
	if got := g.Session().Score; got != scoreBefore {
		t.Errorf("score changed on collision tick: %d -> %d", scoreBefore, got)
	}
	if behind.Passed || behind.Y != 548 {
		t.Error("vehicles after the collision must not be updated")
	}
	if h.Renderer.Frames != framesBefore || len(h.HUD.Values) != hudBefore {
		t.Error("collision tick must not render or publish HUD")
	}
	if h.Scheduler.Pending || h.Scheduler.Cancels == 0 {
		t.Error("pending frame must be cancelled on game over")
	}

	stats, ok := g.Stats()
	if !ok {
		t.Fatal("expected final stats")
	}
	if stats.Level != 1 || stats.Distance != 3 || stats.SessionID != "session-1" {
		t.Errorf("unexpected stats %+v", stats)
	}

	if log.count(events.EventGameOver) != 1 {
		t.Errorf("expected one game over event, got %v", log.types)
	}
	last := log.evs[len(log.evs)-1].Payload.(*events.GameOverPayload)
	if last.Score != stats.Score || last.Distance != stats.Distance {
		t.Errorf("payload %+v disagrees with stats %+v", last, stats)
	}

	// Further ticks are no-ops
	if g.Tick() {
		t.Error("tick after game over must be a no-op")
	}
}

func TestOffScreenTrafficCulled(t *testing.T) {
	h := NewTestHarness(nil)
	g := h.Game
	g.Start()

	gone := carInLane(0, 601)
	gone.Passed = true
	stay := carInLane(3, 200)
	h.InjectTraffic(gone)
	h.InjectTraffic(stay)

	if !g.Tick() {
		t.Fatal("tick should complete")
	}

	traffic := g.Scene().Traffic
	if len(traffic) != 1 || traffic[0] != stay {
		t.Errorf("expected only the on-screen car to remain, got %d cars", len(traffic))
	}
	if got := g.Status().Counter(status.KeyCulled).Load(); got != 1 {
		t.Errorf("expected 1 culled, got %d", got)
	}
	if h.Renderer.Last.Traffic[0] != stay {
		t.Error("renderer should see the filtered set")
	}
}

func TestPassAwardsBonusOnce(t *testing.T) {
	h := NewTestHarness(nil)
	g := h.Game
	log := &eventLog{}
	g.RegisterEventHandler(log)
	g.Start()

	// bottom edge of the player is 550; speed 2 + game speed 3 per tick
	h.InjectTraffic(carInLane(0, 545))

	g.Tick()
	if g.Session().Score != 0 {
		t.Fatalf("no pass expected at y=550, score=%d", g.Session().Score)
	}
	g.Tick()
	if s := g.Session(); s.Score != 10 || s.CarsAvoided != 1 {
		t.Fatalf("expected bonus after passing, got %+v", s)
	}
	for i := 0; i < 20; i++ {
		g.Tick()
	}
	if s := g.Session(); s.Score != 10 || s.CarsAvoided != 1 {
		t.Errorf("bonus must apply once, got %+v", s)
	}
	if log.count(events.EventTrafficPassed) != 1 {
		t.Errorf("expected one pass event, got %d", log.count(events.EventTrafficPassed))
	}
}

func TestLevelUpDuringTick(t *testing.T) {
	h := NewTestHarness(nil)
	g := h.Game
	log := &eventLog{}
	g.RegisterEventHandler(log)
	g.Start()

	g.session.Distance = 999.8
	g.Tick()

	s := g.Session()
	if s.Level != 2 || s.GameSpeed != 3.5 {
		t.Fatalf("expected level 2 at speed 3.5, got %+v", s)
	}
	if math.Abs(s.SpawnRate-0.025) > 1e-12 {
		t.Errorf("expected spawn rate 0.025, got %v", s.SpawnRate)
	}
	if h.HUD.Last() != (HUD{Score: 0, DisplaySpeed: 95, Level: 2}) {
		t.Errorf("unexpected HUD %+v", h.HUD.Last())
	}
	if log.count(events.EventLevelUp) != 1 {
		t.Error("expected a level-up event")
	}
}

func TestHUDAndRoadOffset(t *testing.T) {
	h := NewTestHarness(nil)
	g := h.Game
	g.Start()

	if h.HUD.Last() != (HUD{Score: 0, DisplaySpeed: 90, Level: 1}) {
		t.Errorf("unexpected initial HUD %+v", h.HUD.Last())
	}

	ran := h.Run(21)
	if ran != 21 {
		t.Fatalf("expected 21 ticks, ran %d", ran)
	}
	// 21 * 3 = 63, wrapped by the 60 unit marker period
	if got := g.Session().RoadOffset; math.Abs(got-3) > 1e-9 {
		t.Errorf("expected road offset 3, got %v", got)
	}
	if h.Renderer.Frames != 21 || len(h.HUD.Values) != 22 {
		t.Errorf("expected one render and HUD per tick, got %d/%d", h.Renderer.Frames, len(h.HUD.Values))
	}
	// Renderer sees the offset before this tick's scroll
	if math.Abs(h.Renderer.Last.RoadOffset-0) > 1e-9 {
		t.Errorf("expected last rendered offset 0, got %v", h.Renderer.Last.RoadOffset)
	}
}

func TestSteeringReachesPlayer(t *testing.T) {
	h := NewTestHarness(nil)
	g := h.Game
	g.Start()

	h.Input.State = vehicle.Steering{Right: true}
	g.Tick()

	if g.player.TargetX != 378 {
		t.Errorf("expected target 378, got %v", g.player.TargetX)
	}
}

func TestInvalidCommands(t *testing.T) {
	h := NewTestHarness(nil)
	g := h.Game

	if err := g.ShowMenu(); !errors.Is(err, ErrInvalidTransition) {
		t.Errorf("menu from MENU: expected ErrInvalidTransition, got %v", err)
	}
	g.Start()
	if err := g.Start(); !errors.Is(err, ErrInvalidTransition) {
		t.Errorf("start while PLAYING: expected ErrInvalidTransition, got %v", err)
	}
	if err := g.ShowMenu(); !errors.Is(err, ErrInvalidTransition) {
		t.Errorf("menu while PLAYING: expected ErrInvalidTransition, got %v", err)
	}
	if g.Phase() != PhasePlaying {
		t.Errorf("rejected commands changed phase to %s", g.Phase())
	}
}

// orderLog records HUD publishes and events on one timeline
type orderLog struct {
	seen []string
}

func (o *orderLog) PublishHUD(HUD) { o.seen = append(o.seen, "hud") }

func (o *orderLog) HandleEvent(_ *SessionState, ev events.GameEvent) {
	o.seen = append(o.seen, ev.Type.String())
}

func (o *orderLog) EventTypes() []events.EventType {
	return []events.EventType{events.EventSessionStart}
}

func TestStartAnnouncesSessionBeforeHUD(t *testing.T) {
	o := &orderLog{}
	g := NewGame(GameOptions{
		Config: config.Default(),
		Random: vehicle.FixedRandom{F: 0.999},
		HUD:    o,
	})
	g.RegisterEventHandler(o)

	if err := g.Start(); err != nil {
		t.Fatal(err)
	}
	if len(o.seen) != 2 || o.seen[0] != "session_start" || o.seen[1] != "hud" {
		t.Errorf("expected session_start then hud, got %v", o.seen)
	}
}

func TestGameOverReportsPlayTime(t *testing.T) {
	clock := core.NewMockTimeProvider(time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC))
	sched := &CountingScheduler{}
	log := &eventLog{}
	g := NewGame(GameOptions{
		Config:    config.Default(),
		Random:    vehicle.FixedRandom{F: 0.999},
		Scheduler: sched,
		Time:      clock,
	})
	g.RegisterEventHandler(log)

	clock.Advance(time.Minute) // time idling in the menu does not count
	g.Start()
	clock.Advance(90 * time.Second)

	crash := carInLane(1, g.player.Y)
	crash.X = g.player.X
	g.traffic = append(g.traffic, crash)
	g.Tick()

	stats, ok := g.Stats()
	if !ok {
		t.Fatal("expected final stats")
	}
	if stats.Duration != 90*time.Second {
		t.Errorf("duration = %s, want 1m30s", stats.Duration)
	}
	over := log.evs[len(log.evs)-1].Payload.(*events.GameOverPayload)
	if over.Duration != stats.Duration {
		t.Errorf("payload duration %s disagrees with stats %s", over.Duration, stats.Duration)
	}
}

func TestPushRejectsMismatchedPayload(t *testing.T) {
	h := NewTestHarness(nil)
	g := h.Game
	log := &eventLog{}
	g.RegisterEventHandler(log)

	g.push(events.EventLevelUp, &events.GameOverPayload{})
	g.push(events.EventMenu, nil)
	g.dispatch()

	if len(log.types) != 1 || log.types[0] != events.EventMenu {
		t.Errorf("only the well-formed event should be delivered, got %v", log.types)
	}
	if got := g.Status().Counter(status.KeyEventsDropped).Load(); got != 1 {
		t.Errorf("events dropped = %d, want 1", got)
	}
}

func TestMenuAfterGameOver(t *testing.T) {
	h := NewTestHarness(nil)
	g := h.Game
	log := &eventLog{}
	g.RegisterEventHandler(log)
	g.Start()

	crash := carInLane(1, g.player.Y)
	crash.X = g.player.X
	h.InjectTraffic(crash)
	g.Tick()

	if err := g.ShowMenu(); err != nil {
		t.Fatalf("menu after game over: %v", err)
	}
	if g.Phase() != PhaseMenu {
		t.Errorf("expected MENU, got %s", g.Phase())
	}
	if log.count(events.EventMenu) != 1 {
		t.Error("expected a menu event")
	}
	if g.Status().Label(status.KeyPhase).Load() != "MENU" {
		t.Error("phase metric not updated")
	}
}

// TestSeededSessionInvariants drives full sessions with random steering and checks the
// per-tick invariants hold until the session ends
func TestSeededSessionInvariants(t *testing.T) {
	cfg := config.Default()

	for seed := uint64(1); seed <= 5; seed++ {
		h := NewTestHarness(rand.New(rand.NewPCG(seed, 99)))
		g := h.Game
		steer := rand.New(rand.NewPCG(seed, 7))
		g.Start()

		minX, maxX := cfg.RoadLeft(), cfg.RoadRight()-cfg.Player.Width
		prev := g.Session()
		for i := 0; i < 20000 && g.Phase() == PhasePlaying; i++ {
			h.Input.State = vehicle.Steering{Left: steer.IntN(3) == 0, Right: steer.IntN(3) == 0}
			h.Scheduler.Pending = false
			g.Tick()

			s := g.Session()
			if g.player.X < minX || g.player.X > maxX {
				t.Fatalf("seed %d tick %d: player x %v off road", seed, i, g.player.X)
			}
			if s.SpawnRate > cfg.Difficulty.MaxSpawnRate {
				t.Fatalf("seed %d tick %d: spawn rate %v above cap", seed, i, s.SpawnRate)
			}
			if s.Score < prev.Score || s.Level < prev.Level || s.GameSpeed < prev.GameSpeed || s.Distance <= prev.Distance {
				t.Fatalf("seed %d tick %d: session regressed %+v -> %+v", seed, i, prev, s)
			}
			if s.RoadOffset < 0 || s.RoadOffset >= 60 {
				t.Fatalf("seed %d tick %d: road offset %v not wrapped", seed, i, s.RoadOffset)
			}
			for _, car := range g.Scene().Traffic {
				if car.IsOffScreen() && g.Phase() == PhasePlaying {
					t.Fatalf("seed %d tick %d: off-screen car survived cleanup", seed, i)
				}
			}
			if g.Phase() == PhasePlaying && !h.Scheduler.Pending {
				t.Fatalf("seed %d tick %d: next frame not requested", seed, i)
			}
			prev = s
		}

		spawned := g.Status().Counter(status.KeySpawned).Load()
		if spawned == 0 {
			t.Errorf("seed %d: no traffic spawned", seed)
		}
	}
}
