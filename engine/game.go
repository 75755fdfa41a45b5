package engine

import (
	"log"
	"math"
	"math/rand/v2"
	"sync/atomic"

	"github.com/google/uuid"

	"github.com/lixenwraith/vi-racer/config"
	"github.com/lixenwraith/vi-racer/constants"
	"github.com/lixenwraith/vi-racer/core"
	"github.com/lixenwraith/vi-racer/events"
	"github.com/lixenwraith/vi-racer/physics"
	"github.com/lixenwraith/vi-racer/status"
	"github.com/lixenwraith/vi-racer/systems"
	"github.com/lixenwraith/vi-racer/vehicle"
)

// InputSource supplies the current steering intents
type InputSource interface {
	Steering() vehicle.Steering
}

// Scene is the read-only view handed to the renderer each tick
type Scene struct {
	Player     *vehicle.Player
	Traffic    []*vehicle.Traffic
	RoadOffset float64
}

// Renderer draws a full scene; the surface is cleared and redrawn every call
type Renderer interface {
	RenderScene(s Scene)
}

// GameOptions wires a Game to its collaborators. Nil collaborators get inert defaults.
type GameOptions struct {
	Config    *config.Config
	Random    vehicle.Random
	Input     InputSource
	Renderer  Renderer
	HUD       HUDSink
	Scheduler Scheduler
	Time      core.TimeProvider
	Status    *status.Registry

	// SessionID generates session identifiers; defaults to random UUIDs
	SessionID func() string
}

// Game is the simulation loop and the owner of all session state.
// Every method must be called from the same goroutine.
type Game struct {
	cfg        *config.Config
	spawner    *systems.Spawner
	difficulty systems.Difficulty

	input    InputSource
	renderer Renderer
	hud      HUDSink
	sched    Scheduler
	time     core.TimeProvider

	phase   *PhaseMachine
	session SessionState
	player  *vehicle.Player
	traffic []*vehicle.Traffic
	frame   int64
	last    FinalStats

	newSessionID func() string

	queue    *events.EventQueue
	router   *events.Router[*SessionState]
	rejected int64

	// Cached metric pointers
	statusReg     *status.Registry
	statTicks     *atomic.Int64
	statSessions  *atomic.Int64
	statSpawned   *atomic.Int64
	statBlocked   *atomic.Int64
	statPassed    *atomic.Int64
	statCulled    *atomic.Int64
	statActive    *atomic.Int64
	statScore     *atomic.Int64
	statLevel     *atomic.Int64
	statDropped   *atomic.Int64
	statSpeed     *status.Gauge
	statRate      *status.Gauge
	statDistance  *status.Gauge
	statSessionID *status.Label
	statPhase     *status.Label
}

// NewGame creates a game in PhaseMenu
func NewGame(opts GameOptions) *Game {
	if opts.Random == nil {
		opts.Random = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	if opts.Input == nil {
		opts.Input = idleInput{}
	}
	if opts.Renderer == nil {
		opts.Renderer = discardRenderer{}
	}
	if opts.HUD == nil {
		opts.HUD = discardHUD{}
	}
	if opts.Scheduler == nil {
		opts.Scheduler = noopScheduler{}
	}
	if opts.Time == nil {
		opts.Time = core.NewMonotonicTimeProvider()
	}
	if opts.Status == nil {
		opts.Status = status.NewRegistry()
	}
	if opts.SessionID == nil {
		opts.SessionID = uuid.NewString
	}

	reg := opts.Status
	queue := events.NewEventQueue()

	g := &Game{
		cfg:          opts.Config,
		spawner:      systems.NewSpawner(opts.Config, opts.Random),
		difficulty:   systems.NewDifficulty(opts.Config.Difficulty),
		input:        opts.Input,
		renderer:     opts.Renderer,
		hud:          opts.HUD,
		sched:        opts.Scheduler,
		time:         opts.Time,
		phase:        NewPhaseMachine(opts.Time.Now()),
		newSessionID: opts.SessionID,
		queue:        queue,
		router:       events.NewRouter[*SessionState](queue),

		statusReg:     reg,
		statTicks:     reg.Counter(status.KeyTicks),
		statSessions:  reg.Counter(status.KeySessions),
		statSpawned:   reg.Counter(status.KeySpawned),
		statBlocked:   reg.Counter(status.KeySpawnBlocked),
		statPassed:    reg.Counter(status.KeyPassed),
		statCulled:    reg.Counter(status.KeyCulled),
		statActive:    reg.Counter(status.KeyActive),
		statScore:     reg.Counter(status.KeyScore),
		statLevel:     reg.Counter(status.KeyLevel),
		statDropped:   reg.Counter(status.KeyEventsDropped),
		statSpeed:     reg.Gauge(status.KeyGameSpeed),
		statRate:      reg.Gauge(status.KeySpawnRate),
		statDistance:  reg.Gauge(status.KeyDistance),
		statSessionID: reg.Label(status.KeySessionID),
		statPhase:     reg.Label(status.KeyPhase),
	}
	g.statPhase.Store(PhaseMenu.String())
	return g
}

// RegisterEventHandler adds an event handler to the router
func (g *Game) RegisterEventHandler(h events.Handler[*SessionState]) {
	g.router.Register(h)
}

// Status returns the metrics registry the game writes to
func (g *Game) Status() *status.Registry {
	return g.statusReg
}

// Phase returns the current game phase
func (g *Game) Phase() GamePhase {
	return g.phase.Phase()
}

// Session returns a copy of the current session state
func (g *Game) Session() SessionState {
	return g.session
}

// Scene returns the current read-only scene
func (g *Game) Scene() Scene {
	return Scene{Player: g.player, Traffic: g.traffic, RoadOffset: g.session.RoadOffset}
}

// Stats returns the summary of the last finished session
func (g *Game) Stats() (FinalStats, bool) {
	if g.phase.Phase() != PhaseGameOver {
		return FinalStats{}, false
	}
	return g.last, true
}

// Start begins a fresh session from MENU or GAME_OVER
func (g *Game) Start() error {
	if err := g.phase.Transition(PhasePlaying, g.time.Now()); err != nil {
		return err
	}

	g.session.Reset(g.cfg, g.newSessionID())
	g.player = vehicle.NewPlayer(g.cfg)
	g.traffic = g.traffic[:0]
	g.last = FinalStats{}

	g.statSessions.Add(1)
	g.statSessionID.Store(g.session.ID)
	g.statPhase.Store(PhasePlaying.String())
	g.publishMetrics()

	log.Printf("session %s started (speed=%.1f spawn=%.3f)", g.session.ID, g.session.GameSpeed, g.session.SpawnRate)

	g.push(events.EventSessionStart, &events.SessionStartPayload{
		SessionID: g.session.ID,
		GameSpeed: g.session.GameSpeed,
		SpawnRate: g.session.SpawnRate,
	})
	g.dispatch()
	// After dispatch so HUD sinks already know the new session
	g.hud.PublishHUD(g.hudValues())

	g.sched.RequestFrame()
	return nil
}

// ShowMenu returns to the menu after a finished session
func (g *Game) ShowMenu() error {
	if err := g.phase.Transition(PhaseMenu, g.time.Now()); err != nil {
		return err
	}
	g.sched.CancelFrame()
	g.statPhase.Store(PhaseMenu.String())

	g.push(events.EventMenu, nil)
	g.dispatch()
	return nil
}

// Tick runs one simulation step. It is a no-op outside PhasePlaying.
// Returns true when the tick ran to completion and the scene was rendered.
func (g *Game) Tick() bool {
	if g.phase.Phase() != PhasePlaying {
		return false
	}

	g.frame++
	g.statTicks.Add(1)
	s := &g.session
	cfg := g.cfg

	// 1. Distance and survival score
	step := s.GameSpeed * cfg.Session.DistanceFactor
	s.Distance += step
	s.Score += int(math.Floor(step))

	// 2. Difficulty
	if tuning, up := g.difficulty.Apply(s.Distance, s.Tuning()); up {
		s.ApplyTuning(tuning)
		log.Printf("level %d reached at distance %.0f (speed=%.1f spawn=%.3f)", s.Level, s.Distance, s.GameSpeed, s.SpawnRate)
		g.push(events.EventLevelUp, &events.LevelUpPayload{
			Level:     s.Level,
			GameSpeed: s.GameSpeed,
			SpawnRate: s.SpawnRate,
		})
	}

	// 3. Spawn
	car, outcome := g.spawner.MaybeSpawn(g.traffic, s.SpawnRate)
	switch outcome {
	case systems.SpawnPlaced:
		g.traffic = append(g.traffic, car)
		g.statSpawned.Add(1)
		g.push(events.EventTrafficSpawned, &events.TrafficSpawnedPayload{X: car.X, Speed: car.Speed, Color: car.Color})
	case systems.SpawnBlocked:
		g.statBlocked.Add(1)
	}

	// 4. Player
	g.player.Update(g.input.Steering())
	playerBounds := g.player.Bounds()

	// 5. Traffic: move, score passes, collide, mark off-screen cars
	culled := 0
	for _, t := range g.traffic {
		if t.Update(s.GameSpeed, playerBounds) {
			s.Score += cfg.Traffic.PassBonus
			s.CarsAvoided++
			g.statPassed.Add(1)
			g.push(events.EventTrafficPassed, &events.TrafficPassedPayload{Score: s.Score, CarsAvoided: s.CarsAvoided})
		}

		if physics.Overlaps(playerBounds, t.Bounds()) {
			g.gameOver()
			return false
		}

		if t.IsOffScreen() {
			culled++
		}
	}

	// 6. Cleanup
	if culled > 0 {
		kept := g.traffic[:0]
		for _, t := range g.traffic {
			if !t.IsOffScreen() {
				kept = append(kept, t)
			}
		}
		clear(g.traffic[len(kept):])
		g.traffic = kept
		g.statCulled.Add(int64(culled))
	}

	// 7. Render, then scroll the lane markers
	g.renderer.RenderScene(g.Scene())
	s.RoadOffset = math.Mod(s.RoadOffset+s.GameSpeed, constants.LaneMarkerPeriod)

	// 8. HUD
	g.hud.PublishHUD(g.hudValues())
	g.publishMetrics()
	g.dispatch()

	// 9. Next frame
	g.sched.RequestFrame()
	return true
}

// gameOver ends the session on the first collision of the tick
func (g *Game) gameOver() {
	now := g.time.Now()
	played := g.phase.ReadPhaseState(now).Duration
	if err := g.phase.Transition(PhaseGameOver, now); err != nil {
		log.Printf("game over: %v", err)
		return
	}
	g.sched.CancelFrame()

	g.last = g.session.Stats()
	g.last.Duration = played
	g.statPhase.Store(PhaseGameOver.String())
	g.publishMetrics()

	log.Printf("session %s over after %s: score=%d distance=%d level=%d avoided=%d",
		g.last.SessionID, g.last.Duration, g.last.Score, g.last.Distance, g.last.Level, g.last.CarsAvoided)

	g.push(events.EventGameOver, &events.GameOverPayload{
		SessionID:   g.last.SessionID,
		Score:       g.last.Score,
		Distance:    g.last.Distance,
		Level:       g.last.Level,
		CarsAvoided: g.last.CarsAvoided,
		Duration:    g.last.Duration,
	})
	g.dispatch()
}

func (g *Game) hudValues() HUD {
	return HUD{
		Score:        g.session.Score,
		DisplaySpeed: g.session.DisplaySpeed(constants.DisplaySpeedBase, constants.DisplaySpeedScale),
		Level:        g.session.Level,
	}
}

func (g *Game) publishMetrics() {
	g.statActive.Store(int64(len(g.traffic)))
	g.statScore.Store(int64(g.session.Score))
	g.statLevel.Store(int64(g.session.Level))
	g.statSpeed.Store(g.session.GameSpeed)
	g.statRate.Store(g.session.SpawnRate)
	g.statDistance.Store(g.session.Distance)
}

func (g *Game) push(t events.EventType, payload any) {
	if !events.PayloadMatches(t, payload) {
		log.Printf("event %s dropped: unexpected payload %T", t, payload)
		g.rejected++
		return
	}
	g.queue.Push(events.GameEvent{
		Type:      t,
		Payload:   payload,
		Frame:     g.frame,
		Timestamp: g.time.Now(),
	})
}

func (g *Game) dispatch() {
	g.router.DispatchAll(&g.session)
	g.statDropped.Store(int64(g.queue.Dropped()) + g.rejected)
}

type idleInput struct{}

func (idleInput) Steering() vehicle.Steering { return vehicle.Steering{} }

type discardRenderer struct{}

func (discardRenderer) RenderScene(Scene) {}

type noopScheduler struct{}

func (noopScheduler) RequestFrame() {}
func (noopScheduler) CancelFrame()  {}
