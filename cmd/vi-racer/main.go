package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"math/rand/v2"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/pkg/errors"
	"golang.org/x/term"

	"github.com/lixenwraith/vi-racer/audio"
	"github.com/lixenwraith/vi-racer/config"
	"github.com/lixenwraith/vi-racer/constants"
	"github.com/lixenwraith/vi-racer/core"
	"github.com/lixenwraith/vi-racer/engine"
	"github.com/lixenwraith/vi-racer/input"
	"github.com/lixenwraith/vi-racer/render"
	"github.com/lixenwraith/vi-racer/status"
	"github.com/lixenwraith/vi-racer/telemetry"
)

var (
	configPath    = flag.String("config", "", "Path to a TOML config file")
	seedFlag      = flag.Uint64("seed", 0, "Traffic random seed (0 picks one)")
	debugFlag     = flag.Bool("debug", false, "Write logs to "+logDir+"/"+logFileName)
	telemetryAddr = flag.String("telemetry", "", "Serve the spectator feed and /stats on this address, e.g. :8080")
	muteFlag      = flag.Bool("mute", false, "Start with audio muted")
)

func main() {
	flag.Parse()

	if logFile := setupLogging(*debugFlag); logFile != nil {
		defer logFile.Close()
	}

	if !term.IsTerminal(int(os.Stdin.Fd())) || !term.IsTerminal(int(os.Stdout.Fd())) {
		fmt.Fprintln(os.Stderr, "vi-racer: stdin and stdout must be a terminal")
		os.Exit(1)
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "vi-racer: %v\n", err)
		os.Exit(1)
	}

	keys, err := input.NewKeyTable(cfg.Keys)
	if err != nil {
		fmt.Fprintf(os.Stderr, "vi-racer: %v\n", err)
		os.Exit(1)
	}

	if err := run(cfg, keys); err != nil {
		fmt.Fprintf(os.Stderr, "vi-racer: %v\n", err)
		os.Exit(1)
	}
}

// run owns the terminal for the lifetime of the game; every deferred cleanup
// happens before main decides the exit code
func run(cfg *config.Config, keys *input.KeyTable) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return errors.Wrap(err, "create screen")
	}
	if err := screen.Init(); err != nil {
		return errors.Wrap(err, "init screen")
	}
	core.SetCrashTerminal(screen)
	defer screen.Fini()
	screen.HideCursor()

	reg := status.NewRegistry()
	view := render.NewTerminalView(screen, cfg, render.NewColorCache())

	sound := setupAudio(reg, *muteFlag)
	defer sound.Cleanup()

	hud := engine.MultiHUD{view}
	var hub *telemetry.Hub
	if *telemetryAddr != "" {
		hub = telemetry.NewHub(reg)
		server := telemetry.NewServer(*telemetryAddr, hub, reg)
		if err := server.Start(); err != nil {
			log.Printf("telemetry disabled: %v", err)
			hub = nil
		} else {
			hud = append(hud, hub)
			defer func() {
				ctx, cancel := context.WithTimeout(context.Background(), time.Second)
				defer cancel()
				server.Shutdown(ctx)
			}()
		}
	}

	sched := engine.NewFrameScheduler(cfg.FrameInterval(), reg)
	sched.Start()
	defer sched.Stop()

	tracker := input.NewTracker(keys, core.NewMonotonicTimeProvider(), constants.KeyHoldWindow)

	game := engine.NewGame(engine.GameOptions{
		Config:    cfg,
		Random:    newRandom(*seedFlag),
		Input:     tracker,
		Renderer:  view,
		HUD:       hud,
		Scheduler: sched,
		Status:    reg,
	})
	game.RegisterEventHandler(sound)
	if hub != nil {
		game.RegisterEventHandler(hub)
	}

	view.SetStatus(statusText(sound.IsMuted()))
	redraw(game, view)

	eventChan := make(chan tcell.Event, 256)
	core.Go(func() {
		for {
			ev := screen.PollEvent()
			// nil after Fini
			if ev == nil {
				close(eventChan)
				return
			}
			eventChan <- ev
		}
	})

	for {
		select {
		case ev, ok := <-eventChan:
			if !ok {
				return nil
			}
			if !handleIntent(tracker.Process(ev), game, view, sound, tracker, screen, reg) {
				return nil
			}

		case tok := <-sched.Frames():
			if !sched.Accept(tok) {
				continue
			}
			if !game.Tick() && game.Phase() == engine.PhaseGameOver {
				if stats, ok := game.Stats(); ok {
					view.ShowGameOver(stats)
				}
			}
			view.Show()
		}
	}
}

// handleIntent applies a command; returns false to quit
func handleIntent(it input.Intent, game *engine.Game, view *render.TerminalView, sound *audio.SoundManager,
	tracker *input.Tracker, screen tcell.Screen, reg *status.Registry) bool {
	// Steering is already recorded by the tracker
	if !it.IsCommand() {
		return true
	}

	switch it.Type {
	case input.IntentQuit:
		return false

	case input.IntentStart:
		if game.Phase() == engine.PhasePlaying {
			return true
		}
		// The key that started the session must not also steer
		tracker.Release()
		if err := game.Start(); err != nil {
			log.Printf("start: %v", err)
		}

	case input.IntentMenu:
		if game.Phase() != engine.PhaseGameOver {
			return true
		}
		if err := game.ShowMenu(); err != nil {
			log.Printf("menu: %v", err)
			return true
		}
		redraw(game, view)

	case input.IntentToggleMute:
		enabled := sound.ToggleMute()
		reg.Flag(status.KeyAudioEnabled).Store(enabled && sound.IsInitialized())
		view.SetStatus(statusText(!enabled))
		redraw(game, view)

	case input.IntentResize:
		screen.Sync()
		view.Resize()
		redraw(game, view)
	}
	return true
}

// redraw repaints the current phase outside the frame cadence
func redraw(game *engine.Game, view *render.TerminalView) {
	switch game.Phase() {
	case engine.PhaseMenu:
		view.ShowMenu()
	case engine.PhasePlaying:
		view.RenderScene(game.Scene())
	case engine.PhaseGameOver:
		view.RenderScene(game.Scene())
		if stats, ok := game.Stats(); ok {
			view.ShowGameOver(stats)
		}
	}
	view.Show()
}

// setupAudio opens the speaker; failure leaves a silent manager and the game continues
func setupAudio(reg *status.Registry, muted bool) *audio.SoundManager {
	cfg := audio.LoadAudioConfig()
	if muted {
		cfg.Enabled = false
	}

	sound := audio.NewSoundManager(cfg, reg)
	if err := sound.Initialize(); err != nil {
		log.Printf("%v (continuing without audio)", err)
	}
	reg.Flag(status.KeyAudioEnabled).Store(sound.IsInitialized() && !sound.IsMuted())
	return sound
}

// newRandom seeds the traffic generator; a zero seed picks a random one
func newRandom(seed uint64) *rand.Rand {
	if seed == 0 {
		seed = rand.Uint64()
	}
	log.Printf("traffic seed %d", seed)
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

func statusText(muted bool) string {
	if muted {
		return "[muted]"
	}
	return ""
}
