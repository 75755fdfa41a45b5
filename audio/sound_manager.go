package audio

import (
	"sync"
	"sync/atomic"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"
	"github.com/pkg/errors"

	"github.com/lixenwraith/vi-racer/constants"
	"github.com/lixenwraith/vi-racer/status"
)

// Speaker entry points, swapped in tests
var (
	speakerInit   = speaker.Init
	speakerPlay   = speaker.Play
	speakerLock   = speaker.Lock
	speakerUnlock = speaker.Unlock
)

// SoundManager manages all game audio.
// Every sound goes through one mixer behind a master volume; the engine hum
// is a permanent mixer entry toggled through its Ctrl.
type SoundManager struct {
	mu          sync.Mutex
	config      *AudioConfig
	rate        beep.SampleRate
	mixer       *beep.Mixer
	master      *effects.Volume
	hum         *humStreamer
	humCtrl     *beep.Ctrl
	initialized bool

	muted  atomic.Bool
	played *atomic.Int64
}

// NewSoundManager creates a sound manager; nil config means defaults.
// Queued effects are counted in reg under status.KeySoundsPlayed; reg may be nil.
func NewSoundManager(cfg *AudioConfig, reg *status.Registry) *SoundManager {
	if cfg == nil {
		cfg = DefaultAudioConfig()
	}
	if reg == nil {
		reg = status.NewRegistry()
	}
	rate := beep.SampleRate(cfg.SampleRate)
	mixer := &beep.Mixer{}
	hum := newHumStreamer(rate)

	sm := &SoundManager{
		config:  cfg,
		rate:    rate,
		mixer:   mixer,
		master:  newVolume(mixer, cfg.MasterVolume),
		hum:     hum,
		humCtrl: &beep.Ctrl{Streamer: hum, Paused: true},
		played:  reg.Counter(status.KeySoundsPlayed),
	}
	sm.muted.Store(!cfg.Enabled)
	sm.applySilence()
	return sm
}

// Initialize opens the speaker and starts streaming the mixer
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	if err := speakerInit(sm.rate, sm.rate.N(constants.AudioBufferDuration)); err != nil {
		return errors.Wrap(err, "audio: speaker init")
	}

	speakerLock()
	sm.mixer.Add(sm.humCtrl)
	speakerUnlock()

	speakerPlay(sm.master)
	sm.initialized = true
	return nil
}

// Cleanup stops all sounds
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speakerLock()
	sm.humCtrl.Paused = true
	sm.mixer.Clear()
	speakerUnlock()

	// beep has no speaker Close; an empty mixer streams silence
	sm.initialized = false
}

// Play queues a one-shot effect. Returns false when muted or not initialized.
func (sm *SoundManager) Play(st SoundType) bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized || sm.muted.Load() {
		return false
	}

	s := GetSoundEffect(st, sm.rate)
	if s == nil {
		return false
	}

	speakerLock()
	sm.mixer.Add(newVolume(s, sm.config.EffectVolumes[st]))
	speakerUnlock()

	sm.played.Add(1)
	return true
}

// StartEngine resumes the engine hum
func (sm *SoundManager) StartEngine() {
	sm.setEngine(false)
}

// StopEngine pauses the engine hum
func (sm *SoundManager) StopEngine() {
	sm.setEngine(true)
}

func (sm *SoundManager) setEngine(paused bool) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	speakerLock()
	sm.humCtrl.Paused = paused
	speakerUnlock()
}

// SetEngineSpeed retunes the hum to the game speed
func (sm *SoundManager) SetEngineSpeed(gameSpeed float64) {
	sm.hum.SetFrequency(humFrequency(gameSpeed))
}

// ToggleMute toggles mute state, returns true if now enabled
func (sm *SoundManager) ToggleMute() bool {
	muted := !sm.muted.Load()
	sm.muted.Store(muted)
	sm.applySilence()
	return !muted
}

// IsMuted returns current mute state
func (sm *SoundManager) IsMuted() bool {
	return sm.muted.Load()
}

// IsInitialized reports whether the speaker is open
func (sm *SoundManager) IsInitialized() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.initialized
}

func (sm *SoundManager) applySilence() {
	speakerLock()
	sm.master.Silent = sm.muted.Load() || sm.config.MasterVolume <= 0
	speakerUnlock()
}
