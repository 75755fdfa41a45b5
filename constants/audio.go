package constants

import "time"

// Audio Defaults
const (
	AudioSampleRate   = 44100
	AudioMasterVolume = 0.5

	// AudioBufferDuration is the speaker buffer length
	AudioBufferDuration = 100 * time.Millisecond
)

// Effect Timing
const (
	PassSoundDuration    = 60 * time.Millisecond
	LevelUpNoteDuration  = 90 * time.Millisecond
	CrashSoundDuration   = 450 * time.Millisecond
	EngineHumBaseFreq    = 55.0
	EngineHumSpeedFactor = 6.0
)

// Envelope Timing
const (
	StartNoteDuration  = 120 * time.Millisecond
	EffectAttack       = 5 * time.Millisecond
	PassSoundRelease   = 40 * time.Millisecond
	LevelUpNoteRelease = 50 * time.Millisecond
	StartNoteRelease   = 80 * time.Millisecond
	CrashSoundRelease  = 380 * time.Millisecond
	EngineHumAmplitude = 0.12
)
