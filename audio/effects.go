package audio

import (
	"math"
	"math/rand/v2"
	"sync/atomic"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"

	"github.com/lixenwraith/vi-racer/constants"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// oscillator generates a fixed-length raw wave
type oscillator struct {
	freq     float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
}

// NewOscillator creates a finite oscillator for wave generation
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     freq,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		val := waveSample(o.wave, o.phase)
		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// waveSample evaluates one wave shape at phase in [0, 1)
func waveSample(wave WaveType, phase float64) float64 {
	switch wave {
	case WaveSine:
		return math.Sin(2 * math.Pi * phase)
	case WaveSquare:
		if phase < 0.5 {
			return 1.0
		}
		return -1.0
	case WaveSaw:
		return 2.0 * (phase - 0.5)
	case WaveNoise:
		return rand.Float64()*2 - 1
	}
	return 0
}

// envelope applies attack/release shaping to a stream
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	totalSamples   int
}

// NewEnvelope wraps s with a linear attack and release over duration
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	return &envelope{
		streamer:       s,
		attackSamples:  rate.N(attack),
		releaseSamples: rate.N(release),
		totalSamples:   rate.N(duration),
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	releaseStart := max(e.totalSamples-e.releaseSamples, e.attackSamples)
	for i := 0; i < n; i++ {
		if e.position >= e.totalSamples {
			return i, i > 0
		}

		vol := 1.0
		if e.position < e.attackSamples && e.attackSamples > 0 {
			vol = float64(e.position) / float64(e.attackSamples)
		} else if e.position >= releaseStart && e.releaseSamples > 0 {
			vol = math.Max(float64(e.totalSamples-e.position)/float64(e.releaseSamples), 0)
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}

	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume scales s linearly; math.Log2(0) is -Inf, so zero volume is silent
func newVolume(s beep.Streamer, vol float64) *effects.Volume {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

// note is one shaped tone
func note(freq float64, d, release time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return NewEnvelope(NewOscillator(freq, d, wave, rate), d, constants.EffectAttack, release, rate)
}

// CreateStartSound generates a rising two-note chime (G4, D5)
func CreateStartSound(rate beep.SampleRate) beep.Streamer {
	d := constants.StartNoteDuration
	return beep.Seq(
		note(392.00, d, constants.StartNoteRelease, WaveSine, rate),
		note(587.33, d, constants.StartNoteRelease, WaveSine, rate),
	)
}

// CreatePassSound generates a short high blip
func CreatePassSound(rate beep.SampleRate) beep.Streamer {
	d := constants.PassSoundDuration
	return beep.Mix(
		newVolume(note(1046.50, d, constants.PassSoundRelease, WaveSine, rate), 0.7),
		newVolume(note(2093.00, d, constants.PassSoundRelease, WaveSine, rate), 0.3),
	)
}

// CreateLevelUpSound generates a major arpeggio (C5 E5 G5 C6)
func CreateLevelUpSound(rate beep.SampleRate) beep.Streamer {
	d := constants.LevelUpNoteDuration
	freqs := []float64{523.25, 659.25, 783.99, 1046.50}

	notes := make([]beep.Streamer, len(freqs))
	for i, f := range freqs {
		notes[i] = newVolume(note(f, d, constants.LevelUpNoteRelease, WaveSquare, rate), 0.4)
	}
	return beep.Seq(notes...)
}

// CreateCrashSound generates a noise burst over a low rumble
func CreateCrashSound(rate beep.SampleRate) beep.Streamer {
	d := constants.CrashSoundDuration
	return beep.Mix(
		newVolume(note(0, d, constants.CrashSoundRelease, WaveNoise, rate), 0.6),
		newVolume(note(70, d, constants.CrashSoundRelease, WaveSaw, rate), 0.5),
	)
}

// GetSoundEffect returns a fresh streamer for the given sound type
func GetSoundEffect(st SoundType, rate beep.SampleRate) beep.Streamer {
	switch st {
	case SoundStart:
		return CreateStartSound(rate)
	case SoundPass:
		return CreatePassSound(rate)
	case SoundLevelUp:
		return CreateLevelUpSound(rate)
	case SoundCrash:
		return CreateCrashSound(rate)
	default:
		return nil
	}
}

// humStreamer is the endless engine drone; pitch follows game speed
type humStreamer struct {
	rate     beep.SampleRate
	phase    float64
	sub      float64
	freqBits atomic.Uint64
}

func newHumStreamer(rate beep.SampleRate) *humStreamer {
	h := &humStreamer{rate: rate}
	h.SetFrequency(constants.EngineHumBaseFreq)
	return h
}

// SetFrequency changes the fundamental; safe while streaming
func (h *humStreamer) SetFrequency(freq float64) {
	h.freqBits.Store(math.Float64bits(freq))
}

// Frequency returns the current fundamental
func (h *humStreamer) Frequency() float64 {
	return math.Float64frombits(h.freqBits.Load())
}

func (h *humStreamer) Stream(samples [][2]float64) (n int, ok bool) {
	freq := h.Frequency()
	step := freq / float64(h.rate)
	for i := range samples {
		// Saw fundamental plus a sine one octave below
		val := constants.EngineHumAmplitude * (0.6*waveSample(WaveSaw, h.phase) + 0.4*waveSample(WaveSine, h.sub))
		samples[i][0] = val
		samples[i][1] = val

		h.phase += step
		h.phase -= math.Floor(h.phase)
		h.sub += step / 2
		h.sub -= math.Floor(h.sub)
	}
	return len(samples), true
}

func (h *humStreamer) Err() error { return nil }

// humFrequency maps game speed to the drone pitch
func humFrequency(gameSpeed float64) float64 {
	return constants.EngineHumBaseFreq + gameSpeed*constants.EngineHumSpeedFactor
}
