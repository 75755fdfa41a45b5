package audio

import (
	"math"
	"testing"
	"time"

	"github.com/gopxl/beep"
)

const testRate = beep.SampleRate(44100)

// drain streams s to exhaustion, returning sample count and peak amplitude
func drain(t *testing.T, s beep.Streamer, limit int) (int, float64) {
	t.Helper()
	buf := make([][2]float64, 256)
	total, peak := 0, 0.0
	for total < limit {
		n, ok := s.Stream(buf)
		for i := 0; i < n; i++ {
			peak = math.Max(peak, math.Abs(buf[i][0]))
		}
		total += n
		if !ok {
			return total, peak
		}
	}
	t.Fatalf("streamer did not drain within %d samples", limit)
	return total, peak
}

func TestOscillatorLength(t *testing.T) {
	waves := []WaveType{WaveSine, WaveSquare, WaveSaw, WaveNoise}
	for _, w := range waves {
		n, peak := drain(t, NewOscillator(440, 10*time.Millisecond, w, testRate), 10000)
		if n != testRate.N(10*time.Millisecond) {
			t.Errorf("wave %d: expected %d samples, got %d", w, testRate.N(10*time.Millisecond), n)
		}
		if peak == 0 || peak > 1 {
			t.Errorf("wave %d: peak %f out of range", w, peak)
		}
	}
}

func TestEnvelopeShape(t *testing.T) {
	d := 100 * time.Millisecond
	env := NewEnvelope(NewOscillator(0, d, WaveSquare, testRate), d, 10*time.Millisecond, 10*time.Millisecond, testRate)

	buf := make([][2]float64, testRate.N(d))
	n, _ := env.Stream(buf)
	if n != len(buf) {
		t.Fatalf("expected %d samples, got %d", len(buf), n)
	}

	// Constant input shows the envelope directly
	if buf[0][0] != 0 {
		t.Errorf("attack should start silent, got %f", buf[0][0])
	}
	mid := len(buf) / 2
	if buf[mid][0] != 1 {
		t.Errorf("sustain should be full scale, got %f", buf[mid][0])
	}
	if last := buf[len(buf)-1][0]; last <= 0 || last > 0.01 {
		t.Errorf("release should end near silence, got %f", last)
	}
}

func TestSoundEffectsDrain(t *testing.T) {
	tests := []struct {
		st   SoundType
		want time.Duration
	}{
		{SoundStart, 240 * time.Millisecond},
		{SoundPass, 60 * time.Millisecond},
		{SoundLevelUp, 360 * time.Millisecond},
		{SoundCrash, 450 * time.Millisecond},
	}

	for _, tt := range tests {
		t.Run(tt.st.String(), func(t *testing.T) {
			s := GetSoundEffect(tt.st, testRate)
			if s == nil {
				t.Fatal("expected streamer")
			}
			want := testRate.N(tt.want)
			n, peak := drain(t, s, want*2)
			if n < want-4 || n > want+512 {
				t.Errorf("expected about %d samples, got %d", want, n)
			}
			if peak == 0 || peak > 1.5 {
				t.Errorf("unexpected peak %f", peak)
			}
		})
	}

	if GetSoundEffect(soundTypeCount, testRate) != nil {
		t.Error("unknown sound type should have no effect")
	}
}

func TestNewVolumeZeroIsSilent(t *testing.T) {
	v := newVolume(NewOscillator(0, 10*time.Millisecond, WaveSquare, testRate), 0)
	_, peak := drain(t, v, 10000)
	if peak != 0 {
		t.Errorf("expected silence, got peak %f", peak)
	}
}

func TestHumStreamer(t *testing.T) {
	h := newHumStreamer(testRate)
	if h.Frequency() != 55 {
		t.Errorf("expected base frequency 55, got %f", h.Frequency())
	}

	h.SetFrequency(humFrequency(3))
	if h.Frequency() != 73 {
		t.Errorf("expected 73 Hz at speed 3, got %f", h.Frequency())
	}

	buf := make([][2]float64, 4096)
	for i := 0; i < 10; i++ {
		n, ok := h.Stream(buf)
		if n != len(buf) || !ok {
			t.Fatal("hum must never drain")
		}
	}
}
