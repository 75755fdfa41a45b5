// Package status is a lock-free metrics registry.
// The simulation caches metric pointers at construction and writes atomics on each tick;
// telemetry reads a snapshot from another goroutine.
package status

import (
	"fmt"
	"math"
	"sync"
	"sync/atomic"
)

// Metric keys written by the simulation loop and its collaborators
const (
	KeyTicks            = "loop.ticks"
	KeySessions         = "loop.sessions"
	KeyFramesEmitted    = "loop.frames_emitted"
	KeySpawned          = "traffic.spawned"
	KeySpawnBlocked     = "traffic.spawn_blocked"
	KeyPassed           = "traffic.passed"
	KeyCulled           = "traffic.culled"
	KeyActive           = "traffic.active"
	KeyScore            = "session.score"
	KeyLevel            = "session.level"
	KeyGameSpeed        = "session.game_speed"
	KeySpawnRate        = "session.spawn_rate"
	KeyDistance         = "session.distance"
	KeySessionID        = "session.id"
	KeyPhase            = "session.phase"
	KeyEventsDropped    = "events.dropped"
	KeyAudioEnabled     = "audio.enabled"
	KeySoundsPlayed     = "audio.sounds_played"
	KeyTelemetryPeer    = "telemetry.clients"
	KeyTelemetrySent    = "telemetry.frames_sent"
	KeyTelemetryDropped = "telemetry.frames_dropped"
)

// MaxLabelLen bounds label values; a UUID fits
const MaxLabelLen = 40

// Gauge is a float64 readable and writable without locks. Zero value reads 0.
type Gauge struct {
	bits atomic.Uint64
}

// Store sets the gauge
func (g *Gauge) Store(v float64) {
	g.bits.Store(math.Float64bits(v))
}

// Load reads the gauge
func (g *Gauge) Load() float64 {
	return math.Float64frombits(g.bits.Load())
}

// Label is a short string published atomically. Zero value reads "".
type Label struct {
	p atomic.Pointer[string]
}

// Store sets the label, cut to MaxLabelLen bytes
func (l *Label) Store(s string) {
	if len(s) > MaxLabelLen {
		s = s[:MaxLabelLen]
	}
	l.p.Store(&s)
}

// Load reads the label
func (l *Label) Load() string {
	if s := l.p.Load(); s != nil {
		return *s
	}
	return ""
}

// Registry hands out one metric per key.
// Lookups lock; callers on the hot path cache the returned pointer.
type Registry struct {
	mu      sync.RWMutex
	metrics map[string]any
}

// NewRegistry creates an empty registry
func NewRegistry() *Registry {
	return &Registry{metrics: make(map[string]any)}
}

// Counter returns the integer metric for key
func (r *Registry) Counter(key string) *atomic.Int64 {
	return metric[atomic.Int64](r, key)
}

// Flag returns the boolean metric for key
func (r *Registry) Flag(key string) *atomic.Bool {
	return metric[atomic.Bool](r, key)
}

// Gauge returns the float metric for key
func (r *Registry) Gauge(key string) *Gauge {
	return metric[Gauge](r, key)
}

// Label returns the string metric for key
func (r *Registry) Label(key string) *Label {
	return metric[Label](r, key)
}

// Snapshot copies every metric into a flat map keyed by metric name
func (r *Registry) Snapshot() map[string]any {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make(map[string]any, len(r.metrics))
	for k, m := range r.metrics {
		switch v := m.(type) {
		case *atomic.Int64:
			out[k] = v.Load()
		case *atomic.Bool:
			out[k] = v.Load()
		case *Gauge:
			out[k] = v.Load()
		case *Label:
			out[k] = v.Load()
		}
	}
	return out
}

// metric returns the metric stored under key, creating it on first use.
// Reusing a key with a different metric kind is a programming error and panics.
func metric[T any](r *Registry, key string) *T {
	r.mu.RLock()
	m, ok := r.metrics[key]
	r.mu.RUnlock()

	if !ok {
		r.mu.Lock()
		if m, ok = r.metrics[key]; !ok {
			m = new(T)
			r.metrics[key] = m
		}
		r.mu.Unlock()
	}

	p, ok := m.(*T)
	if !ok {
		panic(fmt.Sprintf("status: metric %q is %T, not %T", key, m, p))
	}
	return p
}
