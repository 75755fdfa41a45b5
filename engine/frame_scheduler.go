package engine

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/vi-racer/core"
	"github.com/lixenwraith/vi-racer/status"
)

// Scheduler is the "run me again next frame" primitive the game loop consumes
type Scheduler interface {
	// RequestFrame asks for one more tick on the next frame
	RequestFrame()
	// CancelFrame drops any pending request, including a frame already in flight
	CancelFrame()
}

// FrameToken identifies the request a frame was emitted for
type FrameToken uint64

// FrameScheduler paces ticks to the display refresh rate.
// At most one frame is outstanding. A background loop emits a token on Frames
// once per interval while a request is pending; the consumer runs the tick only
// when Accept confirms the token still belongs to the live request.
// CancelFrame invalidates every token already emitted, so a frame buffered
// before a phase change can never reach the game, and empties the buffer so
// the next request is emitted on the following interval.
type FrameScheduler struct {
	interval time.Duration

	mu         sync.Mutex
	pending    bool
	generation uint64

	frames chan FrameToken

	// Control channels
	stopChan chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
	running  atomic.Bool

	emitted *atomic.Int64
}

// NewFrameScheduler creates a scheduler emitting at most one frame per interval.
// Emitted frames are counted in reg under status.KeyFramesEmitted; reg may be nil.
func NewFrameScheduler(interval time.Duration, reg *status.Registry) *FrameScheduler {
	if reg == nil {
		reg = status.NewRegistry()
	}
	return &FrameScheduler{
		interval: interval,
		frames:   make(chan FrameToken, 1),
		stopChan: make(chan struct{}),
		emitted:  reg.Counter(status.KeyFramesEmitted),
	}
}

// Frames delivers frame tokens to the consumer
func (fs *FrameScheduler) Frames() <-chan FrameToken {
	return fs.frames
}

// RequestFrame marks a frame as wanted. Repeated requests before the frame is accepted collapse into one.
func (fs *FrameScheduler) RequestFrame() {
	fs.mu.Lock()
	fs.pending = true
	fs.mu.Unlock()
}

// CancelFrame clears the pending request and invalidates in-flight tokens
func (fs *FrameScheduler) CancelFrame() {
	fs.mu.Lock()
	defer fs.mu.Unlock()

	fs.pending = false
	fs.generation++
	select {
	case <-fs.frames:
	default:
	}
}

// Pending reports whether a frame has been requested and not yet accepted
func (fs *FrameScheduler) Pending() bool {
	fs.mu.Lock()
	defer fs.mu.Unlock()
	return fs.pending
}

// Accept consumes the pending request if tok was emitted for it
func (fs *FrameScheduler) Accept(tok FrameToken) bool {
	fs.mu.Lock()
	defer fs.mu.Unlock()

	if !fs.pending || uint64(tok) != fs.generation {
		return false
	}
	fs.pending = false
	return true
}

// Emit offers a frame for the current request without blocking.
// Returns false when nothing is pending or the previous frame is still unread.
func (fs *FrameScheduler) Emit() bool {
	fs.mu.Lock()
	defer fs.mu.Unlock()

	if !fs.pending {
		return false
	}

	// Send under the lock so CancelFrame cannot interleave a stale token
	select {
	case fs.frames <- FrameToken(fs.generation):
		fs.emitted.Add(1)
		return true
	default:
		return false
	}
}

// Start begins the pacing loop
func (fs *FrameScheduler) Start() {
	if fs.running.CompareAndSwap(false, true) {
		fs.wg.Add(1)
		// Use core.Go for safe execution with centralized crash handling
		core.Go(fs.loop)
	}
}

// Stop halts the pacing loop
func (fs *FrameScheduler) Stop() {
	fs.stopOnce.Do(func() {
		if fs.running.CompareAndSwap(true, false) {
			close(fs.stopChan)
			fs.wg.Wait()
		}
	})
}

// loop emits on a fixed deadline schedule, resyncing when it falls far behind
func (fs *FrameScheduler) loop() {
	defer fs.wg.Done()

	next := time.Now().Add(fs.interval)
	timer := time.NewTimer(fs.interval)
	defer timer.Stop()

	for {
		select {
		case <-fs.stopChan:
			return
		case now := <-timer.C:
			fs.Emit()

			next = next.Add(fs.interval)
			if now.Sub(next) > fs.interval*2 {
				next = now.Add(fs.interval)
			}
			timer.Reset(time.Until(next))
		}
	}
}
