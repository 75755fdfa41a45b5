package events

import (
	"sync/atomic"

	"github.com/lixenwraith/vi-racer/constants"
)

// EventQueue is a lock-free MPSC ring buffer for game events
// Thread-Safety:
//   - Push: Lock-free CAS, multiple producers OK
//   - Consume: Single consumer (simulation loop)
//   - Published flags prevent reading partial writes
//
// Overflow: Oldest events overwritten when full and counted in Dropped
type EventQueue struct {
	slots     [constants.EventQueueSize]GameEvent
	published [constants.EventQueueSize]atomic.Bool
	head      atomic.Uint64 // Read index
	tail      atomic.Uint64 // Write index
	dropped   atomic.Uint64
}

// NewEventQueue creates an empty queue
func NewEventQueue() *EventQueue {
	return &EventQueue{}
}

// Push appends an event, overwriting the oldest unread one when full
func (q *EventQueue) Push(ev GameEvent) {
	for {
		tail := q.tail.Load()
		next := tail + 1
		if !q.tail.CompareAndSwap(tail, next) {
			continue
		}

		idx := tail & constants.EventBufferMask
		q.slots[idx] = ev
		q.published[idx].Store(true) // after the write

		head := q.head.Load()
		if next-head > constants.EventQueueSize {
			if q.head.CompareAndSwap(head, next-constants.EventQueueSize) {
				q.dropped.Add(next - constants.EventQueueSize - head)
			}
		}
		return
	}
}

// Consume returns all pending events in FIFO order and advances head
func (q *EventQueue) Consume() []GameEvent {
	for {
		orig := q.head.Load()
		tail := q.tail.Load()
		if tail == orig {
			return nil
		}

		head, n := orig, tail-orig
		if n > constants.EventQueueSize {
			n = constants.EventQueueSize
			head = tail - constants.EventQueueSize
		}

		out := make([]GameEvent, 0, n)
		for i := uint64(0); i < n; i++ {
			idx := (head + i) & constants.EventBufferMask
			if !q.published[idx].Load() {
				break // writer incomplete
			}
			out = append(out, q.slots[idx])
			q.published[idx].Store(false)
		}

		if q.head.CompareAndSwap(orig, head+uint64(len(out))) {
			if len(out) == 0 {
				return nil
			}
			return out
		}
	}
}

// Dropped returns how many events were overwritten before being consumed
func (q *EventQueue) Dropped() uint64 {
	return q.dropped.Load()
}
