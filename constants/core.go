package constants

import "time"

// Event Queue
const (
	// EventQueueSize is the fixed capacity of the event ring buffer
	EventQueueSize = 64

	// EventBufferMask is the bitmask for fast modulo operations (64 - 1)
	EventBufferMask = 63
)

// Telemetry
const (
	// TelemetrySendBuffer is the per-client outgoing frame queue; full queues drop frames
	TelemetrySendBuffer = 64

	TelemetryWriteWait  = 10 * time.Second
	TelemetryPongWait   = 60 * time.Second
	TelemetryPingPeriod = TelemetryPongWait * 9 / 10

	// TelemetryReadLimit caps inbound spectator messages
	TelemetryReadLimit = 512
)
