package telemetry

import (
	"log"
	"net/http"
	"sync"
	"sync/atomic"

	"github.com/gorilla/websocket"

	"github.com/lixenwraith/vi-racer/constants"
	"github.com/lixenwraith/vi-racer/core"
	"github.com/lixenwraith/vi-racer/engine"
	"github.com/lixenwraith/vi-racer/events"
	"github.com/lixenwraith/vi-racer/status"
)

// Hub fans session frames out to every connected spectator.
// PublishHUD and HandleEvent run on the simulation goroutine and never block:
// frames are encoded once and offered to each client's queue.
// It implements engine.HUDSink and events.Handler.
type Hub struct {
	upgrader websocket.Upgrader

	mu      sync.RWMutex
	clients map[*client]struct{}
	closed  bool

	// Loop goroutine only
	sessionID string
	frame     int64
	hudEvery  int
	hudCount  int

	peers   *atomic.Int64
	sent    *atomic.Int64
	dropped *atomic.Int64
}

// NewHub creates a hub reporting its client count and frame delivery into reg
func NewHub(reg *status.Registry) *Hub {
	return &Hub{
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			// Spectators are read-only
			CheckOrigin: func(r *http.Request) bool { return true },
		},
		clients:  make(map[*client]struct{}),
		hudEvery: constants.TelemetryHUDEvery,
		peers:    reg.Counter(status.KeyTelemetryPeer),
		sent:     reg.Counter(status.KeyTelemetrySent),
		dropped:  reg.Counter(status.KeyTelemetryDropped),
	}
}

// ServeHTTP upgrades a spectator connection and starts its pumps
func (h *Hub) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ws, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("telemetry: upgrade failed: %v", err)
		return
	}

	c := newClient(ws, h)
	if !h.register(c) {
		ws.Close()
		return
	}
	log.Printf("telemetry: spectator connected from %s", ws.RemoteAddr())

	core.Go(c.writePump)
	core.Go(c.readPump)
}

func (h *Hub) register(c *client) bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.closed {
		return false
	}
	h.clients[c] = struct{}{}
	h.peers.Store(int64(len(h.clients)))
	return true
}

func (h *Hub) unregister(c *client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if _, ok := h.clients[c]; ok {
		delete(h.clients, c)
		h.peers.Store(int64(len(h.clients)))
	}
}

// ClientCount returns the number of connected spectators
func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// Broadcast offers data to every client, returning how many accepted it
func (h *Hub) Broadcast(data []byte) int {
	h.mu.RLock()
	defer h.mu.RUnlock()

	n := 0
	for c := range h.clients {
		if c.enqueue(data) {
			n++
		} else {
			h.dropped.Add(1)
		}
	}
	h.sent.Add(int64(n))
	return n
}

// Close disconnects every spectator and refuses new ones
func (h *Hub) Close() {
	h.mu.Lock()
	h.closed = true
	clients := make([]*client, 0, len(h.clients))
	for c := range h.clients {
		clients = append(clients, c)
	}
	h.mu.Unlock()

	for _, c := range clients {
		c.close()
	}
}

// PublishHUD sends every hudEvery-th HUD update
func (h *Hub) PublishHUD(hud engine.HUD) {
	h.frame++
	h.hudCount++
	if h.hudCount < h.hudEvery {
		return
	}
	h.hudCount = 0
	h.send(&Frame{Kind: KindHUD, SessionID: h.sessionID, Frame: h.frame, HUD: &hud})
}

// EventTypes implements events.Handler
func (h *Hub) EventTypes() []events.EventType {
	return []events.EventType{events.EventSessionStart, events.EventLevelUp, events.EventGameOver}
}

// HandleEvent turns session milestones into frames
func (h *Hub) HandleEvent(_ *engine.SessionState, ev events.GameEvent) {
	switch p := ev.Payload.(type) {
	case *events.SessionStartPayload:
		h.sessionID = p.SessionID
		h.frame = 0
		// First HUD of a session goes out immediately
		h.hudCount = h.hudEvery - 1
		h.send(&Frame{Kind: KindSessionStart, SessionID: p.SessionID, GameSpeed: p.GameSpeed})

	case *events.LevelUpPayload:
		h.send(&Frame{Kind: KindLevelUp, SessionID: h.sessionID, Frame: h.frame, Level: p.Level, GameSpeed: p.GameSpeed})

	case *events.GameOverPayload:
		stats := engine.FinalStats{
			SessionID:   p.SessionID,
			Score:       p.Score,
			Distance:    p.Distance,
			Level:       p.Level,
			CarsAvoided: p.CarsAvoided,
			Duration:    p.Duration,
		}
		h.send(&Frame{Kind: KindGameOver, SessionID: p.SessionID, Frame: h.frame, Stats: &stats})
	}
}

func (h *Hub) send(f *Frame) {
	if h.ClientCount() == 0 {
		return
	}
	data, err := EncodeFrame(f)
	if err != nil {
		log.Printf("telemetry: %v", err)
		return
	}
	h.Broadcast(data)
}
