package telemetry

import (
	"log"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/lixenwraith/vi-racer/constants"
)

// client is one connected spectator with its own read and write goroutines
type client struct {
	ws   *websocket.Conn
	hub  *Hub
	send chan []byte

	done      chan struct{}
	closeOnce sync.Once
}

func newClient(ws *websocket.Conn, hub *Hub) *client {
	return &client{
		ws:   ws,
		hub:  hub,
		send: make(chan []byte, constants.TelemetrySendBuffer),
		done: make(chan struct{}),
	}
}

// enqueue offers a frame without blocking; slow spectators lose frames
func (c *client) enqueue(data []byte) bool {
	select {
	case <-c.done:
		return false
	default:
	}

	select {
	case c.send <- data:
		return true
	default:
		return false
	}
}

// close is safe to call from either pump and from the hub.
// WriteControl may run concurrently with the write pump.
func (c *client) close() {
	c.closeOnce.Do(func() {
		close(c.done)
		c.ws.WriteControl(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""),
			time.Now().Add(constants.TelemetryWriteWait))
		c.ws.Close()
		c.hub.unregister(c)
	})
}

// writePump drains the send queue and keeps the connection alive with pings
func (c *client) writePump() {
	ticker := time.NewTicker(constants.TelemetryPingPeriod)
	defer ticker.Stop()
	defer c.close()

	for {
		select {
		case <-c.done:
			return

		case data := <-c.send:
			c.ws.SetWriteDeadline(time.Now().Add(constants.TelemetryWriteWait))
			if err := c.ws.WriteMessage(websocket.BinaryMessage, data); err != nil {
				return
			}

		case <-ticker.C:
			c.ws.SetWriteDeadline(time.Now().Add(constants.TelemetryWriteWait))
			if err := c.ws.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

// readPump discards inbound messages; it exists to process pongs and notice disconnects
func (c *client) readPump() {
	defer c.close()

	c.ws.SetReadLimit(constants.TelemetryReadLimit)
	c.ws.SetReadDeadline(time.Now().Add(constants.TelemetryPongWait))
	c.ws.SetPongHandler(func(string) error {
		c.ws.SetReadDeadline(time.Now().Add(constants.TelemetryPongWait))
		return nil
	})

	for {
		if _, _, err := c.ws.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				log.Printf("telemetry: read error from %s: %v", c.ws.RemoteAddr(), err)
			}
			return
		}
	}
}
