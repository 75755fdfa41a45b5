// vi-racer-watch follows a running vi-racer through its telemetry feed and
// prints one line per frame.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"net/url"
	"os"
	"os/signal"
	"syscall"

	"github.com/gorilla/websocket"
	"github.com/pkg/errors"

	"github.com/lixenwraith/vi-racer/telemetry"
)

var addr = flag.String("addr", "localhost:8080", "Telemetry address of a running vi-racer (its -telemetry flag)")

func main() {
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := watch(ctx, *addr, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "vi-racer-watch: %v\n", err)
		os.Exit(1)
	}
}

// watch prints frames until ctx ends or the game closes the feed
func watch(ctx context.Context, addr string, out io.Writer) error {
	u := url.URL{Scheme: "ws", Host: addr, Path: "/ws"}
	conn, _, err := websocket.DefaultDialer.DialContext(ctx, u.String(), nil)
	if err != nil {
		return errors.Wrapf(err, "dial %s", u.String())
	}
	defer conn.Close()

	// Unblocks ReadMessage on cancellation
	release := context.AfterFunc(ctx, func() { conn.Close() })
	defer release()

	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			if ctx.Err() != nil || websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				return nil
			}
			return errors.Wrap(err, "read frame")
		}

		f, err := telemetry.DecodeFrame(data)
		if err != nil {
			log.Printf("skipping frame: %v", err)
			continue
		}
		fmt.Fprintln(out, describe(f))
	}
}

// describe renders a frame as one line
func describe(f *telemetry.Frame) string {
	switch f.Kind {
	case telemetry.KindSessionStart:
		return fmt.Sprintf("session %s started at speed %.1f", f.SessionID, f.GameSpeed)
	case telemetry.KindHUD:
		if f.HUD == nil {
			break
		}
		return fmt.Sprintf("#%d score %d  %d km/h  level %d", f.Frame, f.HUD.Score, f.HUD.DisplaySpeed, f.HUD.Level)
	case telemetry.KindLevelUp:
		return fmt.Sprintf("#%d level %d  speed %.1f", f.Frame, f.Level, f.GameSpeed)
	case telemetry.KindGameOver:
		if f.Stats == nil {
			break
		}
		s := f.Stats
		return fmt.Sprintf("session %s over: score %d  distance %dm  level %d  avoided %d  time %s",
			s.SessionID, s.Score, s.Distance, s.Level, s.CarsAvoided, s.Duration)
	}
	return fmt.Sprintf("#%d %s", f.Frame, f.Kind)
}
