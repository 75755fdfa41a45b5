// Package telemetry streams a running session to WebSocket spectators and
// serves the metrics registry over HTTP.
package telemetry

import (
	"github.com/pkg/errors"
	"github.com/vmihailenco/msgpack/v5"

	"github.com/lixenwraith/vi-racer/engine"
)

// Frame kinds on the spectator feed
const (
	KindSessionStart = "session_start"
	KindHUD          = "hud"
	KindLevelUp      = "level_up"
	KindGameOver     = "game_over"
)

// Frame is one msgpack message on the spectator feed
type Frame struct {
	Kind      string             `msgpack:"kind"`
	SessionID string             `msgpack:"session_id,omitempty"`
	Frame     int64              `msgpack:"frame"`
	HUD       *engine.HUD        `msgpack:"hud,omitempty"`
	Level     int                `msgpack:"level,omitempty"`
	GameSpeed float64            `msgpack:"game_speed,omitempty"`
	Stats     *engine.FinalStats `msgpack:"stats,omitempty"`
}

// EncodeFrame serialises f for the wire
func EncodeFrame(f *Frame) ([]byte, error) {
	data, err := msgpack.Marshal(f)
	if err != nil {
		return nil, errors.Wrapf(err, "encode %s frame", f.Kind)
	}
	return data, nil
}

// DecodeFrame parses a wire frame
func DecodeFrame(data []byte) (*Frame, error) {
	var f Frame
	if err := msgpack.Unmarshal(data, &f); err != nil {
		return nil, errors.Wrap(err, "decode frame")
	}
	return &f, nil
}
