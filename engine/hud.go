package engine

// HUD is the per-tick readout
type HUD struct {
	Score        int `json:"score" msgpack:"score"`
	DisplaySpeed int `json:"speed" msgpack:"speed"`
	Level        int `json:"level" msgpack:"level"`
}

// HUDSink accepts one HUD update per tick
type HUDSink interface {
	PublishHUD(h HUD)
}

// MultiHUD fans a HUD update out to several sinks
type MultiHUD []HUDSink

// PublishHUD forwards h to every sink in order
func (m MultiHUD) PublishHUD(h HUD) {
	for _, s := range m {
		s.PublishHUD(h)
	}
}

type discardHUD struct{}

func (discardHUD) PublishHUD(HUD) {}
