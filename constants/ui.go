package constants

import "time"

// Lane Markers
const (
	LaneMarkerWidth  = 4
	LaneMarkerLength = 30
	LaneMarkerGap    = 30

	// LaneMarkerPeriod is the scroll phase wrap for roadOffset
	LaneMarkerPeriod = LaneMarkerLength + LaneMarkerGap
)

// Scene colours (hex, parsed by render)
const (
	ColorGrass        = "#2d5016"
	ColorRoad         = "#333333"
	ColorLaneMarker   = "#ffff00"
	ColorPlayerBody   = "#cc0000"
	ColorPlayerNose   = "#aa0000"
	ColorPlayerHood   = "#990000"
	ColorWindshield   = "#87ceeb"
	ColorSideWindow   = "#6495ed"
	ColorHeadlight    = "#ffffff"
	ColorHeadlightDim = "#ffff99"
	ColorTyre         = "#000000"
	ColorRim          = "#c0c0c0"
	ColorTailLight    = "#ff0000"
	ColorMirror       = "#333333"
	ColorCarWindow    = "#333333"
	ColorStripe       = "#ffffff"
	ColorStripeCore   = "#000000"
)

// TrafficPalette is the default set of traffic body colours
var TrafficPalette = []string{
	"#ff4444", "#44ff44", "#4444ff", "#ffff44",
	"#ff44ff", "#44ffff", "#ffffff", "#888888",
}

// TrafficDetailShade is the brightness shift (percent) for traffic body panels
const TrafficDetailShade = -40

// KeyHoldWindow keeps a key "held" after its last press; terminals only report repeats
const KeyHoldWindow = 120 * time.Millisecond

// HUD
const (
	HUDTitle = " VI-RACER "

	// MenuTitle heads the start menu
	MenuTitle = "V I - R A C E R"

	// TelemetryHUDEvery is the tick stride between HUD frames on the telemetry feed
	TelemetryHUDEvery = 6
)
