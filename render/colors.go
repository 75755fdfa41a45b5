package render

import (
	"sync"

	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/lixenwraith/vi-racer/constants"
)

// RGB stores explicit 8-bit colour channels
type RGB struct {
	R, G, B uint8
}

// RGBBlack is the letterbox colour outside the canvas
var RGBBlack = RGB{0, 0, 0}

// FromColorful converts a colorful colour, clamping out-of-gamut channels
func FromColorful(c colorful.Color) RGB {
	r, g, b := c.Clamped().RGB255()
	return RGB{r, g, b}
}

// Tcell converts to a tcell true colour
func (c RGB) Tcell() tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

// Text and overlay colours
var (
	RgbHUDBg       = tcell.NewRGBColor(20, 20, 28)
	RgbHUDTitle    = tcell.NewRGBColor(255, 204, 0)
	RgbHUDText     = tcell.NewRGBColor(230, 230, 230)
	RgbHUDStatus   = tcell.NewRGBColor(140, 140, 160)
	RgbOverlayBg   = tcell.NewRGBColor(10, 10, 18)
	RgbOverlayText = tcell.NewRGBColor(255, 255, 255)
	RgbOverlayHint = tcell.NewRGBColor(160, 160, 180)
	RgbGameOver    = tcell.NewRGBColor(255, 68, 68)
)

// fallbackColor marks hex strings that failed to parse; config validation rejects those earlier
var fallbackColor = colorful.Color{R: 1, G: 0, B: 1}

// ColorCache parses hex colours once and keeps them for the process lifetime
type ColorCache struct {
	mu     sync.RWMutex
	colors map[string]colorful.Color
	shades map[shadeKey]colorful.Color
}

type shadeKey struct {
	hex     string
	percent int
}

// NewColorCache creates an empty cache
func NewColorCache() *ColorCache {
	return &ColorCache{
		colors: make(map[string]colorful.Color),
		shades: make(map[shadeKey]colorful.Color),
	}
}

// Get returns the parsed colour for a #rrggbb string
func (cc *ColorCache) Get(hex string) colorful.Color {
	cc.mu.RLock()
	c, ok := cc.colors[hex]
	cc.mu.RUnlock()
	if ok {
		return c
	}

	c, err := colorful.Hex(hex)
	if err != nil {
		c = fallbackColor
	}

	cc.mu.Lock()
	cc.colors[hex] = c
	cc.mu.Unlock()
	return c
}

// Shade returns hex shifted in brightness by percent of full scale, cached
func (cc *ColorCache) Shade(hex string, percent int) colorful.Color {
	key := shadeKey{hex, percent}

	cc.mu.RLock()
	c, ok := cc.shades[key]
	cc.mu.RUnlock()
	if ok {
		return c
	}

	c = AdjustBrightness(cc.Get(hex), percent)

	cc.mu.Lock()
	cc.shades[key] = c
	cc.mu.Unlock()
	return c
}

// AdjustBrightness adds percent/100 of full scale to every channel, clamped to [0,1]
func AdjustBrightness(c colorful.Color, percent int) colorful.Color {
	d := float64(percent) / 100
	return colorful.Color{R: c.R + d, G: c.G + d, B: c.B + d}.Clamped()
}

// Scene colours, resolved once
type sceneColors struct {
	grass         colorful.Color
	road          colorful.Color
	marker        colorful.Color
	body          colorful.Color
	nose          colorful.Color
	hood          colorful.Color
	windshield    colorful.Color
	sideWindow    colorful.Color
	headlight     colorful.Color
	headlightDim  colorful.Color
	tyre          colorful.Color
	rim           colorful.Color
	tailLight     colorful.Color
	mirror        colorful.Color
	carWindow     colorful.Color
	stripe        colorful.Color
	stripeCore    colorful.Color
}

func resolveSceneColors(cc *ColorCache) sceneColors {
	return sceneColors{
		grass:        cc.Get(constants.ColorGrass),
		road:         cc.Get(constants.ColorRoad),
		marker:       cc.Get(constants.ColorLaneMarker),
		body:         cc.Get(constants.ColorPlayerBody),
		nose:         cc.Get(constants.ColorPlayerNose),
		hood:         cc.Get(constants.ColorPlayerHood),
		windshield:   cc.Get(constants.ColorWindshield),
		sideWindow:   cc.Get(constants.ColorSideWindow),
		headlight:    cc.Get(constants.ColorHeadlight),
		headlightDim: cc.Get(constants.ColorHeadlightDim),
		tyre:         cc.Get(constants.ColorTyre),
		rim:          cc.Get(constants.ColorRim),
		tailLight:    cc.Get(constants.ColorTailLight),
		mirror:       cc.Get(constants.ColorMirror),
		carWindow:    cc.Get(constants.ColorCarWindow),
		stripe:       cc.Get(constants.ColorStripe),
		stripeCore:   cc.Get(constants.ColorStripeCore),
	}
}
