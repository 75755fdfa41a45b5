package render

import "github.com/lixenwraith/vi-racer/constants"

// drawPlayer paints the sports car: body, spoiler, stripe, glass, lights, wheels
func (p *Painter) drawPlayer(s Surface, x, y, w, h float64) {
	c := &p.scene
	cx := x + w/2

	// Body with rounded ends
	s.FillRect(x, y+10, w, h-20, c.body)
	s.FillRect(x+5, y+h-15, w-10, 15, c.nose)
	s.FillRect(x+8, y+h-45, w-16, 25, c.hood)

	// Racing stripe
	s.FillRect(cx-3, y+5, 6, h-10, c.stripe)
	s.FillRect(cx-1, y+5, 2, h-10, c.stripeCore)

	// Glass
	s.FillRect(x+8, y+12, w-16, 20, c.windshield)
	s.FillRect(x+5, y+35, 12, 25, c.sideWindow)
	s.FillRect(x+w-17, y+35, 12, 25, c.sideWindow)

	// Headlights
	s.FillRect(x+8, y+h-12, 12, 8, c.headlight)
	s.FillRect(x+w-20, y+h-12, 12, 8, c.headlight)
	s.FillRect(x+10, y+h-10, 8, 4, c.headlightDim)
	s.FillRect(x+w-18, y+h-10, 8, 4, c.headlightDim)

	// Mirrors
	s.FillRect(x-2, y+25, 4, 6, c.mirror)
	s.FillRect(x+w-2, y+25, 4, 6, c.mirror)

	// Wheels and rims
	for _, wy := range [2]float64{y + h - 20, y + 15} {
		s.FillRect(x-3, wy, 8, 15, c.tyre)
		s.FillRect(x+w-5, wy, 8, 15, c.tyre)
		s.FillRect(x-1, wy+3, 4, 9, c.rim)
		s.FillRect(x+w-3, wy+3, 4, 9, c.rim)
	}

	// Tail lights and spoiler
	s.FillRect(x+5, y+5, 8, 6, c.tailLight)
	s.FillRect(x+w-13, y+5, 8, 6, c.tailLight)
	s.FillRect(x+10, y+2, w-20, 4, c.tyre)
	s.FillRect(x+15, y, w-30, 2, c.tyre)
}

// drawTraffic paints a traffic car: body, darker panels, windows
func (p *Painter) drawTraffic(s Surface, x, y, w, h float64, hex string) {
	s.FillRect(x, y, w, h, p.colors.Get(hex))

	panel := p.colors.Shade(hex, constants.TrafficDetailShade)
	s.FillRect(x+5, y+10, w-10, 20, panel)
	s.FillRect(x+5, y+h-30, w-10, 20, panel)

	s.FillRect(x+10, y+15, w-20, 15, p.scene.carWindow)
	s.FillRect(x+10, y+h-25, w-20, 15, p.scene.carWindow)
}
