// Package render draws the road scene onto a logical canvas and rasterises it
// into a terminal with half-block cells, plus the HUD and menu overlays.
package render

import (
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// Surface is a fixed-size drawing target in canvas coordinates
type Surface interface {
	// Size returns the logical canvas dimensions
	Size() (width, height float64)
	// Clear fills the whole canvas
	Clear(c colorful.Color)
	// FillRect fills an axis-aligned rectangle; parts outside the canvas are clipped
	FillRect(x, y, w, h float64, c colorful.Color)
}

// PixelBuffer rasterises a logical canvas onto a pixel grid.
// The canvas keeps its aspect ratio and is centred; pixels outside it stay black.
type PixelBuffer struct {
	canvasW, canvasH float64

	width, height int
	scale         float64
	offX, offY    int
	canvasPxW     int
	canvasPxH     int

	pix []RGB
}

// NewPixelBuffer creates a buffer for a canvas of the given logical size
func NewPixelBuffer(canvasW, canvasH float64, width, height int) *PixelBuffer {
	pb := &PixelBuffer{canvasW: canvasW, canvasH: canvasH}
	pb.Resize(width, height)
	return pb
}

// Resize changes the pixel grid, reallocating only if capacity is insufficient
func (pb *PixelBuffer) Resize(width, height int) {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}

	size := width * height
	if cap(pb.pix) < size {
		pb.pix = make([]RGB, size)
	} else {
		pb.pix = pb.pix[:size]
	}
	pb.width = width
	pb.height = height

	pb.scale = math.Min(float64(width)/pb.canvasW, float64(height)/pb.canvasH)
	pb.canvasPxW = int(math.Floor(pb.canvasW * pb.scale))
	pb.canvasPxH = int(math.Floor(pb.canvasH * pb.scale))
	pb.offX = (width - pb.canvasPxW) / 2
	pb.offY = (height - pb.canvasPxH) / 2

	for i := range pb.pix {
		pb.pix[i] = RGBBlack
	}
}

// Size returns the logical canvas dimensions
func (pb *PixelBuffer) Size() (float64, float64) {
	return pb.canvasW, pb.canvasH
}

// PixelSize returns the pixel grid dimensions
func (pb *PixelBuffer) PixelSize() (int, int) {
	return pb.width, pb.height
}

// At returns the pixel at (px, py), black when out of range
func (pb *PixelBuffer) At(px, py int) RGB {
	if px < 0 || px >= pb.width || py < 0 || py >= pb.height {
		return RGBBlack
	}
	return pb.pix[py*pb.width+px]
}

// Clear fills the canvas area
func (pb *PixelBuffer) Clear(c colorful.Color) {
	pb.fillPixels(0, 0, pb.canvasPxW, pb.canvasPxH, FromColorful(c))
}

// FillRect fills every pixel whose centre lies inside the rectangle.
// Rectangles thinner than a pixel still cover the pixel under their centre.
func (pb *PixelBuffer) FillRect(x, y, w, h float64, c colorful.Color) {
	if w <= 0 || h <= 0 || pb.scale == 0 {
		return
	}

	x0, x1 := pb.span(x, w)
	y0, y1 := pb.span(y, h)
	pb.fillPixels(x0, y0, x1, y1, FromColorful(c))
}

// span maps a logical interval to a half-open pixel range in canvas pixel space
func (pb *PixelBuffer) span(start, length float64) (int, int) {
	p0 := int(math.Ceil(start*pb.scale - 0.5))
	p1 := int(math.Ceil((start+length)*pb.scale - 0.5))
	if p1 <= p0 {
		p0 = int(math.Floor((start + length/2) * pb.scale))
		p1 = p0 + 1
	}
	return p0, p1
}

// fillPixels fills [x0,x1) x [y0,y1) in canvas pixel space, clipped to the canvas
func (pb *PixelBuffer) fillPixels(x0, y0, x1, y1 int, c RGB) {
	x0, x1 = max(x0, 0), min(x1, pb.canvasPxW)
	y0, y1 = max(y0, 0), min(y1, pb.canvasPxH)

	for py := y0; py < y1; py++ {
		row := (py+pb.offY)*pb.width + pb.offX
		for px := x0; px < x1; px++ {
			pb.pix[row+px] = c
		}
	}
}
