// Package physics provides the collision geometry shared by every vehicle.
package physics

// Bounds is an axis-aligned box in canvas coordinates, top-left origin
type Bounds struct {
	X, Y          float64
	Width, Height float64
}

// Right returns the x of the right edge
func (b Bounds) Right() float64 {
	return b.X + b.Width
}

// Bottom returns the y of the bottom edge
func (b Bounds) Bottom() float64 {
	return b.Y + b.Height
}

// CenterX returns the horizontal centre
func (b Bounds) CenterX() float64 {
	return b.X + b.Width/2
}

// Overlaps reports whether two boxes intersect.
// Inequalities are strict: boxes that only share an edge do not overlap.
func Overlaps(a, b Bounds) bool {
	return a.X < b.Right() &&
		a.Right() > b.X &&
		a.Y < b.Bottom() &&
		a.Bottom() > b.Y
}
