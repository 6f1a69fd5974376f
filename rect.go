package knob

import "github.com/gogpu/gg"

// Rect is an axis-aligned rectangle in the host's coordinate space.
// It describes the area the knob occupies; the track is inscribed in it.
type Rect struct {
	X, Y, W, H float64
}

// R is a convenience function to create a Rect.
func R(x, y, w, h float64) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Center returns the center point of the rectangle.
func (r Rect) Center() gg.Point {
	return gg.Pt(r.X+r.W/2, r.Y+r.H/2)
}

// MaxX returns the right edge of the rectangle.
func (r Rect) MaxX() float64 {
	return r.X + r.W
}

// MidY returns the vertical center of the rectangle.
func (r Rect) MidY() float64 {
	return r.Y + r.H/2
}

// IsEmpty returns true if the rectangle has no area.
func (r Rect) IsEmpty() bool {
	return r.W <= 0 || r.H <= 0
}
