package knob

import (
	"math"

	"github.com/gogpu/gg"
)

// Renderer computes the knob's vector geometry: the arc track, the
// pointer tick, and the rigid transform that places the pointer at the
// current angle.
//
// Path geometry depends only on bounds, span, line width and pointer
// length; it is cached and rebuilt when one of those changes. Pointer
// angle changes are cheap: they replace the transform and never touch
// the paths.
type Renderer struct {
	bounds        Rect
	span          AngleSpan
	lineWidth     float64
	pointerLength float64
	pointerAngle  float64

	track     *gg.Path  // arc from span.Start to span.End
	pointer   *gg.Path  // unrotated tick at angle 0
	transform gg.Matrix // rotation about the bounds center
}

func newRenderer(span AngleSpan, lineWidth, pointerLength float64) *Renderer {
	r := &Renderer{
		span:          span,
		lineWidth:     lineWidth,
		pointerLength: pointerLength,
		transform:     gg.Identity(),
	}
	r.rebuild()
	return r
}

// SetBounds updates the bounding rectangle and rebuilds both paths.
func (r *Renderer) SetBounds(b Rect) {
	r.bounds = b
	r.rebuild()
}

// SetSpan updates the angle span and rebuilds both paths.
func (r *Renderer) SetSpan(s AngleSpan) {
	r.span = s
	r.rebuild()
}

// SetLineWidth updates the track width and rebuilds both paths.
func (r *Renderer) SetLineWidth(w float64) {
	r.lineWidth = w
	r.rebuild()
}

// SetPointerLength updates the pointer tick length and rebuilds both paths.
func (r *Renderer) SetPointerLength(l float64) {
	r.pointerLength = l
	r.rebuild()
}

// SetPointerAngle moves the pointer. Only the rotation transform is
// replaced; the cached pointer geometry is untouched.
func (r *Renderer) SetPointerAngle(a float64) {
	r.pointerAngle = a
	r.transform = rotateAbout(a, r.bounds.Center())
}

// PointerAngle returns the angle the pointer currently points at.
func (r *Renderer) PointerAngle() float64 {
	return r.pointerAngle
}

// Radius returns the track radius: the largest circle that keeps both
// the stroked track and the pointer tick inside the bounds.
func (r *Renderer) Radius() float64 {
	return math.Min(r.bounds.W, r.bounds.H)/2 - math.Max(r.pointerLength, r.lineWidth/2)
}

// TrackPath returns the cached arc path for the full value range.
func (r *Renderer) TrackPath() *gg.Path {
	return r.track
}

// PointerPath returns the cached, unrotated pointer path. Apply
// PointerTransform to obtain the live pointer position.
func (r *Renderer) PointerPath() *gg.Path {
	return r.pointer
}

// PointerTransform returns the rigid rotation placing the pointer at the
// current pointer angle.
func (r *Renderer) PointerTransform() gg.Matrix {
	return r.transform
}

// rebuild regenerates both cached paths from the current geometry inputs
// and refreshes the transform for the new center.
func (r *Renderer) rebuild() {
	c := r.bounds.Center()
	radius := r.Radius()

	track := gg.NewPath()
	if radius > 0 {
		track.Arc(c.X, c.Y, radius, r.span.Start, r.span.End)
	}
	r.track = track

	// The tick is built pointing right (angle 0) and reused for every
	// pointer position via the rotation transform.
	pointer := gg.NewPath()
	if !r.bounds.IsEmpty() {
		pointer.MoveTo(r.bounds.MaxX()-r.pointerLength-r.lineWidth/2, r.bounds.MidY())
		pointer.LineTo(r.bounds.MaxX(), r.bounds.MidY())
	}
	r.pointer = pointer

	r.transform = rotateAbout(r.pointerAngle, c)

	Logger().Debug("knob: rebuilt paths",
		"radius", radius,
		"lineWidth", r.lineWidth, "pointerLength", r.pointerLength)
}

// rotateAbout builds a rotation by angle around a fixed point.
func rotateAbout(angle float64, p gg.Point) gg.Matrix {
	return gg.Translate(p.X, p.Y).
		Multiply(gg.Rotate(angle)).
		Multiply(gg.Translate(-p.X, -p.Y))
}
