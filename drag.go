package knob

import (
	"math"

	"github.com/gogpu/gg"
)

// Phase is the stage of a touch sequence a sample belongs to.
type Phase int

const (
	// PhaseBegan starts a drag sequence.
	PhaseBegan Phase = iota
	// PhaseMoved continues an active drag.
	PhaseMoved
	// PhaseEnded terminates a drag normally.
	PhaseEnded
	// PhaseCancelled terminates a drag without completing it, e.g. when
	// the host reclaims the touch.
	PhaseCancelled
)

// Terminal returns true for phases that end a drag sequence.
func (p Phase) Terminal() bool {
	return p == PhaseEnded || p == PhaseCancelled
}

// String returns the phase name.
func (p Phase) String() string {
	switch p {
	case PhaseBegan:
		return "began"
	case PhaseMoved:
		return "moved"
	case PhaseEnded:
		return "ended"
	case PhaseCancelled:
		return "cancelled"
	default:
		return "unknown"
	}
}

// TouchEvent is a single touch sample delivered by the host: a point in
// the host's coordinate space and the phase it belongs to.
type TouchEvent struct {
	Phase Phase
	Point gg.Point
}

// DragTracker interprets raw touch samples as rotation around a center
// point. It is composed into the Knob instead of inheriting from a host
// gesture recognizer: the host feeds it phased samples, it exposes only
// the derived angle.
type DragTracker struct {
	center   gg.Point
	dragging bool
	angle    float64
}

// SetCenter sets the rotation center used to derive angles.
func (d *DragTracker) SetCenter(p gg.Point) {
	d.center = p
}

// Dragging returns whether a drag sequence is in progress.
func (d *DragTracker) Dragging() bool {
	return d.dragging
}

// Angle returns the last derived touch angle, in atan2's (-π, π] range.
func (d *DragTracker) Angle() float64 {
	return d.angle
}

// Track consumes one touch sample. It reports the touch angle relative
// to the center and whether the sample carries a usable position
// (began and moved samples do; terminal samples only end the sequence).
func (d *DragTracker) Track(ev TouchEvent) (angle float64, ok bool) {
	switch ev.Phase {
	case PhaseBegan:
		d.dragging = true
	case PhaseMoved:
		if !d.dragging {
			// Moves without a preceding began are tolerated: hosts
			// that grab an in-flight touch deliver them.
			d.dragging = true
		}
	case PhaseEnded, PhaseCancelled:
		d.dragging = false
		return 0, false
	}

	d.angle = math.Atan2(ev.Point.Y-d.center.Y, ev.Point.X-d.center.X)
	Logger().Debug("knob: drag sample", "phase", ev.Phase.String(), "angle", d.angle)
	return d.angle, true
}
