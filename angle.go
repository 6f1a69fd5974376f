package knob

import (
	"fmt"
	"math"
)

// Range is the valid value domain of a knob.
type Range struct {
	Min, Max float64
}

// Width returns the size of the value domain.
func (r Range) Width() float64 {
	return r.Max - r.Min
}

// Clamp restricts v to [Min, Max].
func (r Range) Clamp(v float64) float64 {
	if v < r.Min {
		return r.Min
	}
	if v > r.Max {
		return r.Max
	}
	return v
}

func (r Range) validate() error {
	if math.IsNaN(r.Min) || math.IsNaN(r.Max) || !(r.Min < r.Max) {
		return fmt.Errorf("%w: range [%v, %v] must satisfy min < max", ErrInvalidConfig, r.Min, r.Max)
	}
	return nil
}

// AngleSpan is the arc the track occupies, in radians. End must be
// reachable from Start by a positive sweep of less than a full turn.
// The unreachable region between End and Start (going the short way)
// is the gap; its midpoint, one turn past the span's middle, is the
// wraparound pivot used to disambiguate raw touch angles.
type AngleSpan struct {
	Start, End float64
}

// Width returns the swept angle of the span.
func (s AngleSpan) Width() float64 {
	return s.End - s.Start
}

// gapMid returns the angle at the middle of the gap opposite the arc.
// Raw angles beyond it belong to the other interpretation branch.
func (s AngleSpan) gapMid() float64 {
	return (2*math.Pi+s.Start-s.End)/2 + s.End
}

// clamp restricts an angle to [Start, End].
func (s AngleSpan) clamp(a float64) float64 {
	if a < s.Start {
		return s.Start
	}
	if a > s.End {
		return s.End
	}
	return a
}

// Contains reports whether a raw atan2 angle, in (-π, π], falls on the
// arc rather than in the gap. Uses the same wraparound disambiguation as
// AngleToValue.
func (s AngleSpan) Contains(raw float64) bool {
	mid := s.gapMid()
	if raw > mid {
		raw -= 2 * math.Pi
	} else if raw < mid-2*math.Pi {
		raw += 2 * math.Pi
	}
	return raw >= s.Start && raw <= s.End
}

func (s AngleSpan) validate() error {
	w := s.Width()
	if math.IsNaN(w) || w <= 0 || w >= 2*math.Pi {
		return fmt.Errorf("%w: angle span [%v, %v] must sweep within (0, 2π)", ErrInvalidConfig, s.Start, s.End)
	}
	return nil
}

// Classic dial defaults: a [0, 1] range over a 315-degree arc with the
// gap centered at the bottom of the dial.
var (
	// DefaultRange is the value domain a new knob starts with.
	DefaultRange = Range{Min: 0, Max: 1}

	// DefaultAngleSpan is the arc a new knob's track occupies.
	DefaultAngleSpan = AngleSpan{Start: -11 * math.Pi / 8, End: 3 * math.Pi / 8}
)

// ValueToAngle maps a value to its pointer angle by linear interpolation
// into the span. The value is assumed to be already clamped to r.
func ValueToAngle(v float64, r Range, s AngleSpan) float64 {
	return (v-r.Min)/r.Width()*s.Width() + s.Start
}

// AngleToValue maps a raw touch angle, as produced by math.Atan2 in
// (-π, π], to a value in r.
//
// Raw angles wrap at ±π while the span may cross that seam, so the raw
// angle is first shifted into the continuous range adjacent to
// [Start, End]: anything past the gap midpoint belongs one turn down.
// Angles that land inside the gap after shifting clamp to the nearer
// endpoint. Each call recomputes from the absolute raw angle, so no
// wraparound error accumulates across a drag.
func AngleToValue(raw float64, r Range, s AngleSpan) float64 {
	mid := s.gapMid()
	if raw > mid {
		raw -= 2 * math.Pi
	} else if raw < mid-2*math.Pi {
		raw += 2 * math.Pi
	}
	a := s.clamp(raw)
	return (a-s.Start)/s.Width()*r.Width() + r.Min
}
