package knob

// RotationAnimation describes an animated pointer transition between two
// angles. The interpolation passes through an explicit midpoint keyframe,
// the average of the two angles, so the rotation always takes the
// intended direction instead of whatever shortest-path interpolation a
// host animation engine would pick.
type RotationAnimation struct {
	From, To float64
}

// Mid returns the explicit midpoint keyframe.
func (a RotationAnimation) Mid() float64 {
	return (a.From + a.To) / 2
}

// Keyframes returns the three angles the transition sweeps through.
func (a RotationAnimation) Keyframes() [3]float64 {
	return [3]float64{a.From, a.Mid(), a.To}
}

// At returns the pointer angle at normalized time t in [0, 1],
// interpolating linearly from From through Mid to To. Times outside
// [0, 1] clamp to the endpoints.
func (a RotationAnimation) At(t float64) float64 {
	switch {
	case t <= 0:
		return a.From
	case t >= 1:
		return a.To
	case t < 0.5:
		return a.From + (a.Mid()-a.From)*(t/0.5)
	default:
		return a.Mid() + (a.To-a.Mid())*((t-0.5)/0.5)
	}
}

// Frames samples the transition at n evenly spaced times, endpoints
// included. Hosts without an animation engine can replay the result with
// Renderer.SetPointerAngle, one frame per tick. n below 2 yields just
// the final angle.
func (a RotationAnimation) Frames(n int) []float64 {
	if n < 2 {
		return []float64{a.To}
	}
	frames := make([]float64, n)
	for i := range frames {
		frames[i] = a.At(float64(i) / float64(n-1))
	}
	return frames
}
