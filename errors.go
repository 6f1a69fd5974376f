package knob

import "errors"

// ErrInvalidConfig is returned when a knob is configured with a degenerate
// range, angle span or appearance value. Out-of-range *values* are never
// errors (they are clamped); configuration that would make the mapping
// undefined is.
//
// Use errors.Is to test for it:
//
//	if errors.Is(err, knob.ErrInvalidConfig) { ... }
var ErrInvalidConfig = errors.New("knob: invalid configuration")
