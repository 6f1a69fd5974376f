// Package knob provides a rotary dial control for Go applications.
//
// # Overview
//
// A Knob is a circular control the user drags to select a numeric value
// within a range. It is rendered as an arc track plus a rotating pointer
// indicator. The package is host-agnostic: it consumes touch samples and
// bounds rectangles, and produces vector paths ([gg.Path]), rigid
// transforms ([gg.Matrix]) and value-changed notifications. Pixel output
// goes through github.com/gogpu/gg.
//
// # Quick Start
//
//	import "github.com/gogpu/knob"
//
//	k, err := knob.New(knob.WithRange(knob.Range{Min: 0, Max: 100}))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	k.SetBounds(knob.R(0, 0, 200, 200))
//	k.SetValue(42, false)
//
//	// Draw into a gg context.
//	dc := gg.NewContext(200, 200)
//	k.Draw(dc)
//	dc.SavePNG("knob.png")
//
// Touch input is delivered as phased samples:
//
//	k.OnValueChanged(func(v float64) { fmt.Println("value:", v) })
//	k.HandleTouch(knob.TouchEvent{Phase: knob.PhaseBegan, Point: gg.Pt(180, 100)})
//	k.HandleTouch(knob.TouchEvent{Phase: knob.PhaseMoved, Point: gg.Pt(100, 180)})
//	k.HandleTouch(knob.TouchEvent{Phase: knob.PhaseEnded, Point: gg.Pt(100, 180)})
//
// # Architecture
//
// The package is organized into three collaborating pieces:
//   - Mapper: pure angle/value conversion with wraparound disambiguation
//   - Renderer: cached track and pointer path geometry plus a rotation transform
//   - Knob: the control facade owning value, configuration and notifications
//
// # Coordinate System
//
// Uses gg's coordinate conventions:
//   - Origin (0,0) at top-left
//   - X increases right
//   - Y increases down
//   - Angles in radians, 0 is right; a positive sweep is visually clockwise
//
// # Concurrency
//
// A Knob is a single-threaded, event-driven object. All mutations happen
// synchronously in response to a method call or a touch sample; nothing
// blocks or spawns goroutines. Use one Knob per UI event loop.
package knob

// Version information
const (
	// Version is the current version of the library
	Version = "0.2.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 2

	// VersionPatch is the patch version
	VersionPatch = 0
)
