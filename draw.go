package knob

import (
	"fmt"
	"image"
	"math"

	"github.com/gogpu/gg"
)

// Draw strokes the knob into a gg drawing context: the arc track first,
// then the pointer tick at its current rotation. Both use round caps.
// The caller owns the context; Draw leaves its transform stack alone.
func (k *Knob) Draw(dc *gg.Context) error {
	if k.bounds.IsEmpty() {
		return fmt.Errorf("%w: bounds not set", ErrInvalidConfig)
	}

	dc.SetStroke(gg.DefaultStroke().WithWidth(k.lineWidth).WithCap(gg.LineCapRound))

	dc.SetStrokeBrush(gg.Solid(k.trackColor))
	replayPath(dc, k.renderer.TrackPath())
	if err := dc.Stroke(); err != nil {
		return fmt.Errorf("knob: stroke track: %w", err)
	}

	dc.SetStrokeBrush(gg.Solid(k.pointerColor))
	replayPath(dc, k.renderer.PointerPath().Transform(k.renderer.PointerTransform()))
	if err := dc.Stroke(); err != nil {
		return fmt.Errorf("knob: stroke pointer: %w", err)
	}
	return nil
}

// Render draws the knob into a fresh transparent context sized to its
// bounds and returns the resulting image.
func (k *Knob) Render() (image.Image, error) {
	if k.bounds.IsEmpty() {
		return nil, fmt.Errorf("%w: bounds not set", ErrInvalidConfig)
	}
	w := int(math.Ceil(k.bounds.MaxX()))
	h := int(math.Ceil(k.bounds.Y + k.bounds.H))
	dc := gg.NewContext(w, h)
	defer dc.Close()

	dc.Clear()
	if err := k.Draw(dc); err != nil {
		return nil, err
	}
	return dc.Image(), nil
}

// replayPath feeds a cached path's elements into the context's current
// path so the context's stroke machinery can consume it.
func replayPath(dc *gg.Context, p *gg.Path) {
	for _, elem := range p.Elements() {
		switch e := elem.(type) {
		case gg.MoveTo:
			dc.MoveTo(e.Point.X, e.Point.Y)
		case gg.LineTo:
			dc.LineTo(e.Point.X, e.Point.Y)
		case gg.QuadTo:
			dc.QuadraticTo(e.Control.X, e.Control.Y, e.Point.X, e.Point.Y)
		case gg.CubicTo:
			dc.CubicTo(e.Control1.X, e.Control1.Y, e.Control2.X, e.Control2.Y, e.Point.X, e.Point.Y)
		case gg.Close:
			dc.ClosePath()
		}
	}
}
