package knob

import (
	"fmt"

	"github.com/gogpu/gg"
)

// ValueChangedFunc observes value changes produced by gesture handling.
type ValueChangedFunc func(value float64)

// Knob is the rotary control facade. It owns the authoritative value and
// configuration, bridges touch samples to the angle mapper, keeps the
// Renderer in sync, and emits value-changed notifications.
//
// The pointer angle is derived state: it is always recomputed from the
// value and never independently settable.
type Knob struct {
	rng        Range
	span       AngleSpan
	value      float64
	continuous bool

	lineWidth     float64
	pointerLength float64
	trackColor    gg.RGBA
	pointerColor  gg.RGBA

	bounds   Rect
	renderer *Renderer
	drag     DragTracker

	callbacks []ValueChangedFunc
	anim      *RotationAnimation
}

// New creates a knob. Without options it uses the classic defaults: a
// [0, 1] range over a 315-degree arc with the gap at the bottom, line
// width 2, pointer length 6, continuous notifications.
func New(opts ...Option) (*Knob, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	k := &Knob{
		rng:           cfg.rng,
		span:          cfg.span,
		continuous:    cfg.continuous,
		lineWidth:     cfg.lineWidth,
		pointerLength: cfg.pointerLength,
		trackColor:    cfg.trackColor,
		pointerColor:  cfg.pointerColor,
	}
	k.renderer = newRenderer(cfg.span, cfg.lineWidth, cfg.pointerLength)
	k.value = k.rng.Clamp(cfg.value)
	k.renderer.SetPointerAngle(ValueToAngle(k.value, k.rng, k.span))
	return k, nil
}

// Value returns the current value. It is always within the range.
func (k *Knob) Value() float64 {
	return k.value
}

// SetValue sets the value programmatically. Out-of-range values are
// clamped, never reported. If animated is true, the pointer transition
// is captured as a RotationAnimation retrievable via PointerAnimation;
// the renderer still jumps straight to the final transform, hosts drive
// the intermediate frames themselves.
//
// Programmatic changes never fire value-changed notifications; only
// gesture-driven changes do.
func (k *Knob) SetValue(v float64, animated bool) {
	from := k.renderer.PointerAngle()
	k.applyValue(v)
	if animated {
		k.anim = &RotationAnimation{From: from, To: k.renderer.PointerAngle()}
	} else {
		k.anim = nil
	}
}

// applyValue clamps v, stores it, and re-derives the pointer transform.
func (k *Knob) applyValue(v float64) {
	k.value = k.rng.Clamp(v)
	k.renderer.SetPointerAngle(ValueToAngle(k.value, k.rng, k.span))
}

// PointerAnimation returns the transition captured by the last animated
// SetValue, if any. Gesture-driven updates clear it: they track the
// finger continuously and are never animated.
func (k *Knob) PointerAnimation() (RotationAnimation, bool) {
	if k.anim == nil {
		return RotationAnimation{}, false
	}
	return *k.anim, true
}

// HandleTouch consumes one touch sample from the host. Began and moved
// samples update the value from the touch angle; terminal samples end
// the drag. Notification cadence follows the continuous flag: every
// update in continuous mode, once at the terminal phase otherwise.
func (k *Knob) HandleTouch(ev TouchEvent) {
	wasDragging := k.drag.Dragging()

	angle, ok := k.drag.Track(ev)
	if ok {
		k.applyValue(AngleToValue(angle, k.rng, k.span))
		k.anim = nil
		if k.continuous {
			k.notify()
		}
		return
	}

	if ev.Phase.Terminal() && wasDragging && !k.continuous {
		k.notify()
	}
}

// Dragging returns whether a touch sequence is currently being tracked.
func (k *Knob) Dragging() bool {
	return k.drag.Dragging()
}

// OnValueChanged registers an observer for gesture-driven value changes.
// Observers are invoked synchronously, in registration order.
func (k *Knob) OnValueChanged(fn ValueChangedFunc) {
	if fn != nil {
		k.callbacks = append(k.callbacks, fn)
	}
}

func (k *Knob) notify() {
	for _, fn := range k.callbacks {
		fn(k.value)
	}
}

// SetBounds updates the rectangle the knob occupies. The renderer
// rebuilds its paths and the drag tracker re-centers.
func (k *Knob) SetBounds(b Rect) {
	k.bounds = b
	k.renderer.SetBounds(b)
	k.drag.SetCenter(b.Center())
}

// Bounds returns the rectangle the knob occupies.
func (k *Knob) Bounds() Rect {
	return k.bounds
}

// SetRange replaces the value domain. The current value is re-clamped
// into the new range and the pointer angle re-derived.
func (k *Knob) SetRange(r Range) error {
	if err := r.validate(); err != nil {
		return err
	}
	k.rng = r
	k.applyValue(k.value)
	return nil
}

// Range returns the value domain.
func (k *Knob) Range() Range {
	return k.rng
}

// SetAngleSpan replaces the track arc. Both renderer paths are rebuilt
// and the pointer angle re-derived from the current value.
func (k *Knob) SetAngleSpan(s AngleSpan) error {
	if err := s.validate(); err != nil {
		return err
	}
	k.span = s
	k.renderer.SetSpan(s)
	k.applyValue(k.value)
	return nil
}

// Span returns the track arc.
func (k *Knob) Span() AngleSpan {
	return k.span
}

// SetLineWidth sets the stroked width of the track. Both renderer paths
// are rebuilt: the track radius depends on it.
func (k *Knob) SetLineWidth(w float64) error {
	if w <= 0 {
		return fmt.Errorf("%w: line width %v must be positive", ErrInvalidConfig, w)
	}
	k.lineWidth = w
	k.renderer.SetLineWidth(w)
	return nil
}

// LineWidth returns the stroked width of the track.
func (k *Knob) LineWidth() float64 {
	return k.lineWidth
}

// SetPointerLength sets the length of the pointer tick. Both renderer
// paths are rebuilt: the track radius depends on it.
func (k *Knob) SetPointerLength(l float64) error {
	if l < 0 {
		return fmt.Errorf("%w: pointer length %v must not be negative", ErrInvalidConfig, l)
	}
	k.pointerLength = l
	k.renderer.SetPointerLength(l)
	return nil
}

// PointerLength returns the length of the pointer tick.
func (k *Knob) PointerLength() float64 {
	return k.pointerLength
}

// SetContinuous chooses the notification cadence: every drag update when
// true, once at the gesture's terminal phase when false.
func (k *Knob) SetContinuous(c bool) {
	k.continuous = c
}

// Continuous returns the notification cadence.
func (k *Knob) Continuous() bool {
	return k.continuous
}

// SetTrackColor sets the track color. Purely cosmetic.
func (k *Knob) SetTrackColor(c gg.RGBA) {
	k.trackColor = c
}

// TrackColor returns the track color.
func (k *Knob) TrackColor() gg.RGBA {
	return k.trackColor
}

// SetPointerColor sets the pointer color. Purely cosmetic.
func (k *Knob) SetPointerColor(c gg.RGBA) {
	k.pointerColor = c
}

// PointerColor returns the pointer color.
func (k *Knob) PointerColor() gg.RGBA {
	return k.pointerColor
}

// PointerAngle returns the derived pointer angle for the current value.
func (k *Knob) PointerAngle() float64 {
	return k.renderer.PointerAngle()
}

// Renderer exposes the knob's path geometry for hosts that consume
// vector paths directly instead of using Draw.
func (k *Knob) Renderer() *Renderer {
	return k.renderer
}
