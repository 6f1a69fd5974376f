package knob

import (
	"math"
	"testing"

	"github.com/gogpu/gg"
	"github.com/stretchr/testify/require"
)

func TestNewDefaults(t *testing.T) {
	k, err := New()
	require.NoError(t, err)

	require.Equal(t, DefaultRange, k.Range())
	require.Equal(t, DefaultAngleSpan, k.Span())
	require.Equal(t, 0.0, k.Value())
	require.True(t, k.Continuous())
	require.Equal(t, 2.0, k.LineWidth())
	require.Equal(t, 6.0, k.PointerLength())
	require.InDelta(t, DefaultAngleSpan.Start, k.PointerAngle(), 1e-12)
}

func TestNewInvalidConfig(t *testing.T) {
	tests := []struct {
		name string
		opts []Option
	}{
		{"zero-width range", []Option{WithRange(Range{Min: 1, Max: 1})}},
		{"inverted range", []Option{WithRange(Range{Min: 2, Max: 1})}},
		{"zero-width span", []Option{WithAngleSpan(AngleSpan{Start: 1, End: 1})}},
		{"full-turn span", []Option{WithAngleSpan(AngleSpan{Start: 0, End: 2 * math.Pi})}},
		{"zero line width", []Option{WithLineWidth(0)}},
		{"negative pointer length", []Option{WithPointerLength(-1)}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.opts...)
			require.ErrorIs(t, err, ErrInvalidConfig)
		})
	}
}

func TestSetValueClamps(t *testing.T) {
	k, err := New(WithRange(Range{Min: -10, Max: 10}))
	require.NoError(t, err)

	tests := []struct {
		in, want float64
	}{
		{-100, -10},
		{-10, -10},
		{0, 0},
		{10, 10},
		{100, 10},
	}
	for _, tt := range tests {
		k.SetValue(tt.in, false)
		require.Equal(t, tt.want, k.Value(), "SetValue(%v)", tt.in)
	}
}

func TestSetValueUpdatesPointerAngle(t *testing.T) {
	k, err := New()
	require.NoError(t, err)
	k.SetBounds(R(0, 0, 100, 100))

	k.SetValue(1, false)
	require.InDelta(t, DefaultAngleSpan.End, k.PointerAngle(), 1e-12)

	k.SetValue(0.5, false)
	want := ValueToAngle(0.5, k.Range(), k.Span())
	require.InDelta(t, want, k.PointerAngle(), 1e-12)
}

func TestProgrammaticSetValueDoesNotNotify(t *testing.T) {
	k, err := New()
	require.NoError(t, err)

	var fired int
	k.OnValueChanged(func(float64) { fired++ })

	k.SetValue(0.7, false)
	k.SetValue(0.2, true)
	require.Zero(t, fired)
}

func TestContinuousNotifiesPerUpdate(t *testing.T) {
	k, err := New(WithContinuous(true))
	require.NoError(t, err)
	k.SetBounds(R(0, 0, 200, 200))

	var values []float64
	k.OnValueChanged(func(v float64) { values = append(values, v) })

	// Three intermediate drag updates fire three notifications.
	k.HandleTouch(TouchEvent{Phase: PhaseMoved, Point: gg.Pt(200, 100)})
	k.HandleTouch(TouchEvent{Phase: PhaseMoved, Point: gg.Pt(100, 200)})
	k.HandleTouch(TouchEvent{Phase: PhaseMoved, Point: gg.Pt(0, 100)})
	require.Len(t, values, 3)

	// The terminal phase adds nothing in continuous mode.
	k.HandleTouch(TouchEvent{Phase: PhaseEnded})
	require.Len(t, values, 3)
}

func TestNonContinuousNotifiesOnceAtGestureEnd(t *testing.T) {
	for _, terminal := range []Phase{PhaseEnded, PhaseCancelled} {
		t.Run(terminal.String(), func(t *testing.T) {
			k, err := New(WithContinuous(false))
			require.NoError(t, err)
			k.SetBounds(R(0, 0, 200, 200))

			var values []float64
			k.OnValueChanged(func(v float64) { values = append(values, v) })

			k.HandleTouch(TouchEvent{Phase: PhaseBegan, Point: gg.Pt(200, 100)})
			k.HandleTouch(TouchEvent{Phase: PhaseMoved, Point: gg.Pt(100, 200)})
			k.HandleTouch(TouchEvent{Phase: PhaseMoved, Point: gg.Pt(0, 100)})
			require.Empty(t, values, "no notification before the terminal phase")

			k.HandleTouch(TouchEvent{Phase: terminal})
			require.Len(t, values, 1)
			require.Equal(t, k.Value(), values[0])
		})
	}
}

func TestTerminalWithoutDragDoesNotNotify(t *testing.T) {
	k, err := New(WithContinuous(false))
	require.NoError(t, err)
	k.SetBounds(R(0, 0, 200, 200))

	var fired int
	k.OnValueChanged(func(float64) { fired++ })

	k.HandleTouch(TouchEvent{Phase: PhaseEnded})
	require.Zero(t, fired)
}

func TestDragDerivesValueFromTouchAngle(t *testing.T) {
	k, err := New()
	require.NoError(t, err)
	k.SetBounds(R(0, 0, 200, 200))

	// Touch at the right edge is angle 0; with the default span that is
	// 11/14 of the way around the arc.
	k.HandleTouch(TouchEvent{Phase: PhaseBegan, Point: gg.Pt(200, 100)})
	require.InDelta(t, 11.0/14.0, k.Value(), 1e-12)

	// Touch at the bottom edge falls in the gap, on the max side of the
	// pivot going clockwise from the end of the track.
	k.HandleTouch(TouchEvent{Phase: PhaseMoved, Point: gg.Pt(140, 199)})
	require.InDelta(t, 1.0, k.Value(), 1e-2)

	require.True(t, k.Dragging())
	k.HandleTouch(TouchEvent{Phase: PhaseEnded})
	require.False(t, k.Dragging())
}

func TestSetRangeReclampsValue(t *testing.T) {
	k, err := New(WithRange(Range{Min: 0, Max: 100}), WithValue(80))
	require.NoError(t, err)
	require.Equal(t, 80.0, k.Value())

	require.NoError(t, k.SetRange(Range{Min: 0, Max: 50}))
	require.Equal(t, 50.0, k.Value())
	require.InDelta(t, DefaultAngleSpan.End, k.PointerAngle(), 1e-12)

	require.ErrorIs(t, k.SetRange(Range{Min: 5, Max: 5}), ErrInvalidConfig)
	require.Equal(t, Range{Min: 0, Max: 50}, k.Range(), "failed SetRange must not mutate")
}

func TestSetAngleSpanRederivesPointer(t *testing.T) {
	k, err := New(WithValue(0.5))
	require.NoError(t, err)

	s := AngleSpan{Start: 0, End: math.Pi}
	require.NoError(t, k.SetAngleSpan(s))
	require.InDelta(t, math.Pi/2, k.PointerAngle(), 1e-12)

	require.ErrorIs(t, k.SetAngleSpan(AngleSpan{Start: 1, End: 1}), ErrInvalidConfig)
	require.Equal(t, s, k.Span())
}

func TestAppearanceSetters(t *testing.T) {
	k, err := New()
	require.NoError(t, err)

	require.NoError(t, k.SetLineWidth(8))
	require.Equal(t, 8.0, k.LineWidth())
	require.ErrorIs(t, k.SetLineWidth(0), ErrInvalidConfig)
	require.Equal(t, 8.0, k.LineWidth())

	require.NoError(t, k.SetPointerLength(12))
	require.Equal(t, 12.0, k.PointerLength())
	require.ErrorIs(t, k.SetPointerLength(-2), ErrInvalidConfig)

	k.SetTrackColor(gg.Red)
	k.SetPointerColor(gg.White)
	require.Equal(t, gg.Red, k.TrackColor())
	require.Equal(t, gg.White, k.PointerColor())
}

func TestPointerAnimation(t *testing.T) {
	k, err := New()
	require.NoError(t, err)
	k.SetBounds(R(0, 0, 100, 100))

	_, ok := k.PointerAnimation()
	require.False(t, ok, "no animation before an animated SetValue")

	from := k.PointerAngle()
	k.SetValue(1, true)
	anim, ok := k.PointerAnimation()
	require.True(t, ok)
	require.Equal(t, from, anim.From)
	require.Equal(t, k.PointerAngle(), anim.To)

	// Gesture-driven changes track the finger and clear the animation.
	k.HandleTouch(TouchEvent{Phase: PhaseBegan, Point: gg.Pt(100, 50)})
	_, ok = k.PointerAnimation()
	require.False(t, ok)

	// A plain SetValue clears it too.
	k.SetValue(0.3, true)
	k.SetValue(0.4, false)
	_, ok = k.PointerAnimation()
	require.False(t, ok)
}

func TestMultipleObservers(t *testing.T) {
	k, err := New()
	require.NoError(t, err)
	k.SetBounds(R(0, 0, 100, 100))

	var a, b int
	k.OnValueChanged(func(float64) { a++ })
	k.OnValueChanged(func(float64) { b++ })
	k.OnValueChanged(nil) // ignored

	k.HandleTouch(TouchEvent{Phase: PhaseBegan, Point: gg.Pt(100, 50)})
	require.Equal(t, 1, a)
	require.Equal(t, 1, b)
}
