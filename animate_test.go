package knob

import (
	"math"
	"testing"
)

func TestRotationAnimationKeyframes(t *testing.T) {
	a := RotationAnimation{From: 0, To: math.Pi}
	want := [3]float64{0, math.Pi / 2, math.Pi}
	if got := a.Keyframes(); got != want {
		t.Errorf("Keyframes() = %v, want %v", got, want)
	}
}

func TestRotationAnimationAt(t *testing.T) {
	a := RotationAnimation{From: -1, To: 3}

	tests := []struct {
		name string
		t    float64
		want float64
	}{
		{"start", 0, -1},
		{"clamped below", -0.5, -1},
		{"quarter", 0.25, 0},
		{"midpoint keyframe", 0.5, 1},
		{"three quarters", 0.75, 2},
		{"end", 1, 3},
		{"clamped above", 1.5, 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t2 *testing.T) {
			if got := a.At(tt.t); math.Abs(got-tt.want) > 1e-12 {
				t2.Errorf("At(%v) = %v, want %v", tt.t, got, tt.want)
			}
		})
	}
}

func TestRotationAnimationDirection(t *testing.T) {
	// A transition across the dial must sweep through the midpoint of
	// its endpoints, not take the short way around through the gap.
	a := RotationAnimation{From: -11 * math.Pi / 8, To: 3 * math.Pi / 8}
	mid := a.Mid()
	if math.Abs(mid-(-math.Pi/2)) > 1e-12 {
		t.Fatalf("Mid() = %v, want %v", mid, -math.Pi/2)
	}

	// Every sampled frame stays within [From, To]: the rotation never
	// leaves the span's continuous window.
	for _, f := range a.Frames(33) {
		if f < a.From-1e-12 || f > a.To+1e-12 {
			t.Fatalf("frame %v escapes [%v, %v]", f, a.From, a.To)
		}
	}
}

func TestRotationAnimationFrames(t *testing.T) {
	a := RotationAnimation{From: 0, To: 2}

	frames := a.Frames(5)
	if len(frames) != 5 {
		t.Fatalf("Frames(5) returned %d frames", len(frames))
	}
	if frames[0] != 0 || frames[4] != 2 {
		t.Errorf("Frames(5) endpoints = %v, %v; want 0, 2", frames[0], frames[4])
	}
	if math.Abs(frames[2]-1) > 1e-12 {
		t.Errorf("Frames(5) middle = %v, want 1", frames[2])
	}

	// Degenerate sample counts collapse to the final angle.
	for _, n := range []int{1, 0, -3} {
		got := a.Frames(n)
		if len(got) != 1 || got[0] != 2 {
			t.Errorf("Frames(%d) = %v, want [2]", n, got)
		}
	}
}
