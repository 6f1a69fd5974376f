package knob

import (
	"fmt"

	"github.com/gogpu/gg"
)

// Option configures a Knob during creation.
// Use functional options to customize construction:
//
//	// Classic defaults
//	k, err := knob.New()
//
//	// A volume dial
//	k, err := knob.New(
//	    knob.WithRange(knob.Range{Min: 0, Max: 11}),
//	    knob.WithContinuous(false),
//	)
type Option func(*config)

// config holds the construction-time state of a knob.
type config struct {
	rng           Range
	span          AngleSpan
	value         float64
	continuous    bool
	lineWidth     float64
	pointerLength float64
	trackColor    gg.RGBA
	pointerColor  gg.RGBA
}

// defaultConfig returns the classic dial defaults.
func defaultConfig() config {
	return config{
		rng:           DefaultRange,
		span:          DefaultAngleSpan,
		value:         0,
		continuous:    true,
		lineWidth:     2,
		pointerLength: 6,
		trackColor:    gg.RGB(0, 0.48, 1),
		pointerColor:  gg.RGB(0, 0.48, 1),
	}
}

func (c config) validate() error {
	if err := c.rng.validate(); err != nil {
		return err
	}
	if err := c.span.validate(); err != nil {
		return err
	}
	if c.lineWidth <= 0 {
		return fmt.Errorf("%w: line width %v must be positive", ErrInvalidConfig, c.lineWidth)
	}
	if c.pointerLength < 0 {
		return fmt.Errorf("%w: pointer length %v must not be negative", ErrInvalidConfig, c.pointerLength)
	}
	return nil
}

// WithRange sets the value domain.
func WithRange(r Range) Option {
	return func(c *config) {
		c.rng = r
	}
}

// WithAngleSpan sets the arc the track occupies.
func WithAngleSpan(s AngleSpan) Option {
	return func(c *config) {
		c.span = s
	}
}

// WithValue sets the initial value. It is clamped into the range.
func WithValue(v float64) Option {
	return func(c *config) {
		c.value = v
	}
}

// WithContinuous sets the notification cadence: every drag update when
// true (the default), once at gesture end when false.
func WithContinuous(continuous bool) Option {
	return func(c *config) {
		c.continuous = continuous
	}
}

// WithLineWidth sets the stroked width of the track.
func WithLineWidth(w float64) Option {
	return func(c *config) {
		c.lineWidth = w
	}
}

// WithPointerLength sets the length of the pointer tick.
func WithPointerLength(l float64) Option {
	return func(c *config) {
		c.pointerLength = l
	}
}

// WithTrackColor sets the track color.
func WithTrackColor(col gg.RGBA) Option {
	return func(c *config) {
		c.trackColor = col
	}
}

// WithPointerColor sets the pointer color.
func WithPointerColor(col gg.RGBA) Option {
	return func(c *config) {
		c.pointerColor = col
	}
}
