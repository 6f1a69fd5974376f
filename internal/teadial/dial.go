// Package teadial renders a knob as terminal block art and feeds
// terminal mouse and key events into it. It is the bubbletea front end
// used by cmd/knobdemo.
package teadial

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/gogpu/gg"
	"github.com/gogpu/knob"
)

// Terminal cells are roughly twice as tall as wide; the dial maps one
// cell column to one logical unit and one cell row to two, so the dial
// looks circular on screen.
const cellAspect = 2.0

// KeyMap holds the dial's key bindings.
type KeyMap struct {
	Increase key.Binding
	Decrease key.Binding
	Reset    key.Binding
}

// DefaultKeyMap returns the standard dial bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Increase: key.NewBinding(
			key.WithKeys("right", "up", "k", "l"),
			key.WithHelp("→/↑", "increase"),
		),
		Decrease: key.NewBinding(
			key.WithKeys("left", "down", "j", "h"),
			key.WithHelp("←/↓", "decrease"),
		),
		Reset: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "reset"),
		),
	}
}

// Dial is a bubbletea component driving a knob. Mouse press/drag/release
// events become touch samples; arrow keys nudge the value.
type Dial struct {
	Knob *knob.Knob
	Keys KeyMap

	width  int // cells
	height int // cells

	trackStyle   lipgloss.Style
	pointerStyle lipgloss.Style
	valueStyle   lipgloss.Style
}

// New creates a dial occupying width x height terminal cells and sizes
// the knob's bounds to match.
func New(k *knob.Knob, width, height int) Dial {
	k.SetBounds(knob.R(0, 0, float64(width), float64(height)*cellAspect))
	return Dial{
		Knob:         k,
		Keys:         DefaultKeyMap(),
		width:        width,
		height:       height,
		trackStyle:   lipgloss.NewStyle().Foreground(lipgloss.Color("39")),
		pointerStyle: lipgloss.NewStyle().Foreground(lipgloss.Color("213")),
		valueStyle:   lipgloss.NewStyle().Foreground(lipgloss.Color("252")).Bold(true),
	}
}

// Init implements tea.Model-style initialization; the dial is passive.
func (d Dial) Init() tea.Cmd {
	return nil
}

// Update consumes mouse and key messages.
func (d Dial) Update(msg tea.Msg) (Dial, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.MouseMsg:
		if ev, ok := d.touchFromMouse(msg); ok {
			d.Knob.HandleTouch(ev)
		}
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, d.Keys.Increase):
			d.nudge(1)
		case key.Matches(msg, d.Keys.Decrease):
			d.nudge(-1)
		case key.Matches(msg, d.Keys.Reset):
			d.Knob.SetValue(d.Knob.Range().Min, false)
		}
	}
	return d, nil
}

// nudge moves the value by 1% of the range per key press.
func (d Dial) nudge(direction float64) {
	step := d.Knob.Range().Width() / 100
	d.Knob.SetValue(d.Knob.Value()+direction*step, false)
}

// touchFromMouse translates a terminal mouse event into a touch sample
// in the knob's logical coordinate space.
func (d Dial) touchFromMouse(msg tea.MouseMsg) (knob.TouchEvent, bool) {
	// Cell centers, with the vertical cell aspect applied.
	p := gg.Pt(float64(msg.X)+0.5, (float64(msg.Y)+0.5)*cellAspect)

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return knob.TouchEvent{}, false
		}
		return knob.TouchEvent{Phase: knob.PhaseBegan, Point: p}, true
	case tea.MouseActionMotion:
		if !d.Knob.Dragging() {
			return knob.TouchEvent{}, false
		}
		return knob.TouchEvent{Phase: knob.PhaseMoved, Point: p}, true
	case tea.MouseActionRelease:
		if !d.Knob.Dragging() {
			return knob.TouchEvent{}, false
		}
		return knob.TouchEvent{Phase: knob.PhaseEnded, Point: p}, true
	}
	return knob.TouchEvent{}, false
}

// View renders the dial as block art: the track as dots, the pointer as
// solid blocks, the current value centered under the hub.
func (d Dial) View() string {
	bounds := d.Knob.Bounds()
	center := bounds.Center()
	radius := d.Knob.Renderer().Radius()
	span := d.Knob.Span()

	// The live pointer segment, for distance tests below.
	p0, p1, hasPointer := d.pointerSegment()

	label := fmt.Sprintf("%.2f", d.Knob.Value())
	labelRow := d.height / 2
	labelCol := d.width/2 - len(label)/2

	var sb strings.Builder
	for row := 0; row < d.height; row++ {
		if row > 0 {
			sb.WriteString("\n")
		}

		col := 0
		for col < d.width {
			// Value label overlays the hub.
			if row == labelRow && col == labelCol {
				sb.WriteString(d.valueStyle.Render(label))
				col += len(label)
				continue
			}

			p := gg.Pt(float64(col)+0.5, (float64(row)+0.5)*cellAspect)
			sb.WriteString(d.renderCell(p, center, radius, span, p0, p1, hasPointer))
			col++
		}
	}
	return sb.String()
}

func (d Dial) renderCell(p, center gg.Point, radius float64, span knob.AngleSpan, p0, p1 gg.Point, hasPointer bool) string {
	if hasPointer && distanceToSegment(p, p0, p1) < 0.8 {
		return d.pointerStyle.Render("█")
	}

	dist := p.Distance(center)
	onRing := math.Abs(dist-radius) <= math.Max(0.7, d.Knob.LineWidth()/2)
	if onRing && span.Contains(math.Atan2(p.Y-center.Y, p.X-center.X)) {
		return d.trackStyle.Render("•")
	}
	return " "
}

// pointerSegment returns the live pointer endpoints by applying the
// renderer's rotation transform to its cached tick.
func (d Dial) pointerSegment() (p0, p1 gg.Point, ok bool) {
	r := d.Knob.Renderer()
	elems := r.PointerPath().Transform(r.PointerTransform()).Elements()
	if len(elems) != 2 {
		return gg.Point{}, gg.Point{}, false
	}
	m, mok := elems[0].(gg.MoveTo)
	l, lok := elems[1].(gg.LineTo)
	if !mok || !lok {
		return gg.Point{}, gg.Point{}, false
	}
	return m.Point, l.Point, true
}

// distanceToSegment returns the distance from p to the segment [a, b].
func distanceToSegment(p, a, b gg.Point) float64 {
	ab := b.Sub(a)
	lenSq := ab.LengthSquared()
	if lenSq == 0 {
		return p.Distance(a)
	}
	t := p.Sub(a).Dot(ab) / lenSq
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}
	return p.Distance(a.Add(ab.Mul(t)))
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Increase, k.Decrease, k.Reset}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Increase, k.Decrease, k.Reset}}
}
