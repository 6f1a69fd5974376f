package teadial

import (
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/gogpu/knob"
)

// AppKeyMap extends the dial bindings with application-level keys.
type AppKeyMap struct {
	KeyMap
	ToggleMode key.Binding
	Quit       key.Binding
}

// DefaultAppKeyMap returns the demo application bindings.
func DefaultAppKeyMap() AppKeyMap {
	return AppKeyMap{
		KeyMap: DefaultKeyMap(),
		ToggleMode: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "toggle continuous"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k AppKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Increase, k.Decrease, k.Reset, k.ToggleMode, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k AppKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Increase, k.Decrease, k.Reset},
		{k.ToggleMode, k.Quit},
	}
}

// App is the interactive knob demo: a dial, a status line showing the
// last value-changed notification, and key help.
type App struct {
	dial Dial
	keys AppKeyMap
	help help.Model

	notified  int     // notifications received so far
	lastValue float64 // value carried by the last notification

	titleStyle  lipgloss.Style
	statusStyle lipgloss.Style
}

// NewApp wires a knob into the demo application.
func NewApp(k *knob.Knob, width, height int) *App {
	a := &App{
		dial:        New(k, width, height),
		keys:        DefaultAppKeyMap(),
		help:        help.New(),
		titleStyle:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
		statusStyle: lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	}
	k.OnValueChanged(func(v float64) {
		a.notified++
		a.lastValue = v
	})
	return a
}

// Init implements tea.Model.
func (a *App) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(msg, a.keys.Quit):
			return a, tea.Quit
		case key.Matches(msg, a.keys.ToggleMode):
			a.dial.Knob.SetContinuous(!a.dial.Knob.Continuous())
			return a, nil
		}
	}

	var cmd tea.Cmd
	a.dial, cmd = a.dial.Update(msg)
	return a, cmd
}

// View implements tea.Model.
func (a *App) View() string {
	k := a.dial.Knob

	mode := "at gesture end"
	if k.Continuous() {
		mode = "continuous"
	}
	status := fmt.Sprintf("value %.3f  [%v, %v]  notify: %s",
		k.Value(), k.Range().Min, k.Range().Max, mode)
	if a.notified > 0 {
		status += fmt.Sprintf("  last notified: %.3f (#%d)", a.lastValue, a.notified)
	}

	return a.titleStyle.Render("knob") + "\n\n" +
		a.dial.View() + "\n\n" +
		a.statusStyle.Render(status) + "\n" +
		a.help.View(a.keys) + "\n"
}
