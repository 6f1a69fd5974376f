// Command knobdemo showcases the knob control: an interactive terminal
// dial driven by mouse and keyboard, and a PNG snapshot renderer.
package main

import (
	"fmt"
	"math"
	"os"

	"github.com/alecthomas/kong"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/gogpu/gg"
	"github.com/gogpu/knob"
	"github.com/gogpu/knob/internal/teadial"
)

// CLI defines the knobdemo command structure.
type CLI struct {
	// Default interactive command (runs when no subcommand given)
	Run RunCmd `cmd:"" default:"withargs" help:"Run the interactive terminal dial"`

	Snapshot SnapshotCmd `cmd:"" help:"Render the knob to a PNG file"`
}

// RunCmd launches the interactive dial.
type RunCmd struct {
	Min      float64 `flag:"" default:"0" help:"Minimum value"`
	Max      float64 `flag:"" default:"1" help:"Maximum value"`
	Value    float64 `flag:"" default:"0" help:"Initial value"`
	Width    int     `flag:"" default:"41" help:"Dial width in terminal cells"`
	Height   int     `flag:"" default:"21" help:"Dial height in terminal cells"`
	AtEnd    bool    `flag:"" help:"Notify observers only when the gesture ends"`
	FullTurn bool    `flag:"" help:"Use a nearly full circle instead of the default sweep"`
	Theme    string  `flag:"" optional:"" help:"YAML theme file (overrides KNOB_THEME)"`
}

// Run executes the interactive command.
func (c *RunCmd) Run(cfg *Config) error {
	k, err := buildKnob(c.Min, c.Max, c.Value, !c.AtEnd, c.FullTurn)
	if err != nil {
		return err
	}
	if err := applyTheme(k, c.Theme, cfg); err != nil {
		return err
	}

	app := teadial.NewApp(k, c.Width, c.Height)
	p := tea.NewProgram(app, tea.WithAltScreen(), tea.WithMouseAllMotion())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("terminal UI failed: %w", err)
	}
	return nil
}

// SnapshotCmd renders a single frame to disk.
type SnapshotCmd struct {
	Output   string  `arg:"" default:"knob.png" help:"Output PNG path"`
	Size     int     `flag:"" default:"256" help:"Image width and height in pixels"`
	Min      float64 `flag:"" default:"0" help:"Minimum value"`
	Max      float64 `flag:"" default:"1" help:"Maximum value"`
	Value    float64 `flag:"" default:"0.7" help:"Value to render"`
	FullTurn bool    `flag:"" help:"Use a nearly full circle instead of the default sweep"`
	Theme    string  `flag:"" optional:"" help:"YAML theme file (overrides KNOB_THEME)"`
}

// Run executes the snapshot command.
func (c *SnapshotCmd) Run(cfg *Config) error {
	if c.Size <= 0 {
		return fmt.Errorf("invalid --size %d", c.Size)
	}

	k, err := buildKnob(c.Min, c.Max, c.Value, true, c.FullTurn)
	if err != nil {
		return err
	}

	// Scale the stroke and pointer to the image before theming so a
	// theme can still override both.
	size := float64(c.Size)
	if err := k.SetLineWidth(size / 32); err != nil {
		return err
	}
	if err := k.SetPointerLength(size / 8); err != nil {
		return err
	}
	if err := applyTheme(k, c.Theme, cfg); err != nil {
		return err
	}

	k.SetBounds(knob.R(0, 0, size, size))

	dc := gg.NewContext(c.Size, c.Size)
	defer dc.Close()

	dc.ClearWithColor(gg.White)
	if err := k.Draw(dc); err != nil {
		return err
	}
	if err := dc.SavePNG(c.Output); err != nil {
		return fmt.Errorf("failed to write %s: %w", c.Output, err)
	}

	fmt.Printf("wrote %s (%dx%d, value %.3f)\n", c.Output, c.Size, c.Size, c.Value)
	return nil
}

// buildKnob assembles a knob from the shared command flags.
func buildKnob(min, max, value float64, continuous, fullTurn bool) (*knob.Knob, error) {
	opts := []knob.Option{
		knob.WithRange(knob.Range{Min: min, Max: max}),
		knob.WithValue(value),
		knob.WithContinuous(continuous),
	}
	if fullTurn {
		opts = append(opts, knob.WithAngleSpan(knob.AngleSpan{
			Start: -math.Pi * 1.45,
			End:   math.Pi * 0.45,
		}))
	}
	return knob.New(opts...)
}

// applyTheme loads the theme named by the flag, falling back to the
// environment-configured one. No theme at all is fine.
func applyTheme(k *knob.Knob, flagPath string, cfg *Config) error {
	path := flagPath
	if path == "" {
		path = cfg.Theme
	}
	if path == "" {
		return nil
	}

	theme, err := knob.LoadTheme(path)
	if err != nil {
		return fmt.Errorf("failed to load theme %s: %w", path, err)
	}
	return theme.Apply(k)
}

func main() {
	cfg, err := LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if err := setupLogging(cfg.LogLevel); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	cli := &CLI{} //nolint:exhaustruct // Kong fills in command fields
	ctx := kong.Parse(cli,
		kong.Name("knobdemo"),
		kong.Description("Interactive rotary knob control demo."),
		kong.Bind(cfg),
	)
	ctx.FatalIfErrorf(ctx.Run())
}
