package tour

import (
	"context"
	"errors"
	"math/rand/v2"
	"time"

	"github.com/muurk/mandelsaver/internal/fractal"
	"github.com/muurk/mandelsaver/internal/logging"
	"github.com/muurk/mandelsaver/internal/render"
)

const (
	// DefaultHeight is the number of rows rendered per viewpoint.
	DefaultHeight = 100

	maxPause = 100 * time.Millisecond
)

// Config holds the driver's collaborators and tunables.
type Config struct {
	Viewpoints []Viewpoint               // Tour stops; empty means DefaultViewpoints
	Height     int                       // Rows per viewpoint; <= 0 means DefaultHeight
	Iterations int                       // Escape budget; <= 0 means fractal.DefaultIterations
	Invert     bool                      // Dense glyphs for interior points
	Width      func() int                // Current terminal width
	Pause      func(ctx context.Context) // Called after the last cell of each row
}

// DefaultConfig returns the configuration used by the command line tool.
// Width must still be supplied.
func DefaultConfig() Config {
	return Config{
		Viewpoints: DefaultViewpoints(),
		Height:     DefaultHeight,
		Iterations: fractal.DefaultIterations,
		Invert:     true,
		Pause:      RandomPause,
	}
}

// Driver cycles the tour and renders one sample per step. It is not safe
// for concurrent use.
type Driver struct {
	cfg      Config
	renderer *render.Renderer

	gen   *fractal.Generator
	index int
	width int // width the current generator was built for
	quant render.Quantizer

	restarts int
	resizes  int
}

// NewDriver returns a driver positioned at the first viewpoint.
func NewDriver(r *render.Renderer, cfg Config) *Driver {
	if len(cfg.Viewpoints) == 0 {
		cfg.Viewpoints = DefaultViewpoints()
	}
	if cfg.Height <= 0 {
		cfg.Height = DefaultHeight
	}
	if cfg.Iterations <= 0 {
		cfg.Iterations = fractal.DefaultIterations
	}
	if cfg.Width == nil {
		cfg.Width = func() int { return 80 }
	}
	if cfg.Pause == nil {
		cfg.Pause = func(context.Context) {}
	}

	d := &Driver{cfg: cfg, renderer: r}
	d.selectViewpoint(0)
	d.build(cfg.Width())
	return d
}

// Index returns the position of the current viewpoint in the tour.
func (d *Driver) Index() int {
	return d.index
}

// Viewpoint returns the current viewpoint.
func (d *Driver) Viewpoint() Viewpoint {
	return d.cfg.Viewpoints[d.index]
}

// Width returns the width the current field was built for.
func (d *Driver) Width() int {
	return d.width
}

// MaxColor returns the current color normalisation factor.
func (d *Driver) MaxColor() int {
	return d.quant.MaxColor
}

// Restarts returns how many times the tour moved to a new viewpoint.
func (d *Driver) Restarts() int {
	return d.restarts
}

// Resizes returns how many times the field was rebuilt for a new width.
func (d *Driver) Resizes() int {
	return d.resizes
}

// SkipRows abandons the row being drawn and continues offset rows from it.
func (d *Driver) SkipRows(offset int) {
	d.gen.RequestRowSkip(offset)
}

// Step pulls one sample from the field and renders it, or reacts to
// exhaustion or a width change. The only errors are output failures.
func (d *Driver) Step(ctx context.Context) error {
	s, err := d.gen.Next()
	if errors.Is(err, fractal.ErrExhausted) {
		return d.advance()
	}
	if err != nil {
		return err
	}

	if s.X == 0 {
		if width := d.cfg.Width(); width != d.width {
			logging.LogResize(d.width, width)
			d.resizes++
			return d.restart(width)
		}
	}

	if err := d.renderer.Pixel(s.Color, d.quant); err != nil {
		return err
	}

	if s.X == d.width-1 {
		d.cfg.Pause(ctx)
	}
	return nil
}

// Run steps the driver until ctx is cancelled. Cancellation is not an error.
func (d *Driver) Run(ctx context.Context) error {
	for {
		if ctx.Err() != nil {
			return nil
		}
		if err := d.Step(ctx); err != nil {
			return err
		}
	}
}

// advance moves to the next viewpoint, wrapping at the end of the tour.
func (d *Driver) advance() error {
	d.selectViewpoint((d.index + 1) % len(d.cfg.Viewpoints))
	d.restarts++
	return d.restart(d.cfg.Width())
}

func (d *Driver) restart(width int) error {
	if err := d.renderer.LineBreak(); err != nil {
		return err
	}
	d.build(width)
	return nil
}

func (d *Driver) selectViewpoint(index int) {
	d.index = index
	d.quant = render.Quantizer{
		MaxColor: d.cfg.Viewpoints[index].MaxColor,
		Invert:   d.cfg.Invert,
	}
}

func (d *Driver) build(width int) {
	vp := d.cfg.Viewpoints[d.index]
	d.width = width
	d.gen = fractal.NewWithIterations(fractal.Viewport{
		Width:    width,
		Height:   d.cfg.Height,
		CenterX:  vp.CenterX,
		CenterY:  vp.CenterY,
		Distance: vp.Distance,
	}, d.cfg.Iterations)

	logging.LogViewpoint(d.index, vp.CenterX, vp.CenterY, vp.Distance, vp.MaxColor, width)
}

// RandomPause sleeps for a random duration below a tenth of a second,
// returning early if ctx is cancelled.
func RandomPause(ctx context.Context) {
	timer := time.NewTimer(time.Duration(rand.Int64N(int64(maxPause))))
	defer timer.Stop()

	select {
	case <-ctx.Done():
	case <-timer.C:
	}
}
