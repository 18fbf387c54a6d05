package fractal

import (
	"errors"
	"fmt"
)

// AspectRatio compensates for terminal cells being roughly three times taller
// than they are wide.
const AspectRatio = 1.0 / 3.0

// ErrExhausted is returned by Next once every cell of the viewport has been
// produced, or immediately for a degenerate viewport.
var ErrExhausted = errors.New("fractal: field exhausted")

// Viewport maps a pixel grid onto a rectangle of the complex plane.
type Viewport struct {
	Width    int     // Columns in the grid
	Height   int     // Rows in the grid
	CenterX  float64 // Real part of the centre
	CenterY  float64 // Imaginary part of the centre
	Distance float64 // Span of the real axis before aspect correction; smaller zooms in
}

// Degenerate reports whether the viewport has no cells.
func (v Viewport) Degenerate() bool {
	return v.Width <= 0 || v.Height <= 0
}

// String implements fmt.Stringer for log output.
func (v Viewport) String() string {
	return fmt.Sprintf("%dx%d @ (%g, %g) d=%g", v.Width, v.Height, v.CenterX, v.CenterY, v.Distance)
}

// Sample is the escape value of one grid cell.
type Sample struct {
	X     int
	Y     int
	Color int
}

// Generator lazily produces the samples of a Viewport in row-major order.
// It is not safe for concurrent use.
type Generator struct {
	vp         Viewport
	iterations int
	xs         []float64
	ys         []float64

	// cursor: the next cell to produce
	ix, iy int
	// row of the most recently produced sample
	lastRow int
	done    bool

	skipPending bool
	skipOffset  int
}

// New creates a generator over vp with the default iteration budget.
func New(vp Viewport) *Generator {
	return NewWithIterations(vp, DefaultIterations)
}

// NewWithIterations creates a generator with a custom iteration budget.
// Values below 1 fall back to DefaultIterations.
func NewWithIterations(vp Viewport, iterations int) *Generator {
	if iterations < 1 {
		iterations = DefaultIterations
	}
	g := &Generator{vp: vp, iterations: iterations}
	g.init()
	return g
}

// init derives the coordinate arrays and resets the cursor.
func (g *Generator) init() {
	g.ix, g.iy, g.lastRow = 0, 0, 0
	g.skipPending = false
	g.skipOffset = 0

	if g.vp.Degenerate() {
		g.done = true
		return
	}
	g.done = false

	yscale := g.vp.Distance / float64(g.vp.Width)
	xscale := yscale * AspectRatio
	xmin := g.vp.CenterX - xscale*float64(g.vp.Width)/2
	ymin := g.vp.CenterY - yscale*float64(g.vp.Height)/2

	g.xs = make([]float64, g.vp.Width)
	for ix := range g.xs {
		g.xs[ix] = xmin + xscale*float64(ix)
	}
	g.ys = make([]float64, g.vp.Height)
	for iy := range g.ys {
		g.ys[iy] = ymin + yscale*float64(iy)
	}
}

// Viewport returns the viewport the generator was built with.
func (g *Generator) Viewport() Viewport {
	return g.vp
}

// Iterations returns the per-point iteration budget.
func (g *Generator) Iterations() int {
	return g.iterations
}

// Point returns the complex coordinate of grid cell (ix, iy).
// The cell must lie inside the viewport.
func (g *Generator) Point(ix, iy int) complex128 {
	return complex(g.xs[ix], g.ys[iy])
}

// RequestRowSkip asks the generator to abandon the row of the sample it last
// produced and continue at column 0 of that row plus offset. The request takes
// effect on the next call to Next; a later request replaces an earlier one.
func (g *Generator) RequestRowSkip(offset int) {
	g.skipPending = true
	g.skipOffset = offset
}

// Next returns the next sample, or ErrExhausted when the field is complete.
func (g *Generator) Next() (Sample, error) {
	if g.done {
		return Sample{}, ErrExhausted
	}

	if g.skipPending {
		g.skipPending = false
		g.iy = max(g.lastRow+g.skipOffset, 0)
		g.ix = 0
	}

	if g.iy >= g.vp.Height {
		g.done = true
		return Sample{}, ErrExhausted
	}

	s := Sample{
		X:     g.ix,
		Y:     g.iy,
		Color: Escape(complex(g.xs[g.ix], g.ys[g.iy]), g.iterations),
	}
	g.lastRow = g.iy

	g.ix++
	if g.ix >= g.vp.Width {
		g.ix = 0
		g.iy++
	}

	return s, nil
}
