package render

import (
	"bufio"
	"fmt"
	"io"

	"github.com/muesli/termenv"

	"github.com/muurk/mandelsaver/internal/palette"
	"github.com/muurk/mandelsaver/internal/terminal"
)

// Renderer writes glyphs to an output stream. It is not safe for concurrent
// use.
type Renderer struct {
	w       *bufio.Writer
	pal     *palette.Palette
	styled  bool
	written int64
}

// New returns a renderer on w. Color sequences are emitted only when w is an
// interactive terminal.
func New(w io.Writer, pal *palette.Palette) *Renderer {
	return NewWithStyle(w, pal, terminal.IsTerminal(w))
}

// NewWithStyle returns a renderer with terminal detection overridden.
func NewWithStyle(w io.Writer, pal *palette.Palette, styled bool) *Renderer {
	return &Renderer{
		w:      bufio.NewWriter(w),
		pal:    pal,
		styled: styled,
	}
}

// Styled reports whether glyphs are wrapped in color sequences.
func (r *Renderer) Styled() bool {
	return r.styled
}

// Palette returns the palette colors are drawn from.
func (r *Renderer) Palette() *palette.Palette {
	return r.pal
}

// Written returns the number of glyphs written so far.
func (r *Renderer) Written() int64 {
	return r.written
}

// Pixel writes the glyph for color, colored when the output is a terminal.
func (r *Renderer) Pixel(color int, q Quantizer) error {
	glyph := q.Glyph(color)

	out := glyph
	if r.styled {
		c := r.pal.Color(q.Index(color, r.pal.Len()))
		out = termenv.String(glyph).Foreground(c).String()
	}

	if _, err := r.w.WriteString(out); err != nil {
		return fmt.Errorf("failed to write glyph: %w", err)
	}
	r.written++

	if r.styled {
		return r.Flush()
	}
	return nil
}

// LineBreak ends the current line.
func (r *Renderer) LineBreak() error {
	if err := r.w.WriteByte('\n'); err != nil {
		return fmt.Errorf("failed to write line break: %w", err)
	}
	if r.styled {
		return r.Flush()
	}
	return nil
}

// Flush writes any buffered output.
func (r *Renderer) Flush() error {
	if err := r.w.Flush(); err != nil {
		return fmt.Errorf("failed to flush output: %w", err)
	}
	return nil
}
