package render

// Glyphs is the ink ramp, from sparse to dense.
var Glyphs = []string{".", ".", "+", "*", "%", "#"}

// Quantizer maps escape values onto table indices.
type Quantizer struct {
	MaxColor int  // Escape value that maps to the last table entry
	Invert   bool // Map high escape values to the start of the table
}

// Index returns the table position for color in a table of the given
// length. The result is always in [0, length-1]; length must be positive.
func (q Quantizer) Index(color, length int) int {
	maxColor := q.MaxColor
	if maxColor < 1 {
		maxColor = 1
	}

	idx := (color + 1) * (length - 1) / maxColor
	idx = min(max(idx, 0), length-1)

	if q.Invert {
		idx = length - 1 - idx
	}
	return idx
}

// Glyph returns the ramp glyph for color.
func (q Quantizer) Glyph(color int) string {
	return Glyphs[q.Index(color, len(Glyphs))]
}
