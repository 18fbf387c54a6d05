package palette

import (
	"math"
	"strconv"

	colorful "github.com/lucasb-eyer/go-colorful"
	"github.com/muesli/termenv"
)

const (
	// RampSize is the number of entries in the 256-color ramp.
	RampSize = 80

	hueStart = 0.57

	// Below this saturation an entry is drawn from the grayscale block.
	grayThreshold = 0.1
	grayBase      = 232
	grayLevels    = 23

	cubeBase   = 16
	cubeLevels = 5
)

// basicColors are SGR foreground codes: default, blue, magenta, cyan, red,
// yellow, green, white.
var basicColors = []int{39, 34, 35, 36, 31, 33, 32, 37}

// Palette is an immutable ordered list of terminal color codes.
type Palette struct {
	codes    []int
	extended bool
}

// Build returns the 256-color ramp when extended is true, otherwise the
// basic eight-color palette.
func Build(extended bool) *Palette {
	if !extended {
		codes := make([]int, len(basicColors))
		copy(codes, basicColors)
		return &Palette{codes: codes}
	}

	codes := make([]int, RampSize)
	for i := range codes {
		t := float64(i) / RampSize
		codes[i] = HSVToANSI(hueStart+t, 1-t*t*t, 1)
	}
	return &Palette{codes: codes, extended: true}
}

// HSVToANSI maps an HSV triple (all components in [0,1], hue wrapping) onto
// the xterm 256-color table. Low-saturation colors go to the grayscale
// block, everything else to the 6x6x6 color cube.
func HSVToANSI(h, s, v float64) int {
	if s < grayThreshold {
		return grayBase + int(v*grayLevels)
	}

	h = math.Mod(h, 1)
	if h < 0 {
		h++
	}
	c := colorful.Hsv(h*360, s, v)

	r := int(c.R * cubeLevels)
	g := int(c.G * cubeLevels)
	b := int(c.B * cubeLevels)
	return cubeBase + r*36 + g*6 + b
}

// Len returns the number of entries.
func (p *Palette) Len() int {
	return len(p.codes)
}

// Extended reports whether this is the 256-color ramp.
func (p *Palette) Extended() bool {
	return p.extended
}

// Code returns the raw color code at index i.
func (p *Palette) Code(i int) int {
	return p.codes[i]
}

// Codes returns a copy of all color codes in order.
func (p *Palette) Codes() []int {
	out := make([]int, len(p.codes))
	copy(out, p.codes)
	return out
}

// Color returns entry i as a termenv color suitable for styling text.
func (p *Palette) Color(i int) termenv.Color {
	if p.extended {
		return termenv.ANSI256Color(p.codes[i])
	}
	return sgr(p.codes[i])
}

// sgr is a raw SGR parameter. The basic palette includes 39 (default
// foreground), which has no termenv.ANSIColor equivalent.
type sgr int

func (c sgr) Sequence(bool) string {
	return strconv.Itoa(int(c))
}
