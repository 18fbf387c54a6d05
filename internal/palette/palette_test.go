package palette

import "testing"

func TestBuildExtended(t *testing.T) {
	p := Build(true)

	if !p.Extended() {
		t.Error("Build(true).Extended() = false, want true")
	}
	if p.Len() != RampSize {
		t.Fatalf("Build(true).Len() = %d, want %d", p.Len(), RampSize)
	}

	tests := []struct {
		index int
		want  int
	}{
		// hue 0.57, s 1, v 1 -> rgb(0, 0.58, 1) -> cube (0, 2, 5)
		{index: 0, want: 33},
		// hue 0.07, s 0.875 -> rgb(1, 0.4925, 0.125) -> cube (5, 2, 0)
		{index: 40, want: 208},
		// saturation below 0.1 falls into the grayscale block
		{index: 78, want: 255},
		{index: 79, want: 255},
	}

	for _, tt := range tests {
		if got := p.Code(tt.index); got != tt.want {
			t.Errorf("Code(%d) = %d, want %d", tt.index, got, tt.want)
		}
	}
}

func TestBuildExtendedCodesInRange(t *testing.T) {
	for i, code := range Build(true).Codes() {
		if code < 16 || code > 255 {
			t.Errorf("Code(%d) = %d, outside the 256-color extended range", i, code)
		}
	}
}

func TestBuildBasic(t *testing.T) {
	p := Build(false)

	if p.Extended() {
		t.Error("Build(false).Extended() = true, want false")
	}

	want := []int{39, 34, 35, 36, 31, 33, 32, 37}
	got := p.Codes()
	if len(got) != len(want) {
		t.Fatalf("Build(false).Len() = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Code(%d) = %d, want %d", i, got[i], want[i])
		}
	}
}

func TestPaletteImmutable(t *testing.T) {
	p := Build(false)
	codes := p.Codes()
	codes[0] = 0

	if p.Code(0) != 39 {
		t.Errorf("Code(0) = %d after mutating Codes() copy, want 39", p.Code(0))
	}
	if basicColors[0] != 39 {
		t.Error("Build(false) shares storage with the package defaults")
	}
}

func TestHSVToANSI(t *testing.T) {
	tests := []struct {
		name    string
		h, s, v float64
		want    int
	}{
		{name: "pure red", h: 0, s: 1, v: 1, want: 196},
		{name: "pure green", h: 1.0 / 3, s: 1, v: 1, want: 46},
		{name: "pure blue", h: 2.0 / 3, s: 1, v: 1, want: 21},
		{name: "hue wraps above one", h: 1.0, s: 1, v: 1, want: 196},
		{name: "black", h: 0.5, s: 1, v: 0, want: 16},
		{name: "gray full value", h: 0.3, s: 0.05, v: 1, want: 255},
		{name: "gray half value", h: 0.3, s: 0, v: 0.5, want: 243},
		{name: "gray black", h: 0, s: 0, v: 0, want: 232},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := HSVToANSI(tt.h, tt.s, tt.v); got != tt.want {
				t.Errorf("HSVToANSI(%g, %g, %g) = %d, want %d", tt.h, tt.s, tt.v, got, tt.want)
			}
		})
	}
}

func TestColorSequence(t *testing.T) {
	ext := Build(true)
	if got := ext.Color(0).Sequence(false); got != "38;5;33" {
		t.Errorf("extended Color(0).Sequence() = %q, want %q", got, "38;5;33")
	}

	basic := Build(false)
	if got := basic.Color(0).Sequence(false); got != "39" {
		t.Errorf("basic Color(0).Sequence() = %q, want %q", got, "39")
	}
	if got := basic.Color(4).Sequence(false); got != "31" {
		t.Errorf("basic Color(4).Sequence() = %q, want %q", got, "31")
	}
}
