package terminal

import "testing"

func TestLineWidth(t *testing.T) {
	tests := []struct {
		name string
		text string
		want int
	}{
		{name: "empty", text: "", want: 0},
		{name: "ascii", text: "hello", want: 5},
		{name: "glyph ramp", text: "..+*%#", want: 6},
		{name: "fullwidth latin", text: "ＡＢ", want: 4},
		{name: "cjk", text: "漢字", want: 4},
		{name: "mixed", text: "a漢b", want: 4},
		{name: "ambiguous counts as one", text: "±", want: 1},
		// e + combining acute composes to a single é under NFC
		{name: "decomposed accent", text: "e\u0301", want: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := LineWidth(tt.text); got != tt.want {
				t.Errorf("LineWidth(%q) = %d, want %d", tt.text, got, tt.want)
			}
		})
	}
}

func TestRuneWidth(t *testing.T) {
	if got := RuneWidth('#'); got != 1 {
		t.Errorf("RuneWidth('#') = %d, want 1", got)
	}
	if got := RuneWidth('漢'); got != 2 {
		t.Errorf("RuneWidth('漢') = %d, want 2", got)
	}
}
