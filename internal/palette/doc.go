// Package palette builds the terminal color ramp used to paint escape values.
//
// Two variants exist. On terminals that advertise 256-color support the
// palette is an 80-step ramp derived from a hue rotation: it starts in
// saturated blue-cyan, walks around the color wheel, and fades towards
// white as saturation drops. Everywhere else it is the eight basic
// foreground colors.
//
// A palette is built once at startup and shared read-only:
//
//	pal := palette.Build(terminal.Supports256(os.Getenv))
//	r := render.New(os.Stderr, pal)
package palette
