// Package terminal answers questions about the terminal the saver draws on.
//
// # Geometry
//
// [Metrics.Width] asks the OS for the window size of a file descriptor. When
// that fails (output redirected, no controlling terminal) it falls back to
// the COLUMNS environment variable and finally to 80 columns. Widths below
// 40 are treated as a failed detection and also replaced by 80.
//
// # Capability
//
// [Supports256] inspects TERM for a "256" marker and [IsTerminal] reports
// whether an output stream is interactive. Neither ever fails.
//
// # Display Width
//
// [LineWidth] measures how many cells a string occupies, counting wide and
// fullwidth characters as two cells and East Asian ambiguous characters as
// one.
package terminal
