// Package tour drives the screensaver through a fixed cycle of viewpoints.
//
// A [Driver] owns the current fractal generator and pulls one sample per
// [Driver.Step]. Each step ends in exactly one of three ways:
//
//   - the sample is rendered
//   - the generator is exhausted: the driver moves to the next viewpoint
//     (wrapping around), starts a new line and rebuilds the generator
//   - a row starts while the terminal width differs from the width the
//     generator was built for: the sample is dropped, a new line is started
//     and the generator is rebuilt for the same viewpoint at the new width
//
// The viewpoints ship as an embedded YAML document; see [DefaultViewpoints].
//
// # Pacing
//
// After the last cell of each row the driver calls its Pause function. The
// default sleeps for a random fraction of a tenth of a second and returns
// early when the context is cancelled.
package tour
