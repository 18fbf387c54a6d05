// Package fractal produces the escape-time field of the Mandelbrot set.
//
// A [Generator] walks a [Viewport] in row-major order and computes one
// [Sample] per call to [Generator.Next]. Nothing is precomputed beyond the
// per-axis coordinate arrays, so a generator can be abandoned at any point
// and replaced by a fresh one without wasted work.
//
// # Escape Values
//
// Each sample carries an escape value in [0,255]:
//   - 0: the point stayed bounded for the whole iteration budget (interior)
//   - 1..255: the point escaped; larger values mean the orbit came closer to
//     the origin before leaving the radius-2 disc
//
// # Row Skips
//
// The consumer may redirect the scan between two calls to Next:
//
//	gen := fractal.New(fractal.Viewport{Width: 80, Height: 100, Distance: 6.75})
//	s, _ := gen.Next()      // (0, 0)
//	gen.RequestRowSkip(3)   // abandon row 0
//	s, _ = gen.Next()       // (0, 3)
//
// The request is queued on the generator and applied when it next advances,
// so callers never touch the cursor directly.
//
// # Exhaustion
//
// After the last cell has been produced Next returns [ErrExhausted], in the
// same way an io.Reader reports io.EOF.
package fractal
