// Package render turns escape values into colored glyphs on an output stream.
//
// A [Quantizer] maps an escape value onto an index into any ordered table,
// normalised by the current viewpoint's MaxColor. The same quantizer picks
// both the glyph from [Glyphs] and the color from the palette, so dense
// glyphs and their colors always move together.
//
// A [Renderer] writes one glyph per call. On an interactive terminal each
// glyph is wrapped in an SGR color sequence and flushed immediately so the
// picture fills in cell by cell; on anything else the bare glyph is written
// and output is buffered until Flush.
package render
