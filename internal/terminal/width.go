package terminal

import (
	"github.com/mattn/go-runewidth"
	"golang.org/x/text/unicode/norm"
)

// Ambiguous-width runes take a single cell regardless of locale.
var cellWidth = func() *runewidth.Condition {
	c := runewidth.NewCondition()
	c.EastAsianWidth = false
	return c
}()

// LineWidth returns the number of terminal cells s occupies once composed.
func LineWidth(s string) int {
	return cellWidth.StringWidth(norm.NFC.String(s))
}

// RuneWidth returns the number of terminal cells r occupies.
func RuneWidth(r rune) int {
	return cellWidth.RuneWidth(r)
}
