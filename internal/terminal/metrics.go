package terminal

import (
	"os"
	"strconv"
	"strings"

	"golang.org/x/term"
)

// Geometry defaults
const (
	DefaultWidth  = 80
	DefaultHeight = 24
	MinWidth      = 40 // Narrower reports are treated as detection failures
)

// SizeFunc returns the (cols, rows) of a terminal.
type SizeFunc func() (cols, rows int, err error)

// Metrics queries terminal geometry. The zero value is not usable; use
// NewMetrics or fill both fields.
type Metrics struct {
	Size   SizeFunc
	Getenv func(string) string
}

// NewMetrics returns Metrics reading the window size of fd and the process
// environment.
func NewMetrics(fd int) *Metrics {
	return &Metrics{
		Size: func() (int, int, error) {
			return term.GetSize(fd)
		},
		Getenv: os.Getenv,
	}
}

// Stdout returns Metrics for the standard output descriptor.
func Stdout() *Metrics {
	return NewMetrics(int(os.Stdout.Fd()))
}

// Width returns the terminal width in columns, never below MinWidth.
func (m *Metrics) Width() int {
	width := 0
	if m.Size != nil {
		if cols, _, err := m.Size(); err == nil {
			width = cols
		}
	}

	if width <= 0 {
		width = m.envWidth()
	}

	if width < MinWidth {
		width = DefaultWidth
	}
	return width
}

// Height returns the terminal height in rows, or DefaultHeight when unknown.
func (m *Metrics) Height() int {
	if m.Size == nil {
		return DefaultHeight
	}
	_, rows, err := m.Size()
	if err != nil || rows <= 0 {
		return DefaultHeight
	}
	return rows
}

func (m *Metrics) envWidth() int {
	if m.Getenv == nil {
		return DefaultWidth
	}
	cols := strings.TrimSpace(m.Getenv("COLUMNS"))
	if cols == "" {
		return DefaultWidth
	}
	width, err := strconv.Atoi(cols)
	if err != nil {
		return DefaultWidth
	}
	return width
}
