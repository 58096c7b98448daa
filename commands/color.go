package commands

import (
	"fmt"

	"github.com/fatih/color"
)

const (
	colorAlways = "always"
	colorAuto   = "auto"
	colorNever  = "never"
)

var (
	ColorBoldBlue  = color.New(color.FgBlue, color.Bold)
	ColorBoldGreen = color.New(color.FgGreen, color.Bold)
	ColorBoldRed   = color.New(color.FgRed, color.Bold)
)

// ColorPrinter decides whether output gets colored.
type ColorPrinter struct {
	// Mode is one of always, auto or never.
	Mode string
	// Terminal is true if output goes to an interactive terminal, used when
	// Mode is auto.
	Terminal bool
}

// NewColorPrinter creates a printer, unknown modes act like auto.
func NewColorPrinter(mode string, terminal bool) *ColorPrinter {
	return &ColorPrinter{Mode: mode, Terminal: terminal}
}

// ShouldColor reports whether output should be colored. A nil printer never
// colors.
func (c *ColorPrinter) ShouldColor() bool {
	switch {
	case c == nil:
		return false
	case c.Mode == colorNever:
		return false
	case c.Mode == colorAlways:
		return true
	default:
		return c.Terminal
	}
}

func (c *ColorPrinter) Sprintf(clr *color.Color, format string, a ...interface{}) string {
	if !c.ShouldColor() {
		return fmt.Sprintf(format, a...)
	}

	// The color package disables itself when the process isn't attached to a
	// terminal, but sessions may be.
	forced := *clr
	forced.EnableColor()
	return forced.Sprintf(format, a...)
}
