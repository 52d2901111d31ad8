package shell

import (
	"fmt"

	"github.com/fatih/color"
)

const (
	ColorAlways = "always"
	ColorAuto   = "auto"
	ColorNever  = "never"
)

// ColorModes lists the accepted color settings.
var ColorModes = []string{ColorAlways, ColorAuto, ColorNever}

// NewErrorColor returns the color for diagnostic prefixes given a color mode.
// In auto mode diagnostics are colored only if they're written to a terminal.
func NewErrorColor(mode string, isTerminal bool) (*color.Color, error) {
	c := color.New(color.FgRed, color.Bold)

	switch mode {
	case ColorAlways:
		c.EnableColor()
	case ColorNever:
		c.DisableColor()
	case ColorAuto, "":
		if isTerminal {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	default:
		return nil, fmt.Errorf("unknown color mode %q, expected one of %v", mode, ColorModes)
	}

	return c, nil
}
