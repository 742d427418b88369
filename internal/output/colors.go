// Package output renders the end-of-run summary for the demo binary.
package output

import (
	"github.com/fatih/color"
)

// ColorScheme defines the colors used for the summary table.
type ColorScheme struct {
	Header *color.Color
	Region *color.Color
	Value  *color.Color
	Busy   *color.Color
	Hot    *color.Color // busy percentage above the hot threshold
	Dim    *color.Color
}

// HotBusyPercent is the busy percentage at which a region is
// highlighted as hot in the summary table.
const HotBusyPercent = 75.0

// DefaultColorScheme returns the default color scheme.
func DefaultColorScheme() *ColorScheme {
	return &ColorScheme{
		Header: color.New(color.FgCyan, color.Bold),
		Region: color.New(color.FgBlue, color.Bold),
		Value:  color.New(color.FgWhite),
		Busy:   color.New(color.FgGreen),
		Hot:    color.New(color.FgRed, color.Bold),
		Dim:    color.New(color.FgHiBlack),
	}
}

// NoColorScheme returns a color scheme with all colors disabled.
func NoColorScheme() *ColorScheme {
	scheme := DefaultColorScheme()

	scheme.Header.DisableColor()
	scheme.Region.DisableColor()
	scheme.Value.DisableColor()
	scheme.Busy.DisableColor()
	scheme.Hot.DisableColor()
	scheme.Dim.DisableColor()

	return scheme
}
