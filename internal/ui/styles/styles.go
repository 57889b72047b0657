// Package styles provides shared lipgloss styles for terminal output.
//
// This package centralizes color definitions so install messages and
// doctor reports stay visually consistent. Colors follow the --ansi
// and --no-ansi flags through Init.
package styles

import (
	"image/color"

	"charm.land/lipgloss/v2"
)

// Palette defines the colors used for status output.
type Palette struct {
	Success color.Color // positive outcomes (checkmarks)
	Warning color.Color // soft skips and non-fatal problems
	Error   color.Color // failed checks and fatal errors
	Muted   color.Color // hints and secondary text
	Normal  color.Color // standard text
	Info    color.Color // informational text
}

// defaultPalette is the colored palette (256-color safe).
var defaultPalette = Palette{
	Success: lipgloss.Color("82"),  // green
	Warning: lipgloss.Color("214"), // orange
	Error:   lipgloss.Color("196"), // red
	Muted:   lipgloss.Color("240"), // dark gray
	Normal:  lipgloss.Color("252"), // light gray
	Info:    lipgloss.Color("244"), // gray
}

// nonePalette renders without any colors (uses terminal defaults).
// Formatting (bold/underline) is preserved.
var nonePalette = Palette{
	Success: lipgloss.NoColor{},
	Warning: lipgloss.NoColor{},
	Error:   lipgloss.NoColor{},
	Muted:   lipgloss.NoColor{},
	Normal:  lipgloss.NoColor{},
	Info:    lipgloss.NoColor{},
}

// currentPalette holds the active palette
var currentPalette = defaultPalette

// Init selects the palette based on whether ANSI output is wanted.
// Call this after flag parsing and before rendering any styled output.
func Init(ansi bool) {
	if ansi {
		currentPalette = defaultPalette
	} else {
		currentPalette = nonePalette
	}
}

// Current returns the active palette.
func Current() Palette {
	return currentPalette
}

// Style functions that return styles based on the current palette.
// These are functions instead of variables to pick up Init changes.

// SuccessStyle applies the success color
func SuccessStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(currentPalette.Success)
}

// WarningStyle applies the warning color
func WarningStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(currentPalette.Warning)
}

// ErrorStyle applies the error color
func ErrorStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(currentPalette.Error)
}

// MutedStyle applies the muted color
func MutedStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(currentPalette.Muted)
}

// InfoStyle applies the info color with italic
func InfoStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(currentPalette.Info).Italic(true)
}

// TitleStyle applies bold with the normal text color
func TitleStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(currentPalette.Normal).Bold(true)
}
