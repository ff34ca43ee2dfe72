package config

import "github.com/thenoetrevino/campfire/internal/config/colors"

// ColorScheme is the configurable palette of the TUI and CLI
type ColorScheme = colors.ColorScheme

// DefaultColorScheme returns the default color scheme
func DefaultColorScheme() ColorScheme {
	return *colors.Default()
}

// MonochromeColorScheme returns a black and white color scheme
func MonochromeColorScheme() ColorScheme {
	return *colors.Monochrome()
}
