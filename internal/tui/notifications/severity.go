package notifications

import (
	"github.com/thenoetrevino/campfire/internal/dashboard"
	"github.com/thenoetrevino/campfire/internal/tui/theme"
)

type style struct {
	icon       string
	foreground string
	background string
}

func styleFor(level dashboard.Level) style {
	if level == dashboard.LevelError {
		return style{
			icon:       "✕",
			foreground: theme.ErrorFg,
			background: theme.ErrorBg,
		}
	}
	return style{
		icon:       "✓",
		foreground: theme.InfoFg,
		background: theme.InfoBg,
	}
}
