// Package theme holds the colors of the dashboard, set once from the
// configured color scheme before the program starts
package theme

import "github.com/thenoetrevino/campfire/internal/config"

// Colors holds the current theme colors, initialized by Init
var (
	Accent        string
	Done          string
	Overdue       string
	DueSoon       string
	Border        string
	SelectedBg    string
	Title         string
	Subtle        string
	Normal        string
	InfoFg        string
	InfoBg        string
	ErrorFg       string
	ErrorBg       string
	StatusBarBg   string
	StatusBarText string
)

func init() {
	Init(config.DefaultColorScheme())
}

// Init initializes the theme colors from the given color scheme
func Init(colors config.ColorScheme) {
	Accent = colors.Accent
	Done = colors.Done
	Overdue = colors.Overdue
	DueSoon = colors.DueSoon
	Border = colors.Border
	SelectedBg = colors.SelectedBg
	Title = colors.Title
	Subtle = colors.Subtle
	Normal = colors.Normal
	InfoFg = colors.InfoFg
	InfoBg = colors.InfoBg
	ErrorFg = colors.ErrorFg
	ErrorBg = colors.ErrorBg
	StatusBarBg = colors.StatusBarBg
	StatusBarText = colors.StatusBarText
}
