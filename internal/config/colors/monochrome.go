package colors

// Monochrome returns a black and white color scheme
func Monochrome() *ColorScheme {
	return &ColorScheme{
		Preset:        "monochrome",
		Accent:        "#FFFFFF",
		Done:          "#BCBCBC",
		Overdue:       "#FFFFFF",
		DueSoon:       "#D0D0D0",
		Border:        "#808080",
		SelectedBg:    "#303030",
		Title:         "#FFFFFF",
		Subtle:        "#808080",
		Normal:        "#D0D0D0",
		InfoFg:        "#FFFFFF",
		InfoBg:        "#303030",
		ErrorFg:       "#000000",
		ErrorBg:       "#FFFFFF",
		StatusBarBg:   "#D0D0D0",
		StatusBarText: "#000000",
	}
}
