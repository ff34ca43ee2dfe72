package colors

// Default returns the default color scheme (campfire orange)
func Default() *ColorScheme {
	return &ColorScheme{
		Preset: "default",

		// Primary
		Accent: "#F97316",

		// Semantic
		Done:    "#10B981",
		Overdue: "#EF4444",
		DueSoon: "#F59E0B",

		// UI elements
		Border:     "#585858",
		SelectedBg: "#3A3A3A",

		// Text
		Title:  "#FB923C",
		Subtle: "#6B7280",
		Normal: "#D0D0D0",

		// Notifications
		InfoFg:  "#10B981",
		InfoBg:  "#064E3B",
		ErrorFg: "#FF5F5F",
		ErrorBg: "#5F0000",

		// Status bar
		StatusBarBg:   "#F97316", // Matches accent
		StatusBarText: "#1C1C1C",
	}
}
