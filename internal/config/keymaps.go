package config

// KeyMappings defines all configurable key bindings of the TUI
type KeyMappings struct {
	// Tabs
	NextTab string `yaml:"next_tab"`
	PrevTab string `yaml:"prev_tab"`

	// Navigation
	Up   string `yaml:"up"`
	Down string `yaml:"down"`

	// Tasks
	AddTask    string `yaml:"add_task"`
	ToggleTask string `yaml:"toggle_task"`
	DeleteItem string `yaml:"delete_item"`

	// Lists
	CreateList string `yaml:"create_list"`
	ToggleList string `yaml:"toggle_list"`

	// Messages
	OpenThread string `yaml:"open_thread"`
	NewThread  string `yaml:"new_thread"`
	Reply      string `yaml:"reply"`

	// Other
	Reload string `yaml:"reload"`
	Cancel string `yaml:"cancel"`
	Quit   string `yaml:"quit"`
}

// DefaultKeyMappings returns the default key mappings
func DefaultKeyMappings() KeyMappings {
	return KeyMappings{
		NextTab:    "tab",
		PrevTab:    "shift+tab",
		Up:         "k",
		Down:       "j",
		AddTask:    "a",
		ToggleTask: " ",
		DeleteItem: "d",
		CreateList: "L",
		ToggleList: "c",
		OpenThread: "enter",
		NewThread:  "n",
		Reply:      "r",
		Reload:     "R",
		Cancel:     "esc",
		Quit:       "q",
	}
}

// applyDefaults fills in any empty key binding
func (k *KeyMappings) applyDefaults() {
	d := DefaultKeyMappings()
	fill := func(dst *string, src string) {
		if *dst == "" {
			*dst = src
		}
	}
	fill(&k.NextTab, d.NextTab)
	fill(&k.PrevTab, d.PrevTab)
	fill(&k.Up, d.Up)
	fill(&k.Down, d.Down)
	fill(&k.AddTask, d.AddTask)
	fill(&k.ToggleTask, d.ToggleTask)
	fill(&k.DeleteItem, d.DeleteItem)
	fill(&k.CreateList, d.CreateList)
	fill(&k.ToggleList, d.ToggleList)
	fill(&k.OpenThread, d.OpenThread)
	fill(&k.NewThread, d.NewThread)
	fill(&k.Reply, d.Reply)
	fill(&k.Reload, d.Reload)
	fill(&k.Cancel, d.Cancel)
	fill(&k.Quit, d.Quit)
}
