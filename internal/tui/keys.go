package tui

import (
	"github.com/charmbracelet/bubbles/key"

	"github.com/thenoetrevino/campfire/internal/config"
)

// keyMap is the configured key bindings, shown by the help bar
type keyMap struct {
	NextTab    key.Binding
	PrevTab    key.Binding
	Up         key.Binding
	Down       key.Binding
	AddTask    key.Binding
	ToggleTask key.Binding
	DeleteItem key.Binding
	CreateList key.Binding
	ToggleList key.Binding
	OpenThread key.Binding
	NewThread  key.Binding
	Reply      key.Binding
	Reload     key.Binding
	Cancel     key.Binding
	Help       key.Binding
	Quit       key.Binding
}

func newKeyMap(km config.KeyMappings) keyMap {
	return keyMap{
		NextTab:    binding("next tab", km.NextTab),
		PrevTab:    binding("prev tab", km.PrevTab),
		Up:         binding("up", km.Up, "up"),
		Down:       binding("down", km.Down, "down"),
		AddTask:    binding("add task", km.AddTask),
		ToggleTask: binding("toggle", km.ToggleTask),
		DeleteItem: binding("delete", km.DeleteItem),
		CreateList: binding("new list", km.CreateList),
		ToggleList: binding("collapse list", km.ToggleList),
		OpenThread: binding("open", km.OpenThread),
		NewThread:  binding("new thread", km.NewThread),
		Reply:      binding("reply", km.Reply),
		Reload:     binding("reload", km.Reload),
		Cancel:     binding("back", km.Cancel),
		Help:       binding("help", "?"),
		Quit:       binding("quit", km.Quit, "ctrl+c"),
	}
}

// binding maps keys to a binding whose help shows the first key
func binding(desc string, keys ...string) key.Binding {
	label := keys[0]
	if label == " " {
		label = "space"
	}
	return key.NewBinding(key.WithKeys(keys...), key.WithHelp(label, desc))
}

// ShortHelp implements help.KeyMap
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.NextTab, k.Up, k.Down, k.ToggleTask, k.AddTask, k.Reply, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.NextTab, k.PrevTab, k.Up, k.Down},
		{k.AddTask, k.ToggleTask, k.DeleteItem, k.CreateList, k.ToggleList},
		{k.OpenThread, k.NewThread, k.Reply, k.Cancel},
		{k.Reload, k.Help, k.Quit},
	}
}
