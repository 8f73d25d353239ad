package terminal

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Toggle      key.Binding
	Reset       key.Binding
	Mode        key.Binding
	Longer      key.Binding
	Shorter     key.Binding
	Beep        key.Binding
	AutoRestart key.Binding
	Sound       key.Binding
	Quit        key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Toggle:      key.NewBinding(key.WithKeys(" ", "space"), key.WithHelp("space", "start/pause")),
		Reset:       key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reset")),
		Mode:        key.NewBinding(key.WithKeys("m"), key.WithHelp("m", "mode")),
		Longer:      key.NewBinding(key.WithKeys("+", "="), key.WithHelp("+", "longer")),
		Shorter:     key.NewBinding(key.WithKeys("-", "_"), key.WithHelp("-", "shorter")),
		Beep:        key.NewBinding(key.WithKeys("b"), key.WithHelp("b", "beep")),
		AutoRestart: key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "auto-restart")),
		Sound:       key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "sound")),
		Quit:        key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (keys keyMap) ShortHelp() []key.Binding {
	return []key.Binding{
		keys.Toggle, keys.Reset, keys.Mode, keys.Longer, keys.Shorter,
		keys.Beep, keys.AutoRestart, keys.Sound, keys.Quit,
	}
}
