package config

import "github.com/charmbracelet/bubbles/key"

type keys []string

// KeyMappings is generic so the same shape serves both the TOML
// representation ([]string per binding) and the resolved key.Binding form.
type KeyMappings[T any] struct {
	Up        T `toml:"up"`
	Down      T `toml:"down"`
	First     T `toml:"first"`
	Activate  T `toml:"activate"`
	Spam      T `toml:"spam"`
	Ham       T `toml:"ham"`
	ToggleIPs T `toml:"toggle_ips"`
	Filter    T `toml:"filter"`
	Apply     T `toml:"apply"`
	NextPage  T `toml:"next_page"`
	PrevPage  T `toml:"prev_page"`
	Back      T `toml:"back"`
	Refresh   T `toml:"refresh"`
	Cancel    T `toml:"cancel"`
	Quit      T `toml:"quit"`
}

var defaultKeys = KeyMappings[keys]{
	Up:        keys{"up", "k"},
	Down:      keys{"down", "j"},
	First:     keys{"home", "g"},
	Activate:  keys{"enter", " "},
	Spam:      keys{"s"},
	Ham:       keys{"h"},
	ToggleIPs: keys{"i"},
	Filter:    keys{"f", "/"},
	Apply:     keys{"enter"},
	NextPage:  keys{"n", "right"},
	PrevPage:  keys{"p", "left"},
	Back:      keys{"backspace"},
	Refresh:   keys{"r", "f5"},
	Cancel:    keys{"esc"},
	Quit:      keys{"q", "ctrl+c"},
}

func (c *Config) GetKeyMap() KeyMappings[key.Binding] {
	k := c.Keys
	return KeyMappings[key.Binding]{
		Up:        binding(k.Up, "up"),
		Down:      binding(k.Down, "down"),
		First:     binding(k.First, "first"),
		Activate:  binding(k.Activate, "expand/collapse"),
		Spam:      binding(k.Spam, "report spam"),
		Ham:       binding(k.Ham, "report ham"),
		ToggleIPs: binding(k.ToggleIPs, "toggle ips"),
		Filter:    binding(k.Filter, "filter"),
		Apply:     binding(k.Apply, "apply"),
		NextPage:  binding(k.NextPage, "next page"),
		PrevPage:  binding(k.PrevPage, "prev page"),
		Back:      binding(k.Back, "back"),
		Refresh:   binding(k.Refresh, "refresh"),
		Cancel:    binding(k.Cancel, "cancel"),
		Quit:      binding(k.Quit, "quit"),
	}
}

func binding(k keys, help string) key.Binding {
	display := ""
	if len(k) > 0 {
		display = k[0]
		if display == " " {
			display = "space"
		}
	}
	return key.NewBinding(key.WithKeys(k...), key.WithHelp(display, help))
}
