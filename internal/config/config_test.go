package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Colours(t *testing.T) {
	content := `
[ui.colors]
"text" = "white"
"selected" = { fg = "blue", bg = "black" }
`
	config := Default()
	err := config.Load(content)
	assert.NoError(t, err)
	assert.Len(t, config.UI.Colors, 2)
	assert.Equal(t, "white", config.UI.Colors["text"].Fg)
	assert.Equal(t, "blue", config.UI.Colors["selected"].Fg)
	assert.Equal(t, "black", config.UI.Colors["selected"].Bg)
}

func TestLoad_Colors_StringAndObject(t *testing.T) {
	content := `
[ui.colors]
simple = "red"
complex = { fg = "blue", bg = "white", bold = true }
`
	config := Default()
	err := config.Load(content)
	assert.NoError(t, err)
	assert.Len(t, config.UI.Colors, 2)

	assert.Equal(t, "red", config.UI.Colors["simple"].Fg)
	assert.Equal(t, "", config.UI.Colors["simple"].Bg)
	assert.False(t, config.UI.Colors["simple"].Bold)

	assert.Equal(t, "blue", config.UI.Colors["complex"].Fg)
	assert.Equal(t, "white", config.UI.Colors["complex"].Bg)
	assert.True(t, config.UI.Colors["complex"].Bold)
}

func TestLoad_Server(t *testing.T) {
	content := `
[server]
base_url = "https://developer.example.org"
locale = "fr"
timeout_ms = 3000
`
	config := Default()
	err := config.Load(content)
	assert.NoError(t, err)
	assert.Equal(t, "https://developer.example.org", config.Server.BaseURL)
	assert.Equal(t, "fr", config.Server.Locale)
	assert.Equal(t, 3000, config.Server.TimeoutMS)
}

func TestLoad_Keys(t *testing.T) {
	content := `
[keys]
spam = ["S"]
toggle_ips = ["ctrl+i"]
`
	config := Default()
	err := config.Load(content)
	assert.NoError(t, err)
	assert.Equal(t, keys{"S"}, config.Keys.Spam)
	assert.Equal(t, keys{"ctrl+i"}, config.Keys.ToggleIPs)
	// untouched bindings keep their defaults
	assert.Equal(t, defaultKeys.Up, config.Keys.Up)
}

func TestGetKeyMap(t *testing.T) {
	config := Default()
	keymap := config.GetKeyMap()
	assert.Equal(t, []string{"enter", " "}, keymap.Activate.Keys())
	assert.Equal(t, "space", keymap.Activate.Help().Key)
	assert.Equal(t, []string{"s"}, keymap.Spam.Keys())
}
