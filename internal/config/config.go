package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

var Current = Default()

type Config struct {
	Server ServerConfig      `toml:"server"`
	UI     UIConfig          `toml:"ui"`
	Keys   KeyMappings[keys] `toml:"keys"`
}

type ServerConfig struct {
	// BaseURL is the dashboard origin requests are resolved against.
	BaseURL string `toml:"base_url"`
	// Locale is the session locale, used when the filter leaves the locale
	// field empty.
	Locale        string `toml:"locale"`
	TimeoutMS     int    `toml:"timeout_ms"`
	AnalyticsPath string `toml:"analytics_path"`
}

type UIConfig struct {
	Colors map[string]Color `toml:"colors"`
}

// Color accepts either a plain string ("white") or a table
// ({ fg = "blue", bg = "black", bold = true }).
type Color struct {
	Fg   string
	Bg   string
	Bold bool
}

var _ toml.Unmarshaler = (*Color)(nil)

func (c *Color) UnmarshalTOML(value any) error {
	switch v := value.(type) {
	case string:
		c.Fg = v
	case map[string]any:
		if fg, ok := v["fg"].(string); ok {
			c.Fg = fg
		}
		if bg, ok := v["bg"].(string); ok {
			c.Bg = bg
		}
		if bold, ok := v["bold"].(bool); ok {
			c.Bold = bold
		}
	default:
		return fmt.Errorf("unsupported color value %v", value)
	}
	return nil
}

func Default() *Config {
	return &Config{
		Server: ServerConfig{
			BaseURL:   "http://localhost:8000",
			Locale:    "en-US",
			TimeoutMS: 10000,
		},
		UI:   UIConfig{Colors: map[string]Color{}},
		Keys: defaultKeys,
	}
}

func (c *Config) Load(content string) error {
	_, err := toml.Decode(content, c)
	return err
}

// LoadFromFile applies the user configuration file onto c, if one exists.
func (c *Config) LoadFromFile() error {
	dir, err := os.UserConfigDir()
	if err != nil {
		return nil
	}
	content, err := os.ReadFile(filepath.Join(dir, "revdash", "config.toml"))
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return err
	}
	return c.Load(string(content))
}
