package common

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/revdash/revdash/internal/config"
)

// Palette resolves style keys like "revisions selected" against built-in
// defaults and the [ui.colors] section of the configuration. Config entries
// win over defaults.
type Palette struct {
	cache map[string]lipgloss.Style
}

var DefaultPalette = &Palette{}

var defaultColors = map[string]config.Color{
	"revisions text":       {},
	"revisions selected":   {Fg: "black", Bg: "cyan"},
	"revisions dimmed":     {Fg: "8"},
	"revisions detail":     {Fg: "7"},
	"revisions actions":    {Fg: "cyan"},
	"revisions error":      {Fg: "red"},
	"revisions success":    {Fg: "green"},
	"revisions submitting": {Fg: "yellow"},
	"filter title":         {Fg: "black", Bg: "magenta"},
	"filter text":          {},
	"filter dimmed":        {Fg: "8"},
	"status title":         {Fg: "black", Bg: "blue"},
	"status text":          {},
	"status dimmed":        {Fg: "8"},
	"status shortcut":      {Fg: "cyan"},
	"status success":       {Fg: "green"},
	"status error":         {Fg: "red"},
}

func (p *Palette) Get(key string) lipgloss.Style {
	if p.cache == nil {
		p.cache = make(map[string]lipgloss.Style)
	}
	if style, ok := p.cache[key]; ok {
		return style
	}
	color, ok := config.Current.UI.Colors[key]
	if !ok {
		color = defaultColors[key]
	}
	style := lipgloss.NewStyle()
	if color.Fg != "" {
		style = style.Foreground(lipgloss.Color(color.Fg))
	}
	if color.Bg != "" {
		style = style.Background(lipgloss.Color(color.Bg))
	}
	if color.Bold {
		style = style.Bold(true)
	}
	p.cache[key] = style
	return style
}
