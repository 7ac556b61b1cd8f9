package status

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/revdash/revdash/internal/ui/common"
	"github.com/revdash/revdash/internal/ui/context"
)

type notifyStatus int

const (
	none notifyStatus = iota
	loading
	succeeded
	failed
)

// SuccessClearDuration is how long a success notification stays visible.
// Loading and error notifications have no auto-dismiss.
const SuccessClearDuration = 3 * time.Second

type clearMsg string

type styles struct {
	shortcut lipgloss.Style
	dimmed   lipgloss.Style
	text     lipgloss.Style
	title    lipgloss.Style
	success  lipgloss.Style
	error    lipgloss.Style
}

// Model is the notifier: a status bar rendering the transient message
// lifecycle (indefinite loading, timed success, sticky error), the visible
// location and contextual key help.
type Model struct {
	*common.Sizeable
	context *context.MainContext
	spinner spinner.Model
	message string
	status  notifyStatus
	help    help.KeyMap
	styles  styles
}

func New(ctx *context.MainContext) *Model {
	styles := styles{
		shortcut: common.DefaultPalette.Get("status shortcut"),
		dimmed:   common.DefaultPalette.Get("status dimmed"),
		text:     common.DefaultPalette.Get("status text"),
		title:    common.DefaultPalette.Get("status title"),
		success:  common.DefaultPalette.Get("status success"),
		error:    common.DefaultPalette.Get("status error"),
	}
	s := spinner.New()
	s.Spinner = spinner.Dot

	return &Model{
		Sizeable: common.NewSizeable(0, 1),
		context:  ctx,
		spinner:  s,
		styles:   styles,
	}
}

// SetHelp sets the key map rendered while no notification is showing.
func (m *Model) SetHelp(keyMap help.KeyMap) {
	m.help = keyMap
}

func (m *Model) Init() tea.Cmd {
	return nil
}

func (m *Model) Update(msg tea.Msg) (*Model, tea.Cmd) {
	switch msg := msg.(type) {
	case common.NotifyLoadingMsg:
		m.message = string(msg)
		m.status = loading
		return m, m.spinner.Tick
	case common.NotifySuccessMsg:
		m.message = string(msg)
		m.status = succeeded
		messageToBeCleared := m.message
		return m, tea.Tick(SuccessClearDuration, func(time.Time) tea.Msg {
			return clearMsg(messageToBeCleared)
		})
	case common.NotifyErrorMsg:
		m.message = string(msg)
		m.status = failed
		return m, nil
	case clearMsg:
		if m.message == string(msg) {
			m.message = ""
			m.status = none
		}
		return m, nil
	default:
		var cmd tea.Cmd
		if m.status == loading {
			m.spinner, cmd = m.spinner.Update(msg)
		}
		return m, cmd
	}
}

func (m *Model) View() string {
	mark := m.styles.text.Render(" ")
	switch m.status {
	case loading:
		mark = m.styles.text.Render(m.spinner.View())
	case succeeded:
		mark = m.styles.success.Render("✓ ")
	case failed:
		mark = m.styles.error.Render("✗ ")
	}

	message := m.message
	if m.status == none {
		message = m.helpView()
	}

	location := m.styles.dimmed.Render(m.context.Nav.Location())
	title := m.styles.title.Render(" revdash ")
	line := lipgloss.JoinHorizontal(lipgloss.Left, title, m.styles.text.Render(" "), mark, m.styles.text.Render(message))

	gap := m.Width - lipgloss.Width(line) - lipgloss.Width(location) - 1
	if gap < 1 {
		gap = 1
	}
	line = line + m.styles.text.Render(strings.Repeat(" ", gap)) + location
	return lipgloss.Place(m.Width, 1, 0, 0, line, lipgloss.WithWhitespaceBackground(m.styles.text.GetBackground()))
}

func (m *Model) helpView() string {
	if m.help == nil {
		return ""
	}
	var entries []string
	for _, binding := range m.help.ShortHelp() {
		if !binding.Enabled() {
			continue
		}
		h := binding.Help()
		entries = append(entries, m.styles.shortcut.Render(h.Key)+m.styles.dimmed.PaddingLeft(1).Render(h.Desc))
	}
	return strings.Join(entries, m.styles.dimmed.Render(" • "))
}
