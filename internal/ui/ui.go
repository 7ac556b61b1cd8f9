package ui

import (
	"fmt"
	"log"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/revdash/revdash/internal/config"
	"github.com/revdash/revdash/internal/ui/common"
	appContext "github.com/revdash/revdash/internal/ui/context"
	"github.com/revdash/revdash/internal/ui/filter"
	"github.com/revdash/revdash/internal/ui/revisions"
	"github.com/revdash/revdash/internal/ui/status"
)

// Model is the composition root. It wires the filter, revisions and status
// components together and routes key input by focus; it holds no domain
// state of its own.
type Model struct {
	*common.Sizeable
	context   *appContext.MainContext
	keymap    config.KeyMappings[key.Binding]
	filter    *filter.Model
	revisions *revisions.Model
	status    *status.Model
}

func New(c *appContext.MainContext) Model {
	m := Model{
		Sizeable:  common.NewSizeable(0, 0),
		context:   c,
		keymap:    config.Current.GetKeyMap(),
		filter:    filter.New(c),
		revisions: revisions.New(c),
		status:    status.New(c),
	}
	m.status.SetHelp(m.revisions)
	return m
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(
		m.filter.Init(),
		m.revisions.Init(),
		m.status.Init(),
		tea.SetWindowTitle(fmt.Sprintf("revdash - %s", m.context.Nav.Location())),
	)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	log.Printf("UI Update: %T\n", msg)
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetWidth(msg.Width)
		m.SetHeight(msg.Height)
		m.filter.SetWidth(msg.Width)
		m.status.SetWidth(msg.Width)
		m.revisions.SetWidth(msg.Width)
		m.revisions.SetHeight(msg.Height - 2)
		return m, nil
	case tea.KeyMsg:
		if m.filter.IsEditing() {
			var cmd tea.Cmd
			m.filter, cmd = m.filter.Update(msg)
			return m, cmd
		}
		switch {
		case key.Matches(msg, m.keymap.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keymap.Filter):
			return m, m.filter.StartEditing()
		case key.Matches(msg, m.keymap.Back):
			return m, m.filter.GoBack()
		case key.Matches(msg, m.keymap.NextPage):
			return m, common.RequestPage(m.context.Revisions.Page+1, "Next")
		case key.Matches(msg, m.keymap.PrevPage):
			return m, common.RequestPage(m.context.Revisions.Page-1, "Previous")
		case key.Matches(msg, m.keymap.Refresh):
			return m, common.Refresh
		default:
			var cmd tea.Cmd
			m.revisions, cmd = m.revisions.Update(msg)
			return m, cmd
		}
	}

	// everything else is broadcast, components pick out what they handle
	var cmds []tea.Cmd
	var cmd tea.Cmd
	m.filter, cmd = m.filter.Update(msg)
	cmds = append(cmds, cmd)
	m.revisions, cmd = m.revisions.Update(msg)
	cmds = append(cmds, cmd)
	m.status, cmd = m.status.Update(msg)
	cmds = append(cmds, cmd)
	return m, tea.Batch(cmds...)
}

func (m Model) View() string {
	return lipgloss.JoinVertical(lipgloss.Left,
		m.filter.View(),
		m.revisions.View(),
		m.status.View(),
	)
}
