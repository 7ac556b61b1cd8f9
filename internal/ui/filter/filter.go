package filter

import (
	"fmt"
	"net/url"
	"strconv"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/revdash/revdash/internal/config"
	"github.com/revdash/revdash/internal/dashboard"
	"github.com/revdash/revdash/internal/ui/common"
	appContext "github.com/revdash/revdash/internal/ui/context"
)

type field int

const (
	fieldLocale field = iota
	fieldTopic
	fieldUser
	fieldStartDate
	fieldEndDate
	fieldPage
	fieldCount
)

var fieldLabels = [fieldCount]string{"locale", "topic", "user", "from", "to", "page"}

type styles struct {
	title  lipgloss.Style
	text   lipgloss.Style
	dimmed lipgloss.Style
}

// Model is the filter form. It owns all mutations of the shared FilterState
// and of the navigation history.
type Model struct {
	*common.Sizeable
	context *appContext.MainContext
	keymap  config.KeyMappings[key.Binding]
	inputs  [fieldCount]textinput.Model
	focused field
	editing bool
	styles  styles

	// pushedTag is the table version of the last load announced by an
	// optimistic history push; its failure pops that entry again.
	pushedTag uint64
}

func New(c *appContext.MainContext) *Model {
	m := &Model{
		Sizeable: common.NewSizeable(0, 1),
		context:  c,
		keymap:   config.Current.GetKeyMap(),
		styles: styles{
			title:  common.DefaultPalette.Get("filter title"),
			text:   common.DefaultPalette.Get("filter text"),
			dimmed: common.DefaultPalette.Get("filter dimmed"),
		},
	}
	placeholders := [fieldCount]string{c.Locale, "", "", "YYYY-MM-DD", "YYYY-MM-DD", "1"}
	for i := range m.inputs {
		t := textinput.New()
		t.Prompt = ""
		t.Width = 12
		t.Placeholder = placeholders[i]
		m.inputs[i] = t
	}
	m.inputs[fieldUser].ShowSuggestions = true
	m.inputs[fieldTopic].ShowSuggestions = true
	m.inputs[fieldPage].Width = 4
	m.inputs[fieldPage].SetValue("1")
	return m
}

func (m *Model) IsEditing() bool {
	return m.editing
}

func (m *Model) StartEditing() tea.Cmd {
	m.editing = true
	m.focused = fieldLocale
	return m.focusInput()
}

func (m *Model) stopEditing() {
	m.editing = false
	for i := range m.inputs {
		m.inputs[i].Blur()
	}
}

func (m *Model) focusInput() tea.Cmd {
	for i := range m.inputs {
		m.inputs[i].Blur()
	}
	return m.inputs[m.focused].Focus()
}

func (m *Model) Init() tea.Cmd {
	return common.Refresh
}

func (m *Model) Update(msg tea.Msg) (*Model, tea.Cmd) {
	switch msg := msg.(type) {
	case common.RefreshMsg:
		return m, m.reload()
	case common.RequestPageMsg:
		return m, m.requestPage(msg.Page, msg.Label)
	case appContext.UpdateRevisionsMsg:
		if !m.context.Revisions.Accept(msg.Tag) {
			return m, nil
		}
		m.context.Filter.Commit()
		m.pushedTag = 0
		m.syncInputs()
		return m, common.NotifySuccess("Updated filters.")
	case appContext.UpdateRevisionsFailedMsg:
		if !m.context.Revisions.Accept(msg.Tag) {
			return m, nil
		}
		m.context.Filter.Rollback()
		if m.pushedTag == msg.Tag {
			// undo the optimistic location update
			m.context.Nav.Pop()
			m.pushedTag = 0
		}
		m.syncInputs()
		return m, common.NotifyError("Error updating filters")
	case lookupMsg:
		m.applyLookup(msg)
		return m, nil
	case tea.KeyMsg:
		if !m.editing {
			return m, nil
		}
		switch {
		case key.Matches(msg, m.keymap.Cancel):
			m.stopEditing()
			return m, nil
		case key.Matches(msg, m.keymap.Apply):
			m.stopEditing()
			return m, m.submit(true)
		case msg.String() == "tab":
			m.focused = (m.focused + 1) % fieldCount
			return m, m.focusInput()
		case msg.String() == "shift+tab":
			m.focused = (m.focused + fieldCount - 1) % fieldCount
			return m, m.focusInput()
		default:
			var cmd tea.Cmd
			m.inputs[m.focused], cmd = m.inputs[m.focused].Update(msg)
			return m, tea.Batch(cmd, m.maybeLookup())
		}
	}
	return m, nil
}

// submit serializes the form into the filter state and issues the fetch.
// The location is rewritten optimistically before the request resolves; the
// page reset stays staged until the fetch succeeds.
func (m *Model) submit(resetPage bool) tea.Cmd {
	if err := m.applyInputs(); err != nil {
		return common.NotifyError(err.Error())
	}
	if resetPage {
		m.context.Filter.StagePageReset()
	}
	query := m.context.Filter.RequestQuery()
	m.context.Nav.Push(query.Encode())
	loadCmd := m.context.Revisions.Load(m.context, query)
	m.pushedTag = m.context.Revisions.Tag()
	return tea.Batch(common.NotifyLoading("Hang on! Updating filters…"), loadCmd)
}

// reload re-issues the current query without touching history or paging.
func (m *Model) reload() tea.Cmd {
	query := m.context.Filter.RequestQuery()
	if m.context.Nav.Current() == "" {
		m.context.Nav.Push(query.Encode())
	}
	return tea.Batch(
		common.NotifyLoading("Hang on! Updating filters…"),
		m.context.Revisions.Load(m.context, query),
	)
}

// requestPage loads another page of the current result set. The analytics
// event is fire-and-forget and never blocks the pagination flow. Unlike a
// filter submission, pagination does not reset the page.
func (m *Model) requestPage(page int, label string) tea.Cmd {
	if page < 1 || page > m.context.Revisions.PageCount || page == m.context.Filter.Page {
		return nil
	}
	m.context.Analytics.Track(dashboard.Event{
		Category: "Dashboard Pagination",
		Action:   strconv.Itoa(page),
		Label:    label,
	})
	m.context.Filter.Page = page
	m.syncInputs()
	return m.submit(false)
}

// GoBack restores the previous location and re-submits it, without pushing
// a new entry.
func (m *Model) GoBack() tea.Cmd {
	query, ok := m.context.Nav.Back()
	if !ok {
		return nil
	}
	values, err := url.ParseQuery(query)
	if err != nil {
		return nil
	}
	m.context.Filter.ApplyQuery(values)
	m.pushedTag = 0
	m.syncInputs()
	return tea.Batch(
		common.NotifyLoading("Hang on! Updating filters…"),
		m.context.Revisions.Load(m.context, m.context.Filter.Serialize()),
	)
}

func (m *Model) applyInputs() error {
	startDate, err := parseDate(m.inputs[fieldStartDate].Value())
	if err != nil {
		return fmt.Errorf("invalid start date (want YYYY-MM-DD)")
	}
	endDate, err := parseDate(m.inputs[fieldEndDate].Value())
	if err != nil {
		return fmt.Errorf("invalid end date (want YYYY-MM-DD)")
	}
	f := m.context.Filter
	f.Locale = m.inputs[fieldLocale].Value()
	f.Topic = m.inputs[fieldTopic].Value()
	f.User = m.inputs[fieldUser].Value()
	f.StartDate = startDate
	f.EndDate = endDate
	if page, err := strconv.Atoi(m.inputs[fieldPage].Value()); err == nil && page > 0 {
		f.Page = page
	}
	return nil
}

func (m *Model) syncInputs() {
	f := m.context.Filter
	m.inputs[fieldLocale].SetValue(f.Locale)
	m.inputs[fieldTopic].SetValue(f.Topic)
	m.inputs[fieldUser].SetValue(f.User)
	m.inputs[fieldStartDate].SetValue(f.StartDate)
	m.inputs[fieldEndDate].SetValue(f.EndDate)
	m.inputs[fieldPage].SetValue(strconv.Itoa(f.Page))
}

func parseDate(value string) (string, error) {
	if value == "" {
		return "", nil
	}
	if _, err := time.Parse(time.DateOnly, value); err != nil {
		return "", err
	}
	return value, nil
}

func (m *Model) View() string {
	var parts []string
	marker := " filter "
	if m.editing {
		marker = " filter* "
	}
	parts = append(parts, m.styles.title.Render(marker))
	for i := range m.inputs {
		parts = append(parts,
			m.styles.dimmed.PaddingLeft(1).Render(fieldLabels[i]+":"),
			m.styles.text.Render(m.inputs[i].View()),
		)
	}
	line := lipgloss.JoinHorizontal(lipgloss.Left, parts...)
	return lipgloss.Place(m.Width, 1, 0, 0, line)
}
