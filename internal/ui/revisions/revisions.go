package revisions

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/revdash/revdash/internal/config"
	"github.com/revdash/revdash/internal/ui/classify"
	"github.com/revdash/revdash/internal/ui/common"
	appContext "github.com/revdash/revdash/internal/ui/context"
)

type detailLoadedMsg struct {
	id      string
	tag     uint64
	content string
	err     error
}

// Model is the revision table: cursor navigation, lazy detail expansion,
// verdict submission and the IP column toggle.
type Model struct {
	*common.Sizeable
	context  *appContext.MainContext
	keymap   config.KeyMappings[key.Binding]
	renderer *itemRenderer
	showIPs  bool
	loaded   bool
	scroll   int
}

func New(c *appContext.MainContext) *Model {
	return &Model{
		Sizeable: common.NewSizeable(0, 0),
		context:  c,
		keymap:   config.Current.GetKeyMap(),
		renderer: newItemRenderer(),
	}
}

func (m *Model) ShortHelp() []key.Binding {
	return []key.Binding{
		m.keymap.Up,
		m.keymap.Down,
		m.keymap.Activate,
		m.keymap.Spam,
		m.keymap.Ham,
		m.keymap.ToggleIPs,
		m.keymap.Filter,
		m.keymap.NextPage,
		m.keymap.PrevPage,
		m.keymap.Quit,
	}
}

func (m *Model) FullHelp() [][]key.Binding {
	return [][]key.Binding{m.ShortHelp()}
}

func (m *Model) Init() tea.Cmd {
	return nil
}

func (m *Model) Update(msg tea.Msg) (*Model, tea.Cmd) {
	switch msg := msg.(type) {
	case appContext.UpdateRevisionsMsg:
		if !m.context.Revisions.Accept(msg.Tag) {
			return m, nil
		}
		m.loaded = true
		m.context.Revisions.Replace(msg.Page)
		m.scroll = 0
		return m, common.ContentRefreshed
	case appContext.UpdateRevisionsFailedMsg:
		if !m.context.Revisions.Accept(msg.Tag) {
			return m, nil
		}
		m.loaded = true
		return m, nil
	case detailLoadedMsg:
		return m, m.finishDetailLoad(msg)
	case classify.ResultMsg:
		return m, m.finishClassification(msg)
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keymap.Up):
			m.context.Revisions.List.CursorUp()
		case key.Matches(msg, m.keymap.Down):
			m.context.Revisions.List.CursorDown()
		case key.Matches(msg, m.keymap.First):
			if m.context.Revisions.List.Len() > 0 {
				m.context.Revisions.List.Cursor = 0
			}
			m.scroll = 0
		case key.Matches(msg, m.keymap.Activate):
			return m, m.activateRow()
		case key.Matches(msg, m.keymap.Spam):
			return m, classify.Submit(m.context, m.context.Revisions.List.Current(), classify.VerdictSpam)
		case key.Matches(msg, m.keymap.Ham):
			return m, classify.Submit(m.context, m.context.Revisions.List.Current(), classify.VerdictHam)
		case key.Matches(msg, m.keymap.ToggleIPs):
			m.showIPs = !m.showIPs
		}
	}
	return m, nil
}

// activateRow expands or collapses the row under the cursor. The first
// activation fetches the detail panel; once loaded the toggle is purely
// local. Activations while a fetch is in flight are ignored.
func (m *Model) activateRow() tea.Cmd {
	row := m.context.Revisions.List.Current()
	if row == nil || row.Running {
		return nil
	}
	if row.Loaded {
		row.Expanded = !row.Expanded
		return nil
	}
	row.Running = true
	revision := row.Revision
	tag := m.context.Revisions.Tag()
	return func() tea.Msg {
		body, err := m.context.Get(revision.CompareURL, nil)
		if err != nil {
			return detailLoadedMsg{id: revision.ID, tag: tag, err: err}
		}
		return detailLoadedMsg{id: revision.ID, tag: tag, content: string(body)}
	}
}

func (m *Model) finishDetailLoad(msg detailLoadedMsg) tea.Cmd {
	if !m.context.Revisions.Accept(msg.tag) {
		// the table was replaced while the fetch was in flight
		return nil
	}
	row := m.context.Revisions.FindRow(msg.id)
	if row == nil {
		return nil
	}
	row.Running = false
	if msg.err != nil {
		return common.NotifyError("Error loading revision details")
	}
	row.Detail = ActionBar(row.Revision) + "\n" + msg.content
	row.Loaded = true
	row.Expanded = true
	return nil
}

func (m *Model) finishClassification(msg classify.ResultMsg) tea.Cmd {
	if !m.context.Revisions.Accept(msg.Tag) {
		return nil
	}
	row := m.context.Revisions.FindRow(msg.RevisionID)
	if row == nil {
		return nil
	}
	if msg.Err != nil {
		row.Classification.Fail(msg.Verdict)
		return common.NotifyError(fmt.Sprintf("Error submitting as %s", msg.Verdict))
	}
	row.Classification.Complete(msg.Submissions)
	return nil
}

func (m *Model) View() string {
	items := m.context.Revisions.List.Items
	if len(items) == 0 {
		placeholder := "(no matching revisions)"
		if !m.loaded {
			placeholder = "loading"
		}
		return lipgloss.Place(m.Width, m.Height, lipgloss.Center, lipgloss.Center, placeholder)
	}

	var lines []string
	cursorLine := 0
	for i, item := range items {
		selected := i == m.context.Revisions.List.Cursor
		if selected {
			cursorLine = len(lines)
		}
		block := m.renderer.RenderItem(item, selected, m.showIPs, m.Width)
		lines = append(lines, splitLines(block)...)
	}
	lines = append(lines, m.renderer.RenderFooter(m.context.Revisions.Page, m.context.Revisions.PageCount, m.Width))

	m.adjustScroll(cursorLine, len(lines))
	visible := lines
	if m.scroll < len(lines) {
		visible = lines[m.scroll:]
	}
	if len(visible) > m.Height {
		visible = visible[:m.Height]
	}
	output := lipgloss.JoinVertical(lipgloss.Left, visible...)
	return lipgloss.Place(m.Width, m.Height, 0, 0, output)
}

// adjustScroll keeps the cursor row inside the viewport.
func (m *Model) adjustScroll(cursorLine int, lineCount int) {
	if m.Height <= 0 {
		return
	}
	if cursorLine < m.scroll {
		m.scroll = cursorLine
	}
	if cursorLine >= m.scroll+m.Height {
		m.scroll = cursorLine - m.Height + 1
	}
	if m.scroll > lineCount-1 {
		m.scroll = lineCount - 1
	}
	if m.scroll < 0 {
		m.scroll = 0
	}
}
