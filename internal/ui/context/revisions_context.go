package context

import (
	"net/url"
	"slices"
	"sync/atomic"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/revdash/revdash/internal/dashboard"
	"github.com/revdash/revdash/internal/models"
	"github.com/revdash/revdash/internal/ui/common/list"
)

type UpdateRevisionsMsg struct {
	Page *dashboard.RevisionPage
	Tag  uint64
}

type UpdateRevisionsFailedMsg struct {
	Err error
	Tag uint64
}

// RevisionsContext owns the row list and the table version tag. Each
// table-replacing load bumps the tag and captures it; any completion
// carrying an older tag raced with a replacement and must be dropped
// instead of mutating rows that are no longer on screen.
type RevisionsContext struct {
	List *list.List[*models.RevisionItem]

	Page      int
	PageCount int

	tag atomic.Uint64
}

func NewRevisionsContext() *RevisionsContext {
	return &RevisionsContext{
		List:      list.NewList[*models.RevisionItem](),
		Page:      1,
		PageCount: 1,
	}
}

// Tag is the current table version. Row-scoped requests capture it so their
// completions can be checked with Accept.
func (m *RevisionsContext) Tag() uint64 {
	return m.tag.Load()
}

// Accept reports whether a completion for the given captured tag may still
// touch the table.
func (m *RevisionsContext) Accept(tag uint64) bool {
	return tag == m.tag.Load()
}

// Load fetches the result set for query and replaces the table on success.
// The bumped tag invalidates completions issued against the previous table.
func (m *RevisionsContext) Load(requester dashboard.Requester, query url.Values) tea.Cmd {
	currentTag := m.tag.Add(1)
	return func() tea.Msg {
		body, err := requester.Get(dashboard.RevisionsPath, query)
		if err != nil {
			return UpdateRevisionsFailedMsg{Err: err, Tag: currentTag}
		}
		page, err := dashboard.ParseRevisionPage(body)
		if err != nil {
			return UpdateRevisionsFailedMsg{Err: err, Tag: currentTag}
		}
		return UpdateRevisionsMsg{Page: page, Tag: currentTag}
	}
}

// Replace swaps in the rows of a freshly fetched page and focuses the first
// row.
func (m *RevisionsContext) Replace(page *dashboard.RevisionPage) {
	rows := make([]*models.RevisionItem, 0, len(page.Rows))
	for _, revision := range page.Rows {
		rows = append(rows, models.NewRevisionItem(revision))
	}
	m.List.SetItems(rows)
	if len(rows) > 0 {
		m.List.Cursor = 0
	}
	m.Page = page.Page
	m.PageCount = page.PageCount
}

func (m *RevisionsContext) FindRow(id string) *models.RevisionItem {
	idx := slices.IndexFunc(m.List.Items, func(row *models.RevisionItem) bool {
		return row.Revision.ID == id
	})
	if idx == -1 {
		return nil
	}
	return m.List.Items[idx]
}
