package filter

import (
	"errors"
	"net/url"
	"sync"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/revdash/revdash/internal/dashboard"
	"github.com/revdash/revdash/internal/ui/common"
	appContext "github.com/revdash/revdash/internal/ui/context"
	"github.com/revdash/revdash/test"
)

const pageJSON = `{"rows":[{"id":"r1","title":"Article"}],"page":1,"page_count":4}`

type recordingAnalytics struct {
	mu     sync.Mutex
	events []dashboard.Event
}

func (r *recordingAnalytics) Track(e dashboard.Event) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, e)
}

func newTestModel(t *testing.T) (*Model, *appContext.MainContext, *test.TestRequester, *recordingAnalytics) {
	requester := test.NewTestRequester(t)
	analytics := &recordingAnalytics{}
	c := appContext.NewAppContext(requester, analytics, "en-US")
	m := New(c)
	m.SetWidth(80)
	return m, c, requester, analytics
}

// drain runs a command tree to completion and feeds every produced message
// back into the model, the way the program loop would.
func drain(t *testing.T, m *Model, cmd tea.Cmd) {
	t.Helper()
	for _, msg := range collect(cmd) {
		_, next := m.Update(msg)
		drain(t, m, next)
	}
}

func collect(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if msg == nil {
		return nil
	}
	if batch, ok := msg.(tea.BatchMsg); ok {
		var msgs []tea.Msg
		for _, c := range batch {
			msgs = append(msgs, collect(c)...)
		}
		return msgs
	}
	return []tea.Msg{msg}
}

func TestSubmit_LocationMatchesFilters(t *testing.T) {
	m, c, requester, _ := newTestModel(t)
	requester.StubGet(dashboard.RevisionsPath, pageJSON)

	m.inputs[fieldUser].SetValue("jdoe")
	m.inputs[fieldTopic].SetValue("css")
	drain(t, m, m.submit(true))

	current, err := url.ParseQuery(c.Nav.Current())
	require.NoError(t, err)
	assert.Equal(t, c.Filter.Serialize(), current)
	assert.Equal(t, "jdoe", current.Get("user"))
	assert.Equal(t, "css", current.Get("topic"))
}

func TestSubmit_ResetsPage(t *testing.T) {
	m, c, requester, _ := newTestModel(t)
	requester.StubGet(dashboard.RevisionsPath, pageJSON)
	c.Filter.Page = 3
	c.Revisions.PageCount = 4
	m.syncInputs()

	m.inputs[fieldUser].SetValue("jdoe")
	drain(t, m, m.submit(true))

	calls := requester.CallsTo("GET", dashboard.RevisionsPath)
	require.Len(t, calls, 1)
	assert.Equal(t, "1", calls[0].Values.Get("page"))
	assert.Equal(t, 1, c.Filter.Page)
}

func TestSubmit_FailureRollsBack(t *testing.T) {
	m, c, requester, _ := newTestModel(t)
	requester.StubGet(dashboard.RevisionsPath, pageJSON)
	c.Filter.Page = 3
	c.Revisions.PageCount = 4
	m.syncInputs()
	drain(t, m, m.reload())
	require.Equal(t, 1, len(requester.CallsTo("GET", dashboard.RevisionsPath)))
	before := c.Nav.Current()

	requester.FailGet(dashboard.RevisionsPath, errors.New("server error"))
	m.inputs[fieldUser].SetValue("jdoe")
	drain(t, m, m.submit(true))

	// the staged page reset never lands and the optimistic location is undone
	assert.Equal(t, 3, c.Filter.Page)
	assert.Equal(t, before, c.Nav.Current())
}

func TestSubmit_InvalidDateRejected(t *testing.T) {
	m, _, requester, _ := newTestModel(t)

	m.inputs[fieldStartDate].SetValue("01/02/2024")
	msgs := collect(m.submit(true))

	require.Len(t, msgs, 1)
	assert.Contains(t, string(msgs[0].(common.NotifyErrorMsg)), "invalid start date")
	assert.Empty(t, requester.CallsTo("GET", dashboard.RevisionsPath))
}

func TestRequestPage_KeepsFilters(t *testing.T) {
	m, c, requester, analytics := newTestModel(t)
	requester.StubGet(dashboard.RevisionsPath, `{"rows":[],"page":2,"page_count":4}`)
	c.Filter.User = "jdoe"
	c.Filter.Page = 1
	c.Revisions.PageCount = 4
	m.syncInputs()

	drain(t, m, m.requestPage(2, "Next"))

	calls := requester.CallsTo("GET", dashboard.RevisionsPath)
	require.Len(t, calls, 1)
	assert.Equal(t, "2", calls[0].Values.Get("page"))
	assert.Equal(t, "jdoe", calls[0].Values.Get("user"))

	require.Len(t, analytics.events, 1)
	assert.Equal(t, "Dashboard Pagination", analytics.events[0].Category)
	assert.Equal(t, "2", analytics.events[0].Action)
	assert.Equal(t, "Next", analytics.events[0].Label)
}

func TestRequestPage_OutOfRangeIgnored(t *testing.T) {
	m, c, requester, analytics := newTestModel(t)
	c.Filter.Page = 1
	c.Revisions.PageCount = 4

	assert.Nil(t, m.requestPage(0, "Previous"))
	assert.Nil(t, m.requestPage(5, "Next"))
	assert.Nil(t, m.requestPage(1, "Next"))
	assert.Empty(t, requester.CallsTo("GET", dashboard.RevisionsPath))
	assert.Empty(t, analytics.events)
}

func TestGoBack_RestoresPreviousFilters(t *testing.T) {
	m, c, requester, _ := newTestModel(t)
	requester.StubGet(dashboard.RevisionsPath, pageJSON)

	drain(t, m, m.reload())
	m.inputs[fieldUser].SetValue("jdoe")
	drain(t, m, m.submit(true))
	require.Equal(t, "jdoe", c.Filter.User)

	drain(t, m, m.GoBack())

	assert.Equal(t, "", c.Filter.User)
	current, err := url.ParseQuery(c.Nav.Current())
	require.NoError(t, err)
	assert.Equal(t, "", current.Get("user"))

	// history exhausted, nothing left to go back to
	assert.Nil(t, m.GoBack())
}

func TestLookup_StaleTermDropped(t *testing.T) {
	m, _, _, _ := newTestModel(t)

	m.focused = fieldUser
	m.inputs[fieldUser].SetValue("jdoeX")
	m.applyLookup(lookupMsg{field: fieldUser, term: "jdoe", labels: []string{"jdoe"}})
	assert.Empty(t, m.inputs[fieldUser].AvailableSuggestions())
}

func TestLookup_MinimumTermLength(t *testing.T) {
	m, _, _, _ := newTestModel(t)

	m.focused = fieldUser
	m.inputs[fieldUser].SetValue("jd")
	assert.Nil(t, m.maybeLookup())

	m.focused = fieldStartDate
	m.inputs[fieldStartDate].SetValue("2024")
	assert.Nil(t, m.maybeLookup())
}

func TestLookup_RequestsFocusedField(t *testing.T) {
	m, _, requester, _ := newTestModel(t)
	requester.StubGet(dashboard.TopicLookup, `[{"label":"css-layout"},{"label":"css-color"}]`)

	m.focused = fieldTopic
	m.inputs[fieldTopic].SetValue("css")
	cmd := m.maybeLookup()
	require.NotNil(t, cmd)
	msg := cmd().(lookupMsg)

	calls := requester.CallsTo("GET", dashboard.TopicLookup)
	require.Len(t, calls, 1)
	assert.Equal(t, "css", calls[0].Values.Get("topic"))
	assert.Equal(t, "en-US", calls[0].Values.Get("locale"))

	m.applyLookup(msg)
	assert.Equal(t, []string{"css-layout", "css-color"}, m.inputs[fieldTopic].AvailableSuggestions())
}
