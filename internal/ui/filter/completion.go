package filter

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sahilm/fuzzy"

	"github.com/revdash/revdash/internal/dashboard"
)

// MinLookupChars is the autocomplete trigger threshold; shorter terms never
// hit the lookup endpoints.
const MinLookupChars = 3

type lookupMsg struct {
	field  field
	term   string
	labels []string
}

// maybeLookup issues an autocomplete lookup for the focused user or topic
// field once the term is long enough. Lookup failures are silent; the field
// simply offers no suggestions.
func (m *Model) maybeLookup() tea.Cmd {
	focused := m.focused
	if focused != fieldUser && focused != fieldTopic {
		return nil
	}
	term := m.inputs[focused].Value()
	if len(term) < MinLookupChars {
		return nil
	}
	args := dashboard.LookupArgs{
		Locale: m.context.Filter.EffectiveLocale(),
		Field:  fieldLabels[focused],
		Term:   term,
	}
	requester := m.context.Requester
	return func() tea.Msg {
		body, err := requester.Get(args.Path(), args.GetQuery())
		if err != nil {
			return lookupMsg{field: focused, term: term}
		}
		labels, err := dashboard.ParseLookupLabels(body)
		if err != nil {
			return lookupMsg{field: focused, term: term}
		}
		return lookupMsg{field: focused, term: term, labels: labels}
	}
}

// applyLookup installs the returned labels as suggestions, ranked by fuzzy
// match against the term. Results for a term the user has already typed
// past are dropped.
func (m *Model) applyLookup(msg lookupMsg) {
	if m.inputs[msg.field].Value() != msg.term {
		return
	}
	suggestions := msg.labels
	if matches := fuzzy.Find(msg.term, msg.labels); len(matches) > 0 {
		suggestions = make([]string, 0, len(matches))
		for _, match := range matches {
			suggestions = append(suggestions, match.Str)
		}
	}
	m.inputs[msg.field].SetSuggestions(suggestions)
}
