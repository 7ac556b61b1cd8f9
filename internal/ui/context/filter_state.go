package context

import (
	"net/url"

	"github.com/revdash/revdash/internal/dashboard"
)

// FilterState is the single authoritative query describing the current
// result set. Only the filter component mutates it.
//
// A filter submission resets the page to 1, but that reset is two-phase: it
// is staged before the request so the outgoing query carries page=1, and
// only committed once the request succeeds. A failed request rolls the
// staged reset back, leaving the page the prior result set was fetched
// with.
type FilterState struct {
	Locale    string
	Topic     string
	User      string
	StartDate string
	EndDate   string
	Page      int

	sessionLocale string
	stagedReset   bool
}

func NewFilterState(sessionLocale string) *FilterState {
	return &FilterState{
		Page:          1,
		sessionLocale: sessionLocale,
	}
}

// EffectiveLocale falls back to the session locale when the filter leaves
// the locale unset.
func (f *FilterState) EffectiveLocale() string {
	if f.Locale != "" {
		return f.Locale
	}
	return f.sessionLocale
}

func (f *FilterState) StagePageReset() {
	f.stagedReset = true
}

// Commit makes a staged page reset permanent. Called after a successful
// fetch.
func (f *FilterState) Commit() {
	if f.stagedReset {
		f.Page = 1
		f.stagedReset = false
	}
}

// Rollback discards a staged page reset. Called after a failed fetch.
func (f *FilterState) Rollback() {
	f.stagedReset = false
}

// RequestQuery serializes the state as the next request will send it, with
// a staged page reset applied.
func (f *FilterState) RequestQuery() url.Values {
	page := f.Page
	if f.stagedReset {
		page = 1
	}
	return dashboard.FilterArgs{
		Locale:    f.Locale,
		Topic:     f.Topic,
		User:      f.User,
		StartDate: f.StartDate,
		EndDate:   f.EndDate,
		Page:      page,
	}.GetQuery()
}

// Serialize is the committed state, without any staged changes.
func (f *FilterState) Serialize() url.Values {
	return dashboard.FilterArgs{
		Locale:    f.Locale,
		Topic:     f.Topic,
		User:      f.User,
		StartDate: f.StartDate,
		EndDate:   f.EndDate,
		Page:      f.Page,
	}.GetQuery()
}

// ApplyQuery overwrites the state from a serialized query, dropping any
// staged reset. Used when navigating back through history.
func (f *FilterState) ApplyQuery(query url.Values) {
	args := dashboard.ParseFilterArgs(query)
	f.Locale = args.Locale
	f.Topic = args.Topic
	f.User = args.User
	f.StartDate = args.StartDate
	f.EndDate = args.EndDate
	f.Page = args.Page
	f.stagedReset = false
}
