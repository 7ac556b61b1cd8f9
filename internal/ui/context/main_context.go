package context

import (
	"github.com/revdash/revdash/internal/dashboard"
)

// MainContext is the session state shared by every component. It is
// constructed once at startup and passed down explicitly; there are no
// ambient globals behind it.
type MainContext struct {
	dashboard.Requester
	Analytics dashboard.Analytics

	// Locale is the active locale of the session, the fallback for an
	// empty locale filter.
	Locale    string
	Filter    *FilterState
	Nav       *History
	Revisions *RevisionsContext
}

func NewAppContext(requester dashboard.Requester, analytics dashboard.Analytics, locale string) *MainContext {
	if analytics == nil {
		analytics = dashboard.NopAnalytics{}
	}
	return &MainContext{
		Requester: requester,
		Analytics: analytics,
		Locale:    locale,
		Filter:    NewFilterState(locale),
		Nav:       NewHistory(dashboard.RevisionsPath),
		Revisions: NewRevisionsContext(),
	}
}
