package dashboard

import (
	"log"
	"net/url"

	"github.com/google/uuid"
)

// Event is an analytics event. Pagination clicks emit
// {Category: "Dashboard Pagination", Action: <page>, Label: <link text>}.
type Event struct {
	ID       string
	Category string
	Action   string
	Label    string
}

// Analytics is a fire-and-forget event sink. Track must never block the
// caller and failures are swallowed.
type Analytics interface {
	Track(e Event)
}

type NopAnalytics struct{}

func (NopAnalytics) Track(Event) {}

type HTTPAnalytics struct {
	requester Requester
	path      string
}

func NewHTTPAnalytics(requester Requester, path string) *HTTPAnalytics {
	return &HTTPAnalytics{requester: requester, path: path}
}

func (a *HTTPAnalytics) Track(e Event) {
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	form := url.Values{
		"id":       {e.ID},
		"category": {e.Category},
		"action":   {e.Action},
		"label":    {e.Label},
	}
	go func() {
		if _, err := a.requester.PostForm(a.path, form); err != nil {
			log.Printf("analytics: %v", err)
		}
	}()
}
