package dashboard

import (
	"net/url"
	"strconv"
)

const (
	RevisionsPath = "/dashboards/revisions"
	UserLookup    = "/dashboards/user_lookup"
	TopicLookup   = "/dashboards/topic_lookup"
)

type IGetQuery interface {
	GetQuery() url.Values
}

// FilterArgs is the serialized filter form. Page is 1-based.
type FilterArgs struct {
	Locale    string
	Topic     string
	User      string
	StartDate string
	EndDate   string
	Page      int
}

func (f FilterArgs) GetQuery() url.Values {
	page := f.Page
	if page < 1 {
		page = 1
	}
	return url.Values{
		"locale":     {f.Locale},
		"topic":      {f.Topic},
		"user":       {f.User},
		"start_date": {f.StartDate},
		"end_date":   {f.EndDate},
		"page":       {strconv.Itoa(page)},
	}
}

// ParseFilterArgs is the inverse of GetQuery. A query produced by GetQuery
// parses back to an identical FilterArgs.
func ParseFilterArgs(query url.Values) FilterArgs {
	page, err := strconv.Atoi(query.Get("page"))
	if err != nil || page < 1 {
		page = 1
	}
	return FilterArgs{
		Locale:    query.Get("locale"),
		Topic:     query.Get("topic"),
		User:      query.Get("user"),
		StartDate: query.Get("start_date"),
		EndDate:   query.Get("end_date"),
		Page:      page,
	}
}

// LookupArgs queries the user or topic autocomplete endpoint. Field is
// "user" or "topic". Callers only issue lookups for terms of three or more
// characters.
type LookupArgs struct {
	Locale string
	Field  string
	Term   string
}

func (l LookupArgs) GetQuery() url.Values {
	return url.Values{
		"locale": {l.Locale},
		l.Field:  {l.Term},
	}
}

func (l LookupArgs) Path() string {
	if l.Field == "topic" {
		return TopicLookup
	}
	return UserLookup
}

// ClassifyArgs is the verdict submission body.
type ClassifyArgs struct {
	Revision string
	Type     string
}

func (c ClassifyArgs) GetForm() url.Values {
	return url.Values{
		"revision": {c.Revision},
		"type":     {c.Type},
	}
}
