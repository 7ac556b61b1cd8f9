package context

// History is the navigable location of the dashboard: a stack of serialized
// queries under a fixed path. Every successful filter or pagination fetch
// pushes an entry, so going back restores the prior query.
type History struct {
	path    string
	entries []string
}

func NewHistory(path string) *History {
	return &History{path: path}
}

func (h *History) Push(query string) {
	h.entries = append(h.entries, query)
}

// Pop removes the newest entry. Used to undo an optimistic push when the
// request it announced fails.
func (h *History) Pop() {
	if len(h.entries) > 0 {
		h.entries = h.entries[:len(h.entries)-1]
	}
}

// Back pops the current entry and reports the one before it.
func (h *History) Back() (string, bool) {
	if len(h.entries) < 2 {
		return "", false
	}
	h.entries = h.entries[:len(h.entries)-1]
	return h.entries[len(h.entries)-1], true
}

func (h *History) Current() string {
	if len(h.entries) == 0 {
		return ""
	}
	return h.entries[len(h.entries)-1]
}

// Location is the visible address: path plus the current query.
func (h *History) Location() string {
	query := h.Current()
	if query == "" {
		return h.path
	}
	return h.path + "?" + query
}
