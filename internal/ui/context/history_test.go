package context

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHistory_Location(t *testing.T) {
	h := NewHistory("/dashboards/revisions")
	assert.Equal(t, "/dashboards/revisions", h.Location())

	h.Push("locale=en-US&page=1")
	assert.Equal(t, "/dashboards/revisions?locale=en-US&page=1", h.Location())
}

func TestHistory_Back(t *testing.T) {
	h := NewHistory("/dashboards/revisions")

	_, ok := h.Back()
	assert.False(t, ok)

	h.Push("page=1")
	h.Push("page=2")
	h.Push("page=3")

	query, ok := h.Back()
	assert.True(t, ok)
	assert.Equal(t, "page=2", query)
	assert.Equal(t, "page=2", h.Current())

	query, ok = h.Back()
	assert.True(t, ok)
	assert.Equal(t, "page=1", query)

	// the oldest entry cannot be navigated away from
	_, ok = h.Back()
	assert.False(t, ok)
}

func TestHistory_PopUndoesOptimisticPush(t *testing.T) {
	h := NewHistory("/dashboards/revisions")
	h.Push("page=1")
	h.Push("user=jdoe&page=1")
	h.Pop()
	assert.Equal(t, "page=1", h.Current())
}
