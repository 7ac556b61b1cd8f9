package models

import "github.com/revdash/revdash/internal/dashboard"

type IItem interface {
	Equals(other IItem) bool
}

var _ IItem = (*RevisionItem)(nil)

type RevisionItem struct {
	Row
}

func (r *RevisionItem) Equals(other IItem) bool {
	if r == nil {
		return false
	}
	otherRevision, ok := other.(*RevisionItem)
	if !ok || otherRevision == nil {
		return false
	}
	return r.Revision.ID == otherRevision.Revision.ID
}

func NewRevisionItem(revision dashboard.Revision) *RevisionItem {
	return &RevisionItem{
		Row{Revision: revision},
	}
}
