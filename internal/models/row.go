package models

import "github.com/revdash/revdash/internal/dashboard"

// Row is one revision entry of the table together with its interaction
// state. Loaded, Running and Expanded mutate only through the revisions
// component; the whole Row is discarded when the table is replaced.
type Row struct {
	Revision dashboard.Revision

	// Loaded is set once the detail panel has been fetched. The panel is
	// kept across collapse/expand and never re-fetched.
	Loaded bool
	// Running guards against overlapping detail fetches for the same row.
	Running bool
	// Expanded is whether the detail panel is currently visible.
	Expanded bool
	// Detail is the rendered detail panel: action bar plus the fetched
	// fragment.
	Detail string

	Classification ClassificationCell
}

type ClassificationStatus int

const (
	ClassificationIdle ClassificationStatus = iota
	ClassificationSubmitting
	ClassificationFailed
	ClassificationDone
)

// ClassificationCell is the verdict-submission state of a row. The Disabled
// flag is the mutual-exclusion guard: at most one POST may be outstanding,
// and once submissions are rendered the control is gone for the session.
type ClassificationCell struct {
	Status      ClassificationStatus
	Disabled    bool
	FailedType  string
	Submissions []dashboard.ClassificationSubmission
}

// Begin moves the cell into the submitting state. It reports false when the
// control is disabled, in which case the trigger must be ignored.
func (c *ClassificationCell) Begin() bool {
	if c.Disabled {
		return false
	}
	c.Disabled = true
	c.Status = ClassificationSubmitting
	c.FailedType = ""
	return true
}

// Complete renders the returned submissions and removes the control.
func (c *ClassificationCell) Complete(submissions []dashboard.ClassificationSubmission) {
	c.Status = ClassificationDone
	c.Submissions = submissions
}

// Fail re-enables the control and records the verdict that failed.
func (c *ClassificationCell) Fail(verdict string) {
	c.Disabled = false
	c.Status = ClassificationFailed
	c.FailedType = verdict
}
