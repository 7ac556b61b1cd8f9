package classify

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/revdash/revdash/internal/dashboard"
	"github.com/revdash/revdash/internal/models"
	"github.com/revdash/revdash/internal/ui/context"
)

const (
	VerdictSpam = "spam"
	VerdictHam  = "ham"
)

// ResultMsg reports the outcome of one verdict submission. Tag is the table
// version the submission was issued against; results for a replaced table
// are dropped.
type ResultMsg struct {
	RevisionID  string
	Verdict     string
	Tag         uint64
	Submissions []dashboard.ClassificationSubmission
	Err         error
}

// Submit sends a moderation verdict for the row. The row's disabled flag is
// the mutual-exclusion guard: while a submission is outstanding (or the
// control has already been consumed by a success), further triggers return
// nil and no request is made. The cell is moved into its submitting state
// synchronously, before the request runs.
func Submit(ctx *context.MainContext, row *models.RevisionItem, verdict string) tea.Cmd {
	if row == nil || !row.Classification.Begin() {
		return nil
	}
	revisionID := row.Revision.ID
	classifyURL := row.Revision.ClassifyURL
	tag := ctx.Revisions.Tag()
	return func() tea.Msg {
		form := dashboard.ClassifyArgs{Revision: revisionID, Type: verdict}.GetForm()
		body, err := ctx.PostForm(classifyURL, form)
		if err != nil {
			return ResultMsg{RevisionID: revisionID, Verdict: verdict, Tag: tag, Err: err}
		}
		submissions, err := dashboard.ParseSubmissions(body)
		if err != nil {
			return ResultMsg{RevisionID: revisionID, Verdict: verdict, Tag: tag, Err: err}
		}
		return ResultMsg{RevisionID: revisionID, Verdict: verdict, Tag: tag, Submissions: submissions}
	}
}
