package revisions

import (
	"strings"

	"github.com/revdash/revdash/internal/dashboard"
)

// actionBarTemplate is fixed; the four URLs are substituted per row at
// detail-render time.
const actionBarTemplate = "Revert <$reverturl> • View Page <$viewurl> • Edit Page <$editurl> • History <$historyurl>"

// ActionBar renders the action links for a row's detail panel.
func ActionBar(revision dashboard.Revision) string {
	return strings.NewReplacer(
		"$reverturl", revision.RevertURL,
		"$viewurl", revision.ViewURL,
		"$editurl", revision.EditURL,
		"$historyurl", revision.HistoryURL,
	).Replace(actionBarTemplate)
}
