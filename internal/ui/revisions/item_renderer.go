package revisions

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/revdash/revdash/internal/models"
	"github.com/revdash/revdash/internal/ui/common"
)

type itemRenderer struct {
	textStyle       lipgloss.Style
	selectedStyle   lipgloss.Style
	dimmedStyle     lipgloss.Style
	detailStyle     lipgloss.Style
	actionStyle     lipgloss.Style
	errorStyle      lipgloss.Style
	successStyle    lipgloss.Style
	submittingStyle lipgloss.Style
}

func newItemRenderer() *itemRenderer {
	return &itemRenderer{
		textStyle:       common.DefaultPalette.Get("revisions text"),
		selectedStyle:   common.DefaultPalette.Get("revisions selected"),
		dimmedStyle:     common.DefaultPalette.Get("revisions dimmed"),
		detailStyle:     common.DefaultPalette.Get("revisions detail"),
		actionStyle:     common.DefaultPalette.Get("revisions actions"),
		errorStyle:      common.DefaultPalette.Get("revisions error"),
		successStyle:    common.DefaultPalette.Get("revisions success"),
		submittingStyle: common.DefaultPalette.Get("revisions submitting"),
	}
}

// RenderItem renders a row line followed by its classification records and,
// when expanded, the detail panel.
func (r *itemRenderer) RenderItem(item *models.RevisionItem, selected bool, showIPs bool, width int) string {
	revision := item.Revision

	columns := []string{revision.ID, revision.Title, revision.Locale, revision.Author, revision.Created}
	if showIPs {
		columns = append(columns, revision.IPAddress)
	}
	line := strings.Join(columns, "  ")
	if item.Running {
		line += "  …"
	}

	rowStyle := r.textStyle
	if selected {
		rowStyle = r.selectedStyle
	}
	out := []string{rowStyle.MaxWidth(width).Render(line) + r.renderCell(item)}

	if item.Classification.Status == models.ClassificationDone {
		for _, s := range item.Classification.Submissions {
			out = append(out,
				r.successStyle.PaddingLeft(4).Render("Submitted as "+s.Type),
				r.dimmedStyle.PaddingLeft(4).Render(s.Sent+" by "+s.Sender),
			)
		}
	}

	if item.Expanded && item.Loaded {
		for i, detailLine := range splitLines(item.Detail) {
			style := r.detailStyle
			if i == 0 {
				// the action bar leads the panel
				style = r.actionStyle
			}
			out = append(out, style.PaddingLeft(2).MaxWidth(width).Render(detailLine))
		}
	}
	return strings.Join(out, "\n")
}

// renderCell is the verdict-submission cell trailing the row line.
func (r *itemRenderer) renderCell(item *models.RevisionItem) string {
	switch item.Classification.Status {
	case models.ClassificationSubmitting:
		return r.submittingStyle.PaddingLeft(2).Render("Submitting...")
	case models.ClassificationFailed:
		return r.errorStyle.PaddingLeft(2).Render("Error submitting as " + item.Classification.FailedType)
	case models.ClassificationDone:
		return ""
	default:
		return r.dimmedStyle.PaddingLeft(2).Render("s/h")
	}
}

func (r *itemRenderer) RenderFooter(page int, pageCount int, width int) string {
	footer := fmt.Sprintf("page %d of %d", page, pageCount)
	return r.dimmedStyle.MaxWidth(width).Render(footer)
}

func splitLines(s string) []string {
	return strings.Split(strings.TrimRight(s, "\n"), "\n")
}
