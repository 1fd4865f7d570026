package components

import (
	"strings"

	"charm.land/lipgloss/v2"
	"charm.land/lipgloss/v2/table"

	"github.com/abhisek/sqlquest/internal/present"
	"github.com/abhisek/sqlquest/internal/ui/theme"
)

// RenderResults renders the error area followed by one table per result
// block. An empty view renders the "no result sets" note. hint is shown
// under the error when both are set.
func RenderResults(v present.View, errMsg, hint string, width int) string {
	var sections []string
	if errMsg != "" {
		line := theme.Incorrect.Render("✗ " + errMsg)
		if hint != "" {
			line += "\n" + lipgloss.NewStyle().Width(max(width, 20)).Render(theme.Hint.Render("Hint: "+hint))
		}
		sections = append(sections, line)
	}
	if v.Empty {
		sections = append(sections, theme.Hint.Render(present.NoResults))
		return strings.Join(sections, "\n\n")
	}
	for _, b := range v.Blocks {
		sections = append(sections, renderBlock(b, width))
	}
	return strings.Join(sections, "\n\n")
}

func renderBlock(b present.Block, width int) string {
	headerStyle := lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Padding(0, 1)
	cellStyle := lipgloss.NewStyle().Foreground(theme.Text).Padding(0, 1)
	nullStyle := lipgloss.NewStyle().Foreground(theme.TextDim).Italic(true).Padding(0, 1)

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(theme.Border)).
		Headers(b.Columns...).
		Rows(b.Rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			if row >= 0 && row < len(b.Rows) && col < len(b.Rows[row]) && b.Rows[row][col] == "NULL" {
				return nullStyle
			}
			return cellStyle
		})

	var out strings.Builder
	out.WriteString(theme.Subtitle.Render(b.Label()))
	out.WriteString("\n")
	rendered := t.String()
	if width > 0 && lipgloss.Width(rendered) > width {
		t = t.Width(width)
		rendered = t.String()
	}
	out.WriteString(rendered)
	if n := b.Notice(); n != "" {
		out.WriteString("\n")
		out.WriteString(theme.Hint.Render(n))
	}
	return out.String()
}
