package layout

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/sqlquest/internal/ui/theme"
)

const (
	MinWidth  = 80
	MinHeight = 24

	// Below this width the header drops its centered title.
	CompactWidthThreshold = 110

	hintGap = "   "
)

// KeyHint represents a key binding hint shown in the footer.
type KeyHint struct {
	Key         string
	Description string
}

// IsCompactWidth returns true if the terminal width is in compact range.
func IsCompactWidth(width int) bool {
	return width < CompactWidthThreshold
}

// IsTooSmall returns true if the terminal is below minimum size.
func IsTooSmall(width, height int) bool {
	return width < MinWidth || height < MinHeight
}

// RenderMinSizeMessage renders the "terminal too small" message.
func RenderMinSizeMessage(width, height int) string {
	return lipgloss.NewStyle().
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Width(width).
		Height(height).
		Render(fmt.Sprintf(
			"SQL Quest needs a bigger window.\n\nResize to at least %d x %d\n(currently %d x %d)",
			MinWidth, MinHeight, width, height,
		))
}

func bar(content string, width int) string {
	return lipgloss.NewStyle().
		Width(width).
		Background(theme.BgCard).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Render(content)
}

// RenderHeader renders the top bar: product name, screen title and the
// overall completion percentage. Compact widths put the title next to the
// product name instead of centering it.
func RenderHeader(title string, percent int, width int) string {
	brand := lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render("  SQL Quest")
	name := lipgloss.NewStyle().Foreground(theme.Text).Render(title)
	done := lipgloss.NewStyle().Foreground(theme.Success).Render(fmt.Sprintf("✓ %d%% complete", percent))

	inner := max(width-4, 0)
	var left string
	if IsCompactWidth(width) || title == "" {
		left = brand
		if title != "" {
			left += theme.Hint.Render(" › ") + name
		}
	} else {
		gap := max((inner-lipgloss.Width(name))/2-lipgloss.Width(brand), 1)
		left = brand + strings.Repeat(" ", gap) + name
	}
	gap := max(inner-lipgloss.Width(left)-lipgloss.Width(done), 1)
	return bar(left+strings.Repeat(" ", gap)+done, width)
}

// RenderFooter renders the key hints that fit on one line, in order.
func RenderFooter(hints []KeyHint, width int) string {
	return bar("  "+strings.Join(FitHints(hints, width-6), hintGap), width)
}

// FitHints renders hints and keeps the longest prefix that fits in width
// columns.
func FitHints(hints []KeyHint, width int) []string {
	key := lipgloss.NewStyle().Foreground(theme.Text).Bold(true)
	desc := lipgloss.NewStyle().Foreground(theme.TextDim)

	var parts []string
	used := 0
	for _, h := range hints {
		part := key.Render(h.Key) + " " + desc.Render(h.Description)
		w := lipgloss.Width(part)
		if len(parts) > 0 {
			w += len(hintGap)
		}
		if used+w > width {
			break
		}
		parts = append(parts, part)
		used += w
	}
	return parts
}

// RenderFrame stacks header, body and footer. body is called with the
// space left between the bars and its output is clipped to that height.
func RenderFrame(header, footer string, width, height int, body func(w, h int) string) string {
	h := max(height-lipgloss.Height(header)-lipgloss.Height(footer), 0)
	content := lipgloss.NewStyle().
		Width(width).
		Height(h).
		MaxHeight(h).
		Render(body(width, h))
	return header + "\n" + content + "\n" + footer
}
