package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/sqlquest/internal/ui/theme"
)

// ProgressBar draws lesson completion as a row of cells. With Steps set,
// the cells are grouped into one segment per lesson.
type ProgressBar struct {
	Label   string
	Percent int
	Steps   int
	Width   int
}

// NewProgressBar creates a bar for percent (0-100) that fits in width.
func NewProgressBar(label string, percent, width int) ProgressBar {
	return ProgressBar{Label: label, Percent: percent, Width: width}
}

// WithSteps splits the bar into n segments.
func (p ProgressBar) WithSteps(n int) ProgressBar {
	p.Steps = n
	return p
}

func (p ProgressBar) View() string {
	var b strings.Builder
	if p.Label != "" {
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Text).Render(p.Label))
		b.WriteString("  ")
	}
	pct := fmt.Sprintf("  %d%%", p.Percent)

	cells := max(p.Width-lipgloss.Width(b.String())-len(pct), 4)
	filled := min(max(cells*p.Percent/100, 0), cells)

	bar := strings.Repeat("█", filled) + strings.Repeat("░", cells-filled)
	if p.Steps > 1 && cells >= p.Steps*2 {
		bar = segmented(p.Percent, cells, p.Steps)
	}
	b.WriteString(colorCells(bar))
	b.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).Render(pct))
	return b.String()
}

// segmented lays out one segment per step, separated by a blank cell, and
// fills whole segments for the completed steps.
func segmented(percent, cells, steps int) string {
	seg := (cells - (steps - 1)) / steps
	done := min(max((percent*steps+50)/100, 0), steps)
	parts := make([]string, steps)
	for i := range parts {
		if i < done {
			parts[i] = strings.Repeat("█", seg)
		} else {
			parts[i] = strings.Repeat("░", seg)
		}
	}
	return strings.Join(parts, " ")
}

func colorCells(bar string) string {
	i := strings.Index(bar, "░")
	if i < 0 {
		return theme.ProgressFilled.Render(bar)
	}
	return theme.ProgressFilled.Render(bar[:i]) + theme.ProgressEmpty.Render(bar[i:])
}
