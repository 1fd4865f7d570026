package lesson

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/sqlquest/internal/lessons"
	"github.com/abhisek/sqlquest/internal/ui/components"
	"github.com/abhisek/sqlquest/internal/ui/theme"
)

const editorHeight = 6

func (ls *LessonScreen) View(width, height int) string {
	cw := width - 4
	if cw < 20 {
		cw = 20
	}
	if cw != ls.editorW {
		// The editor border takes two columns.
		ls.editor.SetSize(cw-2, editorHeight)
		ls.editorW = cw
	}

	heading := ls.renderHeading()
	tabs := ls.renderTabs()
	editor := ls.editor.View()
	status := ls.renderStatus()

	fixed := lipgloss.Height(heading) + lipgloss.Height(tabs) + lipgloss.Height(editor) + 1
	avail := height - fixed
	if avail < 6 {
		avail = 6
	}
	paneH := avail * 2 / 5
	if paneH < 3 {
		paneH = 3
	}
	resultsH := avail - paneH

	pane := clip(ls.renderPane(cw), paneH, 0)
	results := components.RenderResults(ls.outcome.View, ls.outcome.Err, ls.outcome.Hint, cw)
	if over := lipgloss.Height(results) - resultsH; ls.scroll > over {
		ls.scroll = max(over, 0)
	}
	results = clip(results, resultsH, ls.scroll)

	body := strings.Join([]string{heading, tabs, pane, editor, status, results}, "\n")
	return lipgloss.NewStyle().Padding(0, 2).Render(body)
}

func (ls *LessonScreen) renderHeading() string {
	meta := fmt.Sprintf("%s · %s", ls.lesson.Level, ls.lesson.Time)
	line := theme.Title.Render(ls.lesson.Title) + "  " + theme.Hint.Render(meta)
	if ls.sess.IsComplete(ls.lesson.ID) {
		line += "  " + theme.Correct.Render("✓ Completed")
	}
	return line
}

func (ls *LessonScreen) renderTabs() string {
	parts := make([]string, 0, len(tabNames))
	for i, name := range tabNames {
		if tab(i) == ls.tab {
			parts = append(parts, theme.TabActive.Render(name))
		} else {
			parts = append(parts, theme.TabInactive.Render(name))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

func (ls *LessonScreen) renderPane(width int) string {
	wrap := lipgloss.NewStyle().Width(width)
	switch ls.tab {
	case tabExamples:
		return wrap.Render(ls.renderExamples())
	case tabExercises:
		return wrap.Render(ls.renderExercises())
	}
	return wrap.Render(theme.Body.Render(lessons.PlainContent(ls.lesson)))
}

func (ls *LessonScreen) renderExamples() string {
	if len(ls.lesson.Examples) == 0 {
		return theme.Hint.Render("This lesson has no examples.")
	}
	var b strings.Builder
	for i, ex := range ls.lesson.Examples {
		b.WriteString(marker(i == ls.pick))
		b.WriteString(theme.Body.Render(ex.Note))
		b.WriteString("\n")
		if i == ls.pick {
			b.WriteString(theme.Code.Render(ex.SQL))
			b.WriteString("\n")
		}
	}
	return strings.TrimRight(b.String(), "\n")
}

func (ls *LessonScreen) renderExercises() string {
	var b strings.Builder
	for i, ex := range ls.exercises {
		b.WriteString(marker(i == ls.pick))
		b.WriteString(theme.Body.Render(ex.Title))
		b.WriteString("\n")
		if i == ls.pick {
			b.WriteString(theme.Hint.Render("Try it: Ctrl+L loads the solution"))
			b.WriteString("\n")
		}
	}
	return strings.TrimRight(b.String(), "\n")
}

func marker(selected bool) string {
	if selected {
		return theme.Selected.Render("▸ ")
	}
	return "  "
}

func (ls *LessonScreen) renderStatus() string {
	var label string
	switch ls.busy {
	case busyRunning:
		label = "Running…"
	case busyChecking:
		label = "Checking…"
	case busyResetting:
		label = "Resetting database…"
	}
	if label != "" {
		return theme.Hint.Render(strings.TrimSpace(ls.spin.View()) + " " + label)
	}
	switch {
	case ls.status == "":
		return ""
	case ls.statusBad:
		return theme.Incorrect.Render(ls.status)
	default:
		return theme.Correct.Render(ls.status)
	}
}

// clip returns at most n lines of s starting at line offset. The offset is
// clamped so the last page stays visible.
func clip(s string, n, offset int) string {
	lines := strings.Split(s, "\n")
	if offset > len(lines)-n {
		offset = len(lines) - n
	}
	if offset < 0 {
		offset = 0
	}
	end := offset + n
	if end > len(lines) {
		end = len(lines)
	}
	return strings.Join(lines[offset:end], "\n")
}
