package history

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/sqlquest/internal/router"
	"github.com/abhisek/sqlquest/internal/screen"
	"github.com/abhisek/sqlquest/internal/store"
	"github.com/abhisek/sqlquest/internal/ui/layout"
	"github.com/abhisek/sqlquest/internal/ui/theme"
)

const pageSize = 50

type historyLoadedMsg struct {
	Attempts []store.Attempt
	Err      error
}

// HistoryScreen lists recent answer-check attempts.
type HistoryScreen struct {
	attempts store.AttemptRepo
	items    []store.Attempt
	selected int
	expanded map[int]bool
	loaded   bool
	errMsg   string
}

var _ screen.Screen = (*HistoryScreen)(nil)
var _ screen.KeyHintProvider = (*HistoryScreen)(nil)

// New creates a new HistoryScreen.
func New(attempts store.AttemptRepo) *HistoryScreen {
	return &HistoryScreen{
		attempts: attempts,
		expanded: make(map[int]bool),
	}
}

func (s *HistoryScreen) Init() tea.Cmd {
	return func() tea.Msg {
		items, err := s.attempts.Recent(context.Background(), store.QueryOpts{Limit: pageSize})
		return historyLoadedMsg{Attempts: items, Err: err}
	}
}

func (s *HistoryScreen) Title() string {
	return "History"
}

func (s *HistoryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Show query"},
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *HistoryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case historyLoadedMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
		} else {
			s.items = msg.Attempts
		}
		s.loaded = true
		return s, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "up", "k":
			if s.selected > 0 {
				s.selected--
			}
			return s, nil
		case "down", "j":
			if s.selected < len(s.items)-1 {
				s.selected++
			}
			return s, nil
		case "enter":
			s.expanded[s.selected] = !s.expanded[s.selected]
			return s, nil
		}
	}
	return s, nil
}

func (s *HistoryScreen) View(width, height int) string {
	center := lipgloss.NewStyle().Width(width).Align(lipgloss.Center)
	if s.errMsg != "" {
		return center.Foreground(theme.Error).Render(fmt.Sprintf("\n\nError: %s", s.errMsg))
	}
	if !s.loaded {
		return center.Foreground(theme.TextDim).Render("\n\n  Loading history...")
	}
	if len(s.items) == 0 {
		return center.Foreground(theme.TextDim).Italic(true).
			Render("\n\n  No attempts yet. Run a query in a lesson with an answer check.")
	}

	var b strings.Builder
	b.WriteString("\n")

	for i, a := range s.items {
		verdict := theme.Correct.Render("✓ pass")
		if !a.Passed {
			verdict = theme.Incorrect.Render("✗ fail")
		}
		line := fmt.Sprintf("%s  %-10s  %s",
			a.CreatedAt.Local().Format("Jan 02 15:04"), a.LessonID, verdict)

		if i == s.selected {
			b.WriteString(theme.Selected.Render("▸ ") + line)
		} else {
			b.WriteString("  " + lipgloss.NewStyle().Foreground(theme.Text).Render(line))
		}
		b.WriteString("\n")

		if s.expanded[i] {
			for _, ql := range strings.Split(strings.TrimSpace(a.Query), "\n") {
				b.WriteString("      " + theme.Code.Render(ql) + "\n")
			}
		}
	}

	// Keep the selected row on screen.
	lines := strings.Split(b.String(), "\n")
	if len(lines) > height && height > 0 {
		start := s.selected + 1 - height/2
		if start < 0 {
			start = 0
		}
		if start > len(lines)-height {
			start = len(lines) - height
		}
		lines = lines[start : start+height]
	}

	return lipgloss.NewStyle().Width(width).Padding(0, 2).Render(strings.Join(lines, "\n"))
}
