package home

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/sqlquest/internal/lessons"
	"github.com/abhisek/sqlquest/internal/router"
	"github.com/abhisek/sqlquest/internal/screen"
	"github.com/abhisek/sqlquest/internal/screens/history"
	lessonscreen "github.com/abhisek/sqlquest/internal/screens/lesson"
	"github.com/abhisek/sqlquest/internal/session"
	"github.com/abhisek/sqlquest/internal/store"
	"github.com/abhisek/sqlquest/internal/ui/components"
	"github.com/abhisek/sqlquest/internal/ui/layout"
	"github.com/abhisek/sqlquest/internal/ui/theme"
)

// HomeScreen lists lessons with a search box and the overall progress.
type HomeScreen struct {
	sess     *session.Session
	attempts store.AttemptRepo
	search   components.TextInput
	menu     components.Menu
	shown    []lessons.Lesson
	query    string
}

var _ screen.Screen = (*HomeScreen)(nil)
var _ screen.KeyHintProvider = (*HomeScreen)(nil)

// New creates a HomeScreen over sess. attempts may be nil, in which case
// the history screen is unavailable.
func New(sess *session.Session, attempts store.AttemptRepo) *HomeScreen {
	h := &HomeScreen{
		sess:     sess,
		attempts: attempts,
		search:   components.NewTextInput("Search", "title or tag…", 40),
	}
	h.filter("")
	return h
}

func (h *HomeScreen) Init() tea.Cmd {
	return h.search.Init()
}

func (h *HomeScreen) Title() string {
	return "Lessons"
}

func (h *HomeScreen) KeyHints() []layout.KeyHint {
	hints := []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Open lesson"},
	}
	if h.query != "" {
		hints = append(hints, layout.KeyHint{Key: "Esc", Description: "Clear search"})
	}
	if h.attempts != nil {
		hints = append(hints, layout.KeyHint{Key: "Ctrl+O", Description: "History"})
	}
	return append(hints,
		layout.KeyHint{Key: "Ctrl+T", Description: "Theme"},
		layout.KeyHint{Key: "Ctrl+C", Description: "Quit"},
	)
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if _, ok := msg.(router.ResumedMsg); ok {
		// A lesson may have been completed while it was open.
		h.filter(h.query)
		return h, nil
	}
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "up", "down", "ctrl+p", "ctrl+n", "enter":
			var cmd tea.Cmd
			h.menu, cmd = h.menu.Update(msg)
			return h, cmd
		case "esc":
			h.search.Clear()
			h.filter("")
			return h, nil
		case "ctrl+o":
			if h.attempts == nil {
				return h, nil
			}
			next := history.New(h.attempts)
			return h, func() tea.Msg {
				return router.PushScreenMsg{Screen: next}
			}
		}
	}

	var cmd tea.Cmd
	h.search, cmd = h.search.Update(msg)
	if q := h.search.Value(); q != h.query {
		h.filter(q)
	}
	return h, cmd
}

// filter rebuilds the menu from lessons matching q.
func (h *HomeScreen) filter(q string) {
	h.query = q
	h.shown = h.sess.Lessons(q)
	h.search.SetMatches(len(h.shown))
	h.menu.SetItems(h.items())
	if h.menu.Selected >= len(h.shown) {
		h.menu.Selected = 0
	}
}

func (h *HomeScreen) items() []components.MenuItem {
	items := make([]components.MenuItem, 0, len(h.shown))
	for i, l := range h.shown {
		item := components.MenuItem{
			Label:  fmt.Sprintf("%d. %s", i+1, l.Title),
			Detail: fmt.Sprintf("%s · %s · %s", l.Level, l.Time, strings.Join(l.Tags, ", ")),
			Action: h.open(l.ID),
		}
		if h.sess.IsComplete(l.ID) {
			item.Badge = theme.Correct.Render("✓")
		}
		items = append(items, item)
	}
	return items
}

func (h *HomeScreen) open(id string) func() tea.Cmd {
	return func() tea.Cmd {
		if err := h.sess.Select(id); err != nil {
			return nil
		}
		next := lessonscreen.New(h.sess)
		return func() tea.Msg {
			return router.PushScreenMsg{Screen: next}
		}
	}
}

func (h *HomeScreen) View(width, height int) string {
	cw := width - 8
	if cw > 90 {
		cw = 90
	}

	var sections []string
	sections = append(sections, theme.Title.Render("Pick a lesson"))
	sections = append(sections, h.search.View())

	if len(h.shown) == 0 {
		sections = append(sections, theme.Hint.Render(fmt.Sprintf("No lessons match %q.", h.query)))
	} else {
		menu := h.menu
		if height < 26 {
			items := make([]components.MenuItem, len(menu.Items))
			copy(items, menu.Items)
			for i := range items {
				items[i].Detail = ""
			}
			menu.Items = items
		}
		// Title, search, progress bar and count with their blank separators.
		menu.Height = max(height-10, 3)
		sections = append(sections, strings.TrimRight(menu.View(), "\n"))
	}

	done := len(h.sess.Completed())
	bar := components.NewProgressBar("Progress", h.sess.Percent(), cw).WithSteps(lessons.Count())
	sections = append(sections, bar.View())
	sections = append(sections, theme.Hint.Render(fmt.Sprintf("%d of %d lessons completed", done, lessons.Count())))

	content := lipgloss.NewStyle().Width(cw).Render(strings.Join(sections, "\n\n"))
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Top, content)
}
