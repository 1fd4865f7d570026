package components

import (
	"fmt"
	"strings"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/sqlquest/internal/ui/theme"
)

// MenuItem is one selectable row.
type MenuItem struct {
	Label    string
	Detail   string // dim second line, optional
	Badge    string // rendered after the label, optional
	Action   func() tea.Cmd
	Disabled bool
}

var menuKeys = struct {
	Up, Down, Open key.Binding
}{
	Up:   key.NewBinding(key.WithKeys("up", "ctrl+p")),
	Down: key.NewBinding(key.WithKeys("down", "ctrl+n")),
	Open: key.NewBinding(key.WithKeys("enter")),
}

// Menu is a vertical list. Only arrow and control keys move the cursor so
// a focused text input can share the screen. Height, when positive, limits
// the rendered lines and scrolls to keep the cursor visible.
type Menu struct {
	Items    []MenuItem
	Selected int
	Height   int
}

// NewMenu creates a menu with the cursor on the first enabled item.
func NewMenu(items []MenuItem) Menu {
	m := Menu{Items: items}
	for i, item := range items {
		if !item.Disabled {
			m.Selected = i
			break
		}
	}
	return m
}

// SetItems replaces the items, keeping the cursor in range.
func (m *Menu) SetItems(items []MenuItem) {
	m.Items = items
	m.Selected = min(m.Selected, len(items)-1)
	m.Selected = max(m.Selected, 0)
}

func (m Menu) Init() tea.Cmd {
	return nil
}

func (m Menu) Update(msg tea.Msg) (Menu, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch {
	case key.Matches(kmsg, menuKeys.Up):
		m.move(-1)
	case key.Matches(kmsg, menuKeys.Down):
		m.move(1)
	case key.Matches(kmsg, menuKeys.Open):
		if m.Selected < 0 || m.Selected >= len(m.Items) {
			return m, nil
		}
		if item := m.Items[m.Selected]; item.Action != nil && !item.Disabled {
			return m, item.Action()
		}
	}
	return m, nil
}

// move steps the cursor to the next enabled item in direction dir.
func (m *Menu) move(dir int) {
	for i := m.Selected + dir; i >= 0 && i < len(m.Items); i += dir {
		if !m.Items[i].Disabled {
			m.Selected = i
			return
		}
	}
}

func (m Menu) View() string {
	rows := make([]string, len(m.Items))
	for i, item := range m.Items {
		rows[i] = m.renderItem(i, item)
	}
	if m.Height <= 0 {
		return strings.Join(rows, "\n")
	}
	return window(rows, m.Selected, m.Height)
}

func (m Menu) renderItem(i int, item MenuItem) string {
	label := item.Label
	if item.Badge != "" {
		label += " " + item.Badge
	}
	var line string
	switch {
	case i == m.Selected:
		line = lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render("  ▸ " + label)
	case item.Disabled:
		line = lipgloss.NewStyle().Foreground(theme.TextDim).Render("    " + label)
	default:
		line = lipgloss.NewStyle().Foreground(theme.Text).Render("    " + label)
	}
	if item.Detail != "" {
		line += "\n" + theme.Hint.Render("      "+item.Detail)
	}
	return line
}

// window picks consecutive rows around sel that fit in height lines,
// reserving a line for each "more" marker it needs.
func window(rows []string, sel, height int) string {
	if len(rows) == 0 {
		return ""
	}
	lines := func(lo, hi int) int {
		n := 0
		for _, r := range rows[lo:hi] {
			n += lipgloss.Height(r)
		}
		if lo > 0 {
			n++
		}
		if hi < len(rows) {
			n++
		}
		return n
	}
	lo, hi := sel, sel+1
	for {
		switch {
		case hi < len(rows) && lines(lo, hi+1) <= height:
			hi++
		case lo > 0 && lines(lo-1, hi) <= height:
			lo--
		default:
			var out []string
			if lo > 0 {
				out = append(out, theme.Hint.Render(fmt.Sprintf("    ↑ %d more", lo)))
			}
			out = append(out, rows[lo:hi]...)
			if hi < len(rows) {
				out = append(out, theme.Hint.Render(fmt.Sprintf("    ↓ %d more", len(rows)-hi)))
			}
			return strings.Join(out, "\n")
		}
	}
}
