package components

import (
	"charm.land/bubbles/v2/textarea"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/sqlquest/internal/ui/theme"
)

// Editor is a multi-line SQL editor.
type Editor struct {
	Model textarea.Model
}

// NewEditor creates a focused editor holding text.
func NewEditor(text string, width, height int) Editor {
	ta := textarea.New()
	ta.Placeholder = "Write SQL here…"
	ta.ShowLineNumbers = true
	ta.CharLimit = 0
	ta.SetWidth(width)
	ta.SetHeight(height)
	ta.SetValue(text)
	ta.Focus()
	return Editor{Model: ta}
}

// Init returns the initial command.
func (e Editor) Init() tea.Cmd {
	return e.Model.Focus()
}

// Update handles messages.
func (e Editor) Update(msg tea.Msg) (Editor, tea.Cmd) {
	var cmd tea.Cmd
	e.Model, cmd = e.Model.Update(msg)
	return e, cmd
}

// SetSize resizes the editor.
func (e *Editor) SetSize(width, height int) {
	e.Model.SetWidth(width)
	e.Model.SetHeight(height)
}

// SetValue replaces the editor text.
func (e *Editor) SetValue(text string) {
	e.Model.SetValue(text)
}

// Value returns the editor text.
func (e Editor) Value() string {
	return e.Model.Value()
}

// View renders the editor inside a card.
func (e Editor) View() string {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Primary).
		Render(e.Model.View())
}
