package components

import (
	"fmt"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/sqlquest/internal/ui/theme"
)

// TextInput is a single-line input with a label and an optional match
// count, used for the lesson search box.
type TextInput struct {
	Model   textinput.Model
	Label   string
	Matches int // shown after the input when Counted is set
	Counted bool
}

// NewTextInput creates a focused input limited to limit characters.
func NewTextInput(label, placeholder string, limit int) TextInput {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.Prompt = ""
	if limit > 0 {
		ti.CharLimit = limit
	}
	ti.Focus()
	return TextInput{Model: ti, Label: label}
}

func (t TextInput) Init() tea.Cmd {
	return t.Model.Focus()
}

func (t TextInput) Update(msg tea.Msg) (TextInput, tea.Cmd) {
	var cmd tea.Cmd
	t.Model, cmd = t.Model.Update(msg)
	return t, cmd
}

// SetMatches records how many items the current value matches.
func (t *TextInput) SetMatches(n int) {
	t.Matches = n
	t.Counted = true
}

// Clear empties the input.
func (t *TextInput) Clear() {
	t.Model.SetValue("")
}

func (t TextInput) View() string {
	out := lipgloss.NewStyle().Foreground(theme.Accent).Bold(true).Render(t.Label) + " " + t.Model.View()
	if t.Counted && t.Model.Value() != "" {
		noun := "matches"
		if t.Matches == 1 {
			noun = "match"
		}
		out += "  " + theme.Hint.Render(fmt.Sprintf("%d %s", t.Matches, noun))
	}
	return out
}

func (t TextInput) Value() string {
	return t.Model.Value()
}
