package screen

import (
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/sqlquest/internal/ui/layout"
)

// Screen is one page of the TUI: welcome, lesson list, lesson workspace or
// attempt history. The app frame draws the header and footer around it.
type Screen interface {
	Init() tea.Cmd
	Update(msg tea.Msg) (Screen, tea.Cmd)

	// View renders the body into width x height cells.
	View(width, height int) string

	// Title is shown in the header bar.
	Title() string
}

// KeyHintProvider is implemented by screens that list their own shortcuts
// in the footer. Others get a generic Back/Quit footer.
type KeyHintProvider interface {
	KeyHints() []layout.KeyHint
}
