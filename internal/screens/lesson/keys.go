package lesson

import (
	"charm.land/bubbles/v2/key"

	"github.com/abhisek/sqlquest/internal/ui/layout"
)

type keyMap struct {
	Run     key.Binding
	Starter key.Binding
	Check   key.Binding
	Reset   key.Binding
	Tab     key.Binding
	Prev    key.Binding
	Next    key.Binding
	Load    key.Binding
	Scroll  key.Binding
	Back    key.Binding
}

func newKeyMap(gradable bool) keyMap {
	k := keyMap{
		Run:     key.NewBinding(key.WithKeys("ctrl+r"), key.WithHelp("Ctrl+R", "Run")),
		Starter: key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("Ctrl+S", "Starter")),
		Check:   key.NewBinding(key.WithKeys("ctrl+k"), key.WithHelp("Ctrl+K", "Check")),
		Reset:   key.NewBinding(key.WithKeys("ctrl+x"), key.WithHelp("Ctrl+X", "Reset DB")),
		Tab:     key.NewBinding(key.WithKeys("tab"), key.WithHelp("Tab", "Switch tab")),
		Prev:    key.NewBinding(key.WithKeys("ctrl+p"), key.WithHelp("Ctrl+P", "Prev")),
		Next:    key.NewBinding(key.WithKeys("ctrl+n"), key.WithHelp("Ctrl+N", "Next")),
		Load:    key.NewBinding(key.WithKeys("ctrl+l"), key.WithHelp("Ctrl+L", "Load")),
		Scroll:  key.NewBinding(key.WithKeys("pgup", "pgdown"), key.WithHelp("PgUp/PgDn", "Scroll")),
		Back:    key.NewBinding(key.WithKeys("esc"), key.WithHelp("Esc", "Back")),
	}
	k.Check.SetEnabled(gradable)
	return k
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Run, k.Check, k.Starter, k.Reset, k.Tab, k.Load, k.Back}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Run, k.Check, k.Starter, k.Reset},
		{k.Tab, k.Prev, k.Next, k.Load, k.Scroll, k.Back},
	}
}

// hints converts enabled bindings to footer hints.
func hints(bindings []key.Binding) []layout.KeyHint {
	out := make([]layout.KeyHint, 0, len(bindings))
	for _, b := range bindings {
		if !b.Enabled() {
			continue
		}
		h := b.Help()
		out = append(out, layout.KeyHint{Key: h.Key, Description: h.Desc})
	}
	return out
}
