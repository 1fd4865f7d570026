package app

import (
	"context"
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/sqlquest/internal/lessons"
	"github.com/abhisek/sqlquest/internal/logger"
	"github.com/abhisek/sqlquest/internal/prefs"
	"github.com/abhisek/sqlquest/internal/router"
	"github.com/abhisek/sqlquest/internal/screen"
	"github.com/abhisek/sqlquest/internal/screens/home"
	"github.com/abhisek/sqlquest/internal/screens/welcome"
	"github.com/abhisek/sqlquest/internal/session"
	"github.com/abhisek/sqlquest/internal/store"
	"github.com/abhisek/sqlquest/internal/ui/layout"
	"github.com/abhisek/sqlquest/internal/ui/theme"
)

// Options holds dependencies for the TUI.
type Options struct {
	Session  *session.Session
	Attempts store.AttemptRepo // optional; enables the history screen
	Prefs    prefs.KV          // optional; theme changes are not persisted without it
	Logger   *logger.Logger    // optional
	Theme    prefs.Theme
	// SkipWelcome starts directly on the lesson list.
	SkipWelcome bool
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router *router.Router
	sess   *session.Session
	prefs  prefs.KV
	log    *logger.Logger
	theme  prefs.Theme
	width  int
	height int
}

// newAppModel creates a new AppModel starting on the welcome screen.
func newAppModel(opts Options) AppModel {
	if opts.Logger == nil {
		opts.Logger = logger.Nop()
	}
	if opts.Theme == "" {
		opts.Theme = prefs.Dark
	}
	theme.Apply(theme.ForName(string(opts.Theme)))

	sess := opts.Session
	homeFactory := func() screen.Screen { return home.New(sess, opts.Attempts) }

	var first screen.Screen
	if opts.SkipWelcome {
		first = homeFactory()
	} else {
		first = welcome.New(homeFactory, lessons.Count())
	}

	return AppModel{
		router: router.New(first),
		sess:   sess,
		prefs:  opts.Prefs,
		log:    opts.Logger,
		theme:  opts.Theme,
	}
}

func (m AppModel) Init() tea.Cmd {
	if active := m.router.Active(); active != nil {
		return active.Init()
	}
	return nil
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			if m.router.Depth() > 1 {
				return m, func() tea.Msg { return router.PopScreenMsg{} }
			}
		case "ctrl+t":
			m.toggleTheme()
			return m, nil
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

// toggleTheme switches the palette and stores the preference. A storage
// failure keeps the new palette for this run.
func (m *AppModel) toggleTheme() {
	m.theme = m.theme.Toggle()
	theme.Apply(theme.ForName(string(m.theme)))
	if m.prefs == nil {
		return
	}
	if err := prefs.SaveTheme(context.Background(), m.prefs, m.theme); err != nil {
		m.log.Warn("save theme", "error", err)
	}
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true
	if m.width == 0 || m.height == 0 {
		return v
	}
	v.SetContent(m.render())
	return v
}

// render draws the full frame for the current terminal size.
func (m AppModel) render() string {
	if layout.IsTooSmall(m.width, m.height) {
		return layout.RenderMinSizeMessage(m.width, m.height)
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	header := layout.RenderHeader(title, m.sess.Percent(), m.width)

	var footerHints []layout.KeyHint
	if p, ok := active.(screen.KeyHintProvider); ok {
		footerHints = p.KeyHints()
	} else if m.router.Depth() > 1 {
		footerHints = []layout.KeyHint{
			{Key: "Esc", Description: "Back"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	} else {
		footerHints = []layout.KeyHint{
			{Key: "any key", Description: "Continue"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	}

	footer := layout.RenderFooter(footerHints, m.width)
	return layout.RenderFrame(header, footer, m.width, m.height, m.router.View)
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	if opts.Session == nil {
		return fmt.Errorf("app: session is required")
	}
	p := tea.NewProgram(newAppModel(opts))
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
