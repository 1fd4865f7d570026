package welcome

import (
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/sqlquest/internal/router"
	"github.com/abhisek/sqlquest/internal/screen"
	"github.com/abhisek/sqlquest/internal/ui/theme"
)

const (
	tickInterval = 100 * time.Millisecond
	bannerAt     = 300 * time.Millisecond
	taglineAt    = 900 * time.Millisecond
	totalDur     = 2000 * time.Millisecond
)

// prompt frames blink the cursor under the banner.
var promptFrames = []string{"sqlite> █", "sqlite>  "}

type tickMsg time.Time

// WelcomeScreen shows a short splash before handing over to the lesson list.
type WelcomeScreen struct {
	homeFactory  func() screen.Screen
	lessonCount  int
	elapsed      time.Duration
	tickCount    int
	transitioned bool
}

var _ screen.Screen = (*WelcomeScreen)(nil)

// New creates a WelcomeScreen that will transition to the screen produced by homeFactory.
func New(homeFactory func() screen.Screen, lessonCount int) *WelcomeScreen {
	return &WelcomeScreen{
		homeFactory: homeFactory,
		lessonCount: lessonCount,
	}
}

func (w *WelcomeScreen) Title() string {
	return ""
}

func (w *WelcomeScreen) Init() tea.Cmd {
	return tick()
}

func tick() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (w *WelcomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg.(type) {
	case tickMsg:
		if w.transitioned {
			return w, nil
		}
		if w.elapsed < totalDur {
			w.elapsed += tickInterval
		}
		w.tickCount++
		return w, tick()

	case tea.KeyPressMsg:
		// Any key skips the animation.
		return w, w.transition()
	}

	return w, nil
}

func (w *WelcomeScreen) transition() tea.Cmd {
	if w.transitioned {
		return nil
	}
	w.transitioned = true
	homeScreen := w.homeFactory()
	return func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: homeScreen}
	}
}

func (w *WelcomeScreen) View(width, height int) string {
	var sections []string

	if w.elapsed >= bannerAt {
		sections = append(sections, RenderBanner(width), "")
	}

	if w.elapsed >= taglineAt {
		tagline := lipgloss.NewStyle().
			Foreground(theme.Text).
			Bold(true).
			Render(fmt.Sprintf("Learn SQL by running it. %d lessons, one sandbox.", w.lessonCount))
		sections = append(sections, tagline, "")
	}

	prompt := lipgloss.NewStyle().
		Foreground(theme.Accent).
		Render(promptFrames[w.tickCount%len(promptFrames)])
	sections = append(sections, prompt)

	if w.elapsed >= totalDur {
		hint := lipgloss.NewStyle().
			Foreground(theme.TextDim).
			Italic(true).
			Render("press any key to continue")
		sections = append(sections, "", hint)
	}

	content := strings.Join(sections, "\n")

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}
