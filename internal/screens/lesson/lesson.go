package lesson

import (
	"context"
	"errors"

	"charm.land/bubbles/v2/key"
	"charm.land/bubbles/v2/spinner"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/sqlquest/internal/lessons"
	"github.com/abhisek/sqlquest/internal/screen"
	sess "github.com/abhisek/sqlquest/internal/session"
	"github.com/abhisek/sqlquest/internal/ui/components"
	"github.com/abhisek/sqlquest/internal/ui/layout"
	"github.com/abhisek/sqlquest/internal/ui/theme"
)

type tab int

const (
	tabLesson tab = iota
	tabExamples
	tabExercises
	tabCount
)

var tabNames = [tabCount]string{"Lesson", "Examples", "Exercises"}

// busy describes the in-flight operation, if any.
type busy int

const (
	busyNone busy = iota
	busyRunning
	busyChecking
	busyResetting
)

// LessonScreen shows the active lesson next to a query editor and the
// results of the last execution.
type LessonScreen struct {
	sess      *sess.Session
	lesson    lessons.Lesson
	exercises []lessons.Exercise
	keys      keyMap

	editor    components.Editor
	editorW   int
	tab       tab
	pick      int
	scroll    int
	spin      spinner.Model
	busy      busy
	outcome   sess.Outcome
	status    string
	statusBad bool
}

var _ screen.Screen = (*LessonScreen)(nil)
var _ screen.KeyHintProvider = (*LessonScreen)(nil)

// New creates a LessonScreen for the session's active lesson. The editor
// starts with the session's editor text and the last outcome is shown.
func New(s *sess.Session) *LessonScreen {
	l := s.Active()
	return &LessonScreen{
		sess:      s,
		lesson:    l,
		exercises: lessons.ExercisesFor(l),
		keys:      newKeyMap(s.Gradable()),
		editor:    components.NewEditor(s.Editor(), 60, editorHeight),
		outcome:   s.Last(),
		spin: spinner.New(
			spinner.WithSpinner(spinner.MiniDot),
			spinner.WithStyle(lipgloss.NewStyle().Foreground(theme.Accent)),
		),
	}
}

func (ls *LessonScreen) Init() tea.Cmd {
	return ls.editor.Init()
}

func (ls *LessonScreen) Title() string {
	return ls.lesson.Title
}

func (ls *LessonScreen) KeyHints() []layout.KeyHint {
	if ls.tab == tabLesson {
		return hints([]key.Binding{ls.keys.Run, ls.keys.Check, ls.keys.Starter, ls.keys.Reset, ls.keys.Tab, ls.keys.Back})
	}
	return hints([]key.Binding{ls.keys.Run, ls.keys.Check, ls.keys.Tab, ls.keys.Prev, ls.keys.Next, ls.keys.Load, ls.keys.Back})
}

func (ls *LessonScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case queryDoneMsg:
		return ls.handleQueryDone(msg)
	case checkDoneMsg:
		return ls.handleCheckDone(msg)
	case resetDoneMsg:
		return ls.handleResetDone(msg)
	case spinner.TickMsg:
		if ls.busy == busyNone {
			return ls, nil
		}
		var cmd tea.Cmd
		ls.spin, cmd = ls.spin.Update(msg)
		return ls, cmd
	case tea.KeyMsg:
		if handled, cmd := ls.handleKey(msg); handled {
			return ls, cmd
		}
	}

	var cmd tea.Cmd
	ls.editor, cmd = ls.editor.Update(msg)
	return ls, cmd
}

// handleKey processes screen-level bindings. Keys that are not handled
// fall through to the editor.
func (ls *LessonScreen) handleKey(msg tea.KeyMsg) (bool, tea.Cmd) {
	switch {
	case key.Matches(msg, ls.keys.Run):
		return true, ls.run()
	case key.Matches(msg, ls.keys.Check):
		return true, ls.check()
	case key.Matches(msg, ls.keys.Reset):
		return true, ls.reset()
	case key.Matches(msg, ls.keys.Starter):
		ls.editor.SetValue(ls.sess.LoadStarter())
		ls.setStatus("Starter query loaded.", false)
		return true, nil
	case key.Matches(msg, ls.keys.Tab):
		ls.tab = (ls.tab + 1) % tabCount
		ls.pick = 0
		return true, nil
	case key.Matches(msg, ls.keys.Scroll):
		if msg.String() == "pgup" {
			ls.scroll -= 5
			if ls.scroll < 0 {
				ls.scroll = 0
			}
		} else {
			ls.scroll += 5
		}
		return true, nil
	}

	if ls.tab == tabLesson {
		return false, nil
	}
	switch {
	case key.Matches(msg, ls.keys.Prev):
		if ls.pick > 0 {
			ls.pick--
		}
		return true, nil
	case key.Matches(msg, ls.keys.Next):
		if ls.pick < ls.itemCount()-1 {
			ls.pick++
		}
		return true, nil
	case key.Matches(msg, ls.keys.Load):
		ls.load()
		return true, nil
	}
	return false, nil
}

func (ls *LessonScreen) itemCount() int {
	switch ls.tab {
	case tabExamples:
		return len(ls.lesson.Examples)
	case tabExercises:
		return len(ls.exercises)
	}
	return 0
}

// load puts the picked example or exercise solution into the editor.
func (ls *LessonScreen) load() {
	var (
		text string
		err  error
	)
	switch ls.tab {
	case tabExamples:
		text, err = ls.sess.LoadExample(ls.pick)
	case tabExercises:
		text, err = ls.sess.LoadExercise(ls.pick)
	default:
		return
	}
	if err != nil {
		ls.setStatus(err.Error(), true)
		return
	}
	ls.editor.SetValue(text)
	ls.setStatus("Loaded into the editor. Press Ctrl+R to run it.", false)
}

func (ls *LessonScreen) setStatus(msg string, bad bool) {
	ls.status = msg
	ls.statusBad = bad
}

func (ls *LessonScreen) startBusy(b busy) tea.Cmd {
	ls.busy = b
	ls.status = ""
	return func() tea.Msg { return ls.spin.Tick() }
}

func (ls *LessonScreen) run() tea.Cmd {
	if ls.busy != busyNone {
		return nil
	}
	text := ls.editor.Value()
	s := ls.sess
	return tea.Batch(ls.startBusy(busyRunning), func() tea.Msg {
		out, err := s.Run(context.Background(), text)
		return queryDoneMsg{Outcome: out, Err: err}
	})
}

func (ls *LessonScreen) check() tea.Cmd {
	if ls.busy != busyNone {
		return nil
	}
	ls.sess.SetEditor(ls.editor.Value())
	s := ls.sess
	return tea.Batch(ls.startBusy(busyChecking), func() tea.Msg {
		res, err := s.Check(context.Background())
		return checkDoneMsg{Result: res, Err: err}
	})
}

func (ls *LessonScreen) reset() tea.Cmd {
	if ls.busy != busyNone {
		return nil
	}
	s := ls.sess
	return tea.Batch(ls.startBusy(busyResetting), func() tea.Msg {
		return resetDoneMsg{Err: s.Reset(context.Background())}
	})
}

func (ls *LessonScreen) handleQueryDone(msg queryDoneMsg) (screen.Screen, tea.Cmd) {
	ls.busy = busyNone
	if errors.Is(msg.Err, sess.ErrBusy) {
		ls.setStatus("Another query is still running.", true)
		return ls, nil
	}
	ls.outcome = msg.Outcome
	ls.scroll = 0
	if msg.Outcome.Newly {
		ls.setStatus("✓ Lesson completed!", false)
	}
	return ls, nil
}

func (ls *LessonScreen) handleCheckDone(msg checkDoneMsg) (screen.Screen, tea.Cmd) {
	ls.busy = busyNone
	switch {
	case errors.Is(msg.Err, sess.ErrBusy):
		ls.setStatus("Another query is still running.", true)
	case msg.Err != nil:
		ls.setStatus(msg.Err.Error(), true)
	case msg.Result.Passed:
		ls.setStatus(sess.CheckPassedMessage, false)
	default:
		ls.setStatus(sess.CheckFailedMessage, true)
	}
	return ls, nil
}

func (ls *LessonScreen) handleResetDone(msg resetDoneMsg) (screen.Screen, tea.Cmd) {
	ls.busy = busyNone
	ls.outcome = ls.sess.Last()
	ls.scroll = 0
	if msg.Err != nil {
		ls.setStatus(msg.Err.Error(), true)
		return ls, nil
	}
	ls.setStatus("Database reset to the seed data.", false)
	return ls, nil
}
