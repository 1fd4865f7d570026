package home

import (
	"context"
	"sync"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/sqlquest/internal/lessons"
	"github.com/abhisek/sqlquest/internal/progress"
	"github.com/abhisek/sqlquest/internal/router"
	"github.com/abhisek/sqlquest/internal/screens/history"
	lessonscreen "github.com/abhisek/sqlquest/internal/screens/lesson"
	"github.com/abhisek/sqlquest/internal/session"
	"github.com/abhisek/sqlquest/internal/store"
)

type memKV struct {
	mu   sync.Mutex
	data map[string]string
}

func (m *memKV) Get(_ context.Context, key string) (string, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.data[key]
	return v, ok, nil
}

func (m *memKV) Set(_ context.Context, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = value
	return nil
}

type noAttempts struct{}

func (noAttempts) Append(context.Context, store.AttemptData) error { return nil }
func (noAttempts) Recent(context.Context, store.QueryOpts) ([]store.Attempt, error) {
	return nil, nil
}
func (noAttempts) Summary(context.Context) (map[string]store.AttemptSummary, error) {
	return nil, nil
}

func newSession(t *testing.T) *session.Session {
	t.Helper()
	ctx := context.Background()
	tr, err := progress.Load(ctx, &memKV{data: map[string]string{}}, lessons.IDs())
	require.NoError(t, err)
	s, err := session.New(ctx, session.Options{Tracker: tr})
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func typeText(h *HomeScreen, text string) {
	for _, r := range text {
		h.Update(tea.KeyPressMsg{Code: r, Text: string(r)})
	}
}

func TestListsAllLessons(t *testing.T) {
	h := New(newSession(t), nil)
	assert.Len(t, h.shown, lessons.Count())

	view := h.View(120, 40)
	assert.Contains(t, view, "Intro: SELECT & FROM")
	assert.Contains(t, view, "0 of 7 lessons completed")
}

func TestSearchFilters(t *testing.T) {
	h := New(newSession(t), nil)
	typeText(h, "join")

	require.NotEmpty(t, h.shown)
	for _, l := range h.shown {
		assert.Contains(t, []string{"joins", "selfjoin", "sales"}, l.ID)
	}

	assert.Contains(t, h.View(120, 40), "match")

	typeText(h, "zzz")
	assert.Empty(t, h.shown)
	assert.Contains(t, h.View(120, 40), "No lessons match")

	h.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	assert.Empty(t, h.search.Value())
	assert.Len(t, h.shown, lessons.Count())
}

func TestEnterOpensSelectedLesson(t *testing.T) {
	s := newSession(t)
	h := New(s, nil)

	h.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	h.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	_, cmd := h.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	require.NotNil(t, cmd)

	push, ok := cmd().(router.PushScreenMsg)
	require.True(t, ok)
	_, isLesson := push.Screen.(*lessonscreen.LessonScreen)
	assert.True(t, isLesson)
	assert.Equal(t, "joins", s.Active().ID)
}

func TestCompletionBadge(t *testing.T) {
	s := newSession(t)
	h := New(s, nil)

	require.NoError(t, s.Select("joins"))
	_, err := s.Run(context.Background(), lessons.First().StarterSQL)
	require.NoError(t, err)
	_, err = s.Check(context.Background())
	require.NoError(t, err)
	assert.NotContains(t, h.View(120, 40), "✓", "badges refresh on resume")

	h.Update(router.ResumedMsg{})
	assert.Contains(t, h.View(120, 40), "1 of 7 lessons completed")
	assert.Contains(t, h.View(120, 40), "✓")
}

func TestHistoryShortcut(t *testing.T) {
	h := New(newSession(t), nil)
	_, cmd := h.Update(tea.KeyPressMsg{Code: 'o', Mod: tea.ModCtrl})
	assert.Nil(t, cmd)

	h = New(newSession(t), noAttempts{})
	_, cmd = h.Update(tea.KeyPressMsg{Code: 'o', Mod: tea.ModCtrl})
	require.NotNil(t, cmd)
	push, ok := cmd().(router.PushScreenMsg)
	require.True(t, ok)
	_, isHistory := push.Screen.(*history.HistoryScreen)
	assert.True(t, isHistory)
}
