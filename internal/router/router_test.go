package router

import (
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/sqlquest/internal/screen"
)

// fakeScreen records Init calls and the messages it receives.
type fakeScreen struct {
	name    string
	inits   int
	resumed int
	got     []tea.Msg
}

func (f *fakeScreen) Init() tea.Cmd {
	f.inits++
	return nil
}

func (f *fakeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if _, ok := msg.(ResumedMsg); ok {
		f.resumed++
	}
	f.got = append(f.got, msg)
	return f, nil
}

func (f *fakeScreen) View(int, int) string { return "view:" + f.name }
func (f *fakeScreen) Title() string        { return f.name }

func TestStackOperations(t *testing.T) {
	home := &fakeScreen{name: "home"}
	lesson := &fakeScreen{name: "lesson"}
	hist := &fakeScreen{name: "history"}

	tests := []struct {
		name      string
		op        func(r *Router)
		wantDepth int
		wantTop   string
	}{
		{"push", func(r *Router) { r.Push(lesson) }, 2, "lesson"},
		{"pop", func(r *Router) { r.Push(lesson); r.Pop() }, 1, "home"},
		{"pop at bottom", func(r *Router) { r.Pop() }, 1, "home"},
		{"replace bottom", func(r *Router) { r.Replace(lesson) }, 1, "lesson"},
		{"replace keeps depth", func(r *Router) { r.Push(lesson); r.Replace(hist) }, 2, "history"},
	}
	for _, tt := range tests {
		r := New(home)
		tt.op(r)
		if r.Depth() != tt.wantDepth {
			t.Errorf("%s: depth = %d, want %d", tt.name, r.Depth(), tt.wantDepth)
		}
		if got := r.Active().Title(); got != tt.wantTop {
			t.Errorf("%s: active = %q, want %q", tt.name, got, tt.wantTop)
		}
	}
}

func TestPushAndReplaceRunInit(t *testing.T) {
	r := New(&fakeScreen{name: "welcome"})
	home := &fakeScreen{name: "home"}
	r.Update(ReplaceScreenMsg{Screen: home})
	lesson := &fakeScreen{name: "lesson"}
	r.Update(PushScreenMsg{Screen: lesson})

	if home.inits != 1 || lesson.inits != 1 {
		t.Errorf("inits = %d/%d, want 1/1", home.inits, lesson.inits)
	}
}

func TestPopResumesScreenBelow(t *testing.T) {
	home := &fakeScreen{name: "home"}
	r := New(home)
	r.Push(&fakeScreen{name: "lesson"})

	cmd := r.Update(PopScreenMsg{})
	if cmd == nil {
		t.Fatal("expected a resume command")
	}
	r.Update(cmd())
	if home.resumed != 1 {
		t.Errorf("home resumed %d times, want 1", home.resumed)
	}

	if cmd := r.Pop(); cmd != nil {
		t.Error("pop at the bottom should return nil")
	}
}

func TestUpdateForwardsToActive(t *testing.T) {
	home := &fakeScreen{name: "home"}
	lesson := &fakeScreen{name: "lesson"}
	r := New(home)
	r.Push(lesson)

	r.Update(tea.KeyPressMsg{Code: 'a', Text: "a"})
	if len(lesson.got) != 1 || len(home.got) != 0 {
		t.Errorf("lesson got %d msgs, home got %d; want 1 and 0", len(lesson.got), len(home.got))
	}
	if got := r.View(80, 24); got != "view:lesson" {
		t.Errorf("View = %q", got)
	}
}
