// Package session holds the state of one tutorial session: the active
// lesson, the editor text, the engine instance and the last outcome.
package session

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/abhisek/sqlquest/internal/diagnosis"
	"github.com/abhisek/sqlquest/internal/engine"
	"github.com/abhisek/sqlquest/internal/grading"
	"github.com/abhisek/sqlquest/internal/lessons"
	"github.com/abhisek/sqlquest/internal/logger"
	"github.com/abhisek/sqlquest/internal/present"
	"github.com/abhisek/sqlquest/internal/progress"
	"github.com/abhisek/sqlquest/internal/seed"
	"github.com/abhisek/sqlquest/internal/store"
)

// DefaultQueryTimeout bounds a learner execution when Options leaves it unset.
const DefaultQueryTimeout = 5 * time.Second

// AttemptRecorder stores grading attempts. It never affects progress.
type AttemptRecorder interface {
	Append(ctx context.Context, data store.AttemptData) error
}

// Options configures a Session.
type Options struct {
	Factory      seed.Opener
	Tracker      *progress.Tracker
	Grader       *grading.Grader
	Attempts     AttemptRecorder    // optional
	Logger       *logger.Logger     // optional
	Diagnosis    *diagnosis.Service // optional; defaults to the built-in rules
	QueryTimeout time.Duration
}

// Session is the tutorial state machine. It is safe for concurrent use;
// executions are serialized and a second concurrent execution fails with
// ErrBusy.
type Session struct {
	factory  seed.Opener
	tracker  *progress.Tracker
	grader   *grading.Grader
	attempts AttemptRecorder
	log      *logger.Logger
	diag     *diagnosis.Service
	timeout  time.Duration

	// exec is held for the duration of Run, Check and Reset.
	exec sync.Mutex

	mu     sync.Mutex
	inst   *engine.Instance
	active lessons.Lesson
	editor string
	phase  Phase
	ended  Phase // phase the last execution ended in
	last   Outcome
}

// New creates a session on the first lesson with a freshly seeded engine
// instance. An error here means the engine could not be initialized and
// the session cannot be used.
func New(ctx context.Context, opts Options) (*Session, error) {
	if opts.Factory == nil {
		opts.Factory = engine.NewFactory()
	}
	if opts.Tracker == nil {
		return nil, errors.New("session: progress tracker is required")
	}
	if opts.Grader == nil {
		opts.Grader = grading.NewGrader()
	}
	if opts.Logger == nil {
		opts.Logger = logger.Nop()
	}
	if opts.Diagnosis == nil {
		opts.Diagnosis = diagnosis.NewService()
	}
	if opts.QueryTimeout <= 0 {
		opts.QueryTimeout = DefaultQueryTimeout
	}

	inst, err := seed.OpenSeeded(ctx, opts.Factory)
	if err != nil {
		return nil, fmt.Errorf("initialize engine: %w", err)
	}

	first := lessons.First()
	return &Session{
		factory:  opts.Factory,
		tracker:  opts.Tracker,
		grader:   opts.Grader,
		attempts: opts.Attempts,
		log:      opts.Logger,
		diag:     opts.Diagnosis,
		timeout:  opts.QueryTimeout,
		inst:     inst,
		active:   first,
		editor:   first.StarterSQL,
		last:     Outcome{View: present.View{Empty: true}},
	}, nil
}

// Lessons returns catalog lessons matching filter (see lessons.Filter).
func (s *Session) Lessons(filter string) []lessons.Lesson {
	return lessons.Filter(filter)
}

// Select makes the lesson active and loads its starter query into the
// editor. The last outcome is kept.
func (s *Session) Select(id string) error {
	l, err := lessons.Get(id)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.active = l
	s.editor = l.StarterSQL
	return nil
}

// Active returns the active lesson.
func (s *Session) Active() lessons.Lesson {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.active
}

// Gradable reports whether the active lesson has an answer check.
func (s *Session) Gradable() bool {
	return s.grader.Has(s.Active().ID)
}

// CanGrade reports whether lesson id has an answer check.
func (s *Session) CanGrade(id string) bool {
	return s.grader.Has(id)
}

// Editor returns the current editor text.
func (s *Session) Editor() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.editor
}

// SetEditor replaces the editor text.
func (s *Session) SetEditor(text string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.editor = text
}

// LoadStarter puts the active lesson's starter query into the editor.
func (s *Session) LoadStarter() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.editor = s.active.StarterSQL
	return s.editor
}

// LoadExample puts example i of the active lesson into the editor.
func (s *Session) LoadExample(i int) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if i < 0 || i >= len(s.active.Examples) {
		return "", fmt.Errorf("example %d out of range (lesson %q has %d)", i, s.active.ID, len(s.active.Examples))
	}
	s.editor = s.active.Examples[i].SQL
	return s.editor, nil
}

// LoadExercise puts the solution of exercise i into the editor. Indexes
// cover the lesson's own exercises followed by the common extras.
func (s *Session) LoadExercise(i int) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	ex := lessons.ExercisesFor(s.active)
	if i < 0 || i >= len(ex) {
		return "", fmt.Errorf("exercise %d out of range (lesson %q has %d)", i, s.active.ID, len(ex))
	}
	s.editor = ex[i].SQL
	return s.editor, nil
}

// Phase returns the current execution phase. Between executions it is
// always PhaseIdle; see LastPhase for how the previous one ended.
func (s *Session) Phase() Phase {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.phase
}

// LastPhase reports how the most recent execution ended: PhaseRendered,
// PhaseErrored, or PhaseIdle when nothing has run since start or reset.
func (s *Session) LastPhase() Phase {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ended
}

// Last returns the outcome of the most recent execution.
func (s *Session) Last() Outcome {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.last
}

// Run executes text against the engine and presents the results. Query
// failures are reported in Outcome.Err, not as an error; the returned
// error is ErrBusy when another execution is in progress. After a
// successful render the active lesson is graded when it has a check.
func (s *Session) Run(ctx context.Context, text string) (Outcome, error) {
	if !s.exec.TryLock() {
		return Outcome{}, ErrBusy
	}
	defer s.exec.Unlock()
	defer s.idle()

	s.mu.Lock()
	s.phase = PhaseExecuting
	s.editor = text
	s.last.Err = ""
	inst := s.inst
	lesson := s.active
	s.mu.Unlock()

	runCtx, cancel := context.WithTimeout(ctx, s.timeout)
	sets, err := inst.Exec(runCtx, text)
	timedOut := errors.Is(runCtx.Err(), context.DeadlineExceeded)
	cancel()

	if err != nil {
		msg := err.Error()
		if timedOut {
			msg = fmt.Sprintf("query timed out after %s", s.timeout)
		}
		out := Outcome{View: present.View{Empty: true}, Err: msg}
		category := diagnosis.CategoryUnclassified
		if d := s.diag.Diagnose(text, msg); d != nil {
			out.Hint = d.Hint
			category = d.Category
		}
		s.log.Debug("query failed", "lesson", lesson.ID, "category", string(category), "error", msg)
		s.finish(PhaseErrored, out)
		return out, nil
	}

	out := Outcome{View: present.Present(sets)}
	s.finish(PhaseRendered, out)

	if s.grader.Has(lesson.ID) {
		if res, newly, ok := s.grade(ctx, lesson.ID, text); ok {
			out.Graded = true
			out.Passed = res.Passed
			out.Newly = newly
			out.Result = &res
			s.finish(PhaseRendered, out)
		}
	}
	return out, nil
}

// Check grades the active lesson against the current engine state. A
// pass marks the lesson complete.
func (s *Session) Check(ctx context.Context) (grading.Result, error) {
	return s.CheckLesson(ctx, s.Active().ID)
}

// CheckLesson grades lesson id without changing the active lesson.
func (s *Session) CheckLesson(ctx context.Context, id string) (grading.Result, error) {
	if _, err := lessons.Get(id); err != nil {
		return grading.Result{}, err
	}
	if !s.grader.Has(id) {
		return grading.Result{}, ErrNotGradable
	}
	if !s.exec.TryLock() {
		return grading.Result{}, ErrBusy
	}
	defer s.exec.Unlock()

	res, _, ok := s.grade(ctx, id, s.Editor())
	if !ok {
		// The check could not be evaluated; report it as not passed.
		return grading.Result{LessonID: id, Summary: "check could not be evaluated"}, nil
	}
	return res, nil
}

// grade runs the lesson's check. Grading errors are logged and swallowed;
// ok is false when the check could not be evaluated.
func (s *Session) grade(ctx context.Context, lessonID, query string) (res grading.Result, newly, ok bool) {
	s.mu.Lock()
	inst := s.inst
	s.mu.Unlock()

	res, err := s.grader.Grade(ctx, lessonID, inst)
	if err != nil {
		s.log.Debug("grading failed", "lesson", lessonID, "error", err)
		return grading.Result{}, false, false
	}

	if s.attempts != nil {
		if err := s.attempts.Append(ctx, store.AttemptData{LessonID: lessonID, Query: query, Passed: res.Passed}); err != nil {
			s.log.Warn("record attempt", "lesson", lessonID, "error", err)
		}
	}

	if res.Passed {
		s.mu.Lock()
		changed, err := s.tracker.MarkComplete(ctx, lessonID)
		s.mu.Unlock()
		if err != nil {
			s.log.Warn("persist progress", "lesson", lessonID, "error", err)
		}
		newly = changed
		if changed {
			s.log.Info("lesson completed", "lesson", lessonID)
		}
	}
	return res, newly, true
}

// finish records the outcome. The phase stays at phase until idle runs
// when the execution returns.
func (s *Session) finish(phase Phase, out Outcome) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.phase = phase
	s.ended = phase
	s.last = out
}

func (s *Session) idle() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.phase = PhaseIdle
}

// Reset discards the engine instance and replaces it with a freshly seeded
// one. Results and errors are cleared; progress is kept.
func (s *Session) Reset(ctx context.Context) error {
	if !s.exec.TryLock() {
		return ErrBusy
	}
	defer s.exec.Unlock()

	s.mu.Lock()
	old := s.inst
	s.mu.Unlock()
	if old != nil {
		old.Close()
	}

	inst, err := seed.OpenSeeded(ctx, s.factory)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.last = Outcome{View: present.View{Empty: true}}
	s.phase = PhaseIdle
	s.ended = PhaseIdle
	if err != nil {
		// The old instance is already gone; later runs report ErrClosed.
		s.last.Err = err.Error()
		s.ended = PhaseErrored
		return fmt.Errorf("reset engine: %w", err)
	}
	s.inst = inst
	return nil
}

// ResetProgress clears every completed lesson.
func (s *Session) ResetProgress(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.tracker.Reset(ctx)
}

// Percent returns the completion percentage.
func (s *Session) Percent() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.tracker.Percent()
}

// IsComplete reports whether lesson id is completed.
func (s *Session) IsComplete(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.tracker.IsComplete(id)
}

// Completed returns completed lesson ids in catalog order.
func (s *Session) Completed() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.tracker.Completed()
}

// Close releases the engine instance.
func (s *Session) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.inst == nil {
		return nil
	}
	return s.inst.Close()
}
