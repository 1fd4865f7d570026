package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/abhisek/sqlquest/internal/lessons"
	"github.com/abhisek/sqlquest/internal/server/response"
	"github.com/abhisek/sqlquest/internal/session"
)

type LessonHandler struct {
	sess *session.Session
}

func NewLessonHandler(sess *session.Session) *LessonHandler {
	return &LessonHandler{sess: sess}
}

type lessonSummary struct {
	ID        string        `json:"id"`
	Title     string        `json:"title"`
	Level     lessons.Level `json:"level"`
	Time      string        `json:"time"`
	Tags      []string      `json:"tags"`
	Completed bool          `json:"completed"`
	Gradable  bool          `json:"gradable"`
	Active    bool          `json:"active"`
}

type lessonDetail struct {
	lessons.Lesson
	Exercises   []lessons.Exercise `json:"exercises"`
	ContentText string             `json:"content_text"`
	Completed   bool               `json:"completed"`
	Gradable    bool               `json:"gradable"`
}

// GET /api/lessons?q=
func (h *LessonHandler) ListLessons(c *gin.Context) {
	active := h.sess.Active().ID
	list := h.sess.Lessons(c.Query("q"))
	out := make([]lessonSummary, 0, len(list))
	for _, l := range list {
		out = append(out, lessonSummary{
			ID:        l.ID,
			Title:     l.Title,
			Level:     l.Level,
			Time:      l.Time,
			Tags:      l.Tags,
			Completed: h.sess.IsComplete(l.ID),
			Gradable:  h.sess.CanGrade(l.ID),
			Active:    l.ID == active,
		})
	}
	response.RespondOK(c, gin.H{"lessons": out})
}

// GET /api/lessons/:id
func (h *LessonHandler) GetLesson(c *gin.Context) {
	l, err := lessons.Get(c.Param("id"))
	if err != nil {
		response.RespondError(c, http.StatusNotFound, "lesson_not_found", err)
		return
	}
	response.RespondOK(c, gin.H{"lesson": lessonDetail{
		Lesson:      l,
		Exercises:   lessons.ExercisesFor(l),
		ContentText: lessons.PlainContent(l),
		Completed:   h.sess.IsComplete(l.ID),
		Gradable:    h.sess.CanGrade(l.ID),
	}})
}

// POST /api/lessons/:id/select
func (h *LessonHandler) SelectLesson(c *gin.Context) {
	if err := h.sess.Select(c.Param("id")); err != nil {
		response.RespondError(c, http.StatusNotFound, "lesson_not_found", err)
		return
	}
	response.RespondOK(c, gin.H{
		"lesson_id": h.sess.Active().ID,
		"editor":    h.sess.Editor(),
	})
}

// POST /api/lessons/:id/check
func (h *LessonHandler) CheckLesson(c *gin.Context) {
	res, err := h.sess.CheckLesson(c.Request.Context(), c.Param("id"))
	switch {
	case errors.Is(err, lessons.ErrNotFound):
		response.RespondError(c, http.StatusNotFound, "lesson_not_found", err)
		return
	case errors.Is(err, session.ErrNotGradable):
		response.RespondError(c, http.StatusBadRequest, "not_gradable", err)
		return
	case errors.Is(err, session.ErrBusy):
		response.RespondError(c, http.StatusConflict, "busy", err)
		return
	case err != nil:
		response.RespondError(c, http.StatusInternalServerError, "check_failed", err)
		return
	}

	msg := session.CheckFailedMessage
	if res.Passed {
		msg = session.CheckPassedMessage
	}
	response.RespondOK(c, gin.H{
		"result":  res,
		"message": msg,
		"percent": h.sess.Percent(),
	})
}
