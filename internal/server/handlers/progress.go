package handlers

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/abhisek/sqlquest/internal/prefs"
	"github.com/abhisek/sqlquest/internal/server/response"
	"github.com/abhisek/sqlquest/internal/session"
	"github.com/abhisek/sqlquest/internal/store"
)

type ProgressHandler struct {
	sess     *session.Session
	kv       prefs.KV
	attempts store.AttemptRepo
}

func NewProgressHandler(sess *session.Session, kv prefs.KV, attempts store.AttemptRepo) *ProgressHandler {
	return &ProgressHandler{sess: sess, kv: kv, attempts: attempts}
}

// GET /api/progress
func (h *ProgressHandler) GetProgress(c *gin.Context) {
	response.RespondOK(c, gin.H{
		"percent":   h.sess.Percent(),
		"completed": h.sess.Completed(),
	})
}

// POST /api/progress/reset
func (h *ProgressHandler) ResetProgress(c *gin.Context) {
	if err := h.sess.ResetProgress(c.Request.Context()); err != nil {
		response.RespondError(c, http.StatusInternalServerError, "reset_failed", err)
		return
	}
	response.RespondOK(c, gin.H{"percent": 0, "completed": []string{}})
}

// GET /api/theme
func (h *ProgressHandler) GetTheme(c *gin.Context) {
	t, err := prefs.LoadTheme(c.Request.Context(), h.kv)
	if err != nil {
		response.RespondError(c, http.StatusInternalServerError, "theme_failed", err)
		return
	}
	response.RespondOK(c, gin.H{"theme": t})
}

type themeRequest struct {
	Theme string `json:"theme" binding:"required"`
}

// PUT /api/theme
func (h *ProgressHandler) PutTheme(c *gin.Context) {
	var req themeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	t, err := prefs.ParseTheme(req.Theme)
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_theme", err)
		return
	}
	if err := prefs.SaveTheme(c.Request.Context(), h.kv, t); err != nil {
		response.RespondError(c, http.StatusInternalServerError, "theme_failed", err)
		return
	}
	response.RespondOK(c, gin.H{"theme": t})
}

type attemptView struct {
	Sequence  int64  `json:"sequence"`
	LessonID  string `json:"lesson_id"`
	Passed    bool   `json:"passed"`
	Query     string `json:"query"`
	CreatedAt string `json:"created_at"`
}

// GET /api/history?lesson=&limit=
func (h *ProgressHandler) ListHistory(c *gin.Context) {
	if h.attempts == nil {
		response.RespondOK(c, gin.H{"attempts": []attemptView{}})
		return
	}
	limit := 50
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			response.RespondError(c, http.StatusBadRequest, "invalid_limit", fmt.Errorf("limit must be a positive integer, got %q", raw))
			return
		}
		limit = n
	}
	list, err := h.attempts.Recent(c.Request.Context(), store.QueryOpts{
		LessonID: c.Query("lesson"),
		Limit:    limit,
	})
	if err != nil {
		response.RespondError(c, http.StatusInternalServerError, "history_failed", err)
		return
	}
	out := make([]attemptView, 0, len(list))
	for _, a := range list {
		out = append(out, attemptView{
			Sequence:  a.Sequence,
			LessonID:  a.LessonID,
			Passed:    a.Passed,
			Query:     a.Query,
			CreatedAt: a.CreatedAt.UTC().Format(time.RFC3339),
		})
	}
	response.RespondOK(c, gin.H{"attempts": out})
}
