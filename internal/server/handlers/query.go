package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/abhisek/sqlquest/internal/lessons"
	"github.com/abhisek/sqlquest/internal/server/response"
	"github.com/abhisek/sqlquest/internal/session"
)

type QueryHandler struct {
	sess *session.Session
}

func NewQueryHandler(sess *session.Session) *QueryHandler {
	return &QueryHandler{sess: sess}
}

type queryRequest struct {
	SQL      string `json:"sql"`
	LessonID string `json:"lesson_id"`
}

// POST /api/query
func (h *QueryHandler) RunQuery(c *gin.Context) {
	var req queryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	if req.LessonID != "" && req.LessonID != h.sess.Active().ID {
		if err := h.sess.Select(req.LessonID); err != nil {
			if errors.Is(err, lessons.ErrNotFound) {
				response.RespondError(c, http.StatusNotFound, "lesson_not_found", err)
				return
			}
			response.RespondError(c, http.StatusInternalServerError, "select_failed", err)
			return
		}
	}

	out, err := h.sess.Run(c.Request.Context(), req.SQL)
	if errors.Is(err, session.ErrBusy) {
		response.RespondError(c, http.StatusConflict, "busy", err)
		return
	}
	if err != nil {
		response.RespondError(c, http.StatusInternalServerError, "run_failed", err)
		return
	}
	if out.Err != "" {
		response.RespondHint(c, http.StatusUnprocessableEntity, "query_error", out.Err, out.Hint)
		return
	}
	response.RespondOK(c, gin.H{
		"outcome": out,
		"percent": h.sess.Percent(),
	})
}

// POST /api/reset
func (h *QueryHandler) ResetDatabase(c *gin.Context) {
	err := h.sess.Reset(c.Request.Context())
	if errors.Is(err, session.ErrBusy) {
		response.RespondError(c, http.StatusConflict, "busy", err)
		return
	}
	if err != nil {
		response.RespondError(c, http.StatusInternalServerError, "reset_failed", err)
		return
	}
	response.RespondOK(c, gin.H{"ok": true})
}
