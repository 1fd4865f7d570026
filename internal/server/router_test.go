package server

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/sqlquest/internal/lessons"
	"github.com/abhisek/sqlquest/internal/progress"
	httpH "github.com/abhisek/sqlquest/internal/server/handlers"
	"github.com/abhisek/sqlquest/internal/session"
	"github.com/abhisek/sqlquest/internal/store"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	ctx := context.Background()

	st, err := store.Open(fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString()))
	require.NoError(t, err)
	t.Cleanup(func() { st.Close() })

	kv := st.KV()
	tracker, err := progress.Load(ctx, kv, lessons.IDs())
	require.NoError(t, err)
	attempts := st.AttemptRepo()

	sess, err := session.New(ctx, session.Options{Tracker: tracker, Attempts: attempts})
	require.NoError(t, err)
	t.Cleanup(func() { sess.Close() })

	return NewRouter(RouterConfig{
		LessonHandler:   httpH.NewLessonHandler(sess),
		QueryHandler:    httpH.NewQueryHandler(sess),
		ProgressHandler: httpH.NewProgressHandler(sess, kv, attempts),
		HealthHandler:   httpH.NewHealthHandler(),
	})
}

func do(t *testing.T, r *gin.Engine, method, path string, body any) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	var out map[string]any
	if rec.Header().Get("Content-Type") == "application/json; charset=utf-8" {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	}
	return rec, out
}

func TestHealthCheck(t *testing.T) {
	r := newTestRouter(t)
	rec, _ := do(t, r, http.MethodGet, "/healthcheck", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", rec.Body.String())
}

func TestListLessons(t *testing.T) {
	r := newTestRouter(t)

	rec, body := do(t, r, http.MethodGet, "/api/lessons", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	list := body["lessons"].([]any)
	assert.Len(t, list, lessons.Count())
	first := list[0].(map[string]any)
	assert.Equal(t, "intro", first["id"])
	assert.Equal(t, true, first["active"])
	assert.Equal(t, false, first["gradable"])

	rec, body = do(t, r, http.MethodGet, "/api/lessons?q=JOIN", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	for _, item := range body["lessons"].([]any) {
		assert.Contains(t, []string{"joins", "selfjoin", "sales"}, item.(map[string]any)["id"])
	}
}

func TestGetLesson(t *testing.T) {
	r := newTestRouter(t)

	rec, body := do(t, r, http.MethodGet, "/api/lessons/sales", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	l := body["lesson"].(map[string]any)
	assert.Equal(t, true, l["gradable"])
	sales, _ := lessons.Get("sales")
	assert.Len(t, l["exercises"], len(lessons.ExercisesFor(sales)))
	assert.NotContains(t, l["content_text"], "<code>")

	rec, body = do(t, r, http.MethodGet, "/api/lessons/nope", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "lesson_not_found", body["error"].(map[string]any)["code"])
}

func TestQueryAutoGradesAndMarksProgress(t *testing.T) {
	r := newTestRouter(t)

	rec, body := do(t, r, http.MethodPost, "/api/lessons/joins/select", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	starter := body["editor"].(string)

	rec, body = do(t, r, http.MethodPost, "/api/query", map[string]string{"sql": starter})
	require.Equal(t, http.StatusOK, rec.Code)
	out := body["outcome"].(map[string]any)
	assert.Equal(t, true, out["graded"])
	assert.Equal(t, true, out["passed"])
	assert.EqualValues(t, 14, body["percent"])

	rec, body = do(t, r, http.MethodGet, "/api/progress", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, []any{"joins"}, body["completed"])

	rec, body = do(t, r, http.MethodGet, "/api/history?lesson=joins", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, body["attempts"], 1)
}

func TestQueryError(t *testing.T) {
	r := newTestRouter(t)
	rec, body := do(t, r, http.MethodPost, "/api/query", map[string]string{"sql": "SELECT * FROM Nope"})
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	e := body["error"].(map[string]any)
	assert.Equal(t, "query_error", e["code"])
	assert.Contains(t, e["message"], "no such table")
	assert.Contains(t, e["hint"], "Departments, Employees and Sales")
}

func TestQueryPresentsBlocks(t *testing.T) {
	r := newTestRouter(t)
	rec, body := do(t, r, http.MethodPost, "/api/query", map[string]string{
		"sql": "SELECT dept_name FROM Departments ORDER BY dept_id; SELECT 1 AS one WHERE 0;",
	})
	require.Equal(t, http.StatusOK, rec.Code)
	view := body["outcome"].(map[string]any)["view"].(map[string]any)
	blocks := view["blocks"].([]any)
	require.Len(t, blocks, 2)
	assert.EqualValues(t, 4, blocks[0].(map[string]any)["total_rows"])
	assert.EqualValues(t, 0, blocks[1].(map[string]any)["total_rows"])
}

func TestCheckEndpoint(t *testing.T) {
	r := newTestRouter(t)

	rec, body := do(t, r, http.MethodPost, "/api/lessons/intro/check", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "not_gradable", body["error"].(map[string]any)["code"])

	rec, body = do(t, r, http.MethodPost, "/api/lessons/sales/check", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, session.CheckPassedMessage, body["message"])
}

func TestResetEndpoint(t *testing.T) {
	r := newTestRouter(t)
	rec, _ := do(t, r, http.MethodPost, "/api/query", map[string]string{"sql": "DELETE FROM Sales;"})
	require.Equal(t, http.StatusOK, rec.Code)

	rec, _ = do(t, r, http.MethodPost, "/api/reset", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec, body := do(t, r, http.MethodPost, "/api/query", map[string]string{"sql": "SELECT COUNT(*) AS n FROM Sales;"})
	require.Equal(t, http.StatusOK, rec.Code)
	block := body["outcome"].(map[string]any)["view"].(map[string]any)["blocks"].([]any)[0].(map[string]any)
	assert.Equal(t, "6", block["rows"].([]any)[0].([]any)[0])
}

func TestThemeEndpoints(t *testing.T) {
	r := newTestRouter(t)

	rec, body := do(t, r, http.MethodGet, "/api/theme", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "dark", body["theme"])

	rec, _ = do(t, r, http.MethodPut, "/api/theme", map[string]string{"theme": "light"})
	require.Equal(t, http.StatusOK, rec.Code)

	rec, body = do(t, r, http.MethodGet, "/api/theme", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "light", body["theme"])

	rec, _ = do(t, r, http.MethodPut, "/api/theme", map[string]string{"theme": "neon"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHistoryInvalidLimit(t *testing.T) {
	r := newTestRouter(t)
	rec, body := do(t, r, http.MethodGet, "/api/history?limit=zero", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "invalid_limit", body["error"].(map[string]any)["code"])
}
