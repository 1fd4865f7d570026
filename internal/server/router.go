package server

import (
	"github.com/gin-gonic/gin"

	"github.com/abhisek/sqlquest/internal/logger"
	httpH "github.com/abhisek/sqlquest/internal/server/handlers"
	httpMW "github.com/abhisek/sqlquest/internal/server/middleware"
)

type RouterConfig struct {
	Logger         *logger.Logger
	AllowedOrigins []string

	LessonHandler   *httpH.LessonHandler
	QueryHandler    *httpH.QueryHandler
	ProgressHandler *httpH.ProgressHandler
	HealthHandler   *httpH.HealthHandler
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(httpMW.RequestLogger(cfg.Logger))
	if len(cfg.AllowedOrigins) > 0 {
		r.Use(httpMW.CORS(cfg.AllowedOrigins))
	}

	// Health
	if cfg.HealthHandler != nil {
		r.GET("/healthcheck", cfg.HealthHandler.HealthCheck)
	}

	api := r.Group("/api")
	{
		// Lessons
		if cfg.LessonHandler != nil {
			api.GET("/lessons", cfg.LessonHandler.ListLessons)
			api.GET("/lessons/:id", cfg.LessonHandler.GetLesson)
			api.POST("/lessons/:id/select", cfg.LessonHandler.SelectLesson)
			api.POST("/lessons/:id/check", cfg.LessonHandler.CheckLesson)
		}

		// Engine
		if cfg.QueryHandler != nil {
			api.POST("/query", cfg.QueryHandler.RunQuery)
			api.POST("/reset", cfg.QueryHandler.ResetDatabase)
		}

		// Progress & preferences
		if cfg.ProgressHandler != nil {
			api.GET("/progress", cfg.ProgressHandler.GetProgress)
			api.POST("/progress/reset", cfg.ProgressHandler.ResetProgress)
			api.GET("/theme", cfg.ProgressHandler.GetTheme)
			api.PUT("/theme", cfg.ProgressHandler.PutTheme)
			api.GET("/history", cfg.ProgressHandler.ListHistory)
		}
	}

	return r
}
