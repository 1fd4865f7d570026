package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/abhisek/sqlquest/internal/server"
	"github.com/abhisek/sqlquest/internal/server/handlers"
	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the tutorial over an HTTP JSON API",
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := openEnv(cmd, logStderr)
		if err != nil {
			return err
		}
		defer e.Close()

		if addr, _ := cmd.Flags().GetString("addr"); addr != "" {
			e.cfg.HTTPAddr = addr
		}
		if e.cfg.LogMode == "prod" {
			gin.SetMode(gin.ReleaseMode)
		}

		ctx, stop := signal.NotifyContext(cmdContext(cmd), os.Interrupt, syscall.SIGTERM)
		defer stop()

		sess, err := e.newSession(ctx)
		if err != nil {
			return err
		}
		defer sess.Close()

		srv := server.NewServer(server.RouterConfig{
			Logger:          e.log,
			AllowedOrigins:  e.cfg.AllowedOrigins,
			LessonHandler:   handlers.NewLessonHandler(sess),
			QueryHandler:    handlers.NewQueryHandler(sess),
			ProgressHandler: handlers.NewProgressHandler(sess, e.store.KV(), e.store.AttemptRepo()),
			HealthHandler:   handlers.NewHealthHandler(),
		})

		e.log.Info("http server listening", "addr", e.cfg.HTTPAddr)
		fmt.Fprintf(cmd.OutOrStdout(), "Serving on http://%s (Ctrl+C to stop)\n", e.cfg.HTTPAddr)
		return srv.Run(ctx, e.cfg.HTTPAddr)
	},
}

func init() {
	serveCmd.Flags().String("addr", "", "Listen address (overrides SQLQUEST_HTTP_ADDR)")
}
