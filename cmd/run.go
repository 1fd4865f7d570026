package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/abhisek/sqlquest/internal/app"
	"github.com/abhisek/sqlquest/internal/config"
	"github.com/abhisek/sqlquest/internal/grading"
	"github.com/abhisek/sqlquest/internal/lessons"
	"github.com/abhisek/sqlquest/internal/logger"
	"github.com/abhisek/sqlquest/internal/prefs"
	"github.com/abhisek/sqlquest/internal/progress"
	"github.com/abhisek/sqlquest/internal/session"
	"github.com/abhisek/sqlquest/internal/store"
	"github.com/spf13/cobra"
)

// env bundles what every command needs: config, logger and the durable
// store with the progress tracker loaded from it.
type env struct {
	cfg     config.Config
	log     *logger.Logger
	store   *store.Store
	tracker *progress.Tracker
}

type logTarget int

const (
	logNone   logTarget = iota // discard
	logFile                    // cfg.LogFile, discard when unset
	logStderr                  // stderr
)

// openEnv loads config, builds the logger and opens the store.
func openEnv(cmd *cobra.Command, target logTarget) (*env, error) {
	ctx := cmdContext(cmd)

	cfg, err := loadConfig()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	log := logger.Nop()
	switch {
	case target == logStderr:
		log, err = logger.New(cfg.LogMode, "")
	case target == logFile && cfg.LogFile != "":
		if err = store.EnsureDir(cfg.LogFile); err == nil {
			log, err = logger.New(cfg.LogMode, cfg.LogFile)
		}
	}
	if err != nil {
		return nil, fmt.Errorf("create logger: %w", err)
	}

	dbPath, err := resolveDBPath(cmd, cfg)
	if err != nil {
		return nil, fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}

	tracker, err := progress.Load(ctx, st.KV(), lessons.IDs())
	if err != nil {
		st.Close()
		return nil, fmt.Errorf("load progress: %w", err)
	}
	if lerr := tracker.LoadErr(); lerr != nil {
		log.Warn("stored progress is unreadable, starting empty", "error", lerr)
	}

	log.Debug("store opened", "path", dbPath)
	return &env{cfg: cfg, log: log, store: st, tracker: tracker}, nil
}

// cmdContext returns the command context, or Background when the command
// runs outside Execute.
func cmdContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}

// newSession creates a session backed by e's tracker and attempt log.
func (e *env) newSession(ctx context.Context) (*session.Session, error) {
	return session.New(ctx, session.Options{
		Tracker:      e.tracker,
		Grader:       grading.NewGrader(),
		Attempts:     e.store.AttemptRepo(),
		Logger:       e.log,
		QueryTimeout: e.cfg.QueryTimeout,
	})
}

func (e *env) Close() {
	e.log.Sync()
	e.store.Close()
}

// runApp opens the store, builds the session, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	ctx := cmdContext(cmd)
	e, err := openEnv(cmd, logFile)
	if err != nil {
		return err
	}
	defer e.Close()

	sess, err := e.newSession(ctx)
	if err != nil {
		return err
	}
	defer sess.Close()

	th, err := prefs.LoadTheme(ctx, e.store.KV())
	if err != nil {
		fmt.Fprintln(os.Stderr, "Could not read the theme preference:", err)
	}

	return app.Run(app.Options{
		Session:  sess,
		Attempts: e.store.AttemptRepo(),
		Prefs:    e.store.KV(),
		Logger:   e.log,
		Theme:    th,
	})
}
