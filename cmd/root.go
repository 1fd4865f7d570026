package cmd

import (
	"github.com/abhisek/sqlquest/internal/config"
	"github.com/abhisek/sqlquest/internal/store"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "sqlquest",
	Short: "Interactive SQL tutorial",
	Long: "SQL Quest is a terminal SQL tutorial. Each session gets a private, freshly seeded " +
		"database; run queries, check answers and track your progress.",
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides SQLQUEST_DB env var)")

	rootCmd.AddCommand(lessonsCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(queryCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(progressCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(themeCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(versionCmd)
}

// loadConfig reads .env from the working directory and the environment.
func loadConfig() (config.Config, error) {
	return config.Load(".env")
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then SQLQUEST_DB, then the default XDG path.
func resolveDBPath(cmd *cobra.Command, cfg config.Config) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	if cfg.DBPath != "" {
		return cfg.DBPath, store.EnsureDir(cfg.DBPath)
	}
	return store.DefaultDBPath()
}
