package cmd

import (
	"fmt"

	"github.com/abhisek/sqlquest/internal/prefs"
	"github.com/spf13/cobra"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Clear completed lessons",
	Long: "Clears every completed lesson. The practice database needs no reset from here: " +
		"each session starts from fresh seed data.",
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := openEnv(cmd, logNone)
		if err != nil {
			return err
		}
		defer e.Close()

		ctx := cmdContext(cmd)
		if err := e.tracker.Reset(ctx); err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		fmt.Fprintln(out, "Progress cleared.")

		if resetTheme, _ := cmd.Flags().GetBool("theme"); resetTheme {
			if err := e.store.KV().Delete(ctx, prefs.ThemeKey); err != nil {
				return fmt.Errorf("reset theme: %w", err)
			}
			fmt.Fprintln(out, "Theme preference cleared.")
		}
		return nil
	},
}

func init() {
	resetCmd.Flags().Bool("theme", false, "Also clear the stored theme preference")
}
