package cmd

import (
	"fmt"

	"github.com/abhisek/sqlquest/internal/prefs"
	"github.com/spf13/cobra"
)

var themeCmd = &cobra.Command{
	Use:       "theme [dark|light|toggle]",
	Short:     "Show or change the color theme",
	Args:      cobra.MaximumNArgs(1),
	ValidArgs: []string{"dark", "light", "toggle"},
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := openEnv(cmd, logNone)
		if err != nil {
			return err
		}
		defer e.Close()

		ctx := cmdContext(cmd)
		kv := e.store.KV()
		current, err := prefs.LoadTheme(ctx, kv)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if len(args) == 0 {
			fmt.Fprintln(out, current)
			return nil
		}

		next := current.Toggle()
		if args[0] != "toggle" {
			if next, err = prefs.ParseTheme(args[0]); err != nil {
				return err
			}
		}
		if err := prefs.SaveTheme(ctx, kv, next); err != nil {
			return err
		}
		fmt.Fprintf(out, "Theme set to %s\n", next)
		return nil
	},
}
