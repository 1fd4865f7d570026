package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/abhisek/sqlquest/internal/lessons"
	"github.com/spf13/cobra"
)

var progressCmd = &cobra.Command{
	Use:     "progress",
	Aliases: []string{"stats"},
	Short:   "Show completed lessons and answer-check attempts",
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := openEnv(cmd, logNone)
		if err != nil {
			return err
		}
		defer e.Close()

		summary, err := e.store.AttemptRepo().Summary(cmdContext(cmd))
		if err != nil {
			return fmt.Errorf("load attempts: %w", err)
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "%d%% complete (%d of %d lessons)\n\n",
			e.tracker.Percent(), len(e.tracker.Completed()), lessons.Count())

		fmt.Fprintf(out, "%-3s %-10s  %-32s  %8s  %6s  %s\n",
			"", "ID", "Title", "Attempts", "Passes", "Last attempt")
		fmt.Fprintln(out, strings.Repeat("─", 86))
		for _, l := range lessons.All() {
			mark := " "
			if e.tracker.IsComplete(l.ID) {
				mark = "✓"
			}
			s := summary[l.ID]
			last := "-"
			if !s.Last.IsZero() {
				last = s.Last.Local().Format(time.DateTime)
			}
			fmt.Fprintf(out, "%-3s %-10s  %-32s  %8d  %6d  %s\n",
				mark, l.ID, l.Title, s.Attempts, s.Passes, last)
		}
		return nil
	},
}
