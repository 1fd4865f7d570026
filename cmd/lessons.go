package cmd

import (
	"fmt"
	"strings"

	"github.com/abhisek/sqlquest/internal/grading"
	"github.com/abhisek/sqlquest/internal/lessons"
	"github.com/spf13/cobra"
)

var lessonsCmd = &cobra.Command{
	Use:   "lessons [query]",
	Short: "List lessons (optionally filtered by title or tag)",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := openEnv(cmd, logNone)
		if err != nil {
			return err
		}
		defer e.Close()

		query := ""
		if len(args) == 1 {
			query = args[0]
		}
		list := lessons.Filter(query)
		if len(list) == 0 {
			return fmt.Errorf("no lessons match %q", query)
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "%-3s %-10s  %-32s  %-12s  %-7s  %s\n",
			"", "ID", "Title", "Level", "Time", "Check")
		fmt.Fprintln(out, strings.Repeat("─", 80))

		for _, l := range list {
			mark := " "
			if e.tracker.IsComplete(l.ID) {
				mark = "✓"
			}
			title := l.Title
			if len([]rune(title)) > 32 {
				title = string([]rune(title)[:29]) + "..."
			}
			check := "-"
			if grading.Has(l.ID) {
				check = "yes"
			}
			fmt.Fprintf(out, "%-3s %-10s  %-32s  %-12s  %-7s  %s\n",
				mark, l.ID, title, l.Level, l.Time, check)
		}

		fmt.Fprintf(out, "\n%d lessons, %d%% complete\n", len(list), e.tracker.Percent())
		return nil
	},
}
