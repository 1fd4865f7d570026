package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/abhisek/sqlquest/internal/store"
	"github.com/spf13/cobra"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List recent answer-check attempts",
	RunE: func(cmd *cobra.Command, args []string) error {
		lessonID, _ := cmd.Flags().GetString("lesson")
		limit, _ := cmd.Flags().GetInt("limit")
		if limit < 0 {
			return fmt.Errorf("--limit must not be negative")
		}

		e, err := openEnv(cmd, logNone)
		if err != nil {
			return err
		}
		defer e.Close()

		attempts, err := e.store.AttemptRepo().Recent(cmdContext(cmd), store.QueryOpts{
			LessonID: lessonID,
			Limit:    limit,
		})
		if err != nil {
			return fmt.Errorf("load attempts: %w", err)
		}

		out := cmd.OutOrStdout()
		if len(attempts) == 0 {
			fmt.Fprintln(out, "No attempts yet.")
			return nil
		}

		fmt.Fprintf(out, "%-19s  %-10s  %-6s  %s\n", "When", "Lesson", "Result", "Query")
		fmt.Fprintln(out, strings.Repeat("─", 90))
		for _, a := range attempts {
			result := "fail"
			if a.Passed {
				result = "pass"
			}
			q := strings.Join(strings.Fields(a.Query), " ")
			if len([]rune(q)) > 48 {
				q = string([]rune(q)[:45]) + "..."
			}
			fmt.Fprintf(out, "%-19s  %-10s  %-6s  %s\n",
				a.CreatedAt.Local().Format(time.DateTime), a.LessonID, result, q)
		}
		return nil
	},
}

func init() {
	historyCmd.Flags().String("lesson", "", "Only show attempts for this lesson")
	historyCmd.Flags().Int("limit", 20, "Maximum number of attempts to show (0 = all)")
}
