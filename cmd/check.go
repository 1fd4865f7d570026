package cmd

import (
	"fmt"

	"github.com/abhisek/sqlquest/internal/grading"
	"github.com/abhisek/sqlquest/internal/session"
	"github.com/spf13/cobra"
)

var checkCmd = &cobra.Command{
	Use:   "check <lesson-id>",
	Short: "Run a lesson's answer check",
	Long: "Evaluates the lesson's answer check against a freshly seeded database. With --sql " +
		"the statements run first, so changes they make are visible to the check.",
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmdContext(cmd)
		e, err := openEnv(cmd, logNone)
		if err != nil {
			return err
		}
		defer e.Close()

		sess, err := e.newSession(ctx)
		if err != nil {
			return err
		}
		defer sess.Close()

		id := args[0]
		if err := sess.Select(id); err != nil {
			return err
		}
		if !sess.Gradable() {
			return fmt.Errorf("lesson %q: %w", id, session.ErrNotGradable)
		}

		out := cmd.OutOrStdout()
		var res grading.Result
		graded := false
		if text, _ := cmd.Flags().GetString("sql"); text != "" {
			// Run grades the lesson itself after a successful render.
			outcome, err := sess.Run(ctx, text)
			if err != nil {
				return err
			}
			if outcome.Err != "" {
				fmt.Fprintln(out, "Error:", outcome.Err)
				return errQueryFailed
			}
			if outcome.Result != nil {
				res, graded = *outcome.Result, true
			}
		}
		if !graded {
			if res, err = sess.Check(ctx); err != nil {
				return err
			}
		}

		if res.Passed {
			fmt.Fprintln(out, "✓", session.CheckPassedMessage)
		} else {
			fmt.Fprintln(out, "✗", session.CheckFailedMessage)
		}
		if res.Summary != "" {
			fmt.Fprintln(out, " ", res.Summary)
		}
		fmt.Fprintf(out, "Progress: %d%%\n", sess.Percent())
		return nil
	},
}

func init() {
	checkCmd.Flags().String("sql", "", "Statements to run before the check")
}
