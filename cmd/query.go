package cmd

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/abhisek/sqlquest/internal/present"
	"github.com/abhisek/sqlquest/internal/session"
	"github.com/spf13/cobra"
)

// errQueryFailed marks a query error that was already printed.
var errQueryFailed = errors.New("query failed")

var queryCmd = &cobra.Command{
	Use:   "query <sql>",
	Short: "Run SQL against a freshly seeded database",
	Long: "Runs one or more statements against a private, freshly seeded database and prints " +
		"every result set. With --lesson, the lesson's answer check runs afterwards and a " +
		"pass is recorded in your progress.",
	Args: cobra.MinimumNArgs(1),
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

		if id, _ := cmd.Flags().GetString("lesson"); id != "" {
			if err := sess.Select(id); err != nil {
				return err
			}
		}

		text := strings.Join(args, " ")
		outcome, err := sess.Run(ctx, text)
		if err != nil {
			return err
		}
		return printOutcome(cmd.OutOrStdout(), outcome)
	},
}

// printOutcome writes the results, or the error, followed by the grading
// verdict when the active lesson was graded.
func printOutcome(out io.Writer, o session.Outcome) error {
	if o.Err != "" {
		fmt.Fprintln(out, "Error:", o.Err)
		if o.Hint != "" {
			fmt.Fprintln(out, "Hint:", o.Hint)
		}
		return errQueryFailed
	}
	fmt.Fprint(out, present.Text(o.View))
	if !o.Graded {
		return nil
	}
	if o.Passed {
		fmt.Fprintln(out, "\n✓", session.CheckPassedMessage)
		if o.Newly {
			fmt.Fprintln(out, "  Lesson completed for the first time.")
		}
	} else {
		fmt.Fprintln(out, "\n✗", session.CheckFailedMessage)
	}
	if o.Result != nil && o.Result.Summary != "" {
		fmt.Fprintln(out, " ", o.Result.Summary)
	}
	return nil
}

func init() {
	queryCmd.Flags().String("lesson", "", "Lesson to grade the query against (e.g. joins)")
}
