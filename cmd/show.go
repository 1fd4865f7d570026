package cmd

import (
	"fmt"
	"strings"

	"github.com/abhisek/sqlquest/internal/grading"
	"github.com/abhisek/sqlquest/internal/lessons"
	"github.com/spf13/cobra"
)

var showCmd = &cobra.Command{
	Use:   "show <lesson-id>",
	Short: "Print a lesson with its examples and exercises",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		l, err := lessons.Get(args[0])
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "%s\n%s · %s · %s\n\n", l.Title, l.Level, l.Time, strings.Join(l.Tags, ", "))
		fmt.Fprintln(out, lessons.PlainContent(l))

		fmt.Fprintf(out, "\nStarter query:\n  %s\n", l.StarterSQL)

		if len(l.Examples) > 0 {
			fmt.Fprintln(out, "\nExamples:")
			for i, ex := range l.Examples {
				fmt.Fprintf(out, "  %d. %s\n     %s\n", i+1, ex.Note, ex.SQL)
			}
		}

		fmt.Fprintln(out, "\nExercises:")
		for i, ex := range lessons.ExercisesFor(l) {
			fmt.Fprintf(out, "  %d. %s\n", i+1, ex.Title)
		}

		if grading.Has(l.ID) {
			fmt.Fprintf(out, "\nThis lesson has an answer check: sqlquest check %s\n", l.ID)
		}
		return nil
	},
}
