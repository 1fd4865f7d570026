package cmd

import (
	"bytes"
	"errors"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/sqlquest/internal/session"
)

// resetFlags restores every flag to its default; cobra keeps flag values
// between executions of the same command tree.
func resetFlags(c *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	c.Flags().VisitAll(reset)
	c.PersistentFlags().VisitAll(reset)
	for _, sub := range c.Commands() {
		resetFlags(sub)
	}
}

// execute runs the CLI with args against the database at db.
func execute(t *testing.T, db string, args ...string) (string, error) {
	t.Helper()
	resetFlags(rootCmd)
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(append([]string{"--db", db}, args...))
	err := rootCmd.Execute()
	return out.String(), err
}

func tempDB(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "sqlquest.db")
}

func TestDisplayVersion(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"(devel)", "(devel)"},
		{"v1.2.3", "v1.2.3"},
		{"1.2", "v1.2.0"},
		{"v2", "v2.0.0"},
		{"nonsense", "(devel)"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, displayVersion(tt.in), tt.in)
	}
}

func TestLessonsCommand(t *testing.T) {
	out, err := execute(t, tempDB(t), "lessons")
	require.NoError(t, err)
	assert.Contains(t, out, "joins")
	assert.Contains(t, out, "7 lessons, 0% complete")
}

func TestLessonsFilterNoMatch(t *testing.T) {
	_, err := execute(t, tempDB(t), "lessons", "zzz-nothing")
	assert.Error(t, err)
}

func TestShowCommand(t *testing.T) {
	out, err := execute(t, tempDB(t), "show", "joins")
	require.NoError(t, err)
	assert.Contains(t, out, "Starter query:")
	assert.Contains(t, out, "Exercises:")
	assert.Contains(t, out, "sqlquest check joins")

	_, err = execute(t, tempDB(t), "show", "nope")
	assert.Error(t, err)
}

func TestQueryCommand(t *testing.T) {
	out, err := execute(t, tempDB(t), "query", "SELECT COUNT(*) AS n FROM Employees;")
	require.NoError(t, err)
	assert.Contains(t, out, "Result set #1")
	assert.Contains(t, out, "10")
}

func TestQueryCommandError(t *testing.T) {
	out, err := execute(t, tempDB(t), "query", "SELECT * FROM Nope;")
	assert.True(t, errors.Is(err, errQueryFailed))
	assert.Contains(t, out, "no such table")

	out, _ = execute(t, tempDB(t), "query", "SELECT emp_nam FROM Employees;")
	assert.Contains(t, out, "Hint: There is no column \"emp_nam\". Did you mean emp_name?")
}

func TestQueryWithLessonRecordsProgress(t *testing.T) {
	db := tempDB(t)
	out, err := execute(t, db, "query", "--lesson", "joins",
		"SELECT e.emp_name, d.dept_name FROM Employees e JOIN Departments d ON e.dept_id = d.dept_id;")
	require.NoError(t, err)
	assert.Contains(t, out, session.CheckPassedMessage)
	assert.Contains(t, out, "first time")

	out, err = execute(t, db, "progress")
	require.NoError(t, err)
	assert.Contains(t, out, "14% complete (1 of 7 lessons)")

	out, err = execute(t, db, "history", "--lesson", "joins")
	require.NoError(t, err)
	assert.Contains(t, out, "joins")
	assert.Contains(t, out, "pass")
}

func TestCheckCommand(t *testing.T) {
	db := tempDB(t)
	out, err := execute(t, db, "check", "filters")
	require.NoError(t, err)
	assert.Contains(t, out, session.CheckPassedMessage)
	assert.Contains(t, out, "Progress: 14%")

	out, err = execute(t, db, "check", "agg", "--sql", "DELETE FROM Sales; DELETE FROM Employees;")
	require.NoError(t, err)
	assert.Contains(t, out, session.CheckFailedMessage)

	_, err = execute(t, db, "check", "intro")
	assert.True(t, errors.Is(err, session.ErrNotGradable))
}

func TestResetCommand(t *testing.T) {
	db := tempDB(t)
	_, err := execute(t, db, "check", "joins")
	require.NoError(t, err)

	out, err := execute(t, db, "reset")
	require.NoError(t, err)
	assert.Contains(t, out, "Progress cleared.")

	out, err = execute(t, db, "progress")
	require.NoError(t, err)
	assert.Contains(t, out, "0% complete")
}

func TestThemeCommand(t *testing.T) {
	db := tempDB(t)
	out, err := execute(t, db, "theme")
	require.NoError(t, err)
	assert.Equal(t, "dark\n", out)

	out, err = execute(t, db, "theme", "toggle")
	require.NoError(t, err)
	assert.Contains(t, out, "light")

	out, err = execute(t, db, "theme")
	require.NoError(t, err)
	assert.Equal(t, "light\n", out)

	_, err = execute(t, db, "theme", "purple")
	assert.Error(t, err)

	out, err = execute(t, db, "reset", "--theme")
	require.NoError(t, err)
	assert.Contains(t, out, "Theme preference cleared.")
	out, err = execute(t, db, "theme")
	require.NoError(t, err)
	assert.Equal(t, "dark\n", out)
}

func TestHistoryEmpty(t *testing.T) {
	out, err := execute(t, tempDB(t), "history")
	require.NoError(t, err)
	assert.Contains(t, out, "No attempts yet.")
}
