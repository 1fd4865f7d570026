package seed

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/sqlquest/internal/engine"
)

func seededInstance(t *testing.T) *engine.Instance {
	t.Helper()
	in, err := OpenSeeded(context.Background(), engine.NewFactory())
	require.NoError(t, err)
	t.Cleanup(func() { in.Close() })
	return in
}

func count(t *testing.T, in *engine.Instance, query string) int64 {
	t.Helper()
	sets, err := in.Exec(context.Background(), query)
	require.NoError(t, err)
	require.Len(t, sets, 1)
	require.Len(t, sets[0].Rows, 1)
	n, ok := sets[0].Rows[0][0].(int64)
	require.True(t, ok, "count is %T", sets[0].Rows[0][0])
	return n
}

func TestSeedRowCounts(t *testing.T) {
	in := seededInstance(t)

	tests := []struct {
		table string
		want  int64
	}{
		{"Departments", 4},
		{"Employees", 10},
		{"Sales", 6},
	}
	for _, tt := range tests {
		if got := count(t, in, "SELECT COUNT(*) FROM "+tt.table); got != tt.want {
			t.Errorf("%s: got %d rows, want %d", tt.table, got, tt.want)
		}
	}
}

func TestSeedEngineeringHeadcount(t *testing.T) {
	in := seededInstance(t)
	sets, err := in.Exec(context.Background(), "SELECT COUNT(*) FROM Employees WHERE dept_id=20;")
	require.NoError(t, err)
	require.Len(t, sets, 1)
	require.Len(t, sets[0].Columns, 1)
	require.Len(t, sets[0].Rows, 1)
	assert.Equal(t, int64(3), sets[0].Rows[0][0])

	sets, err = in.Exec(context.Background(), "SELECT emp_name FROM Employees WHERE dept_id=20 ORDER BY emp_id")
	require.NoError(t, err)
	var names []any
	for _, r := range sets[0].Rows {
		names = append(names, r[0])
	}
	assert.Equal(t, []any{"Mayank Sharma", "David Harris", "Yasmin Ali"}, names)
}

func TestSeedIsDeterministic(t *testing.T) {
	a := seededInstance(t)
	b := seededInstance(t)
	const q = "SELECT * FROM Employees ORDER BY emp_id; SELECT * FROM Sales ORDER BY sale_id; SELECT * FROM Departments ORDER BY dept_id"

	setsA, err := a.Exec(context.Background(), q)
	require.NoError(t, err)
	setsB, err := b.Exec(context.Background(), q)
	require.NoError(t, err)
	assert.Equal(t, setsA, setsB)
}

func TestSeedTwiceOnSameInstanceFails(t *testing.T) {
	in := seededInstance(t)
	assert.Error(t, Seed(context.Background(), in))
}

func TestTopSellerIsUnique(t *testing.T) {
	in := seededInstance(t)
	sets, err := in.Exec(context.Background(),
		"SELECT e.emp_name, SUM(s.amount) AS total FROM Sales s JOIN Employees e ON s.emp_id=e.emp_id GROUP BY e.emp_name ORDER BY total DESC")
	require.NoError(t, err)
	require.Len(t, sets[0].Rows, 2)
	assert.Equal(t, "Nicole Reyes", sets[0].Rows[0][0])
	assert.Equal(t, 780000.0, sets[0].Rows[0][1])
	assert.Equal(t, 525000.0, sets[0].Rows[1][1])
}

func TestColumnsMatchSchema(t *testing.T) {
	in := seededInstance(t)
	for table, want := range Columns {
		sets, err := in.Exec(context.Background(), "SELECT name FROM pragma_table_info('"+table+"') ORDER BY cid;")
		require.NoError(t, err)
		require.Len(t, sets, 1)
		var got []string
		for _, row := range sets[0].Rows {
			got = append(got, row[0].(string))
		}
		assert.Equal(t, want, got, table)
	}
}
