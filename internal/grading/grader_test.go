package grading

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/sqlquest/internal/engine"
	"github.com/abhisek/sqlquest/internal/lessons"
	"github.com/abhisek/sqlquest/internal/seed"
)

func seeded(t *testing.T) *engine.Instance {
	t.Helper()
	in, err := seed.OpenSeeded(context.Background(), engine.NewFactory())
	require.NoError(t, err)
	t.Cleanup(func() { in.Close() })
	return in
}

func TestGradeBuiltinRulesPassOnSeed(t *testing.T) {
	in := seeded(t)
	g := NewGrader()
	for _, id := range []string{"filters", "joins", "agg", "selfjoin", "sales"} {
		res, err := g.Grade(context.Background(), id, in)
		require.NoError(t, err, id)
		assert.True(t, res.Passed, "%s: %s", id, res.Summary)
		assert.Equal(t, id, res.LessonID)
	}
}

func TestRulesReferToCatalogLessons(t *testing.T) {
	for id := range builtinRules {
		_, err := lessons.Get(id)
		assert.NoError(t, err, "rule for unknown lesson %q", id)
	}
	assert.False(t, Has("intro"))
	assert.False(t, Has("date"))
	assert.True(t, Has("joins"))
}

func TestGradeUnknownLesson(t *testing.T) {
	_, err := NewGrader().Grade(context.Background(), "intro", seeded(t))
	assert.True(t, errors.Is(err, ErrNoRule))
}

func TestGradeDoesNotMutate(t *testing.T) {
	in := seeded(t)
	g := NewGraderWithRules(map[string]Rule{
		"x": {Query: "DELETE FROM Sales; SELECT COUNT(*) AS n FROM Sales;", Checks: []Check{{Kind: KindRowCountMin, MinRows: 1}}},
	})
	_, err := g.Grade(context.Background(), "x", in)
	require.NoError(t, err)

	sets, err := in.Exec(context.Background(), "SELECT COUNT(*) FROM Sales")
	require.NoError(t, err)
	assert.Equal(t, int64(6), sets[0].Rows[0][0])
}

func TestGradeFailsWhenStateChanged(t *testing.T) {
	in := seeded(t)
	_, err := in.Exec(context.Background(), "DELETE FROM Employees WHERE role='Engineer';")
	require.NoError(t, err)

	res, err := NewGrader().Grade(context.Background(), "filters", in)
	require.NoError(t, err)
	assert.False(t, res.Passed)
}

func TestGradeReferenceQueryError(t *testing.T) {
	in := seeded(t)
	_, err := in.Exec(context.Background(), "DROP TABLE Sales;")
	require.NoError(t, err)

	_, err = NewGrader().Grade(context.Background(), "sales", in)
	var qe *engine.QueryError
	assert.True(t, errors.As(err, &qe))
}

func TestEvaluators(t *testing.T) {
	set := &engine.ResultSet{
		Columns: []string{"emp_name", "total"},
		Rows:    [][]any{{"Nicole Reyes", 780000.0}, {"Arun Singh", 525000.0}},
	}
	tests := []struct {
		name  string
		set   *engine.ResultSet
		check Check
		want  bool
	}{
		{"rows ok", set, Check{Kind: KindRowCountMin, MinRows: 2}, true},
		{"rows short", set, Check{Kind: KindRowCountMin, MinRows: 3}, false},
		{"rows nil set", nil, Check{Kind: KindRowCountMin, MinRows: 1}, false},
		{"column present", set, Check{Kind: KindColumnPresent, Column: "total"}, true},
		{"column case sensitive", set, Check{Kind: KindColumnPresent, Column: "TOTAL"}, false},
		{"column nil set", nil, Check{Kind: KindColumnPresent, Column: "total"}, false},
		{"top row match", set, Check{Kind: KindTopRowEquals, Expected: "Nicole Reyes"}, true},
		{"top row other", set, Check{Kind: KindTopRowEquals, Expected: "Arun Singh"}, false},
		{"top row empty", &engine.ResultSet{Columns: []string{"a"}}, Check{Kind: KindTopRowEquals, Expected: "x"}, false},
	}
	g := NewGrader()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, _ := g.registry[tt.check.Kind](tt.set, tt.check)
			assert.Equal(t, tt.want, got)
		})
	}
}
