package grading

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/abhisek/sqlquest/internal/engine"
)

type evaluatorFunc func(set *engine.ResultSet, check Check) (bool, string)

// Grader evaluates lesson rules against engine state.
type Grader struct {
	rules    map[string]Rule
	registry map[Kind]evaluatorFunc
}

// NewGrader returns a grader over the built-in rule table.
func NewGrader() *Grader {
	return NewGraderWithRules(builtinRules)
}

// NewGraderWithRules returns a grader over a custom rule table.
func NewGraderWithRules(rules map[string]Rule) *Grader {
	g := &Grader{rules: rules, registry: map[Kind]evaluatorFunc{}}
	g.registry[KindRowCountMin] = evalRowCountMin
	g.registry[KindColumnPresent] = evalColumnPresent
	g.registry[KindTopRowEquals] = evalTopRowEquals
	return g
}

// Has reports whether the grader has a rule for the lesson.
func (g *Grader) Has(lessonID string) bool {
	_, ok := g.rules[lessonID]
	return ok
}

// Grade runs the lesson's reference query read-only and evaluates every
// check against its first result set. An error means the rule could not
// be evaluated; callers treat it as not passed.
func (g *Grader) Grade(ctx context.Context, lessonID string, q Querier) (Result, error) {
	rule, ok := g.rules[lessonID]
	if !ok {
		return Result{}, fmt.Errorf("%w: %q", ErrNoRule, lessonID)
	}

	sets, err := q.QueryReadOnly(ctx, rule.Query)
	if err != nil {
		return Result{}, fmt.Errorf("reference query for %q: %w", lessonID, err)
	}
	var first *engine.ResultSet
	if len(sets) > 0 {
		first = &sets[0]
	}

	result := Result{LessonID: lessonID, Passed: true}
	var summaries []string
	for _, check := range rule.Checks {
		eval, ok := g.registry[check.Kind]
		if !ok {
			return Result{}, fmt.Errorf("unknown check kind %q", check.Kind)
		}
		passed, summary := eval(first, check)
		if !passed {
			result.Passed = false
		}
		summaries = append(summaries, summary)
	}
	result.Summary = strings.Join(summaries, "; ")
	return result, nil
}

func evalRowCountMin(set *engine.ResultSet, check Check) (bool, string) {
	n := 0
	if set != nil {
		n = set.Count()
	}
	return n >= check.MinRows, fmt.Sprintf("rows=%d min=%d", n, check.MinRows)
}

func evalColumnPresent(set *engine.ResultSet, check Check) (bool, string) {
	if set == nil {
		return false, fmt.Sprintf("column %q missing: no result set", check.Column)
	}
	if slices.Contains(set.Columns, check.Column) {
		return true, fmt.Sprintf("column %q present", check.Column)
	}
	return false, fmt.Sprintf("column %q missing", check.Column)
}

func evalTopRowEquals(set *engine.ResultSet, check Check) (bool, string) {
	if set == nil || len(set.Rows) == 0 || len(set.Rows[0]) == 0 {
		return false, "no top row"
	}
	got := fmt.Sprint(set.Rows[0][0])
	if b, ok := set.Rows[0][0].([]byte); ok {
		got = string(b)
	}
	return got == check.Expected, fmt.Sprintf("top=%q want=%q", got, check.Expected)
}
