package grading

import (
	"context"
	"errors"

	"github.com/abhisek/sqlquest/internal/engine"
)

// ErrNoRule is returned when a lesson has no grading rule.
var ErrNoRule = errors.New("lesson has no grading rule")

// Kind names a grading strategy.
type Kind string

const (
	KindRowCountMin   Kind = "row_count_min"
	KindColumnPresent Kind = "column_present"
	KindTopRowEquals  Kind = "top_row_equals"
)

// Check is one predicate over the first result set of a rule's query.
type Check struct {
	Kind     Kind
	MinRows  int    // row_count_min
	Column   string // column_present
	Expected string // top_row_equals: first cell of the first row
}

// Rule is a lesson's reference query plus the checks that must all pass.
type Rule struct {
	Query  string
	Checks []Check
}

// Result is the outcome of grading one lesson.
type Result struct {
	LessonID string `json:"lesson_id"`
	Passed   bool   `json:"passed"`
	Summary  string `json:"summary"`
}

// Querier runs read-only queries against the current engine state.
type Querier interface {
	QueryReadOnly(ctx context.Context, text string) ([]engine.ResultSet, error)
}
