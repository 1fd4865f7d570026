package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	entsql "entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
)

// QueryOpts configures attempt queries with filtering and pagination.
type QueryOpts struct {
	LessonID string // only attempts for this lesson ("" = all)
	Limit    int    // max results (0 = unlimited)
	After    int64  // sequence > After
	Before   int64  // sequence < Before (0 = no bound)
}

// AttemptData is what a caller records for one grading attempt.
type AttemptData struct {
	LessonID string
	Query    string
	Passed   bool
}

// Attempt is a stored grading attempt.
type Attempt struct {
	ID        string
	Sequence  int64
	LessonID  string
	Query     string
	Passed    bool
	CreatedAt time.Time
}

// AttemptSummary aggregates the attempts of one lesson.
type AttemptSummary struct {
	LessonID string
	Attempts int
	Passes   int
	Last     time.Time
}

// AttemptRepo provides append and query access to grading attempts.
type AttemptRepo interface {
	// Append records an attempt.
	Append(ctx context.Context, data AttemptData) error

	// Recent returns attempts newest first.
	Recent(ctx context.Context, opts QueryOpts) ([]Attempt, error)

	// Summary returns per-lesson totals keyed by lesson id.
	Summary(ctx context.Context) (map[string]AttemptSummary, error)
}

// KV is string key-value storage in the kv table.
type KV struct {
	db      *sql.DB
	dialect string
}

// Get returns the value stored under key and whether it exists.
func (k *KV) Get(ctx context.Context, key string) (string, bool, error) {
	query, args := entsql.Dialect(k.dialect).
		Select("value").
		From(entsql.Table("kv")).
		Where(entsql.EQ("key", key)).
		Query()

	var value string
	err := k.db.QueryRowContext(ctx, query, args...).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("get %q: %w", key, err)
	}
	return value, true, nil
}

// Set stores value under key, replacing any previous value.
func (k *KV) Set(ctx context.Context, key, value string) error {
	query, args := entsql.Dialect(k.dialect).
		Insert("kv").
		Columns("key", "value", "updated_at").
		Values(key, value, time.Now().UnixMilli()).
		OnConflict(
			entsql.ConflictColumns("key"),
			entsql.ResolveWithNewValues(),
		).
		Query()

	if _, err := k.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("set %q: %w", key, err)
	}
	return nil
}

// Delete removes key. Deleting a missing key is not an error.
func (k *KV) Delete(ctx context.Context, key string) error {
	query, args := entsql.Dialect(k.dialect).
		Delete("kv").
		Where(entsql.EQ("key", key)).
		Query()

	if _, err := k.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("delete %q: %w", key, err)
	}
	return nil
}

// attemptRepo implements AttemptRepo with ent's SQL builder.
type attemptRepo struct {
	db      *sql.DB
	dialect string
	seq     *sequence
}

func (r *attemptRepo) Append(ctx context.Context, data AttemptData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	passed := 0
	if data.Passed {
		passed = 1
	}
	query, args := entsql.Dialect(r.dialect).
		Insert("attempts").
		Columns("id", "sequence", "lesson_id", "passed", "query", "created_at").
		Values(uuid.NewString(), seqNum, data.LessonID, passed, data.Query, time.Now().UnixMilli()).
		Query()

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("save attempt: %w", err)
	}
	return nil
}

func (r *attemptRepo) Recent(ctx context.Context, opts QueryOpts) ([]Attempt, error) {
	sel := entsql.Dialect(r.dialect).
		Select("id", "sequence", "lesson_id", "passed", "query", "created_at").
		From(entsql.Table("attempts"))
	if opts.LessonID != "" {
		sel.Where(entsql.EQ("lesson_id", opts.LessonID))
	}
	if opts.After > 0 {
		sel.Where(entsql.GT("sequence", opts.After))
	}
	if opts.Before > 0 {
		sel.Where(entsql.LT("sequence", opts.Before))
	}
	sel.OrderBy(entsql.Desc("sequence"))
	if opts.Limit > 0 {
		sel.Limit(opts.Limit)
	}

	query, args := sel.Query()
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query attempts: %w", err)
	}
	defer rows.Close()

	var out []Attempt
	for rows.Next() {
		var (
			a       Attempt
			passed  int
			created int64
		)
		if err := rows.Scan(&a.ID, &a.Sequence, &a.LessonID, &passed, &a.Query, &created); err != nil {
			return nil, fmt.Errorf("scan attempt: %w", err)
		}
		a.Passed = passed != 0
		a.CreatedAt = time.UnixMilli(created)
		out = append(out, a)
	}
	return out, rows.Err()
}

func (r *attemptRepo) Summary(ctx context.Context) (map[string]AttemptSummary, error) {
	query, args := entsql.Dialect(r.dialect).
		Select("lesson_id", entsql.Count("*"), entsql.Sum("passed"), entsql.Max("created_at")).
		From(entsql.Table("attempts")).
		GroupBy("lesson_id").
		Query()

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("summarize attempts: %w", err)
	}
	defer rows.Close()

	out := make(map[string]AttemptSummary)
	for rows.Next() {
		var (
			s      AttemptSummary
			passes sql.NullInt64
			last   sql.NullInt64
		)
		if err := rows.Scan(&s.LessonID, &s.Attempts, &passes, &last); err != nil {
			return nil, fmt.Errorf("scan summary: %w", err)
		}
		s.Passes = int(passes.Int64)
		if last.Valid {
			s.Last = time.UnixMilli(last.Int64)
		}
		out[s.LessonID] = s
	}
	return out, rows.Err()
}
