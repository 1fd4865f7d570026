package engine

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sync"

	"github.com/google/uuid"

	// Pure Go SQLite driver (no CGO).
	_ "modernc.org/sqlite"
)

// ErrClosed is returned by every operation on an instance after Close.
var ErrClosed = errors.New("engine instance is closed")

// KeptRows is the most rows a ResultSet holds. Further rows are stepped
// and counted but not kept.
const KeptRows = 1000

// ResultSet is the tabular output of one statement. Rows holds at most
// KeptRows rows; Total counts every row the statement produced.
type ResultSet struct {
	Columns []string
	Rows    [][]any
	Total   int
}

// Count returns the number of rows the statement produced.
func (r ResultSet) Count() int {
	return max(r.Total, len(r.Rows))
}

// QueryError wraps a driver failure. Its message is the driver's message verbatim.
type QueryError struct {
	Statement string
	Err       error
}

func (e *QueryError) Error() string { return e.Err.Error() }

func (e *QueryError) Unwrap() error { return e.Err }

// Factory creates fresh, empty in-memory instances.
type Factory struct{}

// NewFactory returns the default SQLite-backed factory.
func NewFactory() *Factory { return &Factory{} }

// Open creates a new, empty instance. Every instance is a distinct named
// in-memory database, so instances never observe each other's state.
func (f *Factory) Open(ctx context.Context) (*Instance, error) {
	name := uuid.New().String()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", name)

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open engine: %w", err)
	}
	// The in-memory database lives as long as its single connection.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)
	db.SetConnMaxIdleTime(0)

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping engine: %w", err)
	}
	return &Instance{name: name, db: db}, nil
}

// Instance is one in-memory relational database.
type Instance struct {
	mu     sync.Mutex
	name   string
	db     *sql.DB
	closed bool
}

// Name returns the instance's unique in-memory database name.
func (in *Instance) Name() string { return in.name }

// queryer is satisfied by *sql.DB, *sql.Conn and *sql.Tx.
type queryer interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
}

func (in *Instance) handle() (*sql.DB, error) {
	in.mu.Lock()
	defer in.mu.Unlock()
	if in.closed {
		return nil, ErrClosed
	}
	return in.db, nil
}

// Run executes a schema script. It produces no result sets.
func (in *Instance) Run(ctx context.Context, script string) error {
	db, err := in.handle()
	if err != nil {
		return err
	}
	for _, stmt := range Split(script) {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return &QueryError{Statement: stmt, Err: err}
		}
	}
	return nil
}

// Prepared is a statement prepared for repeated parameterized execution.
type Prepared struct {
	text string
	stmt *sql.Stmt
}

// Prepare compiles a single statement for repeated execution.
func (in *Instance) Prepare(ctx context.Context, text string) (*Prepared, error) {
	db, err := in.handle()
	if err != nil {
		return nil, err
	}
	stmt, err := db.PrepareContext(ctx, text)
	if err != nil {
		return nil, &QueryError{Statement: text, Err: err}
	}
	return &Prepared{text: text, stmt: stmt}, nil
}

// Run executes the prepared statement with one row of parameters.
func (p *Prepared) Run(ctx context.Context, args ...any) error {
	if _, err := p.stmt.ExecContext(ctx, args...); err != nil {
		return &QueryError{Statement: p.text, Err: err}
	}
	return nil
}

// Release frees the prepared statement.
func (p *Prepared) Release() error {
	return p.stmt.Close()
}

// Exec runs arbitrary query text, possibly several statements, and returns
// one result set for every statement that reports columns.
func (in *Instance) Exec(ctx context.Context, text string) ([]ResultSet, error) {
	db, err := in.handle()
	if err != nil {
		return nil, err
	}
	return execAll(ctx, db, text)
}

// gradeSavepoint scopes read-only queries.
const gradeSavepoint = "sqlquest_readonly"

// QueryReadOnly behaves like Exec but inside a savepoint that is always
// rolled back, so the instance state is never modified. A savepoint nests
// inside a transaction the learner left open, where BEGIN would fail.
func (in *Instance) QueryReadOnly(ctx context.Context, text string) ([]ResultSet, error) {
	db, err := in.handle()
	if err != nil {
		return nil, err
	}
	conn, err := db.Conn(ctx)
	if err != nil {
		return nil, fmt.Errorf("acquire connection: %w", err)
	}
	defer conn.Close()

	if _, err := conn.ExecContext(ctx, "SAVEPOINT "+gradeSavepoint); err != nil {
		return nil, fmt.Errorf("begin read-only query: %w", err)
	}
	defer func() {
		// The caller's deadline may already have passed.
		bg := context.WithoutCancel(ctx)
		conn.ExecContext(bg, "ROLLBACK TO "+gradeSavepoint)
		conn.ExecContext(bg, "RELEASE "+gradeSavepoint)
	}()
	return execAll(ctx, conn, text)
}

// Close discards the instance. It is not reusable afterwards.
func (in *Instance) Close() error {
	in.mu.Lock()
	defer in.mu.Unlock()
	if in.closed {
		return nil
	}
	in.closed = true
	return in.db.Close()
}

func execAll(ctx context.Context, q queryer, text string) ([]ResultSet, error) {
	var sets []ResultSet
	for _, stmt := range Split(text) {
		set, ok, err := execOne(ctx, q, stmt)
		if err != nil {
			return nil, err
		}
		if ok {
			sets = append(sets, set)
		}
	}
	return sets, nil
}

func execOne(ctx context.Context, q queryer, stmt string) (ResultSet, bool, error) {
	rows, err := q.QueryContext(ctx, stmt)
	if err != nil {
		return ResultSet{}, false, &QueryError{Statement: stmt, Err: err}
	}
	defer rows.Close()

	cols, err := rows.Columns()
	if err != nil {
		return ResultSet{}, false, &QueryError{Statement: stmt, Err: err}
	}

	set := ResultSet{Columns: cols, Rows: [][]any{}}
	// Stepping is what executes the statement, even when it reports no columns.
	for rows.Next() {
		if len(cols) == 0 {
			continue
		}
		set.Total++
		if len(set.Rows) >= KeptRows {
			continue
		}
		vals := make([]any, len(cols))
		ptrs := make([]any, len(cols))
		for i := range vals {
			ptrs[i] = &vals[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return ResultSet{}, false, &QueryError{Statement: stmt, Err: err}
		}
		set.Rows = append(set.Rows, vals)
	}
	if err := rows.Err(); err != nil {
		return ResultSet{}, false, &QueryError{Statement: stmt, Err: err}
	}
	return set, len(cols) > 0, nil
}
