package store

import (
	"context"
	"database/sql"
	"fmt"
	"sync"
)

// sequence is a named, persistent counter. Attempt rows take their
// sequence from it so history ordering survives millisecond timestamp
// collisions and concurrent writers sharing the database file.
type sequence struct {
	mu   sync.Mutex
	db   *sql.DB
	name string
}

func newSequence(db *sql.DB, name string) (*sequence, error) {
	_, err := db.Exec(`CREATE TABLE IF NOT EXISTS sequences (
		name TEXT PRIMARY KEY,
		counter INTEGER NOT NULL
	)`)
	if err != nil {
		return nil, fmt.Errorf("create sequences table: %w", err)
	}
	return &sequence{db: db, name: name}, nil
}

// Next returns the next value, starting at 1.
func (s *sequence) Next(ctx context.Context) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var v int64
	err := s.db.QueryRowContext(ctx,
		`INSERT INTO sequences (name, counter) VALUES (?, 1)
		 ON CONFLICT(name) DO UPDATE SET counter = counter + 1
		 RETURNING counter`, s.name,
	).Scan(&v)
	if err != nil {
		return 0, fmt.Errorf("next %s sequence: %w", s.name, err)
	}
	return v, nil
}
