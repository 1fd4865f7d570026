package progress

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
)

// Key is the storage key of the serialized progress record.
const Key = "sqlquest.progress"

// KV is durable string key-value storage.
type KV interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
}

// Tracker is the set of completed lesson ids, persisted through a KV.
type Tracker struct {
	kv        KV
	catalog   []string
	known     map[string]bool
	completed map[string]bool
	loadErr   error
}

// Load reads the stored record. A missing record starts empty. A corrupt
// record also starts empty; the decode error is kept in LoadErr so the
// caller can report it. Only storage read failures are returned.
func Load(ctx context.Context, kv KV, catalogIDs []string) (*Tracker, error) {
	t := &Tracker{
		kv:        kv,
		catalog:   append([]string(nil), catalogIDs...),
		known:     make(map[string]bool, len(catalogIDs)),
		completed: make(map[string]bool),
	}
	for _, id := range catalogIDs {
		t.known[id] = true
	}

	raw, ok, err := kv.Get(ctx, Key)
	if err != nil {
		return nil, fmt.Errorf("read progress: %w", err)
	}
	if !ok || raw == "" {
		return t, nil
	}

	record, err := decodeRecord(raw)
	if err != nil {
		t.loadErr = err
		return t, nil
	}
	for id, done := range record {
		// Ids no longer in the catalog are dropped.
		if done && t.known[id] {
			t.completed[id] = true
		}
	}
	return t, nil
}

// LoadErr returns the decode error of a corrupt stored record, if any.
func (t *Tracker) LoadErr() error {
	return t.loadErr
}

// MarkComplete records the lesson as completed and persists the set. It
// reports whether the set changed; marking twice is a no-op.
func (t *Tracker) MarkComplete(ctx context.Context, lessonID string) (bool, error) {
	if !t.known[lessonID] {
		return false, fmt.Errorf("unknown lesson %q", lessonID)
	}
	if t.completed[lessonID] {
		return false, nil
	}
	t.completed[lessonID] = true
	if err := t.persist(ctx); err != nil {
		delete(t.completed, lessonID)
		return false, err
	}
	return true, nil
}

// IsComplete reports whether the lesson has been completed.
func (t *Tracker) IsComplete(lessonID string) bool {
	return t.completed[lessonID]
}

// Completed returns completed lesson ids in catalog order.
func (t *Tracker) Completed() []string {
	out := make([]string, 0, len(t.completed))
	for _, id := range t.catalog {
		if t.completed[id] {
			out = append(out, id)
		}
	}
	return out
}

// Percent returns round(100 * completed / catalog size).
func (t *Tracker) Percent() int {
	if len(t.catalog) == 0 {
		return 0
	}
	return int(math.Round(100 * float64(len(t.Completed())) / float64(len(t.catalog))))
}

// Reset clears every completion and persists the empty set.
func (t *Tracker) Reset(ctx context.Context) error {
	prev := t.completed
	t.completed = make(map[string]bool)
	if err := t.persist(ctx); err != nil {
		t.completed = prev
		return err
	}
	return nil
}

func (t *Tracker) persist(ctx context.Context) error {
	b, err := json.Marshal(t.completed)
	if err != nil {
		return fmt.Errorf("encode progress: %w", err)
	}
	if err := t.kv.Set(ctx, Key, string(b)); err != nil {
		return fmt.Errorf("write progress: %w", err)
	}
	return nil
}
