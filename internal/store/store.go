// Package store persists catalog collections as flat JSON documents.
//
// Each collection is a single file holding one JSON object whose only field
// is an array of records, e.g. {"products": [...]}. The whole document is
// rewritten on every mutation; a collection serializes its own
// read-modify-write sequences with a mutex, so each call observes and leaves
// a consistent document.
package store

import (
	"encoding/json"
	"os"
	"sync"

	"github.com/go-faster/errors"
)

// ErrNotFound is returned when a targeted record is absent from the
// collection.
var ErrNotFound = errors.New("record not found")

// Entity is any record addressable by its string key.
type Entity interface {
	Key() string
}

// Collection is a file-backed ordered set of records of one entity type.
type Collection[T Entity] struct {
	mu   sync.Mutex
	path string
	// field is the top-level document field the record array lives under.
	field string
	recs  []T
}

// Open loads the collection document at path, seeding it with seed and
// writing the file when it does not exist yet. An existing file is read
// as-is; seeds are never merged into it.
func Open[T Entity](path, field string, seed []T) (*Collection[T], error) {
	c := &Collection[T]{path: path, field: field}
	b, err := os.ReadFile(path)
	switch {
	case err == nil:
		doc := map[string][]T{}
		if err := json.Unmarshal(b, &doc); err != nil {
			return nil, errors.Wrapf(err, "store: decode %s", path)
		}
		c.recs = doc[field]
	case os.IsNotExist(err):
		c.recs = append([]T(nil), seed...)
		if err := c.persist(); err != nil {
			return nil, err
		}
	default:
		return nil, errors.Wrapf(err, "store: read %s", path)
	}
	return c, nil
}

// All returns a copy of every record in insertion order.
func (c *Collection[T]) All() []T {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]T, len(c.recs))
	copy(out, c.recs)
	return out
}

// FindByID returns the record with the given key.
func (c *Collection[T]) FindByID(id string) (T, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, r := range c.recs {
		if r.Key() == id {
			return r, true
		}
	}
	var zero T
	return zero, false
}

// Len reports the number of records.
func (c *Collection[T]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.recs)
}

// Append adds a record at the end of the collection and persists.
func (c *Collection[T]) Append(item T) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.recs = append(c.recs, item)
	return c.persist()
}

// UpdateByID replaces the record with the given key by apply(record) and
// persists. Returns ErrNotFound when no record matches; a missing target is
// never a silent no-op.
func (c *Collection[T]) UpdateByID(id string, apply func(T) T) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i, r := range c.recs {
		if r.Key() == id {
			c.recs[i] = apply(r)
			return c.persist()
		}
	}
	return errors.Wrapf(ErrNotFound, "store: update %q", id)
}

// RemoveByID deletes the record with the given key. Removing an absent
// record succeeds without touching the file.
func (c *Collection[T]) RemoveByID(id string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i, r := range c.recs {
		if r.Key() == id {
			c.recs = append(c.recs[:i], c.recs[i+1:]...)
			return c.persist()
		}
	}
	return nil
}

// persist rewrites the collection document. Atomic-ish write: tmp then
// rename. Callers hold c.mu.
func (c *Collection[T]) persist() error {
	recs := c.recs
	if recs == nil {
		recs = []T{}
	}
	b, err := json.MarshalIndent(map[string][]T{c.field: recs}, "", "  ")
	if err != nil {
		return errors.Wrapf(err, "store: encode %s", c.path)
	}
	tmp := c.path + ".tmp"
	if err := os.WriteFile(tmp, b, 0o600); err != nil {
		return errors.Wrapf(err, "store: write %s", tmp)
	}
	if err := os.Rename(tmp, c.path); err != nil {
		_ = os.Remove(tmp)
		return errors.Wrapf(err, "store: rename %s", c.path)
	}
	return nil
}
