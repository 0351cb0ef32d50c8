// Package entitystore implements the generic mock resource pattern: an
// in-memory collection of typed records, lazily seeded from fixtures or
// durable storage, exposing CRUD and search shaped like a remote API.
//
// The in-memory collection is the source of truth. Every mutation writes
// the whole updated collection through to durable storage; a failed write
// is logged and absorbed, never rolled back.
package entitystore

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"github.com/ekuzmina/shopfront/internal/common"
	"github.com/ekuzmina/shopfront/internal/kv"
	"github.com/ekuzmina/shopfront/internal/latency"
	"github.com/ekuzmina/shopfront/internal/logging"
	"github.com/ekuzmina/shopfront/internal/reactive"
)

// Store is the authoritative in-memory collection for one entity kind.
// It is safe for concurrent use: each mutate-then-persist sequence runs
// under the write lock, so reads issued after a mutation returns always
// observe it.
type Store[T any] struct {
	cfg Config[T]
	kv  *kv.Durable
	log logging.Logger

	mu     sync.RWMutex
	loaded bool
	items  []T

	cell *reactive.Cell[[]T]
}

// New builds a store over the given durable medium. The collection is not
// loaded until first access.
func New[T any](cfg Config[T], durable *kv.Durable, log logging.Logger) *Store[T] {
	cfg.applyDefaults()
	return &Store[T]{
		cfg:  cfg,
		kv:   durable,
		log:  log.With("store", cfg.Name),
		cell: reactive.NewCell[[]T](nil),
	}
}

// Collection exposes the reactive snapshot of the store's records. The UI
// subscribes here and re-renders on every committed mutation.
func (s *Store[T]) Collection() reactive.ReadOnly[[]T] {
	return s.cell.AsReadOnly()
}

// ensureLoaded performs the one-time Uninitialized -> Loaded transition:
// adopt the durable JSON if it parses, otherwise deep-copy the fixture
// seed. A parse failure is treated exactly like absence.
func (s *Store[T]) ensureLoaded(ctx context.Context) {
	if s.loaded {
		return
	}

	if raw, ok := s.kv.Read(ctx, s.cfg.StorageKey); ok {
		var stored []T
		err := json.Unmarshal([]byte(raw), &stored)
		if err == nil {
			s.items = stored
			s.loaded = true
			s.cell.Set(s.snapshotLocked())
			s.log.Debug(ctx, "loaded collection from storage", "count", len(stored))
			return
		}
		s.log.Warn(ctx, "stored collection is malformed, falling back to seed", "error", err)
	}

	s.items = s.cfg.Seed()
	s.loaded = true
	s.cell.Set(s.snapshotLocked())
	s.log.Debug(ctx, "seeded collection from fixtures", "count", len(s.items))
}

// snapshotLocked copies the collection; callers must hold at least the
// read lock.
func (s *Store[T]) snapshotLocked() []T {
	out := make([]T, len(s.items))
	copy(out, s.items)
	return out
}

// persistLocked writes the whole collection through to durable storage.
// Best-effort: the in-memory mutation it follows is already committed.
func (s *Store[T]) persistLocked(ctx context.Context) {
	data, err := json.Marshal(s.items)
	if err != nil {
		s.log.Warn(ctx, "failed to encode collection", "error", err)
		return
	}
	if !s.kv.Write(ctx, s.cfg.StorageKey, string(data)) {
		s.log.Warn(ctx, "failed to persist collection", "key", s.cfg.StorageKey)
	}
}

// List returns the current collection snapshot.
func (s *Store[T]) List(ctx context.Context) ([]T, error) {
	if err := s.cfg.Sleeper.Sleep(ctx, latency.Bulk); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.ensureLoaded(ctx)
	return s.snapshotLocked(), nil
}

// GetByID looks a record up by identity. Absence is a normal result,
// reported via ok=false.
func (s *Store[T]) GetByID(ctx context.Context, id string) (T, bool, error) {
	var zero T
	if err := s.cfg.Sleeper.Sleep(ctx, latency.Lookup); err != nil {
		return zero, false, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.ensureLoaded(ctx)
	for _, item := range s.items {
		if s.cfg.ID(item) == id {
			return item, true, nil
		}
	}
	return zero, false, nil
}

// Create mints a fresh identity, stamps it onto item, appends it to the
// collection, persists, and returns the stored record. Derived fields must
// already be computed by the caller's per-kind layer.
func (s *Store[T]) Create(ctx context.Context, item T) (T, error) {
	var zero T
	if err := s.cfg.Sleeper.Sleep(ctx, latency.Bulk); err != nil {
		return zero, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.ensureLoaded(ctx)

	s.cfg.AssignID(&item, s.cfg.NewID())
	s.items = append(s.items, item)
	s.persistLocked(ctx)
	s.cell.Set(s.snapshotLocked())
	return item, nil
}

// Update merges changes onto the record with the given identity via the
// caller-supplied merge hook and persists the result. Returns
// common.ErrNotFound when no record matches.
func (s *Store[T]) Update(ctx context.Context, id string, merge func(T) T) (T, error) {
	var zero T
	if err := s.cfg.Sleeper.Sleep(ctx, latency.Bulk); err != nil {
		return zero, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.ensureLoaded(ctx)

	for i, item := range s.items {
		if s.cfg.ID(item) != id {
			continue
		}
		merged := merge(item)
		s.items[i] = merged
		s.persistLocked(ctx)
		s.cell.Set(s.snapshotLocked())
		return merged, nil
	}
	return zero, fmt.Errorf("update %s %q: %w", s.cfg.Name, id, common.ErrNotFound)
}

// Delete removes the record with the given identity if present and reports
// whether a removal actually occurred. Deleting an absent identity is a
// successful no-op.
func (s *Store[T]) Delete(ctx context.Context, id string) (bool, error) {
	if err := s.cfg.Sleeper.Sleep(ctx, latency.Bulk); err != nil {
		return false, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.ensureLoaded(ctx)

	for i, item := range s.items {
		if s.cfg.ID(item) != id {
			continue
		}
		s.items = append(s.items[:i], s.items[i+1:]...)
		s.persistLocked(ctx)
		s.cell.Set(s.snapshotLocked())
		return true, nil
	}
	return false, nil
}

// Search returns the records whose searchable fields contain query,
// case-insensitively. An empty query returns the full collection.
func (s *Store[T]) Search(ctx context.Context, query string) ([]T, error) {
	if err := s.cfg.Sleeper.Sleep(ctx, latency.Lookup); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.ensureLoaded(ctx)

	if query == "" {
		return s.snapshotLocked(), nil
	}

	needle := strings.ToLower(query)
	matched := make([]T, 0)
	for _, item := range s.items {
		for _, field := range s.cfg.SearchText(item) {
			if strings.Contains(strings.ToLower(field), needle) {
				matched = append(matched, item)
				break
			}
		}
	}
	return matched, nil
}

// Filter returns the records matching pred. Used by per-kind layers for
// exact-match queries such as product category.
func (s *Store[T]) Filter(ctx context.Context, pred func(T) bool) ([]T, error) {
	if err := s.cfg.Sleeper.Sleep(ctx, latency.Lookup); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.ensureLoaded(ctx)

	matched := make([]T, 0)
	for _, item := range s.items {
		if pred(item) {
			matched = append(matched, item)
		}
	}
	return matched, nil
}

// Any reports whether pred matches some record, without simulated latency.
// It exists for intra-process checks (e.g. signup collision) that are not
// remote calls of their own.
func (s *Store[T]) Any(ctx context.Context, pred func(T) bool) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ensureLoaded(ctx)

	for _, item := range s.items {
		if pred(item) {
			return true
		}
	}
	return false
}
