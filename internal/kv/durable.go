package kv

import (
	"context"

	"github.com/ekuzmina/shopfront/internal/logging"
)

// Durable is the fail-soft view of a Store that the entity stores use.
// Any underlying fault (medium unavailable, quota, connectivity) is
// swallowed, logged at warn level, and surfaced as absence or false,
// never as an error. Callers must treat absence as "fall back to defaults".
type Durable struct {
	store Store
	log   logging.Logger
}

// NewDurable wraps store. A nil store yields a Durable where every read
// misses and every write reports false, mirroring a non-interactive
// execution context with no storage medium at all.
func NewDurable(store Store, log logging.Logger) *Durable {
	return &Durable{store: store, log: log.With("component", "kv")}
}

// Read returns the value under key and whether it was present. Faults and
// absence are indistinguishable to the caller.
func (d *Durable) Read(ctx context.Context, key string) (string, bool) {
	if d.store == nil {
		return "", false
	}
	v, ok, err := d.store.Get(ctx, key)
	if err != nil {
		d.log.Warn(ctx, "read failed", "key", key, "error", err)
		return "", false
	}
	return v, ok
}

// Write stores value under key and reports whether the write took effect.
func (d *Durable) Write(ctx context.Context, key, value string) bool {
	if d.store == nil {
		return false
	}
	if err := d.store.Set(ctx, key, value); err != nil {
		d.log.Warn(ctx, "write failed", "key", key, "error", err)
		return false
	}
	return true
}

// Remove deletes key and reports whether the delete took effect.
// Removing an absent key is a successful no-op.
func (d *Durable) Remove(ctx context.Context, key string) bool {
	if d.store == nil {
		return false
	}
	if err := d.store.Delete(ctx, key); err != nil {
		d.log.Warn(ctx, "remove failed", "key", key, "error", err)
		return false
	}
	return true
}
