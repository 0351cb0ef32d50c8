// Package kv provides the durable key/value surface backing the mock
// entity stores. A Store is the raw medium (sqlite, postgres, s3, or an
// in-memory map); Durable wraps one and converts every fault into absence
// so callers can always fall back to defaults.
package kv

import "context"

// Store is a raw key/value medium. Keys and values are plain strings;
// values are JSON documents by convention but the medium does not care.
//
// Get reports absence via ok=false with a nil error; err is reserved for
// medium faults. No key enumeration, no transactions.
type Store interface {
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
	Close() error
}
