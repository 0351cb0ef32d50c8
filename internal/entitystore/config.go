package entitystore

import (
	"github.com/google/uuid"

	"github.com/ekuzmina/shopfront/internal/latency"
)

// Config describes one entity kind: where its collection persists, what it
// seeds from, and the per-kind hooks the generic store needs.
type Config[T any] struct {
	// Name tags log records, e.g. "users".
	Name string

	// StorageKey is the durable key the whole collection is written under.
	StorageKey string

	// Seed returns the fixture records adopted when durable storage has
	// nothing (or nothing parsable) under StorageKey.
	Seed func() []T

	// ID extracts a record's identity.
	ID func(T) string

	// AssignID stamps a freshly minted identity onto a record before it is
	// appended by Create.
	AssignID func(*T, string)

	// SearchText lists the field values Search substring-matches against.
	SearchText func(T) []string

	// NewID mints record identities. Defaults to uuid.NewString.
	NewID func() string

	// Sleeper simulates the network round trip. Defaults to latency.Wall.
	Sleeper latency.Sleeper
}

func (c *Config[T]) applyDefaults() {
	if c.NewID == nil {
		c.NewID = uuid.NewString
	}
	if c.Sleeper == nil {
		c.Sleeper = latency.Wall{}
	}
}
