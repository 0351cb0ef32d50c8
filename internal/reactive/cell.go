// Package reactive provides a small observable-state primitive: a Cell
// holds one value, and subscribers are notified whenever it changes.
// This is the process-wide state the UI layer re-renders from.
package reactive

import "sync"

// Cell is a thread-safe container for a single value of type T.
//
// Subscribers receive change notifications on a buffered channel with
// latest-wins semantics: a slow subscriber never blocks a writer, it just
// observes the most recent value when it catches up.
type Cell[T any] struct {
	mu    sync.RWMutex
	value T
	subs  map[int]chan T
	next  int
}

// NewCell returns a Cell holding initial.
func NewCell[T any](initial T) *Cell[T] {
	return &Cell[T]{value: initial, subs: make(map[int]chan T)}
}

// Get returns the current value.
func (c *Cell[T]) Get() T {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.value
}

// Set replaces the current value and notifies all subscribers.
func (c *Cell[T]) Set(v T) {
	c.mu.Lock()
	c.value = v
	for _, ch := range c.subs {
		select {
		case ch <- v:
		default:
			// Drop the stale pending value, keep the newest.
			select {
			case <-ch:
			default:
			}
			select {
			case ch <- v:
			default:
			}
		}
	}
	c.mu.Unlock()
}

// Update applies f to the current value under the write lock and notifies
// subscribers with the result.
func (c *Cell[T]) Update(f func(T) T) {
	c.mu.Lock()
	v := f(c.value)
	c.value = v
	for _, ch := range c.subs {
		select {
		case ch <- v:
		default:
			select {
			case <-ch:
			default:
			}
			select {
			case ch <- v:
			default:
			}
		}
	}
	c.mu.Unlock()
}

// Subscribe registers a new observer. The returned channel carries every
// change (latest-wins); cancel unregisters it and closes the channel.
func (c *Cell[T]) Subscribe() (<-chan T, func()) {
	c.mu.Lock()
	defer c.mu.Unlock()

	id := c.next
	c.next++
	ch := make(chan T, 1)
	c.subs[id] = ch

	cancel := func() {
		c.mu.Lock()
		defer c.mu.Unlock()
		if sub, ok := c.subs[id]; ok {
			delete(c.subs, id)
			close(sub)
		}
	}
	return ch, cancel
}

// ReadOnly is the view of a Cell exposed to code that must not write it.
type ReadOnly[T any] struct {
	cell *Cell[T]
}

// AsReadOnly wraps the cell in a read-only view.
func (c *Cell[T]) AsReadOnly() ReadOnly[T] {
	return ReadOnly[T]{cell: c}
}

func (r ReadOnly[T]) Get() T { return r.cell.Get() }

func (r ReadOnly[T]) Subscribe() (<-chan T, func()) { return r.cell.Subscribe() }

// Derive builds a computed read over a cell: each call to the returned
// function recomputes f over the cell's current value.
func Derive[T, U any](r ReadOnly[T], f func(T) U) func() U {
	return func() U { return f(r.Get()) }
}
