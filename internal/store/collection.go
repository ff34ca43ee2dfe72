// Package store holds the in-memory collections behind every data service
package store

import (
	"slices"
	"sync"
)

// Record is an entity that can live in a Collection
// Clone must return a copy sharing no mutable memory with the receiver
type Record[T any] interface {
	GetID() int
	Clone() T
}

// Collection is an ordered, mutex-guarded list of records
// Every value crossing its boundary is a clone, so callers never alias
// stored state.
type Collection[T Record[T]] struct {
	mu    sync.RWMutex
	items []T
}

// NewCollection creates a collection holding clones of seed, in order
func NewCollection[T Record[T]](seed []T) *Collection[T] {
	items := make([]T, 0, len(seed))
	for _, item := range seed {
		items = append(items, item.Clone())
	}
	return &Collection[T]{items: items}
}

// All returns a snapshot of every record in insertion order
func (c *Collection[T]) All() []T {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]T, 0, len(c.items))
	for _, item := range c.items {
		out = append(out, item.Clone())
	}
	return out
}

// Filter returns the records keep accepts, in insertion order
func (c *Collection[T]) Filter(keep func(T) bool) []T {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := []T{}
	for _, item := range c.items {
		if keep(item) {
			out = append(out, item.Clone())
		}
	}
	return out
}

// Get returns the record with the given id
func (c *Collection[T]) Get(id int) (T, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if i := c.indexOf(id); i >= 0 {
		return c.items[i].Clone(), true
	}
	var zero T
	return zero, false
}

// Len returns the number of records
func (c *Collection[T]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}

// NextID returns the id the next Insert would assign
func (c *Collection[T]) NextID() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.nextID()
}

// Insert appends the record built for the next id and returns a copy
// The id is max(existing ids)+1, or 1 when empty, so deleting the current
// maximum lets its id be handed out again.
func (c *Collection[T]) Insert(build func(id int) T) T {
	c.mu.Lock()
	defer c.mu.Unlock()

	item := build(c.nextID())
	c.items = append(c.items, item)
	return item.Clone()
}

// Update applies merge to a copy of the record and stores the result
// The merge function must not change the id.
func (c *Collection[T]) Update(id int, merge func(T)) (T, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	i := c.indexOf(id)
	if i < 0 {
		var zero T
		return zero, false
	}

	updated := c.items[i].Clone()
	merge(updated)
	c.items[i] = updated
	return updated.Clone(), true
}

// Delete removes the record with the given id and returns it
func (c *Collection[T]) Delete(id int) (T, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	i := c.indexOf(id)
	if i < 0 {
		var zero T
		return zero, false
	}

	removed := c.items[i]
	c.items = slices.Delete(c.items, i, i+1)
	return removed, true
}

// nextID must be called with c.mu held
func (c *Collection[T]) nextID() int {
	maxID := 0
	for _, item := range c.items {
		if id := item.GetID(); id > maxID {
			maxID = id
		}
	}
	return maxID + 1
}

// indexOf must be called with c.mu held
func (c *Collection[T]) indexOf(id int) int {
	for i, item := range c.items {
		if item.GetID() == id {
			return i
		}
	}
	return -1
}
