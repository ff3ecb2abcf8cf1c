// Package state holds the adapters' refreshed ambient state: a single-writer, many-reader cell
// and the poller that keeps it current.
package state

import (
	"sync"
	"sync/atomic"
)

type versioned[T any] struct {
	value T
	seq   uint64
}

// Cell holds one value that is replaced wholesale. Reads never block; writes are serialized and
// each one bumps the sequence number, so readers see either the old value or the new one in full.
type Cell[T any] struct {
	mu  sync.Mutex
	cur atomic.Pointer[versioned[T]]
}

// NewCell returns a cell holding initial at sequence 0.
func NewCell[T any](initial T) *Cell[T] {
	c := &Cell[T]{}
	c.cur.Store(&versioned[T]{value: initial})
	return c
}

// Load returns the current value.
func (c *Cell[T]) Load() T {
	return c.load().value
}

// Seq returns the sequence number of the current value.
func (c *Cell[T]) Seq() uint64 {
	return c.load().seq
}

// Snapshot returns the current value together with its sequence number.
func (c *Cell[T]) Snapshot() (T, uint64) {
	v := c.load()
	return v.value, v.seq
}

// Store replaces the value and returns its sequence number.
func (c *Cell[T]) Store(v T) uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()

	next := c.load().seq + 1
	c.cur.Store(&versioned[T]{value: v, seq: next})
	return next
}

// Update replaces the value with fn(old) when fn reports a change. fn runs with writes held off,
// which is what makes check-then-write guards (sequence or identity checks) race-free.
func (c *Cell[T]) Update(fn func(old T) (T, bool)) (T, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	old := c.load()
	v, changed := fn(old.value)
	if !changed {
		return old.value, false
	}
	c.cur.Store(&versioned[T]{value: v, seq: old.seq + 1})
	return v, true
}

func (c *Cell[T]) load() *versioned[T] {
	if v := c.cur.Load(); v != nil {
		return v
	}
	return &versioned[T]{}
}
