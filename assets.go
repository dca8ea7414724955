// Copyright (c) 2026 Javier Podavini (YindSoft)
// Licensed under the MIT License. See LICENSE file in the project root.

package plotui

// Handle refers to a value stored in an Assets collection.
// The zero Handle refers to nothing.
type Handle[T any] struct {
	id uint64
}

// IsValid reports whether h was returned by Assets.Add.
func (h Handle[T]) IsValid() bool {
	return h.id != 0
}

type assetEntry[T any] struct {
	value *T
	gen   uint64
}

// Assets owns values of one type and hands out handles to them.
// It is not safe for concurrent use; it is meant to be driven from the
// game's Update/Draw loop.
type Assets[T any] struct {
	next    uint64
	entries map[uint64]*assetEntry[T]
}

// NewAssets returns an empty collection.
func NewAssets[T any]() *Assets[T] {
	return &Assets[T]{entries: make(map[uint64]*assetEntry[T])}
}

// Add stores value and returns its handle.
func (a *Assets[T]) Add(value T) Handle[T] {
	a.next++
	v := value
	a.entries[a.next] = &assetEntry[T]{value: &v, gen: 1}
	return Handle[T]{id: a.next}
}

// Get returns the value for h without marking it changed.
// Mutating through the returned pointer will not be noticed by the renderer;
// use GetMut for that.
func (a *Assets[T]) Get(h Handle[T]) (*T, bool) {
	e, ok := a.entries[h.id]
	if !ok {
		return nil, false
	}
	return e.value, true
}

// GetMut returns the value for h and marks it changed.
func (a *Assets[T]) GetMut(h Handle[T]) (*T, bool) {
	e, ok := a.entries[h.id]
	if !ok {
		return nil, false
	}
	e.gen++
	return e.value, true
}

// Generation returns a counter that grows every time h is fetched with
// GetMut. It is 0 for unknown handles.
func (a *Assets[T]) Generation(h Handle[T]) uint64 {
	if e, ok := a.entries[h.id]; ok {
		return e.gen
	}
	return 0
}

// Remove deletes h from the collection and returns its value.
func (a *Assets[T]) Remove(h Handle[T]) (T, bool) {
	e, ok := a.entries[h.id]
	if !ok {
		var zero T
		return zero, false
	}
	delete(a.entries, h.id)
	return *e.value, true
}

// Len returns the number of stored values.
func (a *Assets[T]) Len() int {
	return len(a.entries)
}
