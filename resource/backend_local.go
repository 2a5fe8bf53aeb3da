package resource

import (
	"errors"
	"sync"
)

var (
	ErrClosed = errors.New("resource backend closed")
)

// LocalBackend is an in-memory reference-counted object store.
//
// Freed slots are never reused, so a stale handle always resolves to an
// invalid slot instead of aliasing a newer object.
type LocalBackend struct {
	entries []entry
	mu      sync.RWMutex
	closed  bool
}

type entry struct {
	value  any
	typeID uint32
	count  int32
	valid  bool
}

// NewLocalBackend creates a new in-memory backend.
func NewLocalBackend() *LocalBackend {
	return &LocalBackend{
		entries: make([]entry, 0, 64),
	}
}

// Create stores a value with one reference and returns its handle.
func (b *LocalBackend) Create(typeID uint32, value any) (Handle, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return 0, ErrClosed
	}

	b.entries = append(b.entries, entry{
		typeID: typeID,
		value:  value,
		count:  1,
		valid:  true,
	})
	return Handle(len(b.entries)), nil
}

// lookup returns the live entry for handle. Callers hold the lock.
func (b *LocalBackend) lookup(handle Handle) *entry {
	if handle == 0 {
		return nil
	}
	idx := handle - 1
	if int(idx) >= len(b.entries) {
		return nil
	}
	e := &b.entries[idx]
	if !e.valid {
		return nil
	}
	return e
}

// Get retrieves a value by handle.
func (b *LocalBackend) Get(handle Handle) (any, bool) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	e := b.lookup(handle)
	if e == nil {
		return nil, false
	}
	return e.value, true
}

// Ref increments the reference count for a handle.
func (b *LocalBackend) Ref(handle Handle) (int32, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()

	e := b.lookup(handle)
	if e == nil {
		return 0, false
	}
	e.count++
	return e.count, true
}

// Unref decrements the reference count. When it reaches zero the slot is
// invalidated and the value returned for finalization.
func (b *LocalBackend) Unref(handle Handle) (any, int32, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()

	e := b.lookup(handle)
	if e == nil {
		return nil, 0, false
	}

	e.count--
	if e.count > 0 {
		return nil, e.count, true
	}

	value := e.value
	e.valid = false
	e.value = nil
	e.count = 0
	return value, 0, true
}

// Count returns the current reference count for a handle.
func (b *LocalBackend) Count(handle Handle) (int32, bool) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	e := b.lookup(handle)
	if e == nil {
		return 0, false
	}
	return e.count, true
}

// TypeID returns the type ID for a handle.
func (b *LocalBackend) TypeID(handle Handle) (uint32, bool) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	e := b.lookup(handle)
	if e == nil {
		return 0, false
	}
	return e.typeID, true
}

// Close finalizes all live objects regardless of their counts.
func (b *LocalBackend) Close() error {
	b.mu.Lock()
	if b.closed {
		b.mu.Unlock()
		return nil
	}
	b.closed = true

	var finalize []Finalizer
	for i := range b.entries {
		if b.entries[i].valid {
			if f, ok := b.entries[i].value.(Finalizer); ok {
				finalize = append(finalize, f)
			}
			b.entries[i].valid = false
			b.entries[i].value = nil
		}
	}
	b.entries = nil
	b.mu.Unlock()

	for _, f := range finalize {
		f.Finalize()
	}
	return nil
}

// Len returns the number of live objects.
func (b *LocalBackend) Len() int {
	b.mu.RLock()
	defer b.mu.RUnlock()

	count := 0
	for _, e := range b.entries {
		if e.valid {
			count++
		}
	}
	return count
}

// Each iterates over all live objects.
func (b *LocalBackend) Each(fn func(Handle, uint32, any) bool) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	for i, e := range b.entries {
		if e.valid {
			if !fn(Handle(i+1), e.typeID, e.value) {
				break
			}
		}
	}
}
