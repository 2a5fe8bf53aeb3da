package resource

import (
	"sync"
)

// Heap is a reference-counted object heap with lifecycle observers.
type Heap struct {
	backend   *LocalBackend
	observers []Observer
	obsMu     sync.RWMutex
	closed    bool
	closeMu   sync.RWMutex
}

// NewHeap creates a new heap with a LocalBackend.
func NewHeap() *Heap {
	return &Heap{
		backend: NewLocalBackend(),
	}
}

// Insert adds a value with one reference and returns its handle.
func (h *Heap) Insert(typeID uint32, value any) Handle {
	h.closeMu.RLock()
	if h.closed {
		h.closeMu.RUnlock()
		return 0
	}
	h.closeMu.RUnlock()

	handle, err := h.backend.Create(typeID, value)
	if err != nil {
		return 0
	}

	h.notify(Event{
		Type:   EventCreated,
		Handle: handle,
		TypeID: typeID,
		Value:  value,
		Count:  1,
	})

	return handle
}

// Get retrieves a value by handle.
func (h *Heap) Get(handle Handle) (any, bool) {
	return h.backend.Get(handle)
}

// GetTyped retrieves a value only if it matches the expected type.
func (h *Heap) GetTyped(handle Handle, typeID uint32) (any, bool) {
	actualTypeID, ok := h.backend.TypeID(handle)
	if !ok || actualTypeID != typeID {
		return nil, false
	}
	return h.backend.Get(handle)
}

// TypeID returns the type of a live object.
func (h *Heap) TypeID(handle Handle) (uint32, bool) {
	return h.backend.TypeID(handle)
}

// Ref increments the count of a live object.
// A stale or unknown handle is reported as a violation.
func (h *Heap) Ref(handle Handle) (int32, bool) {
	typeID, _ := h.backend.TypeID(handle)
	count, ok := h.backend.Ref(handle)
	if !ok {
		h.Violation(handle, "ref of invalid handle")
		return 0, false
	}

	h.notify(Event{
		Type:   EventRef,
		Handle: handle,
		TypeID: typeID,
		Count:  count,
	})
	return count, true
}

// Unref decrements the count of a live object and finalizes it at zero.
// Reports whether the object was freed. A stale or unknown handle is
// reported as a violation.
func (h *Heap) Unref(handle Handle) (freed bool, ok bool) {
	typeID, _ := h.backend.TypeID(handle)
	value, count, ok := h.backend.Unref(handle)
	if !ok {
		h.Violation(handle, "unref of invalid handle")
		return false, false
	}

	h.notify(Event{
		Type:   EventUnref,
		Handle: handle,
		TypeID: typeID,
		Count:  count,
	})
	if count > 0 {
		return false, true
	}

	if f, ok := value.(Finalizer); ok {
		f.Finalize()
	}

	h.notify(Event{
		Type:   EventFreed,
		Handle: handle,
		TypeID: typeID,
		Value:  value,
	})
	return true, true
}

// Count returns the current reference count of a live object.
func (h *Heap) Count(handle Handle) (int32, bool) {
	return h.backend.Count(handle)
}

// Violation reports misuse of a handle to observers.
func (h *Heap) Violation(handle Handle, detail string) {
	h.notify(Event{
		Type:   EventViolation,
		Handle: handle,
		Detail: detail,
	})
}

// Subscribe adds an observer for lifecycle events.
func (h *Heap) Subscribe(o Observer) {
	h.obsMu.Lock()
	defer h.obsMu.Unlock()
	h.observers = append(h.observers, o)
}

// Unsubscribe removes an observer. ObserverFunc values are not comparable
// and cannot be unsubscribed.
func (h *Heap) Unsubscribe(o Observer) {
	h.obsMu.Lock()
	defer h.obsMu.Unlock()
	for i, obs := range h.observers {
		if obs == o {
			h.observers = append(h.observers[:i], h.observers[i+1:]...)
			return
		}
	}
}

// Len returns the number of live objects.
func (h *Heap) Len() int {
	return h.backend.Len()
}

// Each iterates over all live objects.
func (h *Heap) Each(fn func(Handle, uint32, any) bool) {
	h.backend.Each(fn)
}

// Close finalizes all objects and stops accepting new ones.
func (h *Heap) Close() error {
	h.closeMu.Lock()
	h.closed = true
	h.closeMu.Unlock()

	return h.backend.Close()
}

// Backend returns the underlying storage.
func (h *Heap) Backend() Backend {
	return h.backend
}

func (h *Heap) notify(e Event) {
	h.obsMu.RLock()
	defer h.obsMu.RUnlock()
	for _, o := range h.observers {
		o.OnResourceEvent(e)
	}
}
