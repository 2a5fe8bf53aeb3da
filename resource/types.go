package resource

// Handle is an opaque reference to an object in a heap.
// Handle 0 is reserved and always invalid.
type Handle uint32

// Event types for object lifecycle notifications.
type EventType uint8

const (
	EventCreated EventType = iota
	EventRef
	EventUnref
	EventFreed
	EventViolation
)

func (t EventType) String() string {
	switch t {
	case EventCreated:
		return "created"
	case EventRef:
		return "ref"
	case EventUnref:
		return "unref"
	case EventFreed:
		return "freed"
	case EventViolation:
		return "violation"
	}
	return "unknown"
}

// Event represents an object lifecycle event.
type Event struct {
	Value  any
	Detail string
	Handle Handle
	TypeID uint32
	Count  int32 // reference count after the event
	Type   EventType
}

// Observer receives notifications about object lifecycle events.
type Observer interface {
	OnResourceEvent(Event)
}

// ObserverFunc adapts a function to Observer.
type ObserverFunc func(Event)

func (f ObserverFunc) OnResourceEvent(e Event) { f(e) }

// Backend provides the underlying reference-counted storage.
type Backend interface {
	// Create stores a value with a reference count of one.
	Create(typeID uint32, value any) (Handle, error)

	// Get retrieves a live value by handle.
	Get(handle Handle) (any, bool)

	// Ref increments the count and returns the new count.
	Ref(handle Handle) (int32, bool)

	// Unref decrements the count. At zero the slot is invalidated and the
	// value returned so the caller can finalize it.
	Unref(handle Handle) (value any, count int32, ok bool)

	// Close releases all objects held by the backend.
	Close() error
}

// Finalizer is optionally implemented by values that need cleanup when
// their count reaches zero.
type Finalizer interface {
	Finalize()
}
