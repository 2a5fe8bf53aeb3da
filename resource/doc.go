// Package resource provides a reference-counted object heap.
//
// The heap stores the objects of the in-process foreign library
// (ffi/hostlib): every PangoCoverage, GObject and boxed value it hands out
// is a heap entry with an intrinsic reference count, exactly as the native
// library keeps the count inside the object.
//
// # Object Lifecycle
//
//	Insert - create with a count of one
//	Ref    - count + 1
//	Unref  - count - 1, finalize and invalidate at zero
//
// Handles are never reused, so a dangling handle stays detectable: Ref or
// Unref on it is reported as an EventViolation rather than touching a newer
// object.
//
// # Observers
//
// Register observers to track lifecycle events:
//
//	heap.Subscribe(resource.ObserverFunc(func(e resource.Event) {
//	    switch e.Type {
//	    case resource.EventFreed:
//	        log.Printf("object %d freed", e.Handle)
//	    case resource.EventViolation:
//	        log.Printf("misuse of %d: %s", e.Handle, e.Detail)
//	    }
//	}))
//
// Objects implementing Finalizer are finalized when their count reaches
// zero, or when the heap is closed.
package resource
