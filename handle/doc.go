// Package handle implements ownership wrappers for foreign objects.
//
// A foreign object is reached through an opaque ffi.Ptr. How a Go value may
// hold that pointer depends on the ownership mode of the foreign type:
//
//	Shared    the object carries its own reference count (PangoCoverage,
//	          every GObject). Each Shared wrapper holds exactly one count.
//	Full      the object is a boxed value with copy/free (PangoFontDescription).
//	          Each Full wrapper is the unique owner.
//	Borrowed  no ownership at all; a view valid for a bounded Lifetime.
//
// The three are distinct Go types, so illegal operations do not compile:
// a Full has no Clone, a Borrowed has no Release. What the type system
// cannot express (null handles, use after release, a view used after its
// lifetime ended, a view of the wrong type) is a precondition violation
// and panics with an *errors.Error.
//
// # Acquisition
//
//	TakeShared(class, p)   p carries a count transferred to us; no increment
//	RefShared(class, p)    p is borrowed; increment and own the new count
//	TakeFull(class, p)     p is a boxed value transferred to us
//	CopyFull(class, p)     p is borrowed; deep copy and own the copy
//	Borrow(name, p, lt)    no ownership change, valid until lt ends
//	Own(view, class)       RefShared of a view
//	CopyBorrowed(view, c)  CopyFull of a view
//
// Own and CopyBorrowed panic when the view's type name differs from the
// class name.
//
// The Try variants return (nil, false) for a NULL pointer, for entry points
// documented to possibly return nothing.
//
// # Lifetimes
//
// A Borrowed view records the Lifetime of whatever produced it. Views taken
// from an owning wrapper end when the wrapper is released; views created
// with Scope end when the scope returns. Raw on an ended view panics. A view
// created with a nil Lifetime is unchecked: keeping the producer alive is
// then the caller's obligation.
//
// # Threading
//
// Wrappers do no locking. Like the foreign library, every wrapper must be
// used from one goroutine at a time (in practice the goroutine running the
// toolkit main loop). No finalizers are installed: a finalizer would run on
// an arbitrary goroutine and break that affinity, so every owning wrapper
// must be released explicitly.
package handle
