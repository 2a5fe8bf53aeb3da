package handle

import (
	"github.com/wippyai/pangobind/errors"
	"github.com/wippyai/pangobind/ffi"
)

// Mode is the ownership relationship a wrapper has to its foreign object.
type Mode uint8

const (
	ModeFull Mode = iota
	ModeShared
	ModeBorrowed
)

func (m Mode) String() string {
	switch m {
	case ModeFull:
		return "full"
	case ModeShared:
		return "shared"
	case ModeBorrowed:
		return "borrowed"
	}
	return "unknown"
}

// SharedClass describes a foreign type with an intrinsic reference count.
type SharedClass struct {
	// Name is the foreign type name, used in diagnostics.
	Name string

	// Ref increments the count and returns the same pointer.
	Ref func(ffi.Ptr) ffi.Ptr

	// Unref decrements the count. The foreign side frees at zero.
	Unref func(ffi.Ptr)

	// Copy produces an independent object with one count of its own.
	// Nil when the foreign type has no copy operation.
	Copy func(ffi.Ptr) ffi.Ptr
}

// NewSharedClass validates and returns a class. cp may be nil.
func NewSharedClass(name string, ref func(ffi.Ptr) ffi.Ptr, unref func(ffi.Ptr), cp func(ffi.Ptr) ffi.Ptr) *SharedClass {
	if ref == nil || unref == nil {
		panic(errors.Unsupported(errors.PhaseBind, name, "shared class needs ref and unref"))
	}
	return &SharedClass{Name: name, Ref: ref, Unref: unref, Copy: cp}
}

// FullClass describes a boxed foreign type owned by exactly one wrapper.
type FullClass struct {
	// Name is the foreign type name, used in diagnostics.
	Name string

	// Free destroys the object.
	Free func(ffi.Ptr)

	// Copy produces an independent object. Nil when the foreign type has
	// no copy operation.
	Copy func(ffi.Ptr) ffi.Ptr
}

// NewFullClass validates and returns a class. cp may be nil.
func NewFullClass(name string, free func(ffi.Ptr), cp func(ffi.Ptr) ffi.Ptr) *FullClass {
	if free == nil {
		panic(errors.Unsupported(errors.PhaseBind, name, "full class needs free"))
	}
	return &FullClass{Name: name, Free: free, Copy: cp}
}
