package handle

import (
	"fmt"

	"github.com/wippyai/pangobind/errors"
	"github.com/wippyai/pangobind/ffi"
)

// Borrowed is a view of a foreign object without ownership. It never
// releases anything and is valid only while its lifetime lasts.
type Borrowed struct {
	ptr    ffi.Ptr
	life   *Lifetime
	name   string
	origin Mode
}

// Borrow wraps p without any ownership change. The view is checked against
// lt; with a nil lt validity is an unchecked precondition of the caller.
func Borrow(name string, p ffi.Ptr, lt *Lifetime) Borrowed {
	if p.IsNull() {
		panic(errors.NullHandle(errors.PhaseBorrow, name))
	}
	debug("borrow", name, uintptr(p))
	return Borrowed{ptr: p, life: lt, name: name, origin: ModeBorrowed}
}

// Raw returns the pointer for passing to further foreign calls. It panics
// if the view's lifetime has ended.
func (b Borrowed) Raw() ffi.Ptr {
	if b.ptr.IsNull() {
		panic(errors.NullHandle(errors.PhaseBorrow, b.name))
	}
	if b.life.Ended() {
		panic(errors.Expired(b.name))
	}
	return b.ptr
}

func checkType(b Borrowed, name string) {
	if b.name != name {
		panic(errors.WrongType(errors.PhaseAcquire, name, b.name))
	}
}

// Valid reports whether Raw may be called.
func (b Borrowed) Valid() bool {
	return !b.ptr.IsNull() && !b.life.Ended()
}

// TypeName returns the foreign type name.
func (b Borrowed) TypeName() string { return b.name }

// Origin is the ownership mode of the wrapper the view was taken from, or
// ModeBorrowed for views of bare pointers.
func (b Borrowed) Origin() Mode { return b.origin }

// Lifetime returns the lifetime bounding the view, nil if unchecked.
func (b Borrowed) Lifetime() *Lifetime { return b.life }

// Equal reports whether both views refer to the same foreign object.
func (b Borrowed) Equal(other Borrowed) bool {
	return b.Raw() == other.Raw()
}

func (b Borrowed) String() string {
	if !b.Valid() {
		return b.name + "(expired)"
	}
	return fmt.Sprintf("%s(borrowed 0x%x)", b.name, uintptr(b.ptr))
}
