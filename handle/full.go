package handle

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/wippyai/pangobind/errors"
	"github.com/wippyai/pangobind/ffi"
)

// Full is the unique owner of a boxed foreign object. There is no Clone:
// a second owner can only come from DeepCopy.
type Full struct {
	_     noCopy
	ptr   ffi.Ptr
	class *FullClass
	life  *Lifetime
}

func newFull(c *FullClass, p ffi.Ptr) *Full {
	counters.liveFull.Add(1)
	return &Full{ptr: p, class: c, life: NewLifetime(nil)}
}

// TakeFull adopts an object that was transferred to the caller.
// p must not be NULL.
func TakeFull(c *FullClass, p ffi.Ptr) *Full {
	if p.IsNull() {
		panic(errors.NullHandle(errors.PhaseAcquire, c.Name))
	}
	debug("take full", c.Name, uintptr(p))
	return newFull(c, p)
}

// TryTakeFull is TakeFull for entry points that may return NULL.
func TryTakeFull(c *FullClass, p ffi.Ptr) (*Full, bool) {
	if p.IsNull() {
		return nil, false
	}
	return TakeFull(c, p), true
}

// CopyFull owns a borrowed boxed value by deep-copying it. It returns false
// when the copy yields nothing and panics if the type cannot be copied.
func CopyFull(c *FullClass, p ffi.Ptr) (*Full, bool) {
	if c.Copy == nil {
		panic(errors.Unsupported(errors.PhaseAcquire, c.Name, "type has no copy operation"))
	}
	if p.IsNull() {
		panic(errors.NullHandle(errors.PhaseAcquire, c.Name))
	}
	q := c.Copy(p)
	counters.copies.Add(1)
	if q.IsNull() {
		debug("copy absent", c.Name, uintptr(p))
		return nil, false
	}
	debug("copy full", c.Name, uintptr(q), zap.Uintptr("from", uintptr(p)))
	return newFull(c, q), true
}

// CopyBorrowed is CopyFull for a view. The view must be of c's type.
func CopyBorrowed(b Borrowed, c *FullClass) (*Full, bool) {
	checkType(b, c.Name)
	return CopyFull(c, b.Raw())
}

// Raw returns the pointer for passing to further foreign calls. The
// caller must not keep it past Release.
func (f *Full) Raw() ffi.Ptr {
	if f == nil {
		panic(errors.NullHandle(errors.PhaseCall, "<nil>"))
	}
	if f.life.ended {
		panic(errors.Released(errors.PhaseCall, f.class.Name))
	}
	return f.ptr
}

// DeepCopy returns an independent owner of an equal object.
func (f *Full) DeepCopy() (*Full, bool) {
	return CopyFull(f.class, f.Raw())
}

// Release frees the foreign object. Calling it again does nothing.
func (f *Full) Release() {
	if f == nil || f.life.ended {
		return
	}
	p := f.ptr
	f.life.End()
	f.ptr = 0
	counters.liveFull.Add(-1)
	counters.frees.Add(1)
	debug("free full", f.class.Name, uintptr(p))
	f.class.Free(p)
}

// Steal ends the wrapper without freeing and hands the object to the
// caller, for entry points that take ownership of an argument.
func (f *Full) Steal() ffi.Ptr {
	p := f.Raw()
	f.life.End()
	f.ptr = 0
	counters.liveFull.Add(-1)
	debug("steal full", f.class.Name, uintptr(p))
	return p
}

// Released reports whether Release or Steal has been called.
func (f *Full) Released() bool {
	return f == nil || f.life.ended
}

// Borrow returns a view valid until this wrapper is released.
func (f *Full) Borrow() Borrowed {
	return Borrowed{ptr: f.Raw(), life: f.life, name: f.class.Name, origin: ModeFull}
}

// Same reports whether both wrappers hold the same foreign address. Two
// live Full wrappers never do unless one was built from a stolen pointer.
func (f *Full) Same(other *Full) bool {
	return f.Raw() == other.Raw()
}

// Class returns the type descriptor.
func (f *Full) Class() *FullClass { return f.class }

// Lifetime returns the lifetime that ends on Release.
func (f *Full) Lifetime() *Lifetime { return f.life }

func (f *Full) String() string {
	if f.Released() {
		if f == nil {
			return "<nil>"
		}
		return f.class.Name + "(released)"
	}
	return fmt.Sprintf("%s(0x%x)", f.class.Name, uintptr(f.ptr))
}
