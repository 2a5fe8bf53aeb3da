package handle

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/wippyai/pangobind/errors"
	"github.com/wippyai/pangobind/ffi"
)

// noCopy makes go vet's copylocks check flag wrappers copied by value.
// Duplicating a wrapper must go through Clone.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}

// Shared owns one reference count of a reference-counted foreign object.
// Use it through a pointer; Clone to add an owner, Release to drop one.
type Shared struct {
	_     noCopy
	ptr   ffi.Ptr
	class *SharedClass
	life  *Lifetime
}

func newShared(c *SharedClass, p ffi.Ptr) *Shared {
	counters.liveShared.Add(1)
	return &Shared{ptr: p, class: c, life: NewLifetime(nil)}
}

// TakeShared adopts a count that was transferred to the caller, without
// incrementing. p must not be NULL.
func TakeShared(c *SharedClass, p ffi.Ptr) *Shared {
	if p.IsNull() {
		panic(errors.NullHandle(errors.PhaseAcquire, c.Name))
	}
	debug("take shared", c.Name, uintptr(p))
	return newShared(c, p)
}

// TryTakeShared is TakeShared for entry points that may return NULL.
func TryTakeShared(c *SharedClass, p ffi.Ptr) (*Shared, bool) {
	if p.IsNull() {
		return nil, false
	}
	return TakeShared(c, p), true
}

// RefShared takes a new count on a borrowed pointer. p must not be NULL.
func RefShared(c *SharedClass, p ffi.Ptr) *Shared {
	if p.IsNull() {
		panic(errors.NullHandle(errors.PhaseAcquire, c.Name))
	}
	q := c.Ref(p)
	counters.refs.Add(1)
	if q.IsNull() {
		panic(errors.New(errors.PhaseAcquire, errors.KindNullHandle).
			Type(c.Name).Detail("ref returned NULL").Build())
	}
	debug("ref shared", c.Name, uintptr(q))
	return newShared(c, q)
}

// TryRefShared is RefShared for entry points that may return NULL.
func TryRefShared(c *SharedClass, p ffi.Ptr) (*Shared, bool) {
	if p.IsNull() {
		return nil, false
	}
	return RefShared(c, p), true
}

// Own upgrades a borrowed view to an owning wrapper by taking a new count.
// Views of full-mode objects and views of another type cannot be upgraded
// this way.
func Own(b Borrowed, c *SharedClass) *Shared {
	if b.origin == ModeFull {
		panic(errors.WrongMode(errors.PhaseAcquire, b.name, ModeShared.String(), ModeFull.String()))
	}
	checkType(b, c.Name)
	return RefShared(c, b.Raw())
}

// Raw returns the pointer for passing to further foreign calls. The
// caller must not keep it past Release.
func (s *Shared) Raw() ffi.Ptr {
	if s == nil {
		panic(errors.NullHandle(errors.PhaseCall, "<nil>"))
	}
	if s.life.ended {
		panic(errors.Released(errors.PhaseCall, s.class.Name))
	}
	return s.ptr
}

// Clone takes another count on the same object and returns a new owner.
func (s *Shared) Clone() *Shared {
	return RefShared(s.class, s.Raw())
}

// DeepCopy asks the foreign side for an independent object. It returns
// false when the foreign copy yields nothing, and panics if the type has
// no copy operation.
func (s *Shared) DeepCopy() (*Shared, bool) {
	if s.class.Copy == nil {
		panic(errors.Unsupported(errors.PhaseAcquire, s.class.Name, "type has no copy operation"))
	}
	q := s.class.Copy(s.Raw())
	counters.copies.Add(1)
	if q.IsNull() {
		debug("deep copy absent", s.class.Name, uintptr(s.ptr))
		return nil, false
	}
	debug("deep copy", s.class.Name, uintptr(q), zap.Uintptr("from", uintptr(s.ptr)))
	return newShared(s.class, q), true
}

// Release gives this wrapper's count back to the foreign side. Calling it
// again on the same wrapper does nothing.
func (s *Shared) Release() {
	if s == nil || s.life.ended {
		return
	}
	p := s.ptr
	s.life.End()
	s.ptr = 0
	counters.liveShared.Add(-1)
	counters.unrefs.Add(1)
	debug("unref shared", s.class.Name, uintptr(p))
	s.class.Unref(p)
}

// Steal ends the wrapper without releasing and hands its count to the
// caller, for entry points that take ownership of an argument.
func (s *Shared) Steal() ffi.Ptr {
	p := s.Raw()
	s.life.End()
	s.ptr = 0
	counters.liveShared.Add(-1)
	debug("steal shared", s.class.Name, uintptr(p))
	return p
}

// Released reports whether Release or Steal has been called.
func (s *Shared) Released() bool {
	return s == nil || s.life.ended
}

// Borrow returns a view valid until this wrapper is released.
func (s *Shared) Borrow() Borrowed {
	return Borrowed{ptr: s.Raw(), life: s.life, name: s.class.Name, origin: ModeShared}
}

// Equal reports whether both wrappers refer to the same foreign object.
func (s *Shared) Equal(other *Shared) bool {
	return s.Raw() == other.Raw()
}

// Class returns the type descriptor.
func (s *Shared) Class() *SharedClass { return s.class }

// Lifetime returns the lifetime that ends on Release.
func (s *Shared) Lifetime() *Lifetime { return s.life }

func (s *Shared) String() string {
	if s.Released() {
		if s == nil {
			return "<nil>"
		}
		return s.class.Name + "(released)"
	}
	return fmt.Sprintf("%s(0x%x)", s.class.Name, uintptr(s.ptr))
}
