package pango

import (
	"github.com/wippyai/pangobind/errors"
	"github.com/wippyai/pangobind/ffi"
	"github.com/wippyai/pangobind/handle"
)

// Coverage maps character indices to coverage levels.
type Coverage struct {
	b *Binding
	h *handle.Shared
}

func (b *Binding) wrapCoverage(h *handle.Shared, ok bool) (*Coverage, bool) {
	if !ok {
		return nil, false
	}
	return &Coverage{b: b, h: h}, true
}

// NewCoverage creates an empty coverage. The returned wrapper holds the
// single count pango_coverage_new transfers.
func (b *Binding) NewCoverage() (*Coverage, bool) {
	return b.wrapCoverage(handle.TryTakeShared(b.coverage, b.lib.CoverageNew()))
}

// CoverageFromBytes parses data produced by ToBytes. It returns false when
// the data is not a serialized coverage.
func (b *Binding) CoverageFromBytes(data []byte) (*Coverage, bool) {
	buf := b.lib.Malloc(uint32(len(data)))
	if buf.IsNull() && len(data) > 0 {
		panic(errors.AllocationFailed(ffi.SymMalloc, uint32(len(data))))
	}
	defer b.lib.Free(buf)
	if len(data) > 0 && !b.lib.Write(buf, data) {
		panic(errors.OutOfBounds(ffi.SymCoverageFromBytes, uint32(buf), uint32(len(data))))
	}
	return b.wrapCoverage(handle.TryTakeShared(b.coverage, b.lib.CoverageFromBytes(buf, int32(len(data)))))
}

// OwnCoverage takes a new count on a borrowed coverage. It panics when v
// is a view of another type.
func (b *Binding) OwnCoverage(v handle.Borrowed) *Coverage {
	return &Coverage{b: b, h: handle.Own(v, b.coverage)}
}

// Get returns the level at index.
func (c *Coverage) Get(index int32) CoverageLevel {
	return CoverageLevel(c.b.lib.CoverageGet(c.h.Raw(), index))
}

// Set stores level at index.
func (c *Coverage) Set(index int32, level CoverageLevel) {
	c.b.lib.CoverageSet(c.h.Raw(), index, level.ToGlib())
}

// Max raises each level to at least the level other has at that index.
func (c *Coverage) Max(other *Coverage) {
	c.b.lib.CoverageMax(c.h.Raw(), other.h.Raw())
}

// Copy returns an independent coverage with the same levels.
func (c *Coverage) Copy() (*Coverage, bool) {
	return c.b.wrapCoverage(c.h.DeepCopy())
}

// ToBytes serializes the coverage. It returns false when the library
// produced no buffer: allocation failed, the coverage is too large, or the
// library no longer implements serialization.
func (c *Coverage) ToBytes() ([]byte, bool) {
	o := c.b.outParams()
	defer o.Free()

	c.b.lib.CoverageToBytes(c.h.Raw(), o.PtrSlot(), o.LenSlot())
	p, n, ok := o.Result()
	if !ok {
		panic(errors.OutOfBounds(ffi.SymCoverageToBytes, uint32(o.PtrSlot()), c.b.lib.PointerSize()+4))
	}
	if p.IsNull() {
		return nil, false
	}
	defer c.b.lib.Free(p)

	data, ok := c.b.lib.Read(p, uint32(n))
	if !ok {
		panic(errors.OutOfBounds(ffi.SymCoverageToBytes, uint32(p), uint32(n)))
	}
	return data, true
}

// Clone returns another owner of the same coverage.
func (c *Coverage) Clone() *Coverage {
	return &Coverage{b: c.b, h: c.h.Clone()}
}

// Release drops this wrapper's count.
func (c *Coverage) Release() { c.h.Release() }

// Released reports whether Release has been called.
func (c *Coverage) Released() bool { return c.h.Released() }

// Equal reports whether both wrappers refer to the same coverage object.
func (c *Coverage) Equal(other *Coverage) bool { return c.h.Equal(other.h) }

// Raw returns the foreign pointer.
func (c *Coverage) Raw() ffi.Ptr { return c.h.Raw() }

// Borrow returns a view valid until this wrapper is released.
func (c *Coverage) Borrow() handle.Borrowed { return c.h.Borrow() }

func (c *Coverage) String() string { return c.h.String() }
