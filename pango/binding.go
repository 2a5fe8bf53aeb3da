package pango

import (
	"github.com/wippyai/pangobind/errors"
	"github.com/wippyai/pangobind/ffi"
	"github.com/wippyai/pangobind/handle"
)

// Foreign type names.
const (
	TypeCoverage        = "PangoCoverage"
	TypeFontMap         = "PangoFontMap"
	TypeFontFamily      = "PangoFontFamily"
	TypeFontFace        = "PangoFontFace"
	TypeFontDescription = "PangoFontDescription"
)

// Binding wraps the objects of one foreign library.
type Binding struct {
	lib ffi.Library

	coverage   *handle.SharedClass
	fontMap    *handle.SharedClass
	fontFamily *handle.SharedClass
	fontFace   *handle.SharedClass
	fontDesc   *handle.FullClass
}

// New binds lib.
func New(lib ffi.Library) *Binding {
	return &Binding{
		lib:        lib,
		coverage:   handle.NewSharedClass(TypeCoverage, lib.CoverageRef, lib.CoverageUnref, lib.CoverageCopy),
		fontMap:    handle.NewSharedClass(TypeFontMap, lib.ObjectRef, lib.ObjectUnref, nil),
		fontFamily: handle.NewSharedClass(TypeFontFamily, lib.ObjectRef, lib.ObjectUnref, nil),
		fontFace:   handle.NewSharedClass(TypeFontFace, lib.ObjectRef, lib.ObjectUnref, nil),
		fontDesc:   handle.NewFullClass(TypeFontDescription, lib.FontDescriptionFree, lib.FontDescriptionCopy),
	}
}

// Library returns the bound library.
func (b *Binding) Library() ffi.Library { return b.lib }

// cstring copies s into foreign memory. The caller frees it.
func (b *Binding) cstring(s string) ffi.Ptr {
	p := ffi.CString(b.lib, s)
	if p.IsNull() {
		panic(errors.AllocationFailed(ffi.SymMalloc, uint32(len(s)+1)))
	}
	return p
}

func (b *Binding) outParams() *ffi.OutParams {
	o, ok := ffi.NewOutParams(b.lib)
	if !ok {
		panic(errors.AllocationFailed(ffi.SymMalloc, b.lib.PointerSize()+4))
	}
	return o
}

// ptrArray calls fn with an out-parameter pair and returns the pointers
// it wrote. The array itself is freed; its elements are not.
func (b *Binding) ptrArray(sym string, fn func(out, n ffi.Ptr)) []ffi.Ptr {
	o := b.outParams()
	defer o.Free()

	fn(o.PtrSlot(), o.LenSlot())
	arr, n, ok := o.Result()
	if !ok {
		panic(errors.OutOfBounds(sym, uint32(o.PtrSlot()), b.lib.PointerSize()+4))
	}
	if arr.IsNull() {
		return nil
	}
	defer b.lib.Free(arr)

	ptrs, ok := ffi.ReadPtrArray(b.lib, arr, n)
	if !ok {
		panic(errors.OutOfBounds(sym, uint32(arr), uint32(n)*b.lib.PointerSize()))
	}
	return ptrs
}
