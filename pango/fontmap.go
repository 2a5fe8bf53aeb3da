package pango

import (
	"github.com/wippyai/pangobind/errors"
	"github.com/wippyai/pangobind/ffi"
	"github.com/wippyai/pangobind/handle"
)

// FontMap is the set of fonts available to a renderer.
type FontMap struct {
	b *Binding
	h *handle.Shared
}

// DefaultFontMap returns the process default font map. The foreign side
// keeps its own count, so the wrapper takes a new one.
func (b *Binding) DefaultFontMap() (*FontMap, bool) {
	h, ok := handle.TryRefShared(b.fontMap, b.lib.FontMapGetDefault())
	if !ok {
		return nil, false
	}
	return &FontMap{b: b, h: h}, true
}

// Families lists the font families of the map. Each returned family holds
// its own count and must be released.
func (m *FontMap) Families() []*FontFamily {
	raw := m.h.Raw()
	ptrs := m.b.ptrArray(ffi.SymFontMapListFamilies, func(out, n ffi.Ptr) {
		m.b.lib.FontMapListFamilies(raw, out, n)
	})
	hs := refAll(m.b.fontFamily, ptrs)
	out := make([]*FontFamily, len(hs))
	for i, h := range hs {
		out[i] = &FontFamily{b: m.b, h: h}
	}
	return out
}

// refAll takes a count on each pointer. If a ref panics, the counts
// already taken are given back before the panic continues.
func refAll(c *handle.SharedClass, ptrs []ffi.Ptr) []*handle.Shared {
	out := make([]*handle.Shared, 0, len(ptrs))
	done := false
	defer func() {
		if done {
			return
		}
		for _, h := range out {
			h.Release()
		}
	}()
	for _, p := range ptrs {
		out = append(out, handle.RefShared(c, p))
	}
	done = true
	return out
}

// Release drops this wrapper's count.
func (m *FontMap) Release() { m.h.Release() }

// Raw returns the foreign pointer. It panics after Release.
func (m *FontMap) Raw() ffi.Ptr { return m.h.Raw() }

// Clone returns another owner of the same map.
func (m *FontMap) Clone() *FontMap { return &FontMap{b: m.b, h: m.h.Clone()} }

// FontFamily is a group of faces sharing a family name.
type FontFamily struct {
	b *Binding
	h *handle.Shared
}

// Name returns the family name.
func (f *FontFamily) Name() (string, bool) {
	return ffi.GoString(f.b.lib, f.b.lib.FontFamilyGetName(f.h.Raw()))
}

// IsMonospace reports whether every face of the family has the same advance.
func (f *FontFamily) IsMonospace() bool {
	return f.b.lib.FontFamilyIsMonospace(f.h.Raw())
}

func (f *FontFamily) faces() []ffi.Ptr {
	raw := f.h.Raw()
	return f.b.ptrArray(ffi.SymFontFamilyListFaces, func(out, n ffi.Ptr) {
		f.b.lib.FontFamilyListFaces(raw, out, n)
	})
}

// Faces lists the faces of the family. Each returned face holds its own
// count and must be released.
func (f *FontFamily) Faces() []*FontFace {
	hs := refAll(f.b.fontFace, f.faces())
	out := make([]*FontFace, len(hs))
	for i, h := range hs {
		out[i] = &FontFace{b: f.b, h: h}
	}
	return out
}

// EachFace calls fn with a borrowed view of each face until fn returns
// false. The views expire when EachFace returns; use Own to keep one.
func (f *FontFamily) EachFace(fn func(FontFaceRef) bool) {
	ptrs := f.faces()
	handle.Scope(f.h.Lifetime(), func(lt *handle.Lifetime) {
		for _, p := range ptrs {
			if !fn(FontFaceRef{b: f.b, v: handle.Borrow(TypeFontFace, p, lt)}) {
				return
			}
		}
	})
}

// Release drops this wrapper's count.
func (f *FontFamily) Release() { f.h.Release() }

// Released reports whether Release was called.
func (f *FontFamily) Released() bool { return f.h.Released() }

// Raw returns the foreign pointer. It panics after Release.
func (f *FontFamily) Raw() ffi.Ptr { return f.h.Raw() }

// Equal reports whether both wrappers refer to the same family object.
func (f *FontFamily) Equal(other *FontFamily) bool { return f.h.Equal(other.h) }

// FontFace is one style of a font family.
type FontFace struct {
	b *Binding
	h *handle.Shared
}

// Describe returns a description of the face without its size. It returns
// false when the face cannot be described.
func (f *FontFace) Describe() (*FontDescription, bool) { return f.b.faceDescribe(f.h.Raw()) }

// FaceName returns the face name, such as "Bold Italic".
func (f *FontFace) FaceName() (string, bool) { return f.b.faceName(f.h.Raw()) }

// IsSynthesized reports whether the face is derived from another by
// slanting or emboldening.
func (f *FontFace) IsSynthesized() bool { return f.b.lib.FontFaceIsSynthesized(f.h.Raw()) }

// ListSizes returns the available sizes in Pango units for bitmap faces,
// and nil for scalable ones.
func (f *FontFace) ListSizes() []int32 { return f.b.faceSizes(f.h.Raw()) }

// Clone returns another owner of the same face.
func (f *FontFace) Clone() *FontFace { return &FontFace{b: f.b, h: f.h.Clone()} }

// Release drops this wrapper's count.
func (f *FontFace) Release() { f.h.Release() }

// Released reports whether Release was called.
func (f *FontFace) Released() bool { return f.h.Released() }

// Raw returns the foreign pointer. It panics after Release.
func (f *FontFace) Raw() ffi.Ptr { return f.h.Raw() }

// Borrow returns a view valid until this wrapper is released.
func (f *FontFace) Borrow() handle.Borrowed { return f.h.Borrow() }

// Equal reports whether both wrappers refer to the same face object.
func (f *FontFace) Equal(other *FontFace) bool { return f.h.Equal(other.h) }

// FontFaceRef is a face seen without ownership.
type FontFaceRef struct {
	b *Binding
	v handle.Borrowed
}

// Describe is FontFace.Describe for the viewed face.
func (r FontFaceRef) Describe() (*FontDescription, bool) { return r.b.faceDescribe(r.v.Raw()) }

// FaceName is FontFace.FaceName for the viewed face.
func (r FontFaceRef) FaceName() (string, bool) { return r.b.faceName(r.v.Raw()) }

// IsSynthesized is FontFace.IsSynthesized for the viewed face.
func (r FontFaceRef) IsSynthesized() bool { return r.b.lib.FontFaceIsSynthesized(r.v.Raw()) }

// ListSizes is FontFace.ListSizes for the viewed face.
func (r FontFaceRef) ListSizes() []int32 { return r.b.faceSizes(r.v.Raw()) }

// Valid reports whether the view may still be used.
func (r FontFaceRef) Valid() bool { return r.v.Valid() }

// Raw returns the foreign pointer.
func (r FontFaceRef) Raw() ffi.Ptr { return r.v.Raw() }

// Own takes a count on the face, producing a wrapper that outlives the view.
func (r FontFaceRef) Own() *FontFace {
	return &FontFace{b: r.b, h: handle.Own(r.v, r.b.fontFace)}
}

func (b *Binding) faceDescribe(p ffi.Ptr) (*FontDescription, bool) {
	return b.wrapFontDescription(handle.TryTakeFull(b.fontDesc, b.lib.FontFaceDescribe(p)))
}

// faceName copies the face-owned string.
func (b *Binding) faceName(p ffi.Ptr) (string, bool) {
	return ffi.GoString(b.lib, b.lib.FontFaceGetFaceName(p))
}

func (b *Binding) faceSizes(p ffi.Ptr) []int32 {
	o := b.outParams()
	defer o.Free()

	b.lib.FontFaceListSizes(p, o.PtrSlot(), o.LenSlot())
	arr, n, ok := o.Result()
	if !ok {
		panic(errors.OutOfBounds(ffi.SymFontFaceListSizes, uint32(o.PtrSlot()), b.lib.PointerSize()+4))
	}
	if arr.IsNull() {
		return nil
	}
	defer b.lib.Free(arr)

	sizes, ok := ffi.ReadInt32Array(b.lib, arr, n)
	if !ok {
		panic(errors.OutOfBounds(ffi.SymFontFaceListSizes, uint32(arr), uint32(n)*4))
	}
	return sizes
}
