package wasmlib

import (
	"bytes"

	"github.com/tetratelabs/wazero/api"

	"github.com/wippyai/pangobind/ffi"
)

// Memory

func (l *Library) Malloc(size uint32) ffi.Ptr {
	return l.callPtr(ffi.SymMalloc, api.EncodeU32(size))
}

func (l *Library) Free(p ffi.Ptr) {
	if p.IsNull() {
		return
	}
	l.call(ffi.SymFree, ptr(p))
}

// Read copies n bytes; the result does not alias linear memory.
func (l *Library) Read(p ffi.Ptr, n uint32) ([]byte, bool) {
	if uint64(p) > 0xffff_ffff {
		return nil, false
	}
	b, ok := l.mem.Read(uint32(p), n)
	if !ok {
		return nil, false
	}
	return bytes.Clone(b), true
}

func (l *Library) Write(p ffi.Ptr, data []byte) bool {
	if uint64(p) > 0xffff_ffff {
		return false
	}
	return l.mem.Write(uint32(p), data)
}

// ReadCString copies the NUL-terminated string at p. A string running to
// the end of memory is not terminated and yields false.
func (l *Library) ReadCString(p ffi.Ptr) (string, bool) {
	size := l.mem.Size()
	if uint64(p) >= uint64(size) {
		return "", false
	}
	b, ok := l.mem.Read(uint32(p), size-uint32(p))
	if !ok {
		return "", false
	}
	i := bytes.IndexByte(b, 0)
	if i < 0 {
		return "", false
	}
	return string(b[:i]), true
}

// PointerSize is 4: wasm32.
func (l *Library) PointerSize() uint32 { return 4 }

// GObject

func (l *Library) ObjectRef(p ffi.Ptr) ffi.Ptr { return l.callPtr(ffi.SymObjectRef, ptr(p)) }
func (l *Library) ObjectUnref(p ffi.Ptr)       { l.call(ffi.SymObjectUnref, ptr(p)) }

// Coverage

func (l *Library) CoverageNew() ffi.Ptr           { return l.callPtr(ffi.SymCoverageNew) }
func (l *Library) CoverageRef(p ffi.Ptr) ffi.Ptr  { return l.callPtr(ffi.SymCoverageRef, ptr(p)) }
func (l *Library) CoverageUnref(p ffi.Ptr)        { l.call(ffi.SymCoverageUnref, ptr(p)) }
func (l *Library) CoverageCopy(p ffi.Ptr) ffi.Ptr { return l.callPtr(ffi.SymCoverageCopy, ptr(p)) }
func (l *Library) CoverageMax(p, other ffi.Ptr)   { l.call(ffi.SymCoverageMax, ptr(p), ptr(other)) }

func (l *Library) CoverageGet(p ffi.Ptr, index int32) int32 {
	return l.callI32(ffi.SymCoverageGet, ptr(p), i32(index))
}

func (l *Library) CoverageSet(p ffi.Ptr, index int32, level int32) {
	l.call(ffi.SymCoverageSet, ptr(p), i32(index), i32(level))
}

func (l *Library) CoverageToBytes(p, bytesOut, nBytesOut ffi.Ptr) {
	l.call(ffi.SymCoverageToBytes, ptr(p), ptr(bytesOut), ptr(nBytesOut))
}

func (l *Library) CoverageFromBytes(data ffi.Ptr, n int32) ffi.Ptr {
	return l.callPtr(ffi.SymCoverageFromBytes, ptr(data), i32(n))
}

// Font map, family and face

func (l *Library) FontMapGetDefault() ffi.Ptr { return l.callPtr(ffi.SymFontMapGetDefault) }

func (l *Library) FontMapListFamilies(p, familiesOut, nOut ffi.Ptr) {
	l.call(ffi.SymFontMapListFamilies, ptr(p), ptr(familiesOut), ptr(nOut))
}

func (l *Library) FontFamilyGetName(p ffi.Ptr) ffi.Ptr {
	return l.callPtr(ffi.SymFontFamilyGetName, ptr(p))
}

func (l *Library) FontFamilyIsMonospace(p ffi.Ptr) bool {
	return l.callBool(ffi.SymFontFamilyIsMonospace, ptr(p))
}

func (l *Library) FontFamilyListFaces(p, facesOut, nOut ffi.Ptr) {
	l.call(ffi.SymFontFamilyListFaces, ptr(p), ptr(facesOut), ptr(nOut))
}

func (l *Library) FontFaceDescribe(p ffi.Ptr) ffi.Ptr {
	return l.callPtr(ffi.SymFontFaceDescribe, ptr(p))
}

func (l *Library) FontFaceGetFaceName(p ffi.Ptr) ffi.Ptr {
	return l.callPtr(ffi.SymFontFaceGetFaceName, ptr(p))
}

func (l *Library) FontFaceIsSynthesized(p ffi.Ptr) bool {
	return l.callBool(ffi.SymFontFaceIsSynthesized, ptr(p))
}

func (l *Library) FontFaceListSizes(p, sizesOut, nOut ffi.Ptr) {
	l.call(ffi.SymFontFaceListSizes, ptr(p), ptr(sizesOut), ptr(nOut))
}

// Font description

func (l *Library) FontDescriptionNew() ffi.Ptr { return l.callPtr(ffi.SymFontDescriptionNew) }

func (l *Library) FontDescriptionCopy(p ffi.Ptr) ffi.Ptr {
	return l.callPtr(ffi.SymFontDescriptionCopy, ptr(p))
}

func (l *Library) FontDescriptionFree(p ffi.Ptr) { l.call(ffi.SymFontDescriptionFree, ptr(p)) }

func (l *Library) FontDescriptionEqual(a, b ffi.Ptr) bool {
	return l.callBool(ffi.SymFontDescriptionEqual, ptr(a), ptr(b))
}

func (l *Library) FontDescriptionHash(p ffi.Ptr) uint32 {
	return api.DecodeU32(l.call(ffi.SymFontDescriptionHash, ptr(p))[0])
}

func (l *Library) FontDescriptionGetFamily(p ffi.Ptr) ffi.Ptr {
	return l.callPtr(ffi.SymFontDescriptionGetFamily, ptr(p))
}

func (l *Library) FontDescriptionSetFamily(p, family ffi.Ptr) {
	l.call(ffi.SymFontDescriptionSetFamily, ptr(p), ptr(family))
}

func (l *Library) getI32(sym string, p ffi.Ptr) int32 { return l.callI32(sym, ptr(p)) }

func (l *Library) setI32(sym string, p ffi.Ptr, v int32) { l.call(sym, ptr(p), i32(v)) }

func (l *Library) FontDescriptionGetSize(p ffi.Ptr) int32 {
	return l.getI32(ffi.SymFontDescriptionGetSize, p)
}

func (l *Library) FontDescriptionSetSize(p ffi.Ptr, size int32) {
	l.setI32(ffi.SymFontDescriptionSetSize, p, size)
}

func (l *Library) FontDescriptionGetWeight(p ffi.Ptr) int32 {
	return l.getI32(ffi.SymFontDescriptionGetWeight, p)
}

func (l *Library) FontDescriptionSetWeight(p ffi.Ptr, weight int32) {
	l.setI32(ffi.SymFontDescriptionSetWeight, p, weight)
}

func (l *Library) FontDescriptionGetStyle(p ffi.Ptr) int32 {
	return l.getI32(ffi.SymFontDescriptionGetStyle, p)
}

func (l *Library) FontDescriptionSetStyle(p ffi.Ptr, style int32) {
	l.setI32(ffi.SymFontDescriptionSetStyle, p, style)
}

func (l *Library) FontDescriptionGetVariant(p ffi.Ptr) int32 {
	return l.getI32(ffi.SymFontDescriptionGetVariant, p)
}

func (l *Library) FontDescriptionSetVariant(p ffi.Ptr, variant int32) {
	l.setI32(ffi.SymFontDescriptionSetVariant, p, variant)
}

func (l *Library) FontDescriptionGetStretch(p ffi.Ptr) int32 {
	return l.getI32(ffi.SymFontDescriptionGetStretch, p)
}

func (l *Library) FontDescriptionSetStretch(p ffi.Ptr, stretch int32) {
	l.setI32(ffi.SymFontDescriptionSetStretch, p, stretch)
}

func (l *Library) FontDescriptionGetSetFields(p ffi.Ptr) uint32 {
	return api.DecodeU32(l.call(ffi.SymFontDescriptionGetSetFields, ptr(p))[0])
}

func (l *Library) FontDescriptionToString(p ffi.Ptr) ffi.Ptr {
	return l.callPtr(ffi.SymFontDescriptionToString, ptr(p))
}

func (l *Library) FontDescriptionFromString(s ffi.Ptr) ffi.Ptr {
	return l.callPtr(ffi.SymFontDescriptionFromString, ptr(s))
}
