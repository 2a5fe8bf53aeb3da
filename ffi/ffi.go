// Package ffi describes the boundary to the native Pango/GLib library.
//
// Every method of Library corresponds to one foreign entry point, named by
// its C symbol in the method's doc comment. Handles cross the boundary as
// Ptr values that the Go side never dereferences; primitive values cross by
// value. Strings and arrays live in foreign memory and are reached through
// the Memory half of the interface.
//
// Three implementations exist:
//
//	ffi/hostlib  in-process reference library, instrumented for tests
//	ffi/wasmlib  a WebAssembly build hosted in wazero
//	ffi/native   the system shared libraries through cgo (build tag "pango")
//
// The library is single-thread affine: callers confine all calls on one
// Library to one goroutine at a time.
package ffi

import "fmt"

// Ptr is an opaque foreign address. Zero is NULL.
type Ptr uintptr

// IsNull reports whether the pointer is null (zero).
func (p Ptr) IsNull() bool { return p == 0 }

func (p Ptr) String() string { return fmt.Sprintf("Ptr(0x%x)", uintptr(p)) }

// Memory is the allocator and raw memory access of the foreign side.
type Memory interface {
	// Malloc allocates size bytes (g_malloc). Returns NULL on failure.
	Malloc(size uint32) Ptr

	// Free releases memory returned by Malloc or by a full-transfer string
	// or array (g_free). Free(NULL) is a no-op.
	Free(p Ptr)

	// Read copies n bytes starting at p.
	Read(p Ptr, n uint32) ([]byte, bool)

	// Write copies data to p.
	Write(p Ptr, data []byte) bool

	// ReadCString copies the NUL-terminated string at p.
	ReadCString(p Ptr) (string, bool)

	// PointerSize is the width of a foreign pointer in bytes (4 or 8).
	PointerSize() uint32
}

// GObject is the reference counting of GObject-derived types.
type GObject interface {
	// ObjectRef increments the count and returns p (g_object_ref).
	ObjectRef(p Ptr) Ptr

	// ObjectUnref decrements the count, finalizing at zero (g_object_unref).
	ObjectUnref(p Ptr)
}

// Coverage is the PangoCoverage API. PangoCoverage carries its own
// reference count.
type Coverage interface {
	// CoverageNew returns a coverage with one reference (pango_coverage_new).
	CoverageNew() Ptr

	// CoverageRef increments the count (pango_coverage_ref).
	CoverageRef(p Ptr) Ptr

	// CoverageUnref decrements the count (pango_coverage_unref).
	CoverageUnref(p Ptr)

	// CoverageCopy returns an independent coverage with one reference,
	// or NULL (pango_coverage_copy).
	CoverageCopy(p Ptr) Ptr

	// CoverageGet returns the PangoCoverageLevel at index (pango_coverage_get).
	CoverageGet(p Ptr, index int32) int32

	// CoverageSet stores a level at index (pango_coverage_set).
	CoverageSet(p Ptr, index int32, level int32)

	// CoverageMax raises every level of p to at least the level in other
	// (pango_coverage_max).
	CoverageMax(p, other Ptr)

	// CoverageToBytes serializes p into a g_malloc'd buffer written to
	// *bytesOut with its length in *nBytesOut (pango_coverage_to_bytes).
	CoverageToBytes(p, bytesOut, nBytesOut Ptr)

	// CoverageFromBytes parses a serialized coverage, or returns NULL
	// (pango_coverage_from_bytes).
	CoverageFromBytes(bytes Ptr, nBytes int32) Ptr
}

// FontMap is the font enumeration API: map, family and face.
type FontMap interface {
	// FontMapGetDefault returns the process default font map; the caller
	// does not own it (pango_cairo_font_map_get_default).
	FontMapGetDefault() Ptr

	// FontMapListFamilies writes a g_malloc'd array of family pointers to
	// *familiesOut and its length to *nOut. The array belongs to the caller,
	// the families to the map (pango_font_map_list_families).
	FontMapListFamilies(p, familiesOut, nOut Ptr)

	// FontFamilyGetName returns a string owned by the family
	// (pango_font_family_get_name).
	FontFamilyGetName(p Ptr) Ptr

	// FontFamilyIsMonospace (pango_font_family_is_monospace).
	FontFamilyIsMonospace(p Ptr) bool

	// FontFamilyListFaces writes a g_malloc'd array of face pointers owned
	// by the family (pango_font_family_list_faces).
	FontFamilyListFaces(p, facesOut, nOut Ptr)

	// FontFaceDescribe returns a new PangoFontDescription owned by the
	// caller, or NULL (pango_font_face_describe).
	FontFaceDescribe(p Ptr) Ptr

	// FontFaceGetFaceName returns a string owned by the face, or NULL
	// (pango_font_face_get_face_name).
	FontFaceGetFaceName(p Ptr) Ptr

	// FontFaceIsSynthesized (pango_font_face_is_synthesized).
	FontFaceIsSynthesized(p Ptr) bool

	// FontFaceListSizes writes a g_malloc'd array of int sizes in Pango
	// units, or NULL for scalable faces (pango_font_face_list_sizes).
	FontFaceListSizes(p, sizesOut, nOut Ptr)
}

// FontDescription is the PangoFontDescription boxed type. It has no
// reference count: it is copied and freed.
type FontDescription interface {
	// FontDescriptionNew returns an empty description (pango_font_description_new).
	FontDescriptionNew() Ptr

	// FontDescriptionCopy returns an independent copy, or NULL when p is NULL
	// (pango_font_description_copy).
	FontDescriptionCopy(p Ptr) Ptr

	// FontDescriptionFree (pango_font_description_free).
	FontDescriptionFree(p Ptr)

	// FontDescriptionEqual compares field by field (pango_font_description_equal).
	FontDescriptionEqual(a, b Ptr) bool

	// FontDescriptionHash (pango_font_description_hash).
	FontDescriptionHash(p Ptr) uint32

	// FontDescriptionGetFamily returns a string owned by the description,
	// or NULL when unset (pango_font_description_get_family).
	FontDescriptionGetFamily(p Ptr) Ptr

	// FontDescriptionSetFamily copies family (pango_font_description_set_family).
	FontDescriptionSetFamily(p, family Ptr)

	FontDescriptionGetSize(p Ptr) int32
	FontDescriptionSetSize(p Ptr, size int32)
	FontDescriptionGetWeight(p Ptr) int32
	FontDescriptionSetWeight(p Ptr, weight int32)
	FontDescriptionGetStyle(p Ptr) int32
	FontDescriptionSetStyle(p Ptr, style int32)
	FontDescriptionGetVariant(p Ptr) int32
	FontDescriptionSetVariant(p Ptr, variant int32)
	FontDescriptionGetStretch(p Ptr) int32
	FontDescriptionSetStretch(p Ptr, stretch int32)

	// FontDescriptionGetSetFields returns the PangoFontMask of explicitly
	// set fields (pango_font_description_get_set_fields).
	FontDescriptionGetSetFields(p Ptr) uint32

	// FontDescriptionToString returns a g_malloc'd string
	// (pango_font_description_to_string).
	FontDescriptionToString(p Ptr) Ptr

	// FontDescriptionFromString parses s (pango_font_description_from_string).
	FontDescriptionFromString(s Ptr) Ptr
}

// Library is the complete set of entry points the binding uses.
type Library interface {
	Memory
	GObject
	Coverage
	FontMap
	FontDescription
}
