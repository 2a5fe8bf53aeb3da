//go:build cgo && pango

package native

/*
#cgo pkg-config: pangocairo
#include <stdint.h>
#include <string.h>
#include <glib.h>
#include <glib-object.h>
#include <pango/pango.h>
#include <pango/pangocairo.h>

#define P(x) ((uintptr_t)(x))

static uintptr_t pb_malloc(uint32_t n) { return P(g_malloc(n)); }
static void pb_free(uintptr_t p) { g_free((gpointer)p); }
static void pb_read(uintptr_t p, void *dst, uint32_t n) { memcpy(dst, (const void *)p, n); }
static void pb_write(uintptr_t p, const void *src, uint32_t n) { memcpy((void *)p, src, n); }
static size_t pb_strlen(uintptr_t p) { return strlen((const char *)p); }

static uintptr_t pb_object_ref(uintptr_t p) { return P(g_object_ref((gpointer)p)); }
static void pb_object_unref(uintptr_t p) { g_object_unref((gpointer)p); }

#define COV(p) ((PangoCoverage *)(p))

static uintptr_t pb_coverage_new(void) { return P(pango_coverage_new()); }
static uintptr_t pb_coverage_ref(uintptr_t p) { return P(pango_coverage_ref(COV(p))); }
static void pb_coverage_unref(uintptr_t p) { pango_coverage_unref(COV(p)); }
static uintptr_t pb_coverage_copy(uintptr_t p) { return P(pango_coverage_copy(COV(p))); }
static int pb_coverage_get(uintptr_t p, int i) { return (int)pango_coverage_get(COV(p), i); }
static void pb_coverage_set(uintptr_t p, int i, int l) { pango_coverage_set(COV(p), i, (PangoCoverageLevel)l); }

G_GNUC_BEGIN_IGNORE_DEPRECATIONS
static void pb_coverage_max(uintptr_t p, uintptr_t o) { pango_coverage_max(COV(p), COV(o)); }
static void pb_coverage_to_bytes(uintptr_t p, uintptr_t out, uintptr_t n) {
	pango_coverage_to_bytes(COV(p), (guchar **)out, (int *)n);
}
static uintptr_t pb_coverage_from_bytes(uintptr_t b, int n) {
	return P(pango_coverage_from_bytes((guchar *)b, n));
}
G_GNUC_END_IGNORE_DEPRECATIONS

static uintptr_t pb_font_map_get_default(void) { return P(pango_cairo_font_map_get_default()); }
static void pb_font_map_list_families(uintptr_t m, uintptr_t out, uintptr_t n) {
	pango_font_map_list_families((PangoFontMap *)m, (PangoFontFamily ***)out, (int *)n);
}
static uintptr_t pb_family_get_name(uintptr_t f) { return P(pango_font_family_get_name((PangoFontFamily *)f)); }
static int pb_family_is_monospace(uintptr_t f) { return pango_font_family_is_monospace((PangoFontFamily *)f); }
static void pb_family_list_faces(uintptr_t f, uintptr_t out, uintptr_t n) {
	pango_font_family_list_faces((PangoFontFamily *)f, (PangoFontFace ***)out, (int *)n);
}
static uintptr_t pb_face_describe(uintptr_t f) { return P(pango_font_face_describe((PangoFontFace *)f)); }
static uintptr_t pb_face_get_face_name(uintptr_t f) { return P(pango_font_face_get_face_name((PangoFontFace *)f)); }
static int pb_face_is_synthesized(uintptr_t f) { return pango_font_face_is_synthesized((PangoFontFace *)f); }
static void pb_face_list_sizes(uintptr_t f, uintptr_t out, uintptr_t n) {
	pango_font_face_list_sizes((PangoFontFace *)f, (int **)out, (int *)n);
}

#define DESC(p) ((PangoFontDescription *)(p))

static uintptr_t pb_desc_new(void) { return P(pango_font_description_new()); }
static uintptr_t pb_desc_copy(uintptr_t d) { return P(pango_font_description_copy(DESC(d))); }
static void pb_desc_free(uintptr_t d) { pango_font_description_free(DESC(d)); }
static int pb_desc_equal(uintptr_t a, uintptr_t b) { return pango_font_description_equal(DESC(a), DESC(b)); }
static uint32_t pb_desc_hash(uintptr_t d) { return pango_font_description_hash(DESC(d)); }
static uintptr_t pb_desc_get_family(uintptr_t d) { return P(pango_font_description_get_family(DESC(d))); }
static void pb_desc_set_family(uintptr_t d, uintptr_t s) { pango_font_description_set_family(DESC(d), (const char *)s); }
static int pb_desc_get_size(uintptr_t d) { return pango_font_description_get_size(DESC(d)); }
static void pb_desc_set_size(uintptr_t d, int v) { pango_font_description_set_size(DESC(d), v); }
static int pb_desc_get_weight(uintptr_t d) { return (int)pango_font_description_get_weight(DESC(d)); }
static void pb_desc_set_weight(uintptr_t d, int v) { pango_font_description_set_weight(DESC(d), (PangoWeight)v); }
static int pb_desc_get_style(uintptr_t d) { return (int)pango_font_description_get_style(DESC(d)); }
static void pb_desc_set_style(uintptr_t d, int v) { pango_font_description_set_style(DESC(d), (PangoStyle)v); }
static int pb_desc_get_variant(uintptr_t d) { return (int)pango_font_description_get_variant(DESC(d)); }
static void pb_desc_set_variant(uintptr_t d, int v) { pango_font_description_set_variant(DESC(d), (PangoVariant)v); }
static int pb_desc_get_stretch(uintptr_t d) { return (int)pango_font_description_get_stretch(DESC(d)); }
static void pb_desc_set_stretch(uintptr_t d, int v) { pango_font_description_set_stretch(DESC(d), (PangoStretch)v); }
static uint32_t pb_desc_get_set_fields(uintptr_t d) { return (uint32_t)pango_font_description_get_set_fields(DESC(d)); }
static uintptr_t pb_desc_to_string(uintptr_t d) { return P(pango_font_description_to_string(DESC(d))); }
static uintptr_t pb_desc_from_string(uintptr_t s) { return P(pango_font_description_from_string((const char *)s)); }
*/
import "C"

import (
	"unsafe"

	"github.com/wippyai/pangobind/ffi"
)

// Library is the system Pango. It has no state; the zero value is ready.
type Library struct{}

var _ ffi.Library = Library{}

// New returns the system library.
func New() Library { return Library{} }

func u(p ffi.Ptr) C.uintptr_t   { return C.uintptr_t(p) }
func ptr(p C.uintptr_t) ffi.Ptr { return ffi.Ptr(p) }
func gbool(v C.int) bool        { return v != 0 }

func (Library) Malloc(size uint32) ffi.Ptr { return ptr(C.pb_malloc(C.uint32_t(size))) }
func (Library) Free(p ffi.Ptr)             { C.pb_free(u(p)) }

func (Library) Read(p ffi.Ptr, n uint32) ([]byte, bool) {
	if p.IsNull() {
		return nil, false
	}
	buf := make([]byte, n)
	if n > 0 {
		C.pb_read(u(p), unsafe.Pointer(&buf[0]), C.uint32_t(n))
	}
	return buf, true
}

func (Library) Write(p ffi.Ptr, data []byte) bool {
	if p.IsNull() {
		return false
	}
	if len(data) > 0 {
		C.pb_write(u(p), unsafe.Pointer(&data[0]), C.uint32_t(len(data)))
	}
	return true
}

func (l Library) ReadCString(p ffi.Ptr) (string, bool) {
	if p.IsNull() {
		return "", false
	}
	b, _ := l.Read(p, uint32(C.pb_strlen(u(p))))
	return string(b), true
}

func (Library) PointerSize() uint32 { return uint32(unsafe.Sizeof(uintptr(0))) }

func (Library) ObjectRef(p ffi.Ptr) ffi.Ptr { return ptr(C.pb_object_ref(u(p))) }
func (Library) ObjectUnref(p ffi.Ptr)       { C.pb_object_unref(u(p)) }

func (Library) CoverageNew() ffi.Ptr           { return ptr(C.pb_coverage_new()) }
func (Library) CoverageRef(p ffi.Ptr) ffi.Ptr  { return ptr(C.pb_coverage_ref(u(p))) }
func (Library) CoverageUnref(p ffi.Ptr)        { C.pb_coverage_unref(u(p)) }
func (Library) CoverageCopy(p ffi.Ptr) ffi.Ptr { return ptr(C.pb_coverage_copy(u(p))) }
func (Library) CoverageMax(p, other ffi.Ptr)   { C.pb_coverage_max(u(p), u(other)) }

func (Library) CoverageGet(p ffi.Ptr, index int32) int32 {
	return int32(C.pb_coverage_get(u(p), C.int(index)))
}

func (Library) CoverageSet(p ffi.Ptr, index int32, level int32) {
	C.pb_coverage_set(u(p), C.int(index), C.int(level))
}

func (Library) CoverageToBytes(p, bytesOut, nBytesOut ffi.Ptr) {
	C.pb_coverage_to_bytes(u(p), u(bytesOut), u(nBytesOut))
}

func (Library) CoverageFromBytes(data ffi.Ptr, n int32) ffi.Ptr {
	return ptr(C.pb_coverage_from_bytes(u(data), C.int(n)))
}

func (Library) FontMapGetDefault() ffi.Ptr { return ptr(C.pb_font_map_get_default()) }

func (Library) FontMapListFamilies(p, familiesOut, nOut ffi.Ptr) {
	C.pb_font_map_list_families(u(p), u(familiesOut), u(nOut))
}

func (Library) FontFamilyGetName(p ffi.Ptr) ffi.Ptr   { return ptr(C.pb_family_get_name(u(p))) }
func (Library) FontFamilyIsMonospace(p ffi.Ptr) bool  { return gbool(C.pb_family_is_monospace(u(p))) }
func (Library) FontFaceDescribe(p ffi.Ptr) ffi.Ptr    { return ptr(C.pb_face_describe(u(p))) }
func (Library) FontFaceGetFaceName(p ffi.Ptr) ffi.Ptr { return ptr(C.pb_face_get_face_name(u(p))) }
func (Library) FontFaceIsSynthesized(p ffi.Ptr) bool  { return gbool(C.pb_face_is_synthesized(u(p))) }

func (Library) FontFamilyListFaces(p, facesOut, nOut ffi.Ptr) {
	C.pb_family_list_faces(u(p), u(facesOut), u(nOut))
}

func (Library) FontFaceListSizes(p, sizesOut, nOut ffi.Ptr) {
	C.pb_face_list_sizes(u(p), u(sizesOut), u(nOut))
}

func (Library) FontDescriptionNew() ffi.Ptr            { return ptr(C.pb_desc_new()) }
func (Library) FontDescriptionCopy(p ffi.Ptr) ffi.Ptr  { return ptr(C.pb_desc_copy(u(p))) }
func (Library) FontDescriptionFree(p ffi.Ptr)          { C.pb_desc_free(u(p)) }
func (Library) FontDescriptionEqual(a, b ffi.Ptr) bool { return gbool(C.pb_desc_equal(u(a), u(b))) }
func (Library) FontDescriptionHash(p ffi.Ptr) uint32   { return uint32(C.pb_desc_hash(u(p))) }

func (Library) FontDescriptionGetFamily(p ffi.Ptr) ffi.Ptr { return ptr(C.pb_desc_get_family(u(p))) }
func (Library) FontDescriptionSetFamily(p, family ffi.Ptr) { C.pb_desc_set_family(u(p), u(family)) }

func (Library) FontDescriptionGetSize(p ffi.Ptr) int32      { return int32(C.pb_desc_get_size(u(p))) }
func (Library) FontDescriptionSetSize(p ffi.Ptr, v int32)   { C.pb_desc_set_size(u(p), C.int(v)) }
func (Library) FontDescriptionGetWeight(p ffi.Ptr) int32    { return int32(C.pb_desc_get_weight(u(p))) }
func (Library) FontDescriptionSetWeight(p ffi.Ptr, v int32) { C.pb_desc_set_weight(u(p), C.int(v)) }
func (Library) FontDescriptionGetStyle(p ffi.Ptr) int32     { return int32(C.pb_desc_get_style(u(p))) }
func (Library) FontDescriptionSetStyle(p ffi.Ptr, v int32)  { C.pb_desc_set_style(u(p), C.int(v)) }

func (Library) FontDescriptionGetVariant(p ffi.Ptr) int32 {
	return int32(C.pb_desc_get_variant(u(p)))
}

func (Library) FontDescriptionSetVariant(p ffi.Ptr, v int32) {
	C.pb_desc_set_variant(u(p), C.int(v))
}

func (Library) FontDescriptionGetStretch(p ffi.Ptr) int32 {
	return int32(C.pb_desc_get_stretch(u(p)))
}

func (Library) FontDescriptionSetStretch(p ffi.Ptr, v int32) {
	C.pb_desc_set_stretch(u(p), C.int(v))
}

func (Library) FontDescriptionGetSetFields(p ffi.Ptr) uint32 {
	return uint32(C.pb_desc_get_set_fields(u(p)))
}

func (Library) FontDescriptionToString(p ffi.Ptr) ffi.Ptr {
	return ptr(C.pb_desc_to_string(u(p)))
}

func (Library) FontDescriptionFromString(s ffi.Ptr) ffi.Ptr {
	return ptr(C.pb_desc_from_string(u(s)))
}
