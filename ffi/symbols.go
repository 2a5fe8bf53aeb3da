package ffi

// C symbol names of the entry points in Library.
const (
	SymMalloc = "g_malloc"
	SymFree   = "g_free"

	SymObjectRef   = "g_object_ref"
	SymObjectUnref = "g_object_unref"

	SymCoverageNew       = "pango_coverage_new"
	SymCoverageRef       = "pango_coverage_ref"
	SymCoverageUnref     = "pango_coverage_unref"
	SymCoverageCopy      = "pango_coverage_copy"
	SymCoverageGet       = "pango_coverage_get"
	SymCoverageSet       = "pango_coverage_set"
	SymCoverageMax       = "pango_coverage_max"
	SymCoverageToBytes   = "pango_coverage_to_bytes"
	SymCoverageFromBytes = "pango_coverage_from_bytes"

	SymFontMapGetDefault     = "pango_cairo_font_map_get_default"
	SymFontMapListFamilies   = "pango_font_map_list_families"
	SymFontFamilyGetName     = "pango_font_family_get_name"
	SymFontFamilyIsMonospace = "pango_font_family_is_monospace"
	SymFontFamilyListFaces   = "pango_font_family_list_faces"
	SymFontFaceDescribe      = "pango_font_face_describe"
	SymFontFaceGetFaceName   = "pango_font_face_get_face_name"
	SymFontFaceIsSynthesized = "pango_font_face_is_synthesized"
	SymFontFaceListSizes     = "pango_font_face_list_sizes"

	SymFontDescriptionNew          = "pango_font_description_new"
	SymFontDescriptionCopy         = "pango_font_description_copy"
	SymFontDescriptionFree         = "pango_font_description_free"
	SymFontDescriptionEqual        = "pango_font_description_equal"
	SymFontDescriptionHash         = "pango_font_description_hash"
	SymFontDescriptionGetFamily    = "pango_font_description_get_family"
	SymFontDescriptionSetFamily    = "pango_font_description_set_family"
	SymFontDescriptionGetSize      = "pango_font_description_get_size"
	SymFontDescriptionSetSize      = "pango_font_description_set_size"
	SymFontDescriptionGetWeight    = "pango_font_description_get_weight"
	SymFontDescriptionSetWeight    = "pango_font_description_set_weight"
	SymFontDescriptionGetStyle     = "pango_font_description_get_style"
	SymFontDescriptionSetStyle     = "pango_font_description_set_style"
	SymFontDescriptionGetVariant   = "pango_font_description_get_variant"
	SymFontDescriptionSetVariant   = "pango_font_description_set_variant"
	SymFontDescriptionGetStretch   = "pango_font_description_get_stretch"
	SymFontDescriptionSetStretch   = "pango_font_description_set_stretch"
	SymFontDescriptionGetSetFields = "pango_font_description_get_set_fields"
	SymFontDescriptionToString     = "pango_font_description_to_string"
	SymFontDescriptionFromString   = "pango_font_description_from_string"
)

// Symbols lists every entry point a Library implementation must provide.
var Symbols = []string{
	SymMalloc, SymFree,
	SymObjectRef, SymObjectUnref,
	SymCoverageNew, SymCoverageRef, SymCoverageUnref, SymCoverageCopy,
	SymCoverageGet, SymCoverageSet, SymCoverageMax,
	SymCoverageToBytes, SymCoverageFromBytes,
	SymFontMapGetDefault, SymFontMapListFamilies,
	SymFontFamilyGetName, SymFontFamilyIsMonospace, SymFontFamilyListFaces,
	SymFontFaceDescribe, SymFontFaceGetFaceName, SymFontFaceIsSynthesized, SymFontFaceListSizes,
	SymFontDescriptionNew, SymFontDescriptionCopy, SymFontDescriptionFree,
	SymFontDescriptionEqual, SymFontDescriptionHash,
	SymFontDescriptionGetFamily, SymFontDescriptionSetFamily,
	SymFontDescriptionGetSize, SymFontDescriptionSetSize,
	SymFontDescriptionGetWeight, SymFontDescriptionSetWeight,
	SymFontDescriptionGetStyle, SymFontDescriptionSetStyle,
	SymFontDescriptionGetVariant, SymFontDescriptionSetVariant,
	SymFontDescriptionGetStretch, SymFontDescriptionSetStretch,
	SymFontDescriptionGetSetFields,
	SymFontDescriptionToString, SymFontDescriptionFromString,
}
