// Package pango wraps the Pango font objects of a foreign library.
//
// A Binding ties the wrappers to one ffi.Library. Each wrapped type
// declares its ownership mode once, through the handle class it is
// registered with:
//
//	Coverage         shared, pango_coverage_ref / pango_coverage_unref
//	FontMap          shared, g_object_ref / g_object_unref
//	FontFamily       shared, g_object_ref / g_object_unref
//	FontFace         shared, g_object_ref / g_object_unref
//	FontDescription  full, pango_font_description_copy / _free
//
// Entry points documented as "may return nothing" return (nil, false).
// Passing a released wrapper panics. Wrappers are not safe for concurrent
// use and are never finalized by the garbage collector: call Release.
package pango
