// Package gtk mirrors GTK enumeration and flag constants.
//
// Each type uses the foreign integer values, so ToGlib and a plain type
// conversion agree. XxxFromGlib validates against the declared constants.
// Flag types add Has, Union, Intersect and Without, and print as
// "|"-joined constant names:
//
//	s := gtk.StateFlagActive.Union(gtk.StateFlagFocused)
//	s.String() // "GTK_STATE_FLAG_ACTIVE|GTK_STATE_FLAG_FOCUSED"
package gtk
