// Package hostlib is an in-process implementation of ffi.Library.
//
// Objects live in a resource.Heap and are addressed by synthetic pointers
// outside the range of linear memory, so a wrapper can never read them as
// bytes. Strings and arrays live in a linear memory with a g_malloc style
// allocator. The library records every entry point call, every finalization
// and every misuse (unref of a freed object, wrong type, NULL where NULL is
// not allowed) the way GLib reports criticals, which makes it the foreign
// side of the binding's ownership tests.
//
// A Library can also be exported as a wazero host module; see Export.
package hostlib
