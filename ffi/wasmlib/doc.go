// Package wasmlib implements ffi.Library on top of a WebAssembly build of
// Pango hosted in wazero.
//
// The module must export every symbol in ffi.Symbols using the wasm32 C
// ABI: pointers, ints and gboolean are i32. Strings and arrays are read
// from and written to the module's linear memory, which is either defined
// by the module itself or imported from an "env" module created with
// Options.EnvMemory.
//
// Basic usage:
//
//	lib, err := wasmlib.Load(ctx, wasmBytes, nil)
//	if err != nil {
//	    return err
//	}
//	defer lib.Close(ctx)
//
//	b := pango.New(lib)
//
// Bind resolves the symbols of an already instantiated module instead,
// for callers that manage the wazero runtime themselves.
//
// A trap inside an entry point is a precondition violation of the
// binding: the call panics with an *errors.Error of kind KindTrap.
package wasmlib
