// Package native implements ffi.Library on the system Pango, GObject and
// GLib shared libraries through cgo.
//
// The implementation is compiled only with cgo enabled and the "pango"
// build tag, and needs the pangocairo pkg-config module:
//
//	go build -tags pango ./...
//
// Without the tag the package is empty and the binding runs on
// ffi/hostlib or ffi/wasmlib instead. pangobind.Config.Native selects this
// library, as does pangobind.Bind(native.New()).
//
// Pointers cross the boundary as uintptr_t. No Go pointer is retained by
// C, and Go code touches C memory only through Read and Write.
package native
