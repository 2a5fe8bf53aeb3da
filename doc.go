// Package pangobind provides safe Go wrappers around Pango objects that
// live in a foreign library.
//
// Every foreign object is held by one of three kinds of handle:
//
//   - Shared: a reference-counted object. Clone takes another count,
//     Release drops it, and the object is finalized when the last count
//     goes.
//   - Full: an exclusively owned value. Copies are deep; Release frees it.
//   - Borrowed: a view into an object owned elsewhere, checked against the
//     owner's lifetime. It is never released.
//
// # Architecture Overview
//
//	pangobind/          Open, Session and library selection
//	├── handle/         Shared, Full and Borrowed handles, live statistics
//	├── pango/          Coverage, FontMap, FontFamily, FontFace, FontDescription
//	├── gtk/            GTK enumerations and flag sets
//	├── enum/           Generic enum and flag tables
//	├── ffi/            The foreign boundary
//	│   ├── hostlib/    In-process library, instrumented for tests
//	│   ├── wasmlib/    WebAssembly build of Pango hosted in wazero
//	│   └── native/     System libraries through cgo (tag "pango")
//	├── resource/       Reference-counted object heap
//	└── errors/         Structured error types
//
// # Quick Start
//
//	s, err := pangobind.Open(ctx, pangobind.Config{})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer s.Close(ctx)
//
//	d, _ := s.ParseFontDescription("Sans Bold 12")
//	defer d.Release()
//	fmt.Println(d.Weight()) // PANGO_WEIGHT_BOLD
//
// # Libraries
//
// The zero Config runs on the builtin in-process library. WasmPath loads a
// WebAssembly build instead. Native uses the system Pango, which requires
// building with cgo and the pango tag:
//
//	go build -tags pango ./...
//
// NativeAvailable reports whether the current build supports it. Any
// ffi.Library can also be wrapped directly with Bind.
//
// # Errors
//
// Misuse of a handle, such as using it after Release or acquiring a NULL
// pointer, is a programming error and panics with an *errors.Error.
// Operations whose foreign result may legitimately be NULL return
// (value, false). Loading and binding a library return errors.
//
// # Thread Safety
//
// A foreign library is single-thread affine. Handles may move between
// goroutines, but calls into one library must not run concurrently.
package pangobind
