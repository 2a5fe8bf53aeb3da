//go:build cgo && pango

package pangobind

import (
	"github.com/wippyai/pangobind/ffi"
	"github.com/wippyai/pangobind/ffi/native"
)

// NativeAvailable reports whether Config.Native can be used.
const NativeAvailable = true

func nativeLibrary() (ffi.Library, error) { return native.New(), nil }
