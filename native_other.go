//go:build !cgo || !pango

package pangobind

import (
	"github.com/wippyai/pangobind/errors"
	"github.com/wippyai/pangobind/ffi"
)

// NativeAvailable reports whether Config.Native can be used.
const NativeAvailable = false

func nativeLibrary() (ffi.Library, error) {
	return nil, errors.Unsupported(errors.PhaseLoad, "", "built without cgo and the pango tag")
}
