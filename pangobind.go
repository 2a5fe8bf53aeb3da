package pangobind

import (
	"context"
	"os"

	"go.uber.org/zap"

	"github.com/wippyai/pangobind/errors"
	"github.com/wippyai/pangobind/ffi"
	"github.com/wippyai/pangobind/ffi/hostlib"
	"github.com/wippyai/pangobind/ffi/wasmlib"
	"github.com/wippyai/pangobind/handle"
	"github.com/wippyai/pangobind/pango"
)

// Config selects and configures the foreign library.
type Config struct {
	// WasmPath is a WebAssembly build of Pango. Empty selects the builtin
	// in-process library.
	WasmPath string

	// Native selects the system Pango through ffi/native. It needs a build
	// with cgo and the pango tag; other builds fail with KindUnsupported.
	// Native and WasmPath are exclusive.
	Native bool

	// Wasm configures the WebAssembly library. Its Logger is replaced by
	// Logger when unset.
	Wasm wasmlib.Options

	// Families seeds the builtin library's default font map. Nil keeps
	// hostlib.DefaultFamilies.
	Families []hostlib.FamilySpec

	// Logger receives ownership events and library diagnostics.
	Logger *zap.Logger
}

// Session is an open library and its binding.
type Session struct {
	*pango.Binding
	close func(context.Context) error
}

// Close releases the library. Wrappers obtained from the session must be
// released first.
func (s *Session) Close(ctx context.Context) error { return s.close(ctx) }

// Open loads the library cfg selects and binds it.
func Open(ctx context.Context, cfg Config) (*Session, error) {
	log := cfg.Logger
	if log == nil {
		log = zap.NewNop()
	}
	handle.SetLogger(log.Named("handle"))

	if cfg.Native {
		if cfg.WasmPath != "" {
			return nil, errors.Load("native and wasm libraries are exclusive", nil)
		}
		lib, err := nativeLibrary()
		if err != nil {
			return nil, err
		}
		// The system library is process-wide and is never unloaded.
		return &Session{Binding: pango.New(lib), close: func(context.Context) error { return nil }}, nil
	}

	if cfg.WasmPath == "" {
		lib := Builtin(hostlib.WithFamilies(families(cfg.Families)...), hostlib.WithLogger(log.Named("hostlib")))
		return &Session{
			Binding: pango.New(lib),
			close:   func(context.Context) error { return lib.Close() },
		}, nil
	}

	data, err := os.ReadFile(cfg.WasmPath)
	if err != nil {
		return nil, errors.Load("read "+cfg.WasmPath, err)
	}
	opts := cfg.Wasm
	if opts.Logger == nil {
		opts.Logger = log.Named("wasmlib")
	}
	lib, err := wasmlib.Load(ctx, data, &opts)
	if err != nil {
		return nil, err
	}
	lib.SetLogger(opts.Logger)
	return &Session{Binding: pango.New(lib), close: lib.Close}, nil
}

// Builtin returns the in-process library.
func Builtin(opts ...hostlib.Option) *hostlib.Library {
	return hostlib.New(opts...)
}

// Bind wraps any library.
func Bind(lib ffi.Library) *pango.Binding { return pango.New(lib) }

func families(f []hostlib.FamilySpec) []hostlib.FamilySpec {
	if f == nil {
		return hostlib.DefaultFamilies()
	}
	return f
}
