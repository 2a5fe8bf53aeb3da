package wasmlib

import (
	"context"
	"fmt"
	"io"

	"github.com/tetratelabs/wazero"
	"github.com/tetratelabs/wazero/api"
	"github.com/tetratelabs/wazero/imports/wasi_snapshot_preview1"
	"go.uber.org/zap"

	"github.com/wippyai/pangobind/errors"
	"github.com/wippyai/pangobind/ffi"
	"github.com/wippyai/pangobind/ffi/wasmlib/internal/wasmbin"
)

// DefaultModuleName is the instance name Load gives the library module.
const DefaultModuleName = "pango"

// Options configures Load.
type Options struct {
	// ModuleName names the module instance. Default "pango".
	ModuleName string

	// StartFunctions run after instantiation. Missing ones are skipped.
	// Default "_initialize", the reactor entry point.
	StartFunctions []string

	// MemoryLimitPages caps linear memory in 64KiB pages. 0 keeps the
	// wazero default.
	MemoryLimitPages uint32

	// EnvMemory instantiates an "env" module exporting a memory of these
	// limits before the library. When nil and the library imports
	// env.memory, the import's own limits are used.
	EnvMemory *MemoryLimits

	Stdout io.Writer
	Stderr io.Writer

	// Logger receives load and bind events. Default no-op.
	Logger *zap.Logger
}

// MemoryLimits are memory sizes in 64KiB pages. Max 0 is unbounded.
type MemoryLimits struct {
	Min uint32
	Max uint32
}

func (o *Options) withDefaults() Options {
	var out Options
	if o != nil {
		out = *o
	}
	if out.ModuleName == "" {
		out.ModuleName = DefaultModuleName
	}
	if out.StartFunctions == nil {
		out.StartFunctions = []string{"_initialize"}
	}
	if out.Logger == nil {
		out.Logger = zap.NewNop()
	}
	return out
}

// Library is a Pango build running in wazero.
type Library struct {
	ctx     context.Context
	runtime wazero.Runtime // nil when bound to a caller-owned runtime
	mod     api.Module
	mem     api.Memory
	fns     map[string]api.Function
	log     *zap.Logger
}

var _ ffi.Library = (*Library)(nil)

// Load compiles and instantiates wasmBytes in a new runtime with WASI
// preview1, then binds it. Close releases the runtime.
func Load(ctx context.Context, wasmBytes []byte, opts *Options) (*Library, error) {
	o := opts.withDefaults()

	cfg := wazero.NewRuntimeConfig()
	if o.MemoryLimitPages > 0 {
		cfg = cfg.WithMemoryLimitPages(o.MemoryLimitPages)
	}
	r := wazero.NewRuntimeWithConfig(ctx, cfg)

	fail := func(err error) (*Library, error) {
		r.Close(ctx)
		return nil, err
	}

	if _, err := wasi_snapshot_preview1.Instantiate(ctx, r); err != nil {
		return fail(errors.Load("instantiate WASI", err))
	}

	compiled, err := r.CompileModule(ctx, wasmBytes)
	if err != nil {
		return fail(errors.Load("compile module", err))
	}

	var envMem api.Memory
	limits := o.EnvMemory
	if limits == nil {
		limits = importedEnvMemory(compiled)
	}
	if limits != nil {
		env, err := InstantiateEnvMemory(ctx, r, limits.Min, limits.Max)
		if err != nil {
			return fail(errors.Load("instantiate env memory", err))
		}
		envMem = env.Memory()
		o.Logger.Debug("env memory created",
			zap.Uint32("min_pages", limits.Min),
			zap.Uint32("max_pages", limits.Max))
	}

	modCfg := wazero.NewModuleConfig().
		WithName(o.ModuleName).
		WithStartFunctions(o.StartFunctions...)
	if o.Stdout != nil {
		modCfg = modCfg.WithStdout(o.Stdout)
	}
	if o.Stderr != nil {
		modCfg = modCfg.WithStderr(o.Stderr)
	}

	mod, err := r.InstantiateModule(ctx, compiled, modCfg)
	if err != nil {
		return fail(errors.Instantiation(err))
	}
	o.Logger.Debug("module instantiated",
		zap.String("module", o.ModuleName),
		zap.Int("bytes", len(wasmBytes)))

	lib, err := Bind(ctx, mod, envMem)
	if err != nil {
		return fail(err)
	}
	lib.runtime = r
	lib.log = o.Logger
	return lib, nil
}

// Bind resolves the entry points of mod. mem is the linear memory shared
// with the library; nil uses mod's own memory. The returned Library calls
// into mod with ctx.
func Bind(ctx context.Context, mod api.Module, mem api.Memory) (*Library, error) {
	if mem == nil {
		mem = mod.Memory()
	}
	if mem == nil {
		return nil, errors.New(errors.PhaseBind, errors.KindMissingSymbol).
			Detail("module %q has no linear memory", mod.Name()).
			Build()
	}

	fns := make(map[string]api.Function, len(ffi.Symbols))
	var missing []string
	for _, sym := range ffi.Symbols {
		fn := mod.ExportedFunction(sym)
		if fn == nil {
			missing = append(missing, sym)
			continue
		}
		fns[sym] = fn
	}
	if len(missing) > 0 {
		return nil, &errors.MissingSymbolsError{Module: mod.Name(), Symbols: missing}
	}

	return &Library{
		ctx: ctx,
		mod: mod,
		mem: mem,
		fns: fns,
		log: zap.NewNop(),
	}, nil
}

// SetLogger sets the logger traps are reported to.
func (l *Library) SetLogger(log *zap.Logger) {
	if log == nil {
		log = zap.NewNop()
	}
	l.log = log
}

// Module returns the bound module instance.
func (l *Library) Module() api.Module { return l.mod }

// Close closes the module, and the runtime if Load created it.
func (l *Library) Close(ctx context.Context) error {
	if l.runtime != nil {
		return l.runtime.Close(ctx)
	}
	return l.mod.Close(ctx)
}

// call invokes sym. A trap is a fault inside the library that the binding
// cannot recover from.
func (l *Library) call(sym string, args ...uint64) []uint64 {
	res, err := l.fns[sym].Call(l.ctx, args...)
	if err != nil {
		l.log.Error("trap", zap.String("symbol", sym), zap.Error(err))
		panic(errors.Trap(sym, err))
	}
	return res
}

func (l *Library) callPtr(sym string, args ...uint64) ffi.Ptr {
	return ffi.Ptr(api.DecodeU32(l.call(sym, args...)[0]))
}

func (l *Library) callI32(sym string, args ...uint64) int32 {
	return api.DecodeI32(l.call(sym, args...)[0])
}

func (l *Library) callBool(sym string, args ...uint64) bool {
	return api.DecodeU32(l.call(sym, args...)[0]) != 0
}

func ptr(p ffi.Ptr) uint64 { return api.EncodeU32(uint32(p)) }

func i32(v int32) uint64 { return api.EncodeI32(v) }

// importedEnvMemory returns the limits of an env.memory import, or nil.
func importedEnvMemory(compiled wazero.CompiledModule) *MemoryLimits {
	for _, m := range compiled.ImportedMemories() {
		module, name, ok := m.Import()
		if !ok || module != "env" || name != "memory" {
			continue
		}
		l := &MemoryLimits{Min: m.Min()}
		if maxPages, ok := m.Max(); ok {
			l.Max = maxPages
		}
		return l
	}
	return nil
}

// InstantiateEnvMemory instantiates a module named "env" that exports a
// memory of minPages..maxPages as "memory"; maxPages 0 is unbounded. wazero
// host modules cannot export memory, so libraries importing env.memory need
// a real module for it.
func InstantiateEnvMemory(ctx context.Context, r wazero.Runtime, minPages, maxPages uint32) (api.Module, error) {
	l := wasmbin.Limits{Min: minPages}
	if maxPages > 0 {
		l.Max = &maxPages
	}
	bin, err := wasmbin.MemoryModule("memory", l)
	if err != nil {
		return nil, fmt.Errorf("env memory: %w", err)
	}

	compiled, err := r.CompileModule(ctx, bin)
	if err != nil {
		return nil, fmt.Errorf("compile env module: %w", err)
	}
	return r.InstantiateModule(ctx, compiled, wazero.NewModuleConfig().WithName("env"))
}
