package wasmlib_test

import (
	"context"
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tetratelabs/wazero"

	"github.com/wippyai/pangobind/errors"
	"github.com/wippyai/pangobind/ffi"
	"github.com/wippyai/pangobind/ffi/hostlib"
	"github.com/wippyai/pangobind/ffi/wasmlib"
	"github.com/wippyai/pangobind/pango"
)

// hosted exports an instrumented hostlib as the "pango" module over an
// env memory, and binds a wasmlib.Library to it.
func hosted(t *testing.T) (*wasmlib.Library, *hostlib.Library) {
	t.Helper()
	ctx := context.Background()

	r := wazero.NewRuntime(ctx)
	t.Cleanup(func() { r.Close(ctx) })

	env, err := wasmlib.InstantiateEnvMemory(ctx, r, 1, 16)
	require.NoError(t, err)
	require.NotNil(t, env.Memory())

	host := hostlib.New(hostlib.WithMemory(env.Memory(), 0))
	mod, err := host.Export(ctx, r, "pango")
	require.NoError(t, err)

	lib, err := wasmlib.Bind(ctx, mod, env.Memory())
	require.NoError(t, err)
	return lib, host
}

func TestBind_MissingSymbols(t *testing.T) {
	ctx := context.Background()
	r := wazero.NewRuntime(ctx)
	defer r.Close(ctx)

	env, err := wasmlib.InstantiateEnvMemory(ctx, r, 1, 1)
	require.NoError(t, err)

	_, err = wasmlib.Bind(ctx, env, nil)
	require.Error(t, err)

	var missing *errors.MissingSymbolsError
	require.True(t, stderrors.As(err, &missing))
	assert.Equal(t, "env", missing.Module)
	assert.ElementsMatch(t, ffi.Symbols, missing.Symbols)
	assert.Contains(t, err.Error(), "pango_coverage:")
}

func TestBind_NoMemory(t *testing.T) {
	ctx := context.Background()
	r := wazero.NewRuntime(ctx)
	defer r.Close(ctx)

	mod, err := hostlib.New().Export(ctx, r, "pango")
	require.NoError(t, err)

	_, err = wasmlib.Bind(ctx, mod, nil)
	require.Error(t, err)
	var e *errors.Error
	require.True(t, stderrors.As(err, &e))
	assert.Equal(t, errors.PhaseBind, e.Phase)
}

func TestLoad_Errors(t *testing.T) {
	ctx := context.Background()

	_, err := wasmlib.Load(ctx, []byte("not wasm"), nil)
	require.Error(t, err)
	var e *errors.Error
	require.True(t, stderrors.As(err, &e))
	assert.Equal(t, errors.PhaseLoad, e.Phase)

	empty := []byte{0x00, 0x61, 0x73, 0x6d, 0x01, 0x00, 0x00, 0x00}
	_, err = wasmlib.Load(ctx, empty, &wasmlib.Options{
		ModuleName: "empty",
		EnvMemory:  &wasmlib.MemoryLimits{Min: 1, Max: 2},
	})
	require.Error(t, err, "module without memory or symbols")

	_, err = wasmlib.Load(ctx, empty, &wasmlib.Options{
		EnvMemory: &wasmlib.MemoryLimits{Min: 2, Max: 1},
	})
	require.Error(t, err)
}

func TestLoad_ImportedEnvMemory(t *testing.T) {
	// (module (import "env" "memory" (memory 1 3)))
	bin := []byte{
		0x00, 0x61, 0x73, 0x6d, 0x01, 0x00, 0x00, 0x00,
		0x02, 0x10, 0x01,
		0x03, 'e', 'n', 'v',
		0x06, 'm', 'e', 'm', 'o', 'r', 'y',
		0x02, 0x01, 0x01, 0x03,
	}
	_, err := wasmlib.Load(context.Background(), bin, nil)
	require.Error(t, err)

	var missing *errors.MissingSymbolsError
	require.True(t, stderrors.As(err, &missing), "instantiated against a created env memory: %v", err)
	assert.Equal(t, wasmlib.DefaultModuleName, missing.Module)
}

func TestMemory(t *testing.T) {
	lib, host := hosted(t)

	p := ffi.CString(lib, "Cantarell 11")
	require.False(t, p.IsNull())
	s, ok := lib.ReadCString(p)
	require.True(t, ok)
	assert.Equal(t, "Cantarell 11", s)
	assert.Equal(t, 1, host.Allocated())

	b, ok := lib.Read(p, 4)
	require.True(t, ok)
	b[0] = 'X'
	s, _ = lib.ReadCString(p)
	assert.Equal(t, "Cantarell 11", s, "Read returns a copy")

	lib.Free(p)
	lib.Free(0)
	assert.Zero(t, host.Allocated())
	assert.Equal(t, uint32(4), lib.PointerSize())

	_, ok = lib.ReadCString(ffi.Ptr(0x8000_0010))
	assert.False(t, ok)
	assert.Empty(t, host.Violations())
}

func TestPangoOverWasm_SharedOwnership(t *testing.T) {
	lib, host := hosted(t)
	b := pango.New(lib)

	c, ok := b.NewCoverage()
	require.True(t, ok)
	p := c.Raw()
	c.Set(4, pango.CoverageExact)

	clones := []*pango.Coverage{c.Clone(), c.Clone(), c.Clone()}
	n, ok := host.RefCount(p)
	require.True(t, ok)
	assert.Equal(t, int32(4), n)

	for _, cl := range clones {
		assert.Equal(t, pango.CoverageExact, cl.Get(4))
		cl.Release()
		assert.Zero(t, host.Finalized(p))
	}
	c.Release()
	c.Release()

	assert.Equal(t, 1, host.Finalized(p))
	assert.Equal(t, 3, host.Calls(ffi.SymCoverageRef))
	assert.Equal(t, 4, host.Calls(ffi.SymCoverageUnref))
	assert.Empty(t, host.Violations())
}

func TestPangoOverWasm_Fonts(t *testing.T) {
	lib, host := hosted(t)
	b := pango.New(lib)

	d, ok := b.ParseFontDescription("Serif Italic 14")
	require.True(t, ok)
	assert.Equal(t, "Serif Italic 14", d.String())
	assert.Equal(t, pango.StyleItalic, d.Style())

	cp, ok := d.DeepCopy()
	require.True(t, ok)
	assert.True(t, cp.Equal(d))
	assert.Equal(t, d.Hash(), cp.Hash())
	cp.Release()
	d.Release()

	m, ok := b.DefaultFontMap()
	require.True(t, ok)
	fams := m.Families()
	require.Len(t, fams, 4)

	var sizes []int32
	fams[3].EachFace(func(f pango.FontFaceRef) bool {
		sizes = f.ListSizes()
		return false
	})
	assert.Equal(t, []int32{8 * pango.Scale, 10 * pango.Scale, 12 * pango.Scale}, sizes)

	for _, f := range fams {
		f.Release()
	}
	m.Release()

	assert.Zero(t, host.Live(hostlib.TypeFontDescription))
	assert.Equal(t, 15, host.Allocated(), "only family and face names remain")
	assert.Empty(t, host.Violations())
}

func TestTrapPanics(t *testing.T) {
	lib, _ := hosted(t)
	require.NoError(t, lib.Close(context.Background()))

	defer func() {
		r := recover()
		require.NotNil(t, r)
		err, ok := r.(*errors.Error)
		require.True(t, ok)
		assert.Equal(t, errors.KindTrap, err.Kind)
		assert.Equal(t, ffi.SymCoverageNew, err.Symbol)
	}()
	lib.CoverageNew()
}
