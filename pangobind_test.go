package pangobind

import (
	"context"
	stderrors "errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wippyai/pangobind/errors"
	"github.com/wippyai/pangobind/ffi/hostlib"
	"github.com/wippyai/pangobind/handle"
	"github.com/wippyai/pangobind/pango"
)

func TestOpen_Builtin(t *testing.T) {
	ctx := context.Background()
	base := handle.CurrentStats()

	s, err := Open(ctx, Config{})
	require.NoError(t, err)

	d, ok := s.ParseFontDescription("Sans Bold 12")
	require.True(t, ok)
	assert.Equal(t, pango.WeightBold, d.Weight())
	d.Release()

	m, ok := s.DefaultFontMap()
	require.True(t, ok)
	fams := m.Families()
	assert.Len(t, fams, len(hostlib.DefaultFamilies()))
	for _, f := range fams {
		f.Release()
	}
	m.Release()

	require.NoError(t, s.Close(ctx))
	diff := handle.CurrentStats().Sub(base)
	assert.Zero(t, diff.LiveShared)
	assert.Zero(t, diff.LiveFull)
}

func TestOpen_Families(t *testing.T) {
	ctx := context.Background()
	s, err := Open(ctx, Config{Families: []hostlib.FamilySpec{
		{Name: "Cantarell", Faces: []hostlib.FaceSpec{{Name: "Regular"}}},
	}})
	require.NoError(t, err)
	defer s.Close(ctx)

	m, ok := s.DefaultFontMap()
	require.True(t, ok)
	defer m.Release()

	fams := m.Families()
	require.Len(t, fams, 1)
	defer fams[0].Release()
	name, ok := fams[0].Name()
	require.True(t, ok)
	assert.Equal(t, "Cantarell", name)
}

func TestOpen_WasmErrors(t *testing.T) {
	ctx := context.Background()

	_, err := Open(ctx, Config{WasmPath: filepath.Join(t.TempDir(), "missing.wasm")})
	require.Error(t, err)
	var e *errors.Error
	require.True(t, stderrors.As(err, &e))
	assert.Equal(t, errors.PhaseLoad, e.Phase)

	bad := filepath.Join(t.TempDir(), "bad.wasm")
	require.NoError(t, os.WriteFile(bad, []byte("not wasm"), 0o600))
	_, err = Open(ctx, Config{WasmPath: bad})
	require.Error(t, err)
	require.True(t, stderrors.As(err, &e))
	assert.Equal(t, errors.PhaseLoad, e.Phase)

	_, err = Open(ctx, Config{WasmPath: bad, Native: true})
	require.Error(t, err)
	require.True(t, stderrors.As(err, &e))
	assert.Equal(t, errors.PhaseLoad, e.Phase)
}

func TestBind(t *testing.T) {
	lib := Builtin()
	defer lib.Close()

	b := Bind(lib)
	c, ok := b.NewCoverage()
	require.True(t, ok)
	p := c.Raw()
	c.Release()
	assert.Equal(t, 1, lib.Finalized(p))
}
