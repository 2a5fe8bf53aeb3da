package ffi_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wippyai/pangobind/ffi"
	"github.com/wippyai/pangobind/ffi/hostlib"
)

func TestStrings(t *testing.T) {
	lib := hostlib.New()

	p := ffi.CString(lib, "Noto Sans")
	require.False(t, p.IsNull())
	s, ok := ffi.GoString(lib, p)
	require.True(t, ok)
	assert.Equal(t, "Noto Sans", s)
	assert.Equal(t, 1, lib.Allocated(), "GoString does not free")

	s, ok = ffi.TakeString(lib, p)
	require.True(t, ok)
	assert.Equal(t, "Noto Sans", s)
	assert.Zero(t, lib.Allocated())

	_, ok = ffi.GoString(lib, 0)
	assert.False(t, ok)
	_, ok = ffi.TakeString(lib, 0)
	assert.False(t, ok)

	lib.FailNext(ffi.SymMalloc, 1)
	assert.True(t, ffi.CString(lib, "x").IsNull())
	assert.Empty(t, lib.Violations())
}

func TestArrays(t *testing.T) {
	lib := hostlib.New()

	p := lib.Malloc(12)
	require.False(t, p.IsNull())
	defer lib.Free(p)
	require.True(t, lib.Write(p, []byte{
		1, 0, 0, 0,
		0xfe, 0xff, 0xff, 0xff,
		0, 1, 0, 0,
	}))

	ints, ok := ffi.ReadInt32Array(lib, p, 3)
	require.True(t, ok)
	assert.Equal(t, []int32{1, -2, 256}, ints)

	ptrs, ok := ffi.ReadPtrArray(lib, p, 3)
	require.True(t, ok)
	assert.Equal(t, []ffi.Ptr{1, 0xffff_fffe, 256}, ptrs)

	empty, ok := ffi.ReadPtrArray(lib, p, 0)
	assert.True(t, ok)
	assert.Nil(t, empty)

	_, ok = ffi.ReadInt32Array(lib, ffi.Ptr(0x7fff_fff0), 4)
	assert.False(t, ok, "out of bounds")
}

func TestOutParams(t *testing.T) {
	lib := hostlib.New()

	o, ok := ffi.NewOutParams(lib)
	require.True(t, ok)
	assert.Equal(t, o.PtrSlot()+4, o.LenSlot())

	arr, n, ok := o.Result()
	require.True(t, ok)
	assert.True(t, arr.IsNull(), "slots start zeroed")
	assert.Zero(t, n)

	c := lib.CoverageNew()
	lib.CoverageSet(c, 3, 2)
	lib.CoverageToBytes(c, o.PtrSlot(), o.LenSlot())
	arr, n, ok = o.Result()
	require.True(t, ok)
	assert.False(t, arr.IsNull())
	assert.Equal(t, int32(9), n)

	lib.Free(arr)
	o.Free()
	lib.CoverageUnref(c)
	assert.Zero(t, lib.Allocated())
	assert.Empty(t, lib.Violations())
}
