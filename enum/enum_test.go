package enum

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wippyai/pangobind/errors"
)

type color int32

const (
	colorRed   color = -1
	colorGreen color = 0
	colorBlue  color = 4
)

var colors = New("TestColor", map[color]string{
	colorRed:   "RED",
	colorGreen: "GREEN",
	colorBlue:  "BLUE",
})

type perm uint32

const (
	permNone  perm = 0
	permRead  perm = 1 << 0
	permWrite perm = 1 << 1
	permExec  perm = 1 << 2
	permRW         = permRead | permWrite
)

var perms = NewFlags("TestPerm",
	Flag[perm]{permNone, "NONE"},
	Flag[perm]{permRead, "READ"},
	Flag[perm]{permWrite, "WRITE"},
	Flag[perm]{permExec, "EXEC"},
	Flag[perm]{permRW, "RW"},
)

func TestTable_RoundTrip(t *testing.T) {
	for _, v := range colors.Values() {
		got, ok := colors.FromGlib(colors.ToGlib(v))
		require.True(t, ok, "value %d", v)
		assert.Equal(t, v, got)
	}
	assert.Equal(t, []color{colorRed, colorGreen, colorBlue}, colors.Values())
}

func TestTable_Unknown(t *testing.T) {
	for _, v := range []int32{-2, 1, 3, 5, 1 << 30} {
		_, ok := colors.FromGlib(v)
		assert.False(t, ok, "value %d", v)
	}
	assert.Equal(t, "TestColor(7)", colors.String(7))
	assert.False(t, colors.Contains(2))

	defer func() {
		err, ok := recover().(*errors.Error)
		require.True(t, ok)
		assert.Equal(t, errors.KindInvalidEnum, err.Kind)
		assert.Equal(t, int32(9), err.Value)
	}()
	colors.MustFromGlib(9)
}

func TestTable_Names(t *testing.T) {
	assert.Equal(t, "TestColor", colors.Name())
	assert.Equal(t, "BLUE", colors.String(colorBlue))

	v, ok := colors.Lookup("green")
	require.True(t, ok)
	assert.Equal(t, colorGreen, v)

	_, ok = colors.Lookup("purple")
	assert.False(t, ok)
}

func TestTable_DuplicateName(t *testing.T) {
	assert.Panics(t, func() {
		New("Dup", map[color]string{1: "A", 2: "A"})
	})
}

func TestFlags_String(t *testing.T) {
	tests := []struct {
		in   perm
		want string
	}{
		{permNone, "NONE"},
		{permRead, "READ"},
		{permRW, "RW"},
		{permRead | permExec, "READ|EXEC"},
		{permRW | permExec, "READ|WRITE|EXEC"},
		{permRead | 1<<8, "READ|0x100"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, perms.String(tt.in))
	}
}

func TestFlags_FromGlib(t *testing.T) {
	f, ok := perms.FromGlib(5)
	assert.True(t, ok)
	assert.Equal(t, permRead|permExec, f)

	f, ok = perms.FromGlib(1<<8 | 1)
	assert.False(t, ok)
	assert.Equal(t, perm(1<<8|1), f, "undeclared bits are kept")
	assert.Equal(t, permRead, perms.Truncate(1<<8|1))
	assert.Equal(t, perm(7), perms.Known())

	assert.Panics(t, func() { perms.MustFromGlib(1 << 9) })
}

func TestFlags_RoundTripEveryCombination(t *testing.T) {
	for v := uint32(0); v <= uint32(perms.Known()); v++ {
		f, ok := perms.FromGlib(v)
		require.True(t, ok)
		assert.Equal(t, v, perms.ToGlib(f))

		parsed, ok := perms.Parse(perms.String(f))
		require.True(t, ok, "parse %q", perms.String(f))
		assert.Equal(t, f, parsed)
	}
}

func TestFlags_Parse(t *testing.T) {
	f, ok := perms.Parse("read | exec")
	require.True(t, ok)
	assert.Equal(t, permRead|permExec, f)

	f, ok = perms.Parse("WRITE|0x10")
	require.True(t, ok)
	assert.Equal(t, permWrite|0x10, f)

	_, ok = perms.Parse("READ|BOGUS")
	assert.False(t, ok)
}

func TestFlagHelpers(t *testing.T) {
	f := Union(permRead, permExec)
	assert.True(t, Has(f, permRead))
	assert.False(t, Has(f, permRW))
	assert.Equal(t, permRead, Intersect(f, permRW))
	assert.Equal(t, permExec, Without(f, permRead))
	assert.True(t, Has(f, permNone))
}
