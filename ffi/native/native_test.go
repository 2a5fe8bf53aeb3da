//go:build cgo && pango

package native

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wippyai/pangobind/ffi"
)

func cstring(t *testing.T, l Library, s string) ffi.Ptr {
	t.Helper()
	p := l.Malloc(uint32(len(s) + 1))
	require.False(t, p.IsNull())
	require.True(t, l.Write(p, append([]byte(s), 0)))
	return p
}

func TestMemory(t *testing.T) {
	l := New()
	p := l.Malloc(8)
	require.False(t, p.IsNull())
	defer l.Free(p)

	require.True(t, l.Write(p, []byte("abc\x00wxy")))
	data, ok := l.Read(p, 8)
	require.True(t, ok)
	assert.Equal(t, []byte("abc\x00wxy"), data)

	s, ok := l.ReadCString(p)
	require.True(t, ok)
	assert.Equal(t, "abc", s)
}

func TestCoverage(t *testing.T) {
	l := New()
	c := l.CoverageNew()
	require.False(t, c.IsNull())

	l.CoverageSet(c, 65, 3)
	assert.Equal(t, int32(3), l.CoverageGet(c, 65))
	assert.Equal(t, int32(0), l.CoverageGet(c, 66))

	cp := l.CoverageCopy(c)
	require.False(t, cp.IsNull())
	l.CoverageSet(cp, 65, 1)
	assert.Equal(t, int32(3), l.CoverageGet(c, 65), "copy is independent")

	assert.Equal(t, c, l.CoverageRef(c))
	l.CoverageUnref(c)
	l.CoverageUnref(cp)
	l.CoverageUnref(c)
}

func TestFontDescription(t *testing.T) {
	l := New()
	s := cstring(t, l, "Serif Bold Italic 12")
	defer l.Free(s)

	d := l.FontDescriptionFromString(s)
	require.False(t, d.IsNull())
	defer l.FontDescriptionFree(d)

	assert.Equal(t, int32(700), l.FontDescriptionGetWeight(d))
	assert.Equal(t, int32(2), l.FontDescriptionGetStyle(d))
	assert.Equal(t, int32(12*1024), l.FontDescriptionGetSize(d))

	str := l.FontDescriptionToString(d)
	require.False(t, str.IsNull())
	defer l.Free(str)
	got, ok := l.ReadCString(str)
	require.True(t, ok)
	assert.Equal(t, "Serif Bold Italic 12", got)

	cp := l.FontDescriptionCopy(d)
	require.False(t, cp.IsNull())
	assert.True(t, l.FontDescriptionEqual(d, cp))
	assert.Equal(t, l.FontDescriptionHash(d), l.FontDescriptionHash(cp))
	l.FontDescriptionFree(cp)
}

func TestFontMapDefault(t *testing.T) {
	l := New()
	m := l.FontMapGetDefault()
	require.False(t, m.IsNull())
	assert.Equal(t, m, l.FontMapGetDefault(), "default map is a singleton")
}
