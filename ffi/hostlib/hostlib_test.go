package hostlib

import (
	"encoding/binary"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wippyai/pangobind/ffi"
	"github.com/wippyai/pangobind/resource"
)

func TestAllocator(t *testing.T) {
	mem := newSliceMemory(1, 4)
	a := newAllocator(mem, 0)

	assert.Equal(t, uint32(0), a.malloc(0))

	p1 := a.malloc(5)
	p2 := a.malloc(9)
	assert.Equal(t, uint32(heapBase), p1)
	assert.Equal(t, p1+8, p2)
	assert.Equal(t, 2, a.count())

	require.True(t, a.free(p1))
	assert.False(t, a.free(p1), "double free")
	assert.Equal(t, p1, a.malloc(8), "freed block reused")

	big := a.malloc(2 * pageSize)
	require.NotZero(t, big)
	assert.Equal(t, uint32(3*pageSize), mem.Size())

	assert.Zero(t, a.malloc(4*pageSize), "exceeds max pages")
}

func TestMemoryHelpers(t *testing.T) {
	l := New()
	s := ffi.CString(l, "héllo")
	require.False(t, s.IsNull())

	got, ok := l.ReadCString(s)
	require.True(t, ok)
	assert.Equal(t, "héllo", got)

	got, ok = ffi.TakeString(l, s)
	require.True(t, ok)
	assert.Equal(t, "héllo", got)
	assert.Zero(t, l.Allocated())

	_, ok = l.Read(ffi.Ptr(objectBase), 4)
	assert.False(t, ok, "object pointers are not readable")

	l.Free(s)
	require.Len(t, l.Violations(), 1)
	assert.Equal(t, ffi.SymFree, l.Violations()[0].Symbol)
}

func TestPointerMapping(t *testing.T) {
	for _, h := range []uint32{1, 2, 1000} {
		p := ptrOf(resource.Handle(h))
		back, ok := handleOf(p)
		require.True(t, ok)
		assert.Equal(t, resource.Handle(h), back)
	}
	_, ok := handleOf(ffi.Ptr(objectBase + 3))
	assert.False(t, ok)
	_, ok = handleOf(ffi.Ptr(64))
	assert.False(t, ok)
}

func TestCoverageEntryPoints(t *testing.T) {
	l := New()
	c := l.CoverageNew()
	require.False(t, c.IsNull())

	l.CoverageSet(c, 10, 3)
	l.CoverageSet(c, 2, 1)
	assert.Equal(t, int32(3), l.CoverageGet(c, 10))
	assert.Equal(t, int32(1), l.CoverageGet(c, 2))
	assert.Equal(t, int32(0), l.CoverageGet(c, 5000))

	cp := l.CoverageCopy(c)
	l.CoverageSet(cp, 2, 2)
	assert.Equal(t, int32(1), l.CoverageGet(c, 2), "copy is independent")

	l.CoverageMax(c, cp)
	assert.Equal(t, int32(2), l.CoverageGet(c, 2))

	l.CoverageUnref(cp)
	l.CoverageUnref(c)
	assert.Equal(t, 1, l.Finalized(c))
	assert.Zero(t, l.Live(TypeCoverage))
	assert.Empty(t, l.Violations())
}

func TestCoverageCriticals(t *testing.T) {
	l := New()
	c := l.CoverageNew()

	l.CoverageSet(c, -1, 1)
	l.CoverageSet(c, 0, 4)
	assert.Equal(t, int32(0), l.CoverageGet(c, -3))
	assert.Len(t, l.Violations(), 3)

	l.CoverageUnref(c)
	l.CoverageUnref(c)
	v := l.Violations()
	require.Len(t, v, 4)
	assert.Equal(t, ffi.SymCoverageUnref, v[3].Symbol)
	assert.Equal(t, "object already finalized", v[3].Detail)
	assert.Equal(t, 1, l.Finalized(c), "no double free")

	desc := l.FontDescriptionNew()
	assert.True(t, l.CoverageRef(desc).IsNull())
	assert.Len(t, l.Violations(), 5)
}

func TestCoverageBytes(t *testing.T) {
	levels := []byte{0, 1, 2, 3, 3, 2}
	data := encodeCoverage(levels)
	assert.Len(t, data, 10)

	back, ok := decodeCoverage(data)
	require.True(t, ok)
	assert.Equal(t, levels, back)

	_, ok = decodeCoverage(data[:9])
	assert.False(t, ok)
	bad := append([]byte(nil), data...)
	bad[0] ^= 0xff
	_, ok = decodeCoverage(bad)
	assert.False(t, ok)

	huge := encodeCoverage(nil)
	binary.BigEndian.PutUint32(huge[4:], maxCoverageIndices+1)
	_, ok = decodeCoverage(huge)
	assert.False(t, ok, "count past the Unicode range")

	empty, ok := decodeCoverage(encodeCoverage(nil))
	require.True(t, ok)
	assert.Empty(t, empty)
}

func TestCoverageSparse(t *testing.T) {
	l := New()
	c := l.CoverageNew()
	obj, ok := l.coverage(ffi.SymCoverageGet, c)
	require.True(t, ok)

	var before, after runtime.MemStats
	runtime.ReadMemStats(&before)
	l.CoverageSet(c, 1<<29, 2)
	l.CoverageSet(c, 1<<30, 0)
	runtime.ReadMemStats(&after)

	assert.Less(t, after.TotalAlloc-before.TotalAlloc, uint64(1<<20))
	assert.Len(t, obj.blocks, 1, "zero levels allocate nothing")
	assert.Equal(t, int64(1<<30+1), obj.n)
	assert.Equal(t, int32(2), l.CoverageGet(c, 1<<29))
	assert.Equal(t, int32(0), l.CoverageGet(c, 1<<29+1))

	cp := l.CoverageCopy(c)
	other := l.CoverageNew()
	l.CoverageSet(other, 1<<29, 3)
	l.CoverageSet(other, 7, 1)
	l.CoverageMax(cp, other)
	assert.Equal(t, int32(3), l.CoverageGet(cp, 1<<29))
	assert.Equal(t, int32(1), l.CoverageGet(cp, 7))
	assert.Equal(t, int32(2), l.CoverageGet(c, 1<<29), "copy is independent")

	for _, p := range []ffi.Ptr{c, cp, other} {
		l.CoverageUnref(p)
	}
	assert.Empty(t, l.Violations())
}

func TestCoverageToBytesAbsent(t *testing.T) {
	l := New()
	c := l.CoverageNew()
	out := l.malloc(8)
	require.False(t, out.IsNull())
	read := func() (uint32, uint32) {
		data, ok := l.Read(out, 8)
		require.True(t, ok)
		return binary.LittleEndian.Uint32(data), binary.LittleEndian.Uint32(data[4:])
	}

	l.CoverageSet(c, 1<<29, 1)
	l.CoverageToBytes(c, out, out+4)
	buf, n := read()
	assert.Zero(t, buf)
	assert.Zero(t, n)
	require.Len(t, l.Violations(), 1)
	assert.Equal(t, ffi.SymCoverageToBytes, l.Violations()[0].Symbol)

	small := l.CoverageNew()
	l.CoverageSet(small, 3, 2)
	l.FailNext(ffi.SymCoverageToBytes, 1)
	l.CoverageToBytes(small, out, out+4)
	buf, n = read()
	assert.Zero(t, buf)
	assert.Zero(t, n)
	require.Len(t, l.Violations(), 2)
	assert.Contains(t, l.Violations()[1].Detail, "allocate")

	l.CoverageToBytes(small, out, out+4)
	buf, n = read()
	assert.NotZero(t, buf)
	assert.Equal(t, uint32(9), n)
	data, ok := l.Read(ffi.Ptr(buf), n)
	require.True(t, ok)
	levels, ok := decodeCoverage(data)
	require.True(t, ok)
	assert.Equal(t, []byte{0, 0, 0, 2}, levels)

	l.Free(ffi.Ptr(buf))
	l.Free(out)
	l.CoverageUnref(c)
	l.CoverageUnref(small)
	assert.Zero(t, l.Allocated())
}

func TestObjectRefRejectsNonObjects(t *testing.T) {
	l := New()
	c := l.CoverageNew()

	assert.True(t, l.ObjectRef(c).IsNull())
	assert.True(t, l.ObjectRef(0).IsNull())
	l.ObjectUnref(c)

	assert.Len(t, l.Violations(), 3)
	n, ok := l.RefCount(c)
	require.True(t, ok)
	assert.Equal(t, int32(1), n)
}

func TestFontMapOwnership(t *testing.T) {
	l := New()
	m := l.FontMapGetDefault()
	require.False(t, m.IsNull())
	assert.Equal(t, m, l.FontMapGetDefault(), "default map is a singleton")
	assert.Equal(t, 4, l.Live(TypeFontFamily))
	assert.Equal(t, 11, l.Live(TypeFontFace))

	require.NoError(t, l.Close())
	assert.Empty(t, l.Violations())
}

func TestFontFamilyEntryPoints(t *testing.T) {
	l := New()
	m := l.FontMapGetDefault()
	base := l.Allocated()
	assert.Equal(t, 15, base, "one name per family and face")

	out := l.malloc(8)
	l.FontMapListFamilies(m, out, out+4)
	arr, _ := ffi.ReadPtr(l, out)
	n, _ := ffi.ReadInt32(l, out+4)
	require.Equal(t, int32(4), n)

	fams, ok := ffi.ReadPtrArray(l, arr, n)
	require.True(t, ok)
	l.Free(arr)

	name, ok := ffi.GoString(l, l.FontFamilyGetName(fams[2]))
	require.True(t, ok)
	assert.Equal(t, "Monospace", name)
	assert.True(t, l.FontFamilyIsMonospace(fams[2]))
	assert.False(t, l.FontFamilyIsMonospace(fams[0]))

	l.FontFamilyListFaces(fams[3], out, out+4)
	arr, _ = ffi.ReadPtr(l, out)
	n, _ = ffi.ReadInt32(l, out+4)
	require.Equal(t, int32(1), n)
	faces, _ := ffi.ReadPtrArray(l, arr, n)
	l.Free(arr)

	l.FontFaceListSizes(faces[0], out, out+4)
	arr, _ = ffi.ReadPtr(l, out)
	n, _ = ffi.ReadInt32(l, out+4)
	sizes, _ := ffi.ReadInt32Array(l, arr, n)
	l.Free(arr)
	assert.Equal(t, []int32{8 * 1024, 10 * 1024, 12 * 1024}, sizes)

	l.Free(out)
	assert.Equal(t, base, l.Allocated())
	assert.Empty(t, l.Violations())
}

func TestFontDescriptionFormat(t *testing.T) {
	tests := []struct {
		in   string
		want string
		mask uint32
	}{
		{"Sans Bold Italic 12", "Sans Bold Italic 12", maskParsed | maskFamily | maskSize},
		{"Serif 10.5", "Serif 10.5", maskParsed | maskFamily | maskSize},
		{"DejaVu Sans Mono", "DejaVu Sans Mono", maskParsed | maskFamily},
		{"Monospace Small-Caps Condensed", "Monospace Small-Caps Condensed", maskParsed | maskFamily},
		{"", "Normal", maskParsed},
		{"Normal", "Normal", maskParsed},
		{"Bold 8", "Bold 8", maskParsed | maskSize},
		{"Sans weight=450", "Sans weight=450", maskParsed | maskFamily},
		{"Foo Bold, Bold", "Foo Bold, Bold", maskParsed | maskFamily},
	}
	for _, tt := range tests {
		d := parseDesc(tt.in)
		assert.Equal(t, tt.want, d.String(), "format of %q", tt.in)
		assert.Equal(t, tt.mask, d.mask, "mask of %q", tt.in)
		assert.True(t, parseDesc(d.String()).equal(d), "reparse of %q", tt.in)
	}
}

func TestFontDescriptionEqualHash(t *testing.T) {
	a := parseDesc("sans bold 12")
	b := parseDesc("Sans Bold 12")
	assert.True(t, a.equal(b))
	assert.Equal(t, a.hash(), b.hash())

	c := parseDesc("Sans 12")
	assert.False(t, a.equal(c))
}

func TestFontDescriptionEntryPoints(t *testing.T) {
	l := New()
	d := l.FontDescriptionNew()
	assert.Equal(t, int32(400), l.FontDescriptionGetWeight(d))
	assert.Zero(t, l.FontDescriptionGetSetFields(d))
	assert.True(t, l.FontDescriptionGetFamily(d).IsNull())

	fam := ffi.CString(l, "Serif")
	l.FontDescriptionSetFamily(d, fam)
	l.Free(fam)
	l.FontDescriptionSetSize(d, 9*1024)

	s, ok := ffi.TakeString(l, l.FontDescriptionToString(d))
	require.True(t, ok)
	assert.Equal(t, "Serif 9", s)

	cp := l.FontDescriptionCopy(d)
	assert.True(t, l.FontDescriptionEqual(d, cp))
	l.FontDescriptionSetStyle(cp, 2)
	assert.False(t, l.FontDescriptionEqual(d, cp))

	assert.True(t, l.FontDescriptionCopy(0).IsNull())
	l.FontDescriptionFree(0)
	assert.Empty(t, l.Violations())

	l.FontDescriptionFree(cp)
	l.FontDescriptionFree(cp)
	assert.Len(t, l.Violations(), 1)
	assert.Equal(t, 1, l.Finalized(cp))

	l.FontDescriptionSetSize(d, -1)
	assert.Len(t, l.Violations(), 2)
	l.FontDescriptionFree(d)
	assert.Zero(t, l.Allocated())
}

func TestFailNext(t *testing.T) {
	l := New()
	l.FailNext(ffi.SymCoverageNew, 1)
	assert.True(t, l.CoverageNew().IsNull())
	assert.False(t, l.CoverageNew().IsNull())
	assert.Equal(t, 2, l.Calls(ffi.SymCoverageNew))

	m := l.FontMapGetDefault()
	l.FailAfter(ffi.SymObjectRef, 1)
	assert.False(t, l.ObjectRef(m).IsNull())
	assert.True(t, l.ObjectRef(m).IsNull())
	assert.False(t, l.ObjectRef(m).IsNull(), "fails once")
	l.ObjectUnref(m)
	l.ObjectUnref(m)
	assert.Empty(t, l.Violations())
	require.NoError(t, l.Close())
}
