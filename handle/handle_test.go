package handle

import (
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wippyai/pangobind/errors"
)

// requirePanicKind runs fn and checks that it panics with an *errors.Error
// of the given kind.
func requirePanicKind(t *testing.T, kind errors.Kind, fn func()) {
	t.Helper()
	defer func() {
		r := recover()
		require.NotNil(t, r, "expected panic with %s", kind)
		err, ok := r.(*errors.Error)
		require.True(t, ok, "panic value %T is not *errors.Error", r)
		assert.Equal(t, kind, err.Kind)
		assert.True(t, err.Precondition())
	}()
	fn()
}

func TestShared_TakeAndRelease(t *testing.T) {
	lib := newFakeLib()
	c := lib.sharedClass()
	base := CurrentStats()

	p := lib.alloc()
	s := TakeShared(c, p)
	assert.Equal(t, p, s.Raw())
	assert.Equal(t, 0, lib.refs, "take must not ref")
	assert.Equal(t, int64(1), CurrentStats().Sub(base).LiveShared)

	s.Release()
	assert.Equal(t, 1, lib.unrefs)
	assert.Equal(t, 1, lib.freed[p])
	assert.True(t, s.Released())
	assert.Equal(t, int64(0), CurrentStats().Sub(base).LiveShared)
}

func TestShared_NullPanics(t *testing.T) {
	lib := newFakeLib()
	c := lib.sharedClass()

	requirePanicKind(t, errors.KindNullHandle, func() { TakeShared(c, 0) })
	requirePanicKind(t, errors.KindNullHandle, func() { RefShared(c, 0) })
	assert.Equal(t, 0, lib.refs)
	assert.Equal(t, 0, lib.unrefs)
}

func TestShared_TryVariants(t *testing.T) {
	lib := newFakeLib()
	c := lib.sharedClass()

	s, ok := TryTakeShared(c, 0)
	assert.False(t, ok)
	assert.Nil(t, s)

	s, ok = TryRefShared(c, 0)
	assert.False(t, ok)
	assert.Nil(t, s)

	p := lib.alloc()
	s, ok = TryRefShared(c, p)
	require.True(t, ok)
	assert.Equal(t, 2, lib.counts[p])
	s.Release()
	assert.Equal(t, 1, lib.counts[p])
}

func TestShared_CloneBalance(t *testing.T) {
	lib := newFakeLib()
	c := lib.sharedClass()
	p := lib.alloc()

	a := TakeShared(c, p)
	b := a.Clone()
	d := b.Clone()
	assert.Equal(t, 3, lib.counts[p])
	assert.True(t, a.Equal(b))
	assert.True(t, a.Equal(d))

	a.Release()
	assert.Equal(t, 0, lib.freed[p])
	assert.Equal(t, p, b.Raw(), "clone stays valid after original released")
	b.Release()
	d.Release()

	assert.Equal(t, lib.refs+1, lib.unrefs, "one unref per ref plus the adopted count")
	assert.Equal(t, 1, lib.freed[p])
}

func TestShared_ReleaseIdempotent(t *testing.T) {
	lib := newFakeLib()
	c := lib.sharedClass()
	p := lib.alloc()

	s := RefShared(c, p)
	s.Release()
	s.Release()
	s.Release()
	assert.Equal(t, 1, lib.unrefs)
	assert.Equal(t, 1, lib.counts[p])
}

func TestShared_UseAfterRelease(t *testing.T) {
	lib := newFakeLib()
	c := lib.sharedClass()
	s := TakeShared(c, lib.alloc())
	s.Release()

	requirePanicKind(t, errors.KindReleased, func() { s.Raw() })
	requirePanicKind(t, errors.KindReleased, func() { s.Clone() })
	requirePanicKind(t, errors.KindReleased, func() { s.Borrow() })
	assert.Equal(t, "FakeShared(released)", s.String())
}

func TestShared_DeepCopy(t *testing.T) {
	lib := newFakeLib()
	c := lib.sharedClass()
	p := lib.alloc()
	s := TakeShared(c, p)
	defer s.Release()

	cp, ok := s.DeepCopy()
	require.True(t, ok)
	assert.False(t, cp.Equal(s))
	q := cp.Raw()
	cp.Release()
	assert.Equal(t, 1, lib.freed[q])
	assert.Equal(t, 1, lib.counts[p])

	lib.nullCopy = true
	cp, ok = s.DeepCopy()
	assert.False(t, ok)
	assert.Nil(t, cp)
}

func TestShared_DeepCopyUnsupported(t *testing.T) {
	lib := newFakeLib()
	c := NewSharedClass("NoCopy", lib.ref, lib.unref, nil)
	s := TakeShared(c, lib.alloc())
	defer s.Release()

	requirePanicKind(t, errors.KindUnsupported, func() { s.DeepCopy() })
}

func TestShared_Steal(t *testing.T) {
	lib := newFakeLib()
	c := lib.sharedClass()
	p := lib.alloc()
	s := TakeShared(c, p)

	assert.Equal(t, p, s.Steal())
	assert.True(t, s.Released())
	s.Release()
	assert.Equal(t, 0, lib.unrefs)
	assert.Equal(t, 1, lib.counts[p])
}

func TestShared_BorrowBoundToOwner(t *testing.T) {
	lib := newFakeLib()
	c := lib.sharedClass()
	p := lib.alloc()
	s := TakeShared(c, p)

	b := s.Borrow()
	assert.Equal(t, p, b.Raw())
	assert.Equal(t, ModeShared, b.Origin())
	assert.Equal(t, 0, lib.refs, "borrow must not ref")

	s.Release()
	assert.False(t, b.Valid())
	requirePanicKind(t, errors.KindExpired, func() { b.Raw() })
}

func TestOwn(t *testing.T) {
	lib := newFakeLib()
	c := lib.sharedClass()
	p := lib.alloc()

	b := Borrow("FakeShared", p, nil)
	s := Own(b, c)
	assert.Equal(t, 2, lib.counts[p])
	s.Release()
	assert.Equal(t, 1, lib.counts[p])

	f := TakeFull(lib.fullClass(), lib.alloc())
	defer f.Release()
	requirePanicKind(t, errors.KindWrongMode, func() { Own(f.Borrow(), c) })
}

func TestOwn_WrongType(t *testing.T) {
	lib := newFakeLib()
	c := lib.sharedClass()
	p := lib.alloc()

	requirePanicKind(t, errors.KindWrongType, func() { Own(Borrow("OtherShared", p, nil), c) })
	requirePanicKind(t, errors.KindWrongType, func() { CopyBorrowed(Borrow("OtherBoxed", p, nil), lib.fullClass()) })
	assert.Zero(t, lib.refs, "no ref on a mismatched view")
	assert.Zero(t, lib.copies, "no copy of a mismatched view")
	assert.Equal(t, 1, lib.counts[p])

	f, ok := CopyBorrowed(Borrow("FakeBoxed", p, nil), lib.fullClass())
	require.True(t, ok)
	assert.Equal(t, 1, lib.copies)
	f.Release()
}

func TestFull_TakeAndRelease(t *testing.T) {
	lib := newFakeLib()
	c := lib.fullClass()
	base := CurrentStats()

	p := lib.alloc()
	f := TakeFull(c, p)
	assert.Equal(t, p, f.Raw())
	assert.Equal(t, int64(1), CurrentStats().Sub(base).LiveFull)

	f.Release()
	f.Release()
	assert.Equal(t, 1, lib.freed[p])
	d := CurrentStats().Sub(base)
	assert.Equal(t, int64(0), d.LiveFull)
	assert.Equal(t, int64(1), d.Frees)

	requirePanicKind(t, errors.KindReleased, func() { f.Raw() })
	requirePanicKind(t, errors.KindNullHandle, func() { TakeFull(c, 0) })
}

func TestFull_CopyFull(t *testing.T) {
	lib := newFakeLib()
	c := lib.fullClass()
	src := lib.alloc()

	f, ok := CopyFull(c, src)
	require.True(t, ok)
	assert.NotEqual(t, src, f.Raw())
	assert.Equal(t, 1, lib.copies)

	g, ok := f.DeepCopy()
	require.True(t, ok)
	assert.False(t, g.Same(f))

	f.Release()
	g.Release()
	assert.Equal(t, 0, lib.freed[src], "copying must not free the source")

	lib.nullCopy = true
	f, ok = CopyFull(c, src)
	assert.False(t, ok)
	assert.Nil(t, f)

	noCopy := NewFullClass("NoCopy", lib.free, nil)
	requirePanicKind(t, errors.KindUnsupported, func() { CopyFull(noCopy, src) })
}

func TestFull_BorrowOutlivesOwner(t *testing.T) {
	lib := newFakeLib()
	f := TakeFull(lib.fullClass(), lib.alloc())
	b := f.Borrow()
	assert.Equal(t, ModeFull, b.Origin())

	f.Release()
	requirePanicKind(t, errors.KindExpired, func() { b.Raw() })
}

func TestBorrow_NoOwnershipEffect(t *testing.T) {
	lib := newFakeLib()
	p := lib.alloc()

	for i := 0; i < 10; i++ {
		b := Borrow("FakeShared", p, nil)
		assert.Equal(t, p, b.Raw())
	}
	assert.Equal(t, 0, lib.refs)
	assert.Equal(t, 0, lib.unrefs)
	assert.Equal(t, 1, lib.counts[p])

	requirePanicKind(t, errors.KindNullHandle, func() { Borrow("FakeShared", 0, nil) })
}

func TestScope(t *testing.T) {
	lib := newFakeLib()
	p := lib.alloc()
	outer := NewLifetime(nil)

	var escaped Borrowed
	Scope(outer, func(lt *Lifetime) {
		escaped = Borrow("FakeShared", p, lt)
		assert.True(t, escaped.Valid())
	})
	assert.False(t, escaped.Valid())
	assert.False(t, outer.Ended())

	inner := NewLifetime(outer)
	b := Borrow("FakeShared", p, inner)
	outer.End()
	assert.True(t, inner.Ended())
	requirePanicKind(t, errors.KindExpired, func() { b.Raw() })
}

func TestPanicValueIsError(t *testing.T) {
	lib := newFakeLib()
	c := lib.sharedClass()

	var err error
	func() {
		defer func() { err, _ = recover().(error) }()
		TakeShared(c, 0)
	}()
	require.Error(t, err)
	assert.True(t, stderrors.Is(err, errors.NullHandle(errors.PhaseAcquire, "")))
	assert.Contains(t, err.Error(), "FakeShared")
}

func TestClassValidation(t *testing.T) {
	lib := newFakeLib()
	requirePanicKind(t, errors.KindUnsupported, func() { NewSharedClass("X", nil, lib.unref, nil) })
	requirePanicKind(t, errors.KindUnsupported, func() { NewFullClass("X", nil, nil) })
}

func TestModeString(t *testing.T) {
	assert.Equal(t, "full", ModeFull.String())
	assert.Equal(t, "shared", ModeShared.String())
	assert.Equal(t, "borrowed", ModeBorrowed.String())
	assert.Equal(t, "unknown", Mode(9).String())
}
