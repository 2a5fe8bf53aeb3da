package handle

import "github.com/wippyai/pangobind/ffi"

// fakeLib counts ownership calls per pointer the way an instrumented
// foreign library would.
type fakeLib struct {
	counts   map[ffi.Ptr]int
	freed    map[ffi.Ptr]int
	next     ffi.Ptr
	refs     int
	unrefs   int
	copies   int
	nullCopy bool
}

func newFakeLib() *fakeLib {
	return &fakeLib{counts: map[ffi.Ptr]int{}, freed: map[ffi.Ptr]int{}, next: 0x1000}
}

func (f *fakeLib) alloc() ffi.Ptr {
	f.next += 0x10
	f.counts[f.next] = 1
	return f.next
}

func (f *fakeLib) ref(p ffi.Ptr) ffi.Ptr {
	f.refs++
	f.counts[p]++
	return p
}

func (f *fakeLib) unref(p ffi.Ptr) {
	f.unrefs++
	f.counts[p]--
	if f.counts[p] == 0 {
		f.freed[p]++
	}
}

func (f *fakeLib) free(p ffi.Ptr) {
	f.counts[p] = 0
	f.freed[p]++
}

func (f *fakeLib) copy(p ffi.Ptr) ffi.Ptr {
	f.copies++
	if f.nullCopy {
		return 0
	}
	return f.alloc()
}

func (f *fakeLib) sharedClass() *SharedClass {
	return NewSharedClass("FakeShared", f.ref, f.unref, f.copy)
}

func (f *fakeLib) fullClass() *FullClass {
	return NewFullClass("FakeBoxed", f.free, f.copy)
}
