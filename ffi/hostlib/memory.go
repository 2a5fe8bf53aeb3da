package hostlib

import (
	"bytes"
	"encoding/binary"

	"github.com/wippyai/pangobind/ffi"
)

const (
	pageSize   = 65536
	heapBase   = 16 // addresses below are never handed out
	allocAlign = 8
)

// LinearMemory is the byte store backing strings and arrays. It is the
// subset of wazero's api.Memory the library needs.
type LinearMemory interface {
	Size() uint32
	Grow(deltaPages uint32) (previousPages uint32, ok bool)
	Read(offset, byteCount uint32) ([]byte, bool)
	Write(offset uint32, v []byte) bool
}

// sliceMemory is a LinearMemory on a Go slice.
type sliceMemory struct {
	buf      []byte
	maxPages uint32
}

func newSliceMemory(pages, maxPages uint32) *sliceMemory {
	return &sliceMemory{buf: make([]byte, pages*pageSize), maxPages: maxPages}
}

func (m *sliceMemory) Size() uint32 { return uint32(len(m.buf)) }

func (m *sliceMemory) Grow(delta uint32) (uint32, bool) {
	prev := uint32(len(m.buf) / pageSize)
	if prev+delta > m.maxPages {
		return prev, false
	}
	m.buf = append(m.buf, make([]byte, delta*pageSize)...)
	return prev, true
}

func (m *sliceMemory) Read(offset, n uint32) ([]byte, bool) {
	end := uint64(offset) + uint64(n)
	if end > uint64(len(m.buf)) {
		return nil, false
	}
	return m.buf[offset:end:end], true
}

func (m *sliceMemory) Write(offset uint32, v []byte) bool {
	end := uint64(offset) + uint64(len(v))
	if end > uint64(len(m.buf)) {
		return false
	}
	copy(m.buf[offset:], v)
	return true
}

// allocator hands out blocks of linear memory. Freed blocks are kept on a
// free list per rounded size and reused.
type allocator struct {
	mem   LinearMemory
	next  uint32
	live  map[uint32]uint32 // address -> rounded size
	freed map[uint32][]uint32
}

func newAllocator(mem LinearMemory, base uint32) *allocator {
	if base < heapBase {
		base = heapBase
	}
	return &allocator{
		mem:   mem,
		next:  (base + allocAlign - 1) &^ (allocAlign - 1),
		live:  make(map[uint32]uint32),
		freed: make(map[uint32][]uint32),
	}
}

func (a *allocator) malloc(size uint32) uint32 {
	if size == 0 {
		return 0
	}
	rounded := (size + allocAlign - 1) &^ (allocAlign - 1)
	if list := a.freed[rounded]; len(list) > 0 {
		addr := list[len(list)-1]
		a.freed[rounded] = list[:len(list)-1]
		a.live[addr] = rounded
		return addr
	}
	end := uint64(a.next) + uint64(rounded)
	if end >= objectBase {
		return 0
	}
	if have := uint64(a.mem.Size()); end > have {
		pages := uint32((end - have + pageSize - 1) / pageSize)
		if _, ok := a.mem.Grow(pages); !ok {
			return 0
		}
	}
	addr := a.next
	a.next = uint32(end)
	a.live[addr] = rounded
	return addr
}

// free returns false when addr is not a live block.
func (a *allocator) free(addr uint32) bool {
	size, ok := a.live[addr]
	if !ok {
		return false
	}
	delete(a.live, addr)
	a.freed[size] = append(a.freed[size], addr)
	return true
}

func (a *allocator) count() int { return len(a.live) }

// Malloc implements g_malloc. It returns NULL for zero bytes and when
// memory cannot grow.
func (l *Library) Malloc(size uint32) ffi.Ptr {
	if l.enter(ffi.SymMalloc) {
		return 0
	}
	return l.malloc(size)
}

func (l *Library) malloc(size uint32) ffi.Ptr {
	l.mu.Lock()
	defer l.mu.Unlock()
	return ffi.Ptr(l.alloc.malloc(size))
}

// Free implements g_free.
func (l *Library) Free(p ffi.Ptr) {
	l.enter(ffi.SymFree)
	l.free(ffi.SymFree, p)
}

func (l *Library) free(sym string, p ffi.Ptr) {
	if p.IsNull() {
		return
	}
	l.mu.Lock()
	ok := uint64(p) < objectBase && l.alloc.free(uint32(p))
	l.mu.Unlock()
	if !ok {
		l.critical(sym, p, "free of pointer not allocated by g_malloc")
	}
}

// Read copies n bytes from linear memory.
func (l *Library) Read(p ffi.Ptr, n uint32) ([]byte, bool) {
	if uint64(p) >= objectBase {
		return nil, false
	}
	b, ok := l.mem.Read(uint32(p), n)
	if !ok {
		return nil, false
	}
	return bytes.Clone(b), true
}

// Write copies data into linear memory.
func (l *Library) Write(p ffi.Ptr, data []byte) bool {
	if uint64(p) >= objectBase {
		return false
	}
	return l.mem.Write(uint32(p), data)
}

// ReadCString reads a NUL-terminated string.
func (l *Library) ReadCString(p ffi.Ptr) (string, bool) {
	if p.IsNull() || uint64(p) >= objectBase {
		return "", false
	}
	var out []byte
	for addr := uint32(p); ; addr += 64 {
		n := uint32(64)
		if size := l.mem.Size(); addr >= size {
			return "", false
		} else if size-addr < n {
			n = size - addr
		}
		chunk, ok := l.mem.Read(addr, n)
		if !ok {
			return "", false
		}
		if i := bytes.IndexByte(chunk, 0); i >= 0 {
			return string(append(out, chunk[:i]...)), true
		}
		out = append(out, chunk...)
	}
}

// PointerSize is 4: the library speaks the wasm32 ABI.
func (l *Library) PointerSize() uint32 { return 4 }

// newString allocates a copy of s.
func (l *Library) newString(s string) ffi.Ptr {
	p := l.malloc(uint32(len(s) + 1))
	if p.IsNull() {
		return 0
	}
	buf := make([]byte, len(s)+1)
	copy(buf, s)
	l.mem.Write(uint32(p), buf)
	return p
}

func (l *Library) writeU32(p ffi.Ptr, v uint32) bool {
	if p.IsNull() {
		return false
	}
	var b [4]byte
	binary.LittleEndian.PutUint32(b[:], v)
	return l.Write(p, b[:])
}

// newArray allocates an array of 32-bit little-endian values. An empty
// array is NULL.
func (l *Library) newArray(vals []uint32) ffi.Ptr {
	if len(vals) == 0 {
		return 0
	}
	buf := make([]byte, 4*len(vals))
	for i, v := range vals {
		binary.LittleEndian.PutUint32(buf[4*i:], v)
	}
	p := l.malloc(uint32(len(buf)))
	if p.IsNull() {
		return 0
	}
	l.mem.Write(uint32(p), buf)
	return p
}

// writeOut stores an array and its length through a (T **out, int *n)
// parameter pair. Either pointer may be NULL.
func (l *Library) writeOut(out, nOut ffi.Ptr, vals []uint32) {
	arr := l.newArray(vals)
	if !out.IsNull() {
		l.writeU32(out, uint32(arr))
	} else if !arr.IsNull() {
		l.free(ffi.SymFree, arr)
	}
	if !nOut.IsNull() {
		l.writeU32(nOut, uint32(len(vals)))
	}
}
