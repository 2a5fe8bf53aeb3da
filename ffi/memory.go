package ffi

import "encoding/binary"

// Helpers over Memory. Foreign integers and pointers are little-endian.

// CString copies s into foreign memory as a NUL-terminated string.
// The caller frees the result with m.Free. Returns NULL on allocation failure.
func CString(m Memory, s string) Ptr {
	p := m.Malloc(uint32(len(s) + 1))
	if p.IsNull() {
		return 0
	}
	buf := make([]byte, len(s)+1)
	copy(buf, s)
	if !m.Write(p, buf) {
		m.Free(p)
		return 0
	}
	return p
}

// GoString copies the NUL-terminated string at p. A NULL p yields ("", false).
func GoString(m Memory, p Ptr) (string, bool) {
	if p.IsNull() {
		return "", false
	}
	return m.ReadCString(p)
}

// TakeString copies the string at p and frees it, for full-transfer strings.
func TakeString(m Memory, p Ptr) (string, bool) {
	if p.IsNull() {
		return "", false
	}
	s, ok := m.ReadCString(p)
	m.Free(p)
	return s, ok
}

// ReadPtr reads one foreign pointer at p.
func ReadPtr(m Memory, p Ptr) (Ptr, bool) {
	n := m.PointerSize()
	b, ok := m.Read(p, n)
	if !ok {
		return 0, false
	}
	if n == 8 {
		return Ptr(binary.LittleEndian.Uint64(b)), true
	}
	return Ptr(binary.LittleEndian.Uint32(b)), true
}

// ReadInt32 reads one C int at p.
func ReadInt32(m Memory, p Ptr) (int32, bool) {
	b, ok := m.Read(p, 4)
	if !ok {
		return 0, false
	}
	return int32(binary.LittleEndian.Uint32(b)), true
}

// ReadPtrArray reads n consecutive foreign pointers starting at p.
func ReadPtrArray(m Memory, p Ptr, n int32) ([]Ptr, bool) {
	if n <= 0 {
		return nil, true
	}
	size := m.PointerSize()
	out := make([]Ptr, n)
	for i := range out {
		v, ok := ReadPtr(m, p+Ptr(uint32(i)*size))
		if !ok {
			return nil, false
		}
		out[i] = v
	}
	return out, true
}

// ReadInt32Array reads n consecutive C ints starting at p.
func ReadInt32Array(m Memory, p Ptr, n int32) ([]int32, bool) {
	if n <= 0 {
		return nil, true
	}
	b, ok := m.Read(p, uint32(n)*4)
	if !ok {
		return nil, false
	}
	out := make([]int32, n)
	for i := range out {
		out[i] = int32(binary.LittleEndian.Uint32(b[i*4:]))
	}
	return out, true
}

// OutParams is a block of foreign memory holding a pointer slot followed by
// an int slot, the shape of (T **out, int *n_out) parameter pairs.
type OutParams struct {
	m    Memory
	base Ptr
}

// NewOutParams allocates and zeroes an out-parameter block.
func NewOutParams(m Memory) (*OutParams, bool) {
	size := m.PointerSize() + 4
	p := m.Malloc(size)
	if p.IsNull() {
		return nil, false
	}
	if !m.Write(p, make([]byte, size)) {
		m.Free(p)
		return nil, false
	}
	return &OutParams{m: m, base: p}, true
}

// PtrSlot is the address to pass for the T** parameter.
func (o *OutParams) PtrSlot() Ptr { return o.base }

// LenSlot is the address to pass for the int* parameter.
func (o *OutParams) LenSlot() Ptr { return o.base + Ptr(o.m.PointerSize()) }

// Result reads back the pointer and length written by the callee.
func (o *OutParams) Result() (Ptr, int32, bool) {
	p, ok := ReadPtr(o.m, o.PtrSlot())
	if !ok {
		return 0, 0, false
	}
	n, ok := ReadInt32(o.m, o.LenSlot())
	if !ok {
		return 0, 0, false
	}
	return p, n, true
}

// Free releases the block.
func (o *OutParams) Free() {
	o.m.Free(o.base)
}
