package hostlib

import (
	"encoding/binary"
	"fmt"

	"github.com/wippyai/pangobind/ffi"
)

// coverageMagic starts a serialized coverage.
const coverageMagic = 0xc89dbd5e

const maxCoverageLevel = 3

// maxCoverageIndices bounds the serialized form to the Unicode range.
const maxCoverageIndices = 0x110000

// coverageBlock is the number of indices stored per block.
const coverageBlock = 256

// coverageObj stores levels in fixed-size blocks keyed by index/coverageBlock.
// Blocks holding only zero levels are never allocated. n is one past the
// highest index ever set.
type coverageObj struct {
	blocks map[int32]*[coverageBlock]byte
	n      int64
}

func newCoverageObj() *coverageObj {
	return &coverageObj{blocks: map[int32]*[coverageBlock]byte{}}
}

func (c *coverageObj) get(i int32) int32 {
	blk := c.blocks[i/coverageBlock]
	if blk == nil {
		return 0
	}
	return int32(blk[i%coverageBlock])
}

func (c *coverageObj) set(i int32, level int32) {
	if int64(i) >= c.n {
		c.n = int64(i) + 1
	}
	blk := c.blocks[i/coverageBlock]
	if blk == nil {
		if level == 0 {
			return
		}
		blk = new([coverageBlock]byte)
		c.blocks[i/coverageBlock] = blk
	}
	blk[i%coverageBlock] = byte(level)
}

func (c *coverageObj) copy() *coverageObj {
	out := &coverageObj{blocks: make(map[int32]*[coverageBlock]byte, len(c.blocks)), n: c.n}
	for k, blk := range c.blocks {
		cp := *blk
		out.blocks[k] = &cp
	}
	return out
}

// maxWith raises every level to at least the level in o.
func (c *coverageObj) maxWith(o *coverageObj) {
	if o.n > c.n {
		c.n = o.n
	}
	for k, ob := range o.blocks {
		blk := c.blocks[k]
		if blk == nil {
			cp := *ob
			c.blocks[k] = &cp
			continue
		}
		for i, lv := range ob {
			if lv > blk[i] {
				blk[i] = lv
			}
		}
	}
}

// levels returns the dense levels. Callers bound n first.
func (c *coverageObj) levels() []byte {
	out := make([]byte, c.n)
	for k, blk := range c.blocks {
		copy(out[int64(k)*coverageBlock:], blk[:])
	}
	return out
}

func coverageFromLevels(levels []byte) *coverageObj {
	c := newCoverageObj()
	for i, lv := range levels {
		if lv != 0 {
			c.set(int32(i), int32(lv))
		}
	}
	c.n = int64(len(levels))
	return c
}

func (l *Library) coverage(sym string, p ffi.Ptr) (*coverageObj, bool) {
	v, ok := l.object(sym, p, TypeCoverage)
	if !ok {
		return nil, false
	}
	return v.(*coverageObj), true
}

// CoverageNew implements pango_coverage_new.
func (l *Library) CoverageNew() ffi.Ptr {
	if l.enter(ffi.SymCoverageNew) {
		return 0
	}
	return l.insert(TypeCoverage, newCoverageObj())
}

// CoverageRef implements pango_coverage_ref.
func (l *Library) CoverageRef(p ffi.Ptr) ffi.Ptr {
	l.enter(ffi.SymCoverageRef)
	if _, ok := l.coverage(ffi.SymCoverageRef, p); !ok {
		return 0
	}
	return l.ref(p)
}

// CoverageUnref implements pango_coverage_unref.
func (l *Library) CoverageUnref(p ffi.Ptr) {
	l.enter(ffi.SymCoverageUnref)
	if _, ok := l.coverage(ffi.SymCoverageUnref, p); !ok {
		return
	}
	l.unref(p)
}

// CoverageCopy implements pango_coverage_copy.
func (l *Library) CoverageCopy(p ffi.Ptr) ffi.Ptr {
	if l.enter(ffi.SymCoverageCopy) {
		return 0
	}
	c, ok := l.coverage(ffi.SymCoverageCopy, p)
	if !ok {
		return 0
	}
	return l.insert(TypeCoverage, c.copy())
}

// CoverageGet implements pango_coverage_get.
func (l *Library) CoverageGet(p ffi.Ptr, index int32) int32 {
	l.enter(ffi.SymCoverageGet)
	c, ok := l.coverage(ffi.SymCoverageGet, p)
	if !ok {
		return 0
	}
	if index < 0 {
		l.critical(ffi.SymCoverageGet, p, "assertion 'index_ >= 0' failed")
		return 0
	}
	return c.get(index)
}

// CoverageSet implements pango_coverage_set.
func (l *Library) CoverageSet(p ffi.Ptr, index int32, level int32) {
	l.enter(ffi.SymCoverageSet)
	c, ok := l.coverage(ffi.SymCoverageSet, p)
	if !ok {
		return
	}
	if index < 0 {
		l.critical(ffi.SymCoverageSet, p, "assertion 'index_ >= 0' failed")
		return
	}
	if level < 0 || level > maxCoverageLevel {
		l.critical(ffi.SymCoverageSet, p, "assertion '(guint) level <= 3' failed")
		return
	}
	c.set(index, level)
}

// CoverageMax implements pango_coverage_max.
func (l *Library) CoverageMax(p, other ffi.Ptr) {
	l.enter(ffi.SymCoverageMax)
	c, ok := l.coverage(ffi.SymCoverageMax, p)
	if !ok {
		return
	}
	o, ok := l.coverage(ffi.SymCoverageMax, other)
	if !ok {
		return
	}
	c.maxWith(o)
}

// encodeCoverage serializes levels as the magic, the level count and the
// levels packed four to a byte, low bits first. Integers are big-endian.
func encodeCoverage(levels []byte) []byte {
	out := make([]byte, 8+(len(levels)+3)/4)
	binary.BigEndian.PutUint32(out[0:], coverageMagic)
	binary.BigEndian.PutUint32(out[4:], uint32(len(levels)))
	for i, lv := range levels {
		out[8+i/4] |= (lv & 3) << (2 * (i % 4))
	}
	return out
}

func decodeCoverage(data []byte) ([]byte, bool) {
	if len(data) < 8 || binary.BigEndian.Uint32(data) != coverageMagic {
		return nil, false
	}
	n := binary.BigEndian.Uint32(data[4:])
	if n > maxCoverageIndices || uint64(len(data)-8) != (uint64(n)+3)/4 {
		return nil, false
	}
	levels := make([]byte, n)
	for i := range levels {
		levels[i] = (data[8+i/4] >> (2 * (i % 4))) & 3
	}
	return levels, true
}

// CoverageToBytes implements pango_coverage_to_bytes. Coverages extending
// past the Unicode range and failed allocations yield NULL and 0 with a
// critical.
func (l *Library) CoverageToBytes(p, bytesOut, nBytesOut ffi.Ptr) {
	fail := l.enter(ffi.SymCoverageToBytes)
	c, ok := l.coverage(ffi.SymCoverageToBytes, p)
	if !ok {
		return
	}
	absent := func(detail string) {
		l.critical(ffi.SymCoverageToBytes, p, detail)
		l.writeU32(bytesOut, 0)
		l.writeU32(nBytesOut, 0)
	}
	if c.n > maxCoverageIndices {
		absent(fmt.Sprintf("coverage of %d indices exceeds 0x%x", c.n, maxCoverageIndices))
		return
	}
	data := encodeCoverage(c.levels())
	var buf ffi.Ptr
	if !fail {
		buf = l.malloc(uint32(len(data)))
	}
	if buf.IsNull() {
		absent(fmt.Sprintf("failed to allocate %d bytes", len(data)))
		return
	}
	l.mem.Write(uint32(buf), data)
	l.writeU32(bytesOut, uint32(buf))
	l.writeU32(nBytesOut, uint32(len(data)))
}

// CoverageFromBytes implements pango_coverage_from_bytes.
func (l *Library) CoverageFromBytes(bytes ffi.Ptr, nBytes int32) ffi.Ptr {
	if l.enter(ffi.SymCoverageFromBytes) {
		return 0
	}
	if bytes.IsNull() || nBytes <= 0 {
		return 0
	}
	data, ok := l.Read(bytes, uint32(nBytes))
	if !ok {
		l.critical(ffi.SymCoverageFromBytes, bytes, "buffer out of bounds")
		return 0
	}
	levels, ok := decodeCoverage(data)
	if !ok {
		return 0
	}
	return l.insert(TypeCoverage, coverageFromLevels(levels))
}
