// Package wasmbin encodes the few WebAssembly module shapes the loader
// synthesizes.
package wasmbin

import (
	"bytes"
	"encoding/binary"
)

const (
	magic   = 0x6d736100 // \0asm
	version = 1
)

const (
	sectionMemory = 5
	sectionExport = 7

	kindMemory = 0x02

	limitsHasMax = 0x01
	limitsShared = 0x02
)

// Writer accumulates an encoding.
type Writer struct {
	buf bytes.Buffer
}

// Bytes returns the written bytes.
func (w *Writer) Bytes() []byte { return w.buf.Bytes() }

// Byte writes a single byte.
func (w *Writer) Byte(b byte) { w.buf.WriteByte(b) }

// WriteU32 writes an unsigned LEB128 uint32.
func (w *Writer) WriteU32(v uint32) {
	for {
		b := byte(v & 0x7f)
		v >>= 7
		if v != 0 {
			b |= 0x80
		}
		w.buf.WriteByte(b)
		if v == 0 {
			return
		}
	}
}

// WriteName writes a length-prefixed UTF-8 name.
func (w *Writer) WriteName(s string) {
	w.WriteU32(uint32(len(s)))
	w.buf.WriteString(s)
}

// WriteU32LE writes a fixed little-endian uint32.
func (w *Writer) WriteU32LE(v uint32) {
	w.buf.Write(binary.LittleEndian.AppendUint32(nil, v))
}

// Section writes a section with its size prefix.
func (w *Writer) Section(id byte, body func(*Writer)) {
	var s Writer
	body(&s)
	w.Byte(id)
	w.WriteU32(uint32(s.buf.Len()))
	w.buf.Write(s.Bytes())
}

// Limits are memory limits in 64KiB pages. A nil Max is unbounded.
type Limits struct {
	Min    uint32
	Max    *uint32
	Shared bool
}

func (w *Writer) limits(l Limits) {
	var flags byte
	if l.Max != nil {
		flags |= limitsHasMax
	}
	if l.Shared {
		flags |= limitsShared
	}
	w.Byte(flags)
	w.WriteU32(l.Min)
	if l.Max != nil {
		w.WriteU32(*l.Max)
	}
}
