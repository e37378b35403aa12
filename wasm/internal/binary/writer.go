package binary

import (
	"bytes"
	"encoding/binary"
)

// Writer assembles binary fragments for tests: instruction bytes with
// LEB128 immediates and minimal module framing around a function body.
type Writer struct {
	buf bytes.Buffer
}

// NewWriter creates an empty Writer.
func NewWriter() *Writer {
	return &Writer{}
}

// Bytes returns the written bytes.
func (w *Writer) Bytes() []byte {
	return w.buf.Bytes()
}

// Len returns the number of bytes written.
func (w *Writer) Len() int {
	return w.buf.Len()
}

// Byte writes raw bytes.
func (w *Writer) Byte(b ...byte) *Writer {
	w.buf.Write(b)
	return w
}

// U32 writes an unsigned LEB128 encoded uint32.
func (w *Writer) U32(v uint32) *Writer {
	return w.U64(uint64(v))
}

// U64 writes an unsigned LEB128 encoded uint64.
func (w *Writer) U64(v uint64) *Writer {
	for {
		b := byte(v & 0x7f)
		v >>= 7
		if v != 0 {
			b |= 0x80
		}
		w.buf.WriteByte(b)
		if v == 0 {
			return w
		}
	}
}

// S32 writes a signed LEB128 encoded int32.
func (w *Writer) S32(v int32) *Writer {
	return w.S64(int64(v))
}

// S64 writes a signed LEB128 encoded int64.
func (w *Writer) S64(v int64) *Writer {
	for {
		b := byte(v & 0x7f)
		v >>= 7
		if (v == 0 && b&0x40 == 0) || (v == -1 && b&0x40 != 0) {
			w.buf.WriteByte(b)
			return w
		}
		w.buf.WriteByte(b | 0x80)
	}
}

// Fixed32 writes a little-endian uint32.
func (w *Writer) Fixed32(v uint32) *Writer {
	var b [4]byte
	binary.LittleEndian.PutUint32(b[:], v)
	w.buf.Write(b[:])
	return w
}

// Fixed64 writes a little-endian uint64.
func (w *Writer) Fixed64(v uint64) *Writer {
	var b [8]byte
	binary.LittleEndian.PutUint64(b[:], v)
	w.buf.Write(b[:])
	return w
}

// Section writes a section with the given id and a length-prefixed payload.
func (w *Writer) Section(id byte, payload []byte) *Writer {
	w.buf.WriteByte(id)
	w.U32(uint32(len(payload)))
	w.buf.Write(payload)
	return w
}

// Func describes a single function of type [] -> Results for Module.
type Func struct {
	Results []byte
	Locals  []byte
	// Body is the function body expression, including its final end.
	Body []byte
	// Memory declares one memory of one page.
	Memory bool
}

// Module assembles a complete binary module holding f.
func Module(f Func) []byte {
	types := NewWriter().U32(1).Byte(0x60).U32(0).U32(uint32(len(f.Results))).Byte(f.Results...)
	funcs := NewWriter().U32(1).U32(0)

	code := NewWriter().U32(uint32(len(f.Locals)))
	for _, t := range f.Locals {
		code.U32(1).Byte(t)
	}
	code.Byte(f.Body...)
	codes := NewWriter().U32(1).U32(uint32(code.Len())).Byte(code.Bytes()...)

	m := NewWriter().Byte(0x00, 0x61, 0x73, 0x6d, 0x01, 0x00, 0x00, 0x00)
	m.Section(1, types.Bytes())
	m.Section(3, funcs.Bytes())
	if f.Memory {
		m.Section(5, NewWriter().U32(1).Byte(0x00).U32(1).Bytes())
	}
	m.Section(10, codes.Bytes())
	return m.Bytes()
}
