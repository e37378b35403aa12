package binary

import (
	"encoding/binary"
	stderrors "errors"

	"github.com/wippyai/wasm-bytecode/errors"
	"github.com/wippyai/wasm-bytecode/wasm/leb128"
)

// Reader is a cursor over an immutable byte slice. It never copies or
// mutates the underlying buffer; slices it returns alias it.
//
// Every error is an *errors.Error in PhaseDecode whose Offset is relative to
// the start of the buffer passed to NewReader.
type Reader struct {
	buf []byte
	pos int
}

// NewReader creates a Reader positioned at the start of buf.
func NewReader(buf []byte) *Reader {
	return &Reader{buf: buf}
}

// Position returns the number of bytes consumed so far.
func (r *Reader) Position() int {
	return r.pos
}

// Len returns the number of unread bytes.
func (r *Reader) Len() int {
	return len(r.buf) - r.pos
}

// Remaining returns the unread tail of the buffer.
func (r *Reader) Remaining() []byte {
	return r.buf[r.pos:]
}

// Peek returns the next byte without consuming it.
func (r *Reader) Peek() (byte, bool) {
	if r.pos >= len(r.buf) {
		return 0, false
	}
	return r.buf[r.pos], true
}

// Byte reads one byte. what names the value for error messages.
func (r *Reader) Byte(what string) (byte, error) {
	if r.pos >= len(r.buf) {
		return 0, errors.Incomplete(r.pos, what)
	}
	b := r.buf[r.pos]
	r.pos++
	return b, nil
}

// Bytes reads exactly n bytes and returns a view into the buffer.
func (r *Reader) Bytes(n int, what string) ([]byte, error) {
	if n < 0 || r.Len() < n {
		return nil, errors.Incomplete(len(r.buf), what)
	}
	b := r.buf[r.pos : r.pos+n]
	r.pos += n
	return b, nil
}

// Zero reads one reserved byte that must be 0x00.
func (r *Reader) Zero(what string) error {
	start := r.pos
	b, err := r.Byte(what)
	if err != nil {
		return err
	}
	if b != 0x00 {
		return errors.New(errors.PhaseDecode, errors.KindInvalidData).
			Offset(start).
			Value(b).
			Detail("%s must be 0x00, got 0x%02x", what, b).
			Build()
	}
	return nil
}

// U32 reads an unsigned 32-bit LEB128 integer.
func (r *Reader) U32(what string) (uint32, error) {
	v, err := r.leb(32, false, what)
	return uint32(v), err
}

// U64 reads an unsigned 64-bit LEB128 integer.
func (r *Reader) U64(what string) (uint64, error) {
	return r.leb(64, false, what)
}

// S32 reads a signed 32-bit LEB128 integer.
func (r *Reader) S32(what string) (int32, error) {
	v, err := r.leb(32, true, what)
	return int32(v), err
}

// S33 reads a signed 33-bit LEB128 integer.
func (r *Reader) S33(what string) (int64, error) {
	v, err := r.leb(33, true, what)
	return int64(v), err
}

// S64 reads a signed 64-bit LEB128 integer.
func (r *Reader) S64(what string) (int64, error) {
	v, err := r.leb(64, true, what)
	return int64(v), err
}

// Fixed32 reads a little-endian uint32 (fixed 4 bytes).
func (r *Reader) Fixed32(what string) (uint32, error) {
	b, err := r.Bytes(4, what)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(b), nil
}

// Fixed64 reads a little-endian uint64 (fixed 8 bytes).
func (r *Reader) Fixed64(what string) (uint64, error) {
	b, err := r.Bytes(8, what)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint64(b), nil
}

func (r *Reader) leb(bits uint, signed bool, what string) (uint64, error) {
	start := r.pos
	v, n, err := leb128.Decode(r.buf[r.pos:], bits, signed)
	switch {
	case err == nil:
		r.pos += n
		return v, nil
	case stderrors.Is(err, leb128.ErrIncomplete):
		return 0, errors.Incomplete(len(r.buf), what)
	default:
		e := errors.Overflow(start, bits, err)
		e.Detail = what + ": " + e.Detail
		return 0, e
	}
}
