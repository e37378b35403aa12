// Package stack provides operand stacks for an execution engine.
//
// Stack stores values by their little-endian byte representation with no
// type tags; the caller pops with the type it pushed. Values keeps a type
// tag next to every value and refuses pops of the wrong type.
package stack

import (
	"encoding/binary"
	"math"

	"github.com/wippyai/wasm-bytecode/errors"
)

// Scalar is any fixed-width numeric type the byte stack can hold.
type Scalar interface {
	int8 | uint8 | int16 | uint16 | int32 | uint32 | int64 | uint64 | float32 | float64
}

// V128 is a 128-bit vector value in little-endian lane order.
type V128 [16]byte

// Stack is an untyped operand stack backed by a byte buffer.
// The zero value is an empty stack ready for use. A Stack must not be
// shared between goroutines without external locking.
type Stack struct {
	buf []byte
}

// New creates a stack with room for capacity bytes before growing.
func New(capacity int) *Stack {
	if capacity < 0 {
		capacity = 0
	}
	return &Stack{buf: make([]byte, 0, capacity)}
}

// Len returns the number of bytes on the stack.
func (s *Stack) Len() int {
	return len(s.buf)
}

// Reset empties the stack, keeping its storage.
func (s *Stack) Reset() {
	s.buf = s.buf[:0]
}

// Bytes returns a copy of the raw stack contents, bottom first.
func (s *Stack) Bytes() []byte {
	out := make([]byte, len(s.buf))
	copy(out, s.buf)
	return out
}

// Size returns the number of bytes a value of type T occupies.
func Size[T Scalar]() int {
	var zero T
	switch any(zero).(type) {
	case int8, uint8:
		return 1
	case int16, uint16:
		return 2
	case int32, uint32, float32:
		return 4
	default:
		return 8
	}
}

// Push appends the little-endian representation of v.
func Push[T Scalar](s *Stack, v T) {
	var b [8]byte
	n := Size[T]()
	switch x := any(v).(type) {
	case int8:
		b[0] = byte(x)
	case uint8:
		b[0] = x
	case int16:
		binary.LittleEndian.PutUint16(b[:], uint16(x))
	case uint16:
		binary.LittleEndian.PutUint16(b[:], x)
	case int32:
		binary.LittleEndian.PutUint32(b[:], uint32(x))
	case uint32:
		binary.LittleEndian.PutUint32(b[:], x)
	case float32:
		binary.LittleEndian.PutUint32(b[:], math.Float32bits(x))
	case int64:
		binary.LittleEndian.PutUint64(b[:], uint64(x))
	case uint64:
		binary.LittleEndian.PutUint64(b[:], x)
	case float64:
		binary.LittleEndian.PutUint64(b[:], math.Float64bits(x))
	}
	s.buf = append(s.buf, b[:n]...)
}

// Pop removes the top Size[T]() bytes and reinterprets them as T.
// A stack holding fewer bytes is left untouched and an underflow error is
// returned.
func Pop[T Scalar](s *Stack) (T, error) {
	v, err := Peek[T](s)
	if err != nil {
		return v, err
	}
	s.buf = s.buf[:len(s.buf)-Size[T]()]
	return v, nil
}

// Peek reads the top value as T without removing it.
func Peek[T Scalar](s *Stack) (T, error) {
	var zero T
	n := Size[T]()
	if len(s.buf) < n {
		return zero, errors.Underflow(n, len(s.buf))
	}
	return decode[T](s.buf[len(s.buf)-n:]), nil
}

func decode[T Scalar](b []byte) T {
	var v T
	switch p := any(&v).(type) {
	case *int8:
		*p = int8(b[0])
	case *uint8:
		*p = b[0]
	case *int16:
		*p = int16(binary.LittleEndian.Uint16(b))
	case *uint16:
		*p = binary.LittleEndian.Uint16(b)
	case *int32:
		*p = int32(binary.LittleEndian.Uint32(b))
	case *uint32:
		*p = binary.LittleEndian.Uint32(b)
	case *float32:
		*p = math.Float32frombits(binary.LittleEndian.Uint32(b))
	case *int64:
		*p = int64(binary.LittleEndian.Uint64(b))
	case *uint64:
		*p = binary.LittleEndian.Uint64(b)
	case *float64:
		*p = math.Float64frombits(binary.LittleEndian.Uint64(b))
	}
	return v
}

// PushV128 appends a 128-bit vector.
func (s *Stack) PushV128(v V128) {
	s.buf = append(s.buf, v[:]...)
}

// PopV128 removes the top 16 bytes as a vector.
func (s *Stack) PopV128() (V128, error) {
	var v V128
	if len(s.buf) < len(v) {
		return v, errors.Underflow(len(v), len(s.buf))
	}
	n := copy(v[:], s.buf[len(s.buf)-len(v):])
	s.buf = s.buf[:len(s.buf)-n]
	return v, nil
}
