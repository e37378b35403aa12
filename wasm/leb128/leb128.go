// Package leb128 decodes the variable-length integers used throughout the
// WebAssembly binary format.
//
// Each byte carries seven payload bits, least significant group first; the
// high bit marks continuation. An N-bit value may use at most ceil(N/7)
// bytes, and in a maximal-length encoding the bits of the final byte that
// fall outside the N-bit range must be zero (unsigned) or copies of the
// sign bit (signed).
package leb128

import (
	"errors"
	"fmt"
)

const (
	continuationBit = 0x80
	payloadMask     = 0x7F
	signBit         = 0x40
)

var (
	// ErrIncomplete is returned when the input ends before the terminating byte.
	ErrIncomplete = errors.New("leb128: unexpected end of input")

	// ErrOverflow is returned when an encoding is longer than its bit width
	// permits or sets bits outside of it.
	ErrOverflow = errors.New("leb128: overflow")
)

// MaxBytes returns the longest encoding permitted for a value of the given width.
func MaxBytes(bits uint) int {
	return int((bits + 6) / 7)
}

// Decode reads one LEB128 integer of the given width from the start of buf
// and returns its bits together with the number of bytes consumed. Signed
// values are returned in two's complement.
func Decode(buf []byte, bits uint, signed bool) (uint64, int, error) {
	if signed {
		v, n, err := DecodeSigned(buf, bits)
		return uint64(v), n, err
	}
	return DecodeUnsigned(buf, bits)
}

// DecodeUnsigned reads an unsigned integer of at most bits bits.
func DecodeUnsigned(buf []byte, bits uint) (uint64, int, error) {
	maxBytes := checkWidth(bits)
	var result uint64

	for i := 0; ; i++ {
		if i >= len(buf) {
			return 0, i, ErrIncomplete
		}
		b := buf[i]

		if i == maxBytes-1 {
			if b&continuationBit != 0 {
				return 0, i + 1, ErrOverflow
			}
			used := bits - uint(7*(maxBytes-1))
			if used < 7 && (b&payloadMask)>>used != 0 {
				return 0, i + 1, ErrOverflow
			}
		}

		result |= uint64(b&payloadMask) << (7 * uint(i))

		if b&continuationBit == 0 {
			return result, i + 1, nil
		}
	}
}

// DecodeSigned reads a signed integer of at most bits bits and sign-extends it.
func DecodeSigned(buf []byte, bits uint) (int64, int, error) {
	maxBytes := checkWidth(bits)
	var result int64
	var shift uint

	for i := 0; ; i++ {
		if i >= len(buf) {
			return 0, i, ErrIncomplete
		}
		b := buf[i]

		if i == maxBytes-1 {
			if b&continuationBit != 0 {
				return 0, i + 1, ErrOverflow
			}
			// The sign bit and every unused bit above it must agree.
			used := bits - uint(7*(maxBytes-1))
			if used < 7 {
				high := (b & payloadMask) >> (used - 1)
				if high != 0 && high != payloadMask>>(used-1) {
					return 0, i + 1, ErrOverflow
				}
			}
		}

		result |= int64(b&payloadMask) << shift
		shift += 7

		if b&continuationBit == 0 {
			if shift < 64 && b&signBit != 0 {
				result |= -1 << shift
			}
			return result, i + 1, nil
		}
	}
}

// U32 decodes an unsigned 32-bit integer (indices, counts, alignment).
func U32(buf []byte) (uint32, int, error) {
	v, n, err := DecodeUnsigned(buf, 32)
	return uint32(v), n, err
}

// U64 decodes an unsigned 64-bit integer (memory offsets).
func U64(buf []byte) (uint64, int, error) {
	return DecodeUnsigned(buf, 64)
}

// S32 decodes a signed 32-bit integer (i32.const).
func S32(buf []byte) (int32, int, error) {
	v, n, err := DecodeSigned(buf, 32)
	return int32(v), n, err
}

// S33 decodes a signed 33-bit integer (block types).
func S33(buf []byte) (int64, int, error) {
	return DecodeSigned(buf, 33)
}

// S64 decodes a signed 64-bit integer (i64.const).
func S64(buf []byte) (int64, int, error) {
	return DecodeSigned(buf, 64)
}

func checkWidth(bits uint) int {
	if bits == 0 || bits > 64 {
		panic(fmt.Sprintf("leb128: unsupported bit width %d", bits))
	}
	return MaxBytes(bits)
}
