package stack

import (
	"fmt"
	"math"

	"github.com/wippyai/wasm-bytecode/errors"
	"github.com/wippyai/wasm-bytecode/wasm"
)

// Value is a tagged operand. Scalars live in Lo; a v128 spreads its
// little-endian bytes over Lo and Hi; references hold their index in Lo.
type Value struct {
	Lo   uint64
	Hi   uint64
	Type wasm.ValueType
	Null bool
}

// Constructors for tagged values.

func I32(v int32) Value { return Value{Type: wasm.I32, Lo: uint64(uint32(v))} }
func I64(v int64) Value { return Value{Type: wasm.I64, Lo: uint64(v)} }
func F32(v float32) Value { return Value{Type: wasm.F32, Lo: uint64(math.Float32bits(v))} }
func F64(v float64) Value { return Value{Type: wasm.F64, Lo: math.Float64bits(v)} }
func FuncRef(idx uint32) Value { return Value{Type: wasm.FuncRef, Lo: uint64(idx)} }

// Vector wraps a 128-bit value.
func Vector(v V128) Value {
	var lo, hi uint64
	for i := 7; i >= 0; i-- {
		lo = lo<<8 | uint64(v[i])
		hi = hi<<8 | uint64(v[i+8])
	}
	return Value{Type: wasm.V128, Lo: lo, Hi: hi}
}

// NullRef returns the null reference of type t.
func NullRef(t wasm.RefType) Value {
	return Value{Type: t.ValueType(), Null: true}
}

// Accessors reinterpret the payload; they do not check Type.

func (v Value) I32() int32 { return int32(uint32(v.Lo)) }
func (v Value) I64() int64 { return int64(v.Lo) }
func (v Value) F32() float32 { return math.Float32frombits(uint32(v.Lo)) }
func (v Value) F64() float64 { return math.Float64frombits(v.Lo) }

// V128 returns the vector bytes.
func (v Value) V128() V128 {
	var out V128
	lo, hi := v.Lo, v.Hi
	for i := 0; i < 8; i++ {
		out[i] = byte(lo)
		out[i+8] = byte(hi)
		lo >>= 8
		hi >>= 8
	}
	return out
}

func (v Value) String() string {
	switch v.Type {
	case wasm.I32:
		return fmt.Sprintf("i32:%d", v.I32())
	case wasm.I64:
		return fmt.Sprintf("i64:%d", v.I64())
	case wasm.F32:
		return fmt.Sprintf("f32:%g", v.F32())
	case wasm.F64:
		return fmt.Sprintf("f64:%g", v.F64())
	case wasm.V128:
		return fmt.Sprintf("v128:0x%016x%016x", v.Hi, v.Lo)
	default:
		if v.Null {
			return v.Type.String() + ":null"
		}
		return fmt.Sprintf("%s:%d", v.Type, v.Lo)
	}
}

// Values is an operand stack that records the type of every value.
// Pops name the type they expect and fail without side effects when the
// top of the stack holds something else.
type Values struct {
	vals []Value
}

// Len returns the number of values on the stack.
func (s *Values) Len() int {
	return len(s.vals)
}

// Reset empties the stack.
func (s *Values) Reset() {
	s.vals = s.vals[:0]
}

// Push appends v.
func (s *Values) Push(v Value) {
	s.vals = append(s.vals, v)
}

// Peek returns the top value without removing it.
func (s *Values) Peek() (Value, error) {
	if len(s.vals) == 0 {
		return Value{}, emptyStack("value")
	}
	return s.vals[len(s.vals)-1], nil
}

// Pop removes and returns the top value whatever its type.
func (s *Values) Pop() (Value, error) {
	v, err := s.Peek()
	if err != nil {
		return v, err
	}
	s.vals = s.vals[:len(s.vals)-1]
	return v, nil
}

// PopType removes the top value if it has type t.
func (s *Values) PopType(t wasm.ValueType) (Value, error) {
	if len(s.vals) == 0 {
		return Value{}, emptyStack(t.String())
	}
	top := s.vals[len(s.vals)-1]
	if top.Type != t {
		return Value{}, errors.TypeMismatch(t.String(), top.Type.String())
	}
	s.vals = s.vals[:len(s.vals)-1]
	return top, nil
}

func (s *Values) PopI32() (int32, error) {
	v, err := s.PopType(wasm.I32)
	return v.I32(), err
}

func (s *Values) PopI64() (int64, error) {
	v, err := s.PopType(wasm.I64)
	return v.I64(), err
}

func (s *Values) PopF32() (float32, error) {
	v, err := s.PopType(wasm.F32)
	return v.F32(), err
}

func (s *Values) PopF64() (float64, error) {
	v, err := s.PopType(wasm.F64)
	return v.F64(), err
}

func (s *Values) PopV128() (V128, error) {
	v, err := s.PopType(wasm.V128)
	return v.V128(), err
}

func emptyStack(want string) *errors.Error {
	return errors.New(errors.PhaseStack, errors.KindUnderflow).
		Detail("pop %s from empty stack", want).
		Build()
}
