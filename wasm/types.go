package wasm

import "fmt"

// ValueType is a WebAssembly value type in its single-byte binary encoding.
// Read as a signed LEB128 value each encoding is a small negative number:
// i32 is -1, f64 is -4, funcref is -16, and the empty block type is -64.
type ValueType byte

const (
	I32       ValueType = 0x7F
	I64       ValueType = 0x7E
	F32       ValueType = 0x7D
	F64       ValueType = 0x7C
	V128      ValueType = 0x7B
	FuncRef   ValueType = 0x70
	ExternRef ValueType = 0x6F

	// Empty is the result type of a block that produces no value. It is only
	// valid inside a BlockType.
	Empty ValueType = 0x40
)

func (v ValueType) String() string {
	switch v {
	case I32:
		return "i32"
	case I64:
		return "i64"
	case F32:
		return "f32"
	case F64:
		return "f64"
	case V128:
		return "v128"
	case FuncRef:
		return "funcref"
	case ExternRef:
		return "externref"
	case Empty:
		return "empty"
	default:
		return fmt.Sprintf("ValueType(0x%02x)", byte(v))
	}
}

// Size returns the width in bytes of a value of this type on the operand
// stack. References occupy a 64-bit slot. Empty and unknown types are 0.
func (v ValueType) Size() int {
	switch v {
	case I32, F32:
		return 4
	case I64, F64, FuncRef, ExternRef:
		return 8
	case V128:
		return 16
	default:
		return 0
	}
}

// IsValue reports whether v names a value type. Empty is not a value type.
func (v ValueType) IsValue() bool {
	return v.Size() > 0
}

// IsBlockResult reports whether v may appear as the value form of a BlockType.
func (v ValueType) IsBlockResult() bool {
	return v == Empty || v.IsValue()
}

// RefType is a reference type byte as used by ref.null.
type RefType byte

const (
	RefFunc   RefType = RefType(FuncRef)
	RefExtern RefType = RefType(ExternRef)
)

func (r RefType) String() string {
	switch r {
	case RefFunc:
		return "func"
	case RefExtern:
		return "extern"
	default:
		return fmt.Sprintf("RefType(0x%02x)", byte(r))
	}
}

// Valid reports whether r is a known reference type.
func (r RefType) Valid() bool {
	return r == RefFunc || r == RefExtern
}

// ValueType returns the value type of references of this kind.
func (r RefType) ValueType() ValueType {
	return ValueType(r)
}

// BlockType is the signature of a block, loop or if: either a single value
// type (possibly Empty) or an index into the module's type section.
type BlockType struct {
	Index   uint32
	Value   ValueType
	IsIndex bool
}

// BlockValue returns a BlockType producing at most one value.
func BlockValue(t ValueType) BlockType {
	return BlockType{Value: t}
}

// BlockIndex returns a BlockType referring to a function type.
func BlockIndex(idx uint32) BlockType {
	return BlockType{Index: idx, IsIndex: true}
}

// String renders the block type the way the text format annotates blocks:
// "" for Empty, "(result t)" for a value, "(type n)" for an index.
func (b BlockType) String() string {
	switch {
	case b.IsIndex:
		return fmt.Sprintf("(type %d)", b.Index)
	case b.Value == Empty:
		return ""
	default:
		return "(result " + b.Value.String() + ")"
	}
}
