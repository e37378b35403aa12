package wasm

import (
	"math"

	"github.com/wippyai/wasm-bytecode/wasm/opcode"
)

// Instruction is a decoded WebAssembly instruction. Imm holds one of the
// *Imm types below, or nil for instructions without immediates (including
// the reserved-byte forms memory.size, memory.grow, memory.fill and
// memory.copy).
//
// Structured instructions own their bodies: the tree holds no reference to
// the buffer it was decoded from.
type Instruction struct {
	Imm any
	Op  opcode.Full
}

// BlockImm holds the signature and body of block and loop.
type BlockImm struct {
	Body []Instruction
	Type BlockType
}

// IfImm holds an if without an else arm.
type IfImm struct {
	Then []Instruction
	Type BlockType
}

// IfElseImm holds an if with both arms.
type IfElseImm struct {
	Then []Instruction
	Else []Instruction
	Type BlockType
}

// BranchImm holds the label index for br and br_if.
type BranchImm struct {
	LabelIdx uint32
}

// BrTableImm holds the label table for br_table.
type BrTableImm struct {
	Labels  []uint32
	Default uint32
}

// CallImm holds the function index for call and ref.func.
type CallImm struct {
	FuncIdx uint32
}

// CallIndirectImm holds type and table indices for call_indirect.
type CallIndirectImm struct {
	TypeIdx  uint32
	TableIdx uint32
}

// LocalImm holds the local index for local.get, local.set and local.tee.
type LocalImm struct {
	LocalIdx uint32
}

// GlobalImm holds the global index for global.get and global.set.
type GlobalImm struct {
	GlobalIdx uint32
}

// TableImm holds the table index for table.get, table.set, table.grow,
// table.size and table.fill.
type TableImm struct {
	TableIdx uint32
}

// MemoryImm holds the memarg of loads and stores. Align is the base-2
// exponent of the alignment.
type MemoryImm struct {
	Offset uint64
	Align  uint32
}

// I32Imm holds the constant of i32.const.
type I32Imm struct {
	Value int32
}

// I64Imm holds the constant of i64.const.
type I64Imm struct {
	Value int64
}

// F32Imm holds the raw IEEE-754 bits of f32.const. Keeping the bits
// preserves NaN payloads.
type F32Imm struct {
	Bits uint32
}

// Value returns the constant as a float32.
func (f F32Imm) Value() float32 { return math.Float32frombits(f.Bits) }

// F64Imm holds the raw IEEE-754 bits of f64.const.
type F64Imm struct {
	Bits uint64
}

// Value returns the constant as a float64.
func (f F64Imm) Value() float64 { return math.Float64frombits(f.Bits) }

// RefNullImm holds the reference type of ref.null.
type RefNullImm struct {
	Type RefType
}

// SelectTypeImm holds the operand types of typed select.
type SelectTypeImm struct {
	Types []ValueType
}

// DataImm holds the data segment index for memory.init and data.drop.
type DataImm struct {
	DataIdx uint32
}

// ElemImm holds the element segment index for elem.drop.
type ElemImm struct {
	ElemIdx uint32
}

// TableInitImm holds the immediates of table.init.
type TableInitImm struct {
	ElemIdx  uint32
	TableIdx uint32
}

// TableCopyImm holds the immediates of table.copy, in encoding order.
type TableCopyImm struct {
	Dst uint32
	Src uint32
}

// V128Imm holds the 16 byte constant of v128.const.
type V128Imm struct {
	Bytes [16]byte
}

// ShuffleImm holds the lane selectors of i8x16.shuffle.
type ShuffleImm struct {
	Lanes [16]byte
}

// LaneImm holds the lane index of extract_lane and replace_lane.
type LaneImm struct {
	Lane byte
}

// MemoryLaneImm holds the memarg and lane index of the v128 lane loads
// and stores.
type MemoryLaneImm struct {
	Mem  MemoryImm
	Lane byte
}

// Bodies returns the nested instruction sequences of a structured
// instruction in encoding order, or nil.
func (i Instruction) Bodies() [][]Instruction {
	switch imm := i.Imm.(type) {
	case BlockImm:
		return [][]Instruction{imm.Body}
	case IfImm:
		return [][]Instruction{imm.Then}
	case IfElseImm:
		return [][]Instruction{imm.Then, imm.Else}
	default:
		return nil
	}
}

// GetCallTarget returns the function index for direct calls.
func (i Instruction) GetCallTarget() (uint32, bool) {
	if i.Op != opcode.OneByte(opcode.Call) {
		return 0, false
	}
	imm, ok := i.Imm.(CallImm)
	return imm.FuncIdx, ok
}

// IsIndirectCall returns true if this is call_indirect.
func (i Instruction) IsIndirectCall() bool {
	return i.Op == opcode.OneByte(opcode.CallIndirect)
}

// Walk visits instrs depth first in encoding order, passing each
// instruction and its nesting depth (0 for the outermost sequence).
// Walking stops as soon as fn returns false.
func Walk(instrs []Instruction, fn func(in Instruction, depth int) bool) {
	walk(instrs, 0, fn)
}

func walk(instrs []Instruction, depth int, fn func(Instruction, int) bool) bool {
	for _, in := range instrs {
		if !fn(in, depth) {
			return false
		}
		for _, body := range in.Bodies() {
			if !walk(body, depth+1, fn) {
				return false
			}
		}
	}
	return true
}

// Count returns the number of instructions in instrs including every
// nested body.
func Count(instrs []Instruction) int {
	n := 0
	Walk(instrs, func(Instruction, int) bool {
		n++
		return true
	})
	return n
}

// MaxDepth returns the deepest nesting level in instrs; a flat sequence
// has depth 0.
func MaxDepth(instrs []Instruction) int {
	deepest := 0
	Walk(instrs, func(in Instruction, depth int) bool {
		if in.Bodies() != nil && depth+1 > deepest {
			deepest = depth + 1
		}
		return true
	})
	return deepest
}
