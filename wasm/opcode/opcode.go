// Package opcode defines the WebAssembly instruction code spaces.
//
// Instructions are identified either by a single byte (Opcode) or by one of
// the two escape bytes followed by an unsigned LEB128 code: MiscPrefix
// selects the Misc space and SIMDPrefix selects the SIMD space. Every
// assigned code carries its text-format name and the kind of immediate
// that follows it in the binary encoding. Unassigned codes resolve to
// nothing and are rejected by the decoder.
package opcode

import (
	"fmt"
	"sync"
)

// ImmKind describes the immediate operand layout following an opcode.
type ImmKind uint8

const (
	ImmNone         ImmKind = iota // no immediates
	ImmBlock                       // block type, then a body up to end
	ImmIf                          // block type, then a body up to else or end
	ImmElse                        // terminator inside if bodies
	ImmEnd                         // terminator of every body
	ImmPrefix                      // escape into an extended code space
	ImmLabel                       // u32 label index
	ImmBrTable                     // vector of u32 labels plus default
	ImmFunc                        // u32 function index
	ImmCallIndirect                // u32 type index, u32 table index
	ImmLocal                       // u32 local index
	ImmGlobal                      // u32 global index
	ImmTable                       // u32 table index
	ImmMemArg                      // u32 alignment, u64 offset
	ImmMemReserved                 // single reserved zero byte
	ImmI32                         // s32 constant
	ImmI64                         // s64 constant
	ImmF32                         // 4 byte little-endian float
	ImmF64                         // 8 byte little-endian float
	ImmSelectT                     // vector of value types
	ImmRefType                     // reference type byte
	ImmMemoryInit                  // u32 data index, reserved zero byte
	ImmData                        // u32 data index
	ImmMemoryCopy                  // two reserved zero bytes
	ImmTableInit                   // u32 element index, u32 table index
	ImmElem                        // u32 element index
	ImmTableCopy                   // u32 destination table, u32 source table
	ImmV128                        // 16 byte vector constant
	ImmShuffle                     // 16 lane index bytes
	ImmLane                        // single lane index byte
	ImmMemArgLane                  // memarg, then a lane index byte
)

var immKindNames = [...]string{
	ImmNone:         "none",
	ImmBlock:        "block",
	ImmIf:           "if",
	ImmElse:         "else",
	ImmEnd:          "end",
	ImmPrefix:       "prefix",
	ImmLabel:        "label",
	ImmBrTable:      "br_table",
	ImmFunc:         "func",
	ImmCallIndirect: "call_indirect",
	ImmLocal:        "local",
	ImmGlobal:       "global",
	ImmTable:        "table",
	ImmMemArg:       "memarg",
	ImmMemReserved:  "reserved",
	ImmI32:          "i32",
	ImmI64:          "i64",
	ImmF32:          "f32",
	ImmF64:          "f64",
	ImmSelectT:      "select_t",
	ImmRefType:      "reftype",
	ImmMemoryInit:   "memory_init",
	ImmData:         "data",
	ImmMemoryCopy:   "memory_copy",
	ImmTableInit:    "table_init",
	ImmElem:         "elem",
	ImmTableCopy:    "table_copy",
	ImmV128:         "v128",
	ImmShuffle:      "shuffle",
	ImmLane:         "lane",
	ImmMemArgLane:   "memarg_lane",
}

func (k ImmKind) String() string {
	if int(k) < len(immKindNames) {
		return immKindNames[k]
	}
	return fmt.Sprintf("ImmKind(%d)", uint8(k))
}

// Info describes an assigned instruction code.
type Info struct {
	Name string
	Imm  ImmKind
}

// Space identifies one of the three instruction code spaces.
type Space uint8

const (
	SpacePrimary Space = iota
	SpaceMisc
	SpaceSIMD
)

func (s Space) String() string {
	switch s {
	case SpacePrimary:
		return "primary"
	case SpaceMisc:
		return "misc"
	case SpaceSIMD:
		return "simd"
	default:
		return fmt.Sprintf("Space(%d)", uint8(s))
	}
}

// Full identifies an instruction across all code spaces. Values are
// comparable and usable as map keys.
type Full struct {
	Space Space
	Code  uint32
}

// OneByte returns the identifier of a primary-space instruction.
func OneByte(op Opcode) Full { return Full{Space: SpacePrimary, Code: uint32(op)} }

// Extended1 returns the identifier of a Misc-space instruction.
func Extended1(op Misc) Full { return Full{Space: SpaceMisc, Code: uint32(op)} }

// Extended2 returns the identifier of a SIMD-space instruction.
func Extended2(op SIMD) Full { return Full{Space: SpaceSIMD, Code: uint32(op)} }

// Info returns the table entry for f. ok is false for unassigned codes and
// for the escape bytes themselves.
func (f Full) Info() (Info, bool) {
	var info Info
	switch f.Space {
	case SpacePrimary:
		if f.Code < uint32(len(primaryTable)) {
			info = primaryTable[f.Code]
		}
	case SpaceMisc:
		if f.Code < uint32(len(miscTable)) {
			info = miscTable[f.Code]
		}
	case SpaceSIMD:
		if f.Code < uint32(len(simdTable)) {
			info = simdTable[f.Code]
		}
	}
	return info, info.Name != ""
}

// Valid reports whether f is an assigned instruction.
func (f Full) Valid() bool {
	_, ok := f.Info()
	return ok
}

// Imm returns the immediate layout of f, ImmNone when unassigned.
func (f Full) Imm() ImmKind {
	info, _ := f.Info()
	return info.Imm
}

// Name returns the text-format mnemonic, or "" when unassigned.
func (f Full) Name() string {
	info, _ := f.Info()
	return info.Name
}

// String returns the mnemonic, or the raw encoding for unassigned codes.
func (f Full) String() string {
	if name := f.Name(); name != "" {
		return name
	}
	switch f.Space {
	case SpaceMisc:
		return fmt.Sprintf("0xfc 0x%02x", f.Code)
	case SpaceSIMD:
		return fmt.Sprintf("0xfd 0x%02x", f.Code)
	default:
		return fmt.Sprintf("0x%02x", f.Code)
	}
}

// Prefix returns the leading byte of the binary encoding of f.
func (f Full) Prefix() byte {
	switch f.Space {
	case SpaceMisc:
		return byte(MiscPrefix)
	case SpaceSIMD:
		return byte(SIMDPrefix)
	default:
		return byte(f.Code)
	}
}

// Resolve maps a leading byte to a primary opcode. The escape bytes resolve
// to MiscPrefix and SIMDPrefix.
func Resolve(b byte) (Opcode, bool) {
	return Opcode(b), primaryTable[b].Name != "" || primaryTable[b].Imm == ImmPrefix
}

// ResolveMisc maps a code following MiscPrefix.
func ResolveMisc(code uint32) (Misc, bool) {
	return Misc(code), Extended1(Misc(code)).Valid()
}

// ResolveSIMD maps a code following SIMDPrefix.
func ResolveSIMD(code uint32) (SIMD, bool) {
	return SIMD(code), Extended2(SIMD(code)).Valid()
}

func (op Opcode) String() string { return OneByte(op).String() }
func (op Misc) String() string   { return Extended1(op).String() }
func (op SIMD) String() string   { return Extended2(op).String() }

var (
	indexOnce sync.Once
	byName    map[string]Full
	all       []Full
)

func buildIndex() {
	byName = make(map[string]Full, len(primaryTable)+len(miscTable)+len(simdTable))
	add := func(f Full) {
		name := f.Name()
		if name == "" {
			return
		}
		all = append(all, f)
		// select and typed select share a mnemonic; the untyped form wins.
		if _, dup := byName[name]; !dup {
			byName[name] = f
		}
	}
	for code := range primaryTable {
		add(Full{Space: SpacePrimary, Code: uint32(code)})
	}
	for code := range miscTable {
		add(Full{Space: SpaceMisc, Code: uint32(code)})
	}
	for code := range simdTable {
		add(Full{Space: SpaceSIMD, Code: uint32(code)})
	}
}

// Lookup finds an instruction by its text-format mnemonic.
func Lookup(name string) (Full, bool) {
	indexOnce.Do(buildIndex)
	f, ok := byName[name]
	return f, ok
}

// All returns every assigned instruction ordered by space, then code.
// The returned slice is a copy.
func All() []Full {
	indexOnce.Do(buildIndex)
	return append([]Full(nil), all...)
}
