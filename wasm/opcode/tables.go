package opcode

// Opcode is a single-byte instruction identifier in the primary code space.
type Opcode byte

const (
	// Control
	Unreachable  Opcode = 0x00
	Nop          Opcode = 0x01
	Block        Opcode = 0x02
	Loop         Opcode = 0x03
	If           Opcode = 0x04
	Else         Opcode = 0x05
	End          Opcode = 0x0B
	Br           Opcode = 0x0C
	BrIf         Opcode = 0x0D
	BrTable      Opcode = 0x0E
	Return       Opcode = 0x0F
	Call         Opcode = 0x10
	CallIndirect Opcode = 0x11

	// Parametric
	Drop    Opcode = 0x1A
	Select  Opcode = 0x1B
	SelectT Opcode = 0x1C

	// Variables and tables
	LocalGet  Opcode = 0x20
	LocalSet  Opcode = 0x21
	LocalTee  Opcode = 0x22
	GlobalGet Opcode = 0x23
	GlobalSet Opcode = 0x24
	TableGet  Opcode = 0x25
	TableSet  Opcode = 0x26

	// Memory
	I32Load    Opcode = 0x28
	I64Load    Opcode = 0x29
	F32Load    Opcode = 0x2A
	F64Load    Opcode = 0x2B
	I32Load8S  Opcode = 0x2C
	I32Load8U  Opcode = 0x2D
	I32Load16S Opcode = 0x2E
	I32Load16U Opcode = 0x2F
	I64Load8S  Opcode = 0x30
	I64Load8U  Opcode = 0x31
	I64Load16S Opcode = 0x32
	I64Load16U Opcode = 0x33
	I64Load32S Opcode = 0x34
	I64Load32U Opcode = 0x35
	I32Store   Opcode = 0x36
	I64Store   Opcode = 0x37
	F32Store   Opcode = 0x38
	F64Store   Opcode = 0x39
	I32Store8  Opcode = 0x3A
	I32Store16 Opcode = 0x3B
	I64Store8  Opcode = 0x3C
	I64Store16 Opcode = 0x3D
	I64Store32 Opcode = 0x3E
	MemorySize Opcode = 0x3F
	MemoryGrow Opcode = 0x40

	// Constants
	I32Const Opcode = 0x41
	I64Const Opcode = 0x42
	F32Const Opcode = 0x43
	F64Const Opcode = 0x44

	// Comparison
	I32Eqz Opcode = 0x45
	I32Eq  Opcode = 0x46
	I32Ne  Opcode = 0x47
	I32LtS Opcode = 0x48
	I32LtU Opcode = 0x49
	I32GtS Opcode = 0x4A
	I32GtU Opcode = 0x4B
	I32LeS Opcode = 0x4C
	I32LeU Opcode = 0x4D
	I32GeS Opcode = 0x4E
	I32GeU Opcode = 0x4F
	I64Eqz Opcode = 0x50
	I64Eq  Opcode = 0x51
	I64Ne  Opcode = 0x52
	I64LtS Opcode = 0x53
	I64LtU Opcode = 0x54
	I64GtS Opcode = 0x55
	I64GtU Opcode = 0x56
	I64LeS Opcode = 0x57
	I64LeU Opcode = 0x58
	I64GeS Opcode = 0x59
	I64GeU Opcode = 0x5A
	F32Eq  Opcode = 0x5B
	F32Ne  Opcode = 0x5C
	F32Lt  Opcode = 0x5D
	F32Gt  Opcode = 0x5E
	F32Le  Opcode = 0x5F
	F32Ge  Opcode = 0x60
	F64Eq  Opcode = 0x61
	F64Ne  Opcode = 0x62
	F64Lt  Opcode = 0x63
	F64Gt  Opcode = 0x64
	F64Le  Opcode = 0x65
	F64Ge  Opcode = 0x66

	// Arithmetic
	I32Clz      Opcode = 0x67
	I32Ctz      Opcode = 0x68
	I32Popcnt   Opcode = 0x69
	I32Add      Opcode = 0x6A
	I32Sub      Opcode = 0x6B
	I32Mul      Opcode = 0x6C
	I32DivS     Opcode = 0x6D
	I32DivU     Opcode = 0x6E
	I32RemS     Opcode = 0x6F
	I32RemU     Opcode = 0x70
	I32And      Opcode = 0x71
	I32Or       Opcode = 0x72
	I32Xor      Opcode = 0x73
	I32Shl      Opcode = 0x74
	I32ShrS     Opcode = 0x75
	I32ShrU     Opcode = 0x76
	I32Rotl     Opcode = 0x77
	I32Rotr     Opcode = 0x78
	I64Clz      Opcode = 0x79
	I64Ctz      Opcode = 0x7A
	I64Popcnt   Opcode = 0x7B
	I64Add      Opcode = 0x7C
	I64Sub      Opcode = 0x7D
	I64Mul      Opcode = 0x7E
	I64DivS     Opcode = 0x7F
	I64DivU     Opcode = 0x80
	I64RemS     Opcode = 0x81
	I64RemU     Opcode = 0x82
	I64And      Opcode = 0x83
	I64Or       Opcode = 0x84
	I64Xor      Opcode = 0x85
	I64Shl      Opcode = 0x86
	I64ShrS     Opcode = 0x87
	I64ShrU     Opcode = 0x88
	I64Rotl     Opcode = 0x89
	I64Rotr     Opcode = 0x8A
	F32Abs      Opcode = 0x8B
	F32Neg      Opcode = 0x8C
	F32Ceil     Opcode = 0x8D
	F32Floor    Opcode = 0x8E
	F32Trunc    Opcode = 0x8F
	F32Nearest  Opcode = 0x90
	F32Sqrt     Opcode = 0x91
	F32Add      Opcode = 0x92
	F32Sub      Opcode = 0x93
	F32Mul      Opcode = 0x94
	F32Div      Opcode = 0x95
	F32Min      Opcode = 0x96
	F32Max      Opcode = 0x97
	F32Copysign Opcode = 0x98
	F64Abs      Opcode = 0x99
	F64Neg      Opcode = 0x9A
	F64Ceil     Opcode = 0x9B
	F64Floor    Opcode = 0x9C
	F64Trunc    Opcode = 0x9D
	F64Nearest  Opcode = 0x9E
	F64Sqrt     Opcode = 0x9F
	F64Add      Opcode = 0xA0
	F64Sub      Opcode = 0xA1
	F64Mul      Opcode = 0xA2
	F64Div      Opcode = 0xA3
	F64Min      Opcode = 0xA4
	F64Max      Opcode = 0xA5
	F64Copysign Opcode = 0xA6

	// Conversion
	I32WrapI64        Opcode = 0xA7
	I32TruncF32S      Opcode = 0xA8
	I32TruncF32U      Opcode = 0xA9
	I32TruncF64S      Opcode = 0xAA
	I32TruncF64U      Opcode = 0xAB
	I64ExtendI32S     Opcode = 0xAC
	I64ExtendI32U     Opcode = 0xAD
	I64TruncF32S      Opcode = 0xAE
	I64TruncF32U      Opcode = 0xAF
	I64TruncF64S      Opcode = 0xB0
	I64TruncF64U      Opcode = 0xB1
	F32ConvertI32S    Opcode = 0xB2
	F32ConvertI32U    Opcode = 0xB3
	F32ConvertI64S    Opcode = 0xB4
	F32ConvertI64U    Opcode = 0xB5
	F32DemoteF64      Opcode = 0xB6
	F64ConvertI32S    Opcode = 0xB7
	F64ConvertI32U    Opcode = 0xB8
	F64ConvertI64S    Opcode = 0xB9
	F64ConvertI64U    Opcode = 0xBA
	F64PromoteF32     Opcode = 0xBB
	I32ReinterpretF32 Opcode = 0xBC
	I64ReinterpretF64 Opcode = 0xBD
	F32ReinterpretI32 Opcode = 0xBE
	F64ReinterpretI64 Opcode = 0xBF
	I32Extend8S       Opcode = 0xC0
	I32Extend16S      Opcode = 0xC1
	I64Extend8S       Opcode = 0xC2
	I64Extend16S      Opcode = 0xC3
	I64Extend32S      Opcode = 0xC4

	// Reference
	RefNull   Opcode = 0xD0
	RefIsNull Opcode = 0xD1
	RefFunc   Opcode = 0xD2
)

// Escape bytes selecting the extended code spaces.
const (
	MiscPrefix Opcode = 0xFC
	SIMDPrefix Opcode = 0xFD
)

// Misc is an instruction identifier in the code space reached through MiscPrefix:
// saturating truncation, bulk memory and table operations.
type Misc uint32

const (
	MiscI32TruncSatF32S Misc = 0x00
	MiscI32TruncSatF32U Misc = 0x01
	MiscI32TruncSatF64S Misc = 0x02
	MiscI32TruncSatF64U Misc = 0x03
	MiscI64TruncSatF32S Misc = 0x04
	MiscI64TruncSatF32U Misc = 0x05
	MiscI64TruncSatF64S Misc = 0x06
	MiscI64TruncSatF64U Misc = 0x07
	MiscMemoryInit      Misc = 0x08
	MiscDataDrop        Misc = 0x09
	MiscMemoryCopy      Misc = 0x0A
	MiscMemoryFill      Misc = 0x0B
	MiscTableInit       Misc = 0x0C
	MiscElemDrop        Misc = 0x0D
	MiscTableCopy       Misc = 0x0E
	MiscTableGrow       Misc = 0x0F
	MiscTableSize       Misc = 0x10
	MiscTableFill       Misc = 0x11
)

// SIMD is an instruction identifier in the code space reached through SIMDPrefix.
type SIMD uint32

const (
	SimdV128Load                  SIMD = 0x00
	SimdV128Load8x8S              SIMD = 0x01
	SimdV128Load8x8U              SIMD = 0x02
	SimdV128Load16x4S             SIMD = 0x03
	SimdV128Load16x4U             SIMD = 0x04
	SimdV128Load32x2S             SIMD = 0x05
	SimdV128Load32x2U             SIMD = 0x06
	SimdV128Load8Splat            SIMD = 0x07
	SimdV128Load16Splat           SIMD = 0x08
	SimdV128Load32Splat           SIMD = 0x09
	SimdV128Load64Splat           SIMD = 0x0A
	SimdV128Store                 SIMD = 0x0B
	SimdV128Const                 SIMD = 0x0C
	SimdI8x16Shuffle              SIMD = 0x0D
	SimdI8x16Swizzle              SIMD = 0x0E
	SimdI8x16Splat                SIMD = 0x0F
	SimdI16x8Splat                SIMD = 0x10
	SimdI32x4Splat                SIMD = 0x11
	SimdI64x2Splat                SIMD = 0x12
	SimdF32x4Splat                SIMD = 0x13
	SimdF64x2Splat                SIMD = 0x14
	SimdI8x16ExtractLaneS         SIMD = 0x15
	SimdI8x16ExtractLaneU         SIMD = 0x16
	SimdI8x16ReplaceLane          SIMD = 0x17
	SimdI16x8ExtractLaneS         SIMD = 0x18
	SimdI16x8ExtractLaneU         SIMD = 0x19
	SimdI16x8ReplaceLane          SIMD = 0x1A
	SimdI32x4ExtractLane          SIMD = 0x1B
	SimdI32x4ReplaceLane          SIMD = 0x1C
	SimdI64x2ExtractLane          SIMD = 0x1D
	SimdI64x2ReplaceLane          SIMD = 0x1E
	SimdF32x4ExtractLane          SIMD = 0x1F
	SimdF32x4ReplaceLane          SIMD = 0x20
	SimdF64x2ExtractLane          SIMD = 0x21
	SimdF64x2ReplaceLane          SIMD = 0x22
	SimdI8x16Eq                   SIMD = 0x23
	SimdI8x16Ne                   SIMD = 0x24
	SimdI8x16LtS                  SIMD = 0x25
	SimdI8x16LtU                  SIMD = 0x26
	SimdI8x16GtS                  SIMD = 0x27
	SimdI8x16GtU                  SIMD = 0x28
	SimdI8x16LeS                  SIMD = 0x29
	SimdI8x16LeU                  SIMD = 0x2A
	SimdI8x16GeS                  SIMD = 0x2B
	SimdI8x16GeU                  SIMD = 0x2C
	SimdI16x8Eq                   SIMD = 0x2D
	SimdI16x8Ne                   SIMD = 0x2E
	SimdI16x8LtS                  SIMD = 0x2F
	SimdI16x8LtU                  SIMD = 0x30
	SimdI16x8GtS                  SIMD = 0x31
	SimdI16x8GtU                  SIMD = 0x32
	SimdI16x8LeS                  SIMD = 0x33
	SimdI16x8LeU                  SIMD = 0x34
	SimdI16x8GeS                  SIMD = 0x35
	SimdI16x8GeU                  SIMD = 0x36
	SimdI32x4Eq                   SIMD = 0x37
	SimdI32x4Ne                   SIMD = 0x38
	SimdI32x4LtS                  SIMD = 0x39
	SimdI32x4LtU                  SIMD = 0x3A
	SimdI32x4GtS                  SIMD = 0x3B
	SimdI32x4GtU                  SIMD = 0x3C
	SimdI32x4LeS                  SIMD = 0x3D
	SimdI32x4LeU                  SIMD = 0x3E
	SimdI32x4GeS                  SIMD = 0x3F
	SimdI32x4GeU                  SIMD = 0x40
	SimdF32x4Eq                   SIMD = 0x41
	SimdF32x4Ne                   SIMD = 0x42
	SimdF32x4Lt                   SIMD = 0x43
	SimdF32x4Gt                   SIMD = 0x44
	SimdF32x4Le                   SIMD = 0x45
	SimdF32x4Ge                   SIMD = 0x46
	SimdF64x2Eq                   SIMD = 0x47
	SimdF64x2Ne                   SIMD = 0x48
	SimdF64x2Lt                   SIMD = 0x49
	SimdF64x2Gt                   SIMD = 0x4A
	SimdF64x2Le                   SIMD = 0x4B
	SimdF64x2Ge                   SIMD = 0x4C
	SimdV128Not                   SIMD = 0x4D
	SimdV128And                   SIMD = 0x4E
	SimdV128AndNot                SIMD = 0x4F
	SimdV128Or                    SIMD = 0x50
	SimdV128Xor                   SIMD = 0x51
	SimdV128Bitselect             SIMD = 0x52
	SimdV128AnyTrue               SIMD = 0x53
	SimdV128Load8Lane             SIMD = 0x54
	SimdV128Load16Lane            SIMD = 0x55
	SimdV128Load32Lane            SIMD = 0x56
	SimdV128Load64Lane            SIMD = 0x57
	SimdV128Store8Lane            SIMD = 0x58
	SimdV128Store16Lane           SIMD = 0x59
	SimdV128Store32Lane           SIMD = 0x5A
	SimdV128Store64Lane           SIMD = 0x5B
	SimdV128Load32Zero            SIMD = 0x5C
	SimdV128Load64Zero            SIMD = 0x5D
	SimdF32x4DemoteF64x2Zero      SIMD = 0x5E
	SimdF64x2PromoteLowF32x4      SIMD = 0x5F
	SimdI8x16Abs                  SIMD = 0x60
	SimdI8x16Neg                  SIMD = 0x61
	SimdI8x16Popcnt               SIMD = 0x62
	SimdI8x16AllTrue              SIMD = 0x63
	SimdI8x16Bitmask              SIMD = 0x64
	SimdI8x16NarrowI16x8S         SIMD = 0x65
	SimdI8x16NarrowI16x8U         SIMD = 0x66
	SimdF32x4Ceil                 SIMD = 0x67
	SimdF32x4Floor                SIMD = 0x68
	SimdF32x4Trunc                SIMD = 0x69
	SimdF32x4Nearest              SIMD = 0x6A
	SimdI8x16Shl                  SIMD = 0x6B
	SimdI8x16ShrS                 SIMD = 0x6C
	SimdI8x16ShrU                 SIMD = 0x6D
	SimdI8x16Add                  SIMD = 0x6E
	SimdI8x16AddSatS              SIMD = 0x6F
	SimdI8x16AddSatU              SIMD = 0x70
	SimdI8x16Sub                  SIMD = 0x71
	SimdI8x16SubSatS              SIMD = 0x72
	SimdI8x16SubSatU              SIMD = 0x73
	SimdF64x2Ceil                 SIMD = 0x74
	SimdF64x2Floor                SIMD = 0x75
	SimdI8x16MinS                 SIMD = 0x76
	SimdI8x16MinU                 SIMD = 0x77
	SimdI8x16MaxS                 SIMD = 0x78
	SimdI8x16MaxU                 SIMD = 0x79
	SimdF64x2Trunc                SIMD = 0x7A
	SimdI8x16AvgrU                SIMD = 0x7B
	SimdI16x8ExtAddPairwiseI8x16S SIMD = 0x7C
	SimdI16x8ExtAddPairwiseI8x16U SIMD = 0x7D
	SimdI32x4ExtAddPairwiseI16x8S SIMD = 0x7E
	SimdI32x4ExtAddPairwiseI16x8U SIMD = 0x7F
	SimdI16x8Abs                  SIMD = 0x80
	SimdI16x8Neg                  SIMD = 0x81
	SimdI16x8Q15mulrSatS          SIMD = 0x82
	SimdI16x8AllTrue              SIMD = 0x83
	SimdI16x8Bitmask              SIMD = 0x84
	SimdI16x8NarrowI32x4S         SIMD = 0x85
	SimdI16x8NarrowI32x4U         SIMD = 0x86
	SimdI16x8ExtendLowI8x16S      SIMD = 0x87
	SimdI16x8ExtendHighI8x16S     SIMD = 0x88
	SimdI16x8ExtendLowI8x16U      SIMD = 0x89
	SimdI16x8ExtendHighI8x16U     SIMD = 0x8A
	SimdI16x8Shl                  SIMD = 0x8B
	SimdI16x8ShrS                 SIMD = 0x8C
	SimdI16x8ShrU                 SIMD = 0x8D
	SimdI16x8Add                  SIMD = 0x8E
	SimdI16x8AddSatS              SIMD = 0x8F
	SimdI16x8AddSatU              SIMD = 0x90
	SimdI16x8Sub                  SIMD = 0x91
	SimdI16x8SubSatS              SIMD = 0x92
	SimdI16x8SubSatU              SIMD = 0x93
	SimdF64x2Nearest              SIMD = 0x94
	SimdI16x8Mul                  SIMD = 0x95
	SimdI16x8MinS                 SIMD = 0x96
	SimdI16x8MinU                 SIMD = 0x97
	SimdI16x8MaxS                 SIMD = 0x98
	SimdI16x8MaxU                 SIMD = 0x99
	SimdI16x8AvgrU                SIMD = 0x9B
	SimdI16x8ExtMulLowI8x16S      SIMD = 0x9C
	SimdI16x8ExtMulHighI8x16S     SIMD = 0x9D
	SimdI16x8ExtMulLowI8x16U      SIMD = 0x9E
	SimdI16x8ExtMulHighI8x16U     SIMD = 0x9F
	SimdI32x4Abs                  SIMD = 0xA0
	SimdI32x4Neg                  SIMD = 0xA1
	SimdI32x4AllTrue              SIMD = 0xA3
	SimdI32x4Bitmask              SIMD = 0xA4
	SimdI32x4ExtendLowI16x8S      SIMD = 0xA7
	SimdI32x4ExtendHighI16x8S     SIMD = 0xA8
	SimdI32x4ExtendLowI16x8U      SIMD = 0xA9
	SimdI32x4ExtendHighI16x8U     SIMD = 0xAA
	SimdI32x4Shl                  SIMD = 0xAB
	SimdI32x4ShrS                 SIMD = 0xAC
	SimdI32x4ShrU                 SIMD = 0xAD
	SimdI32x4Add                  SIMD = 0xAE
	SimdI32x4Sub                  SIMD = 0xB1
	SimdI32x4Mul                  SIMD = 0xB5
	SimdI32x4MinS                 SIMD = 0xB6
	SimdI32x4MinU                 SIMD = 0xB7
	SimdI32x4MaxS                 SIMD = 0xB8
	SimdI32x4MaxU                 SIMD = 0xB9
	SimdI32x4DotI16x8S            SIMD = 0xBA
	SimdI32x4ExtMulLowI16x8S      SIMD = 0xBC
	SimdI32x4ExtMulHighI16x8S     SIMD = 0xBD
	SimdI32x4ExtMulLowI16x8U      SIMD = 0xBE
	SimdI32x4ExtMulHighI16x8U     SIMD = 0xBF
	SimdI64x2Abs                  SIMD = 0xC0
	SimdI64x2Neg                  SIMD = 0xC1
	SimdI64x2AllTrue              SIMD = 0xC3
	SimdI64x2Bitmask              SIMD = 0xC4
	SimdI64x2ExtendLowI32x4S      SIMD = 0xC7
	SimdI64x2ExtendHighI32x4S     SIMD = 0xC8
	SimdI64x2ExtendLowI32x4U      SIMD = 0xC9
	SimdI64x2ExtendHighI32x4U     SIMD = 0xCA
	SimdI64x2Shl                  SIMD = 0xCB
	SimdI64x2ShrS                 SIMD = 0xCC
	SimdI64x2ShrU                 SIMD = 0xCD
	SimdI64x2Add                  SIMD = 0xCE
	SimdI64x2Sub                  SIMD = 0xD1
	SimdI64x2Mul                  SIMD = 0xD5
	SimdI64x2Eq                   SIMD = 0xD6
	SimdI64x2Ne                   SIMD = 0xD7
	SimdI64x2LtS                  SIMD = 0xD8
	SimdI64x2GtS                  SIMD = 0xD9
	SimdI64x2LeS                  SIMD = 0xDA
	SimdI64x2GeS                  SIMD = 0xDB
	SimdI64x2ExtMulLowI32x4S      SIMD = 0xDC
	SimdI64x2ExtMulHighI32x4S     SIMD = 0xDD
	SimdI64x2ExtMulLowI32x4U      SIMD = 0xDE
	SimdI64x2ExtMulHighI32x4U     SIMD = 0xDF
	SimdF32x4Abs                  SIMD = 0xE0
	SimdF32x4Neg                  SIMD = 0xE1
	SimdF32x4Sqrt                 SIMD = 0xE3
	SimdF32x4Add                  SIMD = 0xE4
	SimdF32x4Sub                  SIMD = 0xE5
	SimdF32x4Mul                  SIMD = 0xE6
	SimdF32x4Div                  SIMD = 0xE7
	SimdF32x4Min                  SIMD = 0xE8
	SimdF32x4Max                  SIMD = 0xE9
	SimdF32x4Pmin                 SIMD = 0xEA
	SimdF32x4Pmax                 SIMD = 0xEB
	SimdF64x2Abs                  SIMD = 0xEC
	SimdF64x2Neg                  SIMD = 0xED
	SimdF64x2Sqrt                 SIMD = 0xEF
	SimdF64x2Add                  SIMD = 0xF0
	SimdF64x2Sub                  SIMD = 0xF1
	SimdF64x2Mul                  SIMD = 0xF2
	SimdF64x2Div                  SIMD = 0xF3
	SimdF64x2Min                  SIMD = 0xF4
	SimdF64x2Max                  SIMD = 0xF5
	SimdF64x2Pmin                 SIMD = 0xF6
	SimdF64x2Pmax                 SIMD = 0xF7
	SimdI32x4TruncSatF32x4S       SIMD = 0xF8
	SimdI32x4TruncSatF32x4U       SIMD = 0xF9
	SimdF32x4ConvertI32x4S        SIMD = 0xFA
	SimdF32x4ConvertI32x4U        SIMD = 0xFB
	SimdI32x4TruncSatF64x2SZero   SIMD = 0xFC
	SimdI32x4TruncSatF64x2UZero   SIMD = 0xFD
	SimdF64x2ConvertLowI32x4S     SIMD = 0xFE
	SimdF64x2ConvertLowI32x4U     SIMD = 0xFF
)

var primaryTable = [256]Info{
	Unreachable:       {"unreachable", ImmNone},
	Nop:               {"nop", ImmNone},
	Block:             {"block", ImmBlock},
	Loop:              {"loop", ImmBlock},
	If:                {"if", ImmIf},
	Else:              {"else", ImmElse},
	End:               {"end", ImmEnd},
	Br:                {"br", ImmLabel},
	BrIf:              {"br_if", ImmLabel},
	BrTable:           {"br_table", ImmBrTable},
	Return:            {"return", ImmNone},
	Call:              {"call", ImmFunc},
	CallIndirect:      {"call_indirect", ImmCallIndirect},
	Drop:              {"drop", ImmNone},
	Select:            {"select", ImmNone},
	SelectT:           {"select", ImmSelectT},
	LocalGet:          {"local.get", ImmLocal},
	LocalSet:          {"local.set", ImmLocal},
	LocalTee:          {"local.tee", ImmLocal},
	GlobalGet:         {"global.get", ImmGlobal},
	GlobalSet:         {"global.set", ImmGlobal},
	TableGet:          {"table.get", ImmTable},
	TableSet:          {"table.set", ImmTable},
	I32Load:           {"i32.load", ImmMemArg},
	I64Load:           {"i64.load", ImmMemArg},
	F32Load:           {"f32.load", ImmMemArg},
	F64Load:           {"f64.load", ImmMemArg},
	I32Load8S:         {"i32.load8_s", ImmMemArg},
	I32Load8U:         {"i32.load8_u", ImmMemArg},
	I32Load16S:        {"i32.load16_s", ImmMemArg},
	I32Load16U:        {"i32.load16_u", ImmMemArg},
	I64Load8S:         {"i64.load8_s", ImmMemArg},
	I64Load8U:         {"i64.load8_u", ImmMemArg},
	I64Load16S:        {"i64.load16_s", ImmMemArg},
	I64Load16U:        {"i64.load16_u", ImmMemArg},
	I64Load32S:        {"i64.load32_s", ImmMemArg},
	I64Load32U:        {"i64.load32_u", ImmMemArg},
	I32Store:          {"i32.store", ImmMemArg},
	I64Store:          {"i64.store", ImmMemArg},
	F32Store:          {"f32.store", ImmMemArg},
	F64Store:          {"f64.store", ImmMemArg},
	I32Store8:         {"i32.store8", ImmMemArg},
	I32Store16:        {"i32.store16", ImmMemArg},
	I64Store8:         {"i64.store8", ImmMemArg},
	I64Store16:        {"i64.store16", ImmMemArg},
	I64Store32:        {"i64.store32", ImmMemArg},
	MemorySize:        {"memory.size", ImmMemReserved},
	MemoryGrow:        {"memory.grow", ImmMemReserved},
	I32Const:          {"i32.const", ImmI32},
	I64Const:          {"i64.const", ImmI64},
	F32Const:          {"f32.const", ImmF32},
	F64Const:          {"f64.const", ImmF64},
	I32Eqz:            {"i32.eqz", ImmNone},
	I32Eq:             {"i32.eq", ImmNone},
	I32Ne:             {"i32.ne", ImmNone},
	I32LtS:            {"i32.lt_s", ImmNone},
	I32LtU:            {"i32.lt_u", ImmNone},
	I32GtS:            {"i32.gt_s", ImmNone},
	I32GtU:            {"i32.gt_u", ImmNone},
	I32LeS:            {"i32.le_s", ImmNone},
	I32LeU:            {"i32.le_u", ImmNone},
	I32GeS:            {"i32.ge_s", ImmNone},
	I32GeU:            {"i32.ge_u", ImmNone},
	I64Eqz:            {"i64.eqz", ImmNone},
	I64Eq:             {"i64.eq", ImmNone},
	I64Ne:             {"i64.ne", ImmNone},
	I64LtS:            {"i64.lt_s", ImmNone},
	I64LtU:            {"i64.lt_u", ImmNone},
	I64GtS:            {"i64.gt_s", ImmNone},
	I64GtU:            {"i64.gt_u", ImmNone},
	I64LeS:            {"i64.le_s", ImmNone},
	I64LeU:            {"i64.le_u", ImmNone},
	I64GeS:            {"i64.ge_s", ImmNone},
	I64GeU:            {"i64.ge_u", ImmNone},
	F32Eq:             {"f32.eq", ImmNone},
	F32Ne:             {"f32.ne", ImmNone},
	F32Lt:             {"f32.lt", ImmNone},
	F32Gt:             {"f32.gt", ImmNone},
	F32Le:             {"f32.le", ImmNone},
	F32Ge:             {"f32.ge", ImmNone},
	F64Eq:             {"f64.eq", ImmNone},
	F64Ne:             {"f64.ne", ImmNone},
	F64Lt:             {"f64.lt", ImmNone},
	F64Gt:             {"f64.gt", ImmNone},
	F64Le:             {"f64.le", ImmNone},
	F64Ge:             {"f64.ge", ImmNone},
	I32Clz:            {"i32.clz", ImmNone},
	I32Ctz:            {"i32.ctz", ImmNone},
	I32Popcnt:         {"i32.popcnt", ImmNone},
	I32Add:            {"i32.add", ImmNone},
	I32Sub:            {"i32.sub", ImmNone},
	I32Mul:            {"i32.mul", ImmNone},
	I32DivS:           {"i32.div_s", ImmNone},
	I32DivU:           {"i32.div_u", ImmNone},
	I32RemS:           {"i32.rem_s", ImmNone},
	I32RemU:           {"i32.rem_u", ImmNone},
	I32And:            {"i32.and", ImmNone},
	I32Or:             {"i32.or", ImmNone},
	I32Xor:            {"i32.xor", ImmNone},
	I32Shl:            {"i32.shl", ImmNone},
	I32ShrS:           {"i32.shr_s", ImmNone},
	I32ShrU:           {"i32.shr_u", ImmNone},
	I32Rotl:           {"i32.rotl", ImmNone},
	I32Rotr:           {"i32.rotr", ImmNone},
	I64Clz:            {"i64.clz", ImmNone},
	I64Ctz:            {"i64.ctz", ImmNone},
	I64Popcnt:         {"i64.popcnt", ImmNone},
	I64Add:            {"i64.add", ImmNone},
	I64Sub:            {"i64.sub", ImmNone},
	I64Mul:            {"i64.mul", ImmNone},
	I64DivS:           {"i64.div_s", ImmNone},
	I64DivU:           {"i64.div_u", ImmNone},
	I64RemS:           {"i64.rem_s", ImmNone},
	I64RemU:           {"i64.rem_u", ImmNone},
	I64And:            {"i64.and", ImmNone},
	I64Or:             {"i64.or", ImmNone},
	I64Xor:            {"i64.xor", ImmNone},
	I64Shl:            {"i64.shl", ImmNone},
	I64ShrS:           {"i64.shr_s", ImmNone},
	I64ShrU:           {"i64.shr_u", ImmNone},
	I64Rotl:           {"i64.rotl", ImmNone},
	I64Rotr:           {"i64.rotr", ImmNone},
	F32Abs:            {"f32.abs", ImmNone},
	F32Neg:            {"f32.neg", ImmNone},
	F32Ceil:           {"f32.ceil", ImmNone},
	F32Floor:          {"f32.floor", ImmNone},
	F32Trunc:          {"f32.trunc", ImmNone},
	F32Nearest:        {"f32.nearest", ImmNone},
	F32Sqrt:           {"f32.sqrt", ImmNone},
	F32Add:            {"f32.add", ImmNone},
	F32Sub:            {"f32.sub", ImmNone},
	F32Mul:            {"f32.mul", ImmNone},
	F32Div:            {"f32.div", ImmNone},
	F32Min:            {"f32.min", ImmNone},
	F32Max:            {"f32.max", ImmNone},
	F32Copysign:       {"f32.copysign", ImmNone},
	F64Abs:            {"f64.abs", ImmNone},
	F64Neg:            {"f64.neg", ImmNone},
	F64Ceil:           {"f64.ceil", ImmNone},
	F64Floor:          {"f64.floor", ImmNone},
	F64Trunc:          {"f64.trunc", ImmNone},
	F64Nearest:        {"f64.nearest", ImmNone},
	F64Sqrt:           {"f64.sqrt", ImmNone},
	F64Add:            {"f64.add", ImmNone},
	F64Sub:            {"f64.sub", ImmNone},
	F64Mul:            {"f64.mul", ImmNone},
	F64Div:            {"f64.div", ImmNone},
	F64Min:            {"f64.min", ImmNone},
	F64Max:            {"f64.max", ImmNone},
	F64Copysign:       {"f64.copysign", ImmNone},
	I32WrapI64:        {"i32.wrap_i64", ImmNone},
	I32TruncF32S:      {"i32.trunc_f32_s", ImmNone},
	I32TruncF32U:      {"i32.trunc_f32_u", ImmNone},
	I32TruncF64S:      {"i32.trunc_f64_s", ImmNone},
	I32TruncF64U:      {"i32.trunc_f64_u", ImmNone},
	I64ExtendI32S:     {"i64.extend_i32_s", ImmNone},
	I64ExtendI32U:     {"i64.extend_i32_u", ImmNone},
	I64TruncF32S:      {"i64.trunc_f32_s", ImmNone},
	I64TruncF32U:      {"i64.trunc_f32_u", ImmNone},
	I64TruncF64S:      {"i64.trunc_f64_s", ImmNone},
	I64TruncF64U:      {"i64.trunc_f64_u", ImmNone},
	F32ConvertI32S:    {"f32.convert_i32_s", ImmNone},
	F32ConvertI32U:    {"f32.convert_i32_u", ImmNone},
	F32ConvertI64S:    {"f32.convert_i64_s", ImmNone},
	F32ConvertI64U:    {"f32.convert_i64_u", ImmNone},
	F32DemoteF64:      {"f32.demote_f64", ImmNone},
	F64ConvertI32S:    {"f64.convert_i32_s", ImmNone},
	F64ConvertI32U:    {"f64.convert_i32_u", ImmNone},
	F64ConvertI64S:    {"f64.convert_i64_s", ImmNone},
	F64ConvertI64U:    {"f64.convert_i64_u", ImmNone},
	F64PromoteF32:     {"f64.promote_f32", ImmNone},
	I32ReinterpretF32: {"i32.reinterpret_f32", ImmNone},
	I64ReinterpretF64: {"i64.reinterpret_f64", ImmNone},
	F32ReinterpretI32: {"f32.reinterpret_i32", ImmNone},
	F64ReinterpretI64: {"f64.reinterpret_i64", ImmNone},
	I32Extend8S:       {"i32.extend8_s", ImmNone},
	I32Extend16S:      {"i32.extend16_s", ImmNone},
	I64Extend8S:       {"i64.extend8_s", ImmNone},
	I64Extend16S:      {"i64.extend16_s", ImmNone},
	I64Extend32S:      {"i64.extend32_s", ImmNone},
	RefNull:           {"ref.null", ImmRefType},
	RefIsNull:         {"ref.is_null", ImmNone},
	RefFunc:           {"ref.func", ImmFunc},
	MiscPrefix:        {"", ImmPrefix},
	SIMDPrefix:        {"", ImmPrefix},
}

var miscTable = [...]Info{
	MiscI32TruncSatF32S: {"i32.trunc_sat_f32_s", ImmNone},
	MiscI32TruncSatF32U: {"i32.trunc_sat_f32_u", ImmNone},
	MiscI32TruncSatF64S: {"i32.trunc_sat_f64_s", ImmNone},
	MiscI32TruncSatF64U: {"i32.trunc_sat_f64_u", ImmNone},
	MiscI64TruncSatF32S: {"i64.trunc_sat_f32_s", ImmNone},
	MiscI64TruncSatF32U: {"i64.trunc_sat_f32_u", ImmNone},
	MiscI64TruncSatF64S: {"i64.trunc_sat_f64_s", ImmNone},
	MiscI64TruncSatF64U: {"i64.trunc_sat_f64_u", ImmNone},
	MiscMemoryInit:      {"memory.init", ImmMemoryInit},
	MiscDataDrop:        {"data.drop", ImmData},
	MiscMemoryCopy:      {"memory.copy", ImmMemoryCopy},
	MiscMemoryFill:      {"memory.fill", ImmMemReserved},
	MiscTableInit:       {"table.init", ImmTableInit},
	MiscElemDrop:        {"elem.drop", ImmElem},
	MiscTableCopy:       {"table.copy", ImmTableCopy},
	MiscTableGrow:       {"table.grow", ImmTable},
	MiscTableSize:       {"table.size", ImmTable},
	MiscTableFill:       {"table.fill", ImmTable},
}

var simdTable = [256]Info{
	SimdV128Load:                  {"v128.load", ImmMemArg},
	SimdV128Load8x8S:              {"v128.load8x8_s", ImmMemArg},
	SimdV128Load8x8U:              {"v128.load8x8_u", ImmMemArg},
	SimdV128Load16x4S:             {"v128.load16x4_s", ImmMemArg},
	SimdV128Load16x4U:             {"v128.load16x4_u", ImmMemArg},
	SimdV128Load32x2S:             {"v128.load32x2_s", ImmMemArg},
	SimdV128Load32x2U:             {"v128.load32x2_u", ImmMemArg},
	SimdV128Load8Splat:            {"v128.load8_splat", ImmMemArg},
	SimdV128Load16Splat:           {"v128.load16_splat", ImmMemArg},
	SimdV128Load32Splat:           {"v128.load32_splat", ImmMemArg},
	SimdV128Load64Splat:           {"v128.load64_splat", ImmMemArg},
	SimdV128Store:                 {"v128.store", ImmMemArg},
	SimdV128Const:                 {"v128.const", ImmV128},
	SimdI8x16Shuffle:              {"i8x16.shuffle", ImmShuffle},
	SimdI8x16Swizzle:              {"i8x16.swizzle", ImmNone},
	SimdI8x16Splat:                {"i8x16.splat", ImmNone},
	SimdI16x8Splat:                {"i16x8.splat", ImmNone},
	SimdI32x4Splat:                {"i32x4.splat", ImmNone},
	SimdI64x2Splat:                {"i64x2.splat", ImmNone},
	SimdF32x4Splat:                {"f32x4.splat", ImmNone},
	SimdF64x2Splat:                {"f64x2.splat", ImmNone},
	SimdI8x16ExtractLaneS:         {"i8x16.extract_lane_s", ImmLane},
	SimdI8x16ExtractLaneU:         {"i8x16.extract_lane_u", ImmLane},
	SimdI8x16ReplaceLane:          {"i8x16.replace_lane", ImmLane},
	SimdI16x8ExtractLaneS:         {"i16x8.extract_lane_s", ImmLane},
	SimdI16x8ExtractLaneU:         {"i16x8.extract_lane_u", ImmLane},
	SimdI16x8ReplaceLane:          {"i16x8.replace_lane", ImmLane},
	SimdI32x4ExtractLane:          {"i32x4.extract_lane", ImmLane},
	SimdI32x4ReplaceLane:          {"i32x4.replace_lane", ImmLane},
	SimdI64x2ExtractLane:          {"i64x2.extract_lane", ImmLane},
	SimdI64x2ReplaceLane:          {"i64x2.replace_lane", ImmLane},
	SimdF32x4ExtractLane:          {"f32x4.extract_lane", ImmLane},
	SimdF32x4ReplaceLane:          {"f32x4.replace_lane", ImmLane},
	SimdF64x2ExtractLane:          {"f64x2.extract_lane", ImmLane},
	SimdF64x2ReplaceLane:          {"f64x2.replace_lane", ImmLane},
	SimdI8x16Eq:                   {"i8x16.eq", ImmNone},
	SimdI8x16Ne:                   {"i8x16.ne", ImmNone},
	SimdI8x16LtS:                  {"i8x16.lt_s", ImmNone},
	SimdI8x16LtU:                  {"i8x16.lt_u", ImmNone},
	SimdI8x16GtS:                  {"i8x16.gt_s", ImmNone},
	SimdI8x16GtU:                  {"i8x16.gt_u", ImmNone},
	SimdI8x16LeS:                  {"i8x16.le_s", ImmNone},
	SimdI8x16LeU:                  {"i8x16.le_u", ImmNone},
	SimdI8x16GeS:                  {"i8x16.ge_s", ImmNone},
	SimdI8x16GeU:                  {"i8x16.ge_u", ImmNone},
	SimdI16x8Eq:                   {"i16x8.eq", ImmNone},
	SimdI16x8Ne:                   {"i16x8.ne", ImmNone},
	SimdI16x8LtS:                  {"i16x8.lt_s", ImmNone},
	SimdI16x8LtU:                  {"i16x8.lt_u", ImmNone},
	SimdI16x8GtS:                  {"i16x8.gt_s", ImmNone},
	SimdI16x8GtU:                  {"i16x8.gt_u", ImmNone},
	SimdI16x8LeS:                  {"i16x8.le_s", ImmNone},
	SimdI16x8LeU:                  {"i16x8.le_u", ImmNone},
	SimdI16x8GeS:                  {"i16x8.ge_s", ImmNone},
	SimdI16x8GeU:                  {"i16x8.ge_u", ImmNone},
	SimdI32x4Eq:                   {"i32x4.eq", ImmNone},
	SimdI32x4Ne:                   {"i32x4.ne", ImmNone},
	SimdI32x4LtS:                  {"i32x4.lt_s", ImmNone},
	SimdI32x4LtU:                  {"i32x4.lt_u", ImmNone},
	SimdI32x4GtS:                  {"i32x4.gt_s", ImmNone},
	SimdI32x4GtU:                  {"i32x4.gt_u", ImmNone},
	SimdI32x4LeS:                  {"i32x4.le_s", ImmNone},
	SimdI32x4LeU:                  {"i32x4.le_u", ImmNone},
	SimdI32x4GeS:                  {"i32x4.ge_s", ImmNone},
	SimdI32x4GeU:                  {"i32x4.ge_u", ImmNone},
	SimdF32x4Eq:                   {"f32x4.eq", ImmNone},
	SimdF32x4Ne:                   {"f32x4.ne", ImmNone},
	SimdF32x4Lt:                   {"f32x4.lt", ImmNone},
	SimdF32x4Gt:                   {"f32x4.gt", ImmNone},
	SimdF32x4Le:                   {"f32x4.le", ImmNone},
	SimdF32x4Ge:                   {"f32x4.ge", ImmNone},
	SimdF64x2Eq:                   {"f64x2.eq", ImmNone},
	SimdF64x2Ne:                   {"f64x2.ne", ImmNone},
	SimdF64x2Lt:                   {"f64x2.lt", ImmNone},
	SimdF64x2Gt:                   {"f64x2.gt", ImmNone},
	SimdF64x2Le:                   {"f64x2.le", ImmNone},
	SimdF64x2Ge:                   {"f64x2.ge", ImmNone},
	SimdV128Not:                   {"v128.not", ImmNone},
	SimdV128And:                   {"v128.and", ImmNone},
	SimdV128AndNot:                {"v128.andnot", ImmNone},
	SimdV128Or:                    {"v128.or", ImmNone},
	SimdV128Xor:                   {"v128.xor", ImmNone},
	SimdV128Bitselect:             {"v128.bitselect", ImmNone},
	SimdV128AnyTrue:               {"v128.any_true", ImmNone},
	SimdV128Load8Lane:             {"v128.load8_lane", ImmMemArgLane},
	SimdV128Load16Lane:            {"v128.load16_lane", ImmMemArgLane},
	SimdV128Load32Lane:            {"v128.load32_lane", ImmMemArgLane},
	SimdV128Load64Lane:            {"v128.load64_lane", ImmMemArgLane},
	SimdV128Store8Lane:            {"v128.store8_lane", ImmMemArgLane},
	SimdV128Store16Lane:           {"v128.store16_lane", ImmMemArgLane},
	SimdV128Store32Lane:           {"v128.store32_lane", ImmMemArgLane},
	SimdV128Store64Lane:           {"v128.store64_lane", ImmMemArgLane},
	SimdV128Load32Zero:            {"v128.load32_zero", ImmMemArg},
	SimdV128Load64Zero:            {"v128.load64_zero", ImmMemArg},
	SimdF32x4DemoteF64x2Zero:      {"f32x4.demote_f64x2_zero", ImmNone},
	SimdF64x2PromoteLowF32x4:      {"f64x2.promote_low_f32x4", ImmNone},
	SimdI8x16Abs:                  {"i8x16.abs", ImmNone},
	SimdI8x16Neg:                  {"i8x16.neg", ImmNone},
	SimdI8x16Popcnt:               {"i8x16.popcnt", ImmNone},
	SimdI8x16AllTrue:              {"i8x16.all_true", ImmNone},
	SimdI8x16Bitmask:              {"i8x16.bitmask", ImmNone},
	SimdI8x16NarrowI16x8S:         {"i8x16.narrow_i16x8_s", ImmNone},
	SimdI8x16NarrowI16x8U:         {"i8x16.narrow_i16x8_u", ImmNone},
	SimdF32x4Ceil:                 {"f32x4.ceil", ImmNone},
	SimdF32x4Floor:                {"f32x4.floor", ImmNone},
	SimdF32x4Trunc:                {"f32x4.trunc", ImmNone},
	SimdF32x4Nearest:              {"f32x4.nearest", ImmNone},
	SimdI8x16Shl:                  {"i8x16.shl", ImmNone},
	SimdI8x16ShrS:                 {"i8x16.shr_s", ImmNone},
	SimdI8x16ShrU:                 {"i8x16.shr_u", ImmNone},
	SimdI8x16Add:                  {"i8x16.add", ImmNone},
	SimdI8x16AddSatS:              {"i8x16.add_sat_s", ImmNone},
	SimdI8x16AddSatU:              {"i8x16.add_sat_u", ImmNone},
	SimdI8x16Sub:                  {"i8x16.sub", ImmNone},
	SimdI8x16SubSatS:              {"i8x16.sub_sat_s", ImmNone},
	SimdI8x16SubSatU:              {"i8x16.sub_sat_u", ImmNone},
	SimdF64x2Ceil:                 {"f64x2.ceil", ImmNone},
	SimdF64x2Floor:                {"f64x2.floor", ImmNone},
	SimdI8x16MinS:                 {"i8x16.min_s", ImmNone},
	SimdI8x16MinU:                 {"i8x16.min_u", ImmNone},
	SimdI8x16MaxS:                 {"i8x16.max_s", ImmNone},
	SimdI8x16MaxU:                 {"i8x16.max_u", ImmNone},
	SimdF64x2Trunc:                {"f64x2.trunc", ImmNone},
	SimdI8x16AvgrU:                {"i8x16.avgr_u", ImmNone},
	SimdI16x8ExtAddPairwiseI8x16S: {"i16x8.extadd_pairwise_i8x16_s", ImmNone},
	SimdI16x8ExtAddPairwiseI8x16U: {"i16x8.extadd_pairwise_i8x16_u", ImmNone},
	SimdI32x4ExtAddPairwiseI16x8S: {"i32x4.extadd_pairwise_i16x8_s", ImmNone},
	SimdI32x4ExtAddPairwiseI16x8U: {"i32x4.extadd_pairwise_i16x8_u", ImmNone},
	SimdI16x8Abs:                  {"i16x8.abs", ImmNone},
	SimdI16x8Neg:                  {"i16x8.neg", ImmNone},
	SimdI16x8Q15mulrSatS:          {"i16x8.q15mulr_sat_s", ImmNone},
	SimdI16x8AllTrue:              {"i16x8.all_true", ImmNone},
	SimdI16x8Bitmask:              {"i16x8.bitmask", ImmNone},
	SimdI16x8NarrowI32x4S:         {"i16x8.narrow_i32x4_s", ImmNone},
	SimdI16x8NarrowI32x4U:         {"i16x8.narrow_i32x4_u", ImmNone},
	SimdI16x8ExtendLowI8x16S:      {"i16x8.extend_low_i8x16_s", ImmNone},
	SimdI16x8ExtendHighI8x16S:     {"i16x8.extend_high_i8x16_s", ImmNone},
	SimdI16x8ExtendLowI8x16U:      {"i16x8.extend_low_i8x16_u", ImmNone},
	SimdI16x8ExtendHighI8x16U:     {"i16x8.extend_high_i8x16_u", ImmNone},
	SimdI16x8Shl:                  {"i16x8.shl", ImmNone},
	SimdI16x8ShrS:                 {"i16x8.shr_s", ImmNone},
	SimdI16x8ShrU:                 {"i16x8.shr_u", ImmNone},
	SimdI16x8Add:                  {"i16x8.add", ImmNone},
	SimdI16x8AddSatS:              {"i16x8.add_sat_s", ImmNone},
	SimdI16x8AddSatU:              {"i16x8.add_sat_u", ImmNone},
	SimdI16x8Sub:                  {"i16x8.sub", ImmNone},
	SimdI16x8SubSatS:              {"i16x8.sub_sat_s", ImmNone},
	SimdI16x8SubSatU:              {"i16x8.sub_sat_u", ImmNone},
	SimdF64x2Nearest:              {"f64x2.nearest", ImmNone},
	SimdI16x8Mul:                  {"i16x8.mul", ImmNone},
	SimdI16x8MinS:                 {"i16x8.min_s", ImmNone},
	SimdI16x8MinU:                 {"i16x8.min_u", ImmNone},
	SimdI16x8MaxS:                 {"i16x8.max_s", ImmNone},
	SimdI16x8MaxU:                 {"i16x8.max_u", ImmNone},
	SimdI16x8AvgrU:                {"i16x8.avgr_u", ImmNone},
	SimdI16x8ExtMulLowI8x16S:      {"i16x8.extmul_low_i8x16_s", ImmNone},
	SimdI16x8ExtMulHighI8x16S:     {"i16x8.extmul_high_i8x16_s", ImmNone},
	SimdI16x8ExtMulLowI8x16U:      {"i16x8.extmul_low_i8x16_u", ImmNone},
	SimdI16x8ExtMulHighI8x16U:     {"i16x8.extmul_high_i8x16_u", ImmNone},
	SimdI32x4Abs:                  {"i32x4.abs", ImmNone},
	SimdI32x4Neg:                  {"i32x4.neg", ImmNone},
	SimdI32x4AllTrue:              {"i32x4.all_true", ImmNone},
	SimdI32x4Bitmask:              {"i32x4.bitmask", ImmNone},
	SimdI32x4ExtendLowI16x8S:      {"i32x4.extend_low_i16x8_s", ImmNone},
	SimdI32x4ExtendHighI16x8S:     {"i32x4.extend_high_i16x8_s", ImmNone},
	SimdI32x4ExtendLowI16x8U:      {"i32x4.extend_low_i16x8_u", ImmNone},
	SimdI32x4ExtendHighI16x8U:     {"i32x4.extend_high_i16x8_u", ImmNone},
	SimdI32x4Shl:                  {"i32x4.shl", ImmNone},
	SimdI32x4ShrS:                 {"i32x4.shr_s", ImmNone},
	SimdI32x4ShrU:                 {"i32x4.shr_u", ImmNone},
	SimdI32x4Add:                  {"i32x4.add", ImmNone},
	SimdI32x4Sub:                  {"i32x4.sub", ImmNone},
	SimdI32x4Mul:                  {"i32x4.mul", ImmNone},
	SimdI32x4MinS:                 {"i32x4.min_s", ImmNone},
	SimdI32x4MinU:                 {"i32x4.min_u", ImmNone},
	SimdI32x4MaxS:                 {"i32x4.max_s", ImmNone},
	SimdI32x4MaxU:                 {"i32x4.max_u", ImmNone},
	SimdI32x4DotI16x8S:            {"i32x4.dot_i16x8_s", ImmNone},
	SimdI32x4ExtMulLowI16x8S:      {"i32x4.extmul_low_i16x8_s", ImmNone},
	SimdI32x4ExtMulHighI16x8S:     {"i32x4.extmul_high_i16x8_s", ImmNone},
	SimdI32x4ExtMulLowI16x8U:      {"i32x4.extmul_low_i16x8_u", ImmNone},
	SimdI32x4ExtMulHighI16x8U:     {"i32x4.extmul_high_i16x8_u", ImmNone},
	SimdI64x2Abs:                  {"i64x2.abs", ImmNone},
	SimdI64x2Neg:                  {"i64x2.neg", ImmNone},
	SimdI64x2AllTrue:              {"i64x2.all_true", ImmNone},
	SimdI64x2Bitmask:              {"i64x2.bitmask", ImmNone},
	SimdI64x2ExtendLowI32x4S:      {"i64x2.extend_low_i32x4_s", ImmNone},
	SimdI64x2ExtendHighI32x4S:     {"i64x2.extend_high_i32x4_s", ImmNone},
	SimdI64x2ExtendLowI32x4U:      {"i64x2.extend_low_i32x4_u", ImmNone},
	SimdI64x2ExtendHighI32x4U:     {"i64x2.extend_high_i32x4_u", ImmNone},
	SimdI64x2Shl:                  {"i64x2.shl", ImmNone},
	SimdI64x2ShrS:                 {"i64x2.shr_s", ImmNone},
	SimdI64x2ShrU:                 {"i64x2.shr_u", ImmNone},
	SimdI64x2Add:                  {"i64x2.add", ImmNone},
	SimdI64x2Sub:                  {"i64x2.sub", ImmNone},
	SimdI64x2Mul:                  {"i64x2.mul", ImmNone},
	SimdI64x2Eq:                   {"i64x2.eq", ImmNone},
	SimdI64x2Ne:                   {"i64x2.ne", ImmNone},
	SimdI64x2LtS:                  {"i64x2.lt_s", ImmNone},
	SimdI64x2GtS:                  {"i64x2.gt_s", ImmNone},
	SimdI64x2LeS:                  {"i64x2.le_s", ImmNone},
	SimdI64x2GeS:                  {"i64x2.ge_s", ImmNone},
	SimdI64x2ExtMulLowI32x4S:      {"i64x2.extmul_low_i32x4_s", ImmNone},
	SimdI64x2ExtMulHighI32x4S:     {"i64x2.extmul_high_i32x4_s", ImmNone},
	SimdI64x2ExtMulLowI32x4U:      {"i64x2.extmul_low_i32x4_u", ImmNone},
	SimdI64x2ExtMulHighI32x4U:     {"i64x2.extmul_high_i32x4_u", ImmNone},
	SimdF32x4Abs:                  {"f32x4.abs", ImmNone},
	SimdF32x4Neg:                  {"f32x4.neg", ImmNone},
	SimdF32x4Sqrt:                 {"f32x4.sqrt", ImmNone},
	SimdF32x4Add:                  {"f32x4.add", ImmNone},
	SimdF32x4Sub:                  {"f32x4.sub", ImmNone},
	SimdF32x4Mul:                  {"f32x4.mul", ImmNone},
	SimdF32x4Div:                  {"f32x4.div", ImmNone},
	SimdF32x4Min:                  {"f32x4.min", ImmNone},
	SimdF32x4Max:                  {"f32x4.max", ImmNone},
	SimdF32x4Pmin:                 {"f32x4.pmin", ImmNone},
	SimdF32x4Pmax:                 {"f32x4.pmax", ImmNone},
	SimdF64x2Abs:                  {"f64x2.abs", ImmNone},
	SimdF64x2Neg:                  {"f64x2.neg", ImmNone},
	SimdF64x2Sqrt:                 {"f64x2.sqrt", ImmNone},
	SimdF64x2Add:                  {"f64x2.add", ImmNone},
	SimdF64x2Sub:                  {"f64x2.sub", ImmNone},
	SimdF64x2Mul:                  {"f64x2.mul", ImmNone},
	SimdF64x2Div:                  {"f64x2.div", ImmNone},
	SimdF64x2Min:                  {"f64x2.min", ImmNone},
	SimdF64x2Max:                  {"f64x2.max", ImmNone},
	SimdF64x2Pmin:                 {"f64x2.pmin", ImmNone},
	SimdF64x2Pmax:                 {"f64x2.pmax", ImmNone},
	SimdI32x4TruncSatF32x4S:       {"i32x4.trunc_sat_f32x4_s", ImmNone},
	SimdI32x4TruncSatF32x4U:       {"i32x4.trunc_sat_f32x4_u", ImmNone},
	SimdF32x4ConvertI32x4S:        {"f32x4.convert_i32x4_s", ImmNone},
	SimdF32x4ConvertI32x4U:        {"f32x4.convert_i32x4_u", ImmNone},
	SimdI32x4TruncSatF64x2SZero:   {"i32x4.trunc_sat_f64x2_s_zero", ImmNone},
	SimdI32x4TruncSatF64x2UZero:   {"i32x4.trunc_sat_f64x2_u_zero", ImmNone},
	SimdF64x2ConvertLowI32x4S:     {"f64x2.convert_low_i32x4_s", ImmNone},
	SimdF64x2ConvertLowI32x4U:     {"f64x2.convert_low_i32x4_u", ImmNone},
}
