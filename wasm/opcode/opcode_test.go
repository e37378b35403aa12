package opcode

import "testing"

func TestResolvePrimary(t *testing.T) {
	tests := []struct {
		b    byte
		want Opcode
		ok   bool
	}{
		{0x00, Unreachable, true},
		{0x0B, End, true},
		{0x1C, SelectT, true},
		{0x6A, I32Add, true},
		{0xC4, I64Extend32S, true},
		{0xD2, RefFunc, true},
		{0xFC, MiscPrefix, true},
		{0xFD, SIMDPrefix, true},
		{0x06, 0, false},
		{0x12, 0, false},
		{0x27, 0, false},
		{0xC5, 0, false},
		{0xD3, 0, false},
		{0xFE, 0, false},
		{0xFF, 0, false},
	}

	for _, tt := range tests {
		got, ok := Resolve(tt.b)
		if ok != tt.ok {
			t.Errorf("Resolve(0x%02x) ok = %v, want %v", tt.b, ok, tt.ok)
			continue
		}
		if ok && got != tt.want {
			t.Errorf("Resolve(0x%02x) = %v, want %v", tt.b, got, tt.want)
		}
	}
}

func TestResolveExtended(t *testing.T) {
	if op, ok := ResolveMisc(0x0A); !ok || op != MiscMemoryCopy {
		t.Errorf("ResolveMisc(0x0a) = %v, %v", op, ok)
	}
	if _, ok := ResolveMisc(0x12); ok {
		t.Error("ResolveMisc(0x12) should be unassigned")
	}
	if _, ok := ResolveMisc(1 << 20); ok {
		t.Error("ResolveMisc(large) should be unassigned")
	}

	if op, ok := ResolveSIMD(0x0C); !ok || op != SimdV128Const {
		t.Errorf("ResolveSIMD(0x0c) = %v, %v", op, ok)
	}
	for _, code := range []uint32{0x9A, 0xA2, 0xA5, 0xA6, 0xAF, 0xB0, 0xB2, 0xB3, 0xB4, 0xBB, 0xC2, 0xC5, 0xC6, 0xCF, 0xD0, 0xD2, 0xD3, 0xD4, 0xE2, 0xEE, 0x100} {
		if _, ok := ResolveSIMD(code); ok {
			t.Errorf("ResolveSIMD(0x%02x) should be unassigned", code)
		}
	}
}

func TestNamesAndImmediates(t *testing.T) {
	tests := []struct {
		op   Full
		name string
		imm  ImmKind
	}{
		{OneByte(Block), "block", ImmBlock},
		{OneByte(Loop), "loop", ImmBlock},
		{OneByte(If), "if", ImmIf},
		{OneByte(BrTable), "br_table", ImmBrTable},
		{OneByte(CallIndirect), "call_indirect", ImmCallIndirect},
		{OneByte(I32Load8U), "i32.load8_u", ImmMemArg},
		{OneByte(MemoryGrow), "memory.grow", ImmMemReserved},
		{OneByte(I64Const), "i64.const", ImmI64},
		{OneByte(F64Const), "f64.const", ImmF64},
		{OneByte(F32ReinterpretI32), "f32.reinterpret_i32", ImmNone},
		{OneByte(RefNull), "ref.null", ImmRefType},
		{Extended1(MiscI64TruncSatF64U), "i64.trunc_sat_f64_u", ImmNone},
		{Extended1(MiscMemoryInit), "memory.init", ImmMemoryInit},
		{Extended1(MiscTableCopy), "table.copy", ImmTableCopy},
		{Extended1(MiscTableFill), "table.fill", ImmTable},
		{Extended2(SimdV128Load), "v128.load", ImmMemArg},
		{Extended2(SimdI8x16Shuffle), "i8x16.shuffle", ImmShuffle},
		{Extended2(SimdF64x2ReplaceLane), "f64x2.replace_lane", ImmLane},
		{Extended2(SimdV128Store64Lane), "v128.store64_lane", ImmMemArgLane},
		{Extended2(SimdV128Load32Zero), "v128.load32_zero", ImmMemArg},
		{Extended2(SimdI32x4DotI16x8S), "i32x4.dot_i16x8_s", ImmNone},
		{Extended2(SimdF64x2ConvertLowI32x4U), "f64x2.convert_low_i32x4_u", ImmNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.op.String(); got != tt.name {
				t.Errorf("String() = %q, want %q", got, tt.name)
			}
			if got := tt.op.Imm(); got != tt.imm {
				t.Errorf("Imm() = %v, want %v", got, tt.imm)
			}
		})
	}
}

func TestSIMDNumbering(t *testing.T) {
	tests := map[SIMD]uint32{
		SimdV128Load:                  0x00,
		SimdV128Store:                 0x0B,
		SimdI8x16Swizzle:              0x0E,
		SimdF64x2ReplaceLane:          0x22,
		SimdV128AnyTrue:               0x53,
		SimdF64x2PromoteLowF32x4:      0x5F,
		SimdF32x4Ceil:                 0x67,
		SimdF64x2Trunc:                0x7A,
		SimdI16x8Q15mulrSatS:          0x82,
		SimdF64x2Nearest:              0x94,
		SimdI32x4TruncSatF64x2UZero:   0xFD,
		SimdI64x2Eq:                   0xD6,
		SimdI64x2GeS:                  0xDB,
		SimdF32x4Abs:                  0xE0,
		SimdF64x2Pmax:                 0xF7,
		SimdI32x4ExtAddPairwiseI16x8U: 0x7F,
	}
	for op, want := range tests {
		if uint32(op) != want {
			t.Errorf("%v = 0x%02x, want 0x%02x", op, uint32(op), want)
		}
	}
}

func TestUnassignedString(t *testing.T) {
	tests := []struct {
		op   Full
		want string
	}{
		{Full{Space: SpacePrimary, Code: 0x06}, "0x06"},
		{Full{Space: SpaceMisc, Code: 0x20}, "0xfc 0x20"},
		{Full{Space: SpaceSIMD, Code: 0x9a}, "0xfd 0x9a"},
	}
	for _, tt := range tests {
		if tt.op.Valid() {
			t.Errorf("%v should be invalid", tt.op)
		}
		if got := tt.op.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}

func TestFullComparable(t *testing.T) {
	seen := map[Full]bool{}
	seen[OneByte(Nop)] = true
	seen[Extended1(Misc(0x01))] = true

	if !seen[Full{Space: SpacePrimary, Code: 0x01}] {
		t.Error("OneByte(Nop) not found by value")
	}
	if OneByte(Nop) == Extended1(Misc(0x01)) || OneByte(Nop) == Extended2(SIMD(0x01)) {
		t.Error("identifiers in different spaces must differ")
	}
}

func TestLookup(t *testing.T) {
	for _, name := range []string{"i32.add", "memory.copy", "i8x16.shuffle", "ref.func", "end"} {
		f, ok := Lookup(name)
		if !ok {
			t.Errorf("Lookup(%q) failed", name)
			continue
		}
		if f.String() != name {
			t.Errorf("Lookup(%q) = %v", name, f)
		}
	}
	if f, _ := Lookup("select"); f != OneByte(Select) {
		t.Errorf("Lookup(select) = %#v, want untyped select", f)
	}
	if _, ok := Lookup("i32.bogus"); ok {
		t.Error("Lookup should fail for unknown names")
	}
}

func TestAll(t *testing.T) {
	all := All()
	counts := map[Space]int{}
	for _, f := range all {
		if !f.Valid() {
			t.Errorf("All() returned invalid %v", f)
		}
		counts[f.Space]++
	}
	if counts[SpacePrimary] != 183 {
		t.Errorf("primary count = %d, want 183", counts[SpacePrimary])
	}
	if counts[SpaceMisc] != 18 {
		t.Errorf("misc count = %d, want 18", counts[SpaceMisc])
	}
	if counts[SpaceSIMD] != 236 {
		t.Errorf("simd count = %d, want 236", counts[SpaceSIMD])
	}

	all[0] = Full{}
	if All()[0] != OneByte(Unreachable) {
		t.Error("All should return a copy")
	}
}

func TestPrefix(t *testing.T) {
	if got := OneByte(I32Add).Prefix(); got != 0x6A {
		t.Errorf("Prefix = 0x%02x", got)
	}
	if got := Extended1(MiscMemoryFill).Prefix(); got != 0xFC {
		t.Errorf("Prefix = 0x%02x", got)
	}
	if got := Extended2(SimdI8x16Add).Prefix(); got != 0xFD {
		t.Errorf("Prefix = 0x%02x", got)
	}
}
