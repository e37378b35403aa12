package wasm_test

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/tetratelabs/wazero"

	"github.com/wippyai/wasm-bytecode/wasm"
	"github.com/wippyai/wasm-bytecode/wasm/internal/binary"
	"github.com/wippyai/wasm-bytecode/wasm/opcode"
)

// Every body below is wrapped in a module and compiled by wazero before it
// is decoded, so the vectors are known to be valid WebAssembly.
func TestDecodeExpression_WazeroValidated(t *testing.T) {
	v128a := [16]byte{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16}
	v128b := [16]byte{0xff, 0xfe, 0xfd, 0xfc, 0xfb, 0xfa, 0xf9, 0xf8, 0xf7, 0xf6, 0xf5, 0xf4, 0xf3, 0xf2, 0xf1, 0xf0}
	lanes := [16]byte{0, 16, 1, 17, 2, 18, 3, 19, 4, 20, 5, 21, 6, 22, 7, 23}

	v128Const := func(b [16]byte) []byte { return append([]byte{0xfd, 0x0c}, b[:]...) }
	cat := func(parts ...[]byte) []byte {
		var out []byte
		for _, p := range parts {
			out = append(out, p...)
		}
		return out
	}
	i32c := func(v int32) wasm.Instruction {
		return wasm.Instruction{Op: op(opcode.I32Const), Imm: wasm.I32Imm{Value: v}}
	}
	empty := wasm.BlockValue(wasm.Empty)

	tests := []struct {
		name string
		fn   binary.Func
		want []wasm.Instruction
	}{
		{
			name: "nop",
			fn:   binary.Func{Body: []byte{0x01, 0x0b}},
			want: []wasm.Instruction{{Op: op(opcode.Nop)}},
		},
		{
			name: "i32.const",
			fn:   binary.Func{Results: []byte{0x7f}, Body: []byte{0x41, 0x05, 0x0b}},
			want: []wasm.Instruction{i32c(5)},
		},
		{
			name: "i32.add",
			fn:   binary.Func{Results: []byte{0x7f}, Body: []byte{0x41, 0x02, 0x41, 0x03, 0x6a, 0x0b}},
			want: []wasm.Instruction{i32c(2), i32c(3), {Op: op(opcode.I32Add)}},
		},
		{
			name: "i64.const -1",
			fn:   binary.Func{Results: []byte{0x7e}, Body: []byte{0x42, 0x7f, 0x0b}},
			want: []wasm.Instruction{{Op: op(opcode.I64Const), Imm: wasm.I64Imm{Value: -1}}},
		},
		{
			name: "f64.const 1.5",
			fn:   binary.Func{Results: []byte{0x7c}, Body: []byte{0x44, 0, 0, 0, 0, 0, 0, 0xf8, 0x3f, 0x0b}},
			want: []wasm.Instruction{{Op: op(opcode.F64Const), Imm: wasm.F64Imm{Bits: 0x3ff8000000000000}}},
		},
		{
			name: "block empty",
			fn:   binary.Func{Body: []byte{0x02, 0x40, 0x01, 0x0b, 0x0b}},
			want: []wasm.Instruction{{Op: op(opcode.Block), Imm: wasm.BlockImm{Type: empty, Body: []wasm.Instruction{{Op: op(opcode.Nop)}}}}},
		},
		{
			name: "nested blocks with results",
			fn:   binary.Func{Results: []byte{0x7f}, Body: []byte{0x02, 0x7f, 0x02, 0x7f, 0x41, 0x07, 0x0b, 0x0b, 0x0b}},
			want: []wasm.Instruction{{
				Op: op(opcode.Block),
				Imm: wasm.BlockImm{Type: wasm.BlockValue(wasm.I32), Body: []wasm.Instruction{{
					Op:  op(opcode.Block),
					Imm: wasm.BlockImm{Type: wasm.BlockValue(wasm.I32), Body: []wasm.Instruction{i32c(7)}},
				}}},
			}},
		},
		{
			name: "loop",
			fn:   binary.Func{Body: []byte{0x03, 0x40, 0x01, 0x0b, 0x0b}},
			want: []wasm.Instruction{{Op: op(opcode.Loop), Imm: wasm.BlockImm{Type: empty, Body: []wasm.Instruction{{Op: op(opcode.Nop)}}}}},
		},
		{
			name: "if else",
			fn:   binary.Func{Results: []byte{0x7f}, Body: []byte{0x41, 0x01, 0x04, 0x7f, 0x41, 0x02, 0x05, 0x41, 0x03, 0x0b, 0x0b}},
			want: []wasm.Instruction{
				i32c(1),
				{Op: op(opcode.If), Imm: wasm.IfElseImm{
					Type: wasm.BlockValue(wasm.I32),
					Then: []wasm.Instruction{i32c(2)},
					Else: []wasm.Instruction{i32c(3)},
				}},
			},
		},
		{
			name: "if without else",
			fn:   binary.Func{Body: []byte{0x41, 0x00, 0x04, 0x40, 0x01, 0x0b, 0x0b}},
			want: []wasm.Instruction{
				i32c(0),
				{Op: op(opcode.If), Imm: wasm.IfImm{Type: empty, Then: []wasm.Instruction{{Op: op(opcode.Nop)}}}},
			},
		},
		{
			name: "br_table",
			fn:   binary.Func{Body: []byte{0x02, 0x40, 0x41, 0x00, 0x0e, 0x01, 0x00, 0x00, 0x0b, 0x0b}},
			want: []wasm.Instruction{{Op: op(opcode.Block), Imm: wasm.BlockImm{Type: empty, Body: []wasm.Instruction{
				i32c(0),
				{Op: op(opcode.BrTable), Imm: wasm.BrTableImm{Labels: []uint32{0}, Default: 0}},
			}}}},
		},
		{
			name: "locals",
			fn:   binary.Func{Results: []byte{0x7f}, Locals: []byte{0x7f}, Body: []byte{0x20, 0x00, 0x22, 0x00, 0x0b}},
			want: []wasm.Instruction{
				{Op: op(opcode.LocalGet), Imm: wasm.LocalImm{LocalIdx: 0}},
				{Op: op(opcode.LocalTee), Imm: wasm.LocalImm{LocalIdx: 0}},
			},
		},
		{
			name: "typed select",
			fn:   binary.Func{Results: []byte{0x7f}, Body: []byte{0x41, 0x01, 0x41, 0x02, 0x41, 0x00, 0x1c, 0x01, 0x7f, 0x0b}},
			want: []wasm.Instruction{
				i32c(1), i32c(2), i32c(0),
				{Op: op(opcode.SelectT), Imm: wasm.SelectTypeImm{Types: []wasm.ValueType{wasm.I32}}},
			},
		},
		{
			name: "ref.null is_null",
			fn:   binary.Func{Results: []byte{0x7f}, Body: []byte{0xd0, 0x70, 0xd1, 0x0b}},
			want: []wasm.Instruction{
				{Op: op(opcode.RefNull), Imm: wasm.RefNullImm{Type: wasm.RefFunc}},
				{Op: op(opcode.RefIsNull)},
			},
		},
		{
			name: "call self",
			fn:   binary.Func{Body: []byte{0x10, 0x00, 0x0b}},
			want: []wasm.Instruction{{Op: op(opcode.Call), Imm: wasm.CallImm{FuncIdx: 0}}},
		},
		{
			name: "trunc_sat",
			fn:   binary.Func{Results: []byte{0x7f}, Body: []byte{0x43, 0x00, 0x00, 0x80, 0x3f, 0xfc, 0x00, 0x0b}},
			want: []wasm.Instruction{
				{Op: op(opcode.F32Const), Imm: wasm.F32Imm{Bits: 0x3f800000}},
				{Op: misc(opcode.MiscI32TruncSatF32S)},
			},
		},
		{
			name: "load and store",
			fn: binary.Func{Memory: true, Results: []byte{0x7f}, Body: []byte{
				0x41, 0x00, 0x41, 0x2a, 0x36, 0x02, 0x04,
				0x41, 0x00, 0x28, 0x02, 0x04,
				0x0b,
			}},
			want: []wasm.Instruction{
				i32c(0), i32c(42),
				{Op: op(opcode.I32Store), Imm: wasm.MemoryImm{Align: 2, Offset: 4}},
				i32c(0),
				{Op: op(opcode.I32Load), Imm: wasm.MemoryImm{Align: 2, Offset: 4}},
			},
		},
		{
			name: "memory.size and grow",
			fn:   binary.Func{Memory: true, Results: []byte{0x7f}, Body: []byte{0x3f, 0x00, 0x40, 0x00, 0x0b}},
			want: []wasm.Instruction{{Op: op(opcode.MemorySize)}, {Op: op(opcode.MemoryGrow)}},
		},
		{
			name: "bulk memory",
			fn: binary.Func{Memory: true, Body: []byte{
				0x41, 0x00, 0x41, 0x00, 0x41, 0x00, 0xfc, 0x0b, 0x00,
				0x41, 0x00, 0x41, 0x00, 0x41, 0x00, 0xfc, 0x0a, 0x00, 0x00,
				0x0b,
			}},
			want: []wasm.Instruction{
				i32c(0), i32c(0), i32c(0), {Op: misc(opcode.MiscMemoryFill)},
				i32c(0), i32c(0), i32c(0), {Op: misc(opcode.MiscMemoryCopy)},
			},
		},
		{
			name: "v128 extract lane",
			fn:   binary.Func{Results: []byte{0x7f}, Body: cat(v128Const(v128a), []byte{0xfd, 0x16, 0x03, 0x0b})},
			want: []wasm.Instruction{
				{Op: simd(opcode.SimdV128Const), Imm: wasm.V128Imm{Bytes: v128a}},
				{Op: simd(opcode.SimdI8x16ExtractLaneU), Imm: wasm.LaneImm{Lane: 3}},
			},
		},
		{
			name: "shuffle",
			fn:   binary.Func{Results: []byte{0x7b}, Body: cat(v128Const(v128a), v128Const(v128b), []byte{0xfd, 0x0d}, lanes[:], []byte{0x0b})},
			want: []wasm.Instruction{
				{Op: simd(opcode.SimdV128Const), Imm: wasm.V128Imm{Bytes: v128a}},
				{Op: simd(opcode.SimdV128Const), Imm: wasm.V128Imm{Bytes: v128b}},
				{Op: simd(opcode.SimdI8x16Shuffle), Imm: wasm.ShuffleImm{Lanes: lanes}},
			},
		},
		{
			name: "f32x4.abs",
			fn:   binary.Func{Results: []byte{0x7b}, Body: cat(v128Const(v128a), []byte{0xfd, 0xe0, 0x01, 0x0b})},
			want: []wasm.Instruction{
				{Op: simd(opcode.SimdV128Const), Imm: wasm.V128Imm{Bytes: v128a}},
				{Op: simd(opcode.SimdF32x4Abs)},
			},
		},
		{
			name: "i64x2.eq",
			fn:   binary.Func{Results: []byte{0x7b}, Body: cat(v128Const(v128a), v128Const(v128b), []byte{0xfd, 0xd6, 0x01, 0x0b})},
			want: []wasm.Instruction{
				{Op: simd(opcode.SimdV128Const), Imm: wasm.V128Imm{Bytes: v128a}},
				{Op: simd(opcode.SimdV128Const), Imm: wasm.V128Imm{Bytes: v128b}},
				{Op: simd(opcode.SimdI64x2Eq)},
			},
		},
		{
			name: "v128 lane load",
			fn:   binary.Func{Memory: true, Results: []byte{0x7b}, Body: cat([]byte{0x41, 0x00}, v128Const(v128a), []byte{0xfd, 0x54, 0x00, 0x00, 0x01, 0x0b})},
			want: []wasm.Instruction{
				i32c(0),
				{Op: simd(opcode.SimdV128Const), Imm: wasm.V128Imm{Bytes: v128a}},
				{Op: simd(opcode.SimdV128Load8Lane), Imm: wasm.MemoryLaneImm{Lane: 1}},
			},
		},
	}

	ctx := context.Background()
	rt := wazero.NewRuntime(ctx)
	defer rt.Close(ctx)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			compiled, err := rt.CompileModule(ctx, binary.Module(tt.fn))
			if err != nil {
				t.Fatalf("wazero rejected test vector: %v", err)
			}
			defer compiled.Close(ctx)

			got, rest, err := wasm.DecodeExpression(tt.fn.Body)
			if err != nil {
				t.Fatalf("DecodeExpression: %v", err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("instructions (-want +got):\n%s", diff)
			}
			if len(rest) != 0 {
				t.Errorf("left %d bytes unread", len(rest))
			}
		})
	}
}
