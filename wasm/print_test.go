package wasm_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/wippyai/wasm-bytecode/wasm"
	"github.com/wippyai/wasm-bytecode/wasm/opcode"
)

func mustDecode(t *testing.T, code []byte) []wasm.Instruction {
	t.Helper()
	instrs, _, err := wasm.DecodeExpression(code)
	if err != nil {
		t.Fatalf("DecodeExpression: %v", err)
	}
	return instrs
}

func TestFprint(t *testing.T) {
	instrs := mustDecode(t, []byte{
		0x41, 0x01,
		0x04, 0x7f,
		0x02, 0x7f, 0x41, 0x07, 0x0b,
		0x05,
		0x41, 0x03,
		0x0b,
		0x1a,
		0x0b,
	})

	var buf bytes.Buffer
	if err := wasm.Fprint(&buf, instrs); err != nil {
		t.Fatal(err)
	}
	want := strings.Join([]string{
		"i32.const 1",
		"if (result i32)",
		"  block (result i32)",
		"    i32.const 7",
		"  end",
		"else",
		"  i32.const 3",
		"end",
		"drop",
		"",
	}, "\n")
	if buf.String() != want {
		t.Errorf("Fprint:\n%s\nwant:\n%s", buf.String(), want)
	}
}

func TestPrinter_Options(t *testing.T) {
	instrs := mustDecode(t, []byte{0x02, 0x40, 0x01, 0x0b, 0x0b})

	p := &wasm.Printer{
		Indent:   "\t",
		Mnemonic: func(s string) string { return "<" + s + ">" },
	}
	var buf bytes.Buffer
	if err := p.Fprint(&buf, instrs); err != nil {
		t.Fatal(err)
	}
	want := "<block>\n\t<nop>\n<end>\n"
	if buf.String() != want {
		t.Errorf("got %q, want %q", buf.String(), want)
	}
}

type failWriter struct{ n int }

func (w *failWriter) Write(p []byte) (int, error) {
	if w.n == 0 {
		return 0, bytes.ErrTooLarge
	}
	w.n--
	return len(p), nil
}

func TestFprint_WriteError(t *testing.T) {
	instrs := mustDecode(t, []byte{0x01, 0x01, 0x01, 0x0b})
	w := &failWriter{n: 1}
	if err := wasm.Fprint(w, instrs); err != bytes.ErrTooLarge {
		t.Errorf("got %v, want %v", err, bytes.ErrTooLarge)
	}
}

func TestInstruction_String(t *testing.T) {
	tests := []struct {
		code []byte
		want string
	}{
		{[]byte{0x01}, "nop"},
		{[]byte{0x41, 0x7f}, "i32.const -1"},
		{[]byte{0x42, 0x80, 0x01}, "i64.const 128"},
		{[]byte{0x43, 0x00, 0x00, 0xc0, 0x3f}, "f32.const 1.5"},
		{[]byte{0x44, 0, 0, 0, 0, 0, 0, 0xf0, 0x3f}, "f64.const 1"},
		{[]byte{0x0c, 0x02}, "br 2"},
		{[]byte{0x0e, 0x02, 0x00, 0x01, 0x02}, "br_table 0 1 2"},
		{[]byte{0x10, 0x05}, "call 5"},
		{[]byte{0x11, 0x03, 0x00}, "call_indirect 0 (type 3)"},
		{[]byte{0x20, 0x01}, "local.get 1"},
		{[]byte{0x23, 0x00}, "global.get 0"},
		{[]byte{0x25, 0x01}, "table.get 1"},
		{[]byte{0x28, 0x02, 0x00}, "i32.load align=4"},
		{[]byte{0x29, 0x03, 0x10}, "i64.load offset=16 align=8"},
		{[]byte{0x3f, 0x00}, "memory.size"},
		{[]byte{0xd0, 0x6f}, "ref.null extern"},
		{[]byte{0xd2, 0x04}, "ref.func 4"},
		{[]byte{0x1c, 0x02, 0x7f, 0x7e}, "select (result i32 i64)"},
		{[]byte{0xfc, 0x08, 0x01, 0x00}, "memory.init 1"},
		{[]byte{0xfc, 0x09, 0x02}, "data.drop 2"},
		{[]byte{0xfc, 0x0c, 0x03, 0x01}, "table.init 1 3"},
		{[]byte{0xfc, 0x0d, 0x03}, "elem.drop 3"},
		{[]byte{0xfc, 0x0e, 0x01, 0x02}, "table.copy 1 2"},
		{[]byte{0xfd, 0x15, 0x07}, "i8x16.extract_lane_s 7"},
		{[]byte{0xfd, 0x54, 0x00, 0x00, 0x0f}, "v128.load8_lane align=1 15"},
		{[]byte{0x02, 0x40, 0x01, 0x01, 0x0b}, "block ;; 2 instructions"},
		{[]byte{0x04, 0x7f, 0x41, 0x01, 0x05, 0x41, 0x02, 0x0b}, "if (result i32) ;; 2 instructions"},
		{[]byte{0x03, 0x00, 0x0b}, "loop (type 0) ;; 0 instructions"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			in, _, err := wasm.DecodeInstruction(tt.code)
			if err != nil {
				t.Fatalf("DecodeInstruction: %v", err)
			}
			if got := in.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestInstruction_V128String(t *testing.T) {
	code := append([]byte{0xfd, 0x0c}, make([]byte, 16)...)
	code[2] = 0xff
	in, _, err := wasm.DecodeInstruction(code)
	if err != nil {
		t.Fatal(err)
	}
	want := "v128.const i8x16 255" + strings.Repeat(" 0", 15)
	if got := in.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestWalk(t *testing.T) {
	instrs := mustDecode(t, []byte{
		0x02, 0x40,
		0x03, 0x40, 0x01, 0x0b,
		0x0b,
		0x01,
		0x0b,
	})

	type visit struct {
		name  string
		depth int
	}
	var got []visit
	wasm.Walk(instrs, func(in wasm.Instruction, depth int) bool {
		got = append(got, visit{in.Op.String(), depth})
		return true
	})
	want := []visit{{"block", 0}, {"loop", 1}, {"nop", 2}, {"nop", 0}}
	if len(got) != len(want) {
		t.Fatalf("visited %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("visit %d = %v, want %v", i, got[i], want[i])
		}
	}

	if n := wasm.Count(instrs); n != 4 {
		t.Errorf("Count = %d, want 4", n)
	}
	if d := wasm.MaxDepth(instrs); d != 2 {
		t.Errorf("MaxDepth = %d, want 2", d)
	}
}

func TestWalk_Stop(t *testing.T) {
	instrs := mustDecode(t, []byte{0x02, 0x40, 0x01, 0x01, 0x0b, 0x01, 0x0b})
	seen := 0
	wasm.Walk(instrs, func(in wasm.Instruction, _ int) bool {
		seen++
		return in.Op != op(opcode.Nop)
	})
	if seen != 2 {
		t.Errorf("visited %d instructions after stop, want 2", seen)
	}
}

func TestMaxDepth_Flat(t *testing.T) {
	instrs := mustDecode(t, []byte{0x01, 0x01, 0x0b})
	if d := wasm.MaxDepth(instrs); d != 0 {
		t.Errorf("MaxDepth = %d, want 0", d)
	}
	if d := wasm.MaxDepth(nil); d != 0 {
		t.Errorf("MaxDepth(nil) = %d, want 0", d)
	}
}

func TestInstruction_Bodies(t *testing.T) {
	tests := []struct {
		name string
		code []byte
		want int
	}{
		{"nop", []byte{0x01}, 0},
		{"block", []byte{0x02, 0x40, 0x0b}, 1},
		{"if", []byte{0x04, 0x40, 0x0b}, 1},
		{"if else", []byte{0x04, 0x40, 0x05, 0x0b}, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in, _, err := wasm.DecodeInstruction(tt.code)
			if err != nil {
				t.Fatal(err)
			}
			if got := len(in.Bodies()); got != tt.want {
				t.Errorf("len(Bodies()) = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestInstruction_Calls(t *testing.T) {
	call, _, err := wasm.DecodeInstruction([]byte{0x10, 0x2a})
	if err != nil {
		t.Fatal(err)
	}
	if idx, ok := call.GetCallTarget(); !ok || idx != 42 {
		t.Errorf("GetCallTarget() = %d, %v; want 42, true", idx, ok)
	}
	if call.IsIndirectCall() {
		t.Error("call reported as indirect")
	}

	indirect, _, err := wasm.DecodeInstruction([]byte{0x11, 0x01, 0x00})
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := indirect.GetCallTarget(); ok {
		t.Error("call_indirect reported a direct target")
	}
	if !indirect.IsIndirectCall() {
		t.Error("call_indirect not reported as indirect")
	}

	ref, _, err := wasm.DecodeInstruction([]byte{0xd2, 0x01})
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := ref.GetCallTarget(); ok {
		t.Error("ref.func reported a call target")
	}
}
