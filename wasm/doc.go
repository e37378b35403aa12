// Package wasm decodes WebAssembly bytecode into instruction trees.
//
// The decoder covers the full WebAssembly 2.0 instruction set: control flow,
// parametric and variable access, memory and table operations, numeric
// operators, reference types, the 0xFC space (saturating truncation, bulk
// memory and tables) and the 0xFD space (128-bit SIMD).
//
// # Decoding
//
// DecodeExpression decodes a function-body style sequence up to its
// terminating end, which is consumed but not returned:
//
//	instrs, rest, err := wasm.DecodeExpression([]byte{0x41, 0x05, 0x0b})
//	// instrs: [i32.const 5], rest: []
//
// DecodeInstruction decodes one instruction. Structured instructions
// (block, loop, if) are decoded together with their bodies, so the result is
// a tree:
//
//	in, rest, err := wasm.DecodeInstruction([]byte{0x02, 0x40, 0x01, 0x0b})
//	body := in.Imm.(wasm.BlockImm).Body // [nop]
//
// Production choice is driven by the leading opcode alone; nothing is
// retried. An if whose body contains else decodes to IfElseImm, otherwise
// to IfImm.
//
// # Errors
//
// Every failure is an *errors.Error in PhaseDecode carrying the offset
// inside the buffer passed to the call. errors.IsIncomplete distinguishes
// input that ended too early from malformed input (errors.IsInvalid):
// unassigned opcodes, unknown types, overlong LEB128 encodings, non-zero
// reserved bytes and stray terminators.
//
// # Limits
//
// A Decoder bounds nesting depth (DefaultMaxDepth unless WithMaxDepth says
// otherwise). Decoding holds no shared state, so one Decoder can serve many
// goroutines.
//
// # Inspection
//
// Walk and Count traverse trees depth first; Fprint renders them as
// indented text:
//
//	block (result i32)
//	  i32.const 7
//	end
package wasm
