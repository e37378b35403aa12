// Package wasmbytecode decodes WebAssembly bytecode into typed instruction
// trees and provides the operand stacks an interpreter builds on.
//
// # Architecture Overview
//
// The library is organized into several packages with distinct responsibilities:
//
//	wasmbytecode/
//	├── wasm/            Instruction decoder, instruction types and text printer
//	│   ├── opcode/      Opcode tables for the primary, 0xFC and 0xFD code spaces
//	│   └── leb128/      Strict LEB128 integer decoding
//	├── stack/           Untyped byte stack and tagged value stack
//	├── engine/          Executor stepping through a body one instruction at a time
//	├── config/          TOML and environment configuration
//	├── errors/          Structured error types for debugging
//	└── cmd/wasmdec/     Command line decoder and interactive inspector
//
// # Quick Start
//
// Decode a function body:
//
//	instrs, rest, err := wasm.DecodeExpression(body)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	wasm.Fprint(os.Stdout, instrs)
//
// Step through it while driving an operand stack:
//
//	ex, err := engine.New(body, nil)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	err = ex.Run(func(in wasm.Instruction, offset int) error {
//	    if imm, ok := in.Imm.(wasm.I32Imm); ok {
//	        stack.Push(ex.Stack(), imm.Value)
//	    }
//	    return nil
//	})
//
// # Errors
//
// Every failure is an *errors.Error with a Phase and Kind. Decode errors
// carry the byte offset of the failure; errors.IsIncomplete separates
// truncated input from malformed input.
//
// # Thread Safety
//
// Decoding holds no shared state and is safe for concurrent use. Stacks
// and Executors are NOT thread-safe and should be used by a single
// goroutine.
package wasmbytecode
