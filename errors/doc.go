// Package errors provides structured error types for the wasm-bytecode library.
//
// Errors are categorized by Phase (where the error occurred) and Kind (error category).
// The Error type carries the byte offset of the failure, the offending value and a
// cause chain.
//
// Use the Builder for structured error construction:
//
//	err := errors.New(errors.PhaseDecode, errors.KindInvalidOpcode).
//		Offset(12).
//		Value(byte(0x06)).
//		Detail("unassigned opcode 0x%02x", 0x06).
//		Build()
//
// Or use convenience constructors for common patterns:
//
//	err := errors.Incomplete(offset, "i32.const immediate")
//	err := errors.Underflow(8, 3)
//
// Decode failures fall into two classes. IsIncomplete reports that the input
// ended before a value or terminator was read, so a streaming caller may retry
// with more bytes. IsInvalid reports every other decode failure.
//
// All errors implement the standard error interface and support errors.Is/As.
package errors
