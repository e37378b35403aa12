// Package engine is the execution scaffold that drives the decoder.
//
// An Executor borrows a function body, keeps a cursor into it and owns one
// operand stack. Each Step decodes the instruction at the cursor and
// advances past it:
//
//	ex, err := engine.New(body, nil)
//	if err != nil {
//	    return err
//	}
//	err = ex.Run(func(in wasm.Instruction, offset int) error {
//	    fmt.Println(offset, in)
//	    return nil
//	})
//
// Instructions are not evaluated; the stack is exposed for callers that
// build evaluation on top of the stepping loop.
//
// # Termination
//
// The body's final end terminates stepping. A body that runs out of bytes
// without it stops cleanly at the end of the buffer. Decode failures carry
// offsets relative to the start of the body, not the current instruction.
//
// # Logging
//
// Steps are logged at debug level and failures at warn through the logger
// installed with SetLogger. The default logger discards everything.
//
// # Thread Safety
//
// An Executor is NOT thread-safe and should be used by a single goroutine.
package engine
