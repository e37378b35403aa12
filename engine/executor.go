package engine

import (
	"io"

	"go.uber.org/zap"

	"github.com/wippyai/wasm-bytecode/errors"
	"github.com/wippyai/wasm-bytecode/stack"
	"github.com/wippyai/wasm-bytecode/wasm"
	"github.com/wippyai/wasm-bytecode/wasm/opcode"
)

// Config configures an Executor.
type Config struct {
	// Decoder decodes each step. Nil uses wasm.NewDecoder().
	Decoder *wasm.Decoder

	// MaxInputSize rejects longer bodies in New. Zero means no limit.
	MaxInputSize int

	// StackCapacity preallocates operand stack storage in bytes.
	StackCapacity int
}

// Executor steps through a function body one instruction at a time.
type Executor struct {
	dec   *wasm.Decoder
	stack *stack.Stack
	err   error
	code  []byte
	pos   int
	steps int
	ended bool
}

// New creates an Executor over code. The slice is borrowed, not copied,
// and must not be modified while the Executor is in use.
func New(code []byte, cfg *Config) (*Executor, error) {
	if cfg == nil {
		cfg = &Config{}
	}
	if cfg.MaxInputSize > 0 && len(code) > cfg.MaxInputSize {
		return nil, errors.TooLarge(errors.PhaseEngine, len(code), cfg.MaxInputSize)
	}
	dec := cfg.Decoder
	if dec == nil {
		dec = wasm.NewDecoder()
	}
	return &Executor{
		code:  code,
		dec:   dec,
		stack: stack.New(cfg.StackCapacity),
	}, nil
}

// Position returns the offset of the next instruction.
func (e *Executor) Position() int {
	return e.pos
}

// Steps returns the number of instructions decoded so far.
func (e *Executor) Steps() int {
	return e.steps
}

// Stack returns the operand stack owned by the executor.
func (e *Executor) Stack() *stack.Stack {
	return e.stack
}

// Done reports whether the body's end was consumed or the buffer is
// exhausted.
func (e *Executor) Done() bool {
	return e.ended || e.pos >= len(e.code)
}

// Err returns the failure that stopped the executor, if any.
func (e *Executor) Err() error {
	return e.err
}

// Remaining returns the bytes after the cursor.
func (e *Executor) Remaining() []byte {
	return e.code[e.pos:]
}

// Step decodes the instruction at the cursor and advances past it.
// Structured instructions are decoded together with their bodies.
// It returns io.EOF once Done is true. After a decode failure every
// further call returns the same error.
func (e *Executor) Step() (wasm.Instruction, error) {
	if e.err != nil {
		return wasm.Instruction{}, e.err
	}
	if e.Done() {
		return wasm.Instruction{}, io.EOF
	}

	if opcode.Opcode(e.code[e.pos]) == opcode.End {
		e.pos++
		e.ended = true
		Logger().Debug("end of body",
			zap.Int("offset", e.pos-1),
			zap.Int("steps", e.steps),
			zap.Int("trailing", len(e.code)-e.pos))
		return wasm.Instruction{}, io.EOF
	}

	in, rest, err := e.dec.DecodeInstruction(e.code[e.pos:])
	if err != nil {
		e.err = errors.WithOffset(err, e.pos)
		Logger().Warn("decode failed",
			zap.Int("offset", e.pos),
			zap.Int("steps", e.steps),
			zap.Error(e.err))
		return wasm.Instruction{}, e.err
	}

	consumed := len(e.code) - e.pos - len(rest)
	Logger().Debug("step",
		zap.Int("offset", e.pos),
		zap.String("op", in.Op.String()),
		zap.Int("bytes", consumed))
	e.pos += consumed
	e.steps++
	return in, nil
}

// Run steps until Done, calling fn with every instruction and its offset.
// It stops at the first decode failure or the first error from fn.
func (e *Executor) Run(fn func(in wasm.Instruction, offset int) error) error {
	for {
		off := e.pos
		in, err := e.Step()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
		if fn == nil {
			continue
		}
		if err := fn(in, off); err != nil {
			return err
		}
	}
}
