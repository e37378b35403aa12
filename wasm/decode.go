package wasm

import (
	"github.com/wippyai/wasm-bytecode/errors"
	"github.com/wippyai/wasm-bytecode/wasm/internal/binary"
	"github.com/wippyai/wasm-bytecode/wasm/opcode"
)

// DefaultMaxDepth bounds block nesting for decoders built without WithMaxDepth.
const DefaultMaxDepth = 1024

// Option configures a Decoder.
type Option func(*Decoder)

// WithMaxDepth bounds how deeply block, loop and if may nest. Exceeding the
// limit fails with KindNestingTooDeep. Zero or a negative value removes the
// bound, leaving recursion limited only by input size.
func WithMaxDepth(n int) Option {
	return func(d *Decoder) {
		d.maxDepth = n
	}
}

// Decoder turns bytecode into instruction trees. A Decoder holds only
// configuration and is safe for concurrent use.
type Decoder struct {
	maxDepth int
}

// NewDecoder creates a Decoder.
func NewDecoder(opts ...Option) *Decoder {
	d := &Decoder{maxDepth: DefaultMaxDepth}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// MaxDepth returns the configured nesting bound, 0 when unbounded.
func (d *Decoder) MaxDepth() int {
	if d.maxDepth < 0 {
		return 0
	}
	return d.maxDepth
}

var defaultDecoder = NewDecoder()

// DecodeInstruction decodes the instruction at the start of buf using the
// default limits.
func DecodeInstruction(buf []byte) (Instruction, []byte, error) {
	return defaultDecoder.DecodeInstruction(buf)
}

// DecodeExpression decodes instructions up to and including the end that
// terminates buf's leading expression, using the default limits.
func DecodeExpression(buf []byte) ([]Instruction, []byte, error) {
	return defaultDecoder.DecodeExpression(buf)
}

// DecodeInstruction decodes one complete instruction at the start of buf and
// returns it with the unread remainder. A structured instruction is decoded
// with its whole body. A bare end or else is not an instruction and fails
// with KindUnexpectedTerminator.
func (d *Decoder) DecodeInstruction(buf []byte) (Instruction, []byte, error) {
	p := d.parser(buf)
	in, err := p.instruction()
	if err != nil {
		return Instruction{}, nil, err
	}
	return in, p.r.Remaining(), nil
}

// DecodeExpression decodes a function body style expression: instructions
// until the terminating end, which is consumed but not returned.
func (d *Decoder) DecodeExpression(buf []byte) ([]Instruction, []byte, error) {
	p := d.parser(buf)
	body, _, err := p.body(false)
	if err != nil {
		return nil, nil, err
	}
	return body, p.r.Remaining(), nil
}

func (d *Decoder) parser(buf []byte) *parser {
	return &parser{r: binary.NewReader(buf), maxDepth: d.MaxDepth()}
}

type parser struct {
	r        *binary.Reader
	depth    int
	maxDepth int
}

// body decodes instructions until end, or else when allowElse is set, and
// returns the terminator it stopped at.
func (p *parser) body(allowElse bool) ([]Instruction, opcode.Opcode, error) {
	var instrs []Instruction
	for {
		b, ok := p.r.Peek()
		if !ok {
			return nil, 0, errors.Incomplete(p.r.Position(), "end of block body")
		}
		switch opcode.Opcode(b) {
		case opcode.End:
			_, _ = p.r.Byte("end")
			return instrs, opcode.End, nil
		case opcode.Else:
			if !allowElse {
				return nil, 0, errors.UnexpectedTerminator(p.r.Position(), "else")
			}
			_, _ = p.r.Byte("else")
			return instrs, opcode.Else, nil
		}

		in, err := p.instruction()
		if err != nil {
			return nil, 0, err
		}
		instrs = append(instrs, in)
	}
}

func (p *parser) opcode() (opcode.Full, opcode.Info, error) {
	start := p.r.Position()
	b, err := p.r.Byte("opcode")
	if err != nil {
		return opcode.Full{}, opcode.Info{}, err
	}

	op, ok := opcode.Resolve(b)
	if !ok {
		return opcode.Full{}, opcode.Info{}, errors.InvalidOpcode(start, "primary", uint32(b))
	}

	var full opcode.Full
	switch op {
	case opcode.MiscPrefix:
		code, err := p.r.U32("misc opcode")
		if err != nil {
			return opcode.Full{}, opcode.Info{}, err
		}
		if _, ok := opcode.ResolveMisc(code); !ok {
			return opcode.Full{}, opcode.Info{}, errors.InvalidOpcode(start, "misc", code)
		}
		full = opcode.Extended1(opcode.Misc(code))
	case opcode.SIMDPrefix:
		code, err := p.r.U32("simd opcode")
		if err != nil {
			return opcode.Full{}, opcode.Info{}, err
		}
		if _, ok := opcode.ResolveSIMD(code); !ok {
			return opcode.Full{}, opcode.Info{}, errors.InvalidOpcode(start, "simd", code)
		}
		full = opcode.Extended2(opcode.SIMD(code))
	default:
		full = opcode.OneByte(op)
	}

	info, _ := full.Info()
	return full, info, nil
}

func (p *parser) instruction() (Instruction, error) {
	start := p.r.Position()
	op, info, err := p.opcode()
	if err != nil {
		return Instruction{}, err
	}

	in := Instruction{Op: op}
	r := p.r

	switch info.Imm {
	case opcode.ImmNone:

	case opcode.ImmEnd, opcode.ImmElse:
		return Instruction{}, errors.UnexpectedTerminator(start, info.Name)

	case opcode.ImmBlock:
		bt, body, err := p.block(start, false)
		if err != nil {
			return Instruction{}, err
		}
		in.Imm = BlockImm{Type: bt, Body: body.then}

	case opcode.ImmIf:
		bt, body, err := p.block(start, true)
		if err != nil {
			return Instruction{}, err
		}
		if body.hasElse {
			in.Imm = IfElseImm{Type: bt, Then: body.then, Else: body.els}
		} else {
			in.Imm = IfImm{Type: bt, Then: body.then}
		}

	case opcode.ImmLabel:
		idx, err := r.U32("label index")
		if err != nil {
			return Instruction{}, err
		}
		in.Imm = BranchImm{LabelIdx: idx}

	case opcode.ImmBrTable:
		count, err := r.U32("br_table length")
		if err != nil {
			return Instruction{}, err
		}
		// Every label takes at least one byte.
		if int64(count) > int64(r.Len()) {
			return Instruction{}, errors.Incomplete(r.Position()+r.Len(), "br_table labels")
		}
		labels := make([]uint32, count)
		for i := range labels {
			if labels[i], err = r.U32("br_table label"); err != nil {
				return Instruction{}, err
			}
		}
		def, err := r.U32("br_table default label")
		if err != nil {
			return Instruction{}, err
		}
		in.Imm = BrTableImm{Labels: labels, Default: def}

	case opcode.ImmFunc:
		idx, err := r.U32("function index")
		if err != nil {
			return Instruction{}, err
		}
		in.Imm = CallImm{FuncIdx: idx}

	case opcode.ImmCallIndirect:
		typeIdx, err := r.U32("type index")
		if err != nil {
			return Instruction{}, err
		}
		tableIdx, err := r.U32("table index")
		if err != nil {
			return Instruction{}, err
		}
		in.Imm = CallIndirectImm{TypeIdx: typeIdx, TableIdx: tableIdx}

	case opcode.ImmLocal:
		idx, err := r.U32("local index")
		if err != nil {
			return Instruction{}, err
		}
		in.Imm = LocalImm{LocalIdx: idx}

	case opcode.ImmGlobal:
		idx, err := r.U32("global index")
		if err != nil {
			return Instruction{}, err
		}
		in.Imm = GlobalImm{GlobalIdx: idx}

	case opcode.ImmTable:
		idx, err := r.U32("table index")
		if err != nil {
			return Instruction{}, err
		}
		in.Imm = TableImm{TableIdx: idx}

	case opcode.ImmMemArg:
		mem, err := p.memArg()
		if err != nil {
			return Instruction{}, err
		}
		in.Imm = mem

	case opcode.ImmMemReserved:
		if err := r.Zero("memory index"); err != nil {
			return Instruction{}, err
		}

	case opcode.ImmMemoryCopy:
		if err := r.Zero("destination memory index"); err != nil {
			return Instruction{}, err
		}
		if err := r.Zero("source memory index"); err != nil {
			return Instruction{}, err
		}

	case opcode.ImmI32:
		v, err := r.S32("i32 constant")
		if err != nil {
			return Instruction{}, err
		}
		in.Imm = I32Imm{Value: v}

	case opcode.ImmI64:
		v, err := r.S64("i64 constant")
		if err != nil {
			return Instruction{}, err
		}
		in.Imm = I64Imm{Value: v}

	case opcode.ImmF32:
		bits, err := r.Fixed32("f32 constant")
		if err != nil {
			return Instruction{}, err
		}
		in.Imm = F32Imm{Bits: bits}

	case opcode.ImmF64:
		bits, err := r.Fixed64("f64 constant")
		if err != nil {
			return Instruction{}, err
		}
		in.Imm = F64Imm{Bits: bits}

	case opcode.ImmSelectT:
		count, err := r.U32("select type count")
		if err != nil {
			return Instruction{}, err
		}
		if int64(count) > int64(r.Len()) {
			return Instruction{}, errors.Incomplete(r.Position()+r.Len(), "select types")
		}
		types := make([]ValueType, count)
		for i := range types {
			at := r.Position()
			b, err := r.Byte("select type")
			if err != nil {
				return Instruction{}, err
			}
			if t := ValueType(b); !t.IsValue() {
				return Instruction{}, errors.InvalidType(at, "value type", b)
			}
			types[i] = ValueType(b)
		}
		in.Imm = SelectTypeImm{Types: types}

	case opcode.ImmRefType:
		at := r.Position()
		b, err := r.Byte("reference type")
		if err != nil {
			return Instruction{}, err
		}
		if !RefType(b).Valid() {
			return Instruction{}, errors.InvalidType(at, "reference type", b)
		}
		in.Imm = RefNullImm{Type: RefType(b)}

	case opcode.ImmMemoryInit:
		idx, err := r.U32("data index")
		if err != nil {
			return Instruction{}, err
		}
		if err := r.Zero("memory index"); err != nil {
			return Instruction{}, err
		}
		in.Imm = DataImm{DataIdx: idx}

	case opcode.ImmData:
		idx, err := r.U32("data index")
		if err != nil {
			return Instruction{}, err
		}
		in.Imm = DataImm{DataIdx: idx}

	case opcode.ImmTableInit:
		elem, err := r.U32("element index")
		if err != nil {
			return Instruction{}, err
		}
		table, err := r.U32("table index")
		if err != nil {
			return Instruction{}, err
		}
		in.Imm = TableInitImm{ElemIdx: elem, TableIdx: table}

	case opcode.ImmElem:
		idx, err := r.U32("element index")
		if err != nil {
			return Instruction{}, err
		}
		in.Imm = ElemImm{ElemIdx: idx}

	case opcode.ImmTableCopy:
		dst, err := r.U32("destination table index")
		if err != nil {
			return Instruction{}, err
		}
		src, err := r.U32("source table index")
		if err != nil {
			return Instruction{}, err
		}
		in.Imm = TableCopyImm{Dst: dst, Src: src}

	case opcode.ImmV128:
		raw, err := r.Bytes(16, "v128 constant")
		if err != nil {
			return Instruction{}, err
		}
		var imm V128Imm
		copy(imm.Bytes[:], raw)
		in.Imm = imm

	case opcode.ImmShuffle:
		raw, err := r.Bytes(16, "shuffle lanes")
		if err != nil {
			return Instruction{}, err
		}
		var imm ShuffleImm
		copy(imm.Lanes[:], raw)
		in.Imm = imm

	case opcode.ImmLane:
		lane, err := r.Byte("lane index")
		if err != nil {
			return Instruction{}, err
		}
		in.Imm = LaneImm{Lane: lane}

	case opcode.ImmMemArgLane:
		mem, err := p.memArg()
		if err != nil {
			return Instruction{}, err
		}
		lane, err := r.Byte("lane index")
		if err != nil {
			return Instruction{}, err
		}
		in.Imm = MemoryLaneImm{Mem: mem, Lane: lane}

	default:
		return Instruction{}, errors.InvalidOpcode(start, op.Space.String(), op.Code)
	}

	return in, nil
}

type blockBody struct {
	then    []Instruction
	els     []Instruction
	hasElse bool
}

// block decodes the block type and body of a structured instruction whose
// opcode started at start.
func (p *parser) block(start int, isIf bool) (BlockType, blockBody, error) {
	var body blockBody

	bt, err := p.blockType()
	if err != nil {
		return BlockType{}, body, err
	}

	p.depth++
	defer func() { p.depth-- }()
	if p.maxDepth > 0 && p.depth > p.maxDepth {
		return BlockType{}, body, errors.NestingTooDeep(start, p.maxDepth)
	}

	then, term, err := p.body(isIf)
	if err != nil {
		return BlockType{}, body, err
	}
	body.then = then

	if term == opcode.Else {
		els, _, err := p.body(false)
		if err != nil {
			return BlockType{}, body, err
		}
		body.els = els
		body.hasElse = true
	}
	return bt, body, nil
}

// blockType decodes a signed 33-bit block type. Negative values are the
// single-byte value type encodings; non-negative values index the type
// section.
func (p *parser) blockType() (BlockType, error) {
	at := p.r.Position()
	v, err := p.r.S33("block type")
	if err != nil {
		return BlockType{}, err
	}
	if v >= 0 {
		return BlockIndex(uint32(v)), nil
	}
	t := ValueType(v & 0x7F)
	if v < -0x40 || !t.IsBlockResult() {
		return BlockType{}, errors.InvalidType(at, "block type", v)
	}
	return BlockValue(t), nil
}

func (p *parser) memArg() (MemoryImm, error) {
	align, err := p.r.U32("alignment")
	if err != nil {
		return MemoryImm{}, err
	}
	offset, err := p.r.U64("offset")
	if err != nil {
		return MemoryImm{}, err
	}
	return MemoryImm{Align: align, Offset: offset}, nil
}
