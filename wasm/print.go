package wasm

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Printer renders instruction trees in an indented, text-format-like syntax.
type Printer struct {
	// Mnemonic, when set, decorates every instruction name (for example to
	// colour it for a terminal).
	Mnemonic func(string) string

	// Indent is repeated once per nesting level. Defaults to two spaces.
	Indent string
}

// Fprint writes instrs to w with the default Printer.
func Fprint(w io.Writer, instrs []Instruction) error {
	return (&Printer{}).Fprint(w, instrs)
}

// Fprint writes instrs to w, one instruction per line, closing every
// structured instruction with an end line.
func (p *Printer) Fprint(w io.Writer, instrs []Instruction) error {
	pw := &printWriter{w: w, p: p}
	pw.seq(instrs, 0)
	return pw.err
}

type printWriter struct {
	w   io.Writer
	p   *Printer
	err error
}

func (pw *printWriter) line(depth int, s string) {
	if pw.err != nil {
		return
	}
	indent := pw.p.Indent
	if indent == "" {
		indent = "  "
	}
	_, pw.err = io.WriteString(pw.w, strings.Repeat(indent, depth)+s+"\n")
}

func (pw *printWriter) name(s string) string {
	if pw.p.Mnemonic != nil {
		return pw.p.Mnemonic(s)
	}
	return s
}

func (pw *printWriter) seq(instrs []Instruction, depth int) {
	for _, in := range instrs {
		pw.line(depth, pw.name(in.Op.String())+immText(in))
		switch imm := in.Imm.(type) {
		case BlockImm:
			pw.seq(imm.Body, depth+1)
			pw.line(depth, pw.name("end"))
		case IfImm:
			pw.seq(imm.Then, depth+1)
			pw.line(depth, pw.name("end"))
		case IfElseImm:
			pw.seq(imm.Then, depth+1)
			pw.line(depth, pw.name("else"))
			pw.seq(imm.Else, depth+1)
			pw.line(depth, pw.name("end"))
		}
	}
}

// String returns the instruction's mnemonic and immediates on one line.
// Bodies of structured instructions are summarised by instruction count.
func (i Instruction) String() string {
	s := i.Op.String() + immText(i)
	if bodies := i.Bodies(); bodies != nil {
		n := 0
		for _, b := range bodies {
			n += Count(b)
		}
		s += fmt.Sprintf(" ;; %d instructions", n)
	}
	return s
}

func immText(i Instruction) string {
	var b strings.Builder
	sp := func(v ...any) {
		for _, x := range v {
			b.WriteByte(' ')
			fmt.Fprint(&b, x)
		}
	}

	switch imm := i.Imm.(type) {
	case BlockImm:
		if s := imm.Type.String(); s != "" {
			sp(s)
		}
	case IfImm:
		if s := imm.Type.String(); s != "" {
			sp(s)
		}
	case IfElseImm:
		if s := imm.Type.String(); s != "" {
			sp(s)
		}
	case BranchImm:
		sp(imm.LabelIdx)
	case BrTableImm:
		for _, l := range imm.Labels {
			sp(l)
		}
		sp(imm.Default)
	case CallImm:
		sp(imm.FuncIdx)
	case CallIndirectImm:
		sp(imm.TableIdx, fmt.Sprintf("(type %d)", imm.TypeIdx))
	case LocalImm:
		sp(imm.LocalIdx)
	case GlobalImm:
		sp(imm.GlobalIdx)
	case TableImm:
		sp(imm.TableIdx)
	case MemoryImm:
		b.WriteString(memArgText(imm))
	case I32Imm:
		sp(imm.Value)
	case I64Imm:
		sp(imm.Value)
	case F32Imm:
		sp(strconv.FormatFloat(float64(imm.Value()), 'g', -1, 32))
	case F64Imm:
		sp(strconv.FormatFloat(imm.Value(), 'g', -1, 64))
	case RefNullImm:
		sp(imm.Type)
	case SelectTypeImm:
		parts := make([]string, len(imm.Types))
		for n, t := range imm.Types {
			parts[n] = t.String()
		}
		sp("(result " + strings.Join(parts, " ") + ")")
	case DataImm:
		sp(imm.DataIdx)
	case ElemImm:
		sp(imm.ElemIdx)
	case TableInitImm:
		sp(imm.TableIdx, imm.ElemIdx)
	case TableCopyImm:
		sp(imm.Dst, imm.Src)
	case V128Imm:
		b.WriteString(" i8x16")
		for _, x := range imm.Bytes {
			sp(x)
		}
	case ShuffleImm:
		for _, x := range imm.Lanes {
			sp(x)
		}
	case LaneImm:
		sp(imm.Lane)
	case MemoryLaneImm:
		b.WriteString(memArgText(imm.Mem))
		sp(imm.Lane)
	}
	return b.String()
}

func memArgText(m MemoryImm) string {
	var b strings.Builder
	if m.Offset != 0 {
		fmt.Fprintf(&b, " offset=%d", m.Offset)
	}
	if m.Align < 64 {
		fmt.Fprintf(&b, " align=%d", uint64(1)<<m.Align)
	} else {
		fmt.Fprintf(&b, " align=2**%d", m.Align)
	}
	return b.String()
}
