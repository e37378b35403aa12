package main

import (
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

const (
	colorAuto   = "auto"
	colorAlways = "always"
	colorNever  = "never"
)

// palette colours mnemonics by instruction family.
type palette struct {
	control  lipgloss.Style
	memory   lipgloss.Style
	konst    lipgloss.Style
	vector   lipgloss.Style
	ref      lipgloss.Style
	variable lipgloss.Style
}

func newPalette(r *lipgloss.Renderer) *palette {
	return &palette{
		control:  r.NewStyle().Foreground(lipgloss.Color("#C792EA")).Bold(true),
		memory:   r.NewStyle().Foreground(lipgloss.Color("#82AAFF")),
		konst:    r.NewStyle().Foreground(lipgloss.Color("#98FB98")),
		vector:   r.NewStyle().Foreground(lipgloss.Color("#89DDFF")),
		ref:      r.NewStyle().Foreground(lipgloss.Color("#F78C6C")),
		variable: r.NewStyle().Foreground(lipgloss.Color("#FFCB6B")),
	}
}

var controlOps = map[string]bool{
	"unreachable": true, "nop": true, "block": true, "loop": true, "if": true,
	"else": true, "end": true, "br": true, "br_if": true, "br_table": true,
	"return": true, "call": true, "call_indirect": true,
}

func (p *palette) mnemonic(name string) string {
	switch {
	case controlOps[name]:
		return p.control.Render(name)
	case strings.HasPrefix(name, "v128.") ||
		strings.Contains(name, "x16.") || strings.Contains(name, "x8.") ||
		strings.Contains(name, "x4.") || strings.Contains(name, "x2."):
		return p.vector.Render(name)
	case strings.HasSuffix(name, ".const"):
		return p.konst.Render(name)
	case strings.Contains(name, "load") || strings.Contains(name, "store") ||
		strings.HasPrefix(name, "memory.") || name == "data.drop":
		return p.memory.Render(name)
	case strings.HasPrefix(name, "ref."):
		return p.ref.Render(name)
	case strings.HasPrefix(name, "local.") || strings.HasPrefix(name, "global."):
		return p.variable.Render(name)
	default:
		return name
	}
}

// mnemonicFunc returns the decorator for w under mode, or nil when output
// stays plain.
func (c *rootCommand) mnemonicFunc(w io.Writer) func(string) string {
	switch c.color {
	case colorNever:
		return nil
	case colorAuto:
		if !c.gs.isTTY(w) {
			return nil
		}
	}
	r := lipgloss.NewRenderer(w)
	if c.color == colorAlways {
		r.SetColorProfile(termenv.ANSI256)
	}
	return newPalette(r).mnemonic
}
