package main

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/wippyai/wasm-bytecode/wasm/opcode"
)

type opcodesCmd struct {
	root  *rootCommand
	space string
	match string
}

func (c *opcodesCmd) run(cmd *cobra.Command, _ []string) error {
	var space opcode.Space
	switch c.space {
	case "":
	case "primary":
		space = opcode.SpacePrimary
	case "misc":
		space = opcode.SpaceMisc
	case "simd":
		space = opcode.SpaceSIMD
	default:
		return fmt.Errorf("invalid --space %q: want primary, misc or simd", c.space)
	}

	out := cmd.OutOrStdout()
	mnemonic := c.root.mnemonicFunc(out)
	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	for _, op := range opcode.All() {
		if c.space != "" && op.Space != space {
			continue
		}
		name := op.Name()
		if c.match != "" && !strings.Contains(name, c.match) {
			continue
		}
		if mnemonic != nil {
			name = mnemonic(name)
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\n", encoding(op), op.Imm(), name)
	}
	return tw.Flush()
}

func encoding(op opcode.Full) string {
	if op.Space == opcode.SpacePrimary {
		return fmt.Sprintf("0x%02x", op.Code)
	}
	return fmt.Sprintf("0x%02x %d", op.Prefix(), op.Code)
}

func getCmdOpcodes(root *rootCommand) *cobra.Command {
	c := &opcodesCmd{root: root}

	cmd := &cobra.Command{
		Use:   "opcodes",
		Short: "List every assigned opcode",
		Long:  "List the encoding, name and immediate kind of every assigned opcode.",
		Args:  cobra.NoArgs,
		RunE:  c.run,
	}
	cmd.Flags().StringVar(&c.space, "space", "", "only list one code space: primary, misc or simd")
	cmd.Flags().StringVar(&c.match, "match", "", "only list names containing this text")
	return cmd
}
