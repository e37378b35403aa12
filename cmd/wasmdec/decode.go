package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/wippyai/wasm-bytecode/engine"
	"github.com/wippyai/wasm-bytecode/wasm"
)

type decodeCmd struct {
	root  *rootCommand
	input inputFlags
	flat  bool
}

func (c *decodeCmd) run(cmd *cobra.Command, args []string) error {
	data, err := c.input.read(c.root, args[0])
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	mnemonic := c.root.mnemonicFunc(out)

	if c.flat {
		return c.runFlat(cmd, data, mnemonic)
	}

	instrs, rest, err := c.root.cfg.NewDecoder().DecodeExpression(data)
	if err != nil {
		return fmt.Errorf("%s: %w", args[0], err)
	}
	p := &wasm.Printer{Mnemonic: mnemonic}
	if err := p.Fprint(out, instrs); err != nil {
		return err
	}
	c.root.logger.Info("decoded",
		zap.String("input", args[0]),
		zap.Int("instructions", wasm.Count(instrs)),
		zap.Int("max_depth", wasm.MaxDepth(instrs)),
		zap.Int("trailing", len(rest)))
	if len(rest) > 0 {
		fmt.Fprintf(cmd.ErrOrStderr(), ";; %d trailing bytes after end\n", len(rest))
	}
	return nil
}

// runFlat steps through the body and prints each top-level instruction
// with its offset.
func (c *decodeCmd) runFlat(cmd *cobra.Command, data []byte, mnemonic func(string) string) error {
	ex, err := engine.New(data, &engine.Config{
		Decoder:      c.root.cfg.NewDecoder(),
		MaxInputSize: c.root.cfg.Decode.MaxInputSize,
	})
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	err = ex.Run(func(in wasm.Instruction, off int) error {
		line := in.String()
		if mnemonic != nil {
			name := in.Op.String()
			line = mnemonic(name) + line[len(name):]
		}
		_, err := fmt.Fprintf(out, "%06x  %s\n", off, line)
		return err
	})
	if err != nil {
		return err
	}
	if rest := ex.Remaining(); len(rest) > 0 {
		fmt.Fprintf(cmd.ErrOrStderr(), ";; %d trailing bytes after end\n", len(rest))
	}
	return nil
}

func getCmdDecode(root *rootCommand) *cobra.Command {
	c := &decodeCmd{root: root}

	cmd := &cobra.Command{
		Use:   "decode <file|->",
		Short: "Print the instruction tree of a function body",
		Long: `Decode a function body expression and print it as indented text.

The input is raw bytecode, or hex text with --hex. The body must end with
its terminating end opcode. With --flat only top-level instructions are
printed, one per line with their byte offsets.`,
		Example: `  wasmdec decode body.bin
  echo "41 05 0b" | wasmdec decode --hex -`,
		Args: cobra.ExactArgs(1),
		RunE: c.run,
	}
	cmd.Flags().AddFlagSet(c.input.flagSet())
	cmd.Flags().BoolVar(&c.flat, "flat", false, "print top-level instructions with offsets")
	return cmd
}
