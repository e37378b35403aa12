package main

import (
	"encoding/hex"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/afero"
	"github.com/spf13/pflag"

	"github.com/wippyai/wasm-bytecode/errors"
)

// inputFlags select and slice the bytes a command decodes.
type inputFlags struct {
	hex    bool
	offset int
	length int
}

func (f *inputFlags) flagSet() *pflag.FlagSet {
	flags := pflag.NewFlagSet("", pflag.ContinueOnError)
	flags.BoolVarP(&f.hex, "hex", "x", false, "input is hex text (whitespace and 0x prefixes ignored)")
	flags.IntVar(&f.offset, "offset", 0, "skip this many bytes of input before decoding")
	flags.IntVar(&f.length, "length", 0, "decode at most this many bytes, 0 for the rest")
	return flags
}

// read loads path ("-" for stdin), converts hex text when asked and
// applies offset and length.
func (f *inputFlags) read(c *rootCommand, path string) ([]byte, error) {
	var (
		data []byte
		err  error
	)
	if path == "-" {
		data, err = io.ReadAll(c.gs.stdin)
	} else {
		data, err = afero.ReadFile(c.gs.fs, path)
	}
	if err != nil {
		return nil, errors.New(errors.PhaseLoad, errors.KindInvalidData).
			Cause(err).
			Detail("read %s", path).
			Build()
	}

	if f.hex {
		data, err = parseHex(string(data))
		if err != nil {
			return nil, errors.New(errors.PhaseLoad, errors.KindInvalidData).
				Cause(err).
				Detail("%s: invalid hex", path).
				Build()
		}
	}

	if f.offset < 0 || f.offset > len(data) {
		return nil, fmt.Errorf("offset %d outside input of %d bytes", f.offset, len(data))
	}
	data = data[f.offset:]
	if f.length > 0 && f.length < len(data) {
		data = data[:f.length]
	}

	if err := c.cfg.CheckSize(len(data)); err != nil {
		return nil, err
	}
	return data, nil
}

func parseHex(s string) ([]byte, error) {
	var b strings.Builder
	for _, field := range strings.Fields(s) {
		field = strings.TrimPrefix(strings.TrimPrefix(field, "0x"), "0X")
		b.WriteString(strings.TrimSuffix(field, ","))
	}
	return hex.DecodeString(b.String())
}
