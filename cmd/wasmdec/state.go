package main

import (
	"io"
	"os"

	"github.com/spf13/afero"
	"golang.org/x/term"
)

// globalState holds everything a command touches outside its own flags,
// so tests can swap in memory filesystems and buffers.
type globalState struct {
	fs        afero.Fs
	stdin     io.Reader
	stdout    io.Writer
	stderr    io.Writer
	lookupEnv func(string) (string, bool)
	isTTY     func(io.Writer) bool
}

func newGlobalState() *globalState {
	return &globalState{
		fs:        afero.NewOsFs(),
		stdin:     os.Stdin,
		stdout:    os.Stdout,
		stderr:    os.Stderr,
		lookupEnv: os.LookupEnv,
		isTTY:     isTerminal,
	}
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
