// Command wasmdec decodes WebAssembly function bodies and prints their
// instruction trees.
package main

import "os"

func main() {
	if err := newRootCommand(newGlobalState()).execute(); err != nil {
		os.Exit(1)
	}
}
