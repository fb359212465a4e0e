// Command pickle-lsp is the standalone diagnostics server, the same
// server cmd/pickle serves under its -lsp flag, exposed as its own
// binary for editors that expect a dedicated language-server executable
// (SPEC_FULL.md §4.14).
package main

import (
	"fmt"
	"os"

	"tcl9.dev/pickle/pkg/langserver"
)

func main() {
	fds := [3]*os.File{os.Stdin, os.Stdout, os.Stderr}
	if err := langserver.Run(fds); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
