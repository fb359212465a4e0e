// Command pickle is the standalone pickle interpreter: an interactive
// REPL, a batch-file runner, and (via -lsp) the diagnostics server,
// chained together the way cmd/elvish chains its own subprograms
// (SPEC_FULL.md §4.14).
package main

import (
	"os"

	"tcl9.dev/pickle/pkg/prog"
)

func main() {
	os.Exit(prog.Run(
		[3]*os.File{os.Stdin, os.Stdout, os.Stderr},
		os.Args,
		prog.Composite(
			prog.VersionProgram{},
			prog.BuildInfoProgram{},
			lspProgram{},
			fileProgram{},
			shellProgram{},
		),
	))
}
