package main

import (
	"os"

	"tcl9.dev/pickle/pkg/langserver"
	"tcl9.dev/pickle/pkg/prog"
)

// lspProgram hands off to the diagnostics server when invoked with -lsp
// (SPEC_FULL.md §4.14).
type lspProgram struct{}

func (lspProgram) Run(fds [3]*os.File, f *prog.Flags, args []string) error {
	if !f.Lsp {
		return prog.ErrNotSuitable
	}
	return langserver.Run(fds)
}
