package main

import (
	"fmt"
	"os"

	"tcl9.dev/pickle/pkg/config"
	"tcl9.dev/pickle/pkg/host"
	"tcl9.dev/pickle/pkg/prog"
)

// fileProgram loads and evaluates a single file argument, the same
// file-mode branch main.c takes when argv[1] names a script.
type fileProgram struct{}

func (fileProgram) Run(fds [3]*os.File, f *prog.Flags, args []string) error {
	if len(args) != 1 {
		return prog.ErrNotSuitable
	}
	cfg, err := config.Load("")
	if err != nil {
		return err
	}
	src, err := os.ReadFile(args[0])
	if err != nil {
		return err
	}
	i, err := newInterp(cfg, host.Ports{Stdout: fds[1], Stdin: fds[0]}, nil, f)
	if err != nil {
		return err
	}
	i.SetSourceName(args[0])

	_, evalErr := i.Eval(string(src))
	if evalErr != nil {
		fmt.Fprintln(fds[2], evalErr)
		return prog.Exit(1)
	}
	return nil
}
