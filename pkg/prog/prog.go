// Package prog provides the subprogram-chaining scaffold cmd/pickle is
// built on, grounded on the teacher's pkg/prog entry point: command-line
// flags common to every mode, and a Composite that tries each candidate
// subprogram in turn until one claims the invocation (SPEC_FULL.md §4.14).
package prog

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"runtime/pprof"
)

// Flags keeps the command-line flags common to every pickle subprogram.
type Flags struct {
	Help, Version, BuildInfo, JSON, Lsp bool
	CPUProfile                          string
	ArenaAlloc                          bool
	ArenaBlocks, ArenaBlockSize          int
}

func newFlagSet(f *Flags) *flag.FlagSet {
	fs := flag.NewFlagSet("pickle", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.BoolVar(&f.Help, "help", false, "show usage help and quit")
	fs.BoolVar(&f.Version, "version", false, "show version and quit")
	fs.BoolVar(&f.BuildInfo, "buildinfo", false, "show build info and quit")
	fs.BoolVar(&f.JSON, "json", false, "show output in JSON, useful with -buildinfo/-version")
	fs.BoolVar(&f.Lsp, "lsp", false, "run the diagnostics server instead of the shell")
	fs.StringVar(&f.CPUProfile, "cpuprofile", "", "write cpu profile to file")
	fs.BoolVar(&f.ArenaAlloc, "arena-alloc", false, "use a fixed-block arena allocator instead of the default Go allocator")
	fs.IntVar(&f.ArenaBlocks, "arena-blocks", 1024, "number of blocks in the arena, with -arena-alloc")
	fs.IntVar(&f.ArenaBlockSize, "arena-block-size", 2048, "size in bytes of each arena block, with -arena-alloc")

	return fs
}

func usage(out io.Writer, fs *flag.FlagSet) {
	fmt.Fprintln(out, "Usage: pickle [flags] [script]")
	fmt.Fprintln(out, "Supported flags:")
	fs.SetOutput(out)
	fs.PrintDefaults()
}

// Run parses command-line flags and runs the first applicable subprogram,
// returning the process exit status.
func Run(fds [3]*os.File, args []string, p Program) int {
	f := &Flags{}
	fs := newFlagSet(f)
	err := fs.Parse(args[1:])
	if err != nil {
		if err == flag.ErrHelp {
			fmt.Fprintln(fds[2], "flag provided but not defined: -h")
		} else {
			fmt.Fprintln(fds[2], err)
		}
		usage(fds[2], fs)
		return 2
	}

	if f.CPUProfile != "" {
		profFile, err := os.Create(f.CPUProfile)
		if err != nil {
			fmt.Fprintln(fds[2], "Warning: cannot create CPU profile:", err)
			fmt.Fprintln(fds[2], "Continuing without CPU profiling.")
		} else {
			pprof.StartCPUProfile(profFile)
			defer pprof.StopCPUProfile()
		}
	}

	if f.Help {
		usage(fds[1], fs)
		return 0
	}

	err = p.Run(fds, f, fs.Args())
	if err == nil {
		return 0
	}
	if msg := err.Error(); msg != "" {
		fmt.Fprintln(fds[2], msg)
	}
	switch err := err.(type) {
	case badUsageError:
		usage(fds[2], fs)
	case exitError:
		return err.exit
	}
	return 2
}

// Composite returns a Program that tries each of the given programs in
// order, stopping at the first that doesn't return ErrNotSuitable.
func Composite(programs ...Program) Program {
	return compositeProgram(programs)
}

type compositeProgram []Program

func (cp compositeProgram) Run(fds [3]*os.File, f *Flags, args []string) error {
	for _, p := range cp {
		err := p.Run(fds, f, args)
		if err != ErrNotSuitable {
			return err
		}
	}
	return ErrNotSuitable
}

// ErrNotSuitable signals that a Program declines this invocation, letting
// Composite fall through to the next candidate.
var ErrNotSuitable = errors.New("internal error: no suitable subprogram")

// BadUsage returns an error that makes Run print msg, the usage message,
// and exit with status 2.
func BadUsage(msg string) error { return badUsageError{msg} }

type badUsageError struct{ msg string }

func (e badUsageError) Error() string { return e.msg }

// Exit returns an error that makes Run exit with the given status without
// printing anything. Exit(0) returns nil.
func Exit(exit int) error {
	if exit == 0 {
		return nil
	}
	return exitError{exit}
}

type exitError struct{ exit int }

func (e exitError) Error() string { return "" }

// Program is a subprogram cmd/pickle can dispatch to.
type Program interface {
	Run(fds [3]*os.File, f *Flags, args []string) error
}
