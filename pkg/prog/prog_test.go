package prog_test

import (
	"os"
	"testing"

	"tcl9.dev/pickle/pkg/prog"
	"tcl9.dev/pickle/pkg/prog/progtest"
)

type stubProgram struct {
	err error
}

func (p stubProgram) Run(fds [3]*os.File, f *prog.Flags, args []string) error {
	return p.err
}

func TestRunReturnsZeroOnSuccess(t *testing.T) {
	exit, _, _ := progtest.RunAndCollect(t, stubProgram{}, nil)
	if exit != 0 {
		t.Errorf("exit = %d, want 0", exit)
	}
}

func TestRunPrintsErrorAndReturnsNonZero(t *testing.T) {
	exit, _, stderr := progtest.RunAndCollect(t, stubProgram{err: prog.BadUsage("bad usage")}, nil)
	if exit != 2 {
		t.Errorf("exit = %d, want 2", exit)
	}
	if !progtest.ContainsLine(stderr, "bad usage") {
		t.Errorf("stderr = %q, want a line \"bad usage\"", stderr)
	}
}

func TestExitCarriesStatusWithoutPrinting(t *testing.T) {
	exit, _, stderr := progtest.RunAndCollect(t, stubProgram{err: prog.Exit(3)}, nil)
	if exit != 3 {
		t.Errorf("exit = %d, want 3", exit)
	}
	if stderr != "" {
		t.Errorf("stderr = %q, want empty", stderr)
	}
}

func TestExitZeroIsSuccess(t *testing.T) {
	if prog.Exit(0) != nil {
		t.Errorf("Exit(0) should be nil")
	}
}

func TestCompositeFallsThroughNotSuitable(t *testing.T) {
	called := false
	p := prog.Composite(
		notSuitableProgram{},
		markingProgram{&called},
	)
	exit, _, _ := progtest.RunAndCollect(t, p, nil)
	if exit != 0 || !called {
		t.Errorf("exit=%d called=%v, want 0/true", exit, called)
	}
}

type notSuitableProgram struct{}

func (notSuitableProgram) Run(fds [3]*os.File, f *prog.Flags, args []string) error {
	return prog.ErrNotSuitable
}

type markingProgram struct{ called *bool }

func (p markingProgram) Run(fds [3]*os.File, f *prog.Flags, args []string) error {
	*p.called = true
	return nil
}

func TestHelpFlagPrintsUsageAndExitsZero(t *testing.T) {
	exit, stdout, _ := progtest.RunAndCollect(t, stubProgram{}, []string{"-help"})
	if exit != 0 {
		t.Errorf("exit = %d, want 0", exit)
	}
	if !progtest.ContainsLine(stdout, "Usage: pickle [flags] [script]") {
		t.Errorf("stdout = %q, want usage banner", stdout)
	}
}
