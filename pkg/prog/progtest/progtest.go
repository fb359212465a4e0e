// Package progtest provides a fixture for driving a prog.Program through
// its fds and asserting on what comes back, grounded on the teacher's
// progtest helper but adapted to run against real os.Pipe-backed file
// descriptors rather than an embedded script-language evaluator, since
// pickle's cmd/pickle has no such evaluator to hook into.
package progtest

import (
	"bytes"
	"io"
	"os"
	"strings"
	"testing"

	"tcl9.dev/pickle/pkg/prog"
)

// Fixture wraps the three pipes a Program's fds are connected to during a
// test.
type Fixture struct {
	t       *testing.T
	stdinW  *os.File
	stdoutR *os.File
	stderrR *os.File
	fds     [3]*os.File
}

// Setup creates a fixture with plain pipes (non-interactive stdin).
func Setup(t *testing.T) *Fixture {
	stdinR, stdinW, err := os.Pipe()
	if err != nil {
		t.Fatal(err)
	}
	stdoutR, stdoutW, err := os.Pipe()
	if err != nil {
		t.Fatal(err)
	}
	stderrR, stderrW, err := os.Pipe()
	if err != nil {
		t.Fatal(err)
	}
	f := &Fixture{t: t, stdinW: stdinW, stdoutR: stdoutR, stderrR: stderrR}
	f.fds = [3]*os.File{stdinR, stdoutW, stderrW}
	return f
}

// Fds returns the fds to pass to prog.Run.
func (f *Fixture) Fds() [3]*os.File { return f.fds }

// Feed writes s to the program's stdin and closes it.
func (f *Fixture) Feed(s string) {
	io.WriteString(f.stdinW, s)
	f.stdinW.Close()
}

// RunAndCollect runs p to completion with args, closing the write ends of
// stdout/stderr so the reads below terminate, and returns the exit code
// plus everything written to stdout and stderr.
func RunAndCollect(t *testing.T, p prog.Program, args []string) (exit int, stdout, stderr string) {
	f := Setup(t)
	f.stdinW.Close()

	var outBuf, errBuf bytes.Buffer
	done := make(chan struct{})
	go func() { io.Copy(&outBuf, f.stdoutR); close(done) }()
	errDone := make(chan struct{})
	go func() { io.Copy(&errBuf, f.stderrR); close(errDone) }()

	exit = prog.Run(f.fds, append([]string{"pickle"}, args...), p)
	f.fds[1].Close()
	f.fds[2].Close()
	<-done
	<-errDone
	return exit, outBuf.String(), errBuf.String()
}

// ContainsLine reports whether s contains line as one full line.
func ContainsLine(s, line string) bool {
	for _, l := range strings.Split(s, "\n") {
		if l == line {
			return true
		}
	}
	return false
}
