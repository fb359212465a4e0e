//go:build !windows

package progtest

import (
	"os"
	"testing"

	"github.com/creack/pty"
)

// InteractiveFixture is a Program's fds when its stdin is a pseudo-terminal,
// so isatty-based REPL detection in cmd/pickle takes the interactive
// branch under test, grounded on the teacher's pty-backed interactive
// fixture.
type InteractiveFixture struct {
	Fds    [3]*os.File
	PTY    *os.File // master end; write here to simulate keystrokes
	Stdout *os.File // read end of the program's stdout pipe
	Stderr *os.File // read end of the program's stderr pipe
}

// Close releases every fd the fixture opened.
func (f *InteractiveFixture) Close() {
	f.Fds[0].Close()
	f.PTY.Close()
	f.Fds[1].Close()
	f.Stdout.Close()
	f.Fds[2].Close()
	f.Stderr.Close()
}

// SetupInteractive opens a pseudo-terminal pair and a stdout/stderr pipe
// pair for driving an interactive Program under test.
func SetupInteractive(t *testing.T) *InteractiveFixture {
	ptmx, tty, err := pty.Open()
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
	return &InteractiveFixture{
		Fds:    [3]*os.File{tty, stdoutW, stderrW},
		PTY:    ptmx,
		Stdout: stdoutR,
		Stderr: stderrR,
	}
}
