package progtest

import (
	"os"
	"testing"

	"tcl9.dev/pickle/pkg/prog"
)

// Verify output larger than a pipe's buffer doesn't deadlock RunAndCollect.
func TestOutputCaptureDoesNotDeadlock(t *testing.T) {
	exit, stdout, _ := RunAndCollect(t, noisyProgram{}, nil)
	if exit != 0 {
		t.Errorf("exit = %d, want 0", exit)
	}
	if !ContainsLine(stdout, "hello") {
		t.Errorf("stdout does not contain %q", "hello")
	}
}

type noisyProgram struct{}

func (noisyProgram) Run(fds [3]*os.File, f *prog.Flags, args []string) error {
	bytes := []byte{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16}
	for i := 0; i < 128*1024/len(bytes); i++ {
		fds[1].Write(bytes)
	}
	fds[1].WriteString("\nhello\n")
	return nil
}
