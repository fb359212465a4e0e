package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"tcl9.dev/pickle/pkg/config"
	"tcl9.dev/pickle/pkg/host"
	"tcl9.dev/pickle/pkg/sys"

	"tcl9.dev/pickle/pkg/prog"
)

// shellProgram is the catch-all subprogram: an interactive REPL when
// stdin is a terminal, a one-shot batch evaluation of all of stdin
// otherwise (SPEC_FULL.md §4.14).
type shellProgram struct{}

func (shellProgram) Run(fds [3]*os.File, f *prog.Flags, args []string) error {
	if len(args) != 0 {
		return prog.ErrNotSuitable
	}
	cfg, err := config.Load("")
	if err != nil {
		return err
	}
	if sys.IsATTY(fds[0].Fd()) {
		return runInteractive(fds, cfg, f)
	}
	return runBatch(fds, cfg, f)
}

func runBatch(fds [3]*os.File, cfg *config.Config, f *prog.Flags) error {
	src, err := io.ReadAll(fds[0])
	if err != nil {
		return err
	}
	i, err := newInterp(cfg, host.Ports{Stdout: fds[1], Stdin: fds[0]}, nil, f)
	if err != nil {
		return err
	}
	i.SetSourceName("<stdin>")
	if _, evalErr := i.Eval(string(src)); evalErr != nil {
		fmt.Fprintln(fds[2], evalErr)
		return prog.Exit(1)
	}
	return nil
}

// runInteractive is cmd/pickle's REPL: one interp.Eval per line, a prompt
// from config, line-by-line history persistence, and a SIGINT handler
// that reprompts rather than killing the process.
func runInteractive(fds [3]*os.File, cfg *config.Config, f *prog.Flags) error {
	hist := openHistory(cfg)
	if hist != nil {
		defer hist.Close()
	}
	i, err := newInterp(cfg, host.Ports{Stdout: fds[1], Stdin: fds[0]}, hist, f)
	if err != nil {
		return err
	}
	i.SetSourceName("<stdin>")

	sigCh := sys.NotifySignals()
	defer signalStop(sigCh)

	reader := bufio.NewReader(fds[0])
	lines := make(chan string)
	errs := make(chan error, 1)
	go readLines(reader, lines, errs)

	for {
		fmt.Fprint(fds[1], cfg.Prompt)
		line, ok := waitForLine(sigCh, lines, errs, fds)
		if !ok {
			fmt.Fprintln(fds[1])
			return nil
		}
		if line == "" {
			continue
		}
		code, evalErr := i.Eval(line)
		if evalErr != nil {
			fmt.Fprintln(fds[2], evalErr)
		} else if i.Result() != "" {
			fmt.Fprintln(fds[1], i.Result())
		}
		if hist != nil {
			hist.Append(line, int(code), i.Result())
		}
	}
}

func readLines(r *bufio.Reader, lines chan<- string, errs chan<- error) {
	for {
		line, err := r.ReadString('\n')
		if err != nil {
			if line != "" {
				lines <- trimNewline(line)
			}
			errs <- err
			return
		}
		lines <- trimNewline(line)
	}
}

func trimNewline(s string) string {
	for len(s) > 0 && (s[len(s)-1] == '\n' || s[len(s)-1] == '\r') {
		s = s[:len(s)-1]
	}
	return s
}

// waitForLine blocks for the next input line, a read error (EOF), or a
// SIGINT, in which case it reports the interrupt and keeps waiting rather
// than letting the default disposition kill the process.
func waitForLine(sigCh <-chan os.Signal, lines <-chan string, errs <-chan error, fds [3]*os.File) (string, bool) {
	for {
		select {
		case line := <-lines:
			return line, true
		case <-errs:
			return "", false
		case sig := <-sigCh:
			if sig == syscall.SIGINT {
				fmt.Fprintln(fds[1])
				continue
			}
		}
	}
}

func signalStop(ch chan os.Signal) {
	// sys.NotifySignals hands back a channel registered with signal.Notify
	// for every signal; unregister it so delivery stops once the REPL exits.
	signal.Stop(ch)
}
