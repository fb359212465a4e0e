// Package host installs the OS-facing command library described by
// SPEC_FULL.md §4.9 against an interpreter core. pkg/interp never imports
// os, os/exec, or net; every bit of ambient authority a running pickle
// program can exercise is registered here, through the same Register call
// any other embedder would use.
package host

import (
	"bufio"
	"fmt"
	"io"
	"math/rand"
	"os"
	"os/exec"
	"time"

	"tcl9.dev/pickle/pkg/interp"
)

// Ports is the set of I/O endpoints and hooks a host binds. A nil Exit
// defaults to os.Exit; a nil Rand defaults to a process-seeded source.
type Ports struct {
	Stdout io.Writer
	Stdin  io.Reader
	Exit   func(code int)
	Rand   *rand.Rand
}

// DefaultPorts returns the Ports a standalone binary normally wants: the
// process's own stdout/stdin, os.Exit, and a time-seeded random source.
func DefaultPorts() Ports {
	return Ports{
		Stdout: os.Stdout,
		Stdin:  os.Stdin,
		Exit:   os.Exit,
		Rand:   rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

type host struct {
	ports  Ports
	stdin  *bufio.Reader
}

// Install registers every binding of SPEC_FULL.md §4.9 against i.
func Install(i *interp.Interp, ports Ports) error {
	if ports.Exit == nil {
		ports.Exit = os.Exit
	}
	if ports.Rand == nil {
		ports.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	h := &host{ports: ports}
	if ports.Stdin != nil {
		h.stdin = bufio.NewReader(ports.Stdin)
	}

	binds := []struct {
		name string
		fn   interp.CommandFunc
	}{
		{"puts", h.cmdPuts},
		{"gets", h.cmdGets},
		{"system", h.cmdSystem},
		{"exit", h.cmdExit},
		{"getenv", h.cmdGetenv},
		{"rand", h.cmdRand},
		{"clock", h.cmdClock},
	}
	for _, b := range binds {
		if err := i.Register(b.name, b.fn, nil); err != nil {
			return err
		}
	}
	return nil
}

func (h *host) cmdPuts(i *interp.Interp, argv []string, priv interface{}) interp.Code {
	if len(argv) != 2 {
		return i.SetResultErrorArity(argv[0], 2, argv)
	}
	if h.ports.Stdout != nil {
		fmt.Fprintln(h.ports.Stdout, argv[1])
	}
	return i.ResultOK("")
}

func (h *host) cmdGets(i *interp.Interp, argv []string, priv interface{}) interp.Code {
	if len(argv) != 1 {
		return i.SetResultErrorArity(argv[0], 1, argv)
	}
	if h.stdin == nil {
		return i.ResultOK("")
	}
	line, err := h.stdin.ReadString('\n')
	if err != nil && line == "" {
		return i.ResultOK("")
	}
	for len(line) > 0 && (line[len(line)-1] == '\n' || line[len(line)-1] == '\r') {
		line = line[:len(line)-1]
	}
	return i.ResultOK(line)
}

func (h *host) cmdSystem(i *interp.Interp, argv []string, priv interface{}) interp.Code {
	if len(argv) != 2 {
		return i.SetResultErrorArity(argv[0], 2, argv)
	}
	cmd := exec.Command("/bin/sh", "-c", argv[1])
	cmd.Stdout = h.ports.Stdout
	cmd.Stderr = h.ports.Stdout
	err := cmd.Run()
	code := 0
	if exitErr, ok := err.(*exec.ExitError); ok {
		code = exitErr.ExitCode()
	} else if err != nil {
		return i.SetResultError(err.Error())
	}
	return i.ResultOKInt(int64(code))
}

func (h *host) cmdExit(i *interp.Interp, argv []string, priv interface{}) interp.Code {
	if len(argv) > 2 {
		return i.SetResultErrorArity(argv[0], 1, argv)
	}
	code := 0
	if len(argv) == 2 {
		n, err := i.ParseInt(argv[1])
		if err != nil {
			return i.SetResultError(err.Error())
		}
		code = int(n)
	}
	h.ports.Exit(code)
	return i.ResultOK("")
}

func (h *host) cmdGetenv(i *interp.Interp, argv []string, priv interface{}) interp.Code {
	if len(argv) != 2 {
		return i.SetResultErrorArity(argv[0], 2, argv)
	}
	return i.ResultOK(os.Getenv(argv[1]))
}

func (h *host) cmdRand(i *interp.Interp, argv []string, priv interface{}) interp.Code {
	if len(argv) != 1 {
		return i.SetResultErrorArity(argv[0], 1, argv)
	}
	return i.ResultOKInt(h.ports.Rand.Int63())
}

func (h *host) cmdClock(i *interp.Interp, argv []string, priv interface{}) interp.Code {
	if len(argv) != 2 {
		return i.SetResultErrorArity(argv[0], 2, argv)
	}
	return i.ResultOK(strftime(time.Now().UTC(), argv[1]))
}

// strftime translates the subset of strftime directives SPEC_FULL.md §4.9
// promises (%Y %m %d %H %M %S %%) into time.Format's reference-layout
// syntax and applies it, rather than pulling in a C-format dependency for
// the whole specifier set.
func strftime(t time.Time, format string) string {
	out := make([]byte, 0, len(format))
	for i := 0; i < len(format); i++ {
		if format[i] != '%' || i+1 >= len(format) {
			out = append(out, format[i])
			continue
		}
		i++
		switch format[i] {
		case 'Y':
			out = append(out, t.Format("2006")...)
		case 'm':
			out = append(out, t.Format("01")...)
		case 'd':
			out = append(out, t.Format("02")...)
		case 'H':
			out = append(out, t.Format("15")...)
		case 'M':
			out = append(out, t.Format("04")...)
		case 'S':
			out = append(out, t.Format("05")...)
		case '%':
			out = append(out, '%')
		default:
			out = append(out, '%', format[i])
		}
	}
	return string(out)
}
