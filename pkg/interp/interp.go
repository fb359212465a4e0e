// Package interp implements the pickle core: the evaluator, the variable
// environment, the command table, call frames, and the built-in command
// library described by spec.md. The package never imports "os" or
// "os/exec" or touches the network — every bit of ambient I/O authority is
// left to a host, which wires it in through Register exactly as any other
// embedder would.
package interp

import (
	"tcl9.dev/pickle/pkg/alloc"
	"tcl9.dev/pickle/pkg/diag"
	"tcl9.dev/pickle/pkg/interp/vars"
)

// Default limits, chosen well above spec.md §6's stated minimums (recursion
// depth ≥8, max argc ≥8) so ordinary scripts do not need to touch them.
const (
	DefaultMaxDepth = 220
	DefaultMaxArgc  = 256
)

// Interp is one interpreter instance: command table, call-frame chain,
// current result, line tracking, and recursion guard (spec.md §3).
type Interp struct {
	commands *commandTable
	root     *Frame
	frame    *Frame

	result string

	sourceName string
	line       int

	depth    int
	maxDepth int
	maxArgc  int

	alloc alloc.Allocator
}

// New constructs an interpreter, registers the built-in command library, and
// defines the `version` variable as an integer constant. a may be nil, in
// which case alloc.Default is used.
func New(a alloc.Allocator) *Interp {
	if a == nil {
		a = alloc.Default
	}
	root := newFrame(nil)
	i := &Interp{
		commands:   newCommandTable(),
		root:       root,
		frame:      root,
		sourceName: "<eval>",
		line:       1,
		maxDepth:   DefaultMaxDepth,
		maxArgc:    DefaultMaxArgc,
		alloc:      a,
	}
	registerBuiltins(i)
	i.root.vars = append(i.root.vars, vars.NewValue("version", "1"))
	return i
}

// Close tears down the interpreter's frames and command table. An embedded
// Interp need not call it (the Go garbage collector reclaims everything
// once the Interp is unreferenced); it exists for parity with spec.md §6's
// `delete` and for embedders who want a deterministic teardown point.
func (i *Interp) Close() {
	i.frame = nil
	i.root = nil
	i.commands = nil
}

// SetMaxDepth overrides the recursion-depth limit. Values below 8 are
// clamped up to 8, per spec.md §6.
func (i *Interp) SetMaxDepth(n int) {
	if n < 8 {
		n = 8
	}
	i.maxDepth = n
}

// SetMaxArgc overrides the per-command argument-count limit. Values below 8
// are clamped up to 8, per spec.md §6.
func (i *Interp) SetMaxArgc(n int) {
	if n < 8 {
		n = 8
	}
	i.maxArgc = n
}

// SetSourceName sets the name used in position-carrying errors (e.g. the
// path of the file being evaluated). Defaults to "<eval>".
func (i *Interp) SetSourceName(name string) { i.sourceName = name }

// Line returns the line the evaluator most recently reached.
func (i *Interp) Line() int { return i.line }

// Depth returns the current call-frame depth (1 at top level).
func (i *Interp) Depth() int { return i.frame.depth() }

func (i *Interp) context() diag.Context {
	return diag.Context{Name: i.sourceName, Line: i.line}
}

// Result returns the interpreter's current result string. Callers who need
// it past the next evaluation must copy it (spec.md §5).
func (i *Interp) Result() string { return i.result }

// ResultInt parses the current result as a strict base-10 integer.
func (i *Interp) ResultInt() (int64, error) {
	return parseStrictInt(i.result, 10)
}

// SetResult replaces the interpreter's result with s.
func (i *Interp) SetResult(s string) { i.result = s }

// SetResultInt replaces the interpreter's result with the base-10 rendering
// of n.
func (i *Interp) SetResultInt(n int64) { i.result = formatBase(n, 10) }

// ok replaces the result with s and returns OK. It is the common case of a
// built-in succeeding, named to read well at call sites: `return i.ok(v)`.
func (i *Interp) ok(s string) Code {
	i.result = s
	return OK
}

// SetResultError replaces the result with msg and returns Error, the usual
// shape of a built-in's failure return.
func (i *Interp) SetResultError(msg string) Code {
	i.result = msg
	return Error
}

// CommandNames returns the name of every currently registered command, in
// no particular order. Used by pkg/langserver for completion.
func (i *Interp) CommandNames() []string {
	cmds := i.commands.all()
	names := make([]string, len(cmds))
	for idx, c := range cmds {
		names[idx] = c.name
	}
	return names
}

// ResultOK replaces the result with s and returns OK. Exported for use by
// host packages that implement commands outside pkg/interp (spec.md §6).
func (i *Interp) ResultOK(s string) Code { return i.ok(s) }

// ResultOKInt is ResultOK with an integer result.
func (i *Interp) ResultOKInt(n int64) Code { return i.ok(formatBase(n, 10)) }

// ParseInt applies the strict base-10 numeric conversion spec.md §4.6
// requires of every built-in that reads a numeric argument.
func (i *Interp) ParseInt(s string) (int64, error) { return parseStrictInt(s, 10) }

// SetResultErrorArity sets a standard arity-mismatch diagnostic naming the
// command, the expected count, and the joined actual arguments (spec.md
// §4.6), and returns Error.
func (i *Interp) SetResultErrorArity(name string, expected int, argv []string) Code {
	return i.SetResultError(arityMessage(name, expected, argv))
}

func arityMessage(name string, expected int, argv []string) string {
	joined := ""
	for idx, a := range argv {
		if idx > 0 {
			joined += " "
		}
		joined += a
	}
	return "wrong # args for \"" + name + "\": expected " + itoa(expected) + ", got \"" + joined + "\""
}

// Register installs a command against the table, failing if the name is
// already taken (spec.md §4.5).
func (i *Interp) Register(name string, fn CommandFunc, priv interface{}) error {
	return i.commands.register(name, fn, priv)
}

// RenameCommand renames src to dst; dst == "" deletes src (spec.md §4.5/§6).
func (i *Interp) RenameCommand(src, dst string) error {
	return i.commands.rename(src, dst)
}

// GetVarString returns the value of a variable visible in the current
// frame, following links.
func (i *Interp) GetVarString(name string) (string, error) {
	v := i.frame.lookup(name)
	if v == nil {
		return "", i.context().Error(noSuchVariableMsg(name))
	}
	return v.Get()
}

// GetVarInt is GetVarString followed by strict numeric parsing.
func (i *Interp) GetVarInt(name string) (int64, error) {
	s, err := i.GetVarString(name)
	if err != nil {
		return 0, err
	}
	return parseStrictInt(s, 10)
}

// SetVarString sets (or creates) a variable in the current frame.
func (i *Interp) SetVarString(name, value string) error {
	return i.frame.getOrCreate(name).Set(value)
}

// SetVarInt is SetVarString with an integer value.
func (i *Interp) SetVarInt(name string, v int64) error {
	return i.SetVarString(name, formatBase(v, 10))
}
