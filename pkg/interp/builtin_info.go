package interp

import (
	"fmt"
	"reflect"
)

// builtin_info.go implements the `info` sub-dispatcher of spec.md §4.6.

func registerInfoBuiltins(i *Interp) {
	i.Register("info", cmdInfo, nil)
}

func cmdInfo(i *Interp, argv []string, priv interface{}) Code {
	if len(argv) < 2 {
		return i.SetResultErrorArity(argv[0], 2, argv)
	}
	sub := argv[1]
	args := argv[2:]
	switch sub {
	case "command":
		return infoCommand(i, argv, args)
	case "line":
		return infoLine(i, argv, args)
	case "level":
		return infoLevel(i, argv, args)
	case "width":
		return infoWidth(i, argv, args)
	case "limits":
		return infoLimits(i, argv, args)
	case "features":
		return infoFeatures(i, argv, args)
	default:
		return i.SetResultError("unknown or ambiguous subcommand \"" + sub + "\"")
	}
}

// info command count|index <name>|args <idx>|body <idx>|name <idx>: queries
// the command table per spec.md §4.5 — the total count, the index of a
// command by name, or one of the args/body/name fields of the record at a
// given index. Built-ins (no *procData private data) report args/body as
// `{built-in <fn-ptr> <priv-ptr>}`, matching pickle.c's convention of
// exposing a built-in's C function pointer and privdata pointer verbatim.
func infoCommand(i *Interp, argv []string, args []string) Code {
	if len(args) == 0 {
		return i.SetResultErrorArity(argv[0], 3, argv)
	}
	switch args[0] {
	case "count":
		if len(args) != 1 {
			return i.SetResultErrorArity(argv[0], 3, argv)
		}
		return i.intResult(int64(i.commands.count()))
	case "index":
		if len(args) != 2 {
			return i.SetResultErrorArity(argv[0], 4, argv)
		}
		return i.intResult(int64(i.commands.indexOf(args[1])))
	case "args", "body", "name":
		if len(args) != 2 {
			return i.SetResultErrorArity(argv[0], 4, argv)
		}
		n, err := parseStrictInt(args[1], 10)
		if err != nil {
			return i.SetResultError(err.Error())
		}
		cmds := i.commands.all()
		if n < 0 || n >= int64(len(cmds)) {
			return i.SetResultError("command index out of range")
		}
		c := cmds[n]
		switch args[0] {
		case "name":
			return i.ok(c.name)
		case "args":
			return i.ok(commandArgsField(c))
		default:
			return i.ok(commandBodyField(c))
		}
	default:
		return i.SetResultError("unknown or ambiguous info command query \"" + args[0] + "\"")
	}
}

// commandArgsField and commandBodyField report a command record's args/body
// field: the source text for a user-defined proc, or a built-in pointer tag
// for anything registered with a plain Go function.
func commandArgsField(c *command) string {
	if pd, ok := c.priv.(*procData); ok {
		return pd.params
	}
	return builtinPointerTag(c)
}

func commandBodyField(c *command) string {
	if pd, ok := c.priv.(*procData); ok {
		return pd.body
	}
	return builtinPointerTag(c)
}

func builtinPointerTag(c *command) string {
	var privPtr uintptr
	if c.priv != nil {
		privPtr = reflect.ValueOf(c.priv).Pointer()
	}
	return fmt.Sprintf("{built-in %#x %#x}", reflect.ValueOf(c.fn).Pointer(), privPtr)
}

func infoLine(i *Interp, argv []string, args []string) Code {
	if len(args) != 0 {
		return i.SetResultErrorArity(argv[0], 2, argv)
	}
	return i.intResult(int64(i.line))
}

func infoLevel(i *Interp, argv []string, args []string) Code {
	if len(args) != 0 {
		return i.SetResultErrorArity(argv[0], 2, argv)
	}
	return i.intResult(int64(i.frame.depth()))
}

func infoWidth(i *Interp, argv []string, args []string) Code {
	if len(args) != 0 {
		return i.SetResultErrorArity(argv[0], 2, argv)
	}
	return i.intResult(64)
}

// info limits what: reports the configured recursion-depth or argument-count
// ceiling, keyed by name rather than the fixed-position pair pickle.c
// returns.
func infoLimits(i *Interp, argv []string, args []string) Code {
	if len(args) != 1 {
		return i.SetResultErrorArity(argv[0], 3, argv)
	}
	switch args[0] {
	case "recursion":
		return i.intResult(int64(i.maxDepth))
	case "args":
		return i.intResult(int64(i.maxArgc))
	default:
		return i.SetResultError("unknown limit \"" + args[0] + "\"")
	}
}

// info features what: reports whether a named optional capability is
// compiled in, keyed by name. This implements the intent of pickle.c's
// `info features` (a boolean capability lookup) rather than its literal
// behavior, which ignores its argument and always reports against the
// string "features" — see DESIGN.md's Open Questions.
func infoFeatures(i *Interp, argv []string, args []string) Code {
	if len(args) != 1 {
		return i.SetResultErrorArity(argv[0], 3, argv)
	}
	switch args[0] {
	case "allocator", "math", "strings":
		return i.intResult(1)
	default:
		return i.intResult(0)
	}
}
