package interp

import "tcl9.dev/pickle/pkg/interp/vars"

// builtin_flow.go implements the control-flow and structural built-ins of
// spec.md §4.6: variable access, conditionals, loops, procedure definition
// and invocation, frame/variable indirection (uplevel/upvar), nested
// evaluation, and the list-adjacent commands that share the tokenizer with
// program text (concat, join, lindex, llength).

func registerFlowBuiltins(i *Interp) {
	i.Register("set", cmdSet, nil)
	i.Register("unset", cmdUnset, nil)
	i.Register("if", cmdIf, nil)
	i.Register("while", cmdWhile, nil)
	i.Register("break", cmdBreak, nil)
	i.Register("continue", cmdContinue, nil)
	i.Register("return", cmdReturn, nil)
	i.Register("catch", cmdCatch, nil)
	i.Register("proc", cmdProc, nil)
	i.Register("rename", cmdRename, nil)
	i.Register("uplevel", cmdUplevel, nil)
	i.Register("upvar", cmdUpvar, nil)
	i.Register("eval", cmdEval, nil)
	i.Register("concat", cmdConcat, nil)
	i.Register("join-args", cmdJoinArgs, nil)
	i.Register("join", cmdJoin, nil)
	i.Register("lindex", cmdLindex, nil)
	i.Register("llength", cmdLlength, nil)
}

// set varName ?value?
func cmdSet(i *Interp, argv []string, priv interface{}) Code {
	switch len(argv) {
	case 2:
		v, err := i.GetVarString(argv[1])
		if err != nil {
			return i.SetResultError(err.Error())
		}
		return i.ok(v)
	case 3:
		if err := i.SetVarString(argv[1], argv[2]); err != nil {
			return i.SetResultError(err.Error())
		}
		return i.ok(argv[2])
	default:
		return i.SetResultErrorArity(argv[0], 2, argv)
	}
}

// unset varName
func cmdUnset(i *Interp, argv []string, priv interface{}) Code {
	if len(argv) != 2 {
		return i.SetResultErrorArity(argv[0], 2, argv)
	}
	if !i.frame.unset(argv[1]) {
		return i.SetResultError(noSuchVariableMsg(argv[1]))
	}
	return i.ok("")
}

func truthy(i *Interp, s string) (bool, error) {
	n, err := parseStrictInt(s, 10)
	if err != nil {
		return false, err
	}
	return n != 0, nil
}

// if cond body ?elseif cond body ...? ?else body?
func cmdIf(i *Interp, argv []string, priv interface{}) Code {
	if len(argv) == 2 {
		// A bare "if cond" with no body is always a mistake, not a cond
		// evaluated as a body via the single-word trailing-body branch below.
		return i.SetResultErrorArity(argv[0], 3, argv)
	}
	args := argv[1:]
	for {
		if len(args) == 0 {
			return i.SetResultErrorArity(argv[0], 2, argv)
		}
		if len(args) == 1 {
			// A single word left after "elseif" is evaluated as a body;
			// "else" bodies are handled below.
			return i.eval(args[0])
		}
		cond, body := args[0], args[1]
		code := i.eval(cond)
		if code != OK {
			return code
		}
		ok, err := truthy(i, i.result)
		if err != nil {
			return i.SetResultError(err.Error())
		}
		if ok {
			return i.eval(body)
		}
		rest := args[2:]
		if len(rest) == 0 {
			return i.ok("")
		}
		switch rest[0] {
		case "elseif":
			args = rest[1:]
			continue
		case "else":
			if len(rest) != 2 {
				return i.SetResultErrorArity(argv[0], 2, argv)
			}
			return i.eval(rest[1])
		default:
			return i.SetResultError("invalid if syntax: expected \"elseif\" or \"else\"")
		}
	}
}

// while cond body
func cmdWhile(i *Interp, argv []string, priv interface{}) Code {
	if len(argv) != 3 {
		return i.SetResultErrorArity(argv[0], 3, argv)
	}
	cond, body := argv[1], argv[2]
	for {
		code := i.eval(cond)
		if code != OK {
			return code
		}
		ok, err := truthy(i, i.result)
		if err != nil {
			return i.SetResultError(err.Error())
		}
		if !ok {
			return i.ok("")
		}
		code = i.eval(body)
		switch code {
		case OK, Continue:
			continue
		case Break:
			return i.ok("")
		default:
			return code
		}
	}
}

func cmdBreak(i *Interp, argv []string, priv interface{}) Code {
	if len(argv) != 1 {
		return i.SetResultErrorArity(argv[0], 1, argv)
	}
	i.result = ""
	return Break
}

func cmdContinue(i *Interp, argv []string, priv interface{}) Code {
	if len(argv) != 1 {
		return i.SetResultErrorArity(argv[0], 1, argv)
	}
	i.result = ""
	return Continue
}

// return ?value? ?code?
func cmdReturn(i *Interp, argv []string, priv interface{}) Code {
	if len(argv) > 3 {
		return i.SetResultErrorArity(argv[0], 3, argv)
	}
	value := ""
	if len(argv) >= 2 {
		value = argv[1]
	}
	code := Return
	if len(argv) == 3 {
		n, err := parseStrictInt(argv[2], 10)
		if err != nil {
			return i.SetResultError(err.Error())
		}
		code = Code(n)
	}
	i.result = value
	return code
}

// catch script ?varName?
func cmdCatch(i *Interp, argv []string, priv interface{}) Code {
	if len(argv) != 2 && len(argv) != 3 {
		return i.SetResultErrorArity(argv[0], 2, argv)
	}
	code := i.eval(argv[1])
	if len(argv) == 3 {
		if err := i.SetVarString(argv[2], formatBase(int64(code), 10)); err != nil {
			return i.SetResultError(err.Error())
		}
	}
	return i.intResult(int64(code))
}

// intResult sets the result to the base-10 rendering of n and always
// returns OK: catch reports the caught code as its own (always successful)
// result, per spec.md §4.6's scenario 8.
func (i *Interp) intResult(n int64) Code {
	i.result = formatBase(n, 10)
	return OK
}

// proc name paramList body
func cmdProc(i *Interp, argv []string, priv interface{}) Code {
	if len(argv) != 4 {
		return i.SetResultErrorArity(argv[0], 4, argv)
	}
	name, params, body := argv[1], argv[2], argv[3]
	fn := func(ci *Interp, cargv []string, cpriv interface{}) Code {
		return ci.callProc(cargv, cpriv.(*procData))
	}
	// Redefining an existing proc is allowed: drop any prior command first.
	i.commands.delete(name)
	if err := i.Register(name, fn, &procData{params: params, body: body}); err != nil {
		return i.SetResultError(err.Error())
	}
	return i.ok("")
}

func (i *Interp) callProc(argv []string, pd *procData) Code {
	if i.frame.depth() >= i.maxDepth {
		return i.SetResultError(recursionLimitMsg())
	}
	params := splitFields(pd.params)
	args := argv[1:]
	hasArgs := len(params) > 0 && params[len(params)-1] == "args"
	fixed := params
	if hasArgs {
		fixed = params[:len(params)-1]
	}
	if hasArgs {
		if len(args) < len(fixed) {
			return i.SetResultErrorArity(argv[0], len(fixed), argv)
		}
	} else if len(args) != len(fixed) {
		return i.SetResultErrorArity(argv[0], len(fixed), argv)
	}

	parent := i.frame
	child := newFrame(parent)
	i.frame = child
	defer func() { i.frame = parent }()

	for idx, name := range fixed {
		child.vars = append(child.vars, vars.NewValue(name, args[idx]))
	}
	if hasArgs {
		rest := args[len(fixed):]
		child.vars = append(child.vars, vars.NewValue("args", joinWords(rest, " ")))
	}

	code := i.eval(pd.body)
	if code == Return {
		return OK
	}
	if code == Break || code == Continue {
		return i.SetResultError("invoked \"" + code.String() + "\" outside a loop")
	}
	return code
}

// rename oldName newName
func cmdRename(i *Interp, argv []string, priv interface{}) Code {
	if len(argv) != 3 {
		return i.SetResultErrorArity(argv[0], 3, argv)
	}
	if err := i.RenameCommand(argv[1], argv[2]); err != nil {
		return i.SetResultError(err.Error())
	}
	return i.ok("")
}

// uplevel level script
func cmdUplevel(i *Interp, argv []string, priv interface{}) Code {
	if len(argv) != 3 {
		return i.SetResultErrorArity(argv[0], 3, argv)
	}
	target, err := i.resolveLevel(argv[1])
	if err != nil {
		return i.SetResultError(err.Error())
	}
	saved := i.frame
	i.frame = target
	code := i.eval(argv[2])
	i.frame = saved
	return code
}

// upvar level sourceVar localVar
func cmdUpvar(i *Interp, argv []string, priv interface{}) Code {
	if len(argv) != 4 {
		return i.SetResultErrorArity(argv[0], 4, argv)
	}
	target, err := i.resolveLevel(argv[1])
	if err != nil {
		return i.SetResultError(err.Error())
	}
	source := target.getOrCreate(argv[2])
	local := i.frame.getOrCreate(argv[3])
	if err := local.Link(source); err != nil {
		return i.SetResultError(err.Error())
	}
	return i.ok("")
}

// eval script
func cmdEval(i *Interp, argv []string, priv interface{}) Code {
	if len(argv) != 2 {
		return i.SetResultErrorArity(argv[0], 2, argv)
	}
	return i.eval(argv[1])
}

// concat ?arg ...?
func cmdConcat(i *Interp, argv []string, priv interface{}) Code {
	return i.ok(joinWords(argv[1:], " "))
}

// join-args sep ?arg ...?
func cmdJoinArgs(i *Interp, argv []string, priv interface{}) Code {
	if len(argv) < 2 {
		return i.SetResultErrorArity(argv[0], 2, argv)
	}
	return i.ok(joinWords(argv[2:], argv[1]))
}

// join list sep
func cmdJoin(i *Interp, argv []string, priv interface{}) Code {
	if len(argv) != 3 {
		return i.SetResultErrorArity(argv[0], 3, argv)
	}
	words, err := i.tokenizeList(argv[1])
	if err != nil {
		return i.SetResultError(err.Error())
	}
	return i.ok(joinWords(words, argv[2]))
}

// lindex list index
func cmdLindex(i *Interp, argv []string, priv interface{}) Code {
	if len(argv) != 3 {
		return i.SetResultErrorArity(argv[0], 3, argv)
	}
	words, err := i.tokenizeList(argv[1])
	if err != nil {
		return i.SetResultError(err.Error())
	}
	n, err := parseStrictInt(argv[2], 10)
	if err != nil {
		return i.SetResultError(err.Error())
	}
	if n < 0 || int(n) >= len(words) {
		return i.ok("")
	}
	return i.ok(words[n])
}

// llength list: the number of words in list. Unlike pickle.c, which
// reports one fewer for a non-empty list, the count is not reduced.
func cmdLlength(i *Interp, argv []string, priv interface{}) Code {
	if len(argv) != 2 {
		return i.SetResultErrorArity(argv[0], 2, argv)
	}
	words, err := i.tokenizeList(argv[1])
	if err != nil {
		return i.SetResultError(err.Error())
	}
	return i.intResult(int64(len(words)))
}
