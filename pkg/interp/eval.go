package interp

import "tcl9.dev/pickle/pkg/parse"

// Eval parses and executes source, returning the resulting code. The
// interpreter's result (Result) carries the value on OK or the diagnostic
// message on any other code. The returned error is non-nil exactly when
// code is Error, and additionally carries the source name and line at
// which the failure was observed — the same information spec.md §7 asks
// parse-stage errors to report, extended here to every error path so an
// embedder never has to parse Result() to find out where something broke.
func (i *Interp) Eval(source string) (Code, error) {
	code := i.eval(source)
	if code == Error {
		return code, i.context().Error(i.result)
	}
	return code, nil
}

// eval is the recursive core of the evaluator (spec.md §4.3): it is called
// directly, not through Eval, by `[...]` substitution and by the built-ins
// that evaluate a body string (`if`, `while`, `proc`, `eval`, `uplevel`,
// `catch`). It never wraps errors with position information itself; only
// the public Eval does that, once, at the outermost boundary.
func (i *Interp) eval(source string) Code {
	i.result = ""
	lex := parse.NewLexerAt(i.sourceName, source, i.line)

	var argv []string
	prevType := parse.EOL

	for {
		tok := lex.Next()
		i.line = lex.Line()
		if tok.Type == parse.EOF {
			break
		}
		t := tok.Text(source)

		switch tok.Type {
		case parse.Var:
			v := i.frame.lookup(t)
			if v == nil {
				return i.SetResultError(noSuchVariableMsg(t))
			}
			val, err := v.Get()
			if err != nil {
				return i.SetResultError(err.Error())
			}
			t = val
		case parse.Cmd:
			code := i.eval(t)
			if code != OK {
				return code
			}
			t = i.result
		case parse.Esc:
			decoded, err := decodeEscapes(t)
			if err != nil {
				return i.SetResultError(err.Error())
			}
			t = decoded
		case parse.Sep:
			prevType = tok.Type
			continue
		}

		if tok.Type == parse.EOL {
			prevType = tok.Type
			if len(argv) > 0 {
				code := i.dispatch(argv)
				argv = nil
				if code != OK {
					return code
				}
			}
			continue
		}

		if prevType == parse.Sep || prevType == parse.EOL {
			if len(argv) >= i.maxArgc {
				return i.SetResultError("too many arguments to command")
			}
			argv = append(argv, t)
		} else {
			// Interpolation: adjacent tokens of the same word concatenate.
			argv[len(argv)-1] += t
		}
		prevType = tok.Type
	}
	return OK
}

// tokenizeList splits s into words using the same lexical rules as program
// text (braces group, quotes group, backslash escapes decode) but without
// performing variable or command substitution: a `$name` or `[cmd]` that
// appears in list text is reproduced literally. This backs `join`,
// `lindex`, and `llength` (spec.md §4.6).
func (i *Interp) tokenizeList(s string) ([]string, error) {
	lex := parse.NewLexer(i.sourceName, s)
	var words []string
	prevType := parse.EOL
	for {
		tok := lex.Next()
		if tok.Type == parse.EOF {
			break
		}
		t := tok.Text(s)
		switch tok.Type {
		case parse.Var:
			t = "$" + t
		case parse.Cmd:
			t = "[" + t + "]"
		case parse.Esc:
			decoded, err := decodeEscapes(t)
			if err != nil {
				return nil, err
			}
			t = decoded
		case parse.Sep:
			prevType = tok.Type
			continue
		}
		if tok.Type == parse.EOL {
			prevType = tok.Type
			continue
		}
		if prevType == parse.Sep || prevType == parse.EOL {
			words = append(words, t)
		} else {
			words[len(words)-1] += t
		}
		prevType = tok.Type
	}
	return words, nil
}

// resolveLevel implements the `level` argument shared by `uplevel` and
// `upvar` (spec.md §4.4): a plain integer climbs that many parents; a
// `#`-prefixed integer names an absolute frame index counted from the top
// of the call-frame stack.
func (i *Interp) resolveLevel(level string) (*Frame, error) {
	if len(level) > 0 && level[0] == '#' {
		n, err := parseStrictInt(level[1:], 10)
		if err != nil {
			return nil, err
		}
		up := i.frame.depth() - int(n)
		if up < 0 {
			up = 0
		}
		return i.frame.ancestor(up), nil
	}
	n, err := parseStrictInt(level, 10)
	if err != nil {
		return nil, err
	}
	return i.frame.ancestor(int(n)), nil
}

// dispatch looks up argv[0] and invokes it. The evaluator never inspects
// argv again afterwards, matching spec.md §4.3's result-handling contract.
func (i *Interp) dispatch(argv []string) Code {
	c := i.commands.get(argv[0])
	if c == nil {
		return i.SetResultError(noSuchCommandMsg(argv[0]))
	}
	return c.fn(i, argv, c.priv)
}
