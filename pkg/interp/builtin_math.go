package interp

// builtin_math.go implements the unary and binary arithmetic commands of
// spec.md §4.6. Every operand and result is a strictly-parsed base-10
// integer; pickle has no floating point.

func registerMathBuiltins(i *Interp) {
	unary := map[string]func(int64) (int64, error){
		"!":    func(a int64) (int64, error) { return boolInt(a == 0), nil },
		"~":    func(a int64) (int64, error) { return ^a, nil },
		"abs":  func(a int64) (int64, error) { return absInt64(a), nil },
		"bool": func(a int64) (int64, error) { return boolInt(a != 0), nil },
	}
	for name, fn := range unary {
		name, fn := name, fn
		i.Register(name, func(i *Interp, argv []string, priv interface{}) Code {
			return cmdUnaryMath(i, argv, fn)
		}, nil)
	}

	binary := map[string]func(int64, int64) (int64, error){
		"+":  func(a, b int64) (int64, error) { return a + b, nil },
		"-":  func(a, b int64) (int64, error) { return a - b, nil },
		"*":  func(a, b int64) (int64, error) { return a * b, nil },
		"/":  binaryDiv,
		"%":  binaryMod,
		">":  func(a, b int64) (int64, error) { return boolInt(a > b), nil },
		">=": func(a, b int64) (int64, error) { return boolInt(a >= b), nil },
		"<":  func(a, b int64) (int64, error) { return boolInt(a < b), nil },
		"<=": func(a, b int64) (int64, error) { return boolInt(a <= b), nil },
		"==": func(a, b int64) (int64, error) { return boolInt(a == b), nil },
		"!=": func(a, b int64) (int64, error) { return boolInt(a != b), nil },
		"<<": func(a, b int64) (int64, error) { return a << uint(b), nil },
		">>": func(a, b int64) (int64, error) { return a >> uint(b), nil },
		"&":  func(a, b int64) (int64, error) { return a & b, nil },
		"|":  func(a, b int64) (int64, error) { return a | b, nil },
		"^":  func(a, b int64) (int64, error) { return a ^ b, nil },
		"min": func(a, b int64) (int64, error) {
			if a < b {
				return a, nil
			}
			return b, nil
		},
		"max": func(a, b int64) (int64, error) {
			if a > b {
				return a, nil
			}
			return b, nil
		},
		"pow": binaryPow,
		"log": binaryLog,
	}
	for name, fn := range binary {
		name, fn := name, fn
		i.Register(name, func(i *Interp, argv []string, priv interface{}) Code {
			return cmdBinaryMath(i, argv, fn)
		}, nil)
	}
}

func boolInt(b bool) int64 {
	if b {
		return 1
	}
	return 0
}

func absInt64(a int64) int64 {
	if a < 0 {
		return -a
	}
	return a
}

func binaryDiv(a, b int64) (int64, error) {
	if b == 0 {
		return 0, errDivByZero
	}
	return a / b, nil
}

func binaryMod(a, b int64) (int64, error) {
	if b == 0 {
		return 0, errDivByZero
	}
	return a % b, nil
}

func binaryPow(a, b int64) (int64, error) {
	if b < 0 {
		return 0, errNegativeExponent
	}
	var result int64 = 1
	for ; b > 0; b-- {
		result *= a
	}
	return result, nil
}

// binaryLog computes floor(log_b(a)) for a > 0, b >= 2, matching spec.md
// §4.6's integer-only `log` command.
func binaryLog(a, b int64) (int64, error) {
	if a <= 0 || b < 2 {
		return 0, errLogDomain
	}
	var n int64
	for v := a; v >= b; v /= b {
		n++
	}
	return n, nil
}

func cmdUnaryMath(i *Interp, argv []string, fn func(int64) (int64, error)) Code {
	if len(argv) != 2 {
		return i.SetResultErrorArity(argv[0], 2, argv)
	}
	a, err := parseStrictInt(argv[1], 10)
	if err != nil {
		return i.SetResultError(err.Error())
	}
	v, err := fn(a)
	if err != nil {
		return i.SetResultError(err.Error())
	}
	return i.intResult(v)
}

func cmdBinaryMath(i *Interp, argv []string, fn func(int64, int64) (int64, error)) Code {
	if len(argv) != 3 {
		return i.SetResultErrorArity(argv[0], 3, argv)
	}
	a, err := parseStrictInt(argv[1], 10)
	if err != nil {
		return i.SetResultError(err.Error())
	}
	b, err := parseStrictInt(argv[2], 10)
	if err != nil {
		return i.SetResultError(err.Error())
	}
	v, err := fn(a, b)
	if err != nil {
		return i.SetResultError(err.Error())
	}
	return i.intResult(v)
}
