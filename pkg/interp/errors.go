package interp

import "errors"

// Diagnostic message builders shared between the evaluator's own
// bookkeeping failures (unknown variable/command, recursion limit) and the
// public GetVar*/SetVar* API, so that both speak the exact wording spec.md
// §4.3 specifies for the in-language result string.

func noSuchVariableMsg(name string) string { return "no such variable '" + name + "'" }
func noSuchCommandMsg(name string) string  { return "no such command '" + name + "'" }
func recursionLimitMsg() string            { return "recursion limit exceeded" }
func invalidEscapeMsg() string             { return "invalid escape sequence" }

var (
	errDivByZero        = errors.New("divide by zero")
	errNegativeExponent = errors.New("negative exponent")
	errLogDomain        = errors.New("log: argument out of domain")
)
