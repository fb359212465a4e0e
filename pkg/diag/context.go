// Package diag attaches source position information to errors produced by
// the parser and evaluator, so that a message can be traced back to the
// line of script that caused it.
package diag

import "fmt"

// Context identifies a position within a named source. Name is typically a
// file path or "<stdin>"; Line is 1-based.
type Context struct {
	Name string
	Line int
}

// Error wraps msg with the context's name and line, in the conventional
// "name:line: message" form. The returned error is a *PositionError, so
// callers that need the line back out (rather than just the formatted
// string) can recover it with errors.As.
func (c Context) Error(msg string) error {
	return &PositionError{Context: c, Msg: msg}
}

// PositionError is the concrete type Context.Error/Errorf return.
type PositionError struct {
	Context Context
	Msg     string
}

func (e *PositionError) Error() string {
	return fmt.Sprintf("%s:%d: %s", e.Context.Name, e.Context.Line, e.Msg)
}

// Errorf is like Error but accepts a format string.
func (c Context) Errorf(format string, args ...interface{}) error {
	return c.Error(fmt.Sprintf(format, args...))
}

// String renders the context as "name:line".
func (c Context) String() string {
	return fmt.Sprintf("%s:%d", c.Name, c.Line)
}
