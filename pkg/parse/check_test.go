package parse_test

import (
	"errors"
	"testing"

	"tcl9.dev/pickle/pkg/diag"
	"tcl9.dev/pickle/pkg/parse"
)

func TestCheckAcceptsBalancedSource(t *testing.T) {
	if err := parse.Check("<test>", "set x {a b c}\nputs [string length $x]\n"); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestCheckDetectsUnmatchedBrace(t *testing.T) {
	err := parse.Check("<test>", "proc f {x} {\n  return $x\n")
	if err == nil {
		t.Fatal("expected an error")
	}
	var posErr *diag.PositionError
	if !errors.As(err, &posErr) {
		t.Fatalf("error %v is not a *diag.PositionError", err)
	}
	if posErr.Context.Line != 1 {
		t.Errorf("Line = %d, want 1", posErr.Context.Line)
	}
}

func TestCheckDetectsUnmatchedBracket(t *testing.T) {
	err := parse.Check("<test>", "set x [string length hi\n")
	if err == nil {
		t.Fatal("expected an error")
	}
	var posErr *diag.PositionError
	if !errors.As(err, &posErr) {
		t.Fatalf("error %v is not a *diag.PositionError", err)
	}
}

func TestCheckDetectsUnterminatedQuote(t *testing.T) {
	err := parse.Check("<test>", "set x \"unterminated\n")
	if err == nil {
		t.Fatal("expected an error")
	}
	var posErr *diag.PositionError
	if !errors.As(err, &posErr) {
		t.Fatalf("error %v is not a *diag.PositionError", err)
	}
	if posErr.Context.Line != 1 {
		t.Errorf("Line = %d, want 1", posErr.Context.Line)
	}
}

func TestCheckReportsLineOfOpeningBrace(t *testing.T) {
	err := parse.Check("<test>", "puts hi\nputs bye\nproc f {x} {\n  return $x\n")
	var posErr *diag.PositionError
	if !errors.As(err, &posErr) {
		t.Fatalf("error %v is not a *diag.PositionError", err)
	}
	if posErr.Context.Line != 3 {
		t.Errorf("Line = %d, want 3", posErr.Context.Line)
	}
}
