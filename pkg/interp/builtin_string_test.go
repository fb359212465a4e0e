package interp_test

import (
	"testing"

	"tcl9.dev/pickle/pkg/interp"
)

func TestStringSubcommands(t *testing.T) {
	cases := []struct{ expr, want string }{
		{"string length hello", "5"},
		{"string toupper hello", "HELLO"},
		{"string tolower HELLO", "hello"},
		{"string trim {  hi  }", "hi"},
		{"string trimleft {  hi  }", "hi  "},
		{"string trimright {  hi  }", "  hi"},
		{"string reverse abc", "cba"},
		{"string index hello 1", "e"},
		{"string match h*o hello", "1"},
		{"string match h*x hello", "0"},
		{"string equal abc abc", "1"},
		{"string equal abc abd", "0"},
		{"string compare abc abd", "-1"},
		{"string repeat ab 3", "ababab"},
		{"string first ll hello", "2"},
		{"string first zz hello", "-1"},
		{"string range hello 1 3", "ell"},
		{"string ordinal A", "65"},
		{"string char 65", "A"},
		{"string dec2hex 255", "ff"},
		{"string hex2dec ff", "255"},
		{"string is digit 12345", "1"},
		{"string is digit 123a5", "0"},
		{"string is alpha hello", "1"},
		{"string index hi -1", "i"},
		{"string index hi -2", "h"},
		{"string index hi 5", "i"},
		{"string first l hello 3", "3"},
		{"string first l hello 4", "-1"},
		{"string is xdigit 1a2B", "1"},
		{"string is xdigit 1a2g", "0"},
		{"string is graph hello", "1"},
		{"string is graph {hi there}", "0"},
		{"string is ascii hello", "1"},
		{"string is control \\t", "1"},
		{"string is wordchar hi_there1", "1"},
		{"string is wordchar {hi there}", "0"},
		{"string is true yes", "1"},
		{"string is true TRUE", "1"},
		{"string is true no", "0"},
		{"string is false off", "1"},
		{"string is false on", "0"},
		{"string is boolean on", "1"},
		{"string is boolean off", "1"},
		{"string is boolean maybe", "0"},
		{"string is integer -42", "1"},
		{"string is integer 4.2", "0"},
	}
	i := interp.New(nil)
	for _, c := range cases {
		got := mustOK(t, i, c.expr)
		if got != c.want {
			t.Errorf("%s = %q, want %q", c.expr, got, c.want)
		}
	}
}

func TestStringHashIsDeterministic(t *testing.T) {
	i := interp.New(nil)
	a := mustOK(t, i, "string hash foo")
	b := mustOK(t, i, "string hash foo")
	if a != b {
		t.Errorf("string hash foo not deterministic: %q vs %q", a, b)
	}
	c := mustOK(t, i, "string hash bar")
	if a == c {
		t.Errorf("string hash foo and bar collided: %q", a)
	}
}

func TestStringIndexOutOfRangeClampsRatherThanErrors(t *testing.T) {
	i := interp.New(nil)
	if got := mustOK(t, i, "string index hi 5"); got != "i" {
		t.Errorf("string index hi 5 = %q, want clamped to last char \"i\"", got)
	}
	if got := mustOK(t, i, "string index hi -5"); got != "h" {
		t.Errorf("string index hi -5 = %q, want clamped to first char \"h\"", got)
	}
}

func TestStringIsUnknownClassIsAnError(t *testing.T) {
	i := interp.New(nil)
	code, _ := eval(t, i, "string is nosuchclass hi")
	if code != interp.Error {
		t.Fatalf("expected Error, got %v", code)
	}
}

func TestStringFirstWithStartOffsetSkipsEarlierMatches(t *testing.T) {
	i := interp.New(nil)
	if got := mustOK(t, i, "string first l hello 2"); got != "2" {
		t.Errorf("string first l hello 2 = %q, want 2", got)
	}
	if got := mustOK(t, i, "string first l hello 10"); got != "-1" {
		t.Errorf("string first l hello 10 = %q, want -1", got)
	}
}

func TestStringUnknownSubcommandIsAnError(t *testing.T) {
	i := interp.New(nil)
	code, _ := eval(t, i, "string nosuchsub hi")
	if code != interp.Error {
		t.Fatalf("expected Error, got %v", code)
	}
}
