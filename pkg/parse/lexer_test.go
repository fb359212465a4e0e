package parse_test

import (
	"testing"

	"tcl9.dev/pickle/pkg/parse"
)

func tokenTypes(name, src string) []parse.Type {
	l := parse.NewLexer(name, src)
	var types []parse.Type
	for {
		tok := l.Next()
		types = append(types, tok.Type)
		if tok.Type == parse.EOF {
			return types
		}
	}
}

func TestLexerSplitsWordsOnSpace(t *testing.T) {
	l := parse.NewLexer("<test>", "set x 1")
	var words []string
	for {
		tok := l.Next()
		if tok.Type == parse.EOF {
			break
		}
		if tok.Type != parse.Sep && tok.Type != parse.EOL {
			words = append(words, tok.Text("set x 1"))
		}
	}
	if len(words) != 3 || words[0] != "set" || words[1] != "x" || words[2] != "1" {
		t.Errorf("got %v", words)
	}
}

func TestLexerRecognizesBraceGroupAsStr(t *testing.T) {
	src := "puts {hello world}"
	l := parse.NewLexer("<test>", src)
	l.Next() // "puts"
	l.Next() // sep
	tok := l.Next()
	if tok.Type != parse.Str {
		t.Fatalf("got type %v, want Str", tok.Type)
	}
	if got := tok.Text(src); got != "hello world" {
		t.Errorf("got %q, want %q", got, "hello world")
	}
}

func TestLexerRecognizesVarToken(t *testing.T) {
	src := "puts $name"
	l := parse.NewLexer("<test>", src)
	l.Next()
	l.Next()
	tok := l.Next()
	if tok.Type != parse.Var {
		t.Fatalf("got type %v, want Var", tok.Type)
	}
	if got := tok.Text(src); got != "name" {
		t.Errorf("got %q, want %q", got, "name")
	}
}

func TestLexerRecognizesCommandSubstitution(t *testing.T) {
	src := "set x [expr 1 + 2]"
	l := parse.NewLexer("<test>", src)
	l.Next()
	l.Next()
	l.Next()
	l.Next()
	tok := l.Next()
	if tok.Type != parse.Cmd {
		t.Fatalf("got type %v, want Cmd", tok.Type)
	}
	if got := tok.Text(src); got != "expr 1 + 2" {
		t.Errorf("got %q, want %q", got, "expr 1 + 2")
	}
}

func TestLexerSkipsCommentsAtStartOfCommand(t *testing.T) {
	types := tokenTypes("<test>", "# a comment\nset x 1")
	hasEsc := false
	for _, ty := range types {
		if ty == parse.Esc {
			hasEsc = true
		}
	}
	if !hasEsc {
		t.Errorf("expected at least one Esc (bare word) token after skipping comment, got %v", types)
	}
}

func TestLexerEmitsEOFOnEmptySource(t *testing.T) {
	l := parse.NewLexer("<test>", "")
	tok := l.Next()
	if tok.Type != parse.EOF {
		t.Errorf("got type %v, want EOF", tok.Type)
	}
}

func TestLexerLineTracking(t *testing.T) {
	l := parse.NewLexer("<test>", "set x 1\nset y 2\n")
	var lastLine int
	for {
		tok := l.Next()
		if tok.Type == parse.EOF {
			break
		}
		lastLine = tok.Line
	}
	if lastLine < 2 {
		t.Errorf("expected line tracking to reach line 2, got %d", lastLine)
	}
}
