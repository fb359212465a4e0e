package interp_test

import (
	"strconv"
	"strings"
	"testing"

	"tcl9.dev/pickle/pkg/interp"
)

func TestInfoCommandIndexFindsRegisteredName(t *testing.T) {
	i := interp.New(nil)
	idx, err := strconv.Atoi(mustOK(t, i, "info command index set"))
	if err != nil {
		t.Fatal(err)
	}
	if idx < 0 {
		t.Errorf("index of \"set\" = %d, want >= 0", idx)
	}
	if got := mustOK(t, i, "info command index nosuchcmd"); got != "-1" {
		t.Errorf("index of unknown command = %q, want -1", got)
	}
}

func TestInfoCommandNameRoundTripsThroughIndex(t *testing.T) {
	i := interp.New(nil)
	idx := mustOK(t, i, "info command index set")
	if got := mustOK(t, i, "info command name "+idx); got != "set" {
		t.Errorf("name at index %s = %q, want \"set\"", idx, got)
	}
}

func TestInfoCommandCountMatchesCommandList(t *testing.T) {
	i := interp.New(nil)
	count, err := strconv.Atoi(mustOK(t, i, "info command count"))
	if err != nil {
		t.Fatal(err)
	}
	if count <= 0 {
		t.Errorf("count = %d, want > 0", count)
	}
}

func TestInfoCommandArgsAndBodyReportBuiltinPointerTag(t *testing.T) {
	i := interp.New(nil)
	idx := mustOK(t, i, "info command index set")
	if got := mustOK(t, i, "info command args "+idx); !strings.HasPrefix(got, "{built-in ") {
		t.Errorf("args of built-in \"set\" = %q, want a {built-in ...} tag", got)
	}
	if got := mustOK(t, i, "info command body "+idx); !strings.HasPrefix(got, "{built-in ") {
		t.Errorf("body of built-in \"set\" = %q, want a {built-in ...} tag", got)
	}
}

func TestInfoCommandArgsAndBodyReportProcSource(t *testing.T) {
	i := interp.New(nil)
	mustOK(t, i, "proc greet {name} { return hi }")
	idx := mustOK(t, i, "info command index greet")
	if got := mustOK(t, i, "info command args "+idx); got != "name" {
		t.Errorf("args of proc \"greet\" = %q, want \"name\"", got)
	}
	if got := mustOK(t, i, "info command body "+idx); got != " return hi " {
		t.Errorf("body of proc \"greet\" = %q, want \" return hi \"", got)
	}
}

func TestInfoCommandIndexOutOfRangeIsAnError(t *testing.T) {
	i := interp.New(nil)
	code, _ := eval(t, i, "info command name 999999")
	if code != interp.Error {
		t.Fatalf("expected Error, got %v", code)
	}
}

func TestInfoLevelTracksCallDepth(t *testing.T) {
	i := interp.New(nil)
	top, err := strconv.Atoi(mustOK(t, i, "info level"))
	if err != nil {
		t.Fatal(err)
	}
	mustOK(t, i, "proc depth {} { return [info level] }")
	nested, err := strconv.Atoi(mustOK(t, i, "depth"))
	if err != nil {
		t.Fatal(err)
	}
	if nested <= top {
		t.Errorf("nested info level %d should exceed top-level %d", nested, top)
	}
}

func TestInfoLimitsReportsConfiguredCeilings(t *testing.T) {
	i := interp.New(nil)
	i.SetMaxDepth(100)
	i.SetMaxArgc(50)
	if got := mustOK(t, i, "info limits recursion"); got != "100" {
		t.Errorf("got %q, want 100", got)
	}
	if got := mustOK(t, i, "info limits args"); got != "50" {
		t.Errorf("got %q, want 50", got)
	}
}

func TestInfoFeaturesIsKeyedByName(t *testing.T) {
	i := interp.New(nil)
	if got := mustOK(t, i, "info features math"); got != "1" {
		t.Errorf("got %q, want 1", got)
	}
	if got := mustOK(t, i, "info features nosuchfeature"); got != "0" {
		t.Errorf("got %q, want 0", got)
	}
}
