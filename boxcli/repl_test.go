package main

import (
	"errors"
	"slices"
	"testing"

	"github.com/npillmayer/schrodinger/box"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func run(t *testing.T, intp *Intp, lines ...string) {
	t.Helper()
	for _, line := range lines {
		op, err := parseCommand(line)
		if err != nil {
			t.Fatalf("cannot parse %q: %v", line, err)
		}
		if err, _ = intp.Execute(op); err != nil {
			t.Fatalf("command %q failed: %v", line, err)
		}
	}
}

func contents(intp *Intp) []string {
	s := make([]string, len(intp.boxes))
	for i, b := range intp.boxes {
		s[i] = b.String()
	}
	return s
}

func TestParseCommand(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "schrodinger.cli")
	defer teardown()
	//
	op, err := parseCommand("box  hello world ")
	if err != nil || op.code != BOX || op.arg != "hello world" {
		t.Errorf("expected BOX with 'hello world', got %v, err = %v", op, err)
	}
	op, _ = parseCommand("SUM")
	if op.code != SUM || op.arg != "" {
		t.Errorf("expected SUM without argument, got %v", op)
	}
	op, _ = parseCommand("frobnicate 3")
	if op.code != HELP {
		t.Errorf("expected unknown command to map to HELP, got %s", opNames[op.code])
	}
	if _, err = parseCommand("   "); err == nil {
		t.Errorf("expected blank line to be rejected")
	}
}

func TestTransformAndFilter(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "schrodinger.cli")
	defer teardown()
	//
	intp := NewIntp(nil)
	run(t, intp, "box foo", "empty", "box short string", "box this is a considerably longer string", "box !")
	run(t, intp, "reverse")
	want := []string{"Box(oof)", "Box()", "Box(gnirts trohs)", "Box(gnirts regnol ylbaredisnoc a si siht)", "Box(!)"}
	if got := contents(intp); !slices.Equal(got, want) {
		t.Errorf("after reverse: expected %v, got %v", want, got)
	}
	run(t, intp, "short")
	want = []string{"Box(oof)", "Box(gnirts trohs)", "Box(!)"}
	if got := contents(intp); !slices.Equal(got, want) {
		t.Errorf("after short: expected %v, got %v", want, got)
	}
	run(t, intp, "short 3")
	want = []string{"Box(!)"}
	if got := contents(intp); !slices.Equal(got, want) {
		t.Errorf("after short 3: expected %v, got %v", want, got)
	}
}

func TestNumbers(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "schrodinger.cli")
	defer teardown()
	//
	intp := NewIntp(nil)
	run(t, intp, "box 8", "box 5", "empty", "box five", "box 5", "sum")
	if intp.last.String() != "Box(18)" {
		t.Errorf("expected sum to be Box(18), is %s", intp.last)
	}
	run(t, intp, "square")
	want := []string{"Box(64)", "Box(25)", "Box()", "Box()", "Box(25)"}
	if got := contents(intp); !slices.Equal(got, want) {
		t.Errorf("after square: expected %v, got %v", want, got)
	}
	run(t, intp, "clear", "sum")
	if !intp.last.IsEmpty() {
		t.Errorf("expected sum over no boxes to be empty, is %s", intp.last)
	}
}

func TestConcatAndUnwrap(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "schrodinger.cli")
	defer teardown()
	//
	intp := NewIntp(nil)
	run(t, intp, "box a", "empty", "box b", "upper", "concat")
	if v := intp.last.UnwrapOr("?"); v != "AB" {
		t.Errorf("expected concat to be 'AB', is %q", v)
	}
	op, _ := parseCommand("unwrap 1")
	err, _ := intp.Execute(op)
	if !errors.Is(err, box.ErrEmptyValue) {
		t.Errorf("expected unwrap of empty box to fail with ErrEmptyValue, got %v", err)
	}
	op, _ = parseCommand("unwrap 7")
	if err, _ = intp.Execute(op); err == nil {
		t.Errorf("expected index out of range")
	}
	op, _ = parseCommand("unwrap 2")
	if err, _ = intp.Execute(op); err != nil {
		t.Errorf("expected unwrap of box #2 to succeed, got %v", err)
	}
}

func TestQuit(t *testing.T) {
	op, _ := parseCommand("quit")
	if _, stop := NewIntp(nil).Execute(op); !stop {
		t.Errorf("expected quit to stop the interpreter")
	}
}
