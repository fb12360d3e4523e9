package repl

import (
	"bytes"
	"strings"
	"testing"
)

func newCapturingRepl() (*REPL, *bytes.Buffer) {
	var buf bytes.Buffer
	return NewWithWriter(&buf), &buf
}

func TestCmdClassAndMRO(t *testing.T) {
	r, buf := newCapturingRepl()
	r.EvalLine(":class A")
	r.EvalLine(":class B A")
	buf.Reset()
	r.EvalLine(":mro B")
	out := buf.String()
	if !strings.Contains(out, "B -> A -> object") {
		t.Errorf("expected a linear B -> A -> object MRO, got %q", out)
	}
}

func TestCmdAttrAndMember(t *testing.T) {
	r, buf := newCapturingRepl()
	r.EvalLine(":class Greeter")
	r.EvalLine(":attr Greeter.name Instance(str)")
	buf.Reset()
	r.EvalLine(":member Class(Greeter) name")
	if got := strings.TrimSpace(buf.String()); got != "str" {
		t.Errorf("member lookup: got %q, want str", got)
	}
}

func TestCmdFuncAndCallRevealType(t *testing.T) {
	r, buf := newCapturingRepl()
	r.EvalLine(":func identity -> Instance(int)")
	buf.Reset()
	r.EvalLine(":call identity 1")
	out := buf.String()
	if !strings.Contains(out, "int") {
		t.Errorf("expected the annotated return type in output, got %q", out)
	}
}

func TestCmdCallRevealTypeBuiltin(t *testing.T) {
	r, buf := newCapturingRepl()
	buf.Reset()
	r.EvalLine(":call reveal_type 42")
	out := buf.String()
	if !strings.Contains(out, "TYC004") {
		t.Errorf("expected a TYC004 reveal diagnostic, got %q", out)
	}
}

func TestCmdBoolAndStrRepr(t *testing.T) {
	r, buf := newCapturingRepl()
	r.EvalLine(":bool 0")
	if got := strings.TrimSpace(buf.String()); got != "AlwaysFalse" {
		t.Errorf(":bool 0 = %q, want AlwaysFalse", got)
	}

	buf.Reset()
	r.EvalLine(`:repr "it's"`)
	if got := strings.TrimSpace(buf.String()); got != `Literal["'it\'s'"]` {
		t.Errorf(":repr = %q", got)
	}
}

func TestCmdSubtypeAndAssignable(t *testing.T) {
	r, buf := newCapturingRepl()
	r.EvalLine(":subtype Instance(bool) Instance(int)")
	if got := strings.TrimSpace(buf.String()); got != "true" {
		t.Errorf("bool <: int expected true, got %q", got)
	}

	buf.Reset()
	r.EvalLine(":assignable Any Instance(int)")
	if got := strings.TrimSpace(buf.String()); got != "true" {
		t.Errorf("Any assignable to int expected true, got %q", got)
	}
}

func TestBareExpressionEcho(t *testing.T) {
	r, buf := newCapturingRepl()
	r.EvalLine("Instance(int) | Instance(str)")
	if buf.Len() == 0 {
		t.Error("expected bare expression to print its type")
	}
}

func TestUnknownCommand(t *testing.T) {
	r, buf := newCapturingRepl()
	r.EvalLine(":bogus")
	if !strings.Contains(buf.String(), "unknown command") {
		t.Errorf("expected an unknown-command message, got %q", buf.String())
	}
}

func TestCmdDeclareAndSymbolFoldsBindings(t *testing.T) {
	r, buf := newCapturingRepl()
	r.EvalLine(":declare x Instance(int)")
	buf.Reset()
	r.EvalLine(":symbol x")
	if got := strings.TrimSpace(buf.String()); got != "int" {
		t.Errorf("expected a single declaration to resolve to int, got %q", got)
	}
}

func TestCmdSymbolReportsConflictingDeclarations(t *testing.T) {
	r, buf := newCapturingRepl()
	r.EvalLine(":declare x Instance(int)")
	r.EvalLine(":declare x None")
	buf.Reset()
	r.EvalLine(":symbol x")
	out := buf.String()
	if !strings.Contains(out, "TYC006") {
		t.Errorf("expected a TYC006 conflicting-declarations report, got %q", out)
	}
}

func TestCmdIterateNotIterableReportsTYC005(t *testing.T) {
	r, buf := newCapturingRepl()
	r.EvalLine(":iterate None")
	if !strings.Contains(buf.String(), "TYC005") {
		t.Errorf("expected a TYC005 not-iterable report, got %q", buf.String())
	}
}

func TestCmdModuleAndMember(t *testing.T) {
	r, buf := newCapturingRepl()
	r.EvalLine(":module os")
	r.EvalLine(":module os sep Instance(str)")
	buf.Reset()
	r.EvalLine(":member Module(os) sep")
	if got := strings.TrimSpace(buf.String()); got != "str" {
		t.Errorf("os.sep lookup: got %q, want str", got)
	}

	buf.Reset()
	r.EvalLine(":member Module(os) nope")
	if got := strings.TrimSpace(buf.String()); got != "Unbound" {
		t.Errorf("undeclared module global: got %q, want Unbound", got)
	}
}
