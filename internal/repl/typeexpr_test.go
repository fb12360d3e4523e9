package repl

import (
	"strings"
	"testing"

	"github.com/sunholo/pylattice/internal/ty"
)

func newTestRepl() *REPL {
	return NewWithWriter(discard{})
}

type discard struct{}

func (discard) Write(p []byte) (int, error) { return len(p), nil }

func TestParseGradualForms(t *testing.T) {
	r := newTestRepl()
	cases := map[string]ty.Type{
		"Any":     ty.Any,
		"Unknown": ty.Unknown,
		"Never":   ty.Never,
		"Unbound": ty.Unbound,
		"None":    ty.None,
	}
	for expr, want := range cases {
		got, err := r.Parser.Parse(expr)
		if err != nil {
			t.Fatalf("Parse(%q): %v", expr, err)
		}
		if !got.Equals(want) {
			t.Errorf("Parse(%q) = %v, want %v", expr, got, want)
		}
	}
}

func TestParseLiterals(t *testing.T) {
	r := newTestRepl()

	if got, err := r.Parser.Parse("42"); err != nil || !got.Equals(ty.TIntLiteral{Value: 42}) {
		t.Errorf("Parse(42) = %v, %v", got, err)
	}
	if got, err := r.Parser.Parse("-7"); err != nil || !got.Equals(ty.TIntLiteral{Value: -7}) {
		t.Errorf("Parse(-7) = %v, %v", got, err)
	}
	if got, err := r.Parser.Parse("True"); err != nil || !got.Equals(ty.TBooleanLiteral{Value: true}) {
		t.Errorf("Parse(True) = %v, %v", got, err)
	}
	if got, err := r.Parser.Parse(`"hi"`); err != nil || !got.Equals(ty.TStringLiteral{Value: "hi"}) {
		t.Errorf(`Parse("hi") = %v, %v`, got, err)
	}
	if got, err := r.Parser.Parse(`b"hi"`); err != nil || !got.Equals(ty.TBytesLiteral{Value: "hi"}) {
		t.Errorf(`Parse(b"hi") = %v, %v`, got, err)
	}
}

func TestParseClassAndInstance(t *testing.T) {
	r := newTestRepl()
	if _, err := r.Parser.Parse("Instance(int)"); err != nil {
		t.Fatalf("Parse(Instance(int)): %v", err)
	}
	if _, err := r.Parser.Parse("Class(int)"); err != nil {
		t.Fatalf("Parse(Class(int)): %v", err)
	}
	if _, err := r.Parser.Parse("int"); err != nil {
		t.Fatalf("Parse(int): %v", err)
	}
	if _, err := r.Parser.Parse("Instance(Nope)"); err == nil {
		t.Error("expected error for unregistered class name")
	}
}

func TestParseUnionAndTuple(t *testing.T) {
	r := newTestRepl()
	u, err := r.Parser.Parse("Instance(int) | Instance(str)")
	if err != nil {
		t.Fatalf("union parse: %v", err)
	}
	if _, ok := u.(ty.TUnion); !ok {
		t.Errorf("expected TUnion, got %v", u)
	}

	tup, err := r.Parser.Parse("(Instance(int), Instance(str))")
	if err != nil {
		t.Fatalf("tuple parse: %v", err)
	}
	tt, ok := tup.(ty.TTuple)
	if !ok || len(tt.Elements) != 2 {
		t.Errorf("expected a 2-element tuple, got %v", tup)
	}
}

func TestParseTrailingGarbageFails(t *testing.T) {
	r := newTestRepl()
	if _, err := r.Parser.Parse("Any Any"); err == nil {
		t.Error("expected error for trailing input")
	}
}

func TestParseCallSuffix(t *testing.T) {
	r := newTestRepl()
	r.EvalLine(":func make_int -> Instance(int)")

	got, err := r.Parser.Parse("make_int()")
	if err != nil {
		t.Fatalf("call parse: %v", err)
	}
	if got.String() != "int" {
		t.Errorf("make_int() should evaluate to its annotated return, got %s", got)
	}

	// A class callee constructs an instance of itself.
	got, err = r.Parser.Parse("int()")
	if err != nil {
		t.Fatalf("class call parse: %v", err)
	}
	if got.String() != "int" {
		t.Errorf("int() should evaluate to Instance(int), got %s", got)
	}
}

func TestParseCallRevealTypeAccumulatesReport(t *testing.T) {
	r := newTestRepl()
	got, err := r.Parser.Parse("reveal_type(Instance(int))")
	if err != nil {
		t.Fatalf("reveal_type parse: %v", err)
	}
	if !got.Equals(ty.Unknown) {
		t.Errorf("reveal_type's return type should be Unknown, got %s", got)
	}
	reports := r.Parser.Reports()
	if len(reports) != 1 || reports[0].Code != "TYC004" {
		t.Fatalf("expected one TYC004 report, got %v", reports)
	}
	if !strings.Contains(reports[0].Message, "Revealed type is `int`") {
		t.Errorf("unexpected reveal message %q", reports[0].Message)
	}
}

func TestParseCallOnNonCallableReports(t *testing.T) {
	r := newTestRepl()
	got, err := r.Parser.Parse("None()")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if !got.Equals(ty.Unknown) {
		t.Errorf("a non-callable call should recover to Unknown, got %s", got)
	}
	reports := r.Parser.Reports()
	if len(reports) != 1 || reports[0].Code != "TYC001" {
		t.Fatalf("expected one TYC001 report, got %v", reports)
	}
}

func TestParseModuleAtom(t *testing.T) {
	r := newTestRepl()
	if _, err := r.Parser.Parse("Module(os)"); err == nil {
		t.Error("expected an error for an undefined module")
	}
	r.Registry.DefineModule("os")
	got, err := r.Parser.Parse("Module(os)")
	if err != nil {
		t.Fatalf("Module atom parse: %v", err)
	}
	mod, ok := got.(ty.TModule)
	if !ok {
		t.Fatalf("expected TModule, got %T", got)
	}
	again, err := r.Parser.Parse("Module(os)")
	if err != nil {
		t.Fatalf("second Module atom parse: %v", err)
	}
	if !mod.Equals(again) {
		t.Error("the same module name should intern to the same Module type")
	}
}
