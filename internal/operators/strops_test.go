package operators

import (
	"testing"

	"github.com/sunholo/pylattice/internal/ty"
)

func TestReprRoundTrip(t *testing.T) {
	ctx, _, _, _ := newFixture()

	r := ctx.Repr(ty.TStringLiteral{Value: "ab'cd"})
	want := ty.TStringLiteral{Value: `'ab\'cd'`}
	if !r.Equals(want) {
		t.Errorf("repr(ab'cd): got %v, want %v", r, want)
	}

	s := ctx.Str(ty.TStringLiteral{Value: "ab'cd"})
	if !s.Equals(ty.TStringLiteral{Value: "ab'cd"}) {
		t.Errorf("str(ab'cd): got %v", s)
	}

	if got := ctx.Repr(ty.TIntLiteral{Value: 42}); !got.Equals(ty.TStringLiteral{Value: "42"}) {
		t.Errorf("repr(42): got %v", got)
	}
	if got := ctx.Str(ty.TIntLiteral{Value: 42}); !got.Equals(ty.TStringLiteral{Value: "42"}) {
		t.Errorf("str(42): got %v", got)
	}
	if got := ctx.Repr(ty.TBooleanLiteral{Value: true}); !got.Equals(ty.TStringLiteral{Value: "True"}) {
		t.Errorf("repr(True): got %v", got)
	}
}

func TestReprIsIdempotentOnStringResult(t *testing.T) {
	ctx, _, _, _ := newFixture()
	once := ctx.Repr(ty.TIntLiteral{Value: 7})
	strLit, ok := once.(ty.TStringLiteral)
	if !ok {
		t.Fatalf("expected StringLiteral, got %v", once)
	}
	twice := ctx.Repr(strLit)
	want := ty.TStringLiteral{Value: reprEscape(strLit.Value)}
	if !twice.Equals(want) {
		t.Errorf("repr(repr(7)): got %v, want %v", twice, want)
	}
}

func TestTruncateForDisplay(t *testing.T) {
	if got := TruncateForDisplay("short", 10); got != "short" {
		t.Errorf("expected no truncation, got %q", got)
	}
	got := TruncateForDisplay("abcdefghij", 5)
	if got != "abcde…" {
		t.Errorf("expected truncated string with ellipsis, got %q", got)
	}
}
