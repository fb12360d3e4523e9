package operators

import (
	"testing"

	"github.com/sunholo/pylattice/internal/ty"
)

func TestToInstanceAndToMetaType(t *testing.T) {
	ctx, _, checker, _ := newFixture()
	intCls := checker.KnownClasses[ty.KnownClassInt]

	if got := ctx.ToInstance(ty.Class(intCls)); !got.Equals(ty.Instance(intCls)) {
		t.Errorf("ToInstance(Class(int)): got %v", got)
	}
	if got := ctx.ToMetaType(ty.Instance(intCls)); !got.Equals(ty.Class(intCls)) {
		t.Errorf("ToMetaType(Instance(int)): got %v", got)
	}
	if got := ctx.ToInstance(ty.TIntLiteral{Value: 5}); !got.Equals(ty.Instance(intCls)) {
		t.Errorf("ToInstance(IntLiteral(5)): got %v", got)
	}
	if got := ctx.ToMetaType(ty.TIntLiteral{Value: 5}); !got.Equals(ty.Class(intCls)) {
		t.Errorf("ToMetaType(IntLiteral(5)): got %v", got)
	}
	if got := ctx.ToInstance(ty.Unbound); !got.Equals(ty.Unbound) {
		t.Errorf("ToInstance(Unbound): got %v", got)
	}
}

func TestToInstanceOnUnion(t *testing.T) {
	ctx, _, checker, d := newFixture()
	intCls := checker.KnownClasses[ty.KnownClassInt]
	strCls := checker.KnownClasses[ty.KnownClassStr]
	u := d.InternUnion([]ty.Type{ty.Class(intCls), ty.Class(strCls)})

	got := ctx.ToInstance(u)
	union, ok := got.(ty.TUnion)
	if !ok || len(union.Elements) != 2 {
		t.Fatalf("expected 2-element union, got %v", got)
	}
}
