package operators

import (
	"testing"

	"github.com/sunholo/pylattice/internal/ty"
)

func TestIndexTuple(t *testing.T) {
	ctx, _, checker, d := newFixture()
	intCls := checker.KnownClasses[ty.KnownClassInt]
	strCls := checker.KnownClasses[ty.KnownClassStr]
	tup := d.InternTuple([]ty.Type{ty.Instance(intCls), ty.Instance(strCls)})

	got, err := ctx.IndexTuple(tup, -1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !got.Equals(ty.Instance(strCls)) {
		t.Errorf("tuple[-1]: got %v", got)
	}

	if _, err := ctx.IndexTuple(tup, 5); err == nil {
		t.Error("expected out-of-bounds error")
	}
}

func TestSliceTuple(t *testing.T) {
	ctx, _, _, d := newFixture()
	elems := make([]ty.Type, 7)
	for i := range elems {
		elems[i] = ty.TIntLiteral{Value: int64(i)}
	}
	tup := d.InternTuple(elems)

	step := int64(-3)
	start := int64(6)
	got, err := ctx.SliceTuple(tup, &start, nil, &step)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	gotTup, ok := got.(ty.TTuple)
	if !ok {
		t.Fatalf("expected TTuple, got %v", got)
	}
	want := []int64{6, 3, 0}
	if len(gotTup.Elements) != len(want) {
		t.Fatalf("expected %d elements, got %d", len(want), len(gotTup.Elements))
	}
	for i, w := range want {
		if !gotTup.Elements[i].Equals(ty.TIntLiteral{Value: w}) {
			t.Errorf("position %d: got %v, want IntLiteral(%d)", i, gotTup.Elements[i], w)
		}
	}
}
