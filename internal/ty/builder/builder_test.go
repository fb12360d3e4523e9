package builder

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/sunholo/pylattice/internal/classgraph"
	"github.com/sunholo/pylattice/internal/db"
	"github.com/sunholo/pylattice/internal/relations"
	"github.com/sunholo/pylattice/internal/ty"
)

type fakeDecl struct {
	class *ty.ClassType
	bases []ty.Type
}

func (d fakeDecl) Class() *ty.ClassType             { return d.class }
func (d fakeDecl) BaseTypes() []ty.Type             { return d.bases }
func (d fakeDecl) OwnMember(string) (ty.Type, bool) { return nil, false }

func newChecker() (*db.DB, *relations.Checker, *ty.ClassType) {
	d := db.NewMemory()
	g := classgraph.New(d)
	object := &ty.ClassType{Name: "object", Known: ty.KnownClassObject}
	intCls := &ty.ClassType{Name: "int", Known: ty.KnownClassInt, Def: &ty.Definition{ID: "int"}}
	g.Register(fakeDecl{class: object})
	g.Register(fakeDecl{class: intCls, bases: []ty.Type{ty.Class(object)}})
	c := relations.New(g, object)
	c.KnownClasses[ty.KnownClassInt] = intCls
	return d, c, intCls
}

func TestUnionBuilderDropsNeverAndDuplicates(t *testing.T) {
	d, c, intCls := newChecker()
	result := UnionOf(d, c, ty.Never, ty.None, ty.Never, ty.None)
	if !result.Equals(ty.None) {
		t.Errorf("expected None (single surviving element), got %s", result)
	}

	result = UnionOf(d, c, ty.TIntLiteral{Value: 1}, ty.Instance(intCls))
	if !result.Equals(ty.Instance(intCls)) {
		t.Errorf("IntLiteral(1) should be absorbed into Instance(int), got %s", result)
	}
}

func TestUnionBuilderFlattensNestedUnions(t *testing.T) {
	d, c, _ := newChecker()
	inner := UnionOf(d, c, ty.None, ty.TIntLiteral{Value: 1})
	outer := UnionOf(d, c, inner, ty.TIntLiteral{Value: 2})
	u, ok := outer.(ty.TUnion)
	if !ok {
		t.Fatalf("expected a flattened TUnion, got %T", outer)
	}
	// Flattening must preserve first-occurrence order; cmp.Diff
	// over the element slice pins down both count and order in one assertion.
	want := []ty.Type{ty.None, ty.TIntLiteral{Value: 1}, ty.TIntLiteral{Value: 2}}
	if diff := cmp.Diff(want, u.Elements); diff != "" {
		t.Errorf("flattened union elements mismatch (-want +got):\n%s", diff)
	}
}

func TestUnionBuilderEmptyBuildsNever(t *testing.T) {
	d, c, _ := newChecker()
	b := NewUnionBuilder(d, c)
	if got := b.Build(); !got.Equals(ty.Never) {
		t.Errorf("empty UnionBuilder should build Never, got %s", got)
	}
}

func TestIntersectionCollapsesToNeverOnOverlap(t *testing.T) {
	d, c, intCls := newChecker()
	b := NewIntersectionBuilder(d, c)
	b.AddPositive(ty.Instance(intCls)).AddNegative(ty.Instance(intCls))
	if got := b.Build(); !got.Equals(ty.Never) {
		t.Errorf("positive and negative on the same type should collapse to Never, got %s", got)
	}
}

func TestIntersectionPositiveUnbound(t *testing.T) {
	d, c, _ := newChecker()
	b := NewIntersectionBuilder(d, c)
	b.AddPositive(ty.Unbound).AddPositive(ty.None)
	if got := b.Build(); !got.Equals(ty.Unbound) {
		t.Errorf("a positive Unbound constraint should collapse the intersection to Unbound, got %s", got)
	}
}

func TestIntersectionNegativeUnboundDropped(t *testing.T) {
	d, c, intCls := newChecker()
	b := NewIntersectionBuilder(d, c)
	b.AddPositive(ty.Instance(intCls)).AddNegative(ty.Unbound)
	if got := b.Build(); !got.Equals(ty.Instance(intCls)) {
		t.Errorf("a negative Unbound constraint should be dropped, got %s", got)
	}
}

func TestIntersectionPositiveUnionForks(t *testing.T) {
	d, c, intCls := newChecker()
	b := NewIntersectionBuilder(d, c)
	u := ty.TUnion{Elements: []ty.Type{ty.Instance(intCls), ty.None}}
	b.AddPositive(u)
	result := b.Build()
	forked, ok := result.(ty.TUnion)
	if !ok {
		t.Fatalf("expected forking to produce a union of branch results, got %T: %s", result, result)
	}
	if len(forked.Elements) != 2 {
		t.Errorf("expected 2 forked branches, got %d", len(forked.Elements))
	}
}

func TestIntersectionKeepsNarrowerPositive(t *testing.T) {
	d, c, intCls := newChecker()
	b := NewIntersectionBuilder(d, c)
	b.AddPositive(ty.Instance(intCls)).AddPositive(ty.TIntLiteral{Value: 1})
	if got := b.Build(); !got.Equals(ty.TIntLiteral{Value: 1}) {
		t.Errorf("the wider Instance(int) should be absorbed by Literal[1], got %s", got)
	}

	// Same pair, opposite arrival order.
	b = NewIntersectionBuilder(d, c)
	b.AddPositive(ty.TIntLiteral{Value: 1}).AddPositive(ty.Instance(intCls))
	if got := b.Build(); !got.Equals(ty.TIntLiteral{Value: 1}) {
		t.Errorf("a later, wider Instance(int) should be redundant, got %s", got)
	}
}

func TestIntersectionSingleConstraintIsIdentity(t *testing.T) {
	d, c, intCls := newChecker()
	b := NewIntersectionBuilder(d, c)
	b.AddPositive(ty.Instance(intCls))
	if got := b.Build(); !got.Equals(ty.Instance(intCls)) {
		t.Errorf("a single positive constraint should build to that constraint directly, got %s", got)
	}
}
