// Package relations implements the kernel's three core relations over
// types — equivalence (≡), subtype (<:), and assignability (⇝) — plus
// three-valued truthiness. Each relation is a pairwise type-form
// dispatch: a type-switch walking both operands together, computing a
// fixed boolean/ternary predicate with nothing to solve for.
package relations

import (
	"github.com/sunholo/pylattice/internal/classgraph"
	"github.com/sunholo/pylattice/internal/ty"
)

// Checker evaluates relations in the context of one class graph: nominal
// subtyping (Instance(c) <: Instance(d)) and the "bool inherits int via the
// class graph" rule both need to consult it.
type Checker struct {
	Graph  *classgraph.Graph
	Object *ty.ClassType

	// KnownClasses maps a KnownClass tag to the concrete ClassType the
	// driver registered for it, used when a relation needs to walk the
	// class graph starting from a tag rather than from an existing
	// Instance/Class value (e.g. "is bool registered as a subclass of
	// int").
	KnownClasses map[ty.KnownClass]*ty.ClassType
}

// New creates a Checker over g, treating object as the canonical `object`
// class.
func New(g *classgraph.Graph, object *ty.ClassType) *Checker {
	return &Checker{Graph: g, Object: object, KnownClasses: make(map[ty.KnownClass]*ty.ClassType)}
}

func isGradualForm(t ty.Type) bool {
	switch t.(type) {
	case ty.TAny, ty.TUnknown, ty.TTodo:
		return true
	default:
		return false
	}
}

func isInstanceOfKnown(t ty.Type, k ty.KnownClass) bool {
	inst, ok := t.(ty.TInstance)
	return ok && inst.Class != nil && inst.Class.Known == k
}

func (c *Checker) classIsSubclassByKnown(sub, super ty.KnownClass) bool {
	subClass, ok1 := c.KnownClasses[sub]
	superClass, ok2 := c.KnownClasses[super]
	if !ok1 || !ok2 || c.Graph == nil {
		return false
	}
	return c.Graph.IsSubclass(subClass, superClass, c.Object)
}

// orderedSeqEqual compares two type sequences position-by-position.
func orderedSeqEqual(a, b []ty.Type) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !a[i].Equals(b[i]) {
			return false
		}
	}
	return true
}

// Equivalent implements τ ≡ σ: identical by interned ID.
// Structurally-equal-but-reordered unions/intersections do not count —
// only an exact, order-preserving match does, keeping interned-ID
// semantics rather than set equality. Every other
// form's equivalence reduces to Type.Equals, which is already exact.
func Equivalent(a, b ty.Type) bool {
	switch at := a.(type) {
	case ty.TUnion:
		bt, ok := b.(ty.TUnion)
		return ok && orderedSeqEqual(at.Elements, bt.Elements)
	case ty.TIntersection:
		bt, ok := b.(ty.TIntersection)
		return ok && orderedSeqEqual(at.Positive, bt.Positive) && orderedSeqEqual(at.Negative, bt.Negative)
	default:
		return a.Equals(b)
	}
}
