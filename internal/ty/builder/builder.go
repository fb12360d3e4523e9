// Package builder implements UnionBuilder and IntersectionBuilder:
// accumulators that normalize a sequence of added types into a canonical
// Union or Intersection form, absorbing subtype-redundant elements as they
// arrive rather than in a separate pass. The builders return themselves
// from Add so call sites can chain.
package builder

import (
	"github.com/sunholo/pylattice/internal/db"
	"github.com/sunholo/pylattice/internal/relations"
	"github.com/sunholo/pylattice/internal/ty"
)

// UnionBuilder accumulates elements and produces a canonical Union,
// absorbing subtype-redundant elements and flattening nested unions as they
// are added.
type UnionBuilder struct {
	db       *db.DB
	checker  *relations.Checker
	elements []ty.Type
}

// NewUnionBuilder creates an empty UnionBuilder. d interns the eventual
// result; checker supplies the subtype relation the absorption rules are
// defined in terms of.
func NewUnionBuilder(d *db.DB, checker *relations.Checker) *UnionBuilder {
	return &UnionBuilder{db: d, checker: checker}
}

// Add accumulates t, applying the absorption rules. It
// returns the builder so calls can be chained.
func (b *UnionBuilder) Add(t ty.Type) *UnionBuilder {
	if _, ok := t.(ty.TNever); ok {
		return b // Never is the identity element, dropped.
	}
	if u, ok := t.(ty.TUnion); ok {
		for _, e := range u.Elements {
			b.Add(e)
		}
		return b
	}

	for i, existing := range b.elements {
		if b.checker.Subtype(t, existing) {
			return b // t is redundant: an existing element already covers it.
		}
		if b.checker.Subtype(existing, t) {
			b.elements = append(b.elements[:i], b.elements[i+1:]...)
			b.elements = append(b.elements, t)
			return b
		}
	}
	b.elements = append(b.elements, t)
	return b
}

// Build finalizes the union: the single remaining element if exactly one
// survived, Never if none did, otherwise a fresh interned Union.
func (b *UnionBuilder) Build() ty.Type {
	switch len(b.elements) {
	case 0:
		return ty.Never
	case 1:
		return b.elements[0]
	default:
		elements := make([]ty.Type, len(b.elements))
		copy(elements, b.elements)
		return b.db.InternUnion(elements)
	}
}

// UnionOf is a convenience constructor equivalent to adding each of ts in
// order and calling Build.
func UnionOf(d *db.DB, checker *relations.Checker, ts ...ty.Type) ty.Type {
	b := NewUnionBuilder(d, checker)
	for _, t := range ts {
		b.Add(t)
	}
	return b.Build()
}
