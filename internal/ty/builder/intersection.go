package builder

import (
	"github.com/sunholo/pylattice/internal/db"
	"github.com/sunholo/pylattice/internal/relations"
	"github.com/sunholo/pylattice/internal/ty"
)

// branch is one fork of an IntersectionBuilder: a positive/negative
// accumulator plus the two terminal states (collapsed to Unbound, or to
// Never) that short-circuit further accumulation on that branch.
type branch struct {
	positive  []ty.Type
	negative  []ty.Type
	isUnbound bool
	isNever   bool
}

// IntersectionBuilder accumulates positive and negative constraints and
// produces a canonical Intersection (or Union of Intersections, if a
// positive Union forced a fork).
type IntersectionBuilder struct {
	db       *db.DB
	checker  *relations.Checker
	branches []*branch
}

// NewIntersectionBuilder creates an IntersectionBuilder with a single empty
// branch.
func NewIntersectionBuilder(d *db.DB, checker *relations.Checker) *IntersectionBuilder {
	return &IntersectionBuilder{db: d, checker: checker, branches: []*branch{{}}}
}

// AddPositive accumulates a positive constraint across every live branch.
func (b *IntersectionBuilder) AddPositive(t ty.Type) *IntersectionBuilder {
	if u, ok := t.(ty.TUnion); ok {
		b.fork(u.Elements)
		return b
	}
	for _, br := range b.branches {
		b.addPositiveToBranch(br, t)
	}
	return b
}

// fork replaces every live branch with |arms| clones, one per arm, each
// with that arm added as a positive constraint — the "builder forks into
// |us| parallel builders" rule for a positive Union.
func (b *IntersectionBuilder) fork(arms []ty.Type) {
	var next []*branch
	for _, br := range b.branches {
		for _, arm := range arms {
			clone := &branch{
				positive:  append([]ty.Type{}, br.positive...),
				negative:  append([]ty.Type{}, br.negative...),
				isUnbound: br.isUnbound,
				isNever:   br.isNever,
			}
			b.addPositiveToBranch(clone, arm)
			next = append(next, clone)
		}
	}
	b.branches = next
}

func (b *IntersectionBuilder) addPositiveToBranch(br *branch, t ty.Type) {
	if br.isNever || br.isUnbound {
		return
	}
	switch t.(type) {
	case ty.TAny, ty.TUnknown, ty.TTodo:
		return // identity on the positive side
	case ty.TUnbound:
		br.isUnbound = true
		return
	}

	for _, n := range br.negative {
		if b.checker.Subtype(t, n) {
			br.isNever = true
			return
		}
	}

	kept := br.positive[:0:0]
	redundant := false
	for _, existing := range br.positive {
		if b.checker.Subtype(t, existing) {
			continue // t implies existing; the wider constraint is dropped
		}
		if b.checker.Subtype(existing, t) {
			redundant = true // existing implies t; t adds nothing
		}
		kept = append(kept, existing)
	}
	br.positive = kept
	if !redundant {
		br.positive = append(br.positive, t)
	}
}

// AddNegative accumulates a negative constraint (from `is not` narrowing)
// across every live branch.
func (b *IntersectionBuilder) AddNegative(t ty.Type) *IntersectionBuilder {
	for _, br := range b.branches {
		b.addNegativeToBranch(br, t)
	}
	return b
}

func (b *IntersectionBuilder) addNegativeToBranch(br *branch, t ty.Type) {
	if br.isNever || br.isUnbound {
		return
	}
	if _, ok := t.(ty.TUnbound); ok {
		return // cannot meaningfully exclude Unbound; dropped.
	}
	for _, p := range br.positive {
		if b.checker.Subtype(p, t) {
			br.isNever = true
			return
		}
	}
	br.negative = append(br.negative, t)
}

// Build finalizes each branch and unions the results (a no-op union when
// there was no fork).
func (b *IntersectionBuilder) Build() ty.Type {
	union := NewUnionBuilder(b.db, b.checker)
	for _, br := range b.branches {
		union.Add(b.buildBranch(br))
	}
	return union.Build()
}

func (b *IntersectionBuilder) buildBranch(br *branch) ty.Type {
	if br.isUnbound {
		return ty.Unbound
	}
	if br.isNever {
		return ty.Never
	}
	if len(br.positive) == 0 && len(br.negative) == 0 {
		// No constraint at all: the kernel's own convention for "nothing
		// narrowed this" is Any, not a claim about object-ness.
		return ty.Any
	}
	if len(br.positive) == 1 && len(br.negative) == 0 {
		return br.positive[0]
	}
	positive := make([]ty.Type, len(br.positive))
	copy(positive, br.positive)
	negative := make([]ty.Type, len(br.negative))
	copy(negative, br.negative)
	return b.db.InternIntersection(positive, negative)
}
