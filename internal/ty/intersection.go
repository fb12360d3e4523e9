package ty

import "strings"

// TIntersection is a normalized intersection of positive constraints (τ is
// all of these) and negative constraints (τ is none of these, from `is not`
// narrowing). Construction goes exclusively through
// internal/ty/builder.IntersectionBuilder.
type TIntersection struct {
	Positive []Type
	Negative []Type
}

func (TIntersection) Kind() Kind { return KindIntersection }

func (t TIntersection) String() string {
	parts := make([]string, 0, len(t.Positive)+len(t.Negative))
	for _, e := range t.Positive {
		parts = append(parts, e.String())
	}
	for _, e := range t.Negative {
		parts = append(parts, "~"+e.String())
	}
	return strings.Join(parts, " & ")
}

func (t TIntersection) Equals(o Type) bool {
	other, ok := o.(TIntersection)
	if !ok {
		return false
	}
	return sameTypeSet(t.Positive, other.Positive) && sameTypeSet(t.Negative, other.Negative)
}

func sameTypeSet(a, b []Type) bool {
	if len(a) != len(b) {
		return false
	}
	used := make([]bool, len(b))
	for _, e := range a {
		found := false
		for i, oe := range b {
			if !used[i] && e.Equals(oe) {
				used[i] = true
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}
