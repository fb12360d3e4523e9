package ty

import "strings"

// TUnion is a normalized union of two or more member types. Construction
// goes exclusively through internal/ty/builder.UnionBuilder, which performs
// flattening, literal/instance absorption, and duplicate elimination before
// internal/db interns the result; TUnion itself never re-normalizes.
type TUnion struct{ Elements []Type }

func (TUnion) Kind() Kind { return KindUnion }

func (t TUnion) String() string {
	parts := make([]string, len(t.Elements))
	for i, e := range t.Elements {
		parts[i] = e.String()
	}
	return strings.Join(parts, " | ")
}

// Equals is a set-equality check over Elements (order need not match,
// though a builder-normalized union is already in a canonical first-seen
// order). This is structural identity, not the ≡ equivalence relation,
// which additionally accounts for assignability-preserving reorderings of
// forms the builder does not itself normalize; see internal/relations.
func (t TUnion) Equals(o Type) bool {
	other, ok := o.(TUnion)
	if !ok || len(other.Elements) != len(t.Elements) {
		return false
	}
	used := make([]bool, len(other.Elements))
	for _, e := range t.Elements {
		found := false
		for i, oe := range other.Elements {
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
