package relations

import "github.com/sunholo/pylattice/internal/ty"

// Assignable implements τ ⇝ σ, the gradual-subtyping relation.
func (c *Checker) Assignable(a, b ty.Type) bool {
	if isGradualForm(a) || isGradualForm(b) {
		return true
	}
	if bu, ok := b.(ty.TUnion); ok {
		for _, u := range bu.Elements {
			if c.Assignable(a, u) {
				return true
			}
		}
		return false
	}
	return c.Subtype(a, b)
}
