package relations

import "github.com/sunholo/pylattice/internal/ty"

// Subtype implements the τ <: σ relation.
func (c *Checker) Subtype(a, b ty.Type) bool {
	if Equivalent(a, b) {
		return true
	}

	// Any/Unknown/Todo are unrelated to anything by subtype except
	// reflexivity, already handled by the Equivalent check above.
	if isGradualForm(a) || isGradualForm(b) {
		return false
	}

	if _, ok := a.(ty.TNever); ok {
		return true
	}
	if _, ok := b.(ty.TNever); ok {
		return false // a == Never already handled by Equivalent
	}

	// Union on the left: every arm must be a subtype of the target.
	// Checked ahead of the right-union rule so Union-vs-Union
	// comparisons go through the all-arms path rather than the any-arm one.
	if au, ok := a.(ty.TUnion); ok {
		for _, u := range au.Elements {
			if !c.Subtype(u, b) {
				return false
			}
		}
		return true
	}

	if bu, ok := b.(ty.TUnion); ok {
		for _, u := range bu.Elements {
			if c.Subtype(a, u) {
				return true
			}
		}
		return false
	}

	switch av := a.(type) {
	case ty.TIntLiteral:
		if isInstanceOfKnown(b, ty.KnownClassInt) {
			return true
		}
	case ty.TBooleanLiteral:
		if isInstanceOfKnown(b, ty.KnownClassBool) {
			return true
		}
		if isInstanceOfKnown(b, ty.KnownClassInt) {
			return c.classIsSubclassByKnown(ty.KnownClassBool, ty.KnownClassInt)
		}
	case ty.TStringLiteral:
		if _, ok := b.(ty.TLiteralString); ok {
			return true
		}
		if isInstanceOfKnown(b, ty.KnownClassStr) {
			return true
		}
	case ty.TBytesLiteral:
		if isInstanceOfKnown(b, ty.KnownClassBytes) {
			return true
		}
	case ty.TLiteralString:
		if isInstanceOfKnown(b, ty.KnownClassStr) {
			return true
		}
	case ty.TTuple:
		if bt, ok := b.(ty.TTuple); ok {
			if len(av.Elements) != len(bt.Elements) {
				return false
			}
			for i := range av.Elements {
				if !c.Subtype(av.Elements[i], bt.Elements[i]) {
					return false
				}
			}
			return true
		}
		if isInstanceOfKnown(b, ty.KnownClassTuple) {
			return true
		}
	}

	// τ <: Instance(object) for every τ that is not Any/Unknown/Todo
	// (already excluded above). Instance(object) itself only reaches here
	// when a != b, so it is not <: anything but itself — handled by
	// Equivalent — hence no special case needed for a == Instance(object).
	if isInstanceOfKnown(b, ty.KnownClassObject) {
		return true
	}

	// Nominal class subtyping via the registered class graph.
	if ai, ok := a.(ty.TInstance); ok {
		if bi, ok2 := b.(ty.TInstance); ok2 && ai.Class != nil && bi.Class != nil && c.Graph != nil {
			return c.Graph.IsSubclass(ai.Class, bi.Class, c.Object)
		}
	}

	return false
}
