package operators

import (
	"github.com/sunholo/pylattice/internal/ty"
	"github.com/sunholo/pylattice/internal/ty/builder"
)

// IterationOutcomeKind tags which shape of IterationOutcome Iterate
// produced.
type IterationOutcomeKind int

const (
	IterationIterable IterationOutcomeKind = iota
	IterationNotIterable
)

// IterationOutcome is the outcome sum iterate() returns.
type IterationOutcome struct {
	Kind    IterationOutcomeKind
	Element ty.Type // valid only when Kind == IterationIterable
}

// Iterate implements iterate(τ): a Tuple's element type is
// the union of its members; Any/Unknown iterate as themselves; everything
// else goes through the __iter__/__next__ dunder chain, falling back to
// __getitem__ if __iter__ is unbound.
func (c *Context) Iterate(t ty.Type) IterationOutcome {
	switch v := t.(type) {
	case ty.TTuple:
		return IterationOutcome{Kind: IterationIterable, Element: builder.UnionOf(c.db, c.checker, v.Elements...)}
	case ty.TAny, ty.TUnknown:
		return IterationOutcome{Kind: IterationIterable, Element: t}
	default:
		return c.iterateViaDunders(t)
	}
}

func (c *Context) iterateViaDunders(t ty.Type) IterationOutcome {
	meta := c.ToMetaType(t)

	if iterDunder := c.Member(meta, "__iter__"); !iterDunder.Equals(ty.Unbound) {
		iterOutcome := c.Call(iterDunder, []ty.Type{t})
		if iteratorTy, ok := c.callableReturn(iterOutcome); ok {
			iteratorMeta := c.ToMetaType(iteratorTy)
			if nextDunder := c.Member(iteratorMeta, "__next__"); !nextDunder.Equals(ty.Unbound) {
				nextOutcome := c.Call(nextDunder, []ty.Type{iteratorTy})
				if elem, ok := c.callableReturn(nextOutcome); ok {
					return IterationOutcome{Kind: IterationIterable, Element: elem}
				}
			}
		}
	}

	// TODO: check the argument type __getitem__ actually accepts instead of
	// assuming it takes an int index.
	if getitemDunder := c.Member(meta, "__getitem__"); !getitemDunder.Equals(ty.Unbound) {
		args := []ty.Type{t, c.instanceOf(ty.KnownClassInt)}
		outcome := c.Call(getitemDunder, args)
		if elem, ok := c.callableReturn(outcome); ok {
			return IterationOutcome{Kind: IterationIterable, Element: elem}
		}
	}

	return IterationOutcome{Kind: IterationNotIterable}
}

// callableReturn reports whether outcome resolved to a usable return type
// without itself raising a call diagnostic (a bare Callable/RevealType
// outcome, or a Union outcome with no not-callable arms).
func (c *Context) callableReturn(outcome CallOutcome) (ty.Type, bool) {
	switch outcome.Kind {
	case CallOutcomeCallable:
		return outcome.Return, true
	case CallOutcomeRevealType:
		return outcome.Return, true
	case CallOutcomeUnion:
		for _, sub := range outcome.Outcomes {
			if sub.Kind == CallOutcomeNotCallable {
				return nil, false
			}
		}
		ret, _ := c.ReturnTypeResult(outcome)
		return ret, true
	default:
		return nil, false
	}
}
