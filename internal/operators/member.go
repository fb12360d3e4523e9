package operators

import (
	"github.com/sunholo/pylattice/internal/ty"
	"github.com/sunholo/pylattice/internal/ty/builder"
)

// Member implements member(τ, n), attribute access.
func (c *Context) Member(t ty.Type, name string) ty.Type {
	switch v := t.(type) {
	case ty.TAny:
		return ty.Any
	case ty.TUnknown:
		return ty.Unknown
	case ty.TTodo:
		return ty.Todo("member access on an unsupported construct")
	case ty.TUnbound:
		return ty.Unbound
	case ty.TModule:
		if c.globals == nil || v.File == nil {
			return ty.Unknown
		}
		return c.globals.GlobalSymbolType(v.File, name)
	case ty.TClass:
		if v.Class == nil || c.checker == nil || c.checker.Graph == nil {
			return ty.Unbound
		}
		results := c.checker.Graph.ClassMember(v.Class, name, c.checker.Object)
		return builder.UnionOf(c.db, c.checker, results...)
	case ty.TUnion:
		b := builder.NewUnionBuilder(c.db, c.checker)
		for _, e := range v.Elements {
			b.Add(c.Member(e, name))
		}
		return b.Build()
	default:
		return ty.Todo("member access on " + t.Kind().String())
	}
}
