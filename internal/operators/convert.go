package operators

import (
	"github.com/sunholo/pylattice/internal/ty"
	"github.com/sunholo/pylattice/internal/ty/builder"
)

// ToInstance implements to_instance(τ): maps a class object
// to the set of its instances; literal forms map to the instance set of
// their known class; Instance/Unbound/Union pass through structurally.
func (c *Context) ToInstance(t ty.Type) ty.Type {
	switch v := t.(type) {
	case ty.TClass:
		if v.Class == nil {
			return ty.Unknown
		}
		return ty.Instance(v.Class)
	case ty.TUnbound:
		return ty.Unbound
	case ty.TUnion:
		b := builder.NewUnionBuilder(c.db, c.checker)
		for _, e := range v.Elements {
			b.Add(c.ToInstance(e))
		}
		return b.Build()
	case ty.TIntLiteral:
		return c.instanceOf(ty.KnownClassInt)
	case ty.TBooleanLiteral:
		return c.instanceOf(ty.KnownClassBool)
	case ty.TStringLiteral:
		return c.instanceOf(ty.KnownClassStr)
	case ty.TLiteralString:
		return c.instanceOf(ty.KnownClassStr)
	case ty.TBytesLiteral:
		return c.instanceOf(ty.KnownClassBytes)
	case ty.TTuple:
		return c.instanceOf(ty.KnownClassTuple)
	case ty.TNone:
		return c.instanceOf(ty.KnownClassNoneType)
	default:
		return t
	}
}

// ToMetaType implements to_meta_type(τ): the inverse map,
// from a set-of-instances type to the class object whose instances it
// describes.
func (c *Context) ToMetaType(t ty.Type) ty.Type {
	switch v := t.(type) {
	case ty.TInstance:
		if v.Class == nil {
			return ty.Unknown
		}
		return ty.Class(v.Class)
	case ty.TUnbound:
		return ty.Unbound
	case ty.TUnion:
		b := builder.NewUnionBuilder(c.db, c.checker)
		for _, e := range v.Elements {
			b.Add(c.ToMetaType(e))
		}
		return b.Build()
	case ty.TIntLiteral:
		return c.classOf(ty.KnownClassInt)
	case ty.TBooleanLiteral:
		return c.classOf(ty.KnownClassBool)
	case ty.TStringLiteral:
		return c.classOf(ty.KnownClassStr)
	case ty.TLiteralString:
		return c.classOf(ty.KnownClassStr)
	case ty.TBytesLiteral:
		return c.classOf(ty.KnownClassBytes)
	case ty.TTuple:
		return c.classOf(ty.KnownClassTuple)
	case ty.TNone:
		return c.classOf(ty.KnownClassNoneType)
	default:
		return t
	}
}
