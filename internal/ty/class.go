package ty

// ClassType is the payload shared by TClass (the class object itself) and
// TInstance (an instance of it): unqualified name, the Definition that
// introduced it, a body_scope identity used for own-member lookup, and an
// optional KnownClass tag for identity-based special-casing.
//
// ClassType values are interned by internal/db keyed on Definition.ID, so
// every reference to "the same class" throughout a check run shares one
// pointer — which is what lets classgraph cache MRO computation per class
// rather than per occurrence.
type ClassType struct {
	Name      string
	Def       *Definition
	BodyScope string
	Known     KnownClass
}

// IsKnown reports whether this class was recognized as one of the KnownClass
// identities.
func (c *ClassType) IsKnown() bool { return c.Known != KnownClassNone }

// TClass is the type of the class object itself, e.g. the type of the name
// `int` used as a value (not `int()`).
type TClass struct{ Class *ClassType }

func (TClass) Kind() Kind { return KindClass }

func (t TClass) String() string {
	if t.Class == nil {
		return "<class ?>"
	}
	return "<class '" + t.Class.Name + "'>"
}

func (t TClass) Equals(o Type) bool {
	other, ok := o.(TClass)
	return ok && other.Class == t.Class
}

// TInstance is the type of an instance of a class, e.g. the type of the
// expression `3` at the class level (ignoring literal narrowing) is
// Instance(int).
type TInstance struct{ Class *ClassType }

func (TInstance) Kind() Kind { return KindInstance }

func (t TInstance) String() string {
	if t.Class == nil {
		return "<instance ?>"
	}
	return t.Class.Name
}

func (t TInstance) Equals(o Type) bool {
	other, ok := o.(TInstance)
	return ok && other.Class == t.Class
}

// Instance builds the Instance(c) type form for class c.
func Instance(c *ClassType) Type { return TInstance{Class: c} }

// Class builds the Class(c) type form for class c (the class object type).
func Class(c *ClassType) Type { return TClass{Class: c} }

// IsObjectInstance reports whether t is Instance(object), the top of the
// "real value" portion of the lattice.
func IsObjectInstance(t Type) bool {
	inst, ok := t.(TInstance)
	return ok && inst.Class != nil && inst.Class.Known == KnownClassObject
}
