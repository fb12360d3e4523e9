package ty

// KnownFunction enumerates builtins recognized by identity for special
// operator handling. The only member today is RevealType, the
// `reveal_type()` builtin that turns a call into a diagnostic instead of an
// ordinary value-producing expression.
type KnownFunction int

const (
	KnownFunctionNone KnownFunction = iota
	KnownFunctionRevealType
)

func (k KnownFunction) String() string {
	switch k {
	case KnownFunctionRevealType:
		return "reveal_type"
	default:
		return "<not-known>"
	}
}

// FunctionType is the payload of TFunction: name, defining Definition, the
// (already-inferred) types of its decorators in source order, and an
// optional KnownFunction tag.
type FunctionType struct {
	Name       string
	Def        *Definition
	Decorators []Type
	Known      KnownFunction
}

// IsKnown reports whether this function was recognized as a KnownFunction.
func (f *FunctionType) IsKnown() bool { return f.Known != KnownFunctionNone }

// TFunction is the type of a function object.
type TFunction struct{ Function *FunctionType }

func (TFunction) Kind() Kind { return KindFunction }

func (t TFunction) String() string {
	if t.Function == nil {
		return "<function ?>"
	}
	return "<function " + t.Function.Name + ">"
}

func (t TFunction) Equals(o Type) bool {
	other, ok := o.(TFunction)
	return ok && other.Function == t.Function
}
