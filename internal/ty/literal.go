package ty

import (
	"strconv"
	"strings"
)

// TIntLiteral is the type of a single known integer value, e.g. the type of
// the expression `3` is IntLiteral(3), not Instance(int).
type TIntLiteral struct{ Value int64 }

func (TIntLiteral) Kind() Kind           { return KindIntLiteral }
func (t TIntLiteral) String() string     { return "Literal[" + strconv.FormatInt(t.Value, 10) + "]" }
func (t TIntLiteral) Equals(o Type) bool { other, ok := o.(TIntLiteral); return ok && other.Value == t.Value }

// TBooleanLiteral is the type of a single known bool value.
type TBooleanLiteral struct{ Value bool }

func (TBooleanLiteral) Kind() Kind       { return KindBooleanLiteral }
func (t TBooleanLiteral) String() string { return "Literal[" + strconv.FormatBool(t.Value) + "]" }
func (t TBooleanLiteral) Equals(o Type) bool {
	other, ok := o.(TBooleanLiteral)
	return ok && other.Value == t.Value
}

// TStringLiteral is the type of a single known str value.
type TStringLiteral struct{ Value string }

func (TStringLiteral) Kind() Kind       { return KindStringLiteral }
func (t TStringLiteral) String() string { return `Literal["` + t.Value + `"]` }
func (t TStringLiteral) Equals(o Type) bool {
	other, ok := o.(TStringLiteral)
	return ok && other.Value == t.Value
}

// TBytesLiteral is the type of a single known bytes value.
type TBytesLiteral struct{ Value string }

func (TBytesLiteral) Kind() Kind       { return KindBytesLiteral }
func (t TBytesLiteral) String() string { return `Literal[b"` + t.Value + `"]` }
func (t TBytesLiteral) Equals(o Type) bool {
	other, ok := o.(TBytesLiteral)
	return ok && other.Value == t.Value
}

// TTuple is a fixed-length, heterogeneous product type. Tuples are
// interned by their element sequence (internal/db), so two TTuple values
// with equal Elements slices are the same pointer everywhere in the kernel.
type TTuple struct{ Elements []Type }

func (TTuple) Kind() Kind { return KindTuple }

func (t TTuple) String() string {
	parts := make([]string, len(t.Elements))
	for i, e := range t.Elements {
		parts[i] = e.String()
	}
	return "tuple[" + strings.Join(parts, ", ") + "]"
}

func (t TTuple) Equals(o Type) bool {
	other, ok := o.(TTuple)
	if !ok || len(other.Elements) != len(t.Elements) {
		return false
	}
	for i := range t.Elements {
		if !t.Elements[i].Equals(other.Elements[i]) {
			return false
		}
	}
	return true
}
