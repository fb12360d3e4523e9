// Package ty is the closed type-form algebra the kernel reasons over: a
// fixed sum of forms (Any, Unknown, Todo, Never, Unbound, None, Module,
// Class, Instance, Function, Union, Intersection, the literal forms, and
// Tuple), each a small struct implementing Type. The algebra is a closed
// gradual lattice: no type variables, no substitution, every form fully
// resolved at construction time.
package ty

import "fmt"

// Kind tags which form a Type is, so callers can type-switch without a
// dynamic type assertion on every arm.
type Kind int

const (
	KindAny Kind = iota
	KindUnknown
	KindTodo
	KindNever
	KindUnbound
	KindNone
	KindModule
	KindClass
	KindInstance
	KindFunction
	KindUnion
	KindIntersection
	KindIntLiteral
	KindBooleanLiteral
	KindStringLiteral
	KindLiteralString
	KindBytesLiteral
	KindTuple
)

func (k Kind) String() string {
	switch k {
	case KindAny:
		return "Any"
	case KindUnknown:
		return "Unknown"
	case KindTodo:
		return "Todo"
	case KindNever:
		return "Never"
	case KindUnbound:
		return "Unbound"
	case KindNone:
		return "None"
	case KindModule:
		return "Module"
	case KindClass:
		return "Class"
	case KindInstance:
		return "Instance"
	case KindFunction:
		return "Function"
	case KindUnion:
		return "Union"
	case KindIntersection:
		return "Intersection"
	case KindIntLiteral:
		return "IntLiteral"
	case KindBooleanLiteral:
		return "BooleanLiteral"
	case KindStringLiteral:
		return "StringLiteral"
	case KindLiteralString:
		return "LiteralString"
	case KindBytesLiteral:
		return "BytesLiteral"
	case KindTuple:
		return "Tuple"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Type is implemented by every form in the algebra. Equals is structural
// identity, not assignability or subtyping; those relations live in
// internal/relations and are computed over Type values, never encoded on
// them.
type Type interface {
	Kind() Kind
	String() string
	Equals(other Type) bool
}

// --- Gradual and bottom/top-adjacent singleton forms ---

// TAny is the fully-unknown gradual type: "anything goes", no soundness
// obligation attached to it.
type TAny struct{}

func (TAny) Kind() Kind          { return KindAny }
func (TAny) String() string      { return "Any" }
func (TAny) Equals(o Type) bool  { _, ok := o.(TAny); return ok }

// TUnknown is an unannotated, uninferable type distinct from Any: it still
// participates in gradual assignability but marks "the kernel could not
// figure this out", not "the author opted out of checking".
type TUnknown struct{}

func (TUnknown) Kind() Kind         { return KindUnknown }
func (TUnknown) String() string     { return "Unknown" }
func (TUnknown) Equals(o Type) bool { _, ok := o.(TUnknown); return ok }

// TTodo marks a construct the kernel deliberately does not model yet.
// It behaves like Any for relation purposes but is kept
// distinct so diagnostics can say "not yet supported" instead of pretending
// soundness was achieved.
type TTodo struct{ Reason string }

func (TTodo) Kind() Kind     { return KindTodo }
func (t TTodo) String() string {
	if t.Reason == "" {
		return "Todo"
	}
	return "Todo(" + t.Reason + ")"
}
func (t TTodo) Equals(o Type) bool { _, ok := o.(TTodo); return ok }

// TNever is the empty type: the bottom of the subtype lattice, a subtype of
// everything and assignable to everything.
type TNever struct{}

func (TNever) Kind() Kind         { return KindNever }
func (TNever) String() string     { return "Never" }
func (TNever) Equals(o Type) bool { _, ok := o.(TNever); return ok }

// TUnbound marks a symbol that may not have been assigned on some control
// flow path; it is not a real value type and must never leak into a
// reported public type without being combined away first.
type TUnbound struct{}

func (TUnbound) Kind() Kind         { return KindUnbound }
func (TUnbound) String() string     { return "Unbound" }
func (TUnbound) Equals(o Type) bool { _, ok := o.(TUnbound); return ok }

// TNone is the type of the None singleton.
type TNone struct{}

func (TNone) Kind() Kind         { return KindNone }
func (TNone) String() string     { return "None" }
func (TNone) Equals(o Type) bool { _, ok := o.(TNone); return ok }

// TLiteralString is the union of all string-literal types, used as the
// result of operations (e.g. string concatenation of two literals with
// unknown content) that are known to produce *some* string literal without
// pinning down which one.
type TLiteralString struct{}

func (TLiteralString) Kind() Kind         { return KindLiteralString }
func (TLiteralString) String() string     { return "LiteralString" }
func (TLiteralString) Equals(o Type) bool { _, ok := o.(TLiteralString); return ok }

// Singleton instances. Since these forms carry no payload, every occurrence
// is interchangeable; callers can compare by value or via Equals.
var (
	Any           Type = TAny{}
	Unknown       Type = TUnknown{}
	Never         Type = TNever{}
	Unbound       Type = TUnbound{}
	None          Type = TNone{}
	LiteralString Type = TLiteralString{}
)

// Todo returns a Todo type tagged with a human-readable reason, used at
// the boundary where the driver encounters a construct out of scope.
func Todo(reason string) Type { return TTodo{Reason: reason} }
