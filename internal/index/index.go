// Package index defines the semantic-index surface the kernel is driven
// through: the precomputed mapping from scope to symbol to its
// bindings/declarations and the control-flow-sensitive view of which ones
// are visible at a use. Constructing this structure — lexing, parsing,
// building the use-def map — happens upstream of the kernel; this package
// only declares the interfaces internal/symbols consumes, so a driver can
// hand in its own semantic index implementation.
package index

import "github.com/sunholo/pylattice/internal/ty"

// Symbol is one named binding site in a scope: a local variable, a
// parameter, a class attribute, and so on.
type Symbol struct {
	Name string
	ID   string
}

// Binding is a program point that may assign a value to a name. Type is
// the inferred type of the assigned value at that point,
// before any narrowing is applied.
type Binding interface {
	Type() ty.Type
	NarrowingConstraints() []NarrowingConstraint
}

// NarrowingConstraint is a predicate attached to a binding that refines its
// type along a particular control-flow path, e.g. an
// `isinstance` check or an `is not None` guard. Type is the narrowing type
// the binding's inferred type gets intersected with.
type NarrowingConstraint interface {
	Type() ty.Type
}

// Declaration is a program point that annotates a name with a type, without
// necessarily assigning it, e.g. `x: int` with no `= ...`.
type Declaration interface {
	Type() ty.Type
}

// UseDefMap answers, for a symbol viewed from a particular use site (or from
// outside its defining scope, for a "public type" query), which bindings and
// declarations are reachable and whether some path might skip them
// entirely.
type UseDefMap interface {
	PublicBindings(symbolID string) []Binding
	PublicDeclarations(symbolID string) []Declaration
	PublicMayBeUnbound(symbolID string) bool
	PublicMayBeUndeclared(symbolID string) bool
	HasPublicDeclarations(symbolID string) bool
}

// Scope is one level of the analyzed program's lexical nesting (module,
// class body, function body): a symbol table mapping names to Symbols.
type Scope struct {
	ID      string
	Symbols map[string]Symbol
}

// Lookup returns the Symbol named name in this scope, if any.
func (s Scope) Lookup(name string) (Symbol, bool) {
	sym, ok := s.Symbols[name]
	return sym, ok
}
