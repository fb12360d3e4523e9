// Package operators implements the kernel's operators over types:
// attribute access (member), call, iteration, str/repr specialization, and
// the to_instance/to_meta_type maps. Every operator is a dispatch over the
// concrete type forms; the index/slice arithmetic itself lives in
// internal/subscript.
package operators

import (
	"github.com/sunholo/pylattice/internal/db"
	"github.com/sunholo/pylattice/internal/relations"
	"github.com/sunholo/pylattice/internal/ty"
)

// GlobalResolver answers global_symbol_ty(file, name), the Module(file)
// arm of member: the driver's per-module symbol table is an external
// collaborator, so the kernel only depends on this narrow interface rather
// than importing a module-scope symbol resolver.
type GlobalResolver interface {
	GlobalSymbolType(file ty.ModuleFile, name string) ty.Type
}

// FunctionReturnTyper answers a function's annotated return type. Return
// types come from annotations only; the kernel never infers one itself,
// the driver supplies it back through this callback the same way DB
// callbacks answer every other cross-expression question.
type FunctionReturnTyper interface {
	ReturnType(f *ty.FunctionType) ty.Type
}

// Context bundles the collaborators every operator needs: the interning DB,
// a relations.Checker (which already carries the class graph, the object
// class, and the KnownClass→ClassType registry), and the two driver
// callbacks above.
type Context struct {
	db      *db.DB
	checker *relations.Checker
	globals GlobalResolver
	returns FunctionReturnTyper
}

// New creates an operators Context. globals and returns may be nil, in
// which case Member on a Module and Call on a Function/RevealType degrade
// to Unknown rather than panicking — useful for tests that only exercise
// the class-graph-driven operators.
func New(d *db.DB, checker *relations.Checker, globals GlobalResolver, returns FunctionReturnTyper) *Context {
	return &Context{db: d, checker: checker, globals: globals, returns: returns}
}

func (c *Context) instanceOf(k ty.KnownClass) ty.Type {
	if c.checker == nil {
		return ty.Unknown
	}
	cls, ok := c.checker.KnownClasses[k]
	if !ok || cls == nil {
		return ty.Unknown
	}
	return ty.Instance(cls)
}

func (c *Context) classOf(k ty.KnownClass) ty.Type {
	if c.checker == nil {
		return ty.Unknown
	}
	cls, ok := c.checker.KnownClasses[k]
	if !ok || cls == nil {
		return ty.Unknown
	}
	return ty.Class(cls)
}
