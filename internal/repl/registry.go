// Package repl implements an interactive "ask the kernel for a type" loop:
// rather than evaluating any analyzed source language, it lets a user build
// up a small class graph and a handful of symbols by hand, through
// colon-commands, and query the relations and operators packages over the
// results. The liner-driven loop and colored prompt follow a familiar REPL
// shape; the command dispatch follows a "query the type lattice" set of
// colon-commands (:mro, :member, :call, :subtype, ...).
package repl

import (
	"fmt"

	"github.com/sunholo/pylattice/internal/classgraph"
	"github.com/sunholo/pylattice/internal/db"
	"github.com/sunholo/pylattice/internal/index"
	"github.com/sunholo/pylattice/internal/module"
	"github.com/sunholo/pylattice/internal/sid"
	"github.com/sunholo/pylattice/internal/ty"
)

// replFile is the synthetic file identity REPL-defined classes and
// functions are keyed under, since no real module backs them.
const replFile = "<repl>"

// dynamicDecl is a classgraph.ClassDeclaration backed by mutable maps the
// REPL can update as the user issues :class/:attr commands, rather than the
// immutable AST-derived declarations a real driver would supply.
type dynamicDecl struct {
	class   *ty.ClassType
	bases   []ty.Type
	members map[string]ty.Type
}

func (d *dynamicDecl) Class() *ty.ClassType { return d.class }
func (d *dynamicDecl) BaseTypes() []ty.Type { return d.bases }
func (d *dynamicDecl) OwnMember(name string) (ty.Type, bool) {
	t, ok := d.members[name]
	return t, ok
}

// declType is an index.Declaration over a single recorded type expression.
type declType struct{ t ty.Type }

func (d declType) Type() ty.Type { return d.t }

// symbolTable is the index.UseDefMap the REPL hands to symbols.Resolver:
// :declare commands append declarations for a name, with no
// notion of bindings, unbound, or undeclared paths, since the REPL never
// models control flow — only the declared-type folding and
// conflicting-declarations diagnostic is exercised this way.
type symbolTable struct {
	decls map[string][]index.Declaration
}

func newSymbolTable() *symbolTable {
	return &symbolTable{decls: make(map[string][]index.Declaration)}
}

func (s *symbolTable) PublicBindings(string) []index.Binding             { return nil }
func (s *symbolTable) PublicDeclarations(id string) []index.Declaration  { return s.decls[id] }
func (s *symbolTable) PublicMayBeUnbound(string) bool                    { return false }
func (s *symbolTable) PublicMayBeUndeclared(string) bool                 { return false }
func (s *symbolTable) HasPublicDeclarations(id string) bool              { return len(s.decls[id]) > 0 }

// moduleEntry pairs a resolved module file with the global symbols the
// driver has declared for it.
type moduleEntry struct {
	mod     *module.Module
	globals map[string]ty.Type
}

// Registry is the REPL's symbol table: named classes, named functions, and
// named modules, backed by the same DB/Graph the kernel's relations and
// operators consult.
type Registry struct {
	db       *db.DB
	graph    *classgraph.Graph
	object   *ty.ClassType
	resolver *module.Resolver

	classes   map[string]*dynamicDecl
	functions map[string]*ty.FunctionType
	funcRets  map[*ty.FunctionType]ty.Type
	modules   map[string]*moduleEntry
	symbols   *symbolTable
}

// NewRegistry creates an empty Registry and registers the builtin classes
// KnownClass recognizes, wiring bool's base to int so
// BooleanLiteral(_) <: Instance(bool) <: Instance(int) holds through the
// class graph.
func NewRegistry(d *db.DB, g *classgraph.Graph) *Registry {
	r := &Registry{
		db:        d,
		graph:     g,
		resolver:  module.NewResolver(),
		classes:   make(map[string]*dynamicDecl),
		functions: make(map[string]*ty.FunctionType),
		funcRets:  make(map[*ty.FunctionType]ty.Type),
		modules:   make(map[string]*moduleEntry),
		symbols:   newSymbolTable(),
	}
	r.object = r.defineBuiltin("object", ty.KnownClassObject, nil)
	intCls := r.defineBuiltin("int", ty.KnownClassInt, nil)
	r.defineBuiltin("float", ty.KnownClassFloat, nil)
	r.defineBuiltin("str", ty.KnownClassStr, nil)
	r.defineBuiltin("bytes", ty.KnownClassBytes, nil)
	r.defineBuiltin("bool", ty.KnownClassBool, []ty.Type{ty.Class(intCls)})
	r.defineBuiltin("tuple", ty.KnownClassTuple, nil)
	r.defineBuiltin("list", ty.KnownClassList, nil)
	r.defineBuiltin("set", ty.KnownClassSet, nil)
	r.defineBuiltin("dict", ty.KnownClassDict, nil)
	r.defineBuiltin("type", ty.KnownClassType, nil)
	r.defineBuiltin("NoneType", ty.KnownClassNoneType, nil)
	r.defineBuiltin("ModuleType", ty.KnownClassModuleType, nil)
	r.defineBuiltin("FunctionType", ty.KnownClassFunctionType, nil)
	r.defineBuiltin("GenericAlias", ty.KnownClassGenericAlias, nil)
	r.defineBuiltin("complex", ty.KnownClassComplex, nil)
	r.defineBuiltin("range", ty.KnownClassRange, nil)
	r.defineBuiltin("frozenset", ty.KnownClassFrozenSet, nil)
	r.defineBuiltin("property", ty.KnownClassProperty, nil)
	r.defineBuiltin("classmethod", ty.KnownClassClassMethod, nil)
	r.defineBuiltin("staticmethod", ty.KnownClassStaticMethod, nil)
	r.defineBuiltin("super", ty.KnownClassSuper, nil)
	r.defineBuiltin("BaseException", ty.KnownClassBaseException, nil)

	revealType := &ty.FunctionType{Name: "reveal_type", Known: ty.KnownFunctionRevealType}
	r.functions["reveal_type"] = revealType
	r.funcRets[revealType] = ty.Unknown
	return r
}

func (r *Registry) defineBuiltin(name string, known ty.KnownClass, bases []ty.Type) *ty.ClassType {
	if bases == nil && name != "object" {
		bases = []ty.Type{ty.Class(r.object)}
	}
	return r.DefineClass(name, known, bases)
}

// Object returns the registered `object` class, the canonical root every
// other class implicitly bases on.
func (r *Registry) Object() *ty.ClassType { return r.object }

// DefineClass registers (or re-registers) a class by name. Re-registering
// an existing name keeps the same *ty.ClassType identity (the Definition ID
// is a sid over the REPL's synthetic file and the name) but replaces its
// declared bases, letting a REPL session iterate on a class's base list.
func (r *Registry) DefineClass(name string, known ty.KnownClass, bases []ty.Type) *ty.ClassType {
	def := &ty.Definition{Kind: ty.DefinitionClass, ID: string(sid.ForDefinition(replFile, "class", name))}
	class := r.db.InternClass(name, def, "", known)
	decl, ok := r.classes[name]
	if !ok {
		decl = &dynamicDecl{class: class, members: make(map[string]ty.Type)}
		r.classes[name] = decl
	}
	decl.bases = bases
	r.graph.Register(decl)
	return class
}

// Class looks up a previously defined class by name.
func (r *Registry) Class(name string) (*ty.ClassType, bool) {
	decl, ok := r.classes[name]
	if !ok {
		return nil, false
	}
	return decl.class, true
}

// KnownClasses returns every registered class that carries a KnownClass tag,
// keyed by that tag — the table relations.Checker needs to resolve e.g.
// "is bool a subclass of int" without walking from an existing Instance/Class
// value.
func (r *Registry) KnownClasses() map[ty.KnownClass]*ty.ClassType {
	out := make(map[ty.KnownClass]*ty.ClassType)
	for _, decl := range r.classes {
		if decl.class.IsKnown() {
			out[decl.class.Known] = decl.class
		}
	}
	return out
}

// Alias registers an additional name for an already-defined class, so a
// project config's known-class name overrides (typeshed.yaml) can let a
// scenario file spell a builtin under a different
// identifier without interning a second ClassType for it.
func (r *Registry) Alias(alias, canonical string) error {
	decl, ok := r.classes[canonical]
	if !ok {
		return fmt.Errorf("repl: unknown canonical class %q for alias %q", canonical, alias)
	}
	r.classes[alias] = decl
	return nil
}

// SetMember records name's type as an own member of class.
func (r *Registry) SetMember(class *ty.ClassType, name string, t ty.Type) error {
	for _, decl := range r.classes {
		if decl.class == class {
			decl.members[name] = t
			return nil
		}
	}
	return fmt.Errorf("repl: class %q was not defined through this registry", class.Name)
}

// DefineFunction registers a function by name with the given annotated
// return type. Function return types come from annotations only, so the
// REPL takes the annotation as a literal command argument rather than
// inferring it.
func (r *Registry) DefineFunction(name string, ret ty.Type) *ty.FunctionType {
	def := &ty.Definition{Kind: ty.DefinitionFunction, ID: string(sid.ForDefinition(replFile, "function", name))}
	f := r.db.InternFunction(name, def, nil, ty.KnownFunctionNone)
	r.functions[name] = f
	r.funcRets[f] = ret
	return f
}

// Function looks up a previously defined function by name.
func (r *Registry) Function(name string) (*ty.FunctionType, bool) {
	f, ok := r.functions[name]
	return f, ok
}

// ReturnType implements operators.FunctionReturnTyper over the registry's
// recorded annotations.
func (r *Registry) ReturnType(f *ty.FunctionType) ty.Type {
	if t, ok := r.funcRets[f]; ok {
		return t
	}
	return ty.Unknown
}

// DefineModule registers (or returns) a module by name, resolving it to a
// synthetic file under the REPL's identity so the same name always yields
// the same *module.Module pointer — the identity Module(file) types intern
// on.
func (r *Registry) DefineModule(name string) *module.Module {
	if e, ok := r.modules[name]; ok {
		return e.mod
	}
	mod := r.resolver.Resolve(replFile + "/" + name + ".py")
	r.modules[name] = &moduleEntry{mod: mod, globals: make(map[string]ty.Type)}
	return mod
}

// Module looks up a previously defined module by name.
func (r *Registry) Module(name string) (*module.Module, bool) {
	e, ok := r.modules[name]
	if !ok {
		return nil, false
	}
	return e.mod, true
}

// SetGlobal records t as the type of module moduleName's global sym.
func (r *Registry) SetGlobal(moduleName, sym string, t ty.Type) error {
	e, ok := r.modules[moduleName]
	if !ok {
		return fmt.Errorf("repl: module %q was not defined through this registry", moduleName)
	}
	e.globals[sym] = t
	return nil
}

// GlobalSymbolType implements operators.GlobalResolver over the registry's
// modules: member access on a Module(file) type resolves here. An unknown
// file or a name the module never declared is Unbound.
func (r *Registry) GlobalSymbolType(file ty.ModuleFile, name string) ty.Type {
	for _, e := range r.modules {
		if ty.ModuleFile(e.mod) == file {
			if t, ok := e.globals[name]; ok {
				return t
			}
			return ty.Unbound
		}
	}
	return ty.Unbound
}

// Declare records t as an additional declared type for the symbol name,
// for internal/symbols.Resolver to fold. Declaring the same name more
// than once with non-equivalent types is exactly the
// conflicting-declarations case TYC006 reports. The symbol's memoized
// public type is forgotten so the next fold sees the new declaration.
func (r *Registry) Declare(name string, t ty.Type) {
	r.symbols.decls[name] = append(r.symbols.decls[name], declType{t: t})
	r.db.Forget("public_ty:" + name)
}

// Symbol returns the index.Symbol a driver would hand to
// symbols.Resolver.PublicType for the given name; the REPL keys symbols by
// name alone since it never builds a real scope tree.
func (r *Registry) Symbol(name string) index.Symbol {
	return index.Symbol{Name: name, ID: name}
}

// UseDef returns the index.UseDefMap backing this registry's :declare'd
// symbols, the input a symbols.Resolver is constructed over.
func (r *Registry) UseDef() index.UseDefMap { return r.symbols }
