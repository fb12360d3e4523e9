package db

import (
	"strings"

	"github.com/sunholo/pylattice/internal/ty"
)

// interner owns one table per structural form. ClassType and FunctionType
// are interned by pointer, since the rest of the kernel (classgraph's MRO
// cache, relations' nominal subtyping) keys on *ClassType identity. The
// compound/literal forms (Union, Intersection, Tuple, Module, the literal
// kinds) are deduplicated for bookkeeping and memory-sharing but handed
// back as plain Type values: their Equals methods are already structural,
// so nothing in the kernel depends on them sharing a pointer.
type interner struct {
	unions        map[string]ty.TUnion
	intersections map[string]ty.TIntersection
	tuples        map[string]ty.TTuple
	classes       map[string]*ty.ClassType
	functions     map[string]*ty.FunctionType
	modules       map[ty.ModuleFile]ty.TModule
	intLiterals   map[int64]ty.TIntLiteral
	strLiterals   map[string]ty.TStringLiteral
	bytesLiterals map[string]ty.TBytesLiteral
	boolLiterals  [2]ty.TBooleanLiteral
}

func newInterner() *interner {
	return &interner{
		unions:        make(map[string]ty.TUnion),
		intersections: make(map[string]ty.TIntersection),
		tuples:        make(map[string]ty.TTuple),
		classes:       make(map[string]*ty.ClassType),
		functions:     make(map[string]*ty.FunctionType),
		modules:       make(map[ty.ModuleFile]ty.TModule),
		intLiterals:   make(map[int64]ty.TIntLiteral),
		strLiterals:   make(map[string]ty.TStringLiteral),
		bytesLiterals: make(map[string]ty.TBytesLiteral),
		boolLiterals:  [2]ty.TBooleanLiteral{{Value: false}, {Value: true}},
	}
}

func typeKey(t ty.Type) string {
	if t == nil {
		return "<nil>"
	}
	return t.Kind().String() + ":" + t.String()
}

func typeSeqKey(ts []ty.Type) string {
	parts := make([]string, len(ts))
	for i, t := range ts {
		parts[i] = typeKey(t)
	}
	return strings.Join(parts, ",")
}

// InternUnion returns the canonical TUnion for the given (already builder-
// normalized) element sequence.
func (db *DB) InternUnion(elements []ty.Type) ty.TUnion {
	db.mu.Lock()
	defer db.mu.Unlock()
	key := typeSeqKey(elements)
	if u, ok := db.interner.unions[key]; ok {
		return u
	}
	u := ty.TUnion{Elements: elements}
	db.interner.unions[key] = u
	return u
}

// InternIntersection returns the canonical TIntersection for the given
// (already builder-normalized) positive/negative sets.
func (db *DB) InternIntersection(positive, negative []ty.Type) ty.TIntersection {
	db.mu.Lock()
	defer db.mu.Unlock()
	key := typeSeqKey(positive) + "|" + typeSeqKey(negative)
	if i, ok := db.interner.intersections[key]; ok {
		return i
	}
	i := ty.TIntersection{Positive: positive, Negative: negative}
	db.interner.intersections[key] = i
	return i
}

// InternTuple returns the canonical TTuple for the given element sequence.
func (db *DB) InternTuple(elements []ty.Type) ty.TTuple {
	db.mu.Lock()
	defer db.mu.Unlock()
	key := typeSeqKey(elements)
	if tup, ok := db.interner.tuples[key]; ok {
		return tup
	}
	tup := ty.TTuple{Elements: elements}
	db.interner.tuples[key] = tup
	return tup
}

// InternClass returns the canonical *ClassType for a Definition, creating it
// on first request. Re-requesting the same definition ID always returns the
// same pointer, which is the identity classgraph's MRO cache keys on.
func (db *DB) InternClass(name string, def *ty.Definition, bodyScope string, known ty.KnownClass) *ty.ClassType {
	db.mu.Lock()
	defer db.mu.Unlock()
	key := def.ID
	if c, ok := db.interner.classes[key]; ok {
		return c
	}
	c := &ty.ClassType{Name: name, Def: def, BodyScope: bodyScope, Known: known}
	db.interner.classes[key] = c
	return c
}

// InternFunction returns the canonical *FunctionType for a Definition.
func (db *DB) InternFunction(name string, def *ty.Definition, decorators []ty.Type, known ty.KnownFunction) *ty.FunctionType {
	db.mu.Lock()
	defer db.mu.Unlock()
	key := def.ID
	if f, ok := db.interner.functions[key]; ok {
		return f
	}
	f := &ty.FunctionType{Name: name, Def: def, Decorators: decorators, Known: known}
	db.interner.functions[key] = f
	return f
}

// InternModule returns the canonical TModule for a resolved file.
func (db *DB) InternModule(file ty.ModuleFile) ty.TModule {
	db.mu.Lock()
	defer db.mu.Unlock()
	if m, ok := db.interner.modules[file]; ok {
		return m
	}
	m := ty.TModule{File: file}
	db.interner.modules[file] = m
	return m
}

// InternIntLiteral returns the canonical TIntLiteral for a value.
func (db *DB) InternIntLiteral(v int64) ty.TIntLiteral {
	db.mu.Lock()
	defer db.mu.Unlock()
	if l, ok := db.interner.intLiterals[v]; ok {
		return l
	}
	l := ty.TIntLiteral{Value: v}
	db.interner.intLiterals[v] = l
	return l
}

// InternStringLiteral returns the canonical TStringLiteral for a value.
func (db *DB) InternStringLiteral(v string) ty.TStringLiteral {
	db.mu.Lock()
	defer db.mu.Unlock()
	if l, ok := db.interner.strLiterals[v]; ok {
		return l
	}
	l := ty.TStringLiteral{Value: v}
	db.interner.strLiterals[v] = l
	return l
}

// InternBytesLiteral returns the canonical TBytesLiteral for a value.
func (db *DB) InternBytesLiteral(v string) ty.TBytesLiteral {
	db.mu.Lock()
	defer db.mu.Unlock()
	if l, ok := db.interner.bytesLiterals[v]; ok {
		return l
	}
	l := ty.TBytesLiteral{Value: v}
	db.interner.bytesLiterals[v] = l
	return l
}

// InternBooleanLiteral returns one of the two canonical TBooleanLiteral
// singletons.
func (db *DB) InternBooleanLiteral(v bool) ty.TBooleanLiteral {
	db.mu.Lock()
	defer db.mu.Unlock()
	if v {
		return db.interner.boolLiterals[1]
	}
	return db.interner.boolLiterals[0]
}

// InternedCount reports how many entries each intern table holds, used by
// diagnostics and tests that assert interning actually dedupes.
func (db *DB) InternedCount() map[string]int {
	db.mu.Lock()
	defer db.mu.Unlock()
	return map[string]int{
		"unions":        len(db.interner.unions),
		"intersections": len(db.interner.intersections),
		"tuples":        len(db.interner.tuples),
		"classes":       len(db.interner.classes),
		"functions":     len(db.interner.functions),
		"modules":       len(db.interner.modules),
		"int_literals":  len(db.interner.intLiterals),
		"str_literals":  len(db.interner.strLiterals),
	}
}
