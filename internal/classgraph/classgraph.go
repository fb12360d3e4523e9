// Package classgraph computes base-class lists, C3-linearized method
// resolution order, and member lookup over the kernel's ClassType payloads.
// The union-base fan-out and C3 merge follow the classic `mro_possibilities`/
// `c3_merge`/`Mro` algorithm for linearizing a class whose bases include
// unions, rendered in Go idiom; computed linearizations are memoized
// through the shared DB under "mro:"-prefixed keys.
package classgraph

import (
	"sync"

	"github.com/sunholo/pylattice/internal/db"
	"github.com/sunholo/pylattice/internal/ty"
)

// ClassDeclaration is the driver-provided view of one class's body: the
// already-inferred types of its base expressions (that inference happens
// outside the kernel, through DB) plus the members declared directly in
// its body.
type ClassDeclaration interface {
	Class() *ty.ClassType
	BaseTypes() []ty.Type
	OwnMember(name string) (ty.Type, bool)
}

// Graph resolves ClassDeclarations by class identity. A driver registers
// one ClassDeclaration per class before asking the Graph for bases, MRO, or
// member lookups involving it. Computed MROs are memoized through d, the
// same DB that interns the types involved.
type Graph struct {
	mu           sync.Mutex
	db           *db.DB
	declarations map[*ty.ClassType]ClassDeclaration
}

// New creates an empty class graph memoizing through d.
func New(d *db.DB) *Graph {
	return &Graph{
		db:           d,
		declarations: make(map[*ty.ClassType]ClassDeclaration),
	}
}

// Register associates a ClassDeclaration with its class, so later Bases/MRO/
// member queries about that class can find its base expressions and body.
// Re-registering a class (or registering a new one) forgets every memoized
// linearization: the new declaration can change the MRO of any class that
// inherits from it, not just its own.
func (g *Graph) Register(decl ClassDeclaration) {
	g.mu.Lock()
	g.declarations[decl.Class()] = decl
	g.mu.Unlock()
	g.db.Forget("mro:")
}

func (g *Graph) declarationOf(c *ty.ClassType) (ClassDeclaration, bool) {
	g.mu.Lock()
	defer g.mu.Unlock()
	d, ok := g.declarations[c]
	return d, ok
}

// Bases returns the sequence of base types for c. A class with no
// registered declaration or no declared bases implicitly bases on object.
func (g *Graph) Bases(c *ty.ClassType, object *ty.ClassType) []ty.Type {
	if c.Known == ty.KnownClassObject {
		return nil
	}
	decl, ok := g.declarationOf(c)
	if !ok || len(decl.BaseTypes()) == 0 {
		return []ty.Type{ty.Class(object)}
	}
	return decl.BaseTypes()
}

// IsSubclass reports whether target appears in any of c's possible MROs,
// the nominal subtyping check internal/relations consults for
// Instance(c) <: Instance(target).
func (g *Graph) IsSubclass(c, target *ty.ClassType, object *ty.ClassType) bool {
	if c == target {
		return true
	}
	for _, poss := range g.MRO(c, object) {
		if poss.Failed {
			continue
		}
		for _, cls := range poss.Classes {
			if cls == target {
				return true
			}
		}
	}
	return false
}

// OwnClassMember looks up name in c's own body scope, returning Unbound if
// absent.
func (g *Graph) OwnClassMember(c *ty.ClassType, name string) ty.Type {
	decl, ok := g.declarationOf(c)
	if !ok {
		return ty.Unbound
	}
	if t, found := decl.OwnMember(name); found {
		return t
	}
	return ty.Unbound
}

// InheritedClassMember returns, for each possible MRO of c, the first
// non-Unbound own_class_member along it after c itself, unioned across
// possibilities. The union is built by
// the caller (internal/operators), which has access to a UnionBuilder;
// Graph itself stays free of the builder dependency and returns the raw
// per-possibility results.
func (g *Graph) InheritedClassMember(c *ty.ClassType, name string, object *ty.ClassType) []ty.Type {
	var results []ty.Type
	for _, poss := range g.MRO(c, object) {
		if poss.Failed {
			// No valid linearization on this possibility: members along it
			// are Unbound.
			results = append(results, ty.Unbound)
			continue
		}
		found := ty.Unbound
		for _, cls := range poss.Classes {
			if cls == c {
				continue
			}
			if m := g.OwnClassMember(cls, name); !m.Equals(ty.Unbound) {
				found = m
				break
			}
		}
		results = append(results, found)
	}
	if len(results) == 0 {
		results = []ty.Type{ty.Unbound}
	}
	return results
}

// ClassMember implements class_member(c, n): "__mro__" returns one Tuple
// per possibility (again left to the caller to union); otherwise tries
// OwnClassMember first, falling back to InheritedClassMember.
func (g *Graph) ClassMember(c *ty.ClassType, name string, object *ty.ClassType) []ty.Type {
	if name == "__mro__" {
		possibilities := g.MRO(c, object)
		tuples := make([]ty.Type, 0, len(possibilities))
		for _, poss := range possibilities {
			if poss.Failed {
				// An unresolvable linearization still exposes an __mro__,
				// with Unknown standing in for the unorderable ancestry.
				tuples = append(tuples, ty.TTuple{Elements: []ty.Type{
					ty.Class(c), ty.Unknown, ty.Class(object),
				}})
				continue
			}
			elems := make([]ty.Type, len(poss.Classes))
			for i, cls := range poss.Classes {
				elems[i] = ty.Class(cls)
			}
			tuples = append(tuples, ty.TTuple{Elements: elems})
		}
		return tuples
	}

	if m := g.OwnClassMember(c, name); !m.Equals(ty.Unbound) {
		return []ty.Type{m}
	}
	return g.InheritedClassMember(c, name, object)
}
