package classgraph

import "github.com/sunholo/pylattice/internal/ty"

// unknownPlaceholder stands in for a base expression that is not a class
// object (Any/Unknown/Todo, or a degraded Instance/literal/union base);
// its MRO is [self, object].
var unknownPlaceholder = &ty.ClassType{Name: "<unknown-base>"}

// Possibility is one candidate linearization of a class's ancestors, one of
// potentially several produced by union-typed-base fan-out.
// Failed marks a possibility where C3 merge found no valid head; Classes is
// meaningless when Failed is true.
type Possibility struct {
	Classes []*ty.ClassType
	Failed  bool
}

// MRO returns the set of possible C3 linearizations of c, memoized through
// the DB since recomputing it is pure given the registered
// ClassDeclarations. The recursive base-MRO lookups inside computeMRO go
// through the same table.
func (g *Graph) MRO(c *ty.ClassType, object *ty.ClassType) []Possibility {
	return g.db.Memoize("mro:"+classKey(c), func() any {
		return g.computeMRO(c, object)
	}).([]Possibility)
}

// classKey identifies a class for memoization: the defining Definition's
// stable ID when there is one, else the class name (builtins a test or
// driver registered without a Definition).
func classKey(c *ty.ClassType) string {
	if c.Def != nil {
		return c.Def.ID
	}
	return c.Name
}

func (g *Graph) computeMRO(c *ty.ClassType, object *ty.ClassType) []Possibility {
	if c == object || c.Known == ty.KnownClassObject {
		return []Possibility{{Classes: []*ty.ClassType{c}}}
	}
	if c == unknownPlaceholder {
		return []Possibility{{Classes: []*ty.ClassType{c, object}}}
	}

	baseLists := forkBases(g.Bases(c, object))

	var out []Possibility
	for _, baseList := range baseLists {
		switch len(baseList) {
		case 0:
			out = append(out, Possibility{Classes: []*ty.ClassType{c}})
		case 1:
			b := resolveToClass(baseList[0])
			if b == object {
				out = append(out, Possibility{Classes: []*ty.ClassType{c, object}})
				continue
			}
			for _, bPoss := range g.MRO(b, object) {
				if bPoss.Failed {
					out = append(out, Possibility{Failed: true})
					continue
				}
				chain := append([]*ty.ClassType{c}, bPoss.Classes...)
				out = append(out, Possibility{Classes: chain})
			}
		default:
			bases := make([]*ty.ClassType, len(baseList))
			perBaseMRO := make([][]Possibility, len(baseList))
			for i, b := range baseList {
				bases[i] = resolveToClass(b)
				perBaseMRO[i] = g.MRO(bases[i], object)
			}
			for _, combo := range cartesianPossibilities(perBaseMRO) {
				failed := false
				lists := [][]*ty.ClassType{{c}}
				for _, p := range combo {
					if p.Failed {
						failed = true
						break
					}
					lists = append(lists, p.Classes)
				}
				if failed {
					out = append(out, Possibility{Failed: true})
					continue
				}
				lists = append(lists, bases)
				merged, ok := c3Merge(lists)
				if !ok {
					out = append(out, Possibility{Failed: true})
					continue
				}
				out = append(out, Possibility{Classes: merged})
			}
		}
	}
	return out
}

// resolveToClass maps a base type to the ClassType it denotes, degrading
// any non-Class base (Any/Unknown/Todo/Instance/literal/other) to the
// shared unknown placeholder.
func resolveToClass(t ty.Type) *ty.ClassType {
	if cls, ok := t.(ty.TClass); ok && cls.Class != nil {
		return cls.Class
	}
	return unknownPlaceholder
}

// forkBases expands union-typed bases into the cartesian product of
// possible concrete base lists.
func forkBases(bases []ty.Type) [][]ty.Type {
	if len(bases) == 0 {
		return [][]ty.Type{nil}
	}
	result := [][]ty.Type{{}}
	for _, base := range bases {
		arms := []ty.Type{base}
		if u, ok := base.(ty.TUnion); ok {
			arms = u.Elements
		}
		var next [][]ty.Type
		for _, prefix := range result {
			for _, arm := range arms {
				extended := make([]ty.Type, len(prefix), len(prefix)+1)
				copy(extended, prefix)
				next = append(next, append(extended, arm))
			}
		}
		result = next
	}
	return result
}

// cartesianPossibilities computes the cartesian product of per-base MRO
// possibility lists.
func cartesianPossibilities(perBase [][]Possibility) [][]Possibility {
	result := [][]Possibility{{}}
	for _, options := range perBase {
		var next [][]Possibility
		for _, prefix := range result {
			for _, opt := range options {
				extended := make([]Possibility, len(prefix), len(prefix)+1)
				copy(extended, prefix)
				next = append(next, append(extended, opt))
			}
		}
		result = next
	}
	return result
}

// c3Merge implements the C3 linearization merge: repeatedly take the head
// of the first list that does not appear in the tail of any other list,
// failing with ok=false when no list has a valid head left to take.
func c3Merge(lists [][]*ty.ClassType) ([]*ty.ClassType, bool) {
	lists = cloneLists(lists)
	var merged []*ty.ClassType

	for {
		lists = dropEmpty(lists)
		if len(lists) == 0 {
			return merged, true
		}

		var head *ty.ClassType
		for _, candidate := range lists {
			c := candidate[0]
			if !appearsInTail(lists, c) {
				head = c
				break
			}
		}
		if head == nil {
			return nil, false
		}

		merged = append(merged, head)
		for i, l := range lists {
			if len(l) > 0 && l[0] == head {
				lists[i] = l[1:]
			} else {
				lists[i] = removeAll(l, head)
			}
		}
	}
}

func cloneLists(lists [][]*ty.ClassType) [][]*ty.ClassType {
	out := make([][]*ty.ClassType, len(lists))
	for i, l := range lists {
		cp := make([]*ty.ClassType, len(l))
		copy(cp, l)
		out[i] = cp
	}
	return out
}

func dropEmpty(lists [][]*ty.ClassType) [][]*ty.ClassType {
	var out [][]*ty.ClassType
	for _, l := range lists {
		if len(l) > 0 {
			out = append(out, l)
		}
	}
	return out
}

func appearsInTail(lists [][]*ty.ClassType, c *ty.ClassType) bool {
	for _, l := range lists {
		for _, other := range l[1:] {
			if other == c {
				return true
			}
		}
	}
	return false
}

func removeAll(l []*ty.ClassType, c *ty.ClassType) []*ty.ClassType {
	out := l[:0:0]
	for _, e := range l {
		if e != c {
			out = append(out, e)
		}
	}
	return out
}
