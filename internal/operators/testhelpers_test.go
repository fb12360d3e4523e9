package operators

import (
	"github.com/sunholo/pylattice/internal/classgraph"
	"github.com/sunholo/pylattice/internal/db"
	"github.com/sunholo/pylattice/internal/relations"
	"github.com/sunholo/pylattice/internal/ty"
)

type fakeDecl struct {
	class   *ty.ClassType
	bases   []ty.Type
	members map[string]ty.Type
}

func (d fakeDecl) Class() *ty.ClassType { return d.class }
func (d fakeDecl) BaseTypes() []ty.Type { return d.bases }
func (d fakeDecl) OwnMember(n string) (ty.Type, bool) {
	t, ok := d.members[n]
	return t, ok
}

func newClass(name string, known ty.KnownClass) *ty.ClassType {
	return &ty.ClassType{Name: name, Def: &ty.Definition{Kind: ty.DefinitionClass, ID: name}, Known: known}
}

// newFixture builds a Context wired to a fresh DB/Graph/Checker with the
// handful of known builtin classes the tests exercise: object, int, str,
// bool, NoneType.
func newFixture() (*Context, *classgraph.Graph, *relations.Checker, *db.DB) {
	d := db.NewMemory()
	g := classgraph.New(d)
	object := newClass("object", ty.KnownClassObject)
	intCls := newClass("int", ty.KnownClassInt)
	strCls := newClass("str", ty.KnownClassStr)
	boolCls := newClass("bool", ty.KnownClassBool)
	noneCls := newClass("NoneType", ty.KnownClassNoneType)

	g.Register(fakeDecl{class: object})
	g.Register(fakeDecl{class: intCls, bases: []ty.Type{ty.Class(object)}})
	g.Register(fakeDecl{class: strCls, bases: []ty.Type{ty.Class(object)}})
	g.Register(fakeDecl{class: boolCls, bases: []ty.Type{ty.Class(intCls)}})
	g.Register(fakeDecl{class: noneCls, bases: []ty.Type{ty.Class(object)}})

	checker := relations.New(g, object)
	checker.KnownClasses[ty.KnownClassObject] = object
	checker.KnownClasses[ty.KnownClassInt] = intCls
	checker.KnownClasses[ty.KnownClassStr] = strCls
	checker.KnownClasses[ty.KnownClassBool] = boolCls
	checker.KnownClasses[ty.KnownClassNoneType] = noneCls

	return New(d, checker, nil, nil), g, checker, d
}
