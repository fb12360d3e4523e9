package ty

import "testing"

func TestSingletonsDistinctKinds(t *testing.T) {
	forms := []Type{Any, Unknown, Never, Unbound, None, LiteralString}
	seen := map[Kind]bool{}
	for _, f := range forms {
		if seen[f.Kind()] {
			t.Fatalf("duplicate kind %s among singleton forms", f.Kind())
		}
		seen[f.Kind()] = true
	}
}

func TestSingletonsEqualSelfNotOthers(t *testing.T) {
	if !Any.Equals(Any) {
		t.Error("Any should equal itself")
	}
	if Any.Equals(Unknown) {
		t.Error("Any should not equal Unknown")
	}
	if Never.Equals(None) {
		t.Error("Never should not equal None")
	}
}

func TestTodoCarriesReasonButComparesByKind(t *testing.T) {
	a := Todo("walrus operator")
	b := Todo("match statement")
	if !a.Equals(b) {
		t.Error("two Todo values should be equal regardless of reason")
	}
	if a.String() == b.String() {
		t.Error("Todo.String should surface the distinguishing reason")
	}
}

func TestKindStringCoversAllConstants(t *testing.T) {
	for k := KindAny; k <= KindTuple; k++ {
		if k.String() == "" {
			t.Errorf("Kind %d has no name", int(k))
		}
	}
}
