package sid

import "testing"

func TestForDefinitionIsDeterministic(t *testing.T) {
	a := ForDefinition("/src/pkg/models.py", "class", "User")
	b := ForDefinition("/src/pkg/models.py", "class", "User")
	if a != b {
		t.Errorf("same inputs should produce the same SID: %s vs %s", a, b)
	}
	if len(a) != 16 {
		t.Errorf("expected a 16-char SID, got %q", a)
	}
}

func TestForDefinitionDistinguishesKindAndName(t *testing.T) {
	cls := ForDefinition("/src/pkg/models.py", "class", "User")
	fn := ForDefinition("/src/pkg/models.py", "function", "User")
	other := ForDefinition("/src/pkg/models.py", "class", "Group")
	if cls == fn {
		t.Error("a class and a function with the same name should not share a SID")
	}
	if cls == other {
		t.Error("distinct names should not share a SID")
	}
}

func TestForExprKeysByChildPath(t *testing.T) {
	def := ForDefinition("/src/pkg/models.py", "class", "User")
	first := ForExpr(def, 0)
	second := ForExpr(def, 1)
	nested := ForExpr(def, 0, 1)
	if first == second || first == nested {
		t.Error("different child paths should produce different SIDs")
	}
	if again := ForExpr(def, 0, 1); again != nested {
		t.Errorf("the same child path should produce the same SID: %s vs %s", again, nested)
	}
}
