package unify

import (
	"testing"

	"typegraph/model"
)

func TestUnifyMergesExtensionIntoDeclaration(t *testing.T) {
	primary := model.NewStruct("App.Widget", "Widget", "App", nil)
	primary.Variables = append(primary.Variables, &model.Variable{Name: "id"})

	ext := model.NewStruct("App.Widget", "Widget", "App", nil)
	ext.IsExtension = true
	ext.Methods = append(ext.Methods, &model.Method{Name: "render"})

	result := Unify([]model.Type{primary, ext})

	merged, ok := result.TypeMap["App.Widget"]
	if !ok {
		t.Fatalf("App.Widget missing from TypeMap")
	}
	h := merged.Header()
	if len(h.Variables) != 1 || h.Variables[0].Name != "id" {
		t.Fatalf("expected declaration's Variables to survive, got %+v", h.Variables)
	}
	if len(h.Methods) != 1 || h.Methods[0].Name != "render" {
		t.Fatalf("expected extension's Methods to be merged in, got %+v", h.Methods)
	}
	if len(result.TypeMap) != 1 {
		t.Fatalf("expected extension not to add a second TypeMap entry, got %d entries", len(result.TypeMap))
	}
}

func TestUnifyExtensionWithoutDeclarationStillRegisters(t *testing.T) {
	ext := model.NewStruct("Other.Imported", "Imported", "Other", nil)
	ext.IsExtension = true
	ext.Variables = append(ext.Variables, &model.Variable{Name: "flag"})

	result := Unify([]model.Type{ext})

	got, ok := result.TypeMap["Other.Imported"]
	if !ok {
		t.Fatalf("expected an extension-only type to still register under its GlobalName")
	}
	if len(got.Header().Variables) != 1 {
		t.Fatalf("expected the extension's own members to be visible")
	}
}

func TestUnifyUniqueTypesExcludesAmbiguousShortNames(t *testing.T) {
	a := model.NewStruct("App.Item", "Item", "App", nil)
	b := model.NewStruct("Store.Item", "Item", "Store", nil)
	c := model.NewStruct("App.Cart", "Cart", "App", nil)

	result := Unify([]model.Type{a, b, c})

	if _, ok := result.UniqueTypes["Item"]; ok {
		t.Fatalf("Item is declared twice and must not appear in UniqueTypes")
	}
	if got, ok := result.UniqueTypes["Cart"]; !ok || got != c {
		t.Fatalf("Cart is unique and must appear in UniqueTypes")
	}
}

func TestUnifyPopulatesBasedFromInheritedTypeNames(t *testing.T) {
	class := model.NewClass("App.Dog", "Dog", "App", nil)
	class.InheritedTypeNames = []*model.TypeName{{Name: "Animal"}}

	result := Unify([]model.Type{class})

	got := result.TypeMap["App.Dog"]
	if _, ok := got.Header().Based["Animal"]; !ok {
		t.Fatalf("expected Based to contain the raw inherited name %q", "Animal")
	}
}

func TestUnifyPopulatesModulesIndex(t *testing.T) {
	a := model.NewStruct("App.Item", "Item", "App", nil)
	result := Unify([]model.Type{a})

	bucket, ok := result.Modules["App"]
	if !ok {
		t.Fatalf("expected a Modules bucket for %q", "App")
	}
	if bucket["Item"] != a {
		t.Fatalf("expected Modules[App][Item] to alias the same Type")
	}
}
