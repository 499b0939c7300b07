package typeexpr

import (
	"testing"

	"typegraph/internal/nameresolve"
	"typegraph/model"
)

func TestResolveFollowsAliasToNominalType(t *testing.T) {
	bar := model.NewClass("App.Bar", "Bar", "App", nil)
	alias := &model.Typealias{Name: "Foo", Module: "App", TypeName: &model.TypeName{Name: "Bar"}}

	universe := nameresolve.Universe{
		TypeMap:     map[string]model.Type{"App.Bar": bar},
		UniqueTypes: map[string]model.Type{"Bar": bar},
		Aliases: nameresolve.Aliases{
			ByShortName: map[string]*model.Typealias{"Foo": alias},
		},
	}

	tn := &model.TypeName{Name: "Foo"}
	got := Resolve(tn, Context{Module: "App", Universe: universe})
	if got != bar {
		t.Fatalf("expected Foo to resolve to Bar, got %v", got)
	}
	if tn.ActualTypeName == nil || tn.ActualTypeName.Name != "App.Bar" {
		t.Fatalf("expected ActualTypeName to hold the qualified name, got %+v", tn.ActualTypeName)
	}
}

func TestResolveMemoizesActualTypeName(t *testing.T) {
	bar := model.NewClass("App.Bar", "Bar", "App", nil)
	universe := nameresolve.Universe{
		TypeMap:     map[string]model.Type{"App.Bar": bar},
		UniqueTypes: map[string]model.Type{"Bar": bar},
	}
	tn := &model.TypeName{Name: "Bar"}
	ctx := Context{Module: "App", Universe: universe}

	first := Resolve(tn, ctx)
	cached := tn.ActualTypeName
	second := Resolve(tn, ctx)

	if first != bar || second != bar {
		t.Fatalf("expected both calls to resolve to Bar")
	}
	if tn.ActualTypeName != cached {
		t.Fatalf("expected the second call to leave the memoized ActualTypeName node untouched")
	}
}

func TestResolveTupleNeverReturnsANominalType(t *testing.T) {
	universe := nameresolve.Universe{TypeMap: map[string]model.Type{}, UniqueTypes: map[string]model.Type{}}
	tn := &model.TypeName{
		Name: "(Int, String)",
		Tuple: &model.TupleType{Elements: []model.TupleElement{
			{TypeName: &model.TypeName{Name: "Int"}},
			{TypeName: &model.TypeName{Name: "String"}},
		}},
	}

	got := Resolve(tn, Context{Module: "App", Universe: universe})
	if got != nil {
		t.Fatalf("a tuple type must never resolve to a nominal Type, got %v", got)
	}
}

func TestResolveArrayAliasProducesActualTypeNameShape(t *testing.T) {
	alias := &model.Typealias{
		Name:   "Strings",
		Module: "App",
		TypeName: &model.TypeName{
			Name:  "[String]",
			Array: &model.ArrayType{ElementTypeName: &model.TypeName{Name: "String"}},
		},
	}
	universe := nameresolve.Universe{
		TypeMap:     map[string]model.Type{},
		UniqueTypes: map[string]model.Type{},
		Aliases:     nameresolve.Aliases{ByShortName: map[string]*model.Typealias{"Strings": alias}},
	}

	tn := &model.TypeName{Name: "Strings"}
	Resolve(tn, Context{Module: "App", Universe: universe})

	if tn.ActualTypeName == nil || tn.ActualTypeName.Array == nil {
		t.Fatalf("expected ActualTypeName to carry the array shape, got %+v", tn.ActualTypeName)
	}
	if tn.ActualTypeName.Array.ElementTypeName.Name != "String" {
		t.Fatalf("expected the element type name to be String, got %q", tn.ActualTypeName.Array.ElementTypeName.Name)
	}
}

func TestResolveNilTypeNameIsNil(t *testing.T) {
	if got := Resolve(nil, Context{}); got != nil {
		t.Fatalf("expected Resolve(nil, ...) to return nil, got %v", got)
	}
}

// TestResolveCompoundAliasUseSitesDoNotShareElementNodes covers the case of
// two distinct use sites adopting the same compound typealias. Each must
// end up with its own independent element TypeName tree: sharing the
// alias's own Tuple/Array pointers would mean two goroutines resolving
// different sites race on the same node's ActualTypeName, and whichever
// site resolves first would pin its answer onto the other.
func TestResolveCompoundAliasUseSitesDoNotShareElementNodes(t *testing.T) {
	foo := model.NewClass("N.Foo", "Foo", "N", nil)
	alias := &model.Typealias{
		Name:   "Pair",
		Module: "M",
		TypeName: &model.TypeName{
			Name: "(Foo, Foo)",
			Tuple: &model.TupleType{Elements: []model.TupleElement{
				{TypeName: &model.TypeName{Name: "Foo"}},
				{TypeName: &model.TypeName{Name: "Foo"}},
			}},
		},
	}
	universe := nameresolve.Universe{
		TypeMap:     map[string]model.Type{"N.Foo": foo},
		UniqueTypes: map[string]model.Type{"Foo": foo},
		Aliases:     nameresolve.Aliases{ByShortName: map[string]*model.Typealias{"Pair": alias}},
	}

	siteA := &model.TypeName{Name: "Pair"}
	siteB := &model.TypeName{Name: "Pair"}
	ctx := Context{Module: "M", Imports: []string{"N"}, Universe: universe}

	Resolve(siteA, ctx)
	Resolve(siteB, ctx)

	if siteA.ActualTypeName == siteB.ActualTypeName {
		t.Fatalf("expected each use site to own a distinct ActualTypeName node")
	}
	if siteA.ActualTypeName.Tuple == siteB.ActualTypeName.Tuple {
		t.Fatalf("expected each use site to own a distinct TupleType, not share the alias's own")
	}
	if siteA.ActualTypeName.Tuple == alias.TypeName.Tuple {
		t.Fatalf("expected the alias's own TupleType to never be mutated in place")
	}
	elA := siteA.ActualTypeName.Tuple.Elements[0].TypeName
	elB := siteB.ActualTypeName.Tuple.Elements[0].TypeName
	if elA == elB {
		t.Fatalf("expected each use site's tuple elements to be distinct nodes")
	}
	if elA.Name != "N.Foo" || elB.Name != "N.Foo" {
		t.Fatalf("expected both sites to independently resolve Foo, got %q and %q", elA.Name, elB.Name)
	}
}
