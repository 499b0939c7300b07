// Package typeexpr implements component C: recursively rewriting a compound
// type expression (tuple/array/dictionary/closure/generic), resolving each
// leaf through the Name Resolver, and materializing the rewritten "actual"
// form on TypeName.ActualTypeName.
package typeexpr

import (
	"typegraph/internal/nameresolve"
	"typegraph/model"
)

// Context is the scope a TypeName is resolved against: the containing type
// (nil for free functions), its module and imports, and the shared
// read-only lookup universe.
type Context struct {
	ContainingType model.Type
	Module         string
	Imports        []string
	Universe       nameresolve.Universe
}

// Resolve resolves tn against ctx, returning the declared Type it names, or
// nil for compound expressions (tuples, closures) and unresolved names.
//
// If tn.ActualTypeName is already set, Resolve trusts the cache and looks up
// directly — this is the "written exactly once" memoization spec.md §3.3
// requires.
func Resolve(tn *model.TypeName, ctx Context) model.Type {
	if tn == nil {
		return nil
	}
	if tn.ActualTypeName != nil {
		return lookup(tn.ActualTypeName, ctx.Universe.TypeMap)
	}

	retrievedName, alias := nameresolve.Resolve(tn.Name, ctx.ContainingType, ctx.Module, ctx.Imports, ctx.Universe)

	lookupName := tn
	if retrievedName != "" {
		lookupName = adopt(tn, retrievedName, alias)
	}

	switch {
	case lookupName.Tuple != nil:
		newTuple, changed := rewriteTuple(lookupName.Tuple, ctx)
		if changed || retrievedName != "" {
			tn.Tuple = newTuple
			tn.ActualTypeName = &model.TypeName{
				Tuple:                         newTuple,
				IsOptional:                    tn.IsOptional,
				IsImplicitlyUnwrappedOptional: tn.IsImplicitlyUnwrappedOptional,
				Name:                          newTuple.String(),
			}
		}
		return nil

	case lookupName.Closure != nil:
		newClosure, changed := rewriteClosure(lookupName.Closure, ctx)
		if changed || retrievedName != "" {
			tn.Closure = newClosure
			tn.ActualTypeName = &model.TypeName{
				Closure:                       newClosure,
				IsOptional:                    tn.IsOptional,
				IsImplicitlyUnwrappedOptional: tn.IsImplicitlyUnwrappedOptional,
				Name:                          newClosure.String(),
			}
		}
		return nil

	case lookupName.Array != nil:
		newArray, changed := rewriteArray(lookupName.Array, ctx)
		if changed || retrievedName != "" {
			generic := &model.GenericType{Name: "Array", TypeParameters: []*model.TypeName{newArray.ElementTypeName}}
			tn.Array = newArray
			tn.Generic = generic
			tn.ActualTypeName = &model.TypeName{
				Array:                         newArray,
				Generic:                       generic,
				IsOptional:                    tn.IsOptional,
				IsImplicitlyUnwrappedOptional: tn.IsImplicitlyUnwrappedOptional,
				Name:                          newArray.String(),
			}
		}

	case lookupName.Dictionary != nil:
		newDict, changed := rewriteDictionary(lookupName.Dictionary, ctx)
		if changed || retrievedName != "" {
			tn.Dictionary = newDict
			tn.ActualTypeName = &model.TypeName{
				Dictionary:                    newDict,
				IsOptional:                    tn.IsOptional,
				IsImplicitlyUnwrappedOptional: tn.IsImplicitlyUnwrappedOptional,
				Name:                          newDict.String(),
			}
		}

	case lookupName.Generic != nil:
		newGeneric, changed := rewriteGeneric(lookupName.Generic, ctx)
		if changed || retrievedName != "" {
			tn.Generic = newGeneric
			tn.ActualTypeName = &model.TypeName{
				Generic:                       newGeneric,
				IsOptional:                    tn.IsOptional,
				IsImplicitlyUnwrappedOptional: tn.IsImplicitlyUnwrappedOptional,
				Name:                          newGeneric.String(),
			}
		}

	default:
		if retrievedName != "" && retrievedName != tn.Name {
			tn.ActualTypeName = &model.TypeName{
				Name:                          retrievedName,
				IsOptional:                    tn.IsOptional,
				IsImplicitlyUnwrappedOptional: tn.IsImplicitlyUnwrappedOptional,
			}
		}
	}

	final := tn.ActualTypeName
	if final == nil {
		final = tn
	}
	return lookup(final, ctx.Universe.TypeMap)
}

func lookup(tn *model.TypeName, typeMap map[string]model.Type) model.Type {
	if tn == nil {
		return nil
	}
	key := tn.LookupKey()
	if key == "" {
		return nil
	}
	t, ok := typeMap[key]
	if !ok {
		return nil
	}
	return t
}

// adopt builds the TypeName Resolve's switch dispatches on: if alias itself
// carries compound substructure, that shape wins (an alias to a tuple/array
// contributes its shape); otherwise tn's own substructure (if any) is kept
// under the retrieved name.
//
// A compound alias's substructure is deep-cloned rather than shared: the
// same typealias can be adopted by many use sites, each resolved against
// its own scope (its own containing type, module, imports), and each must
// end up writing ActualTypeName on element nodes it exclusively owns.
// Sharing alias.TypeName.Tuple/Array/etc. across sites would let the
// parallel Member Resolver's goroutines race on the same element TypeName,
// and would let whichever site resolves first pin its scope's answer onto
// every other site.
func adopt(tn *model.TypeName, retrievedName string, alias *model.Typealias) *model.TypeName {
	if alias != nil && alias.TypeName != nil && alias.TypeName.IsCompound() {
		cloned := cloneTypeName(alias.TypeName)
		cloned.Name = retrievedName
		return cloned
	}
	return &model.TypeName{
		Name:                  retrievedName,
		Tuple:                 tn.Tuple,
		Array:                 tn.Array,
		Dictionary:            tn.Dictionary,
		Closure:               tn.Closure,
		Generic:               tn.Generic,
		IsProtocolComposition: tn.IsProtocolComposition,
	}
}

// cloneTypeName deep-copies tn's compound substructure so a use site never
// shares element nodes with the typealias declaration (or with any other
// use site of the same alias). ActualTypeName is deliberately not carried
// over: each clone must resolve independently against its own use site's
// scope rather than inherit another site's cached answer.
func cloneTypeName(tn *model.TypeName) *model.TypeName {
	if tn == nil {
		return nil
	}
	clone := &model.TypeName{
		Name:                          tn.Name,
		IsOptional:                    tn.IsOptional,
		IsImplicitlyUnwrappedOptional: tn.IsImplicitlyUnwrappedOptional,
		IsProtocolComposition:         tn.IsProtocolComposition,
	}
	switch {
	case tn.Tuple != nil:
		clone.Tuple = cloneTuple(tn.Tuple)
	case tn.Array != nil:
		clone.Array = cloneArray(tn.Array)
	case tn.Dictionary != nil:
		clone.Dictionary = cloneDictionary(tn.Dictionary)
	case tn.Closure != nil:
		clone.Closure = cloneClosure(tn.Closure)
	case tn.Generic != nil:
		clone.Generic = cloneGeneric(tn.Generic)
	}
	return clone
}

func cloneTuple(t *model.TupleType) *model.TupleType {
	elements := make([]model.TupleElement, len(t.Elements))
	for i, el := range t.Elements {
		elements[i] = model.TupleElement{Name: el.Name, TypeName: cloneTypeName(el.TypeName)}
	}
	return &model.TupleType{Elements: elements}
}

func cloneArray(a *model.ArrayType) *model.ArrayType {
	return &model.ArrayType{ElementTypeName: cloneTypeName(a.ElementTypeName)}
}

func cloneDictionary(d *model.DictionaryType) *model.DictionaryType {
	return &model.DictionaryType{KeyTypeName: cloneTypeName(d.KeyTypeName), ValueTypeName: cloneTypeName(d.ValueTypeName)}
}

func cloneClosure(c *model.ClosureType) *model.ClosureType {
	params := make([]model.ClosureParameter, len(c.Parameters))
	for i, p := range c.Parameters {
		params[i] = model.ClosureParameter{Name: p.Name, TypeName: cloneTypeName(p.TypeName)}
	}
	return &model.ClosureType{Parameters: params, ReturnTypeName: cloneTypeName(c.ReturnTypeName)}
}

func cloneGeneric(g *model.GenericType) *model.GenericType {
	params := make([]*model.TypeName, len(g.TypeParameters))
	for i, p := range g.TypeParameters {
		params[i] = cloneTypeName(p)
	}
	return &model.GenericType{Name: g.Name, TypeParameters: params}
}

// materialize returns the substituted form of a child TypeName after
// resolution: its ActualTypeName if resolution rewrote it, otherwise the
// original (spec.md §4.C: "elements carry the substituted type names, with
// per-element actualTypeName cleared" — reusing the fresh ActualTypeName
// node satisfies this without a redundant clone, since that node is never
// itself further resolved).
func materialize(tn *model.TypeName) (*model.TypeName, bool) {
	if tn.ActualTypeName != nil {
		return tn.ActualTypeName, true
	}
	return tn, false
}

func rewriteTuple(t *model.TupleType, ctx Context) (*model.TupleType, bool) {
	newTuple := &model.TupleType{Elements: make([]model.TupleElement, len(t.Elements))}
	changed := false
	for i, el := range t.Elements {
		Resolve(el.TypeName, ctx)
		child, wasChanged := materialize(el.TypeName)
		changed = changed || wasChanged
		newTuple.Elements[i] = model.TupleElement{Name: el.Name, TypeName: child}
	}
	return newTuple, changed
}

func rewriteArray(a *model.ArrayType, ctx Context) (*model.ArrayType, bool) {
	Resolve(a.ElementTypeName, ctx)
	child, changed := materialize(a.ElementTypeName)
	return &model.ArrayType{ElementTypeName: child}, changed
}

func rewriteDictionary(d *model.DictionaryType, ctx Context) (*model.DictionaryType, bool) {
	Resolve(d.KeyTypeName, ctx)
	Resolve(d.ValueTypeName, ctx)
	key, keyChanged := materialize(d.KeyTypeName)
	value, valueChanged := materialize(d.ValueTypeName)
	return &model.DictionaryType{KeyTypeName: key, ValueTypeName: value}, keyChanged || valueChanged
}

func rewriteClosure(c *model.ClosureType, ctx Context) (*model.ClosureType, bool) {
	changed := false
	newClosure := &model.ClosureType{Parameters: make([]model.ClosureParameter, len(c.Parameters))}
	for i, p := range c.Parameters {
		Resolve(p.TypeName, ctx)
		child, wasChanged := materialize(p.TypeName)
		changed = changed || wasChanged
		newClosure.Parameters[i] = model.ClosureParameter{Name: p.Name, TypeName: child}
	}
	if c.ReturnTypeName != nil {
		Resolve(c.ReturnTypeName, ctx)
		ret, wasChanged := materialize(c.ReturnTypeName)
		changed = changed || wasChanged
		newClosure.ReturnTypeName = ret
	}
	return newClosure, changed
}

func rewriteGeneric(g *model.GenericType, ctx Context) (*model.GenericType, bool) {
	changed := false
	newGeneric := &model.GenericType{Name: g.Name, TypeParameters: make([]*model.TypeName, len(g.TypeParameters))}
	for i, p := range g.TypeParameters {
		Resolve(p, ctx)
		child, wasChanged := materialize(p)
		changed = changed || wasChanged
		newGeneric.TypeParameters[i] = child
	}
	return newGeneric, changed
}
