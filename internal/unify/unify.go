// Package unify implements component A: merging duplicate declarations of
// the same nominal type (a type plus its extensions, possibly across files)
// into one canonical record, and building the name-addressable universe the
// remaining phases probe by string key.
package unify

import "typegraph/model"

// Result is the arena the Unifier builds: every nominal type reachable by
// its fully-qualified global name, plus a per-module short-name index and
// the unambiguous-short-name index used by the Name Resolver's "probe the
// bare name directly" step.
type Result struct {
	TypeMap map[string]model.Type
	Modules map[string]map[string]model.Type

	// UniqueTypes holds only the types whose short Name is unambiguous
	// across the whole session (spec.md §4.B step 2, "unique").
	UniqueTypes map[string]model.Type
}

// Unify merges raw declarations and extensions by GlobalName into Result.TypeMap.
func Unify(rawTypes []model.Type) *Result {
	declarations := map[string]model.Type{}
	var order []string
	extensionsByName := map[string][]model.Type{}

	for _, t := range rawTypes {
		h := t.Header()
		if h.IsExtension {
			extensionsByName[h.GlobalName] = append(extensionsByName[h.GlobalName], t)
			continue
		}
		if existing, ok := declarations[h.GlobalName]; ok {
			mergeInto(existing, t)
			continue
		}
		declarations[h.GlobalName] = t
		order = append(order, h.GlobalName)
	}

	// Extensions of a type with no full declaration in this ParserResult
	// still contribute a usable record (e.g. extending a type declared in
	// another module/file not present in this run).
	for name, exts := range extensionsByName {
		if _, ok := declarations[name]; ok {
			continue
		}
		primary := exts[0]
		declarations[name] = primary
		order = append(order, name)
		for _, ext := range exts[1:] {
			mergeInto(primary, ext)
		}
		exts = nil
		extensionsByName[name] = exts
	}

	typeMap := map[string]model.Type{}
	for _, name := range order {
		decl := declarations[name]
		for _, ext := range extensionsByName[name] {
			mergeInto(decl, ext)
		}
		populateBased(decl)
		typeMap[name] = decl
		collectNestedTypes(decl, typeMap)
	}

	return &Result{
		TypeMap:     typeMap,
		Modules:     buildModules(typeMap),
		UniqueTypes: buildUniqueByShortName(typeMap),
	}
}

// mergeInto appends dst's accumulated members with src's (spec.md §4.A rule
//1): variables, methods, subscripts, nested types, and inherited type
// names. When src is the same kind as dst, its kind-specific fields are
// appended too: enum cases, protocol associated types and generic
// requirements, and protocol-composition composed names.
func mergeInto(dst, src model.Type) {
	dh, sh := dst.Header(), src.Header()

	dh.Variables = append(dh.Variables, sh.Variables...)
	dh.Methods = append(dh.Methods, sh.Methods...)
	dh.Subscripts = append(dh.Subscripts, sh.Subscripts...)
	dh.NestedTypes = append(dh.NestedTypes, sh.NestedTypes...)
	dh.InheritedTypeNames = append(dh.InheritedTypeNames, sh.InheritedTypeNames...)

	switch d := dst.(type) {
	case *model.Enum:
		if s, ok := src.(*model.Enum); ok {
			d.Cases = append(d.Cases, s.Cases...)
		}
	case *model.ProtocolType:
		if s, ok := src.(*model.ProtocolType); ok {
			d.AssociatedTypes = append(d.AssociatedTypes, s.AssociatedTypes...)
			d.GenericRequirements = append(d.GenericRequirements, s.GenericRequirements...)
		}
	case *model.ProtocolComposition:
		if s, ok := src.(*model.ProtocolComposition); ok {
			d.ComposedTypeNames = append(d.ComposedTypeNames, s.ComposedTypeNames...)
		}
	}
}

// populateBased seeds TypeHeader.Based with the raw textual base names the
// Ancestor Closure will later resolve into BasedTypes, from the inherited
// type names accumulated by unification (and, for protocol compositions,
// composed type names).
func populateBased(t model.Type) {
	h := t.Header()
	for _, tn := range h.InheritedTypeNames {
		if tn == nil || tn.Name == "" {
			continue
		}
		h.Based[tn.Name] = struct{}{}
	}
	if pc, ok := t.(*model.ProtocolComposition); ok {
		for _, tn := range pc.ComposedTypeNames {
			if tn == nil || tn.Name == "" {
				continue
			}
			h.Based[tn.Name] = struct{}{}
		}
	}
}

// collectNestedTypes registers nested types under their own GlobalName
// (parent name + "." + child name is expected to already be set by the
// parser producing NestedTypes), recursing into further nesting.
func collectNestedTypes(t model.Type, typeMap map[string]model.Type) {
	for _, nested := range t.Header().NestedTypes {
		h := nested.Header()
		typeMap[h.GlobalName] = nested
		collectNestedTypes(nested, typeMap)
	}
}

func buildModules(typeMap map[string]model.Type) map[string]map[string]model.Type {
	modules := map[string]map[string]model.Type{}
	for _, t := range typeMap {
		h := t.Header()
		if h.Module == "" {
			continue
		}
		bucket, ok := modules[h.Module]
		if !ok {
			bucket = map[string]model.Type{}
			modules[h.Module] = bucket
		}
		bucket[h.Name] = t
	}
	return modules
}

func buildUniqueByShortName(typeMap map[string]model.Type) map[string]model.Type {
	counts := map[string]int{}
	for _, t := range typeMap {
		counts[t.Header().Name]++
	}
	unique := map[string]model.Type{}
	for _, t := range typeMap {
		h := t.Header()
		if counts[h.Name] == 1 {
			unique[h.Name] = t
		}
	}
	return unique
}
