// Package ancestry implements component E: computing each nominal type's
// transitive inheritance/conformance sets with memoization, tolerating
// cycles through protocol inheritance or self-referencing associated types.
package ancestry

import (
	"sort"

	"typegraph/model"
)

// Compute populates Supertype, Inherits, Implements, and BasedTypes for
// every type in types, in a single post-order pass over the based-type
// graph. Cycles are broken by the processed memo: a `protocol A: B` and
// `protocol B: A` each see the other exactly once (spec.md §4.E).
func Compute(types []model.Type) {
	byName := make(map[string]model.Type, len(types))
	for _, t := range types {
		byName[t.Header().GlobalName] = t
	}

	processed := make(map[string]bool, len(types))
	for _, t := range types {
		process(t, byName, processed)
	}
}

func process(t model.Type, byName map[string]model.Type, processed map[string]bool) {
	h := t.Header()
	if processed[h.GlobalName] {
		return
	}

	if class, ok := t.(*model.Class); ok && len(h.InheritedTypeNames) > 0 {
		if base := findBaseType(t, h.InheritedTypeNames[0].LookupKey(), byName); base != nil {
			if baseClass, ok := base.(*model.Class); ok {
				class.Supertype = baseClass
			}
		}
	}
	processed[h.GlobalName] = true

	for _, key := range sortedKeys(h.Based) {
		base := findBaseType(t, key, byName)
		if base == nil {
			continue
		}
		baseHeader := base.Header()
		if !processed[baseHeader.GlobalName] {
			process(base, byName, processed)
		}

		mergeAncestors(h, baseHeader)

		switch b := base.(type) {
		case *model.Class:
			h.Inherits[baseHeader.GlobalName] = base
		case *model.ProtocolType:
			h.Implements[baseHeader.GlobalName] = base
			if self, ok := t.(*model.ProtocolType); ok {
				adoptAssociatedTypes(self, b)
			}
		case *model.ProtocolComposition:
			h.Implements[baseHeader.GlobalName] = base
		}
		h.BasedTypes[baseHeader.GlobalName] = base
	}
}

// findBaseType resolves a raw base name recorded in Based to a declared
// type, per spec.md §4.E: try it unqualified, then module-qualified, then
// qualified by each of t's imports.
func findBaseType(t model.Type, key string, byName map[string]model.Type) model.Type {
	if b, ok := byName[key]; ok {
		return b
	}
	h := t.Header()
	if h.Module != "" {
		if b, ok := byName[h.Module+"."+key]; ok {
			return b
		}
	}
	for _, imp := range h.Imports {
		if b, ok := byName[imp+"."+key]; ok {
			return b
		}
	}
	return nil
}

func mergeAncestors(dst, src *model.TypeHeader) {
	for k := range src.Based {
		dst.Based[k] = struct{}{}
	}
	for k, v := range src.BasedTypes {
		dst.BasedTypes[k] = v
	}
	for k, v := range src.Inherits {
		dst.Inherits[k] = v
	}
	for k, v := range src.Implements {
		dst.Implements[k] = v
	}
}

func adoptAssociatedTypes(self, base *model.ProtocolType) {
	for _, at := range base.AssociatedTypes {
		if !hasAssociatedType(self, at.Name) {
			self.AssociatedTypes = append(self.AssociatedTypes, at)
		}
	}
}

func hasAssociatedType(p *model.ProtocolType, name string) bool {
	for _, at := range p.AssociatedTypes {
		if at.Name == name {
			return true
		}
	}
	return false
}

func sortedKeys(m map[string]struct{}) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
