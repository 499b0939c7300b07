// Package nameresolve implements component B: looking up a textual name
// through the scope chain (containing type, module, imports, globals) and
// following typealiases to a fixed point.
package nameresolve

import "typegraph/model"

// Aliases is the pair of lookup tables the resolver probes an alias
// candidate against: ByGlobalName for fully-qualified candidates (parent- or
// module-qualified), and ByShortName for the bare-name probe — populated
// only for names unambiguous across the whole session, mirroring
// unify.Result.UniqueTypes.
type Aliases struct {
	ByGlobalName map[string]*model.Typealias
	ByShortName  map[string]*model.Typealias
}

// BuildAliases indexes a flat alias list into Aliases.
func BuildAliases(all []*model.Typealias) Aliases {
	byGlobal := make(map[string]*model.Typealias, len(all))
	counts := map[string]int{}
	for _, a := range all {
		byGlobal[a.GlobalName()] = a
		counts[a.Name]++
	}
	byShort := map[string]*model.Typealias{}
	for _, a := range all {
		if counts[a.Name] == 1 {
			byShort[a.Name] = a
		}
	}
	return Aliases{ByGlobalName: byGlobal, ByShortName: byShort}
}

// Universe is the read-only lookup surface every resolution phase shares.
type Universe struct {
	TypeMap     map[string]model.Type
	UniqueTypes map[string]model.Type
	Aliases     Aliases
}

// Resolve looks up name within containingType's scope (or, when
// containingType is nil, within module/imports directly — the free-function
// case), following typealiases to a fixed point per spec.md §4.B.
//
// It returns the fully-qualified resolved name and, if the final hop crossed
// a typealias, that alias record so callers can adopt its compound
// substructure (an alias to a tuple/array/etc. contributes that shape).
// An empty resolved name means nothing in scope matched.
func Resolve(name string, containingType model.Type, module string, imports []string, u Universe) (string, *model.Typealias) {
	return resolve(name, containingType, module, imports, u, map[string]bool{})
}

// resolve runs the four-step lookup, threading a single seen set through
// every alias hop within this top-level Resolve call so a cycle anywhere in
// the chain — however many scopes it passes through — is caught exactly
// once (spec.md §7, "typealias cycle").
func resolve(name string, containingType model.Type, module string, imports []string, u Universe, seen map[string]bool) (string, *model.Typealias) {
	// Step 1: containing-type scope chain, innermost to outermost.
	for scope := containingType; scope != nil; scope = scope.Header().ContainingType {
		candidate := scope.Header().GlobalName + "." + name
		if resolved, alias, ok := probe(candidate, u.TypeMap, u.Aliases.ByGlobalName, containingType, module, imports, u, seen); ok {
			return resolved, alias
		}
	}

	// Step 2: bare name against the unambiguous short-name index.
	if resolved, alias, ok := probe(name, u.UniqueTypes, u.Aliases.ByShortName, containingType, module, imports, u, seen); ok {
		return resolved, alias
	}

	// Step 3: own module, then each import, qualifying the name.
	scopes := make([]string, 0, 1+len(imports))
	if module != "" {
		scopes = append(scopes, module)
	}
	scopes = append(scopes, imports...)
	for _, m := range scopes {
		candidate := m + "." + name
		if resolved, alias, ok := probe(candidate, u.TypeMap, u.Aliases.ByGlobalName, containingType, module, imports, u, seen); ok {
			return resolved, alias
		}
	}

	return "", nil
}

// probe checks candidate against a declared type first, then against an
// alias. A declared-type hit returns that type's GlobalName rather than the
// raw candidate: types may be keyed by short name (UniqueTypes), and every
// downstream lookup (typeexpr's final TypeMap probe, the Ancestor Closure)
// expects a fully-qualified name it can find in TypeMap.
//
// An alias hit re-runs the full four-step lookup (resolve, not a second
// probe against the same map pair) on the alias's target name, with the
// same containing type, module and imports — spec.md §4.B step 4 requires
// the target itself to be scope-qualified, not compared against candidate's
// own map by exact key. This is what lets `typealias Local = Bar` inside a
// type resolve Bar through the ordinary scope chain even though Bar's own
// declaration is nowhere near where Local's raw text was written.
func probe(candidate string, types map[string]model.Type, aliases map[string]*model.Typealias, containingType model.Type, module string, imports []string, u Universe, seen map[string]bool) (string, *model.Typealias, bool) {
	if t, ok := types[candidate]; ok {
		return t.Header().GlobalName, nil, true
	}

	alias, ok := aliases[candidate]
	if !ok {
		return "", nil, false
	}
	if seen[candidate] {
		// A cycle: the repeated candidate is the opaque unresolved terminal.
		return candidate, alias, true
	}
	seen[candidate] = true

	target := alias.TypeName.UnwrappedTypeName()
	if resolved, innerAlias := resolve(target, containingType, module, imports, u, seen); resolved != "" {
		if innerAlias != nil {
			alias = innerAlias
		}
		return resolved, alias, true
	}
	// The target isn't reachable from this scope at all; still report the
	// alias crossed so the caller can adopt its compound shape (a tuple or
	// array alias contributes that shape even when its own elements don't
	// resolve to anything declared).
	return target, alias, true
}
