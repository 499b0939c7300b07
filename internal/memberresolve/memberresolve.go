// Package memberresolve implements component D: resolving every member of a
// nominal type (variables, methods, subscripts, enum cases, protocol
// associated types and generic requirements) via the Name Resolver and
// Type-Expression Rewriter.
package memberresolve

import (
	"typegraph/internal/typeexpr"
	"typegraph/model"
)

// Type resolves every member of t, using ctx as the scope for names declared
// directly on t. Call once per type; safe to call concurrently across
// distinct types since each only touches TypeName/Type slots it owns.
func Type(t model.Type, ctx typeexpr.Context) {
	h := t.Header()
	resolveVariables(h.Variables, ctx)
	for _, m := range h.Methods {
		Method(m, ctx)
	}
	for _, s := range h.Subscripts {
		resolveSubscript(s, ctx)
	}

	switch v := t.(type) {
	case *model.Enum:
		resolveEnum(v, ctx)
	case *model.ProtocolType:
		resolveProtocol(v, ctx)
	case *model.ProtocolComposition:
		resolveProtocolComposition(v, ctx)
	}
}

// Method resolves a method's parameters and return type, whether it belongs
// to a type or is a free function (ctx.ContainingType == nil in the latter
// case, per spec.md §4.D).
func Method(m *model.Method, ctx typeexpr.Context) {
	for _, p := range m.Parameters {
		p.Type = typeexpr.Resolve(p.TypeName, ctx)
	}
	if m.DefinedInTypeName != nil {
		typeexpr.Resolve(m.DefinedInTypeName, ctx)
	}

	switch {
	case m.IsInitializer, m.IsFailableInitializer:
		definingType := ctx.ContainingType
		m.ReturnType = definingType
		if definingType != nil {
			dh := definingType.Header()
			m.ReturnTypeName = &model.TypeName{
				Name:       dh.Name,
				IsOptional: m.IsFailableInitializer,
				ActualTypeName: &model.TypeName{
					Name:       dh.GlobalName,
					IsOptional: m.IsFailableInitializer,
				},
			}
		}
	case m.IsVoidReturn:
		// explicit Void return: nothing to resolve.
	default:
		m.ReturnType = typeexpr.Resolve(m.ReturnTypeName, ctx)
	}
}

func resolveVariables(variables []*model.Variable, ctx typeexpr.Context) {
	for _, v := range variables {
		v.Type = typeexpr.Resolve(v.TypeName, ctx)
		if v.DefinedInTypeName != nil {
			typeexpr.Resolve(v.DefinedInTypeName, ctx)
		}
	}
}

func resolveSubscript(s *model.Subscript, ctx typeexpr.Context) {
	for _, p := range s.Parameters {
		p.Type = typeexpr.Resolve(p.TypeName, ctx)
	}
	s.ReturnType = typeexpr.Resolve(s.ReturnTypeName, ctx)
	if s.DefinedInTypeName != nil {
		typeexpr.Resolve(s.DefinedInTypeName, ctx)
	}
}

func resolveEnum(e *model.Enum, ctx typeexpr.Context) {
	for _, c := range e.Cases {
		for _, av := range c.AssociatedValues {
			av.Type = typeexpr.Resolve(av.TypeName, ctx)
		}
	}
	computeRawType(e, ctx)
}

// computeRawType implements spec.md §4.D's enum raw-type precedence: a
// stored `rawValue` property wins over a declared raw type in
// InheritedTypeNames (§9 Open Question 1); cases that all carry associated
// values can never have a raw type; a raw type that resolves to a protocol
// or composition is kept textually but not as a resolved Type.
func computeRawType(e *model.Enum, ctx typeexpr.Context) {
	for _, v := range e.Header().Variables {
		if v.Name == "rawValue" && v.IsStored {
			e.RawType = v.Type
			e.RawTypeName = v.TypeName
			return
		}
	}

	if len(e.Header().InheritedTypeNames) == 0 {
		e.RawTypeName = nil
		return
	}

	if e.AllCasesHaveAssociatedValues() {
		e.RawTypeName = nil
		return
	}

	first := e.Header().InheritedTypeNames[0]
	resolved := typeexpr.Resolve(first, ctx)

	switch {
	case resolved != nil && (resolved.Kind() == model.KindProtocol || resolved.Kind() == model.KindProtocolComposition):
		e.RawTypeName = first
		e.RawType = nil
	case resolved != nil && e.HasCaseWithoutAssociatedValues():
		e.RawTypeName = first
		e.RawType = resolved
	case e.HasCaseWithoutAssociatedValues():
		// unknown base type: keep the textual name, best-effort, per the
		// core's permissive nil policy (spec.md §7).
		e.RawTypeName = first
		e.RawType = nil
	default:
		e.RawTypeName = nil
	}
}

func resolveProtocolComposition(pc *model.ProtocolComposition, ctx typeexpr.Context) {
	pc.ComposedTypes = make([]model.Type, len(pc.ComposedTypeNames))
	for i, tn := range pc.ComposedTypeNames {
		pc.ComposedTypes[i] = typeexpr.Resolve(tn, ctx)
	}
}

func resolveProtocol(p *model.ProtocolType, ctx typeexpr.Context) {
	for _, at := range p.AssociatedTypes {
		if at.ConstraintTypeName != nil {
			at.ConstraintType = typeexpr.Resolve(at.ConstraintTypeName, ctx)
		}
	}
	for _, gr := range p.GenericRequirements {
		gr.RightType = typeexpr.Resolve(gr.RightTypeName, ctx)
		if gr.LeftTypeName == nil {
			continue
		}
		for _, at := range p.AssociatedTypes {
			if at.Name == gr.LeftTypeName.Name {
				gr.LeftType = at
				break
			}
		}
	}
}
