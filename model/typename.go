// Package model defines the entities shared by every phase of type
// resolution: the rewritable textual type-expression tree (TypeName and its
// compound forms), the nominal declaration graph (Type and its kinds), and
// the member records that hang off a declaration.
package model

import "strings"

// TypeName is a rewritable textual description of a type reference.
//
// ActualTypeName is written at most once per instance: the Type-Expression
// Rewriter checks it first and, once set, never revisits the node. Each
// declaration site owns its own TypeName tree, so parallel resolution across
// types never shares a write target.
type TypeName struct {
	Name                          string
	IsOptional                    bool
	IsImplicitlyUnwrappedOptional bool

	Tuple      *TupleType
	Array      *ArrayType
	Dictionary *DictionaryType
	Closure    *ClosureType
	Generic    *GenericType

	IsProtocolComposition bool

	// ActualTypeName holds the post-typealias-substitution rewritten form.
	// Nil means the raw text already names a concrete type, or is unknown.
	ActualTypeName *TypeName
}

// UnwrappedTypeName returns Name unchanged: optionality is carried by
// IsOptional and IsImplicitlyUnwrappedOptional, and no `?` or `!` suffix is
// stripped from Name. For compound expressions Name is the normalized
// (bracket/paren/arrow) form the rewriter keeps.
func (t *TypeName) UnwrappedTypeName() string {
	if t == nil {
		return ""
	}
	return t.Name
}

// IsCompound reports whether tn carries any compound substructure.
func (t *TypeName) IsCompound() bool {
	if t == nil {
		return false
	}
	return t.Tuple != nil || t.Array != nil || t.Dictionary != nil || t.Closure != nil || t.Generic != nil
}

// LookupKey returns the key that should be probed in a type arena: the
// generic base name if present, otherwise the unwrapped name.
func (t *TypeName) LookupKey() string {
	if t == nil {
		return ""
	}
	if t.Generic != nil {
		return t.Generic.Name
	}
	return t.UnwrappedTypeName()
}

// TupleElement is one labeled or unlabeled slot of a TupleType.
type TupleElement struct {
	Name     string
	TypeName *TypeName
}

// TupleType is the compound form of `(A, B, ...)`.
type TupleType struct {
	Elements []TupleElement
}

func (t *TupleType) String() string {
	if t == nil {
		return ""
	}
	parts := make([]string, len(t.Elements))
	for i, el := range t.Elements {
		if el.Name != "" {
			parts[i] = el.Name + ": " + el.TypeName.Name
		} else {
			parts[i] = el.TypeName.Name
		}
	}
	return "(" + strings.Join(parts, ", ") + ")"
}

// ArrayType is the compound form of `[Element]`.
type ArrayType struct {
	ElementTypeName *TypeName
}

func (a *ArrayType) String() string {
	if a == nil {
		return ""
	}
	return "[" + a.ElementTypeName.Name + "]"
}

// DictionaryType is the compound form of `[Key: Value]`.
type DictionaryType struct {
	KeyTypeName   *TypeName
	ValueTypeName *TypeName
}

func (d *DictionaryType) String() string {
	if d == nil {
		return ""
	}
	return "[" + d.KeyTypeName.Name + ": " + d.ValueTypeName.Name + "]"
}

// ClosureParameter is one parameter slot of a ClosureType.
type ClosureParameter struct {
	Name     string
	TypeName *TypeName
}

// ClosureType is the compound form of `(P1, P2) -> R`.
type ClosureType struct {
	Parameters     []ClosureParameter
	ReturnTypeName *TypeName
}

func (c *ClosureType) String() string {
	if c == nil {
		return ""
	}
	parts := make([]string, len(c.Parameters))
	for i, p := range c.Parameters {
		parts[i] = p.TypeName.Name
	}
	ret := "Void"
	if c.ReturnTypeName != nil {
		ret = c.ReturnTypeName.Name
	}
	return "(" + strings.Join(parts, ", ") + ") -> " + ret
}

// GenericType is the compound form of `Name<P1, P2, ...>`.
type GenericType struct {
	Name           string
	TypeParameters []*TypeName
}

func (g *GenericType) String() string {
	if g == nil {
		return ""
	}
	if len(g.TypeParameters) == 0 {
		return g.Name
	}
	parts := make([]string, len(g.TypeParameters))
	for i, p := range g.TypeParameters {
		parts[i] = p.Name
	}
	return g.Name + "<" + strings.Join(parts, ", ") + ">"
}
