package model

// Variable is a stored or computed property.
type Variable struct {
	Name              string
	TypeName          *TypeName
	Type              Type
	DefinedInTypeName *TypeName

	// IsStored marks a property backed by storage rather than computed.
	// The Member Resolver consults it to find an enum's rawValue property
	// (spec.md §4.D, §9 Open Question 1).
	IsStored bool
	IsStatic bool
}

// MethodParameter is one parameter of a Method or Subscript.
type MethodParameter struct {
	Name     string
	TypeName *TypeName
	Type     Type
}

// Method is a function, initializer, or free function. Free functions carry
// their own Module/Imports since they have no containing type to derive
// scope from.
type Method struct {
	Name       string
	Module     string
	Imports    []string
	Parameters []*MethodParameter

	ReturnTypeName *TypeName
	ReturnType     Type
	// IsVoidReturn marks an explicit `Void` return, which the Member
	// Resolver skips resolving (spec.md §4.D).
	IsVoidReturn bool

	DefinedInTypeName *TypeName

	IsInitializer         bool
	IsFailableInitializer bool
}

// Subscript is a `subscript(...) -> T` member.
type Subscript struct {
	Parameters        []*MethodParameter
	ReturnTypeName    *TypeName
	ReturnType        Type
	DefinedInTypeName *TypeName
}

// EnumCase is one case of an Enum, optionally carrying associated values.
type EnumCase struct {
	Name             string
	AssociatedValues []*AssociatedValue
}

// AssociatedValue is one associated value of an EnumCase.
type AssociatedValue struct {
	Name     string
	TypeName *TypeName
	Type     Type
}

// AssociatedType is a protocol's associated-type declaration, optionally
// constrained.
type AssociatedType struct {
	Name               string
	ConstraintTypeName *TypeName
	ConstraintType     Type
}

// GenericRequirement is a protocol's `where` clause entry. LeftType is
// populated when LeftTypeName names one of the protocol's own associated
// types (spec.md §4.D).
type GenericRequirement struct {
	LeftTypeName  *TypeName
	LeftType      *AssociatedType
	RightTypeName *TypeName
	RightType     Type
}
